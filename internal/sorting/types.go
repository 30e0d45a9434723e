package sorting

import (
	"fmt"
	"strings"
)

// Direction is the sign applied to a column comparison
type Direction int

const (
	Ascending  Direction = 1
	Descending Direction = -1
)

// NotFound is returned by Index when a column has no sort entry
const NotFound = -1

// Flip returns the opposite direction
func (d Direction) Flip() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

// Valid reports whether d is one of the two known directions
func (d Direction) Valid() bool {
	return d == Ascending || d == Descending
}

func (d Direction) String() string {
	switch d {
	case Ascending:
		return "asc"
	case Descending:
		return "desc"
	default:
		return "unknown"
	}
}

// MarshalText encodes the direction for settings files
func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("invalid sort direction %d", int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText accepts asc/ascending and desc/descending in any case
func (d *Direction) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "asc", "ascending":
		*d = Ascending
	case "desc", "descending":
		*d = Descending
	default:
		return fmt.Errorf("invalid sort direction %q", string(text))
	}
	return nil
}

// Description is one column's participation in a multi-column sort
type Description struct {
	Column    string    `json:"column" toml:"column"`
	Direction Direction `json:"direction" toml:"direction"`
}

// SortChangedEvent is published whenever the active sort changes.
// Descriptions is a clone and may be kept by subscribers.
type SortChangedEvent struct {
	Descriptions *Descriptions
}
