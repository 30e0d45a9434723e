package sorting

// Descriptions is the ordered list of active column sorts.
// The first entry is the primary key, later entries break ties.
//
// Add does not check for an existing entry on the same column. When
// duplicates exist every lookup and mutation acts on the first one only.
type Descriptions struct {
	entries []Description
}

// NewDescriptions creates a collection holding the given entries in order
func NewDescriptions(entries ...Description) *Descriptions {
	d := &Descriptions{}
	for _, e := range entries {
		d.Add(e)
	}
	return d
}

// Add appends a description with the lowest precedence
func (d *Descriptions) Add(desc Description) {
	d.entries = append(d.entries, desc)
}

// Remove drops the entry for column, if any
func (d *Descriptions) Remove(column string) {
	i := d.find(column)
	if i < 0 {
		return
	}
	d.entries = append(d.entries[:i], d.entries[i+1:]...)
}

// Clear removes every entry
func (d *Descriptions) Clear() {
	d.entries = nil
}

// Get returns a copy of the entry for column
func (d *Descriptions) Get(column string) (Description, bool) {
	i := d.find(column)
	if i < 0 {
		return Description{}, false
	}
	return d.entries[i], true
}

// Direction returns the sort direction of column
func (d *Descriptions) Direction(column string) (Direction, bool) {
	desc, ok := d.Get(column)
	if !ok {
		return 0, false
	}
	return desc.Direction, true
}

// FlipDirection toggles the direction of column in place
func (d *Descriptions) FlipDirection(column string) {
	i := d.find(column)
	if i < 0 {
		return
	}
	d.entries[i].Direction = d.entries[i].Direction.Flip()
}

// Index returns the 1-based precedence of column, or NotFound.
// The value is shown to users as a priority badge.
func (d *Descriptions) Index(column string) int {
	i := d.find(column)
	if i < 0 {
		return NotFound
	}
	return i + 1
}

// Clone returns an independent copy
func (d *Descriptions) Clone() *Descriptions {
	return &Descriptions{entries: d.All()}
}

// Len returns the number of entries
func (d *Descriptions) Len() int {
	return len(d.entries)
}

// All returns a copy of the entries in precedence order
func (d *Descriptions) All() []Description {
	if len(d.entries) == 0 {
		return nil
	}
	out := make([]Description, len(d.entries))
	copy(out, d.entries)
	return out
}

func (d *Descriptions) find(column string) int {
	for i, e := range d.entries {
		if e.Column == column {
			return i
		}
	}
	return -1
}
