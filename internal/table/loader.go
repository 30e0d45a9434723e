package table

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type dataFile struct {
	Columns []Column         `toml:"columns"`
	Rows    []map[string]any `toml:"rows"`
}

// LoadFile reads a TOML data file with [[columns]] and [[rows]] tables
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}
	return Parse(data)
}

// Parse builds a table from TOML data
func Parse(data []byte) (*Table, error) {
	var f dataFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse data file: %w", err)
	}

	for i, c := range f.Columns {
		if c.Key == "" {
			return nil, fmt.Errorf("column %d has no key", i+1)
		}
		if c.Title == "" {
			f.Columns[i].Title = c.Key
		}
	}

	t := New(f.Columns)
	for _, values := range f.Rows {
		t.Add(values)
	}
	return t, nil
}
