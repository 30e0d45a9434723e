package table

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"datagrid/internal/sorting"
)

// IDKey is the row value used as the row identity
const IDKey = "id"

// Row is one record of the grid
type Row struct {
	ID     string
	Values map[string]any
}

// Value returns the value of column
func (r Row) Value(column string) (any, bool) {
	v, ok := r.Values[column]
	return v, ok
}

// Text returns the display text of column
func (r Row) Text(column string) string {
	v, ok := r.Values[column]
	if !ok || v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// Column describes one grid column
type Column struct {
	Key   string `toml:"key"`
	Title string `toml:"title"`
	Width int    `toml:"width"`
}

// Table is an in-memory row store that keeps insertion order
type Table struct {
	mu      sync.RWMutex
	columns []Column
	rows    []Row
	index   map[string]int
}

// New creates a table with the given columns
func New(columns []Column) *Table {
	return &Table{
		columns: append([]Column(nil), columns...),
		index:   make(map[string]int),
	}
}

// Add appends a row. Rows without an id get a generated one, as do rows
// whose id is already taken; their id value is replaced to match.
func (t *Table) Add(values map[string]any) Row {
	t.mu.Lock()
	defer t.mu.Unlock()

	row := Row{Values: values}
	if row.Values == nil {
		row.Values = make(map[string]any)
	}
	if id, ok := row.Values[IDKey]; ok && id != nil && fmt.Sprint(id) != "" {
		row.ID = fmt.Sprint(id)
	} else {
		row.ID = uuid.NewString()
	}
	if _, exists := t.index[row.ID]; exists {
		row.ID = uuid.NewString()
		values := make(map[string]any, len(row.Values))
		for k, v := range row.Values {
			values[k] = v
		}
		values[IDKey] = row.ID
		row.Values = values
	}

	t.index[row.ID] = len(t.rows)
	t.rows = append(t.rows, row)
	return row
}

// Row returns the row with the given id
func (t *Table) Row(id string) (Row, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	i, ok := t.index[id]
	if !ok {
		return Row{}, false
	}
	return t.rows[i], true
}

// Delete removes a row, reporting whether it existed
func (t *Table) Delete(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	i, ok := t.index[id]
	if !ok {
		return false
	}
	t.rows = append(t.rows[:i], t.rows[i+1:]...)
	delete(t.index, id)
	for j := i; j < len(t.rows); j++ {
		t.index[t.rows[j].ID] = j
	}
	return true
}

// Rows returns a copy of the rows in insertion order
func (t *Table) Rows() []Row {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]Row(nil), t.rows...)
}

// Len returns the number of rows
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}

// Columns returns the declared columns
func (t *Table) Columns() []Column {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]Column(nil), t.columns...)
}

// GenerateColumns derives columns from row keys when none are declared.
// Order is first-seen order across rows, with keys of a single row sorted
// since map order is random. The id column comes first.
func (t *Table) GenerateColumns() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.columns) > 0 {
		return
	}
	seen := make(map[string]bool)
	for _, row := range t.rows {
		keys := make([]string, 0, len(row.Values))
		for k := range row.Values {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool {
			if keys[i] == IDKey || keys[j] == IDKey {
				return keys[i] == IDKey
			}
			return keys[i] < keys[j]
		})
		for _, k := range keys {
			if seen[k] {
				continue
			}
			seen[k] = true
			t.columns = append(t.columns, Column{Key: k, Title: k})
		}
	}
}

// Filter returns the rows where any value contains query, ignoring case
func (t *Table) Filter(query string) []Row {
	rows := t.Rows()
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return rows
	}

	filtered := rows[:0]
	for _, row := range rows {
		if rowMatches(row, query) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// View returns the filtered rows ordered by descs
func (t *Table) View(query string, descs *sorting.Descriptions) []Row {
	rows := t.Filter(query)
	sorting.Sort(rows, descs, Row.Value)
	return rows
}

func rowMatches(row Row, query string) bool {
	for _, v := range row.Values {
		if strings.Contains(strings.ToLower(fmt.Sprint(v)), query) {
			return true
		}
	}
	return false
}
