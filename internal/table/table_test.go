package table

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datagrid/internal/sorting"
)

const sampleData = `
[[columns]]
key = "name"
title = "Name"
width = 10

[[columns]]
key = "age"

[[rows]]
id = "1"
name = "dan"
age = 30

[[rows]]
id = "2"
name = "ann"
age = 25

[[rows]]
name = "Bob"
age = 30
`

func TestParse(t *testing.T) {
	tbl, err := Parse([]byte(sampleData))
	require.NoError(t, err)

	cols := tbl.Columns()
	require.Len(t, cols, 2)
	assert.Equal(t, "Name", cols[0].Title)
	assert.Equal(t, "age", cols[1].Title, "title defaults to key")

	require.Equal(t, 3, tbl.Len())
	row, ok := tbl.Row("2")
	require.True(t, ok)
	assert.Equal(t, "ann", row.Text("name"))

	generated := tbl.Rows()[2].ID
	_, err = uuid.Parse(generated)
	assert.NoError(t, err, "rows without id get a uuid")
}

func TestParseRejectsColumnWithoutKey(t *testing.T) {
	_, err := Parse([]byte("[[columns]]\ntitle = \"x\"\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("not = [valid"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "people.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleData), 0644))

	tbl, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, tbl.Len())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestViewSortsAndFilters(t *testing.T) {
	tbl, err := Parse([]byte(sampleData))
	require.NoError(t, err)

	descs := sorting.NewDescriptions(
		sorting.Description{Column: "age", Direction: sorting.Descending},
		sorting.Description{Column: "name", Direction: sorting.Ascending},
	)
	rows := tbl.View("", descs)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Bob", "dan", "ann"}, []string{rows[0].Text("name"), rows[1].Text("name"), rows[2].Text("name")})

	rows = tbl.View("AN", descs)
	require.Len(t, rows, 2)
	assert.Equal(t, "dan", rows[0].Text("name"))
	assert.Equal(t, "ann", rows[1].Text("name"))

	assert.Equal(t, "dan", tbl.Rows()[0].Text("name"), "view must not reorder the store")
}

func TestDeleteReindexes(t *testing.T) {
	tbl, err := Parse([]byte(sampleData))
	require.NoError(t, err)

	assert.True(t, tbl.Delete("1"))
	assert.False(t, tbl.Delete("1"))

	row, ok := tbl.Row("2")
	require.True(t, ok)
	assert.Equal(t, "ann", row.Text("name"))
	assert.Equal(t, 2, tbl.Len())
}

func TestDuplicateIDGetsNewID(t *testing.T) {
	tbl := New(nil)
	a := tbl.Add(map[string]any{"id": "x"})
	b := tbl.Add(map[string]any{"id": "x"})

	assert.Equal(t, "x", a.ID)
	assert.NotEqual(t, "x", b.ID)
	assert.Equal(t, b.ID, b.Text("id"))

	stored, ok := tbl.Row(b.ID)
	require.True(t, ok)
	assert.Equal(t, b.ID, stored.Text("id"))

	first, ok := tbl.Row("x")
	require.True(t, ok)
	assert.Equal(t, "x", first.Text("id"))
}

func TestDuplicateIDLeavesCallerValues(t *testing.T) {
	tbl := New(nil)
	tbl.Add(map[string]any{"id": "x"})
	values := map[string]any{"id": "x", "name": "b"}

	row := tbl.Add(values)

	assert.Equal(t, "x", values["id"])
	assert.Equal(t, "b", row.Text("name"))
	assert.True(t, tbl.Delete(row.Text("id")))
	assert.Equal(t, 1, tbl.Len())
}

func TestGenerateColumns(t *testing.T) {
	tbl := New(nil)
	tbl.Add(map[string]any{"name": "a", "id": 1, "age": 2})
	tbl.Add(map[string]any{"city": "x", "name": "b"})

	tbl.GenerateColumns()

	var keys []string
	for _, c := range tbl.Columns() {
		keys = append(keys, c.Key)
	}
	assert.Equal(t, []string{"id", "age", "name", "city"}, keys)

	tbl.GenerateColumns()
	assert.Len(t, tbl.Columns(), 4, "declared columns are kept")
}
