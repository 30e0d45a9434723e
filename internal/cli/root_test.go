package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datagrid/internal/config"
	"datagrid/internal/sorting"
)

const peopleData = `
[[rows]]
id = "1"
name = "dan"
age = 30

[[rows]]
id = "2"
name = "ann"
age = 25

[[rows]]
id = "3"
name = "bob"
age = 41
`

func writeWorkspace(t *testing.T, sort ...sorting.Description) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "people.toml"), []byte(peopleData), 0644))

	f := config.DefaultFile()
	f.Data = "people.toml"
	f.Sort = sort
	path := filepath.Join(dir, "grid.toml")
	require.NoError(t, config.NewConfigServiceForPath(path, nil).SaveToPath(f, path))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	exportOut = ""
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootHelp(t *testing.T) {
	out, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "datagrid")
	assert.Contains(t, out, "export")
}

func TestSortCommand(t *testing.T) {
	path := writeWorkspace(t,
		sorting.Description{Column: "age", Direction: sorting.Descending},
		sorting.Description{Column: "name", Direction: sorting.Ascending},
	)

	out, err := execute(t, "sort", "--settings", path)
	require.NoError(t, err)
	assert.Equal(t, "1. age desc\n2. name asc\n", out)
}

func TestSortCommandWithoutSort(t *testing.T) {
	path := writeWorkspace(t)

	out, err := execute(t, "sort", "-c", path)
	require.NoError(t, err)
	assert.Equal(t, "No sort\n", out)
}

func TestExportCommandUsesSavedSort(t *testing.T) {
	path := writeWorkspace(t, sorting.Description{Column: "age", Direction: sorting.Descending})

	out, err := execute(t, "export", "--settings", path)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"id": "3", "name": "bob", "age": 41},
		{"id": "1", "name": "dan", "age": 30},
		{"id": "2", "name": "ann", "age": 25}
	]`, out)
}

func TestExportCommandToFile(t *testing.T) {
	path := writeWorkspace(t, sorting.Description{Column: "name", Direction: sorting.Ascending})
	target := filepath.Join(t.TempDir(), "rows.json")

	_, err := execute(t, "export", "--settings", path, "--out", target)
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"id": "2", "name": "ann", "age": 25},
		{"id": "3", "name": "bob", "age": 41},
		{"id": "1", "name": "dan", "age": 30}
	]`, string(data))
}

func TestOpenSessionCreatesSettings(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "people.toml")
	require.NoError(t, os.WriteFile(data, []byte(peopleData), 0644))
	path := filepath.Join(dir, "new.toml")

	sess, err := openSession(path, data, nil)
	require.NoError(t, err)
	assert.FileExists(t, path)
	assert.Equal(t, 3, sess.table.Len())
	assert.Len(t, sess.table.Columns(), 3, "columns are generated")

	sess.sorting.Toggle("name", false)
	sess.sorting.Toggle("age", true)
	require.NoError(t, sess.saveSort())

	reopened, err := openSession(path, data, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, reopened.settings.SortDescriptions.Index("name"))
	assert.Equal(t, 2, reopened.settings.SortDescriptions.Index("age"))
}

func TestOpenSessionNeedsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.toml")
	_, err := openSession(path, "", nil)
	assert.ErrorContains(t, err, "no data file")
}
