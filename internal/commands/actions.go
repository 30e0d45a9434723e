package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bytedance/sonic"

	"datagrid/internal/table"
)

// ClearSortCommand removes every active column sort
type ClearSortCommand struct {
	ctx *CommandContext
}

// NewClearSortCommand creates a new clear sort command
func NewClearSortCommand(ctx *CommandContext) *ClearSortCommand {
	return &ClearSortCommand{ctx: ctx}
}

func (c *ClearSortCommand) Label() string { return "Clear sort" }

func (c *ClearSortCommand) CanExecute(any) bool {
	return c.ctx.Sorting != nil && c.ctx.Sorting.Enabled() && c.ctx.Sorting.Descriptions().Len() > 0
}

func (c *ClearSortCommand) Execute(target any) error {
	if !c.CanExecute(target) {
		return ErrCannotExecute
	}
	c.ctx.Sorting.Clear()
	return nil
}

// ExportCommand writes the visible rows, in display order, as JSON.
// A string target is used as the output path, otherwise the context writer.
type ExportCommand struct {
	ctx *CommandContext
}

// NewExportCommand creates a new export command
func NewExportCommand(ctx *CommandContext) *ExportCommand {
	return &ExportCommand{ctx: ctx}
}

func (c *ExportCommand) Label() string { return "Export JSON" }

func (c *ExportCommand) CanExecute(target any) bool {
	if c.ctx.Table == nil || c.ctx.Table.Len() == 0 {
		return false
	}
	if path, ok := target.(string); ok && path != "" {
		return true
	}
	return c.ctx.Out != nil
}

func (c *ExportCommand) Execute(target any) error {
	if !c.CanExecute(target) {
		return ErrCannotExecute
	}

	columns := c.ctx.Table.Columns()
	rows := c.ctx.visibleRows()
	records := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		record := make(map[string]any, len(columns))
		for _, col := range columns {
			if v, ok := row.Value(col.Key); ok {
				record[col.Key] = v
			}
		}
		records = append(records, record)
	}

	data, err := sonic.ConfigStd.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode rows: %w", err)
	}
	data = append(data, '\n')

	if path, ok := target.(string); ok && path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("failed to create export directory: %w", err)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed to write export file: %w", err)
		}
		c.ctx.logger().Infow("rows exported", "path", path, "rows", len(records))
		return nil
	}

	if _, err := c.ctx.Out.Write(data); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}

// ViewRowCommand shows every column of a row in the viewer
type ViewRowCommand struct {
	ctx *CommandContext
}

// NewViewRowCommand creates a new view row command
func NewViewRowCommand(ctx *CommandContext) *ViewRowCommand {
	return &ViewRowCommand{ctx: ctx}
}

func (c *ViewRowCommand) Label() string { return "View" }

func (c *ViewRowCommand) CanExecute(target any) bool {
	_, ok := rowOf(target)
	return ok && c.ctx.Viewer != nil
}

func (c *ViewRowCommand) Execute(target any) error {
	if !c.CanExecute(target) {
		return ErrCannotExecute
	}
	row, _ := rowOf(target)
	return c.ctx.Viewer.Show("Row "+row.ID, FormatRow(row, c.ctx.Table))
}

// FormatRow renders a row as aligned "title: value" lines in column order.
// Without declared columns the row's own keys are used, sorted.
func FormatRow(row table.Row, tbl *table.Table) string {
	var columns []table.Column
	if tbl != nil {
		columns = tbl.Columns()
	}
	if len(columns) == 0 {
		keys := make([]string, 0, len(row.Values))
		for k := range row.Values {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			columns = append(columns, table.Column{Key: k, Title: k})
		}
	}

	width := 0
	for _, col := range columns {
		width = max(width, len(col.Title)+1)
	}

	var b strings.Builder
	for _, col := range columns {
		fmt.Fprintf(&b, "%-*s %s\n", width, col.Title+":", row.Text(col.Key))
	}
	return b.String()
}

// DeleteRowCommand removes a row from the table
type DeleteRowCommand struct {
	ctx *CommandContext
}

// NewDeleteRowCommand creates a new delete row command
func NewDeleteRowCommand(ctx *CommandContext) *DeleteRowCommand {
	return &DeleteRowCommand{ctx: ctx}
}

func (c *DeleteRowCommand) Label() string { return "Delete" }

func (c *DeleteRowCommand) CanExecute(target any) bool {
	row, ok := rowOf(target)
	if !ok || c.ctx.Table == nil {
		return false
	}
	_, exists := c.ctx.Table.Row(row.ID)
	return exists
}

func (c *DeleteRowCommand) Execute(target any) error {
	if !c.CanExecute(target) {
		return ErrCannotExecute
	}
	row, _ := rowOf(target)
	c.ctx.Table.Delete(row.ID)
	c.ctx.logger().Infow("row deleted", "id", row.ID)
	return nil
}
