package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"datagrid/internal/settings"
	"datagrid/internal/sorting"
	"datagrid/internal/table"
)

const (
	maxColumnWidth = 30
	minColumnWidth = 4
	selectionWidth = 2
)

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(m.title))
	b.WriteString(m.styles.Status.Render(fmt.Sprintf("  %d/%d rows", len(m.rows), m.table.Len())))
	b.WriteString("\n")

	if m.settings.ShowSearchBar {
		if m.searching || m.search.Value() != "" {
			b.WriteString(m.styles.Search.Render(m.search.View()))
		} else {
			b.WriteString(m.styles.Dim.Render("/ to search"))
		}
		b.WriteString("\n")
	}

	columns := m.table.Columns()
	if len(columns) == 0 {
		b.WriteString(m.styles.Dim.Render("No columns to display"))
		b.WriteString("\n")
	} else {
		widths := m.columnWidths(columns)
		// Headers scroll away with the rows unless they are sticky
		if m.settings.StickyHeaders || m.offset == 0 {
			b.WriteString(m.renderHeader(columns, widths))
			b.WriteString("\n")
		}
		end := min(m.offset+m.visibleRowCount(), len(m.rows))
		for i := m.offset; i < end; i++ {
			b.WriteString(m.renderRow(i, columns, widths))
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		style := m.styles.Status
		if m.statusErr {
			style = m.styles.StatusError
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render(m.help.View(m.keys)))
	return b.String()
}

// SortIndicator returns the header suffix for a column: an arrow for the
// direction and, when more than one column is sorted, the 1-based precedence.
func SortIndicator(svc *sorting.Service, column string) string {
	dir, index, ok := svc.Indicator(column)
	if !ok {
		return ""
	}
	arrow := "▲"
	if dir == sorting.Descending {
		arrow = "▼"
	}
	if svc.Descriptions().Len() > 1 {
		return fmt.Sprintf("%s%d", arrow, index)
	}
	return arrow
}

func (m *Model) renderHeader(columns []table.Column, widths []int) string {
	cells := make([]string, 0, len(columns))
	for i, col := range columns {
		title := col.Title
		mark := SortIndicator(m.sorting, col.Key)
		style := m.styles.Header
		if i == m.colCursor {
			style = m.styles.HeaderActive
		}
		w := widths[i]
		if mark != "" {
			markWidth := lipgloss.Width(mark) + 1
			cells = append(cells, fit(style, title, max(w-markWidth, 1))+" "+m.styles.SortMark.Render(mark))
		} else {
			cells = append(cells, fit(style, title, w))
		}
	}
	return m.withActions(strings.Repeat(" ", selectionWidth), strings.Join(cells, " "), m.styles.Header.Render("Actions"))
}

func (m *Model) renderRow(i int, columns []table.Column, widths []int) string {
	row := m.rows[i]
	cells := make([]string, 0, len(columns))
	for c, col := range columns {
		cells = append(cells, fit(m.styles.Cell, row.Text(col.Key), widths[c]))
	}

	mark := "  "
	if m.selected[row.ID] {
		mark = m.styles.Selected.Render("● ")
	}

	line := m.withActions(mark, strings.Join(cells, " "), m.renderActions(row))
	if i == m.rowCursor {
		return m.styles.CursorRow.Render(line)
	}
	return line
}

func (m *Model) renderActions(row table.Row) string {
	labels := make([]string, 0, len(m.settings.RowActions))
	for n, cmd := range m.settings.RowActions {
		label := fmt.Sprintf("[%d %s]", n+1, cmd.Label())
		if cmd.CanExecute(row) {
			labels = append(labels, m.styles.Action.Render(label))
		} else {
			labels = append(labels, m.styles.ActionDim.Render(label))
		}
	}
	return strings.Join(labels, " ")
}

// withActions places the row action column before or after the cells
func (m *Model) withActions(mark, cells, actions string) string {
	if len(m.settings.RowActions) == 0 {
		return mark + cells
	}
	if m.settings.RowActionsPosition == settings.RowActionsStart {
		return mark + actions + "  " + cells
	}
	return mark + cells + "  " + actions
}

func (m *Model) columnWidths(columns []table.Column) []int {
	widths := make([]int, len(columns))
	for i, col := range columns {
		if col.Width > 0 {
			widths[i] = col.Width
			continue
		}
		// room for the title plus a sort mark like "▼2"
		w := lipgloss.Width(col.Title) + 3
		for _, row := range m.rows {
			w = max(w, lipgloss.Width(row.Text(col.Key)))
		}
		widths[i] = min(max(w, minColumnWidth), maxColumnWidth)
	}
	return widths
}

func (m *Model) visibleRowCount() int {
	chrome := 3 // title, header, help
	if m.settings.ShowSearchBar {
		chrome++
	}
	if m.status != "" {
		chrome++
	}
	if m.showHelp {
		chrome += 5
	}
	return max(m.height-chrome, 1)
}
