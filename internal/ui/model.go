package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"datagrid/internal/commands"
	"datagrid/internal/events"
	"datagrid/internal/settings"
	"datagrid/internal/sorting"
	"datagrid/internal/table"
)

// Options wires a Model to its collaborators
type Options struct {
	Settings   *settings.Settings
	Table      *table.Table
	Sorting    *sorting.Service
	Pager      *Pager
	Bus        events.EventBus
	Log        *zap.SugaredLogger
	Title      string
	ExportPath string // target handed to table actions
}

// Model is the Bubble Tea model of the grid
type Model struct {
	settings   *settings.Settings
	table      *table.Table
	sorting    *sorting.Service
	pager      *Pager
	log        *zap.SugaredLogger
	title      string
	exportPath string

	keys   keyMap
	help   help.Model
	search textinput.Model
	styles *Styles

	rows      []table.Row
	selected  map[string]bool
	colCursor int
	rowCursor int
	offset    int
	width     int
	height    int

	searching bool
	showHelp  bool
	status    string
	statusErr bool
}

// NewModel creates the grid model and subscribes it to sort changes
func NewModel(opts Options) *Model {
	log := opts.Log
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	pager := opts.Pager
	if pager == nil {
		pager = NewPager()
	}
	title := opts.Title
	if title == "" {
		title = "datagrid"
	}

	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "search"

	m := &Model{
		settings:   opts.Settings,
		table:      opts.Table,
		sorting:    opts.Sorting,
		pager:      pager,
		log:        log,
		title:      title,
		exportPath: opts.ExportPath,
		keys:       newKeyMap(),
		help:       help.New(),
		search:     ti,
		styles:     NewStyles(),
		selected:   make(map[string]bool),
		height:     24,
		width:      80,
	}

	m.sorting.SetEnabled(m.settings.CanSortColumns)
	if m.settings.AutoGenerateColumns {
		m.table.GenerateColumns()
	}

	if opts.Bus != nil {
		opts.Bus.Subscribe(events.TypeOf(sorting.SortChangedEvent{}), func(e interface{}) {
			ev := e.(sorting.SortChangedEvent)
			m.setStatus("Sort: "+sorting.FormatList(ev.Descriptions), false)
			m.refresh()
		})
	}

	m.refresh()
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// Rows returns the rows currently displayed, in display order
func (m *Model) Rows() []table.Row {
	return m.rows
}

// Status returns the status bar message
func (m *Model) Status() string {
	return m.status
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.clampCursor()
		return m, nil

	case pagerClosedMsg:
		if msg.err != nil {
			m.log.Errorw("pager failed", "error", msg.err)
			m.setStatus(fmt.Sprintf("Pager error: %v", msg.err), true)
		}
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.search.SetValue("")
		m.stopSearch()
		return m, nil
	case "enter":
		m.stopSearch()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.refresh()
	return m, cmd
}

func (m *Model) stopSearch() {
	m.searching = false
	m.search.Blur()
	m.refresh()
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
	case key.Matches(msg, m.keys.Up):
		m.moveRow(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveRow(1)
	case key.Matches(msg, m.keys.Top):
		m.moveRow(-len(m.rows))
	case key.Matches(msg, m.keys.Bottom):
		m.moveRow(len(m.rows))
	case key.Matches(msg, m.keys.Left):
		m.moveColumn(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveColumn(1)
	case key.Matches(msg, m.keys.Sort):
		m.sortGesture(func(col string) { m.sorting.Toggle(col, false) })
	case key.Matches(msg, m.keys.SortMulti):
		m.sortGesture(func(col string) { m.sorting.Toggle(col, true) })
	case key.Matches(msg, m.keys.SortRemove):
		m.sortGesture(m.sorting.Remove)
	case key.Matches(msg, m.keys.SortClear):
		m.sortGesture(func(string) { m.sorting.Clear() })
	case key.Matches(msg, m.keys.Search):
		if m.settings.ShowSearchBar {
			m.searching = true
			return m, m.search.Focus()
		}
	case key.Matches(msg, m.keys.Select):
		m.toggleSelection()
	case key.Matches(msg, m.keys.Cancel):
		m.selected = make(map[string]bool)
	case key.Matches(msg, m.keys.RowAction):
		return m, m.runRowAction(actionNumber(msg.String()))
	case key.Matches(msg, m.keys.TableAction):
		return m, m.runTableAction(actionNumber(msg.String()))
	}
	return m, nil
}

func (m *Model) sortGesture(apply func(column string)) {
	if !m.sorting.Enabled() {
		m.setStatus("Sorting is disabled", true)
		return
	}
	col, ok := m.currentColumn()
	if !ok {
		return
	}
	apply(col.Key)
	m.refresh()
}

func (m *Model) toggleSelection() {
	if !m.settings.CanSelectRows {
		return
	}
	row, ok := m.currentRow()
	if !ok {
		return
	}
	if m.selected[row.ID] {
		delete(m.selected, row.ID)
	} else {
		m.selected[row.ID] = true
	}
}

// runRowAction runs a row action on the selected rows, or on the cursor row
// when nothing is selected
func (m *Model) runRowAction(index int) tea.Cmd {
	if index < 0 || index >= len(m.settings.RowActions) {
		return nil
	}
	cmd := m.settings.RowActions[index]

	targets := m.selectedRows()
	if len(targets) == 0 {
		row, ok := m.currentRow()
		if !ok {
			return nil
		}
		targets = []table.Row{row}
	}

	ran := 0
	for _, row := range targets {
		if !cmd.CanExecute(row) {
			continue
		}
		if err := cmd.Execute(row); err != nil {
			m.actionFailed(cmd, err)
			return nil
		}
		ran++
	}
	if ran == 0 {
		m.setStatus(cmd.Label()+" is not available", true)
		return nil
	}

	m.log.Infow("row action", "action", cmd.Label(), "rows", ran)
	m.setStatus(fmt.Sprintf("%s: %d row(s)", cmd.Label(), ran), false)
	m.afterAction()
	return m.pagerCmd()
}

func (m *Model) runTableAction(index int) tea.Cmd {
	if index < 0 || index >= len(m.settings.TableActions) {
		return nil
	}
	cmd := m.settings.TableActions[index]
	if err := cmd.Execute(m.exportPath); err != nil {
		m.actionFailed(cmd, err)
		return nil
	}
	m.log.Infow("table action", "action", cmd.Label())
	m.setStatus(cmd.Label()+" done", false)
	m.afterAction()
	return m.pagerCmd()
}

func (m *Model) actionFailed(cmd commands.Command, err error) {
	if errors.Is(err, commands.ErrCannotExecute) {
		m.setStatus(cmd.Label()+" is not available", true)
		return
	}
	m.log.Errorw("action failed", "action", cmd.Label(), "error", err)
	m.setStatus(fmt.Sprintf("%s failed: %v", cmd.Label(), err), true)
}

// afterAction drops selections of rows that no longer exist
func (m *Model) afterAction() {
	for id := range m.selected {
		if _, ok := m.table.Row(id); !ok {
			delete(m.selected, id)
		}
	}
	m.refresh()
}

func (m *Model) pagerCmd() tea.Cmd {
	if pg := m.pager.take(); pg != nil {
		return pg.cmd()
	}
	return nil
}

func (m *Model) selectedRows() []table.Row {
	var out []table.Row
	for _, row := range m.rows {
		if m.selected[row.ID] {
			out = append(out, row)
		}
	}
	return out
}

// Query returns the current search text
func (m *Model) Query() string {
	if !m.settings.ShowSearchBar {
		return ""
	}
	return m.search.Value()
}

func (m *Model) refresh() {
	m.rows = m.table.View(m.Query(), m.sorting.Descriptions())
	m.clampCursor()
}

func (m *Model) currentColumn() (table.Column, bool) {
	cols := m.table.Columns()
	if m.colCursor < 0 || m.colCursor >= len(cols) {
		return table.Column{}, false
	}
	return cols[m.colCursor], true
}

func (m *Model) currentRow() (table.Row, bool) {
	if m.rowCursor < 0 || m.rowCursor >= len(m.rows) {
		return table.Row{}, false
	}
	return m.rows[m.rowCursor], true
}

func (m *Model) moveRow(delta int) {
	m.rowCursor += delta
	m.clampCursor()
}

func (m *Model) moveColumn(delta int) {
	n := len(m.table.Columns())
	if n == 0 {
		return
	}
	m.colCursor = min(max(m.colCursor+delta, 0), n-1)
}

func (m *Model) clampCursor() {
	m.rowCursor = min(max(m.rowCursor, 0), max(len(m.rows)-1, 0))

	visible := m.visibleRowCount()
	if m.rowCursor < m.offset {
		m.offset = m.rowCursor
	}
	if m.rowCursor >= m.offset+visible {
		m.offset = m.rowCursor - visible + 1
	}
	m.offset = max(m.offset, 0)
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.status = msg
	m.statusErr = isErr
}
