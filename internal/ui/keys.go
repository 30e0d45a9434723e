package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	Top         key.Binding
	Bottom      key.Binding
	Sort        key.Binding
	SortMulti   key.Binding
	SortRemove  key.Binding
	SortClear   key.Binding
	Search      key.Binding
	Select      key.Binding
	RowAction   key.Binding
	TableAction key.Binding
	Cancel      key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:        key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev column")),
		Right:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next column")),
		Top:         key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Bottom:      key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
		Sort:        key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort column")),
		SortMulti:   key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "add sort column")),
		SortRemove:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "unsort column")),
		SortClear:   key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "clear sort")),
		Search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Select:      key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select")),
		RowAction:   key.NewBinding(key.WithKeys("enter", "1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("enter/1-9", "row action")),
		TableAction: key.NewBinding(key.WithKeys("f1", "f2", "f3", "f4", "f5", "f6", "f7", "f8", "f9"), key.WithHelp("F1-F9", "table action")),
		Cancel:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Sort, k.SortMulti, k.SortClear, k.Search, k.RowAction, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Top, k.Bottom},
		{k.Sort, k.SortMulti, k.SortRemove, k.SortClear},
		{k.Search, k.Select, k.Cancel},
		{k.RowAction, k.TableAction, k.Help, k.Quit},
	}
}

// actionNumber maps "1".."9" and "f1".."f9" to a zero-based index.
// enter maps to 0.
func actionNumber(keyName string) int {
	switch {
	case keyName == "enter":
		return 0
	case len(keyName) == 1 && keyName[0] >= '1' && keyName[0] <= '9':
		return int(keyName[0] - '1')
	case len(keyName) == 2 && keyName[0] == 'f' && keyName[1] >= '1' && keyName[1] <= '9':
		return int(keyName[1] - '1')
	default:
		return -1
	}
}
