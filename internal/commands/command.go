package commands

import (
	"errors"
	"io"

	"go.uber.org/zap"

	"datagrid/internal/sorting"
	"datagrid/internal/table"
)

// ErrCannotExecute is returned by Execute when CanExecute is false
var ErrCannotExecute = errors.New("command cannot execute")

// Command is a labelled row or table action
type Command interface {
	Label() string
	Execute(target any) error
	CanExecute(target any) bool
}

// Viewer shows a block of text to the user
type Viewer interface {
	Show(title, content string) error
}

// CommandContext provides context for command execution
type CommandContext struct {
	Table   *table.Table
	Sorting *sorting.Service
	Viewer  Viewer
	Out     io.Writer
	Query   func() string // current search bar text, may be nil
	Log     *zap.SugaredLogger
}

func (c *CommandContext) logger() *zap.SugaredLogger {
	if c.Log == nil {
		return zap.NewNop().Sugar()
	}
	return c.Log
}

func (c *CommandContext) visibleRows() []table.Row {
	query := ""
	if c.Query != nil {
		query = c.Query()
	}
	var descs *sorting.Descriptions
	if c.Sorting != nil {
		descs = c.Sorting.Descriptions()
	}
	return c.Table.View(query, descs)
}

// Func is a command built from two function values
type Func struct {
	Name         string
	ExecuteFn    func(target any) error
	CanExecuteFn func(target any) bool
}

func (f Func) Label() string {
	return f.Name
}

// CanExecute reports true when no predicate is set
func (f Func) CanExecute(target any) bool {
	if f.CanExecuteFn == nil {
		return true
	}
	return f.CanExecuteFn(target)
}

func (f Func) Execute(target any) error {
	if !f.CanExecute(target) {
		return ErrCannotExecute
	}
	if f.ExecuteFn == nil {
		return nil
	}
	return f.ExecuteFn(target)
}

// rowOf extracts a row from a command target
func rowOf(target any) (table.Row, bool) {
	switch r := target.(type) {
	case table.Row:
		return r, true
	case *table.Row:
		if r == nil {
			return table.Row{}, false
		}
		return *r, true
	default:
		return table.Row{}, false
	}
}
