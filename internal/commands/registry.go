package commands

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownCommand is returned when a settings file names a command
// that is not registered
var ErrUnknownCommand = errors.New("unknown command")

// Factory builds a command bound to a context
type Factory func(ctx *CommandContext) Command

// Registry maps settings names to command factories
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates a registry with the built-in commands
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]Factory)}
	r.Register("clear-sort", func(ctx *CommandContext) Command { return NewClearSortCommand(ctx) })
	r.Register("export", func(ctx *CommandContext) Command { return NewExportCommand(ctx) })
	r.Register("view", func(ctx *CommandContext) Command { return NewViewRowCommand(ctx) })
	r.Register("delete", func(ctx *CommandContext) Command { return NewDeleteRowCommand(ctx) })
	return r
}

// Register adds or replaces a factory
func (r *Registry) Register(name string, f Factory) {
	r.factories[name] = f
}

// Names returns the registered names, sorted
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve builds the named commands in order
func (r *Registry) Resolve(ctx *CommandContext, names []string) ([]Command, error) {
	cmds := make([]Command, 0, len(names))
	for _, name := range names {
		f, ok := r.factories[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
		}
		cmds = append(cmds, f(ctx))
	}
	return cmds, nil
}
