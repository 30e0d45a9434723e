package settings

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/go-playground/validator.v9"

	"datagrid/internal/commands"
	"datagrid/internal/sorting"
)

// ErrInvalidSettings is returned by Build when required options are missing
var ErrInvalidSettings = errors.New("invalid grid settings")

// RowActionsPosition is where row action buttons are placed
type RowActionsPosition string

const (
	RowActionsStart RowActionsPosition = "start"
	RowActionsEnd   RowActionsPosition = "end"
)

// Settings describes how a grid behaves
type Settings struct {
	AutoGenerateColumns bool
	CanResizeColumns    bool
	CanResizeRows       bool
	CanReorderColumns   bool
	CanSortColumns      bool
	StickyHeaders       bool
	SortDescriptions    *sorting.Descriptions
	TableActions        []commands.Command
	RowActions          []commands.Command
	RowActionsPosition  RowActionsPosition
	ShowSearchBar       bool
	CanSelectRows       bool
}

// Options holds settings before validation. Nil means "not set".
type Options struct {
	AutoGenerateColumns *bool
	CanResizeColumns    *bool
	CanResizeRows       *bool
	CanReorderColumns   *bool
	CanSortColumns      *bool
	StickyHeaders       *bool
	SortDescriptions    *sorting.Descriptions
	TableActions        []commands.Command
	RowActions          []commands.Command
	RowActionsPosition  *RowActionsPosition `validate:"required,oneof=start end"`
	ShowSearchBar       *bool
	CanSelectRows       *bool
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(requiredFlags, Options{})
	return v
}

// requiredFlags rejects unset flags that have no sensible default
func requiredFlags(sl validator.StructLevel) {
	o := sl.Current().Interface().(Options)
	if o.ShowSearchBar == nil {
		sl.ReportError(o.ShowSearchBar, "ShowSearchBar", "ShowSearchBar", "required", "")
	}
	if o.CanSelectRows == nil {
		sl.ReportError(o.CanSelectRows, "CanSelectRows", "CanSelectRows", "required", "")
	}
}

// Validate checks that every required option is set
func (o Options) Validate() error {
	err := validate.Struct(o)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Tag() == "oneof" {
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s is %s", fe.Field(), fe.Tag()))
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalidSettings, strings.Join(msgs, "; "))
}

// Builder assembles Settings one option at a time
type Builder struct {
	opts Options
}

// NewBuilder creates an empty builder
func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) AutoGenerateColumns(v bool) *Builder { b.opts.AutoGenerateColumns = &v; return b }
func (b *Builder) CanResizeColumns(v bool) *Builder    { b.opts.CanResizeColumns = &v; return b }
func (b *Builder) CanResizeRows(v bool) *Builder       { b.opts.CanResizeRows = &v; return b }
func (b *Builder) CanReorderColumns(v bool) *Builder   { b.opts.CanReorderColumns = &v; return b }
func (b *Builder) CanSortColumns(v bool) *Builder      { b.opts.CanSortColumns = &v; return b }
func (b *Builder) StickyHeaders(v bool) *Builder       { b.opts.StickyHeaders = &v; return b }
func (b *Builder) ShowSearchBar(v bool) *Builder       { b.opts.ShowSearchBar = &v; return b }
func (b *Builder) CanSelectRows(v bool) *Builder       { b.opts.CanSelectRows = &v; return b }

func (b *Builder) RowActionsPosition(p RowActionsPosition) *Builder {
	b.opts.RowActionsPosition = &p
	return b
}

func (b *Builder) SortDescriptions(d *sorting.Descriptions) *Builder {
	b.opts.SortDescriptions = d
	return b
}

func (b *Builder) TableActions(cmds ...commands.Command) *Builder {
	b.opts.TableActions = cmds
	return b
}

func (b *Builder) RowActions(cmds ...commands.Command) *Builder {
	b.opts.RowActions = cmds
	return b
}

// Options returns the options collected so far
func (b *Builder) Options() Options {
	return b.opts
}

// Build validates the options and returns the finished settings
func (b *Builder) Build() (*Settings, error) {
	return New(b.opts)
}

// New validates opts and fills in defaults
func New(opts Options) (*Settings, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	s := &Settings{
		AutoGenerateColumns: valueOr(opts.AutoGenerateColumns, true),
		CanResizeColumns:    valueOr(opts.CanResizeColumns, false),
		CanResizeRows:       valueOr(opts.CanResizeRows, false),
		CanReorderColumns:   valueOr(opts.CanReorderColumns, false),
		CanSortColumns:      valueOr(opts.CanSortColumns, false),
		StickyHeaders:       valueOr(opts.StickyHeaders, false),
		SortDescriptions:    opts.SortDescriptions,
		TableActions:        opts.TableActions,
		RowActions:          opts.RowActions,
		RowActionsPosition:  *opts.RowActionsPosition,
		ShowSearchBar:       *opts.ShowSearchBar,
		CanSelectRows:       *opts.CanSelectRows,
	}
	if s.SortDescriptions == nil {
		s.SortDescriptions = &sorting.Descriptions{}
	}
	if s.TableActions == nil {
		s.TableActions = []commands.Command{}
	}
	if s.RowActions == nil {
		s.RowActions = []commands.Command{}
	}
	return s, nil
}

func valueOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
