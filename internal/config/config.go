package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"sigs.k8s.io/yaml"

	"datagrid/internal/commands"
	"datagrid/internal/events"
	"datagrid/internal/settings"
	"datagrid/internal/sorting"
)

var (
	// ErrConfigNotFound is returned by LoadFromPath for a missing file
	ErrConfigNotFound = errors.New("config file not found")
	// ErrUnsupportedFormat is returned for file extensions other than toml/yaml/yml
	ErrUnsupportedFormat = errors.New("unsupported config format")
)

// File is the on-disk form of grid settings
type File struct {
	Version int                   `toml:"version" json:"version"`
	Data    string                `toml:"data,omitempty" json:"data,omitempty"` // data file, relative to the config file
	Grid    GridSettings          `toml:"grid" json:"grid"`
	Sort    []sorting.Description `toml:"sort,omitempty" json:"sort,omitempty"`
}

// GridSettings mirrors settings.Options with command names instead of commands
type GridSettings struct {
	AutoGenerateColumns *bool    `toml:"auto_generate_columns,omitempty" json:"auto_generate_columns,omitempty"`
	CanResizeColumns    *bool    `toml:"can_resize_columns,omitempty" json:"can_resize_columns,omitempty"`
	CanResizeRows       *bool    `toml:"can_resize_rows,omitempty" json:"can_resize_rows,omitempty"`
	CanReorderColumns   *bool    `toml:"can_reorder_columns,omitempty" json:"can_reorder_columns,omitempty"`
	CanSortColumns      *bool    `toml:"can_sort_columns,omitempty" json:"can_sort_columns,omitempty"`
	StickyHeaders       *bool    `toml:"sticky_headers,omitempty" json:"sticky_headers,omitempty"`
	TableActions        []string `toml:"table_actions,omitempty" json:"table_actions,omitempty"`
	RowActions          []string `toml:"row_actions,omitempty" json:"row_actions,omitempty"`
	RowActionsPosition  string   `toml:"row_actions_position,omitempty" json:"row_actions_position,omitempty"`
	ShowSearchBar       *bool    `toml:"show_search_bar,omitempty" json:"show_search_bar,omitempty"`
	CanSelectRows       *bool    `toml:"can_select_rows,omitempty" json:"can_select_rows,omitempty"`
}

// SettingsLoadedEvent is published after a config file is read
type SettingsLoadedEvent struct {
	Path string
}

// SettingsSavedEvent is published after a config file is written
type SettingsSavedEvent struct {
	Path string
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*File, error)
	Save(f *File) error
	LoadFromPath(path string) (*File, error)
	SaveToPath(f *File, path string) error
}

type configService struct {
	bus      events.EventBus
	filePath string
}

// NewConfigService creates a config service for the default settings path
func NewConfigService(bus events.EventBus) ConfigService {
	return NewConfigServiceForPath(DefaultPath(), bus)
}

// NewConfigServiceForPath creates a config service whose Load and Save use path
func NewConfigServiceForPath(path string, bus events.EventBus) ConfigService {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &configService{bus: bus, filePath: path}
}

// DefaultPath returns the per-user settings file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "datagrid", "settings.toml")
}

// Load reads the service's file, returning defaults when it does not exist
func (cs *configService) Load() (*File, error) {
	f, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, ErrConfigNotFound) {
		return DefaultFile(), nil
	}
	return f, err
}

// Save writes the service's file
func (cs *configService) Save(f *File) error {
	return cs.SaveToPath(f, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*File, error) {
	unmarshal, _, err := codecFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var f File
	if err := unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cs.bus.Publish(SettingsLoadedEvent{Path: path})
	return &f, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(f *File, path string) error {
	_, marshal, err := codecFor(path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	cs.bus.Publish(SettingsSavedEvent{Path: path})
	return nil
}

type (
	unmarshalFunc func([]byte, interface{}) error
	marshalFunc   func(interface{}) ([]byte, error)
)

func codecFor(path string) (unmarshalFunc, marshalFunc, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Unmarshal, toml.Marshal, nil
	case ".yaml", ".yml":
		return func(data []byte, v interface{}) error { return yaml.Unmarshal(data, v) }, yaml.Marshal, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// DefaultFile returns the configuration used on first run
func DefaultFile() *File {
	yes := true
	return &File{
		Version: 1,
		Grid: GridSettings{
			AutoGenerateColumns: &yes,
			CanSortColumns:      &yes,
			StickyHeaders:       &yes,
			TableActions:        []string{"clear-sort", "export"},
			RowActions:          []string{"view", "delete"},
			RowActionsPosition:  string(settings.RowActionsEnd),
			ShowSearchBar:       &yes,
			CanSelectRows:       &yes,
		},
	}
}

// Descriptions returns the persisted sort as a new collection
func (f *File) Descriptions() *sorting.Descriptions {
	return sorting.NewDescriptions(f.Sort...)
}

// UpdateSort replaces the persisted sort with a copy of descs
func (f *File) UpdateSort(descs *sorting.Descriptions) {
	f.Sort = descs.Clone().All()
}

// Settings resolves command names through reg and validates the result
func (f *File) Settings(reg *commands.Registry, ctx *commands.CommandContext) (*settings.Settings, error) {
	for i, d := range f.Sort {
		if d.Column == "" {
			return nil, fmt.Errorf("sort entry %d has no column", i+1)
		}
		if !d.Direction.Valid() {
			return nil, fmt.Errorf("sort entry %d (%s) has no direction", i+1, d.Column)
		}
	}

	tableActions, err := reg.Resolve(ctx, f.Grid.TableActions)
	if err != nil {
		return nil, fmt.Errorf("table actions: %w", err)
	}
	rowActions, err := reg.Resolve(ctx, f.Grid.RowActions)
	if err != nil {
		return nil, fmt.Errorf("row actions: %w", err)
	}

	opts := settings.Options{
		AutoGenerateColumns: f.Grid.AutoGenerateColumns,
		CanResizeColumns:    f.Grid.CanResizeColumns,
		CanResizeRows:       f.Grid.CanResizeRows,
		CanReorderColumns:   f.Grid.CanReorderColumns,
		CanSortColumns:      f.Grid.CanSortColumns,
		StickyHeaders:       f.Grid.StickyHeaders,
		SortDescriptions:    f.Descriptions(),
		TableActions:        tableActions,
		RowActions:          rowActions,
		ShowSearchBar:       f.Grid.ShowSearchBar,
		CanSelectRows:       f.Grid.CanSelectRows,
	}
	if f.Grid.RowActionsPosition != "" {
		pos := settings.RowActionsPosition(strings.ToLower(f.Grid.RowActionsPosition))
		opts.RowActionsPosition = &pos
	}
	return settings.New(opts)
}

// DataPath resolves the data file relative to the config file location
func (f *File) DataPath(configPath string) string {
	if f.Data == "" || filepath.IsAbs(f.Data) {
		return f.Data
	}
	return filepath.Join(filepath.Dir(configPath), f.Data)
}
