package cli

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"datagrid/internal/commands"
	"datagrid/internal/config"
	"datagrid/internal/events"
	"datagrid/internal/logging"
	"datagrid/internal/settings"
	"datagrid/internal/sorting"
	"datagrid/internal/table"
	"datagrid/internal/ui"
)

// session holds everything one grid needs, loaded from the settings file
type session struct {
	configPath string
	configSvc  config.ConfigService
	file       *config.File
	bus        *events.Bus
	table      *table.Table
	sorting    *sorting.Service
	pager      *ui.Pager
	ctx        *commands.CommandContext
	settings   *settings.Settings
	log        *zap.SugaredLogger
}

// openSession loads settings and data. A missing settings file is created
// with defaults. dataArg overrides the data file named in the settings.
func openSession(configPath, dataArg string, log *zap.SugaredLogger) (*session, error) {
	if log == nil {
		log = logging.Nop()
	}
	bus := events.NewBus()
	configSvc := config.NewConfigServiceForPath(configPath, bus)

	file, err := configSvc.LoadFromPath(configPath)
	if errors.Is(err, config.ErrConfigNotFound) {
		log.Infow("creating settings file", "path", configPath)
		file = config.DefaultFile()
		if err := configSvc.SaveToPath(file, configPath); err != nil {
			log.Warnw("failed to save settings", "path", configPath, "error", err)
		}
	} else if err != nil {
		return nil, err
	}

	dataPath := dataArg
	if dataPath == "" {
		dataPath = file.DataPath(configPath)
	}
	if dataPath == "" {
		return nil, fmt.Errorf("no data file: pass one as argument or set data in %s", configPath)
	}

	tbl, err := table.LoadFile(dataPath)
	if err != nil {
		return nil, err
	}
	log.Infow("data loaded", "path", dataPath, "rows", tbl.Len(), "columns", len(tbl.Columns()))

	svc := sorting.NewService(nil, bus, log)
	pager := ui.NewPager()
	ctx := &commands.CommandContext{
		Table:   tbl,
		Sorting: svc,
		Viewer:  pager,
		Log:     log,
	}

	s, err := file.Settings(commands.NewRegistry(), ctx)
	if err != nil {
		return nil, fmt.Errorf("invalid settings in %s: %w", configPath, err)
	}
	svc.Restore(s.SortDescriptions)
	s.SortDescriptions = svc.Descriptions()
	if s.AutoGenerateColumns {
		tbl.GenerateColumns()
	}

	return &session{
		configPath: configPath,
		configSvc:  configSvc,
		file:       file,
		bus:        bus,
		table:      tbl,
		sorting:    svc,
		pager:      pager,
		ctx:        ctx,
		settings:   s,
		log:        log,
	}, nil
}

// saveSort writes the current sort back to the settings file
func (s *session) saveSort() error {
	s.file.UpdateSort(s.sorting.Snapshot())
	if err := s.configSvc.SaveToPath(s.file, s.configPath); err != nil {
		return err
	}
	s.log.Infow("sort saved", "path", s.configPath, "sort", sorting.FormatList(s.sorting.Descriptions()))
	return nil
}
