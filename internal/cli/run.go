package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"datagrid/internal/logging"
	"datagrid/internal/ui"
)

func runGrid(cmd *cobra.Command, args []string) error {
	log, err := logging.New(logPath)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	var dataArg string
	if len(args) > 0 {
		dataArg = args[0]
	}

	sess, err := openSession(settingsPath, dataArg, log)
	if err != nil {
		log.Errorw("failed to open grid", "error", err)
		return err
	}

	model := ui.NewModel(ui.Options{
		Settings:   sess.settings,
		Table:      sess.table,
		Sorting:    sess.sorting,
		Pager:      sess.pager,
		Bus:        sess.bus,
		Log:        log,
		Title:      "datagrid",
		ExportPath: "datagrid-export.json",
	})
	sess.ctx.Query = model.Query

	log.Infow("starting UI")
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Errorw("error running program", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}
	log.Infow("UI exited normally")

	return sess.saveSort()
}
