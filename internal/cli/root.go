package cli

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	settingsPath string
	logPath      string
)

// rootCmd runs the grid TUI
var rootCmd = &cobra.Command{
	Use:     "datagrid [data-file]",
	Version: "dev",
	Short:   "Sortable data grid for TOML data files",
	Long: `datagrid shows the rows of a TOML data file in a terminal grid.

Columns can be sorted by several keys at once. The active sort is stored in
the settings file and restored on the next run.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	RunE: runGrid,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&settingsPath, "settings", "c", ".datagrid.toml", "settings file (.toml, .yaml or .yml)")
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "datagrid.log", "log file")

	rootCmd.AddCommand(sortCmd)
	rootCmd.AddCommand(exportCmd)
}

// SetVersion sets the version printed by --version
func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
