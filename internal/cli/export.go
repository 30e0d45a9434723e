package cli

import (
	"github.com/spf13/cobra"

	"datagrid/internal/commands"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export [data-file]",
	Short: "Write the rows, in saved sort order, as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var dataArg string
		if len(args) > 0 {
			dataArg = args[0]
		}
		sess, err := openSession(settingsPath, dataArg, nil)
		if err != nil {
			return err
		}
		sess.ctx.Out = cmd.OutOrStdout()

		export := commands.NewExportCommand(sess.ctx)
		if exportOut != "" {
			return export.Execute(exportOut)
		}
		return export.Execute(nil)
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default stdout)")
}
