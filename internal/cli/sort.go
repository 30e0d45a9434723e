package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"datagrid/internal/config"
)

var sortCmd = &cobra.Command{
	Use:   "sort",
	Short: "Print the saved sort order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := config.NewConfigServiceForPath(settingsPath, nil).LoadFromPath(settingsPath)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(f.Sort) == 0 {
			fmt.Fprintln(out, "No sort")
			return nil
		}
		descs := f.Descriptions()
		for _, d := range descs.All() {
			fmt.Fprintf(out, "%d. %s %s\n", descs.Index(d.Column), d.Column, d.Direction)
		}
		return nil
	},
}
