package cli

import (
	"fmt"

	"github.com/alexanderramin/chronos/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the running session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := app.Ledger.Status()
			if s == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No session is being tracked.")
				return nil
			}

			if watch && app.interactive() {
				return runWatch(cmd, *s, app.now)
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderStatus(*s, app.now()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "Refresh the elapsed time every second")

	return cmd
}
