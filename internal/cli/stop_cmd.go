package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/chronos/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStopCmd(app *App) *cobra.Command {
	var at timeValue

	cmd := &cobra.Command{
		Use:   "stop [DESCRIPTION]",
		Short: "Stop the running session",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			end := app.now()
			if cmd.Flags().Changed("at") {
				end = time.Time(at)
			}
			description := ""
			if len(args) > 0 {
				description = args[0]
			}

			s, err := app.Ledger.Stop(end, description)
			if err != nil {
				return err
			}
			app.MarkDirty()

			fmt.Fprintf(cmd.OutOrStdout(), "Stopped %q after %s.\n",
				s.Category, formatter.FormatDuration(s.End.Sub(s.Start)))
			return nil
		},
	}

	cmd.Flags().Var(&at, "at", "End time (yyyy-mm-ddThh:mm:ss), default now")

	return cmd
}
