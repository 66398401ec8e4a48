package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/spf13/cobra"
)

func newStartCmd(app *App) *cobra.Command {
	var at timeValue

	cmd := &cobra.Command{
		Use:   "start CATEGORY",
		Short: "Start tracking a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := app.now()
			if cmd.Flags().Changed("at") {
				start = time.Time(at)
			}

			if err := app.Ledger.Start(args[0], start); err != nil {
				return err
			}
			app.MarkDirty()

			s := app.Ledger.Status()
			fmt.Fprintf(cmd.OutOrStdout(), "Tracking %q since %s.\n",
				s.Category, domain.FormatTimestamp(s.Start))
			return nil
		},
	}

	cmd.Flags().Var(&at, "at", "Start time (yyyy-mm-ddThh:mm:ss), default now")

	return cmd
}
