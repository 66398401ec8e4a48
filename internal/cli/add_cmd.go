package cli

import (
	"fmt"

	"github.com/alexanderramin/chronos/internal/cli/formatter"
	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/spf13/cobra"
)

func newAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add CATEGORY START END [DESCRIPTION]",
		Short: "Record a finished session after the fact",
		Args:  cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := domain.ParseTimestamp(args[1])
			if err != nil {
				return err
			}
			end, err := domain.ParseTimestamp(args[2])
			if err != nil {
				return err
			}
			description := ""
			if len(args) > 3 {
				description = args[3]
			}

			if err := app.Ledger.Record(args[0], start, end, description); err != nil {
				return err
			}
			app.MarkDirty()

			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s of %q.\n",
				formatter.FormatDuration(end.Sub(start)), args[0])
			return nil
		},
	}
}
