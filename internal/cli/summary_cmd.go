package cli

import (
	"fmt"

	"github.com/alexanderramin/chronos/internal/cli/formatter"
	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/alexanderramin/chronos/internal/report"
	"github.com/spf13/cobra"
)

func newSummaryCmd(app *App) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "summary [RANGE]",
		Short: "Show tracked totals per category",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := report.RangeAll
			if len(args) > 0 {
				var err error
				if r, err = report.ParseRange(args[0]); err != nil {
					return err
				}
			}

			names := app.Ledger.Categories
			if category != "" {
				if !app.Ledger.HasCategory(category) {
					return fmt.Errorf("category %q: %w", category, domain.ErrUnknownCategory)
				}
				names = []string{category}
			}

			totals := report.Totals(app.Ledger, r, app.now())
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderSummary(string(r), names, totals))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Limit the summary to one category")

	return cmd
}
