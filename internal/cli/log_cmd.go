package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/chronos/internal/cli/formatter"
	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/alexanderramin/chronos/internal/report"
	"github.com/spf13/cobra"
)

// dateLayout selects a single calendar day in log arguments.
const dateLayout = "2006-01-02"

func newLogCmd(app *App) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "log [DAY|RANGE]",
		Short: "List finished sessions, most recent first",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			label := string(report.RangeToday)
			if len(args) > 0 {
				label = args[0]
			}

			sessions, err := selectLog(app.Ledger, label, app.now())
			if err != nil {
				return err
			}

			if category != "" {
				if !app.Ledger.HasCategory(category) {
					return fmt.Errorf("category %q: %w", category, domain.ErrUnknownCategory)
				}
				sessions = report.OnlyCategory(sessions, category)
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderLog(label, sessions))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Limit the log to one category")

	return cmd
}

// selectLog resolves the positional selector: a range keyword or an explicit
// calendar date.
func selectLog(led *domain.Ledger, selector string, now time.Time) ([]domain.Session, error) {
	if r, err := report.ParseRange(selector); err == nil {
		return report.Log(led, r, now), nil
	}

	day, err := time.ParseInLocation(dateLayout, selector, time.Local)
	if err != nil {
		return nil, fmt.Errorf("unknown selector %q: expected a range keyword or a %s date", selector, dateLayout)
	}
	return report.DayLog(led, day), nil
}
