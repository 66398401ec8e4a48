package cli

import (
	"fmt"

	"github.com/alexanderramin/chronos/internal/cli/formatter"
	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func newCancelCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "cancel",
		Short: "Discard the running session without recording it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := app.Ledger.Status()
			if s == nil {
				return domain.ErrNotTracking
			}

			if !yes && app.interactive() {
				confirmed, err := confirmCancel(*s)
				if err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "Kept the session.")
					return nil
				}
			}

			dropped, err := app.Ledger.Cancel()
			if err != nil {
				return err
			}
			app.MarkDirty()

			fmt.Fprintf(cmd.OutOrStdout(), "Discarded %q started at %s.\n",
				dropped.Category, domain.FormatTimestamp(dropped.Start))
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	return cmd
}

// chronosHuhTheme returns a huh theme matching the formatter palette.
func chronosHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func confirmCancel(s domain.Session) (bool, error) {
	confirmed := false
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Discard %q started at %s?",
					s.Category, domain.FormatTimestamp(s.Start))).
				Affirmative("Discard").
				Negative("Keep").
				Value(&confirmed),
		),
	).WithTheme(chronosHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}
