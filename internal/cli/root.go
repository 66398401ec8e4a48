package cli

import (
	"time"

	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/spf13/cobra"
)

// App holds the ledger and environment hooks used by CLI commands.
type App struct {
	Ledger *domain.Ledger

	// Now supplies the current time. Nil means time.Now.
	Now func() time.Time

	// IsInteractive reports whether stdin and stdout are attached to a
	// terminal. Nil means non-interactive.
	IsInteractive func() bool

	dirty bool
}

// MarkDirty records that a command changed the ledger and it needs saving.
func (a *App) MarkDirty() {
	a.dirty = true
}

// Dirty reports whether the ledger changed since it was loaded.
func (a *App) Dirty() bool {
	return a.dirty
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "chronos" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "chronos",
		Short:         "Track where your time goes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newCategoryCmd(app),
		newStartCmd(app),
		newStopCmd(app),
		newStatusCmd(app),
		newCancelCmd(app),
		newAddCmd(app),
		newSummaryCmd(app),
		newLogCmd(app),
	)

	return root
}
