package cli

import (
	"time"

	"github.com/alexanderramin/chronos/internal/cli/formatter"
	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// tickMsg carries the wall clock time of a one-second refresh tick.
type tickMsg time.Time

type watchKeys struct {
	Quit key.Binding
}

func newWatchKeys() watchKeys {
	return watchKeys{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// watchModel renders the running session and refreshes it once a second
// until the user quits.
type watchModel struct {
	session domain.Session
	now     func() time.Time
	keys    watchKeys
	current time.Time
}

func newWatchModel(s domain.Session, now func() time.Time) watchModel {
	return watchModel{
		session: s,
		now:     now,
		keys:    newWatchKeys(),
		current: now(),
	}
}

func watchTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m watchModel) Init() tea.Cmd {
	return watchTick()
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
	case tickMsg:
		m.current = m.now()
		return m, watchTick()
	}
	return m, nil
}

func (m watchModel) View() string {
	return formatter.RenderStatus(m.session, m.current) + formatter.Dim("q to quit") + "\n"
}

func runWatch(cmd *cobra.Command, s domain.Session, now func() time.Time) error {
	p := tea.NewProgram(
		newWatchModel(s, now),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	_, err := p.Run()
	return err
}
