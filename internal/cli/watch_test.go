package cli

import (
	"testing"
	"time"

	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/alexanderramin/chronos/internal/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func watchSession(start time.Time) domain.Session {
	return domain.Session{Category: "work", Start: start}
}

func TestWatchModel_InitSchedulesTick(t *testing.T) {
	m := newWatchModel(watchSession(testNow), func() time.Time { return testNow })
	assert.NotNil(t, m.Init())
}

func TestWatchModel_QuitKeys(t *testing.T) {
	t.Run("q", func(t *testing.T) {
		d := teatest.New(t, newWatchModel(watchSession(testNow), func() time.Time { return testNow }))
		d.PressKey('q')
		assert.True(t, d.Quitting)
	})

	t.Run("esc", func(t *testing.T) {
		d := teatest.New(t, newWatchModel(watchSession(testNow), func() time.Time { return testNow }))
		d.PressEsc()
		assert.True(t, d.Quitting)
	})

	t.Run("ctrl+c", func(t *testing.T) {
		d := teatest.New(t, newWatchModel(watchSession(testNow), func() time.Time { return testNow }))
		d.PressCtrlC()
		assert.True(t, d.Quitting)
	})
}

func TestWatchModel_OtherKeysIgnored(t *testing.T) {
	d := teatest.New(t, newWatchModel(watchSession(testNow), func() time.Time { return testNow }))
	d.PressKey('x')
	assert.False(t, d.Quitting)
}

func TestWatchModel_TickRefreshesElapsed(t *testing.T) {
	current := testNow
	m := newWatchModel(watchSession(testNow), func() time.Time { return current })
	assert.Contains(t, stripANSI(m.View()), "00:00:00")

	current = testNow.Add(1*time.Minute + 5*time.Second)
	model, cmd := m.Update(tickMsg(current))
	m = model.(watchModel)

	require.NotNil(t, cmd, "tick should schedule the next tick")
	assert.Contains(t, stripANSI(m.View()), "00:01:05")
}

func TestWatchModel_TickThroughDriver(t *testing.T) {
	current := testNow
	d := teatest.New(t, newWatchModel(watchSession(testNow), func() time.Time { return current }))
	d.DrainInit()

	current = testNow.Add(42 * time.Second)
	d.Send(tickMsg(current))

	assert.False(t, d.Quitting)
	assert.Contains(t, stripANSI(d.View()), "00:00:42")
}

func TestWatchModel_ViewShowsSessionAndQuitHint(t *testing.T) {
	m := newWatchModel(watchSession(testNow), func() time.Time { return testNow })

	view := stripANSI(m.View())
	assert.Contains(t, view, "TRACKING")
	assert.Contains(t, view, "work")
	assert.Contains(t, view, "q to quit")
}
