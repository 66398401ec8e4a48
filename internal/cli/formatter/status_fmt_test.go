package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/chronos/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRenderStatus_ShowsCategoryStartAndElapsed(t *testing.T) {
	start := time.Date(2026, 3, 14, 9, 0, 0, 0, time.Local)
	now := start.Add(1*time.Hour + 23*time.Minute + 45*time.Second)
	s := domain.Session{Category: "work", Start: start}

	out := stripANSI(RenderStatus(s, now))
	assert.Contains(t, out, "TRACKING")
	assert.Contains(t, out, "work")
	assert.Contains(t, out, "since")
	assert.Contains(t, out, "2026-03-14T09:00:00")
	assert.Contains(t, out, "elapsed")
	assert.Contains(t, out, "01:23:45")
}

func TestRenderStatus_FreshSessionStartsAtZero(t *testing.T) {
	start := time.Date(2026, 3, 14, 9, 0, 0, 0, time.Local)
	s := domain.Session{Category: "reading", Start: start}

	out := stripANSI(RenderStatus(s, start))
	assert.Contains(t, out, "reading")
	assert.Contains(t, out, "00:00:00")
}
