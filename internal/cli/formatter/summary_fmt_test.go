package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRenderSummary_KeepsRegistrationOrderAndTotals(t *testing.T) {
	names := []string{"work", "reading", "exercise"}
	totals := map[string]time.Duration{
		"work":     2 * time.Hour,
		"reading":  30 * time.Minute,
		"exercise": 0,
	}

	out := stripANSI(RenderSummary("week", names, totals))
	assert.Contains(t, out, "SUMMARY (WEEK)")
	assert.Contains(t, out, "CATEGORY")
	assert.Contains(t, out, "TRACKED")
	assert.Contains(t, out, "2h")
	assert.Contains(t, out, "30m")
	assert.Contains(t, out, "total")
	assert.Contains(t, out, "2h 30m")

	// Rows follow the order categories were registered in.
	assert.Less(t, strings.Index(out, "work"), strings.Index(out, "reading"))
	assert.Less(t, strings.Index(out, "reading"), strings.Index(out, "exercise"))
}

func TestRenderSummary_IdleCategoryShowsZero(t *testing.T) {
	out := stripANSI(RenderSummary("today", []string{"work"}, map[string]time.Duration{"work": 0}))
	assert.Contains(t, out, "work")
	assert.Contains(t, out, "0s")
}

func TestRenderSummary_NoCategories(t *testing.T) {
	out := stripANSI(RenderSummary("all", nil, nil))
	assert.Contains(t, out, "SUMMARY (ALL)")
	assert.Contains(t, out, "total")
	assert.Contains(t, out, "0s")
}
