package formatter

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ansiPattern matches ANSI escape sequences for stripping before
// layout assertions.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI removes ANSI escape codes so alignment checks are
// terminal-independent.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestRenderTable_AlignsColumnsToWidestCell(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"CATEGORY", "TRACKED"},
		[][]string{
			{"work", "2h 15m"},
			{"deep focus time", "45m"},
		},
	))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)

	// Second column starts at the same offset on every line.
	offset := strings.Index(lines[0], "TRACKED")
	assert.Equal(t, offset, strings.Index(lines[2], "2h 15m"))
	assert.Equal(t, offset, strings.Index(lines[3], "45m"))

	// Separator spans the widest cell of each column.
	assert.Contains(t, lines[1], strings.Repeat("─", len("deep focus time")))
}

func TestRenderTable_StyledCellsMeasuredWithoutEscapes(t *testing.T) {
	styled := StyleBlue.Render("work")
	out := stripANSI(RenderTable(
		[]string{"CATEGORY", "TRACKED"},
		[][]string{{styled, "2h"}},
	))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	offset := strings.Index(lines[0], "TRACKED")
	assert.Equal(t, offset, strings.Index(lines[2], "2h"))
}

func TestRenderTable_MissingCellsRenderEmpty(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"START", "END", "DURATION"},
		[][]string{{"2026-03-14T09:00:00", "", "0s"}},
	))

	assert.Contains(t, out, "2026-03-14T09:00:00")
	assert.Contains(t, out, "0s")
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"orphan"}}))
}

func TestRenderBox_UppercasesTitle(t *testing.T) {
	out := stripANSI(RenderBox("Summary (today)", "body"))
	assert.Contains(t, out, "SUMMARY (TODAY)")
	assert.Contains(t, out, "body")
	assert.Contains(t, out, "╭")
	assert.Contains(t, out, "╰")
}

func TestRenderBox_NoTitle(t *testing.T) {
	out := stripANSI(RenderBox("", "just content"))
	assert.Contains(t, out, "just content")

	// One content line plus border and padding, no title rows.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 5)
}
