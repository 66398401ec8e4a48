package formatter

import (
	"time"
)

// RenderSummary renders per-category totals as a boxed table. Categories keep
// their registration order; idle ones show a dimmed zero.
func RenderSummary(rangeLabel string, names []string, totals map[string]time.Duration) string {
	rows := make([][]string, 0, len(names)+1)
	var total time.Duration
	for _, name := range names {
		d := totals[name]
		total += d
		cell := FormatDuration(d)
		if d == 0 {
			cell = Dim(cell)
		}
		rows = append(rows, []string{name, cell})
	}
	rows = append(rows, []string{Bold("total"), Bold(FormatDuration(total))})
	return RenderBox("Summary ("+rangeLabel+")", RenderTable([]string{"CATEGORY", "TRACKED"}, rows)) + "\n"
}
