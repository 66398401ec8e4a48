package formatter

import (
	"time"

	"github.com/alexanderramin/chronos/internal/domain"
)

// RenderLog renders finished sessions as a boxed table, one row per session
// in the order given.
func RenderLog(label string, sessions []domain.Session) string {
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		end := ""
		var length time.Duration
		if s.End != nil {
			end = domain.FormatTimestamp(*s.End)
			length = s.End.Sub(s.Start)
		}
		desc := s.Description
		if desc == "" {
			desc = Dim("--")
		}
		rows = append(rows, []string{
			domain.FormatTimestamp(s.Start),
			end,
			FormatDuration(length),
			StyleBlue.Render(s.Category),
			desc,
		})
	}
	return RenderBox("Log ("+label+")", RenderTable([]string{"START", "END", "DURATION", "CATEGORY", "DESCRIPTION"}, rows)) + "\n"
}
