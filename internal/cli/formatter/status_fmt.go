package formatter

import (
	"strings"
	"time"

	"github.com/alexanderramin/chronos/internal/domain"
)

// RenderStatus renders the open session as a boxed status card.
func RenderStatus(s domain.Session, now time.Time) string {
	var b strings.Builder
	b.WriteString(TrackingPill() + "  " + Bold(s.Category) + "\n\n")
	b.WriteString(Dim("since   ") + domain.FormatTimestamp(s.Start) + "\n")
	b.WriteString(Dim("elapsed ") + StyleYellow.Render(Elapsed(s.Duration(now))))
	return RenderBox("", b.String()) + "\n"
}
