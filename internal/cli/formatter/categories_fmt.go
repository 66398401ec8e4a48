package formatter

import (
	"fmt"
	"strings"
)

// RenderCategories renders the registered categories in registration order.
func RenderCategories(names []string) string {
	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(Dim(fmt.Sprintf("%2d.", i+1)) + " " + name)
	}
	return RenderBox("Categories", b.String()) + "\n"
}
