package formatter

import (
	"github.com/charmbracelet/lipgloss"
)

// Nord-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#a3be8c")
	ColorYellow = lipgloss.Color("#ebcb8b")
	ColorRed    = lipgloss.Color("#bf616a")
	ColorBlue   = lipgloss.Color("#81a1c1")
	ColorDim    = lipgloss.Color("#616e88")
	ColorFg     = lipgloss.Color("#eceff4")
	ColorHeader = lipgloss.Color("#88c0d0")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// Dim renders text in the muted color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}

// TrackingPill is the indicator shown next to an open session.
func TrackingPill() string {
	return StyleGreen.Render("● TRACKING")
}
