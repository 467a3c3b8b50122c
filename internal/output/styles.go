package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Never use inline lipgloss.Color literals outside this block.
var (
	// ColorCyan is used for identifiable nouns: project names, target IDs, paths.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "created" and "succeeded" statuses.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "skipped" status and warnings.
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for the "failed" status (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorBlue is used for table headers.
	ColorBlue = lipgloss.Color("12")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns.
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome (prefixes, descriptions, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines, and tree roots.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Status words shown next to a project in the creation summary.
const (
	StatusCreated   = "created"
	StatusSucceeded = "succeeded"
	StatusSkipped   = "not-attempted"
	StatusFailed    = "failed"
)

// StatusStyle returns the style for a status word. Unknown statuses are
// left unstyled.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusCreated, StatusSucceeded:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusSkipped:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minNameColumnWidth keeps status words aligned across summary lines.
const minNameColumnWidth = 32

// FormatStatusLine renders "p:<name>  <status>" with the status right-aligned
// and color-coded.
func FormatStatusLine(name, status string) string {
	padding := minNameColumnWidth - len(name)
	if padding < 2 {
		padding = 2
	}

	return StyleDim.Render("p:") +
		StyleNoun.Render(name) +
		strings.Repeat(" ", padding) +
		StatusStyle(status).Render(status)
}

// FormatCheckmark renders a green checkmark followed by msg.
func FormatCheckmark(msg string) string {
	return lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔") + " " + msg
}

// FormatCross renders a red cross followed by msg.
func FormatCross(msg string) string {
	return lipgloss.NewStyle().Foreground(ColorBoldRed).Render("✘") + " " + msg
}
