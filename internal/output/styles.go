package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette — named constants for all ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: template ids, project names, paths.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for completed steps (bright, high-visibility).
	ColorGreen = lipgloss.Color("82")

	// ColorBoldRed is used for failed steps (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles — map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (template ids, project names, paths).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleAction styles action verbs (creating, writing, installing).
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (step prefixes, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)

	// StyleFailed styles failed step lines.
	StyleFailed = lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
)

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatCross renders a red cross with a message for failed steps.
func FormatCross(msg string) string {
	cross := StyleFailed.Render("✘")
	return cross + " " + msg
}
