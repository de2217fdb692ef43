package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette. Use these instead of inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns and prompt descriptions.
	ColorCyan = lipgloss.Color("14")

	// ColorRed marks required prompts.
	ColorRed = lipgloss.Color("196")

	// ColorBoldRed is used for failed steps (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")

	// ColorWhite is used for default values shown in prompts.
	ColorWhite = lipgloss.Color("15")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (paths, package names, remotes).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome.
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)

	// StyleRequired styles the required-field marker in prompts.
	StyleRequired = lipgloss.NewStyle().Foreground(ColorRed)

	// StyleDefault styles the default value shown in prompts.
	StyleDefault = lipgloss.NewStyle().Foreground(ColorWhite)
)

// FormatCheckmark renders a green checkmark with a message.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatFailure renders a red cross with a message.
func FormatFailure(msg string) string {
	cross := lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed).Render("✘")
	return cross + " " + msg
}

// FormatQuestion renders an interactive question.
//
// Format: [*]<description>[ [default]]: 
func FormatQuestion(description, defaultValue string, required bool) string {
	var marker string
	if required {
		marker = StyleRequired.Render("*")
	}
	text := description
	if defaultValue != "" {
		text += StyleDefault.Render(" [" + defaultValue + "]")
	}
	return marker + StyleNoun.Render(text) + StyleNoun.Render(": ")
}
