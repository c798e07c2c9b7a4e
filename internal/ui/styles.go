package ui

import "github.com/charmbracelet/lipgloss"

// Color palette - keeping it minimal and accessible.
var (
	ColorSuccess = lipgloss.Color("34")  // Green
	ColorWarning = lipgloss.Color("214") // Orange
	ColorError   = lipgloss.Color("196") // Red
	ColorMuted   = lipgloss.Color("240") // Dark gray
)

// Status styles
var (
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	LabelStyle = lipgloss.NewStyle().
			Bold(true).
			Width(18)
)

// Symbols for visual feedback.
const (
	SymbolCheck      = "✓"
	SymbolCross      = "✗"
	SymbolArrowRight = "→"
	SymbolWarning    = "!"
)

// Success renders a completed-step line.
func Success(msg string) string {
	return SuccessStyle.Render(SymbolCheck + " " + msg)
}

// Failure renders a failed-step line.
func Failure(msg string) string {
	return ErrorStyle.Render(SymbolCross + " " + msg)
}

// Warning renders a warning line.
func Warning(msg string) string {
	return WarningStyle.Render(SymbolWarning + " " + msg)
}

// Step renders an in-progress line.
func Step(msg string) string {
	return MutedStyle.Render(SymbolArrowRight + " " + msg)
}

// Field renders an aligned "label value" line for summaries.
func Field(label, value string) string {
	return LabelStyle.Render(label) + value
}
