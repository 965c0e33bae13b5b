package sheetgen

import "github.com/charmbracelet/lipgloss"

// Terminal styles by role. Lipgloss degrades colors to what the terminal supports.
var (
	styleLocation = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")) // file:line:col, headers
	styleFailure  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")) // failed sources, errors
	styleWarning  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3")) // warnings, carets
	styleWritten  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")) // output files
	styleMuted    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))            // linter names, hints
)

// renderStyle applies style only when colors are enabled.
func renderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}
