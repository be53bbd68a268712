package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderError() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(colorError).
		Bold(true).
		Render("Something went wrong")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	message := "Unknown error"
	if a.state.orchestratorErr != nil {
		message = a.state.orchestratorErr.Error()
	}

	errorBox := styleBox.
		Width(min(60, a.width-4)).
		BorderForeground(colorError).
		Render(message)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, errorBox))
	b.WriteString("\n\n")

	status := styleStatusBar.Render("[Esc] Quit")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}
