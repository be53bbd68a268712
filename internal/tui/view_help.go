package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderHelp() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Help")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	help := []string{
		"Type a prompt and press Enter to refine it.",
		"",
		"The pipeline cleans up formatting, adds task-specific",
		"constraints, adjusts tone, trims filler words, and can",
		"bind the result into a structured format template.",
		"",
		"Commands:",
		"  /settings  Tone, format, and template options",
		"  /help      This screen",
		"  /quit      Exit",
		"",
		"On the result screen, press r for the refinement report.",
	}

	if len(a.state.plugins) > 0 || len(a.state.pluginIssues) > 0 {
		help = append(help, "", "Plugins:")
		for _, m := range a.state.plugins {
			line := fmt.Sprintf("  %s %s", m.Manifest.Name, m.Manifest.Version)
			if m.Manifest.Description != "" {
				line += "  " + m.Manifest.Description
			}
			help = append(help, truncate(line, 54))
		}
		for _, issue := range a.state.pluginIssues {
			help = append(help, truncate("  ! "+issue.String(), 54))
		}
	}

	helpBox := styleBox.
		Width(min(60, a.width-4)).
		Render(strings.Join(help, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, helpBox))
	b.WriteString("\n\n")

	status := styleStatusBar.Render("[Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}
