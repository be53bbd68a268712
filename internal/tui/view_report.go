package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderReport shows the audit trail for the last refinement: stages
// run, improvements made, and validator diagnostics.
func (a *App) renderReport() string {
	var b strings.Builder

	r := a.state.result
	if r == nil {
		return a.renderWelcome()
	}

	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Refinement Report")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	var lines []string

	lines = append(lines, styleSubtitle.Render("Stages:"))
	for _, stage := range r.Refinement.StagesApplied {
		lines = append(lines,
			lipgloss.NewStyle().Foreground(colorSuccess).Render("  [x] ")+stage)
	}

	if len(r.Refinement.Improvements) > 0 {
		lines = append(lines, "", styleSubtitle.Render("Improvements:"))
		for _, improvement := range r.Refinement.Improvements {
			lines = append(lines, "  * "+improvement)
		}
	}

	passed, issues, warnings := r.Refinement.Validation()
	if !passed || len(warnings) > 0 {
		lines = append(lines, "", styleSubtitle.Render("Validation:"))
		for _, issue := range issues {
			lines = append(lines,
				lipgloss.NewStyle().Foreground(colorError).Render("  ! "+issue))
		}
		for _, warning := range warnings {
			lines = append(lines,
				lipgloss.NewStyle().Foreground(colorSecondary).Render("  ~ "+warning))
		}
	}

	reportBox := styleBox.
		Width(min(70, a.width-4)).
		Render(strings.Join(lines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, reportBox))
	b.WriteString("\n\n")

	status := styleStatusBar.Render("[Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}
