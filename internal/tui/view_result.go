package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderResult() string {
	var b strings.Builder

	r := a.state.result
	if r == nil {
		return a.renderWelcome()
	}

	header := styleSubtitle.Render(fmt.Sprintf("%s -> %s",
		r.Classification.Type.Display(), r.Recommendation.Format))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, header))
	b.WriteString("\n")

	asked := styleSubtitle.Render("> " + truncate(r.OriginalPrompt, 60))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, asked))
	b.WriteString("\n\n")

	refined := r.RefinedPrompt
	maxResultHeight := a.height - 14
	if maxResultHeight < 5 {
		maxResultHeight = 5
	}
	resultLines := strings.Split(refined, "\n")
	if len(resultLines) > maxResultHeight {
		resultLines = resultLines[:maxResultHeight]
		refined = strings.Join(resultLines, "\n")
	}

	resultBox := styleBox.
		Width(min(70, a.width-4)).
		BorderForeground(colorPrimary).
		Render(refined)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, resultBox))
	b.WriteString("\n\n")

	a.state.input.Placeholder = "Refine another prompt..."
	inputBox := styleBox.
		Width(min(70, a.width-4)).
		BorderForeground(colorMuted).
		Render(a.state.input.View())
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, inputBox))
	b.WriteString("\n\n")

	status := styleStatusBar.Render("[Enter] Refine  [r] Report  [Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}
