package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"promptforge/internal/pipeline"
)

func (a *App) renderProcessing() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Refining")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	stages := []pipeline.Stage{
		pipeline.StageClassifying,
		pipeline.StageSelectingFormat,
		pipeline.StageRefining,
	}
	currentStage := 0
	if a.state.progress != nil {
		currentStage = a.state.progress.StageIndex
	}

	var stageLines []string
	for i, stage := range stages {
		var icon string
		var style lipgloss.Style

		if i < currentStage {
			icon = "[x]"
			style = lipgloss.NewStyle().Foreground(colorSuccess)
		} else if i == currentStage {
			icon = "[>]"
			style = lipgloss.NewStyle().Foreground(colorSecondary).Bold(true)
		} else {
			icon = "[ ]"
			style = lipgloss.NewStyle().Foreground(colorMuted)
		}

		stageLines = append(stageLines, style.Render("  "+icon+"  "+stage.String()))
	}

	stagesBox := styleBox.
		Width(min(50, a.width-4)).
		Render(strings.Join(stageLines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, stagesBox))
	b.WriteString("\n\n")

	if a.state.progress != nil && a.state.progress.Message != "" {
		msg := styleSubtitle.Render(truncate(a.state.progress.Message, 60))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, msg))
	}

	return a.centerVertically(b.String())
}
