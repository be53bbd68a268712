package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"promptforge/internal/format"
	"promptforge/internal/pipeline"
	"promptforge/internal/refiner"
)

const (
	settingTone = iota
	settingFormat
	settingTemplate
	settingCount
)

func (a *App) handleSettingsKey(msg tea.KeyMsg) tea.Cmd {
	s := a.state

	switch msg.String() {
	case "up", "k":
		if s.settingsRow > 0 {
			s.settingsRow--
		}
	case "down", "j":
		if s.settingsRow < settingCount-1 {
			s.settingsRow++
		}
	case "left", "h":
		a.cycleSetting(-1)
	case "right", "l", "enter", " ":
		a.cycleSetting(1)
	}

	return nil
}

func (a *App) cycleSetting(dir int) {
	cfg := a.state.config

	switch a.state.settingsRow {
	case settingTone:
		current := refiner.ParseTone(cfg.Tone)
		idx := 0
		for i, t := range refiner.Tones {
			if t == current {
				idx = i
				break
			}
		}
		idx = (idx + dir + len(refiner.Tones)) % len(refiner.Tones)
		cfg.Tone = refiner.Tones[idx].String()

		// Tone lives in the refinement pipeline, so swap it out
		if orch, err := pipeline.NewOrchestrator(refiner.Tones[idx]); err == nil {
			a.state.orchestrator = orch
		}

	case settingFormat:
		current := format.Parse(cfg.Format)
		idx := 0
		for i, f := range format.Formats {
			if f == current {
				idx = i
				break
			}
		}
		idx = (idx + dir + len(format.Formats)) % len(format.Formats)
		cfg.Format = format.Formats[idx].String()

	case settingTemplate:
		cfg.ApplyTemplate = !cfg.ApplyTemplate
	}

	// Best effort: settings still apply for this session if the
	// config file cannot be written
	_ = cfg.Save()
}

func (a *App) renderSettings() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Settings")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	cfg := a.state.config
	rows := []struct {
		label string
		value string
	}{
		{"Tone", cfg.Tone},
		{"Fallback format", cfg.Format},
		{"Apply template", fmt.Sprintf("%v", cfg.ApplyTemplate)},
	}

	var lines []string
	for i, row := range rows {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == a.state.settingsRow {
			cursor = "> "
			style = style.Foreground(colorPrimary).Bold(true)
		}
		lines = append(lines, style.Render(fmt.Sprintf("%s%-18s %s", cursor, row.label, row.value)))
	}

	settingsBox := styleBox.
		Width(min(50, a.width-4)).
		Render(strings.Join(lines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, settingsBox))
	b.WriteString("\n\n")

	status := styleStatusBar.Render("[Up/Down] Select  [Left/Right] Change  [Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}
