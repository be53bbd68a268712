package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"promptforge/internal/config"
	"promptforge/internal/pipeline"
	"promptforge/internal/plugin"
)

type state struct {
	// Config
	config *config.Config

	// Discovered plugin manifests
	plugins      []plugin.ManifestFile
	pluginIssues []plugin.Issue

	// Orchestrator
	orchestrator    *pipeline.Orchestrator
	orchestratorErr error

	// Prompt input
	input textinput.Model

	// Processing
	processing bool
	progress   *pipeline.Progress

	// Result
	result *pipeline.Result

	// Settings cursor
	settingsRow int
}

func newState() *state {
	input := textinput.New()
	input.Placeholder = "Type a prompt to refine, or /help for commands..."
	input.CharLimit = 500
	input.Width = 60

	return &state{
		input: input,
	}
}
