package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"promptforge/internal/config"
	"promptforge/internal/format"
	"promptforge/internal/pipeline"
	"promptforge/internal/refiner"
)

type view int

const (
	viewWelcome view = iota
	viewProcessing
	viewResult
	viewReport
	viewSettings
	viewHelp
	viewError
)

type App struct {
	width    int
	height   int
	view     view
	state    *state
	program  *tea.Program
	quitting bool
}

func NewApp() *App {
	s := newState()

	cfg, _ := config.Load()
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	s.config = cfg
	s.plugins, s.pluginIssues = loadPlugins(cfg)

	orch, err := pipeline.NewOrchestrator(refiner.ParseTone(cfg.Tone))
	s.orchestrator = orch
	s.orchestratorErr = err

	a := &App{
		view:  viewWelcome,
		state: s,
	}
	if err != nil {
		a.view = viewError
	}
	return a
}

// SetProgram lets async work send progress back into the update loop
func (a *App) SetProgram(p *tea.Program) {
	a.program = p
}

func (a *App) Init() tea.Cmd {
	a.state.input.Focus()
	return tea.Batch(tea.WindowSize(), textinput.Blink)
}

type progressMsg struct{ progress pipeline.Progress }
type resultMsg struct{ result *pipeline.Result }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd := a.handleKey(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case progressMsg:
		a.state.progress = &msg.progress
		return a, nil

	case resultMsg:
		a.state.processing = false
		a.state.result = msg.result
		a.view = viewResult
		a.state.input.Focus()
		return a, textinput.Blink
	}

	if a.view == viewWelcome || a.view == viewResult {
		var cmd tea.Cmd
		a.state.input, cmd = a.state.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Quit):
		if a.view == viewSettings || a.view == viewHelp || a.view == viewReport {
			a.view = viewWelcome
			return nil
		}
		if a.view == viewResult {
			a.state.result = nil
			a.state.input.Reset()
			a.view = viewWelcome
			return nil
		}
		a.quitting = true
		return tea.Quit

	case key.Matches(msg, keys.Enter):
		if a.view == viewWelcome || a.view == viewResult {
			return a.handleInput()
		}

	case key.Matches(msg, keys.Help):
		// On input views "?" belongs to the prompt text
		if a.view == viewSettings || a.view == viewReport {
			a.view = viewHelp
			return nil
		}
	}

	switch a.view {
	case viewResult:
		switch msg.String() {
		case "r":
			a.view = viewReport
			return nil
		}
	case viewSettings:
		return a.handleSettingsKey(msg)
	}

	return nil
}

func (a *App) handleInput() tea.Cmd {
	input := strings.TrimSpace(a.state.input.Value())
	if input == "" {
		return nil
	}

	if strings.HasPrefix(input, "/") {
		cmd := strings.ToLower(input)
		switch {
		case cmd == "/help" || cmd == "/h":
			a.view = viewHelp
			a.state.input.Reset()
			return nil
		case cmd == "/settings" || cmd == "/s":
			a.view = viewSettings
			a.state.input.Reset()
			return nil
		case cmd == "/quit" || cmd == "/q":
			a.quitting = true
			return tea.Quit
		}
		a.state.input.Reset()
		return nil
	}

	a.state.input.Reset()
	return a.refine(input)
}

func (a *App) refine(prompt string) tea.Cmd {
	a.view = viewProcessing
	a.state.processing = true
	a.state.progress = nil
	a.state.result = nil

	return func() tea.Msg {
		orch := a.state.orchestrator
		orch.SetProgressCallback(func(p pipeline.Progress) {
			if a.program != nil {
				a.program.Send(progressMsg{p})
			}
		})

		result := orch.Process(prompt, pipeline.Options{
			Provider:       a.state.config.Provider,
			Model:          a.state.config.Model,
			FallbackFormat: format.Parse(a.state.config.Format),
			ApplyTemplate:  a.state.config.ApplyTemplate,
		})
		return resultMsg{result}
	}
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewProcessing:
		return a.renderProcessing()
	case viewResult:
		return a.renderResult()
	case viewReport:
		return a.renderReport()
	case viewSettings:
		return a.renderSettings()
	case viewHelp:
		return a.renderHelp()
	case viewError:
		return a.renderError()
	default:
		return a.renderWelcome()
	}
}
