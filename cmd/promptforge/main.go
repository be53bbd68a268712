package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"promptforge/internal/tui"
)

var version = "dev"

func main() {
	app := tui.NewApp()
	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
	)
	app.SetProgram(p)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
