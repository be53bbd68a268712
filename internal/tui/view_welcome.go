package tui

import "github.com/charmbracelet/lipgloss"

const logo = `
 ███████╗ ██████╗ ██████╗  ██████╗ ███████╗
 ██╔════╝██╔═══██╗██╔══██╗██╔════╝ ██╔════╝
 █████╗  ██║   ██║██████╔╝██║  ███╗█████╗
 ██╔══╝  ██║   ██║██╔══██╗██║   ██║██╔══╝
 ██║     ╚██████╔╝██║  ██║╚██████╔╝███████╗
 ╚═╝      ╚═════╝ ╚═╝  ╚═╝ ╚═════╝ ╚══════╝
`

func (a *App) renderWelcome() string {
	logoRendered := styleLogo.Render(logo)

	subtitle := styleSubtitle.Render("Prompt Refinement")

	inputBox := styleBox.
		Width(min(70, a.width-4)).
		BorderForeground(colorPrimary).
		Render(a.state.input.View())

	statusBar := styleStatusBar.Render("[Enter] Refine  [/settings] Settings  [/help] Help  [Esc] Quit")

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		logoRendered,
		subtitle,
		"",
		inputBox,
	)

	mainArea := lipgloss.Place(
		a.width,
		a.height-2,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)

	statusLine := lipgloss.PlaceHorizontal(a.width, lipgloss.Center, statusBar)

	return lipgloss.JoinVertical(lipgloss.Left, mainArea, statusLine)
}
