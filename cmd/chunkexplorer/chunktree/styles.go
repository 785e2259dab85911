package chunktree

import "github.com/charmbracelet/lipgloss"

var (
	cursorStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#7D56F4")).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true)

	groupStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00D7FF")).
			Bold(true)

	leafStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	formStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500"))

	sizeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)
