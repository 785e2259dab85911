package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

// paneChrome is the number of columns a pane box consumes for border and
// padding
const paneChrome = 4

// View renders the entire UI
func (m Model) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	// If help overlay is showing, render it
	if m.showHelp {
		return m.renderHelpOverlay()
	}

	// If the detail modal is open, render it over the main view
	if m.detail.IsVisible() {
		// Recreate the background each render so it sees the latest state
		// (bubbletea's Update returns new models, stored pointers would be
		// stale).
		mainView := NewMainViewModel(&m)
		detailOverlay := overlay.New(
			&m.detail,
			mainView,
			overlay.Center, // horizontal position
			overlay.Center, // vertical position
			0,
			0,
		)
		return detailOverlay.View()
	}

	header := m.renderHeader()
	content := m.renderContent()
	status := m.renderStatus()

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		content,
		status,
	)
}

// layout computes pane dimensions from the window size.
func (m Model) layout() (treeWidth, hexWidth, paneHeight int) {
	treeWidth = m.width / 2
	hexWidth = m.width - treeWidth
	// Header takes two lines, the status bar one, pane borders two; leave a
	// line of slack for the terminal.
	paneHeight = m.height - 6
	if paneHeight < 5 {
		paneHeight = 5
	}
	return treeWidth, hexWidth, paneHeight
}

// renderHeader renders the title line and the current chunk path
func (m Model) renderHeader() string {
	title := "Chunk Explorer"
	source := fmt.Sprintf("File: %s", m.path)
	if m.file != nil {
		source += fmt.Sprintf("  [%s]", m.file.Tree.Profile)
	}

	header := lipgloss.JoinHorizontal(
		lipgloss.Top,
		headerStyle.Render(title),
		lipgloss.NewStyle().Render("  "),
		pathStyle.Render(source),
	)

	currentPath := ""
	if item := m.chunkTree.CurrentItem(); item != nil {
		currentPath = fmt.Sprintf("Path: %s", item.Path)
	}
	if currentPath != "" {
		header = lipgloss.JoinVertical(
			lipgloss.Left,
			header,
			pathStyle.Render(currentPath),
		)
	}

	return header
}

// renderContent renders the split-pane content
func (m Model) renderContent() string {
	treeWidth, hexWidth, paneHeight := m.layout()

	treeBox := renderPane(
		"Chunks",
		m.chunkTree.View(),
		treeWidth-2,
		paneHeight,
		m.focusedPane == TreePane,
	)

	hexTitle := "Hex"
	if label := m.hexView.Label(); label != "" {
		hexTitle = truncate("Hex: "+label, hexWidth-paneChrome)
	}
	hexBox := renderPane(
		hexTitle,
		m.hexView.View(),
		hexWidth-2,
		paneHeight,
		m.focusedPane == HexPane,
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, treeBox, hexBox)
}

// renderPane renders a titled, bordered pane
func renderPane(title, body string, width, height int, active bool) string {
	style := paneStyle
	if active {
		style = activePaneStyle
	}
	content := paneTitleStyle.Render(title) + "\n" + body
	return style.Width(width).Height(height).Render(content)
}

// renderStatus renders the bottom status bar
func (m Model) renderStatus() string {
	// An open prompt owns the status line
	if m.inputMode == SearchMode {
		return statusStyle.Width(m.width).Render(
			searchPromptStyle.Render("/" + m.inputBuffer + "█"),
		)
	}
	if m.inputMode == GoToPathMode {
		return statusStyle.Width(m.width).Render(
			searchPromptStyle.Render("Go to: " + m.inputBuffer + "█"),
		)
	}

	left := "? help · tab switch pane · q quit"
	if m.statusMessage != "" {
		if strings.HasPrefix(m.statusMessage, "✓") {
			left = statusOKStyle.Render(m.statusMessage)
		} else {
			left = m.statusMessage
		}
	} else if m.searchQuery != "" {
		left = fmt.Sprintf("Filter: %q (Esc clears)", m.searchQuery)
	}

	right := ""
	if m.file != nil {
		st := m.file.Tree.Stats()
		right = statusCountStyle.Render(
			fmt.Sprintf("%d chunks, %d groups", st.Chunks, st.Groups),
		)
	}

	statusLine := lipgloss.JoinHorizontal(
		lipgloss.Top,
		helpStyle.Render(left),
		lipgloss.NewStyle().Width(10).Render(""), // Spacer
		right,
	)

	return statusStyle.
		Width(m.width).
		Render(statusLine)
}

// renderHelpOverlay renders the help overlay
func (m Model) renderHelpOverlay() string {
	var helpContent strings.Builder

	title := helpTitleStyle.Render("Keyboard Shortcuts")
	helpContent.WriteString(title)
	helpContent.WriteString("\n\n")

	// Key column width for alignment
	const keyWidth = 12

	writeEntry := func(keys, desc string) {
		helpContent.WriteString(helpKeyStyle.Width(keyWidth).Render(keys))
		helpContent.WriteString("  ")
		helpContent.WriteString(helpDescStyle.Render(desc))
		helpContent.WriteString("\n")
	}

	helpContent.WriteString(modalTitleStyle.Render("Navigation"))
	helpContent.WriteString("\n")
	writeEntry("↑/↓ or k/j", "Move cursor up/down")
	writeEntry("←/→ or h/l", "Collapse/Expand groups")
	writeEntry("g / G", "Go to top / bottom")
	writeEntry("Tab", "Switch between tree and hex panes")
	writeEntry("p", "Go to parent chunk")
	helpContent.WriteString("\n")

	helpContent.WriteString(modalTitleStyle.Render("Tree"))
	helpContent.WriteString("\n")
	writeEntry("Enter", "Expand group / inspect leaf chunk")
	writeEntry("E", "Expand all groups")
	writeEntry("C", "Collapse all")
	helpContent.WriteString("\n")

	helpContent.WriteString(modalTitleStyle.Render("Actions"))
	helpContent.WriteString("\n")
	writeEntry("i", "Inspect current chunk")
	writeEntry("c", "Copy current path")
	writeEntry("y", "Copy payload as hex (in hex pane)")
	helpContent.WriteString("\n")

	helpContent.WriteString(modalTitleStyle.Render("Search"))
	helpContent.WriteString("\n")
	writeEntry("/", "Filter chunks by tag or form (live)")
	writeEntry("Ctrl+G", "Go to a chunk path")
	writeEntry("Esc", "Clear filter or cancel input")
	helpContent.WriteString("\n")

	helpContent.WriteString(modalTitleStyle.Render("Other"))
	helpContent.WriteString("\n")
	writeEntry("?", "Show this help")
	writeEntry("q or Ctrl+C", "Quit")
	helpContent.WriteString("\n")

	helpContent.WriteString(helpStyle.Render("Press Esc, ?, or q to close this help"))

	// Create bordered help box
	helpBox := modalStyle.
		Width(56).
		Render(helpContent.String())

	// Center it manually
	helpHeight := lipgloss.Height(helpBox)
	helpWidth := lipgloss.Width(helpBox)

	verticalPadding := (m.height - helpHeight) / 2
	horizontalPadding := (m.width - helpWidth) / 2

	if verticalPadding < 0 {
		verticalPadding = 0
	}
	if horizontalPadding < 0 {
		horizontalPadding = 0
	}

	return lipgloss.NewStyle().
		MarginTop(verticalPadding).
		MarginLeft(horizontalPadding).
		Render(helpBox)
}
