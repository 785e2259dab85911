package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/chunkkit/cmd/chunkexplorer/chunkdetail"
	"github.com/joshuapare/chunkkit/cmd/chunkexplorer/chunktree"
	"github.com/joshuapare/chunkkit/cmd/chunkexplorer/hexview"
	"github.com/joshuapare/chunkkit/cmd/chunkexplorer/logger"
)

// Update handles all messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Error screen: only quitting works
		if m.err != nil {
			if key.Matches(msg, m.keys.Quit) || key.Matches(msg, m.keys.Esc) {
				return m, tea.Quit
			}
			return m, nil
		}

		// If help is showing, handle help keys
		if m.showHelp {
			if key.Matches(msg, m.keys.Esc) || key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Quit) {
				m.showHelp = false
				return m, nil
			}
			// Ignore other keys when help is showing
			return m, nil
		}

		// If the detail modal is open, handle its keys
		if m.detail.IsVisible() {
			if key.Matches(msg, m.keys.Esc) || key.Matches(msg, m.keys.Enter) || key.Matches(msg, m.keys.Inspect) {
				m.detail.Hide()
				return m, nil
			}
			// Forward scrolling to the modal viewport
			if key.Matches(msg, m.keys.Up) || key.Matches(msg, m.keys.Down) ||
				key.Matches(msg, m.keys.PageUp) || key.Matches(msg, m.keys.PageDown) {
				var model tea.Model
				model, cmd = (&m.detail).Update(msg)
				m.detail = *model.(*chunkdetail.Model)
				return m, cmd
			}
			// Still allow quit
			if key.Matches(msg, m.keys.Quit) {
				return m, tea.Quit
			}
			// Ignore other keys while the modal is open
			return m, nil
		}

		// Handle input modes (filter, go to path)
		if m.inputMode == SearchMode || m.inputMode == GoToPathMode {
			return m.handleInputMode(msg)
		}

		// Global keys
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}

		// Clear filter (Esc in normal mode)
		if key.Matches(msg, m.keys.Esc) && m.searchQuery != "" {
			m.searchQuery = ""
			m.chunkTree.SetSearchFilter("")
			m.syncHexView()
			m.statusMessage = "Filter cleared"
			return m, clearStatusAfter()
		}

		// Enter filter mode
		if key.Matches(msg, m.keys.Search) {
			m.inputMode = SearchMode
			m.inputBuffer = ""
			return m, nil
		}

		// Enter go-to-path mode
		if key.Matches(msg, m.keys.Jump) {
			m.inputMode = GoToPathMode
			m.inputBuffer = ""
			return m, nil
		}

		// Show help overlay
		if key.Matches(msg, m.keys.Help) {
			m.showHelp = true
			return m, nil
		}

		// Inspect the chunk under the cursor
		if key.Matches(msg, m.keys.Inspect) {
			m.openDetail(m.chunkTree.CurrentItem())
			return m, nil
		}

		// Tab to switch panes
		if key.Matches(msg, m.keys.Tab) {
			if m.focusedPane == TreePane {
				m.focusedPane = HexPane
			} else {
				m.focusedPane = TreePane
			}
			return m, nil
		}

		// Route the key to the focused pane
		switch m.focusedPane {
		case TreePane:
			m.chunkTree, cmd = m.chunkTree.Update(msg)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
			// Cursor may have moved; keep the hex pane in step.
			m.syncHexView()

		case HexPane:
			m.hexView, cmd = m.hexView.Update(msg)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}

	case tea.MouseMsg:
		// Wheel scrolling drives the hex pane viewport
		m.hexView, cmd = m.hexView.Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		treeWidth, hexWidth, paneHeight := m.layout()
		m.chunkTree.SetSize(treeWidth-paneChrome, paneHeight-1)
		m.hexView.SetSize(hexWidth-paneChrome, paneHeight-1)

		var model tea.Model
		model, cmd = (&m.detail).Update(msg)
		m.detail = *model.(*chunkdetail.Model)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

	case chunktree.CopyPathRequestedMsg:
		if msg.Success {
			m.statusMessage = fmt.Sprintf("✓ Copied: %s", msg.Path)
		} else {
			logger.Warn("copy path failed", "path", msg.Path, "error", msg.Err)
			m.statusMessage = "Failed to copy path"
		}
		return m, clearStatusAfter()

	case chunktree.ChunkSelectedMsg:
		m.openDetail(msg.Item)
		return m, nil

	case hexview.CopyHexRequestedMsg:
		if msg.Success {
			m.statusMessage = fmt.Sprintf("✓ Copied %d bytes as hex", msg.Bytes)
		} else {
			logger.Warn("copy hex failed", "error", msg.Err)
			m.statusMessage = "Failed to copy payload"
		}
		return m, clearStatusAfter()

	case clearStatusMsg:
		m.statusMessage = ""
		return m, nil
	}

	return m, tea.Batch(cmds...)
}

// clearStatusAfter expires the status message after a short delay.
func clearStatusAfter() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
