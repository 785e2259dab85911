package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/chunkkit/cmd/chunkexplorer/logger"
)

// handleInputMode processes keys while the filter or go-to prompt is open.
func (m Model) handleInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		// Cancel the prompt; a filter preview is rolled back too.
		if m.inputMode == SearchMode {
			m.searchQuery = ""
			m.chunkTree.SetSearchFilter("")
			m.syncHexView()
		}
		m.inputMode = NormalMode
		m.inputBuffer = ""
		return m, nil

	case tea.KeyEnter:
		return m.commitInput()

	case tea.KeyBackspace:
		if len(m.inputBuffer) > 0 {
			m.inputBuffer = m.inputBuffer[:len(m.inputBuffer)-1]
			m.previewFilter()
		}
		return m, nil

	case tea.KeySpace:
		m.inputBuffer += " "
		m.previewFilter()
		return m, nil

	case tea.KeyRunes:
		m.inputBuffer += string(msg.Runes)
		m.previewFilter()
		return m, nil
	}

	return m, nil
}

// previewFilter applies the filter live while it is being typed.
func (m *Model) previewFilter() {
	if m.inputMode != SearchMode {
		return
	}
	m.chunkTree.SetSearchFilter(m.inputBuffer)
	m.syncHexView()
}

// commitInput finishes the prompt and acts on what was typed.
func (m Model) commitInput() (tea.Model, tea.Cmd) {
	query := strings.TrimSpace(m.inputBuffer)
	mode := m.inputMode
	m.inputMode = NormalMode
	m.inputBuffer = ""

	switch mode {
	case SearchMode:
		m.searchQuery = query
		m.chunkTree.SetSearchFilter(query)
		m.syncHexView()
		if query == "" {
			return m, nil
		}
		m.statusMessage = fmt.Sprintf("%d chunks match %q", m.chunkTree.MatchCount(), query)
		return m, clearStatusAfter()

	case GoToPathMode:
		if query == "" {
			return m, nil
		}
		if err := m.chunkTree.NavigateToPath(query); err != nil {
			logger.Debug("go to path failed", "path", query, "error", err)
			m.statusMessage = fmt.Sprintf("Path not found: %s", query)
			return m, clearStatusAfter()
		}
		m.searchQuery = ""
		m.syncHexView()
		m.statusMessage = fmt.Sprintf("Jumped to %s", query)
		return m, clearStatusAfter()
	}

	return m, nil
}
