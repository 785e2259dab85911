// Package chunkdetail shows a centered modal with everything known about
// one chunk: header fields, the decoded interpretation when the tag is a
// well-known one, and a hex dump of the payload head.
package chunkdetail

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// detailDumpBytes bounds the payload dump inside the modal; the hex pane
// exists for longer looks.
const detailDumpBytes = 256

// Detail is the chunk information the modal renders.
type Detail struct {
	Path          string
	Tag           string
	Form          string // empty for leaf chunks
	Offset        int64
	PayloadOffset int64
	Size          int64
	Depth         int
	Children      int
	Group         bool
	Summary       string // decoded one-line interpretation, empty when unknown
	Data          []byte // payload, may alias the source mapping
}

// Model manages the chunk detail modal.
type Model struct {
	detail   *Detail
	viewport viewport.Model
	width    int
	height   int
	visible  bool
}

// NewModel creates a hidden detail modal.
func NewModel() Model {
	return Model{
		viewport: viewport.New(0, 0),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Show displays details for a chunk
func (m *Model) Show(d Detail) {
	m.detail = &d
	m.visible = true
	m.viewport.YOffset = 0
	m.updateContent()
}

// Hide closes the detail modal
func (m *Model) Hide() {
	m.visible = false
	m.detail = nil
}

// IsVisible returns whether the modal is currently shown
func (m *Model) IsVisible() bool {
	return m.visible
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Modal takes 80% of the screen; border and padding eat 6 columns
		// and 4 rows of that.
		m.viewport.Width = int(float64(m.width)*0.8) - 6
		m.viewport.Height = int(float64(m.height)*0.8) - 4
		m.updateContent()
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// updateContent regenerates the modal text.
func (m *Model) updateContent() {
	if m.detail == nil {
		m.viewport.SetContent("")
		return
	}
	d := m.detail

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	b.WriteString(titleStyle.Render(fmt.Sprintf("Chunk: %s", d.Path)))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("Tag:      %s\n", d.Tag))
	if d.Group {
		b.WriteString(fmt.Sprintf("Form:     %s\n", d.Form))
	}
	b.WriteString(fmt.Sprintf("Offset:   0x%x (%d)\n", d.Offset, d.Offset))
	b.WriteString(fmt.Sprintf("Payload:  0x%x\n", d.PayloadOffset))
	b.WriteString(fmt.Sprintf("Size:     %d bytes\n", d.Size))
	b.WriteString(fmt.Sprintf("Depth:    %d\n", d.Depth))
	if d.Group {
		b.WriteString(fmt.Sprintf("Children: %d\n", d.Children))
	}
	b.WriteString("\n")

	if d.Summary != "" {
		b.WriteString("Decoded:\n")
		b.WriteString(m.rule())
		b.WriteString("\n")
		b.WriteString(d.Summary)
		b.WriteString("\n\n")
	}

	if len(d.Data) > 0 {
		b.WriteString("Payload (hex):\n")
		b.WriteString(m.rule())
		b.WriteString("\n")
		dump := d.Data
		if len(dump) > detailDumpBytes {
			dump = dump[:detailDumpBytes]
		}
		b.WriteString(formatHexDump(dump))
		if len(d.Data) > detailDumpBytes {
			b.WriteString(fmt.Sprintf("\n(showing first %d of %d bytes)", detailDumpBytes, len(d.Data)))
		}
	} else {
		b.WriteString("(no payload)")
	}

	m.viewport.SetContent(b.String())
}

// rule returns a horizontal separator sized to the viewport.
func (m *Model) rule() string {
	width := m.viewport.Width - 2
	if width < 8 {
		width = 8
	}
	return strings.Repeat("─", width)
}

// formatHexDump creates a hex dump with an ASCII sidebar.
func formatHexDump(data []byte) string {
	if len(data) == 0 {
		return "(empty)"
	}

	var b strings.Builder
	const bytesPerLine = 16

	for offset := 0; offset < len(data); offset += bytesPerLine {
		fmt.Fprintf(&b, "%08x  ", offset)

		lineEnd := offset + bytesPerLine
		if lineEnd > len(data) {
			lineEnd = len(data)
		}

		for i := offset; i < lineEnd; i++ {
			fmt.Fprintf(&b, "%02x ", data[i])
			if i == offset+7 {
				b.WriteString(" ")
			}
		}

		remaining := bytesPerLine - (lineEnd - offset)
		for i := 0; i < remaining; i++ {
			b.WriteString("   ")
		}
		if remaining > 8 {
			b.WriteString(" ")
		}

		b.WriteString(" |")
		for i := offset; i < lineEnd; i++ {
			if data[i] >= 32 && data[i] <= 126 {
				b.WriteByte(data[i])
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteString("|")

		if lineEnd < len(data) {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// View renders the detail modal
func (m Model) View() string {
	if !m.visible || m.detail == nil {
		return ""
	}

	// The overlay package handles centering; just render the box.
	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(1, 2)

	return borderStyle.Render(m.viewport.View())
}
