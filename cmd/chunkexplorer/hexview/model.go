// Package hexview renders a chunk payload as a scrollable hex dump with
// absolute file offsets, so what is on screen can be cross-checked against
// any external hex editor.
package hexview

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// maxDumpBytes bounds the rendered (and copied) payload prefix. A data
// chunk can be hundreds of megabytes; formatting all of it as text would
// multiply that by four.
const maxDumpBytes = 64 * 1024

// Model manages the hex dump pane.
type Model struct {
	viewport    viewport.Model
	label       string
	base        int64
	data        []byte
	loaded      bool
	bytesPerRow int
	showASCII   bool
	keys        Keys
}

// New creates an empty hex pane.
func New() Model {
	return Model{
		viewport:    viewport.New(0, 0),
		bytesPerRow: 16,
		showASCII:   true,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// SetKeys sets the keyboard shortcuts for the hex pane
func (m *Model) SetKeys(keys Keys) {
	m.keys = keys
}

// SetBytesPerRow sets the dump row width in bytes
func (m *Model) SetBytesPerRow(n int) {
	if n > 0 {
		m.bytesPerRow = n
		m.renderContent()
	}
}

// SetShowASCII toggles the printable-characters sidebar
func (m *Model) SetShowASCII(show bool) {
	m.showASCII = show
	m.renderContent()
}

// SetChunk loads a payload into the pane. base is the absolute file offset
// of the first payload byte; data may alias the source mapping.
func (m *Model) SetChunk(label string, base int64, data []byte) {
	m.label = label
	m.base = base
	m.data = data
	m.loaded = true
	m.viewport.YOffset = 0
	m.renderContent()
}

// Clear empties the pane.
func (m *Model) Clear() {
	m.label = ""
	m.base = 0
	m.data = nil
	m.loaded = false
	m.viewport.SetContent("")
}

// Label returns the label of the loaded chunk, for pane titles.
func (m *Model) Label() string {
	return m.label
}

// SetSize sets the pane dimensions
func (m *Model) SetSize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = height
}

// CopyHex copies the rendered payload prefix to the clipboard as a hex
// string and returns the number of bytes copied.
func (m *Model) CopyHex() (int, error) {
	if !m.loaded {
		return 0, fmt.Errorf("no chunk selected")
	}
	data := m.data
	if len(data) > maxDumpBytes {
		data = data[:maxDumpBytes]
	}
	return len(data), clipboard.WriteAll(hex.EncodeToString(data))
}

// Update handles messages for the hex pane
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.Home):
			m.viewport.GotoTop()
			return m, nil

		case key.Matches(keyMsg, m.keys.End):
			m.viewport.GotoBottom()
			return m, nil

		case key.Matches(keyMsg, m.keys.CopyHex):
			n, err := m.CopyHex()
			return m, func() tea.Msg {
				return CopyHexRequestedMsg{Bytes: n, Success: err == nil, Err: err}
			}
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the hex pane
func (m Model) View() string {
	if !m.loaded {
		return "No chunk selected."
	}
	return m.viewport.View()
}

// renderContent regenerates the dump text in the viewport.
func (m *Model) renderContent() {
	if !m.loaded {
		return
	}
	if len(m.data) == 0 {
		m.viewport.SetContent("(empty payload)")
		return
	}

	data := m.data
	clipped := false
	if len(data) > maxDumpBytes {
		data = data[:maxDumpBytes]
		clipped = true
	}

	var b strings.Builder
	for off := 0; off < len(data); off += m.bytesPerRow {
		end := off + m.bytesPerRow
		if end > len(data) {
			end = len(data)
		}
		m.writeRow(&b, m.base+int64(off), data[off:end])
		if end < len(data) {
			b.WriteString("\n")
		}
	}
	if clipped {
		fmt.Fprintf(&b, "\n(%d more bytes not shown)", len(m.data)-maxDumpBytes)
	}
	m.viewport.SetContent(b.String())
}

// writeRow emits one dump line: address, hex bytes with a gap every eight,
// and the printable sidebar.
func (m *Model) writeRow(b *strings.Builder, addr int64, row []byte) {
	fmt.Fprintf(b, "%08x  ", addr)

	for i := 0; i < m.bytesPerRow; i++ {
		if i > 0 && i%8 == 0 {
			b.WriteString(" ")
		}
		if i < len(row) {
			fmt.Fprintf(b, "%02x ", row[i])
		} else {
			b.WriteString("   ")
		}
	}

	if m.showASCII {
		b.WriteString(" |")
		for _, c := range row {
			if c >= 0x20 && c <= 0x7e {
				b.WriteByte(c)
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteString("|")
	}
}
