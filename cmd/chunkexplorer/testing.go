package main

import (
	"encoding/binary"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joshuapare/chunkkit/container"

	"github.com/joshuapare/chunkkit/cmd/chunkexplorer/chunktree"
)

// TestHelper provides utilities for testing the TUI against an in-memory
// container
type TestHelper struct {
	model Model
}

// NewTestHelper builds a model over raw container bytes. Scan failures are
// carried into the model the same way NewModel carries open failures.
func NewTestHelper(data []byte) *TestHelper {
	file, err := container.OpenBytes(data, container.OpenOptions{})
	if err != nil {
		return &TestHelper{model: Model{
			path: "test-input",
			keys: DefaultKeyMap(),
			cfg:  DefaultConfig(),
			err:  err,
		}}
	}
	return &TestHelper{model: newModel("test-input", file, DefaultConfig())}
}

// SendKey simulates a key press but does not execute async commands
func (h *TestHelper) SendKey(keyType tea.KeyType) *TestHelper {
	msg := tea.KeyMsg{Type: keyType}
	updated, _ := h.model.Update(msg)
	h.model = updated.(Model)
	return h
}

// SendKeyRune simulates a character key press
func (h *TestHelper) SendKeyRune(r rune) *TestHelper {
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
	updated, _ := h.model.Update(msg)
	h.model = updated.(Model)
	return h
}

// SendMsg delivers an arbitrary message directly to the model
func (h *TestHelper) SendMsg(msg tea.Msg) *TestHelper {
	updated, _ := h.model.Update(msg)
	h.model = updated.(Model)
	return h
}

// SendWindowSize simulates a window resize
func (h *TestHelper) SendWindowSize(width, height int) *TestHelper {
	msg := tea.WindowSizeMsg{Width: width, Height: height}
	updated, _ := h.model.Update(msg)
	h.model = updated.(Model)
	return h
}

// GetModel returns the current model
func (h *TestHelper) GetModel() Model {
	return h.model
}

// GetView returns the rendered view
func (h *TestHelper) GetView() string {
	return h.model.View()
}

// GetFocusedPane returns the currently focused pane
func (h *TestHelper) GetFocusedPane() Pane {
	return h.model.focusedPane
}

// GetTreeItemCount returns the number of visible tree rows
func (h *TestHelper) GetTreeItemCount() int {
	return len(h.model.chunkTree.GetItems())
}

// GetTreeCursor returns the current tree cursor position
func (h *TestHelper) GetTreeCursor() int {
	return h.model.chunkTree.GetCursor()
}

// GetCurrentItem returns the tree row under the cursor
func (h *TestHelper) GetCurrentItem() *chunktree.Item {
	return h.model.chunkTree.CurrentItem()
}

// leChunk encodes one little-endian chunk with its pad byte.
func leChunk(tag string, payload []byte) []byte {
	out := make([]byte, 0, 8+len(payload)+1)
	out = append(out, tag[:4]...)
	out = binary.LittleEndian.AppendUint32(out, uint32(len(payload)))
	out = append(out, payload...)
	if len(payload)%2 == 1 {
		out = append(out, 0)
	}
	return out
}

// beChunk encodes one big-endian chunk with its pad byte.
func beChunk(tag string, payload []byte) []byte {
	out := make([]byte, 0, 8+len(payload)+1)
	out = append(out, tag[:4]...)
	out = binary.BigEndian.AppendUint32(out, uint32(len(payload)))
	out = append(out, payload...)
	if len(payload)%2 == 1 {
		out = append(out, 0)
	}
	return out
}

// wavFixture builds a small WAVE file:
//
//	RIFF (WAVE)
//	├── fmt   16 bytes  PCM, 2ch, 44100 Hz, 16-bit
//	├── LIST (INFO)
//	│   └── IART  10 bytes  "an artist\x00"
//	└── data   4 bytes  de ad be ef
func wavFixture() []byte {
	fmtPayload := make([]byte, 16)
	binary.LittleEndian.PutUint16(fmtPayload[0:2], 1)        // PCM
	binary.LittleEndian.PutUint16(fmtPayload[2:4], 2)        // channels
	binary.LittleEndian.PutUint32(fmtPayload[4:8], 44100)    // sample rate
	binary.LittleEndian.PutUint32(fmtPayload[8:12], 176400)  // byte rate
	binary.LittleEndian.PutUint16(fmtPayload[12:14], 4)      // block align
	binary.LittleEndian.PutUint16(fmtPayload[14:16], 16)     // bits per sample

	var list []byte
	list = append(list, "INFO"...)
	list = append(list, leChunk("IART", []byte("an artist\x00"))...)

	var body []byte
	body = append(body, "WAVE"...)
	body = append(body, leChunk("fmt ", fmtPayload)...)
	body = append(body, leChunk("LIST", list)...)
	body = append(body, leChunk("data", []byte{0xde, 0xad, 0xbe, 0xef})...)

	return leChunk("RIFF", body)
}

// aiffFixture builds a minimal AIFF file:
//
//	FORM (AIFF)
//	├── COMM  18 bytes  2ch, 4 frames, 16-bit, 44100 Hz
//	└── SSND   4 bytes
func aiffFixture() []byte {
	commPayload := make([]byte, 18)
	binary.BigEndian.PutUint16(commPayload[0:2], 2)  // channels
	binary.BigEndian.PutUint32(commPayload[2:6], 4)  // frames
	binary.BigEndian.PutUint16(commPayload[6:8], 16) // bits
	// 44100 as an 80-bit extended float
	copy(commPayload[8:18], []byte{0x40, 0x0e, 0xac, 0x44, 0, 0, 0, 0, 0, 0})

	var body []byte
	body = append(body, "AIFF"...)
	body = append(body, beChunk("COMM", commPayload)...)
	body = append(body, beChunk("SSND", []byte{1, 2, 3, 4})...)

	return beChunk("FORM", body)
}
