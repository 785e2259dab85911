package chunktree

import (
	"encoding/binary"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"

	"github.com/joshuapare/chunkkit/chunk"
	"github.com/joshuapare/chunkkit/container"
)

var testProfile = container.Profile{
	Name:   "riff",
	Align:  2,
	Groups: []chunk.FourCC{chunk.MakeFourCC("RIFF"), chunk.MakeFourCC("LIST")},
	Magics: []chunk.FourCC{chunk.MakeFourCC("RIFF")},
}

func testKeys() Keys {
	return Keys{
		Up:          key.NewBinding(key.WithKeys("up")),
		Down:        key.NewBinding(key.WithKeys("down")),
		Left:        key.NewBinding(key.WithKeys("left")),
		Right:       key.NewBinding(key.WithKeys("right")),
		PageUp:      key.NewBinding(key.WithKeys("pgup")),
		PageDown:    key.NewBinding(key.WithKeys("pgdown")),
		Home:        key.NewBinding(key.WithKeys("home")),
		End:         key.NewBinding(key.WithKeys("end")),
		Enter:       key.NewBinding(key.WithKeys("enter")),
		GoToParent:  key.NewBinding(key.WithKeys("p")),
		ExpandAll:   key.NewBinding(key.WithKeys("E")),
		CollapseAll: key.NewBinding(key.WithKeys("C")),
		Copy:        key.NewBinding(key.WithKeys("c")),
	}
}

// leChunk encodes one little-endian chunk with its trailing alignment pad.
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

// fixtureTree scans a small WAVE-shaped container:
//
//	RIFF (WAVE)
//	  fmt           16 B
//	  LIST (INFO)
//	    IART        10 B
//	  data           4 B
//	  data           2 B
//
// The duplicated data tag exercises occurrence-indexed paths.
func fixtureTree(t *testing.T) *container.Tree {
	t.Helper()

	inner := leChunk("fmt ", make([]byte, 16))
	inner = append(inner, leChunk("LIST", append([]byte("INFO"), leChunk("IART", []byte("an artist\x00"))...))...)
	inner = append(inner, leChunk("data", []byte{0xde, 0xad, 0xbe, 0xef})...)
	inner = append(inner, leChunk("data", []byte{0x01, 0x02})...)
	data := leChunk("RIFF", append([]byte("WAVE"), inner...))

	tree, err := container.Scan(chunk.NewBytes(data), &testProfile, container.ScanOptions{})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	return tree
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := NewModel(fixtureTree(t))
	m.SetKeys(testKeys())
	m.SetSize(60, 20)
	return m
}

func sendKey(m Model, keyType tea.KeyType) Model {
	updated, _ := m.Update(tea.KeyMsg{Type: keyType})
	return updated
}

func sendRune(m Model, r rune) Model {
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return updated
}

func visiblePaths(m Model) []string {
	items := m.GetItems()
	paths := make([]string, len(items))
	for i, it := range items {
		paths[i] = it.Path
	}
	return paths
}

func TestNewModelExpandsTopLevel(t *testing.T) {
	m := newTestModel(t)

	want := []string{"RIFF", "RIFF/fmt", "RIFF/LIST", "RIFF/data[0]", "RIFF/data[1]"}
	got := visiblePaths(m)
	if len(got) != len(want) {
		t.Fatalf("Visible rows = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Row %d = %q, want %q", i, got[i], want[i])
		}
	}

	items := m.GetItems()
	if !items[0].Expanded {
		t.Error("Top-level group should start expanded")
	}
	if !items[2].HasChildren || items[2].Expanded {
		t.Error("LIST should be a collapsed group")
	}
	if m.GetCursor() != 0 {
		t.Errorf("Cursor should start at 0, got %d", m.GetCursor())
	}
}

func TestPathsRoundTripThroughFind(t *testing.T) {
	m := newTestModel(t)
	m.ExpandAll()

	for _, item := range m.GetItems() {
		found, err := m.tree.Find(item.Path)
		if err != nil {
			t.Fatalf("Find(%q): %v", item.Path, err)
		}
		if found != item.Node {
			t.Errorf("Find(%q) resolved a different node", item.Path)
		}
	}
}

func TestEnterTogglesGroup(t *testing.T) {
	m := newTestModel(t)
	m.SetCursor(2) // LIST

	m = sendKey(m, tea.KeyEnter)
	got := visiblePaths(m)
	if len(got) != 6 || got[3] != "RIFF/LIST/IART" {
		t.Fatalf("Expanding LIST should reveal IART, got %v", got)
	}
	if m.GetCursor() != 2 {
		t.Errorf("Cursor should stay on LIST, got %d", m.GetCursor())
	}

	m = sendKey(m, tea.KeyEnter)
	if len(m.GetItems()) != 5 {
		t.Fatalf("Collapsing LIST should hide IART, got %v", visiblePaths(m))
	}
}

func TestEnterOnLeafSelects(t *testing.T) {
	m := newTestModel(t)
	m.SetCursor(1) // fmt

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("Enter on a leaf should emit a selection")
	}
	msg, ok := cmd().(ChunkSelectedMsg)
	if !ok {
		t.Fatalf("Expected ChunkSelectedMsg, got %T", cmd())
	}
	if msg.Item.Path != "RIFF/fmt" {
		t.Errorf("Selected path = %q, want RIFF/fmt", msg.Item.Path)
	}
	if len(updated.GetItems()) != 5 {
		t.Error("Selection should not change the visible rows")
	}
}

func TestRightStepsIntoGroup(t *testing.T) {
	m := newTestModel(t)
	m.SetCursor(2) // LIST, collapsed

	m = sendKey(m, tea.KeyRight)
	if !m.GetItems()[2].Expanded {
		t.Fatal("Right should expand a collapsed group")
	}
	if m.GetCursor() != 2 {
		t.Errorf("Cursor should stay put on expansion, got %d", m.GetCursor())
	}

	m = sendKey(m, tea.KeyRight)
	if m.GetCursor() != 3 {
		t.Errorf("Right on an open group should step to its first child, got %d", m.GetCursor())
	}
}

func TestLeftCollapsesOrClimbs(t *testing.T) {
	m := newTestModel(t)
	m.SetCursor(2)
	m = sendKey(m, tea.KeyRight) // expand LIST
	m = sendKey(m, tea.KeyRight) // onto IART

	m = sendKey(m, tea.KeyLeft)
	if m.GetCursor() != 2 {
		t.Fatalf("Left on a leaf should climb to its parent, got cursor %d", m.GetCursor())
	}

	m = sendKey(m, tea.KeyLeft)
	if m.GetItems()[2].Expanded {
		t.Fatal("Left on an open group should collapse it")
	}

	m = sendKey(m, tea.KeyLeft)
	if m.GetCursor() != 0 {
		t.Fatalf("Left on a collapsed group should climb to RIFF, got %d", m.GetCursor())
	}
}

func TestExpandAndCollapseAll(t *testing.T) {
	m := newTestModel(t)

	m = sendRune(m, 'E')
	if len(m.GetItems()) != 6 {
		t.Fatalf("ExpandAll should show all 6 chunks, got %v", visiblePaths(m))
	}

	m.SetCursor(3) // IART
	m = sendRune(m, 'C')
	got := visiblePaths(m)
	if len(got) != 1 || got[0] != "RIFF" {
		t.Fatalf("CollapseAll should leave only the root, got %v", got)
	}
	if m.GetCursor() != 0 {
		t.Errorf("Cursor should park on the enclosing root, got %d", m.GetCursor())
	}
}

func TestNavigateToPath(t *testing.T) {
	m := newTestModel(t)
	m.CollapseAll()

	if err := m.NavigateToPath("RIFF/LIST/IART"); err != nil {
		t.Fatalf("NavigateToPath: %v", err)
	}
	item := m.CurrentItem()
	if item == nil || item.Path != "RIFF/LIST/IART" {
		t.Fatalf("Cursor should land on IART, got %v", item)
	}

	if err := m.NavigateToPath("RIFF/nope"); err == nil {
		t.Fatal("NavigateToPath should fail for a missing chunk")
	}
}

func TestNavigateToIndexedPath(t *testing.T) {
	m := newTestModel(t)
	m.CollapseAll()

	if err := m.NavigateToPath("RIFF/data[1]"); err != nil {
		t.Fatalf("NavigateToPath: %v", err)
	}
	item := m.CurrentItem()
	if item == nil || item.Path != "RIFF/data[1]" {
		t.Fatalf("Cursor should land on the second data chunk, got %v", item)
	}
	if item.Node.Size != 2 {
		t.Errorf("Wrong node: size = %d, want 2", item.Node.Size)
	}
}

func TestSearchFilter(t *testing.T) {
	m := newTestModel(t)

	m.SetSearchFilter("art")
	if m.MatchCount() != 1 {
		t.Fatalf("Filter 'art' should match IART only, got %v", visiblePaths(m))
	}
	item := m.CurrentItem()
	if item == nil || item.Path != "RIFF/LIST/IART" {
		t.Fatalf("Filtered row should keep its full path, got %v", item)
	}
	if item.Depth != 2 {
		t.Errorf("Filtered row should keep its real depth, got %d", item.Depth)
	}

	// Form types match too
	m.SetSearchFilter("wave")
	if m.MatchCount() != 1 {
		t.Errorf("Filter 'wave' should match RIFF by form, got %v", visiblePaths(m))
	}

	m.SetSearchFilter("")
	if len(m.GetItems()) != 5 {
		t.Fatalf("Clearing the filter should restore the view, got %v", visiblePaths(m))
	}
}

func TestGoToParentKey(t *testing.T) {
	m := newTestModel(t)
	m.SetCursor(3) // data[0]

	m = sendRune(m, 'p')
	item := m.CurrentItem()
	if item == nil || item.Path != "RIFF" {
		t.Fatalf("GoToParent should climb to RIFF, got %v", item)
	}
}

func TestEmptyTree(t *testing.T) {
	m := NewModel(&container.Tree{})
	m.SetKeys(testKeys())
	m.SetSize(40, 10)

	if m.CurrentItem() != nil {
		t.Error("CurrentItem should be nil on an empty tree")
	}
	if m.View() != "Empty container." {
		t.Errorf("View = %q", m.View())
	}

	// Keys are inert on an empty tree
	m = sendKey(m, tea.KeyDown)
	m = sendKey(m, tea.KeyEnter)
	if m.GetCursor() != 0 {
		t.Error("Cursor should stay at 0")
	}
}

func TestScrollingWindow(t *testing.T) {
	m := newTestModel(t)
	m.SetSize(60, 3)

	m = sendKey(m, tea.KeyEnd)
	if m.GetCursor() != 4 {
		t.Fatalf("End should move to the last row, got %d", m.GetCursor())
	}
	if lines := strings.Split(m.View(), "\n"); len(lines) != 3 {
		t.Errorf("View should clamp to 3 rows, got %d", len(lines))
	}
	if !strings.Contains(m.View(), "data") {
		t.Error("Window should have scrolled to the cursor")
	}

	m = sendKey(m, tea.KeyHome)
	if m.GetCursor() != 0 {
		t.Errorf("Home should move to the first row, got %d", m.GetCursor())
	}
	if !strings.Contains(m.View(), "RIFF") {
		t.Error("Window should have scrolled back to the top")
	}
}

func TestViewShowsFormAndSize(t *testing.T) {
	m := newTestModel(t)
	view := m.View()

	if !strings.Contains(view, "WAVE") {
		t.Error("Group rows should show their form type")
	}
	if !strings.Contains(view, "16 B") {
		t.Error("Rows should show payload sizes")
	}
	if !strings.Contains(view, "▾ RIFF") {
		t.Error("Expanded groups should use the open marker")
	}
	if !strings.Contains(view, "▸ LIST") {
		t.Error("Collapsed groups should use the closed marker")
	}
}

func TestFormatSize(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{2048, "2.0 KB"},
		{1536, "1.5 KB"},
		{5 * 1024 * 1024, "5.0 MB"},
	}
	for _, tc := range cases {
		if got := formatSize(tc.n); got != tc.want {
			t.Errorf("formatSize(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}
