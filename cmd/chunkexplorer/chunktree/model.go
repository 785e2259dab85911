// Package chunktree renders a scanned container tree as a navigable,
// collapsible list. The tree is fully resident after the scan, so expansion
// and filtering are synchronous rebuilds of the visible rows rather than
// asynchronous loads.
package chunktree

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joshuapare/chunkkit/container"
)

// Item is one visible row of the chunk tree.
type Item struct {
	Node        *container.Node
	Path        string // Find-compatible path addressing this chunk
	Depth       int
	HasChildren bool
	Expanded    bool
}

// Model manages the chunk tree pane.
type Model struct {
	tree     *container.Tree
	items    []Item
	cursor   int
	yOffset  int
	width    int
	height   int
	expanded map[string]bool
	filter   string
	keys     Keys
}

// NewModel creates a chunk tree over a scanned container. Top-level chunks
// start expanded so the file's first layer is visible immediately.
func NewModel(tree *container.Tree) Model {
	m := Model{
		tree:     tree,
		expanded: make(map[string]bool),
	}
	m.ExpandToDepth(1)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// SetKeys sets the keyboard shortcuts for the tree
func (m *Model) SetKeys(keys Keys) {
	m.keys = keys
}

// SetSize sets the visible pane dimensions
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.ensureCursorVisible()
}

// SetSearchFilter filters the tree to chunks whose tag or form type contains
// q, case-insensitively. Matching chunks are shown at their real depth with
// expansion state ignored. An empty q restores the normal view.
func (m *Model) SetSearchFilter(q string) {
	m.filter = strings.TrimSpace(q)
	m.rebuildKeeping(m.currentNode())
}

// MatchCount returns the number of visible rows, which under an active
// filter is the match count.
func (m *Model) MatchCount() int {
	return len(m.items)
}

// ExpandToDepth expands every group whose depth is less than depth, so 1
// exposes the children of top-level chunks.
func (m *Model) ExpandToDepth(depth int) {
	m.walkPaths(func(n *container.Node, path string) {
		if n.Group && n.Depth < depth {
			m.expanded[path] = true
		}
	})
	m.rebuildKeeping(m.currentNode())
}

// ExpandAll expands every group in the tree.
func (m *Model) ExpandAll() {
	m.walkPaths(func(n *container.Node, path string) {
		if n.Group {
			m.expanded[path] = true
		}
	})
	m.rebuildKeeping(m.currentNode())
}

// CollapseAll collapses everything and parks the cursor on the enclosing
// top-level chunk.
func (m *Model) CollapseAll() {
	root := m.currentRoot()
	m.expanded = make(map[string]bool)
	m.rebuild()
	for i := range m.items {
		if m.items[i].Node == root {
			m.cursor = i
			break
		}
	}
	m.ensureCursorVisible()
}

// NavigateToPath expands ancestors as needed and moves the cursor to the
// chunk at path. Any active filter is cleared first.
func (m *Model) NavigateToPath(path string) error {
	target, err := m.tree.Find(path)
	if err != nil {
		return err
	}
	m.filter = ""
	m.walkPaths(func(n *container.Node, p string) {
		if n.Group && nodeContains(n, target) {
			m.expanded[p] = true
		}
	})
	m.rebuild()
	for i := range m.items {
		if m.items[i].Node == target {
			m.cursor = i
			break
		}
	}
	m.ensureCursorVisible()
	return nil
}

// nodeContains reports whether target sits strictly inside n's subtree.
func nodeContains(n, target *container.Node) bool {
	for _, c := range n.Children {
		if c == target || nodeContains(c, target) {
			return true
		}
	}
	return false
}

// CurrentItem returns the row under the cursor, or nil when the view is
// empty.
func (m *Model) CurrentItem() *Item {
	if m.cursor >= 0 && m.cursor < len(m.items) {
		return &m.items[m.cursor]
	}
	return nil
}

// GetItems returns the visible rows
func (m *Model) GetItems() []Item {
	return m.items
}

// GetCursor returns the cursor position
func (m *Model) GetCursor() int {
	return m.cursor
}

// SetCursor moves the cursor to a visible row index
func (m *Model) SetCursor(pos int) {
	if pos >= 0 && pos < len(m.items) {
		m.cursor = pos
		m.ensureCursorVisible()
	}
}

// CopyCurrentPath copies the current chunk path to the clipboard
func (m *Model) CopyCurrentPath() error {
	item := m.CurrentItem()
	if item == nil {
		return fmt.Errorf("no chunk selected")
	}
	return clipboard.WriteAll(item.Path)
}

// Update handles key messages for the tree pane
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		m.moveCursor(-1)

	case key.Matches(keyMsg, m.keys.Down):
		m.moveCursor(1)

	case key.Matches(keyMsg, m.keys.PageUp):
		m.moveCursor(-m.pageSize())

	case key.Matches(keyMsg, m.keys.PageDown):
		m.moveCursor(m.pageSize())

	case key.Matches(keyMsg, m.keys.Home):
		m.cursor = 0
		m.ensureCursorVisible()

	case key.Matches(keyMsg, m.keys.End):
		if len(m.items) > 0 {
			m.cursor = len(m.items) - 1
		}
		m.ensureCursorVisible()

	case key.Matches(keyMsg, m.keys.Enter):
		item := m.CurrentItem()
		if item == nil {
			break
		}
		if item.HasChildren {
			m.toggleCurrent()
		} else {
			selected := *item
			return m, func() tea.Msg {
				return ChunkSelectedMsg{Item: &selected}
			}
		}

	case key.Matches(keyMsg, m.keys.Right):
		item := m.CurrentItem()
		if item == nil || !item.HasChildren {
			break
		}
		if !item.Expanded {
			m.expanded[item.Path] = true
			m.rebuildKeeping(item.Node)
		} else if m.cursor+1 < len(m.items) {
			// Already open: step into the first child.
			m.cursor++
			m.ensureCursorVisible()
		}

	case key.Matches(keyMsg, m.keys.Left):
		item := m.CurrentItem()
		if item == nil {
			break
		}
		if item.Expanded {
			delete(m.expanded, item.Path)
			m.rebuildKeeping(item.Node)
		} else {
			m.goToParent()
		}

	case key.Matches(keyMsg, m.keys.GoToParent):
		m.goToParent()

	case key.Matches(keyMsg, m.keys.ExpandAll):
		m.ExpandAll()

	case key.Matches(keyMsg, m.keys.CollapseAll):
		m.CollapseAll()

	case key.Matches(keyMsg, m.keys.Copy):
		item := m.CurrentItem()
		if item == nil {
			break
		}
		err := m.CopyCurrentPath()
		path := item.Path
		return m, func() tea.Msg {
			return CopyPathRequestedMsg{Path: path, Success: err == nil, Err: err}
		}
	}

	return m, nil
}

// View renders the visible window of the tree
func (m Model) View() string {
	if len(m.items) == 0 {
		if m.filter != "" {
			return "No chunks match."
		}
		return "Empty container."
	}

	end := m.yOffset + m.visibleRows()
	if end > len(m.items) {
		end = len(m.items)
	}

	var b strings.Builder
	for i := m.yOffset; i < end; i++ {
		b.WriteString(m.renderRow(i))
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderRow renders one tree row, highlighting the cursor line.
func (m Model) renderRow(i int) string {
	item := m.items[i]

	prefix := "· "
	if item.HasChildren {
		if item.Expanded {
			prefix = "▾ "
		} else {
			prefix = "▸ "
		}
	}

	indent := strings.Repeat("  ", item.Depth)
	label := strings.TrimRight(item.Node.ID.String(), " ")
	form := ""
	if item.Node.Group {
		form = strings.TrimRight(item.Node.FormType.String(), " ")
	}
	size := formatSize(item.Node.Size)

	// Pad between the label and the right-aligned size using plain rune
	// counts; styles are applied per segment afterwards.
	left := indent + prefix + label
	if form != "" {
		left += " " + form
	}
	gap := m.width - len([]rune(left)) - len([]rune(size)) - 1
	if gap < 1 {
		gap = 1
	}
	plain := left + strings.Repeat(" ", gap) + size

	if i == m.cursor {
		return cursorStyle.Render(truncateRow(plain, m.width))
	}

	var b strings.Builder
	b.WriteString(indent)
	if item.HasChildren {
		b.WriteString(groupStyle.Render(prefix + label))
	} else {
		b.WriteString(leafStyle.Render(prefix + label))
	}
	if form != "" {
		b.WriteString(" ")
		b.WriteString(formStyle.Render(form))
	}
	b.WriteString(strings.Repeat(" ", gap))
	b.WriteString(sizeStyle.Render(size))
	return b.String()
}

// truncateRow clamps a plain row to the pane width.
func truncateRow(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width])
}

// formatSize renders a payload size compactly.
func formatSize(n int64) string {
	switch {
	case n >= 1024*1024:
		return fmt.Sprintf("%.1f MB", float64(n)/(1024*1024))
	case n >= 1024:
		return fmt.Sprintf("%.1f KB", float64(n)/1024)
	default:
		return fmt.Sprintf("%d B", n)
	}
}

// moveCursor moves the cursor by delta, clamped to the visible rows.
func (m *Model) moveCursor(delta int) {
	if len(m.items) == 0 {
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
	m.ensureCursorVisible()
}

func (m *Model) pageSize() int {
	if m.height > 1 {
		return m.height - 1
	}
	return 1
}

func (m *Model) visibleRows() int {
	if m.height > 0 {
		return m.height
	}
	return len(m.items)
}

// ensureCursorVisible scrolls the window so the cursor row is on screen.
func (m *Model) ensureCursorVisible() {
	rows := m.visibleRows()
	if rows <= 0 {
		return
	}
	if m.cursor < m.yOffset {
		m.yOffset = m.cursor
	} else if m.cursor >= m.yOffset+rows {
		m.yOffset = m.cursor - rows + 1
	}
	if m.yOffset < 0 {
		m.yOffset = 0
	}
}

// toggleCurrent flips the expansion of the group under the cursor.
func (m *Model) toggleCurrent() {
	item := m.CurrentItem()
	if item == nil || !item.HasChildren {
		return
	}
	if item.Expanded {
		delete(m.expanded, item.Path)
	} else {
		m.expanded[item.Path] = true
	}
	m.rebuildKeeping(item.Node)
}

// goToParent moves the cursor to the nearest preceding row of lesser depth.
func (m *Model) goToParent() {
	item := m.CurrentItem()
	if item == nil {
		return
	}
	for i := m.cursor - 1; i >= 0; i-- {
		if m.items[i].Depth < item.Depth {
			m.cursor = i
			m.ensureCursorVisible()
			return
		}
	}
}

// currentNode returns the node under the cursor before a rebuild.
func (m *Model) currentNode() *container.Node {
	if item := m.CurrentItem(); item != nil {
		return item.Node
	}
	return nil
}

// currentRoot returns the top-level ancestor of the cursor row.
func (m *Model) currentRoot() *container.Node {
	item := m.CurrentItem()
	if item == nil {
		return nil
	}
	if item.Depth == 0 {
		return item.Node
	}
	for i := m.cursor - 1; i >= 0; i-- {
		if m.items[i].Depth == 0 {
			return m.items[i].Node
		}
	}
	return nil
}

// rebuildKeeping rebuilds the visible rows and tries to keep the cursor on
// the same chunk.
func (m *Model) rebuildKeeping(cur *container.Node) {
	m.rebuild()
	if cur == nil {
		return
	}
	for i := range m.items {
		if m.items[i].Node == cur {
			m.cursor = i
			break
		}
	}
	m.ensureCursorVisible()
}

// rebuild regenerates the flattened visible rows from the expansion state,
// or from the filter when one is active.
func (m *Model) rebuild() {
	m.items = m.items[:0]
	if m.tree == nil {
		return
	}

	if m.filter != "" {
		q := strings.ToLower(m.filter)
		m.walkPaths(func(n *container.Node, path string) {
			if matchesFilter(n, q) {
				m.items = append(m.items, Item{
					Node:        n,
					Path:        path,
					Depth:       n.Depth,
					HasChildren: len(n.Children) > 0,
				})
			}
		})
	} else {
		paths := siblingPaths("", m.tree.Roots)
		for i, n := range m.tree.Roots {
			m.appendVisible(n, paths[i])
		}
	}

	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.ensureCursorVisible()
}

// appendVisible adds n and, when expanded, its subtree to the visible rows.
func (m *Model) appendVisible(n *container.Node, path string) {
	expanded := m.expanded[path]
	m.items = append(m.items, Item{
		Node:        n,
		Path:        path,
		Depth:       n.Depth,
		HasChildren: len(n.Children) > 0,
		Expanded:    expanded && len(n.Children) > 0,
	})
	if !expanded {
		return
	}
	paths := siblingPaths(path, n.Children)
	for i, c := range n.Children {
		m.appendVisible(c, paths[i])
	}
}

func matchesFilter(n *container.Node, q string) bool {
	if strings.Contains(strings.ToLower(n.ID.String()), q) {
		return true
	}
	return n.Group && strings.Contains(strings.ToLower(n.FormType.String()), q)
}

// walkPaths visits every node with its Find-compatible path.
func (m *Model) walkPaths(fn func(*container.Node, string)) {
	if m.tree == nil {
		return
	}
	var walk func(nodes []*container.Node, parent string)
	walk = func(nodes []*container.Node, parent string) {
		paths := siblingPaths(parent, nodes)
		for i, n := range nodes {
			fn(n, paths[i])
			walk(n.Children, paths[i])
		}
	}
	walk(m.tree.Roots, "")
}

// siblingPaths derives path segments for a sibling run. Tags that repeat
// among the siblings get a "[n]" occurrence index so the path stays
// unambiguous under Find.
func siblingPaths(parent string, nodes []*container.Node) []string {
	total := make(map[string]int, len(nodes))
	for _, n := range nodes {
		total[trimTag(n)]++
	}
	seen := make(map[string]int, len(nodes))
	paths := make([]string, len(nodes))
	for i, n := range nodes {
		tag := trimTag(n)
		seg := tag
		if total[tag] > 1 {
			seg = fmt.Sprintf("%s[%d]", tag, seen[tag])
		}
		seen[tag]++
		if parent != "" {
			seg = parent + "/" + seg
		}
		paths[i] = seg
	}
	return paths
}

func trimTag(n *container.Node) string {
	return strings.TrimRight(n.ID.String(), " ")
}
