package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joshuapare/chunkkit/container"

	"github.com/joshuapare/chunkkit/cmd/chunkexplorer/chunkdetail"
	"github.com/joshuapare/chunkkit/cmd/chunkexplorer/chunktree"
	"github.com/joshuapare/chunkkit/cmd/chunkexplorer/hexview"
	"github.com/joshuapare/chunkkit/cmd/chunkexplorer/logger"
)

// Pane represents which pane is focused
type Pane int

const (
	TreePane Pane = iota
	HexPane
)

// InputMode represents different input modes
type InputMode int

const (
	NormalMode InputMode = iota
	SearchMode
	GoToPathMode
)

// Model is the main application model
type Model struct {
	path      string
	file      *container.File
	chunkTree chunktree.Model
	hexView   hexview.Model
	detail    chunkdetail.Model
	keys      KeyMap
	cfg       Config

	focusedPane Pane
	width       int
	height      int

	// Input modes
	inputMode   InputMode
	inputBuffer string

	// Active tree filter
	searchQuery string

	// Help overlay
	showHelp bool

	// Status message for temporary feedback
	statusMessage string

	err error
}

// NewModel creates a new TUI model. An open or scan failure is carried in
// the model and rendered as the error screen rather than returned.
func NewModel(path string, cfg Config) Model {
	file, err := container.Open(path, container.OpenOptions{})
	if err != nil {
		logger.Error("open failed", "path", path, "error", err)
		return Model{path: path, keys: DefaultKeyMap(), cfg: cfg, err: err}
	}
	logger.Info("container opened",
		"path", path,
		"profile", file.Tree.Profile,
		"roots", len(file.Tree.Roots))
	return newModel(path, file, cfg)
}

// newModel wires the components around an already opened container.
func newModel(path string, file *container.File, cfg Config) Model {
	keys := DefaultKeyMap()

	tree := chunktree.NewModel(file.Tree)
	tree.ExpandToDepth(cfg.ExpandDepth)
	tree.SetKeys(chunktree.Keys{
		Up:          keys.Up,
		Down:        keys.Down,
		Left:        keys.Left,
		Right:       keys.Right,
		PageUp:      keys.PageUp,
		PageDown:    keys.PageDown,
		Home:        keys.Home,
		End:         keys.End,
		Enter:       keys.Enter,
		GoToParent:  keys.GoToParent,
		ExpandAll:   keys.ExpandAll,
		CollapseAll: keys.CollapseAll,
		Copy:        keys.Copy,
	})

	hex := hexview.New()
	hex.SetBytesPerRow(cfg.BytesPerRow)
	hex.SetShowASCII(cfg.ShowASCII)
	hex.SetKeys(hexview.Keys{
		Home:    keys.Home,
		End:     keys.End,
		CopyHex: keys.CopyHex,
	})

	m := Model{
		path:        path,
		file:        file,
		chunkTree:   tree,
		hexView:     hex,
		detail:      chunkdetail.NewModel(),
		keys:        keys,
		cfg:         cfg,
		focusedPane: TreePane,
		inputMode:   NormalMode,
	}
	m.syncHexView()
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Close releases the source mapping. Call when the TUI exits.
func (m *Model) Close() error {
	if m.file == nil {
		return nil
	}
	err := m.file.Close()
	m.file = nil
	return err
}

// syncHexView points the hex pane at the chunk under the tree cursor.
func (m *Model) syncHexView() {
	item := m.chunkTree.CurrentItem()
	if item == nil || m.file == nil {
		m.hexView.Clear()
		return
	}
	payload, ok := m.file.Payload(item.Node)
	if !ok {
		m.hexView.Clear()
		return
	}
	m.hexView.SetChunk(item.Path, item.Node.PayloadOffset, payload)
}

// openDetail shows the detail modal for a tree item.
func (m *Model) openDetail(item *chunktree.Item) {
	if item == nil || m.file == nil {
		return
	}
	n := item.Node
	payload, _ := m.file.Payload(n)
	m.detail.Show(chunkdetail.Detail{
		Path:          item.Path,
		Tag:           n.ID.String(),
		Form:          n.FormType.String(),
		Offset:        n.Offset,
		PayloadOffset: n.PayloadOffset,
		Size:          n.Size,
		Depth:         n.Depth,
		Children:      len(n.Children),
		Group:         n.Group,
		Summary:       summarize(m.file, n),
		Data:          payload,
	})
	// The modal sizes itself from window messages; push the current size.
	var model tea.Model
	model, _ = (&m.detail).Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	m.detail = *model.(*chunkdetail.Model)
}

// Messages

type clearStatusMsg struct{}
