// Package printer renders scanned chunk trees as indented text or JSON.
package printer

import (
	"fmt"
	"io"

	"github.com/joshuapare/chunkkit/container"
)

const (
	DefaultIndentSize      = 2
	DefaultMaxDepth        = 0
	DefaultMaxPreviewBytes = 16
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs human-readable indented text.
	FormatText Format = "text"

	// FormatJSON outputs JSON format.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per indent level (text format only).
	// Default: 2
	IndentSize int

	// MaxDepth limits recursion depth (0 = unlimited).
	// Default: 0 (unlimited)
	MaxDepth int

	// ShowOffsets includes each chunk's byte offset (text format only;
	// JSON output always carries offsets).
	// Default: false
	ShowOffsets bool

	// ShowPreviews includes a hex preview of leaf payloads. Previews need
	// the source bytes; a Printer built without them prints none.
	// Default: true
	ShowPreviews bool

	// MaxPreviewBytes limits how many payload bytes a preview displays.
	// Longer payloads are truncated. Set to 0 for no limit.
	// Default: 16
	MaxPreviewBytes int

	// PrintMetadata includes sizes, form types and child counts.
	// When false, shows bare tags (clean tree output).
	// Default: true
	PrintMetadata bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:          FormatText,
		IndentSize:      DefaultIndentSize,
		MaxDepth:        DefaultMaxDepth,
		ShowOffsets:     false,
		ShowPreviews:    true,
		MaxPreviewBytes: DefaultMaxPreviewBytes,
		PrintMetadata:   true,
	}
}

// Printer handles formatted output of chunk trees.
type Printer struct {
	opts   Options
	writer io.Writer
	tree   *container.Tree
	data   []byte
}

// New creates a new Printer.
//
// The Tree supplies the structure, data holds the scanned source bytes for
// payload previews (nil disables them), the Writer receives the output, and
// Options controls formatting behavior.
//
// Example:
//
//	f, _ := container.Open("take.wav", container.OpenOptions{})
//	p := printer.New(f.Tree, f.Data, os.Stdout, printer.DefaultOptions())
//	p.PrintTree("")
func New(tree *container.Tree, data []byte, w io.Writer, opts Options) *Printer {
	return &Printer{
		tree:   tree,
		data:   data,
		writer: w,
		opts:   opts,
	}
}

// PrintNode prints a single chunk without its children.
//
// The path follows container.Tree.Find syntax.
//
// Example:
//
//	p.PrintNode("RIFF/fmt")
func (p *Printer) PrintNode(path string) error {
	node, err := p.tree.Find(path)
	if err != nil {
		return fmt.Errorf("find chunk %q: %w", path, err)
	}

	switch p.opts.Format {
	case FormatJSON:
		return p.printNodeJSON(node)
	case FormatText:
		return p.printNodeText(node, 0)
	default:
		return p.printNodeText(node, 0)
	}
}

// PrintTree prints a subtree recursively. An empty path prints the whole
// tree from its roots.
//
// Example:
//
//	opts := printer.DefaultOptions()
//	opts.MaxDepth = 3
//	p := printer.New(f.Tree, f.Data, os.Stdout, opts)
//	p.PrintTree("RIFF/LIST")
func (p *Printer) PrintTree(path string) error {
	roots := p.tree.Roots
	if path != "" {
		node, err := p.tree.Find(path)
		if err != nil {
			return fmt.Errorf("find chunk %q: %w", path, err)
		}
		roots = []*container.Node{node}
	}

	switch p.opts.Format {
	case FormatJSON:
		return p.printTreeJSON(roots)
	case FormatText:
		return p.printTreeText(roots)
	default:
		return p.printTreeText(roots)
	}
}
