package printer

import (
	"fmt"
	"strings"

	"github.com/joshuapare/chunkkit/container"
	"github.com/joshuapare/chunkkit/internal/buf"
)

// printNodeText prints one chunk in human-readable text format.
func (p *Printer) printNodeText(n *container.Node, depth int) error {
	indent := strings.Repeat(" ", depth*p.opts.IndentSize)

	// Print the tag, with the form type for groups
	fmt.Fprintf(p.writer, "%s[%s]", indent, n.ID)
	if n.Group {
		fmt.Fprintf(p.writer, " %s", n.FormType)
	}

	// Print metadata if requested
	if p.opts.PrintMetadata {
		if n.Group {
			fmt.Fprintf(p.writer, " (%d bytes, %d children)", n.Size, len(n.Children))
		} else {
			fmt.Fprintf(p.writer, " (%d bytes)", n.Size)
		}
	}

	if p.opts.ShowOffsets {
		fmt.Fprintf(p.writer, " @ 0x%x", n.Offset)
	}
	fmt.Fprintln(p.writer)

	// Print a payload preview for leaves if requested
	if p.opts.ShowPreviews && !n.Group {
		if preview, ok := p.preview(n); ok {
			fmt.Fprintf(p.writer, "%s%s%s\n", indent, strings.Repeat(" ", p.opts.IndentSize), preview)
		}
	}

	return nil
}

// printTreeText recursively prints subtrees in text format.
func (p *Printer) printTreeText(roots []*container.Node) error {
	for _, n := range roots {
		if err := p.printSubtreeText(n, 0); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) printSubtreeText(n *container.Node, depth int) error {
	// Check depth limit
	if p.opts.MaxDepth > 0 && depth >= p.opts.MaxDepth {
		return nil
	}

	if err := p.printNodeText(n, depth); err != nil {
		return err
	}

	for _, child := range n.Children {
		if err := p.printSubtreeText(child, depth+1); err != nil {
			return err
		}
	}

	return nil
}

// preview renders up to MaxPreviewBytes of n's payload as hex. It returns
// ok = false when the Printer has no source bytes or the payload is empty
// or out of bounds.
func (p *Printer) preview(n *container.Node) (string, bool) {
	if p.data == nil || n.Size == 0 {
		return "", false
	}
	payload, ok := buf.Slice(p.data, int(n.PayloadOffset), int(n.Size))
	if !ok {
		return "", false
	}
	maxBytes := p.opts.MaxPreviewBytes
	if maxBytes == 0 {
		maxBytes = len(payload)
	}
	displayLen := min(len(payload), maxBytes)
	out := fmt.Sprintf("%X", payload[:displayLen])
	if len(payload) > maxBytes {
		out += fmt.Sprintf(" (truncated, %d total bytes)", len(payload))
	}
	return out, true
}
