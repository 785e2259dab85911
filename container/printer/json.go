package printer

import (
	"encoding/json"
	"fmt"

	"github.com/joshuapare/chunkkit/container"
)

// jsonNode represents a chunk in JSON format.
type jsonNode struct {
	Tag      string     `json:"tag"`
	Form     string     `json:"form,omitempty"`
	Offset   int64      `json:"offset"`
	Size     int64      `json:"size"`
	Preview  string     `json:"preview,omitempty"`
	Children []jsonNode `json:"children,omitempty"`
}

// printNodeJSON prints a single chunk in JSON format.
func (p *Printer) printNodeJSON(n *container.Node) error {
	// Without metadata, just output the tag as a string
	if !p.opts.PrintMetadata {
		data, err := json.Marshal(n.ID.String())
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(p.writer, "%s\n", data)
		return err
	}

	data, err := json.MarshalIndent(p.buildJSONNode(n), "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(p.writer, "%s\n", data)
	return err
}

// printTreeJSON prints subtrees in JSON format.
func (p *Printer) printTreeJSON(roots []*container.Node) error {
	// Without metadata, collect and print tags only
	if !p.opts.PrintMetadata {
		return p.printTreeJSONNamesOnly(roots)
	}

	nodes := make([]jsonNode, 0, len(roots))
	for _, n := range roots {
		nodes = append(nodes, p.buildJSONTree(n, 0))
	}

	// A sole subtree marshals as an object, a forest as an array
	var out any = nodes
	if len(nodes) == 1 {
		out = nodes[0]
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(p.writer, "%s\n", data)
	return err
}

// buildJSONTree builds a JSON tree structure recursively.
func (p *Printer) buildJSONTree(n *container.Node, depth int) jsonNode {
	out := p.buildJSONNode(n)

	// Check depth limit before descending
	if p.opts.MaxDepth > 0 && depth+1 >= p.opts.MaxDepth {
		return out
	}
	for _, child := range n.Children {
		out.Children = append(out.Children, p.buildJSONTree(child, depth+1))
	}
	return out
}

// buildJSONNode builds the JSON form of one chunk, without children.
func (p *Printer) buildJSONNode(n *container.Node) jsonNode {
	out := jsonNode{
		Tag:    n.ID.String(),
		Offset: n.Offset,
		Size:   n.Size,
	}
	if n.Group {
		out.Form = n.FormType.String()
	} else if p.opts.ShowPreviews {
		if preview, ok := p.preview(n); ok {
			out.Preview = preview
		}
	}
	return out
}

// printTreeJSONNamesOnly prints only tags as a JSON array (no metadata).
// Addressing a single group lists its children, the ls convention.
func (p *Printer) printTreeJSONNamesOnly(roots []*container.Node) error {
	level := roots
	if len(roots) == 1 && roots[0].Group {
		level = roots[0].Children
	}

	names := make([]string, 0, len(level))
	for _, n := range level {
		names = append(names, n.ID.String())
	}

	data, err := json.Marshal(names)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(p.writer, "%s\n", data)
	return err
}
