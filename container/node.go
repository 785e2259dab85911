package container

import (
	"errors"

	"github.com/joshuapare/chunkkit/chunk"
)

// Node is one chunk in a scanned tree. Nodes hold offsets into the source,
// never payload copies.
type Node struct {
	// ID is the chunk tag.
	ID chunk.FourCC `json:"id"`

	// FormType is the group's content type (WAVE, AVI , AIFF); zero for
	// leaf chunks.
	FormType chunk.FourCC `json:"formType,omitzero"`

	// Offset is the absolute offset of the chunk header.
	Offset int64 `json:"offset"`

	// PayloadOffset is the absolute offset of the first payload byte. For
	// groups the form type is the first payload field.
	PayloadOffset int64 `json:"payloadOffset"`

	// Size is the declared payload size.
	Size int64 `json:"size"`

	// Depth is the group-nesting depth: 0 for top-level chunks.
	Depth int `json:"depth"`

	// Group reports whether the chunk's payload was parsed as nested
	// chunks.
	Group bool `json:"group,omitempty"`

	// Children are the nested chunks of a group, in file order.
	Children []*Node `json:"children,omitempty"`
}

// Tree is the result of one Scan.
type Tree struct {
	// Roots are the top-level chunks in file order. A well-formed file of
	// this family usually has exactly one.
	Roots []*Node `json:"roots"`

	// Size is the total source size in bytes.
	Size int64 `json:"size"`

	// Profile is the name of the dialect that produced the tree.
	Profile string `json:"profile"`
}

// SkipChildren, returned from a Walk callback, prunes the current node's
// subtree without stopping the walk.
var SkipChildren = errors.New("container: skip children")

// Walk visits every node depth-first in file order. A callback error stops
// the walk and is returned, except SkipChildren.
func (t *Tree) Walk(fn func(*Node) error) error {
	for _, n := range t.Roots {
		if err := walkNode(n, fn); err != nil {
			return err
		}
	}
	return nil
}

func walkNode(n *Node, fn func(*Node) error) error {
	err := fn(n)
	if errors.Is(err, SkipChildren) {
		return nil
	}
	if err != nil {
		return err
	}
	for _, c := range n.Children {
		if err := walkNode(c, fn); err != nil {
			return err
		}
	}
	return nil
}
