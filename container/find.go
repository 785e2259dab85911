package container

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNotFound indicates a path that matches no node in the tree.
var ErrNotFound = errors.New("container: path not found")

// Find resolves a path of tags to a node. Segments are separated by "/" or
// "\", matched case-sensitively with trailing-space forgiveness ("fmt"
// addresses "fmt "). A group segment may pin the form type with a dot
// ("LIST.INFO"), and "[n]" selects among same-tag siblings:
//
//	RIFF/LIST.INFO/IART
//	RIFF/data[1]
//
// Find returns ErrNotFound (wrapped with the offending segment) on a miss.
func (t *Tree) Find(path string) (*Node, error) {
	segs := splitPath(path)
	if len(segs) == 0 {
		return nil, fmt.Errorf("empty path %q: %w", path, ErrNotFound)
	}
	candidates := t.Roots
	var cur *Node
	for _, seg := range segs {
		name, index, err := parseSegment(seg)
		if err != nil {
			return nil, err
		}
		tag, form, pinForm := strings.Cut(name, ".")

		var matches []*Node
		for _, n := range candidates {
			if !tagMatches(n.ID.String(), tag) {
				continue
			}
			if pinForm && !tagMatches(n.FormType.String(), form) {
				continue
			}
			matches = append(matches, n)
		}
		if index >= len(matches) {
			return nil, fmt.Errorf("segment %q: %w", seg, ErrNotFound)
		}
		cur = matches[index]
		candidates = cur.Children
	}
	return cur, nil
}

// splitPath normalizes separators and drops empty segments, so leading and
// doubled slashes are forgiven.
func splitPath(path string) []string {
	path = strings.ReplaceAll(path, `\`, "/")
	parts := strings.Split(path, "/")
	segs := parts[:0]
	for _, s := range parts {
		if s = strings.TrimSpace(s); s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}

// parseSegment splits the optional "[n]" sibling index off a segment.
func parseSegment(seg string) (name string, index int, err error) {
	open := strings.IndexByte(seg, '[')
	if open < 0 {
		return seg, 0, nil
	}
	if !strings.HasSuffix(seg, "]") {
		return "", 0, fmt.Errorf("segment %q: unterminated index", seg)
	}
	n, convErr := strconv.Atoi(seg[open+1 : len(seg)-1])
	if convErr != nil || n < 0 {
		return "", 0, fmt.Errorf("segment %q: bad index", seg)
	}
	return seg[:open], n, nil
}

// tagMatches compares a node tag against user input, forgiving the trailing
// padding spaces tags like "fmt " carry.
func tagMatches(tag, want string) bool {
	if tag == want {
		return true
	}
	return strings.TrimRight(tag, " ") == want
}
