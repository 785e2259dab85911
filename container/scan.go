package container

import (
	"fmt"

	"github.com/joshuapare/chunkkit/chunk"
)

// ScanOptions bounds a scan of untrusted input. Zero values mean unlimited.
type ScanOptions struct {
	// MaxDepth fails the scan when group nesting exceeds it. The engine
	// itself never caps depth; this is the configuration-level guard.
	MaxDepth int

	// MaxChunks fails the scan after recording that many chunks, bounding
	// work on pathological files.
	MaxChunks int
}

// Scan drives the parse engine over the whole source and records every
// chunk. The cursor may start anywhere; Scan rewinds it. On success the
// source was consumed exactly.
func Scan(p *chunk.Parser, prof *Profile, opts ScanOptions) (*Tree, error) {
	total, err := p.Size()
	if err != nil {
		return nil, err
	}
	tree := &Tree{Size: total, Profile: prof.Name}
	s := &scanner{p: p, prof: prof, opts: opts, tree: tree, ends: []int64{total}}
	if err := chunk.Parse(p, prof.ReadHeader, s.body); err != nil {
		return nil, err
	}
	return tree, nil
}

// scanner carries the walk state threaded through the engine callbacks. The
// ends stack mirrors the engine's region nesting so pad bytes are only
// consumed inside the region that owns them.
type scanner struct {
	p      *chunk.Parser
	prof   *Profile
	opts   ScanOptions
	tree   *Tree
	parent *Node
	ends   []int64
	count  int
}

func (s *scanner) regionEnd() int64 {
	return s.ends[len(s.ends)-1]
}

func (s *scanner) body(p *chunk.Parser, h *Header) (int64, error) {
	s.count++
	if s.opts.MaxChunks > 0 && s.count > s.opts.MaxChunks {
		return 0, &chunk.Error{Kind: chunk.ErrKindParse, Msg: fmt.Sprintf("chunk count exceeds limit %d", s.opts.MaxChunks)}
	}

	start, err := p.Position()
	if err != nil {
		return 0, err
	}
	node := &Node{
		ID:            h.ID,
		Offset:        start - headerSize,
		PayloadOffset: start,
		Size:          h.Size,
		Depth:         p.Depth(),
	}
	if s.parent != nil {
		s.parent.Children = append(s.parent.Children, node)
	} else {
		s.tree.Roots = append(s.tree.Roots, node)
	}

	if !s.prof.IsGroup(h.ID) {
		if _, err := p.Skip(h.Size); err != nil {
			return 0, err
		}
		return s.consumePad(h.Size)
	}

	if s.opts.MaxDepth > 0 && p.Depth()+1 > s.opts.MaxDepth {
		return 0, &chunk.Error{Kind: chunk.ErrKindParse, Msg: fmt.Sprintf("group %q at offset %d: nesting exceeds depth limit %d", h.ID, node.Offset, s.opts.MaxDepth)}
	}
	if h.Size < fourCCSize {
		// Too small to hold its own form type: a streaming writer that
		// never backfilled the header, or corruption. Only the dialect can
		// tell, via its Guess hook.
		if s.prof.Guess == nil {
			return 0, fmt.Errorf("group %q at offset %d declares %d bytes: %w", h.ID, node.Offset, h.Size, chunk.ErrUnimplemented)
		}
		size, err := s.prof.Guess(p, h)
		if err != nil {
			return 0, err
		}
		h.Size = size
		node.Size = size
	}

	ft, err := p.ReadFourCC()
	if err != nil {
		return 0, err
	}
	node.Group = true
	node.FormType = ft

	prev := s.parent
	s.parent = node
	s.ends = append(s.ends, start+h.Size)
	err = chunk.ParseRegion(p, s.prof.ReadHeader, s.body, h.Size-fourCCSize)
	s.parent = prev
	s.ends = s.ends[:len(s.ends)-1]
	if err != nil {
		return 0, err
	}
	return s.consumePad(h.Size)
}

// consumePad skips the alignment byte that follows an odd payload, unless
// the enclosing region ends first; files routinely omit the very last pad.
// Returns the byte count the parse loop should account for.
func (s *scanner) consumePad(size int64) (int64, error) {
	pad := s.prof.pad(size)
	if pad == 0 {
		return size, nil
	}
	pos, err := s.p.Position()
	if err != nil {
		return 0, err
	}
	if pos+pad > s.regionEnd() {
		return size, nil
	}
	if _, err := s.p.Skip(pad); err != nil {
		return 0, err
	}
	return size + pad, nil
}

const fourCCSize = 4
