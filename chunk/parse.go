package chunk

import "fmt"

// HeaderFunc decodes one chunk header at the cursor, leaving the cursor on
// the first payload byte. It is the single authority on the dialect's header
// layout; the engine never assumes one.
type HeaderFunc[H any] func(*Parser) (H, error)

// BodyFunc consumes one chunk payload and returns the byte count it accounts
// for: the declared size, plus any dialect pad byte it consumed. On return
// the cursor must sit exactly that many bytes past where the payload began,
// or the loop fails the parse. A BodyFunc recurses into group chunks with
// ParseRegion; it never advances past bytes it did not account for in the
// returned count.
type BodyFunc[H any] func(*Parser, *H) (int64, error)

// Parse runs the chunk loop over the whole source, from offset 0 to the
// source size. Consuming the source exactly is the only success exit; any
// disagreement between declared sizes and the cursor fails with a typed
// error.
func Parse[H any](p *Parser, header HeaderFunc[H], body BodyFunc[H]) error {
	total, err := p.Size()
	if err != nil {
		return err
	}
	if _, err := p.Seek(0); err != nil {
		return err
	}
	return parseLoop(p, header, body, total)
}

// ParseRegion runs the chunk loop over [pos, pos+size), where pos is the
// cursor position on entry. The nesting depth is raised for the duration of
// the region and lowered again on every exit path, error or not, so a failed
// inner parse never strands the counter. An empty region parses as zero
// chunks.
func ParseRegion[H any](p *Parser, header HeaderFunc[H], body BodyFunc[H], size int64) error {
	pos, err := p.Position()
	if err != nil {
		return err
	}
	end, ok := addSize(pos, size)
	if !ok {
		return &Error{Kind: ErrKindSizeOverflow, Msg: fmt.Sprintf("region of %d bytes at offset %d", size, pos)}
	}
	p.depth++
	defer func() { p.depth-- }()
	return parseLoop(p, header, body, end)
}

// parseLoop drives header/body/validate until the cursor lands exactly on
// end. Declared sizes are untrusted: the chunk bound is overflow-checked
// before use, and a cursor that does not land where the size says it must
// fails the parse rather than resynchronizing.
func parseLoop[H any](p *Parser, header HeaderFunc[H], body BodyFunc[H], end int64) error {
	for {
		pos, err := p.Position()
		if err != nil {
			return err
		}
		if pos == end {
			return nil
		}
		if pos > end {
			return &Error{Kind: ErrKindParse, Msg: fmt.Sprintf("region overrun: cursor at %d past region end %d", pos, end)}
		}
		hdr, err := header(p)
		if err != nil {
			return err
		}
		start, err := p.Position()
		if err != nil {
			return err
		}
		declared, err := body(p, &hdr)
		if err != nil {
			return err
		}
		stop, ok := addSize(start, declared)
		if !ok {
			return &Error{Kind: ErrKindSizeOverflow, Msg: fmt.Sprintf("chunk of %d bytes at offset %d", declared, start)}
		}
		pos, err = p.Position()
		if err != nil {
			return err
		}
		// Landing on the region end closes the region even when the last
		// declared size disagrees; the end bound is the outer authority.
		if pos == end {
			return nil
		}
		if pos != stop {
			return &Error{Kind: ErrKindParse, Msg: fmt.Sprintf("size mismatch at offset %d: declared %d bytes, cursor advanced to %d (want %d)", start, declared, pos, stop)}
		}
	}
}

// addSize computes off+size, rejecting negative sizes and int64 wraparound.
func addSize(off, size int64) (int64, bool) {
	if size < 0 {
		return 0, false
	}
	sum := off + size
	if sum < off {
		return 0, false
	}
	return sum, true
}
