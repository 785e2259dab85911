package chunk

import (
	"bytes"
	"io"
)

// Parser is a cursor over a chunk byte source. It owns the source's seek
// position for the duration of a parse; interleaving other readers on the
// same source corrupts the parse. A Parser is not safe for concurrent use.
type Parser struct {
	src     io.ReadSeeker
	depth   int
	scratch [8]byte
}

// New returns a Parser over src, positioned wherever src currently points.
func New(src io.ReadSeeker) *Parser {
	return &Parser{src: src}
}

// NewBytes returns a Parser over an in-memory source.
func NewBytes(data []byte) *Parser {
	return New(bytes.NewReader(data))
}

// Seek moves the cursor to an absolute offset and returns the new position.
func (p *Parser) Seek(off int64) (int64, error) {
	pos, err := p.src.Seek(off, io.SeekStart)
	if err != nil {
		return pos, &Error{Kind: ErrKindIO, Msg: "seek source", Err: err}
	}
	return pos, nil
}

// Skip moves the cursor n bytes from the current position (negative n moves
// backward) and returns the new position. Skipping past either end of the
// source is the underlying seeker's concern; sources in this package reject
// negative positions.
func (p *Parser) Skip(n int64) (int64, error) {
	pos, err := p.src.Seek(n, io.SeekCurrent)
	if err != nil {
		return pos, &Error{Kind: ErrKindIO, Msg: "skip", Err: err}
	}
	return pos, nil
}

// Rewind moves the cursor n bytes backward and returns the new position.
// Rewinding past the start of the source fails with ErrKindIO.
func (p *Parser) Rewind(n int64) (int64, error) {
	return p.Skip(-n)
}

// Position returns the current cursor offset from the start of the source.
func (p *Parser) Position() (int64, error) {
	pos, err := p.src.Seek(0, io.SeekCurrent)
	if err != nil {
		return pos, &Error{Kind: ErrKindIO, Msg: "query position", Err: err}
	}
	return pos, nil
}

// Size returns the total size of the source. The cursor position is
// preserved.
func (p *Parser) Size() (int64, error) {
	pos, err := p.Position()
	if err != nil {
		return 0, err
	}
	end, err := p.src.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, &Error{Kind: ErrKindIO, Msg: "seek source end", Err: err}
	}
	if _, err := p.Seek(pos); err != nil {
		return 0, err
	}
	return end, nil
}

// Depth returns the group-nesting depth at the cursor: 0 at the top level,
// one higher for the duration of each ParseRegion.
func (p *Parser) Depth() int { return p.depth }

// fill reads exactly n bytes (n <= 8) into the scratch buffer. Short sources
// surface as ErrKindIO wrapping io.EOF or io.ErrUnexpectedEOF.
func (p *Parser) fill(n int) ([]byte, error) {
	buf := p.scratch[:n]
	if _, err := io.ReadFull(p.src, buf); err != nil {
		return nil, &Error{Kind: ErrKindIO, Msg: "read source", Err: err}
	}
	return buf, nil
}
