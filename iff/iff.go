// Package iff covers the big-endian branch of the chunk family: EA IFF 85
// containers, the envelope of AIFF, ILBM, 8SVX and ANIM. It registers the
// "iff" dialect with the container package and decodes the AIFF common
// chunk.
package iff

import (
	"io"

	"github.com/joshuapare/chunkkit/chunk"
	"github.com/joshuapare/chunkkit/container"
)

// Tags defined by EA IFF 85 and the AIFF form. CAT really does carry a
// trailing space.
var (
	TagFORM = chunk.MakeFourCC("FORM")
	TagLIST = chunk.MakeFourCC("LIST")
	TagCAT  = chunk.MakeFourCC("CAT ")
	TagPROP = chunk.MakeFourCC("PROP")
	TagAIFF = chunk.MakeFourCC("AIFF")
	TagAIFC = chunk.MakeFourCC("AIFC")
	TagCOMM = chunk.MakeFourCC("COMM")
	TagSSND = chunk.MakeFourCC("SSND")
)

func init() {
	container.Register(Profile())
}

// Profile returns the IFF dialect: big-endian sizes, FORM/LIST/CAT/PROP
// groups carrying a form type, even-byte padding. No Guess hook: IFF
// writers backfill sizes, so a group too small for its form type is
// corruption, not streaming.
func Profile() *container.Profile {
	return &container.Profile{
		Name:      "iff",
		BigEndian: true,
		Align:     2,
		Groups:    []chunk.FourCC{TagFORM, TagLIST, TagCAT, TagPROP},
		Magics:    []chunk.FourCC{TagFORM, TagLIST, TagCAT},
	}
}

// Header is an IFF chunk header: a tag followed by a big-endian 32-bit
// payload size.
type Header = container.Header

// DecodeHeader reads one IFF header at the cursor, leaving the cursor on
// the first payload byte.
func DecodeHeader(p *chunk.Parser) (Header, error) {
	id, err := p.ReadFourCC()
	if err != nil {
		return Header{}, err
	}
	size, err := chunk.ReadBE[uint32](p)
	if err != nil {
		return Header{}, err
	}
	return Header{ID: id, Size: int64(size)}, nil
}

// NewParser returns a parser over r ready for IFF headers; pair it with
// DecodeHeader when driving the chunk loop directly.
func NewParser(r io.ReadSeeker) *chunk.Parser {
	return chunk.New(r)
}

// Parse runs the chunk loop over r with IFF headers.
func Parse(r io.ReadSeeker, body chunk.BodyFunc[Header]) error {
	return chunk.Parse(NewParser(r), DecodeHeader, body)
}

// SkipBody advances past h's payload and its pad byte when one exists,
// returning the consumed count for the parse loop.
func SkipBody(p *chunk.Parser, h *Header) (int64, error) {
	pos, err := p.Skip(h.Size)
	if err != nil {
		return 0, err
	}
	if h.Size%2 == 0 {
		return h.Size, nil
	}
	total, err := p.Size()
	if err != nil {
		return 0, err
	}
	if pos >= total {
		return h.Size, nil
	}
	if _, err := p.Skip(1); err != nil {
		return 0, err
	}
	return h.Size + 1, nil
}
