// Package riff covers the little-endian branch of the chunk family: RIFF
// containers and their LIST sub-groups, the envelope of WAV, AVI and WebP.
// It registers the "riff" dialect with the container package and decodes
// the payloads worth decoding: the WAVE format chunk and LIST/INFO text.
package riff

import (
	"io"

	"github.com/joshuapare/chunkkit/chunk"
	"github.com/joshuapare/chunkkit/container"
)

// Tags defined by the RIFF specification and the WAVE form.
var (
	TagRIFF = chunk.MakeFourCC("RIFF")
	TagLIST = chunk.MakeFourCC("LIST")
	TagINFO = chunk.MakeFourCC("INFO")
	TagWAVE = chunk.MakeFourCC("WAVE")
	TagFmt  = chunk.MakeFourCC("fmt ")
	TagData = chunk.MakeFourCC("data")
)

func init() {
	container.Register(Profile())
}

// Profile returns the RIFF dialect: little-endian sizes, RIFF and LIST
// groups carrying a form type, even-byte padding. Its Guess hook recovers
// the all-too-common streaming WAV whose writer never backfilled the RIFF
// size: the group is taken to run to the end of the source.
func Profile() *container.Profile {
	return &container.Profile{
		Name:      "riff",
		BigEndian: false,
		Align:     2,
		Groups:    []chunk.FourCC{TagRIFF, TagLIST},
		Magics:    []chunk.FourCC{TagRIFF},
		Guess:     guessStreamedSize,
	}
}

func guessStreamedSize(p *chunk.Parser, h *Header) (int64, error) {
	pos, err := p.Position()
	if err != nil {
		return 0, err
	}
	total, err := p.Size()
	if err != nil {
		return 0, err
	}
	return total - pos, nil
}

// Header is a RIFF chunk header: a tag followed by a little-endian 32-bit
// payload size. It is the dialect-specific alias of container.Header, kept
// so riff.Parse reads naturally without importing container.
type Header = container.Header

// DecodeHeader reads one RIFF header at the cursor, leaving the cursor on
// the first payload byte.
func DecodeHeader(p *chunk.Parser) (Header, error) {
	id, err := p.ReadFourCC()
	if err != nil {
		return Header{}, err
	}
	size, err := chunk.Read[uint32](p)
	if err != nil {
		return Header{}, err
	}
	return Header{ID: id, Size: int64(size)}, nil
}

// NewParser returns a parser over r ready for RIFF headers; pair it with
// DecodeHeader when driving the chunk loop directly.
func NewParser(r io.ReadSeeker) *chunk.Parser {
	return chunk.New(r)
}

// Parse runs the chunk loop over r with RIFF headers. The body contract is
// chunk.BodyFunc's; SkipBody disposes of chunks the caller has no interest
// in.
func Parse(r io.ReadSeeker, body chunk.BodyFunc[Header]) error {
	return chunk.Parse(NewParser(r), DecodeHeader, body)
}

// SkipBody advances past h's payload and its pad byte when one exists,
// returning the consumed count for the parse loop. RIFF pads odd payloads
// to even offsets, but the final chunk of a file may legally omit the pad.
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
