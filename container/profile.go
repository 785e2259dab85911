package container

import (
	"github.com/joshuapare/chunkkit/chunk"
)

// headerSize is the fixed encoded size of a chunk header in this family:
// a four-byte tag and a 32-bit payload size.
const headerSize = 8

// Header is a dialect-generic chunk header.
type Header struct {
	ID   chunk.FourCC
	Size int64
}

// GuessFunc recovers a usable payload size for a group whose header
// declares one too small to hold its form type. Streaming writers produce
// such files: they emit the header first and never backfill the size. The
// cursor sits on the group's payload; implementations must restore it.
type GuessFunc func(p *chunk.Parser, h *Header) (int64, error)

// Profile describes one dialect of the chunk family. The zero value is not
// usable; dialects are registered by the format packages or loaded from
// YAML via LoadProfile.
type Profile struct {
	// Name identifies the dialect ("riff", "iff", or a custom name).
	Name string

	// BigEndian selects the byte order of the 32-bit size field.
	BigEndian bool

	// Align is the chunk alignment in bytes: 2 pads odd payloads with one
	// byte that the declared size does not count. 0 or 1 means no padding.
	Align int

	// Groups are the tags whose payload is a form type followed by nested
	// chunks.
	Groups []chunk.FourCC

	// Magics are the tags a file of this dialect may begin with.
	Magics []chunk.FourCC

	// Guess, when non-nil, recovers group sizes the writer never filled in.
	// A nil Guess fails such groups with chunk.ErrUnimplemented.
	Guess GuessFunc
}

// ReadHeader decodes one header at the cursor in the profile's byte order,
// leaving the cursor on the first payload byte.
func (prof *Profile) ReadHeader(p *chunk.Parser) (Header, error) {
	id, err := p.ReadFourCC()
	if err != nil {
		return Header{}, err
	}
	var size uint32
	if prof.BigEndian {
		size, err = chunk.ReadBE[uint32](p)
	} else {
		size, err = chunk.Read[uint32](p)
	}
	if err != nil {
		return Header{}, err
	}
	return Header{ID: id, Size: int64(size)}, nil
}

// IsGroup reports whether id opens a nested chunk sequence in this dialect.
func (prof *Profile) IsGroup(id chunk.FourCC) bool {
	for _, g := range prof.Groups {
		if g == id {
			return true
		}
	}
	return false
}

// IsMagic reports whether id is a valid leading tag for this dialect.
func (prof *Profile) IsMagic(id chunk.FourCC) bool {
	for _, m := range prof.Magics {
		if m == id {
			return true
		}
	}
	return false
}

// pad returns the number of alignment bytes that follow a payload of size
// bytes.
func (prof *Profile) pad(size int64) int64 {
	if prof.Align < 2 {
		return 0
	}
	rem := size % int64(prof.Align)
	if rem == 0 {
		return 0
	}
	return int64(prof.Align) - rem
}

var registry []*Profile

// Register adds a profile to the set Detect and Open consider. The format
// packages call it from init; later registrations win ties, so a program
// can shadow a built-in dialect.
func Register(prof *Profile) {
	registry = append([]*Profile{prof}, registry...)
}

// Profiles returns the registered profiles, most recently registered first.
func Profiles() []*Profile {
	return append([]*Profile(nil), registry...)
}
