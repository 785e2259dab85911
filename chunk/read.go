package chunk

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Integer is the set of fixed-width integer types a chunk field can decode
// into. The set is exact (no ~): instantiating Read or ReadBE with anything
// else is a compile error, which is the point - field widths in this family
// are always explicit.
type Integer interface {
	uint8 | uint16 | uint32 | uint64 | int8 | int16 | int32 | int64
}

// width returns the encoded size of T in bytes.
func width[T Integer]() int {
	var v T
	switch any(v).(type) {
	case uint8, int8:
		return 1
	case uint16, int16:
		return 2
	case uint32, int32:
		return 4
	default:
		return 8
	}
}

func readInt[T Integer](p *Parser, order binary.ByteOrder) (T, error) {
	var v T
	buf, err := p.fill(width[T]())
	if err != nil {
		return v, err
	}
	switch len(buf) {
	case 1:
		v = T(buf[0])
	case 2:
		v = T(order.Uint16(buf))
	case 4:
		v = T(order.Uint32(buf))
	default:
		v = T(order.Uint64(buf))
	}
	return v, nil
}

// Read decodes one little-endian integer at the cursor and advances past it.
// Little-endian is the family default; dialects with big-endian size fields
// use ReadBE.
func Read[T Integer](p *Parser) (T, error) {
	return readInt[T](p, binary.LittleEndian)
}

// ReadBE decodes one big-endian integer at the cursor and advances past it.
func ReadBE[T Integer](p *Parser) (T, error) {
	return readInt[T](p, binary.BigEndian)
}

// Peek decodes a little-endian integer without consuming it: the cursor is
// restored to its prior position whether or not the decode succeeds. A
// failure to restore the cursor supersedes the decode result, since the
// source is unusable after it.
func Peek[T Integer](p *Parser) (T, error) {
	var zero T
	pos, err := p.Position()
	if err != nil {
		return zero, err
	}
	v, rerr := Read[T](p)
	if _, err := p.Seek(pos); err != nil {
		return zero, err
	}
	if rerr != nil {
		return zero, rerr
	}
	return v, nil
}

// PeekBE is Peek with big-endian decoding.
func PeekBE[T Integer](p *Parser) (T, error) {
	var zero T
	pos, err := p.Position()
	if err != nil {
		return zero, err
	}
	v, rerr := ReadBE[T](p)
	if _, err := p.Seek(pos); err != nil {
		return zero, err
	}
	if rerr != nil {
		return zero, rerr
	}
	return v, nil
}

// Expect decodes a little-endian integer and fails with
// ErrKindUnexpectedValue unless it equals want. The cursor stays advanced
// past the decoded bytes either way, so a failed expectation pinpoints the
// offending field without rewinding. The decoded value is returned for
// diagnostics.
func Expect[T Integer](p *Parser, want T) (T, error) {
	got, err := Read[T](p)
	if err != nil {
		return got, err
	}
	if got != want {
		return got, &Error{Kind: ErrKindUnexpectedValue, Msg: fmt.Sprintf("expected %v, read %v", want, got)}
	}
	return got, nil
}

// ExpectBE is Expect with big-endian decoding.
func ExpectBE[T Integer](p *Parser, want T) (T, error) {
	got, err := ReadBE[T](p)
	if err != nil {
		return got, err
	}
	if got != want {
		return got, &Error{Kind: ErrKindUnexpectedValue, Msg: fmt.Sprintf("expected %v, read %v", want, got)}
	}
	return got, nil
}

// ReadFourCC decodes the four-byte tag at the cursor and advances past it.
func (p *Parser) ReadFourCC() (FourCC, error) {
	var f FourCC
	if _, err := io.ReadFull(p.src, f[:]); err != nil {
		return f, &Error{Kind: ErrKindIO, Msg: "read tag", Err: err}
	}
	return f, nil
}

// PeekFourCC decodes the tag at the cursor without consuming it, with the
// same restore contract as Peek.
func (p *Parser) PeekFourCC() (FourCC, error) {
	pos, err := p.Position()
	if err != nil {
		return FourCC{}, err
	}
	f, rerr := p.ReadFourCC()
	if _, err := p.Seek(pos); err != nil {
		return FourCC{}, err
	}
	if rerr != nil {
		return FourCC{}, rerr
	}
	return f, nil
}

// ExpectFourCC decodes the tag at the cursor and fails with
// ErrKindUnexpectedValue unless it equals want; the cursor stays advanced
// past the tag either way.
func (p *Parser) ExpectFourCC(want FourCC) (FourCC, error) {
	got, err := p.ReadFourCC()
	if err != nil {
		return got, err
	}
	if got != want {
		return got, &Error{Kind: ErrKindUnexpectedValue, Msg: fmt.Sprintf("expected tag %q, read %q", want, got)}
	}
	return got, nil
}
