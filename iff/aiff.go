package iff

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/joshuapare/chunkkit/chunk"
	"github.com/joshuapare/chunkkit/internal/buf"
)

// commonChunkSize is the fixed size of an AIFF COMM payload; AIFC appends a
// compression type and name after it.
const commonChunkSize = 18

// CommonChunk is the decoded COMM chunk of an AIFF or AIFC form.
type CommonChunk struct {
	Channels     uint16
	SampleFrames uint32
	SampleSize   uint16  // bits per sample
	SampleRate   float64 // decoded from the 80-bit extended float
}

// DecodeCommon decodes a COMM payload. AIFC compression fields past the
// fixed prefix are ignored.
func DecodeCommon(payload []byte) (*CommonChunk, error) {
	if len(payload) < commonChunkSize {
		return nil, &chunk.Error{Kind: chunk.ErrKindParse, Msg: fmt.Sprintf("COMM chunk holds %d bytes, need %d", len(payload), commonChunkSize)}
	}
	return &CommonChunk{
		Channels:     buf.U16BE(payload[0:]),
		SampleFrames: buf.U32BE(payload[2:]),
		SampleSize:   buf.U16BE(payload[6:]),
		SampleRate:   decodeExtended(payload[8:18]),
	}, nil
}

// String renders a one-line summary ("2ch 44100Hz 16-bit, 1024 frames").
func (c *CommonChunk) String() string {
	return fmt.Sprintf("%dch %gHz %d-bit, %d frames", c.Channels, c.SampleRate, c.SampleSize, c.SampleFrames)
}

// decodeExtended converts the 80-bit IEEE 754 extended float AIFF stores
// sample rates in: a sign bit, a 15-bit exponent biased by 16383, and a
// 64-bit mantissa with an explicit integer bit.
func decodeExtended(b []byte) float64 {
	exp := int(buf.U16BE(b) & 0x7fff)
	mant := binary.BigEndian.Uint64(b[2:10])
	if exp == 0 && mant == 0 {
		return 0
	}
	v := math.Ldexp(float64(mant), exp-16383-63)
	if b[0]&0x80 != 0 {
		return -v
	}
	return v
}
