package riff

import (
	"fmt"

	"github.com/joshuapare/chunkkit/chunk"
	"github.com/joshuapare/chunkkit/internal/buf"
)

// Wave format tags from the original Microsoft registry. Anything else
// renders numerically.
const (
	WaveFormatPCM        = 0x0001
	WaveFormatIEEEFloat  = 0x0003
	WaveFormatALaw       = 0x0006
	WaveFormatMuLaw      = 0x0007
	WaveFormatExtensible = 0xFFFE
)

// waveFormatSize is the fixed prefix of a "fmt " payload; PCM files carry
// exactly this much, other codecs append an extension block.
const waveFormatSize = 16

// WaveFormat is the decoded "fmt " chunk of a WAVE form.
type WaveFormat struct {
	FormatTag     uint16 // codec: WaveFormatPCM and friends
	Channels      uint16
	SamplesPerSec uint32
	BytesPerSec   uint32
	BlockAlign    uint16
	BitsPerSample uint16
}

// DecodeWaveFormat decodes the fixed prefix of a "fmt " payload. Extension
// bytes past the prefix are ignored.
func DecodeWaveFormat(payload []byte) (*WaveFormat, error) {
	if len(payload) < waveFormatSize {
		return nil, &chunk.Error{Kind: chunk.ErrKindParse, Msg: fmt.Sprintf("fmt chunk holds %d bytes, need %d", len(payload), waveFormatSize)}
	}
	return &WaveFormat{
		FormatTag:     buf.U16LE(payload[0:]),
		Channels:      buf.U16LE(payload[2:]),
		SamplesPerSec: buf.U32LE(payload[4:]),
		BytesPerSec:   buf.U32LE(payload[8:]),
		BlockAlign:    buf.U16LE(payload[12:]),
		BitsPerSample: buf.U16LE(payload[14:]),
	}, nil
}

// FormatName names the codec for display.
func (w *WaveFormat) FormatName() string {
	switch w.FormatTag {
	case WaveFormatPCM:
		return "PCM"
	case WaveFormatIEEEFloat:
		return "IEEE float"
	case WaveFormatALaw:
		return "A-law"
	case WaveFormatMuLaw:
		return "mu-law"
	case WaveFormatExtensible:
		return "extensible"
	default:
		return fmt.Sprintf("format 0x%04x", w.FormatTag)
	}
}

// String renders a one-line summary ("PCM 2ch 44100Hz 16-bit").
func (w *WaveFormat) String() string {
	return fmt.Sprintf("%s %dch %dHz %d-bit", w.FormatName(), w.Channels, w.SamplesPerSec, w.BitsPerSample)
}
