package riff

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/chunkkit/chunk"
	"github.com/joshuapare/chunkkit/internal/testutil"
)

func TestDecodeHeader(t *testing.T) {
	p := chunk.NewBytes([]byte("data\x04\x00\x00\x00full"))

	h, err := DecodeHeader(p)
	require.NoError(t, err)
	require.Equal(t, TagData, h.ID)
	require.Equal(t, int64(4), h.Size)

	pos, err := p.Position()
	require.NoError(t, err)
	require.Equal(t, int64(8), pos)
}

func TestParse_FlatStream(t *testing.T) {
	// Two sibling chunks, the first odd-sized so a pad byte sits between.
	data := bytes.Join([][]byte{
		testutil.LEChunk("odd ", []byte("abc")),
		testutil.LEChunk("data", []byte("wxyz")),
	}, nil)

	var tags []string
	err := Parse(bytes.NewReader(data), func(p *chunk.Parser, h *Header) (int64, error) {
		tags = append(tags, h.ID.String())
		return SkipBody(p, h)
	})
	require.NoError(t, err)
	require.Equal(t, []string{"odd ", "data"}, tags)
}

func TestSkipBody_FinalPadOmitted(t *testing.T) {
	// Odd final chunk with no pad byte after it.
	data := []byte("odd \x03\x00\x00\x00abc")

	err := Parse(bytes.NewReader(data), func(p *chunk.Parser, h *Header) (int64, error) {
		return SkipBody(p, h)
	})
	require.NoError(t, err)
}

func TestProfile(t *testing.T) {
	prof := Profile()
	require.Equal(t, "riff", prof.Name)
	require.False(t, prof.BigEndian)
	require.True(t, prof.IsGroup(TagRIFF))
	require.True(t, prof.IsGroup(TagLIST))
	require.False(t, prof.IsGroup(TagData))
	require.True(t, prof.IsMagic(TagRIFF))
	require.NotNil(t, prof.Guess)
}

func TestGuessStreamedSize(t *testing.T) {
	p := chunk.NewBytes(make([]byte, 32))
	_, err := p.Seek(8)
	require.NoError(t, err)

	size, err := guessStreamedSize(p, &Header{ID: TagRIFF})
	require.NoError(t, err)
	require.Equal(t, int64(24), size)

	// The guess must not move the cursor.
	pos, err := p.Position()
	require.NoError(t, err)
	require.Equal(t, int64(8), pos)
}

func TestDecodeWaveFormat(t *testing.T) {
	wav := testutil.WaveFile(nil)
	// fmt payload sits at offset 20 in the canned file.
	w, err := DecodeWaveFormat(wav[20:36])
	require.NoError(t, err)
	require.Equal(t, uint16(WaveFormatPCM), w.FormatTag)
	require.Equal(t, uint16(2), w.Channels)
	require.Equal(t, uint32(44100), w.SamplesPerSec)
	require.Equal(t, uint32(176400), w.BytesPerSec)
	require.Equal(t, uint16(4), w.BlockAlign)
	require.Equal(t, uint16(16), w.BitsPerSample)
	require.Equal(t, "PCM 2ch 44100Hz 16-bit", w.String())
}

func TestDecodeWaveFormat_Short(t *testing.T) {
	_, err := DecodeWaveFormat(make([]byte, 10))
	require.Error(t, err)
	require.True(t, chunk.IsKind(err, chunk.ErrKindParse))
}

func TestWaveFormat_FormatName(t *testing.T) {
	require.Equal(t, "IEEE float", (&WaveFormat{FormatTag: WaveFormatIEEEFloat}).FormatName())
	require.Equal(t, "mu-law", (&WaveFormat{FormatTag: WaveFormatMuLaw}).FormatName())
	require.Equal(t, "format 0x1234", (&WaveFormat{FormatTag: 0x1234}).FormatName())
}

func TestDecodeInfoString(t *testing.T) {
	s, err := DecodeInfoString([]byte("plain ascii\x00"))
	require.NoError(t, err)
	require.Equal(t, "plain ascii", s)

	// 0xE9 is e-acute in Windows-1252.
	s, err = DecodeInfoString([]byte{'c', 'a', 'f', 0xe9, 0x00})
	require.NoError(t, err)
	require.Equal(t, "café", s)

	// Padding NULs after the terminator are stripped too.
	s, err = DecodeInfoString([]byte("x\x00\x00\x00"))
	require.NoError(t, err)
	require.Equal(t, "x", s)

	s, err = DecodeInfoString(nil)
	require.NoError(t, err)
	require.Equal(t, "", s)
}

func TestInfoName(t *testing.T) {
	require.Equal(t, "Artist", InfoName(chunk.MakeFourCC("IART")))
	require.Equal(t, "Software", InfoName(chunk.MakeFourCC("ISFT")))
	require.Equal(t, "XXXX", InfoName(chunk.MakeFourCC("XXXX")))
}
