package container

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/chunkkit/chunk"
	"github.com/joshuapare/chunkkit/internal/testutil"
)

const soundFontYAML = `name: sfbk
byte_order: little
align: 2
groups:
  - RIFF
  - LIST
magics:
  - RIFF
`

func TestParseProfile(t *testing.T) {
	prof, err := ParseProfile([]byte(soundFontYAML))
	require.NoError(t, err)
	require.Equal(t, "sfbk", prof.Name)
	require.False(t, prof.BigEndian)
	require.Equal(t, 2, prof.Align)
	require.Equal(t, []chunk.FourCC{chunk.MakeFourCC("RIFF"), chunk.MakeFourCC("LIST")}, prof.Groups)
	require.True(t, prof.IsMagic(chunk.MakeFourCC("RIFF")))
}

func TestParseProfile_ShortTagsSpacePad(t *testing.T) {
	prof, err := ParseProfile([]byte("name: x\ngroups: [CAT]\nmagics: [FOR]\n"))
	require.NoError(t, err)
	require.Equal(t, chunk.MakeFourCC("CAT "), prof.Groups[0])
	require.Equal(t, chunk.MakeFourCC("FOR "), prof.Magics[0])
}

func TestParseProfile_Invalid(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"missing name", "magics: [RIFF]\n"},
		{"bad byte order", "name: x\nbyte_order: middle\nmagics: [RIFF]\n"},
		{"no magics", "name: x\ngroups: [LIST]\n"},
		{"tag too long", "name: x\nmagics: [TOOLONG]\n"},
		{"empty tag", "name: x\nmagics: ['']\n"},
		{"negative align", "name: x\nalign: -2\nmagics: [RIFF]\n"},
		{"not yaml", ": ["},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseProfile([]byte(tc.yaml))
			require.Error(t, err)
		})
	}
}

func TestLoadProfile_ScansWithLoadedDialect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sfbk.yaml")
	require.NoError(t, os.WriteFile(path, []byte(soundFontYAML), 0o644))

	prof, err := LoadProfile(path)
	require.NoError(t, err)

	data := testutil.WaveFile([]byte{9, 9})
	tree, err := Scan(chunk.NewBytes(data), prof, ScanOptions{})
	require.NoError(t, err)
	require.Equal(t, "sfbk", tree.Profile)
	require.Len(t, tree.Roots, 1)
}

func TestLoadProfile_MissingFile(t *testing.T) {
	_, err := LoadProfile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
