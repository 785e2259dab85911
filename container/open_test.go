package container_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/chunkkit/container"
	"github.com/joshuapare/chunkkit/internal/testutil"

	_ "github.com/joshuapare/chunkkit/iff"
	_ "github.com/joshuapare/chunkkit/riff"
)

func TestOpen_DetectsAndScans(t *testing.T) {
	samples := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	path := filepath.Join(t.TempDir(), "tone.wav")
	require.NoError(t, os.WriteFile(path, testutil.WaveFile(samples), 0o644))

	f, err := container.Open(path, container.OpenOptions{})
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, "riff", f.Profile().Name)
	require.Equal(t, path, f.Path)

	n, err := f.Find("RIFF/data")
	require.NoError(t, err)

	payload, ok := f.Payload(n)
	require.True(t, ok)
	require.Equal(t, samples, payload)
}

func TestOpen_CloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tone.wav")
	require.NoError(t, os.WriteFile(path, testutil.WaveFile(nil), 0o644))

	f, err := container.Open(path, container.OpenOptions{})
	require.NoError(t, err)
	require.NoError(t, f.Close())
	require.NoError(t, f.Close())
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := container.Open(filepath.Join(t.TempDir(), "absent.wav"), container.OpenOptions{})
	require.Error(t, err)
}

func TestOpenBytes_IFF(t *testing.T) {
	f, err := container.OpenBytes(testutil.AIFFFile(make([]byte, 4)), container.OpenOptions{})
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, "iff", f.Profile().Name)

	n, err := f.Find("FORM/COMM")
	require.NoError(t, err)
	require.Equal(t, int64(18), n.Size)
}

func TestOpenBytes_UnknownDialect(t *testing.T) {
	_, err := container.OpenBytes([]byte("GIF89a, not chunks"), container.OpenOptions{})
	require.Error(t, err)
	require.ErrorIs(t, err, container.ErrNotFound)
}

func TestOpenBytes_ForcedProfile(t *testing.T) {
	// An IFF-shaped profile forced onto RIFF bytes reads sizes with the
	// wrong byte order and must fail loudly, not misparse.
	prof, err := container.ParseProfile([]byte("name: wrong\nbyte_order: big\nalign: 2\ngroups: [RIFF]\nmagics: [RIFF]\n"))
	require.NoError(t, err)

	_, err = container.OpenBytes(testutil.WaveFile([]byte{1, 2}), container.OpenOptions{Profile: prof})
	require.Error(t, err)
}

func TestOpenBytes_ScanLimits(t *testing.T) {
	data := testutil.WaveFile(nil)

	_, err := container.OpenBytes(data, container.OpenOptions{Scan: container.ScanOptions{MaxChunks: 1}})
	require.Error(t, err)

	f, err := container.OpenBytes(data, container.OpenOptions{})
	require.NoError(t, err)
	defer f.Close()
}
