package main

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// leChunk builds one little-endian chunk with its pad byte.
func leChunk(tag string, payload []byte) []byte {
	out := []byte(tag)
	out = binary.LittleEndian.AppendUint32(out, uint32(len(payload)))
	out = append(out, payload...)
	if len(payload)%2 != 0 {
		out = append(out, 0)
	}
	return out
}

// wavFixture returns a minimal WAV file: fmt, LIST/INFO and data chunks.
func wavFixture() []byte {
	fmtPayload := make([]byte, 16)
	binary.LittleEndian.PutUint16(fmtPayload[0:], 1)      // PCM
	binary.LittleEndian.PutUint16(fmtPayload[2:], 2)      // channels
	binary.LittleEndian.PutUint32(fmtPayload[4:], 44100)  // sample rate
	binary.LittleEndian.PutUint32(fmtPayload[8:], 176400) // byte rate
	binary.LittleEndian.PutUint16(fmtPayload[12:], 4)     // block align
	binary.LittleEndian.PutUint16(fmtPayload[14:], 16)    // bits per sample

	info := append([]byte("INFO"), leChunk("IART", []byte("an artist\x00"))...)

	payload := []byte("WAVE")
	payload = append(payload, leChunk("fmt ", fmtPayload)...)
	payload = append(payload, leChunk("LIST", info)...)
	payload = append(payload, leChunk("data", []byte{0xde, 0xad, 0xbe, 0xef})...)
	return leChunk("RIFF", payload)
}

// writeWavFixture writes the canned WAV file to a temp dir and returns its path.
func writeWavFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "take.wav")
	if err := os.WriteFile(path, wavFixture(), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

// resetFlags restores the global flags between test cases.
func resetFlags() {
	verbose = false
	quiet = false
	jsonOut = false
	profilePath = ""
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	// Save original stdout
	origStdout := os.Stdout

	// Create a pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	// Redirect stdout to pipe
	os.Stdout = w

	// Run function
	fnErr := fn()

	// Close write end and restore stdout
	w.Close()
	os.Stdout = origStdout

	// Read captured output
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	return buf.String(), fnErr
}

// assertJSON checks that output is valid JSON
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}

// assertNotContains checks that output doesn't contain unwanted strings
func assertNotContains(t *testing.T, output string, unwanted []string) {
	t.Helper()
	for _, dont := range unwanted {
		if strings.Contains(output, dont) {
			t.Errorf("output contains unwanted string %q\nGot: %s", dont, output)
		}
	}
}
