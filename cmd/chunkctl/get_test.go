package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestGetCommand_Text(t *testing.T) {
	resetFlags()
	getRaw = false
	getOut = ""
	getBytes = 64

	output, err := captureOutput(t, func() error {
		return runGet([]string{writeWavFixture(t), "RIFF/data"})
	})
	if err != nil {
		t.Fatalf("runGet failed: %v", err)
	}

	assertContains(t, output, []string{"[data] (4 bytes)", "DEADBEEF"})
}

func TestGetCommand_JSON(t *testing.T) {
	resetFlags()
	jsonOut = true
	getRaw = false
	getOut = ""
	getBytes = 64

	output, err := captureOutput(t, func() error {
		return runGet([]string{writeWavFixture(t), "RIFF/fmt"})
	})
	if err != nil {
		t.Fatalf("runGet failed: %v", err)
	}

	assertJSON(t, output)
	assertContains(t, output, []string{`"tag": "fmt "`, `"size": 16`})
}

func TestGetCommand_Raw(t *testing.T) {
	resetFlags()
	getRaw = true
	getOut = ""

	output, err := captureOutput(t, func() error {
		return runGet([]string{writeWavFixture(t), "RIFF/data"})
	})
	if err != nil {
		t.Fatalf("runGet failed: %v", err)
	}

	if !bytes.Equal([]byte(output), []byte{0xde, 0xad, 0xbe, 0xef}) {
		t.Errorf("raw output = %x, want deadbeef", output)
	}
}

func TestGetCommand_OutFile(t *testing.T) {
	resetFlags()
	getRaw = false
	getOut = filepath.Join(t.TempDir(), "samples.pcm")

	_, err := captureOutput(t, func() error {
		return runGet([]string{writeWavFixture(t), "RIFF/data"})
	})
	if err != nil {
		t.Fatalf("runGet failed: %v", err)
	}

	got, err := os.ReadFile(getOut)
	if err != nil {
		t.Fatalf("failed to read extracted payload: %v", err)
	}
	if !bytes.Equal(got, []byte{0xde, 0xad, 0xbe, 0xef}) {
		t.Errorf("extracted payload = %x, want deadbeef", got)
	}
}

func TestGetCommand_MissingPath(t *testing.T) {
	resetFlags()
	getRaw = false
	getOut = ""
	getBytes = 64

	_, err := captureOutput(t, func() error {
		return runGet([]string{writeWavFixture(t), "RIFF/nope"})
	})
	if err == nil {
		t.Fatal("expected an error for a missing path")
	}
}
