package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Missing file should not error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("Missing file should yield defaults, got %+v", cfg)
	}
}

func TestLoadConfigOverlay(t *testing.T) {
	path := writeConfig(t, "expand_depth = 2\nbytes_per_row = 8\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.ExpandDepth != 2 {
		t.Errorf("ExpandDepth = %d, want 2", cfg.ExpandDepth)
	}
	if cfg.BytesPerRow != 8 {
		t.Errorf("BytesPerRow = %d, want 8", cfg.BytesPerRow)
	}
	// show_ascii is undefined in the file and keeps its default
	if !cfg.ShowASCII {
		t.Error("ShowASCII should keep its default when undefined")
	}
}

func TestLoadConfigShowASCIIOff(t *testing.T) {
	path := writeConfig(t, "show_ascii = false\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.ShowASCII {
		t.Error("show_ascii = false should be honored")
	}
	if cfg.ExpandDepth != 1 || cfg.BytesPerRow != 16 {
		t.Errorf("Unset keys should keep defaults, got %+v", cfg)
	}
}

func TestLoadConfigValidation(t *testing.T) {
	cases := []struct {
		name    string
		content string
		wantErr string
	}{
		{"row width too small", "bytes_per_row = 2\n", "bytes_per_row"},
		{"row width too large", "bytes_per_row = 128\n", "bytes_per_row"},
		{"negative depth", "expand_depth = -1\n", "expand_depth"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, tc.content)
			_, err := LoadConfig(path)
			if err == nil {
				t.Fatal("Expected a validation error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Error should name the offending key, got %v", err)
			}
		})
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := writeConfig(t, "bytes_per_row = {{not toml\n")

	_, err := LoadConfig(path)
	if err == nil {
		t.Fatal("Malformed TOML should error")
	}
	if !strings.Contains(err.Error(), "load config") {
		t.Errorf("Error should name the file, got %v", err)
	}
}
