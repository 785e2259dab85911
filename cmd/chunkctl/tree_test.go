package main

import (
	"testing"
)

func TestTreeCommand(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		depth          int
		meta           bool
		previews       bool
		wantJSON       bool
		wantContain    []string
		wantNotContain []string
	}{
		{
			name:        "full tree",
			meta:        true,
			wantContain: []string{"[RIFF] WAVE", "[fmt ]", "[LIST] INFO", "[IART]", "[data]"},
		},
		{
			name:           "depth limited",
			depth:          1,
			meta:           true,
			wantContain:    []string{"[RIFF] WAVE"},
			wantNotContain: []string{"[fmt ]", "[data]"},
		},
		{
			name:           "subtree",
			path:           "RIFF/LIST",
			meta:           true,
			wantContain:    []string{"[LIST] INFO", "[IART]"},
			wantNotContain: []string{"[fmt ]", "[data]"},
		},
		{
			name:        "previews",
			meta:        true,
			previews:    true,
			wantContain: []string{"DEADBEEF"},
		},
		{
			name:        "json names only",
			wantJSON:    true,
			wantContain: []string{"fmt ", "data"},
		},
		{
			name:        "json full tree",
			meta:        true,
			wantJSON:    true,
			wantContain: []string{`"tag": "RIFF"`, `"form": "WAVE"`, `"children"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			jsonOut = tt.wantJSON
			treeDepth = tt.depth
			treeOffsets = false
			treePreviews = tt.previews
			treeMeta = tt.meta
			treeCompact = false

			args := []string{writeWavFixture(t)}
			if tt.path != "" {
				args = append(args, tt.path)
			}

			output, err := captureOutput(t, func() error {
				return runTree(args)
			})
			if err != nil {
				t.Fatalf("runTree failed: %v", err)
			}

			if tt.wantJSON {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
}

func TestTreeCommand_MissingPath(t *testing.T) {
	resetFlags()
	treeDepth = 0
	treeMeta = false
	treePreviews = false

	_, err := captureOutput(t, func() error {
		return runTree([]string{writeWavFixture(t), "RIFF/nope"})
	})
	if err == nil {
		t.Fatal("expected an error for a missing path")
	}
}
