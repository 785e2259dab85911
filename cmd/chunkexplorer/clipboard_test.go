package main

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/chunkkit/cmd/chunkexplorer/chunktree"
	"github.com/joshuapare/chunkkit/cmd/chunkexplorer/hexview"
)

// The copy keys shell out to the system clipboard, which is usually absent
// in CI. These tests deliver the component messages directly so the status
// handling is covered either way, and only exercise the real clipboard
// opportunistically.

func TestCopyPathStatusMessages(t *testing.T) {
	helper := NewTestHelper(wavFixture())
	helper.SendWindowSize(120, 40)

	helper.SendMsg(chunktree.CopyPathRequestedMsg{Path: "RIFF/fmt", Success: true})
	model := helper.GetModel()
	if !strings.Contains(model.statusMessage, "✓ Copied: RIFF/fmt") {
		t.Errorf("Success should set a confirmation, got %q", model.statusMessage)
	}
	if !strings.Contains(helper.GetView(), "✓ Copied: RIFF/fmt") {
		t.Error("Status bar should render the confirmation")
	}

	helper.SendMsg(clearStatusMsg{})
	if helper.GetModel().statusMessage != "" {
		t.Fatal("clearStatusMsg should empty the status message")
	}

	helper.SendMsg(chunktree.CopyPathRequestedMsg{
		Path:    "RIFF/fmt",
		Success: false,
		Err:     errors.New("no clipboard"),
	})
	model = helper.GetModel()
	if !strings.Contains(model.statusMessage, "Failed to copy path") {
		t.Errorf("Failure should set an error status, got %q", model.statusMessage)
	}
}

func TestCopyHexStatusMessages(t *testing.T) {
	helper := NewTestHelper(wavFixture())
	helper.SendWindowSize(120, 40)

	helper.SendMsg(hexview.CopyHexRequestedMsg{Bytes: 16, Success: true})
	model := helper.GetModel()
	if !strings.Contains(model.statusMessage, "✓ Copied 16 bytes as hex") {
		t.Errorf("Success should set a confirmation, got %q", model.statusMessage)
	}

	helper.SendMsg(hexview.CopyHexRequestedMsg{
		Success: false,
		Err:     errors.New("no clipboard"),
	})
	model = helper.GetModel()
	if !strings.Contains(model.statusMessage, "Failed to copy payload") {
		t.Errorf("Failure should set an error status, got %q", model.statusMessage)
	}
}

func TestCopyPathKey(t *testing.T) {
	helper := NewTestHelper(wavFixture())
	helper.SendWindowSize(120, 40)

	currentItem := helper.GetCurrentItem()
	if currentItem == nil {
		t.Fatal("No current item")
	}

	t.Logf("Pressing 'c' to copy path: %q", currentItem.Path)
	helper.SendKeyRune('c')

	// The actual clipboard operation might fail in a headless test
	// environment; we're testing the code path, not the OS clipboard.
	model := helper.GetModel()
	t.Logf("Status message: %q", model.statusMessage)

	t.Log("✓ Copy path command executed from tree pane")
}

func TestCopyHexKey(t *testing.T) {
	helper := NewTestHelper(wavFixture())
	helper.SendWindowSize(120, 40)

	// Focus the hex pane on the fmt payload and press 'y'.
	helper.SendKey(tea.KeyDown)
	helper.SendKey(tea.KeyTab)
	if helper.GetFocusedPane() != HexPane {
		t.Fatal("Should be in hex pane")
	}

	helper.SendKeyRune('y')

	model := helper.GetModel()
	t.Logf("Status message: %q", model.statusMessage)

	t.Log("✓ Copy hex command executed from hex pane")
}
