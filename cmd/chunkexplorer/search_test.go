package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// TestSearchFiltersLive tests that typing in search mode filters immediately
func TestSearchFiltersLive(t *testing.T) {
	helper := NewTestHelper(wavFixture())
	helper.SendWindowSize(120, 40)

	helper.SendKeyRune('/')
	if helper.GetModel().inputMode != SearchMode {
		t.Fatal("'/' should enter search mode")
	}

	helper.SendKeyRune('d')
	helper.SendKeyRune('a')

	if !strings.Contains(helper.GetView(), "/da") {
		t.Error("Status line should echo the search buffer")
	}
	if helper.GetTreeItemCount() != 1 {
		t.Fatalf("Filter 'da' should match only data, got %d rows", helper.GetTreeItemCount())
	}

	item := helper.GetCurrentItem()
	if item == nil || item.Path != "RIFF/data" {
		t.Fatalf("Cursor should land on RIFF/data, got %v", item)
	}
}

// TestSearchCommit tests committing a search with Enter
func TestSearchCommit(t *testing.T) {
	helper := NewTestHelper(wavFixture())
	helper.SendWindowSize(120, 40)

	helper.SendKeyRune('/')
	helper.SendKeyRune('a')
	helper.SendKey(tea.KeyEnter)

	model := helper.GetModel()
	if model.inputMode != NormalMode {
		t.Fatal("Enter should leave search mode")
	}
	if model.searchQuery != "a" {
		t.Fatalf("Committed query should stick, got %q", model.searchQuery)
	}

	// IART and data match by tag, RIFF through its WAVE form type
	if !strings.Contains(model.statusMessage, "3 chunks match") {
		t.Errorf("Status should report the match count, got %q", model.statusMessage)
	}

	// Esc clears the committed filter and restores the full tree
	helper.SendKey(tea.KeyEscape)
	model = helper.GetModel()
	if model.searchQuery != "" {
		t.Fatal("Esc should clear the committed filter")
	}
	if helper.GetTreeItemCount() != 4 {
		t.Fatalf("Full tree should come back, got %d rows", helper.GetTreeItemCount())
	}
}

// TestSearchEscapeRollsBack tests that Esc mid-search restores the prior filter
func TestSearchEscapeRollsBack(t *testing.T) {
	helper := NewTestHelper(wavFixture())
	helper.SendWindowSize(120, 40)

	helper.SendKeyRune('/')
	helper.SendKeyRune('z')
	if helper.GetTreeItemCount() != 0 {
		t.Fatalf("Filter 'z' should match nothing, got %d rows", helper.GetTreeItemCount())
	}
	if !strings.Contains(helper.GetView(), "No chunks match.") {
		t.Error("Tree pane should render the no-match placeholder")
	}

	helper.SendKey(tea.KeyEscape)
	model := helper.GetModel()
	if model.inputMode != NormalMode {
		t.Fatal("Esc should leave search mode")
	}
	if helper.GetTreeItemCount() != 4 {
		t.Fatalf("Abandoned search should restore the tree, got %d rows", helper.GetTreeItemCount())
	}
}

// TestSearchBackspace tests editing the search buffer
func TestSearchBackspace(t *testing.T) {
	helper := NewTestHelper(wavFixture())
	helper.SendWindowSize(120, 40)

	helper.SendKeyRune('/')
	helper.SendKeyRune('d')
	helper.SendKeyRune('x')
	if helper.GetTreeItemCount() != 0 {
		t.Fatal("Filter 'dx' should match nothing")
	}

	helper.SendKey(tea.KeyBackspace)
	if helper.GetModel().inputBuffer != "d" {
		t.Fatalf("Backspace should trim the buffer, got %q", helper.GetModel().inputBuffer)
	}
	if helper.GetTreeItemCount() != 1 {
		t.Fatal("Filter 'd' should match data again")
	}
}

// TestGoToPath tests jumping straight to a chunk by path
func TestGoToPath(t *testing.T) {
	helper := NewTestHelper(wavFixture())
	helper.SendWindowSize(120, 40)

	helper.SendKey(tea.KeyCtrlG)
	if helper.GetModel().inputMode != GoToPathMode {
		t.Fatal("ctrl+g should enter go-to-path mode")
	}
	if !strings.Contains(helper.GetView(), "Go to:") {
		t.Error("Status line should show the go-to prompt")
	}

	for _, r := range "RIFF/LIST/IART" {
		helper.SendKeyRune(r)
	}
	helper.SendKey(tea.KeyEnter)

	model := helper.GetModel()
	if model.inputMode != NormalMode {
		t.Fatal("Enter should leave go-to-path mode")
	}
	if !strings.Contains(model.statusMessage, "Jumped to RIFF/LIST/IART") {
		t.Errorf("Status should confirm the jump, got %q", model.statusMessage)
	}

	item := helper.GetCurrentItem()
	if item == nil || item.Path != "RIFF/LIST/IART" {
		t.Fatalf("Cursor should land on IART, got %v", item)
	}
}

// TestGoToPathMiss tests the not-found path
func TestGoToPathMiss(t *testing.T) {
	helper := NewTestHelper(wavFixture())
	helper.SendWindowSize(120, 40)

	helper.SendKey(tea.KeyCtrlG)
	for _, r := range "RIFF/nope" {
		helper.SendKeyRune(r)
	}
	helper.SendKey(tea.KeyEnter)

	model := helper.GetModel()
	if !strings.Contains(model.statusMessage, "Path not found: RIFF/nope") {
		t.Errorf("Status should report the miss, got %q", model.statusMessage)
	}

	// Cursor stays put
	item := helper.GetCurrentItem()
	if item == nil || item.Path != "RIFF" {
		t.Fatalf("Cursor should not move on a miss, got %v", item)
	}
}
