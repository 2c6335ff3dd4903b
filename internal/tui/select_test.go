package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/waxworks/stylus/internal/discogs"
)

func stubProgram(t *testing.T, keys ...string) {
	t.Helper()
	orig := runProgram
	runProgram = func(m tea.Model) (tea.Model, error) {
		for _, key := range keys {
			var msg tea.Msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
			switch key {
			case "enter":
				msg = tea.KeyMsg{Type: tea.KeyEnter}
			case "down":
				msg = tea.KeyMsg{Type: tea.KeyDown}
			case "esc":
				msg = tea.KeyMsg{Type: tea.KeyEsc}
			}
			m, _ = m.Update(msg)
		}
		return m, nil
	}
	t.Cleanup(func() { runProgram = orig })
}

func testFolders() []discogs.Folder {
	return []discogs.Folder{
		{ID: 0, Name: "All", Count: 120},
		{ID: 1, Name: "Uncategorized", Count: 80},
		{ID: 1411342, Name: "LPs", Count: 40},
	}
}

func TestSelectFolderEnterPicksHighlighted(t *testing.T) {
	stubProgram(t, "down", "down", "enter")

	result, err := SelectFolder("testuser", testFolders())
	if err != nil {
		t.Fatalf("SelectFolder() error = %v", err)
	}
	if result.Action != ActionSelected {
		t.Fatalf("expected ActionSelected, got %v", result.Action)
	}
	if result.Folder == nil || result.Folder.Name != "LPs" {
		t.Errorf("expected LPs folder, got %+v", result.Folder)
	}
}

func TestSelectFolderCancel(t *testing.T) {
	stubProgram(t, "esc")

	result, err := SelectFolder("testuser", testFolders())
	if err != nil {
		t.Fatalf("SelectFolder() error = %v", err)
	}
	if result.Action != ActionStopped {
		t.Errorf("expected ActionStopped, got %v", result.Action)
	}
}

func TestSelectFolderSingleFolderSkipsUI(t *testing.T) {
	// No stub installed: reaching the TUI would hang the test.
	folders := []discogs.Folder{{ID: 7, Name: "Vinyl", Count: 12}}

	result, err := SelectFolder("testuser", folders)
	if err != nil {
		t.Fatalf("SelectFolder() error = %v", err)
	}
	if result.Action != ActionSelected || result.Folder.ID != 7 {
		t.Errorf("expected automatic selection of only folder, got %+v", result)
	}
}

func TestSelectFolderEmptyDefaultsToAll(t *testing.T) {
	result, err := SelectFolder("testuser", nil)
	if err != nil {
		t.Fatalf("SelectFolder() error = %v", err)
	}
	if result.Action != ActionSelected || result.Folder.ID != discogs.AllFolder {
		t.Errorf("expected All folder fallback, got %+v", result)
	}
}
