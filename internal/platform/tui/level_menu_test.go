package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-thrust/internal/games/thrust/levels"
)

func testLevels() []levels.Level {
	return []levels.Level{
		{ID: "a", Name: "Alpha", Rows: []string{
			"XXXXXX",
			"XP..GX",
			"XXXXXX",
		}},
		{ID: "b", Name: "Bravo", Rows: []string{
			"XXXXXXXX",
			"XP.E.T1G",
			"X?.....X",
			"XXXXXXXX",
		}},
	}
}

func TestSummarize(t *testing.T) {
	got := Summarize(testLevels())
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}

	if got[0].Cols != 6 || got[0].Rows != 3 {
		t.Errorf("alpha size = %dx%d, want 6x3", got[0].Cols, got[0].Rows)
	}
	if got[0].Enemies != 0 || got[0].Issues != 0 {
		t.Errorf("alpha = %+v, want no enemies and no issues", got[0])
	}

	if got[1].Enemies != 2 {
		t.Errorf("bravo enemies = %d, want 2", got[1].Enemies)
	}
	if got[1].Issues != 1 {
		t.Errorf("bravo issues = %d, want 1 (unknown '?')", got[1].Issues)
	}
}

func TestLevelMenuSelect(t *testing.T) {
	m := NewLevelMenuModel(Summarize(testLevels()), 80, 24)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(LevelMenuModel)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(LevelMenuModel)

	if cmd == nil {
		t.Fatal("select should quit the picker")
	}
	sel := m.Selected()
	if sel == nil || sel.Level != 1 {
		t.Fatalf("selection = %+v, want level 1", sel)
	}
}

func TestLevelMenuBack(t *testing.T) {
	m := NewLevelMenuModel(Summarize(testLevels()), 80, 24)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(LevelMenuModel)
	if cmd == nil {
		t.Fatal("back should quit the picker")
	}
	if m.Selected() != nil {
		t.Error("back should leave no selection")
	}
}

func TestLevelMenuView(t *testing.T) {
	m := NewLevelMenuModel(Summarize(testLevels()), 80, 24)
	view := m.View()

	for _, want := range []string{"T H R U S T", "Alpha", "Bravo"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	empty := NewLevelMenuModel(nil, 80, 24).View()
	if !strings.Contains(empty, "No levels found") {
		t.Error("empty picker should say so")
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q, want %q", got, "  ab")
	}
	if got := centerText("abcdef", 4); got != "abcdef" {
		t.Errorf("wide text should be unchanged, got %q", got)
	}
}
