package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizzer/internal/quiz"
)

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestMultiSelectToggle(t *testing.T) {
	m := NewMultiSelect([]string{"Go", "Rust", "Zig"}, nil)

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeySpace})
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	m, _ = m.Update(key('x'))

	if !m.Selected.Contains(0) || !m.Selected.Contains(2) || m.Selected.Contains(1) {
		t.Fatalf("Selected = %v, want [0 2]", m.Selected)
	}

	m, _ = m.Update(key('x'))
	if m.Selected.Contains(2) {
		t.Errorf("second toggle should deselect, got %v", m.Selected)
	}
}

func TestMultiSelectCursorBounds(t *testing.T) {
	m := NewMultiSelect([]string{"a", "b"}, nil)
	m, _ = m.Update(key('k'))
	if m.Cursor != 0 {
		t.Errorf("Cursor = %d, want 0", m.Cursor)
	}
	m, _ = m.Update(key('j'))
	m, _ = m.Update(key('j'))
	if m.Cursor != 1 {
		t.Errorf("Cursor = %d, want 1", m.Cursor)
	}
}

func TestMultiSelectView(t *testing.T) {
	m := NewMultiSelect([]string{"Go", "Rust"}, quiz.Selection{1})
	view := m.View()
	if !strings.Contains(view, "[ ] A)  Go") {
		t.Errorf("expected unchecked Go in view:\n%s", view)
	}
	if !strings.Contains(view, "[x] B)  Rust") {
		t.Errorf("expected checked Rust in view:\n%s", view)
	}
}

func TestMenuSkipsDisabled(t *testing.T) {
	ran := ""
	m := NewMenu([]MenuItem{
		{Label: "Off", Disabled: true},
		{Label: "First", Action: func() tea.Cmd { ran = "first"; return nil }},
		{Label: "Off too", Disabled: true},
		{Label: "Last", Action: func() tea.Cmd { ran = "last"; return nil }},
	})
	if m.Selected != 1 {
		t.Fatalf("Selected = %d, want 1", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 3 {
		t.Fatalf("Selected = %d, want 3", m.Selected)
	}
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if ran != "last" {
		t.Errorf("ran = %q, want last", ran)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 1 {
		t.Errorf("Selected = %d, want 1", m.Selected)
	}
}

func TestProgressBarLabel(t *testing.T) {
	view := NewProgressBar(1, 4, 60).View()
	if !strings.Contains(view, "Question 2 of 4") {
		t.Errorf("expected question counter in %q", view)
	}
	if !strings.Contains(view, "50%") {
		t.Errorf("expected 50%% in %q", view)
	}
}

func TestRenderBanner(t *testing.T) {
	if got := RenderBanner(40, false); !strings.Contains(got, "Q U I Z Z E R") {
		t.Error("narrow width should use the compact banner")
	}
	if got := RenderBanner(80, true); !strings.Contains(got, "Q U I Z Z E R") {
		t.Error("compact height should use the compact banner")
	}
	if got := RenderBanner(80, false); strings.Contains(got, "Q U I Z Z E R") || !strings.Contains(got, "██") {
		t.Error("wide terminals should get the block banner")
	}
}

func TestJumpInput(t *testing.T) {
	var j JumpInput

	// With nine or fewer questions every digit jumps at once.
	if i, ok := j.Press("4", 8); !ok || i != 3 {
		t.Errorf("Press(4) = %d, %v, want 3, true", i, ok)
	}
	if _, ok := j.Press("9", 8); ok || j.Pending() {
		t.Error("out-of-range digit should be dropped")
	}
	if _, ok := j.Press("0", 8); ok || j.Pending() {
		t.Error("zero cannot start a number")
	}

	// With eleven, "1" waits for a second digit.
	if _, ok := j.Press("1", 11); ok || !j.Pending() {
		t.Fatal("1 of 11 should wait")
	}
	if !strings.Contains(j.View(), "1_") {
		t.Errorf("View() = %q, want pending digits", j.View())
	}
	if i, ok := j.Press("1", 11); !ok || i != 10 {
		t.Errorf("Press(1,1) = %d, %v, want 10, true", i, ok)
	}

	j.Press("1", 11)
	if i, ok := j.Commit(); !ok || i != 0 {
		t.Errorf("Commit() = %d, %v, want 0, true", i, ok)
	}
	if _, ok := j.Commit(); ok {
		t.Error("Commit with nothing pending should report false")
	}

	// "1" then "5" overflows 11, so 5 starts over and jumps.
	j.Press("1", 11)
	if i, ok := j.Press("5", 11); !ok || i != 4 {
		t.Errorf("Press(1,5) = %d, %v, want 4, true", i, ok)
	}

	j.Press("1", 11)
	j.Reset()
	if j.Pending() || j.View() != "" {
		t.Error("Reset should clear pending digits")
	}
}
