package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizzer/internal/quiz"
	"github.com/abhisek/quizzer/internal/ui/theme"
)

// MultiSelect is a checkbox list where any number of options can be ticked.
type MultiSelect struct {
	Options  []string
	Cursor   int
	Selected quiz.Selection
}

// NewMultiSelect creates a list with the given options pre-selected.
func NewMultiSelect(options []string, selected quiz.Selection) MultiSelect {
	return MultiSelect{
		Options:  options,
		Selected: selected,
	}
}

// Update moves the cursor with up/down (or k/j) and toggles with space or x.
func (m MultiSelect) Update(msg tea.Msg) (MultiSelect, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	case "space", " ", "x":
		if len(m.Options) > 0 {
			m.Selected = m.Selected.Toggle(m.Cursor)
		}
	}

	return m, nil
}

// OptionLabel returns A, B, C... for option i.
func OptionLabel(i int) string {
	if i < 26 {
		return string(rune('A' + i))
	}
	return fmt.Sprintf("%d", i+1)
}

// View renders the options with their checkboxes.
func (m MultiSelect) View() string {
	var b strings.Builder
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Cursor {
			prefix = "▸ "
		}
		box := "[ ]"
		if m.Selected.Contains(i) {
			box = "[x]"
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, box, OptionLabel(i), opt)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case i == m.Cursor:
			style = theme.Selected
		case m.Selected.Contains(i):
			style = lipgloss.NewStyle().Foreground(theme.Secondary)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
