// Package help is the key reference pushed over any screen with F1.
package help

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizzer/internal/screen"
	"github.com/abhisek/quizzer/internal/ui/components"
	"github.com/abhisek/quizzer/internal/ui/layout"
	"github.com/abhisek/quizzer/internal/ui/theme"
)

type section struct {
	name  string
	hints []layout.KeyHint
}

var sections = []section{
	{"Sign in", []layout.KeyHint{
		{Key: "Tab / Shift+Tab", Description: "Move between fields"},
		{Key: "← →", Description: "Choose a topic"},
		{Key: "Enter", Description: "Start the quiz"},
	}},
	{"Quiz", []layout.KeyHint{
		{Key: "↑ ↓", Description: "Move between options"},
		{Key: "Space", Description: "Tick or untick an option"},
		{Key: "← →", Description: "Previous or next question"},
		{Key: "0-9", Description: "Jump to a question (Enter to confirm)"},
	}},
	{"Summary", []layout.KeyHint{
		{Key: "Enter", Description: "Submit or go back"},
		{Key: "0-9", Description: "Edit a question"},
	}},
	{"Anywhere", []layout.KeyHint{
		{Key: "F1", Description: "This help"},
		{Key: "Esc", Description: "Close help"},
		{Key: "Ctrl+C", Description: "Quit"},
	}},
}

// HelpScreen lists the keys used on every screen.
type HelpScreen struct{}

var _ screen.Screen = (*HelpScreen)(nil)

func New() *HelpScreen {
	return &HelpScreen{}
}

func (h *HelpScreen) Init() tea.Cmd {
	return nil
}

func (h *HelpScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return h, nil
}

func (h *HelpScreen) View(width, height int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Width(18)
	descStyle := lipgloss.NewStyle().Foreground(theme.Text)

	var b strings.Builder
	b.WriteString(theme.Title.Render("Keys"))
	for _, s := range sections {
		b.WriteString("\n\n")
		b.WriteString(theme.Label.Render(s.name))
		for _, hint := range s.hints {
			b.WriteString("\n  ")
			b.WriteString(keyStyle.Render(hint.Key) + descStyle.Render(hint.Description))
		}
	}

	return components.Centered(b.String(), width, height)
}

func (h *HelpScreen) Title() string {
	return "Help"
}
