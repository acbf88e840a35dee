package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizzer/internal/quiz"
	"github.com/abhisek/quizzer/internal/screen"
	"github.com/abhisek/quizzer/internal/screens/flow"
	"github.com/abhisek/quizzer/internal/session"
	"github.com/abhisek/quizzer/internal/ui/components"
	"github.com/abhisek/quizzer/internal/ui/layout"
	"github.com/abhisek/quizzer/internal/ui/theme"
)

// SummaryScreen lists every question with the chosen options before scoring.
type SummaryScreen struct {
	deps    flow.Deps
	ready   bool
	summary quiz.Summary
	menu    components.Menu
	jump    components.JumpInput
	err     error
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates the summary screen.
func New(deps flow.Deps) *SummaryScreen {
	s := &SummaryScreen{deps: deps}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "Submit answers", Action: s.confirm},
		{Label: "Back to quiz", Action: s.back},
	})
	return s
}

func (s *SummaryScreen) Init() tea.Cmd {
	ok, cmd := s.deps.Guard(session.StageSummary)
	if !ok {
		return cmd
	}
	sum, err := s.deps.Workflow.Summary(s.deps.Scope)
	if err != nil {
		s.err = err
		return nil
	}
	s.summary = sum
	s.ready = true
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Confirm"},
		{Key: "0-9", Description: "Edit question"},
		{Key: "b", Description: "Back"},
		{Key: "F1", Description: "Help"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *SummaryScreen) confirm() tea.Cmd {
	if _, err := s.deps.Workflow.ConfirmSummary(s.deps.Scope); err != nil {
		s.err = err
		return nil
	}
	return s.deps.Nav.Cmd()
}

func (s *SummaryScreen) back() tea.Cmd {
	if err := s.deps.Workflow.BackToQuiz(s.deps.Scope); err != nil {
		s.err = err
		return nil
	}
	return s.deps.Nav.Cmd()
}

func (s *SummaryScreen) review(i int) tea.Cmd {
	if err := s.deps.Workflow.ReviewQuestion(s.deps.Scope, i); err != nil {
		s.err = err
		return nil
	}
	return s.deps.Nav.Cmd()
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if !s.ready {
		return s, nil
	}
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	key := kmsg.String()
	if components.IsDigit(key) {
		if i, ok := s.jump.Press(key, len(s.summary.Items)); ok {
			return s, s.review(i)
		}
		return s, nil
	}
	if key == "enter" {
		if i, ok := s.jump.Commit(); ok {
			return s, s.review(i)
		}
	}
	s.jump.Reset()

	if key == "b" {
		return s, s.back()
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *SummaryScreen) itemView(item quiz.SummaryItem, cw int) string {
	num := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(fmt.Sprintf("%d.", item.Index+1))
	prompt := lipgloss.NewStyle().Foreground(theme.Text).Width(cw - 4).Render(item.Question.Prompt)

	var answer string
	if item.Status == quiz.StatusAnswered {
		answer = lipgloss.NewStyle().Foreground(theme.Secondary).Render("   " + strings.Join(item.Selected, ", "))
	} else {
		answer = theme.Hint.Render("   not answered")
	}
	return num + " " + prompt + "\n" + answer
}

func (s *SummaryScreen) View(width, height int) string {
	if !s.ready {
		if s.err != nil {
			return components.Centered(theme.ErrorText.Render(s.err.Error()), width, height)
		}
		return ""
	}

	cw := components.ContentWidth(width)
	sum := s.summary

	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render("Review your answers"))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("Answered: %d        Not answered: %d", sum.Answered, sum.Unanswered)
	b.WriteString(lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Foreground(theme.Text).Render(stats))
	b.WriteString("\n")

	if sum.Unanswered > 0 {
		noun := "questions"
		if sum.Unanswered == 1 {
			noun = "question"
		}
		warn := fmt.Sprintf("You have %d unanswered %s. They will count as wrong.", sum.Unanswered, noun)
		b.WriteString(theme.WarningText.Width(cw).Align(lipgloss.Center).Render(warn))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", cw))
	b.WriteString(divider)
	b.WriteString("\n")
	for _, item := range sum.Items {
		b.WriteString(s.itemView(item, cw))
		b.WriteString("\n")
	}
	b.WriteString(divider)
	b.WriteString("\n\n")

	b.WriteString(s.menu.View())
	if s.jump.Pending() {
		b.WriteString("\n\n")
		b.WriteString(s.jump.View())
	}

	if s.err != nil {
		b.WriteString("\n\n")
		b.WriteString(theme.ErrorText.Render(s.err.Error()))
	}

	return components.Centered(b.String(), width, height)
}
