// Package results shows the score and per-question breakdown of a finished quiz.
package results

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

// ResultsScreen displays the stored result.
type ResultsScreen struct {
	deps     flow.Deps
	ready    bool
	result   quiz.Result
	identity quiz.Identity
	menu     components.Menu
	err      error
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

func New(deps flow.Deps) *ResultsScreen {
	s := &ResultsScreen{deps: deps}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "New quiz", Action: s.restart},
		{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }},
	})
	return s
}

func (s *ResultsScreen) Init() tea.Cmd {
	ok, cmd := s.deps.Guard(session.StageResults)
	if !ok {
		return cmd
	}
	st, err := s.deps.Store()
	if err != nil {
		s.err = err
		return nil
	}
	res, _ := st.Result()
	s.result = res
	s.identity, _ = st.Identity()
	s.ready = true
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Select"},
		{Key: "r", Description: "New quiz"},
		{Key: "q", Description: "Quit"},
	}
}

func (s *ResultsScreen) restart() tea.Cmd {
	if err := s.deps.Workflow.Restart(s.deps.Scope); err != nil {
		s.err = err
		return nil
	}
	return s.deps.Nav.Cmd()
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if !s.ready {
		return s, nil
	}
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "r":
			return s, s.restart()
		case "q":
			return s, tea.Quit
		}
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func answerList(texts []string) string {
	if len(texts) == 0 {
		return "none"
	}
	return strings.Join(texts, ", ")
}

func detailView(i int, d quiz.QuestionDetail, cw int) string {
	mark := theme.Correct.Render("✓")
	if !d.IsCorrect {
		mark = theme.Incorrect.Render("✗")
	}
	prompt := lipgloss.NewStyle().Foreground(theme.Text).Width(cw - 6).Render(fmt.Sprintf("%d. %s", i+1, d.Question))

	lines := []string{mark + " " + prompt}
	lines = append(lines, theme.Hint.Render("    Your answer: ")+lipgloss.NewStyle().Foreground(theme.Text).Render(answerList(d.UserAnswers)))
	if !d.IsCorrect {
		lines = append(lines, theme.Hint.Render("    Correct:     ")+theme.Correct.Render(answerList(d.CorrectAnswers)))
	}
	return strings.Join(lines, "\n")
}

func (s *ResultsScreen) View(width, height int) string {
	if !s.ready {
		if s.err != nil {
			return components.Centered(theme.ErrorText.Render(s.err.Error()), width, height)
		}
		return ""
	}

	cw := components.ContentWidth(width)
	res := s.result
	grade := quiz.GradeFor(res.Score)
	bandStyle := lipgloss.NewStyle().Foreground(theme.BandColor(string(grade.Band))).Bold(true)

	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render("Your results"))
	b.WriteString("\n")
	if s.identity.FirstName != "" {
		b.WriteString(theme.Subtitle.Width(cw).Render(s.identity.FullName() + " · " + s.identity.Topic.Label()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	center := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)
	b.WriteString(center.Render(bandStyle.Render(fmt.Sprintf("%d%%", res.Score))))
	b.WriteString("\n")
	b.WriteString(center.Render(bandStyle.Render(grade.Message)))
	b.WriteString("\n")
	b.WriteString(center.Render(theme.Body.Render(fmt.Sprintf("%d of %d correct", res.CorrectAnswers, res.TotalQuestions))))
	b.WriteString("\n\n")

	var details []string
	for i, d := range res.Details {
		details = append(details, detailView(i, d, cw))
	}
	b.WriteString(components.Card(strings.Join(details, "\n\n"), cw))
	b.WriteString("\n\n")
	b.WriteString(s.menu.View())

	if s.err != nil {
		b.WriteString("\n\n")
		b.WriteString(theme.ErrorText.Render(s.err.Error()))
	}

	return components.Centered(b.String(), width, height)
}
