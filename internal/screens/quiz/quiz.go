// Package quiz is the screen where questions are answered one at a time.
package quiz

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	domain "github.com/abhisek/quizzer/internal/quiz"
	"github.com/abhisek/quizzer/internal/screen"
	"github.com/abhisek/quizzer/internal/screens/flow"
	"github.com/abhisek/quizzer/internal/session"
	"github.com/abhisek/quizzer/internal/ui/components"
	"github.com/abhisek/quizzer/internal/ui/layout"
	"github.com/abhisek/quizzer/internal/ui/theme"
)

// QuizScreen shows the question under the cursor. Ticked options are only
// recorded when the participant moves to another question.
type QuizScreen struct {
	deps     flow.Deps
	ready    bool
	question domain.Question
	index    int
	total    int
	topic    domain.Topic
	choices  components.MultiSelect
	visited  []bool
	jump     components.JumpInput
	err      error
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates the quiz screen. It loads its question in Init.
func New(deps flow.Deps) *QuizScreen {
	return &QuizScreen{deps: deps}
}

func (s *QuizScreen) Init() tea.Cmd {
	ok, cmd := s.deps.Guard(session.StageQuiz)
	if !ok {
		return cmd
	}
	s.load()
	return nil
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "Space", Description: "Tick"},
		{Key: "←→", Description: "Prev/Next"},
		{Key: "0-9", Description: "Jump"},
		{Key: "F1", Description: "Help"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// load reads the current question and its pre-selected options from the store.
func (s *QuizScreen) load() {
	q, i, err := s.deps.Workflow.Current(s.deps.Scope)
	if err != nil {
		s.err = err
		s.ready = false
		return
	}
	sel, err := s.deps.Workflow.Enter(s.deps.Scope)
	if err != nil {
		s.err = err
		s.ready = false
		return
	}

	st, err := s.deps.Store()
	if err != nil {
		s.err = err
		s.ready = false
		return
	}
	if id, ok := st.Identity(); ok {
		s.topic = id.Topic
	}

	options := make([]string, len(q.Options))
	for j, opt := range q.Options {
		options[j] = opt.Text
	}

	questions := st.Questions()
	answers := st.Answers()
	s.visited = make([]bool, len(questions))
	for j, sq := range questions {
		s.visited[j] = domain.Visited(answers, sq.ID)
	}

	s.question = q
	s.index = i
	s.total = len(questions)
	s.choices = components.NewMultiSelect(options, sel)
	s.ready = true
	s.err = nil
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if !s.ready {
		return s, nil
	}
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}

	sel := s.choices.Selected
	key := kmsg.String()
	if components.IsDigit(key) {
		if target, ok := s.jump.Press(key, s.total); ok {
			return s, s.step(s.deps.Workflow.Jump(s.deps.Scope, sel, target))
		}
		return s, nil
	}
	if key == "enter" {
		if target, ok := s.jump.Commit(); ok {
			return s, s.step(s.deps.Workflow.Jump(s.deps.Scope, sel, target))
		}
	}
	s.jump.Reset()

	switch key {
	case "enter", "right", "n":
		return s, s.step(s.deps.Workflow.Next(s.deps.Scope, sel))
	case "left", "p":
		return s, s.step(s.deps.Workflow.Previous(s.deps.Scope, sel))
	}

	s.choices, _ = s.choices.Update(msg)
	return s, nil
}

// step finishes a navigation: it shows err, or follows a stage change, or
// reloads the question under the moved cursor.
func (s *QuizScreen) step(err error) tea.Cmd {
	if err != nil {
		s.err = err
		return nil
	}
	if cmd := s.deps.Nav.Cmd(); cmd != nil {
		return cmd
	}
	s.load()
	return nil
}

// navBar renders one cell per question. Visited questions are highlighted.
func (s *QuizScreen) navBar() string {
	cells := make([]string, 0, len(s.visited))
	for i, visited := range s.visited {
		label := fmt.Sprintf(" %d ", i+1)
		switch {
		case i == s.index:
			cells = append(cells, theme.ButtonActive.Padding(0).Render(label))
		case visited:
			cells = append(cells, lipgloss.NewStyle().Foreground(theme.BgDark).Background(theme.Secondary).Render(label))
		default:
			cells = append(cells, lipgloss.NewStyle().Foreground(theme.TextDim).Background(theme.BgCard).Render(label))
		}
	}
	return strings.Join(cells, " ")
}

func (s *QuizScreen) View(width, height int) string {
	if !s.ready {
		if s.err != nil {
			return components.Centered(theme.ErrorText.Render(s.err.Error()), width, height)
		}
		return ""
	}

	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(theme.Subtitle.Width(cw).Render(s.topic.Label()))
	b.WriteString("\n\n")
	b.WriteString(components.NewProgressBar(s.index, s.total, cw).View())
	b.WriteString("\n\n")
	if !layout.IsCompactHeight(height) {
		b.WriteString(s.navBar())
		b.WriteString("\n\n")
	}

	card := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(cw-6).Render(s.question.Prompt) +
		"\n" + theme.Hint.Render("Select all that apply") +
		"\n\n" + s.choices.View()
	b.WriteString(components.Card(card, cw))

	if s.err != nil {
		b.WriteString("\n")
		b.WriteString(theme.ErrorText.Render(s.err.Error()))
	}

	last := "Next →"
	if s.index == s.total-1 {
		last = "Review answers →"
	}
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("← Previous    " + last))
	if s.jump.Pending() {
		b.WriteString("\n")
		b.WriteString(s.jump.View())
	}

	return components.Centered(b.String(), width, height)
}
