// Package landing is the intake form that starts a quiz.
package landing

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizzer/internal/quiz"
	"github.com/abhisek/quizzer/internal/screen"
	"github.com/abhisek/quizzer/internal/screens/flow"
	"github.com/abhisek/quizzer/internal/ui/components"
	"github.com/abhisek/quizzer/internal/ui/layout"
	"github.com/abhisek/quizzer/internal/ui/theme"
)

// focus positions, in tab order.
const (
	focusFirstName = iota
	focusLastName
	focusEmail
	focusAge
	focusTopic
	focusSubmit
	focusCount
)

// inputFields maps text inputs to the intake fields they fill.
var inputFields = [...]quiz.Field{quiz.FieldFirstName, quiz.FieldLastName, quiz.FieldEmail, quiz.FieldAge}

// LandingScreen collects the participant's details and topic.
type LandingScreen struct {
	deps     flow.Deps
	inputs   [len(inputFields)]components.TextInput
	topics   []quiz.Topic
	topic    int // index into topics, -1 until chosen
	topicErr string
	submit   components.Button
	focus    int
	err      error
}

var _ screen.Screen = (*LandingScreen)(nil)
var _ screen.KeyHintProvider = (*LandingScreen)(nil)

// New creates an empty intake form.
func New(deps flow.Deps) *LandingScreen {
	s := &LandingScreen{
		deps:   deps,
		topics: quiz.Topics(),
		topic:  -1,
		submit: components.NewButton("Start quiz"),
	}
	s.inputs[focusFirstName] = components.NewTextInput("First name", "Ada", false, 64)
	s.inputs[focusLastName] = components.NewTextInput("Last name", "Lovelace", false, 64)
	s.inputs[focusEmail] = components.NewTextInput("Email", "ada@example.com", false, 128)
	s.inputs[focusAge] = components.NewTextInput("Age", "18", true, 3)
	return s
}

func (s *LandingScreen) Init() tea.Cmd {
	return s.setFocus(focusFirstName)
}

func (s *LandingScreen) Title() string {
	return "Sign in"
}

func (s *LandingScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "←→", Description: "Topic"},
		{Key: "Enter", Description: "Start"},
		{Key: "F1", Description: "Help"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *LandingScreen) setFocus(i int) tea.Cmd {
	s.focus = (i + focusCount) % focusCount
	for j := range s.inputs {
		s.inputs[j].Blur()
	}
	s.submit.Focused = s.focus == focusSubmit
	if s.focus < len(s.inputs) {
		return s.inputs[s.focus].Focus()
	}
	return nil
}

func (s *LandingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		if s.focus < len(s.inputs) {
			var cmd tea.Cmd
			s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
			return s, cmd
		}
		return s, nil
	}

	switch kmsg.String() {
	case "tab", "down":
		return s, s.setFocus(s.focus + 1)
	case "shift+tab", "up":
		return s, s.setFocus(s.focus - 1)
	case "enter":
		return s, s.submitForm()
	}

	if s.focus == focusTopic {
		switch kmsg.String() {
		case "left", "h":
			s.cycleTopic(-1)
		case "right", "l", "space":
			s.cycleTopic(1)
		}
		return s, nil
	}

	if s.focus < len(s.inputs) {
		before := s.inputs[s.focus].Value()
		var cmd tea.Cmd
		s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
		if s.inputs[s.focus].Value() != before {
			s.inputs[s.focus].Err = ""
		}
		return s, cmd
	}
	return s, nil
}

func (s *LandingScreen) cycleTopic(dir int) {
	if len(s.topics) == 0 {
		return
	}
	if s.topic < 0 {
		if dir > 0 {
			s.topic = 0
		} else {
			s.topic = len(s.topics) - 1
		}
	} else {
		s.topic = (s.topic + dir + len(s.topics)) % len(s.topics)
	}
	s.topicErr = ""
}

// Form returns the raw values currently entered.
func (s *LandingScreen) Form() quiz.IntakeForm {
	form := quiz.IntakeForm{
		FirstName: s.inputs[focusFirstName].Value(),
		LastName:  s.inputs[focusLastName].Value(),
		Email:     s.inputs[focusEmail].Value(),
		Age:       s.inputs[focusAge].Value(),
	}
	if s.topic >= 0 {
		form.Topic = string(s.topics[s.topic])
	}
	return form
}

func (s *LandingScreen) submitForm() tea.Cmd {
	s.err = nil
	errs, err := s.deps.Workflow.SubmitIntake(s.deps.Scope, s.Form())
	if err != nil {
		s.err = err
		return nil
	}
	if errs.Valid() {
		return s.deps.Nav.Cmd()
	}

	first := -1
	for i, f := range inputFields {
		s.inputs[i].Err = ""
		if fe, bad := errs[f]; bad {
			s.inputs[i].Err = fe.Message
			if first < 0 {
				first = i
			}
		}
	}
	s.topicErr = ""
	if fe, bad := errs[quiz.FieldTopic]; bad {
		s.topicErr = fe.Message
		if first < 0 {
			first = focusTopic
		}
	}
	return s.setFocus(first)
}

func (s *LandingScreen) topicView() string {
	labelStyle := theme.Label
	if s.focus == focusTopic {
		labelStyle = theme.Selected
	}

	var choices []string
	for i, t := range s.topics {
		if i == s.topic {
			choices = append(choices, theme.Selected.Render("● "+t.Label()))
		} else {
			choices = append(choices, lipgloss.NewStyle().Foreground(theme.TextDim).Render("○ "+t.Label()))
		}
	}

	view := labelStyle.Render("Topic") + "\n  " + strings.Join(choices, "   ")
	if s.topicErr != "" {
		view += "\n" + theme.ErrorText.Render("  "+s.topicErr)
	}
	return view
}

func (s *LandingScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center, components.RenderBanner(cw, layout.IsCompactHeight(height))))
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(cw).Render("Welcome to Quizzer"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(cw).Render("Tell us about yourself and pick a topic"))
	b.WriteString("\n\n")

	for _, in := range s.inputs {
		b.WriteString(in.View())
		b.WriteString("\n\n")
	}
	b.WriteString(s.topicView())
	b.WriteString("\n\n")
	b.WriteString(s.submit.View())

	if s.err != nil {
		b.WriteString("\n\n")
		b.WriteString(theme.ErrorText.Render(s.err.Error()))
	}

	return components.Centered(b.String(), width, height)
}
