// Package app wires the screens of a quiz session into one Bubble Tea program.
package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizzer/internal/router"
	"github.com/abhisek/quizzer/internal/screen"
	"github.com/abhisek/quizzer/internal/screens/flow"
	"github.com/abhisek/quizzer/internal/screens/help"
	"github.com/abhisek/quizzer/internal/screens/landing"
	"github.com/abhisek/quizzer/internal/screens/quiz"
	"github.com/abhisek/quizzer/internal/screens/results"
	"github.com/abhisek/quizzer/internal/screens/summary"
	"github.com/abhisek/quizzer/internal/session"
	"github.com/abhisek/quizzer/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	deps   flow.Deps
	router *router.Router
	width  int
	height int
}

// New creates an AppModel starting at the intake form.
func New(deps flow.Deps) AppModel {
	return AppModel{
		deps:   deps,
		router: router.New(screenFor(deps, session.StageIntake)),
	}
}

// screenFor builds a fresh screen for stage.
func screenFor(deps flow.Deps, stage session.Stage) screen.Screen {
	switch stage {
	case session.StageQuiz:
		return quiz.New(deps)
	case session.StageSummary:
		return summary.New(deps)
	case session.StageResults:
		return results.New(deps)
	default:
		return landing.New(deps)
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case flow.StageMsg:
		for m.router.Depth() > 1 {
			m.router.Update(router.PopScreenMsg{})
		}
		return m, m.router.Update(router.ReplaceScreenMsg{Screen: screenFor(m.deps, msg.Stage)})

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "f1":
			if m.router.Depth() == 1 {
				return m, func() tea.Msg { return router.PushScreenMsg{Screen: help.New()} }
			}
			return m, nil
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// participant is shown in the header once intake succeeded.
func (m AppModel) participant() string {
	st, err := m.deps.Scope.Store()
	if err != nil {
		return ""
	}
	id, ok := st.Identity()
	if !ok {
		return ""
	}
	return id.FullName() + " · " + id.Topic.Label()
}

func (m AppModel) footerHints() []layout.KeyHint {
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	if p, ok := m.router.Active().(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	return []layout.KeyHint{
		{Key: "F1", Description: "Help"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	header := layout.RenderHeader(m.router.Breadcrumb(), m.participant(), m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program and blocks until it exits. The error is
// returned to the caller, which reports it.
func Run(deps flow.Deps, opts ...tea.ProgramOption) error {
	p := tea.NewProgram(New(deps), opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
