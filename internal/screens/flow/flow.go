// Package flow connects session workflow steps to screen changes.
package flow

import (
	"math/rand/v2"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizzer/internal/quiz"
	"github.com/abhisek/quizzer/internal/session"
)

// StageMsg asks the app to show the screen for Stage.
type StageMsg struct {
	Stage session.Stage
}

// Navigator implements session.Navigator by remembering the requested stage
// until the screen that ran the workflow step collects it with Cmd.
type Navigator struct {
	pending *session.Stage
}

var _ session.Navigator = (*Navigator)(nil)

// Navigate records s. A later call in the same step overwrites it.
func (n *Navigator) Navigate(s session.Stage) {
	n.pending = &s
}

// Cmd returns a command emitting the pending StageMsg, or nil if no step
// navigated since the last call.
func (n *Navigator) Cmd() tea.Cmd {
	if n.pending == nil {
		return nil
	}
	s := *n.pending
	n.pending = nil
	return func() tea.Msg { return StageMsg{Stage: s} }
}

// Deps is what every screen needs to drive the session.
type Deps struct {
	Scope    *session.Scope
	Workflow *session.Workflow
	Nav      *Navigator
}

// NewDeps opens a fresh scope with a workflow reading from src.
func NewDeps(src quiz.QuestionSource, rng *rand.Rand) Deps {
	nav := &Navigator{}
	return Deps{
		Scope:    session.Begin(),
		Workflow: session.NewWorkflow(src, nav, rng),
		Nav:      nav,
	}
}

// Guard checks that stage can be shown. When it cannot, the returned command
// redirects to intake.
func (d Deps) Guard(stage session.Stage) (bool, tea.Cmd) {
	ok, err := d.Workflow.Guard(d.Scope, stage)
	if err != nil {
		return false, tea.Quit
	}
	return ok, d.Nav.Cmd()
}

// Store returns the scope's store, or session.ErrUninitialized once the
// scope has ended.
func (d Deps) Store() (*session.Store, error) {
	return d.Scope.Store()
}
