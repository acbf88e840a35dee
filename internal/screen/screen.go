package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizzer/internal/ui/layout"
)

// Screen is one page of the app.
type Screen interface {
	// Init runs when the screen becomes active.
	Init() tea.Cmd

	// Update handles a message and returns the updated screen.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the body between header and footer.
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider is implemented by screens with their own footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
