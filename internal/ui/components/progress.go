package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizzer/internal/quiz"
	"github.com/abhisek/quizzer/internal/ui/theme"
)

// ProgressBar shows how far through the question set the participant is.
type ProgressBar struct {
	Current int // zero-based index of the question on screen
	Total   int
	Width   int
}

// NewProgressBar creates a bar for question current of total.
func NewProgressBar(current, total, width int) ProgressBar {
	return ProgressBar{
		Current: current,
		Total:   total,
		Width:   width,
	}
}

// View renders "Question n of N" followed by the bar and a percentage.
func (p ProgressBar) View() string {
	label := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(fmt.Sprintf("Question %d of %d", p.Current+1, p.Total)) + "  "

	percent := quiz.Progress(p.Current, p.Total)

	barWidth := p.Width - lipgloss.Width(label) - 6
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	filledStr := lipgloss.NewStyle().
		Background(theme.Secondary).
		Render(strings.Repeat(" ", filled))

	emptyStr := lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", barWidth-filled))

	return label + filledStr + emptyStr + lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %d%%", int(percent*100)))
}
