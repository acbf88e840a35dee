package session

// Stage identifies the screen a session is on.
type Stage int

const (
	StageIntake Stage = iota
	StageQuiz
	StageSummary
	StageResults
)

func (s Stage) String() string {
	switch s {
	case StageIntake:
		return "intake"
	case StageQuiz:
		return "quiz"
	case StageSummary:
		return "summary"
	case StageResults:
		return "results"
	default:
		return "unknown"
	}
}

// Navigator moves the participant to another stage. Workflow steps invoke it
// at most once each.
type Navigator interface {
	Navigate(Stage)
}

// NavigatorFunc adapts a plain function to Navigator.
type NavigatorFunc func(Stage)

// Navigate calls f(s).
func (f NavigatorFunc) Navigate(s Stage) { f(s) }
