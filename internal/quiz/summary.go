package quiz

// QuestionStatus tracks whether a question has a non-empty recorded answer.
type QuestionStatus string

const (
	StatusAnswered    QuestionStatus = "answered"
	StatusNotAnswered QuestionStatus = "not-answered"
)

// SummaryItem is one row of the pre-submission review.
type SummaryItem struct {
	Index    int
	Question Question
	Selected []string // option texts in the order they were chosen
	Status   QuestionStatus
}

// Summary holds the data displayed on the review screen before scoring.
type Summary struct {
	Items      []SummaryItem
	Answered   int
	Unanswered int
}

// Summarize builds the review data for set. A question only counts as answered
// when its recorded answer selects at least one option.
func Summarize(set QuestionSet, answers []RecordedAnswer) Summary {
	sum := Summary{Items: make([]SummaryItem, 0, len(set))}
	for i, q := range set {
		item := SummaryItem{Index: i, Question: q, Status: StatusNotAnswered}
		if a, ok := FindAnswer(answers, q.ID); ok && len(a.Selected) > 0 {
			item.Status = StatusAnswered
			for _, idx := range a.Selected {
				if idx >= 0 && idx < len(q.Options) {
					item.Selected = append(item.Selected, q.Options[idx].Text)
				}
			}
			sum.Answered++
		}
		sum.Items = append(sum.Items, item)
	}
	sum.Unanswered = len(set) - sum.Answered
	return sum
}

// Visited reports whether any answer, even an empty one, was recorded for questionID.
func Visited(answers []RecordedAnswer, questionID int) bool {
	_, ok := FindAnswer(answers, questionID)
	return ok
}

// Progress returns the share of the set reached at cursor, in (0, 1].
func Progress(cursor, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(cursor+1) / float64(total)
}

// Band groups scores for colouring.
type Band string

const (
	BandHigh   Band = "high"
	BandMedium Band = "medium"
	BandLow    Band = "low"
)

// Grade is the verdict shown next to a score.
type Grade struct {
	Message string
	Band    Band
}

// GradeFor maps a percentage score to its verdict.
func GradeFor(score int) Grade {
	band := BandLow
	switch {
	case score >= 80:
		band = BandHigh
	case score >= 60:
		band = BandMedium
	}

	var msg string
	switch {
	case score >= 90:
		msg = "Excellent!"
	case score >= 80:
		msg = "Very good!"
	case score >= 70:
		msg = "Good job!"
	case score >= 60:
		msg = "Fair."
	default:
		msg = "Keep studying!"
	}
	return Grade{Message: msg, Band: band}
}
