package quiz

import (
	"fmt"
	"slices"
)

// Selection is the ordered set of option indices currently chosen for a question.
type Selection []int

// Contains reports whether index i is selected.
func (s Selection) Contains(i int) bool {
	for _, v := range s {
		if v == i {
			return true
		}
	}
	return false
}

// Toggle deselects i if it is selected and appends it otherwise. The receiver is not modified.
func (s Selection) Toggle(i int) Selection {
	if s.Contains(i) {
		out := make(Selection, 0, len(s)-1)
		for _, v := range s {
			if v != i {
				out = append(out, v)
			}
		}
		return out
	}
	out := make(Selection, len(s), len(s)+1)
	copy(out, s)
	return append(out, i)
}

// Normalize drops repeated indices, keeping the first occurrence of each.
func (s Selection) Normalize() Selection {
	out := make(Selection, 0, len(s))
	for _, v := range s {
		if !out.Contains(v) {
			out = append(out, v)
		}
	}
	return out
}

// NewAnswer builds a RecordedAnswer for q, rejecting indices that do not exist on q.
func NewAnswer(q Question, selected []int) (RecordedAnswer, error) {
	norm := Selection(selected).Normalize()
	for _, i := range norm {
		if i < 0 || i >= len(q.Options) {
			return RecordedAnswer{}, fmt.Errorf("question %d option %d: %w", q.ID, i, ErrOptionOutOfRange)
		}
	}
	return RecordedAnswer{QuestionID: q.ID, Selected: []int(norm)}, nil
}

// UpsertAnswer returns answers with a replaced in place if an answer for the
// same question exists, or appended otherwise. The input slice is not modified.
func UpsertAnswer(answers []RecordedAnswer, a RecordedAnswer) []RecordedAnswer {
	out := make([]RecordedAnswer, 0, len(answers)+1)
	replaced := false
	for _, existing := range answers {
		if existing.QuestionID == a.QuestionID {
			if !replaced {
				out = append(out, a)
				replaced = true
			}
			continue
		}
		out = append(out, existing)
	}
	if !replaced {
		out = append(out, a)
	}
	return out
}

// FindAnswer returns the recorded answer for questionID.
func FindAnswer(answers []RecordedAnswer, questionID int) (RecordedAnswer, bool) {
	for _, a := range answers {
		if a.QuestionID == questionID {
			return a, true
		}
	}
	return RecordedAnswer{}, false
}

// CloneAnswers deep-copies answers.
func CloneAnswers(answers []RecordedAnswer) []RecordedAnswer {
	if answers == nil {
		return nil
	}
	out := make([]RecordedAnswer, len(answers))
	for i, a := range answers {
		out[i] = RecordedAnswer{QuestionID: a.QuestionID, Selected: slices.Clone(a.Selected)}
	}
	return out
}
