package quiz

import (
	"fmt"
	"math"
)

// Score compares the recorded answers against each question's correct options.
// A question counts as correct only when the selected and correct index sets
// are identical; there is no partial credit. Unanswered questions score as
// an empty selection. The percentage is rounded half away from zero.
func Score(set QuestionSet, answers []RecordedAnswer) (Result, error) {
	if len(set) == 0 {
		return Result{}, ErrEmptyQuestionSet
	}

	result := Result{
		TotalQuestions: len(set),
		Details:        make([]QuestionDetail, 0, len(set)),
	}

	for _, q := range set {
		var selected []int
		if a, ok := FindAnswer(answers, q.ID); ok {
			selected = a.Selected
		}

		userTexts := make([]string, 0, len(selected))
		for _, i := range selected {
			if i < 0 || i >= len(q.Options) {
				return Result{}, fmt.Errorf("question %d option %d: %w", q.ID, i, ErrOptionOutOfRange)
			}
			userTexts = append(userTexts, q.Options[i].Text)
		}

		correctIdx := q.CorrectIndices()
		correctTexts := make([]string, 0, len(correctIdx))
		for _, i := range correctIdx {
			correctTexts = append(correctTexts, q.Options[i].Text)
		}

		isCorrect := sameSet(selected, correctIdx)
		if isCorrect {
			result.CorrectAnswers++
		}

		result.Details = append(result.Details, QuestionDetail{
			QuestionID:     q.ID,
			Question:       q.Prompt,
			UserAnswers:    userTexts,
			CorrectAnswers: correctTexts,
			IsCorrect:      isCorrect,
		})
	}

	result.Score = int(math.Round(float64(result.CorrectAnswers) / float64(result.TotalQuestions) * 100))
	return result, nil
}

// sameSet reports whether a and b hold the same members, ignoring order and repeats.
func sameSet(a, b []int) bool {
	as := make(map[int]struct{}, len(a))
	for _, v := range a {
		as[v] = struct{}{}
	}
	bs := make(map[int]struct{}, len(b))
	for _, v := range b {
		bs[v] = struct{}{}
	}
	if len(as) != len(bs) {
		return false
	}
	for v := range as {
		if _, ok := bs[v]; !ok {
			return false
		}
	}
	return true
}
