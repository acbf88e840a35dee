package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multiQuestion() Question {
	return Question{ID: 1, Prompt: "Pick the even numbers", Options: []Option{
		{Text: "2", Correct: true},
		{Text: "3", Correct: false},
		{Text: "4", Correct: true},
	}}
}

func TestScore_ExactSetMatch(t *testing.T) {
	tests := []struct {
		name     string
		selected []int
		want     bool
	}{
		{"exact", []int{0, 2}, true},
		{"exact reversed", []int{2, 0}, true},
		{"subset", []int{0}, false},
		{"superset", []int{0, 1, 2}, false},
		{"wrong only", []int{1}, false},
		{"empty", []int{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := QuestionSet{multiQuestion()}
			res, err := Score(set, []RecordedAnswer{{QuestionID: 1, Selected: tt.selected}})
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Details[0].IsCorrect)
		})
	}
}

func twoSingleChoice() QuestionSet {
	return QuestionSet{
		{ID: 10, Prompt: "Capital of France?", Options: []Option{
			{Text: "Lyon"}, {Text: "Paris", Correct: true},
		}},
		{ID: 20, Prompt: "2 + 2?", Options: []Option{
			{Text: "4", Correct: true}, {Text: "5"},
		}},
	}
}

func TestScore_AllCorrect(t *testing.T) {
	res, err := Score(twoSingleChoice(), []RecordedAnswer{
		{QuestionID: 10, Selected: []int{1}},
		{QuestionID: 20, Selected: []int{0}},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalQuestions)
	assert.Equal(t, 2, res.CorrectAnswers)
	assert.Equal(t, 100, res.Score)
	assert.Equal(t, 0, res.Wrong())
}

func TestScore_OneCorrectOneUnanswered(t *testing.T) {
	res, err := Score(twoSingleChoice(), []RecordedAnswer{
		{QuestionID: 10, Selected: []int{1}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.CorrectAnswers)
	assert.Equal(t, 50, res.Score)

	unanswered := res.Details[1]
	assert.Equal(t, 20, unanswered.QuestionID)
	assert.Empty(t, unanswered.UserAnswers)
	assert.Equal(t, []string{"4"}, unanswered.CorrectAnswers)
	assert.False(t, unanswered.IsCorrect)
}

func TestScore_DetailTextsKeepSelectionOrder(t *testing.T) {
	res, err := Score(QuestionSet{multiQuestion()}, []RecordedAnswer{{QuestionID: 1, Selected: []int{2, 1}}})
	require.NoError(t, err)
	d := res.Details[0]
	assert.Equal(t, "Pick the even numbers", d.Question)
	assert.Equal(t, []string{"4", "3"}, d.UserAnswers)
	assert.Equal(t, []string{"2", "4"}, d.CorrectAnswers)
}

func TestScore_RoundsHalfAwayFromZero(t *testing.T) {
	set := make(QuestionSet, 8)
	for i := range set {
		set[i] = Question{ID: i, Options: []Option{{Text: "yes", Correct: true}, {Text: "no"}}}
	}
	// 1 of 8 = 12.5% rounds up to 13.
	res, err := Score(set, []RecordedAnswer{{QuestionID: 0, Selected: []int{0}}})
	require.NoError(t, err)
	assert.Equal(t, 13, res.Score)

	// 2 of 3 = 66.67% rounds to 67.
	res, err = Score(set[:3], []RecordedAnswer{
		{QuestionID: 0, Selected: []int{0}},
		{QuestionID: 1, Selected: []int{0}},
	})
	require.NoError(t, err)
	assert.Equal(t, 67, res.Score)
}

func TestScore_EmptySetIsPrecondition(t *testing.T) {
	_, err := Score(nil, nil)
	assert.ErrorIs(t, err, ErrEmptyQuestionSet)
}

func TestScore_RejectsOutOfRangeIndex(t *testing.T) {
	_, err := Score(QuestionSet{multiQuestion()}, []RecordedAnswer{{QuestionID: 1, Selected: []int{7}}})
	assert.ErrorIs(t, err, ErrOptionOutOfRange)
}
