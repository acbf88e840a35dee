package session

import (
	"slices"

	"github.com/abhisek/quizzer/internal/quiz"
)

// Store holds the mutable state of one quiz attempt. It performs no
// validation. Getters return copies.
type Store struct {
	identity  *quiz.Identity
	questions quiz.QuestionSet
	answers   []quiz.RecordedAnswer
	cursor    int
	result    *quiz.Result
}

// NewStore returns an empty store: no identity, no questions, no answers,
// cursor at 0 and no result.
func NewStore() *Store {
	return &Store{}
}

// Identity returns the participant, or false before intake.
func (s *Store) Identity() (quiz.Identity, bool) {
	if s.identity == nil {
		return quiz.Identity{}, false
	}
	return *s.identity, true
}

func (s *Store) SetIdentity(id quiz.Identity) {
	s.identity = &id
}

// Questions returns the current question set.
func (s *Store) Questions() quiz.QuestionSet {
	return s.questions.Clone()
}

func (s *Store) SetQuestions(set quiz.QuestionSet) {
	s.questions = set.Clone()
}

// Answers returns the recorded answers.
func (s *Store) Answers() []quiz.RecordedAnswer {
	return quiz.CloneAnswers(s.answers)
}

// SetAnswers replaces the full answer collection.
func (s *Store) SetAnswers(answers []quiz.RecordedAnswer) {
	s.answers = quiz.CloneAnswers(answers)
}

// UpdateAnswers replaces the answer collection with fn applied to the current one.
func (s *Store) UpdateAnswers(fn func(prev []quiz.RecordedAnswer) []quiz.RecordedAnswer) {
	s.answers = quiz.CloneAnswers(fn(s.Answers()))
}

func (s *Store) Cursor() int {
	return s.cursor
}

// SetCursor stores i as-is. Range checks belong to the caller.
func (s *Store) SetCursor(i int) {
	s.cursor = i
}

// Result returns the last scoring result, or false if none has been computed.
func (s *Store) Result() (quiz.Result, bool) {
	if s.result == nil {
		return quiz.Result{}, false
	}
	return cloneResult(*s.result), true
}

func (s *Store) SetResult(r quiz.Result) {
	c := cloneResult(r)
	s.result = &c
}

// Reset returns the store to its initial state.
func (s *Store) Reset() {
	*s = Store{}
}

func cloneResult(r quiz.Result) quiz.Result {
	out := r
	if r.Details == nil {
		return out
	}
	out.Details = make([]quiz.QuestionDetail, len(r.Details))
	for i, d := range r.Details {
		d.UserAnswers = slices.Clone(d.UserAnswers)
		d.CorrectAnswers = slices.Clone(d.CorrectAnswers)
		out.Details[i] = d
	}
	return out
}
