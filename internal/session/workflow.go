package session

import (
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/abhisek/quizzer/internal/quiz"
)

// Workflow drives one scope through intake, quiz, summary and results.
// Every step that changes stage calls the Navigator exactly once.
type Workflow struct {
	src quiz.QuestionSource
	nav Navigator
	rng *rand.Rand
}

// NewWorkflow creates a workflow reading questions from src and shuffling
// options with rng.
func NewWorkflow(src quiz.QuestionSource, nav Navigator, rng *rand.Rand) *Workflow {
	return &Workflow{src: src, nav: nav, rng: rng}
}

func (w *Workflow) navigate(sc *Scope, to Stage) {
	log.Printf("session %s: -> %s", sc.ID(), to)
	w.nav.Navigate(to)
}

// SubmitIntake validates form. On success it starts a fresh attempt with a
// newly shuffled question set and moves to the quiz. Field errors are
// returned without touching the store.
func (w *Workflow) SubmitIntake(sc *Scope, form quiz.IntakeForm) (quiz.FieldErrors, error) {
	st, err := sc.Store()
	if err != nil {
		return nil, err
	}

	id, fieldErrs := quiz.ValidateIntake(form)
	if !fieldErrs.Valid() {
		log.Printf("session %s: intake rejected: %v", sc.ID(), fieldErrs)
		return fieldErrs, nil
	}

	set, err := quiz.Prepare(w.src, id.Topic, w.rng)
	if err != nil {
		return nil, fmt.Errorf("prepare questions: %w", err)
	}

	st.Reset()
	st.SetIdentity(id)
	st.SetQuestions(set)
	log.Printf("session %s: intake accepted topic=%s questions=%d", sc.ID(), id.Topic, len(set))
	w.navigate(sc, StageQuiz)
	return fieldErrs, nil
}

// active returns the store of a scope that has completed intake.
func active(sc *Scope) (*Store, quiz.QuestionSet, error) {
	st, err := sc.Store()
	if err != nil {
		return nil, nil, err
	}
	set := st.Questions()
	if _, ok := st.Identity(); !ok || len(set) == 0 {
		return nil, nil, ErrNoActiveSession
	}
	return st, set, nil
}

// Current returns the question under the cursor and its index.
func (w *Workflow) Current(sc *Scope) (quiz.Question, int, error) {
	st, set, err := active(sc)
	if err != nil {
		return quiz.Question{}, 0, err
	}
	i := st.Cursor()
	if i < 0 || i >= len(set) {
		return quiz.Question{}, i, ErrCursorOutOfRange
	}
	return set[i], i, nil
}

// Enter returns the pre-selected options for the current question: the
// recorded answer if there is one, an empty selection otherwise.
func (w *Workflow) Enter(sc *Scope) (quiz.Selection, error) {
	q, _, err := w.Current(sc)
	if err != nil {
		return nil, err
	}
	st, _ := sc.Store()
	if a, ok := quiz.FindAnswer(st.Answers(), q.ID); ok {
		return quiz.Selection(a.Selected), nil
	}
	return quiz.Selection{}, nil
}

// RecordAnswer upserts the selection for questionID.
func (w *Workflow) RecordAnswer(sc *Scope, questionID int, selected []int) error {
	st, set, err := active(sc)
	if err != nil {
		return err
	}
	q, ok := set.Find(questionID)
	if !ok {
		return fmt.Errorf("record question %d: %w", questionID, quiz.ErrUnknownQuestion)
	}
	a, err := quiz.NewAnswer(q, selected)
	if err != nil {
		return err
	}
	st.UpdateAnswers(func(prev []quiz.RecordedAnswer) []quiz.RecordedAnswer {
		return quiz.UpsertAnswer(prev, a)
	})
	return nil
}

func (w *Workflow) commit(sc *Scope, sel quiz.Selection) (*Store, quiz.QuestionSet, error) {
	q, _, err := w.Current(sc)
	if err != nil {
		return nil, nil, err
	}
	if err := w.RecordAnswer(sc, q.ID, sel); err != nil {
		return nil, nil, err
	}
	return active(sc)
}

// Next commits sel for the current question and advances. From the last
// question it moves to the summary instead.
func (w *Workflow) Next(sc *Scope, sel quiz.Selection) error {
	st, set, err := w.commit(sc, sel)
	if err != nil {
		return err
	}
	if st.Cursor() >= len(set)-1 {
		w.navigate(sc, StageSummary)
		return nil
	}
	st.SetCursor(st.Cursor() + 1)
	return nil
}

// Previous commits sel and steps back. At the first question the cursor stays put.
func (w *Workflow) Previous(sc *Scope, sel quiz.Selection) error {
	st, _, err := w.commit(sc, sel)
	if err != nil {
		return err
	}
	if st.Cursor() > 0 {
		st.SetCursor(st.Cursor() - 1)
	}
	return nil
}

// Jump commits sel and moves the cursor to i.
func (w *Workflow) Jump(sc *Scope, sel quiz.Selection, i int) error {
	_, set, err := active(sc)
	if err != nil {
		return err
	}
	if i < 0 || i >= len(set) {
		return fmt.Errorf("jump to %d of %d: %w", i, len(set), ErrCursorOutOfRange)
	}
	st, _, err := w.commit(sc, sel)
	if err != nil {
		return err
	}
	st.SetCursor(i)
	return nil
}

// ReviewQuestion returns from the summary to question i.
func (w *Workflow) ReviewQuestion(sc *Scope, i int) error {
	st, set, err := active(sc)
	if err != nil {
		return err
	}
	if i < 0 || i >= len(set) {
		return fmt.Errorf("review %d of %d: %w", i, len(set), ErrCursorOutOfRange)
	}
	st.SetCursor(i)
	w.navigate(sc, StageQuiz)
	return nil
}

// BackToQuiz returns from the summary to the question under the cursor.
func (w *Workflow) BackToQuiz(sc *Scope) error {
	if _, _, err := active(sc); err != nil {
		return err
	}
	w.navigate(sc, StageQuiz)
	return nil
}

// Summary returns the review data for the stored answers.
func (w *Workflow) Summary(sc *Scope) (quiz.Summary, error) {
	st, set, err := active(sc)
	if err != nil {
		return quiz.Summary{}, err
	}
	return quiz.Summarize(set, st.Answers()), nil
}

// ConfirmSummary scores the stored answers, stores the result and moves to
// the results stage. Calling it again rescores.
func (w *Workflow) ConfirmSummary(sc *Scope) (quiz.Result, error) {
	st, set, err := active(sc)
	if err != nil {
		return quiz.Result{}, err
	}
	res, err := quiz.Score(set, st.Answers())
	if err != nil {
		return quiz.Result{}, fmt.Errorf("score: %w", err)
	}
	st.SetResult(res)
	log.Printf("session %s: scored %d/%d (%d%%)", sc.ID(), res.CorrectAnswers, res.TotalQuestions, res.Score)
	w.navigate(sc, StageResults)
	return res, nil
}

// Restart clears the attempt and returns to intake.
func (w *Workflow) Restart(sc *Scope) error {
	st, err := sc.Store()
	if err != nil {
		return err
	}
	st.Reset()
	w.navigate(sc, StageIntake)
	return nil
}

// Guard reports whether stage can be shown with the stored state. When it
// cannot, it redirects to intake and reports false.
func (w *Workflow) Guard(sc *Scope, stage Stage) (bool, error) {
	st, err := sc.Store()
	if err != nil {
		return false, err
	}

	ok := true
	switch stage {
	case StageQuiz, StageSummary:
		_, _, err := active(sc)
		ok = err == nil && st.Cursor() >= 0 && st.Cursor() < len(st.Questions())
	case StageResults:
		_, _, err := active(sc)
		_, hasResult := st.Result()
		ok = err == nil && hasResult
	}
	if !ok {
		log.Printf("session %s: %s missing state, redirecting", sc.ID(), stage)
		w.navigate(sc, StageIntake)
	}
	return ok, nil
}
