package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizzer/internal/quiz"
	"github.com/abhisek/quizzer/internal/random"
)

type fakeSource map[quiz.Topic][]quiz.Question

func (f fakeSource) Questions(topic quiz.Topic) ([]quiz.Question, error) {
	qs, ok := f[topic]
	if !ok {
		return nil, quiz.ErrUnknownTopic
	}
	return qs, nil
}

// recorder captures every stage the workflow navigates to.
type recorder struct {
	stages []Stage
}

func (r *recorder) Navigate(s Stage) { r.stages = append(r.stages, s) }

func (r *recorder) last() Stage {
	if len(r.stages) == 0 {
		return -1
	}
	return r.stages[len(r.stages)-1]
}

func testSource() fakeSource {
	return fakeSource{
		quiz.TopicComputing: {
			{ID: 1, Prompt: "Pick the compiled languages", Options: []quiz.Option{
				{Text: "Go", Correct: true}, {Text: "Python"}, {Text: "Rust", Correct: true},
			}},
			{ID: 2, Prompt: "Which is a database?", Options: []quiz.Option{
				{Text: "PostgreSQL", Correct: true}, {Text: "Nginx"},
			}},
		},
	}
}

func intake() quiz.IntakeForm {
	return quiz.IntakeForm{
		FirstName: "Grace", LastName: "Hopper", Email: "grace@navy.mil", Age: "40", Topic: "computing",
	}
}

func newTestWorkflow(t *testing.T) (*Workflow, *Scope, *recorder) {
	t.Helper()
	rec := &recorder{}
	w := NewWorkflow(testSource(), rec, random.New(1))
	sc := Begin()
	errs, err := w.SubmitIntake(sc, intake())
	require.NoError(t, err)
	require.True(t, errs.Valid())
	require.Equal(t, []Stage{StageQuiz}, rec.stages)
	rec.stages = nil
	return w, sc, rec
}

// indexOf returns the position of the option with text in q.
func indexOf(t *testing.T, q quiz.Question, text string) int {
	t.Helper()
	for i, o := range q.Options {
		if o.Text == text {
			return i
		}
	}
	t.Fatalf("option %q not in question %d", text, q.ID)
	return -1
}

func TestSubmitIntake_InvalidLeavesStoreUntouched(t *testing.T) {
	rec := &recorder{}
	w := NewWorkflow(testSource(), rec, random.New(1))
	sc := Begin()

	errs, err := w.SubmitIntake(sc, quiz.IntakeForm{Age: "17"})
	require.NoError(t, err)
	assert.Len(t, errs, 5)
	assert.Equal(t, quiz.CodeUnderage, errs[quiz.FieldAge].Code)
	assert.Empty(t, rec.stages)

	st, err := sc.Store()
	require.NoError(t, err)
	assert.Equal(t, NewStore(), st)
}

func TestSubmitIntake_StoresIdentityAndShuffledSet(t *testing.T) {
	w, sc, _ := newTestWorkflow(t)
	st, err := sc.Store()
	require.NoError(t, err)

	id, ok := st.Identity()
	require.True(t, ok)
	assert.Equal(t, "Grace Hopper", id.FullName())
	assert.Len(t, st.Questions(), 2)
	assert.Zero(t, st.Cursor())

	sel, err := w.Enter(sc)
	require.NoError(t, err)
	assert.Empty(t, sel)
}

func TestSubmitIntake_SourceErrorDoesNotNavigate(t *testing.T) {
	rec := &recorder{}
	w := NewWorkflow(fakeSource{}, rec, random.New(1))
	_, err := w.SubmitIntake(Begin(), intake())
	assert.ErrorIs(t, err, quiz.ErrUnknownTopic)
	assert.Empty(t, rec.stages)
}

func TestNavigation(t *testing.T) {
	w, sc, rec := newTestWorkflow(t)
	st, _ := sc.Store()

	require.NoError(t, w.Previous(sc, quiz.Selection{}))
	assert.Zero(t, st.Cursor(), "previous at first question is a no-op")

	require.NoError(t, w.Next(sc, quiz.Selection{1}))
	assert.Equal(t, 1, st.Cursor())

	// Returning restores the committed selection.
	require.NoError(t, w.Previous(sc, quiz.Selection{}))
	assert.Equal(t, 0, st.Cursor())
	sel, err := w.Enter(sc)
	require.NoError(t, err)
	assert.Equal(t, quiz.Selection{1}, sel)

	require.NoError(t, w.Jump(sc, sel, 1))
	assert.Equal(t, 1, st.Cursor())
	assert.Empty(t, rec.stages)

	require.NoError(t, w.Next(sc, quiz.Selection{0}))
	assert.Equal(t, []Stage{StageSummary}, rec.stages)
	assert.Equal(t, 1, st.Cursor(), "cursor stays on the last question")
	assert.Len(t, st.Answers(), 2)
}

func TestJump_OutOfRange(t *testing.T) {
	w, sc, _ := newTestWorkflow(t)
	st, _ := sc.Store()

	err := w.Jump(sc, quiz.Selection{0}, 2)
	assert.ErrorIs(t, err, ErrCursorOutOfRange)
	assert.Empty(t, st.Answers(), "rejected jump does not commit")

	assert.ErrorIs(t, w.Jump(sc, nil, -1), ErrCursorOutOfRange)
}

func TestRecordAnswer_Errors(t *testing.T) {
	w, sc, _ := newTestWorkflow(t)
	assert.ErrorIs(t, w.RecordAnswer(sc, 99, []int{0}), quiz.ErrUnknownQuestion)
	assert.ErrorIs(t, w.RecordAnswer(sc, 2, []int{5}), quiz.ErrOptionOutOfRange)
}

func TestRecordAnswer_UpsertsByQuestion(t *testing.T) {
	w, sc, _ := newTestWorkflow(t)
	require.NoError(t, w.RecordAnswer(sc, 1, []int{0}))
	require.NoError(t, w.RecordAnswer(sc, 1, []int{2, 1}))

	st, _ := sc.Store()
	answers := st.Answers()
	require.Len(t, answers, 1)
	assert.Equal(t, []int{2, 1}, answers[0].Selected)
}

func TestConfirmSummary_Scores(t *testing.T) {
	w, sc, rec := newTestWorkflow(t)
	st, _ := sc.Store()
	set := st.Questions()

	q1, _ := set.Find(1)
	require.NoError(t, w.RecordAnswer(sc, 1, []int{indexOf(t, q1, "Go"), indexOf(t, q1, "Rust")}))

	sum, err := w.Summary(sc)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Answered)
	assert.Equal(t, 1, sum.Unanswered)

	res, err := w.ConfirmSummary(sc)
	require.NoError(t, err)
	assert.Equal(t, 50, res.Score)
	assert.Equal(t, []Stage{StageResults}, rec.stages)

	stored, ok := st.Result()
	require.True(t, ok)
	assert.Equal(t, res, stored)

	// Going back and answering the rest rescores to full marks.
	q2, _ := set.Find(2)
	require.NoError(t, w.ReviewQuestion(sc, 1))
	require.NoError(t, w.RecordAnswer(sc, 2, []int{indexOf(t, q2, "PostgreSQL")}))
	res, err = w.ConfirmSummary(sc)
	require.NoError(t, err)
	assert.Equal(t, 100, res.Score)
	assert.Equal(t, []Stage{StageResults, StageQuiz, StageResults}, rec.stages)
}

func TestBackToQuiz(t *testing.T) {
	w, sc, rec := newTestWorkflow(t)
	require.NoError(t, w.BackToQuiz(sc))
	assert.Equal(t, StageQuiz, rec.last())

	assert.ErrorIs(t, w.ReviewQuestion(sc, 7), ErrCursorOutOfRange)
}

func TestRestart(t *testing.T) {
	w, sc, rec := newTestWorkflow(t)
	require.NoError(t, w.Next(sc, quiz.Selection{0}))
	_, err := w.ConfirmSummary(sc)
	require.NoError(t, err)

	require.NoError(t, w.Restart(sc))
	assert.Equal(t, StageIntake, rec.last())

	st, _ := sc.Store()
	assert.Equal(t, NewStore(), st)
}

func TestGuard(t *testing.T) {
	rec := &recorder{}
	w := NewWorkflow(testSource(), rec, random.New(1))
	sc := Begin()

	ok, err := w.Guard(sc, StageIntake)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, rec.stages)

	for _, stage := range []Stage{StageQuiz, StageSummary, StageResults} {
		rec.stages = nil
		ok, err := w.Guard(sc, stage)
		require.NoError(t, err)
		assert.False(t, ok, stage.String())
		assert.Equal(t, []Stage{StageIntake}, rec.stages, stage.String())
	}

	_, err = w.SubmitIntake(sc, intake())
	require.NoError(t, err)
	rec.stages = nil

	ok, _ = w.Guard(sc, StageQuiz)
	assert.True(t, ok)
	ok, _ = w.Guard(sc, StageResults)
	assert.False(t, ok, "results need a scoring pass")
}

func TestWorkflow_EndedScope(t *testing.T) {
	w, sc, _ := newTestWorkflow(t)
	sc.End()

	_, err := w.SubmitIntake(sc, intake())
	assert.ErrorIs(t, err, ErrUninitialized)
	assert.ErrorIs(t, w.Next(sc, nil), ErrUninitialized)
	assert.ErrorIs(t, w.Restart(sc), ErrUninitialized)
	_, err = w.Guard(sc, StageQuiz)
	assert.ErrorIs(t, err, ErrUninitialized)
}

func TestNavigatorFunc(t *testing.T) {
	var got Stage = -1
	NavigatorFunc(func(s Stage) { got = s }).Navigate(StageSummary)
	assert.Equal(t, StageSummary, got)
	assert.Equal(t, "summary", got.String())
}
