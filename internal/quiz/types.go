package quiz

import "strings"

// Topic selects which question set is loaded for a session.
type Topic string

const (
	TopicComputing Topic = "computing"
	TopicMusic     Topic = "music"
)

// Topics returns the fixed set of selectable topics, in display order.
func Topics() []Topic {
	return []Topic{TopicComputing, TopicMusic}
}

// ParseTopic returns the topic matching raw, or false if raw is not one of Topics().
func ParseTopic(raw string) (Topic, bool) {
	for _, t := range Topics() {
		if string(t) == raw {
			return t, true
		}
	}
	return "", false
}

// Label returns the topic name with its first letter capitalized.
func (t Topic) Label() string {
	if t == "" {
		return ""
	}
	return strings.ToUpper(string(t[:1])) + string(t[1:])
}

// Identity is the participant data collected at intake.
type Identity struct {
	FirstName string
	LastName  string
	Email     string
	Age       int
	Topic     Topic
}

// FullName joins first and last name.
func (i Identity) FullName() string {
	return i.FirstName + " " + i.LastName
}

// Option is one answer option of a question.
type Option struct {
	Text    string `json:"text"`
	Correct bool   `json:"correct"`
}

// Question is a multi-select question. More than one option may be correct.
type Question struct {
	ID      int      `json:"id"`
	Prompt  string   `json:"question"`
	Options []Option `json:"answers"`
}

// CorrectIndices returns the indices of the options flagged correct, ascending.
func (q Question) CorrectIndices() []int {
	var idx []int
	for i, opt := range q.Options {
		if opt.Correct {
			idx = append(idx, i)
		}
	}
	return idx
}

// Clone returns a copy of q that shares no memory with it.
func (q Question) Clone() Question {
	out := q
	out.Options = make([]Option, len(q.Options))
	copy(out.Options, q.Options)
	return out
}

// QuestionSet is the ordered list of questions for one session.
type QuestionSet []Question

// Clone deep-copies the set.
func (s QuestionSet) Clone() QuestionSet {
	if s == nil {
		return nil
	}
	out := make(QuestionSet, len(s))
	for i, q := range s {
		out[i] = q.Clone()
	}
	return out
}

// Find returns the question with the given id.
func (s QuestionSet) Find(id int) (Question, bool) {
	for _, q := range s {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// RecordedAnswer is the committed selection for one question.
type RecordedAnswer struct {
	QuestionID int
	Selected   []int
}

// QuestionDetail is the per-question breakdown of a scoring pass.
type QuestionDetail struct {
	QuestionID     int
	Question       string
	UserAnswers    []string
	CorrectAnswers []string
	IsCorrect      bool
}

// Result is the outcome of scoring a session.
type Result struct {
	TotalQuestions int
	CorrectAnswers int
	Score          int
	Details        []QuestionDetail
}

// Wrong returns the number of questions not answered exactly right.
func (r Result) Wrong() int {
	return r.TotalQuestions - r.CorrectAnswers
}
