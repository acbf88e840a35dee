package quiz

import "errors"

var (
	// ErrEmptyQuestionSet is returned when scoring is attempted without questions.
	ErrEmptyQuestionSet = errors.New("question set is empty")
	// ErrUnknownTopic indicates the question source has no entry for a topic.
	ErrUnknownTopic = errors.New("unknown topic")
	// ErrUnknownQuestion indicates an answer references a question outside the current set.
	ErrUnknownQuestion = errors.New("question not in current set")
	// ErrOptionOutOfRange indicates a selected option index does not exist on its question.
	ErrOptionOutOfRange = errors.New("option index out of range")
	// ErrDuplicateQuestion indicates two questions in one set share an id.
	ErrDuplicateQuestion = errors.New("duplicate question id")
)
