package quiz

import (
	"fmt"
	"math/rand/v2"
)

// QuestionSource is a read-only question bank keyed by topic.
type QuestionSource interface {
	Questions(topic Topic) ([]Question, error)
}

// Prepare loads the questions for topic and returns a session-ready copy in
// which each question's options have been shuffled independently. Option text
// and correctness always move together. The source is never modified.
func Prepare(src QuestionSource, topic Topic, rng *rand.Rand) (QuestionSet, error) {
	questions, err := src.Questions(topic)
	if err != nil {
		return nil, fmt.Errorf("load %s questions: %w", topic, err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("load %s questions: %w", topic, ErrEmptyQuestionSet)
	}

	seen := make(map[int]struct{}, len(questions))
	set := make(QuestionSet, 0, len(questions))
	for _, q := range questions {
		if _, dup := seen[q.ID]; dup {
			return nil, fmt.Errorf("question %d: %w", q.ID, ErrDuplicateQuestion)
		}
		seen[q.ID] = struct{}{}

		shuffled := q.Clone()
		ShuffleOptions(shuffled.Options, rng)
		set = append(set, shuffled)
	}
	return set, nil
}

// ShuffleOptions permutes opts in place with a uniform Fisher-Yates shuffle.
func ShuffleOptions(opts []Option, rng *rand.Rand) {
	rng.Shuffle(len(opts), func(i, j int) {
		opts[i], opts[j] = opts[j], opts[i]
	})
}
