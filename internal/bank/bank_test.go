package bank

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizzer/internal/quiz"
)

const sampleJSON = `{
  "version": "v1.2.0",
  "topics": {
    "music": [
      {"id": 1, "question": "Which are string instruments?", "answers": [
        {"text": "Violin", "correct": true},
        {"text": "Flute", "correct": false}
      ]}
    ]
  }
}`

const sampleYAML = `version: v1.2.0
topics:
  music:
    - id: 1
      question: Which are string instruments?
      answers:
        - text: Violin
          correct: true
        - text: Flute
          correct: false
`

func TestDefault(t *testing.T) {
	b, err := Default()
	require.NoError(t, err)
	assert.Equal(t, quiz.Topics(), b.Topics())
	for _, topic := range quiz.Topics() {
		qs, err := b.Questions(topic)
		require.NoError(t, err)
		assert.NotEmpty(t, qs, topic)
		assert.Equal(t, len(qs), b.Count(topic))
	}
}

func TestParse_JSONAndYAMLAgree(t *testing.T) {
	fromJSON, err := Parse([]byte(sampleJSON), FormatJSON)
	require.NoError(t, err)
	fromYAML, err := Parse([]byte(sampleYAML), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, fromJSON, fromYAML)
	assert.Equal(t, "v1.2.0", fromYAML.Version())

	qs, err := fromYAML.Questions(quiz.TopicMusic)
	require.NoError(t, err)
	require.Len(t, qs, 1)
	assert.Equal(t, "Which are string instruments?", qs[0].Prompt)
	assert.Equal(t, []int{0}, qs[0].CorrectIndices())
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{
			name: "major version",
			doc:  `{"version": "v2.0.0", "topics": {"music": [{"id": 1, "question": "q", "answers": [{"text": "a", "correct": true}, {"text": "b", "correct": false}]}]}}`,
			want: ErrUnsupportedVersion,
		},
		{
			name: "unknown topic",
			doc:  `{"version": "v1.0.0", "topics": {"history": [{"id": 1, "question": "q", "answers": [{"text": "a", "correct": true}, {"text": "b", "correct": false}]}]}}`,
			want: quiz.ErrUnknownTopic,
		},
		{
			name: "duplicate id",
			doc: `{"version": "v1.0.0", "topics": {"music": [
				{"id": 1, "question": "q", "answers": [{"text": "a", "correct": true}, {"text": "b", "correct": false}]},
				{"id": 1, "question": "r", "answers": [{"text": "a", "correct": true}, {"text": "b", "correct": false}]}]}}`,
			want: quiz.ErrDuplicateQuestion,
		},
		{
			name: "no correct option",
			doc:  `{"version": "v1.0.0", "topics": {"music": [{"id": 1, "question": "q", "answers": [{"text": "a", "correct": false}, {"text": "b", "correct": false}]}]}}`,
			want: ErrNoCorrectOption,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc), FormatJSON)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParse_SchemaViolations(t *testing.T) {
	docs := map[string]string{
		"missing version":  `{"topics": {"music": []}}`,
		"single option":    `{"version": "v1.0.0", "topics": {"music": [{"id": 1, "question": "q", "answers": [{"text": "a", "correct": true}]}]}}`,
		"string id":        `{"version": "v1.0.0", "topics": {"music": [{"id": "1", "question": "q", "answers": [{"text": "a", "correct": true}, {"text": "b", "correct": false}]}]}}`,
		"empty prompt":     `{"version": "v1.0.0", "topics": {"music": [{"id": 1, "question": "", "answers": [{"text": "a", "correct": true}, {"text": "b", "correct": false}]}]}}`,
		"extra field":      `{"version": "v1.0.0", "author": "me", "topics": {"music": []}}`,
		"not semver shape": `{"version": "1.0", "topics": {"music": []}}`,
	}
	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc), FormatJSON)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "schema validation failed")
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bank.yml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	b, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []quiz.Topic{quiz.TopicMusic}, b.Topics())

	_, err = b.Questions(quiz.TopicComputing)
	assert.ErrorIs(t, err, quiz.ErrUnknownTopic)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "bank.txt"))
	var invalid *ErrInvalidBank
	require.True(t, errors.As(err, &invalid))
	assert.ErrorIs(t, err, ErrUnknownFormat)

	missing := filepath.Join(dir, "missing.json")
	_, err = Load(missing)
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, missing, invalid.Path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpen_EmptyPathUsesDefault(t *testing.T) {
	b, err := Open("")
	require.NoError(t, err)
	assert.Equal(t, "v1.0.0", b.Version())
}

func TestQuestions_ReturnsCopy(t *testing.T) {
	b, err := Parse([]byte(sampleJSON), FormatJSON)
	require.NoError(t, err)

	qs, _ := b.Questions(quiz.TopicMusic)
	qs[0].Options[0].Text = "changed"

	again, _ := b.Questions(quiz.TopicMusic)
	assert.Equal(t, "Violin", again[0].Options[0].Text)
}
