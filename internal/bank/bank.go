// Package bank loads and validates question banks.
package bank

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/quizzer/internal/quiz"
)

// DefaultPath is the name reported for the embedded bank.
const DefaultPath = "<embedded>"

//go:embed questions.json
var defaultBank []byte

// Format is the encoding of a bank file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%q: %w", filepath.Ext(path), ErrUnknownFormat)
	}
}

// document is the on-disk shape of a bank.
type document struct {
	Version string                     `json:"version"`
	Topics  map[string][]quiz.Question `json:"topics"`
}

// Bank is a validated, read-only question bank. It implements quiz.QuestionSource.
type Bank struct {
	version string
	topics  map[quiz.Topic][]quiz.Question
}

// Parse decodes and validates a bank. YAML input is converted to JSON first so
// both formats pass through the same schema.
func Parse(data []byte, format Format) (*Bank, error) {
	raw, err := toJSON(data, format)
	if err != nil {
		return nil, err
	}
	if err := validateSchema(raw); err != nil {
		return nil, err
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode bank: %w", err)
	}
	if err := checkVersion(doc.Version); err != nil {
		return nil, err
	}
	return fromDocument(doc)
}

func toJSON(data []byte, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return data, nil
	case FormatYAML:
		var tree any
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		raw, err := json.Marshal(tree)
		if err != nil {
			return nil, fmt.Errorf("convert yaml: %w", err)
		}
		return raw, nil
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
}

func fromDocument(doc document) (*Bank, error) {
	b := &Bank{version: doc.Version, topics: make(map[quiz.Topic][]quiz.Question, len(doc.Topics))}
	for name, questions := range doc.Topics {
		topic, ok := quiz.ParseTopic(name)
		if !ok {
			return nil, fmt.Errorf("topic %q: %w", name, quiz.ErrUnknownTopic)
		}
		seen := make(map[int]struct{}, len(questions))
		for _, q := range questions {
			if _, dup := seen[q.ID]; dup {
				return nil, fmt.Errorf("topic %s question %d: %w", topic, q.ID, quiz.ErrDuplicateQuestion)
			}
			seen[q.ID] = struct{}{}
			if len(q.CorrectIndices()) == 0 {
				return nil, fmt.Errorf("topic %s question %d: %w", topic, q.ID, ErrNoCorrectOption)
			}
		}
		b.topics[topic] = questions
	}
	return b, nil
}

// Load reads and validates the bank at path. The format follows the extension.
func Load(path string) (*Bank, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, &ErrInvalidBank{Path: path, Err: err}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ErrInvalidBank{Path: path, Err: err}
	}
	b, err := Parse(data, format)
	if err != nil {
		return nil, &ErrInvalidBank{Path: path, Err: err}
	}
	return b, nil
}

// Default returns the bank compiled into the binary.
func Default() (*Bank, error) {
	b, err := Parse(defaultBank, FormatJSON)
	if err != nil {
		return nil, &ErrInvalidBank{Path: DefaultPath, Err: err}
	}
	return b, nil
}

// Open loads the bank at path, or the embedded bank when path is empty.
func Open(path string) (*Bank, error) {
	if path == "" {
		return Default()
	}
	return Load(path)
}

// Version returns the bank's declared version.
func (b *Bank) Version() string {
	return b.version
}

// Questions returns a copy of the questions for topic, in bank order.
func (b *Bank) Questions(topic quiz.Topic) ([]quiz.Question, error) {
	qs, ok := b.topics[topic]
	if !ok {
		return nil, fmt.Errorf("topic %s: %w", topic, quiz.ErrUnknownTopic)
	}
	return quiz.QuestionSet(qs).Clone(), nil
}

// Topics returns the topics present in the bank, in quiz.Topics order.
func (b *Bank) Topics() []quiz.Topic {
	var out []quiz.Topic
	for _, t := range quiz.Topics() {
		if _, ok := b.topics[t]; ok {
			out = append(out, t)
		}
	}
	return out
}

// Count returns how many questions the bank holds for topic.
func (b *Bank) Count(topic quiz.Topic) int {
	return len(b.topics[topic])
}
