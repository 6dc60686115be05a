package questionbank

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed questions.json
var embeddedBank []byte

// Bank is a validated, immutable set of questions.
type Bank struct {
	questions []Question
}

// Load parses the question bank embedded in the binary.
func Load() (*Bank, error) {
	return parse(embeddedBank)
}

// LoadFile parses a question bank from a JSON file on disk, letting a
// learner swap in their own deck.
func LoadFile(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (*Bank, error) {
	if err := validateBank(data); err != nil {
		return nil, err
	}

	var questions []Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("unmarshal question bank: %w", err)
	}

	seen := make(map[string]bool, len(questions))
	for _, q := range questions {
		if seen[q.ID] {
			return nil, fmt.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = true
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Choices) {
			return nil, fmt.Errorf("question %q: correct_index %d out of range for %d choices",
				q.ID, q.CorrectIndex, len(q.Choices))
		}
	}

	return &Bank{questions: questions}, nil
}

// Len returns the number of questions in the bank.
func (b *Bank) Len() int {
	return len(b.questions)
}

// Topics returns the distinct topics in first-seen order.
func (b *Bank) Topics() []string {
	seen := make(map[string]bool)
	var topics []string
	for _, q := range b.questions {
		if !seen[q.Topic] {
			seen[q.Topic] = true
			topics = append(topics, q.Topic)
		}
	}
	return topics
}

// Questions returns all questions. Callers must not mutate the slice.
func (b *Bank) Questions() []Question {
	return b.questions
}
