package questionbank

import "context"

// Difficulty buckets questions for adaptive picking.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Question is a multiple-choice question ready for display.
type Question struct {
	// ID uniquely identifies the question within the bank.
	ID string `json:"id"`

	// Topic groups questions for filtering and summary breakdowns.
	Topic string `json:"topic"`

	// Difficulty is the bank author's difficulty bucket.
	Difficulty Difficulty `json:"difficulty"`

	// Prompt is the question text displayed to the learner.
	Prompt string `json:"prompt"`

	// Choices contains 2-4 answer options.
	Choices []string `json:"choices"`

	// CorrectIndex is the index into Choices of the right answer.
	CorrectIndex int `json:"correct_index"`

	// Explanation is an optional short note shown after answering.
	Explanation string `json:"explanation,omitempty"`
}

// PickInput carries the session context the picker adapts to.
type PickInput struct {
	// Topic restricts picks to one topic. Empty means any topic.
	Topic string

	// ServedIDs are questions already asked this session.
	ServedIDs []string

	// CorrectCount and TotalAnswered are the session's running counters,
	// used to step difficulty up or down.
	CorrectCount  int
	TotalAnswered int
}

// Provider serves the next question for a session. Picker is the
// local implementation; alternative sources can sit behind the same
// interface.
type Provider interface {
	Next(ctx context.Context, input PickInput) (*Question, error)
}
