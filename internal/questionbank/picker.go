package questionbank

import (
	"context"
	"errors"
	"math/rand"
	"time"
)

// ErrNoQuestions is returned when no question matches the pick input.
var ErrNoQuestions = errors.New("no questions available")

// Difficulty stepping thresholds on running session accuracy. Stepping
// only kicks in after minAnswersForStep answers so one lucky guess
// doesn't whipsaw the difficulty.
const (
	stepUpAccuracy    = 0.75
	stepDownAccuracy  = 0.5
	minAnswersForStep = 4
)

// Picker serves questions from a local bank, adapting difficulty to the
// session's running accuracy and avoiding repeats while unserved
// questions remain.
type Picker struct {
	bank *Bank
	rng  *rand.Rand
}

var _ Provider = (*Picker)(nil)

// NewPicker creates a picker over the given bank.
func NewPicker(bank *Bank) *Picker {
	return &Picker{
		bank: bank,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Next returns the next question for the session. Candidates are
// narrowed in order: unserved at the target difficulty, unserved at any
// difficulty, then already-served (only once the whole pool is
// exhausted). Topic filters apply throughout.
func (p *Picker) Next(ctx context.Context, input PickInput) (*Question, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	served := make(map[string]bool, len(input.ServedIDs))
	for _, id := range input.ServedIDs {
		served[id] = true
	}

	target := targetDifficulty(input.CorrectCount, input.TotalAnswered)

	var atTarget, unserved, any []Question
	for _, q := range p.bank.questions {
		if input.Topic != "" && q.Topic != input.Topic {
			continue
		}
		any = append(any, q)
		if served[q.ID] {
			continue
		}
		unserved = append(unserved, q)
		if q.Difficulty == target {
			atTarget = append(atTarget, q)
		}
	}

	candidates := atTarget
	if len(candidates) == 0 {
		candidates = unserved
	}
	if len(candidates) == 0 {
		candidates = any
	}
	if len(candidates) == 0 {
		return nil, ErrNoQuestions
	}

	q := candidates[p.rng.Intn(len(candidates))]
	return &q, nil
}

// targetDifficulty maps running accuracy to a difficulty bucket.
func targetDifficulty(correct, answered int) Difficulty {
	if answered < minAnswersForStep {
		return DifficultyMedium
	}
	acc := float64(correct) / float64(answered)
	switch {
	case acc >= stepUpAccuracy:
		return DifficultyHard
	case acc < stepDownAccuracy:
		return DifficultyEasy
	default:
		return DifficultyMedium
	}
}
