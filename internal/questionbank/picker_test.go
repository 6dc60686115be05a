package questionbank

import (
	"context"
	"errors"
	"math/rand"
	"testing"
)

func testBank(t *testing.T) *Bank {
	t.Helper()
	bank, err := Load()
	if err != nil {
		t.Fatalf("load bank: %v", err)
	}
	return bank
}

func seededPicker(bank *Bank) *Picker {
	return &Picker{bank: bank, rng: rand.New(rand.NewSource(1))}
}

func TestTargetDifficulty(t *testing.T) {
	tests := []struct {
		name     string
		correct  int
		answered int
		want     Difficulty
	}{
		{"no answers", 0, 0, DifficultyMedium},
		{"too few answers to step", 3, 3, DifficultyMedium},
		{"high accuracy steps up", 4, 4, DifficultyHard},
		{"exactly threshold steps up", 6, 8, DifficultyHard},
		{"low accuracy steps down", 1, 4, DifficultyEasy},
		{"middling stays", 3, 5, DifficultyMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := targetDifficulty(tt.correct, tt.answered); got != tt.want {
				t.Errorf("targetDifficulty(%d, %d) = %s, want %s", tt.correct, tt.answered, got, tt.want)
			}
		})
	}
}

func TestPicker_RespectsTopicFilter(t *testing.T) {
	p := seededPicker(testBank(t))

	for i := 0; i < 10; i++ {
		q, err := p.Next(context.Background(), PickInput{Topic: "science"})
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if q.Topic != "science" {
			t.Errorf("topic = %s, want science", q.Topic)
		}
	}
}

func TestPicker_UnknownTopic(t *testing.T) {
	p := seededPicker(testBank(t))
	_, err := p.Next(context.Background(), PickInput{Topic: "astrology"})
	if !errors.Is(err, ErrNoQuestions) {
		t.Errorf("err = %v, want ErrNoQuestions", err)
	}
}

func TestPicker_NoRepeatsWhileUnservedRemain(t *testing.T) {
	bank := testBank(t)
	p := seededPicker(bank)

	var served []string
	seen := make(map[string]bool)
	for i := 0; i < bank.Len(); i++ {
		q, err := p.Next(context.Background(), PickInput{ServedIDs: served})
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if seen[q.ID] {
			t.Fatalf("question %s repeated with unserved questions remaining", q.ID)
		}
		seen[q.ID] = true
		served = append(served, q.ID)
	}

	// Pool exhausted: repeats are now allowed rather than failing.
	q, err := p.Next(context.Background(), PickInput{ServedIDs: served})
	if err != nil {
		t.Fatalf("next after exhaustion: %v", err)
	}
	if !seen[q.ID] {
		t.Error("expected a repeat after the pool was exhausted")
	}
}

func TestPicker_AdaptsDifficultyUp(t *testing.T) {
	p := seededPicker(testBank(t))

	// Perfect run: picks should come from the hard bucket.
	for i := 0; i < 5; i++ {
		q, err := p.Next(context.Background(), PickInput{CorrectCount: 6, TotalAnswered: 6})
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if q.Difficulty != DifficultyHard {
			t.Errorf("difficulty = %s, want hard", q.Difficulty)
		}
		_ = i
	}
}

func TestPicker_AdaptsDifficultyDown(t *testing.T) {
	p := seededPicker(testBank(t))

	q, err := p.Next(context.Background(), PickInput{CorrectCount: 1, TotalAnswered: 5})
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if q.Difficulty != DifficultyEasy {
		t.Errorf("difficulty = %s, want easy", q.Difficulty)
	}
}

func TestPicker_CancelledContext(t *testing.T) {
	p := seededPicker(testBank(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.Next(ctx, PickInput{}); err == nil {
		t.Error("expected error from cancelled context")
	}
}
