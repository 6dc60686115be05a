package quiz

import (
	"errors"
	"testing"
)

func TestNewSession_RejectsBadTarget(t *testing.T) {
	for _, target := range []int{0, -1, -100} {
		if _, err := NewSession("s", target); err == nil {
			t.Errorf("NewSession(target=%d) expected error", target)
		}
	}
}

func TestNewSession_InitialState(t *testing.T) {
	s, err := NewSession("s", 12)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	if s.CurrentQuestionNumber != 1 {
		t.Errorf("CurrentQuestionNumber = %d, want 1", s.CurrentQuestionNumber)
	}
	if s.CorrectCount != 0 || s.TotalAnswered != 0 {
		t.Errorf("counters = %d/%d, want 0/0", s.CorrectCount, s.TotalAnswered)
	}
	if s.Complete() {
		t.Error("new session should not be complete")
	}
}

func TestSession_Advance(t *testing.T) {
	s, _ := NewSession("s", 3)

	if err := s.Advance(true); err != nil {
		t.Fatalf("advance 1: %v", err)
	}
	if err := s.Advance(false); err != nil {
		t.Fatalf("advance 2: %v", err)
	}

	if s.TotalAnswered != 2 {
		t.Errorf("TotalAnswered = %d, want 2", s.TotalAnswered)
	}
	if s.CorrectCount != 1 {
		t.Errorf("CorrectCount = %d, want 1", s.CorrectCount)
	}
	if s.CurrentQuestionNumber != 3 {
		t.Errorf("CurrentQuestionNumber = %d, want 3", s.CurrentQuestionNumber)
	}
	if s.Complete() {
		t.Error("session should not be complete yet")
	}
}

func TestSession_CompletesAtTarget(t *testing.T) {
	s, _ := NewSession("s", 3)

	for i := 0; i < 3; i++ {
		if err := s.Advance(true); err != nil {
			t.Fatalf("advance %d: %v", i+1, err)
		}
	}

	if !s.Complete() {
		t.Fatal("session should be complete after target answers")
	}
	if s.CurrentQuestionNumber != s.QuestionTarget+1 {
		t.Errorf("CurrentQuestionNumber = %d, want %d", s.CurrentQuestionNumber, s.QuestionTarget+1)
	}
}

func TestSession_AdvanceAfterComplete(t *testing.T) {
	s, _ := NewSession("s", 1)
	if err := s.Advance(true); err != nil {
		t.Fatalf("advance: %v", err)
	}

	err := s.Advance(true)
	if !errors.Is(err, ErrSessionComplete) {
		t.Errorf("err = %v, want ErrSessionComplete", err)
	}

	// Terminal session is read-only.
	if s.TotalAnswered != 1 || s.CorrectCount != 1 {
		t.Errorf("counters mutated after completion: %d/%d", s.CorrectCount, s.TotalAnswered)
	}
}

func TestSession_InvariantsHoldThroughout(t *testing.T) {
	s, _ := NewSession("s", 10)

	for i := 0; !s.Complete(); i++ {
		if s.CorrectCount > s.TotalAnswered {
			t.Fatalf("correct %d > answered %d", s.CorrectCount, s.TotalAnswered)
		}
		if s.TotalAnswered > s.QuestionTarget {
			t.Fatalf("answered %d > target %d", s.TotalAnswered, s.QuestionTarget)
		}
		if s.CurrentQuestionNumber > s.QuestionTarget+1 {
			t.Fatalf("question number %d > target+1", s.CurrentQuestionNumber)
		}
		_ = s.Advance(i%3 != 0)
	}
}

func TestSession_Remaining(t *testing.T) {
	s, _ := NewSession("s", 5)
	if s.Remaining() != 5 {
		t.Errorf("Remaining = %d, want 5", s.Remaining())
	}

	_ = s.Advance(true)
	_ = s.Advance(false)
	if s.Remaining() != 3 {
		t.Errorf("Remaining = %d, want 3", s.Remaining())
	}
}
