package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/router"
)

func testSummary() *quiz.Summary {
	return &quiz.Summary{
		SessionID:      "test-session",
		Duration:       4 * time.Minute,
		QuestionTarget: 8,
		TotalAnswered:  8,
		TotalCorrect:   6,
		AccuracyPct:    75,
		TopicResults: []quiz.TopicResult{
			{Topic: "geography", Attempted: 5, Correct: 4},
			{Topic: "science", Attempted: 3, Correct: 2},
		},
	}
}

func TestViewShowsTotals(t *testing.T) {
	s := New(testSummary())
	v := s.View(80, 24)

	for _, want := range []string{"Session complete!", "8 of 8", "Correct: 6", "75%", "geography", "science"} {
		if !strings.Contains(v, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}

func TestEnterReturnsHome(t *testing.T) {
	s := New(testSummary())

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on enter")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Error("expected enter to pop to root")
	}
}

func TestNilSummaryRendersEmpty(t *testing.T) {
	s := New(nil)
	if s.View(80, 24) != "" {
		t.Error("expected empty view for nil summary")
	}
}
