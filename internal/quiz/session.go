package quiz

import (
	"errors"
	"fmt"
	"time"
)

// ErrSessionComplete is returned by Advance once the session is terminal.
var ErrSessionComplete = errors.New("session already complete")

// Session tracks a single fixed-length quiz run. A session starts at
// question 1 with zero counters and becomes terminal (read-only) once
// CurrentQuestionNumber exceeds QuestionTarget.
type Session struct {
	// ID is the UUID grouping this session's events.
	ID string

	// QuestionTarget is the fixed number of questions in the session.
	QuestionTarget int

	// CurrentQuestionNumber is the 1-based number of the question being
	// served. QuestionTarget+1 represents the completed state.
	CurrentQuestionNumber int

	// CorrectCount is the number of correct answers so far.
	CorrectCount int

	// TotalAnswered is the number of questions answered so far.
	TotalAnswered int

	// StartTime is when the session began.
	StartTime time.Time
}

// NewSession creates a session with the given question target.
// The target must be at least 1.
func NewSession(id string, target int) (*Session, error) {
	if target < 1 {
		return nil, fmt.Errorf("question target must be >= 1, got %d", target)
	}
	return &Session{
		ID:                    id,
		QuestionTarget:        target,
		CurrentQuestionNumber: 1,
		StartTime:             time.Now(),
	}, nil
}

// Advance records one answered question: TotalAnswered always
// increments, CorrectCount increments when the answer was correct, and
// CurrentQuestionNumber moves to the next question. Advancing a
// completed session returns ErrSessionComplete and leaves the counters
// untouched.
func (s *Session) Advance(wasCorrect bool) error {
	if s.Complete() {
		return ErrSessionComplete
	}

	s.TotalAnswered++
	if wasCorrect {
		s.CorrectCount++
	}
	s.CurrentQuestionNumber++
	return nil
}

// Complete reports whether the session has reached its question target.
func (s *Session) Complete() bool {
	return s.CurrentQuestionNumber > s.QuestionTarget
}

// Remaining returns the number of questions left to answer.
func (s *Session) Remaining() int {
	r := s.QuestionTarget - s.TotalAnswered
	if r < 0 {
		return 0
	}
	return r
}

// Report derives the display percentages for the current state.
func (s *Session) Report() Report {
	return BuildReport(s.CurrentQuestionNumber, s.QuestionTarget, s.CorrectCount, s.TotalAnswered)
}

// Elapsed returns the wall-clock time since the session started.
func (s *Session) Elapsed() time.Duration {
	return time.Since(s.StartTime)
}
