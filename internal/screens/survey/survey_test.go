package survey

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizdeck/internal/feedback"
	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/store"
)

// mockSubmitter records submissions and returns a configured error.
type mockSubmitter struct {
	err   error
	calls []feedback.Submission
}

func (m *mockSubmitter) Submit(_ context.Context, _ string, sub feedback.Submission) error {
	m.calls = append(m.calls, sub)
	return m.err
}

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	feedbackEvents []store.FeedbackEventData
}

func (m *mockEventRepo) AppendSessionEvent(_ context.Context, _ store.SessionEventData) error {
	return nil
}
func (m *mockEventRepo) AppendAnswerEvent(_ context.Context, _ store.AnswerEventData) error {
	return nil
}
func (m *mockEventRepo) AppendFeedbackEvent(_ context.Context, data store.FeedbackEventData) error {
	m.feedbackEvents = append(m.feedbackEvents, data)
	return nil
}
func (m *mockEventRepo) RecentSessions(_ context.Context, _ int) ([]store.SessionRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) Stats(_ context.Context) (store.LifetimeStats, error) {
	return store.LifetimeStats{}, nil
}
func (m *mockEventRepo) TopicAccuracy(_ context.Context, _ string) (float64, error) {
	return 0, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func newTestScreen(submitErr error) (*SurveyScreen, *mockSubmitter, *mockEventRepo) {
	submitter := &mockSubmitter{err: submitErr}
	repo := &mockEventRepo{}
	s := New(submitter, repo, "session-1", &quiz.Summary{SessionID: "session-1"})
	s.Init()
	return s, submitter, repo
}

func TestRatingKeysCommit(t *testing.T) {
	s, _, _ := newTestScreen(nil)

	s.Update(keyPress('4'))

	if s.survey.State() != feedback.StateRatingSelected {
		t.Errorf("expected RatingSelected, got %v", s.survey.State())
	}
	if s.survey.Rating() != 4 {
		t.Errorf("expected rating 4, got %d", s.survey.Rating())
	}
}

func TestArrowHoverDoesNotCommit(t *testing.T) {
	s, _, _ := newTestScreen(nil)

	s.Update(specialKey(tea.KeyRight))
	s.Update(specialKey(tea.KeyRight))

	if s.survey.Rating() != 0 {
		t.Error("hovering must not commit a rating")
	}
	if s.survey.Preview() != 2 {
		t.Errorf("expected preview 2, got %d", s.survey.Preview())
	}

	// Enter commits the hovered value from Idle.
	s.Update(specialKey(tea.KeyEnter))
	if s.survey.Rating() != 2 {
		t.Errorf("expected committed rating 2, got %d", s.survey.Rating())
	}
}

func TestSubmitSuccess(t *testing.T) {
	s, submitter, repo := newTestScreen(nil)

	s.Update(keyPress('5'))
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a submit command")
	}
	if s.survey.State() != feedback.StateSubmitting {
		t.Errorf("expected Submitting, got %v", s.survey.State())
	}

	s.Update(cmd().(submitResultMsg))

	if s.survey.State() != feedback.StateSuccess {
		t.Errorf("expected Success, got %v", s.survey.State())
	}
	if len(submitter.calls) != 1 {
		t.Fatalf("expected 1 submission, got %d", len(submitter.calls))
	}
	if submitter.calls[0].Rating != 5 {
		t.Errorf("expected rating 5, got %d", submitter.calls[0].Rating)
	}

	if len(repo.feedbackEvents) != 1 {
		t.Fatalf("expected 1 feedback event, got %d", len(repo.feedbackEvents))
	}
	if !repo.feedbackEvents[0].Delivered {
		t.Error("expected feedback marked delivered")
	}
}

func TestSubmitWithoutRatingIsNoop(t *testing.T) {
	s, submitter, _ := newTestScreen(nil)

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("expected no command without a rating")
	}
	if len(submitter.calls) != 0 {
		t.Error("expected no submission without a rating")
	}
}

func TestSubmitFailureAllowsRetry(t *testing.T) {
	s, submitter, repo := newTestScreen(errors.New("connection refused"))

	s.Update(keyPress('3'))
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	s.Update(cmd().(submitResultMsg))

	if s.survey.State() != feedback.StateRatingSelected {
		t.Errorf("expected RatingSelected after failure, got %v", s.survey.State())
	}
	if len(repo.feedbackEvents) != 0 {
		t.Error("failed delivery must not persist yet")
	}

	// Retry after the remote recovers.
	submitter.err = nil
	_, cmd = s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a retry command")
	}
	s.Update(cmd().(submitResultMsg))

	if s.survey.State() != feedback.StateSuccess {
		t.Errorf("expected Success after retry, got %v", s.survey.State())
	}
	if len(submitter.calls) != 2 {
		t.Errorf("expected 2 submissions, got %d", len(submitter.calls))
	}
	if len(repo.feedbackEvents) != 1 {
		t.Errorf("expected 1 feedback event, got %d", len(repo.feedbackEvents))
	}
}

func TestSkipWithRatingPersistsUndelivered(t *testing.T) {
	s, _, repo := newTestScreen(nil)

	s.Update(keyPress('2'))
	_, cmd := s.Update(specialKey(tea.KeyEscape))

	if cmd == nil {
		t.Fatal("expected a command on skip")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected hand-off to the summary screen")
	}
	if len(repo.feedbackEvents) != 1 {
		t.Fatalf("expected 1 feedback event, got %d", len(repo.feedbackEvents))
	}
	if repo.feedbackEvents[0].Delivered {
		t.Error("skipped feedback must be marked undelivered")
	}
}

func TestSkipWithoutRatingPersistsNothing(t *testing.T) {
	s, _, repo := newTestScreen(nil)

	_, cmd := s.Update(specialKey(tea.KeyEscape))

	if cmd == nil {
		t.Fatal("expected a command on skip")
	}
	if len(repo.feedbackEvents) != 0 {
		t.Error("expected no feedback event without a rating")
	}
}

func TestSuccessContinuesToSummary(t *testing.T) {
	s, _, _ := newTestScreen(nil)

	s.Update(keyPress('5'))
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	s.Update(cmd().(submitResultMsg))

	_, cmd = s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command on continue")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected hand-off to the summary screen")
	}
}

func TestCommentFlowsIntoSubmission(t *testing.T) {
	s, submitter, _ := newTestScreen(nil)

	s.Update(keyPress('4'))
	s.Update(specialKey(tea.KeyTab))
	if !s.comment.Focused() {
		t.Fatal("expected comment focused after tab")
	}

	for _, r := range "great set" {
		s.Update(keyPress(r))
	}
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	s.Update(cmd().(submitResultMsg))

	if len(submitter.calls) != 1 {
		t.Fatalf("expected 1 submission, got %d", len(submitter.calls))
	}
	c := submitter.calls[0].Comment
	if c == nil || *c != "great set" {
		t.Errorf("expected comment %q, got %v", "great set", c)
	}
}
