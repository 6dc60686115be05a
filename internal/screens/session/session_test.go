package session

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizdeck/internal/questionbank"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/store"
)

// mockPicker serves the same question on every pick.
type mockPicker struct {
	question *questionbank.Question
	err      error
	picks    []questionbank.PickInput
}

func (m *mockPicker) Next(_ context.Context, input questionbank.PickInput) (*questionbank.Question, error) {
	m.picks = append(m.picks, input)
	if m.err != nil {
		return nil, m.err
	}
	q := *m.question
	return &q, nil
}

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	sessionEvents  []store.SessionEventData
	answerEvents   []store.AnswerEventData
	feedbackEvents []store.FeedbackEventData
}

func (m *mockEventRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	m.sessionEvents = append(m.sessionEvents, data)
	return nil
}
func (m *mockEventRepo) AppendAnswerEvent(_ context.Context, data store.AnswerEventData) error {
	m.answerEvents = append(m.answerEvents, data)
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

func testQuestion() *questionbank.Question {
	return &questionbank.Question{
		ID:           "q-1",
		Topic:        "geography",
		Difficulty:   questionbank.DifficultyMedium,
		Prompt:       "Capital of France?",
		Choices:      []string{"Paris", "Lyon", "Nice"},
		CorrectIndex: 0,
		Explanation:  "Paris has been the capital since 987.",
	}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func newTestScreen(target int) (*SessionScreen, *mockEventRepo, *mockPicker) {
	repo := &mockEventRepo{}
	picker := &mockPicker{question: testQuestion()}
	s := New(Deps{
		Repo:           repo,
		Picker:         picker,
		QuestionTarget: target,
	})
	s.Init()
	return s, repo, picker
}

func TestInitCreatesSession(t *testing.T) {
	s, _, _ := newTestScreen(3)

	if s.state == nil {
		t.Fatal("expected session state after Init")
	}
	if s.state.QuestionTarget != 3 {
		t.Errorf("expected target 3, got %d", s.state.QuestionTarget)
	}
	if s.state.CurrentQuestionNumber != 1 {
		t.Errorf("expected question number 1, got %d", s.state.CurrentQuestionNumber)
	}
}

func TestInvalidTargetShowsError(t *testing.T) {
	s := New(Deps{Repo: &mockEventRepo{}, Picker: &mockPicker{question: testQuestion()}})
	s.Init()

	if s.errMsg == "" {
		t.Error("expected error for question target below 1")
	}
}

func TestCorrectAnswerFlow(t *testing.T) {
	s, repo, _ := newTestScreen(3)

	s.Update(questionReadyMsg{Question: testQuestion()})
	s.Update(keyPress('1')) // Paris, correct

	if !s.choices.Revealed {
		t.Fatal("expected answer reveal after choosing")
	}
	if s.state.CorrectCount != 1 {
		t.Errorf("expected 1 correct, got %d", s.state.CorrectCount)
	}
	if s.state.CurrentQuestionNumber != 2 {
		t.Errorf("expected question number 2, got %d", s.state.CurrentQuestionNumber)
	}
	if !s.toast.Visible {
		t.Error("expected toast after answering")
	}

	if len(repo.answerEvents) != 1 {
		t.Fatalf("expected 1 answer event, got %d", len(repo.answerEvents))
	}
	ev := repo.answerEvents[0]
	if !ev.Correct || ev.Chosen != "Paris" || ev.QuestionID != "q-1" {
		t.Errorf("unexpected answer event: %+v", ev)
	}
}

func TestIncorrectAnswerFlow(t *testing.T) {
	s, repo, _ := newTestScreen(3)

	s.Update(questionReadyMsg{Question: testQuestion()})
	s.Update(keyPress('2')) // Lyon, incorrect

	if s.state.CorrectCount != 0 {
		t.Errorf("expected 0 correct, got %d", s.state.CorrectCount)
	}
	if s.state.TotalAnswered != 1 {
		t.Errorf("expected 1 answered, got %d", s.state.TotalAnswered)
	}
	if repo.answerEvents[0].Correct {
		t.Error("expected incorrect answer event")
	}
}

func TestContinueServesNextQuestion(t *testing.T) {
	s, _, picker := newTestScreen(3)

	s.Update(questionReadyMsg{Question: testQuestion()})
	s.Update(keyPress('1'))
	_, cmd := s.Update(specialKey(tea.KeyEnter))

	if cmd == nil {
		t.Fatal("expected a pick command after continuing")
	}
	msg := cmd()
	if _, ok := msg.(questionReadyMsg); !ok {
		t.Fatalf("expected questionReadyMsg, got %T", msg)
	}
	// Accuracy so far flows into the pick.
	last := picker.picks[len(picker.picks)-1]
	if last.TotalAnswered != 1 || last.CorrectCount != 1 {
		t.Errorf("unexpected pick input: %+v", last)
	}
}

func TestSessionEndsAfterTarget(t *testing.T) {
	s, repo, _ := newTestScreen(2)

	for i := 0; i < 2; i++ {
		s.Update(questionReadyMsg{Question: testQuestion()})
		s.Update(keyPress('1'))
		_, cmd := s.Update(specialKey(tea.KeyEnter))
		if i == 1 {
			if cmd == nil {
				t.Fatal("expected a command after the final question")
			}
			if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
				t.Error("expected hand-off to the survey screen")
			}
		}
	}

	var end *store.SessionEventData
	for i := range repo.sessionEvents {
		if repo.sessionEvents[i].Action == "end" {
			end = &repo.sessionEvents[i]
		}
	}
	if end == nil {
		t.Fatal("expected an end event")
	}
	if !end.Completed || end.QuestionsAnswered != 2 || end.CorrectAnswers != 2 {
		t.Errorf("unexpected end event: %+v", end)
	}
}

func TestQuitConfirmAbandonsSession(t *testing.T) {
	s, repo, _ := newTestScreen(5)

	s.Update(questionReadyMsg{Question: testQuestion()})
	s.Update(keyPress('1'))
	s.Update(specialKey(tea.KeyEscape))

	if !s.showingQuitConfirm {
		t.Fatal("expected quit confirmation")
	}

	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command after confirming quit")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Error("expected return to home after abandoning")
	}

	var end *store.SessionEventData
	for i := range repo.sessionEvents {
		if repo.sessionEvents[i].Action == "end" {
			end = &repo.sessionEvents[i]
		}
	}
	if end == nil {
		t.Fatal("expected an end event for abandoned session")
	}
	if end.Completed {
		t.Error("abandoned session must not be marked completed")
	}
}

func TestQuitConfirmDeclined(t *testing.T) {
	s, _, _ := newTestScreen(5)

	s.Update(questionReadyMsg{Question: testQuestion()})
	s.Update(specialKey(tea.KeyEscape))
	s.Update(keyPress('n'))

	if s.showingQuitConfirm {
		t.Error("expected quit confirmation dismissed")
	}
}

func TestNoQuestionsEndsSession(t *testing.T) {
	s, _, _ := newTestScreen(5)

	_, cmd := s.Update(questionReadyMsg{Err: questionbank.ErrNoQuestions})
	if cmd == nil {
		t.Fatal("expected a command when the pool is exhausted")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected hand-off to the survey screen")
	}
}
