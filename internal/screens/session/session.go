package session

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizdeck/internal/feedback"
	"github.com/abhisek/quizdeck/internal/questionbank"
	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/screens/survey"
	"github.com/abhisek/quizdeck/internal/store"
	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/layout"

	"github.com/google/uuid"
)

// Deps carries the session screen's injected dependencies.
type Deps struct {
	Repo           store.EventRepo
	Picker         questionbank.Provider
	Submitter      feedback.Submitter
	QuestionTarget int
	Topic          string
}

// SessionScreen runs one quiz session: question, answer, reveal, repeat.
type SessionScreen struct {
	deps  Deps
	state *quiz.Session
	tally *quiz.TopicTally

	current       *questionbank.Question
	served        []string
	choices       components.ChoiceList
	toast         components.Toast
	questionStart time.Time

	showingQuitConfirm bool
	errMsg             string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)

// New creates a new SessionScreen with injected dependencies.
func New(deps Deps) *SessionScreen {
	return &SessionScreen{
		deps:  deps,
		tally: quiz.NewTopicTally(),
		toast: components.NewToast(),
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	state, err := quiz.NewSession(uuid.New().String(), s.deps.QuestionTarget)
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	s.state = state

	return tea.Batch(s.startSession(), s.pickNextQuestion())
}

func (s *SessionScreen) Title() string {
	return "Quiz"
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.current != nil && s.choices.Revealed {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Answer"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionStartedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		}
		return s, nil

	case questionReadyMsg:
		return s.handleQuestionReady(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	var cmd tea.Cmd
	s.toast, cmd = s.toast.Update(msg)
	return s, cmd
}

// startSession persists the session start event.
func (s *SessionScreen) startSession() tea.Cmd {
	state := s.state
	topic := s.deps.Topic
	return func() tea.Msg {
		err := s.deps.Repo.AppendSessionEvent(context.Background(), store.SessionEventData{
			SessionID:      state.ID,
			Action:         "start",
			QuestionTarget: state.QuestionTarget,
			Topic:          topic,
		})
		return sessionStartedMsg{Err: err}
	}
}

// pickNextQuestion asks the picker for a question matched to the
// learner's running accuracy.
func (s *SessionScreen) pickNextQuestion() tea.Cmd {
	input := questionbank.PickInput{
		Topic:         s.deps.Topic,
		ServedIDs:     append([]string(nil), s.served...),
		CorrectCount:  s.state.CorrectCount,
		TotalAnswered: s.state.TotalAnswered,
	}
	return func() tea.Msg {
		q, err := s.deps.Picker.Next(context.Background(), input)
		return questionReadyMsg{Question: q, Err: err}
	}
}

func (s *SessionScreen) handleQuestionReady(msg questionReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		if errors.Is(msg.Err, questionbank.ErrNoQuestions) {
			return s.endSession()
		}
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	s.current = msg.Question
	s.served = append(s.served, msg.Question.ID)
	s.choices = components.NewChoiceList(msg.Question.Choices, msg.Question.CorrectIndex)
	s.questionStart = time.Now()

	return s, nil
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state, any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			s.showingQuitConfirm = false
			return s.abandonSession()
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	if key == "esc" {
		s.showingQuitConfirm = true
		return s, nil
	}

	if s.current == nil {
		return s, nil
	}

	// Revealed answer, enter or space continues.
	if s.choices.Revealed {
		switch key {
		case "enter", " ":
			return s.continueAfterReveal()
		}
		return s, nil
	}

	// Active question.
	switch key {
	case "enter":
		return s.submitAnswer(s.choices.Selected)
	case "1", "2", "3", "4":
		idx := int(key[0] - '1')
		if idx < len(s.current.Choices) {
			return s.submitAnswer(idx)
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.choices, cmd = s.choices.Update(msg)
	return s, cmd
}

// submitAnswer locks in the choice, persists the answer event, and
// advances the session counters.
func (s *SessionScreen) submitAnswer(index int) (screen.Screen, tea.Cmd) {
	if s.current == nil || s.choices.Revealed {
		return s, nil
	}

	s.choices = s.choices.Choose(index)
	correct := s.choices.IsCorrect()
	timeMs := int(time.Since(s.questionStart).Milliseconds())

	_ = s.deps.Repo.AppendAnswerEvent(context.Background(), store.AnswerEventData{
		SessionID:  s.state.ID,
		QuestionID: s.current.ID,
		Topic:      s.current.Topic,
		Difficulty: string(s.current.Difficulty),
		Chosen:     s.current.Choices[index],
		Correct:    correct,
		TimeMs:     timeMs,
	})

	s.tally.Record(s.current.Topic, correct)
	if err := s.state.Advance(correct); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	var cmd tea.Cmd
	if correct {
		s.toast, cmd = s.toast.Show("Correct!")
	} else {
		s.toast, cmd = s.toast.Show("Not quite")
	}
	return s, cmd
}

// continueAfterReveal moves to the next question or ends the session.
func (s *SessionScreen) continueAfterReveal() (screen.Screen, tea.Cmd) {
	s.toast = s.toast.Hide()

	if s.state.Complete() {
		return s.endSession()
	}

	s.current = nil
	return s, s.pickNextQuestion()
}

// endSession persists the end event and hands off to the survey.
func (s *SessionScreen) endSession() (screen.Screen, tea.Cmd) {
	summary := quiz.BuildSummary(s.state, s.tally)

	_ = s.deps.Repo.AppendSessionEvent(context.Background(), store.SessionEventData{
		SessionID:         s.state.ID,
		Action:            "end",
		QuestionTarget:    s.state.QuestionTarget,
		Topic:             s.deps.Topic,
		QuestionsAnswered: s.state.TotalAnswered,
		CorrectAnswers:    s.state.CorrectCount,
		DurationSecs:      int(s.state.Elapsed().Seconds()),
		Completed:         s.state.Complete(),
	})

	sessionID := s.state.ID
	submitter := s.deps.Submitter
	repo := s.deps.Repo
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: survey.New(submitter, repo, sessionID, summary),
		}
	}
}

// abandonSession records an incomplete end event and returns home.
func (s *SessionScreen) abandonSession() (screen.Screen, tea.Cmd) {
	_ = s.deps.Repo.AppendSessionEvent(context.Background(), store.SessionEventData{
		SessionID:         s.state.ID,
		Action:            "end",
		QuestionTarget:    s.state.QuestionTarget,
		Topic:             s.deps.Topic,
		QuestionsAnswered: s.state.TotalAnswered,
		CorrectAnswers:    s.state.CorrectCount,
		DurationSecs:      int(s.state.Elapsed().Seconds()),
		Completed:         false,
	})

	return s, func() tea.Msg { return router.PopToRootMsg{} }
}
