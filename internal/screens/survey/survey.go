package survey

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizdeck/internal/feedback"
	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/screens/summary"
	"github.com/abhisek/quizdeck/internal/store"
	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/layout"
)

const submitTimeout = 10 * time.Second

// submitResultMsg carries the outcome of a feedback delivery attempt.
type submitResultMsg struct {
	Err error
}

// SurveyScreen collects a 1-5 star rating and an optional comment
// after a finished session.
type SurveyScreen struct {
	survey    *feedback.Survey
	submitter feedback.Submitter
	repo      store.EventRepo
	sessionID string
	summary   *quiz.Summary

	comment   components.CommentInput
	toast     components.Toast
	persisted bool
}

var _ screen.Screen = (*SurveyScreen)(nil)
var _ screen.KeyHintProvider = (*SurveyScreen)(nil)

// New creates the survey screen for a finished session.
func New(submitter feedback.Submitter, repo store.EventRepo, sessionID string, sum *quiz.Summary) *SurveyScreen {
	return &SurveyScreen{
		survey:    feedback.NewSurvey(),
		submitter: submitter,
		repo:      repo,
		sessionID: sessionID,
		summary:   sum,
		comment:   components.NewCommentInput("Anything else? (optional)", feedback.MaxCommentLen),
		toast:     components.NewToast(),
	}
}

func (s *SurveyScreen) Init() tea.Cmd {
	return nil
}

func (s *SurveyScreen) Title() string {
	return "Feedback"
}

func (s *SurveyScreen) KeyHints() []layout.KeyHint {
	switch s.survey.State() {
	case feedback.StateSuccess:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
		}
	case feedback.StateSubmitting:
		return []layout.KeyHint{
			{Key: "", Description: "Sending..."},
		}
	case feedback.StateRatingSelected:
		return []layout.KeyHint{
			{Key: "1-5", Description: "Rating"},
			{Key: "Tab", Description: "Comment"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Skip"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-5", Description: "Rating"},
		{Key: "←→", Description: "Preview"},
		{Key: "Esc", Description: "Skip"},
	}
}

func (s *SurveyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case submitResultMsg:
		return s.handleSubmitResult(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	var cmd tea.Cmd
	s.toast, cmd = s.toast.Update(msg)
	return s, cmd
}

func (s *SurveyScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.survey.State() {
	case feedback.StateSubmitting:
		// Input is locked while the submission is in flight.
		return s, nil

	case feedback.StateSuccess:
		if key == "enter" || key == "esc" {
			return s.showSummary()
		}
		return s, nil
	}

	if s.comment.Focused() {
		switch key {
		case "enter":
			return s.submit()
		case "esc":
			s.comment.Blur()
			return s, nil
		}
		var cmd tea.Cmd
		s.comment, cmd = s.comment.Update(msg)
		s.survey.SetComment(s.comment.Value())
		return s, cmd
	}

	switch key {
	case "1", "2", "3", "4", "5":
		s.survey.Select(int(key[0] - '0'))
		s.survey.ClearHover()
		return s, nil
	case "left", "h":
		prev := s.survey.Preview()
		if prev == 0 {
			prev = 2
		}
		s.survey.Hover(prev - 1)
		return s, nil
	case "right", "l":
		s.survey.Hover(s.survey.Preview() + 1)
		return s, nil
	case "enter":
		if hover := s.survey.Preview(); s.survey.State() == feedback.StateIdle && hover > 0 {
			s.survey.Select(hover)
			s.survey.ClearHover()
			return s, nil
		}
		return s.submit()
	case "tab":
		if s.survey.CommentAllowed() {
			return s, s.comment.Focus()
		}
		return s, nil
	case "esc":
		return s.skip()
	}

	return s, nil
}

// submit starts delivery if the survey accepts it.
func (s *SurveyScreen) submit() (screen.Screen, tea.Cmd) {
	s.survey.SetComment(s.comment.Value())
	sub, ok := s.survey.BeginSubmit()
	if !ok {
		return s, nil
	}
	s.comment.Blur()

	submitter := s.submitter
	sessionID := s.sessionID
	return s, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
		defer cancel()
		return submitResultMsg{Err: submitter.Submit(ctx, sessionID, sub)}
	}
}

func (s *SurveyScreen) handleSubmitResult(msg submitResultMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.survey.Fail()
		var cmd tea.Cmd
		s.toast, cmd = s.toast.Show("Couldn't send feedback — Enter to retry, Esc to skip")
		return s, cmd
	}

	s.survey.Acknowledge()
	s.persistFeedback(true)

	var cmd tea.Cmd
	s.toast, cmd = s.toast.Show("Thanks for the feedback!")
	return s, cmd
}

// skip leaves the survey. A chosen rating is still recorded locally,
// marked undelivered.
func (s *SurveyScreen) skip() (screen.Screen, tea.Cmd) {
	if s.survey.Rating() > 0 {
		s.persistFeedback(false)
	}
	return s.showSummary()
}

// persistFeedback appends the feedback event exactly once.
func (s *SurveyScreen) persistFeedback(delivered bool) {
	if s.persisted || s.survey.Rating() == 0 {
		return
	}
	s.persisted = true

	var comment *string
	if c := strings.TrimSpace(s.survey.Comment()); c != "" {
		comment = &c
	}
	_ = s.repo.AppendFeedbackEvent(context.Background(), store.FeedbackEventData{
		SessionID: s.sessionID,
		Rating:    s.survey.Rating(),
		Comment:   comment,
		Delivered: delivered,
	})
}

func (s *SurveyScreen) showSummary() (screen.Screen, tea.Cmd) {
	sum := s.summary
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum)}
	}
}
