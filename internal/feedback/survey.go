package feedback

import "strings"

// State is the survey's lifecycle state.
type State int

const (
	StateIdle           State = iota // No rating chosen yet
	StateRatingSelected              // Rating committed, submit available
	StateSubmitting                  // Submission in flight
	StateSuccess                     // Acknowledged; terminal
)

const (
	// MaxRating is the top of the star scale.
	MaxRating = 5

	// MaxCommentLen is the comment cap in runes.
	MaxCommentLen = 500
)

// Submission is the immutable payload built on a successful submit.
// Comment is nil when the learner left it empty or whitespace-only.
type Submission struct {
	Rating  int
	Comment *string
}

// Survey is the rating-capture state machine. Selecting a star commits
// a rating; hovering only previews one. Submit is guarded: it is a
// silent no-op without a rating or while a submission is in flight, so
// the payload is delivered exactly once per accepted submit.
type Survey struct {
	state   State
	rating  int
	hover   int // transient preview, 0 = none
	comment string
}

// NewSurvey creates a survey in the Idle state.
func NewSurvey() *Survey {
	return &Survey{state: StateIdle}
}

// State returns the current lifecycle state.
func (s *Survey) State() State {
	return s.state
}

// Rating returns the committed rating, 0 if none.
func (s *Survey) Rating() int {
	return s.rating
}

// Select commits a star rating. Values outside [1,MaxRating] are
// ignored, as is any selection once a submission is in flight or done.
func (s *Survey) Select(rating int) {
	if rating < 1 || rating > MaxRating {
		return
	}
	if s.state == StateSubmitting || s.state == StateSuccess {
		return
	}
	s.rating = rating
	s.state = StateRatingSelected
}

// Hover sets the transient preview value without committing it.
func (s *Survey) Hover(rating int) {
	if rating < 1 || rating > MaxRating {
		return
	}
	if s.state == StateSubmitting || s.state == StateSuccess {
		return
	}
	s.hover = rating
}

// ClearHover removes the preview.
func (s *Survey) ClearHover() {
	s.hover = 0
}

// Preview returns the value the stars should display: the hovered value
// when present, the committed rating otherwise.
func (s *Survey) Preview() int {
	if s.hover != 0 {
		return s.hover
	}
	return s.rating
}

// CommentAllowed reports whether the comment field should be revealed.
// It only appears once a rating has been chosen.
func (s *Survey) CommentAllowed() bool {
	return s.state == StateRatingSelected
}

// SetComment stores the draft comment, truncated to MaxCommentLen runes.
func (s *Survey) SetComment(text string) {
	if s.state != StateRatingSelected {
		return
	}
	runes := []rune(text)
	if len(runes) > MaxCommentLen {
		runes = runes[:MaxCommentLen]
	}
	s.comment = string(runes)
}

// Comment returns the current draft comment.
func (s *Survey) Comment() string {
	return s.comment
}

// BeginSubmit attempts the RatingSelected -> Submitting transition and
// builds the payload. It returns ok=false (and no payload) when no
// rating is committed or a submission is already in flight.
func (s *Survey) BeginSubmit() (Submission, bool) {
	if s.state != StateRatingSelected || s.rating == 0 {
		return Submission{}, false
	}
	s.state = StateSubmitting
	s.hover = 0
	return Submission{
		Rating:  s.rating,
		Comment: normalizeComment(s.comment),
	}, true
}

// Acknowledge completes the submission. Success is terminal.
func (s *Survey) Acknowledge() {
	if s.state != StateSubmitting {
		return
	}
	s.state = StateSuccess
}

// Fail returns the survey to an actionable state after a failed
// delivery. Retrying is a fresh submit by the learner, not the survey.
func (s *Survey) Fail() {
	if s.state != StateSubmitting {
		return
	}
	s.state = StateRatingSelected
}

// normalizeComment trims the draft and maps empty results to absent.
func normalizeComment(text string) *string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
