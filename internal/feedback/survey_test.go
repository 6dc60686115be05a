package feedback

import (
	"strings"
	"testing"
)

func TestSurvey_InitialState(t *testing.T) {
	s := NewSurvey()
	if s.State() != StateIdle {
		t.Errorf("state = %v, want Idle", s.State())
	}
	if s.Rating() != 0 {
		t.Errorf("rating = %d, want 0", s.Rating())
	}
	if s.CommentAllowed() {
		t.Error("comment should not be revealed before a rating is chosen")
	}
}

func TestSurvey_SelectCommitsRating(t *testing.T) {
	s := NewSurvey()
	s.Select(3)

	if s.State() != StateRatingSelected {
		t.Errorf("state = %v, want RatingSelected", s.State())
	}
	if s.Rating() != 3 {
		t.Errorf("rating = %d, want 3", s.Rating())
	}
	if !s.CommentAllowed() {
		t.Error("comment should be revealed after selecting a rating")
	}
}

func TestSurvey_SelectIgnoresInvalid(t *testing.T) {
	s := NewSurvey()
	for _, r := range []int{0, -1, 6, 100} {
		s.Select(r)
	}
	if s.State() != StateIdle || s.Rating() != 0 {
		t.Errorf("invalid selects mutated survey: state=%v rating=%d", s.State(), s.Rating())
	}
}

func TestSurvey_HoverPreviewsWithoutCommit(t *testing.T) {
	s := NewSurvey()
	s.Hover(4)

	if s.Preview() != 4 {
		t.Errorf("Preview = %d, want 4", s.Preview())
	}
	if s.Rating() != 0 || s.State() != StateIdle {
		t.Error("hover must not commit a rating")
	}

	s.ClearHover()
	if s.Preview() != 0 {
		t.Errorf("Preview after clear = %d, want 0", s.Preview())
	}

	// With a committed rating, preview falls back to it.
	s.Select(2)
	if s.Preview() != 2 {
		t.Errorf("Preview = %d, want committed 2", s.Preview())
	}
	s.Hover(5)
	if s.Preview() != 5 {
		t.Errorf("Preview = %d, want hovered 5", s.Preview())
	}
}

func TestSurvey_SubmitWithoutRatingIsNoop(t *testing.T) {
	s := NewSurvey()
	if _, ok := s.BeginSubmit(); ok {
		t.Error("submit without rating must be rejected")
	}
	if s.State() != StateIdle {
		t.Errorf("state = %v, want Idle", s.State())
	}
}

func TestSurvey_SubmitExactlyOnce(t *testing.T) {
	s := NewSurvey()
	s.Select(3)

	sub, ok := s.BeginSubmit()
	if !ok {
		t.Fatal("first submit should be accepted")
	}
	if sub.Rating != 3 {
		t.Errorf("rating = %d, want 3", sub.Rating)
	}
	if sub.Comment != nil {
		t.Errorf("comment = %q, want absent", *sub.Comment)
	}

	// Second submit while in flight is a no-op.
	if _, ok := s.BeginSubmit(); ok {
		t.Error("submit while in flight must be rejected")
	}
	if s.State() != StateSubmitting {
		t.Errorf("state = %v, want Submitting", s.State())
	}
}

func TestSurvey_AcknowledgeIsTerminal(t *testing.T) {
	s := NewSurvey()
	s.Select(5)
	s.BeginSubmit()
	s.Acknowledge()

	if s.State() != StateSuccess {
		t.Fatalf("state = %v, want Success", s.State())
	}

	// No further mutation from Success.
	s.Select(1)
	s.Fail()
	if _, ok := s.BeginSubmit(); ok {
		t.Error("submit from Success must be rejected")
	}
	if s.Rating() != 5 || s.State() != StateSuccess {
		t.Errorf("terminal state mutated: state=%v rating=%d", s.State(), s.Rating())
	}
}

func TestSurvey_FailReturnsToActionable(t *testing.T) {
	s := NewSurvey()
	s.Select(2)
	s.BeginSubmit()
	s.Fail()

	if s.State() != StateRatingSelected {
		t.Fatalf("state = %v, want RatingSelected", s.State())
	}

	// Retry is a fresh submit.
	if _, ok := s.BeginSubmit(); !ok {
		t.Error("resubmit after failure should be accepted")
	}
}

func TestSurvey_CommentNormalization(t *testing.T) {
	tests := []struct {
		name  string
		draft string
		want  *string
	}{
		{"absent", "", nil},
		{"whitespace only", "   \t\n ", nil},
		{"trimmed", "  great quiz  ", strPtr("great quiz")},
		{"plain", "too easy", strPtr("too easy")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSurvey()
			s.Select(4)
			s.SetComment(tt.draft)
			sub, ok := s.BeginSubmit()
			if !ok {
				t.Fatal("submit rejected")
			}
			switch {
			case tt.want == nil && sub.Comment != nil:
				t.Errorf("comment = %q, want absent", *sub.Comment)
			case tt.want != nil && sub.Comment == nil:
				t.Errorf("comment absent, want %q", *tt.want)
			case tt.want != nil && *sub.Comment != *tt.want:
				t.Errorf("comment = %q, want %q", *sub.Comment, *tt.want)
			}
		})
	}
}

func TestSurvey_CommentCap(t *testing.T) {
	s := NewSurvey()
	s.Select(1)
	s.SetComment(strings.Repeat("x", MaxCommentLen+200))

	if got := len([]rune(s.Comment())); got != MaxCommentLen {
		t.Errorf("comment length = %d, want %d", got, MaxCommentLen)
	}
}

func TestSurvey_CommentIgnoredBeforeRating(t *testing.T) {
	s := NewSurvey()
	s.SetComment("sneaky")
	if s.Comment() != "" {
		t.Errorf("comment = %q, want empty before rating", s.Comment())
	}
}

func strPtr(s string) *string {
	return &s
}
