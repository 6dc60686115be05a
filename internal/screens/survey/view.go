package survey

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/feedback"
	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

func (s *SurveyScreen) View(width, height int) string {
	var b strings.Builder

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.Text).Bold(true).Render("How was this session?"))
	b.WriteString("\n\n")

	stars := components.StarRating{
		Max:    feedback.MaxRating,
		Value:  s.survey.Preview(),
		Locked: s.survey.State() == feedback.StateSubmitting || s.survey.State() == feedback.StateSuccess,
	}
	b.WriteString(center.Render(stars.View()))
	b.WriteString("\n\n")

	switch s.survey.State() {
	case feedback.StateRatingSelected:
		b.WriteString(center.Render(s.comment.View()))
		b.WriteString("\n")
	case feedback.StateSubmitting:
		b.WriteString(center.Foreground(theme.TextDim).Render("Sending..."))
		b.WriteString("\n")
	case feedback.StateSuccess:
		b.WriteString(center.Foreground(theme.Success).Render("✓ Feedback sent"))
		b.WriteString("\n")
	}

	if toast := s.toast.View(); toast != "" {
		b.WriteString("\n")
		b.WriteString(center.Render(toast))
	}

	return b.String()
}
