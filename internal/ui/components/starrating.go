package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// StarRating renders a 1..Max star scale. Value is what the stars
// display — the hovered preview when the learner is moving the cursor,
// the committed rating otherwise. Locked dims the scale once the
// survey no longer accepts changes.
type StarRating struct {
	Max    int
	Value  int
	Locked bool
}

// NewStarRating creates a star scale of the given size.
func NewStarRating(max int) StarRating {
	return StarRating{Max: max}
}

// View renders the stars with a numeric readout.
func (s StarRating) View() string {
	var b strings.Builder
	for i := 1; i <= s.Max; i++ {
		star := "☆"
		style := theme.StarEmpty
		if i <= s.Value {
			star = "★"
			style = theme.StarFilled
		}
		if s.Locked {
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		}
		b.WriteString(style.Render(star))
		b.WriteString(" ")
	}

	readout := "choose a rating"
	if s.Value > 0 {
		readout = fmt.Sprintf("%d of %d", s.Value, s.Max)
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(" " + readout))

	return b.String()
}
