package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.state == nil || s.current == nil {
		return renderLoading(width)
	}
	if s.showingQuitConfirm {
		return renderQuitConfirm(width)
	}
	return s.renderQuestionView(width)
}

// renderQuestionView renders the active question with the progress
// header above it.
func (s *SessionScreen) renderQuestionView(width int) string {
	report := s.state.Report()
	q := s.current

	var b strings.Builder

	// Progress header: question counter, progress bar, accuracy.
	counter := fmt.Sprintf("  Question %d of %d", s.state.CurrentQuestionNumber, s.state.QuestionTarget)
	if s.state.Complete() {
		counter = "  Session complete"
	}
	left := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(counter)
	right := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("accuracy %d%%  ", report.AccuracyPct))

	header := left
	pad := width - lipgloss.Width(left) - lipgloss.Width(right)
	if pad > 0 {
		header += strings.Repeat(" ", pad) + right
	}
	b.WriteString(header)
	b.WriteString("\n")

	bar := components.NewProgressBar("", report.ProgressPct, width-4)
	b.WriteString("  " + bar.View())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Topic and difficulty tag.
	tag := fmt.Sprintf("%s · %s", q.Topic, q.Difficulty)
	b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render(tag))
	b.WriteString("\n\n")

	// Question prompt.
	promptStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(promptStyle.Render(q.Prompt))
	b.WriteString("\n\n")

	// Choices.
	choices := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(s.choices.View())
	b.WriteString(choices)

	// Reveal: explanation and toast.
	if s.choices.Revealed {
		b.WriteString("\n")
		if q.Explanation != "" {
			b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render(q.Explanation))
			b.WriteString("\n")
		}
		if toast := s.toast.View(); toast != "" {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(toast))
		}
	}

	return b.String()
}

func renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n  Picking a question...")
}

func renderError(width int, msg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("\n\n  " + msg + "\n\n  Press any key to go back")
}

func renderQuitConfirm(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render("\n\n  End this session early?\n\n  Progress so far will be saved.\n\n  [Y]es  /  [N]o")
}
