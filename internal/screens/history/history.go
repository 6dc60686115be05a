package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/store"
	"github.com/abhisek/quizdeck/internal/ui/layout"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

const sessionLimit = 50

type historyLoadedMsg struct {
	Sessions []store.SessionRecord
	Stats    store.LifetimeStats
	Err      error
}

// HistoryScreen displays past sessions and lifetime totals.
type HistoryScreen struct {
	eventRepo store.EventRepo
	sessions  []store.SessionRecord
	stats     store.LifetimeStats
	selected  int
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{eventRepo: eventRepo}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		sessions, err := s.eventRepo.RecentSessions(ctx, sessionLimit)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		stats, err := s.eventRepo.Stats(ctx)
		if err != nil {
			return historyLoadedMsg{Sessions: sessions}
		}

		return historyLoadedMsg{Sessions: sessions, Stats: stats}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
			s.stats = msg.Stats
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No sessions yet. Start a quiz!")
	}

	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(s.statsLine())))
	b.WriteString("\n\n")

	for i, sess := range s.sessions {
		dateStr := sess.EndedAt.Format("Jan 02, 2006")
		mins := sess.DurationSecs / 60
		secs := sess.DurationSecs % 60

		var accuracy float64
		if sess.QuestionsAnswered > 0 {
			accuracy = float64(sess.CorrectAnswers) / float64(sess.QuestionsAnswered) * 100
		}

		status := ""
		if !sess.Completed {
			status = "  (abandoned)"
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %d:%02d  %d questions  %.0f%% accuracy%s",
			prefix, dateStr, mins, secs, sess.QuestionsAnswered, accuracy, status)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

// statsLine summarizes lifetime totals in one row.
func (s *HistoryScreen) statsLine() string {
	var accuracy float64
	if s.stats.QuestionsAnswered > 0 {
		accuracy = float64(s.stats.CorrectAnswers) / float64(s.stats.QuestionsAnswered) * 100
	}
	line := fmt.Sprintf("%d sessions  ·  %d questions  ·  %.0f%% lifetime accuracy",
		s.stats.SessionsPlayed, s.stats.QuestionsAnswered, accuracy)
	if s.stats.RatingsGiven > 0 {
		line += fmt.Sprintf("  ·  avg rating %.1f", s.stats.AverageRating)
	}
	return line
}
