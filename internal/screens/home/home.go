package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/feedback"
	"github.com/abhisek/quizdeck/internal/questionbank"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/screens/history"
	sessionscreen "github.com/abhisek/quizdeck/internal/screens/session"
	"github.com/abhisek/quizdeck/internal/store"
	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// Deps carries everything a quiz run needs.
type Deps struct {
	Repo           store.EventRepo
	Bank           *questionbank.Bank
	Picker         questionbank.Provider
	Submitter      feedback.Submitter
	QuestionTarget int
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	deps   Deps
	menu   components.Menu
	topics []string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	var topics []string
	if deps.Bank != nil {
		topics = deps.Bank.Topics()
	}

	items := []components.MenuItem{
		{Label: "Start Quiz", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: sessionscreen.New(sessionscreen.Deps{
						Repo:           deps.Repo,
						Picker:         deps.Picker,
						Submitter:      deps.Submitter,
						QuestionTarget: deps.QuestionTarget,
					}),
				}
			}
		}},
		{Label: "History", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(deps.Repo)}
			}
		}},
		{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		deps:   deps,
		menu:   components.NewMenu(items),
		topics: topics,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := theme.Title.Width(width).Render("QUIZDECK")
	subtitle := theme.Subtitle.Width(width).Render("adaptive quizzes for the terminal")
	sections = append(sections, title, subtitle, "")

	if len(h.topics) > 0 {
		bankLine := fmt.Sprintf("%d questions across %s",
			h.deps.Bank.Len(), strings.Join(h.topics, ", "))
		sections = append(sections, theme.Hint.Width(width).Align(lipgloss.Center).Render(bankLine), "")
	}

	menu := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(h.menu.View())
	sections = append(sections, menu)

	content := strings.Join(sections, "\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		AlignVertical(lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
