package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/ui/theme"
)

var choiceLabels = []string{"A", "B", "C", "D"}

// ChoiceList is the answer selector for a multiple-choice question.
// After Reveal it shows the correct choice and the learner's pick.
type ChoiceList struct {
	Choices      []string
	CorrectIndex int
	Selected     int
	Revealed     bool
	ChosenIndex  int
}

// NewChoiceList creates a selector over the given choices.
func NewChoiceList(choices []string, correctIndex int) ChoiceList {
	return ChoiceList{
		Choices:      choices,
		CorrectIndex: correctIndex,
		Selected:     0,
		ChosenIndex:  -1,
	}
}

// Update handles keyboard navigation. Choosing is left to the caller
// via Choose, so the screen can persist the answer first.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	if c.Revealed {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Choices)-1 {
			c.Selected++
		}
	}

	return c, nil
}

// Choose locks in the given choice and reveals the answer.
func (c ChoiceList) Choose(index int) ChoiceList {
	if c.Revealed || index < 0 || index >= len(c.Choices) {
		return c
	}
	c.ChosenIndex = index
	c.Revealed = true
	return c
}

// IsCorrect returns true if the learner chose the correct answer.
func (c ChoiceList) IsCorrect() bool {
	return c.Revealed && c.ChosenIndex == c.CorrectIndex
}

// View renders the choices, highlighting the cursor before reveal and
// the correct/incorrect picks after.
func (c ChoiceList) View() string {
	var s string
	for i, choice := range c.Choices {
		prefix := "  "
		if i == c.Selected && !c.Revealed {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, choiceLabels[i], choice)

		var style lipgloss.Style
		switch {
		case c.Revealed && i == c.CorrectIndex:
			style = theme.Correct
		case c.Revealed && i == c.ChosenIndex:
			style = theme.Incorrect
		case c.Revealed:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == c.Selected:
			style = theme.Selected
		default:
			style = theme.Unselected
		}
		s += style.Render(line) + "\n"
	}
	return s
}
