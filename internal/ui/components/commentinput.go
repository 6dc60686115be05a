package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// CommentInput wraps bubbles/textinput for the survey's optional
// free-text comment, enforcing the character cap at the input level.
type CommentInput struct {
	Model textinput.Model
}

// NewCommentInput creates a comment field capped at maxLen characters.
func NewCommentInput(placeholder string, maxLen int) CommentInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = maxLen
	return CommentInput{Model: ti}
}

// Focus gives the field keyboard focus.
func (c *CommentInput) Focus() tea.Cmd {
	return c.Model.Focus()
}

// Blur removes keyboard focus.
func (c *CommentInput) Blur() {
	c.Model.Blur()
}

// Focused reports whether the field has keyboard focus.
func (c CommentInput) Focused() bool {
	return c.Model.Focused()
}

// Update forwards messages to the underlying input.
func (c CommentInput) Update(msg tea.Msg) (CommentInput, tea.Cmd) {
	var cmd tea.Cmd
	c.Model, cmd = c.Model.Update(msg)
	return c, cmd
}

// View renders the field.
func (c CommentInput) View() string {
	return c.Model.View()
}

// Value returns the current draft text.
func (c CommentInput) Value() string {
	return c.Model.Value()
}
