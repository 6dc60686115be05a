package components

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// DefaultToastDuration is how long a toast stays visible before it
// dismisses itself.
const DefaultToastDuration = 3 * time.Second

// toastDismissMsg carries the sequence of the Show that scheduled it.
// A tick whose seq no longer matches the toast's current seq belongs
// to a superseded timer and is ignored.
type toastDismissMsg struct {
	seq int
}

// Toast is a transient notification with an auto-dismiss timer.
// Showing a new message while one is visible replaces it and restarts
// the timer from zero.
type Toast struct {
	Message  string
	Visible  bool
	Duration time.Duration

	seq int
}

// NewToast creates a hidden toast with the default duration.
func NewToast() Toast {
	return Toast{Duration: DefaultToastDuration}
}

// Show makes the toast visible with the given message and schedules
// its dismissal. Any previously scheduled dismissal becomes stale.
func (t Toast) Show(message string) (Toast, tea.Cmd) {
	t.Message = message
	t.Visible = true
	t.seq++

	seq := t.seq
	d := t.Duration
	if d <= 0 {
		d = DefaultToastDuration
	}

	return t, tea.Tick(d, func(time.Time) tea.Msg {
		return toastDismissMsg{seq: seq}
	})
}

// Hide dismisses the toast immediately. The pending timer, if any,
// becomes stale and its tick is ignored.
func (t Toast) Hide() Toast {
	t.Visible = false
	t.seq++
	return t
}

// Update handles dismissal ticks. Stale ticks are no-ops.
func (t Toast) Update(msg tea.Msg) (Toast, tea.Cmd) {
	dm, ok := msg.(toastDismissMsg)
	if !ok {
		return t, nil
	}
	if dm.seq != t.seq {
		return t, nil
	}
	t.Visible = false
	return t, nil
}

// View renders the toast, or nothing when hidden.
func (t Toast) View() string {
	if !t.Visible {
		return ""
	}
	return theme.ToastBox.Render(t.Message)
}
