package components

import (
	"strings"
	"testing"
	"time"
)

func TestToastShowMakesVisible(t *testing.T) {
	toast := NewToast()
	toast, cmd := toast.Show("Correct!")

	if !toast.Visible {
		t.Error("expected toast to be visible after Show")
	}
	if toast.Message != "Correct!" {
		t.Errorf("expected message %q, got %q", "Correct!", toast.Message)
	}
	if cmd == nil {
		t.Fatal("expected Show to schedule a dismissal")
	}
}

func TestToastDismissesOnMatchingTick(t *testing.T) {
	toast := NewToast()
	toast, _ = toast.Show("saved")

	toast, _ = toast.Update(toastDismissMsg{seq: toast.seq})

	if toast.Visible {
		t.Error("expected toast hidden after its own dismissal tick")
	}
}

func TestToastIgnoresStaleTick(t *testing.T) {
	toast := NewToast()
	toast, _ = toast.Show("first")
	staleSeq := toast.seq

	// A second Show supersedes the first timer.
	toast, _ = toast.Show("second")

	toast, _ = toast.Update(toastDismissMsg{seq: staleSeq})

	if !toast.Visible {
		t.Error("stale tick must not dismiss the replacement toast")
	}
	if toast.Message != "second" {
		t.Errorf("expected message %q, got %q", "second", toast.Message)
	}
}

func TestToastHideCancelsPendingTimer(t *testing.T) {
	toast := NewToast()
	toast, _ = toast.Show("bye")
	staleSeq := toast.seq

	toast = toast.Hide()
	if toast.Visible {
		t.Error("expected toast hidden after Hide")
	}

	// Re-show; the old timer's tick must not hide the new toast.
	toast, _ = toast.Show("back")
	toast, _ = toast.Update(toastDismissMsg{seq: staleSeq})

	if !toast.Visible {
		t.Error("tick from before Hide must be ignored")
	}
}

func TestToastReshowRestartsTimer(t *testing.T) {
	toast := NewToast()
	toast, _ = toast.Show("one")
	first := toast.seq

	toast, _ = toast.Show("two")
	if toast.seq == first {
		t.Error("expected Show to advance the timer sequence")
	}
}

func TestToastUpdateIgnoresOtherMessages(t *testing.T) {
	toast := NewToast()
	toast, _ = toast.Show("hello")

	toast, cmd := toast.Update(time.Now())

	if !toast.Visible {
		t.Error("unrelated message must not dismiss the toast")
	}
	if cmd != nil {
		t.Error("expected no command for unrelated message")
	}
}

func TestToastViewHiddenIsEmpty(t *testing.T) {
	toast := NewToast()
	if toast.View() != "" {
		t.Error("hidden toast must render nothing")
	}

	toast, _ = toast.Show("visible now")
	if !strings.Contains(toast.View(), "visible now") {
		t.Error("visible toast must render its message")
	}
}
