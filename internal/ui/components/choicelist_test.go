package components

import (
	"strings"
	"testing"
)

func TestChoiceListChoose(t *testing.T) {
	c := NewChoiceList([]string{"Paris", "Lyon", "Nice"}, 0)

	c = c.Choose(1)

	if !c.Revealed {
		t.Error("expected reveal after choosing")
	}
	if c.IsCorrect() {
		t.Error("choice 1 is not the correct answer")
	}

	// A second choice after reveal must not change anything.
	c = c.Choose(0)
	if c.ChosenIndex != 1 {
		t.Errorf("expected chosen index to stay 1, got %d", c.ChosenIndex)
	}
}

func TestChoiceListChooseOutOfRange(t *testing.T) {
	c := NewChoiceList([]string{"yes", "no"}, 0)

	c = c.Choose(5)
	if c.Revealed {
		t.Error("out-of-range choice must not reveal")
	}
	c = c.Choose(-1)
	if c.Revealed {
		t.Error("negative choice must not reveal")
	}
}

func TestChoiceListCorrectChoice(t *testing.T) {
	c := NewChoiceList([]string{"3", "4"}, 1)
	c = c.Choose(1)
	if !c.IsCorrect() {
		t.Error("expected correct choice to be recognized")
	}
}

func TestChoiceListViewShowsAllChoices(t *testing.T) {
	c := NewChoiceList([]string{"alpha", "beta"}, 0)
	v := c.View()
	for _, want := range []string{"alpha", "beta", "A)", "B)"} {
		if !strings.Contains(v, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}
