package quiz

import "testing"

func TestTopicTally_FirstSeenOrder(t *testing.T) {
	tally := NewTopicTally()
	tally.Record("fractions", true)
	tally.Record("geometry", false)
	tally.Record("fractions", false)
	tally.Record("geometry", true)
	tally.Record("fractions", true)

	results := tally.Results()
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	if results[0].Topic != "fractions" || results[1].Topic != "geometry" {
		t.Errorf("order = [%s %s], want [fractions geometry]", results[0].Topic, results[1].Topic)
	}
	if results[0].Attempted != 3 || results[0].Correct != 2 {
		t.Errorf("fractions = %d/%d, want 2/3", results[0].Correct, results[0].Attempted)
	}
	if results[1].Attempted != 2 || results[1].Correct != 1 {
		t.Errorf("geometry = %d/%d, want 1/2", results[1].Correct, results[1].Attempted)
	}
}

func TestBuildSummary(t *testing.T) {
	s, _ := NewSession("abc", 8)
	tally := NewTopicTally()
	answers := []struct {
		topic   string
		correct bool
	}{
		{"fractions", true}, {"fractions", true}, {"geometry", false},
		{"geometry", true}, {"fractions", true}, {"decimals", true},
		{"decimals", false}, {"geometry", true},
	}
	for _, a := range answers {
		if err := s.Advance(a.correct); err != nil {
			t.Fatalf("advance: %v", err)
		}
		tally.Record(a.topic, a.correct)
	}

	sum := BuildSummary(s, tally)
	if sum.SessionID != "abc" {
		t.Errorf("SessionID = %q, want abc", sum.SessionID)
	}
	if sum.TotalAnswered != 8 || sum.TotalCorrect != 6 {
		t.Errorf("totals = %d/%d, want 6/8", sum.TotalCorrect, sum.TotalAnswered)
	}
	if sum.AccuracyPct != 75 {
		t.Errorf("AccuracyPct = %d, want 75", sum.AccuracyPct)
	}
	if len(sum.TopicResults) != 3 {
		t.Errorf("len(TopicResults) = %d, want 3", len(sum.TopicResults))
	}
}

func TestBuildSummary_NilTally(t *testing.T) {
	s, _ := NewSession("abc", 3)
	sum := BuildSummary(s, nil)
	if sum.TopicResults != nil {
		t.Errorf("TopicResults = %v, want nil", sum.TopicResults)
	}
}
