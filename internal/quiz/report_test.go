package quiz

import "testing"

func TestBuildReport_Progress(t *testing.T) {
	tests := []struct {
		name    string
		current int
		target  int
		want    int
	}{
		{"start", 1, 12, 0},
		{"midway", 8, 12, 58}, // round(7/12*100)
		{"half", 7, 12, 50},
		{"last question", 12, 12, 92},
		{"complete", 13, 12, 100},
		{"single question", 1, 1, 0},
		{"single complete", 2, 1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := BuildReport(tt.current, tt.target, 0, 0)
			if r.ProgressPct != tt.want {
				t.Errorf("ProgressPct = %d, want %d", r.ProgressPct, tt.want)
			}
		})
	}
}

func TestBuildReport_Accuracy(t *testing.T) {
	tests := []struct {
		name     string
		correct  int
		answered int
		want     int
	}{
		{"nothing answered", 0, 0, 0},
		{"nothing answered ignores correct", 3, 0, 0},
		{"three quarters", 6, 8, 75},
		{"all correct", 5, 5, 100},
		{"none correct", 0, 5, 0},
		{"two thirds", 2, 3, 67},
		{"one third", 1, 3, 33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := BuildReport(1, 12, tt.correct, tt.answered)
			if r.AccuracyPct != tt.want {
				t.Errorf("AccuracyPct = %d, want %d", r.AccuracyPct, tt.want)
			}
		})
	}
}

func TestBuildReport_BoundsOnValidSessions(t *testing.T) {
	// Walk a full session and check both percentages stay in [0,100].
	s, _ := NewSession("s", 9)
	for i := 0; !s.Complete(); i++ {
		r := s.Report()
		if r.ProgressPct < 0 || r.ProgressPct > 100 {
			t.Fatalf("ProgressPct out of range: %d", r.ProgressPct)
		}
		if r.AccuracyPct < 0 || r.AccuracyPct > 100 {
			t.Fatalf("AccuracyPct out of range: %d", r.AccuracyPct)
		}
		_ = s.Advance(i%2 == 0)
	}
}

func TestBuildReport_ClampsBadInput(t *testing.T) {
	r := BuildReport(50, 10, 20, 10)
	if r.ProgressPct != 100 {
		t.Errorf("ProgressPct = %d, want clamped 100", r.ProgressPct)
	}
	if r.AccuracyPct != 100 {
		t.Errorf("AccuracyPct = %d, want clamped 100", r.AccuracyPct)
	}

	r = BuildReport(0, 0, 0, 0)
	if r.ProgressPct != 0 || r.AccuracyPct != 0 {
		t.Errorf("zero input should produce zero report, got %+v", r)
	}
}
