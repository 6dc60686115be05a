package quiz

import "math"

// Report holds the derived display percentages for a session.
type Report struct {
	// ProgressPct is how far through the question target the session is,
	// 0-100. The question currently on screen does not count until
	// answered, hence the -1 below.
	ProgressPct int

	// AccuracyPct is the share of answered questions that were correct,
	// 0-100. Zero when nothing has been answered yet.
	AccuracyPct int
}

// BuildReport computes progress and accuracy percentages from raw
// session counters. It is pure and safe to call on every render.
// Out-of-range inputs are clamped rather than rejected since callers
// may feed values straight from persisted records.
func BuildReport(currentQuestion, target, correct, answered int) Report {
	var progress int
	if target > 0 {
		progress = roundPct(float64(currentQuestion-1) / float64(target))
	}

	var accuracy int
	if answered > 0 {
		accuracy = roundPct(float64(correct) / float64(answered))
	}

	return Report{
		ProgressPct: clampPct(progress),
		AccuracyPct: clampPct(accuracy),
	}
}

func roundPct(ratio float64) int {
	return int(math.Round(ratio * 100))
}

func clampPct(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
