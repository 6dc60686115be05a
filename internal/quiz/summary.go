package quiz

import "time"

// TopicResult tracks per-topic performance within a single session.
type TopicResult struct {
	Topic     string
	Attempted int
	Correct   int
}

// TopicTally accumulates per-topic results in first-seen order.
type TopicTally struct {
	order   []string
	results map[string]*TopicResult
}

// NewTopicTally creates an empty tally.
func NewTopicTally() *TopicTally {
	return &TopicTally{results: make(map[string]*TopicResult)}
}

// Record adds one answered question under the given topic.
func (t *TopicTally) Record(topic string, correct bool) {
	tr := t.results[topic]
	if tr == nil {
		tr = &TopicResult{Topic: topic}
		t.results[topic] = tr
		t.order = append(t.order, topic)
	}
	tr.Attempted++
	if correct {
		tr.Correct++
	}
}

// Results returns the accumulated per-topic results in first-seen order.
func (t *TopicTally) Results() []TopicResult {
	out := make([]TopicResult, 0, len(t.order))
	for _, topic := range t.order {
		out = append(out, *t.results[topic])
	}
	return out
}

// Summary holds the data displayed on the summary screen.
type Summary struct {
	SessionID      string
	Duration       time.Duration
	QuestionTarget int
	TotalAnswered  int
	TotalCorrect   int
	AccuracyPct    int
	TopicResults   []TopicResult
}

// BuildSummary creates a Summary from a finished (or abandoned) session.
func BuildSummary(s *Session, tally *TopicTally) *Summary {
	sum := &Summary{
		SessionID:      s.ID,
		Duration:       s.Elapsed(),
		QuestionTarget: s.QuestionTarget,
		TotalAnswered:  s.TotalAnswered,
		TotalCorrect:   s.CorrectCount,
		AccuracyPct:    s.Report().AccuracyPct,
	}
	if tally != nil {
		sum.TopicResults = tally.Results()
	}
	return sum
}
