package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testRepo(t *testing.T) EventRepo {
	t.Helper()
	repo, err := openTestStore(t).EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	return repo
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not checked here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if want := int64(i + 1); seq != want {
			t.Errorf("seq[%d] = %d, want %d", i, seq, want)
		}
	}
}

func TestSessionEventsRoundTrip(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID:      "s1",
		Action:         "start",
		QuestionTarget: 12,
		Topic:          "science",
	})
	if err != nil {
		t.Fatalf("append start: %v", err)
	}

	err = repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID:         "s1",
		Action:            "end",
		QuestionsAnswered: 12,
		CorrectAnswers:    9,
		DurationSecs:      300,
		Completed:         true,
	})
	if err != nil {
		t.Fatalf("append end: %v", err)
	}

	records, err := repo.RecentSessions(ctx, 10)
	if err != nil {
		t.Fatalf("recent sessions: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1 (start events excluded)", len(records))
	}
	r := records[0]
	if r.SessionID != "s1" || r.QuestionsAnswered != 12 || r.CorrectAnswers != 9 || !r.Completed {
		t.Errorf("record = %+v", r)
	}
}

func TestRecentSessions_NewestFirstWithLimit(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		err := repo.AppendSessionEvent(ctx, SessionEventData{
			SessionID: id,
			Action:    "end",
			Completed: true,
		})
		if err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
	}

	records, err := repo.RecentSessions(ctx, 2)
	if err != nil {
		t.Fatalf("recent sessions: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}
	if records[0].SessionID != "c" || records[1].SessionID != "b" {
		t.Errorf("order = [%s %s], want [c b]", records[0].SessionID, records[1].SessionID)
	}
}

func TestTopicAccuracy(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	answers := []struct {
		topic   string
		correct bool
	}{
		{"science", true}, {"science", true}, {"science", false},
		{"history", false},
	}
	for i, a := range answers {
		err := repo.AppendAnswerEvent(ctx, AnswerEventData{
			SessionID:  "s1",
			QuestionID: "q",
			Topic:      a.topic,
			Difficulty: "medium",
			Chosen:     "x",
			Correct:    a.correct,
			TimeMs:     1000,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	acc, err := repo.TopicAccuracy(ctx, "science")
	if err != nil {
		t.Fatalf("topic accuracy: %v", err)
	}
	if want := 2.0 / 3.0; acc != want {
		t.Errorf("accuracy = %f, want %f", acc, want)
	}

	acc, err = repo.TopicAccuracy(ctx, "never-answered")
	if err != nil {
		t.Fatalf("topic accuracy (empty): %v", err)
	}
	if acc != 0 {
		t.Errorf("accuracy = %f, want 0 for unanswered topic", acc)
	}
}

func TestStats(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	sessions := []SessionEventData{
		{SessionID: "s1", Action: "end", QuestionsAnswered: 10, CorrectAnswers: 7, Completed: true},
		{SessionID: "s2", Action: "end", QuestionsAnswered: 4, CorrectAnswers: 2, Completed: false},
	}
	for _, se := range sessions {
		if err := repo.AppendSessionEvent(ctx, se); err != nil {
			t.Fatalf("append session: %v", err)
		}
	}

	comment := "good"
	feedback := []FeedbackEventData{
		{SessionID: "s1", Rating: 4, Comment: &comment, Delivered: true},
		{SessionID: "s2", Rating: 2},
	}
	for _, fe := range feedback {
		if err := repo.AppendFeedbackEvent(ctx, fe); err != nil {
			t.Fatalf("append feedback: %v", err)
		}
	}

	stats, err := repo.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}

	if stats.SessionsPlayed != 2 || stats.SessionsCompleted != 1 {
		t.Errorf("sessions = %d/%d, want 2 played, 1 completed", stats.SessionsPlayed, stats.SessionsCompleted)
	}
	if stats.QuestionsAnswered != 14 || stats.CorrectAnswers != 9 {
		t.Errorf("questions = %d answered, %d correct; want 14/9", stats.QuestionsAnswered, stats.CorrectAnswers)
	}
	if stats.RatingsGiven != 2 || stats.AverageRating != 3.0 {
		t.Errorf("ratings = %d avg %f, want 2 avg 3.0", stats.RatingsGiven, stats.AverageRating)
	}
}

func TestStats_EmptyLog(t *testing.T) {
	repo := testRepo(t)

	stats, err := repo.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats != (LifetimeStats{}) {
		t.Errorf("stats = %+v, want zero value", stats)
	}
}
