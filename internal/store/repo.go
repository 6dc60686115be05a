package store

import (
	"context"
	"time"
)

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID        string
	Action           string // "start" or "end"
	QuestionTarget   int    // on start only
	Topic            string // on start only, empty for mixed
	QuestionsAnswered int   // on end only
	CorrectAnswers   int    // on end only
	DurationSecs     int    // on end only
	Completed        bool   // on end only
}

// AnswerEventData captures one answered question.
type AnswerEventData struct {
	SessionID  string
	QuestionID string
	Topic      string
	Difficulty string
	Chosen     string
	Correct    bool
	TimeMs     int
}

// FeedbackEventData captures a post-session feedback submission.
type FeedbackEventData struct {
	SessionID string
	Rating    int
	Comment   *string
	Delivered bool
}

// SessionRecord is a finished session as read back from the event log.
type SessionRecord struct {
	SessionID         string
	EndedAt           time.Time
	QuestionsAnswered int
	CorrectAnswers    int
	DurationSecs      int
	Completed         bool
}

// LifetimeStats aggregates the whole event log for the stats command
// and the history screen.
type LifetimeStats struct {
	SessionsPlayed    int
	SessionsCompleted int
	QuestionsAnswered int
	CorrectAnswers    int
	RatingsGiven      int
	AverageRating     float64
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendSessionEvent records a session start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendAnswerEvent records one answered question.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendFeedbackEvent records an accepted feedback submission.
	AppendFeedbackEvent(ctx context.Context, data FeedbackEventData) error

	// RecentSessions returns up to limit finished sessions, newest first.
	RecentSessions(ctx context.Context, limit int) ([]SessionRecord, error)

	// Stats aggregates lifetime totals across the event log.
	Stats(ctx context.Context) (LifetimeStats, error)

	// TopicAccuracy returns the historical share of correct answers for
	// a topic, 0 when the topic has never been answered.
	TopicAccuracy(ctx context.Context, topic string) (float64, error)
}
