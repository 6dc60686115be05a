package store

import (
	"context"
	"fmt"

	"github.com/abhisek/quizdeck/ent"
	"github.com/abhisek/quizdeck/ent/sessionevent"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetQuestionTarget(data.QuestionTarget).
		SetQuestionsAnswered(data.QuestionsAnswered).
		SetCorrectAnswers(data.CorrectAnswers).
		SetDurationSecs(data.DurationSecs).
		SetCompleted(data.Completed)

	if data.Topic != "" {
		builder = builder.SetTopic(data.Topic)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentSessions(ctx context.Context, limit int) ([]SessionRecord, error) {
	q := r.client.SessionEvent.Query().
		Where(sessionevent.Action("end")).
		Order(ent.Desc(sessionevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent sessions: %w", err)
	}

	records := make([]SessionRecord, 0, len(events))
	for _, e := range events {
		records = append(records, SessionRecord{
			SessionID:         e.SessionID,
			EndedAt:           e.Timestamp,
			QuestionsAnswered: e.QuestionsAnswered,
			CorrectAnswers:    e.CorrectAnswers,
			DurationSecs:      e.DurationSecs,
			Completed:         e.Completed,
		})
	}
	return records, nil
}

func (r *eventRepo) Stats(ctx context.Context) (LifetimeStats, error) {
	var stats LifetimeStats

	ends, err := r.client.SessionEvent.Query().
		Where(sessionevent.Action("end")).
		All(ctx)
	if err != nil {
		return stats, fmt.Errorf("query session ends: %w", err)
	}

	stats.SessionsPlayed = len(ends)
	for _, e := range ends {
		if e.Completed {
			stats.SessionsCompleted++
		}
		stats.QuestionsAnswered += e.QuestionsAnswered
		stats.CorrectAnswers += e.CorrectAnswers
	}

	ratings, err := r.client.FeedbackEvent.Query().All(ctx)
	if err != nil {
		return stats, fmt.Errorf("query feedback: %w", err)
	}
	stats.RatingsGiven = len(ratings)
	if len(ratings) > 0 {
		total := 0
		for _, f := range ratings {
			total += f.Rating
		}
		stats.AverageRating = float64(total) / float64(len(ratings))
	}

	return stats, nil
}
