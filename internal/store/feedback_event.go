package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendFeedbackEvent(ctx context.Context, data FeedbackEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.FeedbackEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetRating(data.Rating).
		SetDelivered(data.Delivered)

	if data.Comment != nil {
		builder = builder.SetComment(*data.Comment)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save feedback event: %w", err)
	}
	return nil
}
