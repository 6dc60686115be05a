package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FeedbackEvent records a post-session feedback submission.
type FeedbackEvent struct {
	ent.Schema
}

func (FeedbackEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (FeedbackEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Session the feedback is about"),
		field.Int("rating").
			Range(1, 5).
			Comment("Star rating, 1-5"),
		field.String("comment").
			Optional().
			MaxLen(500).
			Comment("Free-text comment, absent when none was given"),
		field.Bool("delivered").
			Default(false).
			Comment("Whether the remote analytics endpoint acknowledged it"),
	}
}

func (FeedbackEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("rating"),
	}
}
