package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single answered question within a session.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("question_id").
			NotEmpty().
			Comment("Bank ID of the question shown"),
		field.String("topic").
			NotEmpty().
			Comment("Topic of the question"),
		field.String("difficulty").
			NotEmpty().
			Comment("easy, medium, or hard"),
		field.String("chosen").
			NotEmpty().
			Comment("The choice the learner picked"),
		field.Bool("correct").
			Comment("Whether the answer was correct"),
		field.Int("time_ms").
			Comment("Milliseconds to answer"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("topic"),
		index.Fields("correct"),
	}
}
