package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single answered question within an assessment
// session. The in-memory state machine remains the source of truth for the
// live session; these events are the durable audit trail.
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
			Comment("UUID of the assessment session"),
		field.Int("question_id").
			Positive().
			Comment("Catalog question id"),
		field.String("category").
			NotEmpty().
			Comment("Scoring or deep-profile category of the question"),
		field.String("answer_text").
			NotEmpty().
			Comment("The exact option string the user chose"),
		field.Int("likert").
			Comment("Parsed leading integer of the answer"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("category"),
	}
}
