package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Lead is the contact record captured before results are unlocked.
type Lead struct {
	ent.Schema
}

func (Lead) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Unique().
			Comment("UUID of the assessment session the lead came from"),
		field.String("name").
			NotEmpty(),
		field.String("email").
			NotEmpty(),
		field.String("company").
			Default(""),
		field.String("role").
			Default(""),
		field.Bool("marketing_consent").
			Default(false).
			Comment("Whether the user opted in to follow-up email"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Lead) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email"),
		index.Fields("created_at"),
	}
}
