package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BookingRequest records a request to book a strategy call.
type BookingRequest struct {
	ent.Schema
}

func (BookingRequest) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Default("").
			Comment("Originating assessment session, empty when booked directly"),
		field.String("name").
			NotEmpty(),
		field.String("email").
			NotEmpty(),
		field.String("company").
			Default(""),
		field.String("preferred_slot").
			Default("").
			Comment("Free-form preferred time window"),
		field.String("notes").
			Default(""),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (BookingRequest) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email"),
		index.Fields("created_at"),
	}
}
