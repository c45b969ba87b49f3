package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// InsightSnapshot caches a generated narrative insight keyed by session and
// insight type. Cache-aside with no invalidation: the first write for a
// (session_id, insight_type) pair wins and is never refreshed.
type InsightSnapshot struct {
	ent.Schema
}

func (InsightSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the assessment session"),
		field.String("insight_type").
			NotEmpty().
			Comment("Kind of insight cached, e.g. leadership_insights"),
		field.JSON("payload", map[string]any{}).
			Comment("Sanitized insight JSON as served to the user"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the insight was first generated"),
	}
}

func (InsightSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "insight_type").Unique(),
	}
}
