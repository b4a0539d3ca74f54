package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

type Submission struct {
	ent.Schema
}

func (Submission) Fields() []ent.Field {
	return []ent.Field{
		// Durable anonymous player identity from the uid cookie.
		field.UUID("user_id", uuid.UUID{}).
			Immutable(),
		field.Int("score").
			Min(0).
			Max(5),
		// The submitted permutation of university ids, as sent.
		field.JSON("final_order", []string{}),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Submission) Edges() []ent.Edge {
	return []ent.Edge{
		// Creates the many-to-one relationship back to DailyGame.
		edge.From("game", DailyGame.Type).
			Ref("submissions").
			Unique(). // A submission belongs to exactly one game.
			Required(),
	}
}

func (Submission) Indexes() []ent.Index {
	return []ent.Index{
		// First submission wins: at most one per (user, game), enforced by
		// the database rather than a read-then-write check.
		index.Fields("user_id").
			Edges("game").
			Unique(),
	}
}
