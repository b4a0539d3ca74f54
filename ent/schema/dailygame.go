package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

type DailyGame struct {
	ent.Schema
}

func (DailyGame) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		// Calendar day in YYYY-MM-DD form. The unique constraint is what
		// arbitrates concurrent first visits for an unseen date.
		field.String("date_key").
			Unique().
			NotEmpty().
			Immutable(),
		field.Enum("ranking_by").
			Values("RANKING", "STUDENT_COUNT", "FOUNDED_YEAR", "CAMPUS_AREA"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (DailyGame) Edges() []ent.Edge {
	return []ent.Edge{
		// Exactly five entries per game, order significant.
		edge.To("entries", GameEntry.Type),
		edge.To("submissions", Submission.Type),
	}
}
