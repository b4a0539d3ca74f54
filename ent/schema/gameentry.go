package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

type GameEntry struct {
	ent.Schema
}

func (GameEntry) Fields() []ent.Field {
	return []ent.Field{
		// Sampling order within the game (0..4). This is NOT the correct
		// rank; the correct order is recomputed by sorting on the metric.
		field.Int("position").
			Min(0).
			Max(4),
	}
}

func (GameEntry) Edges() []ent.Edge {
	return []ent.Edge{
		// Creates the many-to-one relationship back to DailyGame.
		edge.From("game", DailyGame.Type).
			Ref("entries").
			Unique(). // An entry belongs to exactly one game.
			Required(),
		// Creates the many-to-one relationship back to University.
		edge.From("university", University.Type).
			Ref("entries").
			Unique(). // An entry references exactly one university.
			Required(),
	}
}

func (GameEntry) Indexes() []ent.Index {
	return []ent.Index{
		// One entry per slot per game.
		index.Fields("position").
			Edges("game").
			Unique(),
	}
}
