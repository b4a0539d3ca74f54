package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

type University struct {
	ent.Schema
}

func (University) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.String("name").
			Unique().
			NotEmpty(),
		field.String("country").
			NotEmpty(),
		field.String("image_url").
			Optional(),
		// Global rank, 1 is best.
		field.Int("ranking").
			Positive(),
		field.Int("student_count").
			Positive(),
		field.Int("founded_year").
			Positive(),
		// Campus area in hectares.
		field.Float("campus_area").
			Positive(),
	}
}

func (University) Edges() []ent.Edge {
	return []ent.Edge{
		// One University can appear in many daily games over time.
		edge.To("entries", GameEntry.Type),
	}
}
