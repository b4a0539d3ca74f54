package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// User is an operator account for the maintenance endpoints. Players are
// anonymous and identified only by their uid cookie; they never appear here.
type User struct {
	ent.Schema
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.String("username").
			Unique().
			NotEmpty(),
		field.String("password_hash").
			NotEmpty().
			Sensitive(), // Prevents it from being exposed in logs
		field.Enum("role").
			Values("viewer", "admin").
			Default("viewer"),
	}
}
