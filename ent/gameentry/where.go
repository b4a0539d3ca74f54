// Code generated by ent, DO NOT EDIT.

package gameentry

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/gseier/UniRankle/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.GameEntry {
	return predicate.GameEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.GameEntry {
	return predicate.GameEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.GameEntry {
	return predicate.GameEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.GameEntry {
	return predicate.GameEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.GameEntry {
	return predicate.GameEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.GameEntry {
	return predicate.GameEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.GameEntry {
	return predicate.GameEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.GameEntry {
	return predicate.GameEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.GameEntry {
	return predicate.GameEntry(sql.FieldLTE(FieldID, id))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.GameEntry {
	return predicate.GameEntry(sql.FieldEQ(FieldPosition, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.GameEntry {
	return predicate.GameEntry(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.GameEntry {
	return predicate.GameEntry(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.GameEntry {
	return predicate.GameEntry(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.GameEntry {
	return predicate.GameEntry(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.GameEntry {
	return predicate.GameEntry(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.GameEntry {
	return predicate.GameEntry(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.GameEntry {
	return predicate.GameEntry(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.GameEntry {
	return predicate.GameEntry(sql.FieldLTE(FieldPosition, v))
}

// HasGame applies the HasEdge predicate on the "game" edge.
func HasGame() predicate.GameEntry {
	return predicate.GameEntry(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, GameTable, GameColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasGameWith applies the HasEdge predicate on the "game" edge with a given conditions (other predicates).
func HasGameWith(preds ...predicate.DailyGame) predicate.GameEntry {
	return predicate.GameEntry(func(s *sql.Selector) {
		step := newGameStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasUniversity applies the HasEdge predicate on the "university" edge.
func HasUniversity() predicate.GameEntry {
	return predicate.GameEntry(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UniversityTable, UniversityColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUniversityWith applies the HasEdge predicate on the "university" edge with a given conditions (other predicates).
func HasUniversityWith(preds ...predicate.University) predicate.GameEntry {
	return predicate.GameEntry(func(s *sql.Selector) {
		step := newUniversityStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GameEntry) predicate.GameEntry {
	return predicate.GameEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GameEntry) predicate.GameEntry {
	return predicate.GameEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GameEntry) predicate.GameEntry {
	return predicate.GameEntry(sql.NotPredicates(p))
}
