// Code generated by ent, DO NOT EDIT.

package dailygame

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/gseier/UniRankle/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.DailyGame {
	return predicate.DailyGame(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.DailyGame {
	return predicate.DailyGame(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.DailyGame {
	return predicate.DailyGame(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.DailyGame {
	return predicate.DailyGame(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.DailyGame {
	return predicate.DailyGame(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.DailyGame {
	return predicate.DailyGame(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.DailyGame {
	return predicate.DailyGame(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.DailyGame {
	return predicate.DailyGame(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.DailyGame {
	return predicate.DailyGame(sql.FieldLTE(FieldID, id))
}

// DateKey applies equality check predicate on the "date_key" field. It's identical to DateKeyEQ.
func DateKey(v string) predicate.DailyGame {
	return predicate.DailyGame(sql.FieldEQ(FieldDateKey, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DailyGame {
	return predicate.DailyGame(sql.FieldEQ(FieldCreatedAt, v))
}

// DateKeyEQ applies the EQ predicate on the "date_key" field.
func DateKeyEQ(v string) predicate.DailyGame {
	return predicate.DailyGame(sql.FieldEQ(FieldDateKey, v))
}

// DateKeyNEQ applies the NEQ predicate on the "date_key" field.
func DateKeyNEQ(v string) predicate.DailyGame {
	return predicate.DailyGame(sql.FieldNEQ(FieldDateKey, v))
}

// DateKeyIn applies the In predicate on the "date_key" field.
func DateKeyIn(vs ...string) predicate.DailyGame {
	return predicate.DailyGame(sql.FieldIn(FieldDateKey, vs...))
}

// DateKeyNotIn applies the NotIn predicate on the "date_key" field.
func DateKeyNotIn(vs ...string) predicate.DailyGame {
	return predicate.DailyGame(sql.FieldNotIn(FieldDateKey, vs...))
}

// DateKeyGT applies the GT predicate on the "date_key" field.
func DateKeyGT(v string) predicate.DailyGame {
	return predicate.DailyGame(sql.FieldGT(FieldDateKey, v))
}

// DateKeyGTE applies the GTE predicate on the "date_key" field.
func DateKeyGTE(v string) predicate.DailyGame {
	return predicate.DailyGame(sql.FieldGTE(FieldDateKey, v))
}

// DateKeyLT applies the LT predicate on the "date_key" field.
func DateKeyLT(v string) predicate.DailyGame {
	return predicate.DailyGame(sql.FieldLT(FieldDateKey, v))
}

// DateKeyLTE applies the LTE predicate on the "date_key" field.
func DateKeyLTE(v string) predicate.DailyGame {
	return predicate.DailyGame(sql.FieldLTE(FieldDateKey, v))
}

// DateKeyContains applies the Contains predicate on the "date_key" field.
func DateKeyContains(v string) predicate.DailyGame {
	return predicate.DailyGame(sql.FieldContains(FieldDateKey, v))
}

// DateKeyHasPrefix applies the HasPrefix predicate on the "date_key" field.
func DateKeyHasPrefix(v string) predicate.DailyGame {
	return predicate.DailyGame(sql.FieldHasPrefix(FieldDateKey, v))
}

// DateKeyHasSuffix applies the HasSuffix predicate on the "date_key" field.
func DateKeyHasSuffix(v string) predicate.DailyGame {
	return predicate.DailyGame(sql.FieldHasSuffix(FieldDateKey, v))
}

// DateKeyEqualFold applies the EqualFold predicate on the "date_key" field.
func DateKeyEqualFold(v string) predicate.DailyGame {
	return predicate.DailyGame(sql.FieldEqualFold(FieldDateKey, v))
}

// DateKeyContainsFold applies the ContainsFold predicate on the "date_key" field.
func DateKeyContainsFold(v string) predicate.DailyGame {
	return predicate.DailyGame(sql.FieldContainsFold(FieldDateKey, v))
}

// RankingByEQ applies the EQ predicate on the "ranking_by" field.
func RankingByEQ(v RankingBy) predicate.DailyGame {
	return predicate.DailyGame(sql.FieldEQ(FieldRankingBy, v))
}

// RankingByNEQ applies the NEQ predicate on the "ranking_by" field.
func RankingByNEQ(v RankingBy) predicate.DailyGame {
	return predicate.DailyGame(sql.FieldNEQ(FieldRankingBy, v))
}

// RankingByIn applies the In predicate on the "ranking_by" field.
func RankingByIn(vs ...RankingBy) predicate.DailyGame {
	return predicate.DailyGame(sql.FieldIn(FieldRankingBy, vs...))
}

// RankingByNotIn applies the NotIn predicate on the "ranking_by" field.
func RankingByNotIn(vs ...RankingBy) predicate.DailyGame {
	return predicate.DailyGame(sql.FieldNotIn(FieldRankingBy, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DailyGame {
	return predicate.DailyGame(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DailyGame {
	return predicate.DailyGame(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DailyGame {
	return predicate.DailyGame(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DailyGame {
	return predicate.DailyGame(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DailyGame {
	return predicate.DailyGame(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DailyGame {
	return predicate.DailyGame(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DailyGame {
	return predicate.DailyGame(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DailyGame {
	return predicate.DailyGame(sql.FieldLTE(FieldCreatedAt, v))
}

// HasEntries applies the HasEdge predicate on the "entries" edge.
func HasEntries() predicate.DailyGame {
	return predicate.DailyGame(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EntriesTable, EntriesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEntriesWith applies the HasEdge predicate on the "entries" edge with a given conditions (other predicates).
func HasEntriesWith(preds ...predicate.GameEntry) predicate.DailyGame {
	return predicate.DailyGame(func(s *sql.Selector) {
		step := newEntriesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSubmissions applies the HasEdge predicate on the "submissions" edge.
func HasSubmissions() predicate.DailyGame {
	return predicate.DailyGame(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SubmissionsTable, SubmissionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSubmissionsWith applies the HasEdge predicate on the "submissions" edge with a given conditions (other predicates).
func HasSubmissionsWith(preds ...predicate.Submission) predicate.DailyGame {
	return predicate.DailyGame(func(s *sql.Selector) {
		step := newSubmissionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DailyGame) predicate.DailyGame {
	return predicate.DailyGame(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DailyGame) predicate.DailyGame {
	return predicate.DailyGame(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DailyGame) predicate.DailyGame {
	return predicate.DailyGame(sql.NotPredicates(p))
}
