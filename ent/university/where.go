// Code generated by ent, DO NOT EDIT.

package university

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/gseier/UniRankle/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.University {
	return predicate.University(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.University {
	return predicate.University(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.University {
	return predicate.University(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.University {
	return predicate.University(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.University {
	return predicate.University(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.University {
	return predicate.University(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.University {
	return predicate.University(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.University {
	return predicate.University(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.University {
	return predicate.University(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.University {
	return predicate.University(sql.FieldEQ(FieldName, v))
}

// Country applies equality check predicate on the "country" field. It's identical to CountryEQ.
func Country(v string) predicate.University {
	return predicate.University(sql.FieldEQ(FieldCountry, v))
}

// ImageURL applies equality check predicate on the "image_url" field. It's identical to ImageURLEQ.
func ImageURL(v string) predicate.University {
	return predicate.University(sql.FieldEQ(FieldImageURL, v))
}

// Ranking applies equality check predicate on the "ranking" field. It's identical to RankingEQ.
func Ranking(v int) predicate.University {
	return predicate.University(sql.FieldEQ(FieldRanking, v))
}

// StudentCount applies equality check predicate on the "student_count" field. It's identical to StudentCountEQ.
func StudentCount(v int) predicate.University {
	return predicate.University(sql.FieldEQ(FieldStudentCount, v))
}

// FoundedYear applies equality check predicate on the "founded_year" field. It's identical to FoundedYearEQ.
func FoundedYear(v int) predicate.University {
	return predicate.University(sql.FieldEQ(FieldFoundedYear, v))
}

// CampusArea applies equality check predicate on the "campus_area" field. It's identical to CampusAreaEQ.
func CampusArea(v float64) predicate.University {
	return predicate.University(sql.FieldEQ(FieldCampusArea, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.University {
	return predicate.University(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.University {
	return predicate.University(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.University {
	return predicate.University(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.University {
	return predicate.University(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.University {
	return predicate.University(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.University {
	return predicate.University(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.University {
	return predicate.University(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.University {
	return predicate.University(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.University {
	return predicate.University(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.University {
	return predicate.University(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.University {
	return predicate.University(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.University {
	return predicate.University(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.University {
	return predicate.University(sql.FieldContainsFold(FieldName, v))
}

// CountryEQ applies the EQ predicate on the "country" field.
func CountryEQ(v string) predicate.University {
	return predicate.University(sql.FieldEQ(FieldCountry, v))
}

// CountryNEQ applies the NEQ predicate on the "country" field.
func CountryNEQ(v string) predicate.University {
	return predicate.University(sql.FieldNEQ(FieldCountry, v))
}

// CountryIn applies the In predicate on the "country" field.
func CountryIn(vs ...string) predicate.University {
	return predicate.University(sql.FieldIn(FieldCountry, vs...))
}

// CountryNotIn applies the NotIn predicate on the "country" field.
func CountryNotIn(vs ...string) predicate.University {
	return predicate.University(sql.FieldNotIn(FieldCountry, vs...))
}

// CountryGT applies the GT predicate on the "country" field.
func CountryGT(v string) predicate.University {
	return predicate.University(sql.FieldGT(FieldCountry, v))
}

// CountryGTE applies the GTE predicate on the "country" field.
func CountryGTE(v string) predicate.University {
	return predicate.University(sql.FieldGTE(FieldCountry, v))
}

// CountryLT applies the LT predicate on the "country" field.
func CountryLT(v string) predicate.University {
	return predicate.University(sql.FieldLT(FieldCountry, v))
}

// CountryLTE applies the LTE predicate on the "country" field.
func CountryLTE(v string) predicate.University {
	return predicate.University(sql.FieldLTE(FieldCountry, v))
}

// CountryContains applies the Contains predicate on the "country" field.
func CountryContains(v string) predicate.University {
	return predicate.University(sql.FieldContains(FieldCountry, v))
}

// CountryHasPrefix applies the HasPrefix predicate on the "country" field.
func CountryHasPrefix(v string) predicate.University {
	return predicate.University(sql.FieldHasPrefix(FieldCountry, v))
}

// CountryHasSuffix applies the HasSuffix predicate on the "country" field.
func CountryHasSuffix(v string) predicate.University {
	return predicate.University(sql.FieldHasSuffix(FieldCountry, v))
}

// CountryEqualFold applies the EqualFold predicate on the "country" field.
func CountryEqualFold(v string) predicate.University {
	return predicate.University(sql.FieldEqualFold(FieldCountry, v))
}

// CountryContainsFold applies the ContainsFold predicate on the "country" field.
func CountryContainsFold(v string) predicate.University {
	return predicate.University(sql.FieldContainsFold(FieldCountry, v))
}

// ImageURLEQ applies the EQ predicate on the "image_url" field.
func ImageURLEQ(v string) predicate.University {
	return predicate.University(sql.FieldEQ(FieldImageURL, v))
}

// ImageURLNEQ applies the NEQ predicate on the "image_url" field.
func ImageURLNEQ(v string) predicate.University {
	return predicate.University(sql.FieldNEQ(FieldImageURL, v))
}

// ImageURLIn applies the In predicate on the "image_url" field.
func ImageURLIn(vs ...string) predicate.University {
	return predicate.University(sql.FieldIn(FieldImageURL, vs...))
}

// ImageURLNotIn applies the NotIn predicate on the "image_url" field.
func ImageURLNotIn(vs ...string) predicate.University {
	return predicate.University(sql.FieldNotIn(FieldImageURL, vs...))
}

// ImageURLGT applies the GT predicate on the "image_url" field.
func ImageURLGT(v string) predicate.University {
	return predicate.University(sql.FieldGT(FieldImageURL, v))
}

// ImageURLGTE applies the GTE predicate on the "image_url" field.
func ImageURLGTE(v string) predicate.University {
	return predicate.University(sql.FieldGTE(FieldImageURL, v))
}

// ImageURLLT applies the LT predicate on the "image_url" field.
func ImageURLLT(v string) predicate.University {
	return predicate.University(sql.FieldLT(FieldImageURL, v))
}

// ImageURLLTE applies the LTE predicate on the "image_url" field.
func ImageURLLTE(v string) predicate.University {
	return predicate.University(sql.FieldLTE(FieldImageURL, v))
}

// ImageURLContains applies the Contains predicate on the "image_url" field.
func ImageURLContains(v string) predicate.University {
	return predicate.University(sql.FieldContains(FieldImageURL, v))
}

// ImageURLHasPrefix applies the HasPrefix predicate on the "image_url" field.
func ImageURLHasPrefix(v string) predicate.University {
	return predicate.University(sql.FieldHasPrefix(FieldImageURL, v))
}

// ImageURLHasSuffix applies the HasSuffix predicate on the "image_url" field.
func ImageURLHasSuffix(v string) predicate.University {
	return predicate.University(sql.FieldHasSuffix(FieldImageURL, v))
}

// ImageURLIsNil applies the IsNil predicate on the "image_url" field.
func ImageURLIsNil() predicate.University {
	return predicate.University(sql.FieldIsNull(FieldImageURL))
}

// ImageURLNotNil applies the NotNil predicate on the "image_url" field.
func ImageURLNotNil() predicate.University {
	return predicate.University(sql.FieldNotNull(FieldImageURL))
}

// ImageURLEqualFold applies the EqualFold predicate on the "image_url" field.
func ImageURLEqualFold(v string) predicate.University {
	return predicate.University(sql.FieldEqualFold(FieldImageURL, v))
}

// ImageURLContainsFold applies the ContainsFold predicate on the "image_url" field.
func ImageURLContainsFold(v string) predicate.University {
	return predicate.University(sql.FieldContainsFold(FieldImageURL, v))
}

// RankingEQ applies the EQ predicate on the "ranking" field.
func RankingEQ(v int) predicate.University {
	return predicate.University(sql.FieldEQ(FieldRanking, v))
}

// RankingNEQ applies the NEQ predicate on the "ranking" field.
func RankingNEQ(v int) predicate.University {
	return predicate.University(sql.FieldNEQ(FieldRanking, v))
}

// RankingIn applies the In predicate on the "ranking" field.
func RankingIn(vs ...int) predicate.University {
	return predicate.University(sql.FieldIn(FieldRanking, vs...))
}

// RankingNotIn applies the NotIn predicate on the "ranking" field.
func RankingNotIn(vs ...int) predicate.University {
	return predicate.University(sql.FieldNotIn(FieldRanking, vs...))
}

// RankingGT applies the GT predicate on the "ranking" field.
func RankingGT(v int) predicate.University {
	return predicate.University(sql.FieldGT(FieldRanking, v))
}

// RankingGTE applies the GTE predicate on the "ranking" field.
func RankingGTE(v int) predicate.University {
	return predicate.University(sql.FieldGTE(FieldRanking, v))
}

// RankingLT applies the LT predicate on the "ranking" field.
func RankingLT(v int) predicate.University {
	return predicate.University(sql.FieldLT(FieldRanking, v))
}

// RankingLTE applies the LTE predicate on the "ranking" field.
func RankingLTE(v int) predicate.University {
	return predicate.University(sql.FieldLTE(FieldRanking, v))
}

// StudentCountEQ applies the EQ predicate on the "student_count" field.
func StudentCountEQ(v int) predicate.University {
	return predicate.University(sql.FieldEQ(FieldStudentCount, v))
}

// StudentCountNEQ applies the NEQ predicate on the "student_count" field.
func StudentCountNEQ(v int) predicate.University {
	return predicate.University(sql.FieldNEQ(FieldStudentCount, v))
}

// StudentCountIn applies the In predicate on the "student_count" field.
func StudentCountIn(vs ...int) predicate.University {
	return predicate.University(sql.FieldIn(FieldStudentCount, vs...))
}

// StudentCountNotIn applies the NotIn predicate on the "student_count" field.
func StudentCountNotIn(vs ...int) predicate.University {
	return predicate.University(sql.FieldNotIn(FieldStudentCount, vs...))
}

// StudentCountGT applies the GT predicate on the "student_count" field.
func StudentCountGT(v int) predicate.University {
	return predicate.University(sql.FieldGT(FieldStudentCount, v))
}

// StudentCountGTE applies the GTE predicate on the "student_count" field.
func StudentCountGTE(v int) predicate.University {
	return predicate.University(sql.FieldGTE(FieldStudentCount, v))
}

// StudentCountLT applies the LT predicate on the "student_count" field.
func StudentCountLT(v int) predicate.University {
	return predicate.University(sql.FieldLT(FieldStudentCount, v))
}

// StudentCountLTE applies the LTE predicate on the "student_count" field.
func StudentCountLTE(v int) predicate.University {
	return predicate.University(sql.FieldLTE(FieldStudentCount, v))
}

// FoundedYearEQ applies the EQ predicate on the "founded_year" field.
func FoundedYearEQ(v int) predicate.University {
	return predicate.University(sql.FieldEQ(FieldFoundedYear, v))
}

// FoundedYearNEQ applies the NEQ predicate on the "founded_year" field.
func FoundedYearNEQ(v int) predicate.University {
	return predicate.University(sql.FieldNEQ(FieldFoundedYear, v))
}

// FoundedYearIn applies the In predicate on the "founded_year" field.
func FoundedYearIn(vs ...int) predicate.University {
	return predicate.University(sql.FieldIn(FieldFoundedYear, vs...))
}

// FoundedYearNotIn applies the NotIn predicate on the "founded_year" field.
func FoundedYearNotIn(vs ...int) predicate.University {
	return predicate.University(sql.FieldNotIn(FieldFoundedYear, vs...))
}

// FoundedYearGT applies the GT predicate on the "founded_year" field.
func FoundedYearGT(v int) predicate.University {
	return predicate.University(sql.FieldGT(FieldFoundedYear, v))
}

// FoundedYearGTE applies the GTE predicate on the "founded_year" field.
func FoundedYearGTE(v int) predicate.University {
	return predicate.University(sql.FieldGTE(FieldFoundedYear, v))
}

// FoundedYearLT applies the LT predicate on the "founded_year" field.
func FoundedYearLT(v int) predicate.University {
	return predicate.University(sql.FieldLT(FieldFoundedYear, v))
}

// FoundedYearLTE applies the LTE predicate on the "founded_year" field.
func FoundedYearLTE(v int) predicate.University {
	return predicate.University(sql.FieldLTE(FieldFoundedYear, v))
}

// CampusAreaEQ applies the EQ predicate on the "campus_area" field.
func CampusAreaEQ(v float64) predicate.University {
	return predicate.University(sql.FieldEQ(FieldCampusArea, v))
}

// CampusAreaNEQ applies the NEQ predicate on the "campus_area" field.
func CampusAreaNEQ(v float64) predicate.University {
	return predicate.University(sql.FieldNEQ(FieldCampusArea, v))
}

// CampusAreaIn applies the In predicate on the "campus_area" field.
func CampusAreaIn(vs ...float64) predicate.University {
	return predicate.University(sql.FieldIn(FieldCampusArea, vs...))
}

// CampusAreaNotIn applies the NotIn predicate on the "campus_area" field.
func CampusAreaNotIn(vs ...float64) predicate.University {
	return predicate.University(sql.FieldNotIn(FieldCampusArea, vs...))
}

// CampusAreaGT applies the GT predicate on the "campus_area" field.
func CampusAreaGT(v float64) predicate.University {
	return predicate.University(sql.FieldGT(FieldCampusArea, v))
}

// CampusAreaGTE applies the GTE predicate on the "campus_area" field.
func CampusAreaGTE(v float64) predicate.University {
	return predicate.University(sql.FieldGTE(FieldCampusArea, v))
}

// CampusAreaLT applies the LT predicate on the "campus_area" field.
func CampusAreaLT(v float64) predicate.University {
	return predicate.University(sql.FieldLT(FieldCampusArea, v))
}

// CampusAreaLTE applies the LTE predicate on the "campus_area" field.
func CampusAreaLTE(v float64) predicate.University {
	return predicate.University(sql.FieldLTE(FieldCampusArea, v))
}

// HasEntries applies the HasEdge predicate on the "entries" edge.
func HasEntries() predicate.University {
	return predicate.University(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EntriesTable, EntriesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEntriesWith applies the HasEdge predicate on the "entries" edge with a given conditions (other predicates).
func HasEntriesWith(preds ...predicate.GameEntry) predicate.University {
	return predicate.University(func(s *sql.Selector) {
		step := newEntriesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.University) predicate.University {
	return predicate.University(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.University) predicate.University {
	return predicate.University(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.University) predicate.University {
	return predicate.University(sql.NotPredicates(p))
}
