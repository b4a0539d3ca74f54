// Code generated by ent, DO NOT EDIT.

package dailygame

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the dailygame type in the database.
	Label = "daily_game"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDateKey holds the string denoting the date_key field in the database.
	FieldDateKey = "date_key"
	// FieldRankingBy holds the string denoting the ranking_by field in the database.
	FieldRankingBy = "ranking_by"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeEntries holds the string denoting the entries edge name in mutations.
	EdgeEntries = "entries"
	// EdgeSubmissions holds the string denoting the submissions edge name in mutations.
	EdgeSubmissions = "submissions"
	// Table holds the table name of the dailygame in the database.
	Table = "daily_games"
	// EntriesTable is the table that holds the entries relation/edge.
	EntriesTable = "game_entries"
	// EntriesInverseTable is the table name for the GameEntry entity.
	// It exists in this package in order to avoid circular dependency with the "gameentry" package.
	EntriesInverseTable = "game_entries"
	// EntriesColumn is the table column denoting the entries relation/edge.
	EntriesColumn = "daily_game_entries"
	// SubmissionsTable is the table that holds the submissions relation/edge.
	SubmissionsTable = "submissions"
	// SubmissionsInverseTable is the table name for the Submission entity.
	// It exists in this package in order to avoid circular dependency with the "submission" package.
	SubmissionsInverseTable = "submissions"
	// SubmissionsColumn is the table column denoting the submissions relation/edge.
	SubmissionsColumn = "daily_game_submissions"
)

// Columns holds all SQL columns for dailygame fields.
var Columns = []string{
	FieldID,
	FieldDateKey,
	FieldRankingBy,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DateKeyValidator is a validator for the "date_key" field. It is called by the builders before save.
	DateKeyValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// RankingBy defines the type for the "ranking_by" enum field.
type RankingBy string

// RankingBy values.
const (
	RankingByRANKING       RankingBy = "RANKING"
	RankingBySTUDENT_COUNT RankingBy = "STUDENT_COUNT"
	RankingByFOUNDED_YEAR  RankingBy = "FOUNDED_YEAR"
	RankingByCAMPUS_AREA   RankingBy = "CAMPUS_AREA"
)

func (rb RankingBy) String() string {
	return string(rb)
}

// RankingByValidator is a validator for the "ranking_by" field enum values. It is called by the builders before save.
func RankingByValidator(rb RankingBy) error {
	switch rb {
	case RankingByRANKING, RankingBySTUDENT_COUNT, RankingByFOUNDED_YEAR, RankingByCAMPUS_AREA:
		return nil
	default:
		return fmt.Errorf("dailygame: invalid enum value for ranking_by field: %q", rb)
	}
}

// OrderOption defines the ordering options for the DailyGame queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDateKey orders the results by the date_key field.
func ByDateKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDateKey, opts...).ToFunc()
}

// ByRankingBy orders the results by the ranking_by field.
func ByRankingBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRankingBy, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByEntriesCount orders the results by entries count.
func ByEntriesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEntriesStep(), opts...)
	}
}

// ByEntries orders the results by entries terms.
func ByEntries(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEntriesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// BySubmissionsCount orders the results by submissions count.
func BySubmissionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSubmissionsStep(), opts...)
	}
}

// BySubmissions orders the results by submissions terms.
func BySubmissions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSubmissionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newEntriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EntriesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EntriesTable, EntriesColumn),
	)
}
func newSubmissionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SubmissionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SubmissionsTable, SubmissionsColumn),
	)
}
