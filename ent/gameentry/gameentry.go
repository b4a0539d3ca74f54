// Code generated by ent, DO NOT EDIT.

package gameentry

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the gameentry type in the database.
	Label = "game_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// EdgeGame holds the string denoting the game edge name in mutations.
	EdgeGame = "game"
	// EdgeUniversity holds the string denoting the university edge name in mutations.
	EdgeUniversity = "university"
	// Table holds the table name of the gameentry in the database.
	Table = "game_entries"
	// GameTable is the table that holds the game relation/edge.
	GameTable = "game_entries"
	// GameInverseTable is the table name for the DailyGame entity.
	// It exists in this package in order to avoid circular dependency with the "dailygame" package.
	GameInverseTable = "daily_games"
	// GameColumn is the table column denoting the game relation/edge.
	GameColumn = "daily_game_entries"
	// UniversityTable is the table that holds the university relation/edge.
	UniversityTable = "game_entries"
	// UniversityInverseTable is the table name for the University entity.
	// It exists in this package in order to avoid circular dependency with the "university" package.
	UniversityInverseTable = "universities"
	// UniversityColumn is the table column denoting the university relation/edge.
	UniversityColumn = "university_entries"
)

// Columns holds all SQL columns for gameentry fields.
var Columns = []string{
	FieldID,
	FieldPosition,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "game_entries"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"daily_game_entries",
	"university_entries",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
			return true
		}
	}
	return false
}

var (
	// PositionValidator is a validator for the "position" field. It is called by the builders before save.
	PositionValidator func(int) error
)

// OrderOption defines the ordering options for the GameEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// ByGameField orders the results by game field.
func ByGameField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newGameStep(), sql.OrderByField(field, opts...))
	}
}

// ByUniversityField orders the results by university field.
func ByUniversityField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newUniversityStep(), sql.OrderByField(field, opts...))
	}
}
func newGameStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(GameInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, GameTable, GameColumn),
	)
}
func newUniversityStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(UniversityInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, UniversityTable, UniversityColumn),
	)
}
