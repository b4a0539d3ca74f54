// Code generated by ent, DO NOT EDIT.

package university

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the university type in the database.
	Label = "university"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldCountry holds the string denoting the country field in the database.
	FieldCountry = "country"
	// FieldImageURL holds the string denoting the image_url field in the database.
	FieldImageURL = "image_url"
	// FieldRanking holds the string denoting the ranking field in the database.
	FieldRanking = "ranking"
	// FieldStudentCount holds the string denoting the student_count field in the database.
	FieldStudentCount = "student_count"
	// FieldFoundedYear holds the string denoting the founded_year field in the database.
	FieldFoundedYear = "founded_year"
	// FieldCampusArea holds the string denoting the campus_area field in the database.
	FieldCampusArea = "campus_area"
	// EdgeEntries holds the string denoting the entries edge name in mutations.
	EdgeEntries = "entries"
	// Table holds the table name of the university in the database.
	Table = "universities"
	// EntriesTable is the table that holds the entries relation/edge.
	EntriesTable = "game_entries"
	// EntriesInverseTable is the table name for the GameEntry entity.
	// It exists in this package in order to avoid circular dependency with the "gameentry" package.
	EntriesInverseTable = "game_entries"
	// EntriesColumn is the table column denoting the entries relation/edge.
	EntriesColumn = "university_entries"
)

// Columns holds all SQL columns for university fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldCountry,
	FieldImageURL,
	FieldRanking,
	FieldStudentCount,
	FieldFoundedYear,
	FieldCampusArea,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// CountryValidator is a validator for the "country" field. It is called by the builders before save.
	CountryValidator func(string) error
	// RankingValidator is a validator for the "ranking" field. It is called by the builders before save.
	RankingValidator func(int) error
	// StudentCountValidator is a validator for the "student_count" field. It is called by the builders before save.
	StudentCountValidator func(int) error
	// FoundedYearValidator is a validator for the "founded_year" field. It is called by the builders before save.
	FoundedYearValidator func(int) error
	// CampusAreaValidator is a validator for the "campus_area" field. It is called by the builders before save.
	CampusAreaValidator func(float64) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the University queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByCountry orders the results by the country field.
func ByCountry(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCountry, opts...).ToFunc()
}

// ByImageURL orders the results by the image_url field.
func ByImageURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImageURL, opts...).ToFunc()
}

// ByRanking orders the results by the ranking field.
func ByRanking(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRanking, opts...).ToFunc()
}

// ByStudentCount orders the results by the student_count field.
func ByStudentCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentCount, opts...).ToFunc()
}

// ByFoundedYear orders the results by the founded_year field.
func ByFoundedYear(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFoundedYear, opts...).ToFunc()
}

// ByCampusArea orders the results by the campus_area field.
func ByCampusArea(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCampusArea, opts...).ToFunc()
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
func newEntriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EntriesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EntriesTable, EntriesColumn),
	)
}
