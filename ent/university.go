// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/gseier/UniRankle/ent/university"
)

// University is the model entity for the University schema.
type University struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Country holds the value of the "country" field.
	Country string `json:"country,omitempty"`
	// ImageURL holds the value of the "image_url" field.
	ImageURL string `json:"image_url,omitempty"`
	// Ranking holds the value of the "ranking" field.
	Ranking int `json:"ranking,omitempty"`
	// StudentCount holds the value of the "student_count" field.
	StudentCount int `json:"student_count,omitempty"`
	// FoundedYear holds the value of the "founded_year" field.
	FoundedYear int `json:"founded_year,omitempty"`
	// CampusArea holds the value of the "campus_area" field.
	CampusArea float64 `json:"campus_area,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the UniversityQuery when eager-loading is set.
	Edges        UniversityEdges `json:"edges"`
	selectValues sql.SelectValues
}

// UniversityEdges holds the relations/edges for other nodes in the graph.
type UniversityEdges struct {
	// Entries holds the value of the entries edge.
	Entries []*GameEntry `json:"entries,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// EntriesOrErr returns the Entries value or an error if the edge
// was not loaded in eager-loading.
func (e UniversityEdges) EntriesOrErr() ([]*GameEntry, error) {
	if e.loadedTypes[0] {
		return e.Entries, nil
	}
	return nil, &NotLoadedError{edge: "entries"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*University) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case university.FieldCampusArea:
			values[i] = new(sql.NullFloat64)
		case university.FieldRanking, university.FieldStudentCount, university.FieldFoundedYear:
			values[i] = new(sql.NullInt64)
		case university.FieldName, university.FieldCountry, university.FieldImageURL:
			values[i] = new(sql.NullString)
		case university.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the University fields.
func (u *University) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case university.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				u.ID = *value
			}
		case university.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				u.Name = value.String
			}
		case university.FieldCountry:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field country", values[i])
			} else if value.Valid {
				u.Country = value.String
			}
		case university.FieldImageURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field image_url", values[i])
			} else if value.Valid {
				u.ImageURL = value.String
			}
		case university.FieldRanking:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field ranking", values[i])
			} else if value.Valid {
				u.Ranking = int(value.Int64)
			}
		case university.FieldStudentCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field student_count", values[i])
			} else if value.Valid {
				u.StudentCount = int(value.Int64)
			}
		case university.FieldFoundedYear:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field founded_year", values[i])
			} else if value.Valid {
				u.FoundedYear = int(value.Int64)
			}
		case university.FieldCampusArea:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field campus_area", values[i])
			} else if value.Valid {
				u.CampusArea = value.Float64
			}
		default:
			u.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the University.
// This includes values selected through modifiers, order, etc.
func (u *University) Value(name string) (ent.Value, error) {
	return u.selectValues.Get(name)
}

// QueryEntries queries the "entries" edge of the University entity.
func (u *University) QueryEntries() *GameEntryQuery {
	return NewUniversityClient(u.config).QueryEntries(u)
}

// Update returns a builder for updating this University.
// Note that you need to call University.Unwrap() before calling this method if this University
// was returned from a transaction, and the transaction was committed or rolled back.
func (u *University) Update() *UniversityUpdateOne {
	return NewUniversityClient(u.config).UpdateOne(u)
}

// Unwrap unwraps the University entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (u *University) Unwrap() *University {
	_tx, ok := u.config.driver.(*txDriver)
	if !ok {
		panic("ent: University is not a transactional entity")
	}
	u.config.driver = _tx.drv
	return u
}

// String implements the fmt.Stringer.
func (u *University) String() string {
	var builder strings.Builder
	builder.WriteString("University(")
	builder.WriteString(fmt.Sprintf("id=%v, ", u.ID))
	builder.WriteString("name=")
	builder.WriteString(u.Name)
	builder.WriteString(", ")
	builder.WriteString("country=")
	builder.WriteString(u.Country)
	builder.WriteString(", ")
	builder.WriteString("image_url=")
	builder.WriteString(u.ImageURL)
	builder.WriteString(", ")
	builder.WriteString("ranking=")
	builder.WriteString(fmt.Sprintf("%v", u.Ranking))
	builder.WriteString(", ")
	builder.WriteString("student_count=")
	builder.WriteString(fmt.Sprintf("%v", u.StudentCount))
	builder.WriteString(", ")
	builder.WriteString("founded_year=")
	builder.WriteString(fmt.Sprintf("%v", u.FoundedYear))
	builder.WriteString(", ")
	builder.WriteString("campus_area=")
	builder.WriteString(fmt.Sprintf("%v", u.CampusArea))
	builder.WriteByte(')')
	return builder.String()
}

// Universities is a parsable slice of University.
type Universities []*University
