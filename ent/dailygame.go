// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/gseier/UniRankle/ent/dailygame"
)

// DailyGame is the model entity for the DailyGame schema.
type DailyGame struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// DateKey holds the value of the "date_key" field.
	DateKey string `json:"date_key,omitempty"`
	// RankingBy holds the value of the "ranking_by" field.
	RankingBy dailygame.RankingBy `json:"ranking_by,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DailyGameQuery when eager-loading is set.
	Edges        DailyGameEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DailyGameEdges holds the relations/edges for other nodes in the graph.
type DailyGameEdges struct {
	// Entries holds the value of the entries edge.
	Entries []*GameEntry `json:"entries,omitempty"`
	// Submissions holds the value of the submissions edge.
	Submissions []*Submission `json:"submissions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// EntriesOrErr returns the Entries value or an error if the edge
// was not loaded in eager-loading.
func (e DailyGameEdges) EntriesOrErr() ([]*GameEntry, error) {
	if e.loadedTypes[0] {
		return e.Entries, nil
	}
	return nil, &NotLoadedError{edge: "entries"}
}

// SubmissionsOrErr returns the Submissions value or an error if the edge
// was not loaded in eager-loading.
func (e DailyGameEdges) SubmissionsOrErr() ([]*Submission, error) {
	if e.loadedTypes[1] {
		return e.Submissions, nil
	}
	return nil, &NotLoadedError{edge: "submissions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DailyGame) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case dailygame.FieldDateKey, dailygame.FieldRankingBy:
			values[i] = new(sql.NullString)
		case dailygame.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case dailygame.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DailyGame fields.
func (dg *DailyGame) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case dailygame.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				dg.ID = *value
			}
		case dailygame.FieldDateKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field date_key", values[i])
			} else if value.Valid {
				dg.DateKey = value.String
			}
		case dailygame.FieldRankingBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ranking_by", values[i])
			} else if value.Valid {
				dg.RankingBy = dailygame.RankingBy(value.String)
			}
		case dailygame.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				dg.CreatedAt = value.Time
			}
		default:
			dg.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DailyGame.
// This includes values selected through modifiers, order, etc.
func (dg *DailyGame) Value(name string) (ent.Value, error) {
	return dg.selectValues.Get(name)
}

// QueryEntries queries the "entries" edge of the DailyGame entity.
func (dg *DailyGame) QueryEntries() *GameEntryQuery {
	return NewDailyGameClient(dg.config).QueryEntries(dg)
}

// QuerySubmissions queries the "submissions" edge of the DailyGame entity.
func (dg *DailyGame) QuerySubmissions() *SubmissionQuery {
	return NewDailyGameClient(dg.config).QuerySubmissions(dg)
}

// Update returns a builder for updating this DailyGame.
// Note that you need to call DailyGame.Unwrap() before calling this method if this DailyGame
// was returned from a transaction, and the transaction was committed or rolled back.
func (dg *DailyGame) Update() *DailyGameUpdateOne {
	return NewDailyGameClient(dg.config).UpdateOne(dg)
}

// Unwrap unwraps the DailyGame entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (dg *DailyGame) Unwrap() *DailyGame {
	_tx, ok := dg.config.driver.(*txDriver)
	if !ok {
		panic("ent: DailyGame is not a transactional entity")
	}
	dg.config.driver = _tx.drv
	return dg
}

// String implements the fmt.Stringer.
func (dg *DailyGame) String() string {
	var builder strings.Builder
	builder.WriteString("DailyGame(")
	builder.WriteString(fmt.Sprintf("id=%v, ", dg.ID))
	builder.WriteString("date_key=")
	builder.WriteString(dg.DateKey)
	builder.WriteString(", ")
	builder.WriteString("ranking_by=")
	builder.WriteString(fmt.Sprintf("%v", dg.RankingBy))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(dg.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DailyGames is a parsable slice of DailyGame.
type DailyGames []*DailyGame
