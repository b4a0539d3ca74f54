// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/gseier/UniRankle/ent/dailygame"
	"github.com/gseier/UniRankle/ent/gameentry"
	"github.com/gseier/UniRankle/ent/university"
)

// GameEntry is the model entity for the GameEntry schema.
type GameEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Position holds the value of the "position" field.
	Position int `json:"position,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the GameEntryQuery when eager-loading is set.
	Edges              GameEntryEdges `json:"edges"`
	daily_game_entries *uuid.UUID
	university_entries *uuid.UUID
	selectValues       sql.SelectValues
}

// GameEntryEdges holds the relations/edges for other nodes in the graph.
type GameEntryEdges struct {
	// Game holds the value of the game edge.
	Game *DailyGame `json:"game,omitempty"`
	// University holds the value of the university edge.
	University *University `json:"university,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// GameOrErr returns the Game value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e GameEntryEdges) GameOrErr() (*DailyGame, error) {
	if e.Game != nil {
		return e.Game, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: dailygame.Label}
	}
	return nil, &NotLoadedError{edge: "game"}
}

// UniversityOrErr returns the University value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e GameEntryEdges) UniversityOrErr() (*University, error) {
	if e.University != nil {
		return e.University, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: university.Label}
	}
	return nil, &NotLoadedError{edge: "university"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GameEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case gameentry.FieldID, gameentry.FieldPosition:
			values[i] = new(sql.NullInt64)
		case gameentry.ForeignKeys[0]: // daily_game_entries
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case gameentry.ForeignKeys[1]: // university_entries
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GameEntry fields.
func (ge *GameEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case gameentry.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			ge.ID = int(value.Int64)
		case gameentry.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				ge.Position = int(value.Int64)
			}
		case gameentry.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field daily_game_entries", values[i])
			} else if value.Valid {
				ge.daily_game_entries = new(uuid.UUID)
				*ge.daily_game_entries = *value.S.(*uuid.UUID)
			}
		case gameentry.ForeignKeys[1]:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field university_entries", values[i])
			} else if value.Valid {
				ge.university_entries = new(uuid.UUID)
				*ge.university_entries = *value.S.(*uuid.UUID)
			}
		default:
			ge.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GameEntry.
// This includes values selected through modifiers, order, etc.
func (ge *GameEntry) Value(name string) (ent.Value, error) {
	return ge.selectValues.Get(name)
}

// QueryGame queries the "game" edge of the GameEntry entity.
func (ge *GameEntry) QueryGame() *DailyGameQuery {
	return NewGameEntryClient(ge.config).QueryGame(ge)
}

// QueryUniversity queries the "university" edge of the GameEntry entity.
func (ge *GameEntry) QueryUniversity() *UniversityQuery {
	return NewGameEntryClient(ge.config).QueryUniversity(ge)
}

// Update returns a builder for updating this GameEntry.
// Note that you need to call GameEntry.Unwrap() before calling this method if this GameEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (ge *GameEntry) Update() *GameEntryUpdateOne {
	return NewGameEntryClient(ge.config).UpdateOne(ge)
}

// Unwrap unwraps the GameEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ge *GameEntry) Unwrap() *GameEntry {
	_tx, ok := ge.config.driver.(*txDriver)
	if !ok {
		panic("ent: GameEntry is not a transactional entity")
	}
	ge.config.driver = _tx.drv
	return ge
}

// String implements the fmt.Stringer.
func (ge *GameEntry) String() string {
	var builder strings.Builder
	builder.WriteString("GameEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ge.ID))
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", ge.Position))
	builder.WriteByte(')')
	return builder.String()
}

// GameEntries is a parsable slice of GameEntry.
type GameEntries []*GameEntry
