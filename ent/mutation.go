// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/gseier/UniRankle/ent/dailygame"
	"github.com/gseier/UniRankle/ent/gameentry"
	"github.com/gseier/UniRankle/ent/predicate"
	"github.com/gseier/UniRankle/ent/submission"
	"github.com/gseier/UniRankle/ent/university"
	"github.com/gseier/UniRankle/ent/user"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDailyGame  = "DailyGame"
	TypeGameEntry  = "GameEntry"
	TypeSubmission = "Submission"
	TypeUniversity = "University"
	TypeUser       = "User"
)

// DailyGameMutation represents an operation that mutates the DailyGame nodes in the graph.
type DailyGameMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	date_key           *string
	ranking_by         *dailygame.RankingBy
	created_at         *time.Time
	clearedFields      map[string]struct{}
	entries            map[int]struct{}
	removedentries     map[int]struct{}
	clearedentries     bool
	submissions        map[int]struct{}
	removedsubmissions map[int]struct{}
	clearedsubmissions bool
	done               bool
	oldValue           func(context.Context) (*DailyGame, error)
	predicates         []predicate.DailyGame
}

var _ ent.Mutation = (*DailyGameMutation)(nil)

// dailygameOption allows management of the mutation configuration using functional options.
type dailygameOption func(*DailyGameMutation)

// newDailyGameMutation creates new mutation for the DailyGame entity.
func newDailyGameMutation(c config, op Op, opts ...dailygameOption) *DailyGameMutation {
	m := &DailyGameMutation{
		config:        c,
		op:            op,
		typ:           TypeDailyGame,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDailyGameID sets the ID field of the mutation.
func withDailyGameID(id uuid.UUID) dailygameOption {
	return func(m *DailyGameMutation) {
		var (
			err   error
			once  sync.Once
			value *DailyGame
		)
		m.oldValue = func(ctx context.Context) (*DailyGame, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DailyGame.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDailyGame sets the old DailyGame of the mutation.
func withDailyGame(node *DailyGame) dailygameOption {
	return func(m *DailyGameMutation) {
		m.oldValue = func(context.Context) (*DailyGame, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DailyGameMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DailyGameMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DailyGame entities.
func (m *DailyGameMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DailyGameMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DailyGameMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DailyGame.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDateKey sets the "date_key" field.
func (m *DailyGameMutation) SetDateKey(s string) {
	m.date_key = &s
}

// DateKey returns the value of the "date_key" field in the mutation.
func (m *DailyGameMutation) DateKey() (r string, exists bool) {
	v := m.date_key
	if v == nil {
		return
	}
	return *v, true
}

// OldDateKey returns the old "date_key" field's value of the DailyGame entity.
// If the DailyGame object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyGameMutation) OldDateKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDateKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDateKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDateKey: %w", err)
	}
	return oldValue.DateKey, nil
}

// ResetDateKey resets all changes to the "date_key" field.
func (m *DailyGameMutation) ResetDateKey() {
	m.date_key = nil
}

// SetRankingBy sets the "ranking_by" field.
func (m *DailyGameMutation) SetRankingBy(db dailygame.RankingBy) {
	m.ranking_by = &db
}

// RankingBy returns the value of the "ranking_by" field in the mutation.
func (m *DailyGameMutation) RankingBy() (r dailygame.RankingBy, exists bool) {
	v := m.ranking_by
	if v == nil {
		return
	}
	return *v, true
}

// OldRankingBy returns the old "ranking_by" field's value of the DailyGame entity.
// If the DailyGame object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyGameMutation) OldRankingBy(ctx context.Context) (v dailygame.RankingBy, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRankingBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRankingBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRankingBy: %w", err)
	}
	return oldValue.RankingBy, nil
}

// ResetRankingBy resets all changes to the "ranking_by" field.
func (m *DailyGameMutation) ResetRankingBy() {
	m.ranking_by = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DailyGameMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DailyGameMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DailyGame entity.
// If the DailyGame object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyGameMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DailyGameMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddEntryIDs adds the "entries" edge to the GameEntry entity by ids.
func (m *DailyGameMutation) AddEntryIDs(ids ...int) {
	if m.entries == nil {
		m.entries = make(map[int]struct{})
	}
	for i := range ids {
		m.entries[ids[i]] = struct{}{}
	}
}

// ClearEntries clears the "entries" edge to the GameEntry entity.
func (m *DailyGameMutation) ClearEntries() {
	m.clearedentries = true
}

// EntriesCleared reports if the "entries" edge to the GameEntry entity was cleared.
func (m *DailyGameMutation) EntriesCleared() bool {
	return m.clearedentries
}

// RemoveEntryIDs removes the "entries" edge to the GameEntry entity by IDs.
func (m *DailyGameMutation) RemoveEntryIDs(ids ...int) {
	if m.removedentries == nil {
		m.removedentries = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.entries, ids[i])
		m.removedentries[ids[i]] = struct{}{}
	}
}

// RemovedEntries returns the removed IDs of the "entries" edge to the GameEntry entity.
func (m *DailyGameMutation) RemovedEntriesIDs() (ids []int) {
	for id := range m.removedentries {
		ids = append(ids, id)
	}
	return
}

// EntriesIDs returns the "entries" edge IDs in the mutation.
func (m *DailyGameMutation) EntriesIDs() (ids []int) {
	for id := range m.entries {
		ids = append(ids, id)
	}
	return
}

// ResetEntries resets all changes to the "entries" edge.
func (m *DailyGameMutation) ResetEntries() {
	m.entries = nil
	m.clearedentries = false
	m.removedentries = nil
}

// AddSubmissionIDs adds the "submissions" edge to the Submission entity by ids.
func (m *DailyGameMutation) AddSubmissionIDs(ids ...int) {
	if m.submissions == nil {
		m.submissions = make(map[int]struct{})
	}
	for i := range ids {
		m.submissions[ids[i]] = struct{}{}
	}
}

// ClearSubmissions clears the "submissions" edge to the Submission entity.
func (m *DailyGameMutation) ClearSubmissions() {
	m.clearedsubmissions = true
}

// SubmissionsCleared reports if the "submissions" edge to the Submission entity was cleared.
func (m *DailyGameMutation) SubmissionsCleared() bool {
	return m.clearedsubmissions
}

// RemoveSubmissionIDs removes the "submissions" edge to the Submission entity by IDs.
func (m *DailyGameMutation) RemoveSubmissionIDs(ids ...int) {
	if m.removedsubmissions == nil {
		m.removedsubmissions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.submissions, ids[i])
		m.removedsubmissions[ids[i]] = struct{}{}
	}
}

// RemovedSubmissions returns the removed IDs of the "submissions" edge to the Submission entity.
func (m *DailyGameMutation) RemovedSubmissionsIDs() (ids []int) {
	for id := range m.removedsubmissions {
		ids = append(ids, id)
	}
	return
}

// SubmissionsIDs returns the "submissions" edge IDs in the mutation.
func (m *DailyGameMutation) SubmissionsIDs() (ids []int) {
	for id := range m.submissions {
		ids = append(ids, id)
	}
	return
}

// ResetSubmissions resets all changes to the "submissions" edge.
func (m *DailyGameMutation) ResetSubmissions() {
	m.submissions = nil
	m.clearedsubmissions = false
	m.removedsubmissions = nil
}

// Where appends a list predicates to the DailyGameMutation builder.
func (m *DailyGameMutation) Where(ps ...predicate.DailyGame) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DailyGameMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DailyGameMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DailyGame, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DailyGameMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DailyGameMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DailyGame).
func (m *DailyGameMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DailyGameMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.date_key != nil {
		fields = append(fields, dailygame.FieldDateKey)
	}
	if m.ranking_by != nil {
		fields = append(fields, dailygame.FieldRankingBy)
	}
	if m.created_at != nil {
		fields = append(fields, dailygame.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DailyGameMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case dailygame.FieldDateKey:
		return m.DateKey()
	case dailygame.FieldRankingBy:
		return m.RankingBy()
	case dailygame.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DailyGameMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case dailygame.FieldDateKey:
		return m.OldDateKey(ctx)
	case dailygame.FieldRankingBy:
		return m.OldRankingBy(ctx)
	case dailygame.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DailyGame field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DailyGameMutation) SetField(name string, value ent.Value) error {
	switch name {
	case dailygame.FieldDateKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDateKey(v)
		return nil
	case dailygame.FieldRankingBy:
		v, ok := value.(dailygame.RankingBy)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRankingBy(v)
		return nil
	case dailygame.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DailyGame field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DailyGameMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DailyGameMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DailyGameMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown DailyGame numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DailyGameMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DailyGameMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DailyGameMutation) ClearField(name string) error {
	return fmt.Errorf("unknown DailyGame nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DailyGameMutation) ResetField(name string) error {
	switch name {
	case dailygame.FieldDateKey:
		m.ResetDateKey()
		return nil
	case dailygame.FieldRankingBy:
		m.ResetRankingBy()
		return nil
	case dailygame.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown DailyGame field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DailyGameMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.entries != nil {
		edges = append(edges, dailygame.EdgeEntries)
	}
	if m.submissions != nil {
		edges = append(edges, dailygame.EdgeSubmissions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DailyGameMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case dailygame.EdgeEntries:
		ids := make([]ent.Value, 0, len(m.entries))
		for id := range m.entries {
			ids = append(ids, id)
		}
		return ids
	case dailygame.EdgeSubmissions:
		ids := make([]ent.Value, 0, len(m.submissions))
		for id := range m.submissions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DailyGameMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedentries != nil {
		edges = append(edges, dailygame.EdgeEntries)
	}
	if m.removedsubmissions != nil {
		edges = append(edges, dailygame.EdgeSubmissions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DailyGameMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case dailygame.EdgeEntries:
		ids := make([]ent.Value, 0, len(m.removedentries))
		for id := range m.removedentries {
			ids = append(ids, id)
		}
		return ids
	case dailygame.EdgeSubmissions:
		ids := make([]ent.Value, 0, len(m.removedsubmissions))
		for id := range m.removedsubmissions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DailyGameMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedentries {
		edges = append(edges, dailygame.EdgeEntries)
	}
	if m.clearedsubmissions {
		edges = append(edges, dailygame.EdgeSubmissions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DailyGameMutation) EdgeCleared(name string) bool {
	switch name {
	case dailygame.EdgeEntries:
		return m.clearedentries
	case dailygame.EdgeSubmissions:
		return m.clearedsubmissions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DailyGameMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown DailyGame unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DailyGameMutation) ResetEdge(name string) error {
	switch name {
	case dailygame.EdgeEntries:
		m.ResetEntries()
		return nil
	case dailygame.EdgeSubmissions:
		m.ResetSubmissions()
		return nil
	}
	return fmt.Errorf("unknown DailyGame edge %s", name)
}

// GameEntryMutation represents an operation that mutates the GameEntry nodes in the graph.
type GameEntryMutation struct {
	config
	op                Op
	typ               string
	id                *int
	position          *int
	addposition       *int
	clearedFields     map[string]struct{}
	game              *uuid.UUID
	clearedgame       bool
	university        *uuid.UUID
	cleareduniversity bool
	done              bool
	oldValue          func(context.Context) (*GameEntry, error)
	predicates        []predicate.GameEntry
}

var _ ent.Mutation = (*GameEntryMutation)(nil)

// gameentryOption allows management of the mutation configuration using functional options.
type gameentryOption func(*GameEntryMutation)

// newGameEntryMutation creates new mutation for the GameEntry entity.
func newGameEntryMutation(c config, op Op, opts ...gameentryOption) *GameEntryMutation {
	m := &GameEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeGameEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGameEntryID sets the ID field of the mutation.
func withGameEntryID(id int) gameentryOption {
	return func(m *GameEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *GameEntry
		)
		m.oldValue = func(ctx context.Context) (*GameEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GameEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGameEntry sets the old GameEntry of the mutation.
func withGameEntry(node *GameEntry) gameentryOption {
	return func(m *GameEntryMutation) {
		m.oldValue = func(context.Context) (*GameEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GameEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GameEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GameEntryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GameEntryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GameEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPosition sets the "position" field.
func (m *GameEntryMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *GameEntryMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the GameEntry entity.
// If the GameEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameEntryMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *GameEntryMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *GameEntryMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *GameEntryMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetGameID sets the "game" edge to the DailyGame entity by id.
func (m *GameEntryMutation) SetGameID(id uuid.UUID) {
	m.game = &id
}

// ClearGame clears the "game" edge to the DailyGame entity.
func (m *GameEntryMutation) ClearGame() {
	m.clearedgame = true
}

// GameCleared reports if the "game" edge to the DailyGame entity was cleared.
func (m *GameEntryMutation) GameCleared() bool {
	return m.clearedgame
}

// GameID returns the "game" edge ID in the mutation.
func (m *GameEntryMutation) GameID() (id uuid.UUID, exists bool) {
	if m.game != nil {
		return *m.game, true
	}
	return
}

// GameIDs returns the "game" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// GameID instead. It exists only for internal usage by the builders.
func (m *GameEntryMutation) GameIDs() (ids []uuid.UUID) {
	if id := m.game; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetGame resets all changes to the "game" edge.
func (m *GameEntryMutation) ResetGame() {
	m.game = nil
	m.clearedgame = false
}

// SetUniversityID sets the "university" edge to the University entity by id.
func (m *GameEntryMutation) SetUniversityID(id uuid.UUID) {
	m.university = &id
}

// ClearUniversity clears the "university" edge to the University entity.
func (m *GameEntryMutation) ClearUniversity() {
	m.cleareduniversity = true
}

// UniversityCleared reports if the "university" edge to the University entity was cleared.
func (m *GameEntryMutation) UniversityCleared() bool {
	return m.cleareduniversity
}

// UniversityID returns the "university" edge ID in the mutation.
func (m *GameEntryMutation) UniversityID() (id uuid.UUID, exists bool) {
	if m.university != nil {
		return *m.university, true
	}
	return
}

// UniversityIDs returns the "university" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UniversityID instead. It exists only for internal usage by the builders.
func (m *GameEntryMutation) UniversityIDs() (ids []uuid.UUID) {
	if id := m.university; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUniversity resets all changes to the "university" edge.
func (m *GameEntryMutation) ResetUniversity() {
	m.university = nil
	m.cleareduniversity = false
}

// Where appends a list predicates to the GameEntryMutation builder.
func (m *GameEntryMutation) Where(ps ...predicate.GameEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GameEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GameEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GameEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GameEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GameEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GameEntry).
func (m *GameEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GameEntryMutation) Fields() []string {
	fields := make([]string, 0, 1)
	if m.position != nil {
		fields = append(fields, gameentry.FieldPosition)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GameEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case gameentry.FieldPosition:
		return m.Position()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GameEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case gameentry.FieldPosition:
		return m.OldPosition(ctx)
	}
	return nil, fmt.Errorf("unknown GameEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GameEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case gameentry.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	}
	return fmt.Errorf("unknown GameEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GameEntryMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, gameentry.FieldPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GameEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case gameentry.FieldPosition:
		return m.AddedPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GameEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case gameentry.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	}
	return fmt.Errorf("unknown GameEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GameEntryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GameEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GameEntryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown GameEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GameEntryMutation) ResetField(name string) error {
	switch name {
	case gameentry.FieldPosition:
		m.ResetPosition()
		return nil
	}
	return fmt.Errorf("unknown GameEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GameEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.game != nil {
		edges = append(edges, gameentry.EdgeGame)
	}
	if m.university != nil {
		edges = append(edges, gameentry.EdgeUniversity)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GameEntryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case gameentry.EdgeGame:
		if id := m.game; id != nil {
			return []ent.Value{*id}
		}
	case gameentry.EdgeUniversity:
		if id := m.university; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GameEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GameEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GameEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedgame {
		edges = append(edges, gameentry.EdgeGame)
	}
	if m.cleareduniversity {
		edges = append(edges, gameentry.EdgeUniversity)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GameEntryMutation) EdgeCleared(name string) bool {
	switch name {
	case gameentry.EdgeGame:
		return m.clearedgame
	case gameentry.EdgeUniversity:
		return m.cleareduniversity
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GameEntryMutation) ClearEdge(name string) error {
	switch name {
	case gameentry.EdgeGame:
		m.ClearGame()
		return nil
	case gameentry.EdgeUniversity:
		m.ClearUniversity()
		return nil
	}
	return fmt.Errorf("unknown GameEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GameEntryMutation) ResetEdge(name string) error {
	switch name {
	case gameentry.EdgeGame:
		m.ResetGame()
		return nil
	case gameentry.EdgeUniversity:
		m.ResetUniversity()
		return nil
	}
	return fmt.Errorf("unknown GameEntry edge %s", name)
}

// SubmissionMutation represents an operation that mutates the Submission nodes in the graph.
type SubmissionMutation struct {
	config
	op                Op
	typ               string
	id                *int
	user_id           *uuid.UUID
	score             *int
	addscore          *int
	final_order       *[]string
	appendfinal_order []string
	created_at        *time.Time
	clearedFields     map[string]struct{}
	game              *uuid.UUID
	clearedgame       bool
	done              bool
	oldValue          func(context.Context) (*Submission, error)
	predicates        []predicate.Submission
}

var _ ent.Mutation = (*SubmissionMutation)(nil)

// submissionOption allows management of the mutation configuration using functional options.
type submissionOption func(*SubmissionMutation)

// newSubmissionMutation creates new mutation for the Submission entity.
func newSubmissionMutation(c config, op Op, opts ...submissionOption) *SubmissionMutation {
	m := &SubmissionMutation{
		config:        c,
		op:            op,
		typ:           TypeSubmission,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSubmissionID sets the ID field of the mutation.
func withSubmissionID(id int) submissionOption {
	return func(m *SubmissionMutation) {
		var (
			err   error
			once  sync.Once
			value *Submission
		)
		m.oldValue = func(ctx context.Context) (*Submission, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Submission.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSubmission sets the old Submission of the mutation.
func withSubmission(node *Submission) submissionOption {
	return func(m *SubmissionMutation) {
		m.oldValue = func(context.Context) (*Submission, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SubmissionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SubmissionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SubmissionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SubmissionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Submission.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *SubmissionMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SubmissionMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *SubmissionMutation) ResetUserID() {
	m.user_id = nil
}

// SetScore sets the "score" field.
func (m *SubmissionMutation) SetScore(i int) {
	m.score = &i
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *SubmissionMutation) Score() (r int, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldScore(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds i to the "score" field.
func (m *SubmissionMutation) AddScore(i int) {
	if m.addscore != nil {
		*m.addscore += i
	} else {
		m.addscore = &i
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *SubmissionMutation) AddedScore() (r int, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *SubmissionMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetFinalOrder sets the "final_order" field.
func (m *SubmissionMutation) SetFinalOrder(s []string) {
	m.final_order = &s
	m.appendfinal_order = nil
}

// FinalOrder returns the value of the "final_order" field in the mutation.
func (m *SubmissionMutation) FinalOrder() (r []string, exists bool) {
	v := m.final_order
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalOrder returns the old "final_order" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldFinalOrder(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalOrder: %w", err)
	}
	return oldValue.FinalOrder, nil
}

// AppendFinalOrder adds s to the "final_order" field.
func (m *SubmissionMutation) AppendFinalOrder(s []string) {
	m.appendfinal_order = append(m.appendfinal_order, s...)
}

// AppendedFinalOrder returns the list of values that were appended to the "final_order" field in this mutation.
func (m *SubmissionMutation) AppendedFinalOrder() ([]string, bool) {
	if len(m.appendfinal_order) == 0 {
		return nil, false
	}
	return m.appendfinal_order, true
}

// ResetFinalOrder resets all changes to the "final_order" field.
func (m *SubmissionMutation) ResetFinalOrder() {
	m.final_order = nil
	m.appendfinal_order = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SubmissionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SubmissionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Submission entity.
// If the Submission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmissionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SubmissionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetGameID sets the "game" edge to the DailyGame entity by id.
func (m *SubmissionMutation) SetGameID(id uuid.UUID) {
	m.game = &id
}

// ClearGame clears the "game" edge to the DailyGame entity.
func (m *SubmissionMutation) ClearGame() {
	m.clearedgame = true
}

// GameCleared reports if the "game" edge to the DailyGame entity was cleared.
func (m *SubmissionMutation) GameCleared() bool {
	return m.clearedgame
}

// GameID returns the "game" edge ID in the mutation.
func (m *SubmissionMutation) GameID() (id uuid.UUID, exists bool) {
	if m.game != nil {
		return *m.game, true
	}
	return
}

// GameIDs returns the "game" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// GameID instead. It exists only for internal usage by the builders.
func (m *SubmissionMutation) GameIDs() (ids []uuid.UUID) {
	if id := m.game; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetGame resets all changes to the "game" edge.
func (m *SubmissionMutation) ResetGame() {
	m.game = nil
	m.clearedgame = false
}

// Where appends a list predicates to the SubmissionMutation builder.
func (m *SubmissionMutation) Where(ps ...predicate.Submission) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SubmissionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SubmissionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Submission, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SubmissionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SubmissionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Submission).
func (m *SubmissionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SubmissionMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.user_id != nil {
		fields = append(fields, submission.FieldUserID)
	}
	if m.score != nil {
		fields = append(fields, submission.FieldScore)
	}
	if m.final_order != nil {
		fields = append(fields, submission.FieldFinalOrder)
	}
	if m.created_at != nil {
		fields = append(fields, submission.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SubmissionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case submission.FieldUserID:
		return m.UserID()
	case submission.FieldScore:
		return m.Score()
	case submission.FieldFinalOrder:
		return m.FinalOrder()
	case submission.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SubmissionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case submission.FieldUserID:
		return m.OldUserID(ctx)
	case submission.FieldScore:
		return m.OldScore(ctx)
	case submission.FieldFinalOrder:
		return m.OldFinalOrder(ctx)
	case submission.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Submission field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubmissionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case submission.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case submission.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case submission.FieldFinalOrder:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalOrder(v)
		return nil
	case submission.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Submission field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SubmissionMutation) AddedFields() []string {
	var fields []string
	if m.addscore != nil {
		fields = append(fields, submission.FieldScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SubmissionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case submission.FieldScore:
		return m.AddedScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubmissionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case submission.FieldScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	}
	return fmt.Errorf("unknown Submission numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SubmissionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SubmissionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SubmissionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Submission nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SubmissionMutation) ResetField(name string) error {
	switch name {
	case submission.FieldUserID:
		m.ResetUserID()
		return nil
	case submission.FieldScore:
		m.ResetScore()
		return nil
	case submission.FieldFinalOrder:
		m.ResetFinalOrder()
		return nil
	case submission.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Submission field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SubmissionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.game != nil {
		edges = append(edges, submission.EdgeGame)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SubmissionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case submission.EdgeGame:
		if id := m.game; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SubmissionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SubmissionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SubmissionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedgame {
		edges = append(edges, submission.EdgeGame)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SubmissionMutation) EdgeCleared(name string) bool {
	switch name {
	case submission.EdgeGame:
		return m.clearedgame
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SubmissionMutation) ClearEdge(name string) error {
	switch name {
	case submission.EdgeGame:
		m.ClearGame()
		return nil
	}
	return fmt.Errorf("unknown Submission unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SubmissionMutation) ResetEdge(name string) error {
	switch name {
	case submission.EdgeGame:
		m.ResetGame()
		return nil
	}
	return fmt.Errorf("unknown Submission edge %s", name)
}

// UniversityMutation represents an operation that mutates the University nodes in the graph.
type UniversityMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	name             *string
	country          *string
	image_url        *string
	ranking          *int
	addranking       *int
	student_count    *int
	addstudent_count *int
	founded_year     *int
	addfounded_year  *int
	campus_area      *float64
	addcampus_area   *float64
	clearedFields    map[string]struct{}
	entries          map[int]struct{}
	removedentries   map[int]struct{}
	clearedentries   bool
	done             bool
	oldValue         func(context.Context) (*University, error)
	predicates       []predicate.University
}

var _ ent.Mutation = (*UniversityMutation)(nil)

// universityOption allows management of the mutation configuration using functional options.
type universityOption func(*UniversityMutation)

// newUniversityMutation creates new mutation for the University entity.
func newUniversityMutation(c config, op Op, opts ...universityOption) *UniversityMutation {
	m := &UniversityMutation{
		config:        c,
		op:            op,
		typ:           TypeUniversity,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUniversityID sets the ID field of the mutation.
func withUniversityID(id uuid.UUID) universityOption {
	return func(m *UniversityMutation) {
		var (
			err   error
			once  sync.Once
			value *University
		)
		m.oldValue = func(ctx context.Context) (*University, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().University.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUniversity sets the old University of the mutation.
func withUniversity(node *University) universityOption {
	return func(m *UniversityMutation) {
		m.oldValue = func(context.Context) (*University, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UniversityMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UniversityMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of University entities.
func (m *UniversityMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UniversityMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UniversityMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().University.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *UniversityMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *UniversityMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the University entity.
// If the University object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UniversityMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *UniversityMutation) ResetName() {
	m.name = nil
}

// SetCountry sets the "country" field.
func (m *UniversityMutation) SetCountry(s string) {
	m.country = &s
}

// Country returns the value of the "country" field in the mutation.
func (m *UniversityMutation) Country() (r string, exists bool) {
	v := m.country
	if v == nil {
		return
	}
	return *v, true
}

// OldCountry returns the old "country" field's value of the University entity.
// If the University object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UniversityMutation) OldCountry(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCountry is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCountry requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCountry: %w", err)
	}
	return oldValue.Country, nil
}

// ResetCountry resets all changes to the "country" field.
func (m *UniversityMutation) ResetCountry() {
	m.country = nil
}

// SetImageURL sets the "image_url" field.
func (m *UniversityMutation) SetImageURL(s string) {
	m.image_url = &s
}

// ImageURL returns the value of the "image_url" field in the mutation.
func (m *UniversityMutation) ImageURL() (r string, exists bool) {
	v := m.image_url
	if v == nil {
		return
	}
	return *v, true
}

// OldImageURL returns the old "image_url" field's value of the University entity.
// If the University object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UniversityMutation) OldImageURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImageURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImageURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImageURL: %w", err)
	}
	return oldValue.ImageURL, nil
}

// ClearImageURL clears the value of the "image_url" field.
func (m *UniversityMutation) ClearImageURL() {
	m.image_url = nil
	m.clearedFields[university.FieldImageURL] = struct{}{}
}

// ImageURLCleared returns if the "image_url" field was cleared in this mutation.
func (m *UniversityMutation) ImageURLCleared() bool {
	_, ok := m.clearedFields[university.FieldImageURL]
	return ok
}

// ResetImageURL resets all changes to the "image_url" field.
func (m *UniversityMutation) ResetImageURL() {
	m.image_url = nil
	delete(m.clearedFields, university.FieldImageURL)
}

// SetRanking sets the "ranking" field.
func (m *UniversityMutation) SetRanking(i int) {
	m.ranking = &i
	m.addranking = nil
}

// Ranking returns the value of the "ranking" field in the mutation.
func (m *UniversityMutation) Ranking() (r int, exists bool) {
	v := m.ranking
	if v == nil {
		return
	}
	return *v, true
}

// OldRanking returns the old "ranking" field's value of the University entity.
// If the University object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UniversityMutation) OldRanking(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRanking is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRanking requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRanking: %w", err)
	}
	return oldValue.Ranking, nil
}

// AddRanking adds i to the "ranking" field.
func (m *UniversityMutation) AddRanking(i int) {
	if m.addranking != nil {
		*m.addranking += i
	} else {
		m.addranking = &i
	}
}

// AddedRanking returns the value that was added to the "ranking" field in this mutation.
func (m *UniversityMutation) AddedRanking() (r int, exists bool) {
	v := m.addranking
	if v == nil {
		return
	}
	return *v, true
}

// ResetRanking resets all changes to the "ranking" field.
func (m *UniversityMutation) ResetRanking() {
	m.ranking = nil
	m.addranking = nil
}

// SetStudentCount sets the "student_count" field.
func (m *UniversityMutation) SetStudentCount(i int) {
	m.student_count = &i
	m.addstudent_count = nil
}

// StudentCount returns the value of the "student_count" field in the mutation.
func (m *UniversityMutation) StudentCount() (r int, exists bool) {
	v := m.student_count
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentCount returns the old "student_count" field's value of the University entity.
// If the University object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UniversityMutation) OldStudentCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentCount: %w", err)
	}
	return oldValue.StudentCount, nil
}

// AddStudentCount adds i to the "student_count" field.
func (m *UniversityMutation) AddStudentCount(i int) {
	if m.addstudent_count != nil {
		*m.addstudent_count += i
	} else {
		m.addstudent_count = &i
	}
}

// AddedStudentCount returns the value that was added to the "student_count" field in this mutation.
func (m *UniversityMutation) AddedStudentCount() (r int, exists bool) {
	v := m.addstudent_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetStudentCount resets all changes to the "student_count" field.
func (m *UniversityMutation) ResetStudentCount() {
	m.student_count = nil
	m.addstudent_count = nil
}

// SetFoundedYear sets the "founded_year" field.
func (m *UniversityMutation) SetFoundedYear(i int) {
	m.founded_year = &i
	m.addfounded_year = nil
}

// FoundedYear returns the value of the "founded_year" field in the mutation.
func (m *UniversityMutation) FoundedYear() (r int, exists bool) {
	v := m.founded_year
	if v == nil {
		return
	}
	return *v, true
}

// OldFoundedYear returns the old "founded_year" field's value of the University entity.
// If the University object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UniversityMutation) OldFoundedYear(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFoundedYear is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFoundedYear requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFoundedYear: %w", err)
	}
	return oldValue.FoundedYear, nil
}

// AddFoundedYear adds i to the "founded_year" field.
func (m *UniversityMutation) AddFoundedYear(i int) {
	if m.addfounded_year != nil {
		*m.addfounded_year += i
	} else {
		m.addfounded_year = &i
	}
}

// AddedFoundedYear returns the value that was added to the "founded_year" field in this mutation.
func (m *UniversityMutation) AddedFoundedYear() (r int, exists bool) {
	v := m.addfounded_year
	if v == nil {
		return
	}
	return *v, true
}

// ResetFoundedYear resets all changes to the "founded_year" field.
func (m *UniversityMutation) ResetFoundedYear() {
	m.founded_year = nil
	m.addfounded_year = nil
}

// SetCampusArea sets the "campus_area" field.
func (m *UniversityMutation) SetCampusArea(f float64) {
	m.campus_area = &f
	m.addcampus_area = nil
}

// CampusArea returns the value of the "campus_area" field in the mutation.
func (m *UniversityMutation) CampusArea() (r float64, exists bool) {
	v := m.campus_area
	if v == nil {
		return
	}
	return *v, true
}

// OldCampusArea returns the old "campus_area" field's value of the University entity.
// If the University object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UniversityMutation) OldCampusArea(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCampusArea is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCampusArea requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCampusArea: %w", err)
	}
	return oldValue.CampusArea, nil
}

// AddCampusArea adds f to the "campus_area" field.
func (m *UniversityMutation) AddCampusArea(f float64) {
	if m.addcampus_area != nil {
		*m.addcampus_area += f
	} else {
		m.addcampus_area = &f
	}
}

// AddedCampusArea returns the value that was added to the "campus_area" field in this mutation.
func (m *UniversityMutation) AddedCampusArea() (r float64, exists bool) {
	v := m.addcampus_area
	if v == nil {
		return
	}
	return *v, true
}

// ResetCampusArea resets all changes to the "campus_area" field.
func (m *UniversityMutation) ResetCampusArea() {
	m.campus_area = nil
	m.addcampus_area = nil
}

// AddEntryIDs adds the "entries" edge to the GameEntry entity by ids.
func (m *UniversityMutation) AddEntryIDs(ids ...int) {
	if m.entries == nil {
		m.entries = make(map[int]struct{})
	}
	for i := range ids {
		m.entries[ids[i]] = struct{}{}
	}
}

// ClearEntries clears the "entries" edge to the GameEntry entity.
func (m *UniversityMutation) ClearEntries() {
	m.clearedentries = true
}

// EntriesCleared reports if the "entries" edge to the GameEntry entity was cleared.
func (m *UniversityMutation) EntriesCleared() bool {
	return m.clearedentries
}

// RemoveEntryIDs removes the "entries" edge to the GameEntry entity by IDs.
func (m *UniversityMutation) RemoveEntryIDs(ids ...int) {
	if m.removedentries == nil {
		m.removedentries = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.entries, ids[i])
		m.removedentries[ids[i]] = struct{}{}
	}
}

// RemovedEntries returns the removed IDs of the "entries" edge to the GameEntry entity.
func (m *UniversityMutation) RemovedEntriesIDs() (ids []int) {
	for id := range m.removedentries {
		ids = append(ids, id)
	}
	return
}

// EntriesIDs returns the "entries" edge IDs in the mutation.
func (m *UniversityMutation) EntriesIDs() (ids []int) {
	for id := range m.entries {
		ids = append(ids, id)
	}
	return
}

// ResetEntries resets all changes to the "entries" edge.
func (m *UniversityMutation) ResetEntries() {
	m.entries = nil
	m.clearedentries = false
	m.removedentries = nil
}

// Where appends a list predicates to the UniversityMutation builder.
func (m *UniversityMutation) Where(ps ...predicate.University) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UniversityMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UniversityMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.University, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UniversityMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UniversityMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (University).
func (m *UniversityMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UniversityMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.name != nil {
		fields = append(fields, university.FieldName)
	}
	if m.country != nil {
		fields = append(fields, university.FieldCountry)
	}
	if m.image_url != nil {
		fields = append(fields, university.FieldImageURL)
	}
	if m.ranking != nil {
		fields = append(fields, university.FieldRanking)
	}
	if m.student_count != nil {
		fields = append(fields, university.FieldStudentCount)
	}
	if m.founded_year != nil {
		fields = append(fields, university.FieldFoundedYear)
	}
	if m.campus_area != nil {
		fields = append(fields, university.FieldCampusArea)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UniversityMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case university.FieldName:
		return m.Name()
	case university.FieldCountry:
		return m.Country()
	case university.FieldImageURL:
		return m.ImageURL()
	case university.FieldRanking:
		return m.Ranking()
	case university.FieldStudentCount:
		return m.StudentCount()
	case university.FieldFoundedYear:
		return m.FoundedYear()
	case university.FieldCampusArea:
		return m.CampusArea()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UniversityMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case university.FieldName:
		return m.OldName(ctx)
	case university.FieldCountry:
		return m.OldCountry(ctx)
	case university.FieldImageURL:
		return m.OldImageURL(ctx)
	case university.FieldRanking:
		return m.OldRanking(ctx)
	case university.FieldStudentCount:
		return m.OldStudentCount(ctx)
	case university.FieldFoundedYear:
		return m.OldFoundedYear(ctx)
	case university.FieldCampusArea:
		return m.OldCampusArea(ctx)
	}
	return nil, fmt.Errorf("unknown University field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UniversityMutation) SetField(name string, value ent.Value) error {
	switch name {
	case university.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case university.FieldCountry:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCountry(v)
		return nil
	case university.FieldImageURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImageURL(v)
		return nil
	case university.FieldRanking:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRanking(v)
		return nil
	case university.FieldStudentCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentCount(v)
		return nil
	case university.FieldFoundedYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFoundedYear(v)
		return nil
	case university.FieldCampusArea:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCampusArea(v)
		return nil
	}
	return fmt.Errorf("unknown University field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UniversityMutation) AddedFields() []string {
	var fields []string
	if m.addranking != nil {
		fields = append(fields, university.FieldRanking)
	}
	if m.addstudent_count != nil {
		fields = append(fields, university.FieldStudentCount)
	}
	if m.addfounded_year != nil {
		fields = append(fields, university.FieldFoundedYear)
	}
	if m.addcampus_area != nil {
		fields = append(fields, university.FieldCampusArea)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UniversityMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case university.FieldRanking:
		return m.AddedRanking()
	case university.FieldStudentCount:
		return m.AddedStudentCount()
	case university.FieldFoundedYear:
		return m.AddedFoundedYear()
	case university.FieldCampusArea:
		return m.AddedCampusArea()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UniversityMutation) AddField(name string, value ent.Value) error {
	switch name {
	case university.FieldRanking:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRanking(v)
		return nil
	case university.FieldStudentCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStudentCount(v)
		return nil
	case university.FieldFoundedYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFoundedYear(v)
		return nil
	case university.FieldCampusArea:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCampusArea(v)
		return nil
	}
	return fmt.Errorf("unknown University numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UniversityMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(university.FieldImageURL) {
		fields = append(fields, university.FieldImageURL)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UniversityMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UniversityMutation) ClearField(name string) error {
	switch name {
	case university.FieldImageURL:
		m.ClearImageURL()
		return nil
	}
	return fmt.Errorf("unknown University nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UniversityMutation) ResetField(name string) error {
	switch name {
	case university.FieldName:
		m.ResetName()
		return nil
	case university.FieldCountry:
		m.ResetCountry()
		return nil
	case university.FieldImageURL:
		m.ResetImageURL()
		return nil
	case university.FieldRanking:
		m.ResetRanking()
		return nil
	case university.FieldStudentCount:
		m.ResetStudentCount()
		return nil
	case university.FieldFoundedYear:
		m.ResetFoundedYear()
		return nil
	case university.FieldCampusArea:
		m.ResetCampusArea()
		return nil
	}
	return fmt.Errorf("unknown University field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UniversityMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.entries != nil {
		edges = append(edges, university.EdgeEntries)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UniversityMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case university.EdgeEntries:
		ids := make([]ent.Value, 0, len(m.entries))
		for id := range m.entries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UniversityMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedentries != nil {
		edges = append(edges, university.EdgeEntries)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UniversityMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case university.EdgeEntries:
		ids := make([]ent.Value, 0, len(m.removedentries))
		for id := range m.removedentries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UniversityMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedentries {
		edges = append(edges, university.EdgeEntries)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UniversityMutation) EdgeCleared(name string) bool {
	switch name {
	case university.EdgeEntries:
		return m.clearedentries
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UniversityMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown University unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UniversityMutation) ResetEdge(name string) error {
	switch name {
	case university.EdgeEntries:
		m.ResetEntries()
		return nil
	}
	return fmt.Errorf("unknown University edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	username      *string
	password_hash *string
	role          *user.Role
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*User, error)
	predicates    []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id uuid.UUID) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUsername sets the "username" field.
func (m *UserMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *UserMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ResetUsername resets all changes to the "username" field.
func (m *UserMutation) ResetUsername() {
	m.username = nil
}

// SetPasswordHash sets the "password_hash" field.
func (m *UserMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *UserMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *UserMutation) ResetPasswordHash() {
	m.password_hash = nil
}

// SetRole sets the "role" field.
func (m *UserMutation) SetRole(u user.Role) {
	m.role = &u
}

// Role returns the value of the "role" field in the mutation.
func (m *UserMutation) Role() (r user.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldRole(ctx context.Context) (v user.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *UserMutation) ResetRole() {
	m.role = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.username != nil {
		fields = append(fields, user.FieldUsername)
	}
	if m.password_hash != nil {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.role != nil {
		fields = append(fields, user.FieldRole)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldUsername:
		return m.Username()
	case user.FieldPasswordHash:
		return m.PasswordHash()
	case user.FieldRole:
		return m.Role()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldUsername:
		return m.OldUsername(ctx)
	case user.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case user.FieldRole:
		return m.OldRole(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case user.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case user.FieldRole:
		v, ok := value.(user.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldUsername:
		m.ResetUsername()
		return nil
	case user.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case user.FieldRole:
		m.ResetRole()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown User edge %s", name)
}
