// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gseier/UniRankle/ent/dailygame"
	"github.com/gseier/UniRankle/ent/gameentry"
	"github.com/gseier/UniRankle/ent/predicate"
	"github.com/gseier/UniRankle/ent/submission"
)

// DailyGameUpdate is the builder for updating DailyGame entities.
type DailyGameUpdate struct {
	config
	hooks    []Hook
	mutation *DailyGameMutation
}

// Where appends a list predicates to the DailyGameUpdate builder.
func (dgu *DailyGameUpdate) Where(ps ...predicate.DailyGame) *DailyGameUpdate {
	dgu.mutation.Where(ps...)
	return dgu
}

// SetRankingBy sets the "ranking_by" field.
func (dgu *DailyGameUpdate) SetRankingBy(db dailygame.RankingBy) *DailyGameUpdate {
	dgu.mutation.SetRankingBy(db)
	return dgu
}

// SetNillableRankingBy sets the "ranking_by" field if the given value is not nil.
func (dgu *DailyGameUpdate) SetNillableRankingBy(db *dailygame.RankingBy) *DailyGameUpdate {
	if db != nil {
		dgu.SetRankingBy(*db)
	}
	return dgu
}

// AddEntryIDs adds the "entries" edge to the GameEntry entity by IDs.
func (dgu *DailyGameUpdate) AddEntryIDs(ids ...int) *DailyGameUpdate {
	dgu.mutation.AddEntryIDs(ids...)
	return dgu
}

// AddEntries adds the "entries" edges to the GameEntry entity.
func (dgu *DailyGameUpdate) AddEntries(g ...*GameEntry) *DailyGameUpdate {
	ids := make([]int, len(g))
	for i := range g {
		ids[i] = g[i].ID
	}
	return dgu.AddEntryIDs(ids...)
}

// AddSubmissionIDs adds the "submissions" edge to the Submission entity by IDs.
func (dgu *DailyGameUpdate) AddSubmissionIDs(ids ...int) *DailyGameUpdate {
	dgu.mutation.AddSubmissionIDs(ids...)
	return dgu
}

// AddSubmissions adds the "submissions" edges to the Submission entity.
func (dgu *DailyGameUpdate) AddSubmissions(s ...*Submission) *DailyGameUpdate {
	ids := make([]int, len(s))
	for i := range s {
		ids[i] = s[i].ID
	}
	return dgu.AddSubmissionIDs(ids...)
}

// Mutation returns the DailyGameMutation object of the builder.
func (dgu *DailyGameUpdate) Mutation() *DailyGameMutation {
	return dgu.mutation
}

// ClearEntries clears all "entries" edges to the GameEntry entity.
func (dgu *DailyGameUpdate) ClearEntries() *DailyGameUpdate {
	dgu.mutation.ClearEntries()
	return dgu
}

// RemoveEntryIDs removes the "entries" edge to GameEntry entities by IDs.
func (dgu *DailyGameUpdate) RemoveEntryIDs(ids ...int) *DailyGameUpdate {
	dgu.mutation.RemoveEntryIDs(ids...)
	return dgu
}

// RemoveEntries removes "entries" edges to GameEntry entities.
func (dgu *DailyGameUpdate) RemoveEntries(g ...*GameEntry) *DailyGameUpdate {
	ids := make([]int, len(g))
	for i := range g {
		ids[i] = g[i].ID
	}
	return dgu.RemoveEntryIDs(ids...)
}

// ClearSubmissions clears all "submissions" edges to the Submission entity.
func (dgu *DailyGameUpdate) ClearSubmissions() *DailyGameUpdate {
	dgu.mutation.ClearSubmissions()
	return dgu
}

// RemoveSubmissionIDs removes the "submissions" edge to Submission entities by IDs.
func (dgu *DailyGameUpdate) RemoveSubmissionIDs(ids ...int) *DailyGameUpdate {
	dgu.mutation.RemoveSubmissionIDs(ids...)
	return dgu
}

// RemoveSubmissions removes "submissions" edges to Submission entities.
func (dgu *DailyGameUpdate) RemoveSubmissions(s ...*Submission) *DailyGameUpdate {
	ids := make([]int, len(s))
	for i := range s {
		ids[i] = s[i].ID
	}
	return dgu.RemoveSubmissionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (dgu *DailyGameUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, dgu.sqlSave, dgu.mutation, dgu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (dgu *DailyGameUpdate) SaveX(ctx context.Context) int {
	affected, err := dgu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (dgu *DailyGameUpdate) Exec(ctx context.Context) error {
	_, err := dgu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (dgu *DailyGameUpdate) ExecX(ctx context.Context) {
	if err := dgu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (dgu *DailyGameUpdate) check() error {
	if v, ok := dgu.mutation.RankingBy(); ok {
		if err := dailygame.RankingByValidator(v); err != nil {
			return &ValidationError{Name: "ranking_by", err: fmt.Errorf(`ent: validator failed for field "DailyGame.ranking_by": %w`, err)}
		}
	}
	return nil
}

func (dgu *DailyGameUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := dgu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(dailygame.Table, dailygame.Columns, sqlgraph.NewFieldSpec(dailygame.FieldID, field.TypeUUID))
	if ps := dgu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := dgu.mutation.RankingBy(); ok {
		_spec.SetField(dailygame.FieldRankingBy, field.TypeEnum, value)
	}
	if dgu.mutation.EntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   dailygame.EntriesTable,
			Columns: []string{dailygame.EntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(gameentry.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := dgu.mutation.RemovedEntriesIDs(); len(nodes) > 0 && !dgu.mutation.EntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   dailygame.EntriesTable,
			Columns: []string{dailygame.EntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(gameentry.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := dgu.mutation.EntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   dailygame.EntriesTable,
			Columns: []string{dailygame.EntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(gameentry.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if dgu.mutation.SubmissionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   dailygame.SubmissionsTable,
			Columns: []string{dailygame.SubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := dgu.mutation.RemovedSubmissionsIDs(); len(nodes) > 0 && !dgu.mutation.SubmissionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   dailygame.SubmissionsTable,
			Columns: []string{dailygame.SubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := dgu.mutation.SubmissionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   dailygame.SubmissionsTable,
			Columns: []string{dailygame.SubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, dgu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dailygame.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	dgu.mutation.done = true
	return n, nil
}

// DailyGameUpdateOne is the builder for updating a single DailyGame entity.
type DailyGameUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DailyGameMutation
}

// SetRankingBy sets the "ranking_by" field.
func (dguo *DailyGameUpdateOne) SetRankingBy(db dailygame.RankingBy) *DailyGameUpdateOne {
	dguo.mutation.SetRankingBy(db)
	return dguo
}

// SetNillableRankingBy sets the "ranking_by" field if the given value is not nil.
func (dguo *DailyGameUpdateOne) SetNillableRankingBy(db *dailygame.RankingBy) *DailyGameUpdateOne {
	if db != nil {
		dguo.SetRankingBy(*db)
	}
	return dguo
}

// AddEntryIDs adds the "entries" edge to the GameEntry entity by IDs.
func (dguo *DailyGameUpdateOne) AddEntryIDs(ids ...int) *DailyGameUpdateOne {
	dguo.mutation.AddEntryIDs(ids...)
	return dguo
}

// AddEntries adds the "entries" edges to the GameEntry entity.
func (dguo *DailyGameUpdateOne) AddEntries(g ...*GameEntry) *DailyGameUpdateOne {
	ids := make([]int, len(g))
	for i := range g {
		ids[i] = g[i].ID
	}
	return dguo.AddEntryIDs(ids...)
}

// AddSubmissionIDs adds the "submissions" edge to the Submission entity by IDs.
func (dguo *DailyGameUpdateOne) AddSubmissionIDs(ids ...int) *DailyGameUpdateOne {
	dguo.mutation.AddSubmissionIDs(ids...)
	return dguo
}

// AddSubmissions adds the "submissions" edges to the Submission entity.
func (dguo *DailyGameUpdateOne) AddSubmissions(s ...*Submission) *DailyGameUpdateOne {
	ids := make([]int, len(s))
	for i := range s {
		ids[i] = s[i].ID
	}
	return dguo.AddSubmissionIDs(ids...)
}

// Mutation returns the DailyGameMutation object of the builder.
func (dguo *DailyGameUpdateOne) Mutation() *DailyGameMutation {
	return dguo.mutation
}

// ClearEntries clears all "entries" edges to the GameEntry entity.
func (dguo *DailyGameUpdateOne) ClearEntries() *DailyGameUpdateOne {
	dguo.mutation.ClearEntries()
	return dguo
}

// RemoveEntryIDs removes the "entries" edge to GameEntry entities by IDs.
func (dguo *DailyGameUpdateOne) RemoveEntryIDs(ids ...int) *DailyGameUpdateOne {
	dguo.mutation.RemoveEntryIDs(ids...)
	return dguo
}

// RemoveEntries removes "entries" edges to GameEntry entities.
func (dguo *DailyGameUpdateOne) RemoveEntries(g ...*GameEntry) *DailyGameUpdateOne {
	ids := make([]int, len(g))
	for i := range g {
		ids[i] = g[i].ID
	}
	return dguo.RemoveEntryIDs(ids...)
}

// ClearSubmissions clears all "submissions" edges to the Submission entity.
func (dguo *DailyGameUpdateOne) ClearSubmissions() *DailyGameUpdateOne {
	dguo.mutation.ClearSubmissions()
	return dguo
}

// RemoveSubmissionIDs removes the "submissions" edge to Submission entities by IDs.
func (dguo *DailyGameUpdateOne) RemoveSubmissionIDs(ids ...int) *DailyGameUpdateOne {
	dguo.mutation.RemoveSubmissionIDs(ids...)
	return dguo
}

// RemoveSubmissions removes "submissions" edges to Submission entities.
func (dguo *DailyGameUpdateOne) RemoveSubmissions(s ...*Submission) *DailyGameUpdateOne {
	ids := make([]int, len(s))
	for i := range s {
		ids[i] = s[i].ID
	}
	return dguo.RemoveSubmissionIDs(ids...)
}

// Where appends a list predicates to the DailyGameUpdate builder.
func (dguo *DailyGameUpdateOne) Where(ps ...predicate.DailyGame) *DailyGameUpdateOne {
	dguo.mutation.Where(ps...)
	return dguo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (dguo *DailyGameUpdateOne) Select(field string, fields ...string) *DailyGameUpdateOne {
	dguo.fields = append([]string{field}, fields...)
	return dguo
}

// Save executes the query and returns the updated DailyGame entity.
func (dguo *DailyGameUpdateOne) Save(ctx context.Context) (*DailyGame, error) {
	return withHooks(ctx, dguo.sqlSave, dguo.mutation, dguo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (dguo *DailyGameUpdateOne) SaveX(ctx context.Context) *DailyGame {
	node, err := dguo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (dguo *DailyGameUpdateOne) Exec(ctx context.Context) error {
	_, err := dguo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (dguo *DailyGameUpdateOne) ExecX(ctx context.Context) {
	if err := dguo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (dguo *DailyGameUpdateOne) check() error {
	if v, ok := dguo.mutation.RankingBy(); ok {
		if err := dailygame.RankingByValidator(v); err != nil {
			return &ValidationError{Name: "ranking_by", err: fmt.Errorf(`ent: validator failed for field "DailyGame.ranking_by": %w`, err)}
		}
	}
	return nil
}

func (dguo *DailyGameUpdateOne) sqlSave(ctx context.Context) (_node *DailyGame, err error) {
	if err := dguo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dailygame.Table, dailygame.Columns, sqlgraph.NewFieldSpec(dailygame.FieldID, field.TypeUUID))
	id, ok := dguo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DailyGame.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := dguo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dailygame.FieldID)
		for _, f := range fields {
			if !dailygame.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != dailygame.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := dguo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := dguo.mutation.RankingBy(); ok {
		_spec.SetField(dailygame.FieldRankingBy, field.TypeEnum, value)
	}
	if dguo.mutation.EntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   dailygame.EntriesTable,
			Columns: []string{dailygame.EntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(gameentry.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := dguo.mutation.RemovedEntriesIDs(); len(nodes) > 0 && !dguo.mutation.EntriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   dailygame.EntriesTable,
			Columns: []string{dailygame.EntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(gameentry.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := dguo.mutation.EntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   dailygame.EntriesTable,
			Columns: []string{dailygame.EntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(gameentry.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if dguo.mutation.SubmissionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   dailygame.SubmissionsTable,
			Columns: []string{dailygame.SubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := dguo.mutation.RemovedSubmissionsIDs(); len(nodes) > 0 && !dguo.mutation.SubmissionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   dailygame.SubmissionsTable,
			Columns: []string{dailygame.SubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := dguo.mutation.SubmissionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   dailygame.SubmissionsTable,
			Columns: []string{dailygame.SubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submission.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DailyGame{config: dguo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, dguo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dailygame.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	dguo.mutation.done = true
	return _node, nil
}
