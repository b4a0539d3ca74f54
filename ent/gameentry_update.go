// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/gseier/UniRankle/ent/dailygame"
	"github.com/gseier/UniRankle/ent/gameentry"
	"github.com/gseier/UniRankle/ent/predicate"
	"github.com/gseier/UniRankle/ent/university"
)

// GameEntryUpdate is the builder for updating GameEntry entities.
type GameEntryUpdate struct {
	config
	hooks    []Hook
	mutation *GameEntryMutation
}

// Where appends a list predicates to the GameEntryUpdate builder.
func (geu *GameEntryUpdate) Where(ps ...predicate.GameEntry) *GameEntryUpdate {
	geu.mutation.Where(ps...)
	return geu
}

// SetPosition sets the "position" field.
func (geu *GameEntryUpdate) SetPosition(i int) *GameEntryUpdate {
	geu.mutation.ResetPosition()
	geu.mutation.SetPosition(i)
	return geu
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (geu *GameEntryUpdate) SetNillablePosition(i *int) *GameEntryUpdate {
	if i != nil {
		geu.SetPosition(*i)
	}
	return geu
}

// AddPosition adds i to the "position" field.
func (geu *GameEntryUpdate) AddPosition(i int) *GameEntryUpdate {
	geu.mutation.AddPosition(i)
	return geu
}

// SetGameID sets the "game" edge to the DailyGame entity by ID.
func (geu *GameEntryUpdate) SetGameID(id uuid.UUID) *GameEntryUpdate {
	geu.mutation.SetGameID(id)
	return geu
}

// SetGame sets the "game" edge to the DailyGame entity.
func (geu *GameEntryUpdate) SetGame(d *DailyGame) *GameEntryUpdate {
	return geu.SetGameID(d.ID)
}

// SetUniversityID sets the "university" edge to the University entity by ID.
func (geu *GameEntryUpdate) SetUniversityID(id uuid.UUID) *GameEntryUpdate {
	geu.mutation.SetUniversityID(id)
	return geu
}

// SetUniversity sets the "university" edge to the University entity.
func (geu *GameEntryUpdate) SetUniversity(u *University) *GameEntryUpdate {
	return geu.SetUniversityID(u.ID)
}

// Mutation returns the GameEntryMutation object of the builder.
func (geu *GameEntryUpdate) Mutation() *GameEntryMutation {
	return geu.mutation
}

// ClearGame clears the "game" edge to the DailyGame entity.
func (geu *GameEntryUpdate) ClearGame() *GameEntryUpdate {
	geu.mutation.ClearGame()
	return geu
}

// ClearUniversity clears the "university" edge to the University entity.
func (geu *GameEntryUpdate) ClearUniversity() *GameEntryUpdate {
	geu.mutation.ClearUniversity()
	return geu
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (geu *GameEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, geu.sqlSave, geu.mutation, geu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (geu *GameEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := geu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (geu *GameEntryUpdate) Exec(ctx context.Context) error {
	_, err := geu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (geu *GameEntryUpdate) ExecX(ctx context.Context) {
	if err := geu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (geu *GameEntryUpdate) check() error {
	if v, ok := geu.mutation.Position(); ok {
		if err := gameentry.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "GameEntry.position": %w`, err)}
		}
	}
	if geu.mutation.GameCleared() && len(geu.mutation.GameIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GameEntry.game"`)
	}
	if geu.mutation.UniversityCleared() && len(geu.mutation.UniversityIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GameEntry.university"`)
	}
	return nil
}

func (geu *GameEntryUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := geu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(gameentry.Table, gameentry.Columns, sqlgraph.NewFieldSpec(gameentry.FieldID, field.TypeInt))
	if ps := geu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := geu.mutation.Position(); ok {
		_spec.SetField(gameentry.FieldPosition, field.TypeInt, value)
	}
	if value, ok := geu.mutation.AddedPosition(); ok {
		_spec.AddField(gameentry.FieldPosition, field.TypeInt, value)
	}
	if geu.mutation.GameCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   gameentry.GameTable,
			Columns: []string{gameentry.GameColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dailygame.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := geu.mutation.GameIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   gameentry.GameTable,
			Columns: []string{gameentry.GameColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dailygame.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if geu.mutation.UniversityCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   gameentry.UniversityTable,
			Columns: []string{gameentry.UniversityColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(university.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := geu.mutation.UniversityIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   gameentry.UniversityTable,
			Columns: []string{gameentry.UniversityColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(university.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, geu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gameentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	geu.mutation.done = true
	return n, nil
}

// GameEntryUpdateOne is the builder for updating a single GameEntry entity.
type GameEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GameEntryMutation
}

// SetPosition sets the "position" field.
func (geuo *GameEntryUpdateOne) SetPosition(i int) *GameEntryUpdateOne {
	geuo.mutation.ResetPosition()
	geuo.mutation.SetPosition(i)
	return geuo
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (geuo *GameEntryUpdateOne) SetNillablePosition(i *int) *GameEntryUpdateOne {
	if i != nil {
		geuo.SetPosition(*i)
	}
	return geuo
}

// AddPosition adds i to the "position" field.
func (geuo *GameEntryUpdateOne) AddPosition(i int) *GameEntryUpdateOne {
	geuo.mutation.AddPosition(i)
	return geuo
}

// SetGameID sets the "game" edge to the DailyGame entity by ID.
func (geuo *GameEntryUpdateOne) SetGameID(id uuid.UUID) *GameEntryUpdateOne {
	geuo.mutation.SetGameID(id)
	return geuo
}

// SetGame sets the "game" edge to the DailyGame entity.
func (geuo *GameEntryUpdateOne) SetGame(d *DailyGame) *GameEntryUpdateOne {
	return geuo.SetGameID(d.ID)
}

// SetUniversityID sets the "university" edge to the University entity by ID.
func (geuo *GameEntryUpdateOne) SetUniversityID(id uuid.UUID) *GameEntryUpdateOne {
	geuo.mutation.SetUniversityID(id)
	return geuo
}

// SetUniversity sets the "university" edge to the University entity.
func (geuo *GameEntryUpdateOne) SetUniversity(u *University) *GameEntryUpdateOne {
	return geuo.SetUniversityID(u.ID)
}

// Mutation returns the GameEntryMutation object of the builder.
func (geuo *GameEntryUpdateOne) Mutation() *GameEntryMutation {
	return geuo.mutation
}

// ClearGame clears the "game" edge to the DailyGame entity.
func (geuo *GameEntryUpdateOne) ClearGame() *GameEntryUpdateOne {
	geuo.mutation.ClearGame()
	return geuo
}

// ClearUniversity clears the "university" edge to the University entity.
func (geuo *GameEntryUpdateOne) ClearUniversity() *GameEntryUpdateOne {
	geuo.mutation.ClearUniversity()
	return geuo
}

// Where appends a list predicates to the GameEntryUpdate builder.
func (geuo *GameEntryUpdateOne) Where(ps ...predicate.GameEntry) *GameEntryUpdateOne {
	geuo.mutation.Where(ps...)
	return geuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (geuo *GameEntryUpdateOne) Select(field string, fields ...string) *GameEntryUpdateOne {
	geuo.fields = append([]string{field}, fields...)
	return geuo
}

// Save executes the query and returns the updated GameEntry entity.
func (geuo *GameEntryUpdateOne) Save(ctx context.Context) (*GameEntry, error) {
	return withHooks(ctx, geuo.sqlSave, geuo.mutation, geuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (geuo *GameEntryUpdateOne) SaveX(ctx context.Context) *GameEntry {
	node, err := geuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (geuo *GameEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := geuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (geuo *GameEntryUpdateOne) ExecX(ctx context.Context) {
	if err := geuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (geuo *GameEntryUpdateOne) check() error {
	if v, ok := geuo.mutation.Position(); ok {
		if err := gameentry.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "GameEntry.position": %w`, err)}
		}
	}
	if geuo.mutation.GameCleared() && len(geuo.mutation.GameIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GameEntry.game"`)
	}
	if geuo.mutation.UniversityCleared() && len(geuo.mutation.UniversityIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "GameEntry.university"`)
	}
	return nil
}

func (geuo *GameEntryUpdateOne) sqlSave(ctx context.Context) (_node *GameEntry, err error) {
	if err := geuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gameentry.Table, gameentry.Columns, sqlgraph.NewFieldSpec(gameentry.FieldID, field.TypeInt))
	id, ok := geuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GameEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := geuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, gameentry.FieldID)
		for _, f := range fields {
			if !gameentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != gameentry.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := geuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := geuo.mutation.Position(); ok {
		_spec.SetField(gameentry.FieldPosition, field.TypeInt, value)
	}
	if value, ok := geuo.mutation.AddedPosition(); ok {
		_spec.AddField(gameentry.FieldPosition, field.TypeInt, value)
	}
	if geuo.mutation.GameCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   gameentry.GameTable,
			Columns: []string{gameentry.GameColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dailygame.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := geuo.mutation.GameIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   gameentry.GameTable,
			Columns: []string{gameentry.GameColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dailygame.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if geuo.mutation.UniversityCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   gameentry.UniversityTable,
			Columns: []string{gameentry.UniversityColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(university.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := geuo.mutation.UniversityIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   gameentry.UniversityTable,
			Columns: []string{gameentry.UniversityColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(university.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &GameEntry{config: geuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, geuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gameentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	geuo.mutation.done = true
	return _node, nil
}
