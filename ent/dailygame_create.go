// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/gseier/UniRankle/ent/dailygame"
	"github.com/gseier/UniRankle/ent/gameentry"
	"github.com/gseier/UniRankle/ent/submission"
)

// DailyGameCreate is the builder for creating a DailyGame entity.
type DailyGameCreate struct {
	config
	mutation *DailyGameMutation
	hooks    []Hook
}

// SetDateKey sets the "date_key" field.
func (dgc *DailyGameCreate) SetDateKey(s string) *DailyGameCreate {
	dgc.mutation.SetDateKey(s)
	return dgc
}

// SetRankingBy sets the "ranking_by" field.
func (dgc *DailyGameCreate) SetRankingBy(db dailygame.RankingBy) *DailyGameCreate {
	dgc.mutation.SetRankingBy(db)
	return dgc
}

// SetCreatedAt sets the "created_at" field.
func (dgc *DailyGameCreate) SetCreatedAt(t time.Time) *DailyGameCreate {
	dgc.mutation.SetCreatedAt(t)
	return dgc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (dgc *DailyGameCreate) SetNillableCreatedAt(t *time.Time) *DailyGameCreate {
	if t != nil {
		dgc.SetCreatedAt(*t)
	}
	return dgc
}

// SetID sets the "id" field.
func (dgc *DailyGameCreate) SetID(u uuid.UUID) *DailyGameCreate {
	dgc.mutation.SetID(u)
	return dgc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (dgc *DailyGameCreate) SetNillableID(u *uuid.UUID) *DailyGameCreate {
	if u != nil {
		dgc.SetID(*u)
	}
	return dgc
}

// AddEntryIDs adds the "entries" edge to the GameEntry entity by IDs.
func (dgc *DailyGameCreate) AddEntryIDs(ids ...int) *DailyGameCreate {
	dgc.mutation.AddEntryIDs(ids...)
	return dgc
}

// AddEntries adds the "entries" edges to the GameEntry entity.
func (dgc *DailyGameCreate) AddEntries(g ...*GameEntry) *DailyGameCreate {
	ids := make([]int, len(g))
	for i := range g {
		ids[i] = g[i].ID
	}
	return dgc.AddEntryIDs(ids...)
}

// AddSubmissionIDs adds the "submissions" edge to the Submission entity by IDs.
func (dgc *DailyGameCreate) AddSubmissionIDs(ids ...int) *DailyGameCreate {
	dgc.mutation.AddSubmissionIDs(ids...)
	return dgc
}

// AddSubmissions adds the "submissions" edges to the Submission entity.
func (dgc *DailyGameCreate) AddSubmissions(s ...*Submission) *DailyGameCreate {
	ids := make([]int, len(s))
	for i := range s {
		ids[i] = s[i].ID
	}
	return dgc.AddSubmissionIDs(ids...)
}

// Mutation returns the DailyGameMutation object of the builder.
func (dgc *DailyGameCreate) Mutation() *DailyGameMutation {
	return dgc.mutation
}

// Save creates the DailyGame in the database.
func (dgc *DailyGameCreate) Save(ctx context.Context) (*DailyGame, error) {
	dgc.defaults()
	return withHooks(ctx, dgc.sqlSave, dgc.mutation, dgc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (dgc *DailyGameCreate) SaveX(ctx context.Context) *DailyGame {
	v, err := dgc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (dgc *DailyGameCreate) Exec(ctx context.Context) error {
	_, err := dgc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (dgc *DailyGameCreate) ExecX(ctx context.Context) {
	if err := dgc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (dgc *DailyGameCreate) defaults() {
	if _, ok := dgc.mutation.CreatedAt(); !ok {
		v := dailygame.DefaultCreatedAt()
		dgc.mutation.SetCreatedAt(v)
	}
	if _, ok := dgc.mutation.ID(); !ok {
		v := dailygame.DefaultID()
		dgc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (dgc *DailyGameCreate) check() error {
	if _, ok := dgc.mutation.DateKey(); !ok {
		return &ValidationError{Name: "date_key", err: errors.New(`ent: missing required field "DailyGame.date_key"`)}
	}
	if v, ok := dgc.mutation.DateKey(); ok {
		if err := dailygame.DateKeyValidator(v); err != nil {
			return &ValidationError{Name: "date_key", err: fmt.Errorf(`ent: validator failed for field "DailyGame.date_key": %w`, err)}
		}
	}
	if _, ok := dgc.mutation.RankingBy(); !ok {
		return &ValidationError{Name: "ranking_by", err: errors.New(`ent: missing required field "DailyGame.ranking_by"`)}
	}
	if v, ok := dgc.mutation.RankingBy(); ok {
		if err := dailygame.RankingByValidator(v); err != nil {
			return &ValidationError{Name: "ranking_by", err: fmt.Errorf(`ent: validator failed for field "DailyGame.ranking_by": %w`, err)}
		}
	}
	if _, ok := dgc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DailyGame.created_at"`)}
	}
	return nil
}

func (dgc *DailyGameCreate) sqlSave(ctx context.Context) (*DailyGame, error) {
	if err := dgc.check(); err != nil {
		return nil, err
	}
	_node, _spec := dgc.createSpec()
	if err := sqlgraph.CreateNode(ctx, dgc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	dgc.mutation.id = &_node.ID
	dgc.mutation.done = true
	return _node, nil
}

func (dgc *DailyGameCreate) createSpec() (*DailyGame, *sqlgraph.CreateSpec) {
	var (
		_node = &DailyGame{config: dgc.config}
		_spec = sqlgraph.NewCreateSpec(dailygame.Table, sqlgraph.NewFieldSpec(dailygame.FieldID, field.TypeUUID))
	)
	if id, ok := dgc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := dgc.mutation.DateKey(); ok {
		_spec.SetField(dailygame.FieldDateKey, field.TypeString, value)
		_node.DateKey = value
	}
	if value, ok := dgc.mutation.RankingBy(); ok {
		_spec.SetField(dailygame.FieldRankingBy, field.TypeEnum, value)
		_node.RankingBy = value
	}
	if value, ok := dgc.mutation.CreatedAt(); ok {
		_spec.SetField(dailygame.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := dgc.mutation.EntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := dgc.mutation.SubmissionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DailyGameCreateBulk is the builder for creating many DailyGame entities in bulk.
type DailyGameCreateBulk struct {
	config
	err      error
	builders []*DailyGameCreate
}

// Save creates the DailyGame entities in the database.
func (dgcb *DailyGameCreateBulk) Save(ctx context.Context) ([]*DailyGame, error) {
	if dgcb.err != nil {
		return nil, dgcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(dgcb.builders))
	nodes := make([]*DailyGame, len(dgcb.builders))
	mutators := make([]Mutator, len(dgcb.builders))
	for i := range dgcb.builders {
		func(i int, root context.Context) {
			builder := dgcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DailyGameMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, dgcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, dgcb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, dgcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (dgcb *DailyGameCreateBulk) SaveX(ctx context.Context) []*DailyGame {
	v, err := dgcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (dgcb *DailyGameCreateBulk) Exec(ctx context.Context) error {
	_, err := dgcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (dgcb *DailyGameCreateBulk) ExecX(ctx context.Context) {
	if err := dgcb.Exec(ctx); err != nil {
		panic(err)
	}
}
