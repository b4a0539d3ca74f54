// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/gseier/UniRankle/ent/dailygame"
	"github.com/gseier/UniRankle/ent/gameentry"
	"github.com/gseier/UniRankle/ent/university"
)

// GameEntryCreate is the builder for creating a GameEntry entity.
type GameEntryCreate struct {
	config
	mutation *GameEntryMutation
	hooks    []Hook
}

// SetPosition sets the "position" field.
func (gec *GameEntryCreate) SetPosition(i int) *GameEntryCreate {
	gec.mutation.SetPosition(i)
	return gec
}

// SetGameID sets the "game" edge to the DailyGame entity by ID.
func (gec *GameEntryCreate) SetGameID(id uuid.UUID) *GameEntryCreate {
	gec.mutation.SetGameID(id)
	return gec
}

// SetGame sets the "game" edge to the DailyGame entity.
func (gec *GameEntryCreate) SetGame(d *DailyGame) *GameEntryCreate {
	return gec.SetGameID(d.ID)
}

// SetUniversityID sets the "university" edge to the University entity by ID.
func (gec *GameEntryCreate) SetUniversityID(id uuid.UUID) *GameEntryCreate {
	gec.mutation.SetUniversityID(id)
	return gec
}

// SetUniversity sets the "university" edge to the University entity.
func (gec *GameEntryCreate) SetUniversity(u *University) *GameEntryCreate {
	return gec.SetUniversityID(u.ID)
}

// Mutation returns the GameEntryMutation object of the builder.
func (gec *GameEntryCreate) Mutation() *GameEntryMutation {
	return gec.mutation
}

// Save creates the GameEntry in the database.
func (gec *GameEntryCreate) Save(ctx context.Context) (*GameEntry, error) {
	return withHooks(ctx, gec.sqlSave, gec.mutation, gec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (gec *GameEntryCreate) SaveX(ctx context.Context) *GameEntry {
	v, err := gec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (gec *GameEntryCreate) Exec(ctx context.Context) error {
	_, err := gec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (gec *GameEntryCreate) ExecX(ctx context.Context) {
	if err := gec.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (gec *GameEntryCreate) check() error {
	if _, ok := gec.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "GameEntry.position"`)}
	}
	if v, ok := gec.mutation.Position(); ok {
		if err := gameentry.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "GameEntry.position": %w`, err)}
		}
	}
	if len(gec.mutation.GameIDs()) == 0 {
		return &ValidationError{Name: "game", err: errors.New(`ent: missing required edge "GameEntry.game"`)}
	}
	if len(gec.mutation.UniversityIDs()) == 0 {
		return &ValidationError{Name: "university", err: errors.New(`ent: missing required edge "GameEntry.university"`)}
	}
	return nil
}

func (gec *GameEntryCreate) sqlSave(ctx context.Context) (*GameEntry, error) {
	if err := gec.check(); err != nil {
		return nil, err
	}
	_node, _spec := gec.createSpec()
	if err := sqlgraph.CreateNode(ctx, gec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	gec.mutation.id = &_node.ID
	gec.mutation.done = true
	return _node, nil
}

func (gec *GameEntryCreate) createSpec() (*GameEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &GameEntry{config: gec.config}
		_spec = sqlgraph.NewCreateSpec(gameentry.Table, sqlgraph.NewFieldSpec(gameentry.FieldID, field.TypeInt))
	)
	if value, ok := gec.mutation.Position(); ok {
		_spec.SetField(gameentry.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if nodes := gec.mutation.GameIDs(); len(nodes) > 0 {
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
		_node.daily_game_entries = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := gec.mutation.UniversityIDs(); len(nodes) > 0 {
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
		_node.university_entries = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// GameEntryCreateBulk is the builder for creating many GameEntry entities in bulk.
type GameEntryCreateBulk struct {
	config
	err      error
	builders []*GameEntryCreate
}

// Save creates the GameEntry entities in the database.
func (gecb *GameEntryCreateBulk) Save(ctx context.Context) ([]*GameEntry, error) {
	if gecb.err != nil {
		return nil, gecb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(gecb.builders))
	nodes := make([]*GameEntry, len(gecb.builders))
	mutators := make([]Mutator, len(gecb.builders))
	for i := range gecb.builders {
		func(i int, root context.Context) {
			builder := gecb.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GameEntryMutation)
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
					_, err = mutators[i+1].Mutate(root, gecb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, gecb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
		if _, err := mutators[0].Mutate(ctx, gecb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (gecb *GameEntryCreateBulk) SaveX(ctx context.Context) []*GameEntry {
	v, err := gecb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (gecb *GameEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := gecb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (gecb *GameEntryCreateBulk) ExecX(ctx context.Context) {
	if err := gecb.Exec(ctx); err != nil {
		panic(err)
	}
}
