// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gseier/UniRankle/ent/gameentry"
	"github.com/gseier/UniRankle/ent/predicate"
)

// GameEntryDelete is the builder for deleting a GameEntry entity.
type GameEntryDelete struct {
	config
	hooks    []Hook
	mutation *GameEntryMutation
}

// Where appends a list predicates to the GameEntryDelete builder.
func (ged *GameEntryDelete) Where(ps ...predicate.GameEntry) *GameEntryDelete {
	ged.mutation.Where(ps...)
	return ged
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (ged *GameEntryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, ged.sqlExec, ged.mutation, ged.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (ged *GameEntryDelete) ExecX(ctx context.Context) int {
	n, err := ged.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (ged *GameEntryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(gameentry.Table, sqlgraph.NewFieldSpec(gameentry.FieldID, field.TypeInt))
	if ps := ged.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, ged.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	ged.mutation.done = true
	return affected, err
}

// GameEntryDeleteOne is the builder for deleting a single GameEntry entity.
type GameEntryDeleteOne struct {
	ged *GameEntryDelete
}

// Where appends a list predicates to the GameEntryDelete builder.
func (gedo *GameEntryDeleteOne) Where(ps ...predicate.GameEntry) *GameEntryDeleteOne {
	gedo.ged.mutation.Where(ps...)
	return gedo
}

// Exec executes the deletion query.
func (gedo *GameEntryDeleteOne) Exec(ctx context.Context) error {
	n, err := gedo.ged.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{gameentry.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (gedo *GameEntryDeleteOne) ExecX(ctx context.Context) {
	if err := gedo.Exec(ctx); err != nil {
		panic(err)
	}
}
