// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gseier/UniRankle/ent/dailygame"
	"github.com/gseier/UniRankle/ent/predicate"
)

// DailyGameDelete is the builder for deleting a DailyGame entity.
type DailyGameDelete struct {
	config
	hooks    []Hook
	mutation *DailyGameMutation
}

// Where appends a list predicates to the DailyGameDelete builder.
func (dgd *DailyGameDelete) Where(ps ...predicate.DailyGame) *DailyGameDelete {
	dgd.mutation.Where(ps...)
	return dgd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (dgd *DailyGameDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, dgd.sqlExec, dgd.mutation, dgd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (dgd *DailyGameDelete) ExecX(ctx context.Context) int {
	n, err := dgd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (dgd *DailyGameDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(dailygame.Table, sqlgraph.NewFieldSpec(dailygame.FieldID, field.TypeUUID))
	if ps := dgd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, dgd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	dgd.mutation.done = true
	return affected, err
}

// DailyGameDeleteOne is the builder for deleting a single DailyGame entity.
type DailyGameDeleteOne struct {
	dgd *DailyGameDelete
}

// Where appends a list predicates to the DailyGameDelete builder.
func (dgdo *DailyGameDeleteOne) Where(ps ...predicate.DailyGame) *DailyGameDeleteOne {
	dgdo.dgd.mutation.Where(ps...)
	return dgdo
}

// Exec executes the deletion query.
func (dgdo *DailyGameDeleteOne) Exec(ctx context.Context) error {
	n, err := dgdo.dgd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{dailygame.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (dgdo *DailyGameDeleteOne) ExecX(ctx context.Context) {
	if err := dgdo.Exec(ctx); err != nil {
		panic(err)
	}
}
