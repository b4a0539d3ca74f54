// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/gseier/UniRankle/ent/gameentry"
	"github.com/gseier/UniRankle/ent/university"
)

// UniversityCreate is the builder for creating a University entity.
type UniversityCreate struct {
	config
	mutation *UniversityMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (uc *UniversityCreate) SetName(s string) *UniversityCreate {
	uc.mutation.SetName(s)
	return uc
}

// SetCountry sets the "country" field.
func (uc *UniversityCreate) SetCountry(s string) *UniversityCreate {
	uc.mutation.SetCountry(s)
	return uc
}

// SetImageURL sets the "image_url" field.
func (uc *UniversityCreate) SetImageURL(s string) *UniversityCreate {
	uc.mutation.SetImageURL(s)
	return uc
}

// SetNillableImageURL sets the "image_url" field if the given value is not nil.
func (uc *UniversityCreate) SetNillableImageURL(s *string) *UniversityCreate {
	if s != nil {
		uc.SetImageURL(*s)
	}
	return uc
}

// SetRanking sets the "ranking" field.
func (uc *UniversityCreate) SetRanking(i int) *UniversityCreate {
	uc.mutation.SetRanking(i)
	return uc
}

// SetStudentCount sets the "student_count" field.
func (uc *UniversityCreate) SetStudentCount(i int) *UniversityCreate {
	uc.mutation.SetStudentCount(i)
	return uc
}

// SetFoundedYear sets the "founded_year" field.
func (uc *UniversityCreate) SetFoundedYear(i int) *UniversityCreate {
	uc.mutation.SetFoundedYear(i)
	return uc
}

// SetCampusArea sets the "campus_area" field.
func (uc *UniversityCreate) SetCampusArea(f float64) *UniversityCreate {
	uc.mutation.SetCampusArea(f)
	return uc
}

// SetID sets the "id" field.
func (uc *UniversityCreate) SetID(u uuid.UUID) *UniversityCreate {
	uc.mutation.SetID(u)
	return uc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (uc *UniversityCreate) SetNillableID(u *uuid.UUID) *UniversityCreate {
	if u != nil {
		uc.SetID(*u)
	}
	return uc
}

// AddEntryIDs adds the "entries" edge to the GameEntry entity by IDs.
func (uc *UniversityCreate) AddEntryIDs(ids ...int) *UniversityCreate {
	uc.mutation.AddEntryIDs(ids...)
	return uc
}

// AddEntries adds the "entries" edges to the GameEntry entity.
func (uc *UniversityCreate) AddEntries(g ...*GameEntry) *UniversityCreate {
	ids := make([]int, len(g))
	for i := range g {
		ids[i] = g[i].ID
	}
	return uc.AddEntryIDs(ids...)
}

// Mutation returns the UniversityMutation object of the builder.
func (uc *UniversityCreate) Mutation() *UniversityMutation {
	return uc.mutation
}

// Save creates the University in the database.
func (uc *UniversityCreate) Save(ctx context.Context) (*University, error) {
	uc.defaults()
	return withHooks(ctx, uc.sqlSave, uc.mutation, uc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (uc *UniversityCreate) SaveX(ctx context.Context) *University {
	v, err := uc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (uc *UniversityCreate) Exec(ctx context.Context) error {
	_, err := uc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (uc *UniversityCreate) ExecX(ctx context.Context) {
	if err := uc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (uc *UniversityCreate) defaults() {
	if _, ok := uc.mutation.ID(); !ok {
		v := university.DefaultID()
		uc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (uc *UniversityCreate) check() error {
	if _, ok := uc.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "University.name"`)}
	}
	if v, ok := uc.mutation.Name(); ok {
		if err := university.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "University.name": %w`, err)}
		}
	}
	if _, ok := uc.mutation.Country(); !ok {
		return &ValidationError{Name: "country", err: errors.New(`ent: missing required field "University.country"`)}
	}
	if v, ok := uc.mutation.Country(); ok {
		if err := university.CountryValidator(v); err != nil {
			return &ValidationError{Name: "country", err: fmt.Errorf(`ent: validator failed for field "University.country": %w`, err)}
		}
	}
	if _, ok := uc.mutation.Ranking(); !ok {
		return &ValidationError{Name: "ranking", err: errors.New(`ent: missing required field "University.ranking"`)}
	}
	if v, ok := uc.mutation.Ranking(); ok {
		if err := university.RankingValidator(v); err != nil {
			return &ValidationError{Name: "ranking", err: fmt.Errorf(`ent: validator failed for field "University.ranking": %w`, err)}
		}
	}
	if _, ok := uc.mutation.StudentCount(); !ok {
		return &ValidationError{Name: "student_count", err: errors.New(`ent: missing required field "University.student_count"`)}
	}
	if v, ok := uc.mutation.StudentCount(); ok {
		if err := university.StudentCountValidator(v); err != nil {
			return &ValidationError{Name: "student_count", err: fmt.Errorf(`ent: validator failed for field "University.student_count": %w`, err)}
		}
	}
	if _, ok := uc.mutation.FoundedYear(); !ok {
		return &ValidationError{Name: "founded_year", err: errors.New(`ent: missing required field "University.founded_year"`)}
	}
	if v, ok := uc.mutation.FoundedYear(); ok {
		if err := university.FoundedYearValidator(v); err != nil {
			return &ValidationError{Name: "founded_year", err: fmt.Errorf(`ent: validator failed for field "University.founded_year": %w`, err)}
		}
	}
	if _, ok := uc.mutation.CampusArea(); !ok {
		return &ValidationError{Name: "campus_area", err: errors.New(`ent: missing required field "University.campus_area"`)}
	}
	if v, ok := uc.mutation.CampusArea(); ok {
		if err := university.CampusAreaValidator(v); err != nil {
			return &ValidationError{Name: "campus_area", err: fmt.Errorf(`ent: validator failed for field "University.campus_area": %w`, err)}
		}
	}
	return nil
}

func (uc *UniversityCreate) sqlSave(ctx context.Context) (*University, error) {
	if err := uc.check(); err != nil {
		return nil, err
	}
	_node, _spec := uc.createSpec()
	if err := sqlgraph.CreateNode(ctx, uc.driver, _spec); err != nil {
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
	uc.mutation.id = &_node.ID
	uc.mutation.done = true
	return _node, nil
}

func (uc *UniversityCreate) createSpec() (*University, *sqlgraph.CreateSpec) {
	var (
		_node = &University{config: uc.config}
		_spec = sqlgraph.NewCreateSpec(university.Table, sqlgraph.NewFieldSpec(university.FieldID, field.TypeUUID))
	)
	if id, ok := uc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := uc.mutation.Name(); ok {
		_spec.SetField(university.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := uc.mutation.Country(); ok {
		_spec.SetField(university.FieldCountry, field.TypeString, value)
		_node.Country = value
	}
	if value, ok := uc.mutation.ImageURL(); ok {
		_spec.SetField(university.FieldImageURL, field.TypeString, value)
		_node.ImageURL = value
	}
	if value, ok := uc.mutation.Ranking(); ok {
		_spec.SetField(university.FieldRanking, field.TypeInt, value)
		_node.Ranking = value
	}
	if value, ok := uc.mutation.StudentCount(); ok {
		_spec.SetField(university.FieldStudentCount, field.TypeInt, value)
		_node.StudentCount = value
	}
	if value, ok := uc.mutation.FoundedYear(); ok {
		_spec.SetField(university.FieldFoundedYear, field.TypeInt, value)
		_node.FoundedYear = value
	}
	if value, ok := uc.mutation.CampusArea(); ok {
		_spec.SetField(university.FieldCampusArea, field.TypeFloat64, value)
		_node.CampusArea = value
	}
	if nodes := uc.mutation.EntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   university.EntriesTable,
			Columns: []string{university.EntriesColumn},
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
	return _node, _spec
}

// UniversityCreateBulk is the builder for creating many University entities in bulk.
type UniversityCreateBulk struct {
	config
	err      error
	builders []*UniversityCreate
}

// Save creates the University entities in the database.
func (ucb *UniversityCreateBulk) Save(ctx context.Context) ([]*University, error) {
	if ucb.err != nil {
		return nil, ucb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(ucb.builders))
	nodes := make([]*University, len(ucb.builders))
	mutators := make([]Mutator, len(ucb.builders))
	for i := range ucb.builders {
		func(i int, root context.Context) {
			builder := ucb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UniversityMutation)
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
					_, err = mutators[i+1].Mutate(root, ucb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, ucb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, ucb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (ucb *UniversityCreateBulk) SaveX(ctx context.Context) []*University {
	v, err := ucb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ucb *UniversityCreateBulk) Exec(ctx context.Context) error {
	_, err := ucb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ucb *UniversityCreateBulk) ExecX(ctx context.Context) {
	if err := ucb.Exec(ctx); err != nil {
		panic(err)
	}
}
