// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/gseier/UniRankle/ent/gameentry"
	"github.com/gseier/UniRankle/ent/predicate"
	"github.com/gseier/UniRankle/ent/university"
)

// UniversityUpdate is the builder for updating University entities.
type UniversityUpdate struct {
	config
	hooks    []Hook
	mutation *UniversityMutation
}

// Where appends a list predicates to the UniversityUpdate builder.
func (uu *UniversityUpdate) Where(ps ...predicate.University) *UniversityUpdate {
	uu.mutation.Where(ps...)
	return uu
}

// SetName sets the "name" field.
func (uu *UniversityUpdate) SetName(s string) *UniversityUpdate {
	uu.mutation.SetName(s)
	return uu
}

// SetNillableName sets the "name" field if the given value is not nil.
func (uu *UniversityUpdate) SetNillableName(s *string) *UniversityUpdate {
	if s != nil {
		uu.SetName(*s)
	}
	return uu
}

// SetCountry sets the "country" field.
func (uu *UniversityUpdate) SetCountry(s string) *UniversityUpdate {
	uu.mutation.SetCountry(s)
	return uu
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (uu *UniversityUpdate) SetNillableCountry(s *string) *UniversityUpdate {
	if s != nil {
		uu.SetCountry(*s)
	}
	return uu
}

// SetImageURL sets the "image_url" field.
func (uu *UniversityUpdate) SetImageURL(s string) *UniversityUpdate {
	uu.mutation.SetImageURL(s)
	return uu
}

// SetNillableImageURL sets the "image_url" field if the given value is not nil.
func (uu *UniversityUpdate) SetNillableImageURL(s *string) *UniversityUpdate {
	if s != nil {
		uu.SetImageURL(*s)
	}
	return uu
}

// ClearImageURL clears the value of the "image_url" field.
func (uu *UniversityUpdate) ClearImageURL() *UniversityUpdate {
	uu.mutation.ClearImageURL()
	return uu
}

// SetRanking sets the "ranking" field.
func (uu *UniversityUpdate) SetRanking(i int) *UniversityUpdate {
	uu.mutation.ResetRanking()
	uu.mutation.SetRanking(i)
	return uu
}

// SetNillableRanking sets the "ranking" field if the given value is not nil.
func (uu *UniversityUpdate) SetNillableRanking(i *int) *UniversityUpdate {
	if i != nil {
		uu.SetRanking(*i)
	}
	return uu
}

// AddRanking adds i to the "ranking" field.
func (uu *UniversityUpdate) AddRanking(i int) *UniversityUpdate {
	uu.mutation.AddRanking(i)
	return uu
}

// SetStudentCount sets the "student_count" field.
func (uu *UniversityUpdate) SetStudentCount(i int) *UniversityUpdate {
	uu.mutation.ResetStudentCount()
	uu.mutation.SetStudentCount(i)
	return uu
}

// SetNillableStudentCount sets the "student_count" field if the given value is not nil.
func (uu *UniversityUpdate) SetNillableStudentCount(i *int) *UniversityUpdate {
	if i != nil {
		uu.SetStudentCount(*i)
	}
	return uu
}

// AddStudentCount adds i to the "student_count" field.
func (uu *UniversityUpdate) AddStudentCount(i int) *UniversityUpdate {
	uu.mutation.AddStudentCount(i)
	return uu
}

// SetFoundedYear sets the "founded_year" field.
func (uu *UniversityUpdate) SetFoundedYear(i int) *UniversityUpdate {
	uu.mutation.ResetFoundedYear()
	uu.mutation.SetFoundedYear(i)
	return uu
}

// SetNillableFoundedYear sets the "founded_year" field if the given value is not nil.
func (uu *UniversityUpdate) SetNillableFoundedYear(i *int) *UniversityUpdate {
	if i != nil {
		uu.SetFoundedYear(*i)
	}
	return uu
}

// AddFoundedYear adds i to the "founded_year" field.
func (uu *UniversityUpdate) AddFoundedYear(i int) *UniversityUpdate {
	uu.mutation.AddFoundedYear(i)
	return uu
}

// SetCampusArea sets the "campus_area" field.
func (uu *UniversityUpdate) SetCampusArea(f float64) *UniversityUpdate {
	uu.mutation.ResetCampusArea()
	uu.mutation.SetCampusArea(f)
	return uu
}

// SetNillableCampusArea sets the "campus_area" field if the given value is not nil.
func (uu *UniversityUpdate) SetNillableCampusArea(f *float64) *UniversityUpdate {
	if f != nil {
		uu.SetCampusArea(*f)
	}
	return uu
}

// AddCampusArea adds f to the "campus_area" field.
func (uu *UniversityUpdate) AddCampusArea(f float64) *UniversityUpdate {
	uu.mutation.AddCampusArea(f)
	return uu
}

// AddEntryIDs adds the "entries" edge to the GameEntry entity by IDs.
func (uu *UniversityUpdate) AddEntryIDs(ids ...int) *UniversityUpdate {
	uu.mutation.AddEntryIDs(ids...)
	return uu
}

// AddEntries adds the "entries" edges to the GameEntry entity.
func (uu *UniversityUpdate) AddEntries(g ...*GameEntry) *UniversityUpdate {
	ids := make([]int, len(g))
	for i := range g {
		ids[i] = g[i].ID
	}
	return uu.AddEntryIDs(ids...)
}

// Mutation returns the UniversityMutation object of the builder.
func (uu *UniversityUpdate) Mutation() *UniversityMutation {
	return uu.mutation
}

// ClearEntries clears all "entries" edges to the GameEntry entity.
func (uu *UniversityUpdate) ClearEntries() *UniversityUpdate {
	uu.mutation.ClearEntries()
	return uu
}

// RemoveEntryIDs removes the "entries" edge to GameEntry entities by IDs.
func (uu *UniversityUpdate) RemoveEntryIDs(ids ...int) *UniversityUpdate {
	uu.mutation.RemoveEntryIDs(ids...)
	return uu
}

// RemoveEntries removes "entries" edges to GameEntry entities.
func (uu *UniversityUpdate) RemoveEntries(g ...*GameEntry) *UniversityUpdate {
	ids := make([]int, len(g))
	for i := range g {
		ids[i] = g[i].ID
	}
	return uu.RemoveEntryIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (uu *UniversityUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, uu.sqlSave, uu.mutation, uu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (uu *UniversityUpdate) SaveX(ctx context.Context) int {
	affected, err := uu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (uu *UniversityUpdate) Exec(ctx context.Context) error {
	_, err := uu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (uu *UniversityUpdate) ExecX(ctx context.Context) {
	if err := uu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (uu *UniversityUpdate) check() error {
	if v, ok := uu.mutation.Name(); ok {
		if err := university.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "University.name": %w`, err)}
		}
	}
	if v, ok := uu.mutation.Country(); ok {
		if err := university.CountryValidator(v); err != nil {
			return &ValidationError{Name: "country", err: fmt.Errorf(`ent: validator failed for field "University.country": %w`, err)}
		}
	}
	if v, ok := uu.mutation.Ranking(); ok {
		if err := university.RankingValidator(v); err != nil {
			return &ValidationError{Name: "ranking", err: fmt.Errorf(`ent: validator failed for field "University.ranking": %w`, err)}
		}
	}
	if v, ok := uu.mutation.StudentCount(); ok {
		if err := university.StudentCountValidator(v); err != nil {
			return &ValidationError{Name: "student_count", err: fmt.Errorf(`ent: validator failed for field "University.student_count": %w`, err)}
		}
	}
	if v, ok := uu.mutation.FoundedYear(); ok {
		if err := university.FoundedYearValidator(v); err != nil {
			return &ValidationError{Name: "founded_year", err: fmt.Errorf(`ent: validator failed for field "University.founded_year": %w`, err)}
		}
	}
	if v, ok := uu.mutation.CampusArea(); ok {
		if err := university.CampusAreaValidator(v); err != nil {
			return &ValidationError{Name: "campus_area", err: fmt.Errorf(`ent: validator failed for field "University.campus_area": %w`, err)}
		}
	}
	return nil
}

func (uu *UniversityUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := uu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(university.Table, university.Columns, sqlgraph.NewFieldSpec(university.FieldID, field.TypeUUID))
	if ps := uu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := uu.mutation.Name(); ok {
		_spec.SetField(university.FieldName, field.TypeString, value)
	}
	if value, ok := uu.mutation.Country(); ok {
		_spec.SetField(university.FieldCountry, field.TypeString, value)
	}
	if value, ok := uu.mutation.ImageURL(); ok {
		_spec.SetField(university.FieldImageURL, field.TypeString, value)
	}
	if uu.mutation.ImageURLCleared() {
		_spec.ClearField(university.FieldImageURL, field.TypeString)
	}
	if value, ok := uu.mutation.Ranking(); ok {
		_spec.SetField(university.FieldRanking, field.TypeInt, value)
	}
	if value, ok := uu.mutation.AddedRanking(); ok {
		_spec.AddField(university.FieldRanking, field.TypeInt, value)
	}
	if value, ok := uu.mutation.StudentCount(); ok {
		_spec.SetField(university.FieldStudentCount, field.TypeInt, value)
	}
	if value, ok := uu.mutation.AddedStudentCount(); ok {
		_spec.AddField(university.FieldStudentCount, field.TypeInt, value)
	}
	if value, ok := uu.mutation.FoundedYear(); ok {
		_spec.SetField(university.FieldFoundedYear, field.TypeInt, value)
	}
	if value, ok := uu.mutation.AddedFoundedYear(); ok {
		_spec.AddField(university.FieldFoundedYear, field.TypeInt, value)
	}
	if value, ok := uu.mutation.CampusArea(); ok {
		_spec.SetField(university.FieldCampusArea, field.TypeFloat64, value)
	}
	if value, ok := uu.mutation.AddedCampusArea(); ok {
		_spec.AddField(university.FieldCampusArea, field.TypeFloat64, value)
	}
	if uu.mutation.EntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := uu.mutation.RemovedEntriesIDs(); len(nodes) > 0 && !uu.mutation.EntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := uu.mutation.EntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, uu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{university.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	uu.mutation.done = true
	return n, nil
}

// UniversityUpdateOne is the builder for updating a single University entity.
type UniversityUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UniversityMutation
}

// SetName sets the "name" field.
func (uuo *UniversityUpdateOne) SetName(s string) *UniversityUpdateOne {
	uuo.mutation.SetName(s)
	return uuo
}

// SetNillableName sets the "name" field if the given value is not nil.
func (uuo *UniversityUpdateOne) SetNillableName(s *string) *UniversityUpdateOne {
	if s != nil {
		uuo.SetName(*s)
	}
	return uuo
}

// SetCountry sets the "country" field.
func (uuo *UniversityUpdateOne) SetCountry(s string) *UniversityUpdateOne {
	uuo.mutation.SetCountry(s)
	return uuo
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (uuo *UniversityUpdateOne) SetNillableCountry(s *string) *UniversityUpdateOne {
	if s != nil {
		uuo.SetCountry(*s)
	}
	return uuo
}

// SetImageURL sets the "image_url" field.
func (uuo *UniversityUpdateOne) SetImageURL(s string) *UniversityUpdateOne {
	uuo.mutation.SetImageURL(s)
	return uuo
}

// SetNillableImageURL sets the "image_url" field if the given value is not nil.
func (uuo *UniversityUpdateOne) SetNillableImageURL(s *string) *UniversityUpdateOne {
	if s != nil {
		uuo.SetImageURL(*s)
	}
	return uuo
}

// ClearImageURL clears the value of the "image_url" field.
func (uuo *UniversityUpdateOne) ClearImageURL() *UniversityUpdateOne {
	uuo.mutation.ClearImageURL()
	return uuo
}

// SetRanking sets the "ranking" field.
func (uuo *UniversityUpdateOne) SetRanking(i int) *UniversityUpdateOne {
	uuo.mutation.ResetRanking()
	uuo.mutation.SetRanking(i)
	return uuo
}

// SetNillableRanking sets the "ranking" field if the given value is not nil.
func (uuo *UniversityUpdateOne) SetNillableRanking(i *int) *UniversityUpdateOne {
	if i != nil {
		uuo.SetRanking(*i)
	}
	return uuo
}

// AddRanking adds i to the "ranking" field.
func (uuo *UniversityUpdateOne) AddRanking(i int) *UniversityUpdateOne {
	uuo.mutation.AddRanking(i)
	return uuo
}

// SetStudentCount sets the "student_count" field.
func (uuo *UniversityUpdateOne) SetStudentCount(i int) *UniversityUpdateOne {
	uuo.mutation.ResetStudentCount()
	uuo.mutation.SetStudentCount(i)
	return uuo
}

// SetNillableStudentCount sets the "student_count" field if the given value is not nil.
func (uuo *UniversityUpdateOne) SetNillableStudentCount(i *int) *UniversityUpdateOne {
	if i != nil {
		uuo.SetStudentCount(*i)
	}
	return uuo
}

// AddStudentCount adds i to the "student_count" field.
func (uuo *UniversityUpdateOne) AddStudentCount(i int) *UniversityUpdateOne {
	uuo.mutation.AddStudentCount(i)
	return uuo
}

// SetFoundedYear sets the "founded_year" field.
func (uuo *UniversityUpdateOne) SetFoundedYear(i int) *UniversityUpdateOne {
	uuo.mutation.ResetFoundedYear()
	uuo.mutation.SetFoundedYear(i)
	return uuo
}

// SetNillableFoundedYear sets the "founded_year" field if the given value is not nil.
func (uuo *UniversityUpdateOne) SetNillableFoundedYear(i *int) *UniversityUpdateOne {
	if i != nil {
		uuo.SetFoundedYear(*i)
	}
	return uuo
}

// AddFoundedYear adds i to the "founded_year" field.
func (uuo *UniversityUpdateOne) AddFoundedYear(i int) *UniversityUpdateOne {
	uuo.mutation.AddFoundedYear(i)
	return uuo
}

// SetCampusArea sets the "campus_area" field.
func (uuo *UniversityUpdateOne) SetCampusArea(f float64) *UniversityUpdateOne {
	uuo.mutation.ResetCampusArea()
	uuo.mutation.SetCampusArea(f)
	return uuo
}

// SetNillableCampusArea sets the "campus_area" field if the given value is not nil.
func (uuo *UniversityUpdateOne) SetNillableCampusArea(f *float64) *UniversityUpdateOne {
	if f != nil {
		uuo.SetCampusArea(*f)
	}
	return uuo
}

// AddCampusArea adds f to the "campus_area" field.
func (uuo *UniversityUpdateOne) AddCampusArea(f float64) *UniversityUpdateOne {
	uuo.mutation.AddCampusArea(f)
	return uuo
}

// AddEntryIDs adds the "entries" edge to the GameEntry entity by IDs.
func (uuo *UniversityUpdateOne) AddEntryIDs(ids ...int) *UniversityUpdateOne {
	uuo.mutation.AddEntryIDs(ids...)
	return uuo
}

// AddEntries adds the "entries" edges to the GameEntry entity.
func (uuo *UniversityUpdateOne) AddEntries(g ...*GameEntry) *UniversityUpdateOne {
	ids := make([]int, len(g))
	for i := range g {
		ids[i] = g[i].ID
	}
	return uuo.AddEntryIDs(ids...)
}

// Mutation returns the UniversityMutation object of the builder.
func (uuo *UniversityUpdateOne) Mutation() *UniversityMutation {
	return uuo.mutation
}

// ClearEntries clears all "entries" edges to the GameEntry entity.
func (uuo *UniversityUpdateOne) ClearEntries() *UniversityUpdateOne {
	uuo.mutation.ClearEntries()
	return uuo
}

// RemoveEntryIDs removes the "entries" edge to GameEntry entities by IDs.
func (uuo *UniversityUpdateOne) RemoveEntryIDs(ids ...int) *UniversityUpdateOne {
	uuo.mutation.RemoveEntryIDs(ids...)
	return uuo
}

// RemoveEntries removes "entries" edges to GameEntry entities.
func (uuo *UniversityUpdateOne) RemoveEntries(g ...*GameEntry) *UniversityUpdateOne {
	ids := make([]int, len(g))
	for i := range g {
		ids[i] = g[i].ID
	}
	return uuo.RemoveEntryIDs(ids...)
}

// Where appends a list predicates to the UniversityUpdate builder.
func (uuo *UniversityUpdateOne) Where(ps ...predicate.University) *UniversityUpdateOne {
	uuo.mutation.Where(ps...)
	return uuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (uuo *UniversityUpdateOne) Select(field string, fields ...string) *UniversityUpdateOne {
	uuo.fields = append([]string{field}, fields...)
	return uuo
}

// Save executes the query and returns the updated University entity.
func (uuo *UniversityUpdateOne) Save(ctx context.Context) (*University, error) {
	return withHooks(ctx, uuo.sqlSave, uuo.mutation, uuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (uuo *UniversityUpdateOne) SaveX(ctx context.Context) *University {
	node, err := uuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (uuo *UniversityUpdateOne) Exec(ctx context.Context) error {
	_, err := uuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (uuo *UniversityUpdateOne) ExecX(ctx context.Context) {
	if err := uuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (uuo *UniversityUpdateOne) check() error {
	if v, ok := uuo.mutation.Name(); ok {
		if err := university.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "University.name": %w`, err)}
		}
	}
	if v, ok := uuo.mutation.Country(); ok {
		if err := university.CountryValidator(v); err != nil {
			return &ValidationError{Name: "country", err: fmt.Errorf(`ent: validator failed for field "University.country": %w`, err)}
		}
	}
	if v, ok := uuo.mutation.Ranking(); ok {
		if err := university.RankingValidator(v); err != nil {
			return &ValidationError{Name: "ranking", err: fmt.Errorf(`ent: validator failed for field "University.ranking": %w`, err)}
		}
	}
	if v, ok := uuo.mutation.StudentCount(); ok {
		if err := university.StudentCountValidator(v); err != nil {
			return &ValidationError{Name: "student_count", err: fmt.Errorf(`ent: validator failed for field "University.student_count": %w`, err)}
		}
	}
	if v, ok := uuo.mutation.FoundedYear(); ok {
		if err := university.FoundedYearValidator(v); err != nil {
			return &ValidationError{Name: "founded_year", err: fmt.Errorf(`ent: validator failed for field "University.founded_year": %w`, err)}
		}
	}
	if v, ok := uuo.mutation.CampusArea(); ok {
		if err := university.CampusAreaValidator(v); err != nil {
			return &ValidationError{Name: "campus_area", err: fmt.Errorf(`ent: validator failed for field "University.campus_area": %w`, err)}
		}
	}
	return nil
}

func (uuo *UniversityUpdateOne) sqlSave(ctx context.Context) (_node *University, err error) {
	if err := uuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(university.Table, university.Columns, sqlgraph.NewFieldSpec(university.FieldID, field.TypeUUID))
	id, ok := uuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "University.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := uuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, university.FieldID)
		for _, f := range fields {
			if !university.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != university.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := uuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := uuo.mutation.Name(); ok {
		_spec.SetField(university.FieldName, field.TypeString, value)
	}
	if value, ok := uuo.mutation.Country(); ok {
		_spec.SetField(university.FieldCountry, field.TypeString, value)
	}
	if value, ok := uuo.mutation.ImageURL(); ok {
		_spec.SetField(university.FieldImageURL, field.TypeString, value)
	}
	if uuo.mutation.ImageURLCleared() {
		_spec.ClearField(university.FieldImageURL, field.TypeString)
	}
	if value, ok := uuo.mutation.Ranking(); ok {
		_spec.SetField(university.FieldRanking, field.TypeInt, value)
	}
	if value, ok := uuo.mutation.AddedRanking(); ok {
		_spec.AddField(university.FieldRanking, field.TypeInt, value)
	}
	if value, ok := uuo.mutation.StudentCount(); ok {
		_spec.SetField(university.FieldStudentCount, field.TypeInt, value)
	}
	if value, ok := uuo.mutation.AddedStudentCount(); ok {
		_spec.AddField(university.FieldStudentCount, field.TypeInt, value)
	}
	if value, ok := uuo.mutation.FoundedYear(); ok {
		_spec.SetField(university.FieldFoundedYear, field.TypeInt, value)
	}
	if value, ok := uuo.mutation.AddedFoundedYear(); ok {
		_spec.AddField(university.FieldFoundedYear, field.TypeInt, value)
	}
	if value, ok := uuo.mutation.CampusArea(); ok {
		_spec.SetField(university.FieldCampusArea, field.TypeFloat64, value)
	}
	if value, ok := uuo.mutation.AddedCampusArea(); ok {
		_spec.AddField(university.FieldCampusArea, field.TypeFloat64, value)
	}
	if uuo.mutation.EntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := uuo.mutation.RemovedEntriesIDs(); len(nodes) > 0 && !uuo.mutation.EntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := uuo.mutation.EntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &University{config: uuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, uuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{university.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	uuo.mutation.done = true
	return _node, nil
}
