// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/gseier/UniRankle/ent/dailygame"
	"github.com/gseier/UniRankle/ent/gameentry"
	"github.com/gseier/UniRankle/ent/predicate"
	"github.com/gseier/UniRankle/ent/university"
)

// GameEntryQuery is the builder for querying GameEntry entities.
type GameEntryQuery struct {
	config
	ctx            *QueryContext
	order          []gameentry.OrderOption
	inters         []Interceptor
	predicates     []predicate.GameEntry
	withGame       *DailyGameQuery
	withUniversity *UniversityQuery
	withFKs        bool
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the GameEntryQuery builder.
func (geq *GameEntryQuery) Where(ps ...predicate.GameEntry) *GameEntryQuery {
	geq.predicates = append(geq.predicates, ps...)
	return geq
}

// Limit the number of records to be returned by this query.
func (geq *GameEntryQuery) Limit(limit int) *GameEntryQuery {
	geq.ctx.Limit = &limit
	return geq
}

// Offset to start from.
func (geq *GameEntryQuery) Offset(offset int) *GameEntryQuery {
	geq.ctx.Offset = &offset
	return geq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (geq *GameEntryQuery) Unique(unique bool) *GameEntryQuery {
	geq.ctx.Unique = &unique
	return geq
}

// Order specifies how the records should be ordered.
func (geq *GameEntryQuery) Order(o ...gameentry.OrderOption) *GameEntryQuery {
	geq.order = append(geq.order, o...)
	return geq
}

// QueryGame chains the current query on the "game" edge.
func (geq *GameEntryQuery) QueryGame() *DailyGameQuery {
	query := (&DailyGameClient{config: geq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := geq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := geq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(gameentry.Table, gameentry.FieldID, selector),
			sqlgraph.To(dailygame.Table, dailygame.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, gameentry.GameTable, gameentry.GameColumn),
		)
		fromU = sqlgraph.SetNeighbors(geq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryUniversity chains the current query on the "university" edge.
func (geq *GameEntryQuery) QueryUniversity() *UniversityQuery {
	query := (&UniversityClient{config: geq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := geq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := geq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(gameentry.Table, gameentry.FieldID, selector),
			sqlgraph.To(university.Table, university.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, gameentry.UniversityTable, gameentry.UniversityColumn),
		)
		fromU = sqlgraph.SetNeighbors(geq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first GameEntry entity from the query.
// Returns a *NotFoundError when no GameEntry was found.
func (geq *GameEntryQuery) First(ctx context.Context) (*GameEntry, error) {
	nodes, err := geq.Limit(1).All(setContextOp(ctx, geq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{gameentry.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (geq *GameEntryQuery) FirstX(ctx context.Context) *GameEntry {
	node, err := geq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first GameEntry ID from the query.
// Returns a *NotFoundError when no GameEntry ID was found.
func (geq *GameEntryQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = geq.Limit(1).IDs(setContextOp(ctx, geq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{gameentry.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (geq *GameEntryQuery) FirstIDX(ctx context.Context) int {
	id, err := geq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single GameEntry entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one GameEntry entity is found.
// Returns a *NotFoundError when no GameEntry entities are found.
func (geq *GameEntryQuery) Only(ctx context.Context) (*GameEntry, error) {
	nodes, err := geq.Limit(2).All(setContextOp(ctx, geq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{gameentry.Label}
	default:
		return nil, &NotSingularError{gameentry.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (geq *GameEntryQuery) OnlyX(ctx context.Context) *GameEntry {
	node, err := geq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only GameEntry ID in the query.
// Returns a *NotSingularError when more than one GameEntry ID is found.
// Returns a *NotFoundError when no entities are found.
func (geq *GameEntryQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = geq.Limit(2).IDs(setContextOp(ctx, geq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{gameentry.Label}
	default:
		err = &NotSingularError{gameentry.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (geq *GameEntryQuery) OnlyIDX(ctx context.Context) int {
	id, err := geq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of GameEntries.
func (geq *GameEntryQuery) All(ctx context.Context) ([]*GameEntry, error) {
	ctx = setContextOp(ctx, geq.ctx, ent.OpQueryAll)
	if err := geq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*GameEntry, *GameEntryQuery]()
	return withInterceptors[[]*GameEntry](ctx, geq, qr, geq.inters)
}

// AllX is like All, but panics if an error occurs.
func (geq *GameEntryQuery) AllX(ctx context.Context) []*GameEntry {
	nodes, err := geq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of GameEntry IDs.
func (geq *GameEntryQuery) IDs(ctx context.Context) (ids []int, err error) {
	if geq.ctx.Unique == nil && geq.path != nil {
		geq.Unique(true)
	}
	ctx = setContextOp(ctx, geq.ctx, ent.OpQueryIDs)
	if err = geq.Select(gameentry.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (geq *GameEntryQuery) IDsX(ctx context.Context) []int {
	ids, err := geq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (geq *GameEntryQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, geq.ctx, ent.OpQueryCount)
	if err := geq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, geq, querierCount[*GameEntryQuery](), geq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (geq *GameEntryQuery) CountX(ctx context.Context) int {
	count, err := geq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (geq *GameEntryQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, geq.ctx, ent.OpQueryExist)
	switch _, err := geq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (geq *GameEntryQuery) ExistX(ctx context.Context) bool {
	exist, err := geq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the GameEntryQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (geq *GameEntryQuery) Clone() *GameEntryQuery {
	if geq == nil {
		return nil
	}
	return &GameEntryQuery{
		config:         geq.config,
		ctx:            geq.ctx.Clone(),
		order:          append([]gameentry.OrderOption{}, geq.order...),
		inters:         append([]Interceptor{}, geq.inters...),
		predicates:     append([]predicate.GameEntry{}, geq.predicates...),
		withGame:       geq.withGame.Clone(),
		withUniversity: geq.withUniversity.Clone(),
		// clone intermediate query.
		sql:  geq.sql.Clone(),
		path: geq.path,
	}
}

// WithGame tells the query-builder to eager-load the nodes that are connected to
// the "game" edge. The optional arguments are used to configure the query builder of the edge.
func (geq *GameEntryQuery) WithGame(opts ...func(*DailyGameQuery)) *GameEntryQuery {
	query := (&DailyGameClient{config: geq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	geq.withGame = query
	return geq
}

// WithUniversity tells the query-builder to eager-load the nodes that are connected to
// the "university" edge. The optional arguments are used to configure the query builder of the edge.
func (geq *GameEntryQuery) WithUniversity(opts ...func(*UniversityQuery)) *GameEntryQuery {
	query := (&UniversityClient{config: geq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	geq.withUniversity = query
	return geq
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Position int `json:"position,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.GameEntry.Query().
//		GroupBy(gameentry.FieldPosition).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (geq *GameEntryQuery) GroupBy(field string, fields ...string) *GameEntryGroupBy {
	geq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &GameEntryGroupBy{build: geq}
	grbuild.flds = &geq.ctx.Fields
	grbuild.label = gameentry.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Position int `json:"position,omitempty"`
//	}
//
//	client.GameEntry.Query().
//		Select(gameentry.FieldPosition).
//		Scan(ctx, &v)
func (geq *GameEntryQuery) Select(fields ...string) *GameEntrySelect {
	geq.ctx.Fields = append(geq.ctx.Fields, fields...)
	sbuild := &GameEntrySelect{GameEntryQuery: geq}
	sbuild.label = gameentry.Label
	sbuild.flds, sbuild.scan = &geq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a GameEntrySelect configured with the given aggregations.
func (geq *GameEntryQuery) Aggregate(fns ...AggregateFunc) *GameEntrySelect {
	return geq.Select().Aggregate(fns...)
}

func (geq *GameEntryQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range geq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, geq); err != nil {
				return err
			}
		}
	}
	for _, f := range geq.ctx.Fields {
		if !gameentry.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if geq.path != nil {
		prev, err := geq.path(ctx)
		if err != nil {
			return err
		}
		geq.sql = prev
	}
	return nil
}

func (geq *GameEntryQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*GameEntry, error) {
	var (
		nodes       = []*GameEntry{}
		withFKs     = geq.withFKs
		_spec       = geq.querySpec()
		loadedTypes = [2]bool{
			geq.withGame != nil,
			geq.withUniversity != nil,
		}
	)
	if geq.withGame != nil || geq.withUniversity != nil {
		withFKs = true
	}
	if withFKs {
		_spec.Node.Columns = append(_spec.Node.Columns, gameentry.ForeignKeys...)
	}
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*GameEntry).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &GameEntry{config: geq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, geq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := geq.withGame; query != nil {
		if err := geq.loadGame(ctx, query, nodes, nil,
			func(n *GameEntry, e *DailyGame) { n.Edges.Game = e }); err != nil {
			return nil, err
		}
	}
	if query := geq.withUniversity; query != nil {
		if err := geq.loadUniversity(ctx, query, nodes, nil,
			func(n *GameEntry, e *University) { n.Edges.University = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (geq *GameEntryQuery) loadGame(ctx context.Context, query *DailyGameQuery, nodes []*GameEntry, init func(*GameEntry), assign func(*GameEntry, *DailyGame)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*GameEntry)
	for i := range nodes {
		if nodes[i].daily_game_entries == nil {
			continue
		}
		fk := *nodes[i].daily_game_entries
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(dailygame.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "daily_game_entries" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (geq *GameEntryQuery) loadUniversity(ctx context.Context, query *UniversityQuery, nodes []*GameEntry, init func(*GameEntry), assign func(*GameEntry, *University)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*GameEntry)
	for i := range nodes {
		if nodes[i].university_entries == nil {
			continue
		}
		fk := *nodes[i].university_entries
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(university.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "university_entries" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (geq *GameEntryQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := geq.querySpec()
	_spec.Node.Columns = geq.ctx.Fields
	if len(geq.ctx.Fields) > 0 {
		_spec.Unique = geq.ctx.Unique != nil && *geq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, geq.driver, _spec)
}

func (geq *GameEntryQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(gameentry.Table, gameentry.Columns, sqlgraph.NewFieldSpec(gameentry.FieldID, field.TypeInt))
	_spec.From = geq.sql
	if unique := geq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if geq.path != nil {
		_spec.Unique = true
	}
	if fields := geq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, gameentry.FieldID)
		for i := range fields {
			if fields[i] != gameentry.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := geq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := geq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := geq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := geq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (geq *GameEntryQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(geq.driver.Dialect())
	t1 := builder.Table(gameentry.Table)
	columns := geq.ctx.Fields
	if len(columns) == 0 {
		columns = gameentry.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if geq.sql != nil {
		selector = geq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if geq.ctx.Unique != nil && *geq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range geq.predicates {
		p(selector)
	}
	for _, p := range geq.order {
		p(selector)
	}
	if offset := geq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := geq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// GameEntryGroupBy is the group-by builder for GameEntry entities.
type GameEntryGroupBy struct {
	selector
	build *GameEntryQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (gegb *GameEntryGroupBy) Aggregate(fns ...AggregateFunc) *GameEntryGroupBy {
	gegb.fns = append(gegb.fns, fns...)
	return gegb
}

// Scan applies the selector query and scans the result into the given value.
func (gegb *GameEntryGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, gegb.build.ctx, ent.OpQueryGroupBy)
	if err := gegb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*GameEntryQuery, *GameEntryGroupBy](ctx, gegb.build, gegb, gegb.build.inters, v)
}

func (gegb *GameEntryGroupBy) sqlScan(ctx context.Context, root *GameEntryQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(gegb.fns))
	for _, fn := range gegb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*gegb.flds)+len(gegb.fns))
		for _, f := range *gegb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*gegb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := gegb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// GameEntrySelect is the builder for selecting fields of GameEntry entities.
type GameEntrySelect struct {
	*GameEntryQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (ges *GameEntrySelect) Aggregate(fns ...AggregateFunc) *GameEntrySelect {
	ges.fns = append(ges.fns, fns...)
	return ges
}

// Scan applies the selector query and scans the result into the given value.
func (ges *GameEntrySelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, ges.ctx, ent.OpQuerySelect)
	if err := ges.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*GameEntryQuery, *GameEntrySelect](ctx, ges.GameEntryQuery, ges, ges.inters, v)
}

func (ges *GameEntrySelect) sqlScan(ctx context.Context, root *GameEntryQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(ges.fns))
	for _, fn := range ges.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*ges.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := ges.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
