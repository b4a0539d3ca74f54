// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
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
	"github.com/gseier/UniRankle/ent/submission"
)

// DailyGameQuery is the builder for querying DailyGame entities.
type DailyGameQuery struct {
	config
	ctx             *QueryContext
	order           []dailygame.OrderOption
	inters          []Interceptor
	predicates      []predicate.DailyGame
	withEntries     *GameEntryQuery
	withSubmissions *SubmissionQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the DailyGameQuery builder.
func (dgq *DailyGameQuery) Where(ps ...predicate.DailyGame) *DailyGameQuery {
	dgq.predicates = append(dgq.predicates, ps...)
	return dgq
}

// Limit the number of records to be returned by this query.
func (dgq *DailyGameQuery) Limit(limit int) *DailyGameQuery {
	dgq.ctx.Limit = &limit
	return dgq
}

// Offset to start from.
func (dgq *DailyGameQuery) Offset(offset int) *DailyGameQuery {
	dgq.ctx.Offset = &offset
	return dgq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (dgq *DailyGameQuery) Unique(unique bool) *DailyGameQuery {
	dgq.ctx.Unique = &unique
	return dgq
}

// Order specifies how the records should be ordered.
func (dgq *DailyGameQuery) Order(o ...dailygame.OrderOption) *DailyGameQuery {
	dgq.order = append(dgq.order, o...)
	return dgq
}

// QueryEntries chains the current query on the "entries" edge.
func (dgq *DailyGameQuery) QueryEntries() *GameEntryQuery {
	query := (&GameEntryClient{config: dgq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := dgq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := dgq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(dailygame.Table, dailygame.FieldID, selector),
			sqlgraph.To(gameentry.Table, gameentry.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, dailygame.EntriesTable, dailygame.EntriesColumn),
		)
		fromU = sqlgraph.SetNeighbors(dgq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QuerySubmissions chains the current query on the "submissions" edge.
func (dgq *DailyGameQuery) QuerySubmissions() *SubmissionQuery {
	query := (&SubmissionClient{config: dgq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := dgq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := dgq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(dailygame.Table, dailygame.FieldID, selector),
			sqlgraph.To(submission.Table, submission.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, dailygame.SubmissionsTable, dailygame.SubmissionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(dgq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first DailyGame entity from the query.
// Returns a *NotFoundError when no DailyGame was found.
func (dgq *DailyGameQuery) First(ctx context.Context) (*DailyGame, error) {
	nodes, err := dgq.Limit(1).All(setContextOp(ctx, dgq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{dailygame.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (dgq *DailyGameQuery) FirstX(ctx context.Context) *DailyGame {
	node, err := dgq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first DailyGame ID from the query.
// Returns a *NotFoundError when no DailyGame ID was found.
func (dgq *DailyGameQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = dgq.Limit(1).IDs(setContextOp(ctx, dgq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{dailygame.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (dgq *DailyGameQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := dgq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single DailyGame entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one DailyGame entity is found.
// Returns a *NotFoundError when no DailyGame entities are found.
func (dgq *DailyGameQuery) Only(ctx context.Context) (*DailyGame, error) {
	nodes, err := dgq.Limit(2).All(setContextOp(ctx, dgq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{dailygame.Label}
	default:
		return nil, &NotSingularError{dailygame.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (dgq *DailyGameQuery) OnlyX(ctx context.Context) *DailyGame {
	node, err := dgq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only DailyGame ID in the query.
// Returns a *NotSingularError when more than one DailyGame ID is found.
// Returns a *NotFoundError when no entities are found.
func (dgq *DailyGameQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = dgq.Limit(2).IDs(setContextOp(ctx, dgq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{dailygame.Label}
	default:
		err = &NotSingularError{dailygame.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (dgq *DailyGameQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := dgq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of DailyGames.
func (dgq *DailyGameQuery) All(ctx context.Context) ([]*DailyGame, error) {
	ctx = setContextOp(ctx, dgq.ctx, ent.OpQueryAll)
	if err := dgq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*DailyGame, *DailyGameQuery]()
	return withInterceptors[[]*DailyGame](ctx, dgq, qr, dgq.inters)
}

// AllX is like All, but panics if an error occurs.
func (dgq *DailyGameQuery) AllX(ctx context.Context) []*DailyGame {
	nodes, err := dgq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of DailyGame IDs.
func (dgq *DailyGameQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if dgq.ctx.Unique == nil && dgq.path != nil {
		dgq.Unique(true)
	}
	ctx = setContextOp(ctx, dgq.ctx, ent.OpQueryIDs)
	if err = dgq.Select(dailygame.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (dgq *DailyGameQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := dgq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (dgq *DailyGameQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, dgq.ctx, ent.OpQueryCount)
	if err := dgq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, dgq, querierCount[*DailyGameQuery](), dgq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (dgq *DailyGameQuery) CountX(ctx context.Context) int {
	count, err := dgq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (dgq *DailyGameQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, dgq.ctx, ent.OpQueryExist)
	switch _, err := dgq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (dgq *DailyGameQuery) ExistX(ctx context.Context) bool {
	exist, err := dgq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the DailyGameQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (dgq *DailyGameQuery) Clone() *DailyGameQuery {
	if dgq == nil {
		return nil
	}
	return &DailyGameQuery{
		config:          dgq.config,
		ctx:             dgq.ctx.Clone(),
		order:           append([]dailygame.OrderOption{}, dgq.order...),
		inters:          append([]Interceptor{}, dgq.inters...),
		predicates:      append([]predicate.DailyGame{}, dgq.predicates...),
		withEntries:     dgq.withEntries.Clone(),
		withSubmissions: dgq.withSubmissions.Clone(),
		// clone intermediate query.
		sql:  dgq.sql.Clone(),
		path: dgq.path,
	}
}

// WithEntries tells the query-builder to eager-load the nodes that are connected to
// the "entries" edge. The optional arguments are used to configure the query builder of the edge.
func (dgq *DailyGameQuery) WithEntries(opts ...func(*GameEntryQuery)) *DailyGameQuery {
	query := (&GameEntryClient{config: dgq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	dgq.withEntries = query
	return dgq
}

// WithSubmissions tells the query-builder to eager-load the nodes that are connected to
// the "submissions" edge. The optional arguments are used to configure the query builder of the edge.
func (dgq *DailyGameQuery) WithSubmissions(opts ...func(*SubmissionQuery)) *DailyGameQuery {
	query := (&SubmissionClient{config: dgq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	dgq.withSubmissions = query
	return dgq
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		DateKey string `json:"date_key,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.DailyGame.Query().
//		GroupBy(dailygame.FieldDateKey).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (dgq *DailyGameQuery) GroupBy(field string, fields ...string) *DailyGameGroupBy {
	dgq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &DailyGameGroupBy{build: dgq}
	grbuild.flds = &dgq.ctx.Fields
	grbuild.label = dailygame.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		DateKey string `json:"date_key,omitempty"`
//	}
//
//	client.DailyGame.Query().
//		Select(dailygame.FieldDateKey).
//		Scan(ctx, &v)
func (dgq *DailyGameQuery) Select(fields ...string) *DailyGameSelect {
	dgq.ctx.Fields = append(dgq.ctx.Fields, fields...)
	sbuild := &DailyGameSelect{DailyGameQuery: dgq}
	sbuild.label = dailygame.Label
	sbuild.flds, sbuild.scan = &dgq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a DailyGameSelect configured with the given aggregations.
func (dgq *DailyGameQuery) Aggregate(fns ...AggregateFunc) *DailyGameSelect {
	return dgq.Select().Aggregate(fns...)
}

func (dgq *DailyGameQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range dgq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, dgq); err != nil {
				return err
			}
		}
	}
	for _, f := range dgq.ctx.Fields {
		if !dailygame.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if dgq.path != nil {
		prev, err := dgq.path(ctx)
		if err != nil {
			return err
		}
		dgq.sql = prev
	}
	return nil
}

func (dgq *DailyGameQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*DailyGame, error) {
	var (
		nodes       = []*DailyGame{}
		_spec       = dgq.querySpec()
		loadedTypes = [2]bool{
			dgq.withEntries != nil,
			dgq.withSubmissions != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*DailyGame).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &DailyGame{config: dgq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, dgq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := dgq.withEntries; query != nil {
		if err := dgq.loadEntries(ctx, query, nodes,
			func(n *DailyGame) { n.Edges.Entries = []*GameEntry{} },
			func(n *DailyGame, e *GameEntry) { n.Edges.Entries = append(n.Edges.Entries, e) }); err != nil {
			return nil, err
		}
	}
	if query := dgq.withSubmissions; query != nil {
		if err := dgq.loadSubmissions(ctx, query, nodes,
			func(n *DailyGame) { n.Edges.Submissions = []*Submission{} },
			func(n *DailyGame, e *Submission) { n.Edges.Submissions = append(n.Edges.Submissions, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (dgq *DailyGameQuery) loadEntries(ctx context.Context, query *GameEntryQuery, nodes []*DailyGame, init func(*DailyGame), assign func(*DailyGame, *GameEntry)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*DailyGame)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	query.withFKs = true
	query.Where(predicate.GameEntry(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(dailygame.EntriesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.daily_game_entries
		if fk == nil {
			return fmt.Errorf(`foreign-key "daily_game_entries" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "daily_game_entries" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (dgq *DailyGameQuery) loadSubmissions(ctx context.Context, query *SubmissionQuery, nodes []*DailyGame, init func(*DailyGame), assign func(*DailyGame, *Submission)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*DailyGame)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	query.withFKs = true
	query.Where(predicate.Submission(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(dailygame.SubmissionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.daily_game_submissions
		if fk == nil {
			return fmt.Errorf(`foreign-key "daily_game_submissions" is nil for node %v`, n.ID)
		}
		node, ok := nodeids[*fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "daily_game_submissions" returned %v for node %v`, *fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (dgq *DailyGameQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := dgq.querySpec()
	_spec.Node.Columns = dgq.ctx.Fields
	if len(dgq.ctx.Fields) > 0 {
		_spec.Unique = dgq.ctx.Unique != nil && *dgq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, dgq.driver, _spec)
}

func (dgq *DailyGameQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(dailygame.Table, dailygame.Columns, sqlgraph.NewFieldSpec(dailygame.FieldID, field.TypeUUID))
	_spec.From = dgq.sql
	if unique := dgq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if dgq.path != nil {
		_spec.Unique = true
	}
	if fields := dgq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dailygame.FieldID)
		for i := range fields {
			if fields[i] != dailygame.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := dgq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := dgq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := dgq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := dgq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (dgq *DailyGameQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(dgq.driver.Dialect())
	t1 := builder.Table(dailygame.Table)
	columns := dgq.ctx.Fields
	if len(columns) == 0 {
		columns = dailygame.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if dgq.sql != nil {
		selector = dgq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if dgq.ctx.Unique != nil && *dgq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range dgq.predicates {
		p(selector)
	}
	for _, p := range dgq.order {
		p(selector)
	}
	if offset := dgq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := dgq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// DailyGameGroupBy is the group-by builder for DailyGame entities.
type DailyGameGroupBy struct {
	selector
	build *DailyGameQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (dggb *DailyGameGroupBy) Aggregate(fns ...AggregateFunc) *DailyGameGroupBy {
	dggb.fns = append(dggb.fns, fns...)
	return dggb
}

// Scan applies the selector query and scans the result into the given value.
func (dggb *DailyGameGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, dggb.build.ctx, ent.OpQueryGroupBy)
	if err := dggb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DailyGameQuery, *DailyGameGroupBy](ctx, dggb.build, dggb, dggb.build.inters, v)
}

func (dggb *DailyGameGroupBy) sqlScan(ctx context.Context, root *DailyGameQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(dggb.fns))
	for _, fn := range dggb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*dggb.flds)+len(dggb.fns))
		for _, f := range *dggb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*dggb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := dggb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// DailyGameSelect is the builder for selecting fields of DailyGame entities.
type DailyGameSelect struct {
	*DailyGameQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (dgs *DailyGameSelect) Aggregate(fns ...AggregateFunc) *DailyGameSelect {
	dgs.fns = append(dgs.fns, fns...)
	return dgs
}

// Scan applies the selector query and scans the result into the given value.
func (dgs *DailyGameSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, dgs.ctx, ent.OpQuerySelect)
	if err := dgs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DailyGameQuery, *DailyGameSelect](ctx, dgs.DailyGameQuery, dgs, dgs.inters, v)
}

func (dgs *DailyGameSelect) sqlScan(ctx context.Context, root *DailyGameQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(dgs.fns))
	for _, fn := range dgs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*dgs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := dgs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
