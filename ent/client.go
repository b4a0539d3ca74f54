// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/gseier/UniRankle/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/gseier/UniRankle/ent/dailygame"
	"github.com/gseier/UniRankle/ent/gameentry"
	"github.com/gseier/UniRankle/ent/submission"
	"github.com/gseier/UniRankle/ent/university"
	"github.com/gseier/UniRankle/ent/user"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// DailyGame is the client for interacting with the DailyGame builders.
	DailyGame *DailyGameClient
	// GameEntry is the client for interacting with the GameEntry builders.
	GameEntry *GameEntryClient
	// Submission is the client for interacting with the Submission builders.
	Submission *SubmissionClient
	// University is the client for interacting with the University builders.
	University *UniversityClient
	// User is the client for interacting with the User builders.
	User *UserClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.DailyGame = NewDailyGameClient(c.config)
	c.GameEntry = NewGameEntryClient(c.config)
	c.Submission = NewSubmissionClient(c.config)
	c.University = NewUniversityClient(c.config)
	c.User = NewUserClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:        ctx,
		config:     cfg,
		DailyGame:  NewDailyGameClient(cfg),
		GameEntry:  NewGameEntryClient(cfg),
		Submission: NewSubmissionClient(cfg),
		University: NewUniversityClient(cfg),
		User:       NewUserClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:        ctx,
		config:     cfg,
		DailyGame:  NewDailyGameClient(cfg),
		GameEntry:  NewGameEntryClient(cfg),
		Submission: NewSubmissionClient(cfg),
		University: NewUniversityClient(cfg),
		User:       NewUserClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		DailyGame.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.DailyGame.Use(hooks...)
	c.GameEntry.Use(hooks...)
	c.Submission.Use(hooks...)
	c.University.Use(hooks...)
	c.User.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.DailyGame.Intercept(interceptors...)
	c.GameEntry.Intercept(interceptors...)
	c.Submission.Intercept(interceptors...)
	c.University.Intercept(interceptors...)
	c.User.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *DailyGameMutation:
		return c.DailyGame.mutate(ctx, m)
	case *GameEntryMutation:
		return c.GameEntry.mutate(ctx, m)
	case *SubmissionMutation:
		return c.Submission.mutate(ctx, m)
	case *UniversityMutation:
		return c.University.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// DailyGameClient is a client for the DailyGame schema.
type DailyGameClient struct {
	config
}

// NewDailyGameClient returns a client for the DailyGame from the given config.
func NewDailyGameClient(c config) *DailyGameClient {
	return &DailyGameClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `dailygame.Hooks(f(g(h())))`.
func (c *DailyGameClient) Use(hooks ...Hook) {
	c.hooks.DailyGame = append(c.hooks.DailyGame, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `dailygame.Intercept(f(g(h())))`.
func (c *DailyGameClient) Intercept(interceptors ...Interceptor) {
	c.inters.DailyGame = append(c.inters.DailyGame, interceptors...)
}

// Create returns a builder for creating a DailyGame entity.
func (c *DailyGameClient) Create() *DailyGameCreate {
	mutation := newDailyGameMutation(c.config, OpCreate)
	return &DailyGameCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DailyGame entities.
func (c *DailyGameClient) CreateBulk(builders ...*DailyGameCreate) *DailyGameCreateBulk {
	return &DailyGameCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DailyGameClient) MapCreateBulk(slice any, setFunc func(*DailyGameCreate, int)) *DailyGameCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DailyGameCreateBulk{err: fmt.Errorf("calling to DailyGameClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DailyGameCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DailyGameCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DailyGame.
func (c *DailyGameClient) Update() *DailyGameUpdate {
	mutation := newDailyGameMutation(c.config, OpUpdate)
	return &DailyGameUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DailyGameClient) UpdateOne(dg *DailyGame) *DailyGameUpdateOne {
	mutation := newDailyGameMutation(c.config, OpUpdateOne, withDailyGame(dg))
	return &DailyGameUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DailyGameClient) UpdateOneID(id uuid.UUID) *DailyGameUpdateOne {
	mutation := newDailyGameMutation(c.config, OpUpdateOne, withDailyGameID(id))
	return &DailyGameUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DailyGame.
func (c *DailyGameClient) Delete() *DailyGameDelete {
	mutation := newDailyGameMutation(c.config, OpDelete)
	return &DailyGameDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DailyGameClient) DeleteOne(dg *DailyGame) *DailyGameDeleteOne {
	return c.DeleteOneID(dg.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DailyGameClient) DeleteOneID(id uuid.UUID) *DailyGameDeleteOne {
	builder := c.Delete().Where(dailygame.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DailyGameDeleteOne{builder}
}

// Query returns a query builder for DailyGame.
func (c *DailyGameClient) Query() *DailyGameQuery {
	return &DailyGameQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDailyGame},
		inters: c.Interceptors(),
	}
}

// Get returns a DailyGame entity by its id.
func (c *DailyGameClient) Get(ctx context.Context, id uuid.UUID) (*DailyGame, error) {
	return c.Query().Where(dailygame.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DailyGameClient) GetX(ctx context.Context, id uuid.UUID) *DailyGame {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEntries queries the entries edge of a DailyGame.
func (c *DailyGameClient) QueryEntries(dg *DailyGame) *GameEntryQuery {
	query := (&GameEntryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := dg.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(dailygame.Table, dailygame.FieldID, id),
			sqlgraph.To(gameentry.Table, gameentry.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, dailygame.EntriesTable, dailygame.EntriesColumn),
		)
		fromV = sqlgraph.Neighbors(dg.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySubmissions queries the submissions edge of a DailyGame.
func (c *DailyGameClient) QuerySubmissions(dg *DailyGame) *SubmissionQuery {
	query := (&SubmissionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := dg.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(dailygame.Table, dailygame.FieldID, id),
			sqlgraph.To(submission.Table, submission.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, dailygame.SubmissionsTable, dailygame.SubmissionsColumn),
		)
		fromV = sqlgraph.Neighbors(dg.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DailyGameClient) Hooks() []Hook {
	return c.hooks.DailyGame
}

// Interceptors returns the client interceptors.
func (c *DailyGameClient) Interceptors() []Interceptor {
	return c.inters.DailyGame
}

func (c *DailyGameClient) mutate(ctx context.Context, m *DailyGameMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DailyGameCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DailyGameUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DailyGameUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DailyGameDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DailyGame mutation op: %q", m.Op())
	}
}

// GameEntryClient is a client for the GameEntry schema.
type GameEntryClient struct {
	config
}

// NewGameEntryClient returns a client for the GameEntry from the given config.
func NewGameEntryClient(c config) *GameEntryClient {
	return &GameEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `gameentry.Hooks(f(g(h())))`.
func (c *GameEntryClient) Use(hooks ...Hook) {
	c.hooks.GameEntry = append(c.hooks.GameEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `gameentry.Intercept(f(g(h())))`.
func (c *GameEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.GameEntry = append(c.inters.GameEntry, interceptors...)
}

// Create returns a builder for creating a GameEntry entity.
func (c *GameEntryClient) Create() *GameEntryCreate {
	mutation := newGameEntryMutation(c.config, OpCreate)
	return &GameEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GameEntry entities.
func (c *GameEntryClient) CreateBulk(builders ...*GameEntryCreate) *GameEntryCreateBulk {
	return &GameEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GameEntryClient) MapCreateBulk(slice any, setFunc func(*GameEntryCreate, int)) *GameEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GameEntryCreateBulk{err: fmt.Errorf("calling to GameEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GameEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GameEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GameEntry.
func (c *GameEntryClient) Update() *GameEntryUpdate {
	mutation := newGameEntryMutation(c.config, OpUpdate)
	return &GameEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GameEntryClient) UpdateOne(ge *GameEntry) *GameEntryUpdateOne {
	mutation := newGameEntryMutation(c.config, OpUpdateOne, withGameEntry(ge))
	return &GameEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GameEntryClient) UpdateOneID(id int) *GameEntryUpdateOne {
	mutation := newGameEntryMutation(c.config, OpUpdateOne, withGameEntryID(id))
	return &GameEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GameEntry.
func (c *GameEntryClient) Delete() *GameEntryDelete {
	mutation := newGameEntryMutation(c.config, OpDelete)
	return &GameEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GameEntryClient) DeleteOne(ge *GameEntry) *GameEntryDeleteOne {
	return c.DeleteOneID(ge.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GameEntryClient) DeleteOneID(id int) *GameEntryDeleteOne {
	builder := c.Delete().Where(gameentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GameEntryDeleteOne{builder}
}

// Query returns a query builder for GameEntry.
func (c *GameEntryClient) Query() *GameEntryQuery {
	return &GameEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGameEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a GameEntry entity by its id.
func (c *GameEntryClient) Get(ctx context.Context, id int) (*GameEntry, error) {
	return c.Query().Where(gameentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GameEntryClient) GetX(ctx context.Context, id int) *GameEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryGame queries the game edge of a GameEntry.
func (c *GameEntryClient) QueryGame(ge *GameEntry) *DailyGameQuery {
	query := (&DailyGameClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := ge.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(gameentry.Table, gameentry.FieldID, id),
			sqlgraph.To(dailygame.Table, dailygame.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, gameentry.GameTable, gameentry.GameColumn),
		)
		fromV = sqlgraph.Neighbors(ge.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryUniversity queries the university edge of a GameEntry.
func (c *GameEntryClient) QueryUniversity(ge *GameEntry) *UniversityQuery {
	query := (&UniversityClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := ge.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(gameentry.Table, gameentry.FieldID, id),
			sqlgraph.To(university.Table, university.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, gameentry.UniversityTable, gameentry.UniversityColumn),
		)
		fromV = sqlgraph.Neighbors(ge.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *GameEntryClient) Hooks() []Hook {
	return c.hooks.GameEntry
}

// Interceptors returns the client interceptors.
func (c *GameEntryClient) Interceptors() []Interceptor {
	return c.inters.GameEntry
}

func (c *GameEntryClient) mutate(ctx context.Context, m *GameEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GameEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GameEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GameEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GameEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GameEntry mutation op: %q", m.Op())
	}
}

// SubmissionClient is a client for the Submission schema.
type SubmissionClient struct {
	config
}

// NewSubmissionClient returns a client for the Submission from the given config.
func NewSubmissionClient(c config) *SubmissionClient {
	return &SubmissionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `submission.Hooks(f(g(h())))`.
func (c *SubmissionClient) Use(hooks ...Hook) {
	c.hooks.Submission = append(c.hooks.Submission, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `submission.Intercept(f(g(h())))`.
func (c *SubmissionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Submission = append(c.inters.Submission, interceptors...)
}

// Create returns a builder for creating a Submission entity.
func (c *SubmissionClient) Create() *SubmissionCreate {
	mutation := newSubmissionMutation(c.config, OpCreate)
	return &SubmissionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Submission entities.
func (c *SubmissionClient) CreateBulk(builders ...*SubmissionCreate) *SubmissionCreateBulk {
	return &SubmissionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SubmissionClient) MapCreateBulk(slice any, setFunc func(*SubmissionCreate, int)) *SubmissionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SubmissionCreateBulk{err: fmt.Errorf("calling to SubmissionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SubmissionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SubmissionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Submission.
func (c *SubmissionClient) Update() *SubmissionUpdate {
	mutation := newSubmissionMutation(c.config, OpUpdate)
	return &SubmissionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SubmissionClient) UpdateOne(s *Submission) *SubmissionUpdateOne {
	mutation := newSubmissionMutation(c.config, OpUpdateOne, withSubmission(s))
	return &SubmissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SubmissionClient) UpdateOneID(id int) *SubmissionUpdateOne {
	mutation := newSubmissionMutation(c.config, OpUpdateOne, withSubmissionID(id))
	return &SubmissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Submission.
func (c *SubmissionClient) Delete() *SubmissionDelete {
	mutation := newSubmissionMutation(c.config, OpDelete)
	return &SubmissionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SubmissionClient) DeleteOne(s *Submission) *SubmissionDeleteOne {
	return c.DeleteOneID(s.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SubmissionClient) DeleteOneID(id int) *SubmissionDeleteOne {
	builder := c.Delete().Where(submission.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SubmissionDeleteOne{builder}
}

// Query returns a query builder for Submission.
func (c *SubmissionClient) Query() *SubmissionQuery {
	return &SubmissionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSubmission},
		inters: c.Interceptors(),
	}
}

// Get returns a Submission entity by its id.
func (c *SubmissionClient) Get(ctx context.Context, id int) (*Submission, error) {
	return c.Query().Where(submission.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SubmissionClient) GetX(ctx context.Context, id int) *Submission {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryGame queries the game edge of a Submission.
func (c *SubmissionClient) QueryGame(s *Submission) *DailyGameQuery {
	query := (&DailyGameClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := s.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(submission.Table, submission.FieldID, id),
			sqlgraph.To(dailygame.Table, dailygame.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, submission.GameTable, submission.GameColumn),
		)
		fromV = sqlgraph.Neighbors(s.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SubmissionClient) Hooks() []Hook {
	return c.hooks.Submission
}

// Interceptors returns the client interceptors.
func (c *SubmissionClient) Interceptors() []Interceptor {
	return c.inters.Submission
}

func (c *SubmissionClient) mutate(ctx context.Context, m *SubmissionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SubmissionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SubmissionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SubmissionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SubmissionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Submission mutation op: %q", m.Op())
	}
}

// UniversityClient is a client for the University schema.
type UniversityClient struct {
	config
}

// NewUniversityClient returns a client for the University from the given config.
func NewUniversityClient(c config) *UniversityClient {
	return &UniversityClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `university.Hooks(f(g(h())))`.
func (c *UniversityClient) Use(hooks ...Hook) {
	c.hooks.University = append(c.hooks.University, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `university.Intercept(f(g(h())))`.
func (c *UniversityClient) Intercept(interceptors ...Interceptor) {
	c.inters.University = append(c.inters.University, interceptors...)
}

// Create returns a builder for creating a University entity.
func (c *UniversityClient) Create() *UniversityCreate {
	mutation := newUniversityMutation(c.config, OpCreate)
	return &UniversityCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of University entities.
func (c *UniversityClient) CreateBulk(builders ...*UniversityCreate) *UniversityCreateBulk {
	return &UniversityCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UniversityClient) MapCreateBulk(slice any, setFunc func(*UniversityCreate, int)) *UniversityCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UniversityCreateBulk{err: fmt.Errorf("calling to UniversityClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UniversityCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UniversityCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for University.
func (c *UniversityClient) Update() *UniversityUpdate {
	mutation := newUniversityMutation(c.config, OpUpdate)
	return &UniversityUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UniversityClient) UpdateOne(u *University) *UniversityUpdateOne {
	mutation := newUniversityMutation(c.config, OpUpdateOne, withUniversity(u))
	return &UniversityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UniversityClient) UpdateOneID(id uuid.UUID) *UniversityUpdateOne {
	mutation := newUniversityMutation(c.config, OpUpdateOne, withUniversityID(id))
	return &UniversityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for University.
func (c *UniversityClient) Delete() *UniversityDelete {
	mutation := newUniversityMutation(c.config, OpDelete)
	return &UniversityDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UniversityClient) DeleteOne(u *University) *UniversityDeleteOne {
	return c.DeleteOneID(u.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UniversityClient) DeleteOneID(id uuid.UUID) *UniversityDeleteOne {
	builder := c.Delete().Where(university.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UniversityDeleteOne{builder}
}

// Query returns a query builder for University.
func (c *UniversityClient) Query() *UniversityQuery {
	return &UniversityQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUniversity},
		inters: c.Interceptors(),
	}
}

// Get returns a University entity by its id.
func (c *UniversityClient) Get(ctx context.Context, id uuid.UUID) (*University, error) {
	return c.Query().Where(university.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UniversityClient) GetX(ctx context.Context, id uuid.UUID) *University {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEntries queries the entries edge of a University.
func (c *UniversityClient) QueryEntries(u *University) *GameEntryQuery {
	query := (&GameEntryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := u.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(university.Table, university.FieldID, id),
			sqlgraph.To(gameentry.Table, gameentry.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, university.EntriesTable, university.EntriesColumn),
		)
		fromV = sqlgraph.Neighbors(u.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UniversityClient) Hooks() []Hook {
	return c.hooks.University
}

// Interceptors returns the client interceptors.
func (c *UniversityClient) Interceptors() []Interceptor {
	return c.inters.University
}

func (c *UniversityClient) mutate(ctx context.Context, m *UniversityMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UniversityCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UniversityUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UniversityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UniversityDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown University mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(u *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(u))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id uuid.UUID) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(u *User) *UserDeleteOne {
	return c.DeleteOneID(u.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id uuid.UUID) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id uuid.UUID) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		DailyGame, GameEntry, Submission, University, User []ent.Hook
	}
	inters struct {
		DailyGame, GameEntry, Submission, University, User []ent.Interceptor
	}
)
