// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/tinysteps/session-service/internal/repo/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/tinysteps/session-service/internal/repo/sessionoffering"
	"github.com/tinysteps/session-service/internal/repo/sessiontype"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// SessionOffering is the client for interacting with the SessionOffering builders.
	SessionOffering *SessionOfferingClient
	// SessionType is the client for interacting with the SessionType builders.
	SessionType *SessionTypeClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.SessionOffering = NewSessionOfferingClient(c.config)
	c.SessionType = NewSessionTypeClient(c.config)
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
var ErrTxStarted = errors.New("repo: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("repo: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		SessionOffering: NewSessionOfferingClient(cfg),
		SessionType:     NewSessionTypeClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		SessionOffering: NewSessionOfferingClient(cfg),
		SessionType:     NewSessionTypeClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		SessionOffering.
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
	c.SessionOffering.Use(hooks...)
	c.SessionType.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.SessionOffering.Intercept(interceptors...)
	c.SessionType.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *SessionOfferingMutation:
		return c.SessionOffering.mutate(ctx, m)
	case *SessionTypeMutation:
		return c.SessionType.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("repo: unknown mutation type %T", m)
	}
}

// SessionOfferingClient is a client for the SessionOffering schema.
type SessionOfferingClient struct {
	config
}

// NewSessionOfferingClient returns a client for the SessionOffering from the given config.
func NewSessionOfferingClient(c config) *SessionOfferingClient {
	return &SessionOfferingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sessionoffering.Hooks(f(g(h())))`.
func (c *SessionOfferingClient) Use(hooks ...Hook) {
	c.hooks.SessionOffering = append(c.hooks.SessionOffering, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sessionoffering.Intercept(f(g(h())))`.
func (c *SessionOfferingClient) Intercept(interceptors ...Interceptor) {
	c.inters.SessionOffering = append(c.inters.SessionOffering, interceptors...)
}

// Create returns a builder for creating a SessionOffering entity.
func (c *SessionOfferingClient) Create() *SessionOfferingCreate {
	mutation := newSessionOfferingMutation(c.config, OpCreate)
	return &SessionOfferingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SessionOffering entities.
func (c *SessionOfferingClient) CreateBulk(builders ...*SessionOfferingCreate) *SessionOfferingCreateBulk {
	return &SessionOfferingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionOfferingClient) MapCreateBulk(slice any, setFunc func(*SessionOfferingCreate, int)) *SessionOfferingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionOfferingCreateBulk{err: fmt.Errorf("calling to SessionOfferingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionOfferingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionOfferingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SessionOffering.
func (c *SessionOfferingClient) Update() *SessionOfferingUpdate {
	mutation := newSessionOfferingMutation(c.config, OpUpdate)
	return &SessionOfferingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionOfferingClient) UpdateOne(_m *SessionOffering) *SessionOfferingUpdateOne {
	mutation := newSessionOfferingMutation(c.config, OpUpdateOne, withSessionOffering(_m))
	return &SessionOfferingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionOfferingClient) UpdateOneID(id uuid.UUID) *SessionOfferingUpdateOne {
	mutation := newSessionOfferingMutation(c.config, OpUpdateOne, withSessionOfferingID(id))
	return &SessionOfferingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SessionOffering.
func (c *SessionOfferingClient) Delete() *SessionOfferingDelete {
	mutation := newSessionOfferingMutation(c.config, OpDelete)
	return &SessionOfferingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionOfferingClient) DeleteOne(_m *SessionOffering) *SessionOfferingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionOfferingClient) DeleteOneID(id uuid.UUID) *SessionOfferingDeleteOne {
	builder := c.Delete().Where(sessionoffering.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionOfferingDeleteOne{builder}
}

// Query returns a query builder for SessionOffering.
func (c *SessionOfferingClient) Query() *SessionOfferingQuery {
	return &SessionOfferingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSessionOffering},
		inters: c.Interceptors(),
	}
}

// Get returns a SessionOffering entity by its id.
func (c *SessionOfferingClient) Get(ctx context.Context, id uuid.UUID) (*SessionOffering, error) {
	return c.Query().Where(sessionoffering.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionOfferingClient) GetX(ctx context.Context, id uuid.UUID) *SessionOffering {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SessionOfferingClient) Hooks() []Hook {
	return c.hooks.SessionOffering
}

// Interceptors returns the client interceptors.
func (c *SessionOfferingClient) Interceptors() []Interceptor {
	return c.inters.SessionOffering
}

func (c *SessionOfferingClient) mutate(ctx context.Context, m *SessionOfferingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionOfferingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionOfferingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionOfferingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionOfferingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown SessionOffering mutation op: %q", m.Op())
	}
}

// SessionTypeClient is a client for the SessionType schema.
type SessionTypeClient struct {
	config
}

// NewSessionTypeClient returns a client for the SessionType from the given config.
func NewSessionTypeClient(c config) *SessionTypeClient {
	return &SessionTypeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sessiontype.Hooks(f(g(h())))`.
func (c *SessionTypeClient) Use(hooks ...Hook) {
	c.hooks.SessionType = append(c.hooks.SessionType, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sessiontype.Intercept(f(g(h())))`.
func (c *SessionTypeClient) Intercept(interceptors ...Interceptor) {
	c.inters.SessionType = append(c.inters.SessionType, interceptors...)
}

// Create returns a builder for creating a SessionType entity.
func (c *SessionTypeClient) Create() *SessionTypeCreate {
	mutation := newSessionTypeMutation(c.config, OpCreate)
	return &SessionTypeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SessionType entities.
func (c *SessionTypeClient) CreateBulk(builders ...*SessionTypeCreate) *SessionTypeCreateBulk {
	return &SessionTypeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionTypeClient) MapCreateBulk(slice any, setFunc func(*SessionTypeCreate, int)) *SessionTypeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionTypeCreateBulk{err: fmt.Errorf("calling to SessionTypeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionTypeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionTypeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SessionType.
func (c *SessionTypeClient) Update() *SessionTypeUpdate {
	mutation := newSessionTypeMutation(c.config, OpUpdate)
	return &SessionTypeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionTypeClient) UpdateOne(_m *SessionType) *SessionTypeUpdateOne {
	mutation := newSessionTypeMutation(c.config, OpUpdateOne, withSessionType(_m))
	return &SessionTypeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionTypeClient) UpdateOneID(id uuid.UUID) *SessionTypeUpdateOne {
	mutation := newSessionTypeMutation(c.config, OpUpdateOne, withSessionTypeID(id))
	return &SessionTypeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SessionType.
func (c *SessionTypeClient) Delete() *SessionTypeDelete {
	mutation := newSessionTypeMutation(c.config, OpDelete)
	return &SessionTypeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionTypeClient) DeleteOne(_m *SessionType) *SessionTypeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionTypeClient) DeleteOneID(id uuid.UUID) *SessionTypeDeleteOne {
	builder := c.Delete().Where(sessiontype.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionTypeDeleteOne{builder}
}

// Query returns a query builder for SessionType.
func (c *SessionTypeClient) Query() *SessionTypeQuery {
	return &SessionTypeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSessionType},
		inters: c.Interceptors(),
	}
}

// Get returns a SessionType entity by its id.
func (c *SessionTypeClient) Get(ctx context.Context, id uuid.UUID) (*SessionType, error) {
	return c.Query().Where(sessiontype.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionTypeClient) GetX(ctx context.Context, id uuid.UUID) *SessionType {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SessionTypeClient) Hooks() []Hook {
	return c.hooks.SessionType
}

// Interceptors returns the client interceptors.
func (c *SessionTypeClient) Interceptors() []Interceptor {
	return c.inters.SessionType
}

func (c *SessionTypeClient) mutate(ctx context.Context, m *SessionTypeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionTypeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionTypeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionTypeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionTypeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown SessionType mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		SessionOffering, SessionType []ent.Hook
	}
	inters struct {
		SessionOffering, SessionType []ent.Interceptor
	}
)
