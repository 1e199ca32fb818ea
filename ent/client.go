// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/pathprep/pathprep/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/pathprep/pathprep/ent/contentevent"
	"github.com/pathprep/pathprep/ent/exposureevent"
	"github.com/pathprep/pathprep/ent/masteryrecord"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ContentEvent is the client for interacting with the ContentEvent builders.
	ContentEvent *ContentEventClient
	// ExposureEvent is the client for interacting with the ExposureEvent builders.
	ExposureEvent *ExposureEventClient
	// MasteryRecord is the client for interacting with the MasteryRecord builders.
	MasteryRecord *MasteryRecordClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ContentEvent = NewContentEventClient(c.config)
	c.ExposureEvent = NewExposureEventClient(c.config)
	c.MasteryRecord = NewMasteryRecordClient(c.config)
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
		ctx:           ctx,
		config:        cfg,
		ContentEvent:  NewContentEventClient(cfg),
		ExposureEvent: NewExposureEventClient(cfg),
		MasteryRecord: NewMasteryRecordClient(cfg),
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
		ctx:           ctx,
		config:        cfg,
		ContentEvent:  NewContentEventClient(cfg),
		ExposureEvent: NewExposureEventClient(cfg),
		MasteryRecord: NewMasteryRecordClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ContentEvent.
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
	c.ContentEvent.Use(hooks...)
	c.ExposureEvent.Use(hooks...)
	c.MasteryRecord.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ContentEvent.Intercept(interceptors...)
	c.ExposureEvent.Intercept(interceptors...)
	c.MasteryRecord.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ContentEventMutation:
		return c.ContentEvent.mutate(ctx, m)
	case *ExposureEventMutation:
		return c.ExposureEvent.mutate(ctx, m)
	case *MasteryRecordMutation:
		return c.MasteryRecord.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ContentEventClient is a client for the ContentEvent schema.
type ContentEventClient struct {
	config
}

// NewContentEventClient returns a client for the ContentEvent from the given config.
func NewContentEventClient(c config) *ContentEventClient {
	return &ContentEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `contentevent.Hooks(f(g(h())))`.
func (c *ContentEventClient) Use(hooks ...Hook) {
	c.hooks.ContentEvent = append(c.hooks.ContentEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `contentevent.Intercept(f(g(h())))`.
func (c *ContentEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ContentEvent = append(c.inters.ContentEvent, interceptors...)
}

// Create returns a builder for creating a ContentEvent entity.
func (c *ContentEventClient) Create() *ContentEventCreate {
	mutation := newContentEventMutation(c.config, OpCreate)
	return &ContentEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ContentEvent entities.
func (c *ContentEventClient) CreateBulk(builders ...*ContentEventCreate) *ContentEventCreateBulk {
	return &ContentEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ContentEventClient) MapCreateBulk(slice any, setFunc func(*ContentEventCreate, int)) *ContentEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ContentEventCreateBulk{err: fmt.Errorf("calling to ContentEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ContentEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ContentEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ContentEvent.
func (c *ContentEventClient) Update() *ContentEventUpdate {
	mutation := newContentEventMutation(c.config, OpUpdate)
	return &ContentEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ContentEventClient) UpdateOne(_m *ContentEvent) *ContentEventUpdateOne {
	mutation := newContentEventMutation(c.config, OpUpdateOne, withContentEvent(_m))
	return &ContentEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ContentEventClient) UpdateOneID(id int) *ContentEventUpdateOne {
	mutation := newContentEventMutation(c.config, OpUpdateOne, withContentEventID(id))
	return &ContentEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ContentEvent.
func (c *ContentEventClient) Delete() *ContentEventDelete {
	mutation := newContentEventMutation(c.config, OpDelete)
	return &ContentEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ContentEventClient) DeleteOne(_m *ContentEvent) *ContentEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ContentEventClient) DeleteOneID(id int) *ContentEventDeleteOne {
	builder := c.Delete().Where(contentevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ContentEventDeleteOne{builder}
}

// Query returns a query builder for ContentEvent.
func (c *ContentEventClient) Query() *ContentEventQuery {
	return &ContentEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeContentEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ContentEvent entity by its id.
func (c *ContentEventClient) Get(ctx context.Context, id int) (*ContentEvent, error) {
	return c.Query().Where(contentevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ContentEventClient) GetX(ctx context.Context, id int) *ContentEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ContentEventClient) Hooks() []Hook {
	return c.hooks.ContentEvent
}

// Interceptors returns the client interceptors.
func (c *ContentEventClient) Interceptors() []Interceptor {
	return c.inters.ContentEvent
}

func (c *ContentEventClient) mutate(ctx context.Context, m *ContentEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ContentEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ContentEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ContentEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ContentEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ContentEvent mutation op: %q", m.Op())
	}
}

// ExposureEventClient is a client for the ExposureEvent schema.
type ExposureEventClient struct {
	config
}

// NewExposureEventClient returns a client for the ExposureEvent from the given config.
func NewExposureEventClient(c config) *ExposureEventClient {
	return &ExposureEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `exposureevent.Hooks(f(g(h())))`.
func (c *ExposureEventClient) Use(hooks ...Hook) {
	c.hooks.ExposureEvent = append(c.hooks.ExposureEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `exposureevent.Intercept(f(g(h())))`.
func (c *ExposureEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExposureEvent = append(c.inters.ExposureEvent, interceptors...)
}

// Create returns a builder for creating a ExposureEvent entity.
func (c *ExposureEventClient) Create() *ExposureEventCreate {
	mutation := newExposureEventMutation(c.config, OpCreate)
	return &ExposureEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExposureEvent entities.
func (c *ExposureEventClient) CreateBulk(builders ...*ExposureEventCreate) *ExposureEventCreateBulk {
	return &ExposureEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExposureEventClient) MapCreateBulk(slice any, setFunc func(*ExposureEventCreate, int)) *ExposureEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExposureEventCreateBulk{err: fmt.Errorf("calling to ExposureEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExposureEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExposureEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExposureEvent.
func (c *ExposureEventClient) Update() *ExposureEventUpdate {
	mutation := newExposureEventMutation(c.config, OpUpdate)
	return &ExposureEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExposureEventClient) UpdateOne(_m *ExposureEvent) *ExposureEventUpdateOne {
	mutation := newExposureEventMutation(c.config, OpUpdateOne, withExposureEvent(_m))
	return &ExposureEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExposureEventClient) UpdateOneID(id int) *ExposureEventUpdateOne {
	mutation := newExposureEventMutation(c.config, OpUpdateOne, withExposureEventID(id))
	return &ExposureEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExposureEvent.
func (c *ExposureEventClient) Delete() *ExposureEventDelete {
	mutation := newExposureEventMutation(c.config, OpDelete)
	return &ExposureEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExposureEventClient) DeleteOne(_m *ExposureEvent) *ExposureEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExposureEventClient) DeleteOneID(id int) *ExposureEventDeleteOne {
	builder := c.Delete().Where(exposureevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExposureEventDeleteOne{builder}
}

// Query returns a query builder for ExposureEvent.
func (c *ExposureEventClient) Query() *ExposureEventQuery {
	return &ExposureEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExposureEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ExposureEvent entity by its id.
func (c *ExposureEventClient) Get(ctx context.Context, id int) (*ExposureEvent, error) {
	return c.Query().Where(exposureevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExposureEventClient) GetX(ctx context.Context, id int) *ExposureEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ExposureEventClient) Hooks() []Hook {
	return c.hooks.ExposureEvent
}

// Interceptors returns the client interceptors.
func (c *ExposureEventClient) Interceptors() []Interceptor {
	return c.inters.ExposureEvent
}

func (c *ExposureEventClient) mutate(ctx context.Context, m *ExposureEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExposureEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExposureEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExposureEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExposureEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExposureEvent mutation op: %q", m.Op())
	}
}

// MasteryRecordClient is a client for the MasteryRecord schema.
type MasteryRecordClient struct {
	config
}

// NewMasteryRecordClient returns a client for the MasteryRecord from the given config.
func NewMasteryRecordClient(c config) *MasteryRecordClient {
	return &MasteryRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `masteryrecord.Hooks(f(g(h())))`.
func (c *MasteryRecordClient) Use(hooks ...Hook) {
	c.hooks.MasteryRecord = append(c.hooks.MasteryRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `masteryrecord.Intercept(f(g(h())))`.
func (c *MasteryRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.MasteryRecord = append(c.inters.MasteryRecord, interceptors...)
}

// Create returns a builder for creating a MasteryRecord entity.
func (c *MasteryRecordClient) Create() *MasteryRecordCreate {
	mutation := newMasteryRecordMutation(c.config, OpCreate)
	return &MasteryRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MasteryRecord entities.
func (c *MasteryRecordClient) CreateBulk(builders ...*MasteryRecordCreate) *MasteryRecordCreateBulk {
	return &MasteryRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MasteryRecordClient) MapCreateBulk(slice any, setFunc func(*MasteryRecordCreate, int)) *MasteryRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MasteryRecordCreateBulk{err: fmt.Errorf("calling to MasteryRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MasteryRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MasteryRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MasteryRecord.
func (c *MasteryRecordClient) Update() *MasteryRecordUpdate {
	mutation := newMasteryRecordMutation(c.config, OpUpdate)
	return &MasteryRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MasteryRecordClient) UpdateOne(_m *MasteryRecord) *MasteryRecordUpdateOne {
	mutation := newMasteryRecordMutation(c.config, OpUpdateOne, withMasteryRecord(_m))
	return &MasteryRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MasteryRecordClient) UpdateOneID(id int) *MasteryRecordUpdateOne {
	mutation := newMasteryRecordMutation(c.config, OpUpdateOne, withMasteryRecordID(id))
	return &MasteryRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MasteryRecord.
func (c *MasteryRecordClient) Delete() *MasteryRecordDelete {
	mutation := newMasteryRecordMutation(c.config, OpDelete)
	return &MasteryRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MasteryRecordClient) DeleteOne(_m *MasteryRecord) *MasteryRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MasteryRecordClient) DeleteOneID(id int) *MasteryRecordDeleteOne {
	builder := c.Delete().Where(masteryrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MasteryRecordDeleteOne{builder}
}

// Query returns a query builder for MasteryRecord.
func (c *MasteryRecordClient) Query() *MasteryRecordQuery {
	return &MasteryRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMasteryRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a MasteryRecord entity by its id.
func (c *MasteryRecordClient) Get(ctx context.Context, id int) (*MasteryRecord, error) {
	return c.Query().Where(masteryrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MasteryRecordClient) GetX(ctx context.Context, id int) *MasteryRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MasteryRecordClient) Hooks() []Hook {
	return c.hooks.MasteryRecord
}

// Interceptors returns the client interceptors.
func (c *MasteryRecordClient) Interceptors() []Interceptor {
	return c.inters.MasteryRecord
}

func (c *MasteryRecordClient) mutate(ctx context.Context, m *MasteryRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MasteryRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MasteryRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MasteryRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MasteryRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MasteryRecord mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ContentEvent, ExposureEvent, MasteryRecord []ent.Hook
	}
	inters struct {
		ContentEvent, ExposureEvent, MasteryRecord []ent.Interceptor
	}
)
