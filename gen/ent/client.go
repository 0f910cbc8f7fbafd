// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/brunoqueiroz/curricula-admin/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/brunoqueiroz/curricula-admin/gen/ent/institution"
	"github.com/brunoqueiroz/curricula-admin/gen/ent/institutiontype"
	"github.com/brunoqueiroz/curricula-admin/gen/ent/standarditem"
	"github.com/brunoqueiroz/curricula-admin/gen/ent/userrule"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Institution is the client for interacting with the Institution builders.
	Institution *InstitutionClient
	// InstitutionType is the client for interacting with the InstitutionType builders.
	InstitutionType *InstitutionTypeClient
	// StandardItem is the client for interacting with the StandardItem builders.
	StandardItem *StandardItemClient
	// UserRule is the client for interacting with the UserRule builders.
	UserRule *UserRuleClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Institution = NewInstitutionClient(c.config)
	c.InstitutionType = NewInstitutionTypeClient(c.config)
	c.StandardItem = NewStandardItemClient(c.config)
	c.UserRule = NewUserRuleClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		Institution:     NewInstitutionClient(cfg),
		InstitutionType: NewInstitutionTypeClient(cfg),
		StandardItem:    NewStandardItemClient(cfg),
		UserRule:        NewUserRuleClient(cfg),
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
		Institution:     NewInstitutionClient(cfg),
		InstitutionType: NewInstitutionTypeClient(cfg),
		StandardItem:    NewStandardItemClient(cfg),
		UserRule:        NewUserRuleClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Institution.
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
	c.Institution.Use(hooks...)
	c.InstitutionType.Use(hooks...)
	c.StandardItem.Use(hooks...)
	c.UserRule.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Institution.Intercept(interceptors...)
	c.InstitutionType.Intercept(interceptors...)
	c.StandardItem.Intercept(interceptors...)
	c.UserRule.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *InstitutionMutation:
		return c.Institution.mutate(ctx, m)
	case *InstitutionTypeMutation:
		return c.InstitutionType.mutate(ctx, m)
	case *StandardItemMutation:
		return c.StandardItem.mutate(ctx, m)
	case *UserRuleMutation:
		return c.UserRule.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// InstitutionClient is a client for the Institution schema.
type InstitutionClient struct {
	config
}

// NewInstitutionClient returns a client for the Institution from the given config.
func NewInstitutionClient(c config) *InstitutionClient {
	return &InstitutionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `institution.Hooks(f(g(h())))`.
func (c *InstitutionClient) Use(hooks ...Hook) {
	c.hooks.Institution = append(c.hooks.Institution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `institution.Intercept(f(g(h())))`.
func (c *InstitutionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Institution = append(c.inters.Institution, interceptors...)
}

// Create returns a builder for creating a Institution entity.
func (c *InstitutionClient) Create() *InstitutionCreate {
	mutation := newInstitutionMutation(c.config, OpCreate)
	return &InstitutionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Institution entities.
func (c *InstitutionClient) CreateBulk(builders ...*InstitutionCreate) *InstitutionCreateBulk {
	return &InstitutionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InstitutionClient) MapCreateBulk(slice any, setFunc func(*InstitutionCreate, int)) *InstitutionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InstitutionCreateBulk{err: fmt.Errorf("calling to InstitutionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InstitutionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InstitutionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Institution.
func (c *InstitutionClient) Update() *InstitutionUpdate {
	mutation := newInstitutionMutation(c.config, OpUpdate)
	return &InstitutionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InstitutionClient) UpdateOne(_m *Institution) *InstitutionUpdateOne {
	mutation := newInstitutionMutation(c.config, OpUpdateOne, withInstitution(_m))
	return &InstitutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InstitutionClient) UpdateOneID(id uuid.UUID) *InstitutionUpdateOne {
	mutation := newInstitutionMutation(c.config, OpUpdateOne, withInstitutionID(id))
	return &InstitutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Institution.
func (c *InstitutionClient) Delete() *InstitutionDelete {
	mutation := newInstitutionMutation(c.config, OpDelete)
	return &InstitutionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InstitutionClient) DeleteOne(_m *Institution) *InstitutionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InstitutionClient) DeleteOneID(id uuid.UUID) *InstitutionDeleteOne {
	builder := c.Delete().Where(institution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InstitutionDeleteOne{builder}
}

// Query returns a query builder for Institution.
func (c *InstitutionClient) Query() *InstitutionQuery {
	return &InstitutionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInstitution},
		inters: c.Interceptors(),
	}
}

// Get returns a Institution entity by its id.
func (c *InstitutionClient) Get(ctx context.Context, id uuid.UUID) (*Institution, error) {
	return c.Query().Where(institution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InstitutionClient) GetX(ctx context.Context, id uuid.UUID) *Institution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryInstitutionType queries the institution_type edge of a Institution.
func (c *InstitutionClient) QueryInstitutionType(_m *Institution) *InstitutionTypeQuery {
	query := (&InstitutionTypeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(institution.Table, institution.FieldID, id),
			sqlgraph.To(institutiontype.Table, institutiontype.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, institution.InstitutionTypeTable, institution.InstitutionTypeColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *InstitutionClient) Hooks() []Hook {
	return c.hooks.Institution
}

// Interceptors returns the client interceptors.
func (c *InstitutionClient) Interceptors() []Interceptor {
	return c.inters.Institution
}

func (c *InstitutionClient) mutate(ctx context.Context, m *InstitutionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InstitutionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InstitutionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InstitutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InstitutionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Institution mutation op: %q", m.Op())
	}
}

// InstitutionTypeClient is a client for the InstitutionType schema.
type InstitutionTypeClient struct {
	config
}

// NewInstitutionTypeClient returns a client for the InstitutionType from the given config.
func NewInstitutionTypeClient(c config) *InstitutionTypeClient {
	return &InstitutionTypeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `institutiontype.Hooks(f(g(h())))`.
func (c *InstitutionTypeClient) Use(hooks ...Hook) {
	c.hooks.InstitutionType = append(c.hooks.InstitutionType, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `institutiontype.Intercept(f(g(h())))`.
func (c *InstitutionTypeClient) Intercept(interceptors ...Interceptor) {
	c.inters.InstitutionType = append(c.inters.InstitutionType, interceptors...)
}

// Create returns a builder for creating a InstitutionType entity.
func (c *InstitutionTypeClient) Create() *InstitutionTypeCreate {
	mutation := newInstitutionTypeMutation(c.config, OpCreate)
	return &InstitutionTypeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InstitutionType entities.
func (c *InstitutionTypeClient) CreateBulk(builders ...*InstitutionTypeCreate) *InstitutionTypeCreateBulk {
	return &InstitutionTypeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InstitutionTypeClient) MapCreateBulk(slice any, setFunc func(*InstitutionTypeCreate, int)) *InstitutionTypeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InstitutionTypeCreateBulk{err: fmt.Errorf("calling to InstitutionTypeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InstitutionTypeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InstitutionTypeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InstitutionType.
func (c *InstitutionTypeClient) Update() *InstitutionTypeUpdate {
	mutation := newInstitutionTypeMutation(c.config, OpUpdate)
	return &InstitutionTypeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InstitutionTypeClient) UpdateOne(_m *InstitutionType) *InstitutionTypeUpdateOne {
	mutation := newInstitutionTypeMutation(c.config, OpUpdateOne, withInstitutionType(_m))
	return &InstitutionTypeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InstitutionTypeClient) UpdateOneID(id uuid.UUID) *InstitutionTypeUpdateOne {
	mutation := newInstitutionTypeMutation(c.config, OpUpdateOne, withInstitutionTypeID(id))
	return &InstitutionTypeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InstitutionType.
func (c *InstitutionTypeClient) Delete() *InstitutionTypeDelete {
	mutation := newInstitutionTypeMutation(c.config, OpDelete)
	return &InstitutionTypeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InstitutionTypeClient) DeleteOne(_m *InstitutionType) *InstitutionTypeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InstitutionTypeClient) DeleteOneID(id uuid.UUID) *InstitutionTypeDeleteOne {
	builder := c.Delete().Where(institutiontype.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InstitutionTypeDeleteOne{builder}
}

// Query returns a query builder for InstitutionType.
func (c *InstitutionTypeClient) Query() *InstitutionTypeQuery {
	return &InstitutionTypeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInstitutionType},
		inters: c.Interceptors(),
	}
}

// Get returns a InstitutionType entity by its id.
func (c *InstitutionTypeClient) Get(ctx context.Context, id uuid.UUID) (*InstitutionType, error) {
	return c.Query().Where(institutiontype.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InstitutionTypeClient) GetX(ctx context.Context, id uuid.UUID) *InstitutionType {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryInstitutions queries the institutions edge of a InstitutionType.
func (c *InstitutionTypeClient) QueryInstitutions(_m *InstitutionType) *InstitutionQuery {
	query := (&InstitutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(institutiontype.Table, institutiontype.FieldID, id),
			sqlgraph.To(institution.Table, institution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, institutiontype.InstitutionsTable, institutiontype.InstitutionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *InstitutionTypeClient) Hooks() []Hook {
	return c.hooks.InstitutionType
}

// Interceptors returns the client interceptors.
func (c *InstitutionTypeClient) Interceptors() []Interceptor {
	return c.inters.InstitutionType
}

func (c *InstitutionTypeClient) mutate(ctx context.Context, m *InstitutionTypeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InstitutionTypeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InstitutionTypeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InstitutionTypeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InstitutionTypeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown InstitutionType mutation op: %q", m.Op())
	}
}

// StandardItemClient is a client for the StandardItem schema.
type StandardItemClient struct {
	config
}

// NewStandardItemClient returns a client for the StandardItem from the given config.
func NewStandardItemClient(c config) *StandardItemClient {
	return &StandardItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `standarditem.Hooks(f(g(h())))`.
func (c *StandardItemClient) Use(hooks ...Hook) {
	c.hooks.StandardItem = append(c.hooks.StandardItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `standarditem.Intercept(f(g(h())))`.
func (c *StandardItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.StandardItem = append(c.inters.StandardItem, interceptors...)
}

// Create returns a builder for creating a StandardItem entity.
func (c *StandardItemClient) Create() *StandardItemCreate {
	mutation := newStandardItemMutation(c.config, OpCreate)
	return &StandardItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StandardItem entities.
func (c *StandardItemClient) CreateBulk(builders ...*StandardItemCreate) *StandardItemCreateBulk {
	return &StandardItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StandardItemClient) MapCreateBulk(slice any, setFunc func(*StandardItemCreate, int)) *StandardItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StandardItemCreateBulk{err: fmt.Errorf("calling to StandardItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StandardItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StandardItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StandardItem.
func (c *StandardItemClient) Update() *StandardItemUpdate {
	mutation := newStandardItemMutation(c.config, OpUpdate)
	return &StandardItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StandardItemClient) UpdateOne(_m *StandardItem) *StandardItemUpdateOne {
	mutation := newStandardItemMutation(c.config, OpUpdateOne, withStandardItem(_m))
	return &StandardItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StandardItemClient) UpdateOneID(id uuid.UUID) *StandardItemUpdateOne {
	mutation := newStandardItemMutation(c.config, OpUpdateOne, withStandardItemID(id))
	return &StandardItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StandardItem.
func (c *StandardItemClient) Delete() *StandardItemDelete {
	mutation := newStandardItemMutation(c.config, OpDelete)
	return &StandardItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StandardItemClient) DeleteOne(_m *StandardItem) *StandardItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StandardItemClient) DeleteOneID(id uuid.UUID) *StandardItemDeleteOne {
	builder := c.Delete().Where(standarditem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StandardItemDeleteOne{builder}
}

// Query returns a query builder for StandardItem.
func (c *StandardItemClient) Query() *StandardItemQuery {
	return &StandardItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStandardItem},
		inters: c.Interceptors(),
	}
}

// Get returns a StandardItem entity by its id.
func (c *StandardItemClient) Get(ctx context.Context, id uuid.UUID) (*StandardItem, error) {
	return c.Query().Where(standarditem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StandardItemClient) GetX(ctx context.Context, id uuid.UUID) *StandardItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StandardItemClient) Hooks() []Hook {
	return c.hooks.StandardItem
}

// Interceptors returns the client interceptors.
func (c *StandardItemClient) Interceptors() []Interceptor {
	return c.inters.StandardItem
}

func (c *StandardItemClient) mutate(ctx context.Context, m *StandardItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StandardItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StandardItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StandardItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StandardItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StandardItem mutation op: %q", m.Op())
	}
}

// UserRuleClient is a client for the UserRule schema.
type UserRuleClient struct {
	config
}

// NewUserRuleClient returns a client for the UserRule from the given config.
func NewUserRuleClient(c config) *UserRuleClient {
	return &UserRuleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `userrule.Hooks(f(g(h())))`.
func (c *UserRuleClient) Use(hooks ...Hook) {
	c.hooks.UserRule = append(c.hooks.UserRule, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `userrule.Intercept(f(g(h())))`.
func (c *UserRuleClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserRule = append(c.inters.UserRule, interceptors...)
}

// Create returns a builder for creating a UserRule entity.
func (c *UserRuleClient) Create() *UserRuleCreate {
	mutation := newUserRuleMutation(c.config, OpCreate)
	return &UserRuleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserRule entities.
func (c *UserRuleClient) CreateBulk(builders ...*UserRuleCreate) *UserRuleCreateBulk {
	return &UserRuleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserRuleClient) MapCreateBulk(slice any, setFunc func(*UserRuleCreate, int)) *UserRuleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserRuleCreateBulk{err: fmt.Errorf("calling to UserRuleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserRuleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserRuleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserRule.
func (c *UserRuleClient) Update() *UserRuleUpdate {
	mutation := newUserRuleMutation(c.config, OpUpdate)
	return &UserRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserRuleClient) UpdateOne(_m *UserRule) *UserRuleUpdateOne {
	mutation := newUserRuleMutation(c.config, OpUpdateOne, withUserRule(_m))
	return &UserRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserRuleClient) UpdateOneID(id uuid.UUID) *UserRuleUpdateOne {
	mutation := newUserRuleMutation(c.config, OpUpdateOne, withUserRuleID(id))
	return &UserRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserRule.
func (c *UserRuleClient) Delete() *UserRuleDelete {
	mutation := newUserRuleMutation(c.config, OpDelete)
	return &UserRuleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserRuleClient) DeleteOne(_m *UserRule) *UserRuleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserRuleClient) DeleteOneID(id uuid.UUID) *UserRuleDeleteOne {
	builder := c.Delete().Where(userrule.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserRuleDeleteOne{builder}
}

// Query returns a query builder for UserRule.
func (c *UserRuleClient) Query() *UserRuleQuery {
	return &UserRuleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserRule},
		inters: c.Interceptors(),
	}
}

// Get returns a UserRule entity by its id.
func (c *UserRuleClient) Get(ctx context.Context, id uuid.UUID) (*UserRule, error) {
	return c.Query().Where(userrule.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserRuleClient) GetX(ctx context.Context, id uuid.UUID) *UserRule {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserRuleClient) Hooks() []Hook {
	return c.hooks.UserRule
}

// Interceptors returns the client interceptors.
func (c *UserRuleClient) Interceptors() []Interceptor {
	return c.inters.UserRule
}

func (c *UserRuleClient) mutate(ctx context.Context, m *UserRuleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserRuleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserRuleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UserRule mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Institution, InstitutionType, StandardItem, UserRule []ent.Hook
	}
	inters struct {
		Institution, InstitutionType, StandardItem, UserRule []ent.Interceptor
	}
)
