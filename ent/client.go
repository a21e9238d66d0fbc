// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/autodiag/refinery/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/autodiag/refinery/ent/chunkevaluation"
	"github.com/autodiag/refinery/ent/crawlrequest"
	"github.com/autodiag/refinery/ent/document"
	"github.com/autodiag/refinery/ent/documentchunk"
	"github.com/autodiag/refinery/ent/dtccause"
	"github.com/autodiag/refinery/ent/dtcdiagnosticstep"
	"github.com/autodiag/refinery/ent/dtcmaster"
	"github.com/autodiag/refinery/ent/dtcrelatedsensor"
	"github.com/autodiag/refinery/ent/entitysource"
	"github.com/autodiag/refinery/ent/extractedcategory"
	"github.com/autodiag/refinery/ent/extractedcause"
	"github.com/autodiag/refinery/ent/extracteddtc"
	"github.com/autodiag/refinery/ent/extractedsensor"
	"github.com/autodiag/refinery/ent/extractedstep"
	"github.com/autodiag/refinery/ent/extractedtsb"
	"github.com/autodiag/refinery/ent/processinglog"
	"github.com/autodiag/refinery/ent/resolutionlog"
	"github.com/autodiag/refinery/ent/sensor"
	"github.com/autodiag/refinery/ent/tsbbulletin"
	"github.com/autodiag/refinery/ent/vehicle"
	"github.com/autodiag/refinery/ent/vehicledtc"
	"github.com/autodiag/refinery/ent/vehiclemention"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ChunkEvaluation is the client for interacting with the ChunkEvaluation builders.
	ChunkEvaluation *ChunkEvaluationClient
	// CrawlRequest is the client for interacting with the CrawlRequest builders.
	CrawlRequest *CrawlRequestClient
	// DTCCause is the client for interacting with the DTCCause builders.
	DTCCause *DTCCauseClient
	// DTCDiagnosticStep is the client for interacting with the DTCDiagnosticStep builders.
	DTCDiagnosticStep *DTCDiagnosticStepClient
	// DTCMaster is the client for interacting with the DTCMaster builders.
	DTCMaster *DTCMasterClient
	// DTCRelatedSensor is the client for interacting with the DTCRelatedSensor builders.
	DTCRelatedSensor *DTCRelatedSensorClient
	// Document is the client for interacting with the Document builders.
	Document *DocumentClient
	// DocumentChunk is the client for interacting with the DocumentChunk builders.
	DocumentChunk *DocumentChunkClient
	// EntitySource is the client for interacting with the EntitySource builders.
	EntitySource *EntitySourceClient
	// ExtractedCategory is the client for interacting with the ExtractedCategory builders.
	ExtractedCategory *ExtractedCategoryClient
	// ExtractedCause is the client for interacting with the ExtractedCause builders.
	ExtractedCause *ExtractedCauseClient
	// ExtractedDTC is the client for interacting with the ExtractedDTC builders.
	ExtractedDTC *ExtractedDTCClient
	// ExtractedSensor is the client for interacting with the ExtractedSensor builders.
	ExtractedSensor *ExtractedSensorClient
	// ExtractedStep is the client for interacting with the ExtractedStep builders.
	ExtractedStep *ExtractedStepClient
	// ExtractedTSB is the client for interacting with the ExtractedTSB builders.
	ExtractedTSB *ExtractedTSBClient
	// ProcessingLog is the client for interacting with the ProcessingLog builders.
	ProcessingLog *ProcessingLogClient
	// ResolutionLog is the client for interacting with the ResolutionLog builders.
	ResolutionLog *ResolutionLogClient
	// Sensor is the client for interacting with the Sensor builders.
	Sensor *SensorClient
	// TSBBulletin is the client for interacting with the TSBBulletin builders.
	TSBBulletin *TSBBulletinClient
	// Vehicle is the client for interacting with the Vehicle builders.
	Vehicle *VehicleClient
	// VehicleDTC is the client for interacting with the VehicleDTC builders.
	VehicleDTC *VehicleDTCClient
	// VehicleMention is the client for interacting with the VehicleMention builders.
	VehicleMention *VehicleMentionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ChunkEvaluation = NewChunkEvaluationClient(c.config)
	c.CrawlRequest = NewCrawlRequestClient(c.config)
	c.DTCCause = NewDTCCauseClient(c.config)
	c.DTCDiagnosticStep = NewDTCDiagnosticStepClient(c.config)
	c.DTCMaster = NewDTCMasterClient(c.config)
	c.DTCRelatedSensor = NewDTCRelatedSensorClient(c.config)
	c.Document = NewDocumentClient(c.config)
	c.DocumentChunk = NewDocumentChunkClient(c.config)
	c.EntitySource = NewEntitySourceClient(c.config)
	c.ExtractedCategory = NewExtractedCategoryClient(c.config)
	c.ExtractedCause = NewExtractedCauseClient(c.config)
	c.ExtractedDTC = NewExtractedDTCClient(c.config)
	c.ExtractedSensor = NewExtractedSensorClient(c.config)
	c.ExtractedStep = NewExtractedStepClient(c.config)
	c.ExtractedTSB = NewExtractedTSBClient(c.config)
	c.ProcessingLog = NewProcessingLogClient(c.config)
	c.ResolutionLog = NewResolutionLogClient(c.config)
	c.Sensor = NewSensorClient(c.config)
	c.TSBBulletin = NewTSBBulletinClient(c.config)
	c.Vehicle = NewVehicleClient(c.config)
	c.VehicleDTC = NewVehicleDTCClient(c.config)
	c.VehicleMention = NewVehicleMentionClient(c.config)
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
		ctx:               ctx,
		config:            cfg,
		ChunkEvaluation:   NewChunkEvaluationClient(cfg),
		CrawlRequest:      NewCrawlRequestClient(cfg),
		DTCCause:          NewDTCCauseClient(cfg),
		DTCDiagnosticStep: NewDTCDiagnosticStepClient(cfg),
		DTCMaster:         NewDTCMasterClient(cfg),
		DTCRelatedSensor:  NewDTCRelatedSensorClient(cfg),
		Document:          NewDocumentClient(cfg),
		DocumentChunk:     NewDocumentChunkClient(cfg),
		EntitySource:      NewEntitySourceClient(cfg),
		ExtractedCategory: NewExtractedCategoryClient(cfg),
		ExtractedCause:    NewExtractedCauseClient(cfg),
		ExtractedDTC:      NewExtractedDTCClient(cfg),
		ExtractedSensor:   NewExtractedSensorClient(cfg),
		ExtractedStep:     NewExtractedStepClient(cfg),
		ExtractedTSB:      NewExtractedTSBClient(cfg),
		ProcessingLog:     NewProcessingLogClient(cfg),
		ResolutionLog:     NewResolutionLogClient(cfg),
		Sensor:            NewSensorClient(cfg),
		TSBBulletin:       NewTSBBulletinClient(cfg),
		Vehicle:           NewVehicleClient(cfg),
		VehicleDTC:        NewVehicleDTCClient(cfg),
		VehicleMention:    NewVehicleMentionClient(cfg),
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
		ctx:               ctx,
		config:            cfg,
		ChunkEvaluation:   NewChunkEvaluationClient(cfg),
		CrawlRequest:      NewCrawlRequestClient(cfg),
		DTCCause:          NewDTCCauseClient(cfg),
		DTCDiagnosticStep: NewDTCDiagnosticStepClient(cfg),
		DTCMaster:         NewDTCMasterClient(cfg),
		DTCRelatedSensor:  NewDTCRelatedSensorClient(cfg),
		Document:          NewDocumentClient(cfg),
		DocumentChunk:     NewDocumentChunkClient(cfg),
		EntitySource:      NewEntitySourceClient(cfg),
		ExtractedCategory: NewExtractedCategoryClient(cfg),
		ExtractedCause:    NewExtractedCauseClient(cfg),
		ExtractedDTC:      NewExtractedDTCClient(cfg),
		ExtractedSensor:   NewExtractedSensorClient(cfg),
		ExtractedStep:     NewExtractedStepClient(cfg),
		ExtractedTSB:      NewExtractedTSBClient(cfg),
		ProcessingLog:     NewProcessingLogClient(cfg),
		ResolutionLog:     NewResolutionLogClient(cfg),
		Sensor:            NewSensorClient(cfg),
		TSBBulletin:       NewTSBBulletinClient(cfg),
		Vehicle:           NewVehicleClient(cfg),
		VehicleDTC:        NewVehicleDTCClient(cfg),
		VehicleMention:    NewVehicleMentionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ChunkEvaluation.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.ChunkEvaluation, c.CrawlRequest, c.DTCCause, c.DTCDiagnosticStep, c.DTCMaster,
		c.DTCRelatedSensor, c.Document, c.DocumentChunk, c.EntitySource,
		c.ExtractedCategory, c.ExtractedCause, c.ExtractedDTC, c.ExtractedSensor,
		c.ExtractedStep, c.ExtractedTSB, c.ProcessingLog, c.ResolutionLog, c.Sensor,
		c.TSBBulletin, c.Vehicle, c.VehicleDTC, c.VehicleMention,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.ChunkEvaluation, c.CrawlRequest, c.DTCCause, c.DTCDiagnosticStep, c.DTCMaster,
		c.DTCRelatedSensor, c.Document, c.DocumentChunk, c.EntitySource,
		c.ExtractedCategory, c.ExtractedCause, c.ExtractedDTC, c.ExtractedSensor,
		c.ExtractedStep, c.ExtractedTSB, c.ProcessingLog, c.ResolutionLog, c.Sensor,
		c.TSBBulletin, c.Vehicle, c.VehicleDTC, c.VehicleMention,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ChunkEvaluationMutation:
		return c.ChunkEvaluation.mutate(ctx, m)
	case *CrawlRequestMutation:
		return c.CrawlRequest.mutate(ctx, m)
	case *DTCCauseMutation:
		return c.DTCCause.mutate(ctx, m)
	case *DTCDiagnosticStepMutation:
		return c.DTCDiagnosticStep.mutate(ctx, m)
	case *DTCMasterMutation:
		return c.DTCMaster.mutate(ctx, m)
	case *DTCRelatedSensorMutation:
		return c.DTCRelatedSensor.mutate(ctx, m)
	case *DocumentMutation:
		return c.Document.mutate(ctx, m)
	case *DocumentChunkMutation:
		return c.DocumentChunk.mutate(ctx, m)
	case *EntitySourceMutation:
		return c.EntitySource.mutate(ctx, m)
	case *ExtractedCategoryMutation:
		return c.ExtractedCategory.mutate(ctx, m)
	case *ExtractedCauseMutation:
		return c.ExtractedCause.mutate(ctx, m)
	case *ExtractedDTCMutation:
		return c.ExtractedDTC.mutate(ctx, m)
	case *ExtractedSensorMutation:
		return c.ExtractedSensor.mutate(ctx, m)
	case *ExtractedStepMutation:
		return c.ExtractedStep.mutate(ctx, m)
	case *ExtractedTSBMutation:
		return c.ExtractedTSB.mutate(ctx, m)
	case *ProcessingLogMutation:
		return c.ProcessingLog.mutate(ctx, m)
	case *ResolutionLogMutation:
		return c.ResolutionLog.mutate(ctx, m)
	case *SensorMutation:
		return c.Sensor.mutate(ctx, m)
	case *TSBBulletinMutation:
		return c.TSBBulletin.mutate(ctx, m)
	case *VehicleMutation:
		return c.Vehicle.mutate(ctx, m)
	case *VehicleDTCMutation:
		return c.VehicleDTC.mutate(ctx, m)
	case *VehicleMentionMutation:
		return c.VehicleMention.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ChunkEvaluationClient is a client for the ChunkEvaluation schema.
type ChunkEvaluationClient struct {
	config
}

// NewChunkEvaluationClient returns a client for the ChunkEvaluation from the given config.
func NewChunkEvaluationClient(c config) *ChunkEvaluationClient {
	return &ChunkEvaluationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `chunkevaluation.Hooks(f(g(h())))`.
func (c *ChunkEvaluationClient) Use(hooks ...Hook) {
	c.hooks.ChunkEvaluation = append(c.hooks.ChunkEvaluation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `chunkevaluation.Intercept(f(g(h())))`.
func (c *ChunkEvaluationClient) Intercept(interceptors ...Interceptor) {
	c.inters.ChunkEvaluation = append(c.inters.ChunkEvaluation, interceptors...)
}

// Create returns a builder for creating a ChunkEvaluation entity.
func (c *ChunkEvaluationClient) Create() *ChunkEvaluationCreate {
	mutation := newChunkEvaluationMutation(c.config, OpCreate)
	return &ChunkEvaluationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ChunkEvaluation entities.
func (c *ChunkEvaluationClient) CreateBulk(builders ...*ChunkEvaluationCreate) *ChunkEvaluationCreateBulk {
	return &ChunkEvaluationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChunkEvaluationClient) MapCreateBulk(slice any, setFunc func(*ChunkEvaluationCreate, int)) *ChunkEvaluationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChunkEvaluationCreateBulk{err: fmt.Errorf("calling to ChunkEvaluationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChunkEvaluationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChunkEvaluationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ChunkEvaluation.
func (c *ChunkEvaluationClient) Update() *ChunkEvaluationUpdate {
	mutation := newChunkEvaluationMutation(c.config, OpUpdate)
	return &ChunkEvaluationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChunkEvaluationClient) UpdateOne(_m *ChunkEvaluation) *ChunkEvaluationUpdateOne {
	mutation := newChunkEvaluationMutation(c.config, OpUpdateOne, withChunkEvaluation(_m))
	return &ChunkEvaluationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChunkEvaluationClient) UpdateOneID(id string) *ChunkEvaluationUpdateOne {
	mutation := newChunkEvaluationMutation(c.config, OpUpdateOne, withChunkEvaluationID(id))
	return &ChunkEvaluationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ChunkEvaluation.
func (c *ChunkEvaluationClient) Delete() *ChunkEvaluationDelete {
	mutation := newChunkEvaluationMutation(c.config, OpDelete)
	return &ChunkEvaluationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChunkEvaluationClient) DeleteOne(_m *ChunkEvaluation) *ChunkEvaluationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChunkEvaluationClient) DeleteOneID(id string) *ChunkEvaluationDeleteOne {
	builder := c.Delete().Where(chunkevaluation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChunkEvaluationDeleteOne{builder}
}

// Query returns a query builder for ChunkEvaluation.
func (c *ChunkEvaluationClient) Query() *ChunkEvaluationQuery {
	return &ChunkEvaluationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChunkEvaluation},
		inters: c.Interceptors(),
	}
}

// Get returns a ChunkEvaluation entity by its id.
func (c *ChunkEvaluationClient) Get(ctx context.Context, id string) (*ChunkEvaluation, error) {
	return c.Query().Where(chunkevaluation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChunkEvaluationClient) GetX(ctx context.Context, id string) *ChunkEvaluation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryChunk queries the chunk edge of a ChunkEvaluation.
func (c *ChunkEvaluationClient) QueryChunk(_m *ChunkEvaluation) *DocumentChunkQuery {
	query := (&DocumentChunkClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(chunkevaluation.Table, chunkevaluation.FieldID, id),
			sqlgraph.To(documentchunk.Table, documentchunk.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, chunkevaluation.ChunkTable, chunkevaluation.ChunkColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ChunkEvaluationClient) Hooks() []Hook {
	return c.hooks.ChunkEvaluation
}

// Interceptors returns the client interceptors.
func (c *ChunkEvaluationClient) Interceptors() []Interceptor {
	return c.inters.ChunkEvaluation
}

func (c *ChunkEvaluationClient) mutate(ctx context.Context, m *ChunkEvaluationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChunkEvaluationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChunkEvaluationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChunkEvaluationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChunkEvaluationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ChunkEvaluation mutation op: %q", m.Op())
	}
}

// CrawlRequestClient is a client for the CrawlRequest schema.
type CrawlRequestClient struct {
	config
}

// NewCrawlRequestClient returns a client for the CrawlRequest from the given config.
func NewCrawlRequestClient(c config) *CrawlRequestClient {
	return &CrawlRequestClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `crawlrequest.Hooks(f(g(h())))`.
func (c *CrawlRequestClient) Use(hooks ...Hook) {
	c.hooks.CrawlRequest = append(c.hooks.CrawlRequest, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `crawlrequest.Intercept(f(g(h())))`.
func (c *CrawlRequestClient) Intercept(interceptors ...Interceptor) {
	c.inters.CrawlRequest = append(c.inters.CrawlRequest, interceptors...)
}

// Create returns a builder for creating a CrawlRequest entity.
func (c *CrawlRequestClient) Create() *CrawlRequestCreate {
	mutation := newCrawlRequestMutation(c.config, OpCreate)
	return &CrawlRequestCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CrawlRequest entities.
func (c *CrawlRequestClient) CreateBulk(builders ...*CrawlRequestCreate) *CrawlRequestCreateBulk {
	return &CrawlRequestCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CrawlRequestClient) MapCreateBulk(slice any, setFunc func(*CrawlRequestCreate, int)) *CrawlRequestCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CrawlRequestCreateBulk{err: fmt.Errorf("calling to CrawlRequestClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CrawlRequestCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CrawlRequestCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CrawlRequest.
func (c *CrawlRequestClient) Update() *CrawlRequestUpdate {
	mutation := newCrawlRequestMutation(c.config, OpUpdate)
	return &CrawlRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CrawlRequestClient) UpdateOne(_m *CrawlRequest) *CrawlRequestUpdateOne {
	mutation := newCrawlRequestMutation(c.config, OpUpdateOne, withCrawlRequest(_m))
	return &CrawlRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CrawlRequestClient) UpdateOneID(id string) *CrawlRequestUpdateOne {
	mutation := newCrawlRequestMutation(c.config, OpUpdateOne, withCrawlRequestID(id))
	return &CrawlRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CrawlRequest.
func (c *CrawlRequestClient) Delete() *CrawlRequestDelete {
	mutation := newCrawlRequestMutation(c.config, OpDelete)
	return &CrawlRequestDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CrawlRequestClient) DeleteOne(_m *CrawlRequest) *CrawlRequestDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CrawlRequestClient) DeleteOneID(id string) *CrawlRequestDeleteOne {
	builder := c.Delete().Where(crawlrequest.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CrawlRequestDeleteOne{builder}
}

// Query returns a query builder for CrawlRequest.
func (c *CrawlRequestClient) Query() *CrawlRequestQuery {
	return &CrawlRequestQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCrawlRequest},
		inters: c.Interceptors(),
	}
}

// Get returns a CrawlRequest entity by its id.
func (c *CrawlRequestClient) Get(ctx context.Context, id string) (*CrawlRequest, error) {
	return c.Query().Where(crawlrequest.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CrawlRequestClient) GetX(ctx context.Context, id string) *CrawlRequest {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CrawlRequestClient) Hooks() []Hook {
	return c.hooks.CrawlRequest
}

// Interceptors returns the client interceptors.
func (c *CrawlRequestClient) Interceptors() []Interceptor {
	return c.inters.CrawlRequest
}

func (c *CrawlRequestClient) mutate(ctx context.Context, m *CrawlRequestMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CrawlRequestCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CrawlRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CrawlRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CrawlRequestDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CrawlRequest mutation op: %q", m.Op())
	}
}

// DTCCauseClient is a client for the DTCCause schema.
type DTCCauseClient struct {
	config
}

// NewDTCCauseClient returns a client for the DTCCause from the given config.
func NewDTCCauseClient(c config) *DTCCauseClient {
	return &DTCCauseClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `dtccause.Hooks(f(g(h())))`.
func (c *DTCCauseClient) Use(hooks ...Hook) {
	c.hooks.DTCCause = append(c.hooks.DTCCause, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `dtccause.Intercept(f(g(h())))`.
func (c *DTCCauseClient) Intercept(interceptors ...Interceptor) {
	c.inters.DTCCause = append(c.inters.DTCCause, interceptors...)
}

// Create returns a builder for creating a DTCCause entity.
func (c *DTCCauseClient) Create() *DTCCauseCreate {
	mutation := newDTCCauseMutation(c.config, OpCreate)
	return &DTCCauseCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DTCCause entities.
func (c *DTCCauseClient) CreateBulk(builders ...*DTCCauseCreate) *DTCCauseCreateBulk {
	return &DTCCauseCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DTCCauseClient) MapCreateBulk(slice any, setFunc func(*DTCCauseCreate, int)) *DTCCauseCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DTCCauseCreateBulk{err: fmt.Errorf("calling to DTCCauseClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DTCCauseCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DTCCauseCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DTCCause.
func (c *DTCCauseClient) Update() *DTCCauseUpdate {
	mutation := newDTCCauseMutation(c.config, OpUpdate)
	return &DTCCauseUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DTCCauseClient) UpdateOne(_m *DTCCause) *DTCCauseUpdateOne {
	mutation := newDTCCauseMutation(c.config, OpUpdateOne, withDTCCause(_m))
	return &DTCCauseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DTCCauseClient) UpdateOneID(id string) *DTCCauseUpdateOne {
	mutation := newDTCCauseMutation(c.config, OpUpdateOne, withDTCCauseID(id))
	return &DTCCauseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DTCCause.
func (c *DTCCauseClient) Delete() *DTCCauseDelete {
	mutation := newDTCCauseMutation(c.config, OpDelete)
	return &DTCCauseDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DTCCauseClient) DeleteOne(_m *DTCCause) *DTCCauseDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DTCCauseClient) DeleteOneID(id string) *DTCCauseDeleteOne {
	builder := c.Delete().Where(dtccause.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DTCCauseDeleteOne{builder}
}

// Query returns a query builder for DTCCause.
func (c *DTCCauseClient) Query() *DTCCauseQuery {
	return &DTCCauseQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDTCCause},
		inters: c.Interceptors(),
	}
}

// Get returns a DTCCause entity by its id.
func (c *DTCCauseClient) Get(ctx context.Context, id string) (*DTCCause, error) {
	return c.Query().Where(dtccause.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DTCCauseClient) GetX(ctx context.Context, id string) *DTCCause {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DTCCauseClient) Hooks() []Hook {
	return c.hooks.DTCCause
}

// Interceptors returns the client interceptors.
func (c *DTCCauseClient) Interceptors() []Interceptor {
	return c.inters.DTCCause
}

func (c *DTCCauseClient) mutate(ctx context.Context, m *DTCCauseMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DTCCauseCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DTCCauseUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DTCCauseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DTCCauseDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DTCCause mutation op: %q", m.Op())
	}
}

// DTCDiagnosticStepClient is a client for the DTCDiagnosticStep schema.
type DTCDiagnosticStepClient struct {
	config
}

// NewDTCDiagnosticStepClient returns a client for the DTCDiagnosticStep from the given config.
func NewDTCDiagnosticStepClient(c config) *DTCDiagnosticStepClient {
	return &DTCDiagnosticStepClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `dtcdiagnosticstep.Hooks(f(g(h())))`.
func (c *DTCDiagnosticStepClient) Use(hooks ...Hook) {
	c.hooks.DTCDiagnosticStep = append(c.hooks.DTCDiagnosticStep, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `dtcdiagnosticstep.Intercept(f(g(h())))`.
func (c *DTCDiagnosticStepClient) Intercept(interceptors ...Interceptor) {
	c.inters.DTCDiagnosticStep = append(c.inters.DTCDiagnosticStep, interceptors...)
}

// Create returns a builder for creating a DTCDiagnosticStep entity.
func (c *DTCDiagnosticStepClient) Create() *DTCDiagnosticStepCreate {
	mutation := newDTCDiagnosticStepMutation(c.config, OpCreate)
	return &DTCDiagnosticStepCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DTCDiagnosticStep entities.
func (c *DTCDiagnosticStepClient) CreateBulk(builders ...*DTCDiagnosticStepCreate) *DTCDiagnosticStepCreateBulk {
	return &DTCDiagnosticStepCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DTCDiagnosticStepClient) MapCreateBulk(slice any, setFunc func(*DTCDiagnosticStepCreate, int)) *DTCDiagnosticStepCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DTCDiagnosticStepCreateBulk{err: fmt.Errorf("calling to DTCDiagnosticStepClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DTCDiagnosticStepCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DTCDiagnosticStepCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DTCDiagnosticStep.
func (c *DTCDiagnosticStepClient) Update() *DTCDiagnosticStepUpdate {
	mutation := newDTCDiagnosticStepMutation(c.config, OpUpdate)
	return &DTCDiagnosticStepUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DTCDiagnosticStepClient) UpdateOne(_m *DTCDiagnosticStep) *DTCDiagnosticStepUpdateOne {
	mutation := newDTCDiagnosticStepMutation(c.config, OpUpdateOne, withDTCDiagnosticStep(_m))
	return &DTCDiagnosticStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DTCDiagnosticStepClient) UpdateOneID(id string) *DTCDiagnosticStepUpdateOne {
	mutation := newDTCDiagnosticStepMutation(c.config, OpUpdateOne, withDTCDiagnosticStepID(id))
	return &DTCDiagnosticStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DTCDiagnosticStep.
func (c *DTCDiagnosticStepClient) Delete() *DTCDiagnosticStepDelete {
	mutation := newDTCDiagnosticStepMutation(c.config, OpDelete)
	return &DTCDiagnosticStepDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DTCDiagnosticStepClient) DeleteOne(_m *DTCDiagnosticStep) *DTCDiagnosticStepDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DTCDiagnosticStepClient) DeleteOneID(id string) *DTCDiagnosticStepDeleteOne {
	builder := c.Delete().Where(dtcdiagnosticstep.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DTCDiagnosticStepDeleteOne{builder}
}

// Query returns a query builder for DTCDiagnosticStep.
func (c *DTCDiagnosticStepClient) Query() *DTCDiagnosticStepQuery {
	return &DTCDiagnosticStepQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDTCDiagnosticStep},
		inters: c.Interceptors(),
	}
}

// Get returns a DTCDiagnosticStep entity by its id.
func (c *DTCDiagnosticStepClient) Get(ctx context.Context, id string) (*DTCDiagnosticStep, error) {
	return c.Query().Where(dtcdiagnosticstep.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DTCDiagnosticStepClient) GetX(ctx context.Context, id string) *DTCDiagnosticStep {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DTCDiagnosticStepClient) Hooks() []Hook {
	return c.hooks.DTCDiagnosticStep
}

// Interceptors returns the client interceptors.
func (c *DTCDiagnosticStepClient) Interceptors() []Interceptor {
	return c.inters.DTCDiagnosticStep
}

func (c *DTCDiagnosticStepClient) mutate(ctx context.Context, m *DTCDiagnosticStepMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DTCDiagnosticStepCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DTCDiagnosticStepUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DTCDiagnosticStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DTCDiagnosticStepDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DTCDiagnosticStep mutation op: %q", m.Op())
	}
}

// DTCMasterClient is a client for the DTCMaster schema.
type DTCMasterClient struct {
	config
}

// NewDTCMasterClient returns a client for the DTCMaster from the given config.
func NewDTCMasterClient(c config) *DTCMasterClient {
	return &DTCMasterClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `dtcmaster.Hooks(f(g(h())))`.
func (c *DTCMasterClient) Use(hooks ...Hook) {
	c.hooks.DTCMaster = append(c.hooks.DTCMaster, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `dtcmaster.Intercept(f(g(h())))`.
func (c *DTCMasterClient) Intercept(interceptors ...Interceptor) {
	c.inters.DTCMaster = append(c.inters.DTCMaster, interceptors...)
}

// Create returns a builder for creating a DTCMaster entity.
func (c *DTCMasterClient) Create() *DTCMasterCreate {
	mutation := newDTCMasterMutation(c.config, OpCreate)
	return &DTCMasterCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DTCMaster entities.
func (c *DTCMasterClient) CreateBulk(builders ...*DTCMasterCreate) *DTCMasterCreateBulk {
	return &DTCMasterCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DTCMasterClient) MapCreateBulk(slice any, setFunc func(*DTCMasterCreate, int)) *DTCMasterCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DTCMasterCreateBulk{err: fmt.Errorf("calling to DTCMasterClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DTCMasterCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DTCMasterCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DTCMaster.
func (c *DTCMasterClient) Update() *DTCMasterUpdate {
	mutation := newDTCMasterMutation(c.config, OpUpdate)
	return &DTCMasterUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DTCMasterClient) UpdateOne(_m *DTCMaster) *DTCMasterUpdateOne {
	mutation := newDTCMasterMutation(c.config, OpUpdateOne, withDTCMaster(_m))
	return &DTCMasterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DTCMasterClient) UpdateOneID(id string) *DTCMasterUpdateOne {
	mutation := newDTCMasterMutation(c.config, OpUpdateOne, withDTCMasterID(id))
	return &DTCMasterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DTCMaster.
func (c *DTCMasterClient) Delete() *DTCMasterDelete {
	mutation := newDTCMasterMutation(c.config, OpDelete)
	return &DTCMasterDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DTCMasterClient) DeleteOne(_m *DTCMaster) *DTCMasterDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DTCMasterClient) DeleteOneID(id string) *DTCMasterDeleteOne {
	builder := c.Delete().Where(dtcmaster.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DTCMasterDeleteOne{builder}
}

// Query returns a query builder for DTCMaster.
func (c *DTCMasterClient) Query() *DTCMasterQuery {
	return &DTCMasterQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDTCMaster},
		inters: c.Interceptors(),
	}
}

// Get returns a DTCMaster entity by its id.
func (c *DTCMasterClient) Get(ctx context.Context, id string) (*DTCMaster, error) {
	return c.Query().Where(dtcmaster.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DTCMasterClient) GetX(ctx context.Context, id string) *DTCMaster {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DTCMasterClient) Hooks() []Hook {
	return c.hooks.DTCMaster
}

// Interceptors returns the client interceptors.
func (c *DTCMasterClient) Interceptors() []Interceptor {
	return c.inters.DTCMaster
}

func (c *DTCMasterClient) mutate(ctx context.Context, m *DTCMasterMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DTCMasterCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DTCMasterUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DTCMasterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DTCMasterDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DTCMaster mutation op: %q", m.Op())
	}
}

// DTCRelatedSensorClient is a client for the DTCRelatedSensor schema.
type DTCRelatedSensorClient struct {
	config
}

// NewDTCRelatedSensorClient returns a client for the DTCRelatedSensor from the given config.
func NewDTCRelatedSensorClient(c config) *DTCRelatedSensorClient {
	return &DTCRelatedSensorClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `dtcrelatedsensor.Hooks(f(g(h())))`.
func (c *DTCRelatedSensorClient) Use(hooks ...Hook) {
	c.hooks.DTCRelatedSensor = append(c.hooks.DTCRelatedSensor, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `dtcrelatedsensor.Intercept(f(g(h())))`.
func (c *DTCRelatedSensorClient) Intercept(interceptors ...Interceptor) {
	c.inters.DTCRelatedSensor = append(c.inters.DTCRelatedSensor, interceptors...)
}

// Create returns a builder for creating a DTCRelatedSensor entity.
func (c *DTCRelatedSensorClient) Create() *DTCRelatedSensorCreate {
	mutation := newDTCRelatedSensorMutation(c.config, OpCreate)
	return &DTCRelatedSensorCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DTCRelatedSensor entities.
func (c *DTCRelatedSensorClient) CreateBulk(builders ...*DTCRelatedSensorCreate) *DTCRelatedSensorCreateBulk {
	return &DTCRelatedSensorCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DTCRelatedSensorClient) MapCreateBulk(slice any, setFunc func(*DTCRelatedSensorCreate, int)) *DTCRelatedSensorCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DTCRelatedSensorCreateBulk{err: fmt.Errorf("calling to DTCRelatedSensorClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DTCRelatedSensorCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DTCRelatedSensorCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DTCRelatedSensor.
func (c *DTCRelatedSensorClient) Update() *DTCRelatedSensorUpdate {
	mutation := newDTCRelatedSensorMutation(c.config, OpUpdate)
	return &DTCRelatedSensorUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DTCRelatedSensorClient) UpdateOne(_m *DTCRelatedSensor) *DTCRelatedSensorUpdateOne {
	mutation := newDTCRelatedSensorMutation(c.config, OpUpdateOne, withDTCRelatedSensor(_m))
	return &DTCRelatedSensorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DTCRelatedSensorClient) UpdateOneID(id string) *DTCRelatedSensorUpdateOne {
	mutation := newDTCRelatedSensorMutation(c.config, OpUpdateOne, withDTCRelatedSensorID(id))
	return &DTCRelatedSensorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DTCRelatedSensor.
func (c *DTCRelatedSensorClient) Delete() *DTCRelatedSensorDelete {
	mutation := newDTCRelatedSensorMutation(c.config, OpDelete)
	return &DTCRelatedSensorDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DTCRelatedSensorClient) DeleteOne(_m *DTCRelatedSensor) *DTCRelatedSensorDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DTCRelatedSensorClient) DeleteOneID(id string) *DTCRelatedSensorDeleteOne {
	builder := c.Delete().Where(dtcrelatedsensor.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DTCRelatedSensorDeleteOne{builder}
}

// Query returns a query builder for DTCRelatedSensor.
func (c *DTCRelatedSensorClient) Query() *DTCRelatedSensorQuery {
	return &DTCRelatedSensorQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDTCRelatedSensor},
		inters: c.Interceptors(),
	}
}

// Get returns a DTCRelatedSensor entity by its id.
func (c *DTCRelatedSensorClient) Get(ctx context.Context, id string) (*DTCRelatedSensor, error) {
	return c.Query().Where(dtcrelatedsensor.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DTCRelatedSensorClient) GetX(ctx context.Context, id string) *DTCRelatedSensor {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DTCRelatedSensorClient) Hooks() []Hook {
	return c.hooks.DTCRelatedSensor
}

// Interceptors returns the client interceptors.
func (c *DTCRelatedSensorClient) Interceptors() []Interceptor {
	return c.inters.DTCRelatedSensor
}

func (c *DTCRelatedSensorClient) mutate(ctx context.Context, m *DTCRelatedSensorMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DTCRelatedSensorCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DTCRelatedSensorUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DTCRelatedSensorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DTCRelatedSensorDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DTCRelatedSensor mutation op: %q", m.Op())
	}
}

// DocumentClient is a client for the Document schema.
type DocumentClient struct {
	config
}

// NewDocumentClient returns a client for the Document from the given config.
func NewDocumentClient(c config) *DocumentClient {
	return &DocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `document.Hooks(f(g(h())))`.
func (c *DocumentClient) Use(hooks ...Hook) {
	c.hooks.Document = append(c.hooks.Document, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `document.Intercept(f(g(h())))`.
func (c *DocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Document = append(c.inters.Document, interceptors...)
}

// Create returns a builder for creating a Document entity.
func (c *DocumentClient) Create() *DocumentCreate {
	mutation := newDocumentMutation(c.config, OpCreate)
	return &DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Document entities.
func (c *DocumentClient) CreateBulk(builders ...*DocumentCreate) *DocumentCreateBulk {
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocumentClient) MapCreateBulk(slice any, setFunc func(*DocumentCreate, int)) *DocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocumentCreateBulk{err: fmt.Errorf("calling to DocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Document.
func (c *DocumentClient) Update() *DocumentUpdate {
	mutation := newDocumentMutation(c.config, OpUpdate)
	return &DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentClient) UpdateOne(_m *Document) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocument(_m))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentClient) UpdateOneID(id string) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocumentID(id))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Document.
func (c *DocumentClient) Delete() *DocumentDelete {
	mutation := newDocumentMutation(c.config, OpDelete)
	return &DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentClient) DeleteOne(_m *Document) *DocumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentClient) DeleteOneID(id string) *DocumentDeleteOne {
	builder := c.Delete().Where(document.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocumentDeleteOne{builder}
}

// Query returns a query builder for Document.
func (c *DocumentClient) Query() *DocumentQuery {
	return &DocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a Document entity by its id.
func (c *DocumentClient) Get(ctx context.Context, id string) (*Document, error) {
	return c.Query().Where(document.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentClient) GetX(ctx context.Context, id string) *Document {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryChunks queries the chunks edge of a Document.
func (c *DocumentClient) QueryChunks(_m *Document) *DocumentChunkQuery {
	query := (&DocumentChunkClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(documentchunk.Table, documentchunk.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, document.ChunksTable, document.ChunksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryProcessingLogs queries the processing_logs edge of a Document.
func (c *DocumentClient) QueryProcessingLogs(_m *Document) *ProcessingLogQuery {
	query := (&ProcessingLogClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(processinglog.Table, processinglog.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, document.ProcessingLogsTable, document.ProcessingLogsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DocumentClient) Hooks() []Hook {
	return c.hooks.Document
}

// Interceptors returns the client interceptors.
func (c *DocumentClient) Interceptors() []Interceptor {
	return c.inters.Document
}

func (c *DocumentClient) mutate(ctx context.Context, m *DocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Document mutation op: %q", m.Op())
	}
}

// DocumentChunkClient is a client for the DocumentChunk schema.
type DocumentChunkClient struct {
	config
}

// NewDocumentChunkClient returns a client for the DocumentChunk from the given config.
func NewDocumentChunkClient(c config) *DocumentChunkClient {
	return &DocumentChunkClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `documentchunk.Hooks(f(g(h())))`.
func (c *DocumentChunkClient) Use(hooks ...Hook) {
	c.hooks.DocumentChunk = append(c.hooks.DocumentChunk, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `documentchunk.Intercept(f(g(h())))`.
func (c *DocumentChunkClient) Intercept(interceptors ...Interceptor) {
	c.inters.DocumentChunk = append(c.inters.DocumentChunk, interceptors...)
}

// Create returns a builder for creating a DocumentChunk entity.
func (c *DocumentChunkClient) Create() *DocumentChunkCreate {
	mutation := newDocumentChunkMutation(c.config, OpCreate)
	return &DocumentChunkCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DocumentChunk entities.
func (c *DocumentChunkClient) CreateBulk(builders ...*DocumentChunkCreate) *DocumentChunkCreateBulk {
	return &DocumentChunkCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocumentChunkClient) MapCreateBulk(slice any, setFunc func(*DocumentChunkCreate, int)) *DocumentChunkCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocumentChunkCreateBulk{err: fmt.Errorf("calling to DocumentChunkClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocumentChunkCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocumentChunkCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DocumentChunk.
func (c *DocumentChunkClient) Update() *DocumentChunkUpdate {
	mutation := newDocumentChunkMutation(c.config, OpUpdate)
	return &DocumentChunkUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentChunkClient) UpdateOne(_m *DocumentChunk) *DocumentChunkUpdateOne {
	mutation := newDocumentChunkMutation(c.config, OpUpdateOne, withDocumentChunk(_m))
	return &DocumentChunkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentChunkClient) UpdateOneID(id string) *DocumentChunkUpdateOne {
	mutation := newDocumentChunkMutation(c.config, OpUpdateOne, withDocumentChunkID(id))
	return &DocumentChunkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DocumentChunk.
func (c *DocumentChunkClient) Delete() *DocumentChunkDelete {
	mutation := newDocumentChunkMutation(c.config, OpDelete)
	return &DocumentChunkDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentChunkClient) DeleteOne(_m *DocumentChunk) *DocumentChunkDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentChunkClient) DeleteOneID(id string) *DocumentChunkDeleteOne {
	builder := c.Delete().Where(documentchunk.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocumentChunkDeleteOne{builder}
}

// Query returns a query builder for DocumentChunk.
func (c *DocumentChunkClient) Query() *DocumentChunkQuery {
	return &DocumentChunkQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocumentChunk},
		inters: c.Interceptors(),
	}
}

// Get returns a DocumentChunk entity by its id.
func (c *DocumentChunkClient) Get(ctx context.Context, id string) (*DocumentChunk, error) {
	return c.Query().Where(documentchunk.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentChunkClient) GetX(ctx context.Context, id string) *DocumentChunk {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a DocumentChunk.
func (c *DocumentChunkClient) QueryDocument(_m *DocumentChunk) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(documentchunk.Table, documentchunk.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, documentchunk.DocumentTable, documentchunk.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvaluation queries the evaluation edge of a DocumentChunk.
func (c *DocumentChunkClient) QueryEvaluation(_m *DocumentChunk) *ChunkEvaluationQuery {
	query := (&ChunkEvaluationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(documentchunk.Table, documentchunk.FieldID, id),
			sqlgraph.To(chunkevaluation.Table, chunkevaluation.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, documentchunk.EvaluationTable, documentchunk.EvaluationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySources queries the sources edge of a DocumentChunk.
func (c *DocumentChunkClient) QuerySources(_m *DocumentChunk) *EntitySourceQuery {
	query := (&EntitySourceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(documentchunk.Table, documentchunk.FieldID, id),
			sqlgraph.To(entitysource.Table, entitysource.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, documentchunk.SourcesTable, documentchunk.SourcesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DocumentChunkClient) Hooks() []Hook {
	return c.hooks.DocumentChunk
}

// Interceptors returns the client interceptors.
func (c *DocumentChunkClient) Interceptors() []Interceptor {
	return c.inters.DocumentChunk
}

func (c *DocumentChunkClient) mutate(ctx context.Context, m *DocumentChunkMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocumentChunkCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocumentChunkUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocumentChunkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocumentChunkDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DocumentChunk mutation op: %q", m.Op())
	}
}

// EntitySourceClient is a client for the EntitySource schema.
type EntitySourceClient struct {
	config
}

// NewEntitySourceClient returns a client for the EntitySource from the given config.
func NewEntitySourceClient(c config) *EntitySourceClient {
	return &EntitySourceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `entitysource.Hooks(f(g(h())))`.
func (c *EntitySourceClient) Use(hooks ...Hook) {
	c.hooks.EntitySource = append(c.hooks.EntitySource, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `entitysource.Intercept(f(g(h())))`.
func (c *EntitySourceClient) Intercept(interceptors ...Interceptor) {
	c.inters.EntitySource = append(c.inters.EntitySource, interceptors...)
}

// Create returns a builder for creating a EntitySource entity.
func (c *EntitySourceClient) Create() *EntitySourceCreate {
	mutation := newEntitySourceMutation(c.config, OpCreate)
	return &EntitySourceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EntitySource entities.
func (c *EntitySourceClient) CreateBulk(builders ...*EntitySourceCreate) *EntitySourceCreateBulk {
	return &EntitySourceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EntitySourceClient) MapCreateBulk(slice any, setFunc func(*EntitySourceCreate, int)) *EntitySourceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EntitySourceCreateBulk{err: fmt.Errorf("calling to EntitySourceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EntitySourceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EntitySourceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EntitySource.
func (c *EntitySourceClient) Update() *EntitySourceUpdate {
	mutation := newEntitySourceMutation(c.config, OpUpdate)
	return &EntitySourceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EntitySourceClient) UpdateOne(_m *EntitySource) *EntitySourceUpdateOne {
	mutation := newEntitySourceMutation(c.config, OpUpdateOne, withEntitySource(_m))
	return &EntitySourceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EntitySourceClient) UpdateOneID(id string) *EntitySourceUpdateOne {
	mutation := newEntitySourceMutation(c.config, OpUpdateOne, withEntitySourceID(id))
	return &EntitySourceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EntitySource.
func (c *EntitySourceClient) Delete() *EntitySourceDelete {
	mutation := newEntitySourceMutation(c.config, OpDelete)
	return &EntitySourceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EntitySourceClient) DeleteOne(_m *EntitySource) *EntitySourceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EntitySourceClient) DeleteOneID(id string) *EntitySourceDeleteOne {
	builder := c.Delete().Where(entitysource.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EntitySourceDeleteOne{builder}
}

// Query returns a query builder for EntitySource.
func (c *EntitySourceClient) Query() *EntitySourceQuery {
	return &EntitySourceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEntitySource},
		inters: c.Interceptors(),
	}
}

// Get returns a EntitySource entity by its id.
func (c *EntitySourceClient) Get(ctx context.Context, id string) (*EntitySource, error) {
	return c.Query().Where(entitysource.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EntitySourceClient) GetX(ctx context.Context, id string) *EntitySource {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryChunk queries the chunk edge of a EntitySource.
func (c *EntitySourceClient) QueryChunk(_m *EntitySource) *DocumentChunkQuery {
	query := (&DocumentChunkClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(entitysource.Table, entitysource.FieldID, id),
			sqlgraph.To(documentchunk.Table, documentchunk.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, entitysource.ChunkTable, entitysource.ChunkColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EntitySourceClient) Hooks() []Hook {
	return c.hooks.EntitySource
}

// Interceptors returns the client interceptors.
func (c *EntitySourceClient) Interceptors() []Interceptor {
	return c.inters.EntitySource
}

func (c *EntitySourceClient) mutate(ctx context.Context, m *EntitySourceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EntitySourceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EntitySourceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EntitySourceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EntitySourceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EntitySource mutation op: %q", m.Op())
	}
}

// ExtractedCategoryClient is a client for the ExtractedCategory schema.
type ExtractedCategoryClient struct {
	config
}

// NewExtractedCategoryClient returns a client for the ExtractedCategory from the given config.
func NewExtractedCategoryClient(c config) *ExtractedCategoryClient {
	return &ExtractedCategoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extractedcategory.Hooks(f(g(h())))`.
func (c *ExtractedCategoryClient) Use(hooks ...Hook) {
	c.hooks.ExtractedCategory = append(c.hooks.ExtractedCategory, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extractedcategory.Intercept(f(g(h())))`.
func (c *ExtractedCategoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExtractedCategory = append(c.inters.ExtractedCategory, interceptors...)
}

// Create returns a builder for creating a ExtractedCategory entity.
func (c *ExtractedCategoryClient) Create() *ExtractedCategoryCreate {
	mutation := newExtractedCategoryMutation(c.config, OpCreate)
	return &ExtractedCategoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExtractedCategory entities.
func (c *ExtractedCategoryClient) CreateBulk(builders ...*ExtractedCategoryCreate) *ExtractedCategoryCreateBulk {
	return &ExtractedCategoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractedCategoryClient) MapCreateBulk(slice any, setFunc func(*ExtractedCategoryCreate, int)) *ExtractedCategoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractedCategoryCreateBulk{err: fmt.Errorf("calling to ExtractedCategoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractedCategoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractedCategoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExtractedCategory.
func (c *ExtractedCategoryClient) Update() *ExtractedCategoryUpdate {
	mutation := newExtractedCategoryMutation(c.config, OpUpdate)
	return &ExtractedCategoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractedCategoryClient) UpdateOne(_m *ExtractedCategory) *ExtractedCategoryUpdateOne {
	mutation := newExtractedCategoryMutation(c.config, OpUpdateOne, withExtractedCategory(_m))
	return &ExtractedCategoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractedCategoryClient) UpdateOneID(id string) *ExtractedCategoryUpdateOne {
	mutation := newExtractedCategoryMutation(c.config, OpUpdateOne, withExtractedCategoryID(id))
	return &ExtractedCategoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExtractedCategory.
func (c *ExtractedCategoryClient) Delete() *ExtractedCategoryDelete {
	mutation := newExtractedCategoryMutation(c.config, OpDelete)
	return &ExtractedCategoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractedCategoryClient) DeleteOne(_m *ExtractedCategory) *ExtractedCategoryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractedCategoryClient) DeleteOneID(id string) *ExtractedCategoryDeleteOne {
	builder := c.Delete().Where(extractedcategory.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractedCategoryDeleteOne{builder}
}

// Query returns a query builder for ExtractedCategory.
func (c *ExtractedCategoryClient) Query() *ExtractedCategoryQuery {
	return &ExtractedCategoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtractedCategory},
		inters: c.Interceptors(),
	}
}

// Get returns a ExtractedCategory entity by its id.
func (c *ExtractedCategoryClient) Get(ctx context.Context, id string) (*ExtractedCategory, error) {
	return c.Query().Where(extractedcategory.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractedCategoryClient) GetX(ctx context.Context, id string) *ExtractedCategory {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ExtractedCategoryClient) Hooks() []Hook {
	return c.hooks.ExtractedCategory
}

// Interceptors returns the client interceptors.
func (c *ExtractedCategoryClient) Interceptors() []Interceptor {
	return c.inters.ExtractedCategory
}

func (c *ExtractedCategoryClient) mutate(ctx context.Context, m *ExtractedCategoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractedCategoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractedCategoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractedCategoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractedCategoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExtractedCategory mutation op: %q", m.Op())
	}
}

// ExtractedCauseClient is a client for the ExtractedCause schema.
type ExtractedCauseClient struct {
	config
}

// NewExtractedCauseClient returns a client for the ExtractedCause from the given config.
func NewExtractedCauseClient(c config) *ExtractedCauseClient {
	return &ExtractedCauseClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extractedcause.Hooks(f(g(h())))`.
func (c *ExtractedCauseClient) Use(hooks ...Hook) {
	c.hooks.ExtractedCause = append(c.hooks.ExtractedCause, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extractedcause.Intercept(f(g(h())))`.
func (c *ExtractedCauseClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExtractedCause = append(c.inters.ExtractedCause, interceptors...)
}

// Create returns a builder for creating a ExtractedCause entity.
func (c *ExtractedCauseClient) Create() *ExtractedCauseCreate {
	mutation := newExtractedCauseMutation(c.config, OpCreate)
	return &ExtractedCauseCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExtractedCause entities.
func (c *ExtractedCauseClient) CreateBulk(builders ...*ExtractedCauseCreate) *ExtractedCauseCreateBulk {
	return &ExtractedCauseCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractedCauseClient) MapCreateBulk(slice any, setFunc func(*ExtractedCauseCreate, int)) *ExtractedCauseCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractedCauseCreateBulk{err: fmt.Errorf("calling to ExtractedCauseClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractedCauseCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractedCauseCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExtractedCause.
func (c *ExtractedCauseClient) Update() *ExtractedCauseUpdate {
	mutation := newExtractedCauseMutation(c.config, OpUpdate)
	return &ExtractedCauseUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractedCauseClient) UpdateOne(_m *ExtractedCause) *ExtractedCauseUpdateOne {
	mutation := newExtractedCauseMutation(c.config, OpUpdateOne, withExtractedCause(_m))
	return &ExtractedCauseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractedCauseClient) UpdateOneID(id string) *ExtractedCauseUpdateOne {
	mutation := newExtractedCauseMutation(c.config, OpUpdateOne, withExtractedCauseID(id))
	return &ExtractedCauseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExtractedCause.
func (c *ExtractedCauseClient) Delete() *ExtractedCauseDelete {
	mutation := newExtractedCauseMutation(c.config, OpDelete)
	return &ExtractedCauseDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractedCauseClient) DeleteOne(_m *ExtractedCause) *ExtractedCauseDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractedCauseClient) DeleteOneID(id string) *ExtractedCauseDeleteOne {
	builder := c.Delete().Where(extractedcause.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractedCauseDeleteOne{builder}
}

// Query returns a query builder for ExtractedCause.
func (c *ExtractedCauseClient) Query() *ExtractedCauseQuery {
	return &ExtractedCauseQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtractedCause},
		inters: c.Interceptors(),
	}
}

// Get returns a ExtractedCause entity by its id.
func (c *ExtractedCauseClient) Get(ctx context.Context, id string) (*ExtractedCause, error) {
	return c.Query().Where(extractedcause.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractedCauseClient) GetX(ctx context.Context, id string) *ExtractedCause {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ExtractedCauseClient) Hooks() []Hook {
	return c.hooks.ExtractedCause
}

// Interceptors returns the client interceptors.
func (c *ExtractedCauseClient) Interceptors() []Interceptor {
	return c.inters.ExtractedCause
}

func (c *ExtractedCauseClient) mutate(ctx context.Context, m *ExtractedCauseMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractedCauseCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractedCauseUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractedCauseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractedCauseDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExtractedCause mutation op: %q", m.Op())
	}
}

// ExtractedDTCClient is a client for the ExtractedDTC schema.
type ExtractedDTCClient struct {
	config
}

// NewExtractedDTCClient returns a client for the ExtractedDTC from the given config.
func NewExtractedDTCClient(c config) *ExtractedDTCClient {
	return &ExtractedDTCClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extracteddtc.Hooks(f(g(h())))`.
func (c *ExtractedDTCClient) Use(hooks ...Hook) {
	c.hooks.ExtractedDTC = append(c.hooks.ExtractedDTC, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extracteddtc.Intercept(f(g(h())))`.
func (c *ExtractedDTCClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExtractedDTC = append(c.inters.ExtractedDTC, interceptors...)
}

// Create returns a builder for creating a ExtractedDTC entity.
func (c *ExtractedDTCClient) Create() *ExtractedDTCCreate {
	mutation := newExtractedDTCMutation(c.config, OpCreate)
	return &ExtractedDTCCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExtractedDTC entities.
func (c *ExtractedDTCClient) CreateBulk(builders ...*ExtractedDTCCreate) *ExtractedDTCCreateBulk {
	return &ExtractedDTCCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractedDTCClient) MapCreateBulk(slice any, setFunc func(*ExtractedDTCCreate, int)) *ExtractedDTCCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractedDTCCreateBulk{err: fmt.Errorf("calling to ExtractedDTCClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractedDTCCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractedDTCCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExtractedDTC.
func (c *ExtractedDTCClient) Update() *ExtractedDTCUpdate {
	mutation := newExtractedDTCMutation(c.config, OpUpdate)
	return &ExtractedDTCUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractedDTCClient) UpdateOne(_m *ExtractedDTC) *ExtractedDTCUpdateOne {
	mutation := newExtractedDTCMutation(c.config, OpUpdateOne, withExtractedDTC(_m))
	return &ExtractedDTCUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractedDTCClient) UpdateOneID(id string) *ExtractedDTCUpdateOne {
	mutation := newExtractedDTCMutation(c.config, OpUpdateOne, withExtractedDTCID(id))
	return &ExtractedDTCUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExtractedDTC.
func (c *ExtractedDTCClient) Delete() *ExtractedDTCDelete {
	mutation := newExtractedDTCMutation(c.config, OpDelete)
	return &ExtractedDTCDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractedDTCClient) DeleteOne(_m *ExtractedDTC) *ExtractedDTCDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractedDTCClient) DeleteOneID(id string) *ExtractedDTCDeleteOne {
	builder := c.Delete().Where(extracteddtc.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractedDTCDeleteOne{builder}
}

// Query returns a query builder for ExtractedDTC.
func (c *ExtractedDTCClient) Query() *ExtractedDTCQuery {
	return &ExtractedDTCQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtractedDTC},
		inters: c.Interceptors(),
	}
}

// Get returns a ExtractedDTC entity by its id.
func (c *ExtractedDTCClient) Get(ctx context.Context, id string) (*ExtractedDTC, error) {
	return c.Query().Where(extracteddtc.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractedDTCClient) GetX(ctx context.Context, id string) *ExtractedDTC {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ExtractedDTCClient) Hooks() []Hook {
	return c.hooks.ExtractedDTC
}

// Interceptors returns the client interceptors.
func (c *ExtractedDTCClient) Interceptors() []Interceptor {
	return c.inters.ExtractedDTC
}

func (c *ExtractedDTCClient) mutate(ctx context.Context, m *ExtractedDTCMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractedDTCCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractedDTCUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractedDTCUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractedDTCDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExtractedDTC mutation op: %q", m.Op())
	}
}

// ExtractedSensorClient is a client for the ExtractedSensor schema.
type ExtractedSensorClient struct {
	config
}

// NewExtractedSensorClient returns a client for the ExtractedSensor from the given config.
func NewExtractedSensorClient(c config) *ExtractedSensorClient {
	return &ExtractedSensorClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extractedsensor.Hooks(f(g(h())))`.
func (c *ExtractedSensorClient) Use(hooks ...Hook) {
	c.hooks.ExtractedSensor = append(c.hooks.ExtractedSensor, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extractedsensor.Intercept(f(g(h())))`.
func (c *ExtractedSensorClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExtractedSensor = append(c.inters.ExtractedSensor, interceptors...)
}

// Create returns a builder for creating a ExtractedSensor entity.
func (c *ExtractedSensorClient) Create() *ExtractedSensorCreate {
	mutation := newExtractedSensorMutation(c.config, OpCreate)
	return &ExtractedSensorCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExtractedSensor entities.
func (c *ExtractedSensorClient) CreateBulk(builders ...*ExtractedSensorCreate) *ExtractedSensorCreateBulk {
	return &ExtractedSensorCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractedSensorClient) MapCreateBulk(slice any, setFunc func(*ExtractedSensorCreate, int)) *ExtractedSensorCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractedSensorCreateBulk{err: fmt.Errorf("calling to ExtractedSensorClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractedSensorCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractedSensorCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExtractedSensor.
func (c *ExtractedSensorClient) Update() *ExtractedSensorUpdate {
	mutation := newExtractedSensorMutation(c.config, OpUpdate)
	return &ExtractedSensorUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractedSensorClient) UpdateOne(_m *ExtractedSensor) *ExtractedSensorUpdateOne {
	mutation := newExtractedSensorMutation(c.config, OpUpdateOne, withExtractedSensor(_m))
	return &ExtractedSensorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractedSensorClient) UpdateOneID(id string) *ExtractedSensorUpdateOne {
	mutation := newExtractedSensorMutation(c.config, OpUpdateOne, withExtractedSensorID(id))
	return &ExtractedSensorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExtractedSensor.
func (c *ExtractedSensorClient) Delete() *ExtractedSensorDelete {
	mutation := newExtractedSensorMutation(c.config, OpDelete)
	return &ExtractedSensorDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractedSensorClient) DeleteOne(_m *ExtractedSensor) *ExtractedSensorDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractedSensorClient) DeleteOneID(id string) *ExtractedSensorDeleteOne {
	builder := c.Delete().Where(extractedsensor.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractedSensorDeleteOne{builder}
}

// Query returns a query builder for ExtractedSensor.
func (c *ExtractedSensorClient) Query() *ExtractedSensorQuery {
	return &ExtractedSensorQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtractedSensor},
		inters: c.Interceptors(),
	}
}

// Get returns a ExtractedSensor entity by its id.
func (c *ExtractedSensorClient) Get(ctx context.Context, id string) (*ExtractedSensor, error) {
	return c.Query().Where(extractedsensor.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractedSensorClient) GetX(ctx context.Context, id string) *ExtractedSensor {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ExtractedSensorClient) Hooks() []Hook {
	return c.hooks.ExtractedSensor
}

// Interceptors returns the client interceptors.
func (c *ExtractedSensorClient) Interceptors() []Interceptor {
	return c.inters.ExtractedSensor
}

func (c *ExtractedSensorClient) mutate(ctx context.Context, m *ExtractedSensorMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractedSensorCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractedSensorUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractedSensorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractedSensorDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExtractedSensor mutation op: %q", m.Op())
	}
}

// ExtractedStepClient is a client for the ExtractedStep schema.
type ExtractedStepClient struct {
	config
}

// NewExtractedStepClient returns a client for the ExtractedStep from the given config.
func NewExtractedStepClient(c config) *ExtractedStepClient {
	return &ExtractedStepClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extractedstep.Hooks(f(g(h())))`.
func (c *ExtractedStepClient) Use(hooks ...Hook) {
	c.hooks.ExtractedStep = append(c.hooks.ExtractedStep, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extractedstep.Intercept(f(g(h())))`.
func (c *ExtractedStepClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExtractedStep = append(c.inters.ExtractedStep, interceptors...)
}

// Create returns a builder for creating a ExtractedStep entity.
func (c *ExtractedStepClient) Create() *ExtractedStepCreate {
	mutation := newExtractedStepMutation(c.config, OpCreate)
	return &ExtractedStepCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExtractedStep entities.
func (c *ExtractedStepClient) CreateBulk(builders ...*ExtractedStepCreate) *ExtractedStepCreateBulk {
	return &ExtractedStepCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractedStepClient) MapCreateBulk(slice any, setFunc func(*ExtractedStepCreate, int)) *ExtractedStepCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractedStepCreateBulk{err: fmt.Errorf("calling to ExtractedStepClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractedStepCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractedStepCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExtractedStep.
func (c *ExtractedStepClient) Update() *ExtractedStepUpdate {
	mutation := newExtractedStepMutation(c.config, OpUpdate)
	return &ExtractedStepUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractedStepClient) UpdateOne(_m *ExtractedStep) *ExtractedStepUpdateOne {
	mutation := newExtractedStepMutation(c.config, OpUpdateOne, withExtractedStep(_m))
	return &ExtractedStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractedStepClient) UpdateOneID(id string) *ExtractedStepUpdateOne {
	mutation := newExtractedStepMutation(c.config, OpUpdateOne, withExtractedStepID(id))
	return &ExtractedStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExtractedStep.
func (c *ExtractedStepClient) Delete() *ExtractedStepDelete {
	mutation := newExtractedStepMutation(c.config, OpDelete)
	return &ExtractedStepDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractedStepClient) DeleteOne(_m *ExtractedStep) *ExtractedStepDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractedStepClient) DeleteOneID(id string) *ExtractedStepDeleteOne {
	builder := c.Delete().Where(extractedstep.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractedStepDeleteOne{builder}
}

// Query returns a query builder for ExtractedStep.
func (c *ExtractedStepClient) Query() *ExtractedStepQuery {
	return &ExtractedStepQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtractedStep},
		inters: c.Interceptors(),
	}
}

// Get returns a ExtractedStep entity by its id.
func (c *ExtractedStepClient) Get(ctx context.Context, id string) (*ExtractedStep, error) {
	return c.Query().Where(extractedstep.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractedStepClient) GetX(ctx context.Context, id string) *ExtractedStep {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ExtractedStepClient) Hooks() []Hook {
	return c.hooks.ExtractedStep
}

// Interceptors returns the client interceptors.
func (c *ExtractedStepClient) Interceptors() []Interceptor {
	return c.inters.ExtractedStep
}

func (c *ExtractedStepClient) mutate(ctx context.Context, m *ExtractedStepMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractedStepCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractedStepUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractedStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractedStepDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExtractedStep mutation op: %q", m.Op())
	}
}

// ExtractedTSBClient is a client for the ExtractedTSB schema.
type ExtractedTSBClient struct {
	config
}

// NewExtractedTSBClient returns a client for the ExtractedTSB from the given config.
func NewExtractedTSBClient(c config) *ExtractedTSBClient {
	return &ExtractedTSBClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extractedtsb.Hooks(f(g(h())))`.
func (c *ExtractedTSBClient) Use(hooks ...Hook) {
	c.hooks.ExtractedTSB = append(c.hooks.ExtractedTSB, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extractedtsb.Intercept(f(g(h())))`.
func (c *ExtractedTSBClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExtractedTSB = append(c.inters.ExtractedTSB, interceptors...)
}

// Create returns a builder for creating a ExtractedTSB entity.
func (c *ExtractedTSBClient) Create() *ExtractedTSBCreate {
	mutation := newExtractedTSBMutation(c.config, OpCreate)
	return &ExtractedTSBCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExtractedTSB entities.
func (c *ExtractedTSBClient) CreateBulk(builders ...*ExtractedTSBCreate) *ExtractedTSBCreateBulk {
	return &ExtractedTSBCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractedTSBClient) MapCreateBulk(slice any, setFunc func(*ExtractedTSBCreate, int)) *ExtractedTSBCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractedTSBCreateBulk{err: fmt.Errorf("calling to ExtractedTSBClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractedTSBCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractedTSBCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExtractedTSB.
func (c *ExtractedTSBClient) Update() *ExtractedTSBUpdate {
	mutation := newExtractedTSBMutation(c.config, OpUpdate)
	return &ExtractedTSBUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractedTSBClient) UpdateOne(_m *ExtractedTSB) *ExtractedTSBUpdateOne {
	mutation := newExtractedTSBMutation(c.config, OpUpdateOne, withExtractedTSB(_m))
	return &ExtractedTSBUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractedTSBClient) UpdateOneID(id string) *ExtractedTSBUpdateOne {
	mutation := newExtractedTSBMutation(c.config, OpUpdateOne, withExtractedTSBID(id))
	return &ExtractedTSBUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExtractedTSB.
func (c *ExtractedTSBClient) Delete() *ExtractedTSBDelete {
	mutation := newExtractedTSBMutation(c.config, OpDelete)
	return &ExtractedTSBDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractedTSBClient) DeleteOne(_m *ExtractedTSB) *ExtractedTSBDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractedTSBClient) DeleteOneID(id string) *ExtractedTSBDeleteOne {
	builder := c.Delete().Where(extractedtsb.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractedTSBDeleteOne{builder}
}

// Query returns a query builder for ExtractedTSB.
func (c *ExtractedTSBClient) Query() *ExtractedTSBQuery {
	return &ExtractedTSBQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtractedTSB},
		inters: c.Interceptors(),
	}
}

// Get returns a ExtractedTSB entity by its id.
func (c *ExtractedTSBClient) Get(ctx context.Context, id string) (*ExtractedTSB, error) {
	return c.Query().Where(extractedtsb.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractedTSBClient) GetX(ctx context.Context, id string) *ExtractedTSB {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ExtractedTSBClient) Hooks() []Hook {
	return c.hooks.ExtractedTSB
}

// Interceptors returns the client interceptors.
func (c *ExtractedTSBClient) Interceptors() []Interceptor {
	return c.inters.ExtractedTSB
}

func (c *ExtractedTSBClient) mutate(ctx context.Context, m *ExtractedTSBMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractedTSBCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractedTSBUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractedTSBUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractedTSBDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExtractedTSB mutation op: %q", m.Op())
	}
}

// ProcessingLogClient is a client for the ProcessingLog schema.
type ProcessingLogClient struct {
	config
}

// NewProcessingLogClient returns a client for the ProcessingLog from the given config.
func NewProcessingLogClient(c config) *ProcessingLogClient {
	return &ProcessingLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `processinglog.Hooks(f(g(h())))`.
func (c *ProcessingLogClient) Use(hooks ...Hook) {
	c.hooks.ProcessingLog = append(c.hooks.ProcessingLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `processinglog.Intercept(f(g(h())))`.
func (c *ProcessingLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProcessingLog = append(c.inters.ProcessingLog, interceptors...)
}

// Create returns a builder for creating a ProcessingLog entity.
func (c *ProcessingLogClient) Create() *ProcessingLogCreate {
	mutation := newProcessingLogMutation(c.config, OpCreate)
	return &ProcessingLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProcessingLog entities.
func (c *ProcessingLogClient) CreateBulk(builders ...*ProcessingLogCreate) *ProcessingLogCreateBulk {
	return &ProcessingLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProcessingLogClient) MapCreateBulk(slice any, setFunc func(*ProcessingLogCreate, int)) *ProcessingLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProcessingLogCreateBulk{err: fmt.Errorf("calling to ProcessingLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProcessingLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProcessingLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProcessingLog.
func (c *ProcessingLogClient) Update() *ProcessingLogUpdate {
	mutation := newProcessingLogMutation(c.config, OpUpdate)
	return &ProcessingLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProcessingLogClient) UpdateOne(_m *ProcessingLog) *ProcessingLogUpdateOne {
	mutation := newProcessingLogMutation(c.config, OpUpdateOne, withProcessingLog(_m))
	return &ProcessingLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProcessingLogClient) UpdateOneID(id string) *ProcessingLogUpdateOne {
	mutation := newProcessingLogMutation(c.config, OpUpdateOne, withProcessingLogID(id))
	return &ProcessingLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProcessingLog.
func (c *ProcessingLogClient) Delete() *ProcessingLogDelete {
	mutation := newProcessingLogMutation(c.config, OpDelete)
	return &ProcessingLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProcessingLogClient) DeleteOne(_m *ProcessingLog) *ProcessingLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProcessingLogClient) DeleteOneID(id string) *ProcessingLogDeleteOne {
	builder := c.Delete().Where(processinglog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProcessingLogDeleteOne{builder}
}

// Query returns a query builder for ProcessingLog.
func (c *ProcessingLogClient) Query() *ProcessingLogQuery {
	return &ProcessingLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProcessingLog},
		inters: c.Interceptors(),
	}
}

// Get returns a ProcessingLog entity by its id.
func (c *ProcessingLogClient) Get(ctx context.Context, id string) (*ProcessingLog, error) {
	return c.Query().Where(processinglog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProcessingLogClient) GetX(ctx context.Context, id string) *ProcessingLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a ProcessingLog.
func (c *ProcessingLogClient) QueryDocument(_m *ProcessingLog) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(processinglog.Table, processinglog.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, processinglog.DocumentTable, processinglog.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProcessingLogClient) Hooks() []Hook {
	return c.hooks.ProcessingLog
}

// Interceptors returns the client interceptors.
func (c *ProcessingLogClient) Interceptors() []Interceptor {
	return c.inters.ProcessingLog
}

func (c *ProcessingLogClient) mutate(ctx context.Context, m *ProcessingLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProcessingLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProcessingLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProcessingLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProcessingLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProcessingLog mutation op: %q", m.Op())
	}
}

// ResolutionLogClient is a client for the ResolutionLog schema.
type ResolutionLogClient struct {
	config
}

// NewResolutionLogClient returns a client for the ResolutionLog from the given config.
func NewResolutionLogClient(c config) *ResolutionLogClient {
	return &ResolutionLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `resolutionlog.Hooks(f(g(h())))`.
func (c *ResolutionLogClient) Use(hooks ...Hook) {
	c.hooks.ResolutionLog = append(c.hooks.ResolutionLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `resolutionlog.Intercept(f(g(h())))`.
func (c *ResolutionLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.ResolutionLog = append(c.inters.ResolutionLog, interceptors...)
}

// Create returns a builder for creating a ResolutionLog entity.
func (c *ResolutionLogClient) Create() *ResolutionLogCreate {
	mutation := newResolutionLogMutation(c.config, OpCreate)
	return &ResolutionLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ResolutionLog entities.
func (c *ResolutionLogClient) CreateBulk(builders ...*ResolutionLogCreate) *ResolutionLogCreateBulk {
	return &ResolutionLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ResolutionLogClient) MapCreateBulk(slice any, setFunc func(*ResolutionLogCreate, int)) *ResolutionLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ResolutionLogCreateBulk{err: fmt.Errorf("calling to ResolutionLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ResolutionLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ResolutionLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ResolutionLog.
func (c *ResolutionLogClient) Update() *ResolutionLogUpdate {
	mutation := newResolutionLogMutation(c.config, OpUpdate)
	return &ResolutionLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ResolutionLogClient) UpdateOne(_m *ResolutionLog) *ResolutionLogUpdateOne {
	mutation := newResolutionLogMutation(c.config, OpUpdateOne, withResolutionLog(_m))
	return &ResolutionLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ResolutionLogClient) UpdateOneID(id string) *ResolutionLogUpdateOne {
	mutation := newResolutionLogMutation(c.config, OpUpdateOne, withResolutionLogID(id))
	return &ResolutionLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ResolutionLog.
func (c *ResolutionLogClient) Delete() *ResolutionLogDelete {
	mutation := newResolutionLogMutation(c.config, OpDelete)
	return &ResolutionLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ResolutionLogClient) DeleteOne(_m *ResolutionLog) *ResolutionLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ResolutionLogClient) DeleteOneID(id string) *ResolutionLogDeleteOne {
	builder := c.Delete().Where(resolutionlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ResolutionLogDeleteOne{builder}
}

// Query returns a query builder for ResolutionLog.
func (c *ResolutionLogClient) Query() *ResolutionLogQuery {
	return &ResolutionLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeResolutionLog},
		inters: c.Interceptors(),
	}
}

// Get returns a ResolutionLog entity by its id.
func (c *ResolutionLogClient) Get(ctx context.Context, id string) (*ResolutionLog, error) {
	return c.Query().Where(resolutionlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ResolutionLogClient) GetX(ctx context.Context, id string) *ResolutionLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ResolutionLogClient) Hooks() []Hook {
	return c.hooks.ResolutionLog
}

// Interceptors returns the client interceptors.
func (c *ResolutionLogClient) Interceptors() []Interceptor {
	return c.inters.ResolutionLog
}

func (c *ResolutionLogClient) mutate(ctx context.Context, m *ResolutionLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ResolutionLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ResolutionLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ResolutionLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ResolutionLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ResolutionLog mutation op: %q", m.Op())
	}
}

// SensorClient is a client for the Sensor schema.
type SensorClient struct {
	config
}

// NewSensorClient returns a client for the Sensor from the given config.
func NewSensorClient(c config) *SensorClient {
	return &SensorClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sensor.Hooks(f(g(h())))`.
func (c *SensorClient) Use(hooks ...Hook) {
	c.hooks.Sensor = append(c.hooks.Sensor, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sensor.Intercept(f(g(h())))`.
func (c *SensorClient) Intercept(interceptors ...Interceptor) {
	c.inters.Sensor = append(c.inters.Sensor, interceptors...)
}

// Create returns a builder for creating a Sensor entity.
func (c *SensorClient) Create() *SensorCreate {
	mutation := newSensorMutation(c.config, OpCreate)
	return &SensorCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Sensor entities.
func (c *SensorClient) CreateBulk(builders ...*SensorCreate) *SensorCreateBulk {
	return &SensorCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SensorClient) MapCreateBulk(slice any, setFunc func(*SensorCreate, int)) *SensorCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SensorCreateBulk{err: fmt.Errorf("calling to SensorClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SensorCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SensorCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Sensor.
func (c *SensorClient) Update() *SensorUpdate {
	mutation := newSensorMutation(c.config, OpUpdate)
	return &SensorUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SensorClient) UpdateOne(_m *Sensor) *SensorUpdateOne {
	mutation := newSensorMutation(c.config, OpUpdateOne, withSensor(_m))
	return &SensorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SensorClient) UpdateOneID(id string) *SensorUpdateOne {
	mutation := newSensorMutation(c.config, OpUpdateOne, withSensorID(id))
	return &SensorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Sensor.
func (c *SensorClient) Delete() *SensorDelete {
	mutation := newSensorMutation(c.config, OpDelete)
	return &SensorDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SensorClient) DeleteOne(_m *Sensor) *SensorDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SensorClient) DeleteOneID(id string) *SensorDeleteOne {
	builder := c.Delete().Where(sensor.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SensorDeleteOne{builder}
}

// Query returns a query builder for Sensor.
func (c *SensorClient) Query() *SensorQuery {
	return &SensorQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSensor},
		inters: c.Interceptors(),
	}
}

// Get returns a Sensor entity by its id.
func (c *SensorClient) Get(ctx context.Context, id string) (*Sensor, error) {
	return c.Query().Where(sensor.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SensorClient) GetX(ctx context.Context, id string) *Sensor {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SensorClient) Hooks() []Hook {
	return c.hooks.Sensor
}

// Interceptors returns the client interceptors.
func (c *SensorClient) Interceptors() []Interceptor {
	return c.inters.Sensor
}

func (c *SensorClient) mutate(ctx context.Context, m *SensorMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SensorCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SensorUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SensorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SensorDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Sensor mutation op: %q", m.Op())
	}
}

// TSBBulletinClient is a client for the TSBBulletin schema.
type TSBBulletinClient struct {
	config
}

// NewTSBBulletinClient returns a client for the TSBBulletin from the given config.
func NewTSBBulletinClient(c config) *TSBBulletinClient {
	return &TSBBulletinClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tsbbulletin.Hooks(f(g(h())))`.
func (c *TSBBulletinClient) Use(hooks ...Hook) {
	c.hooks.TSBBulletin = append(c.hooks.TSBBulletin, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tsbbulletin.Intercept(f(g(h())))`.
func (c *TSBBulletinClient) Intercept(interceptors ...Interceptor) {
	c.inters.TSBBulletin = append(c.inters.TSBBulletin, interceptors...)
}

// Create returns a builder for creating a TSBBulletin entity.
func (c *TSBBulletinClient) Create() *TSBBulletinCreate {
	mutation := newTSBBulletinMutation(c.config, OpCreate)
	return &TSBBulletinCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TSBBulletin entities.
func (c *TSBBulletinClient) CreateBulk(builders ...*TSBBulletinCreate) *TSBBulletinCreateBulk {
	return &TSBBulletinCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TSBBulletinClient) MapCreateBulk(slice any, setFunc func(*TSBBulletinCreate, int)) *TSBBulletinCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TSBBulletinCreateBulk{err: fmt.Errorf("calling to TSBBulletinClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TSBBulletinCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TSBBulletinCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TSBBulletin.
func (c *TSBBulletinClient) Update() *TSBBulletinUpdate {
	mutation := newTSBBulletinMutation(c.config, OpUpdate)
	return &TSBBulletinUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TSBBulletinClient) UpdateOne(_m *TSBBulletin) *TSBBulletinUpdateOne {
	mutation := newTSBBulletinMutation(c.config, OpUpdateOne, withTSBBulletin(_m))
	return &TSBBulletinUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TSBBulletinClient) UpdateOneID(id string) *TSBBulletinUpdateOne {
	mutation := newTSBBulletinMutation(c.config, OpUpdateOne, withTSBBulletinID(id))
	return &TSBBulletinUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TSBBulletin.
func (c *TSBBulletinClient) Delete() *TSBBulletinDelete {
	mutation := newTSBBulletinMutation(c.config, OpDelete)
	return &TSBBulletinDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TSBBulletinClient) DeleteOne(_m *TSBBulletin) *TSBBulletinDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TSBBulletinClient) DeleteOneID(id string) *TSBBulletinDeleteOne {
	builder := c.Delete().Where(tsbbulletin.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TSBBulletinDeleteOne{builder}
}

// Query returns a query builder for TSBBulletin.
func (c *TSBBulletinClient) Query() *TSBBulletinQuery {
	return &TSBBulletinQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTSBBulletin},
		inters: c.Interceptors(),
	}
}

// Get returns a TSBBulletin entity by its id.
func (c *TSBBulletinClient) Get(ctx context.Context, id string) (*TSBBulletin, error) {
	return c.Query().Where(tsbbulletin.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TSBBulletinClient) GetX(ctx context.Context, id string) *TSBBulletin {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TSBBulletinClient) Hooks() []Hook {
	return c.hooks.TSBBulletin
}

// Interceptors returns the client interceptors.
func (c *TSBBulletinClient) Interceptors() []Interceptor {
	return c.inters.TSBBulletin
}

func (c *TSBBulletinClient) mutate(ctx context.Context, m *TSBBulletinMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TSBBulletinCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TSBBulletinUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TSBBulletinUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TSBBulletinDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TSBBulletin mutation op: %q", m.Op())
	}
}

// VehicleClient is a client for the Vehicle schema.
type VehicleClient struct {
	config
}

// NewVehicleClient returns a client for the Vehicle from the given config.
func NewVehicleClient(c config) *VehicleClient {
	return &VehicleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `vehicle.Hooks(f(g(h())))`.
func (c *VehicleClient) Use(hooks ...Hook) {
	c.hooks.Vehicle = append(c.hooks.Vehicle, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `vehicle.Intercept(f(g(h())))`.
func (c *VehicleClient) Intercept(interceptors ...Interceptor) {
	c.inters.Vehicle = append(c.inters.Vehicle, interceptors...)
}

// Create returns a builder for creating a Vehicle entity.
func (c *VehicleClient) Create() *VehicleCreate {
	mutation := newVehicleMutation(c.config, OpCreate)
	return &VehicleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Vehicle entities.
func (c *VehicleClient) CreateBulk(builders ...*VehicleCreate) *VehicleCreateBulk {
	return &VehicleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VehicleClient) MapCreateBulk(slice any, setFunc func(*VehicleCreate, int)) *VehicleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VehicleCreateBulk{err: fmt.Errorf("calling to VehicleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VehicleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VehicleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Vehicle.
func (c *VehicleClient) Update() *VehicleUpdate {
	mutation := newVehicleMutation(c.config, OpUpdate)
	return &VehicleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VehicleClient) UpdateOne(_m *Vehicle) *VehicleUpdateOne {
	mutation := newVehicleMutation(c.config, OpUpdateOne, withVehicle(_m))
	return &VehicleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VehicleClient) UpdateOneID(id string) *VehicleUpdateOne {
	mutation := newVehicleMutation(c.config, OpUpdateOne, withVehicleID(id))
	return &VehicleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Vehicle.
func (c *VehicleClient) Delete() *VehicleDelete {
	mutation := newVehicleMutation(c.config, OpDelete)
	return &VehicleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VehicleClient) DeleteOne(_m *Vehicle) *VehicleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VehicleClient) DeleteOneID(id string) *VehicleDeleteOne {
	builder := c.Delete().Where(vehicle.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VehicleDeleteOne{builder}
}

// Query returns a query builder for Vehicle.
func (c *VehicleClient) Query() *VehicleQuery {
	return &VehicleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVehicle},
		inters: c.Interceptors(),
	}
}

// Get returns a Vehicle entity by its id.
func (c *VehicleClient) Get(ctx context.Context, id string) (*Vehicle, error) {
	return c.Query().Where(vehicle.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VehicleClient) GetX(ctx context.Context, id string) *Vehicle {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *VehicleClient) Hooks() []Hook {
	return c.hooks.Vehicle
}

// Interceptors returns the client interceptors.
func (c *VehicleClient) Interceptors() []Interceptor {
	return c.inters.Vehicle
}

func (c *VehicleClient) mutate(ctx context.Context, m *VehicleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VehicleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VehicleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VehicleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VehicleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Vehicle mutation op: %q", m.Op())
	}
}

// VehicleDTCClient is a client for the VehicleDTC schema.
type VehicleDTCClient struct {
	config
}

// NewVehicleDTCClient returns a client for the VehicleDTC from the given config.
func NewVehicleDTCClient(c config) *VehicleDTCClient {
	return &VehicleDTCClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `vehicledtc.Hooks(f(g(h())))`.
func (c *VehicleDTCClient) Use(hooks ...Hook) {
	c.hooks.VehicleDTC = append(c.hooks.VehicleDTC, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `vehicledtc.Intercept(f(g(h())))`.
func (c *VehicleDTCClient) Intercept(interceptors ...Interceptor) {
	c.inters.VehicleDTC = append(c.inters.VehicleDTC, interceptors...)
}

// Create returns a builder for creating a VehicleDTC entity.
func (c *VehicleDTCClient) Create() *VehicleDTCCreate {
	mutation := newVehicleDTCMutation(c.config, OpCreate)
	return &VehicleDTCCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of VehicleDTC entities.
func (c *VehicleDTCClient) CreateBulk(builders ...*VehicleDTCCreate) *VehicleDTCCreateBulk {
	return &VehicleDTCCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VehicleDTCClient) MapCreateBulk(slice any, setFunc func(*VehicleDTCCreate, int)) *VehicleDTCCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VehicleDTCCreateBulk{err: fmt.Errorf("calling to VehicleDTCClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VehicleDTCCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VehicleDTCCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for VehicleDTC.
func (c *VehicleDTCClient) Update() *VehicleDTCUpdate {
	mutation := newVehicleDTCMutation(c.config, OpUpdate)
	return &VehicleDTCUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VehicleDTCClient) UpdateOne(_m *VehicleDTC) *VehicleDTCUpdateOne {
	mutation := newVehicleDTCMutation(c.config, OpUpdateOne, withVehicleDTC(_m))
	return &VehicleDTCUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VehicleDTCClient) UpdateOneID(id string) *VehicleDTCUpdateOne {
	mutation := newVehicleDTCMutation(c.config, OpUpdateOne, withVehicleDTCID(id))
	return &VehicleDTCUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for VehicleDTC.
func (c *VehicleDTCClient) Delete() *VehicleDTCDelete {
	mutation := newVehicleDTCMutation(c.config, OpDelete)
	return &VehicleDTCDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VehicleDTCClient) DeleteOne(_m *VehicleDTC) *VehicleDTCDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VehicleDTCClient) DeleteOneID(id string) *VehicleDTCDeleteOne {
	builder := c.Delete().Where(vehicledtc.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VehicleDTCDeleteOne{builder}
}

// Query returns a query builder for VehicleDTC.
func (c *VehicleDTCClient) Query() *VehicleDTCQuery {
	return &VehicleDTCQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVehicleDTC},
		inters: c.Interceptors(),
	}
}

// Get returns a VehicleDTC entity by its id.
func (c *VehicleDTCClient) Get(ctx context.Context, id string) (*VehicleDTC, error) {
	return c.Query().Where(vehicledtc.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VehicleDTCClient) GetX(ctx context.Context, id string) *VehicleDTC {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *VehicleDTCClient) Hooks() []Hook {
	return c.hooks.VehicleDTC
}

// Interceptors returns the client interceptors.
func (c *VehicleDTCClient) Interceptors() []Interceptor {
	return c.inters.VehicleDTC
}

func (c *VehicleDTCClient) mutate(ctx context.Context, m *VehicleDTCMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VehicleDTCCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VehicleDTCUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VehicleDTCUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VehicleDTCDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown VehicleDTC mutation op: %q", m.Op())
	}
}

// VehicleMentionClient is a client for the VehicleMention schema.
type VehicleMentionClient struct {
	config
}

// NewVehicleMentionClient returns a client for the VehicleMention from the given config.
func NewVehicleMentionClient(c config) *VehicleMentionClient {
	return &VehicleMentionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `vehiclemention.Hooks(f(g(h())))`.
func (c *VehicleMentionClient) Use(hooks ...Hook) {
	c.hooks.VehicleMention = append(c.hooks.VehicleMention, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `vehiclemention.Intercept(f(g(h())))`.
func (c *VehicleMentionClient) Intercept(interceptors ...Interceptor) {
	c.inters.VehicleMention = append(c.inters.VehicleMention, interceptors...)
}

// Create returns a builder for creating a VehicleMention entity.
func (c *VehicleMentionClient) Create() *VehicleMentionCreate {
	mutation := newVehicleMentionMutation(c.config, OpCreate)
	return &VehicleMentionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of VehicleMention entities.
func (c *VehicleMentionClient) CreateBulk(builders ...*VehicleMentionCreate) *VehicleMentionCreateBulk {
	return &VehicleMentionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VehicleMentionClient) MapCreateBulk(slice any, setFunc func(*VehicleMentionCreate, int)) *VehicleMentionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VehicleMentionCreateBulk{err: fmt.Errorf("calling to VehicleMentionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VehicleMentionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VehicleMentionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for VehicleMention.
func (c *VehicleMentionClient) Update() *VehicleMentionUpdate {
	mutation := newVehicleMentionMutation(c.config, OpUpdate)
	return &VehicleMentionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VehicleMentionClient) UpdateOne(_m *VehicleMention) *VehicleMentionUpdateOne {
	mutation := newVehicleMentionMutation(c.config, OpUpdateOne, withVehicleMention(_m))
	return &VehicleMentionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VehicleMentionClient) UpdateOneID(id string) *VehicleMentionUpdateOne {
	mutation := newVehicleMentionMutation(c.config, OpUpdateOne, withVehicleMentionID(id))
	return &VehicleMentionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for VehicleMention.
func (c *VehicleMentionClient) Delete() *VehicleMentionDelete {
	mutation := newVehicleMentionMutation(c.config, OpDelete)
	return &VehicleMentionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VehicleMentionClient) DeleteOne(_m *VehicleMention) *VehicleMentionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VehicleMentionClient) DeleteOneID(id string) *VehicleMentionDeleteOne {
	builder := c.Delete().Where(vehiclemention.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VehicleMentionDeleteOne{builder}
}

// Query returns a query builder for VehicleMention.
func (c *VehicleMentionClient) Query() *VehicleMentionQuery {
	return &VehicleMentionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVehicleMention},
		inters: c.Interceptors(),
	}
}

// Get returns a VehicleMention entity by its id.
func (c *VehicleMentionClient) Get(ctx context.Context, id string) (*VehicleMention, error) {
	return c.Query().Where(vehiclemention.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VehicleMentionClient) GetX(ctx context.Context, id string) *VehicleMention {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *VehicleMentionClient) Hooks() []Hook {
	return c.hooks.VehicleMention
}

// Interceptors returns the client interceptors.
func (c *VehicleMentionClient) Interceptors() []Interceptor {
	return c.inters.VehicleMention
}

func (c *VehicleMentionClient) mutate(ctx context.Context, m *VehicleMentionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VehicleMentionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VehicleMentionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VehicleMentionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VehicleMentionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown VehicleMention mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ChunkEvaluation, CrawlRequest, DTCCause, DTCDiagnosticStep, DTCMaster,
		DTCRelatedSensor, Document, DocumentChunk, EntitySource, ExtractedCategory,
		ExtractedCause, ExtractedDTC, ExtractedSensor, ExtractedStep, ExtractedTSB,
		ProcessingLog, ResolutionLog, Sensor, TSBBulletin, Vehicle, VehicleDTC,
		VehicleMention []ent.Hook
	}
	inters struct {
		ChunkEvaluation, CrawlRequest, DTCCause, DTCDiagnosticStep, DTCMaster,
		DTCRelatedSensor, Document, DocumentChunk, EntitySource, ExtractedCategory,
		ExtractedCause, ExtractedDTC, ExtractedSensor, ExtractedStep, ExtractedTSB,
		ProcessingLog, ResolutionLog, Sensor, TSBBulletin, Vehicle, VehicleDTC,
		VehicleMention []ent.Interceptor
	}
)
