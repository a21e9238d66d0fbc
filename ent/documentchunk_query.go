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
	"github.com/autodiag/refinery/ent/chunkevaluation"
	"github.com/autodiag/refinery/ent/document"
	"github.com/autodiag/refinery/ent/documentchunk"
	"github.com/autodiag/refinery/ent/entitysource"
	"github.com/autodiag/refinery/ent/predicate"
)

// DocumentChunkQuery is the builder for querying DocumentChunk entities.
type DocumentChunkQuery struct {
	config
	ctx            *QueryContext
	order          []documentchunk.OrderOption
	inters         []Interceptor
	predicates     []predicate.DocumentChunk
	withDocument   *DocumentQuery
	withEvaluation *ChunkEvaluationQuery
	withSources    *EntitySourceQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the DocumentChunkQuery builder.
func (_q *DocumentChunkQuery) Where(ps ...predicate.DocumentChunk) *DocumentChunkQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *DocumentChunkQuery) Limit(limit int) *DocumentChunkQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *DocumentChunkQuery) Offset(offset int) *DocumentChunkQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *DocumentChunkQuery) Unique(unique bool) *DocumentChunkQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *DocumentChunkQuery) Order(o ...documentchunk.OrderOption) *DocumentChunkQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryDocument chains the current query on the "document" edge.
func (_q *DocumentChunkQuery) QueryDocument() *DocumentQuery {
	query := (&DocumentClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(documentchunk.Table, documentchunk.FieldID, selector),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, documentchunk.DocumentTable, documentchunk.DocumentColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryEvaluation chains the current query on the "evaluation" edge.
func (_q *DocumentChunkQuery) QueryEvaluation() *ChunkEvaluationQuery {
	query := (&ChunkEvaluationClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(documentchunk.Table, documentchunk.FieldID, selector),
			sqlgraph.To(chunkevaluation.Table, chunkevaluation.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, documentchunk.EvaluationTable, documentchunk.EvaluationColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QuerySources chains the current query on the "sources" edge.
func (_q *DocumentChunkQuery) QuerySources() *EntitySourceQuery {
	query := (&EntitySourceClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(documentchunk.Table, documentchunk.FieldID, selector),
			sqlgraph.To(entitysource.Table, entitysource.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, documentchunk.SourcesTable, documentchunk.SourcesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first DocumentChunk entity from the query.
// Returns a *NotFoundError when no DocumentChunk was found.
func (_q *DocumentChunkQuery) First(ctx context.Context) (*DocumentChunk, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{documentchunk.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *DocumentChunkQuery) FirstX(ctx context.Context) *DocumentChunk {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first DocumentChunk ID from the query.
// Returns a *NotFoundError when no DocumentChunk ID was found.
func (_q *DocumentChunkQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{documentchunk.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *DocumentChunkQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single DocumentChunk entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one DocumentChunk entity is found.
// Returns a *NotFoundError when no DocumentChunk entities are found.
func (_q *DocumentChunkQuery) Only(ctx context.Context) (*DocumentChunk, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{documentchunk.Label}
	default:
		return nil, &NotSingularError{documentchunk.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *DocumentChunkQuery) OnlyX(ctx context.Context) *DocumentChunk {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only DocumentChunk ID in the query.
// Returns a *NotSingularError when more than one DocumentChunk ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *DocumentChunkQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{documentchunk.Label}
	default:
		err = &NotSingularError{documentchunk.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *DocumentChunkQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of DocumentChunks.
func (_q *DocumentChunkQuery) All(ctx context.Context) ([]*DocumentChunk, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*DocumentChunk, *DocumentChunkQuery]()
	return withInterceptors[[]*DocumentChunk](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *DocumentChunkQuery) AllX(ctx context.Context) []*DocumentChunk {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of DocumentChunk IDs.
func (_q *DocumentChunkQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(documentchunk.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *DocumentChunkQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *DocumentChunkQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*DocumentChunkQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *DocumentChunkQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *DocumentChunkQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *DocumentChunkQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the DocumentChunkQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *DocumentChunkQuery) Clone() *DocumentChunkQuery {
	if _q == nil {
		return nil
	}
	return &DocumentChunkQuery{
		config:         _q.config,
		ctx:            _q.ctx.Clone(),
		order:          append([]documentchunk.OrderOption{}, _q.order...),
		inters:         append([]Interceptor{}, _q.inters...),
		predicates:     append([]predicate.DocumentChunk{}, _q.predicates...),
		withDocument:   _q.withDocument.Clone(),
		withEvaluation: _q.withEvaluation.Clone(),
		withSources:    _q.withSources.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithDocument tells the query-builder to eager-load the nodes that are connected to
// the "document" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DocumentChunkQuery) WithDocument(opts ...func(*DocumentQuery)) *DocumentChunkQuery {
	query := (&DocumentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDocument = query
	return _q
}

// WithEvaluation tells the query-builder to eager-load the nodes that are connected to
// the "evaluation" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DocumentChunkQuery) WithEvaluation(opts ...func(*ChunkEvaluationQuery)) *DocumentChunkQuery {
	query := (&ChunkEvaluationClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withEvaluation = query
	return _q
}

// WithSources tells the query-builder to eager-load the nodes that are connected to
// the "sources" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DocumentChunkQuery) WithSources(opts ...func(*EntitySourceQuery)) *DocumentChunkQuery {
	query := (&EntitySourceClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSources = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		DocumentID string `json:"document_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.DocumentChunk.Query().
//		GroupBy(documentchunk.FieldDocumentID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *DocumentChunkQuery) GroupBy(field string, fields ...string) *DocumentChunkGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &DocumentChunkGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = documentchunk.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		DocumentID string `json:"document_id,omitempty"`
//	}
//
//	client.DocumentChunk.Query().
//		Select(documentchunk.FieldDocumentID).
//		Scan(ctx, &v)
func (_q *DocumentChunkQuery) Select(fields ...string) *DocumentChunkSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &DocumentChunkSelect{DocumentChunkQuery: _q}
	sbuild.label = documentchunk.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a DocumentChunkSelect configured with the given aggregations.
func (_q *DocumentChunkQuery) Aggregate(fns ...AggregateFunc) *DocumentChunkSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *DocumentChunkQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !documentchunk.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *DocumentChunkQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*DocumentChunk, error) {
	var (
		nodes       = []*DocumentChunk{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withDocument != nil,
			_q.withEvaluation != nil,
			_q.withSources != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*DocumentChunk).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &DocumentChunk{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withDocument; query != nil {
		if err := _q.loadDocument(ctx, query, nodes, nil,
			func(n *DocumentChunk, e *Document) { n.Edges.Document = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withEvaluation; query != nil {
		if err := _q.loadEvaluation(ctx, query, nodes, nil,
			func(n *DocumentChunk, e *ChunkEvaluation) { n.Edges.Evaluation = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withSources; query != nil {
		if err := _q.loadSources(ctx, query, nodes,
			func(n *DocumentChunk) { n.Edges.Sources = []*EntitySource{} },
			func(n *DocumentChunk, e *EntitySource) { n.Edges.Sources = append(n.Edges.Sources, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *DocumentChunkQuery) loadDocument(ctx context.Context, query *DocumentQuery, nodes []*DocumentChunk, init func(*DocumentChunk), assign func(*DocumentChunk, *Document)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*DocumentChunk)
	for i := range nodes {
		fk := nodes[i].DocumentID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(document.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "document_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *DocumentChunkQuery) loadEvaluation(ctx context.Context, query *ChunkEvaluationQuery, nodes []*DocumentChunk, init func(*DocumentChunk), assign func(*DocumentChunk, *ChunkEvaluation)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*DocumentChunk)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(chunkevaluation.FieldChunkID)
	}
	query.Where(predicate.ChunkEvaluation(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(documentchunk.EvaluationColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ChunkID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "chunk_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *DocumentChunkQuery) loadSources(ctx context.Context, query *EntitySourceQuery, nodes []*DocumentChunk, init func(*DocumentChunk), assign func(*DocumentChunk, *EntitySource)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*DocumentChunk)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(entitysource.FieldChunkID)
	}
	query.Where(predicate.EntitySource(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(documentchunk.SourcesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ChunkID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "chunk_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *DocumentChunkQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *DocumentChunkQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(documentchunk.Table, documentchunk.Columns, sqlgraph.NewFieldSpec(documentchunk.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, documentchunk.FieldID)
		for i := range fields {
			if fields[i] != documentchunk.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withDocument != nil {
			_spec.Node.AddColumnOnce(documentchunk.FieldDocumentID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *DocumentChunkQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(documentchunk.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = documentchunk.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// DocumentChunkGroupBy is the group-by builder for DocumentChunk entities.
type DocumentChunkGroupBy struct {
	selector
	build *DocumentChunkQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *DocumentChunkGroupBy) Aggregate(fns ...AggregateFunc) *DocumentChunkGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *DocumentChunkGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DocumentChunkQuery, *DocumentChunkGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *DocumentChunkGroupBy) sqlScan(ctx context.Context, root *DocumentChunkQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// DocumentChunkSelect is the builder for selecting fields of DocumentChunk entities.
type DocumentChunkSelect struct {
	*DocumentChunkQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *DocumentChunkSelect) Aggregate(fns ...AggregateFunc) *DocumentChunkSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *DocumentChunkSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DocumentChunkQuery, *DocumentChunkSelect](ctx, _s.DocumentChunkQuery, _s, _s.inters, v)
}

func (_s *DocumentChunkSelect) sqlScan(ctx context.Context, root *DocumentChunkQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
