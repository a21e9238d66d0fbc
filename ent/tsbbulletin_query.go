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
	"github.com/autodiag/refinery/ent/predicate"
	"github.com/autodiag/refinery/ent/tsbbulletin"
)

// TSBBulletinQuery is the builder for querying TSBBulletin entities.
type TSBBulletinQuery struct {
	config
	ctx        *QueryContext
	order      []tsbbulletin.OrderOption
	inters     []Interceptor
	predicates []predicate.TSBBulletin
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the TSBBulletinQuery builder.
func (_q *TSBBulletinQuery) Where(ps ...predicate.TSBBulletin) *TSBBulletinQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *TSBBulletinQuery) Limit(limit int) *TSBBulletinQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *TSBBulletinQuery) Offset(offset int) *TSBBulletinQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *TSBBulletinQuery) Unique(unique bool) *TSBBulletinQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *TSBBulletinQuery) Order(o ...tsbbulletin.OrderOption) *TSBBulletinQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// First returns the first TSBBulletin entity from the query.
// Returns a *NotFoundError when no TSBBulletin was found.
func (_q *TSBBulletinQuery) First(ctx context.Context) (*TSBBulletin, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{tsbbulletin.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *TSBBulletinQuery) FirstX(ctx context.Context) *TSBBulletin {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first TSBBulletin ID from the query.
// Returns a *NotFoundError when no TSBBulletin ID was found.
func (_q *TSBBulletinQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{tsbbulletin.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *TSBBulletinQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single TSBBulletin entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one TSBBulletin entity is found.
// Returns a *NotFoundError when no TSBBulletin entities are found.
func (_q *TSBBulletinQuery) Only(ctx context.Context) (*TSBBulletin, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{tsbbulletin.Label}
	default:
		return nil, &NotSingularError{tsbbulletin.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *TSBBulletinQuery) OnlyX(ctx context.Context) *TSBBulletin {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only TSBBulletin ID in the query.
// Returns a *NotSingularError when more than one TSBBulletin ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *TSBBulletinQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{tsbbulletin.Label}
	default:
		err = &NotSingularError{tsbbulletin.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *TSBBulletinQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of TSBBulletins.
func (_q *TSBBulletinQuery) All(ctx context.Context) ([]*TSBBulletin, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*TSBBulletin, *TSBBulletinQuery]()
	return withInterceptors[[]*TSBBulletin](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *TSBBulletinQuery) AllX(ctx context.Context) []*TSBBulletin {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of TSBBulletin IDs.
func (_q *TSBBulletinQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(tsbbulletin.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *TSBBulletinQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *TSBBulletinQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*TSBBulletinQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *TSBBulletinQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *TSBBulletinQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *TSBBulletinQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the TSBBulletinQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *TSBBulletinQuery) Clone() *TSBBulletinQuery {
	if _q == nil {
		return nil
	}
	return &TSBBulletinQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]tsbbulletin.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.TSBBulletin{}, _q.predicates...),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		TsbNumber string `json:"tsb_number,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.TSBBulletin.Query().
//		GroupBy(tsbbulletin.FieldTsbNumber).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *TSBBulletinQuery) GroupBy(field string, fields ...string) *TSBBulletinGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &TSBBulletinGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = tsbbulletin.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		TsbNumber string `json:"tsb_number,omitempty"`
//	}
//
//	client.TSBBulletin.Query().
//		Select(tsbbulletin.FieldTsbNumber).
//		Scan(ctx, &v)
func (_q *TSBBulletinQuery) Select(fields ...string) *TSBBulletinSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &TSBBulletinSelect{TSBBulletinQuery: _q}
	sbuild.label = tsbbulletin.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a TSBBulletinSelect configured with the given aggregations.
func (_q *TSBBulletinQuery) Aggregate(fns ...AggregateFunc) *TSBBulletinSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *TSBBulletinQuery) prepareQuery(ctx context.Context) error {
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
		if !tsbbulletin.ValidColumn(f) {
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

func (_q *TSBBulletinQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*TSBBulletin, error) {
	var (
		nodes = []*TSBBulletin{}
		_spec = _q.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*TSBBulletin).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &TSBBulletin{config: _q.config}
		nodes = append(nodes, node)
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
	return nodes, nil
}

func (_q *TSBBulletinQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *TSBBulletinQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(tsbbulletin.Table, tsbbulletin.Columns, sqlgraph.NewFieldSpec(tsbbulletin.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tsbbulletin.FieldID)
		for i := range fields {
			if fields[i] != tsbbulletin.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
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

func (_q *TSBBulletinQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(tsbbulletin.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = tsbbulletin.Columns
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

// TSBBulletinGroupBy is the group-by builder for TSBBulletin entities.
type TSBBulletinGroupBy struct {
	selector
	build *TSBBulletinQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *TSBBulletinGroupBy) Aggregate(fns ...AggregateFunc) *TSBBulletinGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *TSBBulletinGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TSBBulletinQuery, *TSBBulletinGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *TSBBulletinGroupBy) sqlScan(ctx context.Context, root *TSBBulletinQuery, v any) error {
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

// TSBBulletinSelect is the builder for selecting fields of TSBBulletin entities.
type TSBBulletinSelect struct {
	*TSBBulletinQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *TSBBulletinSelect) Aggregate(fns ...AggregateFunc) *TSBBulletinSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *TSBBulletinSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TSBBulletinQuery, *TSBBulletinSelect](ctx, _s.TSBBulletinQuery, _s, _s.inters, v)
}

func (_s *TSBBulletinSelect) sqlScan(ctx context.Context, root *TSBBulletinQuery, v any) error {
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
