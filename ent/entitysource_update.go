// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autodiag/refinery/ent/documentchunk"
	"github.com/autodiag/refinery/ent/entitysource"
	"github.com/autodiag/refinery/ent/predicate"
)

// EntitySourceUpdate is the builder for updating EntitySource entities.
type EntitySourceUpdate struct {
	config
	hooks    []Hook
	mutation *EntitySourceMutation
}

// Where appends a list predicates to the EntitySourceUpdate builder.
func (_u *EntitySourceUpdate) Where(ps ...predicate.EntitySource) *EntitySourceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEntityTable sets the "entity_table" field.
func (_u *EntitySourceUpdate) SetEntityTable(v string) *EntitySourceUpdate {
	_u.mutation.SetEntityTable(v)
	return _u
}

// SetNillableEntityTable sets the "entity_table" field if the given value is not nil.
func (_u *EntitySourceUpdate) SetNillableEntityTable(v *string) *EntitySourceUpdate {
	if v != nil {
		_u.SetEntityTable(*v)
	}
	return _u
}

// SetEntityID sets the "entity_id" field.
func (_u *EntitySourceUpdate) SetEntityID(v string) *EntitySourceUpdate {
	_u.mutation.SetEntityID(v)
	return _u
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (_u *EntitySourceUpdate) SetNillableEntityID(v *string) *EntitySourceUpdate {
	if v != nil {
		_u.SetEntityID(*v)
	}
	return _u
}

// SetChunkID sets the "chunk_id" field.
func (_u *EntitySourceUpdate) SetChunkID(v string) *EntitySourceUpdate {
	_u.mutation.SetChunkID(v)
	return _u
}

// SetNillableChunkID sets the "chunk_id" field if the given value is not nil.
func (_u *EntitySourceUpdate) SetNillableChunkID(v *string) *EntitySourceUpdate {
	if v != nil {
		_u.SetChunkID(*v)
	}
	return _u
}

// SetTrustScore sets the "trust_score" field.
func (_u *EntitySourceUpdate) SetTrustScore(v float64) *EntitySourceUpdate {
	_u.mutation.ResetTrustScore()
	_u.mutation.SetTrustScore(v)
	return _u
}

// SetNillableTrustScore sets the "trust_score" field if the given value is not nil.
func (_u *EntitySourceUpdate) SetNillableTrustScore(v *float64) *EntitySourceUpdate {
	if v != nil {
		_u.SetTrustScore(*v)
	}
	return _u
}

// AddTrustScore adds value to the "trust_score" field.
func (_u *EntitySourceUpdate) AddTrustScore(v float64) *EntitySourceUpdate {
	_u.mutation.AddTrustScore(v)
	return _u
}

// SetRelevanceScore sets the "relevance_score" field.
func (_u *EntitySourceUpdate) SetRelevanceScore(v float64) *EntitySourceUpdate {
	_u.mutation.ResetRelevanceScore()
	_u.mutation.SetRelevanceScore(v)
	return _u
}

// SetNillableRelevanceScore sets the "relevance_score" field if the given value is not nil.
func (_u *EntitySourceUpdate) SetNillableRelevanceScore(v *float64) *EntitySourceUpdate {
	if v != nil {
		_u.SetRelevanceScore(*v)
	}
	return _u
}

// AddRelevanceScore adds value to the "relevance_score" field.
func (_u *EntitySourceUpdate) AddRelevanceScore(v float64) *EntitySourceUpdate {
	_u.mutation.AddRelevanceScore(v)
	return _u
}

// SetChunk sets the "chunk" edge to the DocumentChunk entity.
func (_u *EntitySourceUpdate) SetChunk(v *DocumentChunk) *EntitySourceUpdate {
	return _u.SetChunkID(v.ID)
}

// Mutation returns the EntitySourceMutation object of the builder.
func (_u *EntitySourceUpdate) Mutation() *EntitySourceMutation {
	return _u.mutation
}

// ClearChunk clears the "chunk" edge to the DocumentChunk entity.
func (_u *EntitySourceUpdate) ClearChunk() *EntitySourceUpdate {
	_u.mutation.ClearChunk()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EntitySourceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntitySourceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EntitySourceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntitySourceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EntitySourceUpdate) check() error {
	if _u.mutation.ChunkCleared() && len(_u.mutation.ChunkIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EntitySource.chunk"`)
	}
	return nil
}

func (_u *EntitySourceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entitysource.Table, entitysource.Columns, sqlgraph.NewFieldSpec(entitysource.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EntityTable(); ok {
		_spec.SetField(entitysource.FieldEntityTable, field.TypeString, value)
	}
	if value, ok := _u.mutation.EntityID(); ok {
		_spec.SetField(entitysource.FieldEntityID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TrustScore(); ok {
		_spec.SetField(entitysource.FieldTrustScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTrustScore(); ok {
		_spec.AddField(entitysource.FieldTrustScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RelevanceScore(); ok {
		_spec.SetField(entitysource.FieldRelevanceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRelevanceScore(); ok {
		_spec.AddField(entitysource.FieldRelevanceScore, field.TypeFloat64, value)
	}
	if _u.mutation.ChunkCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   entitysource.ChunkTable,
			Columns: []string{entitysource.ChunkColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentchunk.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChunkIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   entitysource.ChunkTable,
			Columns: []string{entitysource.ChunkColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentchunk.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entitysource.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EntitySourceUpdateOne is the builder for updating a single EntitySource entity.
type EntitySourceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EntitySourceMutation
}

// SetEntityTable sets the "entity_table" field.
func (_u *EntitySourceUpdateOne) SetEntityTable(v string) *EntitySourceUpdateOne {
	_u.mutation.SetEntityTable(v)
	return _u
}

// SetNillableEntityTable sets the "entity_table" field if the given value is not nil.
func (_u *EntitySourceUpdateOne) SetNillableEntityTable(v *string) *EntitySourceUpdateOne {
	if v != nil {
		_u.SetEntityTable(*v)
	}
	return _u
}

// SetEntityID sets the "entity_id" field.
func (_u *EntitySourceUpdateOne) SetEntityID(v string) *EntitySourceUpdateOne {
	_u.mutation.SetEntityID(v)
	return _u
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (_u *EntitySourceUpdateOne) SetNillableEntityID(v *string) *EntitySourceUpdateOne {
	if v != nil {
		_u.SetEntityID(*v)
	}
	return _u
}

// SetChunkID sets the "chunk_id" field.
func (_u *EntitySourceUpdateOne) SetChunkID(v string) *EntitySourceUpdateOne {
	_u.mutation.SetChunkID(v)
	return _u
}

// SetNillableChunkID sets the "chunk_id" field if the given value is not nil.
func (_u *EntitySourceUpdateOne) SetNillableChunkID(v *string) *EntitySourceUpdateOne {
	if v != nil {
		_u.SetChunkID(*v)
	}
	return _u
}

// SetTrustScore sets the "trust_score" field.
func (_u *EntitySourceUpdateOne) SetTrustScore(v float64) *EntitySourceUpdateOne {
	_u.mutation.ResetTrustScore()
	_u.mutation.SetTrustScore(v)
	return _u
}

// SetNillableTrustScore sets the "trust_score" field if the given value is not nil.
func (_u *EntitySourceUpdateOne) SetNillableTrustScore(v *float64) *EntitySourceUpdateOne {
	if v != nil {
		_u.SetTrustScore(*v)
	}
	return _u
}

// AddTrustScore adds value to the "trust_score" field.
func (_u *EntitySourceUpdateOne) AddTrustScore(v float64) *EntitySourceUpdateOne {
	_u.mutation.AddTrustScore(v)
	return _u
}

// SetRelevanceScore sets the "relevance_score" field.
func (_u *EntitySourceUpdateOne) SetRelevanceScore(v float64) *EntitySourceUpdateOne {
	_u.mutation.ResetRelevanceScore()
	_u.mutation.SetRelevanceScore(v)
	return _u
}

// SetNillableRelevanceScore sets the "relevance_score" field if the given value is not nil.
func (_u *EntitySourceUpdateOne) SetNillableRelevanceScore(v *float64) *EntitySourceUpdateOne {
	if v != nil {
		_u.SetRelevanceScore(*v)
	}
	return _u
}

// AddRelevanceScore adds value to the "relevance_score" field.
func (_u *EntitySourceUpdateOne) AddRelevanceScore(v float64) *EntitySourceUpdateOne {
	_u.mutation.AddRelevanceScore(v)
	return _u
}

// SetChunk sets the "chunk" edge to the DocumentChunk entity.
func (_u *EntitySourceUpdateOne) SetChunk(v *DocumentChunk) *EntitySourceUpdateOne {
	return _u.SetChunkID(v.ID)
}

// Mutation returns the EntitySourceMutation object of the builder.
func (_u *EntitySourceUpdateOne) Mutation() *EntitySourceMutation {
	return _u.mutation
}

// ClearChunk clears the "chunk" edge to the DocumentChunk entity.
func (_u *EntitySourceUpdateOne) ClearChunk() *EntitySourceUpdateOne {
	_u.mutation.ClearChunk()
	return _u
}

// Where appends a list predicates to the EntitySourceUpdate builder.
func (_u *EntitySourceUpdateOne) Where(ps ...predicate.EntitySource) *EntitySourceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EntitySourceUpdateOne) Select(field string, fields ...string) *EntitySourceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EntitySource entity.
func (_u *EntitySourceUpdateOne) Save(ctx context.Context) (*EntitySource, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntitySourceUpdateOne) SaveX(ctx context.Context) *EntitySource {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EntitySourceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntitySourceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EntitySourceUpdateOne) check() error {
	if _u.mutation.ChunkCleared() && len(_u.mutation.ChunkIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EntitySource.chunk"`)
	}
	return nil
}

func (_u *EntitySourceUpdateOne) sqlSave(ctx context.Context) (_node *EntitySource, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(entitysource.Table, entitysource.Columns, sqlgraph.NewFieldSpec(entitysource.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EntitySource.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, entitysource.FieldID)
		for _, f := range fields {
			if !entitysource.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != entitysource.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EntityTable(); ok {
		_spec.SetField(entitysource.FieldEntityTable, field.TypeString, value)
	}
	if value, ok := _u.mutation.EntityID(); ok {
		_spec.SetField(entitysource.FieldEntityID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TrustScore(); ok {
		_spec.SetField(entitysource.FieldTrustScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTrustScore(); ok {
		_spec.AddField(entitysource.FieldTrustScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RelevanceScore(); ok {
		_spec.SetField(entitysource.FieldRelevanceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRelevanceScore(); ok {
		_spec.AddField(entitysource.FieldRelevanceScore, field.TypeFloat64, value)
	}
	if _u.mutation.ChunkCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   entitysource.ChunkTable,
			Columns: []string{entitysource.ChunkColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentchunk.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChunkIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   entitysource.ChunkTable,
			Columns: []string{entitysource.ChunkColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentchunk.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &EntitySource{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entitysource.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
