// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autodiag/refinery/ent/documentchunk"
	"github.com/autodiag/refinery/ent/entitysource"
)

// EntitySourceCreate is the builder for creating a EntitySource entity.
type EntitySourceCreate struct {
	config
	mutation *EntitySourceMutation
	hooks    []Hook
}

// SetEntityTable sets the "entity_table" field.
func (_c *EntitySourceCreate) SetEntityTable(v string) *EntitySourceCreate {
	_c.mutation.SetEntityTable(v)
	return _c
}

// SetEntityID sets the "entity_id" field.
func (_c *EntitySourceCreate) SetEntityID(v string) *EntitySourceCreate {
	_c.mutation.SetEntityID(v)
	return _c
}

// SetChunkID sets the "chunk_id" field.
func (_c *EntitySourceCreate) SetChunkID(v string) *EntitySourceCreate {
	_c.mutation.SetChunkID(v)
	return _c
}

// SetTrustScore sets the "trust_score" field.
func (_c *EntitySourceCreate) SetTrustScore(v float64) *EntitySourceCreate {
	_c.mutation.SetTrustScore(v)
	return _c
}

// SetNillableTrustScore sets the "trust_score" field if the given value is not nil.
func (_c *EntitySourceCreate) SetNillableTrustScore(v *float64) *EntitySourceCreate {
	if v != nil {
		_c.SetTrustScore(*v)
	}
	return _c
}

// SetRelevanceScore sets the "relevance_score" field.
func (_c *EntitySourceCreate) SetRelevanceScore(v float64) *EntitySourceCreate {
	_c.mutation.SetRelevanceScore(v)
	return _c
}

// SetNillableRelevanceScore sets the "relevance_score" field if the given value is not nil.
func (_c *EntitySourceCreate) SetNillableRelevanceScore(v *float64) *EntitySourceCreate {
	if v != nil {
		_c.SetRelevanceScore(*v)
	}
	return _c
}

// SetExtractedAt sets the "extracted_at" field.
func (_c *EntitySourceCreate) SetExtractedAt(v time.Time) *EntitySourceCreate {
	_c.mutation.SetExtractedAt(v)
	return _c
}

// SetNillableExtractedAt sets the "extracted_at" field if the given value is not nil.
func (_c *EntitySourceCreate) SetNillableExtractedAt(v *time.Time) *EntitySourceCreate {
	if v != nil {
		_c.SetExtractedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EntitySourceCreate) SetID(v string) *EntitySourceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetChunk sets the "chunk" edge to the DocumentChunk entity.
func (_c *EntitySourceCreate) SetChunk(v *DocumentChunk) *EntitySourceCreate {
	return _c.SetChunkID(v.ID)
}

// Mutation returns the EntitySourceMutation object of the builder.
func (_c *EntitySourceCreate) Mutation() *EntitySourceMutation {
	return _c.mutation
}

// Save creates the EntitySource in the database.
func (_c *EntitySourceCreate) Save(ctx context.Context) (*EntitySource, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EntitySourceCreate) SaveX(ctx context.Context) *EntitySource {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntitySourceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntitySourceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EntitySourceCreate) defaults() {
	if _, ok := _c.mutation.TrustScore(); !ok {
		v := entitysource.DefaultTrustScore
		_c.mutation.SetTrustScore(v)
	}
	if _, ok := _c.mutation.RelevanceScore(); !ok {
		v := entitysource.DefaultRelevanceScore
		_c.mutation.SetRelevanceScore(v)
	}
	if _, ok := _c.mutation.ExtractedAt(); !ok {
		v := entitysource.DefaultExtractedAt()
		_c.mutation.SetExtractedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EntitySourceCreate) check() error {
	if _, ok := _c.mutation.EntityTable(); !ok {
		return &ValidationError{Name: "entity_table", err: errors.New(`ent: missing required field "EntitySource.entity_table"`)}
	}
	if _, ok := _c.mutation.EntityID(); !ok {
		return &ValidationError{Name: "entity_id", err: errors.New(`ent: missing required field "EntitySource.entity_id"`)}
	}
	if _, ok := _c.mutation.ChunkID(); !ok {
		return &ValidationError{Name: "chunk_id", err: errors.New(`ent: missing required field "EntitySource.chunk_id"`)}
	}
	if _, ok := _c.mutation.TrustScore(); !ok {
		return &ValidationError{Name: "trust_score", err: errors.New(`ent: missing required field "EntitySource.trust_score"`)}
	}
	if _, ok := _c.mutation.RelevanceScore(); !ok {
		return &ValidationError{Name: "relevance_score", err: errors.New(`ent: missing required field "EntitySource.relevance_score"`)}
	}
	if _, ok := _c.mutation.ExtractedAt(); !ok {
		return &ValidationError{Name: "extracted_at", err: errors.New(`ent: missing required field "EntitySource.extracted_at"`)}
	}
	if len(_c.mutation.ChunkIDs()) == 0 {
		return &ValidationError{Name: "chunk", err: errors.New(`ent: missing required edge "EntitySource.chunk"`)}
	}
	return nil
}

func (_c *EntitySourceCreate) sqlSave(ctx context.Context) (*EntitySource, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected EntitySource.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EntitySourceCreate) createSpec() (*EntitySource, *sqlgraph.CreateSpec) {
	var (
		_node = &EntitySource{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(entitysource.Table, sqlgraph.NewFieldSpec(entitysource.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.EntityTable(); ok {
		_spec.SetField(entitysource.FieldEntityTable, field.TypeString, value)
		_node.EntityTable = value
	}
	if value, ok := _c.mutation.EntityID(); ok {
		_spec.SetField(entitysource.FieldEntityID, field.TypeString, value)
		_node.EntityID = value
	}
	if value, ok := _c.mutation.TrustScore(); ok {
		_spec.SetField(entitysource.FieldTrustScore, field.TypeFloat64, value)
		_node.TrustScore = value
	}
	if value, ok := _c.mutation.RelevanceScore(); ok {
		_spec.SetField(entitysource.FieldRelevanceScore, field.TypeFloat64, value)
		_node.RelevanceScore = value
	}
	if value, ok := _c.mutation.ExtractedAt(); ok {
		_spec.SetField(entitysource.FieldExtractedAt, field.TypeTime, value)
		_node.ExtractedAt = value
	}
	if nodes := _c.mutation.ChunkIDs(); len(nodes) > 0 {
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
		_node.ChunkID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// EntitySourceCreateBulk is the builder for creating many EntitySource entities in bulk.
type EntitySourceCreateBulk struct {
	config
	err      error
	builders []*EntitySourceCreate
}

// Save creates the EntitySource entities in the database.
func (_c *EntitySourceCreateBulk) Save(ctx context.Context) ([]*EntitySource, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EntitySource, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EntitySourceMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *EntitySourceCreateBulk) SaveX(ctx context.Context) []*EntitySource {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntitySourceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntitySourceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
