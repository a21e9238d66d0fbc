// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autodiag/refinery/ent/chunkevaluation"
	"github.com/autodiag/refinery/ent/documentchunk"
)

// ChunkEvaluationCreate is the builder for creating a ChunkEvaluation entity.
type ChunkEvaluationCreate struct {
	config
	mutation *ChunkEvaluationMutation
	hooks    []Hook
}

// SetChunkID sets the "chunk_id" field.
func (_c *ChunkEvaluationCreate) SetChunkID(v string) *ChunkEvaluationCreate {
	_c.mutation.SetChunkID(v)
	return _c
}

// SetTrustScore sets the "trust_score" field.
func (_c *ChunkEvaluationCreate) SetTrustScore(v float64) *ChunkEvaluationCreate {
	_c.mutation.SetTrustScore(v)
	return _c
}

// SetRelevanceScore sets the "relevance_score" field.
func (_c *ChunkEvaluationCreate) SetRelevanceScore(v float64) *ChunkEvaluationCreate {
	_c.mutation.SetRelevanceScore(v)
	return _c
}

// SetAutomotiveDomain sets the "automotive_domain" field.
func (_c *ChunkEvaluationCreate) SetAutomotiveDomain(v chunkevaluation.AutomotiveDomain) *ChunkEvaluationCreate {
	_c.mutation.SetAutomotiveDomain(v)
	return _c
}

// SetNillableAutomotiveDomain sets the "automotive_domain" field if the given value is not nil.
func (_c *ChunkEvaluationCreate) SetNillableAutomotiveDomain(v *chunkevaluation.AutomotiveDomain) *ChunkEvaluationCreate {
	if v != nil {
		_c.SetAutomotiveDomain(*v)
	}
	return _c
}

// SetReasoning sets the "reasoning" field.
func (_c *ChunkEvaluationCreate) SetReasoning(v string) *ChunkEvaluationCreate {
	_c.mutation.SetReasoning(v)
	return _c
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_c *ChunkEvaluationCreate) SetNillableReasoning(v *string) *ChunkEvaluationCreate {
	if v != nil {
		_c.SetReasoning(*v)
	}
	return _c
}

// SetModelUsed sets the "model_used" field.
func (_c *ChunkEvaluationCreate) SetModelUsed(v string) *ChunkEvaluationCreate {
	_c.mutation.SetModelUsed(v)
	return _c
}

// SetNillableModelUsed sets the "model_used" field if the given value is not nil.
func (_c *ChunkEvaluationCreate) SetNillableModelUsed(v *string) *ChunkEvaluationCreate {
	if v != nil {
		_c.SetModelUsed(*v)
	}
	return _c
}

// SetEvaluatedAt sets the "evaluated_at" field.
func (_c *ChunkEvaluationCreate) SetEvaluatedAt(v time.Time) *ChunkEvaluationCreate {
	_c.mutation.SetEvaluatedAt(v)
	return _c
}

// SetNillableEvaluatedAt sets the "evaluated_at" field if the given value is not nil.
func (_c *ChunkEvaluationCreate) SetNillableEvaluatedAt(v *time.Time) *ChunkEvaluationCreate {
	if v != nil {
		_c.SetEvaluatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ChunkEvaluationCreate) SetID(v string) *ChunkEvaluationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetChunk sets the "chunk" edge to the DocumentChunk entity.
func (_c *ChunkEvaluationCreate) SetChunk(v *DocumentChunk) *ChunkEvaluationCreate {
	return _c.SetChunkID(v.ID)
}

// Mutation returns the ChunkEvaluationMutation object of the builder.
func (_c *ChunkEvaluationCreate) Mutation() *ChunkEvaluationMutation {
	return _c.mutation
}

// Save creates the ChunkEvaluation in the database.
func (_c *ChunkEvaluationCreate) Save(ctx context.Context) (*ChunkEvaluation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChunkEvaluationCreate) SaveX(ctx context.Context) *ChunkEvaluation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChunkEvaluationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChunkEvaluationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChunkEvaluationCreate) defaults() {
	if _, ok := _c.mutation.AutomotiveDomain(); !ok {
		v := chunkevaluation.DefaultAutomotiveDomain
		_c.mutation.SetAutomotiveDomain(v)
	}
	if _, ok := _c.mutation.EvaluatedAt(); !ok {
		v := chunkevaluation.DefaultEvaluatedAt()
		_c.mutation.SetEvaluatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChunkEvaluationCreate) check() error {
	if _, ok := _c.mutation.ChunkID(); !ok {
		return &ValidationError{Name: "chunk_id", err: errors.New(`ent: missing required field "ChunkEvaluation.chunk_id"`)}
	}
	if _, ok := _c.mutation.TrustScore(); !ok {
		return &ValidationError{Name: "trust_score", err: errors.New(`ent: missing required field "ChunkEvaluation.trust_score"`)}
	}
	if v, ok := _c.mutation.TrustScore(); ok {
		if err := chunkevaluation.TrustScoreValidator(v); err != nil {
			return &ValidationError{Name: "trust_score", err: fmt.Errorf(`ent: validator failed for field "ChunkEvaluation.trust_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RelevanceScore(); !ok {
		return &ValidationError{Name: "relevance_score", err: errors.New(`ent: missing required field "ChunkEvaluation.relevance_score"`)}
	}
	if v, ok := _c.mutation.RelevanceScore(); ok {
		if err := chunkevaluation.RelevanceScoreValidator(v); err != nil {
			return &ValidationError{Name: "relevance_score", err: fmt.Errorf(`ent: validator failed for field "ChunkEvaluation.relevance_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AutomotiveDomain(); !ok {
		return &ValidationError{Name: "automotive_domain", err: errors.New(`ent: missing required field "ChunkEvaluation.automotive_domain"`)}
	}
	if v, ok := _c.mutation.AutomotiveDomain(); ok {
		if err := chunkevaluation.AutomotiveDomainValidator(v); err != nil {
			return &ValidationError{Name: "automotive_domain", err: fmt.Errorf(`ent: validator failed for field "ChunkEvaluation.automotive_domain": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EvaluatedAt(); !ok {
		return &ValidationError{Name: "evaluated_at", err: errors.New(`ent: missing required field "ChunkEvaluation.evaluated_at"`)}
	}
	if len(_c.mutation.ChunkIDs()) == 0 {
		return &ValidationError{Name: "chunk", err: errors.New(`ent: missing required edge "ChunkEvaluation.chunk"`)}
	}
	return nil
}

func (_c *ChunkEvaluationCreate) sqlSave(ctx context.Context) (*ChunkEvaluation, error) {
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
			return nil, fmt.Errorf("unexpected ChunkEvaluation.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ChunkEvaluationCreate) createSpec() (*ChunkEvaluation, *sqlgraph.CreateSpec) {
	var (
		_node = &ChunkEvaluation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(chunkevaluation.Table, sqlgraph.NewFieldSpec(chunkevaluation.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TrustScore(); ok {
		_spec.SetField(chunkevaluation.FieldTrustScore, field.TypeFloat64, value)
		_node.TrustScore = value
	}
	if value, ok := _c.mutation.RelevanceScore(); ok {
		_spec.SetField(chunkevaluation.FieldRelevanceScore, field.TypeFloat64, value)
		_node.RelevanceScore = value
	}
	if value, ok := _c.mutation.AutomotiveDomain(); ok {
		_spec.SetField(chunkevaluation.FieldAutomotiveDomain, field.TypeEnum, value)
		_node.AutomotiveDomain = value
	}
	if value, ok := _c.mutation.Reasoning(); ok {
		_spec.SetField(chunkevaluation.FieldReasoning, field.TypeString, value)
		_node.Reasoning = value
	}
	if value, ok := _c.mutation.ModelUsed(); ok {
		_spec.SetField(chunkevaluation.FieldModelUsed, field.TypeString, value)
		_node.ModelUsed = value
	}
	if value, ok := _c.mutation.EvaluatedAt(); ok {
		_spec.SetField(chunkevaluation.FieldEvaluatedAt, field.TypeTime, value)
		_node.EvaluatedAt = value
	}
	if nodes := _c.mutation.ChunkIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   chunkevaluation.ChunkTable,
			Columns: []string{chunkevaluation.ChunkColumn},
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

// ChunkEvaluationCreateBulk is the builder for creating many ChunkEvaluation entities in bulk.
type ChunkEvaluationCreateBulk struct {
	config
	err      error
	builders []*ChunkEvaluationCreate
}

// Save creates the ChunkEvaluation entities in the database.
func (_c *ChunkEvaluationCreateBulk) Save(ctx context.Context) ([]*ChunkEvaluation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChunkEvaluation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChunkEvaluationMutation)
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
func (_c *ChunkEvaluationCreateBulk) SaveX(ctx context.Context) []*ChunkEvaluation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChunkEvaluationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChunkEvaluationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
