// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autodiag/refinery/ent/chunkevaluation"
	"github.com/autodiag/refinery/ent/documentchunk"
	"github.com/autodiag/refinery/ent/predicate"
)

// ChunkEvaluationUpdate is the builder for updating ChunkEvaluation entities.
type ChunkEvaluationUpdate struct {
	config
	hooks    []Hook
	mutation *ChunkEvaluationMutation
}

// Where appends a list predicates to the ChunkEvaluationUpdate builder.
func (_u *ChunkEvaluationUpdate) Where(ps ...predicate.ChunkEvaluation) *ChunkEvaluationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetChunkID sets the "chunk_id" field.
func (_u *ChunkEvaluationUpdate) SetChunkID(v string) *ChunkEvaluationUpdate {
	_u.mutation.SetChunkID(v)
	return _u
}

// SetNillableChunkID sets the "chunk_id" field if the given value is not nil.
func (_u *ChunkEvaluationUpdate) SetNillableChunkID(v *string) *ChunkEvaluationUpdate {
	if v != nil {
		_u.SetChunkID(*v)
	}
	return _u
}

// SetTrustScore sets the "trust_score" field.
func (_u *ChunkEvaluationUpdate) SetTrustScore(v float64) *ChunkEvaluationUpdate {
	_u.mutation.ResetTrustScore()
	_u.mutation.SetTrustScore(v)
	return _u
}

// SetNillableTrustScore sets the "trust_score" field if the given value is not nil.
func (_u *ChunkEvaluationUpdate) SetNillableTrustScore(v *float64) *ChunkEvaluationUpdate {
	if v != nil {
		_u.SetTrustScore(*v)
	}
	return _u
}

// AddTrustScore adds value to the "trust_score" field.
func (_u *ChunkEvaluationUpdate) AddTrustScore(v float64) *ChunkEvaluationUpdate {
	_u.mutation.AddTrustScore(v)
	return _u
}

// SetRelevanceScore sets the "relevance_score" field.
func (_u *ChunkEvaluationUpdate) SetRelevanceScore(v float64) *ChunkEvaluationUpdate {
	_u.mutation.ResetRelevanceScore()
	_u.mutation.SetRelevanceScore(v)
	return _u
}

// SetNillableRelevanceScore sets the "relevance_score" field if the given value is not nil.
func (_u *ChunkEvaluationUpdate) SetNillableRelevanceScore(v *float64) *ChunkEvaluationUpdate {
	if v != nil {
		_u.SetRelevanceScore(*v)
	}
	return _u
}

// AddRelevanceScore adds value to the "relevance_score" field.
func (_u *ChunkEvaluationUpdate) AddRelevanceScore(v float64) *ChunkEvaluationUpdate {
	_u.mutation.AddRelevanceScore(v)
	return _u
}

// SetAutomotiveDomain sets the "automotive_domain" field.
func (_u *ChunkEvaluationUpdate) SetAutomotiveDomain(v chunkevaluation.AutomotiveDomain) *ChunkEvaluationUpdate {
	_u.mutation.SetAutomotiveDomain(v)
	return _u
}

// SetNillableAutomotiveDomain sets the "automotive_domain" field if the given value is not nil.
func (_u *ChunkEvaluationUpdate) SetNillableAutomotiveDomain(v *chunkevaluation.AutomotiveDomain) *ChunkEvaluationUpdate {
	if v != nil {
		_u.SetAutomotiveDomain(*v)
	}
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *ChunkEvaluationUpdate) SetReasoning(v string) *ChunkEvaluationUpdate {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *ChunkEvaluationUpdate) SetNillableReasoning(v *string) *ChunkEvaluationUpdate {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// ClearReasoning clears the value of the "reasoning" field.
func (_u *ChunkEvaluationUpdate) ClearReasoning() *ChunkEvaluationUpdate {
	_u.mutation.ClearReasoning()
	return _u
}

// SetModelUsed sets the "model_used" field.
func (_u *ChunkEvaluationUpdate) SetModelUsed(v string) *ChunkEvaluationUpdate {
	_u.mutation.SetModelUsed(v)
	return _u
}

// SetNillableModelUsed sets the "model_used" field if the given value is not nil.
func (_u *ChunkEvaluationUpdate) SetNillableModelUsed(v *string) *ChunkEvaluationUpdate {
	if v != nil {
		_u.SetModelUsed(*v)
	}
	return _u
}

// ClearModelUsed clears the value of the "model_used" field.
func (_u *ChunkEvaluationUpdate) ClearModelUsed() *ChunkEvaluationUpdate {
	_u.mutation.ClearModelUsed()
	return _u
}

// SetEvaluatedAt sets the "evaluated_at" field.
func (_u *ChunkEvaluationUpdate) SetEvaluatedAt(v time.Time) *ChunkEvaluationUpdate {
	_u.mutation.SetEvaluatedAt(v)
	return _u
}

// SetChunk sets the "chunk" edge to the DocumentChunk entity.
func (_u *ChunkEvaluationUpdate) SetChunk(v *DocumentChunk) *ChunkEvaluationUpdate {
	return _u.SetChunkID(v.ID)
}

// Mutation returns the ChunkEvaluationMutation object of the builder.
func (_u *ChunkEvaluationUpdate) Mutation() *ChunkEvaluationMutation {
	return _u.mutation
}

// ClearChunk clears the "chunk" edge to the DocumentChunk entity.
func (_u *ChunkEvaluationUpdate) ClearChunk() *ChunkEvaluationUpdate {
	_u.mutation.ClearChunk()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChunkEvaluationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChunkEvaluationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChunkEvaluationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChunkEvaluationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChunkEvaluationUpdate) defaults() {
	if _, ok := _u.mutation.EvaluatedAt(); !ok {
		v := chunkevaluation.UpdateDefaultEvaluatedAt()
		_u.mutation.SetEvaluatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChunkEvaluationUpdate) check() error {
	if v, ok := _u.mutation.TrustScore(); ok {
		if err := chunkevaluation.TrustScoreValidator(v); err != nil {
			return &ValidationError{Name: "trust_score", err: fmt.Errorf(`ent: validator failed for field "ChunkEvaluation.trust_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RelevanceScore(); ok {
		if err := chunkevaluation.RelevanceScoreValidator(v); err != nil {
			return &ValidationError{Name: "relevance_score", err: fmt.Errorf(`ent: validator failed for field "ChunkEvaluation.relevance_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AutomotiveDomain(); ok {
		if err := chunkevaluation.AutomotiveDomainValidator(v); err != nil {
			return &ValidationError{Name: "automotive_domain", err: fmt.Errorf(`ent: validator failed for field "ChunkEvaluation.automotive_domain": %w`, err)}
		}
	}
	if _u.mutation.ChunkCleared() && len(_u.mutation.ChunkIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ChunkEvaluation.chunk"`)
	}
	return nil
}

func (_u *ChunkEvaluationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chunkevaluation.Table, chunkevaluation.Columns, sqlgraph.NewFieldSpec(chunkevaluation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TrustScore(); ok {
		_spec.SetField(chunkevaluation.FieldTrustScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTrustScore(); ok {
		_spec.AddField(chunkevaluation.FieldTrustScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RelevanceScore(); ok {
		_spec.SetField(chunkevaluation.FieldRelevanceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRelevanceScore(); ok {
		_spec.AddField(chunkevaluation.FieldRelevanceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AutomotiveDomain(); ok {
		_spec.SetField(chunkevaluation.FieldAutomotiveDomain, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(chunkevaluation.FieldReasoning, field.TypeString, value)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(chunkevaluation.FieldReasoning, field.TypeString)
	}
	if value, ok := _u.mutation.ModelUsed(); ok {
		_spec.SetField(chunkevaluation.FieldModelUsed, field.TypeString, value)
	}
	if _u.mutation.ModelUsedCleared() {
		_spec.ClearField(chunkevaluation.FieldModelUsed, field.TypeString)
	}
	if value, ok := _u.mutation.EvaluatedAt(); ok {
		_spec.SetField(chunkevaluation.FieldEvaluatedAt, field.TypeTime, value)
	}
	if _u.mutation.ChunkCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChunkIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chunkevaluation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChunkEvaluationUpdateOne is the builder for updating a single ChunkEvaluation entity.
type ChunkEvaluationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChunkEvaluationMutation
}

// SetChunkID sets the "chunk_id" field.
func (_u *ChunkEvaluationUpdateOne) SetChunkID(v string) *ChunkEvaluationUpdateOne {
	_u.mutation.SetChunkID(v)
	return _u
}

// SetNillableChunkID sets the "chunk_id" field if the given value is not nil.
func (_u *ChunkEvaluationUpdateOne) SetNillableChunkID(v *string) *ChunkEvaluationUpdateOne {
	if v != nil {
		_u.SetChunkID(*v)
	}
	return _u
}

// SetTrustScore sets the "trust_score" field.
func (_u *ChunkEvaluationUpdateOne) SetTrustScore(v float64) *ChunkEvaluationUpdateOne {
	_u.mutation.ResetTrustScore()
	_u.mutation.SetTrustScore(v)
	return _u
}

// SetNillableTrustScore sets the "trust_score" field if the given value is not nil.
func (_u *ChunkEvaluationUpdateOne) SetNillableTrustScore(v *float64) *ChunkEvaluationUpdateOne {
	if v != nil {
		_u.SetTrustScore(*v)
	}
	return _u
}

// AddTrustScore adds value to the "trust_score" field.
func (_u *ChunkEvaluationUpdateOne) AddTrustScore(v float64) *ChunkEvaluationUpdateOne {
	_u.mutation.AddTrustScore(v)
	return _u
}

// SetRelevanceScore sets the "relevance_score" field.
func (_u *ChunkEvaluationUpdateOne) SetRelevanceScore(v float64) *ChunkEvaluationUpdateOne {
	_u.mutation.ResetRelevanceScore()
	_u.mutation.SetRelevanceScore(v)
	return _u
}

// SetNillableRelevanceScore sets the "relevance_score" field if the given value is not nil.
func (_u *ChunkEvaluationUpdateOne) SetNillableRelevanceScore(v *float64) *ChunkEvaluationUpdateOne {
	if v != nil {
		_u.SetRelevanceScore(*v)
	}
	return _u
}

// AddRelevanceScore adds value to the "relevance_score" field.
func (_u *ChunkEvaluationUpdateOne) AddRelevanceScore(v float64) *ChunkEvaluationUpdateOne {
	_u.mutation.AddRelevanceScore(v)
	return _u
}

// SetAutomotiveDomain sets the "automotive_domain" field.
func (_u *ChunkEvaluationUpdateOne) SetAutomotiveDomain(v chunkevaluation.AutomotiveDomain) *ChunkEvaluationUpdateOne {
	_u.mutation.SetAutomotiveDomain(v)
	return _u
}

// SetNillableAutomotiveDomain sets the "automotive_domain" field if the given value is not nil.
func (_u *ChunkEvaluationUpdateOne) SetNillableAutomotiveDomain(v *chunkevaluation.AutomotiveDomain) *ChunkEvaluationUpdateOne {
	if v != nil {
		_u.SetAutomotiveDomain(*v)
	}
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *ChunkEvaluationUpdateOne) SetReasoning(v string) *ChunkEvaluationUpdateOne {
	_u.mutation.SetReasoning(v)
	return _u
}

// SetNillableReasoning sets the "reasoning" field if the given value is not nil.
func (_u *ChunkEvaluationUpdateOne) SetNillableReasoning(v *string) *ChunkEvaluationUpdateOne {
	if v != nil {
		_u.SetReasoning(*v)
	}
	return _u
}

// ClearReasoning clears the value of the "reasoning" field.
func (_u *ChunkEvaluationUpdateOne) ClearReasoning() *ChunkEvaluationUpdateOne {
	_u.mutation.ClearReasoning()
	return _u
}

// SetModelUsed sets the "model_used" field.
func (_u *ChunkEvaluationUpdateOne) SetModelUsed(v string) *ChunkEvaluationUpdateOne {
	_u.mutation.SetModelUsed(v)
	return _u
}

// SetNillableModelUsed sets the "model_used" field if the given value is not nil.
func (_u *ChunkEvaluationUpdateOne) SetNillableModelUsed(v *string) *ChunkEvaluationUpdateOne {
	if v != nil {
		_u.SetModelUsed(*v)
	}
	return _u
}

// ClearModelUsed clears the value of the "model_used" field.
func (_u *ChunkEvaluationUpdateOne) ClearModelUsed() *ChunkEvaluationUpdateOne {
	_u.mutation.ClearModelUsed()
	return _u
}

// SetEvaluatedAt sets the "evaluated_at" field.
func (_u *ChunkEvaluationUpdateOne) SetEvaluatedAt(v time.Time) *ChunkEvaluationUpdateOne {
	_u.mutation.SetEvaluatedAt(v)
	return _u
}

// SetChunk sets the "chunk" edge to the DocumentChunk entity.
func (_u *ChunkEvaluationUpdateOne) SetChunk(v *DocumentChunk) *ChunkEvaluationUpdateOne {
	return _u.SetChunkID(v.ID)
}

// Mutation returns the ChunkEvaluationMutation object of the builder.
func (_u *ChunkEvaluationUpdateOne) Mutation() *ChunkEvaluationMutation {
	return _u.mutation
}

// ClearChunk clears the "chunk" edge to the DocumentChunk entity.
func (_u *ChunkEvaluationUpdateOne) ClearChunk() *ChunkEvaluationUpdateOne {
	_u.mutation.ClearChunk()
	return _u
}

// Where appends a list predicates to the ChunkEvaluationUpdate builder.
func (_u *ChunkEvaluationUpdateOne) Where(ps ...predicate.ChunkEvaluation) *ChunkEvaluationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChunkEvaluationUpdateOne) Select(field string, fields ...string) *ChunkEvaluationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChunkEvaluation entity.
func (_u *ChunkEvaluationUpdateOne) Save(ctx context.Context) (*ChunkEvaluation, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChunkEvaluationUpdateOne) SaveX(ctx context.Context) *ChunkEvaluation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChunkEvaluationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChunkEvaluationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChunkEvaluationUpdateOne) defaults() {
	if _, ok := _u.mutation.EvaluatedAt(); !ok {
		v := chunkevaluation.UpdateDefaultEvaluatedAt()
		_u.mutation.SetEvaluatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChunkEvaluationUpdateOne) check() error {
	if v, ok := _u.mutation.TrustScore(); ok {
		if err := chunkevaluation.TrustScoreValidator(v); err != nil {
			return &ValidationError{Name: "trust_score", err: fmt.Errorf(`ent: validator failed for field "ChunkEvaluation.trust_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RelevanceScore(); ok {
		if err := chunkevaluation.RelevanceScoreValidator(v); err != nil {
			return &ValidationError{Name: "relevance_score", err: fmt.Errorf(`ent: validator failed for field "ChunkEvaluation.relevance_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AutomotiveDomain(); ok {
		if err := chunkevaluation.AutomotiveDomainValidator(v); err != nil {
			return &ValidationError{Name: "automotive_domain", err: fmt.Errorf(`ent: validator failed for field "ChunkEvaluation.automotive_domain": %w`, err)}
		}
	}
	if _u.mutation.ChunkCleared() && len(_u.mutation.ChunkIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ChunkEvaluation.chunk"`)
	}
	return nil
}

func (_u *ChunkEvaluationUpdateOne) sqlSave(ctx context.Context) (_node *ChunkEvaluation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chunkevaluation.Table, chunkevaluation.Columns, sqlgraph.NewFieldSpec(chunkevaluation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChunkEvaluation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chunkevaluation.FieldID)
		for _, f := range fields {
			if !chunkevaluation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != chunkevaluation.FieldID {
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
	if value, ok := _u.mutation.TrustScore(); ok {
		_spec.SetField(chunkevaluation.FieldTrustScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTrustScore(); ok {
		_spec.AddField(chunkevaluation.FieldTrustScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RelevanceScore(); ok {
		_spec.SetField(chunkevaluation.FieldRelevanceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRelevanceScore(); ok {
		_spec.AddField(chunkevaluation.FieldRelevanceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AutomotiveDomain(); ok {
		_spec.SetField(chunkevaluation.FieldAutomotiveDomain, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(chunkevaluation.FieldReasoning, field.TypeString, value)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(chunkevaluation.FieldReasoning, field.TypeString)
	}
	if value, ok := _u.mutation.ModelUsed(); ok {
		_spec.SetField(chunkevaluation.FieldModelUsed, field.TypeString, value)
	}
	if _u.mutation.ModelUsedCleared() {
		_spec.ClearField(chunkevaluation.FieldModelUsed, field.TypeString)
	}
	if value, ok := _u.mutation.EvaluatedAt(); ok {
		_spec.SetField(chunkevaluation.FieldEvaluatedAt, field.TypeTime, value)
	}
	if _u.mutation.ChunkCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChunkIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ChunkEvaluation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chunkevaluation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
