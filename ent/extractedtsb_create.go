// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autodiag/refinery/ent/extractedtsb"
)

// ExtractedTSBCreate is the builder for creating a ExtractedTSB entity.
type ExtractedTSBCreate struct {
	config
	mutation *ExtractedTSBMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *ExtractedTSBCreate) SetDocumentID(v string) *ExtractedTSBCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetTsbNumber sets the "tsb_number" field.
func (_c *ExtractedTSBCreate) SetTsbNumber(v string) *ExtractedTSBCreate {
	_c.mutation.SetTsbNumber(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *ExtractedTSBCreate) SetTitle(v string) *ExtractedTSBCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *ExtractedTSBCreate) SetNillableTitle(v *string) *ExtractedTSBCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetAffectedModels sets the "affected_models" field.
func (_c *ExtractedTSBCreate) SetAffectedModels(v string) *ExtractedTSBCreate {
	_c.mutation.SetAffectedModels(v)
	return _c
}

// SetNillableAffectedModels sets the "affected_models" field if the given value is not nil.
func (_c *ExtractedTSBCreate) SetNillableAffectedModels(v *string) *ExtractedTSBCreate {
	if v != nil {
		_c.SetAffectedModels(*v)
	}
	return _c
}

// SetRelatedDtcCodes sets the "related_dtc_codes" field.
func (_c *ExtractedTSBCreate) SetRelatedDtcCodes(v []string) *ExtractedTSBCreate {
	_c.mutation.SetRelatedDtcCodes(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *ExtractedTSBCreate) SetSummary(v string) *ExtractedTSBCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *ExtractedTSBCreate) SetNillableSummary(v *string) *ExtractedTSBCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetSourceChunkID sets the "source_chunk_id" field.
func (_c *ExtractedTSBCreate) SetSourceChunkID(v string) *ExtractedTSBCreate {
	_c.mutation.SetSourceChunkID(v)
	return _c
}

// SetTrust sets the "trust" field.
func (_c *ExtractedTSBCreate) SetTrust(v float64) *ExtractedTSBCreate {
	_c.mutation.SetTrust(v)
	return _c
}

// SetNillableTrust sets the "trust" field if the given value is not nil.
func (_c *ExtractedTSBCreate) SetNillableTrust(v *float64) *ExtractedTSBCreate {
	if v != nil {
		_c.SetTrust(*v)
	}
	return _c
}

// SetRelevance sets the "relevance" field.
func (_c *ExtractedTSBCreate) SetRelevance(v float64) *ExtractedTSBCreate {
	_c.mutation.SetRelevance(v)
	return _c
}

// SetNillableRelevance sets the "relevance" field if the given value is not nil.
func (_c *ExtractedTSBCreate) SetNillableRelevance(v *float64) *ExtractedTSBCreate {
	if v != nil {
		_c.SetRelevance(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExtractedTSBCreate) SetCreatedAt(v time.Time) *ExtractedTSBCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExtractedTSBCreate) SetNillableCreatedAt(v *time.Time) *ExtractedTSBCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractedTSBCreate) SetID(v string) *ExtractedTSBCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ExtractedTSBMutation object of the builder.
func (_c *ExtractedTSBCreate) Mutation() *ExtractedTSBMutation {
	return _c.mutation
}

// Save creates the ExtractedTSB in the database.
func (_c *ExtractedTSBCreate) Save(ctx context.Context) (*ExtractedTSB, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractedTSBCreate) SaveX(ctx context.Context) *ExtractedTSB {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractedTSBCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractedTSBCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractedTSBCreate) defaults() {
	if _, ok := _c.mutation.Trust(); !ok {
		v := extractedtsb.DefaultTrust
		_c.mutation.SetTrust(v)
	}
	if _, ok := _c.mutation.Relevance(); !ok {
		v := extractedtsb.DefaultRelevance
		_c.mutation.SetRelevance(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := extractedtsb.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractedTSBCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "ExtractedTSB.document_id"`)}
	}
	if _, ok := _c.mutation.TsbNumber(); !ok {
		return &ValidationError{Name: "tsb_number", err: errors.New(`ent: missing required field "ExtractedTSB.tsb_number"`)}
	}
	if _, ok := _c.mutation.SourceChunkID(); !ok {
		return &ValidationError{Name: "source_chunk_id", err: errors.New(`ent: missing required field "ExtractedTSB.source_chunk_id"`)}
	}
	if _, ok := _c.mutation.Trust(); !ok {
		return &ValidationError{Name: "trust", err: errors.New(`ent: missing required field "ExtractedTSB.trust"`)}
	}
	if _, ok := _c.mutation.Relevance(); !ok {
		return &ValidationError{Name: "relevance", err: errors.New(`ent: missing required field "ExtractedTSB.relevance"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExtractedTSB.created_at"`)}
	}
	return nil
}

func (_c *ExtractedTSBCreate) sqlSave(ctx context.Context) (*ExtractedTSB, error) {
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
			return nil, fmt.Errorf("unexpected ExtractedTSB.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExtractedTSBCreate) createSpec() (*ExtractedTSB, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractedTSB{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extractedtsb.Table, sqlgraph.NewFieldSpec(extractedtsb.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.DocumentID(); ok {
		_spec.SetField(extractedtsb.FieldDocumentID, field.TypeString, value)
		_node.DocumentID = value
	}
	if value, ok := _c.mutation.TsbNumber(); ok {
		_spec.SetField(extractedtsb.FieldTsbNumber, field.TypeString, value)
		_node.TsbNumber = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(extractedtsb.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.AffectedModels(); ok {
		_spec.SetField(extractedtsb.FieldAffectedModels, field.TypeString, value)
		_node.AffectedModels = value
	}
	if value, ok := _c.mutation.RelatedDtcCodes(); ok {
		_spec.SetField(extractedtsb.FieldRelatedDtcCodes, field.TypeJSON, value)
		_node.RelatedDtcCodes = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(extractedtsb.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.SourceChunkID(); ok {
		_spec.SetField(extractedtsb.FieldSourceChunkID, field.TypeString, value)
		_node.SourceChunkID = value
	}
	if value, ok := _c.mutation.Trust(); ok {
		_spec.SetField(extractedtsb.FieldTrust, field.TypeFloat64, value)
		_node.Trust = value
	}
	if value, ok := _c.mutation.Relevance(); ok {
		_spec.SetField(extractedtsb.FieldRelevance, field.TypeFloat64, value)
		_node.Relevance = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(extractedtsb.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ExtractedTSBCreateBulk is the builder for creating many ExtractedTSB entities in bulk.
type ExtractedTSBCreateBulk struct {
	config
	err      error
	builders []*ExtractedTSBCreate
}

// Save creates the ExtractedTSB entities in the database.
func (_c *ExtractedTSBCreateBulk) Save(ctx context.Context) ([]*ExtractedTSB, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractedTSB, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractedTSBMutation)
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
func (_c *ExtractedTSBCreateBulk) SaveX(ctx context.Context) []*ExtractedTSB {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractedTSBCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractedTSBCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
