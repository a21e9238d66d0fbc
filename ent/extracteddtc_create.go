// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autodiag/refinery/ent/extracteddtc"
)

// ExtractedDTCCreate is the builder for creating a ExtractedDTC entity.
type ExtractedDTCCreate struct {
	config
	mutation *ExtractedDTCMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *ExtractedDTCCreate) SetDocumentID(v string) *ExtractedDTCCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetCode sets the "code" field.
func (_c *ExtractedDTCCreate) SetCode(v string) *ExtractedDTCCreate {
	_c.mutation.SetCode(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ExtractedDTCCreate) SetDescription(v string) *ExtractedDTCCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ExtractedDTCCreate) SetNillableDescription(v *string) *ExtractedDTCCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *ExtractedDTCCreate) SetCategory(v string) *ExtractedDTCCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *ExtractedDTCCreate) SetNillableCategory(v *string) *ExtractedDTCCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *ExtractedDTCCreate) SetSeverity(v string) *ExtractedDTCCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_c *ExtractedDTCCreate) SetNillableSeverity(v *string) *ExtractedDTCCreate {
	if v != nil {
		_c.SetSeverity(*v)
	}
	return _c
}

// SetSourceChunkID sets the "source_chunk_id" field.
func (_c *ExtractedDTCCreate) SetSourceChunkID(v string) *ExtractedDTCCreate {
	_c.mutation.SetSourceChunkID(v)
	return _c
}

// SetTrust sets the "trust" field.
func (_c *ExtractedDTCCreate) SetTrust(v float64) *ExtractedDTCCreate {
	_c.mutation.SetTrust(v)
	return _c
}

// SetNillableTrust sets the "trust" field if the given value is not nil.
func (_c *ExtractedDTCCreate) SetNillableTrust(v *float64) *ExtractedDTCCreate {
	if v != nil {
		_c.SetTrust(*v)
	}
	return _c
}

// SetRelevance sets the "relevance" field.
func (_c *ExtractedDTCCreate) SetRelevance(v float64) *ExtractedDTCCreate {
	_c.mutation.SetRelevance(v)
	return _c
}

// SetNillableRelevance sets the "relevance" field if the given value is not nil.
func (_c *ExtractedDTCCreate) SetNillableRelevance(v *float64) *ExtractedDTCCreate {
	if v != nil {
		_c.SetRelevance(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExtractedDTCCreate) SetCreatedAt(v time.Time) *ExtractedDTCCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExtractedDTCCreate) SetNillableCreatedAt(v *time.Time) *ExtractedDTCCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractedDTCCreate) SetID(v string) *ExtractedDTCCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ExtractedDTCMutation object of the builder.
func (_c *ExtractedDTCCreate) Mutation() *ExtractedDTCMutation {
	return _c.mutation
}

// Save creates the ExtractedDTC in the database.
func (_c *ExtractedDTCCreate) Save(ctx context.Context) (*ExtractedDTC, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractedDTCCreate) SaveX(ctx context.Context) *ExtractedDTC {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractedDTCCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractedDTCCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractedDTCCreate) defaults() {
	if _, ok := _c.mutation.Trust(); !ok {
		v := extracteddtc.DefaultTrust
		_c.mutation.SetTrust(v)
	}
	if _, ok := _c.mutation.Relevance(); !ok {
		v := extracteddtc.DefaultRelevance
		_c.mutation.SetRelevance(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := extracteddtc.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractedDTCCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "ExtractedDTC.document_id"`)}
	}
	if _, ok := _c.mutation.Code(); !ok {
		return &ValidationError{Name: "code", err: errors.New(`ent: missing required field "ExtractedDTC.code"`)}
	}
	if _, ok := _c.mutation.SourceChunkID(); !ok {
		return &ValidationError{Name: "source_chunk_id", err: errors.New(`ent: missing required field "ExtractedDTC.source_chunk_id"`)}
	}
	if _, ok := _c.mutation.Trust(); !ok {
		return &ValidationError{Name: "trust", err: errors.New(`ent: missing required field "ExtractedDTC.trust"`)}
	}
	if _, ok := _c.mutation.Relevance(); !ok {
		return &ValidationError{Name: "relevance", err: errors.New(`ent: missing required field "ExtractedDTC.relevance"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExtractedDTC.created_at"`)}
	}
	return nil
}

func (_c *ExtractedDTCCreate) sqlSave(ctx context.Context) (*ExtractedDTC, error) {
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
			return nil, fmt.Errorf("unexpected ExtractedDTC.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExtractedDTCCreate) createSpec() (*ExtractedDTC, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractedDTC{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extracteddtc.Table, sqlgraph.NewFieldSpec(extracteddtc.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.DocumentID(); ok {
		_spec.SetField(extracteddtc.FieldDocumentID, field.TypeString, value)
		_node.DocumentID = value
	}
	if value, ok := _c.mutation.Code(); ok {
		_spec.SetField(extracteddtc.FieldCode, field.TypeString, value)
		_node.Code = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(extracteddtc.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(extracteddtc.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(extracteddtc.FieldSeverity, field.TypeString, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.SourceChunkID(); ok {
		_spec.SetField(extracteddtc.FieldSourceChunkID, field.TypeString, value)
		_node.SourceChunkID = value
	}
	if value, ok := _c.mutation.Trust(); ok {
		_spec.SetField(extracteddtc.FieldTrust, field.TypeFloat64, value)
		_node.Trust = value
	}
	if value, ok := _c.mutation.Relevance(); ok {
		_spec.SetField(extracteddtc.FieldRelevance, field.TypeFloat64, value)
		_node.Relevance = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(extracteddtc.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ExtractedDTCCreateBulk is the builder for creating many ExtractedDTC entities in bulk.
type ExtractedDTCCreateBulk struct {
	config
	err      error
	builders []*ExtractedDTCCreate
}

// Save creates the ExtractedDTC entities in the database.
func (_c *ExtractedDTCCreateBulk) Save(ctx context.Context) ([]*ExtractedDTC, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractedDTC, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractedDTCMutation)
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
func (_c *ExtractedDTCCreateBulk) SaveX(ctx context.Context) []*ExtractedDTC {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractedDTCCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractedDTCCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
