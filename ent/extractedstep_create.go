// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autodiag/refinery/ent/extractedstep"
)

// ExtractedStepCreate is the builder for creating a ExtractedStep entity.
type ExtractedStepCreate struct {
	config
	mutation *ExtractedStepMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *ExtractedStepCreate) SetDocumentID(v string) *ExtractedStepCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetDtcCode sets the "dtc_code" field.
func (_c *ExtractedStepCreate) SetDtcCode(v string) *ExtractedStepCreate {
	_c.mutation.SetDtcCode(v)
	return _c
}

// SetStepOrder sets the "step_order" field.
func (_c *ExtractedStepCreate) SetStepOrder(v int) *ExtractedStepCreate {
	_c.mutation.SetStepOrder(v)
	return _c
}

// SetNillableStepOrder sets the "step_order" field if the given value is not nil.
func (_c *ExtractedStepCreate) SetNillableStepOrder(v *int) *ExtractedStepCreate {
	if v != nil {
		_c.SetStepOrder(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *ExtractedStepCreate) SetDescription(v string) *ExtractedStepCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetToolsRequired sets the "tools_required" field.
func (_c *ExtractedStepCreate) SetToolsRequired(v string) *ExtractedStepCreate {
	_c.mutation.SetToolsRequired(v)
	return _c
}

// SetNillableToolsRequired sets the "tools_required" field if the given value is not nil.
func (_c *ExtractedStepCreate) SetNillableToolsRequired(v *string) *ExtractedStepCreate {
	if v != nil {
		_c.SetToolsRequired(*v)
	}
	return _c
}

// SetExpectedValues sets the "expected_values" field.
func (_c *ExtractedStepCreate) SetExpectedValues(v string) *ExtractedStepCreate {
	_c.mutation.SetExpectedValues(v)
	return _c
}

// SetNillableExpectedValues sets the "expected_values" field if the given value is not nil.
func (_c *ExtractedStepCreate) SetNillableExpectedValues(v *string) *ExtractedStepCreate {
	if v != nil {
		_c.SetExpectedValues(*v)
	}
	return _c
}

// SetSourceChunkID sets the "source_chunk_id" field.
func (_c *ExtractedStepCreate) SetSourceChunkID(v string) *ExtractedStepCreate {
	_c.mutation.SetSourceChunkID(v)
	return _c
}

// SetTrust sets the "trust" field.
func (_c *ExtractedStepCreate) SetTrust(v float64) *ExtractedStepCreate {
	_c.mutation.SetTrust(v)
	return _c
}

// SetNillableTrust sets the "trust" field if the given value is not nil.
func (_c *ExtractedStepCreate) SetNillableTrust(v *float64) *ExtractedStepCreate {
	if v != nil {
		_c.SetTrust(*v)
	}
	return _c
}

// SetRelevance sets the "relevance" field.
func (_c *ExtractedStepCreate) SetRelevance(v float64) *ExtractedStepCreate {
	_c.mutation.SetRelevance(v)
	return _c
}

// SetNillableRelevance sets the "relevance" field if the given value is not nil.
func (_c *ExtractedStepCreate) SetNillableRelevance(v *float64) *ExtractedStepCreate {
	if v != nil {
		_c.SetRelevance(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExtractedStepCreate) SetCreatedAt(v time.Time) *ExtractedStepCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExtractedStepCreate) SetNillableCreatedAt(v *time.Time) *ExtractedStepCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractedStepCreate) SetID(v string) *ExtractedStepCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ExtractedStepMutation object of the builder.
func (_c *ExtractedStepCreate) Mutation() *ExtractedStepMutation {
	return _c.mutation
}

// Save creates the ExtractedStep in the database.
func (_c *ExtractedStepCreate) Save(ctx context.Context) (*ExtractedStep, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractedStepCreate) SaveX(ctx context.Context) *ExtractedStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractedStepCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractedStepCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractedStepCreate) defaults() {
	if _, ok := _c.mutation.StepOrder(); !ok {
		v := extractedstep.DefaultStepOrder
		_c.mutation.SetStepOrder(v)
	}
	if _, ok := _c.mutation.Trust(); !ok {
		v := extractedstep.DefaultTrust
		_c.mutation.SetTrust(v)
	}
	if _, ok := _c.mutation.Relevance(); !ok {
		v := extractedstep.DefaultRelevance
		_c.mutation.SetRelevance(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := extractedstep.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractedStepCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "ExtractedStep.document_id"`)}
	}
	if _, ok := _c.mutation.DtcCode(); !ok {
		return &ValidationError{Name: "dtc_code", err: errors.New(`ent: missing required field "ExtractedStep.dtc_code"`)}
	}
	if _, ok := _c.mutation.StepOrder(); !ok {
		return &ValidationError{Name: "step_order", err: errors.New(`ent: missing required field "ExtractedStep.step_order"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "ExtractedStep.description"`)}
	}
	if _, ok := _c.mutation.SourceChunkID(); !ok {
		return &ValidationError{Name: "source_chunk_id", err: errors.New(`ent: missing required field "ExtractedStep.source_chunk_id"`)}
	}
	if _, ok := _c.mutation.Trust(); !ok {
		return &ValidationError{Name: "trust", err: errors.New(`ent: missing required field "ExtractedStep.trust"`)}
	}
	if _, ok := _c.mutation.Relevance(); !ok {
		return &ValidationError{Name: "relevance", err: errors.New(`ent: missing required field "ExtractedStep.relevance"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExtractedStep.created_at"`)}
	}
	return nil
}

func (_c *ExtractedStepCreate) sqlSave(ctx context.Context) (*ExtractedStep, error) {
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
			return nil, fmt.Errorf("unexpected ExtractedStep.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExtractedStepCreate) createSpec() (*ExtractedStep, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractedStep{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extractedstep.Table, sqlgraph.NewFieldSpec(extractedstep.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.DocumentID(); ok {
		_spec.SetField(extractedstep.FieldDocumentID, field.TypeString, value)
		_node.DocumentID = value
	}
	if value, ok := _c.mutation.DtcCode(); ok {
		_spec.SetField(extractedstep.FieldDtcCode, field.TypeString, value)
		_node.DtcCode = value
	}
	if value, ok := _c.mutation.StepOrder(); ok {
		_spec.SetField(extractedstep.FieldStepOrder, field.TypeInt, value)
		_node.StepOrder = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(extractedstep.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.ToolsRequired(); ok {
		_spec.SetField(extractedstep.FieldToolsRequired, field.TypeString, value)
		_node.ToolsRequired = value
	}
	if value, ok := _c.mutation.ExpectedValues(); ok {
		_spec.SetField(extractedstep.FieldExpectedValues, field.TypeString, value)
		_node.ExpectedValues = value
	}
	if value, ok := _c.mutation.SourceChunkID(); ok {
		_spec.SetField(extractedstep.FieldSourceChunkID, field.TypeString, value)
		_node.SourceChunkID = value
	}
	if value, ok := _c.mutation.Trust(); ok {
		_spec.SetField(extractedstep.FieldTrust, field.TypeFloat64, value)
		_node.Trust = value
	}
	if value, ok := _c.mutation.Relevance(); ok {
		_spec.SetField(extractedstep.FieldRelevance, field.TypeFloat64, value)
		_node.Relevance = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(extractedstep.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ExtractedStepCreateBulk is the builder for creating many ExtractedStep entities in bulk.
type ExtractedStepCreateBulk struct {
	config
	err      error
	builders []*ExtractedStepCreate
}

// Save creates the ExtractedStep entities in the database.
func (_c *ExtractedStepCreateBulk) Save(ctx context.Context) ([]*ExtractedStep, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractedStep, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractedStepMutation)
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
func (_c *ExtractedStepCreateBulk) SaveX(ctx context.Context) []*ExtractedStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractedStepCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractedStepCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
