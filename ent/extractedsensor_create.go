// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autodiag/refinery/ent/extractedsensor"
)

// ExtractedSensorCreate is the builder for creating a ExtractedSensor entity.
type ExtractedSensorCreate struct {
	config
	mutation *ExtractedSensorMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *ExtractedSensorCreate) SetDocumentID(v string) *ExtractedSensorCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ExtractedSensorCreate) SetName(v string) *ExtractedSensorCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetSensorType sets the "sensor_type" field.
func (_c *ExtractedSensorCreate) SetSensorType(v string) *ExtractedSensorCreate {
	_c.mutation.SetSensorType(v)
	return _c
}

// SetNillableSensorType sets the "sensor_type" field if the given value is not nil.
func (_c *ExtractedSensorCreate) SetNillableSensorType(v *string) *ExtractedSensorCreate {
	if v != nil {
		_c.SetSensorType(*v)
	}
	return _c
}

// SetTypicalRange sets the "typical_range" field.
func (_c *ExtractedSensorCreate) SetTypicalRange(v string) *ExtractedSensorCreate {
	_c.mutation.SetTypicalRange(v)
	return _c
}

// SetNillableTypicalRange sets the "typical_range" field if the given value is not nil.
func (_c *ExtractedSensorCreate) SetNillableTypicalRange(v *string) *ExtractedSensorCreate {
	if v != nil {
		_c.SetTypicalRange(*v)
	}
	return _c
}

// SetUnit sets the "unit" field.
func (_c *ExtractedSensorCreate) SetUnit(v string) *ExtractedSensorCreate {
	_c.mutation.SetUnit(v)
	return _c
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_c *ExtractedSensorCreate) SetNillableUnit(v *string) *ExtractedSensorCreate {
	if v != nil {
		_c.SetUnit(*v)
	}
	return _c
}

// SetRelatedDtcCodes sets the "related_dtc_codes" field.
func (_c *ExtractedSensorCreate) SetRelatedDtcCodes(v []string) *ExtractedSensorCreate {
	_c.mutation.SetRelatedDtcCodes(v)
	return _c
}

// SetSourceChunkID sets the "source_chunk_id" field.
func (_c *ExtractedSensorCreate) SetSourceChunkID(v string) *ExtractedSensorCreate {
	_c.mutation.SetSourceChunkID(v)
	return _c
}

// SetTrust sets the "trust" field.
func (_c *ExtractedSensorCreate) SetTrust(v float64) *ExtractedSensorCreate {
	_c.mutation.SetTrust(v)
	return _c
}

// SetNillableTrust sets the "trust" field if the given value is not nil.
func (_c *ExtractedSensorCreate) SetNillableTrust(v *float64) *ExtractedSensorCreate {
	if v != nil {
		_c.SetTrust(*v)
	}
	return _c
}

// SetRelevance sets the "relevance" field.
func (_c *ExtractedSensorCreate) SetRelevance(v float64) *ExtractedSensorCreate {
	_c.mutation.SetRelevance(v)
	return _c
}

// SetNillableRelevance sets the "relevance" field if the given value is not nil.
func (_c *ExtractedSensorCreate) SetNillableRelevance(v *float64) *ExtractedSensorCreate {
	if v != nil {
		_c.SetRelevance(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExtractedSensorCreate) SetCreatedAt(v time.Time) *ExtractedSensorCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExtractedSensorCreate) SetNillableCreatedAt(v *time.Time) *ExtractedSensorCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractedSensorCreate) SetID(v string) *ExtractedSensorCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ExtractedSensorMutation object of the builder.
func (_c *ExtractedSensorCreate) Mutation() *ExtractedSensorMutation {
	return _c.mutation
}

// Save creates the ExtractedSensor in the database.
func (_c *ExtractedSensorCreate) Save(ctx context.Context) (*ExtractedSensor, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractedSensorCreate) SaveX(ctx context.Context) *ExtractedSensor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractedSensorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractedSensorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractedSensorCreate) defaults() {
	if _, ok := _c.mutation.Trust(); !ok {
		v := extractedsensor.DefaultTrust
		_c.mutation.SetTrust(v)
	}
	if _, ok := _c.mutation.Relevance(); !ok {
		v := extractedsensor.DefaultRelevance
		_c.mutation.SetRelevance(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := extractedsensor.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractedSensorCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "ExtractedSensor.document_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "ExtractedSensor.name"`)}
	}
	if _, ok := _c.mutation.SourceChunkID(); !ok {
		return &ValidationError{Name: "source_chunk_id", err: errors.New(`ent: missing required field "ExtractedSensor.source_chunk_id"`)}
	}
	if _, ok := _c.mutation.Trust(); !ok {
		return &ValidationError{Name: "trust", err: errors.New(`ent: missing required field "ExtractedSensor.trust"`)}
	}
	if _, ok := _c.mutation.Relevance(); !ok {
		return &ValidationError{Name: "relevance", err: errors.New(`ent: missing required field "ExtractedSensor.relevance"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExtractedSensor.created_at"`)}
	}
	return nil
}

func (_c *ExtractedSensorCreate) sqlSave(ctx context.Context) (*ExtractedSensor, error) {
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
			return nil, fmt.Errorf("unexpected ExtractedSensor.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExtractedSensorCreate) createSpec() (*ExtractedSensor, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractedSensor{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extractedsensor.Table, sqlgraph.NewFieldSpec(extractedsensor.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.DocumentID(); ok {
		_spec.SetField(extractedsensor.FieldDocumentID, field.TypeString, value)
		_node.DocumentID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(extractedsensor.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.SensorType(); ok {
		_spec.SetField(extractedsensor.FieldSensorType, field.TypeString, value)
		_node.SensorType = value
	}
	if value, ok := _c.mutation.TypicalRange(); ok {
		_spec.SetField(extractedsensor.FieldTypicalRange, field.TypeString, value)
		_node.TypicalRange = value
	}
	if value, ok := _c.mutation.Unit(); ok {
		_spec.SetField(extractedsensor.FieldUnit, field.TypeString, value)
		_node.Unit = value
	}
	if value, ok := _c.mutation.RelatedDtcCodes(); ok {
		_spec.SetField(extractedsensor.FieldRelatedDtcCodes, field.TypeJSON, value)
		_node.RelatedDtcCodes = value
	}
	if value, ok := _c.mutation.SourceChunkID(); ok {
		_spec.SetField(extractedsensor.FieldSourceChunkID, field.TypeString, value)
		_node.SourceChunkID = value
	}
	if value, ok := _c.mutation.Trust(); ok {
		_spec.SetField(extractedsensor.FieldTrust, field.TypeFloat64, value)
		_node.Trust = value
	}
	if value, ok := _c.mutation.Relevance(); ok {
		_spec.SetField(extractedsensor.FieldRelevance, field.TypeFloat64, value)
		_node.Relevance = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(extractedsensor.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ExtractedSensorCreateBulk is the builder for creating many ExtractedSensor entities in bulk.
type ExtractedSensorCreateBulk struct {
	config
	err      error
	builders []*ExtractedSensorCreate
}

// Save creates the ExtractedSensor entities in the database.
func (_c *ExtractedSensorCreateBulk) Save(ctx context.Context) ([]*ExtractedSensor, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractedSensor, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractedSensorMutation)
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
func (_c *ExtractedSensorCreateBulk) SaveX(ctx context.Context) []*ExtractedSensor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractedSensorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractedSensorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
