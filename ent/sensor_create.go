// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autodiag/refinery/ent/sensor"
)

// SensorCreate is the builder for creating a Sensor entity.
type SensorCreate struct {
	config
	mutation *SensorMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *SensorCreate) SetName(v string) *SensorCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetSensorType sets the "sensor_type" field.
func (_c *SensorCreate) SetSensorType(v string) *SensorCreate {
	_c.mutation.SetSensorType(v)
	return _c
}

// SetNillableSensorType sets the "sensor_type" field if the given value is not nil.
func (_c *SensorCreate) SetNillableSensorType(v *string) *SensorCreate {
	if v != nil {
		_c.SetSensorType(*v)
	}
	return _c
}

// SetTypicalRange sets the "typical_range" field.
func (_c *SensorCreate) SetTypicalRange(v string) *SensorCreate {
	_c.mutation.SetTypicalRange(v)
	return _c
}

// SetNillableTypicalRange sets the "typical_range" field if the given value is not nil.
func (_c *SensorCreate) SetNillableTypicalRange(v *string) *SensorCreate {
	if v != nil {
		_c.SetTypicalRange(*v)
	}
	return _c
}

// SetUnit sets the "unit" field.
func (_c *SensorCreate) SetUnit(v string) *SensorCreate {
	_c.mutation.SetUnit(v)
	return _c
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_c *SensorCreate) SetNillableUnit(v *string) *SensorCreate {
	if v != nil {
		_c.SetUnit(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SensorCreate) SetCreatedAt(v time.Time) *SensorCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SensorCreate) SetNillableCreatedAt(v *time.Time) *SensorCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SensorCreate) SetID(v string) *SensorCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SensorMutation object of the builder.
func (_c *SensorCreate) Mutation() *SensorMutation {
	return _c.mutation
}

// Save creates the Sensor in the database.
func (_c *SensorCreate) Save(ctx context.Context) (*Sensor, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SensorCreate) SaveX(ctx context.Context) *Sensor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SensorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SensorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SensorCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sensor.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SensorCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Sensor.name"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Sensor.created_at"`)}
	}
	return nil
}

func (_c *SensorCreate) sqlSave(ctx context.Context) (*Sensor, error) {
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
			return nil, fmt.Errorf("unexpected Sensor.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SensorCreate) createSpec() (*Sensor, *sqlgraph.CreateSpec) {
	var (
		_node = &Sensor{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sensor.Table, sqlgraph.NewFieldSpec(sensor.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(sensor.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.SensorType(); ok {
		_spec.SetField(sensor.FieldSensorType, field.TypeString, value)
		_node.SensorType = value
	}
	if value, ok := _c.mutation.TypicalRange(); ok {
		_spec.SetField(sensor.FieldTypicalRange, field.TypeString, value)
		_node.TypicalRange = value
	}
	if value, ok := _c.mutation.Unit(); ok {
		_spec.SetField(sensor.FieldUnit, field.TypeString, value)
		_node.Unit = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sensor.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// SensorCreateBulk is the builder for creating many Sensor entities in bulk.
type SensorCreateBulk struct {
	config
	err      error
	builders []*SensorCreate
}

// Save creates the Sensor entities in the database.
func (_c *SensorCreateBulk) Save(ctx context.Context) ([]*Sensor, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Sensor, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SensorMutation)
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
func (_c *SensorCreateBulk) SaveX(ctx context.Context) []*Sensor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SensorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SensorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
