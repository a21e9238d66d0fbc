// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autodiag/refinery/ent/predicate"
	"github.com/autodiag/refinery/ent/sensor"
)

// SensorUpdate is the builder for updating Sensor entities.
type SensorUpdate struct {
	config
	hooks    []Hook
	mutation *SensorMutation
}

// Where appends a list predicates to the SensorUpdate builder.
func (_u *SensorUpdate) Where(ps ...predicate.Sensor) *SensorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *SensorUpdate) SetName(v string) *SensorUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SensorUpdate) SetNillableName(v *string) *SensorUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSensorType sets the "sensor_type" field.
func (_u *SensorUpdate) SetSensorType(v string) *SensorUpdate {
	_u.mutation.SetSensorType(v)
	return _u
}

// SetNillableSensorType sets the "sensor_type" field if the given value is not nil.
func (_u *SensorUpdate) SetNillableSensorType(v *string) *SensorUpdate {
	if v != nil {
		_u.SetSensorType(*v)
	}
	return _u
}

// ClearSensorType clears the value of the "sensor_type" field.
func (_u *SensorUpdate) ClearSensorType() *SensorUpdate {
	_u.mutation.ClearSensorType()
	return _u
}

// SetTypicalRange sets the "typical_range" field.
func (_u *SensorUpdate) SetTypicalRange(v string) *SensorUpdate {
	_u.mutation.SetTypicalRange(v)
	return _u
}

// SetNillableTypicalRange sets the "typical_range" field if the given value is not nil.
func (_u *SensorUpdate) SetNillableTypicalRange(v *string) *SensorUpdate {
	if v != nil {
		_u.SetTypicalRange(*v)
	}
	return _u
}

// ClearTypicalRange clears the value of the "typical_range" field.
func (_u *SensorUpdate) ClearTypicalRange() *SensorUpdate {
	_u.mutation.ClearTypicalRange()
	return _u
}

// SetUnit sets the "unit" field.
func (_u *SensorUpdate) SetUnit(v string) *SensorUpdate {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *SensorUpdate) SetNillableUnit(v *string) *SensorUpdate {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// ClearUnit clears the value of the "unit" field.
func (_u *SensorUpdate) ClearUnit() *SensorUpdate {
	_u.mutation.ClearUnit()
	return _u
}

// Mutation returns the SensorMutation object of the builder.
func (_u *SensorUpdate) Mutation() *SensorMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SensorUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SensorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SensorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SensorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SensorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(sensor.Table, sensor.Columns, sqlgraph.NewFieldSpec(sensor.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(sensor.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SensorType(); ok {
		_spec.SetField(sensor.FieldSensorType, field.TypeString, value)
	}
	if _u.mutation.SensorTypeCleared() {
		_spec.ClearField(sensor.FieldSensorType, field.TypeString)
	}
	if value, ok := _u.mutation.TypicalRange(); ok {
		_spec.SetField(sensor.FieldTypicalRange, field.TypeString, value)
	}
	if _u.mutation.TypicalRangeCleared() {
		_spec.ClearField(sensor.FieldTypicalRange, field.TypeString)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(sensor.FieldUnit, field.TypeString, value)
	}
	if _u.mutation.UnitCleared() {
		_spec.ClearField(sensor.FieldUnit, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sensor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SensorUpdateOne is the builder for updating a single Sensor entity.
type SensorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SensorMutation
}

// SetName sets the "name" field.
func (_u *SensorUpdateOne) SetName(v string) *SensorUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SensorUpdateOne) SetNillableName(v *string) *SensorUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSensorType sets the "sensor_type" field.
func (_u *SensorUpdateOne) SetSensorType(v string) *SensorUpdateOne {
	_u.mutation.SetSensorType(v)
	return _u
}

// SetNillableSensorType sets the "sensor_type" field if the given value is not nil.
func (_u *SensorUpdateOne) SetNillableSensorType(v *string) *SensorUpdateOne {
	if v != nil {
		_u.SetSensorType(*v)
	}
	return _u
}

// ClearSensorType clears the value of the "sensor_type" field.
func (_u *SensorUpdateOne) ClearSensorType() *SensorUpdateOne {
	_u.mutation.ClearSensorType()
	return _u
}

// SetTypicalRange sets the "typical_range" field.
func (_u *SensorUpdateOne) SetTypicalRange(v string) *SensorUpdateOne {
	_u.mutation.SetTypicalRange(v)
	return _u
}

// SetNillableTypicalRange sets the "typical_range" field if the given value is not nil.
func (_u *SensorUpdateOne) SetNillableTypicalRange(v *string) *SensorUpdateOne {
	if v != nil {
		_u.SetTypicalRange(*v)
	}
	return _u
}

// ClearTypicalRange clears the value of the "typical_range" field.
func (_u *SensorUpdateOne) ClearTypicalRange() *SensorUpdateOne {
	_u.mutation.ClearTypicalRange()
	return _u
}

// SetUnit sets the "unit" field.
func (_u *SensorUpdateOne) SetUnit(v string) *SensorUpdateOne {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *SensorUpdateOne) SetNillableUnit(v *string) *SensorUpdateOne {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// ClearUnit clears the value of the "unit" field.
func (_u *SensorUpdateOne) ClearUnit() *SensorUpdateOne {
	_u.mutation.ClearUnit()
	return _u
}

// Mutation returns the SensorMutation object of the builder.
func (_u *SensorUpdateOne) Mutation() *SensorMutation {
	return _u.mutation
}

// Where appends a list predicates to the SensorUpdate builder.
func (_u *SensorUpdateOne) Where(ps ...predicate.Sensor) *SensorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SensorUpdateOne) Select(field string, fields ...string) *SensorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Sensor entity.
func (_u *SensorUpdateOne) Save(ctx context.Context) (*Sensor, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SensorUpdateOne) SaveX(ctx context.Context) *Sensor {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SensorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SensorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SensorUpdateOne) sqlSave(ctx context.Context) (_node *Sensor, err error) {
	_spec := sqlgraph.NewUpdateSpec(sensor.Table, sensor.Columns, sqlgraph.NewFieldSpec(sensor.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Sensor.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sensor.FieldID)
		for _, f := range fields {
			if !sensor.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sensor.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(sensor.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SensorType(); ok {
		_spec.SetField(sensor.FieldSensorType, field.TypeString, value)
	}
	if _u.mutation.SensorTypeCleared() {
		_spec.ClearField(sensor.FieldSensorType, field.TypeString)
	}
	if value, ok := _u.mutation.TypicalRange(); ok {
		_spec.SetField(sensor.FieldTypicalRange, field.TypeString, value)
	}
	if _u.mutation.TypicalRangeCleared() {
		_spec.ClearField(sensor.FieldTypicalRange, field.TypeString)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(sensor.FieldUnit, field.TypeString, value)
	}
	if _u.mutation.UnitCleared() {
		_spec.ClearField(sensor.FieldUnit, field.TypeString)
	}
	_node = &Sensor{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sensor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
