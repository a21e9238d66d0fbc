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
	"github.com/autodiag/refinery/ent/predicate"
	"github.com/autodiag/refinery/ent/vehicle"
)

// VehicleUpdate is the builder for updating Vehicle entities.
type VehicleUpdate struct {
	config
	hooks    []Hook
	mutation *VehicleMutation
}

// Where appends a list predicates to the VehicleUpdate builder.
func (_u *VehicleUpdate) Where(ps ...predicate.Vehicle) *VehicleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMake sets the "make" field.
func (_u *VehicleUpdate) SetMake(v string) *VehicleUpdate {
	_u.mutation.SetMake(v)
	return _u
}

// SetNillableMake sets the "make" field if the given value is not nil.
func (_u *VehicleUpdate) SetNillableMake(v *string) *VehicleUpdate {
	if v != nil {
		_u.SetMake(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *VehicleUpdate) SetModel(v string) *VehicleUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *VehicleUpdate) SetNillableModel(v *string) *VehicleUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetYearStart sets the "year_start" field.
func (_u *VehicleUpdate) SetYearStart(v int) *VehicleUpdate {
	_u.mutation.ResetYearStart()
	_u.mutation.SetYearStart(v)
	return _u
}

// SetNillableYearStart sets the "year_start" field if the given value is not nil.
func (_u *VehicleUpdate) SetNillableYearStart(v *int) *VehicleUpdate {
	if v != nil {
		_u.SetYearStart(*v)
	}
	return _u
}

// AddYearStart adds value to the "year_start" field.
func (_u *VehicleUpdate) AddYearStart(v int) *VehicleUpdate {
	_u.mutation.AddYearStart(v)
	return _u
}

// ClearYearStart clears the value of the "year_start" field.
func (_u *VehicleUpdate) ClearYearStart() *VehicleUpdate {
	_u.mutation.ClearYearStart()
	return _u
}

// SetYearEnd sets the "year_end" field.
func (_u *VehicleUpdate) SetYearEnd(v int) *VehicleUpdate {
	_u.mutation.ResetYearEnd()
	_u.mutation.SetYearEnd(v)
	return _u
}

// SetNillableYearEnd sets the "year_end" field if the given value is not nil.
func (_u *VehicleUpdate) SetNillableYearEnd(v *int) *VehicleUpdate {
	if v != nil {
		_u.SetYearEnd(*v)
	}
	return _u
}

// AddYearEnd adds value to the "year_end" field.
func (_u *VehicleUpdate) AddYearEnd(v int) *VehicleUpdate {
	_u.mutation.AddYearEnd(v)
	return _u
}

// ClearYearEnd clears the value of the "year_end" field.
func (_u *VehicleUpdate) ClearYearEnd() *VehicleUpdate {
	_u.mutation.ClearYearEnd()
	return _u
}

// SetEngine sets the "engine" field.
func (_u *VehicleUpdate) SetEngine(v string) *VehicleUpdate {
	_u.mutation.SetEngine(v)
	return _u
}

// SetNillableEngine sets the "engine" field if the given value is not nil.
func (_u *VehicleUpdate) SetNillableEngine(v *string) *VehicleUpdate {
	if v != nil {
		_u.SetEngine(*v)
	}
	return _u
}

// ClearEngine clears the value of the "engine" field.
func (_u *VehicleUpdate) ClearEngine() *VehicleUpdate {
	_u.mutation.ClearEngine()
	return _u
}

// SetTransmission sets the "transmission" field.
func (_u *VehicleUpdate) SetTransmission(v string) *VehicleUpdate {
	_u.mutation.SetTransmission(v)
	return _u
}

// SetNillableTransmission sets the "transmission" field if the given value is not nil.
func (_u *VehicleUpdate) SetNillableTransmission(v *string) *VehicleUpdate {
	if v != nil {
		_u.SetTransmission(*v)
	}
	return _u
}

// ClearTransmission clears the value of the "transmission" field.
func (_u *VehicleUpdate) ClearTransmission() *VehicleUpdate {
	_u.mutation.ClearTransmission()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VehicleUpdate) SetUpdatedAt(v time.Time) *VehicleUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the VehicleMutation object of the builder.
func (_u *VehicleUpdate) Mutation() *VehicleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VehicleUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VehicleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VehicleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VehicleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VehicleUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := vehicle.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *VehicleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(vehicle.Table, vehicle.Columns, sqlgraph.NewFieldSpec(vehicle.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Make(); ok {
		_spec.SetField(vehicle.FieldMake, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(vehicle.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.YearStart(); ok {
		_spec.SetField(vehicle.FieldYearStart, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYearStart(); ok {
		_spec.AddField(vehicle.FieldYearStart, field.TypeInt, value)
	}
	if _u.mutation.YearStartCleared() {
		_spec.ClearField(vehicle.FieldYearStart, field.TypeInt)
	}
	if value, ok := _u.mutation.YearEnd(); ok {
		_spec.SetField(vehicle.FieldYearEnd, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYearEnd(); ok {
		_spec.AddField(vehicle.FieldYearEnd, field.TypeInt, value)
	}
	if _u.mutation.YearEndCleared() {
		_spec.ClearField(vehicle.FieldYearEnd, field.TypeInt)
	}
	if value, ok := _u.mutation.Engine(); ok {
		_spec.SetField(vehicle.FieldEngine, field.TypeString, value)
	}
	if _u.mutation.EngineCleared() {
		_spec.ClearField(vehicle.FieldEngine, field.TypeString)
	}
	if value, ok := _u.mutation.Transmission(); ok {
		_spec.SetField(vehicle.FieldTransmission, field.TypeString, value)
	}
	if _u.mutation.TransmissionCleared() {
		_spec.ClearField(vehicle.FieldTransmission, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(vehicle.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vehicle.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VehicleUpdateOne is the builder for updating a single Vehicle entity.
type VehicleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VehicleMutation
}

// SetMake sets the "make" field.
func (_u *VehicleUpdateOne) SetMake(v string) *VehicleUpdateOne {
	_u.mutation.SetMake(v)
	return _u
}

// SetNillableMake sets the "make" field if the given value is not nil.
func (_u *VehicleUpdateOne) SetNillableMake(v *string) *VehicleUpdateOne {
	if v != nil {
		_u.SetMake(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *VehicleUpdateOne) SetModel(v string) *VehicleUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *VehicleUpdateOne) SetNillableModel(v *string) *VehicleUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetYearStart sets the "year_start" field.
func (_u *VehicleUpdateOne) SetYearStart(v int) *VehicleUpdateOne {
	_u.mutation.ResetYearStart()
	_u.mutation.SetYearStart(v)
	return _u
}

// SetNillableYearStart sets the "year_start" field if the given value is not nil.
func (_u *VehicleUpdateOne) SetNillableYearStart(v *int) *VehicleUpdateOne {
	if v != nil {
		_u.SetYearStart(*v)
	}
	return _u
}

// AddYearStart adds value to the "year_start" field.
func (_u *VehicleUpdateOne) AddYearStart(v int) *VehicleUpdateOne {
	_u.mutation.AddYearStart(v)
	return _u
}

// ClearYearStart clears the value of the "year_start" field.
func (_u *VehicleUpdateOne) ClearYearStart() *VehicleUpdateOne {
	_u.mutation.ClearYearStart()
	return _u
}

// SetYearEnd sets the "year_end" field.
func (_u *VehicleUpdateOne) SetYearEnd(v int) *VehicleUpdateOne {
	_u.mutation.ResetYearEnd()
	_u.mutation.SetYearEnd(v)
	return _u
}

// SetNillableYearEnd sets the "year_end" field if the given value is not nil.
func (_u *VehicleUpdateOne) SetNillableYearEnd(v *int) *VehicleUpdateOne {
	if v != nil {
		_u.SetYearEnd(*v)
	}
	return _u
}

// AddYearEnd adds value to the "year_end" field.
func (_u *VehicleUpdateOne) AddYearEnd(v int) *VehicleUpdateOne {
	_u.mutation.AddYearEnd(v)
	return _u
}

// ClearYearEnd clears the value of the "year_end" field.
func (_u *VehicleUpdateOne) ClearYearEnd() *VehicleUpdateOne {
	_u.mutation.ClearYearEnd()
	return _u
}

// SetEngine sets the "engine" field.
func (_u *VehicleUpdateOne) SetEngine(v string) *VehicleUpdateOne {
	_u.mutation.SetEngine(v)
	return _u
}

// SetNillableEngine sets the "engine" field if the given value is not nil.
func (_u *VehicleUpdateOne) SetNillableEngine(v *string) *VehicleUpdateOne {
	if v != nil {
		_u.SetEngine(*v)
	}
	return _u
}

// ClearEngine clears the value of the "engine" field.
func (_u *VehicleUpdateOne) ClearEngine() *VehicleUpdateOne {
	_u.mutation.ClearEngine()
	return _u
}

// SetTransmission sets the "transmission" field.
func (_u *VehicleUpdateOne) SetTransmission(v string) *VehicleUpdateOne {
	_u.mutation.SetTransmission(v)
	return _u
}

// SetNillableTransmission sets the "transmission" field if the given value is not nil.
func (_u *VehicleUpdateOne) SetNillableTransmission(v *string) *VehicleUpdateOne {
	if v != nil {
		_u.SetTransmission(*v)
	}
	return _u
}

// ClearTransmission clears the value of the "transmission" field.
func (_u *VehicleUpdateOne) ClearTransmission() *VehicleUpdateOne {
	_u.mutation.ClearTransmission()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VehicleUpdateOne) SetUpdatedAt(v time.Time) *VehicleUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the VehicleMutation object of the builder.
func (_u *VehicleUpdateOne) Mutation() *VehicleMutation {
	return _u.mutation
}

// Where appends a list predicates to the VehicleUpdate builder.
func (_u *VehicleUpdateOne) Where(ps ...predicate.Vehicle) *VehicleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VehicleUpdateOne) Select(field string, fields ...string) *VehicleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Vehicle entity.
func (_u *VehicleUpdateOne) Save(ctx context.Context) (*Vehicle, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VehicleUpdateOne) SaveX(ctx context.Context) *Vehicle {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VehicleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VehicleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VehicleUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := vehicle.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *VehicleUpdateOne) sqlSave(ctx context.Context) (_node *Vehicle, err error) {
	_spec := sqlgraph.NewUpdateSpec(vehicle.Table, vehicle.Columns, sqlgraph.NewFieldSpec(vehicle.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Vehicle.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, vehicle.FieldID)
		for _, f := range fields {
			if !vehicle.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != vehicle.FieldID {
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
	if value, ok := _u.mutation.Make(); ok {
		_spec.SetField(vehicle.FieldMake, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(vehicle.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.YearStart(); ok {
		_spec.SetField(vehicle.FieldYearStart, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYearStart(); ok {
		_spec.AddField(vehicle.FieldYearStart, field.TypeInt, value)
	}
	if _u.mutation.YearStartCleared() {
		_spec.ClearField(vehicle.FieldYearStart, field.TypeInt)
	}
	if value, ok := _u.mutation.YearEnd(); ok {
		_spec.SetField(vehicle.FieldYearEnd, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYearEnd(); ok {
		_spec.AddField(vehicle.FieldYearEnd, field.TypeInt, value)
	}
	if _u.mutation.YearEndCleared() {
		_spec.ClearField(vehicle.FieldYearEnd, field.TypeInt)
	}
	if value, ok := _u.mutation.Engine(); ok {
		_spec.SetField(vehicle.FieldEngine, field.TypeString, value)
	}
	if _u.mutation.EngineCleared() {
		_spec.ClearField(vehicle.FieldEngine, field.TypeString)
	}
	if value, ok := _u.mutation.Transmission(); ok {
		_spec.SetField(vehicle.FieldTransmission, field.TypeString, value)
	}
	if _u.mutation.TransmissionCleared() {
		_spec.ClearField(vehicle.FieldTransmission, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(vehicle.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Vehicle{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vehicle.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
