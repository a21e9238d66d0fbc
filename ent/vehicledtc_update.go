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
	"github.com/autodiag/refinery/ent/vehicledtc"
)

// VehicleDTCUpdate is the builder for updating VehicleDTC entities.
type VehicleDTCUpdate struct {
	config
	hooks    []Hook
	mutation *VehicleDTCMutation
}

// Where appends a list predicates to the VehicleDTCUpdate builder.
func (_u *VehicleDTCUpdate) Where(ps ...predicate.VehicleDTC) *VehicleDTCUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVehicleID sets the "vehicle_id" field.
func (_u *VehicleDTCUpdate) SetVehicleID(v string) *VehicleDTCUpdate {
	_u.mutation.SetVehicleID(v)
	return _u
}

// SetNillableVehicleID sets the "vehicle_id" field if the given value is not nil.
func (_u *VehicleDTCUpdate) SetNillableVehicleID(v *string) *VehicleDTCUpdate {
	if v != nil {
		_u.SetVehicleID(*v)
	}
	return _u
}

// SetDtcMasterID sets the "dtc_master_id" field.
func (_u *VehicleDTCUpdate) SetDtcMasterID(v string) *VehicleDTCUpdate {
	_u.mutation.SetDtcMasterID(v)
	return _u
}

// SetNillableDtcMasterID sets the "dtc_master_id" field if the given value is not nil.
func (_u *VehicleDTCUpdate) SetNillableDtcMasterID(v *string) *VehicleDTCUpdate {
	if v != nil {
		_u.SetDtcMasterID(*v)
	}
	return _u
}

// SetSourceChunkID sets the "source_chunk_id" field.
func (_u *VehicleDTCUpdate) SetSourceChunkID(v string) *VehicleDTCUpdate {
	_u.mutation.SetSourceChunkID(v)
	return _u
}

// SetNillableSourceChunkID sets the "source_chunk_id" field if the given value is not nil.
func (_u *VehicleDTCUpdate) SetNillableSourceChunkID(v *string) *VehicleDTCUpdate {
	if v != nil {
		_u.SetSourceChunkID(*v)
	}
	return _u
}

// ClearSourceChunkID clears the value of the "source_chunk_id" field.
func (_u *VehicleDTCUpdate) ClearSourceChunkID() *VehicleDTCUpdate {
	_u.mutation.ClearSourceChunkID()
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *VehicleDTCUpdate) SetConfidenceScore(v float64) *VehicleDTCUpdate {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *VehicleDTCUpdate) SetNillableConfidenceScore(v *float64) *VehicleDTCUpdate {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *VehicleDTCUpdate) AddConfidenceScore(v float64) *VehicleDTCUpdate {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// Mutation returns the VehicleDTCMutation object of the builder.
func (_u *VehicleDTCUpdate) Mutation() *VehicleDTCMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VehicleDTCUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VehicleDTCUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VehicleDTCUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VehicleDTCUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *VehicleDTCUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(vehicledtc.Table, vehicledtc.Columns, sqlgraph.NewFieldSpec(vehicledtc.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.VehicleID(); ok {
		_spec.SetField(vehicledtc.FieldVehicleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DtcMasterID(); ok {
		_spec.SetField(vehicledtc.FieldDtcMasterID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceChunkID(); ok {
		_spec.SetField(vehicledtc.FieldSourceChunkID, field.TypeString, value)
	}
	if _u.mutation.SourceChunkIDCleared() {
		_spec.ClearField(vehicledtc.FieldSourceChunkID, field.TypeString)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(vehicledtc.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(vehicledtc.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vehicledtc.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VehicleDTCUpdateOne is the builder for updating a single VehicleDTC entity.
type VehicleDTCUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VehicleDTCMutation
}

// SetVehicleID sets the "vehicle_id" field.
func (_u *VehicleDTCUpdateOne) SetVehicleID(v string) *VehicleDTCUpdateOne {
	_u.mutation.SetVehicleID(v)
	return _u
}

// SetNillableVehicleID sets the "vehicle_id" field if the given value is not nil.
func (_u *VehicleDTCUpdateOne) SetNillableVehicleID(v *string) *VehicleDTCUpdateOne {
	if v != nil {
		_u.SetVehicleID(*v)
	}
	return _u
}

// SetDtcMasterID sets the "dtc_master_id" field.
func (_u *VehicleDTCUpdateOne) SetDtcMasterID(v string) *VehicleDTCUpdateOne {
	_u.mutation.SetDtcMasterID(v)
	return _u
}

// SetNillableDtcMasterID sets the "dtc_master_id" field if the given value is not nil.
func (_u *VehicleDTCUpdateOne) SetNillableDtcMasterID(v *string) *VehicleDTCUpdateOne {
	if v != nil {
		_u.SetDtcMasterID(*v)
	}
	return _u
}

// SetSourceChunkID sets the "source_chunk_id" field.
func (_u *VehicleDTCUpdateOne) SetSourceChunkID(v string) *VehicleDTCUpdateOne {
	_u.mutation.SetSourceChunkID(v)
	return _u
}

// SetNillableSourceChunkID sets the "source_chunk_id" field if the given value is not nil.
func (_u *VehicleDTCUpdateOne) SetNillableSourceChunkID(v *string) *VehicleDTCUpdateOne {
	if v != nil {
		_u.SetSourceChunkID(*v)
	}
	return _u
}

// ClearSourceChunkID clears the value of the "source_chunk_id" field.
func (_u *VehicleDTCUpdateOne) ClearSourceChunkID() *VehicleDTCUpdateOne {
	_u.mutation.ClearSourceChunkID()
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *VehicleDTCUpdateOne) SetConfidenceScore(v float64) *VehicleDTCUpdateOne {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *VehicleDTCUpdateOne) SetNillableConfidenceScore(v *float64) *VehicleDTCUpdateOne {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *VehicleDTCUpdateOne) AddConfidenceScore(v float64) *VehicleDTCUpdateOne {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// Mutation returns the VehicleDTCMutation object of the builder.
func (_u *VehicleDTCUpdateOne) Mutation() *VehicleDTCMutation {
	return _u.mutation
}

// Where appends a list predicates to the VehicleDTCUpdate builder.
func (_u *VehicleDTCUpdateOne) Where(ps ...predicate.VehicleDTC) *VehicleDTCUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VehicleDTCUpdateOne) Select(field string, fields ...string) *VehicleDTCUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated VehicleDTC entity.
func (_u *VehicleDTCUpdateOne) Save(ctx context.Context) (*VehicleDTC, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VehicleDTCUpdateOne) SaveX(ctx context.Context) *VehicleDTC {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VehicleDTCUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VehicleDTCUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *VehicleDTCUpdateOne) sqlSave(ctx context.Context) (_node *VehicleDTC, err error) {
	_spec := sqlgraph.NewUpdateSpec(vehicledtc.Table, vehicledtc.Columns, sqlgraph.NewFieldSpec(vehicledtc.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "VehicleDTC.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, vehicledtc.FieldID)
		for _, f := range fields {
			if !vehicledtc.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != vehicledtc.FieldID {
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
	if value, ok := _u.mutation.VehicleID(); ok {
		_spec.SetField(vehicledtc.FieldVehicleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DtcMasterID(); ok {
		_spec.SetField(vehicledtc.FieldDtcMasterID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceChunkID(); ok {
		_spec.SetField(vehicledtc.FieldSourceChunkID, field.TypeString, value)
	}
	if _u.mutation.SourceChunkIDCleared() {
		_spec.ClearField(vehicledtc.FieldSourceChunkID, field.TypeString)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(vehicledtc.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(vehicledtc.FieldConfidenceScore, field.TypeFloat64, value)
	}
	_node = &VehicleDTC{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vehicledtc.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
