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
	"github.com/autodiag/refinery/ent/dtcrelatedsensor"
	"github.com/autodiag/refinery/ent/predicate"
)

// DTCRelatedSensorUpdate is the builder for updating DTCRelatedSensor entities.
type DTCRelatedSensorUpdate struct {
	config
	hooks    []Hook
	mutation *DTCRelatedSensorMutation
}

// Where appends a list predicates to the DTCRelatedSensorUpdate builder.
func (_u *DTCRelatedSensorUpdate) Where(ps ...predicate.DTCRelatedSensor) *DTCRelatedSensorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDtcMasterID sets the "dtc_master_id" field.
func (_u *DTCRelatedSensorUpdate) SetDtcMasterID(v string) *DTCRelatedSensorUpdate {
	_u.mutation.SetDtcMasterID(v)
	return _u
}

// SetNillableDtcMasterID sets the "dtc_master_id" field if the given value is not nil.
func (_u *DTCRelatedSensorUpdate) SetNillableDtcMasterID(v *string) *DTCRelatedSensorUpdate {
	if v != nil {
		_u.SetDtcMasterID(*v)
	}
	return _u
}

// SetSensorID sets the "sensor_id" field.
func (_u *DTCRelatedSensorUpdate) SetSensorID(v string) *DTCRelatedSensorUpdate {
	_u.mutation.SetSensorID(v)
	return _u
}

// SetNillableSensorID sets the "sensor_id" field if the given value is not nil.
func (_u *DTCRelatedSensorUpdate) SetNillableSensorID(v *string) *DTCRelatedSensorUpdate {
	if v != nil {
		_u.SetSensorID(*v)
	}
	return _u
}

// SetPriorityRank sets the "priority_rank" field.
func (_u *DTCRelatedSensorUpdate) SetPriorityRank(v int) *DTCRelatedSensorUpdate {
	_u.mutation.ResetPriorityRank()
	_u.mutation.SetPriorityRank(v)
	return _u
}

// SetNillablePriorityRank sets the "priority_rank" field if the given value is not nil.
func (_u *DTCRelatedSensorUpdate) SetNillablePriorityRank(v *int) *DTCRelatedSensorUpdate {
	if v != nil {
		_u.SetPriorityRank(*v)
	}
	return _u
}

// AddPriorityRank adds value to the "priority_rank" field.
func (_u *DTCRelatedSensorUpdate) AddPriorityRank(v int) *DTCRelatedSensorUpdate {
	_u.mutation.AddPriorityRank(v)
	return _u
}

// SetEvidenceCount sets the "evidence_count" field.
func (_u *DTCRelatedSensorUpdate) SetEvidenceCount(v int) *DTCRelatedSensorUpdate {
	_u.mutation.ResetEvidenceCount()
	_u.mutation.SetEvidenceCount(v)
	return _u
}

// SetNillableEvidenceCount sets the "evidence_count" field if the given value is not nil.
func (_u *DTCRelatedSensorUpdate) SetNillableEvidenceCount(v *int) *DTCRelatedSensorUpdate {
	if v != nil {
		_u.SetEvidenceCount(*v)
	}
	return _u
}

// AddEvidenceCount adds value to the "evidence_count" field.
func (_u *DTCRelatedSensorUpdate) AddEvidenceCount(v int) *DTCRelatedSensorUpdate {
	_u.mutation.AddEvidenceCount(v)
	return _u
}

// SetAvgTrust sets the "avg_trust" field.
func (_u *DTCRelatedSensorUpdate) SetAvgTrust(v float64) *DTCRelatedSensorUpdate {
	_u.mutation.ResetAvgTrust()
	_u.mutation.SetAvgTrust(v)
	return _u
}

// SetNillableAvgTrust sets the "avg_trust" field if the given value is not nil.
func (_u *DTCRelatedSensorUpdate) SetNillableAvgTrust(v *float64) *DTCRelatedSensorUpdate {
	if v != nil {
		_u.SetAvgTrust(*v)
	}
	return _u
}

// AddAvgTrust adds value to the "avg_trust" field.
func (_u *DTCRelatedSensorUpdate) AddAvgTrust(v float64) *DTCRelatedSensorUpdate {
	_u.mutation.AddAvgTrust(v)
	return _u
}

// SetAvgRelevance sets the "avg_relevance" field.
func (_u *DTCRelatedSensorUpdate) SetAvgRelevance(v float64) *DTCRelatedSensorUpdate {
	_u.mutation.ResetAvgRelevance()
	_u.mutation.SetAvgRelevance(v)
	return _u
}

// SetNillableAvgRelevance sets the "avg_relevance" field if the given value is not nil.
func (_u *DTCRelatedSensorUpdate) SetNillableAvgRelevance(v *float64) *DTCRelatedSensorUpdate {
	if v != nil {
		_u.SetAvgRelevance(*v)
	}
	return _u
}

// AddAvgRelevance adds value to the "avg_relevance" field.
func (_u *DTCRelatedSensorUpdate) AddAvgRelevance(v float64) *DTCRelatedSensorUpdate {
	_u.mutation.AddAvgRelevance(v)
	return _u
}

// SetConflictFlag sets the "conflict_flag" field.
func (_u *DTCRelatedSensorUpdate) SetConflictFlag(v bool) *DTCRelatedSensorUpdate {
	_u.mutation.SetConflictFlag(v)
	return _u
}

// SetNillableConflictFlag sets the "conflict_flag" field if the given value is not nil.
func (_u *DTCRelatedSensorUpdate) SetNillableConflictFlag(v *bool) *DTCRelatedSensorUpdate {
	if v != nil {
		_u.SetConflictFlag(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DTCRelatedSensorUpdate) SetUpdatedAt(v time.Time) *DTCRelatedSensorUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DTCRelatedSensorMutation object of the builder.
func (_u *DTCRelatedSensorUpdate) Mutation() *DTCRelatedSensorMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DTCRelatedSensorUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DTCRelatedSensorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DTCRelatedSensorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DTCRelatedSensorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DTCRelatedSensorUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := dtcrelatedsensor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *DTCRelatedSensorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(dtcrelatedsensor.Table, dtcrelatedsensor.Columns, sqlgraph.NewFieldSpec(dtcrelatedsensor.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DtcMasterID(); ok {
		_spec.SetField(dtcrelatedsensor.FieldDtcMasterID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SensorID(); ok {
		_spec.SetField(dtcrelatedsensor.FieldSensorID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PriorityRank(); ok {
		_spec.SetField(dtcrelatedsensor.FieldPriorityRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriorityRank(); ok {
		_spec.AddField(dtcrelatedsensor.FieldPriorityRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EvidenceCount(); ok {
		_spec.SetField(dtcrelatedsensor.FieldEvidenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEvidenceCount(); ok {
		_spec.AddField(dtcrelatedsensor.FieldEvidenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgTrust(); ok {
		_spec.SetField(dtcrelatedsensor.FieldAvgTrust, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgTrust(); ok {
		_spec.AddField(dtcrelatedsensor.FieldAvgTrust, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AvgRelevance(); ok {
		_spec.SetField(dtcrelatedsensor.FieldAvgRelevance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgRelevance(); ok {
		_spec.AddField(dtcrelatedsensor.FieldAvgRelevance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ConflictFlag(); ok {
		_spec.SetField(dtcrelatedsensor.FieldConflictFlag, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(dtcrelatedsensor.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dtcrelatedsensor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DTCRelatedSensorUpdateOne is the builder for updating a single DTCRelatedSensor entity.
type DTCRelatedSensorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DTCRelatedSensorMutation
}

// SetDtcMasterID sets the "dtc_master_id" field.
func (_u *DTCRelatedSensorUpdateOne) SetDtcMasterID(v string) *DTCRelatedSensorUpdateOne {
	_u.mutation.SetDtcMasterID(v)
	return _u
}

// SetNillableDtcMasterID sets the "dtc_master_id" field if the given value is not nil.
func (_u *DTCRelatedSensorUpdateOne) SetNillableDtcMasterID(v *string) *DTCRelatedSensorUpdateOne {
	if v != nil {
		_u.SetDtcMasterID(*v)
	}
	return _u
}

// SetSensorID sets the "sensor_id" field.
func (_u *DTCRelatedSensorUpdateOne) SetSensorID(v string) *DTCRelatedSensorUpdateOne {
	_u.mutation.SetSensorID(v)
	return _u
}

// SetNillableSensorID sets the "sensor_id" field if the given value is not nil.
func (_u *DTCRelatedSensorUpdateOne) SetNillableSensorID(v *string) *DTCRelatedSensorUpdateOne {
	if v != nil {
		_u.SetSensorID(*v)
	}
	return _u
}

// SetPriorityRank sets the "priority_rank" field.
func (_u *DTCRelatedSensorUpdateOne) SetPriorityRank(v int) *DTCRelatedSensorUpdateOne {
	_u.mutation.ResetPriorityRank()
	_u.mutation.SetPriorityRank(v)
	return _u
}

// SetNillablePriorityRank sets the "priority_rank" field if the given value is not nil.
func (_u *DTCRelatedSensorUpdateOne) SetNillablePriorityRank(v *int) *DTCRelatedSensorUpdateOne {
	if v != nil {
		_u.SetPriorityRank(*v)
	}
	return _u
}

// AddPriorityRank adds value to the "priority_rank" field.
func (_u *DTCRelatedSensorUpdateOne) AddPriorityRank(v int) *DTCRelatedSensorUpdateOne {
	_u.mutation.AddPriorityRank(v)
	return _u
}

// SetEvidenceCount sets the "evidence_count" field.
func (_u *DTCRelatedSensorUpdateOne) SetEvidenceCount(v int) *DTCRelatedSensorUpdateOne {
	_u.mutation.ResetEvidenceCount()
	_u.mutation.SetEvidenceCount(v)
	return _u
}

// SetNillableEvidenceCount sets the "evidence_count" field if the given value is not nil.
func (_u *DTCRelatedSensorUpdateOne) SetNillableEvidenceCount(v *int) *DTCRelatedSensorUpdateOne {
	if v != nil {
		_u.SetEvidenceCount(*v)
	}
	return _u
}

// AddEvidenceCount adds value to the "evidence_count" field.
func (_u *DTCRelatedSensorUpdateOne) AddEvidenceCount(v int) *DTCRelatedSensorUpdateOne {
	_u.mutation.AddEvidenceCount(v)
	return _u
}

// SetAvgTrust sets the "avg_trust" field.
func (_u *DTCRelatedSensorUpdateOne) SetAvgTrust(v float64) *DTCRelatedSensorUpdateOne {
	_u.mutation.ResetAvgTrust()
	_u.mutation.SetAvgTrust(v)
	return _u
}

// SetNillableAvgTrust sets the "avg_trust" field if the given value is not nil.
func (_u *DTCRelatedSensorUpdateOne) SetNillableAvgTrust(v *float64) *DTCRelatedSensorUpdateOne {
	if v != nil {
		_u.SetAvgTrust(*v)
	}
	return _u
}

// AddAvgTrust adds value to the "avg_trust" field.
func (_u *DTCRelatedSensorUpdateOne) AddAvgTrust(v float64) *DTCRelatedSensorUpdateOne {
	_u.mutation.AddAvgTrust(v)
	return _u
}

// SetAvgRelevance sets the "avg_relevance" field.
func (_u *DTCRelatedSensorUpdateOne) SetAvgRelevance(v float64) *DTCRelatedSensorUpdateOne {
	_u.mutation.ResetAvgRelevance()
	_u.mutation.SetAvgRelevance(v)
	return _u
}

// SetNillableAvgRelevance sets the "avg_relevance" field if the given value is not nil.
func (_u *DTCRelatedSensorUpdateOne) SetNillableAvgRelevance(v *float64) *DTCRelatedSensorUpdateOne {
	if v != nil {
		_u.SetAvgRelevance(*v)
	}
	return _u
}

// AddAvgRelevance adds value to the "avg_relevance" field.
func (_u *DTCRelatedSensorUpdateOne) AddAvgRelevance(v float64) *DTCRelatedSensorUpdateOne {
	_u.mutation.AddAvgRelevance(v)
	return _u
}

// SetConflictFlag sets the "conflict_flag" field.
func (_u *DTCRelatedSensorUpdateOne) SetConflictFlag(v bool) *DTCRelatedSensorUpdateOne {
	_u.mutation.SetConflictFlag(v)
	return _u
}

// SetNillableConflictFlag sets the "conflict_flag" field if the given value is not nil.
func (_u *DTCRelatedSensorUpdateOne) SetNillableConflictFlag(v *bool) *DTCRelatedSensorUpdateOne {
	if v != nil {
		_u.SetConflictFlag(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DTCRelatedSensorUpdateOne) SetUpdatedAt(v time.Time) *DTCRelatedSensorUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DTCRelatedSensorMutation object of the builder.
func (_u *DTCRelatedSensorUpdateOne) Mutation() *DTCRelatedSensorMutation {
	return _u.mutation
}

// Where appends a list predicates to the DTCRelatedSensorUpdate builder.
func (_u *DTCRelatedSensorUpdateOne) Where(ps ...predicate.DTCRelatedSensor) *DTCRelatedSensorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DTCRelatedSensorUpdateOne) Select(field string, fields ...string) *DTCRelatedSensorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DTCRelatedSensor entity.
func (_u *DTCRelatedSensorUpdateOne) Save(ctx context.Context) (*DTCRelatedSensor, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DTCRelatedSensorUpdateOne) SaveX(ctx context.Context) *DTCRelatedSensor {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DTCRelatedSensorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DTCRelatedSensorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DTCRelatedSensorUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := dtcrelatedsensor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *DTCRelatedSensorUpdateOne) sqlSave(ctx context.Context) (_node *DTCRelatedSensor, err error) {
	_spec := sqlgraph.NewUpdateSpec(dtcrelatedsensor.Table, dtcrelatedsensor.Columns, sqlgraph.NewFieldSpec(dtcrelatedsensor.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DTCRelatedSensor.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dtcrelatedsensor.FieldID)
		for _, f := range fields {
			if !dtcrelatedsensor.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != dtcrelatedsensor.FieldID {
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
	if value, ok := _u.mutation.DtcMasterID(); ok {
		_spec.SetField(dtcrelatedsensor.FieldDtcMasterID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SensorID(); ok {
		_spec.SetField(dtcrelatedsensor.FieldSensorID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PriorityRank(); ok {
		_spec.SetField(dtcrelatedsensor.FieldPriorityRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriorityRank(); ok {
		_spec.AddField(dtcrelatedsensor.FieldPriorityRank, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EvidenceCount(); ok {
		_spec.SetField(dtcrelatedsensor.FieldEvidenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEvidenceCount(); ok {
		_spec.AddField(dtcrelatedsensor.FieldEvidenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgTrust(); ok {
		_spec.SetField(dtcrelatedsensor.FieldAvgTrust, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgTrust(); ok {
		_spec.AddField(dtcrelatedsensor.FieldAvgTrust, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AvgRelevance(); ok {
		_spec.SetField(dtcrelatedsensor.FieldAvgRelevance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgRelevance(); ok {
		_spec.AddField(dtcrelatedsensor.FieldAvgRelevance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ConflictFlag(); ok {
		_spec.SetField(dtcrelatedsensor.FieldConflictFlag, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(dtcrelatedsensor.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &DTCRelatedSensor{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dtcrelatedsensor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
