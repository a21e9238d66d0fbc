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
	"github.com/autodiag/refinery/ent/dtcdiagnosticstep"
	"github.com/autodiag/refinery/ent/predicate"
)

// DTCDiagnosticStepUpdate is the builder for updating DTCDiagnosticStep entities.
type DTCDiagnosticStepUpdate struct {
	config
	hooks    []Hook
	mutation *DTCDiagnosticStepMutation
}

// Where appends a list predicates to the DTCDiagnosticStepUpdate builder.
func (_u *DTCDiagnosticStepUpdate) Where(ps ...predicate.DTCDiagnosticStep) *DTCDiagnosticStepUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDtcMasterID sets the "dtc_master_id" field.
func (_u *DTCDiagnosticStepUpdate) SetDtcMasterID(v string) *DTCDiagnosticStepUpdate {
	_u.mutation.SetDtcMasterID(v)
	return _u
}

// SetNillableDtcMasterID sets the "dtc_master_id" field if the given value is not nil.
func (_u *DTCDiagnosticStepUpdate) SetNillableDtcMasterID(v *string) *DTCDiagnosticStepUpdate {
	if v != nil {
		_u.SetDtcMasterID(*v)
	}
	return _u
}

// SetStepOrder sets the "step_order" field.
func (_u *DTCDiagnosticStepUpdate) SetStepOrder(v int) *DTCDiagnosticStepUpdate {
	_u.mutation.ResetStepOrder()
	_u.mutation.SetStepOrder(v)
	return _u
}

// SetNillableStepOrder sets the "step_order" field if the given value is not nil.
func (_u *DTCDiagnosticStepUpdate) SetNillableStepOrder(v *int) *DTCDiagnosticStepUpdate {
	if v != nil {
		_u.SetStepOrder(*v)
	}
	return _u
}

// AddStepOrder adds value to the "step_order" field.
func (_u *DTCDiagnosticStepUpdate) AddStepOrder(v int) *DTCDiagnosticStepUpdate {
	_u.mutation.AddStepOrder(v)
	return _u
}

// SetInstruction sets the "instruction" field.
func (_u *DTCDiagnosticStepUpdate) SetInstruction(v string) *DTCDiagnosticStepUpdate {
	_u.mutation.SetInstruction(v)
	return _u
}

// SetNillableInstruction sets the "instruction" field if the given value is not nil.
func (_u *DTCDiagnosticStepUpdate) SetNillableInstruction(v *string) *DTCDiagnosticStepUpdate {
	if v != nil {
		_u.SetInstruction(*v)
	}
	return _u
}

// SetFingerprint sets the "fingerprint" field.
func (_u *DTCDiagnosticStepUpdate) SetFingerprint(v string) *DTCDiagnosticStepUpdate {
	_u.mutation.SetFingerprint(v)
	return _u
}

// SetNillableFingerprint sets the "fingerprint" field if the given value is not nil.
func (_u *DTCDiagnosticStepUpdate) SetNillableFingerprint(v *string) *DTCDiagnosticStepUpdate {
	if v != nil {
		_u.SetFingerprint(*v)
	}
	return _u
}

// SetToolsRequired sets the "tools_required" field.
func (_u *DTCDiagnosticStepUpdate) SetToolsRequired(v string) *DTCDiagnosticStepUpdate {
	_u.mutation.SetToolsRequired(v)
	return _u
}

// SetNillableToolsRequired sets the "tools_required" field if the given value is not nil.
func (_u *DTCDiagnosticStepUpdate) SetNillableToolsRequired(v *string) *DTCDiagnosticStepUpdate {
	if v != nil {
		_u.SetToolsRequired(*v)
	}
	return _u
}

// ClearToolsRequired clears the value of the "tools_required" field.
func (_u *DTCDiagnosticStepUpdate) ClearToolsRequired() *DTCDiagnosticStepUpdate {
	_u.mutation.ClearToolsRequired()
	return _u
}

// SetExpectedValues sets the "expected_values" field.
func (_u *DTCDiagnosticStepUpdate) SetExpectedValues(v string) *DTCDiagnosticStepUpdate {
	_u.mutation.SetExpectedValues(v)
	return _u
}

// SetNillableExpectedValues sets the "expected_values" field if the given value is not nil.
func (_u *DTCDiagnosticStepUpdate) SetNillableExpectedValues(v *string) *DTCDiagnosticStepUpdate {
	if v != nil {
		_u.SetExpectedValues(*v)
	}
	return _u
}

// ClearExpectedValues clears the value of the "expected_values" field.
func (_u *DTCDiagnosticStepUpdate) ClearExpectedValues() *DTCDiagnosticStepUpdate {
	_u.mutation.ClearExpectedValues()
	return _u
}

// SetPassNextStepID sets the "pass_next_step_id" field.
func (_u *DTCDiagnosticStepUpdate) SetPassNextStepID(v string) *DTCDiagnosticStepUpdate {
	_u.mutation.SetPassNextStepID(v)
	return _u
}

// SetNillablePassNextStepID sets the "pass_next_step_id" field if the given value is not nil.
func (_u *DTCDiagnosticStepUpdate) SetNillablePassNextStepID(v *string) *DTCDiagnosticStepUpdate {
	if v != nil {
		_u.SetPassNextStepID(*v)
	}
	return _u
}

// ClearPassNextStepID clears the value of the "pass_next_step_id" field.
func (_u *DTCDiagnosticStepUpdate) ClearPassNextStepID() *DTCDiagnosticStepUpdate {
	_u.mutation.ClearPassNextStepID()
	return _u
}

// SetFailNextStepID sets the "fail_next_step_id" field.
func (_u *DTCDiagnosticStepUpdate) SetFailNextStepID(v string) *DTCDiagnosticStepUpdate {
	_u.mutation.SetFailNextStepID(v)
	return _u
}

// SetNillableFailNextStepID sets the "fail_next_step_id" field if the given value is not nil.
func (_u *DTCDiagnosticStepUpdate) SetNillableFailNextStepID(v *string) *DTCDiagnosticStepUpdate {
	if v != nil {
		_u.SetFailNextStepID(*v)
	}
	return _u
}

// ClearFailNextStepID clears the value of the "fail_next_step_id" field.
func (_u *DTCDiagnosticStepUpdate) ClearFailNextStepID() *DTCDiagnosticStepUpdate {
	_u.mutation.ClearFailNextStepID()
	return _u
}

// SetEvidenceCount sets the "evidence_count" field.
func (_u *DTCDiagnosticStepUpdate) SetEvidenceCount(v int) *DTCDiagnosticStepUpdate {
	_u.mutation.ResetEvidenceCount()
	_u.mutation.SetEvidenceCount(v)
	return _u
}

// SetNillableEvidenceCount sets the "evidence_count" field if the given value is not nil.
func (_u *DTCDiagnosticStepUpdate) SetNillableEvidenceCount(v *int) *DTCDiagnosticStepUpdate {
	if v != nil {
		_u.SetEvidenceCount(*v)
	}
	return _u
}

// AddEvidenceCount adds value to the "evidence_count" field.
func (_u *DTCDiagnosticStepUpdate) AddEvidenceCount(v int) *DTCDiagnosticStepUpdate {
	_u.mutation.AddEvidenceCount(v)
	return _u
}

// SetAvgTrust sets the "avg_trust" field.
func (_u *DTCDiagnosticStepUpdate) SetAvgTrust(v float64) *DTCDiagnosticStepUpdate {
	_u.mutation.ResetAvgTrust()
	_u.mutation.SetAvgTrust(v)
	return _u
}

// SetNillableAvgTrust sets the "avg_trust" field if the given value is not nil.
func (_u *DTCDiagnosticStepUpdate) SetNillableAvgTrust(v *float64) *DTCDiagnosticStepUpdate {
	if v != nil {
		_u.SetAvgTrust(*v)
	}
	return _u
}

// AddAvgTrust adds value to the "avg_trust" field.
func (_u *DTCDiagnosticStepUpdate) AddAvgTrust(v float64) *DTCDiagnosticStepUpdate {
	_u.mutation.AddAvgTrust(v)
	return _u
}

// SetAvgRelevance sets the "avg_relevance" field.
func (_u *DTCDiagnosticStepUpdate) SetAvgRelevance(v float64) *DTCDiagnosticStepUpdate {
	_u.mutation.ResetAvgRelevance()
	_u.mutation.SetAvgRelevance(v)
	return _u
}

// SetNillableAvgRelevance sets the "avg_relevance" field if the given value is not nil.
func (_u *DTCDiagnosticStepUpdate) SetNillableAvgRelevance(v *float64) *DTCDiagnosticStepUpdate {
	if v != nil {
		_u.SetAvgRelevance(*v)
	}
	return _u
}

// AddAvgRelevance adds value to the "avg_relevance" field.
func (_u *DTCDiagnosticStepUpdate) AddAvgRelevance(v float64) *DTCDiagnosticStepUpdate {
	_u.mutation.AddAvgRelevance(v)
	return _u
}

// SetConflictFlag sets the "conflict_flag" field.
func (_u *DTCDiagnosticStepUpdate) SetConflictFlag(v bool) *DTCDiagnosticStepUpdate {
	_u.mutation.SetConflictFlag(v)
	return _u
}

// SetNillableConflictFlag sets the "conflict_flag" field if the given value is not nil.
func (_u *DTCDiagnosticStepUpdate) SetNillableConflictFlag(v *bool) *DTCDiagnosticStepUpdate {
	if v != nil {
		_u.SetConflictFlag(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DTCDiagnosticStepUpdate) SetUpdatedAt(v time.Time) *DTCDiagnosticStepUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DTCDiagnosticStepMutation object of the builder.
func (_u *DTCDiagnosticStepUpdate) Mutation() *DTCDiagnosticStepMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DTCDiagnosticStepUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DTCDiagnosticStepUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DTCDiagnosticStepUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DTCDiagnosticStepUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DTCDiagnosticStepUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := dtcdiagnosticstep.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *DTCDiagnosticStepUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(dtcdiagnosticstep.Table, dtcdiagnosticstep.Columns, sqlgraph.NewFieldSpec(dtcdiagnosticstep.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DtcMasterID(); ok {
		_spec.SetField(dtcdiagnosticstep.FieldDtcMasterID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepOrder(); ok {
		_spec.SetField(dtcdiagnosticstep.FieldStepOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepOrder(); ok {
		_spec.AddField(dtcdiagnosticstep.FieldStepOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Instruction(); ok {
		_spec.SetField(dtcdiagnosticstep.FieldInstruction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Fingerprint(); ok {
		_spec.SetField(dtcdiagnosticstep.FieldFingerprint, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToolsRequired(); ok {
		_spec.SetField(dtcdiagnosticstep.FieldToolsRequired, field.TypeString, value)
	}
	if _u.mutation.ToolsRequiredCleared() {
		_spec.ClearField(dtcdiagnosticstep.FieldToolsRequired, field.TypeString)
	}
	if value, ok := _u.mutation.ExpectedValues(); ok {
		_spec.SetField(dtcdiagnosticstep.FieldExpectedValues, field.TypeString, value)
	}
	if _u.mutation.ExpectedValuesCleared() {
		_spec.ClearField(dtcdiagnosticstep.FieldExpectedValues, field.TypeString)
	}
	if value, ok := _u.mutation.PassNextStepID(); ok {
		_spec.SetField(dtcdiagnosticstep.FieldPassNextStepID, field.TypeString, value)
	}
	if _u.mutation.PassNextStepIDCleared() {
		_spec.ClearField(dtcdiagnosticstep.FieldPassNextStepID, field.TypeString)
	}
	if value, ok := _u.mutation.FailNextStepID(); ok {
		_spec.SetField(dtcdiagnosticstep.FieldFailNextStepID, field.TypeString, value)
	}
	if _u.mutation.FailNextStepIDCleared() {
		_spec.ClearField(dtcdiagnosticstep.FieldFailNextStepID, field.TypeString)
	}
	if value, ok := _u.mutation.EvidenceCount(); ok {
		_spec.SetField(dtcdiagnosticstep.FieldEvidenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEvidenceCount(); ok {
		_spec.AddField(dtcdiagnosticstep.FieldEvidenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgTrust(); ok {
		_spec.SetField(dtcdiagnosticstep.FieldAvgTrust, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgTrust(); ok {
		_spec.AddField(dtcdiagnosticstep.FieldAvgTrust, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AvgRelevance(); ok {
		_spec.SetField(dtcdiagnosticstep.FieldAvgRelevance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgRelevance(); ok {
		_spec.AddField(dtcdiagnosticstep.FieldAvgRelevance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ConflictFlag(); ok {
		_spec.SetField(dtcdiagnosticstep.FieldConflictFlag, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(dtcdiagnosticstep.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dtcdiagnosticstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DTCDiagnosticStepUpdateOne is the builder for updating a single DTCDiagnosticStep entity.
type DTCDiagnosticStepUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DTCDiagnosticStepMutation
}

// SetDtcMasterID sets the "dtc_master_id" field.
func (_u *DTCDiagnosticStepUpdateOne) SetDtcMasterID(v string) *DTCDiagnosticStepUpdateOne {
	_u.mutation.SetDtcMasterID(v)
	return _u
}

// SetNillableDtcMasterID sets the "dtc_master_id" field if the given value is not nil.
func (_u *DTCDiagnosticStepUpdateOne) SetNillableDtcMasterID(v *string) *DTCDiagnosticStepUpdateOne {
	if v != nil {
		_u.SetDtcMasterID(*v)
	}
	return _u
}

// SetStepOrder sets the "step_order" field.
func (_u *DTCDiagnosticStepUpdateOne) SetStepOrder(v int) *DTCDiagnosticStepUpdateOne {
	_u.mutation.ResetStepOrder()
	_u.mutation.SetStepOrder(v)
	return _u
}

// SetNillableStepOrder sets the "step_order" field if the given value is not nil.
func (_u *DTCDiagnosticStepUpdateOne) SetNillableStepOrder(v *int) *DTCDiagnosticStepUpdateOne {
	if v != nil {
		_u.SetStepOrder(*v)
	}
	return _u
}

// AddStepOrder adds value to the "step_order" field.
func (_u *DTCDiagnosticStepUpdateOne) AddStepOrder(v int) *DTCDiagnosticStepUpdateOne {
	_u.mutation.AddStepOrder(v)
	return _u
}

// SetInstruction sets the "instruction" field.
func (_u *DTCDiagnosticStepUpdateOne) SetInstruction(v string) *DTCDiagnosticStepUpdateOne {
	_u.mutation.SetInstruction(v)
	return _u
}

// SetNillableInstruction sets the "instruction" field if the given value is not nil.
func (_u *DTCDiagnosticStepUpdateOne) SetNillableInstruction(v *string) *DTCDiagnosticStepUpdateOne {
	if v != nil {
		_u.SetInstruction(*v)
	}
	return _u
}

// SetFingerprint sets the "fingerprint" field.
func (_u *DTCDiagnosticStepUpdateOne) SetFingerprint(v string) *DTCDiagnosticStepUpdateOne {
	_u.mutation.SetFingerprint(v)
	return _u
}

// SetNillableFingerprint sets the "fingerprint" field if the given value is not nil.
func (_u *DTCDiagnosticStepUpdateOne) SetNillableFingerprint(v *string) *DTCDiagnosticStepUpdateOne {
	if v != nil {
		_u.SetFingerprint(*v)
	}
	return _u
}

// SetToolsRequired sets the "tools_required" field.
func (_u *DTCDiagnosticStepUpdateOne) SetToolsRequired(v string) *DTCDiagnosticStepUpdateOne {
	_u.mutation.SetToolsRequired(v)
	return _u
}

// SetNillableToolsRequired sets the "tools_required" field if the given value is not nil.
func (_u *DTCDiagnosticStepUpdateOne) SetNillableToolsRequired(v *string) *DTCDiagnosticStepUpdateOne {
	if v != nil {
		_u.SetToolsRequired(*v)
	}
	return _u
}

// ClearToolsRequired clears the value of the "tools_required" field.
func (_u *DTCDiagnosticStepUpdateOne) ClearToolsRequired() *DTCDiagnosticStepUpdateOne {
	_u.mutation.ClearToolsRequired()
	return _u
}

// SetExpectedValues sets the "expected_values" field.
func (_u *DTCDiagnosticStepUpdateOne) SetExpectedValues(v string) *DTCDiagnosticStepUpdateOne {
	_u.mutation.SetExpectedValues(v)
	return _u
}

// SetNillableExpectedValues sets the "expected_values" field if the given value is not nil.
func (_u *DTCDiagnosticStepUpdateOne) SetNillableExpectedValues(v *string) *DTCDiagnosticStepUpdateOne {
	if v != nil {
		_u.SetExpectedValues(*v)
	}
	return _u
}

// ClearExpectedValues clears the value of the "expected_values" field.
func (_u *DTCDiagnosticStepUpdateOne) ClearExpectedValues() *DTCDiagnosticStepUpdateOne {
	_u.mutation.ClearExpectedValues()
	return _u
}

// SetPassNextStepID sets the "pass_next_step_id" field.
func (_u *DTCDiagnosticStepUpdateOne) SetPassNextStepID(v string) *DTCDiagnosticStepUpdateOne {
	_u.mutation.SetPassNextStepID(v)
	return _u
}

// SetNillablePassNextStepID sets the "pass_next_step_id" field if the given value is not nil.
func (_u *DTCDiagnosticStepUpdateOne) SetNillablePassNextStepID(v *string) *DTCDiagnosticStepUpdateOne {
	if v != nil {
		_u.SetPassNextStepID(*v)
	}
	return _u
}

// ClearPassNextStepID clears the value of the "pass_next_step_id" field.
func (_u *DTCDiagnosticStepUpdateOne) ClearPassNextStepID() *DTCDiagnosticStepUpdateOne {
	_u.mutation.ClearPassNextStepID()
	return _u
}

// SetFailNextStepID sets the "fail_next_step_id" field.
func (_u *DTCDiagnosticStepUpdateOne) SetFailNextStepID(v string) *DTCDiagnosticStepUpdateOne {
	_u.mutation.SetFailNextStepID(v)
	return _u
}

// SetNillableFailNextStepID sets the "fail_next_step_id" field if the given value is not nil.
func (_u *DTCDiagnosticStepUpdateOne) SetNillableFailNextStepID(v *string) *DTCDiagnosticStepUpdateOne {
	if v != nil {
		_u.SetFailNextStepID(*v)
	}
	return _u
}

// ClearFailNextStepID clears the value of the "fail_next_step_id" field.
func (_u *DTCDiagnosticStepUpdateOne) ClearFailNextStepID() *DTCDiagnosticStepUpdateOne {
	_u.mutation.ClearFailNextStepID()
	return _u
}

// SetEvidenceCount sets the "evidence_count" field.
func (_u *DTCDiagnosticStepUpdateOne) SetEvidenceCount(v int) *DTCDiagnosticStepUpdateOne {
	_u.mutation.ResetEvidenceCount()
	_u.mutation.SetEvidenceCount(v)
	return _u
}

// SetNillableEvidenceCount sets the "evidence_count" field if the given value is not nil.
func (_u *DTCDiagnosticStepUpdateOne) SetNillableEvidenceCount(v *int) *DTCDiagnosticStepUpdateOne {
	if v != nil {
		_u.SetEvidenceCount(*v)
	}
	return _u
}

// AddEvidenceCount adds value to the "evidence_count" field.
func (_u *DTCDiagnosticStepUpdateOne) AddEvidenceCount(v int) *DTCDiagnosticStepUpdateOne {
	_u.mutation.AddEvidenceCount(v)
	return _u
}

// SetAvgTrust sets the "avg_trust" field.
func (_u *DTCDiagnosticStepUpdateOne) SetAvgTrust(v float64) *DTCDiagnosticStepUpdateOne {
	_u.mutation.ResetAvgTrust()
	_u.mutation.SetAvgTrust(v)
	return _u
}

// SetNillableAvgTrust sets the "avg_trust" field if the given value is not nil.
func (_u *DTCDiagnosticStepUpdateOne) SetNillableAvgTrust(v *float64) *DTCDiagnosticStepUpdateOne {
	if v != nil {
		_u.SetAvgTrust(*v)
	}
	return _u
}

// AddAvgTrust adds value to the "avg_trust" field.
func (_u *DTCDiagnosticStepUpdateOne) AddAvgTrust(v float64) *DTCDiagnosticStepUpdateOne {
	_u.mutation.AddAvgTrust(v)
	return _u
}

// SetAvgRelevance sets the "avg_relevance" field.
func (_u *DTCDiagnosticStepUpdateOne) SetAvgRelevance(v float64) *DTCDiagnosticStepUpdateOne {
	_u.mutation.ResetAvgRelevance()
	_u.mutation.SetAvgRelevance(v)
	return _u
}

// SetNillableAvgRelevance sets the "avg_relevance" field if the given value is not nil.
func (_u *DTCDiagnosticStepUpdateOne) SetNillableAvgRelevance(v *float64) *DTCDiagnosticStepUpdateOne {
	if v != nil {
		_u.SetAvgRelevance(*v)
	}
	return _u
}

// AddAvgRelevance adds value to the "avg_relevance" field.
func (_u *DTCDiagnosticStepUpdateOne) AddAvgRelevance(v float64) *DTCDiagnosticStepUpdateOne {
	_u.mutation.AddAvgRelevance(v)
	return _u
}

// SetConflictFlag sets the "conflict_flag" field.
func (_u *DTCDiagnosticStepUpdateOne) SetConflictFlag(v bool) *DTCDiagnosticStepUpdateOne {
	_u.mutation.SetConflictFlag(v)
	return _u
}

// SetNillableConflictFlag sets the "conflict_flag" field if the given value is not nil.
func (_u *DTCDiagnosticStepUpdateOne) SetNillableConflictFlag(v *bool) *DTCDiagnosticStepUpdateOne {
	if v != nil {
		_u.SetConflictFlag(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DTCDiagnosticStepUpdateOne) SetUpdatedAt(v time.Time) *DTCDiagnosticStepUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DTCDiagnosticStepMutation object of the builder.
func (_u *DTCDiagnosticStepUpdateOne) Mutation() *DTCDiagnosticStepMutation {
	return _u.mutation
}

// Where appends a list predicates to the DTCDiagnosticStepUpdate builder.
func (_u *DTCDiagnosticStepUpdateOne) Where(ps ...predicate.DTCDiagnosticStep) *DTCDiagnosticStepUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DTCDiagnosticStepUpdateOne) Select(field string, fields ...string) *DTCDiagnosticStepUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DTCDiagnosticStep entity.
func (_u *DTCDiagnosticStepUpdateOne) Save(ctx context.Context) (*DTCDiagnosticStep, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DTCDiagnosticStepUpdateOne) SaveX(ctx context.Context) *DTCDiagnosticStep {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DTCDiagnosticStepUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DTCDiagnosticStepUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DTCDiagnosticStepUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := dtcdiagnosticstep.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *DTCDiagnosticStepUpdateOne) sqlSave(ctx context.Context) (_node *DTCDiagnosticStep, err error) {
	_spec := sqlgraph.NewUpdateSpec(dtcdiagnosticstep.Table, dtcdiagnosticstep.Columns, sqlgraph.NewFieldSpec(dtcdiagnosticstep.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DTCDiagnosticStep.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dtcdiagnosticstep.FieldID)
		for _, f := range fields {
			if !dtcdiagnosticstep.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != dtcdiagnosticstep.FieldID {
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
		_spec.SetField(dtcdiagnosticstep.FieldDtcMasterID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepOrder(); ok {
		_spec.SetField(dtcdiagnosticstep.FieldStepOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepOrder(); ok {
		_spec.AddField(dtcdiagnosticstep.FieldStepOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Instruction(); ok {
		_spec.SetField(dtcdiagnosticstep.FieldInstruction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Fingerprint(); ok {
		_spec.SetField(dtcdiagnosticstep.FieldFingerprint, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToolsRequired(); ok {
		_spec.SetField(dtcdiagnosticstep.FieldToolsRequired, field.TypeString, value)
	}
	if _u.mutation.ToolsRequiredCleared() {
		_spec.ClearField(dtcdiagnosticstep.FieldToolsRequired, field.TypeString)
	}
	if value, ok := _u.mutation.ExpectedValues(); ok {
		_spec.SetField(dtcdiagnosticstep.FieldExpectedValues, field.TypeString, value)
	}
	if _u.mutation.ExpectedValuesCleared() {
		_spec.ClearField(dtcdiagnosticstep.FieldExpectedValues, field.TypeString)
	}
	if value, ok := _u.mutation.PassNextStepID(); ok {
		_spec.SetField(dtcdiagnosticstep.FieldPassNextStepID, field.TypeString, value)
	}
	if _u.mutation.PassNextStepIDCleared() {
		_spec.ClearField(dtcdiagnosticstep.FieldPassNextStepID, field.TypeString)
	}
	if value, ok := _u.mutation.FailNextStepID(); ok {
		_spec.SetField(dtcdiagnosticstep.FieldFailNextStepID, field.TypeString, value)
	}
	if _u.mutation.FailNextStepIDCleared() {
		_spec.ClearField(dtcdiagnosticstep.FieldFailNextStepID, field.TypeString)
	}
	if value, ok := _u.mutation.EvidenceCount(); ok {
		_spec.SetField(dtcdiagnosticstep.FieldEvidenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEvidenceCount(); ok {
		_spec.AddField(dtcdiagnosticstep.FieldEvidenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgTrust(); ok {
		_spec.SetField(dtcdiagnosticstep.FieldAvgTrust, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgTrust(); ok {
		_spec.AddField(dtcdiagnosticstep.FieldAvgTrust, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AvgRelevance(); ok {
		_spec.SetField(dtcdiagnosticstep.FieldAvgRelevance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgRelevance(); ok {
		_spec.AddField(dtcdiagnosticstep.FieldAvgRelevance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ConflictFlag(); ok {
		_spec.SetField(dtcdiagnosticstep.FieldConflictFlag, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(dtcdiagnosticstep.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &DTCDiagnosticStep{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dtcdiagnosticstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
