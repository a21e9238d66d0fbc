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
	"github.com/autodiag/refinery/ent/dtccause"
	"github.com/autodiag/refinery/ent/predicate"
)

// DTCCauseUpdate is the builder for updating DTCCause entities.
type DTCCauseUpdate struct {
	config
	hooks    []Hook
	mutation *DTCCauseMutation
}

// Where appends a list predicates to the DTCCauseUpdate builder.
func (_u *DTCCauseUpdate) Where(ps ...predicate.DTCCause) *DTCCauseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDtcMasterID sets the "dtc_master_id" field.
func (_u *DTCCauseUpdate) SetDtcMasterID(v string) *DTCCauseUpdate {
	_u.mutation.SetDtcMasterID(v)
	return _u
}

// SetNillableDtcMasterID sets the "dtc_master_id" field if the given value is not nil.
func (_u *DTCCauseUpdate) SetNillableDtcMasterID(v *string) *DTCCauseUpdate {
	if v != nil {
		_u.SetDtcMasterID(*v)
	}
	return _u
}

// SetCause sets the "cause" field.
func (_u *DTCCauseUpdate) SetCause(v string) *DTCCauseUpdate {
	_u.mutation.SetCause(v)
	return _u
}

// SetNillableCause sets the "cause" field if the given value is not nil.
func (_u *DTCCauseUpdate) SetNillableCause(v *string) *DTCCauseUpdate {
	if v != nil {
		_u.SetCause(*v)
	}
	return _u
}

// SetFingerprint sets the "fingerprint" field.
func (_u *DTCCauseUpdate) SetFingerprint(v string) *DTCCauseUpdate {
	_u.mutation.SetFingerprint(v)
	return _u
}

// SetNillableFingerprint sets the "fingerprint" field if the given value is not nil.
func (_u *DTCCauseUpdate) SetNillableFingerprint(v *string) *DTCCauseUpdate {
	if v != nil {
		_u.SetFingerprint(*v)
	}
	return _u
}

// SetProbabilityWeight sets the "probability_weight" field.
func (_u *DTCCauseUpdate) SetProbabilityWeight(v float64) *DTCCauseUpdate {
	_u.mutation.ResetProbabilityWeight()
	_u.mutation.SetProbabilityWeight(v)
	return _u
}

// SetNillableProbabilityWeight sets the "probability_weight" field if the given value is not nil.
func (_u *DTCCauseUpdate) SetNillableProbabilityWeight(v *float64) *DTCCauseUpdate {
	if v != nil {
		_u.SetProbabilityWeight(*v)
	}
	return _u
}

// AddProbabilityWeight adds value to the "probability_weight" field.
func (_u *DTCCauseUpdate) AddProbabilityWeight(v float64) *DTCCauseUpdate {
	_u.mutation.AddProbabilityWeight(v)
	return _u
}

// SetEvidenceCount sets the "evidence_count" field.
func (_u *DTCCauseUpdate) SetEvidenceCount(v int) *DTCCauseUpdate {
	_u.mutation.ResetEvidenceCount()
	_u.mutation.SetEvidenceCount(v)
	return _u
}

// SetNillableEvidenceCount sets the "evidence_count" field if the given value is not nil.
func (_u *DTCCauseUpdate) SetNillableEvidenceCount(v *int) *DTCCauseUpdate {
	if v != nil {
		_u.SetEvidenceCount(*v)
	}
	return _u
}

// AddEvidenceCount adds value to the "evidence_count" field.
func (_u *DTCCauseUpdate) AddEvidenceCount(v int) *DTCCauseUpdate {
	_u.mutation.AddEvidenceCount(v)
	return _u
}

// SetAvgTrust sets the "avg_trust" field.
func (_u *DTCCauseUpdate) SetAvgTrust(v float64) *DTCCauseUpdate {
	_u.mutation.ResetAvgTrust()
	_u.mutation.SetAvgTrust(v)
	return _u
}

// SetNillableAvgTrust sets the "avg_trust" field if the given value is not nil.
func (_u *DTCCauseUpdate) SetNillableAvgTrust(v *float64) *DTCCauseUpdate {
	if v != nil {
		_u.SetAvgTrust(*v)
	}
	return _u
}

// AddAvgTrust adds value to the "avg_trust" field.
func (_u *DTCCauseUpdate) AddAvgTrust(v float64) *DTCCauseUpdate {
	_u.mutation.AddAvgTrust(v)
	return _u
}

// SetAvgRelevance sets the "avg_relevance" field.
func (_u *DTCCauseUpdate) SetAvgRelevance(v float64) *DTCCauseUpdate {
	_u.mutation.ResetAvgRelevance()
	_u.mutation.SetAvgRelevance(v)
	return _u
}

// SetNillableAvgRelevance sets the "avg_relevance" field if the given value is not nil.
func (_u *DTCCauseUpdate) SetNillableAvgRelevance(v *float64) *DTCCauseUpdate {
	if v != nil {
		_u.SetAvgRelevance(*v)
	}
	return _u
}

// AddAvgRelevance adds value to the "avg_relevance" field.
func (_u *DTCCauseUpdate) AddAvgRelevance(v float64) *DTCCauseUpdate {
	_u.mutation.AddAvgRelevance(v)
	return _u
}

// SetConflictFlag sets the "conflict_flag" field.
func (_u *DTCCauseUpdate) SetConflictFlag(v bool) *DTCCauseUpdate {
	_u.mutation.SetConflictFlag(v)
	return _u
}

// SetNillableConflictFlag sets the "conflict_flag" field if the given value is not nil.
func (_u *DTCCauseUpdate) SetNillableConflictFlag(v *bool) *DTCCauseUpdate {
	if v != nil {
		_u.SetConflictFlag(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DTCCauseUpdate) SetUpdatedAt(v time.Time) *DTCCauseUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DTCCauseMutation object of the builder.
func (_u *DTCCauseUpdate) Mutation() *DTCCauseMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DTCCauseUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DTCCauseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DTCCauseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DTCCauseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DTCCauseUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := dtccause.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DTCCauseUpdate) check() error {
	if v, ok := _u.mutation.ProbabilityWeight(); ok {
		if err := dtccause.ProbabilityWeightValidator(v); err != nil {
			return &ValidationError{Name: "probability_weight", err: fmt.Errorf(`ent: validator failed for field "DTCCause.probability_weight": %w`, err)}
		}
	}
	return nil
}

func (_u *DTCCauseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dtccause.Table, dtccause.Columns, sqlgraph.NewFieldSpec(dtccause.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DtcMasterID(); ok {
		_spec.SetField(dtccause.FieldDtcMasterID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Cause(); ok {
		_spec.SetField(dtccause.FieldCause, field.TypeString, value)
	}
	if value, ok := _u.mutation.Fingerprint(); ok {
		_spec.SetField(dtccause.FieldFingerprint, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProbabilityWeight(); ok {
		_spec.SetField(dtccause.FieldProbabilityWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProbabilityWeight(); ok {
		_spec.AddField(dtccause.FieldProbabilityWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EvidenceCount(); ok {
		_spec.SetField(dtccause.FieldEvidenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEvidenceCount(); ok {
		_spec.AddField(dtccause.FieldEvidenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgTrust(); ok {
		_spec.SetField(dtccause.FieldAvgTrust, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgTrust(); ok {
		_spec.AddField(dtccause.FieldAvgTrust, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AvgRelevance(); ok {
		_spec.SetField(dtccause.FieldAvgRelevance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgRelevance(); ok {
		_spec.AddField(dtccause.FieldAvgRelevance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ConflictFlag(); ok {
		_spec.SetField(dtccause.FieldConflictFlag, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(dtccause.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dtccause.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DTCCauseUpdateOne is the builder for updating a single DTCCause entity.
type DTCCauseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DTCCauseMutation
}

// SetDtcMasterID sets the "dtc_master_id" field.
func (_u *DTCCauseUpdateOne) SetDtcMasterID(v string) *DTCCauseUpdateOne {
	_u.mutation.SetDtcMasterID(v)
	return _u
}

// SetNillableDtcMasterID sets the "dtc_master_id" field if the given value is not nil.
func (_u *DTCCauseUpdateOne) SetNillableDtcMasterID(v *string) *DTCCauseUpdateOne {
	if v != nil {
		_u.SetDtcMasterID(*v)
	}
	return _u
}

// SetCause sets the "cause" field.
func (_u *DTCCauseUpdateOne) SetCause(v string) *DTCCauseUpdateOne {
	_u.mutation.SetCause(v)
	return _u
}

// SetNillableCause sets the "cause" field if the given value is not nil.
func (_u *DTCCauseUpdateOne) SetNillableCause(v *string) *DTCCauseUpdateOne {
	if v != nil {
		_u.SetCause(*v)
	}
	return _u
}

// SetFingerprint sets the "fingerprint" field.
func (_u *DTCCauseUpdateOne) SetFingerprint(v string) *DTCCauseUpdateOne {
	_u.mutation.SetFingerprint(v)
	return _u
}

// SetNillableFingerprint sets the "fingerprint" field if the given value is not nil.
func (_u *DTCCauseUpdateOne) SetNillableFingerprint(v *string) *DTCCauseUpdateOne {
	if v != nil {
		_u.SetFingerprint(*v)
	}
	return _u
}

// SetProbabilityWeight sets the "probability_weight" field.
func (_u *DTCCauseUpdateOne) SetProbabilityWeight(v float64) *DTCCauseUpdateOne {
	_u.mutation.ResetProbabilityWeight()
	_u.mutation.SetProbabilityWeight(v)
	return _u
}

// SetNillableProbabilityWeight sets the "probability_weight" field if the given value is not nil.
func (_u *DTCCauseUpdateOne) SetNillableProbabilityWeight(v *float64) *DTCCauseUpdateOne {
	if v != nil {
		_u.SetProbabilityWeight(*v)
	}
	return _u
}

// AddProbabilityWeight adds value to the "probability_weight" field.
func (_u *DTCCauseUpdateOne) AddProbabilityWeight(v float64) *DTCCauseUpdateOne {
	_u.mutation.AddProbabilityWeight(v)
	return _u
}

// SetEvidenceCount sets the "evidence_count" field.
func (_u *DTCCauseUpdateOne) SetEvidenceCount(v int) *DTCCauseUpdateOne {
	_u.mutation.ResetEvidenceCount()
	_u.mutation.SetEvidenceCount(v)
	return _u
}

// SetNillableEvidenceCount sets the "evidence_count" field if the given value is not nil.
func (_u *DTCCauseUpdateOne) SetNillableEvidenceCount(v *int) *DTCCauseUpdateOne {
	if v != nil {
		_u.SetEvidenceCount(*v)
	}
	return _u
}

// AddEvidenceCount adds value to the "evidence_count" field.
func (_u *DTCCauseUpdateOne) AddEvidenceCount(v int) *DTCCauseUpdateOne {
	_u.mutation.AddEvidenceCount(v)
	return _u
}

// SetAvgTrust sets the "avg_trust" field.
func (_u *DTCCauseUpdateOne) SetAvgTrust(v float64) *DTCCauseUpdateOne {
	_u.mutation.ResetAvgTrust()
	_u.mutation.SetAvgTrust(v)
	return _u
}

// SetNillableAvgTrust sets the "avg_trust" field if the given value is not nil.
func (_u *DTCCauseUpdateOne) SetNillableAvgTrust(v *float64) *DTCCauseUpdateOne {
	if v != nil {
		_u.SetAvgTrust(*v)
	}
	return _u
}

// AddAvgTrust adds value to the "avg_trust" field.
func (_u *DTCCauseUpdateOne) AddAvgTrust(v float64) *DTCCauseUpdateOne {
	_u.mutation.AddAvgTrust(v)
	return _u
}

// SetAvgRelevance sets the "avg_relevance" field.
func (_u *DTCCauseUpdateOne) SetAvgRelevance(v float64) *DTCCauseUpdateOne {
	_u.mutation.ResetAvgRelevance()
	_u.mutation.SetAvgRelevance(v)
	return _u
}

// SetNillableAvgRelevance sets the "avg_relevance" field if the given value is not nil.
func (_u *DTCCauseUpdateOne) SetNillableAvgRelevance(v *float64) *DTCCauseUpdateOne {
	if v != nil {
		_u.SetAvgRelevance(*v)
	}
	return _u
}

// AddAvgRelevance adds value to the "avg_relevance" field.
func (_u *DTCCauseUpdateOne) AddAvgRelevance(v float64) *DTCCauseUpdateOne {
	_u.mutation.AddAvgRelevance(v)
	return _u
}

// SetConflictFlag sets the "conflict_flag" field.
func (_u *DTCCauseUpdateOne) SetConflictFlag(v bool) *DTCCauseUpdateOne {
	_u.mutation.SetConflictFlag(v)
	return _u
}

// SetNillableConflictFlag sets the "conflict_flag" field if the given value is not nil.
func (_u *DTCCauseUpdateOne) SetNillableConflictFlag(v *bool) *DTCCauseUpdateOne {
	if v != nil {
		_u.SetConflictFlag(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DTCCauseUpdateOne) SetUpdatedAt(v time.Time) *DTCCauseUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DTCCauseMutation object of the builder.
func (_u *DTCCauseUpdateOne) Mutation() *DTCCauseMutation {
	return _u.mutation
}

// Where appends a list predicates to the DTCCauseUpdate builder.
func (_u *DTCCauseUpdateOne) Where(ps ...predicate.DTCCause) *DTCCauseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DTCCauseUpdateOne) Select(field string, fields ...string) *DTCCauseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DTCCause entity.
func (_u *DTCCauseUpdateOne) Save(ctx context.Context) (*DTCCause, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DTCCauseUpdateOne) SaveX(ctx context.Context) *DTCCause {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DTCCauseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DTCCauseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DTCCauseUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := dtccause.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DTCCauseUpdateOne) check() error {
	if v, ok := _u.mutation.ProbabilityWeight(); ok {
		if err := dtccause.ProbabilityWeightValidator(v); err != nil {
			return &ValidationError{Name: "probability_weight", err: fmt.Errorf(`ent: validator failed for field "DTCCause.probability_weight": %w`, err)}
		}
	}
	return nil
}

func (_u *DTCCauseUpdateOne) sqlSave(ctx context.Context) (_node *DTCCause, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dtccause.Table, dtccause.Columns, sqlgraph.NewFieldSpec(dtccause.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DTCCause.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dtccause.FieldID)
		for _, f := range fields {
			if !dtccause.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != dtccause.FieldID {
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
		_spec.SetField(dtccause.FieldDtcMasterID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Cause(); ok {
		_spec.SetField(dtccause.FieldCause, field.TypeString, value)
	}
	if value, ok := _u.mutation.Fingerprint(); ok {
		_spec.SetField(dtccause.FieldFingerprint, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProbabilityWeight(); ok {
		_spec.SetField(dtccause.FieldProbabilityWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProbabilityWeight(); ok {
		_spec.AddField(dtccause.FieldProbabilityWeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EvidenceCount(); ok {
		_spec.SetField(dtccause.FieldEvidenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEvidenceCount(); ok {
		_spec.AddField(dtccause.FieldEvidenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgTrust(); ok {
		_spec.SetField(dtccause.FieldAvgTrust, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgTrust(); ok {
		_spec.AddField(dtccause.FieldAvgTrust, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AvgRelevance(); ok {
		_spec.SetField(dtccause.FieldAvgRelevance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgRelevance(); ok {
		_spec.AddField(dtccause.FieldAvgRelevance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ConflictFlag(); ok {
		_spec.SetField(dtccause.FieldConflictFlag, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(dtccause.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &DTCCause{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dtccause.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
