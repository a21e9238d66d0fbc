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
	"github.com/autodiag/refinery/ent/dtcmaster"
	"github.com/autodiag/refinery/ent/predicate"
)

// DTCMasterUpdate is the builder for updating DTCMaster entities.
type DTCMasterUpdate struct {
	config
	hooks    []Hook
	mutation *DTCMasterMutation
}

// Where appends a list predicates to the DTCMasterUpdate builder.
func (_u *DTCMasterUpdate) Where(ps ...predicate.DTCMaster) *DTCMasterUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCode sets the "code" field.
func (_u *DTCMasterUpdate) SetCode(v string) *DTCMasterUpdate {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *DTCMasterUpdate) SetNillableCode(v *string) *DTCMasterUpdate {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetSystemCategory sets the "system_category" field.
func (_u *DTCMasterUpdate) SetSystemCategory(v string) *DTCMasterUpdate {
	_u.mutation.SetSystemCategory(v)
	return _u
}

// SetNillableSystemCategory sets the "system_category" field if the given value is not nil.
func (_u *DTCMasterUpdate) SetNillableSystemCategory(v *string) *DTCMasterUpdate {
	if v != nil {
		_u.SetSystemCategory(*v)
	}
	return _u
}

// SetGenericDescription sets the "generic_description" field.
func (_u *DTCMasterUpdate) SetGenericDescription(v string) *DTCMasterUpdate {
	_u.mutation.SetGenericDescription(v)
	return _u
}

// SetNillableGenericDescription sets the "generic_description" field if the given value is not nil.
func (_u *DTCMasterUpdate) SetNillableGenericDescription(v *string) *DTCMasterUpdate {
	if v != nil {
		_u.SetGenericDescription(*v)
	}
	return _u
}

// ClearGenericDescription clears the value of the "generic_description" field.
func (_u *DTCMasterUpdate) ClearGenericDescription() *DTCMasterUpdate {
	_u.mutation.ClearGenericDescription()
	return _u
}

// SetDescriptionTrust sets the "description_trust" field.
func (_u *DTCMasterUpdate) SetDescriptionTrust(v float64) *DTCMasterUpdate {
	_u.mutation.ResetDescriptionTrust()
	_u.mutation.SetDescriptionTrust(v)
	return _u
}

// SetNillableDescriptionTrust sets the "description_trust" field if the given value is not nil.
func (_u *DTCMasterUpdate) SetNillableDescriptionTrust(v *float64) *DTCMasterUpdate {
	if v != nil {
		_u.SetDescriptionTrust(*v)
	}
	return _u
}

// AddDescriptionTrust adds value to the "description_trust" field.
func (_u *DTCMasterUpdate) AddDescriptionTrust(v float64) *DTCMasterUpdate {
	_u.mutation.AddDescriptionTrust(v)
	return _u
}

// SetSeverityLevel sets the "severity_level" field.
func (_u *DTCMasterUpdate) SetSeverityLevel(v int) *DTCMasterUpdate {
	_u.mutation.ResetSeverityLevel()
	_u.mutation.SetSeverityLevel(v)
	return _u
}

// SetNillableSeverityLevel sets the "severity_level" field if the given value is not nil.
func (_u *DTCMasterUpdate) SetNillableSeverityLevel(v *int) *DTCMasterUpdate {
	if v != nil {
		_u.SetSeverityLevel(*v)
	}
	return _u
}

// AddSeverityLevel adds value to the "severity_level" field.
func (_u *DTCMasterUpdate) AddSeverityLevel(v int) *DTCMasterUpdate {
	_u.mutation.AddSeverityLevel(v)
	return _u
}

// SetEmissionsRelated sets the "emissions_related" field.
func (_u *DTCMasterUpdate) SetEmissionsRelated(v bool) *DTCMasterUpdate {
	_u.mutation.SetEmissionsRelated(v)
	return _u
}

// SetNillableEmissionsRelated sets the "emissions_related" field if the given value is not nil.
func (_u *DTCMasterUpdate) SetNillableEmissionsRelated(v *bool) *DTCMasterUpdate {
	if v != nil {
		_u.SetEmissionsRelated(*v)
	}
	return _u
}

// SetEvidenceCount sets the "evidence_count" field.
func (_u *DTCMasterUpdate) SetEvidenceCount(v int) *DTCMasterUpdate {
	_u.mutation.ResetEvidenceCount()
	_u.mutation.SetEvidenceCount(v)
	return _u
}

// SetNillableEvidenceCount sets the "evidence_count" field if the given value is not nil.
func (_u *DTCMasterUpdate) SetNillableEvidenceCount(v *int) *DTCMasterUpdate {
	if v != nil {
		_u.SetEvidenceCount(*v)
	}
	return _u
}

// AddEvidenceCount adds value to the "evidence_count" field.
func (_u *DTCMasterUpdate) AddEvidenceCount(v int) *DTCMasterUpdate {
	_u.mutation.AddEvidenceCount(v)
	return _u
}

// SetAvgTrust sets the "avg_trust" field.
func (_u *DTCMasterUpdate) SetAvgTrust(v float64) *DTCMasterUpdate {
	_u.mutation.ResetAvgTrust()
	_u.mutation.SetAvgTrust(v)
	return _u
}

// SetNillableAvgTrust sets the "avg_trust" field if the given value is not nil.
func (_u *DTCMasterUpdate) SetNillableAvgTrust(v *float64) *DTCMasterUpdate {
	if v != nil {
		_u.SetAvgTrust(*v)
	}
	return _u
}

// AddAvgTrust adds value to the "avg_trust" field.
func (_u *DTCMasterUpdate) AddAvgTrust(v float64) *DTCMasterUpdate {
	_u.mutation.AddAvgTrust(v)
	return _u
}

// SetAvgRelevance sets the "avg_relevance" field.
func (_u *DTCMasterUpdate) SetAvgRelevance(v float64) *DTCMasterUpdate {
	_u.mutation.ResetAvgRelevance()
	_u.mutation.SetAvgRelevance(v)
	return _u
}

// SetNillableAvgRelevance sets the "avg_relevance" field if the given value is not nil.
func (_u *DTCMasterUpdate) SetNillableAvgRelevance(v *float64) *DTCMasterUpdate {
	if v != nil {
		_u.SetAvgRelevance(*v)
	}
	return _u
}

// AddAvgRelevance adds value to the "avg_relevance" field.
func (_u *DTCMasterUpdate) AddAvgRelevance(v float64) *DTCMasterUpdate {
	_u.mutation.AddAvgRelevance(v)
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *DTCMasterUpdate) SetConfidenceScore(v float64) *DTCMasterUpdate {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *DTCMasterUpdate) SetNillableConfidenceScore(v *float64) *DTCMasterUpdate {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *DTCMasterUpdate) AddConfidenceScore(v float64) *DTCMasterUpdate {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// SetConflictFlag sets the "conflict_flag" field.
func (_u *DTCMasterUpdate) SetConflictFlag(v bool) *DTCMasterUpdate {
	_u.mutation.SetConflictFlag(v)
	return _u
}

// SetNillableConflictFlag sets the "conflict_flag" field if the given value is not nil.
func (_u *DTCMasterUpdate) SetNillableConflictFlag(v *bool) *DTCMasterUpdate {
	if v != nil {
		_u.SetConflictFlag(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DTCMasterUpdate) SetUpdatedAt(v time.Time) *DTCMasterUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DTCMasterMutation object of the builder.
func (_u *DTCMasterUpdate) Mutation() *DTCMasterMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DTCMasterUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DTCMasterUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DTCMasterUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DTCMasterUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DTCMasterUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := dtcmaster.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DTCMasterUpdate) check() error {
	if v, ok := _u.mutation.Code(); ok {
		if err := dtcmaster.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "DTCMaster.code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SeverityLevel(); ok {
		if err := dtcmaster.SeverityLevelValidator(v); err != nil {
			return &ValidationError{Name: "severity_level", err: fmt.Errorf(`ent: validator failed for field "DTCMaster.severity_level": %w`, err)}
		}
	}
	return nil
}

func (_u *DTCMasterUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dtcmaster.Table, dtcmaster.Columns, sqlgraph.NewFieldSpec(dtcmaster.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(dtcmaster.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.SystemCategory(); ok {
		_spec.SetField(dtcmaster.FieldSystemCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.GenericDescription(); ok {
		_spec.SetField(dtcmaster.FieldGenericDescription, field.TypeString, value)
	}
	if _u.mutation.GenericDescriptionCleared() {
		_spec.ClearField(dtcmaster.FieldGenericDescription, field.TypeString)
	}
	if value, ok := _u.mutation.DescriptionTrust(); ok {
		_spec.SetField(dtcmaster.FieldDescriptionTrust, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDescriptionTrust(); ok {
		_spec.AddField(dtcmaster.FieldDescriptionTrust, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SeverityLevel(); ok {
		_spec.SetField(dtcmaster.FieldSeverityLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSeverityLevel(); ok {
		_spec.AddField(dtcmaster.FieldSeverityLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EmissionsRelated(); ok {
		_spec.SetField(dtcmaster.FieldEmissionsRelated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EvidenceCount(); ok {
		_spec.SetField(dtcmaster.FieldEvidenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEvidenceCount(); ok {
		_spec.AddField(dtcmaster.FieldEvidenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgTrust(); ok {
		_spec.SetField(dtcmaster.FieldAvgTrust, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgTrust(); ok {
		_spec.AddField(dtcmaster.FieldAvgTrust, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AvgRelevance(); ok {
		_spec.SetField(dtcmaster.FieldAvgRelevance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgRelevance(); ok {
		_spec.AddField(dtcmaster.FieldAvgRelevance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(dtcmaster.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(dtcmaster.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ConflictFlag(); ok {
		_spec.SetField(dtcmaster.FieldConflictFlag, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(dtcmaster.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dtcmaster.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DTCMasterUpdateOne is the builder for updating a single DTCMaster entity.
type DTCMasterUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DTCMasterMutation
}

// SetCode sets the "code" field.
func (_u *DTCMasterUpdateOne) SetCode(v string) *DTCMasterUpdateOne {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *DTCMasterUpdateOne) SetNillableCode(v *string) *DTCMasterUpdateOne {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetSystemCategory sets the "system_category" field.
func (_u *DTCMasterUpdateOne) SetSystemCategory(v string) *DTCMasterUpdateOne {
	_u.mutation.SetSystemCategory(v)
	return _u
}

// SetNillableSystemCategory sets the "system_category" field if the given value is not nil.
func (_u *DTCMasterUpdateOne) SetNillableSystemCategory(v *string) *DTCMasterUpdateOne {
	if v != nil {
		_u.SetSystemCategory(*v)
	}
	return _u
}

// SetGenericDescription sets the "generic_description" field.
func (_u *DTCMasterUpdateOne) SetGenericDescription(v string) *DTCMasterUpdateOne {
	_u.mutation.SetGenericDescription(v)
	return _u
}

// SetNillableGenericDescription sets the "generic_description" field if the given value is not nil.
func (_u *DTCMasterUpdateOne) SetNillableGenericDescription(v *string) *DTCMasterUpdateOne {
	if v != nil {
		_u.SetGenericDescription(*v)
	}
	return _u
}

// ClearGenericDescription clears the value of the "generic_description" field.
func (_u *DTCMasterUpdateOne) ClearGenericDescription() *DTCMasterUpdateOne {
	_u.mutation.ClearGenericDescription()
	return _u
}

// SetDescriptionTrust sets the "description_trust" field.
func (_u *DTCMasterUpdateOne) SetDescriptionTrust(v float64) *DTCMasterUpdateOne {
	_u.mutation.ResetDescriptionTrust()
	_u.mutation.SetDescriptionTrust(v)
	return _u
}

// SetNillableDescriptionTrust sets the "description_trust" field if the given value is not nil.
func (_u *DTCMasterUpdateOne) SetNillableDescriptionTrust(v *float64) *DTCMasterUpdateOne {
	if v != nil {
		_u.SetDescriptionTrust(*v)
	}
	return _u
}

// AddDescriptionTrust adds value to the "description_trust" field.
func (_u *DTCMasterUpdateOne) AddDescriptionTrust(v float64) *DTCMasterUpdateOne {
	_u.mutation.AddDescriptionTrust(v)
	return _u
}

// SetSeverityLevel sets the "severity_level" field.
func (_u *DTCMasterUpdateOne) SetSeverityLevel(v int) *DTCMasterUpdateOne {
	_u.mutation.ResetSeverityLevel()
	_u.mutation.SetSeverityLevel(v)
	return _u
}

// SetNillableSeverityLevel sets the "severity_level" field if the given value is not nil.
func (_u *DTCMasterUpdateOne) SetNillableSeverityLevel(v *int) *DTCMasterUpdateOne {
	if v != nil {
		_u.SetSeverityLevel(*v)
	}
	return _u
}

// AddSeverityLevel adds value to the "severity_level" field.
func (_u *DTCMasterUpdateOne) AddSeverityLevel(v int) *DTCMasterUpdateOne {
	_u.mutation.AddSeverityLevel(v)
	return _u
}

// SetEmissionsRelated sets the "emissions_related" field.
func (_u *DTCMasterUpdateOne) SetEmissionsRelated(v bool) *DTCMasterUpdateOne {
	_u.mutation.SetEmissionsRelated(v)
	return _u
}

// SetNillableEmissionsRelated sets the "emissions_related" field if the given value is not nil.
func (_u *DTCMasterUpdateOne) SetNillableEmissionsRelated(v *bool) *DTCMasterUpdateOne {
	if v != nil {
		_u.SetEmissionsRelated(*v)
	}
	return _u
}

// SetEvidenceCount sets the "evidence_count" field.
func (_u *DTCMasterUpdateOne) SetEvidenceCount(v int) *DTCMasterUpdateOne {
	_u.mutation.ResetEvidenceCount()
	_u.mutation.SetEvidenceCount(v)
	return _u
}

// SetNillableEvidenceCount sets the "evidence_count" field if the given value is not nil.
func (_u *DTCMasterUpdateOne) SetNillableEvidenceCount(v *int) *DTCMasterUpdateOne {
	if v != nil {
		_u.SetEvidenceCount(*v)
	}
	return _u
}

// AddEvidenceCount adds value to the "evidence_count" field.
func (_u *DTCMasterUpdateOne) AddEvidenceCount(v int) *DTCMasterUpdateOne {
	_u.mutation.AddEvidenceCount(v)
	return _u
}

// SetAvgTrust sets the "avg_trust" field.
func (_u *DTCMasterUpdateOne) SetAvgTrust(v float64) *DTCMasterUpdateOne {
	_u.mutation.ResetAvgTrust()
	_u.mutation.SetAvgTrust(v)
	return _u
}

// SetNillableAvgTrust sets the "avg_trust" field if the given value is not nil.
func (_u *DTCMasterUpdateOne) SetNillableAvgTrust(v *float64) *DTCMasterUpdateOne {
	if v != nil {
		_u.SetAvgTrust(*v)
	}
	return _u
}

// AddAvgTrust adds value to the "avg_trust" field.
func (_u *DTCMasterUpdateOne) AddAvgTrust(v float64) *DTCMasterUpdateOne {
	_u.mutation.AddAvgTrust(v)
	return _u
}

// SetAvgRelevance sets the "avg_relevance" field.
func (_u *DTCMasterUpdateOne) SetAvgRelevance(v float64) *DTCMasterUpdateOne {
	_u.mutation.ResetAvgRelevance()
	_u.mutation.SetAvgRelevance(v)
	return _u
}

// SetNillableAvgRelevance sets the "avg_relevance" field if the given value is not nil.
func (_u *DTCMasterUpdateOne) SetNillableAvgRelevance(v *float64) *DTCMasterUpdateOne {
	if v != nil {
		_u.SetAvgRelevance(*v)
	}
	return _u
}

// AddAvgRelevance adds value to the "avg_relevance" field.
func (_u *DTCMasterUpdateOne) AddAvgRelevance(v float64) *DTCMasterUpdateOne {
	_u.mutation.AddAvgRelevance(v)
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *DTCMasterUpdateOne) SetConfidenceScore(v float64) *DTCMasterUpdateOne {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *DTCMasterUpdateOne) SetNillableConfidenceScore(v *float64) *DTCMasterUpdateOne {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *DTCMasterUpdateOne) AddConfidenceScore(v float64) *DTCMasterUpdateOne {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// SetConflictFlag sets the "conflict_flag" field.
func (_u *DTCMasterUpdateOne) SetConflictFlag(v bool) *DTCMasterUpdateOne {
	_u.mutation.SetConflictFlag(v)
	return _u
}

// SetNillableConflictFlag sets the "conflict_flag" field if the given value is not nil.
func (_u *DTCMasterUpdateOne) SetNillableConflictFlag(v *bool) *DTCMasterUpdateOne {
	if v != nil {
		_u.SetConflictFlag(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DTCMasterUpdateOne) SetUpdatedAt(v time.Time) *DTCMasterUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DTCMasterMutation object of the builder.
func (_u *DTCMasterUpdateOne) Mutation() *DTCMasterMutation {
	return _u.mutation
}

// Where appends a list predicates to the DTCMasterUpdate builder.
func (_u *DTCMasterUpdateOne) Where(ps ...predicate.DTCMaster) *DTCMasterUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DTCMasterUpdateOne) Select(field string, fields ...string) *DTCMasterUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DTCMaster entity.
func (_u *DTCMasterUpdateOne) Save(ctx context.Context) (*DTCMaster, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DTCMasterUpdateOne) SaveX(ctx context.Context) *DTCMaster {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DTCMasterUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DTCMasterUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DTCMasterUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := dtcmaster.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DTCMasterUpdateOne) check() error {
	if v, ok := _u.mutation.Code(); ok {
		if err := dtcmaster.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "DTCMaster.code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SeverityLevel(); ok {
		if err := dtcmaster.SeverityLevelValidator(v); err != nil {
			return &ValidationError{Name: "severity_level", err: fmt.Errorf(`ent: validator failed for field "DTCMaster.severity_level": %w`, err)}
		}
	}
	return nil
}

func (_u *DTCMasterUpdateOne) sqlSave(ctx context.Context) (_node *DTCMaster, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dtcmaster.Table, dtcmaster.Columns, sqlgraph.NewFieldSpec(dtcmaster.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DTCMaster.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dtcmaster.FieldID)
		for _, f := range fields {
			if !dtcmaster.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != dtcmaster.FieldID {
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
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(dtcmaster.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.SystemCategory(); ok {
		_spec.SetField(dtcmaster.FieldSystemCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.GenericDescription(); ok {
		_spec.SetField(dtcmaster.FieldGenericDescription, field.TypeString, value)
	}
	if _u.mutation.GenericDescriptionCleared() {
		_spec.ClearField(dtcmaster.FieldGenericDescription, field.TypeString)
	}
	if value, ok := _u.mutation.DescriptionTrust(); ok {
		_spec.SetField(dtcmaster.FieldDescriptionTrust, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDescriptionTrust(); ok {
		_spec.AddField(dtcmaster.FieldDescriptionTrust, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SeverityLevel(); ok {
		_spec.SetField(dtcmaster.FieldSeverityLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSeverityLevel(); ok {
		_spec.AddField(dtcmaster.FieldSeverityLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EmissionsRelated(); ok {
		_spec.SetField(dtcmaster.FieldEmissionsRelated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EvidenceCount(); ok {
		_spec.SetField(dtcmaster.FieldEvidenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEvidenceCount(); ok {
		_spec.AddField(dtcmaster.FieldEvidenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgTrust(); ok {
		_spec.SetField(dtcmaster.FieldAvgTrust, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgTrust(); ok {
		_spec.AddField(dtcmaster.FieldAvgTrust, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AvgRelevance(); ok {
		_spec.SetField(dtcmaster.FieldAvgRelevance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgRelevance(); ok {
		_spec.AddField(dtcmaster.FieldAvgRelevance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(dtcmaster.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(dtcmaster.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ConflictFlag(); ok {
		_spec.SetField(dtcmaster.FieldConflictFlag, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(dtcmaster.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &DTCMaster{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dtcmaster.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
