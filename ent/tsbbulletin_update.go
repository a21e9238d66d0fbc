// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/autodiag/refinery/ent/predicate"
	"github.com/autodiag/refinery/ent/tsbbulletin"
)

// TSBBulletinUpdate is the builder for updating TSBBulletin entities.
type TSBBulletinUpdate struct {
	config
	hooks    []Hook
	mutation *TSBBulletinMutation
}

// Where appends a list predicates to the TSBBulletinUpdate builder.
func (_u *TSBBulletinUpdate) Where(ps ...predicate.TSBBulletin) *TSBBulletinUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTsbNumber sets the "tsb_number" field.
func (_u *TSBBulletinUpdate) SetTsbNumber(v string) *TSBBulletinUpdate {
	_u.mutation.SetTsbNumber(v)
	return _u
}

// SetNillableTsbNumber sets the "tsb_number" field if the given value is not nil.
func (_u *TSBBulletinUpdate) SetNillableTsbNumber(v *string) *TSBBulletinUpdate {
	if v != nil {
		_u.SetTsbNumber(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *TSBBulletinUpdate) SetTitle(v string) *TSBBulletinUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TSBBulletinUpdate) SetNillableTitle(v *string) *TSBBulletinUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *TSBBulletinUpdate) ClearTitle() *TSBBulletinUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetAffectedModels sets the "affected_models" field.
func (_u *TSBBulletinUpdate) SetAffectedModels(v string) *TSBBulletinUpdate {
	_u.mutation.SetAffectedModels(v)
	return _u
}

// SetNillableAffectedModels sets the "affected_models" field if the given value is not nil.
func (_u *TSBBulletinUpdate) SetNillableAffectedModels(v *string) *TSBBulletinUpdate {
	if v != nil {
		_u.SetAffectedModels(*v)
	}
	return _u
}

// ClearAffectedModels clears the value of the "affected_models" field.
func (_u *TSBBulletinUpdate) ClearAffectedModels() *TSBBulletinUpdate {
	_u.mutation.ClearAffectedModels()
	return _u
}

// SetRelatedDtcCodes sets the "related_dtc_codes" field.
func (_u *TSBBulletinUpdate) SetRelatedDtcCodes(v []string) *TSBBulletinUpdate {
	_u.mutation.SetRelatedDtcCodes(v)
	return _u
}

// AppendRelatedDtcCodes appends value to the "related_dtc_codes" field.
func (_u *TSBBulletinUpdate) AppendRelatedDtcCodes(v []string) *TSBBulletinUpdate {
	_u.mutation.AppendRelatedDtcCodes(v)
	return _u
}

// ClearRelatedDtcCodes clears the value of the "related_dtc_codes" field.
func (_u *TSBBulletinUpdate) ClearRelatedDtcCodes() *TSBBulletinUpdate {
	_u.mutation.ClearRelatedDtcCodes()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *TSBBulletinUpdate) SetSummary(v string) *TSBBulletinUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *TSBBulletinUpdate) SetNillableSummary(v *string) *TSBBulletinUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *TSBBulletinUpdate) ClearSummary() *TSBBulletinUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetEvidenceCount sets the "evidence_count" field.
func (_u *TSBBulletinUpdate) SetEvidenceCount(v int) *TSBBulletinUpdate {
	_u.mutation.ResetEvidenceCount()
	_u.mutation.SetEvidenceCount(v)
	return _u
}

// SetNillableEvidenceCount sets the "evidence_count" field if the given value is not nil.
func (_u *TSBBulletinUpdate) SetNillableEvidenceCount(v *int) *TSBBulletinUpdate {
	if v != nil {
		_u.SetEvidenceCount(*v)
	}
	return _u
}

// AddEvidenceCount adds value to the "evidence_count" field.
func (_u *TSBBulletinUpdate) AddEvidenceCount(v int) *TSBBulletinUpdate {
	_u.mutation.AddEvidenceCount(v)
	return _u
}

// SetAvgTrust sets the "avg_trust" field.
func (_u *TSBBulletinUpdate) SetAvgTrust(v float64) *TSBBulletinUpdate {
	_u.mutation.ResetAvgTrust()
	_u.mutation.SetAvgTrust(v)
	return _u
}

// SetNillableAvgTrust sets the "avg_trust" field if the given value is not nil.
func (_u *TSBBulletinUpdate) SetNillableAvgTrust(v *float64) *TSBBulletinUpdate {
	if v != nil {
		_u.SetAvgTrust(*v)
	}
	return _u
}

// AddAvgTrust adds value to the "avg_trust" field.
func (_u *TSBBulletinUpdate) AddAvgTrust(v float64) *TSBBulletinUpdate {
	_u.mutation.AddAvgTrust(v)
	return _u
}

// SetAvgRelevance sets the "avg_relevance" field.
func (_u *TSBBulletinUpdate) SetAvgRelevance(v float64) *TSBBulletinUpdate {
	_u.mutation.ResetAvgRelevance()
	_u.mutation.SetAvgRelevance(v)
	return _u
}

// SetNillableAvgRelevance sets the "avg_relevance" field if the given value is not nil.
func (_u *TSBBulletinUpdate) SetNillableAvgRelevance(v *float64) *TSBBulletinUpdate {
	if v != nil {
		_u.SetAvgRelevance(*v)
	}
	return _u
}

// AddAvgRelevance adds value to the "avg_relevance" field.
func (_u *TSBBulletinUpdate) AddAvgRelevance(v float64) *TSBBulletinUpdate {
	_u.mutation.AddAvgRelevance(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TSBBulletinUpdate) SetUpdatedAt(v time.Time) *TSBBulletinUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TSBBulletinMutation object of the builder.
func (_u *TSBBulletinUpdate) Mutation() *TSBBulletinMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TSBBulletinUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TSBBulletinUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TSBBulletinUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TSBBulletinUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TSBBulletinUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tsbbulletin.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *TSBBulletinUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(tsbbulletin.Table, tsbbulletin.Columns, sqlgraph.NewFieldSpec(tsbbulletin.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TsbNumber(); ok {
		_spec.SetField(tsbbulletin.FieldTsbNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(tsbbulletin.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(tsbbulletin.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.AffectedModels(); ok {
		_spec.SetField(tsbbulletin.FieldAffectedModels, field.TypeString, value)
	}
	if _u.mutation.AffectedModelsCleared() {
		_spec.ClearField(tsbbulletin.FieldAffectedModels, field.TypeString)
	}
	if value, ok := _u.mutation.RelatedDtcCodes(); ok {
		_spec.SetField(tsbbulletin.FieldRelatedDtcCodes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRelatedDtcCodes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, tsbbulletin.FieldRelatedDtcCodes, value)
		})
	}
	if _u.mutation.RelatedDtcCodesCleared() {
		_spec.ClearField(tsbbulletin.FieldRelatedDtcCodes, field.TypeJSON)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(tsbbulletin.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(tsbbulletin.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.EvidenceCount(); ok {
		_spec.SetField(tsbbulletin.FieldEvidenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEvidenceCount(); ok {
		_spec.AddField(tsbbulletin.FieldEvidenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgTrust(); ok {
		_spec.SetField(tsbbulletin.FieldAvgTrust, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgTrust(); ok {
		_spec.AddField(tsbbulletin.FieldAvgTrust, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AvgRelevance(); ok {
		_spec.SetField(tsbbulletin.FieldAvgRelevance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgRelevance(); ok {
		_spec.AddField(tsbbulletin.FieldAvgRelevance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tsbbulletin.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tsbbulletin.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TSBBulletinUpdateOne is the builder for updating a single TSBBulletin entity.
type TSBBulletinUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TSBBulletinMutation
}

// SetTsbNumber sets the "tsb_number" field.
func (_u *TSBBulletinUpdateOne) SetTsbNumber(v string) *TSBBulletinUpdateOne {
	_u.mutation.SetTsbNumber(v)
	return _u
}

// SetNillableTsbNumber sets the "tsb_number" field if the given value is not nil.
func (_u *TSBBulletinUpdateOne) SetNillableTsbNumber(v *string) *TSBBulletinUpdateOne {
	if v != nil {
		_u.SetTsbNumber(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *TSBBulletinUpdateOne) SetTitle(v string) *TSBBulletinUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TSBBulletinUpdateOne) SetNillableTitle(v *string) *TSBBulletinUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *TSBBulletinUpdateOne) ClearTitle() *TSBBulletinUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetAffectedModels sets the "affected_models" field.
func (_u *TSBBulletinUpdateOne) SetAffectedModels(v string) *TSBBulletinUpdateOne {
	_u.mutation.SetAffectedModels(v)
	return _u
}

// SetNillableAffectedModels sets the "affected_models" field if the given value is not nil.
func (_u *TSBBulletinUpdateOne) SetNillableAffectedModels(v *string) *TSBBulletinUpdateOne {
	if v != nil {
		_u.SetAffectedModels(*v)
	}
	return _u
}

// ClearAffectedModels clears the value of the "affected_models" field.
func (_u *TSBBulletinUpdateOne) ClearAffectedModels() *TSBBulletinUpdateOne {
	_u.mutation.ClearAffectedModels()
	return _u
}

// SetRelatedDtcCodes sets the "related_dtc_codes" field.
func (_u *TSBBulletinUpdateOne) SetRelatedDtcCodes(v []string) *TSBBulletinUpdateOne {
	_u.mutation.SetRelatedDtcCodes(v)
	return _u
}

// AppendRelatedDtcCodes appends value to the "related_dtc_codes" field.
func (_u *TSBBulletinUpdateOne) AppendRelatedDtcCodes(v []string) *TSBBulletinUpdateOne {
	_u.mutation.AppendRelatedDtcCodes(v)
	return _u
}

// ClearRelatedDtcCodes clears the value of the "related_dtc_codes" field.
func (_u *TSBBulletinUpdateOne) ClearRelatedDtcCodes() *TSBBulletinUpdateOne {
	_u.mutation.ClearRelatedDtcCodes()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *TSBBulletinUpdateOne) SetSummary(v string) *TSBBulletinUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *TSBBulletinUpdateOne) SetNillableSummary(v *string) *TSBBulletinUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *TSBBulletinUpdateOne) ClearSummary() *TSBBulletinUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetEvidenceCount sets the "evidence_count" field.
func (_u *TSBBulletinUpdateOne) SetEvidenceCount(v int) *TSBBulletinUpdateOne {
	_u.mutation.ResetEvidenceCount()
	_u.mutation.SetEvidenceCount(v)
	return _u
}

// SetNillableEvidenceCount sets the "evidence_count" field if the given value is not nil.
func (_u *TSBBulletinUpdateOne) SetNillableEvidenceCount(v *int) *TSBBulletinUpdateOne {
	if v != nil {
		_u.SetEvidenceCount(*v)
	}
	return _u
}

// AddEvidenceCount adds value to the "evidence_count" field.
func (_u *TSBBulletinUpdateOne) AddEvidenceCount(v int) *TSBBulletinUpdateOne {
	_u.mutation.AddEvidenceCount(v)
	return _u
}

// SetAvgTrust sets the "avg_trust" field.
func (_u *TSBBulletinUpdateOne) SetAvgTrust(v float64) *TSBBulletinUpdateOne {
	_u.mutation.ResetAvgTrust()
	_u.mutation.SetAvgTrust(v)
	return _u
}

// SetNillableAvgTrust sets the "avg_trust" field if the given value is not nil.
func (_u *TSBBulletinUpdateOne) SetNillableAvgTrust(v *float64) *TSBBulletinUpdateOne {
	if v != nil {
		_u.SetAvgTrust(*v)
	}
	return _u
}

// AddAvgTrust adds value to the "avg_trust" field.
func (_u *TSBBulletinUpdateOne) AddAvgTrust(v float64) *TSBBulletinUpdateOne {
	_u.mutation.AddAvgTrust(v)
	return _u
}

// SetAvgRelevance sets the "avg_relevance" field.
func (_u *TSBBulletinUpdateOne) SetAvgRelevance(v float64) *TSBBulletinUpdateOne {
	_u.mutation.ResetAvgRelevance()
	_u.mutation.SetAvgRelevance(v)
	return _u
}

// SetNillableAvgRelevance sets the "avg_relevance" field if the given value is not nil.
func (_u *TSBBulletinUpdateOne) SetNillableAvgRelevance(v *float64) *TSBBulletinUpdateOne {
	if v != nil {
		_u.SetAvgRelevance(*v)
	}
	return _u
}

// AddAvgRelevance adds value to the "avg_relevance" field.
func (_u *TSBBulletinUpdateOne) AddAvgRelevance(v float64) *TSBBulletinUpdateOne {
	_u.mutation.AddAvgRelevance(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TSBBulletinUpdateOne) SetUpdatedAt(v time.Time) *TSBBulletinUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TSBBulletinMutation object of the builder.
func (_u *TSBBulletinUpdateOne) Mutation() *TSBBulletinMutation {
	return _u.mutation
}

// Where appends a list predicates to the TSBBulletinUpdate builder.
func (_u *TSBBulletinUpdateOne) Where(ps ...predicate.TSBBulletin) *TSBBulletinUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TSBBulletinUpdateOne) Select(field string, fields ...string) *TSBBulletinUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TSBBulletin entity.
func (_u *TSBBulletinUpdateOne) Save(ctx context.Context) (*TSBBulletin, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TSBBulletinUpdateOne) SaveX(ctx context.Context) *TSBBulletin {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TSBBulletinUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TSBBulletinUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TSBBulletinUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tsbbulletin.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *TSBBulletinUpdateOne) sqlSave(ctx context.Context) (_node *TSBBulletin, err error) {
	_spec := sqlgraph.NewUpdateSpec(tsbbulletin.Table, tsbbulletin.Columns, sqlgraph.NewFieldSpec(tsbbulletin.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TSBBulletin.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tsbbulletin.FieldID)
		for _, f := range fields {
			if !tsbbulletin.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tsbbulletin.FieldID {
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
	if value, ok := _u.mutation.TsbNumber(); ok {
		_spec.SetField(tsbbulletin.FieldTsbNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(tsbbulletin.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(tsbbulletin.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.AffectedModels(); ok {
		_spec.SetField(tsbbulletin.FieldAffectedModels, field.TypeString, value)
	}
	if _u.mutation.AffectedModelsCleared() {
		_spec.ClearField(tsbbulletin.FieldAffectedModels, field.TypeString)
	}
	if value, ok := _u.mutation.RelatedDtcCodes(); ok {
		_spec.SetField(tsbbulletin.FieldRelatedDtcCodes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRelatedDtcCodes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, tsbbulletin.FieldRelatedDtcCodes, value)
		})
	}
	if _u.mutation.RelatedDtcCodesCleared() {
		_spec.ClearField(tsbbulletin.FieldRelatedDtcCodes, field.TypeJSON)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(tsbbulletin.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(tsbbulletin.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.EvidenceCount(); ok {
		_spec.SetField(tsbbulletin.FieldEvidenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEvidenceCount(); ok {
		_spec.AddField(tsbbulletin.FieldEvidenceCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgTrust(); ok {
		_spec.SetField(tsbbulletin.FieldAvgTrust, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgTrust(); ok {
		_spec.AddField(tsbbulletin.FieldAvgTrust, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AvgRelevance(); ok {
		_spec.SetField(tsbbulletin.FieldAvgRelevance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgRelevance(); ok {
		_spec.AddField(tsbbulletin.FieldAvgRelevance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tsbbulletin.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &TSBBulletin{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tsbbulletin.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
