// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/autodiag/refinery/ent/extractedtsb"
	"github.com/autodiag/refinery/ent/predicate"
)

// ExtractedTSBUpdate is the builder for updating ExtractedTSB entities.
type ExtractedTSBUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractedTSBMutation
}

// Where appends a list predicates to the ExtractedTSBUpdate builder.
func (_u *ExtractedTSBUpdate) Where(ps ...predicate.ExtractedTSB) *ExtractedTSBUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *ExtractedTSBUpdate) SetDocumentID(v string) *ExtractedTSBUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ExtractedTSBUpdate) SetNillableDocumentID(v *string) *ExtractedTSBUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetTsbNumber sets the "tsb_number" field.
func (_u *ExtractedTSBUpdate) SetTsbNumber(v string) *ExtractedTSBUpdate {
	_u.mutation.SetTsbNumber(v)
	return _u
}

// SetNillableTsbNumber sets the "tsb_number" field if the given value is not nil.
func (_u *ExtractedTSBUpdate) SetNillableTsbNumber(v *string) *ExtractedTSBUpdate {
	if v != nil {
		_u.SetTsbNumber(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ExtractedTSBUpdate) SetTitle(v string) *ExtractedTSBUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ExtractedTSBUpdate) SetNillableTitle(v *string) *ExtractedTSBUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *ExtractedTSBUpdate) ClearTitle() *ExtractedTSBUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetAffectedModels sets the "affected_models" field.
func (_u *ExtractedTSBUpdate) SetAffectedModels(v string) *ExtractedTSBUpdate {
	_u.mutation.SetAffectedModels(v)
	return _u
}

// SetNillableAffectedModels sets the "affected_models" field if the given value is not nil.
func (_u *ExtractedTSBUpdate) SetNillableAffectedModels(v *string) *ExtractedTSBUpdate {
	if v != nil {
		_u.SetAffectedModels(*v)
	}
	return _u
}

// ClearAffectedModels clears the value of the "affected_models" field.
func (_u *ExtractedTSBUpdate) ClearAffectedModels() *ExtractedTSBUpdate {
	_u.mutation.ClearAffectedModels()
	return _u
}

// SetRelatedDtcCodes sets the "related_dtc_codes" field.
func (_u *ExtractedTSBUpdate) SetRelatedDtcCodes(v []string) *ExtractedTSBUpdate {
	_u.mutation.SetRelatedDtcCodes(v)
	return _u
}

// AppendRelatedDtcCodes appends value to the "related_dtc_codes" field.
func (_u *ExtractedTSBUpdate) AppendRelatedDtcCodes(v []string) *ExtractedTSBUpdate {
	_u.mutation.AppendRelatedDtcCodes(v)
	return _u
}

// ClearRelatedDtcCodes clears the value of the "related_dtc_codes" field.
func (_u *ExtractedTSBUpdate) ClearRelatedDtcCodes() *ExtractedTSBUpdate {
	_u.mutation.ClearRelatedDtcCodes()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *ExtractedTSBUpdate) SetSummary(v string) *ExtractedTSBUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *ExtractedTSBUpdate) SetNillableSummary(v *string) *ExtractedTSBUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *ExtractedTSBUpdate) ClearSummary() *ExtractedTSBUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetSourceChunkID sets the "source_chunk_id" field.
func (_u *ExtractedTSBUpdate) SetSourceChunkID(v string) *ExtractedTSBUpdate {
	_u.mutation.SetSourceChunkID(v)
	return _u
}

// SetNillableSourceChunkID sets the "source_chunk_id" field if the given value is not nil.
func (_u *ExtractedTSBUpdate) SetNillableSourceChunkID(v *string) *ExtractedTSBUpdate {
	if v != nil {
		_u.SetSourceChunkID(*v)
	}
	return _u
}

// SetTrust sets the "trust" field.
func (_u *ExtractedTSBUpdate) SetTrust(v float64) *ExtractedTSBUpdate {
	_u.mutation.ResetTrust()
	_u.mutation.SetTrust(v)
	return _u
}

// SetNillableTrust sets the "trust" field if the given value is not nil.
func (_u *ExtractedTSBUpdate) SetNillableTrust(v *float64) *ExtractedTSBUpdate {
	if v != nil {
		_u.SetTrust(*v)
	}
	return _u
}

// AddTrust adds value to the "trust" field.
func (_u *ExtractedTSBUpdate) AddTrust(v float64) *ExtractedTSBUpdate {
	_u.mutation.AddTrust(v)
	return _u
}

// SetRelevance sets the "relevance" field.
func (_u *ExtractedTSBUpdate) SetRelevance(v float64) *ExtractedTSBUpdate {
	_u.mutation.ResetRelevance()
	_u.mutation.SetRelevance(v)
	return _u
}

// SetNillableRelevance sets the "relevance" field if the given value is not nil.
func (_u *ExtractedTSBUpdate) SetNillableRelevance(v *float64) *ExtractedTSBUpdate {
	if v != nil {
		_u.SetRelevance(*v)
	}
	return _u
}

// AddRelevance adds value to the "relevance" field.
func (_u *ExtractedTSBUpdate) AddRelevance(v float64) *ExtractedTSBUpdate {
	_u.mutation.AddRelevance(v)
	return _u
}

// Mutation returns the ExtractedTSBMutation object of the builder.
func (_u *ExtractedTSBUpdate) Mutation() *ExtractedTSBMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractedTSBUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractedTSBUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractedTSBUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractedTSBUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ExtractedTSBUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(extractedtsb.Table, extractedtsb.Columns, sqlgraph.NewFieldSpec(extractedtsb.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocumentID(); ok {
		_spec.SetField(extractedtsb.FieldDocumentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TsbNumber(); ok {
		_spec.SetField(extractedtsb.FieldTsbNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(extractedtsb.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(extractedtsb.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.AffectedModels(); ok {
		_spec.SetField(extractedtsb.FieldAffectedModels, field.TypeString, value)
	}
	if _u.mutation.AffectedModelsCleared() {
		_spec.ClearField(extractedtsb.FieldAffectedModels, field.TypeString)
	}
	if value, ok := _u.mutation.RelatedDtcCodes(); ok {
		_spec.SetField(extractedtsb.FieldRelatedDtcCodes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRelatedDtcCodes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractedtsb.FieldRelatedDtcCodes, value)
		})
	}
	if _u.mutation.RelatedDtcCodesCleared() {
		_spec.ClearField(extractedtsb.FieldRelatedDtcCodes, field.TypeJSON)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(extractedtsb.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(extractedtsb.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.SourceChunkID(); ok {
		_spec.SetField(extractedtsb.FieldSourceChunkID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Trust(); ok {
		_spec.SetField(extractedtsb.FieldTrust, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTrust(); ok {
		_spec.AddField(extractedtsb.FieldTrust, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Relevance(); ok {
		_spec.SetField(extractedtsb.FieldRelevance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRelevance(); ok {
		_spec.AddField(extractedtsb.FieldRelevance, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractedtsb.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractedTSBUpdateOne is the builder for updating a single ExtractedTSB entity.
type ExtractedTSBUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractedTSBMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *ExtractedTSBUpdateOne) SetDocumentID(v string) *ExtractedTSBUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ExtractedTSBUpdateOne) SetNillableDocumentID(v *string) *ExtractedTSBUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetTsbNumber sets the "tsb_number" field.
func (_u *ExtractedTSBUpdateOne) SetTsbNumber(v string) *ExtractedTSBUpdateOne {
	_u.mutation.SetTsbNumber(v)
	return _u
}

// SetNillableTsbNumber sets the "tsb_number" field if the given value is not nil.
func (_u *ExtractedTSBUpdateOne) SetNillableTsbNumber(v *string) *ExtractedTSBUpdateOne {
	if v != nil {
		_u.SetTsbNumber(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ExtractedTSBUpdateOne) SetTitle(v string) *ExtractedTSBUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ExtractedTSBUpdateOne) SetNillableTitle(v *string) *ExtractedTSBUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *ExtractedTSBUpdateOne) ClearTitle() *ExtractedTSBUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetAffectedModels sets the "affected_models" field.
func (_u *ExtractedTSBUpdateOne) SetAffectedModels(v string) *ExtractedTSBUpdateOne {
	_u.mutation.SetAffectedModels(v)
	return _u
}

// SetNillableAffectedModels sets the "affected_models" field if the given value is not nil.
func (_u *ExtractedTSBUpdateOne) SetNillableAffectedModels(v *string) *ExtractedTSBUpdateOne {
	if v != nil {
		_u.SetAffectedModels(*v)
	}
	return _u
}

// ClearAffectedModels clears the value of the "affected_models" field.
func (_u *ExtractedTSBUpdateOne) ClearAffectedModels() *ExtractedTSBUpdateOne {
	_u.mutation.ClearAffectedModels()
	return _u
}

// SetRelatedDtcCodes sets the "related_dtc_codes" field.
func (_u *ExtractedTSBUpdateOne) SetRelatedDtcCodes(v []string) *ExtractedTSBUpdateOne {
	_u.mutation.SetRelatedDtcCodes(v)
	return _u
}

// AppendRelatedDtcCodes appends value to the "related_dtc_codes" field.
func (_u *ExtractedTSBUpdateOne) AppendRelatedDtcCodes(v []string) *ExtractedTSBUpdateOne {
	_u.mutation.AppendRelatedDtcCodes(v)
	return _u
}

// ClearRelatedDtcCodes clears the value of the "related_dtc_codes" field.
func (_u *ExtractedTSBUpdateOne) ClearRelatedDtcCodes() *ExtractedTSBUpdateOne {
	_u.mutation.ClearRelatedDtcCodes()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *ExtractedTSBUpdateOne) SetSummary(v string) *ExtractedTSBUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *ExtractedTSBUpdateOne) SetNillableSummary(v *string) *ExtractedTSBUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *ExtractedTSBUpdateOne) ClearSummary() *ExtractedTSBUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetSourceChunkID sets the "source_chunk_id" field.
func (_u *ExtractedTSBUpdateOne) SetSourceChunkID(v string) *ExtractedTSBUpdateOne {
	_u.mutation.SetSourceChunkID(v)
	return _u
}

// SetNillableSourceChunkID sets the "source_chunk_id" field if the given value is not nil.
func (_u *ExtractedTSBUpdateOne) SetNillableSourceChunkID(v *string) *ExtractedTSBUpdateOne {
	if v != nil {
		_u.SetSourceChunkID(*v)
	}
	return _u
}

// SetTrust sets the "trust" field.
func (_u *ExtractedTSBUpdateOne) SetTrust(v float64) *ExtractedTSBUpdateOne {
	_u.mutation.ResetTrust()
	_u.mutation.SetTrust(v)
	return _u
}

// SetNillableTrust sets the "trust" field if the given value is not nil.
func (_u *ExtractedTSBUpdateOne) SetNillableTrust(v *float64) *ExtractedTSBUpdateOne {
	if v != nil {
		_u.SetTrust(*v)
	}
	return _u
}

// AddTrust adds value to the "trust" field.
func (_u *ExtractedTSBUpdateOne) AddTrust(v float64) *ExtractedTSBUpdateOne {
	_u.mutation.AddTrust(v)
	return _u
}

// SetRelevance sets the "relevance" field.
func (_u *ExtractedTSBUpdateOne) SetRelevance(v float64) *ExtractedTSBUpdateOne {
	_u.mutation.ResetRelevance()
	_u.mutation.SetRelevance(v)
	return _u
}

// SetNillableRelevance sets the "relevance" field if the given value is not nil.
func (_u *ExtractedTSBUpdateOne) SetNillableRelevance(v *float64) *ExtractedTSBUpdateOne {
	if v != nil {
		_u.SetRelevance(*v)
	}
	return _u
}

// AddRelevance adds value to the "relevance" field.
func (_u *ExtractedTSBUpdateOne) AddRelevance(v float64) *ExtractedTSBUpdateOne {
	_u.mutation.AddRelevance(v)
	return _u
}

// Mutation returns the ExtractedTSBMutation object of the builder.
func (_u *ExtractedTSBUpdateOne) Mutation() *ExtractedTSBMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExtractedTSBUpdate builder.
func (_u *ExtractedTSBUpdateOne) Where(ps ...predicate.ExtractedTSB) *ExtractedTSBUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractedTSBUpdateOne) Select(field string, fields ...string) *ExtractedTSBUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractedTSB entity.
func (_u *ExtractedTSBUpdateOne) Save(ctx context.Context) (*ExtractedTSB, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractedTSBUpdateOne) SaveX(ctx context.Context) *ExtractedTSB {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractedTSBUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractedTSBUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ExtractedTSBUpdateOne) sqlSave(ctx context.Context) (_node *ExtractedTSB, err error) {
	_spec := sqlgraph.NewUpdateSpec(extractedtsb.Table, extractedtsb.Columns, sqlgraph.NewFieldSpec(extractedtsb.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractedTSB.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractedtsb.FieldID)
		for _, f := range fields {
			if !extractedtsb.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractedtsb.FieldID {
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
	if value, ok := _u.mutation.DocumentID(); ok {
		_spec.SetField(extractedtsb.FieldDocumentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TsbNumber(); ok {
		_spec.SetField(extractedtsb.FieldTsbNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(extractedtsb.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(extractedtsb.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.AffectedModels(); ok {
		_spec.SetField(extractedtsb.FieldAffectedModels, field.TypeString, value)
	}
	if _u.mutation.AffectedModelsCleared() {
		_spec.ClearField(extractedtsb.FieldAffectedModels, field.TypeString)
	}
	if value, ok := _u.mutation.RelatedDtcCodes(); ok {
		_spec.SetField(extractedtsb.FieldRelatedDtcCodes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRelatedDtcCodes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractedtsb.FieldRelatedDtcCodes, value)
		})
	}
	if _u.mutation.RelatedDtcCodesCleared() {
		_spec.ClearField(extractedtsb.FieldRelatedDtcCodes, field.TypeJSON)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(extractedtsb.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(extractedtsb.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.SourceChunkID(); ok {
		_spec.SetField(extractedtsb.FieldSourceChunkID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Trust(); ok {
		_spec.SetField(extractedtsb.FieldTrust, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTrust(); ok {
		_spec.AddField(extractedtsb.FieldTrust, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Relevance(); ok {
		_spec.SetField(extractedtsb.FieldRelevance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRelevance(); ok {
		_spec.AddField(extractedtsb.FieldRelevance, field.TypeFloat64, value)
	}
	_node = &ExtractedTSB{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractedtsb.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
