// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autodiag/refinery/ent/extracteddtc"
	"github.com/autodiag/refinery/ent/predicate"
)

// ExtractedDTCUpdate is the builder for updating ExtractedDTC entities.
type ExtractedDTCUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractedDTCMutation
}

// Where appends a list predicates to the ExtractedDTCUpdate builder.
func (_u *ExtractedDTCUpdate) Where(ps ...predicate.ExtractedDTC) *ExtractedDTCUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *ExtractedDTCUpdate) SetDocumentID(v string) *ExtractedDTCUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ExtractedDTCUpdate) SetNillableDocumentID(v *string) *ExtractedDTCUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetCode sets the "code" field.
func (_u *ExtractedDTCUpdate) SetCode(v string) *ExtractedDTCUpdate {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *ExtractedDTCUpdate) SetNillableCode(v *string) *ExtractedDTCUpdate {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ExtractedDTCUpdate) SetDescription(v string) *ExtractedDTCUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ExtractedDTCUpdate) SetNillableDescription(v *string) *ExtractedDTCUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ExtractedDTCUpdate) ClearDescription() *ExtractedDTCUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetCategory sets the "category" field.
func (_u *ExtractedDTCUpdate) SetCategory(v string) *ExtractedDTCUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ExtractedDTCUpdate) SetNillableCategory(v *string) *ExtractedDTCUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *ExtractedDTCUpdate) ClearCategory() *ExtractedDTCUpdate {
	_u.mutation.ClearCategory()
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *ExtractedDTCUpdate) SetSeverity(v string) *ExtractedDTCUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *ExtractedDTCUpdate) SetNillableSeverity(v *string) *ExtractedDTCUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// ClearSeverity clears the value of the "severity" field.
func (_u *ExtractedDTCUpdate) ClearSeverity() *ExtractedDTCUpdate {
	_u.mutation.ClearSeverity()
	return _u
}

// SetSourceChunkID sets the "source_chunk_id" field.
func (_u *ExtractedDTCUpdate) SetSourceChunkID(v string) *ExtractedDTCUpdate {
	_u.mutation.SetSourceChunkID(v)
	return _u
}

// SetNillableSourceChunkID sets the "source_chunk_id" field if the given value is not nil.
func (_u *ExtractedDTCUpdate) SetNillableSourceChunkID(v *string) *ExtractedDTCUpdate {
	if v != nil {
		_u.SetSourceChunkID(*v)
	}
	return _u
}

// SetTrust sets the "trust" field.
func (_u *ExtractedDTCUpdate) SetTrust(v float64) *ExtractedDTCUpdate {
	_u.mutation.ResetTrust()
	_u.mutation.SetTrust(v)
	return _u
}

// SetNillableTrust sets the "trust" field if the given value is not nil.
func (_u *ExtractedDTCUpdate) SetNillableTrust(v *float64) *ExtractedDTCUpdate {
	if v != nil {
		_u.SetTrust(*v)
	}
	return _u
}

// AddTrust adds value to the "trust" field.
func (_u *ExtractedDTCUpdate) AddTrust(v float64) *ExtractedDTCUpdate {
	_u.mutation.AddTrust(v)
	return _u
}

// SetRelevance sets the "relevance" field.
func (_u *ExtractedDTCUpdate) SetRelevance(v float64) *ExtractedDTCUpdate {
	_u.mutation.ResetRelevance()
	_u.mutation.SetRelevance(v)
	return _u
}

// SetNillableRelevance sets the "relevance" field if the given value is not nil.
func (_u *ExtractedDTCUpdate) SetNillableRelevance(v *float64) *ExtractedDTCUpdate {
	if v != nil {
		_u.SetRelevance(*v)
	}
	return _u
}

// AddRelevance adds value to the "relevance" field.
func (_u *ExtractedDTCUpdate) AddRelevance(v float64) *ExtractedDTCUpdate {
	_u.mutation.AddRelevance(v)
	return _u
}

// Mutation returns the ExtractedDTCMutation object of the builder.
func (_u *ExtractedDTCUpdate) Mutation() *ExtractedDTCMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractedDTCUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractedDTCUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractedDTCUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractedDTCUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ExtractedDTCUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(extracteddtc.Table, extracteddtc.Columns, sqlgraph.NewFieldSpec(extracteddtc.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocumentID(); ok {
		_spec.SetField(extracteddtc.FieldDocumentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(extracteddtc.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(extracteddtc.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(extracteddtc.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(extracteddtc.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(extracteddtc.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(extracteddtc.FieldSeverity, field.TypeString, value)
	}
	if _u.mutation.SeverityCleared() {
		_spec.ClearField(extracteddtc.FieldSeverity, field.TypeString)
	}
	if value, ok := _u.mutation.SourceChunkID(); ok {
		_spec.SetField(extracteddtc.FieldSourceChunkID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Trust(); ok {
		_spec.SetField(extracteddtc.FieldTrust, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTrust(); ok {
		_spec.AddField(extracteddtc.FieldTrust, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Relevance(); ok {
		_spec.SetField(extracteddtc.FieldRelevance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRelevance(); ok {
		_spec.AddField(extracteddtc.FieldRelevance, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extracteddtc.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractedDTCUpdateOne is the builder for updating a single ExtractedDTC entity.
type ExtractedDTCUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractedDTCMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *ExtractedDTCUpdateOne) SetDocumentID(v string) *ExtractedDTCUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ExtractedDTCUpdateOne) SetNillableDocumentID(v *string) *ExtractedDTCUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetCode sets the "code" field.
func (_u *ExtractedDTCUpdateOne) SetCode(v string) *ExtractedDTCUpdateOne {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *ExtractedDTCUpdateOne) SetNillableCode(v *string) *ExtractedDTCUpdateOne {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ExtractedDTCUpdateOne) SetDescription(v string) *ExtractedDTCUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ExtractedDTCUpdateOne) SetNillableDescription(v *string) *ExtractedDTCUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ExtractedDTCUpdateOne) ClearDescription() *ExtractedDTCUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetCategory sets the "category" field.
func (_u *ExtractedDTCUpdateOne) SetCategory(v string) *ExtractedDTCUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ExtractedDTCUpdateOne) SetNillableCategory(v *string) *ExtractedDTCUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// ClearCategory clears the value of the "category" field.
func (_u *ExtractedDTCUpdateOne) ClearCategory() *ExtractedDTCUpdateOne {
	_u.mutation.ClearCategory()
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *ExtractedDTCUpdateOne) SetSeverity(v string) *ExtractedDTCUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *ExtractedDTCUpdateOne) SetNillableSeverity(v *string) *ExtractedDTCUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// ClearSeverity clears the value of the "severity" field.
func (_u *ExtractedDTCUpdateOne) ClearSeverity() *ExtractedDTCUpdateOne {
	_u.mutation.ClearSeverity()
	return _u
}

// SetSourceChunkID sets the "source_chunk_id" field.
func (_u *ExtractedDTCUpdateOne) SetSourceChunkID(v string) *ExtractedDTCUpdateOne {
	_u.mutation.SetSourceChunkID(v)
	return _u
}

// SetNillableSourceChunkID sets the "source_chunk_id" field if the given value is not nil.
func (_u *ExtractedDTCUpdateOne) SetNillableSourceChunkID(v *string) *ExtractedDTCUpdateOne {
	if v != nil {
		_u.SetSourceChunkID(*v)
	}
	return _u
}

// SetTrust sets the "trust" field.
func (_u *ExtractedDTCUpdateOne) SetTrust(v float64) *ExtractedDTCUpdateOne {
	_u.mutation.ResetTrust()
	_u.mutation.SetTrust(v)
	return _u
}

// SetNillableTrust sets the "trust" field if the given value is not nil.
func (_u *ExtractedDTCUpdateOne) SetNillableTrust(v *float64) *ExtractedDTCUpdateOne {
	if v != nil {
		_u.SetTrust(*v)
	}
	return _u
}

// AddTrust adds value to the "trust" field.
func (_u *ExtractedDTCUpdateOne) AddTrust(v float64) *ExtractedDTCUpdateOne {
	_u.mutation.AddTrust(v)
	return _u
}

// SetRelevance sets the "relevance" field.
func (_u *ExtractedDTCUpdateOne) SetRelevance(v float64) *ExtractedDTCUpdateOne {
	_u.mutation.ResetRelevance()
	_u.mutation.SetRelevance(v)
	return _u
}

// SetNillableRelevance sets the "relevance" field if the given value is not nil.
func (_u *ExtractedDTCUpdateOne) SetNillableRelevance(v *float64) *ExtractedDTCUpdateOne {
	if v != nil {
		_u.SetRelevance(*v)
	}
	return _u
}

// AddRelevance adds value to the "relevance" field.
func (_u *ExtractedDTCUpdateOne) AddRelevance(v float64) *ExtractedDTCUpdateOne {
	_u.mutation.AddRelevance(v)
	return _u
}

// Mutation returns the ExtractedDTCMutation object of the builder.
func (_u *ExtractedDTCUpdateOne) Mutation() *ExtractedDTCMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExtractedDTCUpdate builder.
func (_u *ExtractedDTCUpdateOne) Where(ps ...predicate.ExtractedDTC) *ExtractedDTCUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractedDTCUpdateOne) Select(field string, fields ...string) *ExtractedDTCUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractedDTC entity.
func (_u *ExtractedDTCUpdateOne) Save(ctx context.Context) (*ExtractedDTC, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractedDTCUpdateOne) SaveX(ctx context.Context) *ExtractedDTC {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractedDTCUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractedDTCUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ExtractedDTCUpdateOne) sqlSave(ctx context.Context) (_node *ExtractedDTC, err error) {
	_spec := sqlgraph.NewUpdateSpec(extracteddtc.Table, extracteddtc.Columns, sqlgraph.NewFieldSpec(extracteddtc.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractedDTC.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extracteddtc.FieldID)
		for _, f := range fields {
			if !extracteddtc.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extracteddtc.FieldID {
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
		_spec.SetField(extracteddtc.FieldDocumentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(extracteddtc.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(extracteddtc.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(extracteddtc.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(extracteddtc.FieldCategory, field.TypeString, value)
	}
	if _u.mutation.CategoryCleared() {
		_spec.ClearField(extracteddtc.FieldCategory, field.TypeString)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(extracteddtc.FieldSeverity, field.TypeString, value)
	}
	if _u.mutation.SeverityCleared() {
		_spec.ClearField(extracteddtc.FieldSeverity, field.TypeString)
	}
	if value, ok := _u.mutation.SourceChunkID(); ok {
		_spec.SetField(extracteddtc.FieldSourceChunkID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Trust(); ok {
		_spec.SetField(extracteddtc.FieldTrust, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTrust(); ok {
		_spec.AddField(extracteddtc.FieldTrust, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Relevance(); ok {
		_spec.SetField(extracteddtc.FieldRelevance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRelevance(); ok {
		_spec.AddField(extracteddtc.FieldRelevance, field.TypeFloat64, value)
	}
	_node = &ExtractedDTC{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extracteddtc.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
