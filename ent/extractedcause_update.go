// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autodiag/refinery/ent/extractedcause"
	"github.com/autodiag/refinery/ent/predicate"
)

// ExtractedCauseUpdate is the builder for updating ExtractedCause entities.
type ExtractedCauseUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractedCauseMutation
}

// Where appends a list predicates to the ExtractedCauseUpdate builder.
func (_u *ExtractedCauseUpdate) Where(ps ...predicate.ExtractedCause) *ExtractedCauseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *ExtractedCauseUpdate) SetDocumentID(v string) *ExtractedCauseUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ExtractedCauseUpdate) SetNillableDocumentID(v *string) *ExtractedCauseUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetDtcCode sets the "dtc_code" field.
func (_u *ExtractedCauseUpdate) SetDtcCode(v string) *ExtractedCauseUpdate {
	_u.mutation.SetDtcCode(v)
	return _u
}

// SetNillableDtcCode sets the "dtc_code" field if the given value is not nil.
func (_u *ExtractedCauseUpdate) SetNillableDtcCode(v *string) *ExtractedCauseUpdate {
	if v != nil {
		_u.SetDtcCode(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ExtractedCauseUpdate) SetDescription(v string) *ExtractedCauseUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ExtractedCauseUpdate) SetNillableDescription(v *string) *ExtractedCauseUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetLikelihood sets the "likelihood" field.
func (_u *ExtractedCauseUpdate) SetLikelihood(v string) *ExtractedCauseUpdate {
	_u.mutation.SetLikelihood(v)
	return _u
}

// SetNillableLikelihood sets the "likelihood" field if the given value is not nil.
func (_u *ExtractedCauseUpdate) SetNillableLikelihood(v *string) *ExtractedCauseUpdate {
	if v != nil {
		_u.SetLikelihood(*v)
	}
	return _u
}

// ClearLikelihood clears the value of the "likelihood" field.
func (_u *ExtractedCauseUpdate) ClearLikelihood() *ExtractedCauseUpdate {
	_u.mutation.ClearLikelihood()
	return _u
}

// SetSourceChunkID sets the "source_chunk_id" field.
func (_u *ExtractedCauseUpdate) SetSourceChunkID(v string) *ExtractedCauseUpdate {
	_u.mutation.SetSourceChunkID(v)
	return _u
}

// SetNillableSourceChunkID sets the "source_chunk_id" field if the given value is not nil.
func (_u *ExtractedCauseUpdate) SetNillableSourceChunkID(v *string) *ExtractedCauseUpdate {
	if v != nil {
		_u.SetSourceChunkID(*v)
	}
	return _u
}

// SetTrust sets the "trust" field.
func (_u *ExtractedCauseUpdate) SetTrust(v float64) *ExtractedCauseUpdate {
	_u.mutation.ResetTrust()
	_u.mutation.SetTrust(v)
	return _u
}

// SetNillableTrust sets the "trust" field if the given value is not nil.
func (_u *ExtractedCauseUpdate) SetNillableTrust(v *float64) *ExtractedCauseUpdate {
	if v != nil {
		_u.SetTrust(*v)
	}
	return _u
}

// AddTrust adds value to the "trust" field.
func (_u *ExtractedCauseUpdate) AddTrust(v float64) *ExtractedCauseUpdate {
	_u.mutation.AddTrust(v)
	return _u
}

// SetRelevance sets the "relevance" field.
func (_u *ExtractedCauseUpdate) SetRelevance(v float64) *ExtractedCauseUpdate {
	_u.mutation.ResetRelevance()
	_u.mutation.SetRelevance(v)
	return _u
}

// SetNillableRelevance sets the "relevance" field if the given value is not nil.
func (_u *ExtractedCauseUpdate) SetNillableRelevance(v *float64) *ExtractedCauseUpdate {
	if v != nil {
		_u.SetRelevance(*v)
	}
	return _u
}

// AddRelevance adds value to the "relevance" field.
func (_u *ExtractedCauseUpdate) AddRelevance(v float64) *ExtractedCauseUpdate {
	_u.mutation.AddRelevance(v)
	return _u
}

// Mutation returns the ExtractedCauseMutation object of the builder.
func (_u *ExtractedCauseUpdate) Mutation() *ExtractedCauseMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractedCauseUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractedCauseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractedCauseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractedCauseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ExtractedCauseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(extractedcause.Table, extractedcause.Columns, sqlgraph.NewFieldSpec(extractedcause.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocumentID(); ok {
		_spec.SetField(extractedcause.FieldDocumentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DtcCode(); ok {
		_spec.SetField(extractedcause.FieldDtcCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(extractedcause.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Likelihood(); ok {
		_spec.SetField(extractedcause.FieldLikelihood, field.TypeString, value)
	}
	if _u.mutation.LikelihoodCleared() {
		_spec.ClearField(extractedcause.FieldLikelihood, field.TypeString)
	}
	if value, ok := _u.mutation.SourceChunkID(); ok {
		_spec.SetField(extractedcause.FieldSourceChunkID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Trust(); ok {
		_spec.SetField(extractedcause.FieldTrust, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTrust(); ok {
		_spec.AddField(extractedcause.FieldTrust, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Relevance(); ok {
		_spec.SetField(extractedcause.FieldRelevance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRelevance(); ok {
		_spec.AddField(extractedcause.FieldRelevance, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractedcause.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractedCauseUpdateOne is the builder for updating a single ExtractedCause entity.
type ExtractedCauseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractedCauseMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *ExtractedCauseUpdateOne) SetDocumentID(v string) *ExtractedCauseUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ExtractedCauseUpdateOne) SetNillableDocumentID(v *string) *ExtractedCauseUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetDtcCode sets the "dtc_code" field.
func (_u *ExtractedCauseUpdateOne) SetDtcCode(v string) *ExtractedCauseUpdateOne {
	_u.mutation.SetDtcCode(v)
	return _u
}

// SetNillableDtcCode sets the "dtc_code" field if the given value is not nil.
func (_u *ExtractedCauseUpdateOne) SetNillableDtcCode(v *string) *ExtractedCauseUpdateOne {
	if v != nil {
		_u.SetDtcCode(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ExtractedCauseUpdateOne) SetDescription(v string) *ExtractedCauseUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ExtractedCauseUpdateOne) SetNillableDescription(v *string) *ExtractedCauseUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetLikelihood sets the "likelihood" field.
func (_u *ExtractedCauseUpdateOne) SetLikelihood(v string) *ExtractedCauseUpdateOne {
	_u.mutation.SetLikelihood(v)
	return _u
}

// SetNillableLikelihood sets the "likelihood" field if the given value is not nil.
func (_u *ExtractedCauseUpdateOne) SetNillableLikelihood(v *string) *ExtractedCauseUpdateOne {
	if v != nil {
		_u.SetLikelihood(*v)
	}
	return _u
}

// ClearLikelihood clears the value of the "likelihood" field.
func (_u *ExtractedCauseUpdateOne) ClearLikelihood() *ExtractedCauseUpdateOne {
	_u.mutation.ClearLikelihood()
	return _u
}

// SetSourceChunkID sets the "source_chunk_id" field.
func (_u *ExtractedCauseUpdateOne) SetSourceChunkID(v string) *ExtractedCauseUpdateOne {
	_u.mutation.SetSourceChunkID(v)
	return _u
}

// SetNillableSourceChunkID sets the "source_chunk_id" field if the given value is not nil.
func (_u *ExtractedCauseUpdateOne) SetNillableSourceChunkID(v *string) *ExtractedCauseUpdateOne {
	if v != nil {
		_u.SetSourceChunkID(*v)
	}
	return _u
}

// SetTrust sets the "trust" field.
func (_u *ExtractedCauseUpdateOne) SetTrust(v float64) *ExtractedCauseUpdateOne {
	_u.mutation.ResetTrust()
	_u.mutation.SetTrust(v)
	return _u
}

// SetNillableTrust sets the "trust" field if the given value is not nil.
func (_u *ExtractedCauseUpdateOne) SetNillableTrust(v *float64) *ExtractedCauseUpdateOne {
	if v != nil {
		_u.SetTrust(*v)
	}
	return _u
}

// AddTrust adds value to the "trust" field.
func (_u *ExtractedCauseUpdateOne) AddTrust(v float64) *ExtractedCauseUpdateOne {
	_u.mutation.AddTrust(v)
	return _u
}

// SetRelevance sets the "relevance" field.
func (_u *ExtractedCauseUpdateOne) SetRelevance(v float64) *ExtractedCauseUpdateOne {
	_u.mutation.ResetRelevance()
	_u.mutation.SetRelevance(v)
	return _u
}

// SetNillableRelevance sets the "relevance" field if the given value is not nil.
func (_u *ExtractedCauseUpdateOne) SetNillableRelevance(v *float64) *ExtractedCauseUpdateOne {
	if v != nil {
		_u.SetRelevance(*v)
	}
	return _u
}

// AddRelevance adds value to the "relevance" field.
func (_u *ExtractedCauseUpdateOne) AddRelevance(v float64) *ExtractedCauseUpdateOne {
	_u.mutation.AddRelevance(v)
	return _u
}

// Mutation returns the ExtractedCauseMutation object of the builder.
func (_u *ExtractedCauseUpdateOne) Mutation() *ExtractedCauseMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExtractedCauseUpdate builder.
func (_u *ExtractedCauseUpdateOne) Where(ps ...predicate.ExtractedCause) *ExtractedCauseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractedCauseUpdateOne) Select(field string, fields ...string) *ExtractedCauseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractedCause entity.
func (_u *ExtractedCauseUpdateOne) Save(ctx context.Context) (*ExtractedCause, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractedCauseUpdateOne) SaveX(ctx context.Context) *ExtractedCause {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractedCauseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractedCauseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ExtractedCauseUpdateOne) sqlSave(ctx context.Context) (_node *ExtractedCause, err error) {
	_spec := sqlgraph.NewUpdateSpec(extractedcause.Table, extractedcause.Columns, sqlgraph.NewFieldSpec(extractedcause.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractedCause.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractedcause.FieldID)
		for _, f := range fields {
			if !extractedcause.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractedcause.FieldID {
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
		_spec.SetField(extractedcause.FieldDocumentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DtcCode(); ok {
		_spec.SetField(extractedcause.FieldDtcCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(extractedcause.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Likelihood(); ok {
		_spec.SetField(extractedcause.FieldLikelihood, field.TypeString, value)
	}
	if _u.mutation.LikelihoodCleared() {
		_spec.ClearField(extractedcause.FieldLikelihood, field.TypeString)
	}
	if value, ok := _u.mutation.SourceChunkID(); ok {
		_spec.SetField(extractedcause.FieldSourceChunkID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Trust(); ok {
		_spec.SetField(extractedcause.FieldTrust, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTrust(); ok {
		_spec.AddField(extractedcause.FieldTrust, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Relevance(); ok {
		_spec.SetField(extractedcause.FieldRelevance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRelevance(); ok {
		_spec.AddField(extractedcause.FieldRelevance, field.TypeFloat64, value)
	}
	_node = &ExtractedCause{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractedcause.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
