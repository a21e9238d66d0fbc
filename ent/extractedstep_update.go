// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autodiag/refinery/ent/extractedstep"
	"github.com/autodiag/refinery/ent/predicate"
)

// ExtractedStepUpdate is the builder for updating ExtractedStep entities.
type ExtractedStepUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractedStepMutation
}

// Where appends a list predicates to the ExtractedStepUpdate builder.
func (_u *ExtractedStepUpdate) Where(ps ...predicate.ExtractedStep) *ExtractedStepUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *ExtractedStepUpdate) SetDocumentID(v string) *ExtractedStepUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ExtractedStepUpdate) SetNillableDocumentID(v *string) *ExtractedStepUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetDtcCode sets the "dtc_code" field.
func (_u *ExtractedStepUpdate) SetDtcCode(v string) *ExtractedStepUpdate {
	_u.mutation.SetDtcCode(v)
	return _u
}

// SetNillableDtcCode sets the "dtc_code" field if the given value is not nil.
func (_u *ExtractedStepUpdate) SetNillableDtcCode(v *string) *ExtractedStepUpdate {
	if v != nil {
		_u.SetDtcCode(*v)
	}
	return _u
}

// SetStepOrder sets the "step_order" field.
func (_u *ExtractedStepUpdate) SetStepOrder(v int) *ExtractedStepUpdate {
	_u.mutation.ResetStepOrder()
	_u.mutation.SetStepOrder(v)
	return _u
}

// SetNillableStepOrder sets the "step_order" field if the given value is not nil.
func (_u *ExtractedStepUpdate) SetNillableStepOrder(v *int) *ExtractedStepUpdate {
	if v != nil {
		_u.SetStepOrder(*v)
	}
	return _u
}

// AddStepOrder adds value to the "step_order" field.
func (_u *ExtractedStepUpdate) AddStepOrder(v int) *ExtractedStepUpdate {
	_u.mutation.AddStepOrder(v)
	return _u
}

// SetDescription sets the "description" field.
func (_u *ExtractedStepUpdate) SetDescription(v string) *ExtractedStepUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ExtractedStepUpdate) SetNillableDescription(v *string) *ExtractedStepUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetToolsRequired sets the "tools_required" field.
func (_u *ExtractedStepUpdate) SetToolsRequired(v string) *ExtractedStepUpdate {
	_u.mutation.SetToolsRequired(v)
	return _u
}

// SetNillableToolsRequired sets the "tools_required" field if the given value is not nil.
func (_u *ExtractedStepUpdate) SetNillableToolsRequired(v *string) *ExtractedStepUpdate {
	if v != nil {
		_u.SetToolsRequired(*v)
	}
	return _u
}

// ClearToolsRequired clears the value of the "tools_required" field.
func (_u *ExtractedStepUpdate) ClearToolsRequired() *ExtractedStepUpdate {
	_u.mutation.ClearToolsRequired()
	return _u
}

// SetExpectedValues sets the "expected_values" field.
func (_u *ExtractedStepUpdate) SetExpectedValues(v string) *ExtractedStepUpdate {
	_u.mutation.SetExpectedValues(v)
	return _u
}

// SetNillableExpectedValues sets the "expected_values" field if the given value is not nil.
func (_u *ExtractedStepUpdate) SetNillableExpectedValues(v *string) *ExtractedStepUpdate {
	if v != nil {
		_u.SetExpectedValues(*v)
	}
	return _u
}

// ClearExpectedValues clears the value of the "expected_values" field.
func (_u *ExtractedStepUpdate) ClearExpectedValues() *ExtractedStepUpdate {
	_u.mutation.ClearExpectedValues()
	return _u
}

// SetSourceChunkID sets the "source_chunk_id" field.
func (_u *ExtractedStepUpdate) SetSourceChunkID(v string) *ExtractedStepUpdate {
	_u.mutation.SetSourceChunkID(v)
	return _u
}

// SetNillableSourceChunkID sets the "source_chunk_id" field if the given value is not nil.
func (_u *ExtractedStepUpdate) SetNillableSourceChunkID(v *string) *ExtractedStepUpdate {
	if v != nil {
		_u.SetSourceChunkID(*v)
	}
	return _u
}

// SetTrust sets the "trust" field.
func (_u *ExtractedStepUpdate) SetTrust(v float64) *ExtractedStepUpdate {
	_u.mutation.ResetTrust()
	_u.mutation.SetTrust(v)
	return _u
}

// SetNillableTrust sets the "trust" field if the given value is not nil.
func (_u *ExtractedStepUpdate) SetNillableTrust(v *float64) *ExtractedStepUpdate {
	if v != nil {
		_u.SetTrust(*v)
	}
	return _u
}

// AddTrust adds value to the "trust" field.
func (_u *ExtractedStepUpdate) AddTrust(v float64) *ExtractedStepUpdate {
	_u.mutation.AddTrust(v)
	return _u
}

// SetRelevance sets the "relevance" field.
func (_u *ExtractedStepUpdate) SetRelevance(v float64) *ExtractedStepUpdate {
	_u.mutation.ResetRelevance()
	_u.mutation.SetRelevance(v)
	return _u
}

// SetNillableRelevance sets the "relevance" field if the given value is not nil.
func (_u *ExtractedStepUpdate) SetNillableRelevance(v *float64) *ExtractedStepUpdate {
	if v != nil {
		_u.SetRelevance(*v)
	}
	return _u
}

// AddRelevance adds value to the "relevance" field.
func (_u *ExtractedStepUpdate) AddRelevance(v float64) *ExtractedStepUpdate {
	_u.mutation.AddRelevance(v)
	return _u
}

// Mutation returns the ExtractedStepMutation object of the builder.
func (_u *ExtractedStepUpdate) Mutation() *ExtractedStepMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractedStepUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractedStepUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractedStepUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractedStepUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ExtractedStepUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(extractedstep.Table, extractedstep.Columns, sqlgraph.NewFieldSpec(extractedstep.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocumentID(); ok {
		_spec.SetField(extractedstep.FieldDocumentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DtcCode(); ok {
		_spec.SetField(extractedstep.FieldDtcCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepOrder(); ok {
		_spec.SetField(extractedstep.FieldStepOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepOrder(); ok {
		_spec.AddField(extractedstep.FieldStepOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(extractedstep.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToolsRequired(); ok {
		_spec.SetField(extractedstep.FieldToolsRequired, field.TypeString, value)
	}
	if _u.mutation.ToolsRequiredCleared() {
		_spec.ClearField(extractedstep.FieldToolsRequired, field.TypeString)
	}
	if value, ok := _u.mutation.ExpectedValues(); ok {
		_spec.SetField(extractedstep.FieldExpectedValues, field.TypeString, value)
	}
	if _u.mutation.ExpectedValuesCleared() {
		_spec.ClearField(extractedstep.FieldExpectedValues, field.TypeString)
	}
	if value, ok := _u.mutation.SourceChunkID(); ok {
		_spec.SetField(extractedstep.FieldSourceChunkID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Trust(); ok {
		_spec.SetField(extractedstep.FieldTrust, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTrust(); ok {
		_spec.AddField(extractedstep.FieldTrust, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Relevance(); ok {
		_spec.SetField(extractedstep.FieldRelevance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRelevance(); ok {
		_spec.AddField(extractedstep.FieldRelevance, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractedstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractedStepUpdateOne is the builder for updating a single ExtractedStep entity.
type ExtractedStepUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractedStepMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *ExtractedStepUpdateOne) SetDocumentID(v string) *ExtractedStepUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ExtractedStepUpdateOne) SetNillableDocumentID(v *string) *ExtractedStepUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetDtcCode sets the "dtc_code" field.
func (_u *ExtractedStepUpdateOne) SetDtcCode(v string) *ExtractedStepUpdateOne {
	_u.mutation.SetDtcCode(v)
	return _u
}

// SetNillableDtcCode sets the "dtc_code" field if the given value is not nil.
func (_u *ExtractedStepUpdateOne) SetNillableDtcCode(v *string) *ExtractedStepUpdateOne {
	if v != nil {
		_u.SetDtcCode(*v)
	}
	return _u
}

// SetStepOrder sets the "step_order" field.
func (_u *ExtractedStepUpdateOne) SetStepOrder(v int) *ExtractedStepUpdateOne {
	_u.mutation.ResetStepOrder()
	_u.mutation.SetStepOrder(v)
	return _u
}

// SetNillableStepOrder sets the "step_order" field if the given value is not nil.
func (_u *ExtractedStepUpdateOne) SetNillableStepOrder(v *int) *ExtractedStepUpdateOne {
	if v != nil {
		_u.SetStepOrder(*v)
	}
	return _u
}

// AddStepOrder adds value to the "step_order" field.
func (_u *ExtractedStepUpdateOne) AddStepOrder(v int) *ExtractedStepUpdateOne {
	_u.mutation.AddStepOrder(v)
	return _u
}

// SetDescription sets the "description" field.
func (_u *ExtractedStepUpdateOne) SetDescription(v string) *ExtractedStepUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ExtractedStepUpdateOne) SetNillableDescription(v *string) *ExtractedStepUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetToolsRequired sets the "tools_required" field.
func (_u *ExtractedStepUpdateOne) SetToolsRequired(v string) *ExtractedStepUpdateOne {
	_u.mutation.SetToolsRequired(v)
	return _u
}

// SetNillableToolsRequired sets the "tools_required" field if the given value is not nil.
func (_u *ExtractedStepUpdateOne) SetNillableToolsRequired(v *string) *ExtractedStepUpdateOne {
	if v != nil {
		_u.SetToolsRequired(*v)
	}
	return _u
}

// ClearToolsRequired clears the value of the "tools_required" field.
func (_u *ExtractedStepUpdateOne) ClearToolsRequired() *ExtractedStepUpdateOne {
	_u.mutation.ClearToolsRequired()
	return _u
}

// SetExpectedValues sets the "expected_values" field.
func (_u *ExtractedStepUpdateOne) SetExpectedValues(v string) *ExtractedStepUpdateOne {
	_u.mutation.SetExpectedValues(v)
	return _u
}

// SetNillableExpectedValues sets the "expected_values" field if the given value is not nil.
func (_u *ExtractedStepUpdateOne) SetNillableExpectedValues(v *string) *ExtractedStepUpdateOne {
	if v != nil {
		_u.SetExpectedValues(*v)
	}
	return _u
}

// ClearExpectedValues clears the value of the "expected_values" field.
func (_u *ExtractedStepUpdateOne) ClearExpectedValues() *ExtractedStepUpdateOne {
	_u.mutation.ClearExpectedValues()
	return _u
}

// SetSourceChunkID sets the "source_chunk_id" field.
func (_u *ExtractedStepUpdateOne) SetSourceChunkID(v string) *ExtractedStepUpdateOne {
	_u.mutation.SetSourceChunkID(v)
	return _u
}

// SetNillableSourceChunkID sets the "source_chunk_id" field if the given value is not nil.
func (_u *ExtractedStepUpdateOne) SetNillableSourceChunkID(v *string) *ExtractedStepUpdateOne {
	if v != nil {
		_u.SetSourceChunkID(*v)
	}
	return _u
}

// SetTrust sets the "trust" field.
func (_u *ExtractedStepUpdateOne) SetTrust(v float64) *ExtractedStepUpdateOne {
	_u.mutation.ResetTrust()
	_u.mutation.SetTrust(v)
	return _u
}

// SetNillableTrust sets the "trust" field if the given value is not nil.
func (_u *ExtractedStepUpdateOne) SetNillableTrust(v *float64) *ExtractedStepUpdateOne {
	if v != nil {
		_u.SetTrust(*v)
	}
	return _u
}

// AddTrust adds value to the "trust" field.
func (_u *ExtractedStepUpdateOne) AddTrust(v float64) *ExtractedStepUpdateOne {
	_u.mutation.AddTrust(v)
	return _u
}

// SetRelevance sets the "relevance" field.
func (_u *ExtractedStepUpdateOne) SetRelevance(v float64) *ExtractedStepUpdateOne {
	_u.mutation.ResetRelevance()
	_u.mutation.SetRelevance(v)
	return _u
}

// SetNillableRelevance sets the "relevance" field if the given value is not nil.
func (_u *ExtractedStepUpdateOne) SetNillableRelevance(v *float64) *ExtractedStepUpdateOne {
	if v != nil {
		_u.SetRelevance(*v)
	}
	return _u
}

// AddRelevance adds value to the "relevance" field.
func (_u *ExtractedStepUpdateOne) AddRelevance(v float64) *ExtractedStepUpdateOne {
	_u.mutation.AddRelevance(v)
	return _u
}

// Mutation returns the ExtractedStepMutation object of the builder.
func (_u *ExtractedStepUpdateOne) Mutation() *ExtractedStepMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExtractedStepUpdate builder.
func (_u *ExtractedStepUpdateOne) Where(ps ...predicate.ExtractedStep) *ExtractedStepUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractedStepUpdateOne) Select(field string, fields ...string) *ExtractedStepUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractedStep entity.
func (_u *ExtractedStepUpdateOne) Save(ctx context.Context) (*ExtractedStep, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractedStepUpdateOne) SaveX(ctx context.Context) *ExtractedStep {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractedStepUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractedStepUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ExtractedStepUpdateOne) sqlSave(ctx context.Context) (_node *ExtractedStep, err error) {
	_spec := sqlgraph.NewUpdateSpec(extractedstep.Table, extractedstep.Columns, sqlgraph.NewFieldSpec(extractedstep.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractedStep.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractedstep.FieldID)
		for _, f := range fields {
			if !extractedstep.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractedstep.FieldID {
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
		_spec.SetField(extractedstep.FieldDocumentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DtcCode(); ok {
		_spec.SetField(extractedstep.FieldDtcCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.StepOrder(); ok {
		_spec.SetField(extractedstep.FieldStepOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepOrder(); ok {
		_spec.AddField(extractedstep.FieldStepOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(extractedstep.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.ToolsRequired(); ok {
		_spec.SetField(extractedstep.FieldToolsRequired, field.TypeString, value)
	}
	if _u.mutation.ToolsRequiredCleared() {
		_spec.ClearField(extractedstep.FieldToolsRequired, field.TypeString)
	}
	if value, ok := _u.mutation.ExpectedValues(); ok {
		_spec.SetField(extractedstep.FieldExpectedValues, field.TypeString, value)
	}
	if _u.mutation.ExpectedValuesCleared() {
		_spec.ClearField(extractedstep.FieldExpectedValues, field.TypeString)
	}
	if value, ok := _u.mutation.SourceChunkID(); ok {
		_spec.SetField(extractedstep.FieldSourceChunkID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Trust(); ok {
		_spec.SetField(extractedstep.FieldTrust, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTrust(); ok {
		_spec.AddField(extractedstep.FieldTrust, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Relevance(); ok {
		_spec.SetField(extractedstep.FieldRelevance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRelevance(); ok {
		_spec.AddField(extractedstep.FieldRelevance, field.TypeFloat64, value)
	}
	_node = &ExtractedStep{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractedstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
