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
	"github.com/autodiag/refinery/ent/resolutionlog"
)

// ResolutionLogUpdate is the builder for updating ResolutionLog entities.
type ResolutionLogUpdate struct {
	config
	hooks    []Hook
	mutation *ResolutionLogMutation
}

// Where appends a list predicates to the ResolutionLogUpdate builder.
func (_u *ResolutionLogUpdate) Where(ps ...predicate.ResolutionLog) *ResolutionLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *ResolutionLogUpdate) SetRunID(v string) *ResolutionLogUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *ResolutionLogUpdate) SetNillableRunID(v *string) *ResolutionLogUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *ResolutionLogUpdate) SetDocumentID(v string) *ResolutionLogUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ResolutionLogUpdate) SetNillableDocumentID(v *string) *ResolutionLogUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *ResolutionLogUpdate) SetAction(v resolutionlog.Action) *ResolutionLogUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *ResolutionLogUpdate) SetNillableAction(v *resolutionlog.Action) *ResolutionLogUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetEntityTable sets the "entity_table" field.
func (_u *ResolutionLogUpdate) SetEntityTable(v string) *ResolutionLogUpdate {
	_u.mutation.SetEntityTable(v)
	return _u
}

// SetNillableEntityTable sets the "entity_table" field if the given value is not nil.
func (_u *ResolutionLogUpdate) SetNillableEntityTable(v *string) *ResolutionLogUpdate {
	if v != nil {
		_u.SetEntityTable(*v)
	}
	return _u
}

// ClearEntityTable clears the value of the "entity_table" field.
func (_u *ResolutionLogUpdate) ClearEntityTable() *ResolutionLogUpdate {
	_u.mutation.ClearEntityTable()
	return _u
}

// SetEntityID sets the "entity_id" field.
func (_u *ResolutionLogUpdate) SetEntityID(v string) *ResolutionLogUpdate {
	_u.mutation.SetEntityID(v)
	return _u
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (_u *ResolutionLogUpdate) SetNillableEntityID(v *string) *ResolutionLogUpdate {
	if v != nil {
		_u.SetEntityID(*v)
	}
	return _u
}

// ClearEntityID clears the value of the "entity_id" field.
func (_u *ResolutionLogUpdate) ClearEntityID() *ResolutionLogUpdate {
	_u.mutation.ClearEntityID()
	return _u
}

// SetDetails sets the "details" field.
func (_u *ResolutionLogUpdate) SetDetails(v map[string]interface{}) *ResolutionLogUpdate {
	_u.mutation.SetDetails(v)
	return _u
}

// ClearDetails clears the value of the "details" field.
func (_u *ResolutionLogUpdate) ClearDetails() *ResolutionLogUpdate {
	_u.mutation.ClearDetails()
	return _u
}

// Mutation returns the ResolutionLogMutation object of the builder.
func (_u *ResolutionLogUpdate) Mutation() *ResolutionLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResolutionLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResolutionLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResolutionLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResolutionLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResolutionLogUpdate) check() error {
	if v, ok := _u.mutation.Action(); ok {
		if err := resolutionlog.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "ResolutionLog.action": %w`, err)}
		}
	}
	return nil
}

func (_u *ResolutionLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(resolutionlog.Table, resolutionlog.Columns, sqlgraph.NewFieldSpec(resolutionlog.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(resolutionlog.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentID(); ok {
		_spec.SetField(resolutionlog.FieldDocumentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(resolutionlog.FieldAction, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EntityTable(); ok {
		_spec.SetField(resolutionlog.FieldEntityTable, field.TypeString, value)
	}
	if _u.mutation.EntityTableCleared() {
		_spec.ClearField(resolutionlog.FieldEntityTable, field.TypeString)
	}
	if value, ok := _u.mutation.EntityID(); ok {
		_spec.SetField(resolutionlog.FieldEntityID, field.TypeString, value)
	}
	if _u.mutation.EntityIDCleared() {
		_spec.ClearField(resolutionlog.FieldEntityID, field.TypeString)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(resolutionlog.FieldDetails, field.TypeJSON, value)
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(resolutionlog.FieldDetails, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resolutionlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResolutionLogUpdateOne is the builder for updating a single ResolutionLog entity.
type ResolutionLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResolutionLogMutation
}

// SetRunID sets the "run_id" field.
func (_u *ResolutionLogUpdateOne) SetRunID(v string) *ResolutionLogUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *ResolutionLogUpdateOne) SetNillableRunID(v *string) *ResolutionLogUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *ResolutionLogUpdateOne) SetDocumentID(v string) *ResolutionLogUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ResolutionLogUpdateOne) SetNillableDocumentID(v *string) *ResolutionLogUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *ResolutionLogUpdateOne) SetAction(v resolutionlog.Action) *ResolutionLogUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *ResolutionLogUpdateOne) SetNillableAction(v *resolutionlog.Action) *ResolutionLogUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetEntityTable sets the "entity_table" field.
func (_u *ResolutionLogUpdateOne) SetEntityTable(v string) *ResolutionLogUpdateOne {
	_u.mutation.SetEntityTable(v)
	return _u
}

// SetNillableEntityTable sets the "entity_table" field if the given value is not nil.
func (_u *ResolutionLogUpdateOne) SetNillableEntityTable(v *string) *ResolutionLogUpdateOne {
	if v != nil {
		_u.SetEntityTable(*v)
	}
	return _u
}

// ClearEntityTable clears the value of the "entity_table" field.
func (_u *ResolutionLogUpdateOne) ClearEntityTable() *ResolutionLogUpdateOne {
	_u.mutation.ClearEntityTable()
	return _u
}

// SetEntityID sets the "entity_id" field.
func (_u *ResolutionLogUpdateOne) SetEntityID(v string) *ResolutionLogUpdateOne {
	_u.mutation.SetEntityID(v)
	return _u
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (_u *ResolutionLogUpdateOne) SetNillableEntityID(v *string) *ResolutionLogUpdateOne {
	if v != nil {
		_u.SetEntityID(*v)
	}
	return _u
}

// ClearEntityID clears the value of the "entity_id" field.
func (_u *ResolutionLogUpdateOne) ClearEntityID() *ResolutionLogUpdateOne {
	_u.mutation.ClearEntityID()
	return _u
}

// SetDetails sets the "details" field.
func (_u *ResolutionLogUpdateOne) SetDetails(v map[string]interface{}) *ResolutionLogUpdateOne {
	_u.mutation.SetDetails(v)
	return _u
}

// ClearDetails clears the value of the "details" field.
func (_u *ResolutionLogUpdateOne) ClearDetails() *ResolutionLogUpdateOne {
	_u.mutation.ClearDetails()
	return _u
}

// Mutation returns the ResolutionLogMutation object of the builder.
func (_u *ResolutionLogUpdateOne) Mutation() *ResolutionLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the ResolutionLogUpdate builder.
func (_u *ResolutionLogUpdateOne) Where(ps ...predicate.ResolutionLog) *ResolutionLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResolutionLogUpdateOne) Select(field string, fields ...string) *ResolutionLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ResolutionLog entity.
func (_u *ResolutionLogUpdateOne) Save(ctx context.Context) (*ResolutionLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResolutionLogUpdateOne) SaveX(ctx context.Context) *ResolutionLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResolutionLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResolutionLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResolutionLogUpdateOne) check() error {
	if v, ok := _u.mutation.Action(); ok {
		if err := resolutionlog.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "ResolutionLog.action": %w`, err)}
		}
	}
	return nil
}

func (_u *ResolutionLogUpdateOne) sqlSave(ctx context.Context) (_node *ResolutionLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(resolutionlog.Table, resolutionlog.Columns, sqlgraph.NewFieldSpec(resolutionlog.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ResolutionLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, resolutionlog.FieldID)
		for _, f := range fields {
			if !resolutionlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != resolutionlog.FieldID {
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
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(resolutionlog.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentID(); ok {
		_spec.SetField(resolutionlog.FieldDocumentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(resolutionlog.FieldAction, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EntityTable(); ok {
		_spec.SetField(resolutionlog.FieldEntityTable, field.TypeString, value)
	}
	if _u.mutation.EntityTableCleared() {
		_spec.ClearField(resolutionlog.FieldEntityTable, field.TypeString)
	}
	if value, ok := _u.mutation.EntityID(); ok {
		_spec.SetField(resolutionlog.FieldEntityID, field.TypeString, value)
	}
	if _u.mutation.EntityIDCleared() {
		_spec.ClearField(resolutionlog.FieldEntityID, field.TypeString)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(resolutionlog.FieldDetails, field.TypeJSON, value)
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(resolutionlog.FieldDetails, field.TypeJSON)
	}
	_node = &ResolutionLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resolutionlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
