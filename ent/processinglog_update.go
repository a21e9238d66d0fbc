// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autodiag/refinery/ent/document"
	"github.com/autodiag/refinery/ent/predicate"
	"github.com/autodiag/refinery/ent/processinglog"
)

// ProcessingLogUpdate is the builder for updating ProcessingLog entities.
type ProcessingLogUpdate struct {
	config
	hooks    []Hook
	mutation *ProcessingLogMutation
}

// Where appends a list predicates to the ProcessingLogUpdate builder.
func (_u *ProcessingLogUpdate) Where(ps ...predicate.ProcessingLog) *ProcessingLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *ProcessingLogUpdate) SetDocumentID(v string) *ProcessingLogUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ProcessingLogUpdate) SetNillableDocumentID(v *string) *ProcessingLogUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *ProcessingLogUpdate) SetStage(v string) *ProcessingLogUpdate {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *ProcessingLogUpdate) SetNillableStage(v *string) *ProcessingLogUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProcessingLogUpdate) SetStatus(v processinglog.Status) *ProcessingLogUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProcessingLogUpdate) SetNillableStatus(v *processinglog.Status) *ProcessingLogUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *ProcessingLogUpdate) SetMessage(v string) *ProcessingLogUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *ProcessingLogUpdate) SetNillableMessage(v *string) *ProcessingLogUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// ClearMessage clears the value of the "message" field.
func (_u *ProcessingLogUpdate) ClearMessage() *ProcessingLogUpdate {
	_u.mutation.ClearMessage()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *ProcessingLogUpdate) SetDurationMs(v int64) *ProcessingLogUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *ProcessingLogUpdate) SetNillableDurationMs(v *int64) *ProcessingLogUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *ProcessingLogUpdate) AddDurationMs(v int64) *ProcessingLogUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *ProcessingLogUpdate) ClearDurationMs() *ProcessingLogUpdate {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ProcessingLogUpdate) SetDocument(v *Document) *ProcessingLogUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the ProcessingLogMutation object of the builder.
func (_u *ProcessingLogUpdate) Mutation() *ProcessingLogMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ProcessingLogUpdate) ClearDocument() *ProcessingLogUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProcessingLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessingLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProcessingLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessingLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcessingLogUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := processinglog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProcessingLog.status": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProcessingLog.document"`)
	}
	return nil
}

func (_u *ProcessingLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(processinglog.Table, processinglog.Columns, sqlgraph.NewFieldSpec(processinglog.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(processinglog.FieldStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(processinglog.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(processinglog.FieldMessage, field.TypeString, value)
	}
	if _u.mutation.MessageCleared() {
		_spec.ClearField(processinglog.FieldMessage, field.TypeString)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(processinglog.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(processinglog.FieldDurationMs, field.TypeInt64, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(processinglog.FieldDurationMs, field.TypeInt64)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   processinglog.DocumentTable,
			Columns: []string{processinglog.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   processinglog.DocumentTable,
			Columns: []string{processinglog.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processinglog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProcessingLogUpdateOne is the builder for updating a single ProcessingLog entity.
type ProcessingLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProcessingLogMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *ProcessingLogUpdateOne) SetDocumentID(v string) *ProcessingLogUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ProcessingLogUpdateOne) SetNillableDocumentID(v *string) *ProcessingLogUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *ProcessingLogUpdateOne) SetStage(v string) *ProcessingLogUpdateOne {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *ProcessingLogUpdateOne) SetNillableStage(v *string) *ProcessingLogUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProcessingLogUpdateOne) SetStatus(v processinglog.Status) *ProcessingLogUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProcessingLogUpdateOne) SetNillableStatus(v *processinglog.Status) *ProcessingLogUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMessage sets the "message" field.
func (_u *ProcessingLogUpdateOne) SetMessage(v string) *ProcessingLogUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *ProcessingLogUpdateOne) SetNillableMessage(v *string) *ProcessingLogUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// ClearMessage clears the value of the "message" field.
func (_u *ProcessingLogUpdateOne) ClearMessage() *ProcessingLogUpdateOne {
	_u.mutation.ClearMessage()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *ProcessingLogUpdateOne) SetDurationMs(v int64) *ProcessingLogUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *ProcessingLogUpdateOne) SetNillableDurationMs(v *int64) *ProcessingLogUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *ProcessingLogUpdateOne) AddDurationMs(v int64) *ProcessingLogUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *ProcessingLogUpdateOne) ClearDurationMs() *ProcessingLogUpdateOne {
	_u.mutation.ClearDurationMs()
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *ProcessingLogUpdateOne) SetDocument(v *Document) *ProcessingLogUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the ProcessingLogMutation object of the builder.
func (_u *ProcessingLogUpdateOne) Mutation() *ProcessingLogMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *ProcessingLogUpdateOne) ClearDocument() *ProcessingLogUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the ProcessingLogUpdate builder.
func (_u *ProcessingLogUpdateOne) Where(ps ...predicate.ProcessingLog) *ProcessingLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProcessingLogUpdateOne) Select(field string, fields ...string) *ProcessingLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProcessingLog entity.
func (_u *ProcessingLogUpdateOne) Save(ctx context.Context) (*ProcessingLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessingLogUpdateOne) SaveX(ctx context.Context) *ProcessingLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProcessingLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessingLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcessingLogUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := processinglog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProcessingLog.status": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProcessingLog.document"`)
	}
	return nil
}

func (_u *ProcessingLogUpdateOne) sqlSave(ctx context.Context) (_node *ProcessingLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(processinglog.Table, processinglog.Columns, sqlgraph.NewFieldSpec(processinglog.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProcessingLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, processinglog.FieldID)
		for _, f := range fields {
			if !processinglog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != processinglog.FieldID {
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
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(processinglog.FieldStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(processinglog.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(processinglog.FieldMessage, field.TypeString, value)
	}
	if _u.mutation.MessageCleared() {
		_spec.ClearField(processinglog.FieldMessage, field.TypeString)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(processinglog.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(processinglog.FieldDurationMs, field.TypeInt64, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(processinglog.FieldDurationMs, field.TypeInt64)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   processinglog.DocumentTable,
			Columns: []string{processinglog.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   processinglog.DocumentTable,
			Columns: []string{processinglog.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ProcessingLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processinglog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
