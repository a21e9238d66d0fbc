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
	"github.com/autodiag/refinery/ent/crawlrequest"
	"github.com/autodiag/refinery/ent/predicate"
)

// CrawlRequestUpdate is the builder for updating CrawlRequest entities.
type CrawlRequestUpdate struct {
	config
	hooks    []Hook
	mutation *CrawlRequestMutation
}

// Where appends a list predicates to the CrawlRequestUpdate builder.
func (_u *CrawlRequestUpdate) Where(ps ...predicate.CrawlRequest) *CrawlRequestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetURL sets the "url" field.
func (_u *CrawlRequestUpdate) SetURL(v string) *CrawlRequestUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *CrawlRequestUpdate) SetNillableURL(v *string) *CrawlRequestUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CrawlRequestUpdate) SetStatus(v crawlrequest.Status) *CrawlRequestUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CrawlRequestUpdate) SetNillableStatus(v *crawlrequest.Status) *CrawlRequestUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDepth sets the "depth" field.
func (_u *CrawlRequestUpdate) SetDepth(v int) *CrawlRequestUpdate {
	_u.mutation.ResetDepth()
	_u.mutation.SetDepth(v)
	return _u
}

// SetNillableDepth sets the "depth" field if the given value is not nil.
func (_u *CrawlRequestUpdate) SetNillableDepth(v *int) *CrawlRequestUpdate {
	if v != nil {
		_u.SetDepth(*v)
	}
	return _u
}

// AddDepth adds value to the "depth" field.
func (_u *CrawlRequestUpdate) AddDepth(v int) *CrawlRequestUpdate {
	_u.mutation.AddDepth(v)
	return _u
}

// SetMaxDepth sets the "max_depth" field.
func (_u *CrawlRequestUpdate) SetMaxDepth(v int) *CrawlRequestUpdate {
	_u.mutation.ResetMaxDepth()
	_u.mutation.SetMaxDepth(v)
	return _u
}

// SetNillableMaxDepth sets the "max_depth" field if the given value is not nil.
func (_u *CrawlRequestUpdate) SetNillableMaxDepth(v *int) *CrawlRequestUpdate {
	if v != nil {
		_u.SetMaxDepth(*v)
	}
	return _u
}

// AddMaxDepth adds value to the "max_depth" field.
func (_u *CrawlRequestUpdate) AddMaxDepth(v int) *CrawlRequestUpdate {
	_u.mutation.AddMaxDepth(v)
	return _u
}

// SetParentURL sets the "parent_url" field.
func (_u *CrawlRequestUpdate) SetParentURL(v string) *CrawlRequestUpdate {
	_u.mutation.SetParentURL(v)
	return _u
}

// SetNillableParentURL sets the "parent_url" field if the given value is not nil.
func (_u *CrawlRequestUpdate) SetNillableParentURL(v *string) *CrawlRequestUpdate {
	if v != nil {
		_u.SetParentURL(*v)
	}
	return _u
}

// ClearParentURL clears the value of the "parent_url" field.
func (_u *CrawlRequestUpdate) ClearParentURL() *CrawlRequestUpdate {
	_u.mutation.ClearParentURL()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *CrawlRequestUpdate) SetErrorMessage(v string) *CrawlRequestUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *CrawlRequestUpdate) SetNillableErrorMessage(v *string) *CrawlRequestUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *CrawlRequestUpdate) ClearErrorMessage() *CrawlRequestUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *CrawlRequestUpdate) SetCompletedAt(v time.Time) *CrawlRequestUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *CrawlRequestUpdate) SetNillableCompletedAt(v *time.Time) *CrawlRequestUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *CrawlRequestUpdate) ClearCompletedAt() *CrawlRequestUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the CrawlRequestMutation object of the builder.
func (_u *CrawlRequestUpdate) Mutation() *CrawlRequestMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CrawlRequestUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CrawlRequestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CrawlRequestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CrawlRequestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CrawlRequestUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := crawlrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CrawlRequest.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Depth(); ok {
		if err := crawlrequest.DepthValidator(v); err != nil {
			return &ValidationError{Name: "depth", err: fmt.Errorf(`ent: validator failed for field "CrawlRequest.depth": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxDepth(); ok {
		if err := crawlrequest.MaxDepthValidator(v); err != nil {
			return &ValidationError{Name: "max_depth", err: fmt.Errorf(`ent: validator failed for field "CrawlRequest.max_depth": %w`, err)}
		}
	}
	return nil
}

func (_u *CrawlRequestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(crawlrequest.Table, crawlrequest.Columns, sqlgraph.NewFieldSpec(crawlrequest.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(crawlrequest.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(crawlrequest.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Depth(); ok {
		_spec.SetField(crawlrequest.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDepth(); ok {
		_spec.AddField(crawlrequest.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxDepth(); ok {
		_spec.SetField(crawlrequest.FieldMaxDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxDepth(); ok {
		_spec.AddField(crawlrequest.FieldMaxDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ParentURL(); ok {
		_spec.SetField(crawlrequest.FieldParentURL, field.TypeString, value)
	}
	if _u.mutation.ParentURLCleared() {
		_spec.ClearField(crawlrequest.FieldParentURL, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(crawlrequest.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(crawlrequest.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(crawlrequest.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(crawlrequest.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{crawlrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CrawlRequestUpdateOne is the builder for updating a single CrawlRequest entity.
type CrawlRequestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CrawlRequestMutation
}

// SetURL sets the "url" field.
func (_u *CrawlRequestUpdateOne) SetURL(v string) *CrawlRequestUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *CrawlRequestUpdateOne) SetNillableURL(v *string) *CrawlRequestUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *CrawlRequestUpdateOne) SetStatus(v crawlrequest.Status) *CrawlRequestUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CrawlRequestUpdateOne) SetNillableStatus(v *crawlrequest.Status) *CrawlRequestUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDepth sets the "depth" field.
func (_u *CrawlRequestUpdateOne) SetDepth(v int) *CrawlRequestUpdateOne {
	_u.mutation.ResetDepth()
	_u.mutation.SetDepth(v)
	return _u
}

// SetNillableDepth sets the "depth" field if the given value is not nil.
func (_u *CrawlRequestUpdateOne) SetNillableDepth(v *int) *CrawlRequestUpdateOne {
	if v != nil {
		_u.SetDepth(*v)
	}
	return _u
}

// AddDepth adds value to the "depth" field.
func (_u *CrawlRequestUpdateOne) AddDepth(v int) *CrawlRequestUpdateOne {
	_u.mutation.AddDepth(v)
	return _u
}

// SetMaxDepth sets the "max_depth" field.
func (_u *CrawlRequestUpdateOne) SetMaxDepth(v int) *CrawlRequestUpdateOne {
	_u.mutation.ResetMaxDepth()
	_u.mutation.SetMaxDepth(v)
	return _u
}

// SetNillableMaxDepth sets the "max_depth" field if the given value is not nil.
func (_u *CrawlRequestUpdateOne) SetNillableMaxDepth(v *int) *CrawlRequestUpdateOne {
	if v != nil {
		_u.SetMaxDepth(*v)
	}
	return _u
}

// AddMaxDepth adds value to the "max_depth" field.
func (_u *CrawlRequestUpdateOne) AddMaxDepth(v int) *CrawlRequestUpdateOne {
	_u.mutation.AddMaxDepth(v)
	return _u
}

// SetParentURL sets the "parent_url" field.
func (_u *CrawlRequestUpdateOne) SetParentURL(v string) *CrawlRequestUpdateOne {
	_u.mutation.SetParentURL(v)
	return _u
}

// SetNillableParentURL sets the "parent_url" field if the given value is not nil.
func (_u *CrawlRequestUpdateOne) SetNillableParentURL(v *string) *CrawlRequestUpdateOne {
	if v != nil {
		_u.SetParentURL(*v)
	}
	return _u
}

// ClearParentURL clears the value of the "parent_url" field.
func (_u *CrawlRequestUpdateOne) ClearParentURL() *CrawlRequestUpdateOne {
	_u.mutation.ClearParentURL()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *CrawlRequestUpdateOne) SetErrorMessage(v string) *CrawlRequestUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *CrawlRequestUpdateOne) SetNillableErrorMessage(v *string) *CrawlRequestUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *CrawlRequestUpdateOne) ClearErrorMessage() *CrawlRequestUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *CrawlRequestUpdateOne) SetCompletedAt(v time.Time) *CrawlRequestUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *CrawlRequestUpdateOne) SetNillableCompletedAt(v *time.Time) *CrawlRequestUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *CrawlRequestUpdateOne) ClearCompletedAt() *CrawlRequestUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the CrawlRequestMutation object of the builder.
func (_u *CrawlRequestUpdateOne) Mutation() *CrawlRequestMutation {
	return _u.mutation
}

// Where appends a list predicates to the CrawlRequestUpdate builder.
func (_u *CrawlRequestUpdateOne) Where(ps ...predicate.CrawlRequest) *CrawlRequestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CrawlRequestUpdateOne) Select(field string, fields ...string) *CrawlRequestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CrawlRequest entity.
func (_u *CrawlRequestUpdateOne) Save(ctx context.Context) (*CrawlRequest, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CrawlRequestUpdateOne) SaveX(ctx context.Context) *CrawlRequest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CrawlRequestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CrawlRequestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CrawlRequestUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := crawlrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CrawlRequest.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Depth(); ok {
		if err := crawlrequest.DepthValidator(v); err != nil {
			return &ValidationError{Name: "depth", err: fmt.Errorf(`ent: validator failed for field "CrawlRequest.depth": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxDepth(); ok {
		if err := crawlrequest.MaxDepthValidator(v); err != nil {
			return &ValidationError{Name: "max_depth", err: fmt.Errorf(`ent: validator failed for field "CrawlRequest.max_depth": %w`, err)}
		}
	}
	return nil
}

func (_u *CrawlRequestUpdateOne) sqlSave(ctx context.Context) (_node *CrawlRequest, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(crawlrequest.Table, crawlrequest.Columns, sqlgraph.NewFieldSpec(crawlrequest.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CrawlRequest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, crawlrequest.FieldID)
		for _, f := range fields {
			if !crawlrequest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != crawlrequest.FieldID {
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
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(crawlrequest.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(crawlrequest.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Depth(); ok {
		_spec.SetField(crawlrequest.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDepth(); ok {
		_spec.AddField(crawlrequest.FieldDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxDepth(); ok {
		_spec.SetField(crawlrequest.FieldMaxDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxDepth(); ok {
		_spec.AddField(crawlrequest.FieldMaxDepth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ParentURL(); ok {
		_spec.SetField(crawlrequest.FieldParentURL, field.TypeString, value)
	}
	if _u.mutation.ParentURLCleared() {
		_spec.ClearField(crawlrequest.FieldParentURL, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(crawlrequest.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(crawlrequest.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(crawlrequest.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(crawlrequest.FieldCompletedAt, field.TypeTime)
	}
	_node = &CrawlRequest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{crawlrequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
