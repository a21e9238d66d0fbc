// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autodiag/refinery/ent/extracteddtc"
	"github.com/autodiag/refinery/ent/predicate"
)

// ExtractedDTCDelete is the builder for deleting a ExtractedDTC entity.
type ExtractedDTCDelete struct {
	config
	hooks    []Hook
	mutation *ExtractedDTCMutation
}

// Where appends a list predicates to the ExtractedDTCDelete builder.
func (_d *ExtractedDTCDelete) Where(ps ...predicate.ExtractedDTC) *ExtractedDTCDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ExtractedDTCDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExtractedDTCDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ExtractedDTCDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(extracteddtc.Table, sqlgraph.NewFieldSpec(extracteddtc.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ExtractedDTCDeleteOne is the builder for deleting a single ExtractedDTC entity.
type ExtractedDTCDeleteOne struct {
	_d *ExtractedDTCDelete
}

// Where appends a list predicates to the ExtractedDTCDelete builder.
func (_d *ExtractedDTCDeleteOne) Where(ps ...predicate.ExtractedDTC) *ExtractedDTCDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ExtractedDTCDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{extracteddtc.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExtractedDTCDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
