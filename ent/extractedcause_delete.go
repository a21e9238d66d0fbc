// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autodiag/refinery/ent/extractedcause"
	"github.com/autodiag/refinery/ent/predicate"
)

// ExtractedCauseDelete is the builder for deleting a ExtractedCause entity.
type ExtractedCauseDelete struct {
	config
	hooks    []Hook
	mutation *ExtractedCauseMutation
}

// Where appends a list predicates to the ExtractedCauseDelete builder.
func (_d *ExtractedCauseDelete) Where(ps ...predicate.ExtractedCause) *ExtractedCauseDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ExtractedCauseDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExtractedCauseDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ExtractedCauseDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(extractedcause.Table, sqlgraph.NewFieldSpec(extractedcause.FieldID, field.TypeString))
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

// ExtractedCauseDeleteOne is the builder for deleting a single ExtractedCause entity.
type ExtractedCauseDeleteOne struct {
	_d *ExtractedCauseDelete
}

// Where appends a list predicates to the ExtractedCauseDelete builder.
func (_d *ExtractedCauseDeleteOne) Where(ps ...predicate.ExtractedCause) *ExtractedCauseDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ExtractedCauseDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{extractedcause.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExtractedCauseDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
