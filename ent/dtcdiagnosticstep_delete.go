// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autodiag/refinery/ent/dtcdiagnosticstep"
	"github.com/autodiag/refinery/ent/predicate"
)

// DTCDiagnosticStepDelete is the builder for deleting a DTCDiagnosticStep entity.
type DTCDiagnosticStepDelete struct {
	config
	hooks    []Hook
	mutation *DTCDiagnosticStepMutation
}

// Where appends a list predicates to the DTCDiagnosticStepDelete builder.
func (_d *DTCDiagnosticStepDelete) Where(ps ...predicate.DTCDiagnosticStep) *DTCDiagnosticStepDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DTCDiagnosticStepDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DTCDiagnosticStepDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DTCDiagnosticStepDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(dtcdiagnosticstep.Table, sqlgraph.NewFieldSpec(dtcdiagnosticstep.FieldID, field.TypeString))
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

// DTCDiagnosticStepDeleteOne is the builder for deleting a single DTCDiagnosticStep entity.
type DTCDiagnosticStepDeleteOne struct {
	_d *DTCDiagnosticStepDelete
}

// Where appends a list predicates to the DTCDiagnosticStepDelete builder.
func (_d *DTCDiagnosticStepDeleteOne) Where(ps ...predicate.DTCDiagnosticStep) *DTCDiagnosticStepDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DTCDiagnosticStepDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{dtcdiagnosticstep.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DTCDiagnosticStepDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
