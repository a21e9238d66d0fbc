// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autodiag/refinery/ent/extractedtsb"
	"github.com/autodiag/refinery/ent/predicate"
)

// ExtractedTSBDelete is the builder for deleting a ExtractedTSB entity.
type ExtractedTSBDelete struct {
	config
	hooks    []Hook
	mutation *ExtractedTSBMutation
}

// Where appends a list predicates to the ExtractedTSBDelete builder.
func (_d *ExtractedTSBDelete) Where(ps ...predicate.ExtractedTSB) *ExtractedTSBDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ExtractedTSBDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExtractedTSBDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ExtractedTSBDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(extractedtsb.Table, sqlgraph.NewFieldSpec(extractedtsb.FieldID, field.TypeString))
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

// ExtractedTSBDeleteOne is the builder for deleting a single ExtractedTSB entity.
type ExtractedTSBDeleteOne struct {
	_d *ExtractedTSBDelete
}

// Where appends a list predicates to the ExtractedTSBDelete builder.
func (_d *ExtractedTSBDeleteOne) Where(ps ...predicate.ExtractedTSB) *ExtractedTSBDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ExtractedTSBDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{extractedtsb.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExtractedTSBDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
