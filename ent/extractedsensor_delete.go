// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autodiag/refinery/ent/extractedsensor"
	"github.com/autodiag/refinery/ent/predicate"
)

// ExtractedSensorDelete is the builder for deleting a ExtractedSensor entity.
type ExtractedSensorDelete struct {
	config
	hooks    []Hook
	mutation *ExtractedSensorMutation
}

// Where appends a list predicates to the ExtractedSensorDelete builder.
func (_d *ExtractedSensorDelete) Where(ps ...predicate.ExtractedSensor) *ExtractedSensorDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ExtractedSensorDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExtractedSensorDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ExtractedSensorDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(extractedsensor.Table, sqlgraph.NewFieldSpec(extractedsensor.FieldID, field.TypeString))
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

// ExtractedSensorDeleteOne is the builder for deleting a single ExtractedSensor entity.
type ExtractedSensorDeleteOne struct {
	_d *ExtractedSensorDelete
}

// Where appends a list predicates to the ExtractedSensorDelete builder.
func (_d *ExtractedSensorDeleteOne) Where(ps ...predicate.ExtractedSensor) *ExtractedSensorDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ExtractedSensorDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{extractedsensor.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExtractedSensorDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
