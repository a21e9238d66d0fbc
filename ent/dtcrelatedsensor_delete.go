// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autodiag/refinery/ent/dtcrelatedsensor"
	"github.com/autodiag/refinery/ent/predicate"
)

// DTCRelatedSensorDelete is the builder for deleting a DTCRelatedSensor entity.
type DTCRelatedSensorDelete struct {
	config
	hooks    []Hook
	mutation *DTCRelatedSensorMutation
}

// Where appends a list predicates to the DTCRelatedSensorDelete builder.
func (_d *DTCRelatedSensorDelete) Where(ps ...predicate.DTCRelatedSensor) *DTCRelatedSensorDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DTCRelatedSensorDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DTCRelatedSensorDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DTCRelatedSensorDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(dtcrelatedsensor.Table, sqlgraph.NewFieldSpec(dtcrelatedsensor.FieldID, field.TypeString))
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

// DTCRelatedSensorDeleteOne is the builder for deleting a single DTCRelatedSensor entity.
type DTCRelatedSensorDeleteOne struct {
	_d *DTCRelatedSensorDelete
}

// Where appends a list predicates to the DTCRelatedSensorDelete builder.
func (_d *DTCRelatedSensorDeleteOne) Where(ps ...predicate.DTCRelatedSensor) *DTCRelatedSensorDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DTCRelatedSensorDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{dtcrelatedsensor.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DTCRelatedSensorDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
