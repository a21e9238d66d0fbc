// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autodiag/refinery/ent/predicate"
	"github.com/autodiag/refinery/ent/tsbbulletin"
)

// TSBBulletinDelete is the builder for deleting a TSBBulletin entity.
type TSBBulletinDelete struct {
	config
	hooks    []Hook
	mutation *TSBBulletinMutation
}

// Where appends a list predicates to the TSBBulletinDelete builder.
func (_d *TSBBulletinDelete) Where(ps ...predicate.TSBBulletin) *TSBBulletinDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *TSBBulletinDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TSBBulletinDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *TSBBulletinDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(tsbbulletin.Table, sqlgraph.NewFieldSpec(tsbbulletin.FieldID, field.TypeString))
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

// TSBBulletinDeleteOne is the builder for deleting a single TSBBulletin entity.
type TSBBulletinDeleteOne struct {
	_d *TSBBulletinDelete
}

// Where appends a list predicates to the TSBBulletinDelete builder.
func (_d *TSBBulletinDeleteOne) Where(ps ...predicate.TSBBulletin) *TSBBulletinDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *TSBBulletinDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{tsbbulletin.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TSBBulletinDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
