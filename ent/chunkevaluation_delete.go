// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autodiag/refinery/ent/chunkevaluation"
	"github.com/autodiag/refinery/ent/predicate"
)

// ChunkEvaluationDelete is the builder for deleting a ChunkEvaluation entity.
type ChunkEvaluationDelete struct {
	config
	hooks    []Hook
	mutation *ChunkEvaluationMutation
}

// Where appends a list predicates to the ChunkEvaluationDelete builder.
func (_d *ChunkEvaluationDelete) Where(ps ...predicate.ChunkEvaluation) *ChunkEvaluationDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ChunkEvaluationDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ChunkEvaluationDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ChunkEvaluationDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(chunkevaluation.Table, sqlgraph.NewFieldSpec(chunkevaluation.FieldID, field.TypeString))
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

// ChunkEvaluationDeleteOne is the builder for deleting a single ChunkEvaluation entity.
type ChunkEvaluationDeleteOne struct {
	_d *ChunkEvaluationDelete
}

// Where appends a list predicates to the ChunkEvaluationDelete builder.
func (_d *ChunkEvaluationDeleteOne) Where(ps ...predicate.ChunkEvaluation) *ChunkEvaluationDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ChunkEvaluationDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{chunkevaluation.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ChunkEvaluationDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
