// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autodiag/refinery/ent/crawlrequest"
	"github.com/autodiag/refinery/ent/predicate"
)

// CrawlRequestDelete is the builder for deleting a CrawlRequest entity.
type CrawlRequestDelete struct {
	config
	hooks    []Hook
	mutation *CrawlRequestMutation
}

// Where appends a list predicates to the CrawlRequestDelete builder.
func (_d *CrawlRequestDelete) Where(ps ...predicate.CrawlRequest) *CrawlRequestDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CrawlRequestDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CrawlRequestDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CrawlRequestDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(crawlrequest.Table, sqlgraph.NewFieldSpec(crawlrequest.FieldID, field.TypeString))
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

// CrawlRequestDeleteOne is the builder for deleting a single CrawlRequest entity.
type CrawlRequestDeleteOne struct {
	_d *CrawlRequestDelete
}

// Where appends a list predicates to the CrawlRequestDelete builder.
func (_d *CrawlRequestDeleteOne) Where(ps ...predicate.CrawlRequest) *CrawlRequestDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CrawlRequestDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{crawlrequest.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CrawlRequestDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
