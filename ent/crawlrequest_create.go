// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autodiag/refinery/ent/crawlrequest"
)

// CrawlRequestCreate is the builder for creating a CrawlRequest entity.
type CrawlRequestCreate struct {
	config
	mutation *CrawlRequestMutation
	hooks    []Hook
}

// SetURL sets the "url" field.
func (_c *CrawlRequestCreate) SetURL(v string) *CrawlRequestCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *CrawlRequestCreate) SetStatus(v crawlrequest.Status) *CrawlRequestCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CrawlRequestCreate) SetNillableStatus(v *crawlrequest.Status) *CrawlRequestCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetDepth sets the "depth" field.
func (_c *CrawlRequestCreate) SetDepth(v int) *CrawlRequestCreate {
	_c.mutation.SetDepth(v)
	return _c
}

// SetNillableDepth sets the "depth" field if the given value is not nil.
func (_c *CrawlRequestCreate) SetNillableDepth(v *int) *CrawlRequestCreate {
	if v != nil {
		_c.SetDepth(*v)
	}
	return _c
}

// SetMaxDepth sets the "max_depth" field.
func (_c *CrawlRequestCreate) SetMaxDepth(v int) *CrawlRequestCreate {
	_c.mutation.SetMaxDepth(v)
	return _c
}

// SetNillableMaxDepth sets the "max_depth" field if the given value is not nil.
func (_c *CrawlRequestCreate) SetNillableMaxDepth(v *int) *CrawlRequestCreate {
	if v != nil {
		_c.SetMaxDepth(*v)
	}
	return _c
}

// SetParentURL sets the "parent_url" field.
func (_c *CrawlRequestCreate) SetParentURL(v string) *CrawlRequestCreate {
	_c.mutation.SetParentURL(v)
	return _c
}

// SetNillableParentURL sets the "parent_url" field if the given value is not nil.
func (_c *CrawlRequestCreate) SetNillableParentURL(v *string) *CrawlRequestCreate {
	if v != nil {
		_c.SetParentURL(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *CrawlRequestCreate) SetErrorMessage(v string) *CrawlRequestCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *CrawlRequestCreate) SetNillableErrorMessage(v *string) *CrawlRequestCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CrawlRequestCreate) SetCreatedAt(v time.Time) *CrawlRequestCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CrawlRequestCreate) SetNillableCreatedAt(v *time.Time) *CrawlRequestCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *CrawlRequestCreate) SetCompletedAt(v time.Time) *CrawlRequestCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *CrawlRequestCreate) SetNillableCompletedAt(v *time.Time) *CrawlRequestCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CrawlRequestCreate) SetID(v string) *CrawlRequestCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CrawlRequestMutation object of the builder.
func (_c *CrawlRequestCreate) Mutation() *CrawlRequestMutation {
	return _c.mutation
}

// Save creates the CrawlRequest in the database.
func (_c *CrawlRequestCreate) Save(ctx context.Context) (*CrawlRequest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CrawlRequestCreate) SaveX(ctx context.Context) *CrawlRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CrawlRequestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CrawlRequestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CrawlRequestCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := crawlrequest.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Depth(); !ok {
		v := crawlrequest.DefaultDepth
		_c.mutation.SetDepth(v)
	}
	if _, ok := _c.mutation.MaxDepth(); !ok {
		v := crawlrequest.DefaultMaxDepth
		_c.mutation.SetMaxDepth(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := crawlrequest.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CrawlRequestCreate) check() error {
	if _, ok := _c.mutation.URL(); !ok {
		return &ValidationError{Name: "url", err: errors.New(`ent: missing required field "CrawlRequest.url"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "CrawlRequest.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := crawlrequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CrawlRequest.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Depth(); !ok {
		return &ValidationError{Name: "depth", err: errors.New(`ent: missing required field "CrawlRequest.depth"`)}
	}
	if v, ok := _c.mutation.Depth(); ok {
		if err := crawlrequest.DepthValidator(v); err != nil {
			return &ValidationError{Name: "depth", err: fmt.Errorf(`ent: validator failed for field "CrawlRequest.depth": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MaxDepth(); !ok {
		return &ValidationError{Name: "max_depth", err: errors.New(`ent: missing required field "CrawlRequest.max_depth"`)}
	}
	if v, ok := _c.mutation.MaxDepth(); ok {
		if err := crawlrequest.MaxDepthValidator(v); err != nil {
			return &ValidationError{Name: "max_depth", err: fmt.Errorf(`ent: validator failed for field "CrawlRequest.max_depth": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CrawlRequest.created_at"`)}
	}
	return nil
}

func (_c *CrawlRequestCreate) sqlSave(ctx context.Context) (*CrawlRequest, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected CrawlRequest.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CrawlRequestCreate) createSpec() (*CrawlRequest, *sqlgraph.CreateSpec) {
	var (
		_node = &CrawlRequest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(crawlrequest.Table, sqlgraph.NewFieldSpec(crawlrequest.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(crawlrequest.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(crawlrequest.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Depth(); ok {
		_spec.SetField(crawlrequest.FieldDepth, field.TypeInt, value)
		_node.Depth = value
	}
	if value, ok := _c.mutation.MaxDepth(); ok {
		_spec.SetField(crawlrequest.FieldMaxDepth, field.TypeInt, value)
		_node.MaxDepth = value
	}
	if value, ok := _c.mutation.ParentURL(); ok {
		_spec.SetField(crawlrequest.FieldParentURL, field.TypeString, value)
		_node.ParentURL = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(crawlrequest.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(crawlrequest.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(crawlrequest.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// CrawlRequestCreateBulk is the builder for creating many CrawlRequest entities in bulk.
type CrawlRequestCreateBulk struct {
	config
	err      error
	builders []*CrawlRequestCreate
}

// Save creates the CrawlRequest entities in the database.
func (_c *CrawlRequestCreateBulk) Save(ctx context.Context) ([]*CrawlRequest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CrawlRequest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CrawlRequestMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CrawlRequestCreateBulk) SaveX(ctx context.Context) []*CrawlRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CrawlRequestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CrawlRequestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
