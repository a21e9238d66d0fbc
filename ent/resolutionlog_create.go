// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autodiag/refinery/ent/resolutionlog"
)

// ResolutionLogCreate is the builder for creating a ResolutionLog entity.
type ResolutionLogCreate struct {
	config
	mutation *ResolutionLogMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *ResolutionLogCreate) SetRunID(v string) *ResolutionLogCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetDocumentID sets the "document_id" field.
func (_c *ResolutionLogCreate) SetDocumentID(v string) *ResolutionLogCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *ResolutionLogCreate) SetAction(v resolutionlog.Action) *ResolutionLogCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetEntityTable sets the "entity_table" field.
func (_c *ResolutionLogCreate) SetEntityTable(v string) *ResolutionLogCreate {
	_c.mutation.SetEntityTable(v)
	return _c
}

// SetNillableEntityTable sets the "entity_table" field if the given value is not nil.
func (_c *ResolutionLogCreate) SetNillableEntityTable(v *string) *ResolutionLogCreate {
	if v != nil {
		_c.SetEntityTable(*v)
	}
	return _c
}

// SetEntityID sets the "entity_id" field.
func (_c *ResolutionLogCreate) SetEntityID(v string) *ResolutionLogCreate {
	_c.mutation.SetEntityID(v)
	return _c
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (_c *ResolutionLogCreate) SetNillableEntityID(v *string) *ResolutionLogCreate {
	if v != nil {
		_c.SetEntityID(*v)
	}
	return _c
}

// SetDetails sets the "details" field.
func (_c *ResolutionLogCreate) SetDetails(v map[string]interface{}) *ResolutionLogCreate {
	_c.mutation.SetDetails(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ResolutionLogCreate) SetCreatedAt(v time.Time) *ResolutionLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ResolutionLogCreate) SetNillableCreatedAt(v *time.Time) *ResolutionLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ResolutionLogCreate) SetID(v string) *ResolutionLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ResolutionLogMutation object of the builder.
func (_c *ResolutionLogCreate) Mutation() *ResolutionLogMutation {
	return _c.mutation
}

// Save creates the ResolutionLog in the database.
func (_c *ResolutionLogCreate) Save(ctx context.Context) (*ResolutionLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResolutionLogCreate) SaveX(ctx context.Context) *ResolutionLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResolutionLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResolutionLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ResolutionLogCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := resolutionlog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResolutionLogCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "ResolutionLog.run_id"`)}
	}
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "ResolutionLog.document_id"`)}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "ResolutionLog.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := resolutionlog.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "ResolutionLog.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ResolutionLog.created_at"`)}
	}
	return nil
}

func (_c *ResolutionLogCreate) sqlSave(ctx context.Context) (*ResolutionLog, error) {
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
			return nil, fmt.Errorf("unexpected ResolutionLog.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ResolutionLogCreate) createSpec() (*ResolutionLog, *sqlgraph.CreateSpec) {
	var (
		_node = &ResolutionLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(resolutionlog.Table, sqlgraph.NewFieldSpec(resolutionlog.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(resolutionlog.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.DocumentID(); ok {
		_spec.SetField(resolutionlog.FieldDocumentID, field.TypeString, value)
		_node.DocumentID = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(resolutionlog.FieldAction, field.TypeEnum, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.EntityTable(); ok {
		_spec.SetField(resolutionlog.FieldEntityTable, field.TypeString, value)
		_node.EntityTable = value
	}
	if value, ok := _c.mutation.EntityID(); ok {
		_spec.SetField(resolutionlog.FieldEntityID, field.TypeString, value)
		_node.EntityID = value
	}
	if value, ok := _c.mutation.Details(); ok {
		_spec.SetField(resolutionlog.FieldDetails, field.TypeJSON, value)
		_node.Details = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(resolutionlog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ResolutionLogCreateBulk is the builder for creating many ResolutionLog entities in bulk.
type ResolutionLogCreateBulk struct {
	config
	err      error
	builders []*ResolutionLogCreate
}

// Save creates the ResolutionLog entities in the database.
func (_c *ResolutionLogCreateBulk) Save(ctx context.Context) ([]*ResolutionLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ResolutionLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResolutionLogMutation)
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
func (_c *ResolutionLogCreateBulk) SaveX(ctx context.Context) []*ResolutionLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResolutionLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResolutionLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
