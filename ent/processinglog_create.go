// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autodiag/refinery/ent/document"
	"github.com/autodiag/refinery/ent/processinglog"
)

// ProcessingLogCreate is the builder for creating a ProcessingLog entity.
type ProcessingLogCreate struct {
	config
	mutation *ProcessingLogMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *ProcessingLogCreate) SetDocumentID(v string) *ProcessingLogCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetStage sets the "stage" field.
func (_c *ProcessingLogCreate) SetStage(v string) *ProcessingLogCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ProcessingLogCreate) SetStatus(v processinglog.Status) *ProcessingLogCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetMessage sets the "message" field.
func (_c *ProcessingLogCreate) SetMessage(v string) *ProcessingLogCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_c *ProcessingLogCreate) SetNillableMessage(v *string) *ProcessingLogCreate {
	if v != nil {
		_c.SetMessage(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *ProcessingLogCreate) SetDurationMs(v int64) *ProcessingLogCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *ProcessingLogCreate) SetNillableDurationMs(v *int64) *ProcessingLogCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProcessingLogCreate) SetCreatedAt(v time.Time) *ProcessingLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProcessingLogCreate) SetNillableCreatedAt(v *time.Time) *ProcessingLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProcessingLogCreate) SetID(v string) *ProcessingLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *ProcessingLogCreate) SetDocument(v *Document) *ProcessingLogCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the ProcessingLogMutation object of the builder.
func (_c *ProcessingLogCreate) Mutation() *ProcessingLogMutation {
	return _c.mutation
}

// Save creates the ProcessingLog in the database.
func (_c *ProcessingLogCreate) Save(ctx context.Context) (*ProcessingLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProcessingLogCreate) SaveX(ctx context.Context) *ProcessingLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessingLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessingLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProcessingLogCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := processinglog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProcessingLogCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "ProcessingLog.document_id"`)}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "ProcessingLog.stage"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ProcessingLog.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := processinglog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProcessingLog.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ProcessingLog.created_at"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "ProcessingLog.document"`)}
	}
	return nil
}

func (_c *ProcessingLogCreate) sqlSave(ctx context.Context) (*ProcessingLog, error) {
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
			return nil, fmt.Errorf("unexpected ProcessingLog.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProcessingLogCreate) createSpec() (*ProcessingLog, *sqlgraph.CreateSpec) {
	var (
		_node = &ProcessingLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(processinglog.Table, sqlgraph.NewFieldSpec(processinglog.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(processinglog.FieldStage, field.TypeString, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(processinglog.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(processinglog.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(processinglog.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(processinglog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   processinglog.DocumentTable,
			Columns: []string{processinglog.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ProcessingLogCreateBulk is the builder for creating many ProcessingLog entities in bulk.
type ProcessingLogCreateBulk struct {
	config
	err      error
	builders []*ProcessingLogCreate
}

// Save creates the ProcessingLog entities in the database.
func (_c *ProcessingLogCreateBulk) Save(ctx context.Context) ([]*ProcessingLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProcessingLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProcessingLogMutation)
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
func (_c *ProcessingLogCreateBulk) SaveX(ctx context.Context) []*ProcessingLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessingLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessingLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
