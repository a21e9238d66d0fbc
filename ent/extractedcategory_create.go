// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autodiag/refinery/ent/extractedcategory"
)

// ExtractedCategoryCreate is the builder for creating a ExtractedCategory entity.
type ExtractedCategoryCreate struct {
	config
	mutation *ExtractedCategoryMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *ExtractedCategoryCreate) SetDocumentID(v string) *ExtractedCategoryCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *ExtractedCategoryCreate) SetCategory(v string) *ExtractedCategoryCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetSourceChunkID sets the "source_chunk_id" field.
func (_c *ExtractedCategoryCreate) SetSourceChunkID(v string) *ExtractedCategoryCreate {
	_c.mutation.SetSourceChunkID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExtractedCategoryCreate) SetCreatedAt(v time.Time) *ExtractedCategoryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExtractedCategoryCreate) SetNillableCreatedAt(v *time.Time) *ExtractedCategoryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractedCategoryCreate) SetID(v string) *ExtractedCategoryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ExtractedCategoryMutation object of the builder.
func (_c *ExtractedCategoryCreate) Mutation() *ExtractedCategoryMutation {
	return _c.mutation
}

// Save creates the ExtractedCategory in the database.
func (_c *ExtractedCategoryCreate) Save(ctx context.Context) (*ExtractedCategory, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractedCategoryCreate) SaveX(ctx context.Context) *ExtractedCategory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractedCategoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractedCategoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractedCategoryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := extractedcategory.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractedCategoryCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "ExtractedCategory.document_id"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "ExtractedCategory.category"`)}
	}
	if _, ok := _c.mutation.SourceChunkID(); !ok {
		return &ValidationError{Name: "source_chunk_id", err: errors.New(`ent: missing required field "ExtractedCategory.source_chunk_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExtractedCategory.created_at"`)}
	}
	return nil
}

func (_c *ExtractedCategoryCreate) sqlSave(ctx context.Context) (*ExtractedCategory, error) {
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
			return nil, fmt.Errorf("unexpected ExtractedCategory.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExtractedCategoryCreate) createSpec() (*ExtractedCategory, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractedCategory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extractedcategory.Table, sqlgraph.NewFieldSpec(extractedcategory.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.DocumentID(); ok {
		_spec.SetField(extractedcategory.FieldDocumentID, field.TypeString, value)
		_node.DocumentID = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(extractedcategory.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.SourceChunkID(); ok {
		_spec.SetField(extractedcategory.FieldSourceChunkID, field.TypeString, value)
		_node.SourceChunkID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(extractedcategory.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ExtractedCategoryCreateBulk is the builder for creating many ExtractedCategory entities in bulk.
type ExtractedCategoryCreateBulk struct {
	config
	err      error
	builders []*ExtractedCategoryCreate
}

// Save creates the ExtractedCategory entities in the database.
func (_c *ExtractedCategoryCreateBulk) Save(ctx context.Context) ([]*ExtractedCategory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractedCategory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractedCategoryMutation)
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
func (_c *ExtractedCategoryCreateBulk) SaveX(ctx context.Context) []*ExtractedCategory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractedCategoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractedCategoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
