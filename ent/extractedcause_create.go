// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autodiag/refinery/ent/extractedcause"
)

// ExtractedCauseCreate is the builder for creating a ExtractedCause entity.
type ExtractedCauseCreate struct {
	config
	mutation *ExtractedCauseMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *ExtractedCauseCreate) SetDocumentID(v string) *ExtractedCauseCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetDtcCode sets the "dtc_code" field.
func (_c *ExtractedCauseCreate) SetDtcCode(v string) *ExtractedCauseCreate {
	_c.mutation.SetDtcCode(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ExtractedCauseCreate) SetDescription(v string) *ExtractedCauseCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetLikelihood sets the "likelihood" field.
func (_c *ExtractedCauseCreate) SetLikelihood(v string) *ExtractedCauseCreate {
	_c.mutation.SetLikelihood(v)
	return _c
}

// SetNillableLikelihood sets the "likelihood" field if the given value is not nil.
func (_c *ExtractedCauseCreate) SetNillableLikelihood(v *string) *ExtractedCauseCreate {
	if v != nil {
		_c.SetLikelihood(*v)
	}
	return _c
}

// SetSourceChunkID sets the "source_chunk_id" field.
func (_c *ExtractedCauseCreate) SetSourceChunkID(v string) *ExtractedCauseCreate {
	_c.mutation.SetSourceChunkID(v)
	return _c
}

// SetTrust sets the "trust" field.
func (_c *ExtractedCauseCreate) SetTrust(v float64) *ExtractedCauseCreate {
	_c.mutation.SetTrust(v)
	return _c
}

// SetNillableTrust sets the "trust" field if the given value is not nil.
func (_c *ExtractedCauseCreate) SetNillableTrust(v *float64) *ExtractedCauseCreate {
	if v != nil {
		_c.SetTrust(*v)
	}
	return _c
}

// SetRelevance sets the "relevance" field.
func (_c *ExtractedCauseCreate) SetRelevance(v float64) *ExtractedCauseCreate {
	_c.mutation.SetRelevance(v)
	return _c
}

// SetNillableRelevance sets the "relevance" field if the given value is not nil.
func (_c *ExtractedCauseCreate) SetNillableRelevance(v *float64) *ExtractedCauseCreate {
	if v != nil {
		_c.SetRelevance(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExtractedCauseCreate) SetCreatedAt(v time.Time) *ExtractedCauseCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExtractedCauseCreate) SetNillableCreatedAt(v *time.Time) *ExtractedCauseCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractedCauseCreate) SetID(v string) *ExtractedCauseCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ExtractedCauseMutation object of the builder.
func (_c *ExtractedCauseCreate) Mutation() *ExtractedCauseMutation {
	return _c.mutation
}

// Save creates the ExtractedCause in the database.
func (_c *ExtractedCauseCreate) Save(ctx context.Context) (*ExtractedCause, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractedCauseCreate) SaveX(ctx context.Context) *ExtractedCause {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractedCauseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractedCauseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractedCauseCreate) defaults() {
	if _, ok := _c.mutation.Trust(); !ok {
		v := extractedcause.DefaultTrust
		_c.mutation.SetTrust(v)
	}
	if _, ok := _c.mutation.Relevance(); !ok {
		v := extractedcause.DefaultRelevance
		_c.mutation.SetRelevance(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := extractedcause.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractedCauseCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "ExtractedCause.document_id"`)}
	}
	if _, ok := _c.mutation.DtcCode(); !ok {
		return &ValidationError{Name: "dtc_code", err: errors.New(`ent: missing required field "ExtractedCause.dtc_code"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "ExtractedCause.description"`)}
	}
	if _, ok := _c.mutation.SourceChunkID(); !ok {
		return &ValidationError{Name: "source_chunk_id", err: errors.New(`ent: missing required field "ExtractedCause.source_chunk_id"`)}
	}
	if _, ok := _c.mutation.Trust(); !ok {
		return &ValidationError{Name: "trust", err: errors.New(`ent: missing required field "ExtractedCause.trust"`)}
	}
	if _, ok := _c.mutation.Relevance(); !ok {
		return &ValidationError{Name: "relevance", err: errors.New(`ent: missing required field "ExtractedCause.relevance"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExtractedCause.created_at"`)}
	}
	return nil
}

func (_c *ExtractedCauseCreate) sqlSave(ctx context.Context) (*ExtractedCause, error) {
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
			return nil, fmt.Errorf("unexpected ExtractedCause.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExtractedCauseCreate) createSpec() (*ExtractedCause, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractedCause{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extractedcause.Table, sqlgraph.NewFieldSpec(extractedcause.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.DocumentID(); ok {
		_spec.SetField(extractedcause.FieldDocumentID, field.TypeString, value)
		_node.DocumentID = value
	}
	if value, ok := _c.mutation.DtcCode(); ok {
		_spec.SetField(extractedcause.FieldDtcCode, field.TypeString, value)
		_node.DtcCode = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(extractedcause.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Likelihood(); ok {
		_spec.SetField(extractedcause.FieldLikelihood, field.TypeString, value)
		_node.Likelihood = value
	}
	if value, ok := _c.mutation.SourceChunkID(); ok {
		_spec.SetField(extractedcause.FieldSourceChunkID, field.TypeString, value)
		_node.SourceChunkID = value
	}
	if value, ok := _c.mutation.Trust(); ok {
		_spec.SetField(extractedcause.FieldTrust, field.TypeFloat64, value)
		_node.Trust = value
	}
	if value, ok := _c.mutation.Relevance(); ok {
		_spec.SetField(extractedcause.FieldRelevance, field.TypeFloat64, value)
		_node.Relevance = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(extractedcause.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ExtractedCauseCreateBulk is the builder for creating many ExtractedCause entities in bulk.
type ExtractedCauseCreateBulk struct {
	config
	err      error
	builders []*ExtractedCauseCreate
}

// Save creates the ExtractedCause entities in the database.
func (_c *ExtractedCauseCreateBulk) Save(ctx context.Context) ([]*ExtractedCause, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractedCause, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractedCauseMutation)
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
func (_c *ExtractedCauseCreateBulk) SaveX(ctx context.Context) []*ExtractedCause {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractedCauseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractedCauseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
