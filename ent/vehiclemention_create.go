// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autodiag/refinery/ent/vehiclemention"
)

// VehicleMentionCreate is the builder for creating a VehicleMention entity.
type VehicleMentionCreate struct {
	config
	mutation *VehicleMentionMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *VehicleMentionCreate) SetDocumentID(v string) *VehicleMentionCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetMake sets the "make" field.
func (_c *VehicleMentionCreate) SetMake(v string) *VehicleMentionCreate {
	_c.mutation.SetMake(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *VehicleMentionCreate) SetModel(v string) *VehicleMentionCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *VehicleMentionCreate) SetNillableModel(v *string) *VehicleMentionCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// SetYearStart sets the "year_start" field.
func (_c *VehicleMentionCreate) SetYearStart(v int) *VehicleMentionCreate {
	_c.mutation.SetYearStart(v)
	return _c
}

// SetNillableYearStart sets the "year_start" field if the given value is not nil.
func (_c *VehicleMentionCreate) SetNillableYearStart(v *int) *VehicleMentionCreate {
	if v != nil {
		_c.SetYearStart(*v)
	}
	return _c
}

// SetYearEnd sets the "year_end" field.
func (_c *VehicleMentionCreate) SetYearEnd(v int) *VehicleMentionCreate {
	_c.mutation.SetYearEnd(v)
	return _c
}

// SetNillableYearEnd sets the "year_end" field if the given value is not nil.
func (_c *VehicleMentionCreate) SetNillableYearEnd(v *int) *VehicleMentionCreate {
	if v != nil {
		_c.SetYearEnd(*v)
	}
	return _c
}

// SetEngine sets the "engine" field.
func (_c *VehicleMentionCreate) SetEngine(v string) *VehicleMentionCreate {
	_c.mutation.SetEngine(v)
	return _c
}

// SetNillableEngine sets the "engine" field if the given value is not nil.
func (_c *VehicleMentionCreate) SetNillableEngine(v *string) *VehicleMentionCreate {
	if v != nil {
		_c.SetEngine(*v)
	}
	return _c
}

// SetTransmission sets the "transmission" field.
func (_c *VehicleMentionCreate) SetTransmission(v string) *VehicleMentionCreate {
	_c.mutation.SetTransmission(v)
	return _c
}

// SetNillableTransmission sets the "transmission" field if the given value is not nil.
func (_c *VehicleMentionCreate) SetNillableTransmission(v *string) *VehicleMentionCreate {
	if v != nil {
		_c.SetTransmission(*v)
	}
	return _c
}

// SetRelatedDtcCodes sets the "related_dtc_codes" field.
func (_c *VehicleMentionCreate) SetRelatedDtcCodes(v []string) *VehicleMentionCreate {
	_c.mutation.SetRelatedDtcCodes(v)
	return _c
}

// SetLinked sets the "linked" field.
func (_c *VehicleMentionCreate) SetLinked(v bool) *VehicleMentionCreate {
	_c.mutation.SetLinked(v)
	return _c
}

// SetNillableLinked sets the "linked" field if the given value is not nil.
func (_c *VehicleMentionCreate) SetNillableLinked(v *bool) *VehicleMentionCreate {
	if v != nil {
		_c.SetLinked(*v)
	}
	return _c
}

// SetSourceChunkID sets the "source_chunk_id" field.
func (_c *VehicleMentionCreate) SetSourceChunkID(v string) *VehicleMentionCreate {
	_c.mutation.SetSourceChunkID(v)
	return _c
}

// SetTrust sets the "trust" field.
func (_c *VehicleMentionCreate) SetTrust(v float64) *VehicleMentionCreate {
	_c.mutation.SetTrust(v)
	return _c
}

// SetNillableTrust sets the "trust" field if the given value is not nil.
func (_c *VehicleMentionCreate) SetNillableTrust(v *float64) *VehicleMentionCreate {
	if v != nil {
		_c.SetTrust(*v)
	}
	return _c
}

// SetRelevance sets the "relevance" field.
func (_c *VehicleMentionCreate) SetRelevance(v float64) *VehicleMentionCreate {
	_c.mutation.SetRelevance(v)
	return _c
}

// SetNillableRelevance sets the "relevance" field if the given value is not nil.
func (_c *VehicleMentionCreate) SetNillableRelevance(v *float64) *VehicleMentionCreate {
	if v != nil {
		_c.SetRelevance(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *VehicleMentionCreate) SetCreatedAt(v time.Time) *VehicleMentionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *VehicleMentionCreate) SetNillableCreatedAt(v *time.Time) *VehicleMentionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *VehicleMentionCreate) SetID(v string) *VehicleMentionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the VehicleMentionMutation object of the builder.
func (_c *VehicleMentionCreate) Mutation() *VehicleMentionMutation {
	return _c.mutation
}

// Save creates the VehicleMention in the database.
func (_c *VehicleMentionCreate) Save(ctx context.Context) (*VehicleMention, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VehicleMentionCreate) SaveX(ctx context.Context) *VehicleMention {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VehicleMentionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VehicleMentionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VehicleMentionCreate) defaults() {
	if _, ok := _c.mutation.Linked(); !ok {
		v := vehiclemention.DefaultLinked
		_c.mutation.SetLinked(v)
	}
	if _, ok := _c.mutation.Trust(); !ok {
		v := vehiclemention.DefaultTrust
		_c.mutation.SetTrust(v)
	}
	if _, ok := _c.mutation.Relevance(); !ok {
		v := vehiclemention.DefaultRelevance
		_c.mutation.SetRelevance(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := vehiclemention.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VehicleMentionCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "VehicleMention.document_id"`)}
	}
	if _, ok := _c.mutation.Make(); !ok {
		return &ValidationError{Name: "make", err: errors.New(`ent: missing required field "VehicleMention.make"`)}
	}
	if _, ok := _c.mutation.Linked(); !ok {
		return &ValidationError{Name: "linked", err: errors.New(`ent: missing required field "VehicleMention.linked"`)}
	}
	if _, ok := _c.mutation.SourceChunkID(); !ok {
		return &ValidationError{Name: "source_chunk_id", err: errors.New(`ent: missing required field "VehicleMention.source_chunk_id"`)}
	}
	if _, ok := _c.mutation.Trust(); !ok {
		return &ValidationError{Name: "trust", err: errors.New(`ent: missing required field "VehicleMention.trust"`)}
	}
	if _, ok := _c.mutation.Relevance(); !ok {
		return &ValidationError{Name: "relevance", err: errors.New(`ent: missing required field "VehicleMention.relevance"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "VehicleMention.created_at"`)}
	}
	return nil
}

func (_c *VehicleMentionCreate) sqlSave(ctx context.Context) (*VehicleMention, error) {
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
			return nil, fmt.Errorf("unexpected VehicleMention.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *VehicleMentionCreate) createSpec() (*VehicleMention, *sqlgraph.CreateSpec) {
	var (
		_node = &VehicleMention{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(vehiclemention.Table, sqlgraph.NewFieldSpec(vehiclemention.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.DocumentID(); ok {
		_spec.SetField(vehiclemention.FieldDocumentID, field.TypeString, value)
		_node.DocumentID = value
	}
	if value, ok := _c.mutation.Make(); ok {
		_spec.SetField(vehiclemention.FieldMake, field.TypeString, value)
		_node.Make = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(vehiclemention.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.YearStart(); ok {
		_spec.SetField(vehiclemention.FieldYearStart, field.TypeInt, value)
		_node.YearStart = &value
	}
	if value, ok := _c.mutation.YearEnd(); ok {
		_spec.SetField(vehiclemention.FieldYearEnd, field.TypeInt, value)
		_node.YearEnd = &value
	}
	if value, ok := _c.mutation.Engine(); ok {
		_spec.SetField(vehiclemention.FieldEngine, field.TypeString, value)
		_node.Engine = value
	}
	if value, ok := _c.mutation.Transmission(); ok {
		_spec.SetField(vehiclemention.FieldTransmission, field.TypeString, value)
		_node.Transmission = value
	}
	if value, ok := _c.mutation.RelatedDtcCodes(); ok {
		_spec.SetField(vehiclemention.FieldRelatedDtcCodes, field.TypeJSON, value)
		_node.RelatedDtcCodes = value
	}
	if value, ok := _c.mutation.Linked(); ok {
		_spec.SetField(vehiclemention.FieldLinked, field.TypeBool, value)
		_node.Linked = value
	}
	if value, ok := _c.mutation.SourceChunkID(); ok {
		_spec.SetField(vehiclemention.FieldSourceChunkID, field.TypeString, value)
		_node.SourceChunkID = value
	}
	if value, ok := _c.mutation.Trust(); ok {
		_spec.SetField(vehiclemention.FieldTrust, field.TypeFloat64, value)
		_node.Trust = value
	}
	if value, ok := _c.mutation.Relevance(); ok {
		_spec.SetField(vehiclemention.FieldRelevance, field.TypeFloat64, value)
		_node.Relevance = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(vehiclemention.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// VehicleMentionCreateBulk is the builder for creating many VehicleMention entities in bulk.
type VehicleMentionCreateBulk struct {
	config
	err      error
	builders []*VehicleMentionCreate
}

// Save creates the VehicleMention entities in the database.
func (_c *VehicleMentionCreateBulk) Save(ctx context.Context) ([]*VehicleMention, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*VehicleMention, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VehicleMentionMutation)
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
func (_c *VehicleMentionCreateBulk) SaveX(ctx context.Context) []*VehicleMention {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VehicleMentionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VehicleMentionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
