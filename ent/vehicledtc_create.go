// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autodiag/refinery/ent/vehicledtc"
)

// VehicleDTCCreate is the builder for creating a VehicleDTC entity.
type VehicleDTCCreate struct {
	config
	mutation *VehicleDTCMutation
	hooks    []Hook
}

// SetVehicleID sets the "vehicle_id" field.
func (_c *VehicleDTCCreate) SetVehicleID(v string) *VehicleDTCCreate {
	_c.mutation.SetVehicleID(v)
	return _c
}

// SetDtcMasterID sets the "dtc_master_id" field.
func (_c *VehicleDTCCreate) SetDtcMasterID(v string) *VehicleDTCCreate {
	_c.mutation.SetDtcMasterID(v)
	return _c
}

// SetSourceChunkID sets the "source_chunk_id" field.
func (_c *VehicleDTCCreate) SetSourceChunkID(v string) *VehicleDTCCreate {
	_c.mutation.SetSourceChunkID(v)
	return _c
}

// SetNillableSourceChunkID sets the "source_chunk_id" field if the given value is not nil.
func (_c *VehicleDTCCreate) SetNillableSourceChunkID(v *string) *VehicleDTCCreate {
	if v != nil {
		_c.SetSourceChunkID(*v)
	}
	return _c
}

// SetConfidenceScore sets the "confidence_score" field.
func (_c *VehicleDTCCreate) SetConfidenceScore(v float64) *VehicleDTCCreate {
	_c.mutation.SetConfidenceScore(v)
	return _c
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_c *VehicleDTCCreate) SetNillableConfidenceScore(v *float64) *VehicleDTCCreate {
	if v != nil {
		_c.SetConfidenceScore(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *VehicleDTCCreate) SetCreatedAt(v time.Time) *VehicleDTCCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *VehicleDTCCreate) SetNillableCreatedAt(v *time.Time) *VehicleDTCCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *VehicleDTCCreate) SetID(v string) *VehicleDTCCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the VehicleDTCMutation object of the builder.
func (_c *VehicleDTCCreate) Mutation() *VehicleDTCMutation {
	return _c.mutation
}

// Save creates the VehicleDTC in the database.
func (_c *VehicleDTCCreate) Save(ctx context.Context) (*VehicleDTC, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VehicleDTCCreate) SaveX(ctx context.Context) *VehicleDTC {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VehicleDTCCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VehicleDTCCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VehicleDTCCreate) defaults() {
	if _, ok := _c.mutation.ConfidenceScore(); !ok {
		v := vehicledtc.DefaultConfidenceScore
		_c.mutation.SetConfidenceScore(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := vehicledtc.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VehicleDTCCreate) check() error {
	if _, ok := _c.mutation.VehicleID(); !ok {
		return &ValidationError{Name: "vehicle_id", err: errors.New(`ent: missing required field "VehicleDTC.vehicle_id"`)}
	}
	if _, ok := _c.mutation.DtcMasterID(); !ok {
		return &ValidationError{Name: "dtc_master_id", err: errors.New(`ent: missing required field "VehicleDTC.dtc_master_id"`)}
	}
	if _, ok := _c.mutation.ConfidenceScore(); !ok {
		return &ValidationError{Name: "confidence_score", err: errors.New(`ent: missing required field "VehicleDTC.confidence_score"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "VehicleDTC.created_at"`)}
	}
	return nil
}

func (_c *VehicleDTCCreate) sqlSave(ctx context.Context) (*VehicleDTC, error) {
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
			return nil, fmt.Errorf("unexpected VehicleDTC.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *VehicleDTCCreate) createSpec() (*VehicleDTC, *sqlgraph.CreateSpec) {
	var (
		_node = &VehicleDTC{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(vehicledtc.Table, sqlgraph.NewFieldSpec(vehicledtc.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.VehicleID(); ok {
		_spec.SetField(vehicledtc.FieldVehicleID, field.TypeString, value)
		_node.VehicleID = value
	}
	if value, ok := _c.mutation.DtcMasterID(); ok {
		_spec.SetField(vehicledtc.FieldDtcMasterID, field.TypeString, value)
		_node.DtcMasterID = value
	}
	if value, ok := _c.mutation.SourceChunkID(); ok {
		_spec.SetField(vehicledtc.FieldSourceChunkID, field.TypeString, value)
		_node.SourceChunkID = value
	}
	if value, ok := _c.mutation.ConfidenceScore(); ok {
		_spec.SetField(vehicledtc.FieldConfidenceScore, field.TypeFloat64, value)
		_node.ConfidenceScore = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(vehicledtc.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// VehicleDTCCreateBulk is the builder for creating many VehicleDTC entities in bulk.
type VehicleDTCCreateBulk struct {
	config
	err      error
	builders []*VehicleDTCCreate
}

// Save creates the VehicleDTC entities in the database.
func (_c *VehicleDTCCreateBulk) Save(ctx context.Context) ([]*VehicleDTC, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*VehicleDTC, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VehicleDTCMutation)
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
func (_c *VehicleDTCCreateBulk) SaveX(ctx context.Context) []*VehicleDTC {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VehicleDTCCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VehicleDTCCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
