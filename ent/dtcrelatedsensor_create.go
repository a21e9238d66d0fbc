// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autodiag/refinery/ent/dtcrelatedsensor"
)

// DTCRelatedSensorCreate is the builder for creating a DTCRelatedSensor entity.
type DTCRelatedSensorCreate struct {
	config
	mutation *DTCRelatedSensorMutation
	hooks    []Hook
}

// SetDtcMasterID sets the "dtc_master_id" field.
func (_c *DTCRelatedSensorCreate) SetDtcMasterID(v string) *DTCRelatedSensorCreate {
	_c.mutation.SetDtcMasterID(v)
	return _c
}

// SetSensorID sets the "sensor_id" field.
func (_c *DTCRelatedSensorCreate) SetSensorID(v string) *DTCRelatedSensorCreate {
	_c.mutation.SetSensorID(v)
	return _c
}

// SetPriorityRank sets the "priority_rank" field.
func (_c *DTCRelatedSensorCreate) SetPriorityRank(v int) *DTCRelatedSensorCreate {
	_c.mutation.SetPriorityRank(v)
	return _c
}

// SetNillablePriorityRank sets the "priority_rank" field if the given value is not nil.
func (_c *DTCRelatedSensorCreate) SetNillablePriorityRank(v *int) *DTCRelatedSensorCreate {
	if v != nil {
		_c.SetPriorityRank(*v)
	}
	return _c
}

// SetEvidenceCount sets the "evidence_count" field.
func (_c *DTCRelatedSensorCreate) SetEvidenceCount(v int) *DTCRelatedSensorCreate {
	_c.mutation.SetEvidenceCount(v)
	return _c
}

// SetNillableEvidenceCount sets the "evidence_count" field if the given value is not nil.
func (_c *DTCRelatedSensorCreate) SetNillableEvidenceCount(v *int) *DTCRelatedSensorCreate {
	if v != nil {
		_c.SetEvidenceCount(*v)
	}
	return _c
}

// SetAvgTrust sets the "avg_trust" field.
func (_c *DTCRelatedSensorCreate) SetAvgTrust(v float64) *DTCRelatedSensorCreate {
	_c.mutation.SetAvgTrust(v)
	return _c
}

// SetNillableAvgTrust sets the "avg_trust" field if the given value is not nil.
func (_c *DTCRelatedSensorCreate) SetNillableAvgTrust(v *float64) *DTCRelatedSensorCreate {
	if v != nil {
		_c.SetAvgTrust(*v)
	}
	return _c
}

// SetAvgRelevance sets the "avg_relevance" field.
func (_c *DTCRelatedSensorCreate) SetAvgRelevance(v float64) *DTCRelatedSensorCreate {
	_c.mutation.SetAvgRelevance(v)
	return _c
}

// SetNillableAvgRelevance sets the "avg_relevance" field if the given value is not nil.
func (_c *DTCRelatedSensorCreate) SetNillableAvgRelevance(v *float64) *DTCRelatedSensorCreate {
	if v != nil {
		_c.SetAvgRelevance(*v)
	}
	return _c
}

// SetConflictFlag sets the "conflict_flag" field.
func (_c *DTCRelatedSensorCreate) SetConflictFlag(v bool) *DTCRelatedSensorCreate {
	_c.mutation.SetConflictFlag(v)
	return _c
}

// SetNillableConflictFlag sets the "conflict_flag" field if the given value is not nil.
func (_c *DTCRelatedSensorCreate) SetNillableConflictFlag(v *bool) *DTCRelatedSensorCreate {
	if v != nil {
		_c.SetConflictFlag(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DTCRelatedSensorCreate) SetCreatedAt(v time.Time) *DTCRelatedSensorCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DTCRelatedSensorCreate) SetNillableCreatedAt(v *time.Time) *DTCRelatedSensorCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DTCRelatedSensorCreate) SetUpdatedAt(v time.Time) *DTCRelatedSensorCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DTCRelatedSensorCreate) SetNillableUpdatedAt(v *time.Time) *DTCRelatedSensorCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DTCRelatedSensorCreate) SetID(v string) *DTCRelatedSensorCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the DTCRelatedSensorMutation object of the builder.
func (_c *DTCRelatedSensorCreate) Mutation() *DTCRelatedSensorMutation {
	return _c.mutation
}

// Save creates the DTCRelatedSensor in the database.
func (_c *DTCRelatedSensorCreate) Save(ctx context.Context) (*DTCRelatedSensor, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DTCRelatedSensorCreate) SaveX(ctx context.Context) *DTCRelatedSensor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DTCRelatedSensorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DTCRelatedSensorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DTCRelatedSensorCreate) defaults() {
	if _, ok := _c.mutation.PriorityRank(); !ok {
		v := dtcrelatedsensor.DefaultPriorityRank
		_c.mutation.SetPriorityRank(v)
	}
	if _, ok := _c.mutation.EvidenceCount(); !ok {
		v := dtcrelatedsensor.DefaultEvidenceCount
		_c.mutation.SetEvidenceCount(v)
	}
	if _, ok := _c.mutation.AvgTrust(); !ok {
		v := dtcrelatedsensor.DefaultAvgTrust
		_c.mutation.SetAvgTrust(v)
	}
	if _, ok := _c.mutation.AvgRelevance(); !ok {
		v := dtcrelatedsensor.DefaultAvgRelevance
		_c.mutation.SetAvgRelevance(v)
	}
	if _, ok := _c.mutation.ConflictFlag(); !ok {
		v := dtcrelatedsensor.DefaultConflictFlag
		_c.mutation.SetConflictFlag(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := dtcrelatedsensor.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := dtcrelatedsensor.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DTCRelatedSensorCreate) check() error {
	if _, ok := _c.mutation.DtcMasterID(); !ok {
		return &ValidationError{Name: "dtc_master_id", err: errors.New(`ent: missing required field "DTCRelatedSensor.dtc_master_id"`)}
	}
	if _, ok := _c.mutation.SensorID(); !ok {
		return &ValidationError{Name: "sensor_id", err: errors.New(`ent: missing required field "DTCRelatedSensor.sensor_id"`)}
	}
	if _, ok := _c.mutation.PriorityRank(); !ok {
		return &ValidationError{Name: "priority_rank", err: errors.New(`ent: missing required field "DTCRelatedSensor.priority_rank"`)}
	}
	if _, ok := _c.mutation.EvidenceCount(); !ok {
		return &ValidationError{Name: "evidence_count", err: errors.New(`ent: missing required field "DTCRelatedSensor.evidence_count"`)}
	}
	if _, ok := _c.mutation.AvgTrust(); !ok {
		return &ValidationError{Name: "avg_trust", err: errors.New(`ent: missing required field "DTCRelatedSensor.avg_trust"`)}
	}
	if _, ok := _c.mutation.AvgRelevance(); !ok {
		return &ValidationError{Name: "avg_relevance", err: errors.New(`ent: missing required field "DTCRelatedSensor.avg_relevance"`)}
	}
	if _, ok := _c.mutation.ConflictFlag(); !ok {
		return &ValidationError{Name: "conflict_flag", err: errors.New(`ent: missing required field "DTCRelatedSensor.conflict_flag"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DTCRelatedSensor.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "DTCRelatedSensor.updated_at"`)}
	}
	return nil
}

func (_c *DTCRelatedSensorCreate) sqlSave(ctx context.Context) (*DTCRelatedSensor, error) {
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
			return nil, fmt.Errorf("unexpected DTCRelatedSensor.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DTCRelatedSensorCreate) createSpec() (*DTCRelatedSensor, *sqlgraph.CreateSpec) {
	var (
		_node = &DTCRelatedSensor{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(dtcrelatedsensor.Table, sqlgraph.NewFieldSpec(dtcrelatedsensor.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.DtcMasterID(); ok {
		_spec.SetField(dtcrelatedsensor.FieldDtcMasterID, field.TypeString, value)
		_node.DtcMasterID = value
	}
	if value, ok := _c.mutation.SensorID(); ok {
		_spec.SetField(dtcrelatedsensor.FieldSensorID, field.TypeString, value)
		_node.SensorID = value
	}
	if value, ok := _c.mutation.PriorityRank(); ok {
		_spec.SetField(dtcrelatedsensor.FieldPriorityRank, field.TypeInt, value)
		_node.PriorityRank = value
	}
	if value, ok := _c.mutation.EvidenceCount(); ok {
		_spec.SetField(dtcrelatedsensor.FieldEvidenceCount, field.TypeInt, value)
		_node.EvidenceCount = value
	}
	if value, ok := _c.mutation.AvgTrust(); ok {
		_spec.SetField(dtcrelatedsensor.FieldAvgTrust, field.TypeFloat64, value)
		_node.AvgTrust = value
	}
	if value, ok := _c.mutation.AvgRelevance(); ok {
		_spec.SetField(dtcrelatedsensor.FieldAvgRelevance, field.TypeFloat64, value)
		_node.AvgRelevance = value
	}
	if value, ok := _c.mutation.ConflictFlag(); ok {
		_spec.SetField(dtcrelatedsensor.FieldConflictFlag, field.TypeBool, value)
		_node.ConflictFlag = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(dtcrelatedsensor.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(dtcrelatedsensor.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// DTCRelatedSensorCreateBulk is the builder for creating many DTCRelatedSensor entities in bulk.
type DTCRelatedSensorCreateBulk struct {
	config
	err      error
	builders []*DTCRelatedSensorCreate
}

// Save creates the DTCRelatedSensor entities in the database.
func (_c *DTCRelatedSensorCreateBulk) Save(ctx context.Context) ([]*DTCRelatedSensor, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DTCRelatedSensor, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DTCRelatedSensorMutation)
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
func (_c *DTCRelatedSensorCreateBulk) SaveX(ctx context.Context) []*DTCRelatedSensor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DTCRelatedSensorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DTCRelatedSensorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
