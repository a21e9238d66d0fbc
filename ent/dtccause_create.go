// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autodiag/refinery/ent/dtccause"
)

// DTCCauseCreate is the builder for creating a DTCCause entity.
type DTCCauseCreate struct {
	config
	mutation *DTCCauseMutation
	hooks    []Hook
}

// SetDtcMasterID sets the "dtc_master_id" field.
func (_c *DTCCauseCreate) SetDtcMasterID(v string) *DTCCauseCreate {
	_c.mutation.SetDtcMasterID(v)
	return _c
}

// SetCause sets the "cause" field.
func (_c *DTCCauseCreate) SetCause(v string) *DTCCauseCreate {
	_c.mutation.SetCause(v)
	return _c
}

// SetFingerprint sets the "fingerprint" field.
func (_c *DTCCauseCreate) SetFingerprint(v string) *DTCCauseCreate {
	_c.mutation.SetFingerprint(v)
	return _c
}

// SetProbabilityWeight sets the "probability_weight" field.
func (_c *DTCCauseCreate) SetProbabilityWeight(v float64) *DTCCauseCreate {
	_c.mutation.SetProbabilityWeight(v)
	return _c
}

// SetNillableProbabilityWeight sets the "probability_weight" field if the given value is not nil.
func (_c *DTCCauseCreate) SetNillableProbabilityWeight(v *float64) *DTCCauseCreate {
	if v != nil {
		_c.SetProbabilityWeight(*v)
	}
	return _c
}

// SetEvidenceCount sets the "evidence_count" field.
func (_c *DTCCauseCreate) SetEvidenceCount(v int) *DTCCauseCreate {
	_c.mutation.SetEvidenceCount(v)
	return _c
}

// SetNillableEvidenceCount sets the "evidence_count" field if the given value is not nil.
func (_c *DTCCauseCreate) SetNillableEvidenceCount(v *int) *DTCCauseCreate {
	if v != nil {
		_c.SetEvidenceCount(*v)
	}
	return _c
}

// SetAvgTrust sets the "avg_trust" field.
func (_c *DTCCauseCreate) SetAvgTrust(v float64) *DTCCauseCreate {
	_c.mutation.SetAvgTrust(v)
	return _c
}

// SetNillableAvgTrust sets the "avg_trust" field if the given value is not nil.
func (_c *DTCCauseCreate) SetNillableAvgTrust(v *float64) *DTCCauseCreate {
	if v != nil {
		_c.SetAvgTrust(*v)
	}
	return _c
}

// SetAvgRelevance sets the "avg_relevance" field.
func (_c *DTCCauseCreate) SetAvgRelevance(v float64) *DTCCauseCreate {
	_c.mutation.SetAvgRelevance(v)
	return _c
}

// SetNillableAvgRelevance sets the "avg_relevance" field if the given value is not nil.
func (_c *DTCCauseCreate) SetNillableAvgRelevance(v *float64) *DTCCauseCreate {
	if v != nil {
		_c.SetAvgRelevance(*v)
	}
	return _c
}

// SetConflictFlag sets the "conflict_flag" field.
func (_c *DTCCauseCreate) SetConflictFlag(v bool) *DTCCauseCreate {
	_c.mutation.SetConflictFlag(v)
	return _c
}

// SetNillableConflictFlag sets the "conflict_flag" field if the given value is not nil.
func (_c *DTCCauseCreate) SetNillableConflictFlag(v *bool) *DTCCauseCreate {
	if v != nil {
		_c.SetConflictFlag(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DTCCauseCreate) SetCreatedAt(v time.Time) *DTCCauseCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DTCCauseCreate) SetNillableCreatedAt(v *time.Time) *DTCCauseCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DTCCauseCreate) SetUpdatedAt(v time.Time) *DTCCauseCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DTCCauseCreate) SetNillableUpdatedAt(v *time.Time) *DTCCauseCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DTCCauseCreate) SetID(v string) *DTCCauseCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the DTCCauseMutation object of the builder.
func (_c *DTCCauseCreate) Mutation() *DTCCauseMutation {
	return _c.mutation
}

// Save creates the DTCCause in the database.
func (_c *DTCCauseCreate) Save(ctx context.Context) (*DTCCause, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DTCCauseCreate) SaveX(ctx context.Context) *DTCCause {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DTCCauseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DTCCauseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DTCCauseCreate) defaults() {
	if _, ok := _c.mutation.ProbabilityWeight(); !ok {
		v := dtccause.DefaultProbabilityWeight
		_c.mutation.SetProbabilityWeight(v)
	}
	if _, ok := _c.mutation.EvidenceCount(); !ok {
		v := dtccause.DefaultEvidenceCount
		_c.mutation.SetEvidenceCount(v)
	}
	if _, ok := _c.mutation.AvgTrust(); !ok {
		v := dtccause.DefaultAvgTrust
		_c.mutation.SetAvgTrust(v)
	}
	if _, ok := _c.mutation.AvgRelevance(); !ok {
		v := dtccause.DefaultAvgRelevance
		_c.mutation.SetAvgRelevance(v)
	}
	if _, ok := _c.mutation.ConflictFlag(); !ok {
		v := dtccause.DefaultConflictFlag
		_c.mutation.SetConflictFlag(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := dtccause.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := dtccause.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DTCCauseCreate) check() error {
	if _, ok := _c.mutation.DtcMasterID(); !ok {
		return &ValidationError{Name: "dtc_master_id", err: errors.New(`ent: missing required field "DTCCause.dtc_master_id"`)}
	}
	if _, ok := _c.mutation.Cause(); !ok {
		return &ValidationError{Name: "cause", err: errors.New(`ent: missing required field "DTCCause.cause"`)}
	}
	if _, ok := _c.mutation.Fingerprint(); !ok {
		return &ValidationError{Name: "fingerprint", err: errors.New(`ent: missing required field "DTCCause.fingerprint"`)}
	}
	if _, ok := _c.mutation.ProbabilityWeight(); !ok {
		return &ValidationError{Name: "probability_weight", err: errors.New(`ent: missing required field "DTCCause.probability_weight"`)}
	}
	if v, ok := _c.mutation.ProbabilityWeight(); ok {
		if err := dtccause.ProbabilityWeightValidator(v); err != nil {
			return &ValidationError{Name: "probability_weight", err: fmt.Errorf(`ent: validator failed for field "DTCCause.probability_weight": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EvidenceCount(); !ok {
		return &ValidationError{Name: "evidence_count", err: errors.New(`ent: missing required field "DTCCause.evidence_count"`)}
	}
	if _, ok := _c.mutation.AvgTrust(); !ok {
		return &ValidationError{Name: "avg_trust", err: errors.New(`ent: missing required field "DTCCause.avg_trust"`)}
	}
	if _, ok := _c.mutation.AvgRelevance(); !ok {
		return &ValidationError{Name: "avg_relevance", err: errors.New(`ent: missing required field "DTCCause.avg_relevance"`)}
	}
	if _, ok := _c.mutation.ConflictFlag(); !ok {
		return &ValidationError{Name: "conflict_flag", err: errors.New(`ent: missing required field "DTCCause.conflict_flag"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DTCCause.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "DTCCause.updated_at"`)}
	}
	return nil
}

func (_c *DTCCauseCreate) sqlSave(ctx context.Context) (*DTCCause, error) {
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
			return nil, fmt.Errorf("unexpected DTCCause.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DTCCauseCreate) createSpec() (*DTCCause, *sqlgraph.CreateSpec) {
	var (
		_node = &DTCCause{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(dtccause.Table, sqlgraph.NewFieldSpec(dtccause.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.DtcMasterID(); ok {
		_spec.SetField(dtccause.FieldDtcMasterID, field.TypeString, value)
		_node.DtcMasterID = value
	}
	if value, ok := _c.mutation.Cause(); ok {
		_spec.SetField(dtccause.FieldCause, field.TypeString, value)
		_node.Cause = value
	}
	if value, ok := _c.mutation.Fingerprint(); ok {
		_spec.SetField(dtccause.FieldFingerprint, field.TypeString, value)
		_node.Fingerprint = value
	}
	if value, ok := _c.mutation.ProbabilityWeight(); ok {
		_spec.SetField(dtccause.FieldProbabilityWeight, field.TypeFloat64, value)
		_node.ProbabilityWeight = value
	}
	if value, ok := _c.mutation.EvidenceCount(); ok {
		_spec.SetField(dtccause.FieldEvidenceCount, field.TypeInt, value)
		_node.EvidenceCount = value
	}
	if value, ok := _c.mutation.AvgTrust(); ok {
		_spec.SetField(dtccause.FieldAvgTrust, field.TypeFloat64, value)
		_node.AvgTrust = value
	}
	if value, ok := _c.mutation.AvgRelevance(); ok {
		_spec.SetField(dtccause.FieldAvgRelevance, field.TypeFloat64, value)
		_node.AvgRelevance = value
	}
	if value, ok := _c.mutation.ConflictFlag(); ok {
		_spec.SetField(dtccause.FieldConflictFlag, field.TypeBool, value)
		_node.ConflictFlag = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(dtccause.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(dtccause.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// DTCCauseCreateBulk is the builder for creating many DTCCause entities in bulk.
type DTCCauseCreateBulk struct {
	config
	err      error
	builders []*DTCCauseCreate
}

// Save creates the DTCCause entities in the database.
func (_c *DTCCauseCreateBulk) Save(ctx context.Context) ([]*DTCCause, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DTCCause, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DTCCauseMutation)
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
func (_c *DTCCauseCreateBulk) SaveX(ctx context.Context) []*DTCCause {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DTCCauseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DTCCauseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
