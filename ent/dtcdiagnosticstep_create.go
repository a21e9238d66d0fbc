// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autodiag/refinery/ent/dtcdiagnosticstep"
)

// DTCDiagnosticStepCreate is the builder for creating a DTCDiagnosticStep entity.
type DTCDiagnosticStepCreate struct {
	config
	mutation *DTCDiagnosticStepMutation
	hooks    []Hook
}

// SetDtcMasterID sets the "dtc_master_id" field.
func (_c *DTCDiagnosticStepCreate) SetDtcMasterID(v string) *DTCDiagnosticStepCreate {
	_c.mutation.SetDtcMasterID(v)
	return _c
}

// SetStepOrder sets the "step_order" field.
func (_c *DTCDiagnosticStepCreate) SetStepOrder(v int) *DTCDiagnosticStepCreate {
	_c.mutation.SetStepOrder(v)
	return _c
}

// SetNillableStepOrder sets the "step_order" field if the given value is not nil.
func (_c *DTCDiagnosticStepCreate) SetNillableStepOrder(v *int) *DTCDiagnosticStepCreate {
	if v != nil {
		_c.SetStepOrder(*v)
	}
	return _c
}

// SetInstruction sets the "instruction" field.
func (_c *DTCDiagnosticStepCreate) SetInstruction(v string) *DTCDiagnosticStepCreate {
	_c.mutation.SetInstruction(v)
	return _c
}

// SetFingerprint sets the "fingerprint" field.
func (_c *DTCDiagnosticStepCreate) SetFingerprint(v string) *DTCDiagnosticStepCreate {
	_c.mutation.SetFingerprint(v)
	return _c
}

// SetToolsRequired sets the "tools_required" field.
func (_c *DTCDiagnosticStepCreate) SetToolsRequired(v string) *DTCDiagnosticStepCreate {
	_c.mutation.SetToolsRequired(v)
	return _c
}

// SetNillableToolsRequired sets the "tools_required" field if the given value is not nil.
func (_c *DTCDiagnosticStepCreate) SetNillableToolsRequired(v *string) *DTCDiagnosticStepCreate {
	if v != nil {
		_c.SetToolsRequired(*v)
	}
	return _c
}

// SetExpectedValues sets the "expected_values" field.
func (_c *DTCDiagnosticStepCreate) SetExpectedValues(v string) *DTCDiagnosticStepCreate {
	_c.mutation.SetExpectedValues(v)
	return _c
}

// SetNillableExpectedValues sets the "expected_values" field if the given value is not nil.
func (_c *DTCDiagnosticStepCreate) SetNillableExpectedValues(v *string) *DTCDiagnosticStepCreate {
	if v != nil {
		_c.SetExpectedValues(*v)
	}
	return _c
}

// SetPassNextStepID sets the "pass_next_step_id" field.
func (_c *DTCDiagnosticStepCreate) SetPassNextStepID(v string) *DTCDiagnosticStepCreate {
	_c.mutation.SetPassNextStepID(v)
	return _c
}

// SetNillablePassNextStepID sets the "pass_next_step_id" field if the given value is not nil.
func (_c *DTCDiagnosticStepCreate) SetNillablePassNextStepID(v *string) *DTCDiagnosticStepCreate {
	if v != nil {
		_c.SetPassNextStepID(*v)
	}
	return _c
}

// SetFailNextStepID sets the "fail_next_step_id" field.
func (_c *DTCDiagnosticStepCreate) SetFailNextStepID(v string) *DTCDiagnosticStepCreate {
	_c.mutation.SetFailNextStepID(v)
	return _c
}

// SetNillableFailNextStepID sets the "fail_next_step_id" field if the given value is not nil.
func (_c *DTCDiagnosticStepCreate) SetNillableFailNextStepID(v *string) *DTCDiagnosticStepCreate {
	if v != nil {
		_c.SetFailNextStepID(*v)
	}
	return _c
}

// SetEvidenceCount sets the "evidence_count" field.
func (_c *DTCDiagnosticStepCreate) SetEvidenceCount(v int) *DTCDiagnosticStepCreate {
	_c.mutation.SetEvidenceCount(v)
	return _c
}

// SetNillableEvidenceCount sets the "evidence_count" field if the given value is not nil.
func (_c *DTCDiagnosticStepCreate) SetNillableEvidenceCount(v *int) *DTCDiagnosticStepCreate {
	if v != nil {
		_c.SetEvidenceCount(*v)
	}
	return _c
}

// SetAvgTrust sets the "avg_trust" field.
func (_c *DTCDiagnosticStepCreate) SetAvgTrust(v float64) *DTCDiagnosticStepCreate {
	_c.mutation.SetAvgTrust(v)
	return _c
}

// SetNillableAvgTrust sets the "avg_trust" field if the given value is not nil.
func (_c *DTCDiagnosticStepCreate) SetNillableAvgTrust(v *float64) *DTCDiagnosticStepCreate {
	if v != nil {
		_c.SetAvgTrust(*v)
	}
	return _c
}

// SetAvgRelevance sets the "avg_relevance" field.
func (_c *DTCDiagnosticStepCreate) SetAvgRelevance(v float64) *DTCDiagnosticStepCreate {
	_c.mutation.SetAvgRelevance(v)
	return _c
}

// SetNillableAvgRelevance sets the "avg_relevance" field if the given value is not nil.
func (_c *DTCDiagnosticStepCreate) SetNillableAvgRelevance(v *float64) *DTCDiagnosticStepCreate {
	if v != nil {
		_c.SetAvgRelevance(*v)
	}
	return _c
}

// SetConflictFlag sets the "conflict_flag" field.
func (_c *DTCDiagnosticStepCreate) SetConflictFlag(v bool) *DTCDiagnosticStepCreate {
	_c.mutation.SetConflictFlag(v)
	return _c
}

// SetNillableConflictFlag sets the "conflict_flag" field if the given value is not nil.
func (_c *DTCDiagnosticStepCreate) SetNillableConflictFlag(v *bool) *DTCDiagnosticStepCreate {
	if v != nil {
		_c.SetConflictFlag(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DTCDiagnosticStepCreate) SetCreatedAt(v time.Time) *DTCDiagnosticStepCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DTCDiagnosticStepCreate) SetNillableCreatedAt(v *time.Time) *DTCDiagnosticStepCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DTCDiagnosticStepCreate) SetUpdatedAt(v time.Time) *DTCDiagnosticStepCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DTCDiagnosticStepCreate) SetNillableUpdatedAt(v *time.Time) *DTCDiagnosticStepCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DTCDiagnosticStepCreate) SetID(v string) *DTCDiagnosticStepCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the DTCDiagnosticStepMutation object of the builder.
func (_c *DTCDiagnosticStepCreate) Mutation() *DTCDiagnosticStepMutation {
	return _c.mutation
}

// Save creates the DTCDiagnosticStep in the database.
func (_c *DTCDiagnosticStepCreate) Save(ctx context.Context) (*DTCDiagnosticStep, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DTCDiagnosticStepCreate) SaveX(ctx context.Context) *DTCDiagnosticStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DTCDiagnosticStepCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DTCDiagnosticStepCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DTCDiagnosticStepCreate) defaults() {
	if _, ok := _c.mutation.StepOrder(); !ok {
		v := dtcdiagnosticstep.DefaultStepOrder
		_c.mutation.SetStepOrder(v)
	}
	if _, ok := _c.mutation.EvidenceCount(); !ok {
		v := dtcdiagnosticstep.DefaultEvidenceCount
		_c.mutation.SetEvidenceCount(v)
	}
	if _, ok := _c.mutation.AvgTrust(); !ok {
		v := dtcdiagnosticstep.DefaultAvgTrust
		_c.mutation.SetAvgTrust(v)
	}
	if _, ok := _c.mutation.AvgRelevance(); !ok {
		v := dtcdiagnosticstep.DefaultAvgRelevance
		_c.mutation.SetAvgRelevance(v)
	}
	if _, ok := _c.mutation.ConflictFlag(); !ok {
		v := dtcdiagnosticstep.DefaultConflictFlag
		_c.mutation.SetConflictFlag(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := dtcdiagnosticstep.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := dtcdiagnosticstep.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DTCDiagnosticStepCreate) check() error {
	if _, ok := _c.mutation.DtcMasterID(); !ok {
		return &ValidationError{Name: "dtc_master_id", err: errors.New(`ent: missing required field "DTCDiagnosticStep.dtc_master_id"`)}
	}
	if _, ok := _c.mutation.StepOrder(); !ok {
		return &ValidationError{Name: "step_order", err: errors.New(`ent: missing required field "DTCDiagnosticStep.step_order"`)}
	}
	if _, ok := _c.mutation.Instruction(); !ok {
		return &ValidationError{Name: "instruction", err: errors.New(`ent: missing required field "DTCDiagnosticStep.instruction"`)}
	}
	if _, ok := _c.mutation.Fingerprint(); !ok {
		return &ValidationError{Name: "fingerprint", err: errors.New(`ent: missing required field "DTCDiagnosticStep.fingerprint"`)}
	}
	if _, ok := _c.mutation.EvidenceCount(); !ok {
		return &ValidationError{Name: "evidence_count", err: errors.New(`ent: missing required field "DTCDiagnosticStep.evidence_count"`)}
	}
	if _, ok := _c.mutation.AvgTrust(); !ok {
		return &ValidationError{Name: "avg_trust", err: errors.New(`ent: missing required field "DTCDiagnosticStep.avg_trust"`)}
	}
	if _, ok := _c.mutation.AvgRelevance(); !ok {
		return &ValidationError{Name: "avg_relevance", err: errors.New(`ent: missing required field "DTCDiagnosticStep.avg_relevance"`)}
	}
	if _, ok := _c.mutation.ConflictFlag(); !ok {
		return &ValidationError{Name: "conflict_flag", err: errors.New(`ent: missing required field "DTCDiagnosticStep.conflict_flag"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DTCDiagnosticStep.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "DTCDiagnosticStep.updated_at"`)}
	}
	return nil
}

func (_c *DTCDiagnosticStepCreate) sqlSave(ctx context.Context) (*DTCDiagnosticStep, error) {
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
			return nil, fmt.Errorf("unexpected DTCDiagnosticStep.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DTCDiagnosticStepCreate) createSpec() (*DTCDiagnosticStep, *sqlgraph.CreateSpec) {
	var (
		_node = &DTCDiagnosticStep{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(dtcdiagnosticstep.Table, sqlgraph.NewFieldSpec(dtcdiagnosticstep.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.DtcMasterID(); ok {
		_spec.SetField(dtcdiagnosticstep.FieldDtcMasterID, field.TypeString, value)
		_node.DtcMasterID = value
	}
	if value, ok := _c.mutation.StepOrder(); ok {
		_spec.SetField(dtcdiagnosticstep.FieldStepOrder, field.TypeInt, value)
		_node.StepOrder = value
	}
	if value, ok := _c.mutation.Instruction(); ok {
		_spec.SetField(dtcdiagnosticstep.FieldInstruction, field.TypeString, value)
		_node.Instruction = value
	}
	if value, ok := _c.mutation.Fingerprint(); ok {
		_spec.SetField(dtcdiagnosticstep.FieldFingerprint, field.TypeString, value)
		_node.Fingerprint = value
	}
	if value, ok := _c.mutation.ToolsRequired(); ok {
		_spec.SetField(dtcdiagnosticstep.FieldToolsRequired, field.TypeString, value)
		_node.ToolsRequired = value
	}
	if value, ok := _c.mutation.ExpectedValues(); ok {
		_spec.SetField(dtcdiagnosticstep.FieldExpectedValues, field.TypeString, value)
		_node.ExpectedValues = value
	}
	if value, ok := _c.mutation.PassNextStepID(); ok {
		_spec.SetField(dtcdiagnosticstep.FieldPassNextStepID, field.TypeString, value)
		_node.PassNextStepID = &value
	}
	if value, ok := _c.mutation.FailNextStepID(); ok {
		_spec.SetField(dtcdiagnosticstep.FieldFailNextStepID, field.TypeString, value)
		_node.FailNextStepID = &value
	}
	if value, ok := _c.mutation.EvidenceCount(); ok {
		_spec.SetField(dtcdiagnosticstep.FieldEvidenceCount, field.TypeInt, value)
		_node.EvidenceCount = value
	}
	if value, ok := _c.mutation.AvgTrust(); ok {
		_spec.SetField(dtcdiagnosticstep.FieldAvgTrust, field.TypeFloat64, value)
		_node.AvgTrust = value
	}
	if value, ok := _c.mutation.AvgRelevance(); ok {
		_spec.SetField(dtcdiagnosticstep.FieldAvgRelevance, field.TypeFloat64, value)
		_node.AvgRelevance = value
	}
	if value, ok := _c.mutation.ConflictFlag(); ok {
		_spec.SetField(dtcdiagnosticstep.FieldConflictFlag, field.TypeBool, value)
		_node.ConflictFlag = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(dtcdiagnosticstep.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(dtcdiagnosticstep.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// DTCDiagnosticStepCreateBulk is the builder for creating many DTCDiagnosticStep entities in bulk.
type DTCDiagnosticStepCreateBulk struct {
	config
	err      error
	builders []*DTCDiagnosticStepCreate
}

// Save creates the DTCDiagnosticStep entities in the database.
func (_c *DTCDiagnosticStepCreateBulk) Save(ctx context.Context) ([]*DTCDiagnosticStep, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DTCDiagnosticStep, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DTCDiagnosticStepMutation)
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
func (_c *DTCDiagnosticStepCreateBulk) SaveX(ctx context.Context) []*DTCDiagnosticStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DTCDiagnosticStepCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DTCDiagnosticStepCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
