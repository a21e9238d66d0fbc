// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autodiag/refinery/ent/dtcmaster"
)

// DTCMasterCreate is the builder for creating a DTCMaster entity.
type DTCMasterCreate struct {
	config
	mutation *DTCMasterMutation
	hooks    []Hook
}

// SetCode sets the "code" field.
func (_c *DTCMasterCreate) SetCode(v string) *DTCMasterCreate {
	_c.mutation.SetCode(v)
	return _c
}

// SetSystemCategory sets the "system_category" field.
func (_c *DTCMasterCreate) SetSystemCategory(v string) *DTCMasterCreate {
	_c.mutation.SetSystemCategory(v)
	return _c
}

// SetNillableSystemCategory sets the "system_category" field if the given value is not nil.
func (_c *DTCMasterCreate) SetNillableSystemCategory(v *string) *DTCMasterCreate {
	if v != nil {
		_c.SetSystemCategory(*v)
	}
	return _c
}

// SetGenericDescription sets the "generic_description" field.
func (_c *DTCMasterCreate) SetGenericDescription(v string) *DTCMasterCreate {
	_c.mutation.SetGenericDescription(v)
	return _c
}

// SetNillableGenericDescription sets the "generic_description" field if the given value is not nil.
func (_c *DTCMasterCreate) SetNillableGenericDescription(v *string) *DTCMasterCreate {
	if v != nil {
		_c.SetGenericDescription(*v)
	}
	return _c
}

// SetDescriptionTrust sets the "description_trust" field.
func (_c *DTCMasterCreate) SetDescriptionTrust(v float64) *DTCMasterCreate {
	_c.mutation.SetDescriptionTrust(v)
	return _c
}

// SetNillableDescriptionTrust sets the "description_trust" field if the given value is not nil.
func (_c *DTCMasterCreate) SetNillableDescriptionTrust(v *float64) *DTCMasterCreate {
	if v != nil {
		_c.SetDescriptionTrust(*v)
	}
	return _c
}

// SetSeverityLevel sets the "severity_level" field.
func (_c *DTCMasterCreate) SetSeverityLevel(v int) *DTCMasterCreate {
	_c.mutation.SetSeverityLevel(v)
	return _c
}

// SetNillableSeverityLevel sets the "severity_level" field if the given value is not nil.
func (_c *DTCMasterCreate) SetNillableSeverityLevel(v *int) *DTCMasterCreate {
	if v != nil {
		_c.SetSeverityLevel(*v)
	}
	return _c
}

// SetEmissionsRelated sets the "emissions_related" field.
func (_c *DTCMasterCreate) SetEmissionsRelated(v bool) *DTCMasterCreate {
	_c.mutation.SetEmissionsRelated(v)
	return _c
}

// SetNillableEmissionsRelated sets the "emissions_related" field if the given value is not nil.
func (_c *DTCMasterCreate) SetNillableEmissionsRelated(v *bool) *DTCMasterCreate {
	if v != nil {
		_c.SetEmissionsRelated(*v)
	}
	return _c
}

// SetEvidenceCount sets the "evidence_count" field.
func (_c *DTCMasterCreate) SetEvidenceCount(v int) *DTCMasterCreate {
	_c.mutation.SetEvidenceCount(v)
	return _c
}

// SetNillableEvidenceCount sets the "evidence_count" field if the given value is not nil.
func (_c *DTCMasterCreate) SetNillableEvidenceCount(v *int) *DTCMasterCreate {
	if v != nil {
		_c.SetEvidenceCount(*v)
	}
	return _c
}

// SetAvgTrust sets the "avg_trust" field.
func (_c *DTCMasterCreate) SetAvgTrust(v float64) *DTCMasterCreate {
	_c.mutation.SetAvgTrust(v)
	return _c
}

// SetNillableAvgTrust sets the "avg_trust" field if the given value is not nil.
func (_c *DTCMasterCreate) SetNillableAvgTrust(v *float64) *DTCMasterCreate {
	if v != nil {
		_c.SetAvgTrust(*v)
	}
	return _c
}

// SetAvgRelevance sets the "avg_relevance" field.
func (_c *DTCMasterCreate) SetAvgRelevance(v float64) *DTCMasterCreate {
	_c.mutation.SetAvgRelevance(v)
	return _c
}

// SetNillableAvgRelevance sets the "avg_relevance" field if the given value is not nil.
func (_c *DTCMasterCreate) SetNillableAvgRelevance(v *float64) *DTCMasterCreate {
	if v != nil {
		_c.SetAvgRelevance(*v)
	}
	return _c
}

// SetConfidenceScore sets the "confidence_score" field.
func (_c *DTCMasterCreate) SetConfidenceScore(v float64) *DTCMasterCreate {
	_c.mutation.SetConfidenceScore(v)
	return _c
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_c *DTCMasterCreate) SetNillableConfidenceScore(v *float64) *DTCMasterCreate {
	if v != nil {
		_c.SetConfidenceScore(*v)
	}
	return _c
}

// SetConflictFlag sets the "conflict_flag" field.
func (_c *DTCMasterCreate) SetConflictFlag(v bool) *DTCMasterCreate {
	_c.mutation.SetConflictFlag(v)
	return _c
}

// SetNillableConflictFlag sets the "conflict_flag" field if the given value is not nil.
func (_c *DTCMasterCreate) SetNillableConflictFlag(v *bool) *DTCMasterCreate {
	if v != nil {
		_c.SetConflictFlag(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DTCMasterCreate) SetCreatedAt(v time.Time) *DTCMasterCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DTCMasterCreate) SetNillableCreatedAt(v *time.Time) *DTCMasterCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DTCMasterCreate) SetUpdatedAt(v time.Time) *DTCMasterCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DTCMasterCreate) SetNillableUpdatedAt(v *time.Time) *DTCMasterCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DTCMasterCreate) SetID(v string) *DTCMasterCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the DTCMasterMutation object of the builder.
func (_c *DTCMasterCreate) Mutation() *DTCMasterMutation {
	return _c.mutation
}

// Save creates the DTCMaster in the database.
func (_c *DTCMasterCreate) Save(ctx context.Context) (*DTCMaster, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DTCMasterCreate) SaveX(ctx context.Context) *DTCMaster {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DTCMasterCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DTCMasterCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DTCMasterCreate) defaults() {
	if _, ok := _c.mutation.SystemCategory(); !ok {
		v := dtcmaster.DefaultSystemCategory
		_c.mutation.SetSystemCategory(v)
	}
	if _, ok := _c.mutation.DescriptionTrust(); !ok {
		v := dtcmaster.DefaultDescriptionTrust
		_c.mutation.SetDescriptionTrust(v)
	}
	if _, ok := _c.mutation.SeverityLevel(); !ok {
		v := dtcmaster.DefaultSeverityLevel
		_c.mutation.SetSeverityLevel(v)
	}
	if _, ok := _c.mutation.EmissionsRelated(); !ok {
		v := dtcmaster.DefaultEmissionsRelated
		_c.mutation.SetEmissionsRelated(v)
	}
	if _, ok := _c.mutation.EvidenceCount(); !ok {
		v := dtcmaster.DefaultEvidenceCount
		_c.mutation.SetEvidenceCount(v)
	}
	if _, ok := _c.mutation.AvgTrust(); !ok {
		v := dtcmaster.DefaultAvgTrust
		_c.mutation.SetAvgTrust(v)
	}
	if _, ok := _c.mutation.AvgRelevance(); !ok {
		v := dtcmaster.DefaultAvgRelevance
		_c.mutation.SetAvgRelevance(v)
	}
	if _, ok := _c.mutation.ConfidenceScore(); !ok {
		v := dtcmaster.DefaultConfidenceScore
		_c.mutation.SetConfidenceScore(v)
	}
	if _, ok := _c.mutation.ConflictFlag(); !ok {
		v := dtcmaster.DefaultConflictFlag
		_c.mutation.SetConflictFlag(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := dtcmaster.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := dtcmaster.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DTCMasterCreate) check() error {
	if _, ok := _c.mutation.Code(); !ok {
		return &ValidationError{Name: "code", err: errors.New(`ent: missing required field "DTCMaster.code"`)}
	}
	if v, ok := _c.mutation.Code(); ok {
		if err := dtcmaster.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "DTCMaster.code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SystemCategory(); !ok {
		return &ValidationError{Name: "system_category", err: errors.New(`ent: missing required field "DTCMaster.system_category"`)}
	}
	if _, ok := _c.mutation.DescriptionTrust(); !ok {
		return &ValidationError{Name: "description_trust", err: errors.New(`ent: missing required field "DTCMaster.description_trust"`)}
	}
	if _, ok := _c.mutation.SeverityLevel(); !ok {
		return &ValidationError{Name: "severity_level", err: errors.New(`ent: missing required field "DTCMaster.severity_level"`)}
	}
	if v, ok := _c.mutation.SeverityLevel(); ok {
		if err := dtcmaster.SeverityLevelValidator(v); err != nil {
			return &ValidationError{Name: "severity_level", err: fmt.Errorf(`ent: validator failed for field "DTCMaster.severity_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EmissionsRelated(); !ok {
		return &ValidationError{Name: "emissions_related", err: errors.New(`ent: missing required field "DTCMaster.emissions_related"`)}
	}
	if _, ok := _c.mutation.EvidenceCount(); !ok {
		return &ValidationError{Name: "evidence_count", err: errors.New(`ent: missing required field "DTCMaster.evidence_count"`)}
	}
	if _, ok := _c.mutation.AvgTrust(); !ok {
		return &ValidationError{Name: "avg_trust", err: errors.New(`ent: missing required field "DTCMaster.avg_trust"`)}
	}
	if _, ok := _c.mutation.AvgRelevance(); !ok {
		return &ValidationError{Name: "avg_relevance", err: errors.New(`ent: missing required field "DTCMaster.avg_relevance"`)}
	}
	if _, ok := _c.mutation.ConfidenceScore(); !ok {
		return &ValidationError{Name: "confidence_score", err: errors.New(`ent: missing required field "DTCMaster.confidence_score"`)}
	}
	if _, ok := _c.mutation.ConflictFlag(); !ok {
		return &ValidationError{Name: "conflict_flag", err: errors.New(`ent: missing required field "DTCMaster.conflict_flag"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DTCMaster.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "DTCMaster.updated_at"`)}
	}
	return nil
}

func (_c *DTCMasterCreate) sqlSave(ctx context.Context) (*DTCMaster, error) {
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
			return nil, fmt.Errorf("unexpected DTCMaster.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DTCMasterCreate) createSpec() (*DTCMaster, *sqlgraph.CreateSpec) {
	var (
		_node = &DTCMaster{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(dtcmaster.Table, sqlgraph.NewFieldSpec(dtcmaster.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Code(); ok {
		_spec.SetField(dtcmaster.FieldCode, field.TypeString, value)
		_node.Code = value
	}
	if value, ok := _c.mutation.SystemCategory(); ok {
		_spec.SetField(dtcmaster.FieldSystemCategory, field.TypeString, value)
		_node.SystemCategory = value
	}
	if value, ok := _c.mutation.GenericDescription(); ok {
		_spec.SetField(dtcmaster.FieldGenericDescription, field.TypeString, value)
		_node.GenericDescription = value
	}
	if value, ok := _c.mutation.DescriptionTrust(); ok {
		_spec.SetField(dtcmaster.FieldDescriptionTrust, field.TypeFloat64, value)
		_node.DescriptionTrust = value
	}
	if value, ok := _c.mutation.SeverityLevel(); ok {
		_spec.SetField(dtcmaster.FieldSeverityLevel, field.TypeInt, value)
		_node.SeverityLevel = value
	}
	if value, ok := _c.mutation.EmissionsRelated(); ok {
		_spec.SetField(dtcmaster.FieldEmissionsRelated, field.TypeBool, value)
		_node.EmissionsRelated = value
	}
	if value, ok := _c.mutation.EvidenceCount(); ok {
		_spec.SetField(dtcmaster.FieldEvidenceCount, field.TypeInt, value)
		_node.EvidenceCount = value
	}
	if value, ok := _c.mutation.AvgTrust(); ok {
		_spec.SetField(dtcmaster.FieldAvgTrust, field.TypeFloat64, value)
		_node.AvgTrust = value
	}
	if value, ok := _c.mutation.AvgRelevance(); ok {
		_spec.SetField(dtcmaster.FieldAvgRelevance, field.TypeFloat64, value)
		_node.AvgRelevance = value
	}
	if value, ok := _c.mutation.ConfidenceScore(); ok {
		_spec.SetField(dtcmaster.FieldConfidenceScore, field.TypeFloat64, value)
		_node.ConfidenceScore = value
	}
	if value, ok := _c.mutation.ConflictFlag(); ok {
		_spec.SetField(dtcmaster.FieldConflictFlag, field.TypeBool, value)
		_node.ConflictFlag = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(dtcmaster.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(dtcmaster.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// DTCMasterCreateBulk is the builder for creating many DTCMaster entities in bulk.
type DTCMasterCreateBulk struct {
	config
	err      error
	builders []*DTCMasterCreate
}

// Save creates the DTCMaster entities in the database.
func (_c *DTCMasterCreateBulk) Save(ctx context.Context) ([]*DTCMaster, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DTCMaster, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DTCMasterMutation)
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
func (_c *DTCMasterCreateBulk) SaveX(ctx context.Context) []*DTCMaster {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DTCMasterCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DTCMasterCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
