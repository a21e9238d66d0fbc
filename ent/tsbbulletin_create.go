// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autodiag/refinery/ent/tsbbulletin"
)

// TSBBulletinCreate is the builder for creating a TSBBulletin entity.
type TSBBulletinCreate struct {
	config
	mutation *TSBBulletinMutation
	hooks    []Hook
}

// SetTsbNumber sets the "tsb_number" field.
func (_c *TSBBulletinCreate) SetTsbNumber(v string) *TSBBulletinCreate {
	_c.mutation.SetTsbNumber(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *TSBBulletinCreate) SetTitle(v string) *TSBBulletinCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *TSBBulletinCreate) SetNillableTitle(v *string) *TSBBulletinCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetAffectedModels sets the "affected_models" field.
func (_c *TSBBulletinCreate) SetAffectedModels(v string) *TSBBulletinCreate {
	_c.mutation.SetAffectedModels(v)
	return _c
}

// SetNillableAffectedModels sets the "affected_models" field if the given value is not nil.
func (_c *TSBBulletinCreate) SetNillableAffectedModels(v *string) *TSBBulletinCreate {
	if v != nil {
		_c.SetAffectedModels(*v)
	}
	return _c
}

// SetRelatedDtcCodes sets the "related_dtc_codes" field.
func (_c *TSBBulletinCreate) SetRelatedDtcCodes(v []string) *TSBBulletinCreate {
	_c.mutation.SetRelatedDtcCodes(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *TSBBulletinCreate) SetSummary(v string) *TSBBulletinCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *TSBBulletinCreate) SetNillableSummary(v *string) *TSBBulletinCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetEvidenceCount sets the "evidence_count" field.
func (_c *TSBBulletinCreate) SetEvidenceCount(v int) *TSBBulletinCreate {
	_c.mutation.SetEvidenceCount(v)
	return _c
}

// SetNillableEvidenceCount sets the "evidence_count" field if the given value is not nil.
func (_c *TSBBulletinCreate) SetNillableEvidenceCount(v *int) *TSBBulletinCreate {
	if v != nil {
		_c.SetEvidenceCount(*v)
	}
	return _c
}

// SetAvgTrust sets the "avg_trust" field.
func (_c *TSBBulletinCreate) SetAvgTrust(v float64) *TSBBulletinCreate {
	_c.mutation.SetAvgTrust(v)
	return _c
}

// SetNillableAvgTrust sets the "avg_trust" field if the given value is not nil.
func (_c *TSBBulletinCreate) SetNillableAvgTrust(v *float64) *TSBBulletinCreate {
	if v != nil {
		_c.SetAvgTrust(*v)
	}
	return _c
}

// SetAvgRelevance sets the "avg_relevance" field.
func (_c *TSBBulletinCreate) SetAvgRelevance(v float64) *TSBBulletinCreate {
	_c.mutation.SetAvgRelevance(v)
	return _c
}

// SetNillableAvgRelevance sets the "avg_relevance" field if the given value is not nil.
func (_c *TSBBulletinCreate) SetNillableAvgRelevance(v *float64) *TSBBulletinCreate {
	if v != nil {
		_c.SetAvgRelevance(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TSBBulletinCreate) SetCreatedAt(v time.Time) *TSBBulletinCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TSBBulletinCreate) SetNillableCreatedAt(v *time.Time) *TSBBulletinCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TSBBulletinCreate) SetUpdatedAt(v time.Time) *TSBBulletinCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TSBBulletinCreate) SetNillableUpdatedAt(v *time.Time) *TSBBulletinCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TSBBulletinCreate) SetID(v string) *TSBBulletinCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the TSBBulletinMutation object of the builder.
func (_c *TSBBulletinCreate) Mutation() *TSBBulletinMutation {
	return _c.mutation
}

// Save creates the TSBBulletin in the database.
func (_c *TSBBulletinCreate) Save(ctx context.Context) (*TSBBulletin, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TSBBulletinCreate) SaveX(ctx context.Context) *TSBBulletin {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TSBBulletinCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TSBBulletinCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TSBBulletinCreate) defaults() {
	if _, ok := _c.mutation.EvidenceCount(); !ok {
		v := tsbbulletin.DefaultEvidenceCount
		_c.mutation.SetEvidenceCount(v)
	}
	if _, ok := _c.mutation.AvgTrust(); !ok {
		v := tsbbulletin.DefaultAvgTrust
		_c.mutation.SetAvgTrust(v)
	}
	if _, ok := _c.mutation.AvgRelevance(); !ok {
		v := tsbbulletin.DefaultAvgRelevance
		_c.mutation.SetAvgRelevance(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := tsbbulletin.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := tsbbulletin.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TSBBulletinCreate) check() error {
	if _, ok := _c.mutation.TsbNumber(); !ok {
		return &ValidationError{Name: "tsb_number", err: errors.New(`ent: missing required field "TSBBulletin.tsb_number"`)}
	}
	if _, ok := _c.mutation.EvidenceCount(); !ok {
		return &ValidationError{Name: "evidence_count", err: errors.New(`ent: missing required field "TSBBulletin.evidence_count"`)}
	}
	if _, ok := _c.mutation.AvgTrust(); !ok {
		return &ValidationError{Name: "avg_trust", err: errors.New(`ent: missing required field "TSBBulletin.avg_trust"`)}
	}
	if _, ok := _c.mutation.AvgRelevance(); !ok {
		return &ValidationError{Name: "avg_relevance", err: errors.New(`ent: missing required field "TSBBulletin.avg_relevance"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TSBBulletin.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "TSBBulletin.updated_at"`)}
	}
	return nil
}

func (_c *TSBBulletinCreate) sqlSave(ctx context.Context) (*TSBBulletin, error) {
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
			return nil, fmt.Errorf("unexpected TSBBulletin.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TSBBulletinCreate) createSpec() (*TSBBulletin, *sqlgraph.CreateSpec) {
	var (
		_node = &TSBBulletin{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tsbbulletin.Table, sqlgraph.NewFieldSpec(tsbbulletin.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TsbNumber(); ok {
		_spec.SetField(tsbbulletin.FieldTsbNumber, field.TypeString, value)
		_node.TsbNumber = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(tsbbulletin.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.AffectedModels(); ok {
		_spec.SetField(tsbbulletin.FieldAffectedModels, field.TypeString, value)
		_node.AffectedModels = value
	}
	if value, ok := _c.mutation.RelatedDtcCodes(); ok {
		_spec.SetField(tsbbulletin.FieldRelatedDtcCodes, field.TypeJSON, value)
		_node.RelatedDtcCodes = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(tsbbulletin.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.EvidenceCount(); ok {
		_spec.SetField(tsbbulletin.FieldEvidenceCount, field.TypeInt, value)
		_node.EvidenceCount = value
	}
	if value, ok := _c.mutation.AvgTrust(); ok {
		_spec.SetField(tsbbulletin.FieldAvgTrust, field.TypeFloat64, value)
		_node.AvgTrust = value
	}
	if value, ok := _c.mutation.AvgRelevance(); ok {
		_spec.SetField(tsbbulletin.FieldAvgRelevance, field.TypeFloat64, value)
		_node.AvgRelevance = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(tsbbulletin.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(tsbbulletin.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// TSBBulletinCreateBulk is the builder for creating many TSBBulletin entities in bulk.
type TSBBulletinCreateBulk struct {
	config
	err      error
	builders []*TSBBulletinCreate
}

// Save creates the TSBBulletin entities in the database.
func (_c *TSBBulletinCreateBulk) Save(ctx context.Context) ([]*TSBBulletin, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TSBBulletin, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TSBBulletinMutation)
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
func (_c *TSBBulletinCreateBulk) SaveX(ctx context.Context) []*TSBBulletin {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TSBBulletinCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TSBBulletinCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
