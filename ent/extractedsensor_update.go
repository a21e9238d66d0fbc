// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/autodiag/refinery/ent/extractedsensor"
	"github.com/autodiag/refinery/ent/predicate"
)

// ExtractedSensorUpdate is the builder for updating ExtractedSensor entities.
type ExtractedSensorUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractedSensorMutation
}

// Where appends a list predicates to the ExtractedSensorUpdate builder.
func (_u *ExtractedSensorUpdate) Where(ps ...predicate.ExtractedSensor) *ExtractedSensorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *ExtractedSensorUpdate) SetDocumentID(v string) *ExtractedSensorUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ExtractedSensorUpdate) SetNillableDocumentID(v *string) *ExtractedSensorUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ExtractedSensorUpdate) SetName(v string) *ExtractedSensorUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ExtractedSensorUpdate) SetNillableName(v *string) *ExtractedSensorUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSensorType sets the "sensor_type" field.
func (_u *ExtractedSensorUpdate) SetSensorType(v string) *ExtractedSensorUpdate {
	_u.mutation.SetSensorType(v)
	return _u
}

// SetNillableSensorType sets the "sensor_type" field if the given value is not nil.
func (_u *ExtractedSensorUpdate) SetNillableSensorType(v *string) *ExtractedSensorUpdate {
	if v != nil {
		_u.SetSensorType(*v)
	}
	return _u
}

// ClearSensorType clears the value of the "sensor_type" field.
func (_u *ExtractedSensorUpdate) ClearSensorType() *ExtractedSensorUpdate {
	_u.mutation.ClearSensorType()
	return _u
}

// SetTypicalRange sets the "typical_range" field.
func (_u *ExtractedSensorUpdate) SetTypicalRange(v string) *ExtractedSensorUpdate {
	_u.mutation.SetTypicalRange(v)
	return _u
}

// SetNillableTypicalRange sets the "typical_range" field if the given value is not nil.
func (_u *ExtractedSensorUpdate) SetNillableTypicalRange(v *string) *ExtractedSensorUpdate {
	if v != nil {
		_u.SetTypicalRange(*v)
	}
	return _u
}

// ClearTypicalRange clears the value of the "typical_range" field.
func (_u *ExtractedSensorUpdate) ClearTypicalRange() *ExtractedSensorUpdate {
	_u.mutation.ClearTypicalRange()
	return _u
}

// SetUnit sets the "unit" field.
func (_u *ExtractedSensorUpdate) SetUnit(v string) *ExtractedSensorUpdate {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *ExtractedSensorUpdate) SetNillableUnit(v *string) *ExtractedSensorUpdate {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// ClearUnit clears the value of the "unit" field.
func (_u *ExtractedSensorUpdate) ClearUnit() *ExtractedSensorUpdate {
	_u.mutation.ClearUnit()
	return _u
}

// SetRelatedDtcCodes sets the "related_dtc_codes" field.
func (_u *ExtractedSensorUpdate) SetRelatedDtcCodes(v []string) *ExtractedSensorUpdate {
	_u.mutation.SetRelatedDtcCodes(v)
	return _u
}

// AppendRelatedDtcCodes appends value to the "related_dtc_codes" field.
func (_u *ExtractedSensorUpdate) AppendRelatedDtcCodes(v []string) *ExtractedSensorUpdate {
	_u.mutation.AppendRelatedDtcCodes(v)
	return _u
}

// ClearRelatedDtcCodes clears the value of the "related_dtc_codes" field.
func (_u *ExtractedSensorUpdate) ClearRelatedDtcCodes() *ExtractedSensorUpdate {
	_u.mutation.ClearRelatedDtcCodes()
	return _u
}

// SetSourceChunkID sets the "source_chunk_id" field.
func (_u *ExtractedSensorUpdate) SetSourceChunkID(v string) *ExtractedSensorUpdate {
	_u.mutation.SetSourceChunkID(v)
	return _u
}

// SetNillableSourceChunkID sets the "source_chunk_id" field if the given value is not nil.
func (_u *ExtractedSensorUpdate) SetNillableSourceChunkID(v *string) *ExtractedSensorUpdate {
	if v != nil {
		_u.SetSourceChunkID(*v)
	}
	return _u
}

// SetTrust sets the "trust" field.
func (_u *ExtractedSensorUpdate) SetTrust(v float64) *ExtractedSensorUpdate {
	_u.mutation.ResetTrust()
	_u.mutation.SetTrust(v)
	return _u
}

// SetNillableTrust sets the "trust" field if the given value is not nil.
func (_u *ExtractedSensorUpdate) SetNillableTrust(v *float64) *ExtractedSensorUpdate {
	if v != nil {
		_u.SetTrust(*v)
	}
	return _u
}

// AddTrust adds value to the "trust" field.
func (_u *ExtractedSensorUpdate) AddTrust(v float64) *ExtractedSensorUpdate {
	_u.mutation.AddTrust(v)
	return _u
}

// SetRelevance sets the "relevance" field.
func (_u *ExtractedSensorUpdate) SetRelevance(v float64) *ExtractedSensorUpdate {
	_u.mutation.ResetRelevance()
	_u.mutation.SetRelevance(v)
	return _u
}

// SetNillableRelevance sets the "relevance" field if the given value is not nil.
func (_u *ExtractedSensorUpdate) SetNillableRelevance(v *float64) *ExtractedSensorUpdate {
	if v != nil {
		_u.SetRelevance(*v)
	}
	return _u
}

// AddRelevance adds value to the "relevance" field.
func (_u *ExtractedSensorUpdate) AddRelevance(v float64) *ExtractedSensorUpdate {
	_u.mutation.AddRelevance(v)
	return _u
}

// Mutation returns the ExtractedSensorMutation object of the builder.
func (_u *ExtractedSensorUpdate) Mutation() *ExtractedSensorMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractedSensorUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractedSensorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractedSensorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractedSensorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ExtractedSensorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(extractedsensor.Table, extractedsensor.Columns, sqlgraph.NewFieldSpec(extractedsensor.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocumentID(); ok {
		_spec.SetField(extractedsensor.FieldDocumentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(extractedsensor.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SensorType(); ok {
		_spec.SetField(extractedsensor.FieldSensorType, field.TypeString, value)
	}
	if _u.mutation.SensorTypeCleared() {
		_spec.ClearField(extractedsensor.FieldSensorType, field.TypeString)
	}
	if value, ok := _u.mutation.TypicalRange(); ok {
		_spec.SetField(extractedsensor.FieldTypicalRange, field.TypeString, value)
	}
	if _u.mutation.TypicalRangeCleared() {
		_spec.ClearField(extractedsensor.FieldTypicalRange, field.TypeString)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(extractedsensor.FieldUnit, field.TypeString, value)
	}
	if _u.mutation.UnitCleared() {
		_spec.ClearField(extractedsensor.FieldUnit, field.TypeString)
	}
	if value, ok := _u.mutation.RelatedDtcCodes(); ok {
		_spec.SetField(extractedsensor.FieldRelatedDtcCodes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRelatedDtcCodes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractedsensor.FieldRelatedDtcCodes, value)
		})
	}
	if _u.mutation.RelatedDtcCodesCleared() {
		_spec.ClearField(extractedsensor.FieldRelatedDtcCodes, field.TypeJSON)
	}
	if value, ok := _u.mutation.SourceChunkID(); ok {
		_spec.SetField(extractedsensor.FieldSourceChunkID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Trust(); ok {
		_spec.SetField(extractedsensor.FieldTrust, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTrust(); ok {
		_spec.AddField(extractedsensor.FieldTrust, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Relevance(); ok {
		_spec.SetField(extractedsensor.FieldRelevance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRelevance(); ok {
		_spec.AddField(extractedsensor.FieldRelevance, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractedsensor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractedSensorUpdateOne is the builder for updating a single ExtractedSensor entity.
type ExtractedSensorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractedSensorMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *ExtractedSensorUpdateOne) SetDocumentID(v string) *ExtractedSensorUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ExtractedSensorUpdateOne) SetNillableDocumentID(v *string) *ExtractedSensorUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ExtractedSensorUpdateOne) SetName(v string) *ExtractedSensorUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ExtractedSensorUpdateOne) SetNillableName(v *string) *ExtractedSensorUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSensorType sets the "sensor_type" field.
func (_u *ExtractedSensorUpdateOne) SetSensorType(v string) *ExtractedSensorUpdateOne {
	_u.mutation.SetSensorType(v)
	return _u
}

// SetNillableSensorType sets the "sensor_type" field if the given value is not nil.
func (_u *ExtractedSensorUpdateOne) SetNillableSensorType(v *string) *ExtractedSensorUpdateOne {
	if v != nil {
		_u.SetSensorType(*v)
	}
	return _u
}

// ClearSensorType clears the value of the "sensor_type" field.
func (_u *ExtractedSensorUpdateOne) ClearSensorType() *ExtractedSensorUpdateOne {
	_u.mutation.ClearSensorType()
	return _u
}

// SetTypicalRange sets the "typical_range" field.
func (_u *ExtractedSensorUpdateOne) SetTypicalRange(v string) *ExtractedSensorUpdateOne {
	_u.mutation.SetTypicalRange(v)
	return _u
}

// SetNillableTypicalRange sets the "typical_range" field if the given value is not nil.
func (_u *ExtractedSensorUpdateOne) SetNillableTypicalRange(v *string) *ExtractedSensorUpdateOne {
	if v != nil {
		_u.SetTypicalRange(*v)
	}
	return _u
}

// ClearTypicalRange clears the value of the "typical_range" field.
func (_u *ExtractedSensorUpdateOne) ClearTypicalRange() *ExtractedSensorUpdateOne {
	_u.mutation.ClearTypicalRange()
	return _u
}

// SetUnit sets the "unit" field.
func (_u *ExtractedSensorUpdateOne) SetUnit(v string) *ExtractedSensorUpdateOne {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *ExtractedSensorUpdateOne) SetNillableUnit(v *string) *ExtractedSensorUpdateOne {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// ClearUnit clears the value of the "unit" field.
func (_u *ExtractedSensorUpdateOne) ClearUnit() *ExtractedSensorUpdateOne {
	_u.mutation.ClearUnit()
	return _u
}

// SetRelatedDtcCodes sets the "related_dtc_codes" field.
func (_u *ExtractedSensorUpdateOne) SetRelatedDtcCodes(v []string) *ExtractedSensorUpdateOne {
	_u.mutation.SetRelatedDtcCodes(v)
	return _u
}

// AppendRelatedDtcCodes appends value to the "related_dtc_codes" field.
func (_u *ExtractedSensorUpdateOne) AppendRelatedDtcCodes(v []string) *ExtractedSensorUpdateOne {
	_u.mutation.AppendRelatedDtcCodes(v)
	return _u
}

// ClearRelatedDtcCodes clears the value of the "related_dtc_codes" field.
func (_u *ExtractedSensorUpdateOne) ClearRelatedDtcCodes() *ExtractedSensorUpdateOne {
	_u.mutation.ClearRelatedDtcCodes()
	return _u
}

// SetSourceChunkID sets the "source_chunk_id" field.
func (_u *ExtractedSensorUpdateOne) SetSourceChunkID(v string) *ExtractedSensorUpdateOne {
	_u.mutation.SetSourceChunkID(v)
	return _u
}

// SetNillableSourceChunkID sets the "source_chunk_id" field if the given value is not nil.
func (_u *ExtractedSensorUpdateOne) SetNillableSourceChunkID(v *string) *ExtractedSensorUpdateOne {
	if v != nil {
		_u.SetSourceChunkID(*v)
	}
	return _u
}

// SetTrust sets the "trust" field.
func (_u *ExtractedSensorUpdateOne) SetTrust(v float64) *ExtractedSensorUpdateOne {
	_u.mutation.ResetTrust()
	_u.mutation.SetTrust(v)
	return _u
}

// SetNillableTrust sets the "trust" field if the given value is not nil.
func (_u *ExtractedSensorUpdateOne) SetNillableTrust(v *float64) *ExtractedSensorUpdateOne {
	if v != nil {
		_u.SetTrust(*v)
	}
	return _u
}

// AddTrust adds value to the "trust" field.
func (_u *ExtractedSensorUpdateOne) AddTrust(v float64) *ExtractedSensorUpdateOne {
	_u.mutation.AddTrust(v)
	return _u
}

// SetRelevance sets the "relevance" field.
func (_u *ExtractedSensorUpdateOne) SetRelevance(v float64) *ExtractedSensorUpdateOne {
	_u.mutation.ResetRelevance()
	_u.mutation.SetRelevance(v)
	return _u
}

// SetNillableRelevance sets the "relevance" field if the given value is not nil.
func (_u *ExtractedSensorUpdateOne) SetNillableRelevance(v *float64) *ExtractedSensorUpdateOne {
	if v != nil {
		_u.SetRelevance(*v)
	}
	return _u
}

// AddRelevance adds value to the "relevance" field.
func (_u *ExtractedSensorUpdateOne) AddRelevance(v float64) *ExtractedSensorUpdateOne {
	_u.mutation.AddRelevance(v)
	return _u
}

// Mutation returns the ExtractedSensorMutation object of the builder.
func (_u *ExtractedSensorUpdateOne) Mutation() *ExtractedSensorMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExtractedSensorUpdate builder.
func (_u *ExtractedSensorUpdateOne) Where(ps ...predicate.ExtractedSensor) *ExtractedSensorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractedSensorUpdateOne) Select(field string, fields ...string) *ExtractedSensorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractedSensor entity.
func (_u *ExtractedSensorUpdateOne) Save(ctx context.Context) (*ExtractedSensor, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractedSensorUpdateOne) SaveX(ctx context.Context) *ExtractedSensor {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractedSensorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractedSensorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ExtractedSensorUpdateOne) sqlSave(ctx context.Context) (_node *ExtractedSensor, err error) {
	_spec := sqlgraph.NewUpdateSpec(extractedsensor.Table, extractedsensor.Columns, sqlgraph.NewFieldSpec(extractedsensor.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractedSensor.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractedsensor.FieldID)
		for _, f := range fields {
			if !extractedsensor.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractedsensor.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocumentID(); ok {
		_spec.SetField(extractedsensor.FieldDocumentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(extractedsensor.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SensorType(); ok {
		_spec.SetField(extractedsensor.FieldSensorType, field.TypeString, value)
	}
	if _u.mutation.SensorTypeCleared() {
		_spec.ClearField(extractedsensor.FieldSensorType, field.TypeString)
	}
	if value, ok := _u.mutation.TypicalRange(); ok {
		_spec.SetField(extractedsensor.FieldTypicalRange, field.TypeString, value)
	}
	if _u.mutation.TypicalRangeCleared() {
		_spec.ClearField(extractedsensor.FieldTypicalRange, field.TypeString)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(extractedsensor.FieldUnit, field.TypeString, value)
	}
	if _u.mutation.UnitCleared() {
		_spec.ClearField(extractedsensor.FieldUnit, field.TypeString)
	}
	if value, ok := _u.mutation.RelatedDtcCodes(); ok {
		_spec.SetField(extractedsensor.FieldRelatedDtcCodes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRelatedDtcCodes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, extractedsensor.FieldRelatedDtcCodes, value)
		})
	}
	if _u.mutation.RelatedDtcCodesCleared() {
		_spec.ClearField(extractedsensor.FieldRelatedDtcCodes, field.TypeJSON)
	}
	if value, ok := _u.mutation.SourceChunkID(); ok {
		_spec.SetField(extractedsensor.FieldSourceChunkID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Trust(); ok {
		_spec.SetField(extractedsensor.FieldTrust, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTrust(); ok {
		_spec.AddField(extractedsensor.FieldTrust, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Relevance(); ok {
		_spec.SetField(extractedsensor.FieldRelevance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRelevance(); ok {
		_spec.AddField(extractedsensor.FieldRelevance, field.TypeFloat64, value)
	}
	_node = &ExtractedSensor{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractedsensor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
