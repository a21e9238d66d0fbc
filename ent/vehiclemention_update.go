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
	"github.com/autodiag/refinery/ent/predicate"
	"github.com/autodiag/refinery/ent/vehiclemention"
)

// VehicleMentionUpdate is the builder for updating VehicleMention entities.
type VehicleMentionUpdate struct {
	config
	hooks    []Hook
	mutation *VehicleMentionMutation
}

// Where appends a list predicates to the VehicleMentionUpdate builder.
func (_u *VehicleMentionUpdate) Where(ps ...predicate.VehicleMention) *VehicleMentionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *VehicleMentionUpdate) SetDocumentID(v string) *VehicleMentionUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *VehicleMentionUpdate) SetNillableDocumentID(v *string) *VehicleMentionUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetMake sets the "make" field.
func (_u *VehicleMentionUpdate) SetMake(v string) *VehicleMentionUpdate {
	_u.mutation.SetMake(v)
	return _u
}

// SetNillableMake sets the "make" field if the given value is not nil.
func (_u *VehicleMentionUpdate) SetNillableMake(v *string) *VehicleMentionUpdate {
	if v != nil {
		_u.SetMake(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *VehicleMentionUpdate) SetModel(v string) *VehicleMentionUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *VehicleMentionUpdate) SetNillableModel(v *string) *VehicleMentionUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *VehicleMentionUpdate) ClearModel() *VehicleMentionUpdate {
	_u.mutation.ClearModel()
	return _u
}

// SetYearStart sets the "year_start" field.
func (_u *VehicleMentionUpdate) SetYearStart(v int) *VehicleMentionUpdate {
	_u.mutation.ResetYearStart()
	_u.mutation.SetYearStart(v)
	return _u
}

// SetNillableYearStart sets the "year_start" field if the given value is not nil.
func (_u *VehicleMentionUpdate) SetNillableYearStart(v *int) *VehicleMentionUpdate {
	if v != nil {
		_u.SetYearStart(*v)
	}
	return _u
}

// AddYearStart adds value to the "year_start" field.
func (_u *VehicleMentionUpdate) AddYearStart(v int) *VehicleMentionUpdate {
	_u.mutation.AddYearStart(v)
	return _u
}

// ClearYearStart clears the value of the "year_start" field.
func (_u *VehicleMentionUpdate) ClearYearStart() *VehicleMentionUpdate {
	_u.mutation.ClearYearStart()
	return _u
}

// SetYearEnd sets the "year_end" field.
func (_u *VehicleMentionUpdate) SetYearEnd(v int) *VehicleMentionUpdate {
	_u.mutation.ResetYearEnd()
	_u.mutation.SetYearEnd(v)
	return _u
}

// SetNillableYearEnd sets the "year_end" field if the given value is not nil.
func (_u *VehicleMentionUpdate) SetNillableYearEnd(v *int) *VehicleMentionUpdate {
	if v != nil {
		_u.SetYearEnd(*v)
	}
	return _u
}

// AddYearEnd adds value to the "year_end" field.
func (_u *VehicleMentionUpdate) AddYearEnd(v int) *VehicleMentionUpdate {
	_u.mutation.AddYearEnd(v)
	return _u
}

// ClearYearEnd clears the value of the "year_end" field.
func (_u *VehicleMentionUpdate) ClearYearEnd() *VehicleMentionUpdate {
	_u.mutation.ClearYearEnd()
	return _u
}

// SetEngine sets the "engine" field.
func (_u *VehicleMentionUpdate) SetEngine(v string) *VehicleMentionUpdate {
	_u.mutation.SetEngine(v)
	return _u
}

// SetNillableEngine sets the "engine" field if the given value is not nil.
func (_u *VehicleMentionUpdate) SetNillableEngine(v *string) *VehicleMentionUpdate {
	if v != nil {
		_u.SetEngine(*v)
	}
	return _u
}

// ClearEngine clears the value of the "engine" field.
func (_u *VehicleMentionUpdate) ClearEngine() *VehicleMentionUpdate {
	_u.mutation.ClearEngine()
	return _u
}

// SetTransmission sets the "transmission" field.
func (_u *VehicleMentionUpdate) SetTransmission(v string) *VehicleMentionUpdate {
	_u.mutation.SetTransmission(v)
	return _u
}

// SetNillableTransmission sets the "transmission" field if the given value is not nil.
func (_u *VehicleMentionUpdate) SetNillableTransmission(v *string) *VehicleMentionUpdate {
	if v != nil {
		_u.SetTransmission(*v)
	}
	return _u
}

// ClearTransmission clears the value of the "transmission" field.
func (_u *VehicleMentionUpdate) ClearTransmission() *VehicleMentionUpdate {
	_u.mutation.ClearTransmission()
	return _u
}

// SetRelatedDtcCodes sets the "related_dtc_codes" field.
func (_u *VehicleMentionUpdate) SetRelatedDtcCodes(v []string) *VehicleMentionUpdate {
	_u.mutation.SetRelatedDtcCodes(v)
	return _u
}

// AppendRelatedDtcCodes appends value to the "related_dtc_codes" field.
func (_u *VehicleMentionUpdate) AppendRelatedDtcCodes(v []string) *VehicleMentionUpdate {
	_u.mutation.AppendRelatedDtcCodes(v)
	return _u
}

// ClearRelatedDtcCodes clears the value of the "related_dtc_codes" field.
func (_u *VehicleMentionUpdate) ClearRelatedDtcCodes() *VehicleMentionUpdate {
	_u.mutation.ClearRelatedDtcCodes()
	return _u
}

// SetLinked sets the "linked" field.
func (_u *VehicleMentionUpdate) SetLinked(v bool) *VehicleMentionUpdate {
	_u.mutation.SetLinked(v)
	return _u
}

// SetNillableLinked sets the "linked" field if the given value is not nil.
func (_u *VehicleMentionUpdate) SetNillableLinked(v *bool) *VehicleMentionUpdate {
	if v != nil {
		_u.SetLinked(*v)
	}
	return _u
}

// SetSourceChunkID sets the "source_chunk_id" field.
func (_u *VehicleMentionUpdate) SetSourceChunkID(v string) *VehicleMentionUpdate {
	_u.mutation.SetSourceChunkID(v)
	return _u
}

// SetNillableSourceChunkID sets the "source_chunk_id" field if the given value is not nil.
func (_u *VehicleMentionUpdate) SetNillableSourceChunkID(v *string) *VehicleMentionUpdate {
	if v != nil {
		_u.SetSourceChunkID(*v)
	}
	return _u
}

// SetTrust sets the "trust" field.
func (_u *VehicleMentionUpdate) SetTrust(v float64) *VehicleMentionUpdate {
	_u.mutation.ResetTrust()
	_u.mutation.SetTrust(v)
	return _u
}

// SetNillableTrust sets the "trust" field if the given value is not nil.
func (_u *VehicleMentionUpdate) SetNillableTrust(v *float64) *VehicleMentionUpdate {
	if v != nil {
		_u.SetTrust(*v)
	}
	return _u
}

// AddTrust adds value to the "trust" field.
func (_u *VehicleMentionUpdate) AddTrust(v float64) *VehicleMentionUpdate {
	_u.mutation.AddTrust(v)
	return _u
}

// SetRelevance sets the "relevance" field.
func (_u *VehicleMentionUpdate) SetRelevance(v float64) *VehicleMentionUpdate {
	_u.mutation.ResetRelevance()
	_u.mutation.SetRelevance(v)
	return _u
}

// SetNillableRelevance sets the "relevance" field if the given value is not nil.
func (_u *VehicleMentionUpdate) SetNillableRelevance(v *float64) *VehicleMentionUpdate {
	if v != nil {
		_u.SetRelevance(*v)
	}
	return _u
}

// AddRelevance adds value to the "relevance" field.
func (_u *VehicleMentionUpdate) AddRelevance(v float64) *VehicleMentionUpdate {
	_u.mutation.AddRelevance(v)
	return _u
}

// Mutation returns the VehicleMentionMutation object of the builder.
func (_u *VehicleMentionUpdate) Mutation() *VehicleMentionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VehicleMentionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VehicleMentionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VehicleMentionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VehicleMentionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *VehicleMentionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(vehiclemention.Table, vehiclemention.Columns, sqlgraph.NewFieldSpec(vehiclemention.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocumentID(); ok {
		_spec.SetField(vehiclemention.FieldDocumentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Make(); ok {
		_spec.SetField(vehiclemention.FieldMake, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(vehiclemention.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(vehiclemention.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.YearStart(); ok {
		_spec.SetField(vehiclemention.FieldYearStart, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYearStart(); ok {
		_spec.AddField(vehiclemention.FieldYearStart, field.TypeInt, value)
	}
	if _u.mutation.YearStartCleared() {
		_spec.ClearField(vehiclemention.FieldYearStart, field.TypeInt)
	}
	if value, ok := _u.mutation.YearEnd(); ok {
		_spec.SetField(vehiclemention.FieldYearEnd, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYearEnd(); ok {
		_spec.AddField(vehiclemention.FieldYearEnd, field.TypeInt, value)
	}
	if _u.mutation.YearEndCleared() {
		_spec.ClearField(vehiclemention.FieldYearEnd, field.TypeInt)
	}
	if value, ok := _u.mutation.Engine(); ok {
		_spec.SetField(vehiclemention.FieldEngine, field.TypeString, value)
	}
	if _u.mutation.EngineCleared() {
		_spec.ClearField(vehiclemention.FieldEngine, field.TypeString)
	}
	if value, ok := _u.mutation.Transmission(); ok {
		_spec.SetField(vehiclemention.FieldTransmission, field.TypeString, value)
	}
	if _u.mutation.TransmissionCleared() {
		_spec.ClearField(vehiclemention.FieldTransmission, field.TypeString)
	}
	if value, ok := _u.mutation.RelatedDtcCodes(); ok {
		_spec.SetField(vehiclemention.FieldRelatedDtcCodes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRelatedDtcCodes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, vehiclemention.FieldRelatedDtcCodes, value)
		})
	}
	if _u.mutation.RelatedDtcCodesCleared() {
		_spec.ClearField(vehiclemention.FieldRelatedDtcCodes, field.TypeJSON)
	}
	if value, ok := _u.mutation.Linked(); ok {
		_spec.SetField(vehiclemention.FieldLinked, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SourceChunkID(); ok {
		_spec.SetField(vehiclemention.FieldSourceChunkID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Trust(); ok {
		_spec.SetField(vehiclemention.FieldTrust, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTrust(); ok {
		_spec.AddField(vehiclemention.FieldTrust, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Relevance(); ok {
		_spec.SetField(vehiclemention.FieldRelevance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRelevance(); ok {
		_spec.AddField(vehiclemention.FieldRelevance, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vehiclemention.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VehicleMentionUpdateOne is the builder for updating a single VehicleMention entity.
type VehicleMentionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VehicleMentionMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *VehicleMentionUpdateOne) SetDocumentID(v string) *VehicleMentionUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *VehicleMentionUpdateOne) SetNillableDocumentID(v *string) *VehicleMentionUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetMake sets the "make" field.
func (_u *VehicleMentionUpdateOne) SetMake(v string) *VehicleMentionUpdateOne {
	_u.mutation.SetMake(v)
	return _u
}

// SetNillableMake sets the "make" field if the given value is not nil.
func (_u *VehicleMentionUpdateOne) SetNillableMake(v *string) *VehicleMentionUpdateOne {
	if v != nil {
		_u.SetMake(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *VehicleMentionUpdateOne) SetModel(v string) *VehicleMentionUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *VehicleMentionUpdateOne) SetNillableModel(v *string) *VehicleMentionUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// ClearModel clears the value of the "model" field.
func (_u *VehicleMentionUpdateOne) ClearModel() *VehicleMentionUpdateOne {
	_u.mutation.ClearModel()
	return _u
}

// SetYearStart sets the "year_start" field.
func (_u *VehicleMentionUpdateOne) SetYearStart(v int) *VehicleMentionUpdateOne {
	_u.mutation.ResetYearStart()
	_u.mutation.SetYearStart(v)
	return _u
}

// SetNillableYearStart sets the "year_start" field if the given value is not nil.
func (_u *VehicleMentionUpdateOne) SetNillableYearStart(v *int) *VehicleMentionUpdateOne {
	if v != nil {
		_u.SetYearStart(*v)
	}
	return _u
}

// AddYearStart adds value to the "year_start" field.
func (_u *VehicleMentionUpdateOne) AddYearStart(v int) *VehicleMentionUpdateOne {
	_u.mutation.AddYearStart(v)
	return _u
}

// ClearYearStart clears the value of the "year_start" field.
func (_u *VehicleMentionUpdateOne) ClearYearStart() *VehicleMentionUpdateOne {
	_u.mutation.ClearYearStart()
	return _u
}

// SetYearEnd sets the "year_end" field.
func (_u *VehicleMentionUpdateOne) SetYearEnd(v int) *VehicleMentionUpdateOne {
	_u.mutation.ResetYearEnd()
	_u.mutation.SetYearEnd(v)
	return _u
}

// SetNillableYearEnd sets the "year_end" field if the given value is not nil.
func (_u *VehicleMentionUpdateOne) SetNillableYearEnd(v *int) *VehicleMentionUpdateOne {
	if v != nil {
		_u.SetYearEnd(*v)
	}
	return _u
}

// AddYearEnd adds value to the "year_end" field.
func (_u *VehicleMentionUpdateOne) AddYearEnd(v int) *VehicleMentionUpdateOne {
	_u.mutation.AddYearEnd(v)
	return _u
}

// ClearYearEnd clears the value of the "year_end" field.
func (_u *VehicleMentionUpdateOne) ClearYearEnd() *VehicleMentionUpdateOne {
	_u.mutation.ClearYearEnd()
	return _u
}

// SetEngine sets the "engine" field.
func (_u *VehicleMentionUpdateOne) SetEngine(v string) *VehicleMentionUpdateOne {
	_u.mutation.SetEngine(v)
	return _u
}

// SetNillableEngine sets the "engine" field if the given value is not nil.
func (_u *VehicleMentionUpdateOne) SetNillableEngine(v *string) *VehicleMentionUpdateOne {
	if v != nil {
		_u.SetEngine(*v)
	}
	return _u
}

// ClearEngine clears the value of the "engine" field.
func (_u *VehicleMentionUpdateOne) ClearEngine() *VehicleMentionUpdateOne {
	_u.mutation.ClearEngine()
	return _u
}

// SetTransmission sets the "transmission" field.
func (_u *VehicleMentionUpdateOne) SetTransmission(v string) *VehicleMentionUpdateOne {
	_u.mutation.SetTransmission(v)
	return _u
}

// SetNillableTransmission sets the "transmission" field if the given value is not nil.
func (_u *VehicleMentionUpdateOne) SetNillableTransmission(v *string) *VehicleMentionUpdateOne {
	if v != nil {
		_u.SetTransmission(*v)
	}
	return _u
}

// ClearTransmission clears the value of the "transmission" field.
func (_u *VehicleMentionUpdateOne) ClearTransmission() *VehicleMentionUpdateOne {
	_u.mutation.ClearTransmission()
	return _u
}

// SetRelatedDtcCodes sets the "related_dtc_codes" field.
func (_u *VehicleMentionUpdateOne) SetRelatedDtcCodes(v []string) *VehicleMentionUpdateOne {
	_u.mutation.SetRelatedDtcCodes(v)
	return _u
}

// AppendRelatedDtcCodes appends value to the "related_dtc_codes" field.
func (_u *VehicleMentionUpdateOne) AppendRelatedDtcCodes(v []string) *VehicleMentionUpdateOne {
	_u.mutation.AppendRelatedDtcCodes(v)
	return _u
}

// ClearRelatedDtcCodes clears the value of the "related_dtc_codes" field.
func (_u *VehicleMentionUpdateOne) ClearRelatedDtcCodes() *VehicleMentionUpdateOne {
	_u.mutation.ClearRelatedDtcCodes()
	return _u
}

// SetLinked sets the "linked" field.
func (_u *VehicleMentionUpdateOne) SetLinked(v bool) *VehicleMentionUpdateOne {
	_u.mutation.SetLinked(v)
	return _u
}

// SetNillableLinked sets the "linked" field if the given value is not nil.
func (_u *VehicleMentionUpdateOne) SetNillableLinked(v *bool) *VehicleMentionUpdateOne {
	if v != nil {
		_u.SetLinked(*v)
	}
	return _u
}

// SetSourceChunkID sets the "source_chunk_id" field.
func (_u *VehicleMentionUpdateOne) SetSourceChunkID(v string) *VehicleMentionUpdateOne {
	_u.mutation.SetSourceChunkID(v)
	return _u
}

// SetNillableSourceChunkID sets the "source_chunk_id" field if the given value is not nil.
func (_u *VehicleMentionUpdateOne) SetNillableSourceChunkID(v *string) *VehicleMentionUpdateOne {
	if v != nil {
		_u.SetSourceChunkID(*v)
	}
	return _u
}

// SetTrust sets the "trust" field.
func (_u *VehicleMentionUpdateOne) SetTrust(v float64) *VehicleMentionUpdateOne {
	_u.mutation.ResetTrust()
	_u.mutation.SetTrust(v)
	return _u
}

// SetNillableTrust sets the "trust" field if the given value is not nil.
func (_u *VehicleMentionUpdateOne) SetNillableTrust(v *float64) *VehicleMentionUpdateOne {
	if v != nil {
		_u.SetTrust(*v)
	}
	return _u
}

// AddTrust adds value to the "trust" field.
func (_u *VehicleMentionUpdateOne) AddTrust(v float64) *VehicleMentionUpdateOne {
	_u.mutation.AddTrust(v)
	return _u
}

// SetRelevance sets the "relevance" field.
func (_u *VehicleMentionUpdateOne) SetRelevance(v float64) *VehicleMentionUpdateOne {
	_u.mutation.ResetRelevance()
	_u.mutation.SetRelevance(v)
	return _u
}

// SetNillableRelevance sets the "relevance" field if the given value is not nil.
func (_u *VehicleMentionUpdateOne) SetNillableRelevance(v *float64) *VehicleMentionUpdateOne {
	if v != nil {
		_u.SetRelevance(*v)
	}
	return _u
}

// AddRelevance adds value to the "relevance" field.
func (_u *VehicleMentionUpdateOne) AddRelevance(v float64) *VehicleMentionUpdateOne {
	_u.mutation.AddRelevance(v)
	return _u
}

// Mutation returns the VehicleMentionMutation object of the builder.
func (_u *VehicleMentionUpdateOne) Mutation() *VehicleMentionMutation {
	return _u.mutation
}

// Where appends a list predicates to the VehicleMentionUpdate builder.
func (_u *VehicleMentionUpdateOne) Where(ps ...predicate.VehicleMention) *VehicleMentionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VehicleMentionUpdateOne) Select(field string, fields ...string) *VehicleMentionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated VehicleMention entity.
func (_u *VehicleMentionUpdateOne) Save(ctx context.Context) (*VehicleMention, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VehicleMentionUpdateOne) SaveX(ctx context.Context) *VehicleMention {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VehicleMentionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VehicleMentionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *VehicleMentionUpdateOne) sqlSave(ctx context.Context) (_node *VehicleMention, err error) {
	_spec := sqlgraph.NewUpdateSpec(vehiclemention.Table, vehiclemention.Columns, sqlgraph.NewFieldSpec(vehiclemention.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "VehicleMention.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, vehiclemention.FieldID)
		for _, f := range fields {
			if !vehiclemention.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != vehiclemention.FieldID {
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
		_spec.SetField(vehiclemention.FieldDocumentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Make(); ok {
		_spec.SetField(vehiclemention.FieldMake, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(vehiclemention.FieldModel, field.TypeString, value)
	}
	if _u.mutation.ModelCleared() {
		_spec.ClearField(vehiclemention.FieldModel, field.TypeString)
	}
	if value, ok := _u.mutation.YearStart(); ok {
		_spec.SetField(vehiclemention.FieldYearStart, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYearStart(); ok {
		_spec.AddField(vehiclemention.FieldYearStart, field.TypeInt, value)
	}
	if _u.mutation.YearStartCleared() {
		_spec.ClearField(vehiclemention.FieldYearStart, field.TypeInt)
	}
	if value, ok := _u.mutation.YearEnd(); ok {
		_spec.SetField(vehiclemention.FieldYearEnd, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYearEnd(); ok {
		_spec.AddField(vehiclemention.FieldYearEnd, field.TypeInt, value)
	}
	if _u.mutation.YearEndCleared() {
		_spec.ClearField(vehiclemention.FieldYearEnd, field.TypeInt)
	}
	if value, ok := _u.mutation.Engine(); ok {
		_spec.SetField(vehiclemention.FieldEngine, field.TypeString, value)
	}
	if _u.mutation.EngineCleared() {
		_spec.ClearField(vehiclemention.FieldEngine, field.TypeString)
	}
	if value, ok := _u.mutation.Transmission(); ok {
		_spec.SetField(vehiclemention.FieldTransmission, field.TypeString, value)
	}
	if _u.mutation.TransmissionCleared() {
		_spec.ClearField(vehiclemention.FieldTransmission, field.TypeString)
	}
	if value, ok := _u.mutation.RelatedDtcCodes(); ok {
		_spec.SetField(vehiclemention.FieldRelatedDtcCodes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRelatedDtcCodes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, vehiclemention.FieldRelatedDtcCodes, value)
		})
	}
	if _u.mutation.RelatedDtcCodesCleared() {
		_spec.ClearField(vehiclemention.FieldRelatedDtcCodes, field.TypeJSON)
	}
	if value, ok := _u.mutation.Linked(); ok {
		_spec.SetField(vehiclemention.FieldLinked, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SourceChunkID(); ok {
		_spec.SetField(vehiclemention.FieldSourceChunkID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Trust(); ok {
		_spec.SetField(vehiclemention.FieldTrust, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTrust(); ok {
		_spec.AddField(vehiclemention.FieldTrust, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Relevance(); ok {
		_spec.SetField(vehiclemention.FieldRelevance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRelevance(); ok {
		_spec.AddField(vehiclemention.FieldRelevance, field.TypeFloat64, value)
	}
	_node = &VehicleMention{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vehiclemention.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
