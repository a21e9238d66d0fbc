// Code generated by ent, DO NOT EDIT.

package vehicle

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/autodiag/refinery/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContainsFold(FieldID, id))
}

// Make applies equality check predicate on the "make" field. It's identical to MakeEQ.
func Make(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldMake, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldModel, v))
}

// YearStart applies equality check predicate on the "year_start" field. It's identical to YearStartEQ.
func YearStart(v int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldYearStart, v))
}

// YearEnd applies equality check predicate on the "year_end" field. It's identical to YearEndEQ.
func YearEnd(v int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldYearEnd, v))
}

// Engine applies equality check predicate on the "engine" field. It's identical to EngineEQ.
func Engine(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldEngine, v))
}

// Transmission applies equality check predicate on the "transmission" field. It's identical to TransmissionEQ.
func Transmission(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldTransmission, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldUpdatedAt, v))
}

// MakeEQ applies the EQ predicate on the "make" field.
func MakeEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldMake, v))
}

// MakeNEQ applies the NEQ predicate on the "make" field.
func MakeNEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNEQ(FieldMake, v))
}

// MakeIn applies the In predicate on the "make" field.
func MakeIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIn(FieldMake, vs...))
}

// MakeNotIn applies the NotIn predicate on the "make" field.
func MakeNotIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotIn(FieldMake, vs...))
}

// MakeGT applies the GT predicate on the "make" field.
func MakeGT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGT(FieldMake, v))
}

// MakeGTE applies the GTE predicate on the "make" field.
func MakeGTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGTE(FieldMake, v))
}

// MakeLT applies the LT predicate on the "make" field.
func MakeLT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLT(FieldMake, v))
}

// MakeLTE applies the LTE predicate on the "make" field.
func MakeLTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLTE(FieldMake, v))
}

// MakeContains applies the Contains predicate on the "make" field.
func MakeContains(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContains(FieldMake, v))
}

// MakeHasPrefix applies the HasPrefix predicate on the "make" field.
func MakeHasPrefix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasPrefix(FieldMake, v))
}

// MakeHasSuffix applies the HasSuffix predicate on the "make" field.
func MakeHasSuffix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasSuffix(FieldMake, v))
}

// MakeEqualFold applies the EqualFold predicate on the "make" field.
func MakeEqualFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEqualFold(FieldMake, v))
}

// MakeContainsFold applies the ContainsFold predicate on the "make" field.
func MakeContainsFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContainsFold(FieldMake, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContainsFold(FieldModel, v))
}

// YearStartEQ applies the EQ predicate on the "year_start" field.
func YearStartEQ(v int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldYearStart, v))
}

// YearStartNEQ applies the NEQ predicate on the "year_start" field.
func YearStartNEQ(v int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNEQ(FieldYearStart, v))
}

// YearStartIn applies the In predicate on the "year_start" field.
func YearStartIn(vs ...int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIn(FieldYearStart, vs...))
}

// YearStartNotIn applies the NotIn predicate on the "year_start" field.
func YearStartNotIn(vs ...int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotIn(FieldYearStart, vs...))
}

// YearStartGT applies the GT predicate on the "year_start" field.
func YearStartGT(v int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGT(FieldYearStart, v))
}

// YearStartGTE applies the GTE predicate on the "year_start" field.
func YearStartGTE(v int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGTE(FieldYearStart, v))
}

// YearStartLT applies the LT predicate on the "year_start" field.
func YearStartLT(v int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLT(FieldYearStart, v))
}

// YearStartLTE applies the LTE predicate on the "year_start" field.
func YearStartLTE(v int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLTE(FieldYearStart, v))
}

// YearStartIsNil applies the IsNil predicate on the "year_start" field.
func YearStartIsNil() predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIsNull(FieldYearStart))
}

// YearStartNotNil applies the NotNil predicate on the "year_start" field.
func YearStartNotNil() predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotNull(FieldYearStart))
}

// YearEndEQ applies the EQ predicate on the "year_end" field.
func YearEndEQ(v int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldYearEnd, v))
}

// YearEndNEQ applies the NEQ predicate on the "year_end" field.
func YearEndNEQ(v int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNEQ(FieldYearEnd, v))
}

// YearEndIn applies the In predicate on the "year_end" field.
func YearEndIn(vs ...int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIn(FieldYearEnd, vs...))
}

// YearEndNotIn applies the NotIn predicate on the "year_end" field.
func YearEndNotIn(vs ...int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotIn(FieldYearEnd, vs...))
}

// YearEndGT applies the GT predicate on the "year_end" field.
func YearEndGT(v int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGT(FieldYearEnd, v))
}

// YearEndGTE applies the GTE predicate on the "year_end" field.
func YearEndGTE(v int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGTE(FieldYearEnd, v))
}

// YearEndLT applies the LT predicate on the "year_end" field.
func YearEndLT(v int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLT(FieldYearEnd, v))
}

// YearEndLTE applies the LTE predicate on the "year_end" field.
func YearEndLTE(v int) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLTE(FieldYearEnd, v))
}

// YearEndIsNil applies the IsNil predicate on the "year_end" field.
func YearEndIsNil() predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIsNull(FieldYearEnd))
}

// YearEndNotNil applies the NotNil predicate on the "year_end" field.
func YearEndNotNil() predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotNull(FieldYearEnd))
}

// EngineEQ applies the EQ predicate on the "engine" field.
func EngineEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldEngine, v))
}

// EngineNEQ applies the NEQ predicate on the "engine" field.
func EngineNEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNEQ(FieldEngine, v))
}

// EngineIn applies the In predicate on the "engine" field.
func EngineIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIn(FieldEngine, vs...))
}

// EngineNotIn applies the NotIn predicate on the "engine" field.
func EngineNotIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotIn(FieldEngine, vs...))
}

// EngineGT applies the GT predicate on the "engine" field.
func EngineGT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGT(FieldEngine, v))
}

// EngineGTE applies the GTE predicate on the "engine" field.
func EngineGTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGTE(FieldEngine, v))
}

// EngineLT applies the LT predicate on the "engine" field.
func EngineLT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLT(FieldEngine, v))
}

// EngineLTE applies the LTE predicate on the "engine" field.
func EngineLTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLTE(FieldEngine, v))
}

// EngineContains applies the Contains predicate on the "engine" field.
func EngineContains(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContains(FieldEngine, v))
}

// EngineHasPrefix applies the HasPrefix predicate on the "engine" field.
func EngineHasPrefix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasPrefix(FieldEngine, v))
}

// EngineHasSuffix applies the HasSuffix predicate on the "engine" field.
func EngineHasSuffix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasSuffix(FieldEngine, v))
}

// EngineIsNil applies the IsNil predicate on the "engine" field.
func EngineIsNil() predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIsNull(FieldEngine))
}

// EngineNotNil applies the NotNil predicate on the "engine" field.
func EngineNotNil() predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotNull(FieldEngine))
}

// EngineEqualFold applies the EqualFold predicate on the "engine" field.
func EngineEqualFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEqualFold(FieldEngine, v))
}

// EngineContainsFold applies the ContainsFold predicate on the "engine" field.
func EngineContainsFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContainsFold(FieldEngine, v))
}

// TransmissionEQ applies the EQ predicate on the "transmission" field.
func TransmissionEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldTransmission, v))
}

// TransmissionNEQ applies the NEQ predicate on the "transmission" field.
func TransmissionNEQ(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNEQ(FieldTransmission, v))
}

// TransmissionIn applies the In predicate on the "transmission" field.
func TransmissionIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIn(FieldTransmission, vs...))
}

// TransmissionNotIn applies the NotIn predicate on the "transmission" field.
func TransmissionNotIn(vs ...string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotIn(FieldTransmission, vs...))
}

// TransmissionGT applies the GT predicate on the "transmission" field.
func TransmissionGT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGT(FieldTransmission, v))
}

// TransmissionGTE applies the GTE predicate on the "transmission" field.
func TransmissionGTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGTE(FieldTransmission, v))
}

// TransmissionLT applies the LT predicate on the "transmission" field.
func TransmissionLT(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLT(FieldTransmission, v))
}

// TransmissionLTE applies the LTE predicate on the "transmission" field.
func TransmissionLTE(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLTE(FieldTransmission, v))
}

// TransmissionContains applies the Contains predicate on the "transmission" field.
func TransmissionContains(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContains(FieldTransmission, v))
}

// TransmissionHasPrefix applies the HasPrefix predicate on the "transmission" field.
func TransmissionHasPrefix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasPrefix(FieldTransmission, v))
}

// TransmissionHasSuffix applies the HasSuffix predicate on the "transmission" field.
func TransmissionHasSuffix(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldHasSuffix(FieldTransmission, v))
}

// TransmissionIsNil applies the IsNil predicate on the "transmission" field.
func TransmissionIsNil() predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIsNull(FieldTransmission))
}

// TransmissionNotNil applies the NotNil predicate on the "transmission" field.
func TransmissionNotNil() predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotNull(FieldTransmission))
}

// TransmissionEqualFold applies the EqualFold predicate on the "transmission" field.
func TransmissionEqualFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEqualFold(FieldTransmission, v))
}

// TransmissionContainsFold applies the ContainsFold predicate on the "transmission" field.
func TransmissionContainsFold(v string) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldContainsFold(FieldTransmission, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Vehicle {
	return predicate.Vehicle(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Vehicle) predicate.Vehicle {
	return predicate.Vehicle(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Vehicle) predicate.Vehicle {
	return predicate.Vehicle(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Vehicle) predicate.Vehicle {
	return predicate.Vehicle(sql.NotPredicates(p))
}
