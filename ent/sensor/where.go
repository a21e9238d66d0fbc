// Code generated by ent, DO NOT EDIT.

package sensor

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/autodiag/refinery/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Sensor {
	return predicate.Sensor(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Sensor {
	return predicate.Sensor(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Sensor {
	return predicate.Sensor(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Sensor {
	return predicate.Sensor(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Sensor {
	return predicate.Sensor(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Sensor {
	return predicate.Sensor(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Sensor {
	return predicate.Sensor(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Sensor {
	return predicate.Sensor(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Sensor {
	return predicate.Sensor(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Sensor {
	return predicate.Sensor(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Sensor {
	return predicate.Sensor(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldEQ(FieldName, v))
}

// SensorType applies equality check predicate on the "sensor_type" field. It's identical to SensorTypeEQ.
func SensorType(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldEQ(FieldSensorType, v))
}

// TypicalRange applies equality check predicate on the "typical_range" field. It's identical to TypicalRangeEQ.
func TypicalRange(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldEQ(FieldTypicalRange, v))
}

// Unit applies equality check predicate on the "unit" field. It's identical to UnitEQ.
func Unit(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldEQ(FieldUnit, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Sensor {
	return predicate.Sensor(sql.FieldEQ(FieldCreatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Sensor {
	return predicate.Sensor(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Sensor {
	return predicate.Sensor(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldContainsFold(FieldName, v))
}

// SensorTypeEQ applies the EQ predicate on the "sensor_type" field.
func SensorTypeEQ(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldEQ(FieldSensorType, v))
}

// SensorTypeNEQ applies the NEQ predicate on the "sensor_type" field.
func SensorTypeNEQ(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldNEQ(FieldSensorType, v))
}

// SensorTypeIn applies the In predicate on the "sensor_type" field.
func SensorTypeIn(vs ...string) predicate.Sensor {
	return predicate.Sensor(sql.FieldIn(FieldSensorType, vs...))
}

// SensorTypeNotIn applies the NotIn predicate on the "sensor_type" field.
func SensorTypeNotIn(vs ...string) predicate.Sensor {
	return predicate.Sensor(sql.FieldNotIn(FieldSensorType, vs...))
}

// SensorTypeGT applies the GT predicate on the "sensor_type" field.
func SensorTypeGT(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldGT(FieldSensorType, v))
}

// SensorTypeGTE applies the GTE predicate on the "sensor_type" field.
func SensorTypeGTE(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldGTE(FieldSensorType, v))
}

// SensorTypeLT applies the LT predicate on the "sensor_type" field.
func SensorTypeLT(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldLT(FieldSensorType, v))
}

// SensorTypeLTE applies the LTE predicate on the "sensor_type" field.
func SensorTypeLTE(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldLTE(FieldSensorType, v))
}

// SensorTypeContains applies the Contains predicate on the "sensor_type" field.
func SensorTypeContains(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldContains(FieldSensorType, v))
}

// SensorTypeHasPrefix applies the HasPrefix predicate on the "sensor_type" field.
func SensorTypeHasPrefix(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldHasPrefix(FieldSensorType, v))
}

// SensorTypeHasSuffix applies the HasSuffix predicate on the "sensor_type" field.
func SensorTypeHasSuffix(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldHasSuffix(FieldSensorType, v))
}

// SensorTypeIsNil applies the IsNil predicate on the "sensor_type" field.
func SensorTypeIsNil() predicate.Sensor {
	return predicate.Sensor(sql.FieldIsNull(FieldSensorType))
}

// SensorTypeNotNil applies the NotNil predicate on the "sensor_type" field.
func SensorTypeNotNil() predicate.Sensor {
	return predicate.Sensor(sql.FieldNotNull(FieldSensorType))
}

// SensorTypeEqualFold applies the EqualFold predicate on the "sensor_type" field.
func SensorTypeEqualFold(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldEqualFold(FieldSensorType, v))
}

// SensorTypeContainsFold applies the ContainsFold predicate on the "sensor_type" field.
func SensorTypeContainsFold(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldContainsFold(FieldSensorType, v))
}

// TypicalRangeEQ applies the EQ predicate on the "typical_range" field.
func TypicalRangeEQ(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldEQ(FieldTypicalRange, v))
}

// TypicalRangeNEQ applies the NEQ predicate on the "typical_range" field.
func TypicalRangeNEQ(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldNEQ(FieldTypicalRange, v))
}

// TypicalRangeIn applies the In predicate on the "typical_range" field.
func TypicalRangeIn(vs ...string) predicate.Sensor {
	return predicate.Sensor(sql.FieldIn(FieldTypicalRange, vs...))
}

// TypicalRangeNotIn applies the NotIn predicate on the "typical_range" field.
func TypicalRangeNotIn(vs ...string) predicate.Sensor {
	return predicate.Sensor(sql.FieldNotIn(FieldTypicalRange, vs...))
}

// TypicalRangeGT applies the GT predicate on the "typical_range" field.
func TypicalRangeGT(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldGT(FieldTypicalRange, v))
}

// TypicalRangeGTE applies the GTE predicate on the "typical_range" field.
func TypicalRangeGTE(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldGTE(FieldTypicalRange, v))
}

// TypicalRangeLT applies the LT predicate on the "typical_range" field.
func TypicalRangeLT(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldLT(FieldTypicalRange, v))
}

// TypicalRangeLTE applies the LTE predicate on the "typical_range" field.
func TypicalRangeLTE(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldLTE(FieldTypicalRange, v))
}

// TypicalRangeContains applies the Contains predicate on the "typical_range" field.
func TypicalRangeContains(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldContains(FieldTypicalRange, v))
}

// TypicalRangeHasPrefix applies the HasPrefix predicate on the "typical_range" field.
func TypicalRangeHasPrefix(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldHasPrefix(FieldTypicalRange, v))
}

// TypicalRangeHasSuffix applies the HasSuffix predicate on the "typical_range" field.
func TypicalRangeHasSuffix(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldHasSuffix(FieldTypicalRange, v))
}

// TypicalRangeIsNil applies the IsNil predicate on the "typical_range" field.
func TypicalRangeIsNil() predicate.Sensor {
	return predicate.Sensor(sql.FieldIsNull(FieldTypicalRange))
}

// TypicalRangeNotNil applies the NotNil predicate on the "typical_range" field.
func TypicalRangeNotNil() predicate.Sensor {
	return predicate.Sensor(sql.FieldNotNull(FieldTypicalRange))
}

// TypicalRangeEqualFold applies the EqualFold predicate on the "typical_range" field.
func TypicalRangeEqualFold(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldEqualFold(FieldTypicalRange, v))
}

// TypicalRangeContainsFold applies the ContainsFold predicate on the "typical_range" field.
func TypicalRangeContainsFold(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldContainsFold(FieldTypicalRange, v))
}

// UnitEQ applies the EQ predicate on the "unit" field.
func UnitEQ(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldEQ(FieldUnit, v))
}

// UnitNEQ applies the NEQ predicate on the "unit" field.
func UnitNEQ(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldNEQ(FieldUnit, v))
}

// UnitIn applies the In predicate on the "unit" field.
func UnitIn(vs ...string) predicate.Sensor {
	return predicate.Sensor(sql.FieldIn(FieldUnit, vs...))
}

// UnitNotIn applies the NotIn predicate on the "unit" field.
func UnitNotIn(vs ...string) predicate.Sensor {
	return predicate.Sensor(sql.FieldNotIn(FieldUnit, vs...))
}

// UnitGT applies the GT predicate on the "unit" field.
func UnitGT(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldGT(FieldUnit, v))
}

// UnitGTE applies the GTE predicate on the "unit" field.
func UnitGTE(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldGTE(FieldUnit, v))
}

// UnitLT applies the LT predicate on the "unit" field.
func UnitLT(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldLT(FieldUnit, v))
}

// UnitLTE applies the LTE predicate on the "unit" field.
func UnitLTE(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldLTE(FieldUnit, v))
}

// UnitContains applies the Contains predicate on the "unit" field.
func UnitContains(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldContains(FieldUnit, v))
}

// UnitHasPrefix applies the HasPrefix predicate on the "unit" field.
func UnitHasPrefix(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldHasPrefix(FieldUnit, v))
}

// UnitHasSuffix applies the HasSuffix predicate on the "unit" field.
func UnitHasSuffix(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldHasSuffix(FieldUnit, v))
}

// UnitIsNil applies the IsNil predicate on the "unit" field.
func UnitIsNil() predicate.Sensor {
	return predicate.Sensor(sql.FieldIsNull(FieldUnit))
}

// UnitNotNil applies the NotNil predicate on the "unit" field.
func UnitNotNil() predicate.Sensor {
	return predicate.Sensor(sql.FieldNotNull(FieldUnit))
}

// UnitEqualFold applies the EqualFold predicate on the "unit" field.
func UnitEqualFold(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldEqualFold(FieldUnit, v))
}

// UnitContainsFold applies the ContainsFold predicate on the "unit" field.
func UnitContainsFold(v string) predicate.Sensor {
	return predicate.Sensor(sql.FieldContainsFold(FieldUnit, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Sensor {
	return predicate.Sensor(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Sensor {
	return predicate.Sensor(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Sensor {
	return predicate.Sensor(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Sensor {
	return predicate.Sensor(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Sensor {
	return predicate.Sensor(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Sensor {
	return predicate.Sensor(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Sensor {
	return predicate.Sensor(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Sensor {
	return predicate.Sensor(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Sensor) predicate.Sensor {
	return predicate.Sensor(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Sensor) predicate.Sensor {
	return predicate.Sensor(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Sensor) predicate.Sensor {
	return predicate.Sensor(sql.NotPredicates(p))
}
