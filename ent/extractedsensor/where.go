// Code generated by ent, DO NOT EDIT.

package extractedsensor

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/autodiag/refinery/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldContainsFold(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldEQ(FieldDocumentID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldEQ(FieldName, v))
}

// SensorType applies equality check predicate on the "sensor_type" field. It's identical to SensorTypeEQ.
func SensorType(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldEQ(FieldSensorType, v))
}

// TypicalRange applies equality check predicate on the "typical_range" field. It's identical to TypicalRangeEQ.
func TypicalRange(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldEQ(FieldTypicalRange, v))
}

// Unit applies equality check predicate on the "unit" field. It's identical to UnitEQ.
func Unit(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldEQ(FieldUnit, v))
}

// SourceChunkID applies equality check predicate on the "source_chunk_id" field. It's identical to SourceChunkIDEQ.
func SourceChunkID(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldEQ(FieldSourceChunkID, v))
}

// Trust applies equality check predicate on the "trust" field. It's identical to TrustEQ.
func Trust(v float64) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldEQ(FieldTrust, v))
}

// Relevance applies equality check predicate on the "relevance" field. It's identical to RelevanceEQ.
func Relevance(v float64) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldEQ(FieldRelevance, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldEQ(FieldCreatedAt, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldNotIn(FieldDocumentID, vs...))
}

// DocumentIDGT applies the GT predicate on the "document_id" field.
func DocumentIDGT(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldGT(FieldDocumentID, v))
}

// DocumentIDGTE applies the GTE predicate on the "document_id" field.
func DocumentIDGTE(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldGTE(FieldDocumentID, v))
}

// DocumentIDLT applies the LT predicate on the "document_id" field.
func DocumentIDLT(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldLT(FieldDocumentID, v))
}

// DocumentIDLTE applies the LTE predicate on the "document_id" field.
func DocumentIDLTE(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldLTE(FieldDocumentID, v))
}

// DocumentIDContains applies the Contains predicate on the "document_id" field.
func DocumentIDContains(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldContains(FieldDocumentID, v))
}

// DocumentIDHasPrefix applies the HasPrefix predicate on the "document_id" field.
func DocumentIDHasPrefix(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldHasPrefix(FieldDocumentID, v))
}

// DocumentIDHasSuffix applies the HasSuffix predicate on the "document_id" field.
func DocumentIDHasSuffix(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldHasSuffix(FieldDocumentID, v))
}

// DocumentIDEqualFold applies the EqualFold predicate on the "document_id" field.
func DocumentIDEqualFold(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldEqualFold(FieldDocumentID, v))
}

// DocumentIDContainsFold applies the ContainsFold predicate on the "document_id" field.
func DocumentIDContainsFold(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldContainsFold(FieldDocumentID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldContainsFold(FieldName, v))
}

// SensorTypeEQ applies the EQ predicate on the "sensor_type" field.
func SensorTypeEQ(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldEQ(FieldSensorType, v))
}

// SensorTypeNEQ applies the NEQ predicate on the "sensor_type" field.
func SensorTypeNEQ(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldNEQ(FieldSensorType, v))
}

// SensorTypeIn applies the In predicate on the "sensor_type" field.
func SensorTypeIn(vs ...string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldIn(FieldSensorType, vs...))
}

// SensorTypeNotIn applies the NotIn predicate on the "sensor_type" field.
func SensorTypeNotIn(vs ...string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldNotIn(FieldSensorType, vs...))
}

// SensorTypeGT applies the GT predicate on the "sensor_type" field.
func SensorTypeGT(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldGT(FieldSensorType, v))
}

// SensorTypeGTE applies the GTE predicate on the "sensor_type" field.
func SensorTypeGTE(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldGTE(FieldSensorType, v))
}

// SensorTypeLT applies the LT predicate on the "sensor_type" field.
func SensorTypeLT(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldLT(FieldSensorType, v))
}

// SensorTypeLTE applies the LTE predicate on the "sensor_type" field.
func SensorTypeLTE(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldLTE(FieldSensorType, v))
}

// SensorTypeContains applies the Contains predicate on the "sensor_type" field.
func SensorTypeContains(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldContains(FieldSensorType, v))
}

// SensorTypeHasPrefix applies the HasPrefix predicate on the "sensor_type" field.
func SensorTypeHasPrefix(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldHasPrefix(FieldSensorType, v))
}

// SensorTypeHasSuffix applies the HasSuffix predicate on the "sensor_type" field.
func SensorTypeHasSuffix(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldHasSuffix(FieldSensorType, v))
}

// SensorTypeIsNil applies the IsNil predicate on the "sensor_type" field.
func SensorTypeIsNil() predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldIsNull(FieldSensorType))
}

// SensorTypeNotNil applies the NotNil predicate on the "sensor_type" field.
func SensorTypeNotNil() predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldNotNull(FieldSensorType))
}

// SensorTypeEqualFold applies the EqualFold predicate on the "sensor_type" field.
func SensorTypeEqualFold(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldEqualFold(FieldSensorType, v))
}

// SensorTypeContainsFold applies the ContainsFold predicate on the "sensor_type" field.
func SensorTypeContainsFold(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldContainsFold(FieldSensorType, v))
}

// TypicalRangeEQ applies the EQ predicate on the "typical_range" field.
func TypicalRangeEQ(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldEQ(FieldTypicalRange, v))
}

// TypicalRangeNEQ applies the NEQ predicate on the "typical_range" field.
func TypicalRangeNEQ(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldNEQ(FieldTypicalRange, v))
}

// TypicalRangeIn applies the In predicate on the "typical_range" field.
func TypicalRangeIn(vs ...string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldIn(FieldTypicalRange, vs...))
}

// TypicalRangeNotIn applies the NotIn predicate on the "typical_range" field.
func TypicalRangeNotIn(vs ...string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldNotIn(FieldTypicalRange, vs...))
}

// TypicalRangeGT applies the GT predicate on the "typical_range" field.
func TypicalRangeGT(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldGT(FieldTypicalRange, v))
}

// TypicalRangeGTE applies the GTE predicate on the "typical_range" field.
func TypicalRangeGTE(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldGTE(FieldTypicalRange, v))
}

// TypicalRangeLT applies the LT predicate on the "typical_range" field.
func TypicalRangeLT(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldLT(FieldTypicalRange, v))
}

// TypicalRangeLTE applies the LTE predicate on the "typical_range" field.
func TypicalRangeLTE(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldLTE(FieldTypicalRange, v))
}

// TypicalRangeContains applies the Contains predicate on the "typical_range" field.
func TypicalRangeContains(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldContains(FieldTypicalRange, v))
}

// TypicalRangeHasPrefix applies the HasPrefix predicate on the "typical_range" field.
func TypicalRangeHasPrefix(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldHasPrefix(FieldTypicalRange, v))
}

// TypicalRangeHasSuffix applies the HasSuffix predicate on the "typical_range" field.
func TypicalRangeHasSuffix(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldHasSuffix(FieldTypicalRange, v))
}

// TypicalRangeIsNil applies the IsNil predicate on the "typical_range" field.
func TypicalRangeIsNil() predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldIsNull(FieldTypicalRange))
}

// TypicalRangeNotNil applies the NotNil predicate on the "typical_range" field.
func TypicalRangeNotNil() predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldNotNull(FieldTypicalRange))
}

// TypicalRangeEqualFold applies the EqualFold predicate on the "typical_range" field.
func TypicalRangeEqualFold(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldEqualFold(FieldTypicalRange, v))
}

// TypicalRangeContainsFold applies the ContainsFold predicate on the "typical_range" field.
func TypicalRangeContainsFold(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldContainsFold(FieldTypicalRange, v))
}

// UnitEQ applies the EQ predicate on the "unit" field.
func UnitEQ(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldEQ(FieldUnit, v))
}

// UnitNEQ applies the NEQ predicate on the "unit" field.
func UnitNEQ(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldNEQ(FieldUnit, v))
}

// UnitIn applies the In predicate on the "unit" field.
func UnitIn(vs ...string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldIn(FieldUnit, vs...))
}

// UnitNotIn applies the NotIn predicate on the "unit" field.
func UnitNotIn(vs ...string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldNotIn(FieldUnit, vs...))
}

// UnitGT applies the GT predicate on the "unit" field.
func UnitGT(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldGT(FieldUnit, v))
}

// UnitGTE applies the GTE predicate on the "unit" field.
func UnitGTE(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldGTE(FieldUnit, v))
}

// UnitLT applies the LT predicate on the "unit" field.
func UnitLT(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldLT(FieldUnit, v))
}

// UnitLTE applies the LTE predicate on the "unit" field.
func UnitLTE(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldLTE(FieldUnit, v))
}

// UnitContains applies the Contains predicate on the "unit" field.
func UnitContains(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldContains(FieldUnit, v))
}

// UnitHasPrefix applies the HasPrefix predicate on the "unit" field.
func UnitHasPrefix(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldHasPrefix(FieldUnit, v))
}

// UnitHasSuffix applies the HasSuffix predicate on the "unit" field.
func UnitHasSuffix(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldHasSuffix(FieldUnit, v))
}

// UnitIsNil applies the IsNil predicate on the "unit" field.
func UnitIsNil() predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldIsNull(FieldUnit))
}

// UnitNotNil applies the NotNil predicate on the "unit" field.
func UnitNotNil() predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldNotNull(FieldUnit))
}

// UnitEqualFold applies the EqualFold predicate on the "unit" field.
func UnitEqualFold(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldEqualFold(FieldUnit, v))
}

// UnitContainsFold applies the ContainsFold predicate on the "unit" field.
func UnitContainsFold(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldContainsFold(FieldUnit, v))
}

// RelatedDtcCodesIsNil applies the IsNil predicate on the "related_dtc_codes" field.
func RelatedDtcCodesIsNil() predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldIsNull(FieldRelatedDtcCodes))
}

// RelatedDtcCodesNotNil applies the NotNil predicate on the "related_dtc_codes" field.
func RelatedDtcCodesNotNil() predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldNotNull(FieldRelatedDtcCodes))
}

// SourceChunkIDEQ applies the EQ predicate on the "source_chunk_id" field.
func SourceChunkIDEQ(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldEQ(FieldSourceChunkID, v))
}

// SourceChunkIDNEQ applies the NEQ predicate on the "source_chunk_id" field.
func SourceChunkIDNEQ(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldNEQ(FieldSourceChunkID, v))
}

// SourceChunkIDIn applies the In predicate on the "source_chunk_id" field.
func SourceChunkIDIn(vs ...string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldIn(FieldSourceChunkID, vs...))
}

// SourceChunkIDNotIn applies the NotIn predicate on the "source_chunk_id" field.
func SourceChunkIDNotIn(vs ...string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldNotIn(FieldSourceChunkID, vs...))
}

// SourceChunkIDGT applies the GT predicate on the "source_chunk_id" field.
func SourceChunkIDGT(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldGT(FieldSourceChunkID, v))
}

// SourceChunkIDGTE applies the GTE predicate on the "source_chunk_id" field.
func SourceChunkIDGTE(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldGTE(FieldSourceChunkID, v))
}

// SourceChunkIDLT applies the LT predicate on the "source_chunk_id" field.
func SourceChunkIDLT(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldLT(FieldSourceChunkID, v))
}

// SourceChunkIDLTE applies the LTE predicate on the "source_chunk_id" field.
func SourceChunkIDLTE(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldLTE(FieldSourceChunkID, v))
}

// SourceChunkIDContains applies the Contains predicate on the "source_chunk_id" field.
func SourceChunkIDContains(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldContains(FieldSourceChunkID, v))
}

// SourceChunkIDHasPrefix applies the HasPrefix predicate on the "source_chunk_id" field.
func SourceChunkIDHasPrefix(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldHasPrefix(FieldSourceChunkID, v))
}

// SourceChunkIDHasSuffix applies the HasSuffix predicate on the "source_chunk_id" field.
func SourceChunkIDHasSuffix(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldHasSuffix(FieldSourceChunkID, v))
}

// SourceChunkIDEqualFold applies the EqualFold predicate on the "source_chunk_id" field.
func SourceChunkIDEqualFold(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldEqualFold(FieldSourceChunkID, v))
}

// SourceChunkIDContainsFold applies the ContainsFold predicate on the "source_chunk_id" field.
func SourceChunkIDContainsFold(v string) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldContainsFold(FieldSourceChunkID, v))
}

// TrustEQ applies the EQ predicate on the "trust" field.
func TrustEQ(v float64) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldEQ(FieldTrust, v))
}

// TrustNEQ applies the NEQ predicate on the "trust" field.
func TrustNEQ(v float64) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldNEQ(FieldTrust, v))
}

// TrustIn applies the In predicate on the "trust" field.
func TrustIn(vs ...float64) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldIn(FieldTrust, vs...))
}

// TrustNotIn applies the NotIn predicate on the "trust" field.
func TrustNotIn(vs ...float64) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldNotIn(FieldTrust, vs...))
}

// TrustGT applies the GT predicate on the "trust" field.
func TrustGT(v float64) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldGT(FieldTrust, v))
}

// TrustGTE applies the GTE predicate on the "trust" field.
func TrustGTE(v float64) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldGTE(FieldTrust, v))
}

// TrustLT applies the LT predicate on the "trust" field.
func TrustLT(v float64) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldLT(FieldTrust, v))
}

// TrustLTE applies the LTE predicate on the "trust" field.
func TrustLTE(v float64) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldLTE(FieldTrust, v))
}

// RelevanceEQ applies the EQ predicate on the "relevance" field.
func RelevanceEQ(v float64) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldEQ(FieldRelevance, v))
}

// RelevanceNEQ applies the NEQ predicate on the "relevance" field.
func RelevanceNEQ(v float64) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldNEQ(FieldRelevance, v))
}

// RelevanceIn applies the In predicate on the "relevance" field.
func RelevanceIn(vs ...float64) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldIn(FieldRelevance, vs...))
}

// RelevanceNotIn applies the NotIn predicate on the "relevance" field.
func RelevanceNotIn(vs ...float64) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldNotIn(FieldRelevance, vs...))
}

// RelevanceGT applies the GT predicate on the "relevance" field.
func RelevanceGT(v float64) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldGT(FieldRelevance, v))
}

// RelevanceGTE applies the GTE predicate on the "relevance" field.
func RelevanceGTE(v float64) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldGTE(FieldRelevance, v))
}

// RelevanceLT applies the LT predicate on the "relevance" field.
func RelevanceLT(v float64) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldLT(FieldRelevance, v))
}

// RelevanceLTE applies the LTE predicate on the "relevance" field.
func RelevanceLTE(v float64) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldLTE(FieldRelevance, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExtractedSensor) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExtractedSensor) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExtractedSensor) predicate.ExtractedSensor {
	return predicate.ExtractedSensor(sql.NotPredicates(p))
}
