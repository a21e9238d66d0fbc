// Code generated by ent, DO NOT EDIT.

package vehiclemention

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/autodiag/refinery/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldContainsFold(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldEQ(FieldDocumentID, v))
}

// Make applies equality check predicate on the "make" field. It's identical to MakeEQ.
func Make(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldEQ(FieldMake, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldEQ(FieldModel, v))
}

// YearStart applies equality check predicate on the "year_start" field. It's identical to YearStartEQ.
func YearStart(v int) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldEQ(FieldYearStart, v))
}

// YearEnd applies equality check predicate on the "year_end" field. It's identical to YearEndEQ.
func YearEnd(v int) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldEQ(FieldYearEnd, v))
}

// Engine applies equality check predicate on the "engine" field. It's identical to EngineEQ.
func Engine(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldEQ(FieldEngine, v))
}

// Transmission applies equality check predicate on the "transmission" field. It's identical to TransmissionEQ.
func Transmission(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldEQ(FieldTransmission, v))
}

// Linked applies equality check predicate on the "linked" field. It's identical to LinkedEQ.
func Linked(v bool) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldEQ(FieldLinked, v))
}

// SourceChunkID applies equality check predicate on the "source_chunk_id" field. It's identical to SourceChunkIDEQ.
func SourceChunkID(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldEQ(FieldSourceChunkID, v))
}

// Trust applies equality check predicate on the "trust" field. It's identical to TrustEQ.
func Trust(v float64) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldEQ(FieldTrust, v))
}

// Relevance applies equality check predicate on the "relevance" field. It's identical to RelevanceEQ.
func Relevance(v float64) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldEQ(FieldRelevance, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldEQ(FieldCreatedAt, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldNotIn(FieldDocumentID, vs...))
}

// DocumentIDGT applies the GT predicate on the "document_id" field.
func DocumentIDGT(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldGT(FieldDocumentID, v))
}

// DocumentIDGTE applies the GTE predicate on the "document_id" field.
func DocumentIDGTE(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldGTE(FieldDocumentID, v))
}

// DocumentIDLT applies the LT predicate on the "document_id" field.
func DocumentIDLT(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldLT(FieldDocumentID, v))
}

// DocumentIDLTE applies the LTE predicate on the "document_id" field.
func DocumentIDLTE(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldLTE(FieldDocumentID, v))
}

// DocumentIDContains applies the Contains predicate on the "document_id" field.
func DocumentIDContains(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldContains(FieldDocumentID, v))
}

// DocumentIDHasPrefix applies the HasPrefix predicate on the "document_id" field.
func DocumentIDHasPrefix(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldHasPrefix(FieldDocumentID, v))
}

// DocumentIDHasSuffix applies the HasSuffix predicate on the "document_id" field.
func DocumentIDHasSuffix(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldHasSuffix(FieldDocumentID, v))
}

// DocumentIDEqualFold applies the EqualFold predicate on the "document_id" field.
func DocumentIDEqualFold(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldEqualFold(FieldDocumentID, v))
}

// DocumentIDContainsFold applies the ContainsFold predicate on the "document_id" field.
func DocumentIDContainsFold(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldContainsFold(FieldDocumentID, v))
}

// MakeEQ applies the EQ predicate on the "make" field.
func MakeEQ(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldEQ(FieldMake, v))
}

// MakeNEQ applies the NEQ predicate on the "make" field.
func MakeNEQ(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldNEQ(FieldMake, v))
}

// MakeIn applies the In predicate on the "make" field.
func MakeIn(vs ...string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldIn(FieldMake, vs...))
}

// MakeNotIn applies the NotIn predicate on the "make" field.
func MakeNotIn(vs ...string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldNotIn(FieldMake, vs...))
}

// MakeGT applies the GT predicate on the "make" field.
func MakeGT(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldGT(FieldMake, v))
}

// MakeGTE applies the GTE predicate on the "make" field.
func MakeGTE(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldGTE(FieldMake, v))
}

// MakeLT applies the LT predicate on the "make" field.
func MakeLT(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldLT(FieldMake, v))
}

// MakeLTE applies the LTE predicate on the "make" field.
func MakeLTE(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldLTE(FieldMake, v))
}

// MakeContains applies the Contains predicate on the "make" field.
func MakeContains(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldContains(FieldMake, v))
}

// MakeHasPrefix applies the HasPrefix predicate on the "make" field.
func MakeHasPrefix(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldHasPrefix(FieldMake, v))
}

// MakeHasSuffix applies the HasSuffix predicate on the "make" field.
func MakeHasSuffix(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldHasSuffix(FieldMake, v))
}

// MakeEqualFold applies the EqualFold predicate on the "make" field.
func MakeEqualFold(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldEqualFold(FieldMake, v))
}

// MakeContainsFold applies the ContainsFold predicate on the "make" field.
func MakeContainsFold(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldContainsFold(FieldMake, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldHasSuffix(FieldModel, v))
}

// ModelIsNil applies the IsNil predicate on the "model" field.
func ModelIsNil() predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldIsNull(FieldModel))
}

// ModelNotNil applies the NotNil predicate on the "model" field.
func ModelNotNil() predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldNotNull(FieldModel))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldContainsFold(FieldModel, v))
}

// YearStartEQ applies the EQ predicate on the "year_start" field.
func YearStartEQ(v int) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldEQ(FieldYearStart, v))
}

// YearStartNEQ applies the NEQ predicate on the "year_start" field.
func YearStartNEQ(v int) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldNEQ(FieldYearStart, v))
}

// YearStartIn applies the In predicate on the "year_start" field.
func YearStartIn(vs ...int) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldIn(FieldYearStart, vs...))
}

// YearStartNotIn applies the NotIn predicate on the "year_start" field.
func YearStartNotIn(vs ...int) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldNotIn(FieldYearStart, vs...))
}

// YearStartGT applies the GT predicate on the "year_start" field.
func YearStartGT(v int) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldGT(FieldYearStart, v))
}

// YearStartGTE applies the GTE predicate on the "year_start" field.
func YearStartGTE(v int) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldGTE(FieldYearStart, v))
}

// YearStartLT applies the LT predicate on the "year_start" field.
func YearStartLT(v int) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldLT(FieldYearStart, v))
}

// YearStartLTE applies the LTE predicate on the "year_start" field.
func YearStartLTE(v int) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldLTE(FieldYearStart, v))
}

// YearStartIsNil applies the IsNil predicate on the "year_start" field.
func YearStartIsNil() predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldIsNull(FieldYearStart))
}

// YearStartNotNil applies the NotNil predicate on the "year_start" field.
func YearStartNotNil() predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldNotNull(FieldYearStart))
}

// YearEndEQ applies the EQ predicate on the "year_end" field.
func YearEndEQ(v int) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldEQ(FieldYearEnd, v))
}

// YearEndNEQ applies the NEQ predicate on the "year_end" field.
func YearEndNEQ(v int) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldNEQ(FieldYearEnd, v))
}

// YearEndIn applies the In predicate on the "year_end" field.
func YearEndIn(vs ...int) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldIn(FieldYearEnd, vs...))
}

// YearEndNotIn applies the NotIn predicate on the "year_end" field.
func YearEndNotIn(vs ...int) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldNotIn(FieldYearEnd, vs...))
}

// YearEndGT applies the GT predicate on the "year_end" field.
func YearEndGT(v int) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldGT(FieldYearEnd, v))
}

// YearEndGTE applies the GTE predicate on the "year_end" field.
func YearEndGTE(v int) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldGTE(FieldYearEnd, v))
}

// YearEndLT applies the LT predicate on the "year_end" field.
func YearEndLT(v int) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldLT(FieldYearEnd, v))
}

// YearEndLTE applies the LTE predicate on the "year_end" field.
func YearEndLTE(v int) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldLTE(FieldYearEnd, v))
}

// YearEndIsNil applies the IsNil predicate on the "year_end" field.
func YearEndIsNil() predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldIsNull(FieldYearEnd))
}

// YearEndNotNil applies the NotNil predicate on the "year_end" field.
func YearEndNotNil() predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldNotNull(FieldYearEnd))
}

// EngineEQ applies the EQ predicate on the "engine" field.
func EngineEQ(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldEQ(FieldEngine, v))
}

// EngineNEQ applies the NEQ predicate on the "engine" field.
func EngineNEQ(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldNEQ(FieldEngine, v))
}

// EngineIn applies the In predicate on the "engine" field.
func EngineIn(vs ...string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldIn(FieldEngine, vs...))
}

// EngineNotIn applies the NotIn predicate on the "engine" field.
func EngineNotIn(vs ...string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldNotIn(FieldEngine, vs...))
}

// EngineGT applies the GT predicate on the "engine" field.
func EngineGT(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldGT(FieldEngine, v))
}

// EngineGTE applies the GTE predicate on the "engine" field.
func EngineGTE(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldGTE(FieldEngine, v))
}

// EngineLT applies the LT predicate on the "engine" field.
func EngineLT(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldLT(FieldEngine, v))
}

// EngineLTE applies the LTE predicate on the "engine" field.
func EngineLTE(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldLTE(FieldEngine, v))
}

// EngineContains applies the Contains predicate on the "engine" field.
func EngineContains(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldContains(FieldEngine, v))
}

// EngineHasPrefix applies the HasPrefix predicate on the "engine" field.
func EngineHasPrefix(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldHasPrefix(FieldEngine, v))
}

// EngineHasSuffix applies the HasSuffix predicate on the "engine" field.
func EngineHasSuffix(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldHasSuffix(FieldEngine, v))
}

// EngineIsNil applies the IsNil predicate on the "engine" field.
func EngineIsNil() predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldIsNull(FieldEngine))
}

// EngineNotNil applies the NotNil predicate on the "engine" field.
func EngineNotNil() predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldNotNull(FieldEngine))
}

// EngineEqualFold applies the EqualFold predicate on the "engine" field.
func EngineEqualFold(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldEqualFold(FieldEngine, v))
}

// EngineContainsFold applies the ContainsFold predicate on the "engine" field.
func EngineContainsFold(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldContainsFold(FieldEngine, v))
}

// TransmissionEQ applies the EQ predicate on the "transmission" field.
func TransmissionEQ(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldEQ(FieldTransmission, v))
}

// TransmissionNEQ applies the NEQ predicate on the "transmission" field.
func TransmissionNEQ(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldNEQ(FieldTransmission, v))
}

// TransmissionIn applies the In predicate on the "transmission" field.
func TransmissionIn(vs ...string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldIn(FieldTransmission, vs...))
}

// TransmissionNotIn applies the NotIn predicate on the "transmission" field.
func TransmissionNotIn(vs ...string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldNotIn(FieldTransmission, vs...))
}

// TransmissionGT applies the GT predicate on the "transmission" field.
func TransmissionGT(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldGT(FieldTransmission, v))
}

// TransmissionGTE applies the GTE predicate on the "transmission" field.
func TransmissionGTE(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldGTE(FieldTransmission, v))
}

// TransmissionLT applies the LT predicate on the "transmission" field.
func TransmissionLT(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldLT(FieldTransmission, v))
}

// TransmissionLTE applies the LTE predicate on the "transmission" field.
func TransmissionLTE(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldLTE(FieldTransmission, v))
}

// TransmissionContains applies the Contains predicate on the "transmission" field.
func TransmissionContains(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldContains(FieldTransmission, v))
}

// TransmissionHasPrefix applies the HasPrefix predicate on the "transmission" field.
func TransmissionHasPrefix(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldHasPrefix(FieldTransmission, v))
}

// TransmissionHasSuffix applies the HasSuffix predicate on the "transmission" field.
func TransmissionHasSuffix(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldHasSuffix(FieldTransmission, v))
}

// TransmissionIsNil applies the IsNil predicate on the "transmission" field.
func TransmissionIsNil() predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldIsNull(FieldTransmission))
}

// TransmissionNotNil applies the NotNil predicate on the "transmission" field.
func TransmissionNotNil() predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldNotNull(FieldTransmission))
}

// TransmissionEqualFold applies the EqualFold predicate on the "transmission" field.
func TransmissionEqualFold(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldEqualFold(FieldTransmission, v))
}

// TransmissionContainsFold applies the ContainsFold predicate on the "transmission" field.
func TransmissionContainsFold(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldContainsFold(FieldTransmission, v))
}

// RelatedDtcCodesIsNil applies the IsNil predicate on the "related_dtc_codes" field.
func RelatedDtcCodesIsNil() predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldIsNull(FieldRelatedDtcCodes))
}

// RelatedDtcCodesNotNil applies the NotNil predicate on the "related_dtc_codes" field.
func RelatedDtcCodesNotNil() predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldNotNull(FieldRelatedDtcCodes))
}

// LinkedEQ applies the EQ predicate on the "linked" field.
func LinkedEQ(v bool) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldEQ(FieldLinked, v))
}

// LinkedNEQ applies the NEQ predicate on the "linked" field.
func LinkedNEQ(v bool) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldNEQ(FieldLinked, v))
}

// SourceChunkIDEQ applies the EQ predicate on the "source_chunk_id" field.
func SourceChunkIDEQ(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldEQ(FieldSourceChunkID, v))
}

// SourceChunkIDNEQ applies the NEQ predicate on the "source_chunk_id" field.
func SourceChunkIDNEQ(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldNEQ(FieldSourceChunkID, v))
}

// SourceChunkIDIn applies the In predicate on the "source_chunk_id" field.
func SourceChunkIDIn(vs ...string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldIn(FieldSourceChunkID, vs...))
}

// SourceChunkIDNotIn applies the NotIn predicate on the "source_chunk_id" field.
func SourceChunkIDNotIn(vs ...string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldNotIn(FieldSourceChunkID, vs...))
}

// SourceChunkIDGT applies the GT predicate on the "source_chunk_id" field.
func SourceChunkIDGT(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldGT(FieldSourceChunkID, v))
}

// SourceChunkIDGTE applies the GTE predicate on the "source_chunk_id" field.
func SourceChunkIDGTE(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldGTE(FieldSourceChunkID, v))
}

// SourceChunkIDLT applies the LT predicate on the "source_chunk_id" field.
func SourceChunkIDLT(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldLT(FieldSourceChunkID, v))
}

// SourceChunkIDLTE applies the LTE predicate on the "source_chunk_id" field.
func SourceChunkIDLTE(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldLTE(FieldSourceChunkID, v))
}

// SourceChunkIDContains applies the Contains predicate on the "source_chunk_id" field.
func SourceChunkIDContains(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldContains(FieldSourceChunkID, v))
}

// SourceChunkIDHasPrefix applies the HasPrefix predicate on the "source_chunk_id" field.
func SourceChunkIDHasPrefix(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldHasPrefix(FieldSourceChunkID, v))
}

// SourceChunkIDHasSuffix applies the HasSuffix predicate on the "source_chunk_id" field.
func SourceChunkIDHasSuffix(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldHasSuffix(FieldSourceChunkID, v))
}

// SourceChunkIDEqualFold applies the EqualFold predicate on the "source_chunk_id" field.
func SourceChunkIDEqualFold(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldEqualFold(FieldSourceChunkID, v))
}

// SourceChunkIDContainsFold applies the ContainsFold predicate on the "source_chunk_id" field.
func SourceChunkIDContainsFold(v string) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldContainsFold(FieldSourceChunkID, v))
}

// TrustEQ applies the EQ predicate on the "trust" field.
func TrustEQ(v float64) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldEQ(FieldTrust, v))
}

// TrustNEQ applies the NEQ predicate on the "trust" field.
func TrustNEQ(v float64) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldNEQ(FieldTrust, v))
}

// TrustIn applies the In predicate on the "trust" field.
func TrustIn(vs ...float64) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldIn(FieldTrust, vs...))
}

// TrustNotIn applies the NotIn predicate on the "trust" field.
func TrustNotIn(vs ...float64) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldNotIn(FieldTrust, vs...))
}

// TrustGT applies the GT predicate on the "trust" field.
func TrustGT(v float64) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldGT(FieldTrust, v))
}

// TrustGTE applies the GTE predicate on the "trust" field.
func TrustGTE(v float64) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldGTE(FieldTrust, v))
}

// TrustLT applies the LT predicate on the "trust" field.
func TrustLT(v float64) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldLT(FieldTrust, v))
}

// TrustLTE applies the LTE predicate on the "trust" field.
func TrustLTE(v float64) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldLTE(FieldTrust, v))
}

// RelevanceEQ applies the EQ predicate on the "relevance" field.
func RelevanceEQ(v float64) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldEQ(FieldRelevance, v))
}

// RelevanceNEQ applies the NEQ predicate on the "relevance" field.
func RelevanceNEQ(v float64) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldNEQ(FieldRelevance, v))
}

// RelevanceIn applies the In predicate on the "relevance" field.
func RelevanceIn(vs ...float64) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldIn(FieldRelevance, vs...))
}

// RelevanceNotIn applies the NotIn predicate on the "relevance" field.
func RelevanceNotIn(vs ...float64) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldNotIn(FieldRelevance, vs...))
}

// RelevanceGT applies the GT predicate on the "relevance" field.
func RelevanceGT(v float64) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldGT(FieldRelevance, v))
}

// RelevanceGTE applies the GTE predicate on the "relevance" field.
func RelevanceGTE(v float64) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldGTE(FieldRelevance, v))
}

// RelevanceLT applies the LT predicate on the "relevance" field.
func RelevanceLT(v float64) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldLT(FieldRelevance, v))
}

// RelevanceLTE applies the LTE predicate on the "relevance" field.
func RelevanceLTE(v float64) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldLTE(FieldRelevance, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.VehicleMention {
	return predicate.VehicleMention(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.VehicleMention) predicate.VehicleMention {
	return predicate.VehicleMention(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.VehicleMention) predicate.VehicleMention {
	return predicate.VehicleMention(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.VehicleMention) predicate.VehicleMention {
	return predicate.VehicleMention(sql.NotPredicates(p))
}
