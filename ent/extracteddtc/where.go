// Code generated by ent, DO NOT EDIT.

package extracteddtc

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/autodiag/refinery/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldContainsFold(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldEQ(FieldDocumentID, v))
}

// Code applies equality check predicate on the "code" field. It's identical to CodeEQ.
func Code(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldEQ(FieldCode, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldEQ(FieldDescription, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldEQ(FieldCategory, v))
}

// Severity applies equality check predicate on the "severity" field. It's identical to SeverityEQ.
func Severity(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldEQ(FieldSeverity, v))
}

// SourceChunkID applies equality check predicate on the "source_chunk_id" field. It's identical to SourceChunkIDEQ.
func SourceChunkID(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldEQ(FieldSourceChunkID, v))
}

// Trust applies equality check predicate on the "trust" field. It's identical to TrustEQ.
func Trust(v float64) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldEQ(FieldTrust, v))
}

// Relevance applies equality check predicate on the "relevance" field. It's identical to RelevanceEQ.
func Relevance(v float64) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldEQ(FieldRelevance, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldEQ(FieldCreatedAt, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldNotIn(FieldDocumentID, vs...))
}

// DocumentIDGT applies the GT predicate on the "document_id" field.
func DocumentIDGT(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldGT(FieldDocumentID, v))
}

// DocumentIDGTE applies the GTE predicate on the "document_id" field.
func DocumentIDGTE(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldGTE(FieldDocumentID, v))
}

// DocumentIDLT applies the LT predicate on the "document_id" field.
func DocumentIDLT(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldLT(FieldDocumentID, v))
}

// DocumentIDLTE applies the LTE predicate on the "document_id" field.
func DocumentIDLTE(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldLTE(FieldDocumentID, v))
}

// DocumentIDContains applies the Contains predicate on the "document_id" field.
func DocumentIDContains(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldContains(FieldDocumentID, v))
}

// DocumentIDHasPrefix applies the HasPrefix predicate on the "document_id" field.
func DocumentIDHasPrefix(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldHasPrefix(FieldDocumentID, v))
}

// DocumentIDHasSuffix applies the HasSuffix predicate on the "document_id" field.
func DocumentIDHasSuffix(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldHasSuffix(FieldDocumentID, v))
}

// DocumentIDEqualFold applies the EqualFold predicate on the "document_id" field.
func DocumentIDEqualFold(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldEqualFold(FieldDocumentID, v))
}

// DocumentIDContainsFold applies the ContainsFold predicate on the "document_id" field.
func DocumentIDContainsFold(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldContainsFold(FieldDocumentID, v))
}

// CodeEQ applies the EQ predicate on the "code" field.
func CodeEQ(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldEQ(FieldCode, v))
}

// CodeNEQ applies the NEQ predicate on the "code" field.
func CodeNEQ(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldNEQ(FieldCode, v))
}

// CodeIn applies the In predicate on the "code" field.
func CodeIn(vs ...string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldIn(FieldCode, vs...))
}

// CodeNotIn applies the NotIn predicate on the "code" field.
func CodeNotIn(vs ...string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldNotIn(FieldCode, vs...))
}

// CodeGT applies the GT predicate on the "code" field.
func CodeGT(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldGT(FieldCode, v))
}

// CodeGTE applies the GTE predicate on the "code" field.
func CodeGTE(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldGTE(FieldCode, v))
}

// CodeLT applies the LT predicate on the "code" field.
func CodeLT(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldLT(FieldCode, v))
}

// CodeLTE applies the LTE predicate on the "code" field.
func CodeLTE(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldLTE(FieldCode, v))
}

// CodeContains applies the Contains predicate on the "code" field.
func CodeContains(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldContains(FieldCode, v))
}

// CodeHasPrefix applies the HasPrefix predicate on the "code" field.
func CodeHasPrefix(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldHasPrefix(FieldCode, v))
}

// CodeHasSuffix applies the HasSuffix predicate on the "code" field.
func CodeHasSuffix(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldHasSuffix(FieldCode, v))
}

// CodeEqualFold applies the EqualFold predicate on the "code" field.
func CodeEqualFold(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldEqualFold(FieldCode, v))
}

// CodeContainsFold applies the ContainsFold predicate on the "code" field.
func CodeContainsFold(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldContainsFold(FieldCode, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldContainsFold(FieldDescription, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryIsNil applies the IsNil predicate on the "category" field.
func CategoryIsNil() predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldIsNull(FieldCategory))
}

// CategoryNotNil applies the NotNil predicate on the "category" field.
func CategoryNotNil() predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldNotNull(FieldCategory))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldContainsFold(FieldCategory, v))
}

// SeverityEQ applies the EQ predicate on the "severity" field.
func SeverityEQ(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldEQ(FieldSeverity, v))
}

// SeverityNEQ applies the NEQ predicate on the "severity" field.
func SeverityNEQ(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldNEQ(FieldSeverity, v))
}

// SeverityIn applies the In predicate on the "severity" field.
func SeverityIn(vs ...string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldIn(FieldSeverity, vs...))
}

// SeverityNotIn applies the NotIn predicate on the "severity" field.
func SeverityNotIn(vs ...string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldNotIn(FieldSeverity, vs...))
}

// SeverityGT applies the GT predicate on the "severity" field.
func SeverityGT(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldGT(FieldSeverity, v))
}

// SeverityGTE applies the GTE predicate on the "severity" field.
func SeverityGTE(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldGTE(FieldSeverity, v))
}

// SeverityLT applies the LT predicate on the "severity" field.
func SeverityLT(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldLT(FieldSeverity, v))
}

// SeverityLTE applies the LTE predicate on the "severity" field.
func SeverityLTE(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldLTE(FieldSeverity, v))
}

// SeverityContains applies the Contains predicate on the "severity" field.
func SeverityContains(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldContains(FieldSeverity, v))
}

// SeverityHasPrefix applies the HasPrefix predicate on the "severity" field.
func SeverityHasPrefix(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldHasPrefix(FieldSeverity, v))
}

// SeverityHasSuffix applies the HasSuffix predicate on the "severity" field.
func SeverityHasSuffix(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldHasSuffix(FieldSeverity, v))
}

// SeverityIsNil applies the IsNil predicate on the "severity" field.
func SeverityIsNil() predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldIsNull(FieldSeverity))
}

// SeverityNotNil applies the NotNil predicate on the "severity" field.
func SeverityNotNil() predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldNotNull(FieldSeverity))
}

// SeverityEqualFold applies the EqualFold predicate on the "severity" field.
func SeverityEqualFold(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldEqualFold(FieldSeverity, v))
}

// SeverityContainsFold applies the ContainsFold predicate on the "severity" field.
func SeverityContainsFold(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldContainsFold(FieldSeverity, v))
}

// SourceChunkIDEQ applies the EQ predicate on the "source_chunk_id" field.
func SourceChunkIDEQ(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldEQ(FieldSourceChunkID, v))
}

// SourceChunkIDNEQ applies the NEQ predicate on the "source_chunk_id" field.
func SourceChunkIDNEQ(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldNEQ(FieldSourceChunkID, v))
}

// SourceChunkIDIn applies the In predicate on the "source_chunk_id" field.
func SourceChunkIDIn(vs ...string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldIn(FieldSourceChunkID, vs...))
}

// SourceChunkIDNotIn applies the NotIn predicate on the "source_chunk_id" field.
func SourceChunkIDNotIn(vs ...string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldNotIn(FieldSourceChunkID, vs...))
}

// SourceChunkIDGT applies the GT predicate on the "source_chunk_id" field.
func SourceChunkIDGT(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldGT(FieldSourceChunkID, v))
}

// SourceChunkIDGTE applies the GTE predicate on the "source_chunk_id" field.
func SourceChunkIDGTE(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldGTE(FieldSourceChunkID, v))
}

// SourceChunkIDLT applies the LT predicate on the "source_chunk_id" field.
func SourceChunkIDLT(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldLT(FieldSourceChunkID, v))
}

// SourceChunkIDLTE applies the LTE predicate on the "source_chunk_id" field.
func SourceChunkIDLTE(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldLTE(FieldSourceChunkID, v))
}

// SourceChunkIDContains applies the Contains predicate on the "source_chunk_id" field.
func SourceChunkIDContains(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldContains(FieldSourceChunkID, v))
}

// SourceChunkIDHasPrefix applies the HasPrefix predicate on the "source_chunk_id" field.
func SourceChunkIDHasPrefix(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldHasPrefix(FieldSourceChunkID, v))
}

// SourceChunkIDHasSuffix applies the HasSuffix predicate on the "source_chunk_id" field.
func SourceChunkIDHasSuffix(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldHasSuffix(FieldSourceChunkID, v))
}

// SourceChunkIDEqualFold applies the EqualFold predicate on the "source_chunk_id" field.
func SourceChunkIDEqualFold(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldEqualFold(FieldSourceChunkID, v))
}

// SourceChunkIDContainsFold applies the ContainsFold predicate on the "source_chunk_id" field.
func SourceChunkIDContainsFold(v string) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldContainsFold(FieldSourceChunkID, v))
}

// TrustEQ applies the EQ predicate on the "trust" field.
func TrustEQ(v float64) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldEQ(FieldTrust, v))
}

// TrustNEQ applies the NEQ predicate on the "trust" field.
func TrustNEQ(v float64) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldNEQ(FieldTrust, v))
}

// TrustIn applies the In predicate on the "trust" field.
func TrustIn(vs ...float64) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldIn(FieldTrust, vs...))
}

// TrustNotIn applies the NotIn predicate on the "trust" field.
func TrustNotIn(vs ...float64) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldNotIn(FieldTrust, vs...))
}

// TrustGT applies the GT predicate on the "trust" field.
func TrustGT(v float64) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldGT(FieldTrust, v))
}

// TrustGTE applies the GTE predicate on the "trust" field.
func TrustGTE(v float64) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldGTE(FieldTrust, v))
}

// TrustLT applies the LT predicate on the "trust" field.
func TrustLT(v float64) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldLT(FieldTrust, v))
}

// TrustLTE applies the LTE predicate on the "trust" field.
func TrustLTE(v float64) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldLTE(FieldTrust, v))
}

// RelevanceEQ applies the EQ predicate on the "relevance" field.
func RelevanceEQ(v float64) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldEQ(FieldRelevance, v))
}

// RelevanceNEQ applies the NEQ predicate on the "relevance" field.
func RelevanceNEQ(v float64) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldNEQ(FieldRelevance, v))
}

// RelevanceIn applies the In predicate on the "relevance" field.
func RelevanceIn(vs ...float64) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldIn(FieldRelevance, vs...))
}

// RelevanceNotIn applies the NotIn predicate on the "relevance" field.
func RelevanceNotIn(vs ...float64) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldNotIn(FieldRelevance, vs...))
}

// RelevanceGT applies the GT predicate on the "relevance" field.
func RelevanceGT(v float64) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldGT(FieldRelevance, v))
}

// RelevanceGTE applies the GTE predicate on the "relevance" field.
func RelevanceGTE(v float64) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldGTE(FieldRelevance, v))
}

// RelevanceLT applies the LT predicate on the "relevance" field.
func RelevanceLT(v float64) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldLT(FieldRelevance, v))
}

// RelevanceLTE applies the LTE predicate on the "relevance" field.
func RelevanceLTE(v float64) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldLTE(FieldRelevance, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExtractedDTC) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExtractedDTC) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExtractedDTC) predicate.ExtractedDTC {
	return predicate.ExtractedDTC(sql.NotPredicates(p))
}
