// Code generated by ent, DO NOT EDIT.

package extractedcause

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/autodiag/refinery/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldContainsFold(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldEQ(FieldDocumentID, v))
}

// DtcCode applies equality check predicate on the "dtc_code" field. It's identical to DtcCodeEQ.
func DtcCode(v string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldEQ(FieldDtcCode, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldEQ(FieldDescription, v))
}

// Likelihood applies equality check predicate on the "likelihood" field. It's identical to LikelihoodEQ.
func Likelihood(v string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldEQ(FieldLikelihood, v))
}

// SourceChunkID applies equality check predicate on the "source_chunk_id" field. It's identical to SourceChunkIDEQ.
func SourceChunkID(v string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldEQ(FieldSourceChunkID, v))
}

// Trust applies equality check predicate on the "trust" field. It's identical to TrustEQ.
func Trust(v float64) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldEQ(FieldTrust, v))
}

// Relevance applies equality check predicate on the "relevance" field. It's identical to RelevanceEQ.
func Relevance(v float64) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldEQ(FieldRelevance, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldEQ(FieldCreatedAt, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldNotIn(FieldDocumentID, vs...))
}

// DocumentIDGT applies the GT predicate on the "document_id" field.
func DocumentIDGT(v string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldGT(FieldDocumentID, v))
}

// DocumentIDGTE applies the GTE predicate on the "document_id" field.
func DocumentIDGTE(v string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldGTE(FieldDocumentID, v))
}

// DocumentIDLT applies the LT predicate on the "document_id" field.
func DocumentIDLT(v string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldLT(FieldDocumentID, v))
}

// DocumentIDLTE applies the LTE predicate on the "document_id" field.
func DocumentIDLTE(v string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldLTE(FieldDocumentID, v))
}

// DocumentIDContains applies the Contains predicate on the "document_id" field.
func DocumentIDContains(v string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldContains(FieldDocumentID, v))
}

// DocumentIDHasPrefix applies the HasPrefix predicate on the "document_id" field.
func DocumentIDHasPrefix(v string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldHasPrefix(FieldDocumentID, v))
}

// DocumentIDHasSuffix applies the HasSuffix predicate on the "document_id" field.
func DocumentIDHasSuffix(v string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldHasSuffix(FieldDocumentID, v))
}

// DocumentIDEqualFold applies the EqualFold predicate on the "document_id" field.
func DocumentIDEqualFold(v string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldEqualFold(FieldDocumentID, v))
}

// DocumentIDContainsFold applies the ContainsFold predicate on the "document_id" field.
func DocumentIDContainsFold(v string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldContainsFold(FieldDocumentID, v))
}

// DtcCodeEQ applies the EQ predicate on the "dtc_code" field.
func DtcCodeEQ(v string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldEQ(FieldDtcCode, v))
}

// DtcCodeNEQ applies the NEQ predicate on the "dtc_code" field.
func DtcCodeNEQ(v string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldNEQ(FieldDtcCode, v))
}

// DtcCodeIn applies the In predicate on the "dtc_code" field.
func DtcCodeIn(vs ...string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldIn(FieldDtcCode, vs...))
}

// DtcCodeNotIn applies the NotIn predicate on the "dtc_code" field.
func DtcCodeNotIn(vs ...string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldNotIn(FieldDtcCode, vs...))
}

// DtcCodeGT applies the GT predicate on the "dtc_code" field.
func DtcCodeGT(v string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldGT(FieldDtcCode, v))
}

// DtcCodeGTE applies the GTE predicate on the "dtc_code" field.
func DtcCodeGTE(v string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldGTE(FieldDtcCode, v))
}

// DtcCodeLT applies the LT predicate on the "dtc_code" field.
func DtcCodeLT(v string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldLT(FieldDtcCode, v))
}

// DtcCodeLTE applies the LTE predicate on the "dtc_code" field.
func DtcCodeLTE(v string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldLTE(FieldDtcCode, v))
}

// DtcCodeContains applies the Contains predicate on the "dtc_code" field.
func DtcCodeContains(v string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldContains(FieldDtcCode, v))
}

// DtcCodeHasPrefix applies the HasPrefix predicate on the "dtc_code" field.
func DtcCodeHasPrefix(v string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldHasPrefix(FieldDtcCode, v))
}

// DtcCodeHasSuffix applies the HasSuffix predicate on the "dtc_code" field.
func DtcCodeHasSuffix(v string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldHasSuffix(FieldDtcCode, v))
}

// DtcCodeEqualFold applies the EqualFold predicate on the "dtc_code" field.
func DtcCodeEqualFold(v string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldEqualFold(FieldDtcCode, v))
}

// DtcCodeContainsFold applies the ContainsFold predicate on the "dtc_code" field.
func DtcCodeContainsFold(v string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldContainsFold(FieldDtcCode, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldContainsFold(FieldDescription, v))
}

// LikelihoodEQ applies the EQ predicate on the "likelihood" field.
func LikelihoodEQ(v string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldEQ(FieldLikelihood, v))
}

// LikelihoodNEQ applies the NEQ predicate on the "likelihood" field.
func LikelihoodNEQ(v string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldNEQ(FieldLikelihood, v))
}

// LikelihoodIn applies the In predicate on the "likelihood" field.
func LikelihoodIn(vs ...string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldIn(FieldLikelihood, vs...))
}

// LikelihoodNotIn applies the NotIn predicate on the "likelihood" field.
func LikelihoodNotIn(vs ...string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldNotIn(FieldLikelihood, vs...))
}

// LikelihoodGT applies the GT predicate on the "likelihood" field.
func LikelihoodGT(v string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldGT(FieldLikelihood, v))
}

// LikelihoodGTE applies the GTE predicate on the "likelihood" field.
func LikelihoodGTE(v string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldGTE(FieldLikelihood, v))
}

// LikelihoodLT applies the LT predicate on the "likelihood" field.
func LikelihoodLT(v string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldLT(FieldLikelihood, v))
}

// LikelihoodLTE applies the LTE predicate on the "likelihood" field.
func LikelihoodLTE(v string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldLTE(FieldLikelihood, v))
}

// LikelihoodContains applies the Contains predicate on the "likelihood" field.
func LikelihoodContains(v string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldContains(FieldLikelihood, v))
}

// LikelihoodHasPrefix applies the HasPrefix predicate on the "likelihood" field.
func LikelihoodHasPrefix(v string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldHasPrefix(FieldLikelihood, v))
}

// LikelihoodHasSuffix applies the HasSuffix predicate on the "likelihood" field.
func LikelihoodHasSuffix(v string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldHasSuffix(FieldLikelihood, v))
}

// LikelihoodIsNil applies the IsNil predicate on the "likelihood" field.
func LikelihoodIsNil() predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldIsNull(FieldLikelihood))
}

// LikelihoodNotNil applies the NotNil predicate on the "likelihood" field.
func LikelihoodNotNil() predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldNotNull(FieldLikelihood))
}

// LikelihoodEqualFold applies the EqualFold predicate on the "likelihood" field.
func LikelihoodEqualFold(v string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldEqualFold(FieldLikelihood, v))
}

// LikelihoodContainsFold applies the ContainsFold predicate on the "likelihood" field.
func LikelihoodContainsFold(v string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldContainsFold(FieldLikelihood, v))
}

// SourceChunkIDEQ applies the EQ predicate on the "source_chunk_id" field.
func SourceChunkIDEQ(v string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldEQ(FieldSourceChunkID, v))
}

// SourceChunkIDNEQ applies the NEQ predicate on the "source_chunk_id" field.
func SourceChunkIDNEQ(v string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldNEQ(FieldSourceChunkID, v))
}

// SourceChunkIDIn applies the In predicate on the "source_chunk_id" field.
func SourceChunkIDIn(vs ...string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldIn(FieldSourceChunkID, vs...))
}

// SourceChunkIDNotIn applies the NotIn predicate on the "source_chunk_id" field.
func SourceChunkIDNotIn(vs ...string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldNotIn(FieldSourceChunkID, vs...))
}

// SourceChunkIDGT applies the GT predicate on the "source_chunk_id" field.
func SourceChunkIDGT(v string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldGT(FieldSourceChunkID, v))
}

// SourceChunkIDGTE applies the GTE predicate on the "source_chunk_id" field.
func SourceChunkIDGTE(v string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldGTE(FieldSourceChunkID, v))
}

// SourceChunkIDLT applies the LT predicate on the "source_chunk_id" field.
func SourceChunkIDLT(v string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldLT(FieldSourceChunkID, v))
}

// SourceChunkIDLTE applies the LTE predicate on the "source_chunk_id" field.
func SourceChunkIDLTE(v string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldLTE(FieldSourceChunkID, v))
}

// SourceChunkIDContains applies the Contains predicate on the "source_chunk_id" field.
func SourceChunkIDContains(v string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldContains(FieldSourceChunkID, v))
}

// SourceChunkIDHasPrefix applies the HasPrefix predicate on the "source_chunk_id" field.
func SourceChunkIDHasPrefix(v string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldHasPrefix(FieldSourceChunkID, v))
}

// SourceChunkIDHasSuffix applies the HasSuffix predicate on the "source_chunk_id" field.
func SourceChunkIDHasSuffix(v string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldHasSuffix(FieldSourceChunkID, v))
}

// SourceChunkIDEqualFold applies the EqualFold predicate on the "source_chunk_id" field.
func SourceChunkIDEqualFold(v string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldEqualFold(FieldSourceChunkID, v))
}

// SourceChunkIDContainsFold applies the ContainsFold predicate on the "source_chunk_id" field.
func SourceChunkIDContainsFold(v string) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldContainsFold(FieldSourceChunkID, v))
}

// TrustEQ applies the EQ predicate on the "trust" field.
func TrustEQ(v float64) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldEQ(FieldTrust, v))
}

// TrustNEQ applies the NEQ predicate on the "trust" field.
func TrustNEQ(v float64) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldNEQ(FieldTrust, v))
}

// TrustIn applies the In predicate on the "trust" field.
func TrustIn(vs ...float64) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldIn(FieldTrust, vs...))
}

// TrustNotIn applies the NotIn predicate on the "trust" field.
func TrustNotIn(vs ...float64) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldNotIn(FieldTrust, vs...))
}

// TrustGT applies the GT predicate on the "trust" field.
func TrustGT(v float64) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldGT(FieldTrust, v))
}

// TrustGTE applies the GTE predicate on the "trust" field.
func TrustGTE(v float64) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldGTE(FieldTrust, v))
}

// TrustLT applies the LT predicate on the "trust" field.
func TrustLT(v float64) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldLT(FieldTrust, v))
}

// TrustLTE applies the LTE predicate on the "trust" field.
func TrustLTE(v float64) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldLTE(FieldTrust, v))
}

// RelevanceEQ applies the EQ predicate on the "relevance" field.
func RelevanceEQ(v float64) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldEQ(FieldRelevance, v))
}

// RelevanceNEQ applies the NEQ predicate on the "relevance" field.
func RelevanceNEQ(v float64) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldNEQ(FieldRelevance, v))
}

// RelevanceIn applies the In predicate on the "relevance" field.
func RelevanceIn(vs ...float64) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldIn(FieldRelevance, vs...))
}

// RelevanceNotIn applies the NotIn predicate on the "relevance" field.
func RelevanceNotIn(vs ...float64) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldNotIn(FieldRelevance, vs...))
}

// RelevanceGT applies the GT predicate on the "relevance" field.
func RelevanceGT(v float64) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldGT(FieldRelevance, v))
}

// RelevanceGTE applies the GTE predicate on the "relevance" field.
func RelevanceGTE(v float64) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldGTE(FieldRelevance, v))
}

// RelevanceLT applies the LT predicate on the "relevance" field.
func RelevanceLT(v float64) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldLT(FieldRelevance, v))
}

// RelevanceLTE applies the LTE predicate on the "relevance" field.
func RelevanceLTE(v float64) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldLTE(FieldRelevance, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExtractedCause) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExtractedCause) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExtractedCause) predicate.ExtractedCause {
	return predicate.ExtractedCause(sql.NotPredicates(p))
}
