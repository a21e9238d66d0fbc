// Code generated by ent, DO NOT EDIT.

package extractedcategory

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/autodiag/refinery/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldContainsFold(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v string) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldEQ(FieldDocumentID, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldEQ(FieldCategory, v))
}

// SourceChunkID applies equality check predicate on the "source_chunk_id" field. It's identical to SourceChunkIDEQ.
func SourceChunkID(v string) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldEQ(FieldSourceChunkID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldEQ(FieldCreatedAt, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v string) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v string) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...string) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...string) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldNotIn(FieldDocumentID, vs...))
}

// DocumentIDGT applies the GT predicate on the "document_id" field.
func DocumentIDGT(v string) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldGT(FieldDocumentID, v))
}

// DocumentIDGTE applies the GTE predicate on the "document_id" field.
func DocumentIDGTE(v string) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldGTE(FieldDocumentID, v))
}

// DocumentIDLT applies the LT predicate on the "document_id" field.
func DocumentIDLT(v string) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldLT(FieldDocumentID, v))
}

// DocumentIDLTE applies the LTE predicate on the "document_id" field.
func DocumentIDLTE(v string) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldLTE(FieldDocumentID, v))
}

// DocumentIDContains applies the Contains predicate on the "document_id" field.
func DocumentIDContains(v string) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldContains(FieldDocumentID, v))
}

// DocumentIDHasPrefix applies the HasPrefix predicate on the "document_id" field.
func DocumentIDHasPrefix(v string) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldHasPrefix(FieldDocumentID, v))
}

// DocumentIDHasSuffix applies the HasSuffix predicate on the "document_id" field.
func DocumentIDHasSuffix(v string) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldHasSuffix(FieldDocumentID, v))
}

// DocumentIDEqualFold applies the EqualFold predicate on the "document_id" field.
func DocumentIDEqualFold(v string) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldEqualFold(FieldDocumentID, v))
}

// DocumentIDContainsFold applies the ContainsFold predicate on the "document_id" field.
func DocumentIDContainsFold(v string) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldContainsFold(FieldDocumentID, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldContainsFold(FieldCategory, v))
}

// SourceChunkIDEQ applies the EQ predicate on the "source_chunk_id" field.
func SourceChunkIDEQ(v string) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldEQ(FieldSourceChunkID, v))
}

// SourceChunkIDNEQ applies the NEQ predicate on the "source_chunk_id" field.
func SourceChunkIDNEQ(v string) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldNEQ(FieldSourceChunkID, v))
}

// SourceChunkIDIn applies the In predicate on the "source_chunk_id" field.
func SourceChunkIDIn(vs ...string) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldIn(FieldSourceChunkID, vs...))
}

// SourceChunkIDNotIn applies the NotIn predicate on the "source_chunk_id" field.
func SourceChunkIDNotIn(vs ...string) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldNotIn(FieldSourceChunkID, vs...))
}

// SourceChunkIDGT applies the GT predicate on the "source_chunk_id" field.
func SourceChunkIDGT(v string) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldGT(FieldSourceChunkID, v))
}

// SourceChunkIDGTE applies the GTE predicate on the "source_chunk_id" field.
func SourceChunkIDGTE(v string) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldGTE(FieldSourceChunkID, v))
}

// SourceChunkIDLT applies the LT predicate on the "source_chunk_id" field.
func SourceChunkIDLT(v string) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldLT(FieldSourceChunkID, v))
}

// SourceChunkIDLTE applies the LTE predicate on the "source_chunk_id" field.
func SourceChunkIDLTE(v string) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldLTE(FieldSourceChunkID, v))
}

// SourceChunkIDContains applies the Contains predicate on the "source_chunk_id" field.
func SourceChunkIDContains(v string) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldContains(FieldSourceChunkID, v))
}

// SourceChunkIDHasPrefix applies the HasPrefix predicate on the "source_chunk_id" field.
func SourceChunkIDHasPrefix(v string) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldHasPrefix(FieldSourceChunkID, v))
}

// SourceChunkIDHasSuffix applies the HasSuffix predicate on the "source_chunk_id" field.
func SourceChunkIDHasSuffix(v string) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldHasSuffix(FieldSourceChunkID, v))
}

// SourceChunkIDEqualFold applies the EqualFold predicate on the "source_chunk_id" field.
func SourceChunkIDEqualFold(v string) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldEqualFold(FieldSourceChunkID, v))
}

// SourceChunkIDContainsFold applies the ContainsFold predicate on the "source_chunk_id" field.
func SourceChunkIDContainsFold(v string) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldContainsFold(FieldSourceChunkID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExtractedCategory) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExtractedCategory) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExtractedCategory) predicate.ExtractedCategory {
	return predicate.ExtractedCategory(sql.NotPredicates(p))
}
