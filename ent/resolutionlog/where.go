// Code generated by ent, DO NOT EDIT.

package resolutionlog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/autodiag/refinery/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldContainsFold(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldEQ(FieldRunID, v))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldEQ(FieldDocumentID, v))
}

// EntityTable applies equality check predicate on the "entity_table" field. It's identical to EntityTableEQ.
func EntityTable(v string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldEQ(FieldEntityTable, v))
}

// EntityID applies equality check predicate on the "entity_id" field. It's identical to EntityIDEQ.
func EntityID(v string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldEQ(FieldEntityID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldEQ(FieldCreatedAt, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldContainsFold(FieldRunID, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldNotIn(FieldDocumentID, vs...))
}

// DocumentIDGT applies the GT predicate on the "document_id" field.
func DocumentIDGT(v string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldGT(FieldDocumentID, v))
}

// DocumentIDGTE applies the GTE predicate on the "document_id" field.
func DocumentIDGTE(v string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldGTE(FieldDocumentID, v))
}

// DocumentIDLT applies the LT predicate on the "document_id" field.
func DocumentIDLT(v string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldLT(FieldDocumentID, v))
}

// DocumentIDLTE applies the LTE predicate on the "document_id" field.
func DocumentIDLTE(v string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldLTE(FieldDocumentID, v))
}

// DocumentIDContains applies the Contains predicate on the "document_id" field.
func DocumentIDContains(v string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldContains(FieldDocumentID, v))
}

// DocumentIDHasPrefix applies the HasPrefix predicate on the "document_id" field.
func DocumentIDHasPrefix(v string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldHasPrefix(FieldDocumentID, v))
}

// DocumentIDHasSuffix applies the HasSuffix predicate on the "document_id" field.
func DocumentIDHasSuffix(v string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldHasSuffix(FieldDocumentID, v))
}

// DocumentIDEqualFold applies the EqualFold predicate on the "document_id" field.
func DocumentIDEqualFold(v string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldEqualFold(FieldDocumentID, v))
}

// DocumentIDContainsFold applies the ContainsFold predicate on the "document_id" field.
func DocumentIDContainsFold(v string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldContainsFold(FieldDocumentID, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v Action) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v Action) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...Action) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...Action) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldNotIn(FieldAction, vs...))
}

// EntityTableEQ applies the EQ predicate on the "entity_table" field.
func EntityTableEQ(v string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldEQ(FieldEntityTable, v))
}

// EntityTableNEQ applies the NEQ predicate on the "entity_table" field.
func EntityTableNEQ(v string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldNEQ(FieldEntityTable, v))
}

// EntityTableIn applies the In predicate on the "entity_table" field.
func EntityTableIn(vs ...string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldIn(FieldEntityTable, vs...))
}

// EntityTableNotIn applies the NotIn predicate on the "entity_table" field.
func EntityTableNotIn(vs ...string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldNotIn(FieldEntityTable, vs...))
}

// EntityTableGT applies the GT predicate on the "entity_table" field.
func EntityTableGT(v string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldGT(FieldEntityTable, v))
}

// EntityTableGTE applies the GTE predicate on the "entity_table" field.
func EntityTableGTE(v string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldGTE(FieldEntityTable, v))
}

// EntityTableLT applies the LT predicate on the "entity_table" field.
func EntityTableLT(v string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldLT(FieldEntityTable, v))
}

// EntityTableLTE applies the LTE predicate on the "entity_table" field.
func EntityTableLTE(v string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldLTE(FieldEntityTable, v))
}

// EntityTableContains applies the Contains predicate on the "entity_table" field.
func EntityTableContains(v string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldContains(FieldEntityTable, v))
}

// EntityTableHasPrefix applies the HasPrefix predicate on the "entity_table" field.
func EntityTableHasPrefix(v string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldHasPrefix(FieldEntityTable, v))
}

// EntityTableHasSuffix applies the HasSuffix predicate on the "entity_table" field.
func EntityTableHasSuffix(v string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldHasSuffix(FieldEntityTable, v))
}

// EntityTableIsNil applies the IsNil predicate on the "entity_table" field.
func EntityTableIsNil() predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldIsNull(FieldEntityTable))
}

// EntityTableNotNil applies the NotNil predicate on the "entity_table" field.
func EntityTableNotNil() predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldNotNull(FieldEntityTable))
}

// EntityTableEqualFold applies the EqualFold predicate on the "entity_table" field.
func EntityTableEqualFold(v string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldEqualFold(FieldEntityTable, v))
}

// EntityTableContainsFold applies the ContainsFold predicate on the "entity_table" field.
func EntityTableContainsFold(v string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldContainsFold(FieldEntityTable, v))
}

// EntityIDEQ applies the EQ predicate on the "entity_id" field.
func EntityIDEQ(v string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldEQ(FieldEntityID, v))
}

// EntityIDNEQ applies the NEQ predicate on the "entity_id" field.
func EntityIDNEQ(v string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldNEQ(FieldEntityID, v))
}

// EntityIDIn applies the In predicate on the "entity_id" field.
func EntityIDIn(vs ...string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldIn(FieldEntityID, vs...))
}

// EntityIDNotIn applies the NotIn predicate on the "entity_id" field.
func EntityIDNotIn(vs ...string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldNotIn(FieldEntityID, vs...))
}

// EntityIDGT applies the GT predicate on the "entity_id" field.
func EntityIDGT(v string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldGT(FieldEntityID, v))
}

// EntityIDGTE applies the GTE predicate on the "entity_id" field.
func EntityIDGTE(v string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldGTE(FieldEntityID, v))
}

// EntityIDLT applies the LT predicate on the "entity_id" field.
func EntityIDLT(v string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldLT(FieldEntityID, v))
}

// EntityIDLTE applies the LTE predicate on the "entity_id" field.
func EntityIDLTE(v string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldLTE(FieldEntityID, v))
}

// EntityIDContains applies the Contains predicate on the "entity_id" field.
func EntityIDContains(v string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldContains(FieldEntityID, v))
}

// EntityIDHasPrefix applies the HasPrefix predicate on the "entity_id" field.
func EntityIDHasPrefix(v string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldHasPrefix(FieldEntityID, v))
}

// EntityIDHasSuffix applies the HasSuffix predicate on the "entity_id" field.
func EntityIDHasSuffix(v string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldHasSuffix(FieldEntityID, v))
}

// EntityIDIsNil applies the IsNil predicate on the "entity_id" field.
func EntityIDIsNil() predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldIsNull(FieldEntityID))
}

// EntityIDNotNil applies the NotNil predicate on the "entity_id" field.
func EntityIDNotNil() predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldNotNull(FieldEntityID))
}

// EntityIDEqualFold applies the EqualFold predicate on the "entity_id" field.
func EntityIDEqualFold(v string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldEqualFold(FieldEntityID, v))
}

// EntityIDContainsFold applies the ContainsFold predicate on the "entity_id" field.
func EntityIDContainsFold(v string) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldContainsFold(FieldEntityID, v))
}

// DetailsIsNil applies the IsNil predicate on the "details" field.
func DetailsIsNil() predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldIsNull(FieldDetails))
}

// DetailsNotNil applies the NotNil predicate on the "details" field.
func DetailsNotNil() predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldNotNull(FieldDetails))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ResolutionLog) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ResolutionLog) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ResolutionLog) predicate.ResolutionLog {
	return predicate.ResolutionLog(sql.NotPredicates(p))
}
