// Code generated by ent, DO NOT EDIT.

package crawlrequest

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/autodiag/refinery/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldContainsFold(FieldID, id))
}

// URL applies equality check predicate on the "url" field. It's identical to URLEQ.
func URL(v string) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldEQ(FieldURL, v))
}

// Depth applies equality check predicate on the "depth" field. It's identical to DepthEQ.
func Depth(v int) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldEQ(FieldDepth, v))
}

// MaxDepth applies equality check predicate on the "max_depth" field. It's identical to MaxDepthEQ.
func MaxDepth(v int) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldEQ(FieldMaxDepth, v))
}

// ParentURL applies equality check predicate on the "parent_url" field. It's identical to ParentURLEQ.
func ParentURL(v string) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldEQ(FieldParentURL, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldEQ(FieldCompletedAt, v))
}

// URLEQ applies the EQ predicate on the "url" field.
func URLEQ(v string) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldEQ(FieldURL, v))
}

// URLNEQ applies the NEQ predicate on the "url" field.
func URLNEQ(v string) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldNEQ(FieldURL, v))
}

// URLIn applies the In predicate on the "url" field.
func URLIn(vs ...string) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldIn(FieldURL, vs...))
}

// URLNotIn applies the NotIn predicate on the "url" field.
func URLNotIn(vs ...string) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldNotIn(FieldURL, vs...))
}

// URLGT applies the GT predicate on the "url" field.
func URLGT(v string) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldGT(FieldURL, v))
}

// URLGTE applies the GTE predicate on the "url" field.
func URLGTE(v string) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldGTE(FieldURL, v))
}

// URLLT applies the LT predicate on the "url" field.
func URLLT(v string) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldLT(FieldURL, v))
}

// URLLTE applies the LTE predicate on the "url" field.
func URLLTE(v string) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldLTE(FieldURL, v))
}

// URLContains applies the Contains predicate on the "url" field.
func URLContains(v string) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldContains(FieldURL, v))
}

// URLHasPrefix applies the HasPrefix predicate on the "url" field.
func URLHasPrefix(v string) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldHasPrefix(FieldURL, v))
}

// URLHasSuffix applies the HasSuffix predicate on the "url" field.
func URLHasSuffix(v string) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldHasSuffix(FieldURL, v))
}

// URLEqualFold applies the EqualFold predicate on the "url" field.
func URLEqualFold(v string) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldEqualFold(FieldURL, v))
}

// URLContainsFold applies the ContainsFold predicate on the "url" field.
func URLContainsFold(v string) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldContainsFold(FieldURL, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldNotIn(FieldStatus, vs...))
}

// DepthEQ applies the EQ predicate on the "depth" field.
func DepthEQ(v int) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldEQ(FieldDepth, v))
}

// DepthNEQ applies the NEQ predicate on the "depth" field.
func DepthNEQ(v int) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldNEQ(FieldDepth, v))
}

// DepthIn applies the In predicate on the "depth" field.
func DepthIn(vs ...int) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldIn(FieldDepth, vs...))
}

// DepthNotIn applies the NotIn predicate on the "depth" field.
func DepthNotIn(vs ...int) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldNotIn(FieldDepth, vs...))
}

// DepthGT applies the GT predicate on the "depth" field.
func DepthGT(v int) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldGT(FieldDepth, v))
}

// DepthGTE applies the GTE predicate on the "depth" field.
func DepthGTE(v int) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldGTE(FieldDepth, v))
}

// DepthLT applies the LT predicate on the "depth" field.
func DepthLT(v int) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldLT(FieldDepth, v))
}

// DepthLTE applies the LTE predicate on the "depth" field.
func DepthLTE(v int) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldLTE(FieldDepth, v))
}

// MaxDepthEQ applies the EQ predicate on the "max_depth" field.
func MaxDepthEQ(v int) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldEQ(FieldMaxDepth, v))
}

// MaxDepthNEQ applies the NEQ predicate on the "max_depth" field.
func MaxDepthNEQ(v int) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldNEQ(FieldMaxDepth, v))
}

// MaxDepthIn applies the In predicate on the "max_depth" field.
func MaxDepthIn(vs ...int) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldIn(FieldMaxDepth, vs...))
}

// MaxDepthNotIn applies the NotIn predicate on the "max_depth" field.
func MaxDepthNotIn(vs ...int) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldNotIn(FieldMaxDepth, vs...))
}

// MaxDepthGT applies the GT predicate on the "max_depth" field.
func MaxDepthGT(v int) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldGT(FieldMaxDepth, v))
}

// MaxDepthGTE applies the GTE predicate on the "max_depth" field.
func MaxDepthGTE(v int) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldGTE(FieldMaxDepth, v))
}

// MaxDepthLT applies the LT predicate on the "max_depth" field.
func MaxDepthLT(v int) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldLT(FieldMaxDepth, v))
}

// MaxDepthLTE applies the LTE predicate on the "max_depth" field.
func MaxDepthLTE(v int) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldLTE(FieldMaxDepth, v))
}

// ParentURLEQ applies the EQ predicate on the "parent_url" field.
func ParentURLEQ(v string) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldEQ(FieldParentURL, v))
}

// ParentURLNEQ applies the NEQ predicate on the "parent_url" field.
func ParentURLNEQ(v string) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldNEQ(FieldParentURL, v))
}

// ParentURLIn applies the In predicate on the "parent_url" field.
func ParentURLIn(vs ...string) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldIn(FieldParentURL, vs...))
}

// ParentURLNotIn applies the NotIn predicate on the "parent_url" field.
func ParentURLNotIn(vs ...string) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldNotIn(FieldParentURL, vs...))
}

// ParentURLGT applies the GT predicate on the "parent_url" field.
func ParentURLGT(v string) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldGT(FieldParentURL, v))
}

// ParentURLGTE applies the GTE predicate on the "parent_url" field.
func ParentURLGTE(v string) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldGTE(FieldParentURL, v))
}

// ParentURLLT applies the LT predicate on the "parent_url" field.
func ParentURLLT(v string) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldLT(FieldParentURL, v))
}

// ParentURLLTE applies the LTE predicate on the "parent_url" field.
func ParentURLLTE(v string) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldLTE(FieldParentURL, v))
}

// ParentURLContains applies the Contains predicate on the "parent_url" field.
func ParentURLContains(v string) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldContains(FieldParentURL, v))
}

// ParentURLHasPrefix applies the HasPrefix predicate on the "parent_url" field.
func ParentURLHasPrefix(v string) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldHasPrefix(FieldParentURL, v))
}

// ParentURLHasSuffix applies the HasSuffix predicate on the "parent_url" field.
func ParentURLHasSuffix(v string) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldHasSuffix(FieldParentURL, v))
}

// ParentURLIsNil applies the IsNil predicate on the "parent_url" field.
func ParentURLIsNil() predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldIsNull(FieldParentURL))
}

// ParentURLNotNil applies the NotNil predicate on the "parent_url" field.
func ParentURLNotNil() predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldNotNull(FieldParentURL))
}

// ParentURLEqualFold applies the EqualFold predicate on the "parent_url" field.
func ParentURLEqualFold(v string) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldEqualFold(FieldParentURL, v))
}

// ParentURLContainsFold applies the ContainsFold predicate on the "parent_url" field.
func ParentURLContainsFold(v string) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldContainsFold(FieldParentURL, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldLTE(FieldCreatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.FieldNotNull(FieldCompletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CrawlRequest) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CrawlRequest) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CrawlRequest) predicate.CrawlRequest {
	return predicate.CrawlRequest(sql.NotPredicates(p))
}
