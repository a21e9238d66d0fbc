// Code generated by ent, DO NOT EDIT.

package chunkevaluation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/autodiag/refinery/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldContainsFold(FieldID, id))
}

// ChunkID applies equality check predicate on the "chunk_id" field. It's identical to ChunkIDEQ.
func ChunkID(v string) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldEQ(FieldChunkID, v))
}

// TrustScore applies equality check predicate on the "trust_score" field. It's identical to TrustScoreEQ.
func TrustScore(v float64) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldEQ(FieldTrustScore, v))
}

// RelevanceScore applies equality check predicate on the "relevance_score" field. It's identical to RelevanceScoreEQ.
func RelevanceScore(v float64) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldEQ(FieldRelevanceScore, v))
}

// Reasoning applies equality check predicate on the "reasoning" field. It's identical to ReasoningEQ.
func Reasoning(v string) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldEQ(FieldReasoning, v))
}

// ModelUsed applies equality check predicate on the "model_used" field. It's identical to ModelUsedEQ.
func ModelUsed(v string) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldEQ(FieldModelUsed, v))
}

// EvaluatedAt applies equality check predicate on the "evaluated_at" field. It's identical to EvaluatedAtEQ.
func EvaluatedAt(v time.Time) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldEQ(FieldEvaluatedAt, v))
}

// ChunkIDEQ applies the EQ predicate on the "chunk_id" field.
func ChunkIDEQ(v string) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldEQ(FieldChunkID, v))
}

// ChunkIDNEQ applies the NEQ predicate on the "chunk_id" field.
func ChunkIDNEQ(v string) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldNEQ(FieldChunkID, v))
}

// ChunkIDIn applies the In predicate on the "chunk_id" field.
func ChunkIDIn(vs ...string) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldIn(FieldChunkID, vs...))
}

// ChunkIDNotIn applies the NotIn predicate on the "chunk_id" field.
func ChunkIDNotIn(vs ...string) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldNotIn(FieldChunkID, vs...))
}

// ChunkIDGT applies the GT predicate on the "chunk_id" field.
func ChunkIDGT(v string) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldGT(FieldChunkID, v))
}

// ChunkIDGTE applies the GTE predicate on the "chunk_id" field.
func ChunkIDGTE(v string) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldGTE(FieldChunkID, v))
}

// ChunkIDLT applies the LT predicate on the "chunk_id" field.
func ChunkIDLT(v string) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldLT(FieldChunkID, v))
}

// ChunkIDLTE applies the LTE predicate on the "chunk_id" field.
func ChunkIDLTE(v string) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldLTE(FieldChunkID, v))
}

// ChunkIDContains applies the Contains predicate on the "chunk_id" field.
func ChunkIDContains(v string) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldContains(FieldChunkID, v))
}

// ChunkIDHasPrefix applies the HasPrefix predicate on the "chunk_id" field.
func ChunkIDHasPrefix(v string) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldHasPrefix(FieldChunkID, v))
}

// ChunkIDHasSuffix applies the HasSuffix predicate on the "chunk_id" field.
func ChunkIDHasSuffix(v string) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldHasSuffix(FieldChunkID, v))
}

// ChunkIDEqualFold applies the EqualFold predicate on the "chunk_id" field.
func ChunkIDEqualFold(v string) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldEqualFold(FieldChunkID, v))
}

// ChunkIDContainsFold applies the ContainsFold predicate on the "chunk_id" field.
func ChunkIDContainsFold(v string) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldContainsFold(FieldChunkID, v))
}

// TrustScoreEQ applies the EQ predicate on the "trust_score" field.
func TrustScoreEQ(v float64) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldEQ(FieldTrustScore, v))
}

// TrustScoreNEQ applies the NEQ predicate on the "trust_score" field.
func TrustScoreNEQ(v float64) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldNEQ(FieldTrustScore, v))
}

// TrustScoreIn applies the In predicate on the "trust_score" field.
func TrustScoreIn(vs ...float64) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldIn(FieldTrustScore, vs...))
}

// TrustScoreNotIn applies the NotIn predicate on the "trust_score" field.
func TrustScoreNotIn(vs ...float64) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldNotIn(FieldTrustScore, vs...))
}

// TrustScoreGT applies the GT predicate on the "trust_score" field.
func TrustScoreGT(v float64) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldGT(FieldTrustScore, v))
}

// TrustScoreGTE applies the GTE predicate on the "trust_score" field.
func TrustScoreGTE(v float64) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldGTE(FieldTrustScore, v))
}

// TrustScoreLT applies the LT predicate on the "trust_score" field.
func TrustScoreLT(v float64) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldLT(FieldTrustScore, v))
}

// TrustScoreLTE applies the LTE predicate on the "trust_score" field.
func TrustScoreLTE(v float64) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldLTE(FieldTrustScore, v))
}

// RelevanceScoreEQ applies the EQ predicate on the "relevance_score" field.
func RelevanceScoreEQ(v float64) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldEQ(FieldRelevanceScore, v))
}

// RelevanceScoreNEQ applies the NEQ predicate on the "relevance_score" field.
func RelevanceScoreNEQ(v float64) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldNEQ(FieldRelevanceScore, v))
}

// RelevanceScoreIn applies the In predicate on the "relevance_score" field.
func RelevanceScoreIn(vs ...float64) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldIn(FieldRelevanceScore, vs...))
}

// RelevanceScoreNotIn applies the NotIn predicate on the "relevance_score" field.
func RelevanceScoreNotIn(vs ...float64) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldNotIn(FieldRelevanceScore, vs...))
}

// RelevanceScoreGT applies the GT predicate on the "relevance_score" field.
func RelevanceScoreGT(v float64) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldGT(FieldRelevanceScore, v))
}

// RelevanceScoreGTE applies the GTE predicate on the "relevance_score" field.
func RelevanceScoreGTE(v float64) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldGTE(FieldRelevanceScore, v))
}

// RelevanceScoreLT applies the LT predicate on the "relevance_score" field.
func RelevanceScoreLT(v float64) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldLT(FieldRelevanceScore, v))
}

// RelevanceScoreLTE applies the LTE predicate on the "relevance_score" field.
func RelevanceScoreLTE(v float64) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldLTE(FieldRelevanceScore, v))
}

// AutomotiveDomainEQ applies the EQ predicate on the "automotive_domain" field.
func AutomotiveDomainEQ(v AutomotiveDomain) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldEQ(FieldAutomotiveDomain, v))
}

// AutomotiveDomainNEQ applies the NEQ predicate on the "automotive_domain" field.
func AutomotiveDomainNEQ(v AutomotiveDomain) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldNEQ(FieldAutomotiveDomain, v))
}

// AutomotiveDomainIn applies the In predicate on the "automotive_domain" field.
func AutomotiveDomainIn(vs ...AutomotiveDomain) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldIn(FieldAutomotiveDomain, vs...))
}

// AutomotiveDomainNotIn applies the NotIn predicate on the "automotive_domain" field.
func AutomotiveDomainNotIn(vs ...AutomotiveDomain) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldNotIn(FieldAutomotiveDomain, vs...))
}

// ReasoningEQ applies the EQ predicate on the "reasoning" field.
func ReasoningEQ(v string) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldEQ(FieldReasoning, v))
}

// ReasoningNEQ applies the NEQ predicate on the "reasoning" field.
func ReasoningNEQ(v string) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldNEQ(FieldReasoning, v))
}

// ReasoningIn applies the In predicate on the "reasoning" field.
func ReasoningIn(vs ...string) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldIn(FieldReasoning, vs...))
}

// ReasoningNotIn applies the NotIn predicate on the "reasoning" field.
func ReasoningNotIn(vs ...string) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldNotIn(FieldReasoning, vs...))
}

// ReasoningGT applies the GT predicate on the "reasoning" field.
func ReasoningGT(v string) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldGT(FieldReasoning, v))
}

// ReasoningGTE applies the GTE predicate on the "reasoning" field.
func ReasoningGTE(v string) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldGTE(FieldReasoning, v))
}

// ReasoningLT applies the LT predicate on the "reasoning" field.
func ReasoningLT(v string) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldLT(FieldReasoning, v))
}

// ReasoningLTE applies the LTE predicate on the "reasoning" field.
func ReasoningLTE(v string) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldLTE(FieldReasoning, v))
}

// ReasoningContains applies the Contains predicate on the "reasoning" field.
func ReasoningContains(v string) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldContains(FieldReasoning, v))
}

// ReasoningHasPrefix applies the HasPrefix predicate on the "reasoning" field.
func ReasoningHasPrefix(v string) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldHasPrefix(FieldReasoning, v))
}

// ReasoningHasSuffix applies the HasSuffix predicate on the "reasoning" field.
func ReasoningHasSuffix(v string) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldHasSuffix(FieldReasoning, v))
}

// ReasoningIsNil applies the IsNil predicate on the "reasoning" field.
func ReasoningIsNil() predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldIsNull(FieldReasoning))
}

// ReasoningNotNil applies the NotNil predicate on the "reasoning" field.
func ReasoningNotNil() predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldNotNull(FieldReasoning))
}

// ReasoningEqualFold applies the EqualFold predicate on the "reasoning" field.
func ReasoningEqualFold(v string) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldEqualFold(FieldReasoning, v))
}

// ReasoningContainsFold applies the ContainsFold predicate on the "reasoning" field.
func ReasoningContainsFold(v string) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldContainsFold(FieldReasoning, v))
}

// ModelUsedEQ applies the EQ predicate on the "model_used" field.
func ModelUsedEQ(v string) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldEQ(FieldModelUsed, v))
}

// ModelUsedNEQ applies the NEQ predicate on the "model_used" field.
func ModelUsedNEQ(v string) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldNEQ(FieldModelUsed, v))
}

// ModelUsedIn applies the In predicate on the "model_used" field.
func ModelUsedIn(vs ...string) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldIn(FieldModelUsed, vs...))
}

// ModelUsedNotIn applies the NotIn predicate on the "model_used" field.
func ModelUsedNotIn(vs ...string) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldNotIn(FieldModelUsed, vs...))
}

// ModelUsedGT applies the GT predicate on the "model_used" field.
func ModelUsedGT(v string) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldGT(FieldModelUsed, v))
}

// ModelUsedGTE applies the GTE predicate on the "model_used" field.
func ModelUsedGTE(v string) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldGTE(FieldModelUsed, v))
}

// ModelUsedLT applies the LT predicate on the "model_used" field.
func ModelUsedLT(v string) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldLT(FieldModelUsed, v))
}

// ModelUsedLTE applies the LTE predicate on the "model_used" field.
func ModelUsedLTE(v string) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldLTE(FieldModelUsed, v))
}

// ModelUsedContains applies the Contains predicate on the "model_used" field.
func ModelUsedContains(v string) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldContains(FieldModelUsed, v))
}

// ModelUsedHasPrefix applies the HasPrefix predicate on the "model_used" field.
func ModelUsedHasPrefix(v string) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldHasPrefix(FieldModelUsed, v))
}

// ModelUsedHasSuffix applies the HasSuffix predicate on the "model_used" field.
func ModelUsedHasSuffix(v string) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldHasSuffix(FieldModelUsed, v))
}

// ModelUsedIsNil applies the IsNil predicate on the "model_used" field.
func ModelUsedIsNil() predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldIsNull(FieldModelUsed))
}

// ModelUsedNotNil applies the NotNil predicate on the "model_used" field.
func ModelUsedNotNil() predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldNotNull(FieldModelUsed))
}

// ModelUsedEqualFold applies the EqualFold predicate on the "model_used" field.
func ModelUsedEqualFold(v string) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldEqualFold(FieldModelUsed, v))
}

// ModelUsedContainsFold applies the ContainsFold predicate on the "model_used" field.
func ModelUsedContainsFold(v string) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldContainsFold(FieldModelUsed, v))
}

// EvaluatedAtEQ applies the EQ predicate on the "evaluated_at" field.
func EvaluatedAtEQ(v time.Time) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldEQ(FieldEvaluatedAt, v))
}

// EvaluatedAtNEQ applies the NEQ predicate on the "evaluated_at" field.
func EvaluatedAtNEQ(v time.Time) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldNEQ(FieldEvaluatedAt, v))
}

// EvaluatedAtIn applies the In predicate on the "evaluated_at" field.
func EvaluatedAtIn(vs ...time.Time) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldIn(FieldEvaluatedAt, vs...))
}

// EvaluatedAtNotIn applies the NotIn predicate on the "evaluated_at" field.
func EvaluatedAtNotIn(vs ...time.Time) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldNotIn(FieldEvaluatedAt, vs...))
}

// EvaluatedAtGT applies the GT predicate on the "evaluated_at" field.
func EvaluatedAtGT(v time.Time) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldGT(FieldEvaluatedAt, v))
}

// EvaluatedAtGTE applies the GTE predicate on the "evaluated_at" field.
func EvaluatedAtGTE(v time.Time) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldGTE(FieldEvaluatedAt, v))
}

// EvaluatedAtLT applies the LT predicate on the "evaluated_at" field.
func EvaluatedAtLT(v time.Time) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldLT(FieldEvaluatedAt, v))
}

// EvaluatedAtLTE applies the LTE predicate on the "evaluated_at" field.
func EvaluatedAtLTE(v time.Time) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.FieldLTE(FieldEvaluatedAt, v))
}

// HasChunk applies the HasEdge predicate on the "chunk" edge.
func HasChunk() predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, ChunkTable, ChunkColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChunkWith applies the HasEdge predicate on the "chunk" edge with a given conditions (other predicates).
func HasChunkWith(preds ...predicate.DocumentChunk) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(func(s *sql.Selector) {
		step := newChunkStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ChunkEvaluation) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ChunkEvaluation) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ChunkEvaluation) predicate.ChunkEvaluation {
	return predicate.ChunkEvaluation(sql.NotPredicates(p))
}
