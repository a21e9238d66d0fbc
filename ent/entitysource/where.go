// Code generated by ent, DO NOT EDIT.

package entitysource

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/autodiag/refinery/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldContainsFold(FieldID, id))
}

// EntityTable applies equality check predicate on the "entity_table" field. It's identical to EntityTableEQ.
func EntityTable(v string) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldEQ(FieldEntityTable, v))
}

// EntityID applies equality check predicate on the "entity_id" field. It's identical to EntityIDEQ.
func EntityID(v string) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldEQ(FieldEntityID, v))
}

// ChunkID applies equality check predicate on the "chunk_id" field. It's identical to ChunkIDEQ.
func ChunkID(v string) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldEQ(FieldChunkID, v))
}

// TrustScore applies equality check predicate on the "trust_score" field. It's identical to TrustScoreEQ.
func TrustScore(v float64) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldEQ(FieldTrustScore, v))
}

// RelevanceScore applies equality check predicate on the "relevance_score" field. It's identical to RelevanceScoreEQ.
func RelevanceScore(v float64) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldEQ(FieldRelevanceScore, v))
}

// ExtractedAt applies equality check predicate on the "extracted_at" field. It's identical to ExtractedAtEQ.
func ExtractedAt(v time.Time) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldEQ(FieldExtractedAt, v))
}

// EntityTableEQ applies the EQ predicate on the "entity_table" field.
func EntityTableEQ(v string) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldEQ(FieldEntityTable, v))
}

// EntityTableNEQ applies the NEQ predicate on the "entity_table" field.
func EntityTableNEQ(v string) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldNEQ(FieldEntityTable, v))
}

// EntityTableIn applies the In predicate on the "entity_table" field.
func EntityTableIn(vs ...string) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldIn(FieldEntityTable, vs...))
}

// EntityTableNotIn applies the NotIn predicate on the "entity_table" field.
func EntityTableNotIn(vs ...string) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldNotIn(FieldEntityTable, vs...))
}

// EntityTableGT applies the GT predicate on the "entity_table" field.
func EntityTableGT(v string) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldGT(FieldEntityTable, v))
}

// EntityTableGTE applies the GTE predicate on the "entity_table" field.
func EntityTableGTE(v string) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldGTE(FieldEntityTable, v))
}

// EntityTableLT applies the LT predicate on the "entity_table" field.
func EntityTableLT(v string) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldLT(FieldEntityTable, v))
}

// EntityTableLTE applies the LTE predicate on the "entity_table" field.
func EntityTableLTE(v string) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldLTE(FieldEntityTable, v))
}

// EntityTableContains applies the Contains predicate on the "entity_table" field.
func EntityTableContains(v string) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldContains(FieldEntityTable, v))
}

// EntityTableHasPrefix applies the HasPrefix predicate on the "entity_table" field.
func EntityTableHasPrefix(v string) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldHasPrefix(FieldEntityTable, v))
}

// EntityTableHasSuffix applies the HasSuffix predicate on the "entity_table" field.
func EntityTableHasSuffix(v string) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldHasSuffix(FieldEntityTable, v))
}

// EntityTableEqualFold applies the EqualFold predicate on the "entity_table" field.
func EntityTableEqualFold(v string) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldEqualFold(FieldEntityTable, v))
}

// EntityTableContainsFold applies the ContainsFold predicate on the "entity_table" field.
func EntityTableContainsFold(v string) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldContainsFold(FieldEntityTable, v))
}

// EntityIDEQ applies the EQ predicate on the "entity_id" field.
func EntityIDEQ(v string) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldEQ(FieldEntityID, v))
}

// EntityIDNEQ applies the NEQ predicate on the "entity_id" field.
func EntityIDNEQ(v string) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldNEQ(FieldEntityID, v))
}

// EntityIDIn applies the In predicate on the "entity_id" field.
func EntityIDIn(vs ...string) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldIn(FieldEntityID, vs...))
}

// EntityIDNotIn applies the NotIn predicate on the "entity_id" field.
func EntityIDNotIn(vs ...string) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldNotIn(FieldEntityID, vs...))
}

// EntityIDGT applies the GT predicate on the "entity_id" field.
func EntityIDGT(v string) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldGT(FieldEntityID, v))
}

// EntityIDGTE applies the GTE predicate on the "entity_id" field.
func EntityIDGTE(v string) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldGTE(FieldEntityID, v))
}

// EntityIDLT applies the LT predicate on the "entity_id" field.
func EntityIDLT(v string) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldLT(FieldEntityID, v))
}

// EntityIDLTE applies the LTE predicate on the "entity_id" field.
func EntityIDLTE(v string) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldLTE(FieldEntityID, v))
}

// EntityIDContains applies the Contains predicate on the "entity_id" field.
func EntityIDContains(v string) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldContains(FieldEntityID, v))
}

// EntityIDHasPrefix applies the HasPrefix predicate on the "entity_id" field.
func EntityIDHasPrefix(v string) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldHasPrefix(FieldEntityID, v))
}

// EntityIDHasSuffix applies the HasSuffix predicate on the "entity_id" field.
func EntityIDHasSuffix(v string) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldHasSuffix(FieldEntityID, v))
}

// EntityIDEqualFold applies the EqualFold predicate on the "entity_id" field.
func EntityIDEqualFold(v string) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldEqualFold(FieldEntityID, v))
}

// EntityIDContainsFold applies the ContainsFold predicate on the "entity_id" field.
func EntityIDContainsFold(v string) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldContainsFold(FieldEntityID, v))
}

// ChunkIDEQ applies the EQ predicate on the "chunk_id" field.
func ChunkIDEQ(v string) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldEQ(FieldChunkID, v))
}

// ChunkIDNEQ applies the NEQ predicate on the "chunk_id" field.
func ChunkIDNEQ(v string) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldNEQ(FieldChunkID, v))
}

// ChunkIDIn applies the In predicate on the "chunk_id" field.
func ChunkIDIn(vs ...string) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldIn(FieldChunkID, vs...))
}

// ChunkIDNotIn applies the NotIn predicate on the "chunk_id" field.
func ChunkIDNotIn(vs ...string) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldNotIn(FieldChunkID, vs...))
}

// ChunkIDGT applies the GT predicate on the "chunk_id" field.
func ChunkIDGT(v string) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldGT(FieldChunkID, v))
}

// ChunkIDGTE applies the GTE predicate on the "chunk_id" field.
func ChunkIDGTE(v string) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldGTE(FieldChunkID, v))
}

// ChunkIDLT applies the LT predicate on the "chunk_id" field.
func ChunkIDLT(v string) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldLT(FieldChunkID, v))
}

// ChunkIDLTE applies the LTE predicate on the "chunk_id" field.
func ChunkIDLTE(v string) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldLTE(FieldChunkID, v))
}

// ChunkIDContains applies the Contains predicate on the "chunk_id" field.
func ChunkIDContains(v string) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldContains(FieldChunkID, v))
}

// ChunkIDHasPrefix applies the HasPrefix predicate on the "chunk_id" field.
func ChunkIDHasPrefix(v string) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldHasPrefix(FieldChunkID, v))
}

// ChunkIDHasSuffix applies the HasSuffix predicate on the "chunk_id" field.
func ChunkIDHasSuffix(v string) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldHasSuffix(FieldChunkID, v))
}

// ChunkIDEqualFold applies the EqualFold predicate on the "chunk_id" field.
func ChunkIDEqualFold(v string) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldEqualFold(FieldChunkID, v))
}

// ChunkIDContainsFold applies the ContainsFold predicate on the "chunk_id" field.
func ChunkIDContainsFold(v string) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldContainsFold(FieldChunkID, v))
}

// TrustScoreEQ applies the EQ predicate on the "trust_score" field.
func TrustScoreEQ(v float64) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldEQ(FieldTrustScore, v))
}

// TrustScoreNEQ applies the NEQ predicate on the "trust_score" field.
func TrustScoreNEQ(v float64) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldNEQ(FieldTrustScore, v))
}

// TrustScoreIn applies the In predicate on the "trust_score" field.
func TrustScoreIn(vs ...float64) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldIn(FieldTrustScore, vs...))
}

// TrustScoreNotIn applies the NotIn predicate on the "trust_score" field.
func TrustScoreNotIn(vs ...float64) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldNotIn(FieldTrustScore, vs...))
}

// TrustScoreGT applies the GT predicate on the "trust_score" field.
func TrustScoreGT(v float64) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldGT(FieldTrustScore, v))
}

// TrustScoreGTE applies the GTE predicate on the "trust_score" field.
func TrustScoreGTE(v float64) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldGTE(FieldTrustScore, v))
}

// TrustScoreLT applies the LT predicate on the "trust_score" field.
func TrustScoreLT(v float64) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldLT(FieldTrustScore, v))
}

// TrustScoreLTE applies the LTE predicate on the "trust_score" field.
func TrustScoreLTE(v float64) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldLTE(FieldTrustScore, v))
}

// RelevanceScoreEQ applies the EQ predicate on the "relevance_score" field.
func RelevanceScoreEQ(v float64) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldEQ(FieldRelevanceScore, v))
}

// RelevanceScoreNEQ applies the NEQ predicate on the "relevance_score" field.
func RelevanceScoreNEQ(v float64) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldNEQ(FieldRelevanceScore, v))
}

// RelevanceScoreIn applies the In predicate on the "relevance_score" field.
func RelevanceScoreIn(vs ...float64) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldIn(FieldRelevanceScore, vs...))
}

// RelevanceScoreNotIn applies the NotIn predicate on the "relevance_score" field.
func RelevanceScoreNotIn(vs ...float64) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldNotIn(FieldRelevanceScore, vs...))
}

// RelevanceScoreGT applies the GT predicate on the "relevance_score" field.
func RelevanceScoreGT(v float64) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldGT(FieldRelevanceScore, v))
}

// RelevanceScoreGTE applies the GTE predicate on the "relevance_score" field.
func RelevanceScoreGTE(v float64) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldGTE(FieldRelevanceScore, v))
}

// RelevanceScoreLT applies the LT predicate on the "relevance_score" field.
func RelevanceScoreLT(v float64) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldLT(FieldRelevanceScore, v))
}

// RelevanceScoreLTE applies the LTE predicate on the "relevance_score" field.
func RelevanceScoreLTE(v float64) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldLTE(FieldRelevanceScore, v))
}

// ExtractedAtEQ applies the EQ predicate on the "extracted_at" field.
func ExtractedAtEQ(v time.Time) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldEQ(FieldExtractedAt, v))
}

// ExtractedAtNEQ applies the NEQ predicate on the "extracted_at" field.
func ExtractedAtNEQ(v time.Time) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldNEQ(FieldExtractedAt, v))
}

// ExtractedAtIn applies the In predicate on the "extracted_at" field.
func ExtractedAtIn(vs ...time.Time) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldIn(FieldExtractedAt, vs...))
}

// ExtractedAtNotIn applies the NotIn predicate on the "extracted_at" field.
func ExtractedAtNotIn(vs ...time.Time) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldNotIn(FieldExtractedAt, vs...))
}

// ExtractedAtGT applies the GT predicate on the "extracted_at" field.
func ExtractedAtGT(v time.Time) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldGT(FieldExtractedAt, v))
}

// ExtractedAtGTE applies the GTE predicate on the "extracted_at" field.
func ExtractedAtGTE(v time.Time) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldGTE(FieldExtractedAt, v))
}

// ExtractedAtLT applies the LT predicate on the "extracted_at" field.
func ExtractedAtLT(v time.Time) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldLT(FieldExtractedAt, v))
}

// ExtractedAtLTE applies the LTE predicate on the "extracted_at" field.
func ExtractedAtLTE(v time.Time) predicate.EntitySource {
	return predicate.EntitySource(sql.FieldLTE(FieldExtractedAt, v))
}

// HasChunk applies the HasEdge predicate on the "chunk" edge.
func HasChunk() predicate.EntitySource {
	return predicate.EntitySource(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ChunkTable, ChunkColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChunkWith applies the HasEdge predicate on the "chunk" edge with a given conditions (other predicates).
func HasChunkWith(preds ...predicate.DocumentChunk) predicate.EntitySource {
	return predicate.EntitySource(func(s *sql.Selector) {
		step := newChunkStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EntitySource) predicate.EntitySource {
	return predicate.EntitySource(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EntitySource) predicate.EntitySource {
	return predicate.EntitySource(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EntitySource) predicate.EntitySource {
	return predicate.EntitySource(sql.NotPredicates(p))
}
