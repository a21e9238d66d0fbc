// Code generated by ent, DO NOT EDIT.

package documentchunk

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/autodiag/refinery/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldContainsFold(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldEQ(FieldDocumentID, v))
}

// ChunkIndex applies equality check predicate on the "chunk_index" field. It's identical to ChunkIndexEQ.
func ChunkIndex(v int) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldEQ(FieldChunkIndex, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldEQ(FieldContent, v))
}

// CharStart applies equality check predicate on the "char_start" field. It's identical to CharStartEQ.
func CharStart(v int) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldEQ(FieldCharStart, v))
}

// CharEnd applies equality check predicate on the "char_end" field. It's identical to CharEndEQ.
func CharEnd(v int) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldEQ(FieldCharEnd, v))
}

// TokenCount applies equality check predicate on the "token_count" field. It's identical to TokenCountEQ.
func TokenCount(v int) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldEQ(FieldTokenCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldEQ(FieldCreatedAt, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldNotIn(FieldDocumentID, vs...))
}

// DocumentIDGT applies the GT predicate on the "document_id" field.
func DocumentIDGT(v string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldGT(FieldDocumentID, v))
}

// DocumentIDGTE applies the GTE predicate on the "document_id" field.
func DocumentIDGTE(v string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldGTE(FieldDocumentID, v))
}

// DocumentIDLT applies the LT predicate on the "document_id" field.
func DocumentIDLT(v string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldLT(FieldDocumentID, v))
}

// DocumentIDLTE applies the LTE predicate on the "document_id" field.
func DocumentIDLTE(v string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldLTE(FieldDocumentID, v))
}

// DocumentIDContains applies the Contains predicate on the "document_id" field.
func DocumentIDContains(v string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldContains(FieldDocumentID, v))
}

// DocumentIDHasPrefix applies the HasPrefix predicate on the "document_id" field.
func DocumentIDHasPrefix(v string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldHasPrefix(FieldDocumentID, v))
}

// DocumentIDHasSuffix applies the HasSuffix predicate on the "document_id" field.
func DocumentIDHasSuffix(v string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldHasSuffix(FieldDocumentID, v))
}

// DocumentIDEqualFold applies the EqualFold predicate on the "document_id" field.
func DocumentIDEqualFold(v string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldEqualFold(FieldDocumentID, v))
}

// DocumentIDContainsFold applies the ContainsFold predicate on the "document_id" field.
func DocumentIDContainsFold(v string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldContainsFold(FieldDocumentID, v))
}

// ChunkIndexEQ applies the EQ predicate on the "chunk_index" field.
func ChunkIndexEQ(v int) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldEQ(FieldChunkIndex, v))
}

// ChunkIndexNEQ applies the NEQ predicate on the "chunk_index" field.
func ChunkIndexNEQ(v int) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldNEQ(FieldChunkIndex, v))
}

// ChunkIndexIn applies the In predicate on the "chunk_index" field.
func ChunkIndexIn(vs ...int) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldIn(FieldChunkIndex, vs...))
}

// ChunkIndexNotIn applies the NotIn predicate on the "chunk_index" field.
func ChunkIndexNotIn(vs ...int) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldNotIn(FieldChunkIndex, vs...))
}

// ChunkIndexGT applies the GT predicate on the "chunk_index" field.
func ChunkIndexGT(v int) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldGT(FieldChunkIndex, v))
}

// ChunkIndexGTE applies the GTE predicate on the "chunk_index" field.
func ChunkIndexGTE(v int) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldGTE(FieldChunkIndex, v))
}

// ChunkIndexLT applies the LT predicate on the "chunk_index" field.
func ChunkIndexLT(v int) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldLT(FieldChunkIndex, v))
}

// ChunkIndexLTE applies the LTE predicate on the "chunk_index" field.
func ChunkIndexLTE(v int) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldLTE(FieldChunkIndex, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldContainsFold(FieldContent, v))
}

// CharStartEQ applies the EQ predicate on the "char_start" field.
func CharStartEQ(v int) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldEQ(FieldCharStart, v))
}

// CharStartNEQ applies the NEQ predicate on the "char_start" field.
func CharStartNEQ(v int) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldNEQ(FieldCharStart, v))
}

// CharStartIn applies the In predicate on the "char_start" field.
func CharStartIn(vs ...int) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldIn(FieldCharStart, vs...))
}

// CharStartNotIn applies the NotIn predicate on the "char_start" field.
func CharStartNotIn(vs ...int) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldNotIn(FieldCharStart, vs...))
}

// CharStartGT applies the GT predicate on the "char_start" field.
func CharStartGT(v int) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldGT(FieldCharStart, v))
}

// CharStartGTE applies the GTE predicate on the "char_start" field.
func CharStartGTE(v int) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldGTE(FieldCharStart, v))
}

// CharStartLT applies the LT predicate on the "char_start" field.
func CharStartLT(v int) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldLT(FieldCharStart, v))
}

// CharStartLTE applies the LTE predicate on the "char_start" field.
func CharStartLTE(v int) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldLTE(FieldCharStart, v))
}

// CharEndEQ applies the EQ predicate on the "char_end" field.
func CharEndEQ(v int) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldEQ(FieldCharEnd, v))
}

// CharEndNEQ applies the NEQ predicate on the "char_end" field.
func CharEndNEQ(v int) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldNEQ(FieldCharEnd, v))
}

// CharEndIn applies the In predicate on the "char_end" field.
func CharEndIn(vs ...int) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldIn(FieldCharEnd, vs...))
}

// CharEndNotIn applies the NotIn predicate on the "char_end" field.
func CharEndNotIn(vs ...int) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldNotIn(FieldCharEnd, vs...))
}

// CharEndGT applies the GT predicate on the "char_end" field.
func CharEndGT(v int) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldGT(FieldCharEnd, v))
}

// CharEndGTE applies the GTE predicate on the "char_end" field.
func CharEndGTE(v int) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldGTE(FieldCharEnd, v))
}

// CharEndLT applies the LT predicate on the "char_end" field.
func CharEndLT(v int) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldLT(FieldCharEnd, v))
}

// CharEndLTE applies the LTE predicate on the "char_end" field.
func CharEndLTE(v int) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldLTE(FieldCharEnd, v))
}

// TokenCountEQ applies the EQ predicate on the "token_count" field.
func TokenCountEQ(v int) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldEQ(FieldTokenCount, v))
}

// TokenCountNEQ applies the NEQ predicate on the "token_count" field.
func TokenCountNEQ(v int) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldNEQ(FieldTokenCount, v))
}

// TokenCountIn applies the In predicate on the "token_count" field.
func TokenCountIn(vs ...int) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldIn(FieldTokenCount, vs...))
}

// TokenCountNotIn applies the NotIn predicate on the "token_count" field.
func TokenCountNotIn(vs ...int) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldNotIn(FieldTokenCount, vs...))
}

// TokenCountGT applies the GT predicate on the "token_count" field.
func TokenCountGT(v int) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldGT(FieldTokenCount, v))
}

// TokenCountGTE applies the GTE predicate on the "token_count" field.
func TokenCountGTE(v int) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldGTE(FieldTokenCount, v))
}

// TokenCountLT applies the LT predicate on the "token_count" field.
func TokenCountLT(v int) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldLT(FieldTokenCount, v))
}

// TokenCountLTE applies the LTE predicate on the "token_count" field.
func TokenCountLTE(v int) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldLTE(FieldTokenCount, v))
}

// EmbeddingIsNil applies the IsNil predicate on the "embedding" field.
func EmbeddingIsNil() predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldIsNull(FieldEmbedding))
}

// EmbeddingNotNil applies the NotNil predicate on the "embedding" field.
func EmbeddingNotNil() predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldNotNull(FieldEmbedding))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.FieldLTE(FieldCreatedAt, v))
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.DocumentChunk {
	return predicate.DocumentChunk(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.DocumentChunk {
	return predicate.DocumentChunk(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvaluation applies the HasEdge predicate on the "evaluation" edge.
func HasEvaluation() predicate.DocumentChunk {
	return predicate.DocumentChunk(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, EvaluationTable, EvaluationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEvaluationWith applies the HasEdge predicate on the "evaluation" edge with a given conditions (other predicates).
func HasEvaluationWith(preds ...predicate.ChunkEvaluation) predicate.DocumentChunk {
	return predicate.DocumentChunk(func(s *sql.Selector) {
		step := newEvaluationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSources applies the HasEdge predicate on the "sources" edge.
func HasSources() predicate.DocumentChunk {
	return predicate.DocumentChunk(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SourcesTable, SourcesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSourcesWith applies the HasEdge predicate on the "sources" edge with a given conditions (other predicates).
func HasSourcesWith(preds ...predicate.EntitySource) predicate.DocumentChunk {
	return predicate.DocumentChunk(func(s *sql.Selector) {
		step := newSourcesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DocumentChunk) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DocumentChunk) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DocumentChunk) predicate.DocumentChunk {
	return predicate.DocumentChunk(sql.NotPredicates(p))
}
