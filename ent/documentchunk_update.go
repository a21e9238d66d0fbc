// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/autodiag/refinery/ent/chunkevaluation"
	"github.com/autodiag/refinery/ent/document"
	"github.com/autodiag/refinery/ent/documentchunk"
	"github.com/autodiag/refinery/ent/entitysource"
	"github.com/autodiag/refinery/ent/predicate"
)

// DocumentChunkUpdate is the builder for updating DocumentChunk entities.
type DocumentChunkUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentChunkMutation
}

// Where appends a list predicates to the DocumentChunkUpdate builder.
func (_u *DocumentChunkUpdate) Where(ps ...predicate.DocumentChunk) *DocumentChunkUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *DocumentChunkUpdate) SetDocumentID(v string) *DocumentChunkUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *DocumentChunkUpdate) SetNillableDocumentID(v *string) *DocumentChunkUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetChunkIndex sets the "chunk_index" field.
func (_u *DocumentChunkUpdate) SetChunkIndex(v int) *DocumentChunkUpdate {
	_u.mutation.ResetChunkIndex()
	_u.mutation.SetChunkIndex(v)
	return _u
}

// SetNillableChunkIndex sets the "chunk_index" field if the given value is not nil.
func (_u *DocumentChunkUpdate) SetNillableChunkIndex(v *int) *DocumentChunkUpdate {
	if v != nil {
		_u.SetChunkIndex(*v)
	}
	return _u
}

// AddChunkIndex adds value to the "chunk_index" field.
func (_u *DocumentChunkUpdate) AddChunkIndex(v int) *DocumentChunkUpdate {
	_u.mutation.AddChunkIndex(v)
	return _u
}

// SetContent sets the "content" field.
func (_u *DocumentChunkUpdate) SetContent(v string) *DocumentChunkUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *DocumentChunkUpdate) SetNillableContent(v *string) *DocumentChunkUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetCharStart sets the "char_start" field.
func (_u *DocumentChunkUpdate) SetCharStart(v int) *DocumentChunkUpdate {
	_u.mutation.ResetCharStart()
	_u.mutation.SetCharStart(v)
	return _u
}

// SetNillableCharStart sets the "char_start" field if the given value is not nil.
func (_u *DocumentChunkUpdate) SetNillableCharStart(v *int) *DocumentChunkUpdate {
	if v != nil {
		_u.SetCharStart(*v)
	}
	return _u
}

// AddCharStart adds value to the "char_start" field.
func (_u *DocumentChunkUpdate) AddCharStart(v int) *DocumentChunkUpdate {
	_u.mutation.AddCharStart(v)
	return _u
}

// SetCharEnd sets the "char_end" field.
func (_u *DocumentChunkUpdate) SetCharEnd(v int) *DocumentChunkUpdate {
	_u.mutation.ResetCharEnd()
	_u.mutation.SetCharEnd(v)
	return _u
}

// SetNillableCharEnd sets the "char_end" field if the given value is not nil.
func (_u *DocumentChunkUpdate) SetNillableCharEnd(v *int) *DocumentChunkUpdate {
	if v != nil {
		_u.SetCharEnd(*v)
	}
	return _u
}

// AddCharEnd adds value to the "char_end" field.
func (_u *DocumentChunkUpdate) AddCharEnd(v int) *DocumentChunkUpdate {
	_u.mutation.AddCharEnd(v)
	return _u
}

// SetTokenCount sets the "token_count" field.
func (_u *DocumentChunkUpdate) SetTokenCount(v int) *DocumentChunkUpdate {
	_u.mutation.ResetTokenCount()
	_u.mutation.SetTokenCount(v)
	return _u
}

// SetNillableTokenCount sets the "token_count" field if the given value is not nil.
func (_u *DocumentChunkUpdate) SetNillableTokenCount(v *int) *DocumentChunkUpdate {
	if v != nil {
		_u.SetTokenCount(*v)
	}
	return _u
}

// AddTokenCount adds value to the "token_count" field.
func (_u *DocumentChunkUpdate) AddTokenCount(v int) *DocumentChunkUpdate {
	_u.mutation.AddTokenCount(v)
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *DocumentChunkUpdate) SetEmbedding(v []float32) *DocumentChunkUpdate {
	_u.mutation.SetEmbedding(v)
	return _u
}

// AppendEmbedding appends value to the "embedding" field.
func (_u *DocumentChunkUpdate) AppendEmbedding(v []float32) *DocumentChunkUpdate {
	_u.mutation.AppendEmbedding(v)
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *DocumentChunkUpdate) ClearEmbedding() *DocumentChunkUpdate {
	_u.mutation.ClearEmbedding()
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *DocumentChunkUpdate) SetDocument(v *Document) *DocumentChunkUpdate {
	return _u.SetDocumentID(v.ID)
}

// SetEvaluationID sets the "evaluation" edge to the ChunkEvaluation entity by ID.
func (_u *DocumentChunkUpdate) SetEvaluationID(id string) *DocumentChunkUpdate {
	_u.mutation.SetEvaluationID(id)
	return _u
}

// SetNillableEvaluationID sets the "evaluation" edge to the ChunkEvaluation entity by ID if the given value is not nil.
func (_u *DocumentChunkUpdate) SetNillableEvaluationID(id *string) *DocumentChunkUpdate {
	if id != nil {
		_u = _u.SetEvaluationID(*id)
	}
	return _u
}

// SetEvaluation sets the "evaluation" edge to the ChunkEvaluation entity.
func (_u *DocumentChunkUpdate) SetEvaluation(v *ChunkEvaluation) *DocumentChunkUpdate {
	return _u.SetEvaluationID(v.ID)
}

// AddSourceIDs adds the "sources" edge to the EntitySource entity by IDs.
func (_u *DocumentChunkUpdate) AddSourceIDs(ids ...string) *DocumentChunkUpdate {
	_u.mutation.AddSourceIDs(ids...)
	return _u
}

// AddSources adds the "sources" edges to the EntitySource entity.
func (_u *DocumentChunkUpdate) AddSources(v ...*EntitySource) *DocumentChunkUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSourceIDs(ids...)
}

// Mutation returns the DocumentChunkMutation object of the builder.
func (_u *DocumentChunkUpdate) Mutation() *DocumentChunkMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *DocumentChunkUpdate) ClearDocument() *DocumentChunkUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// ClearEvaluation clears the "evaluation" edge to the ChunkEvaluation entity.
func (_u *DocumentChunkUpdate) ClearEvaluation() *DocumentChunkUpdate {
	_u.mutation.ClearEvaluation()
	return _u
}

// ClearSources clears all "sources" edges to the EntitySource entity.
func (_u *DocumentChunkUpdate) ClearSources() *DocumentChunkUpdate {
	_u.mutation.ClearSources()
	return _u
}

// RemoveSourceIDs removes the "sources" edge to EntitySource entities by IDs.
func (_u *DocumentChunkUpdate) RemoveSourceIDs(ids ...string) *DocumentChunkUpdate {
	_u.mutation.RemoveSourceIDs(ids...)
	return _u
}

// RemoveSources removes "sources" edges to EntitySource entities.
func (_u *DocumentChunkUpdate) RemoveSources(v ...*EntitySource) *DocumentChunkUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSourceIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentChunkUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentChunkUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentChunkUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentChunkUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentChunkUpdate) check() error {
	if v, ok := _u.mutation.ChunkIndex(); ok {
		if err := documentchunk.ChunkIndexValidator(v); err != nil {
			return &ValidationError{Name: "chunk_index", err: fmt.Errorf(`ent: validator failed for field "DocumentChunk.chunk_index": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DocumentChunk.document"`)
	}
	return nil
}

func (_u *DocumentChunkUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(documentchunk.Table, documentchunk.Columns, sqlgraph.NewFieldSpec(documentchunk.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ChunkIndex(); ok {
		_spec.SetField(documentchunk.FieldChunkIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChunkIndex(); ok {
		_spec.AddField(documentchunk.FieldChunkIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(documentchunk.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.CharStart(); ok {
		_spec.SetField(documentchunk.FieldCharStart, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCharStart(); ok {
		_spec.AddField(documentchunk.FieldCharStart, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CharEnd(); ok {
		_spec.SetField(documentchunk.FieldCharEnd, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCharEnd(); ok {
		_spec.AddField(documentchunk.FieldCharEnd, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TokenCount(); ok {
		_spec.SetField(documentchunk.FieldTokenCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokenCount(); ok {
		_spec.AddField(documentchunk.FieldTokenCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(documentchunk.FieldEmbedding, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEmbedding(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, documentchunk.FieldEmbedding, value)
		})
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(documentchunk.FieldEmbedding, field.TypeJSON)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   documentchunk.DocumentTable,
			Columns: []string{documentchunk.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   documentchunk.DocumentTable,
			Columns: []string{documentchunk.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EvaluationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   documentchunk.EvaluationTable,
			Columns: []string{documentchunk.EvaluationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chunkevaluation.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvaluationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   documentchunk.EvaluationTable,
			Columns: []string{documentchunk.EvaluationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chunkevaluation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SourcesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documentchunk.SourcesTable,
			Columns: []string{documentchunk.SourcesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entitysource.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSourcesIDs(); len(nodes) > 0 && !_u.mutation.SourcesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documentchunk.SourcesTable,
			Columns: []string{documentchunk.SourcesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entitysource.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SourcesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documentchunk.SourcesTable,
			Columns: []string{documentchunk.SourcesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entitysource.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{documentchunk.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentChunkUpdateOne is the builder for updating a single DocumentChunk entity.
type DocumentChunkUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentChunkMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *DocumentChunkUpdateOne) SetDocumentID(v string) *DocumentChunkUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *DocumentChunkUpdateOne) SetNillableDocumentID(v *string) *DocumentChunkUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetChunkIndex sets the "chunk_index" field.
func (_u *DocumentChunkUpdateOne) SetChunkIndex(v int) *DocumentChunkUpdateOne {
	_u.mutation.ResetChunkIndex()
	_u.mutation.SetChunkIndex(v)
	return _u
}

// SetNillableChunkIndex sets the "chunk_index" field if the given value is not nil.
func (_u *DocumentChunkUpdateOne) SetNillableChunkIndex(v *int) *DocumentChunkUpdateOne {
	if v != nil {
		_u.SetChunkIndex(*v)
	}
	return _u
}

// AddChunkIndex adds value to the "chunk_index" field.
func (_u *DocumentChunkUpdateOne) AddChunkIndex(v int) *DocumentChunkUpdateOne {
	_u.mutation.AddChunkIndex(v)
	return _u
}

// SetContent sets the "content" field.
func (_u *DocumentChunkUpdateOne) SetContent(v string) *DocumentChunkUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *DocumentChunkUpdateOne) SetNillableContent(v *string) *DocumentChunkUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetCharStart sets the "char_start" field.
func (_u *DocumentChunkUpdateOne) SetCharStart(v int) *DocumentChunkUpdateOne {
	_u.mutation.ResetCharStart()
	_u.mutation.SetCharStart(v)
	return _u
}

// SetNillableCharStart sets the "char_start" field if the given value is not nil.
func (_u *DocumentChunkUpdateOne) SetNillableCharStart(v *int) *DocumentChunkUpdateOne {
	if v != nil {
		_u.SetCharStart(*v)
	}
	return _u
}

// AddCharStart adds value to the "char_start" field.
func (_u *DocumentChunkUpdateOne) AddCharStart(v int) *DocumentChunkUpdateOne {
	_u.mutation.AddCharStart(v)
	return _u
}

// SetCharEnd sets the "char_end" field.
func (_u *DocumentChunkUpdateOne) SetCharEnd(v int) *DocumentChunkUpdateOne {
	_u.mutation.ResetCharEnd()
	_u.mutation.SetCharEnd(v)
	return _u
}

// SetNillableCharEnd sets the "char_end" field if the given value is not nil.
func (_u *DocumentChunkUpdateOne) SetNillableCharEnd(v *int) *DocumentChunkUpdateOne {
	if v != nil {
		_u.SetCharEnd(*v)
	}
	return _u
}

// AddCharEnd adds value to the "char_end" field.
func (_u *DocumentChunkUpdateOne) AddCharEnd(v int) *DocumentChunkUpdateOne {
	_u.mutation.AddCharEnd(v)
	return _u
}

// SetTokenCount sets the "token_count" field.
func (_u *DocumentChunkUpdateOne) SetTokenCount(v int) *DocumentChunkUpdateOne {
	_u.mutation.ResetTokenCount()
	_u.mutation.SetTokenCount(v)
	return _u
}

// SetNillableTokenCount sets the "token_count" field if the given value is not nil.
func (_u *DocumentChunkUpdateOne) SetNillableTokenCount(v *int) *DocumentChunkUpdateOne {
	if v != nil {
		_u.SetTokenCount(*v)
	}
	return _u
}

// AddTokenCount adds value to the "token_count" field.
func (_u *DocumentChunkUpdateOne) AddTokenCount(v int) *DocumentChunkUpdateOne {
	_u.mutation.AddTokenCount(v)
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *DocumentChunkUpdateOne) SetEmbedding(v []float32) *DocumentChunkUpdateOne {
	_u.mutation.SetEmbedding(v)
	return _u
}

// AppendEmbedding appends value to the "embedding" field.
func (_u *DocumentChunkUpdateOne) AppendEmbedding(v []float32) *DocumentChunkUpdateOne {
	_u.mutation.AppendEmbedding(v)
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *DocumentChunkUpdateOne) ClearEmbedding() *DocumentChunkUpdateOne {
	_u.mutation.ClearEmbedding()
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *DocumentChunkUpdateOne) SetDocument(v *Document) *DocumentChunkUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// SetEvaluationID sets the "evaluation" edge to the ChunkEvaluation entity by ID.
func (_u *DocumentChunkUpdateOne) SetEvaluationID(id string) *DocumentChunkUpdateOne {
	_u.mutation.SetEvaluationID(id)
	return _u
}

// SetNillableEvaluationID sets the "evaluation" edge to the ChunkEvaluation entity by ID if the given value is not nil.
func (_u *DocumentChunkUpdateOne) SetNillableEvaluationID(id *string) *DocumentChunkUpdateOne {
	if id != nil {
		_u = _u.SetEvaluationID(*id)
	}
	return _u
}

// SetEvaluation sets the "evaluation" edge to the ChunkEvaluation entity.
func (_u *DocumentChunkUpdateOne) SetEvaluation(v *ChunkEvaluation) *DocumentChunkUpdateOne {
	return _u.SetEvaluationID(v.ID)
}

// AddSourceIDs adds the "sources" edge to the EntitySource entity by IDs.
func (_u *DocumentChunkUpdateOne) AddSourceIDs(ids ...string) *DocumentChunkUpdateOne {
	_u.mutation.AddSourceIDs(ids...)
	return _u
}

// AddSources adds the "sources" edges to the EntitySource entity.
func (_u *DocumentChunkUpdateOne) AddSources(v ...*EntitySource) *DocumentChunkUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSourceIDs(ids...)
}

// Mutation returns the DocumentChunkMutation object of the builder.
func (_u *DocumentChunkUpdateOne) Mutation() *DocumentChunkMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *DocumentChunkUpdateOne) ClearDocument() *DocumentChunkUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// ClearEvaluation clears the "evaluation" edge to the ChunkEvaluation entity.
func (_u *DocumentChunkUpdateOne) ClearEvaluation() *DocumentChunkUpdateOne {
	_u.mutation.ClearEvaluation()
	return _u
}

// ClearSources clears all "sources" edges to the EntitySource entity.
func (_u *DocumentChunkUpdateOne) ClearSources() *DocumentChunkUpdateOne {
	_u.mutation.ClearSources()
	return _u
}

// RemoveSourceIDs removes the "sources" edge to EntitySource entities by IDs.
func (_u *DocumentChunkUpdateOne) RemoveSourceIDs(ids ...string) *DocumentChunkUpdateOne {
	_u.mutation.RemoveSourceIDs(ids...)
	return _u
}

// RemoveSources removes "sources" edges to EntitySource entities.
func (_u *DocumentChunkUpdateOne) RemoveSources(v ...*EntitySource) *DocumentChunkUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSourceIDs(ids...)
}

// Where appends a list predicates to the DocumentChunkUpdate builder.
func (_u *DocumentChunkUpdateOne) Where(ps ...predicate.DocumentChunk) *DocumentChunkUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentChunkUpdateOne) Select(field string, fields ...string) *DocumentChunkUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DocumentChunk entity.
func (_u *DocumentChunkUpdateOne) Save(ctx context.Context) (*DocumentChunk, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentChunkUpdateOne) SaveX(ctx context.Context) *DocumentChunk {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentChunkUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentChunkUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentChunkUpdateOne) check() error {
	if v, ok := _u.mutation.ChunkIndex(); ok {
		if err := documentchunk.ChunkIndexValidator(v); err != nil {
			return &ValidationError{Name: "chunk_index", err: fmt.Errorf(`ent: validator failed for field "DocumentChunk.chunk_index": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DocumentChunk.document"`)
	}
	return nil
}

func (_u *DocumentChunkUpdateOne) sqlSave(ctx context.Context) (_node *DocumentChunk, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(documentchunk.Table, documentchunk.Columns, sqlgraph.NewFieldSpec(documentchunk.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DocumentChunk.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, documentchunk.FieldID)
		for _, f := range fields {
			if !documentchunk.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != documentchunk.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ChunkIndex(); ok {
		_spec.SetField(documentchunk.FieldChunkIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChunkIndex(); ok {
		_spec.AddField(documentchunk.FieldChunkIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(documentchunk.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.CharStart(); ok {
		_spec.SetField(documentchunk.FieldCharStart, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCharStart(); ok {
		_spec.AddField(documentchunk.FieldCharStart, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CharEnd(); ok {
		_spec.SetField(documentchunk.FieldCharEnd, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCharEnd(); ok {
		_spec.AddField(documentchunk.FieldCharEnd, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TokenCount(); ok {
		_spec.SetField(documentchunk.FieldTokenCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokenCount(); ok {
		_spec.AddField(documentchunk.FieldTokenCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(documentchunk.FieldEmbedding, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEmbedding(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, documentchunk.FieldEmbedding, value)
		})
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(documentchunk.FieldEmbedding, field.TypeJSON)
	}
	if _u.mutation.DocumentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   documentchunk.DocumentTable,
			Columns: []string{documentchunk.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   documentchunk.DocumentTable,
			Columns: []string{documentchunk.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EvaluationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   documentchunk.EvaluationTable,
			Columns: []string{documentchunk.EvaluationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chunkevaluation.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvaluationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   documentchunk.EvaluationTable,
			Columns: []string{documentchunk.EvaluationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chunkevaluation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SourcesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documentchunk.SourcesTable,
			Columns: []string{documentchunk.SourcesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entitysource.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSourcesIDs(); len(nodes) > 0 && !_u.mutation.SourcesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documentchunk.SourcesTable,
			Columns: []string{documentchunk.SourcesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entitysource.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SourcesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   documentchunk.SourcesTable,
			Columns: []string{documentchunk.SourcesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(entitysource.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DocumentChunk{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{documentchunk.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
