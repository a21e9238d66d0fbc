// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autodiag/refinery/ent/document"
	"github.com/autodiag/refinery/ent/documentchunk"
	"github.com/autodiag/refinery/ent/predicate"
	"github.com/autodiag/refinery/ent/processinglog"
)

// DocumentUpdate is the builder for updating Document entities.
type DocumentUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentMutation
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdate) Where(ps ...predicate.Document) *DocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *DocumentUpdate) SetTitle(v string) *DocumentUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableTitle(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSourceURL sets the "source_url" field.
func (_u *DocumentUpdate) SetSourceURL(v string) *DocumentUpdate {
	_u.mutation.SetSourceURL(v)
	return _u
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableSourceURL(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetSourceURL(*v)
	}
	return _u
}

// ClearSourceURL clears the value of the "source_url" field.
func (_u *DocumentUpdate) ClearSourceURL() *DocumentUpdate {
	_u.mutation.ClearSourceURL()
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *DocumentUpdate) SetContentHash(v string) *DocumentUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableContentHash(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *DocumentUpdate) SetMimeType(v string) *DocumentUpdate {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableMimeType(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// SetBlobBucket sets the "blob_bucket" field.
func (_u *DocumentUpdate) SetBlobBucket(v string) *DocumentUpdate {
	_u.mutation.SetBlobBucket(v)
	return _u
}

// SetNillableBlobBucket sets the "blob_bucket" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableBlobBucket(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetBlobBucket(*v)
	}
	return _u
}

// ClearBlobBucket clears the value of the "blob_bucket" field.
func (_u *DocumentUpdate) ClearBlobBucket() *DocumentUpdate {
	_u.mutation.ClearBlobBucket()
	return _u
}

// SetBlobKey sets the "blob_key" field.
func (_u *DocumentUpdate) SetBlobKey(v string) *DocumentUpdate {
	_u.mutation.SetBlobKey(v)
	return _u
}

// SetNillableBlobKey sets the "blob_key" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableBlobKey(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetBlobKey(*v)
	}
	return _u
}

// ClearBlobKey clears the value of the "blob_key" field.
func (_u *DocumentUpdate) ClearBlobKey() *DocumentUpdate {
	_u.mutation.ClearBlobKey()
	return _u
}

// SetProcessingStage sets the "processing_stage" field.
func (_u *DocumentUpdate) SetProcessingStage(v document.ProcessingStage) *DocumentUpdate {
	_u.mutation.SetProcessingStage(v)
	return _u
}

// SetNillableProcessingStage sets the "processing_stage" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableProcessingStage(v *document.ProcessingStage) *DocumentUpdate {
	if v != nil {
		_u.SetProcessingStage(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DocumentUpdate) SetErrorMessage(v string) *DocumentUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableErrorMessage(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *DocumentUpdate) ClearErrorMessage() *DocumentUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetChunkCount sets the "chunk_count" field.
func (_u *DocumentUpdate) SetChunkCount(v int) *DocumentUpdate {
	_u.mutation.ResetChunkCount()
	_u.mutation.SetChunkCount(v)
	return _u
}

// SetNillableChunkCount sets the "chunk_count" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableChunkCount(v *int) *DocumentUpdate {
	if v != nil {
		_u.SetChunkCount(*v)
	}
	return _u
}

// AddChunkCount adds value to the "chunk_count" field.
func (_u *DocumentUpdate) AddChunkCount(v int) *DocumentUpdate {
	_u.mutation.AddChunkCount(v)
	return _u
}

// SetDocumentCategory sets the "document_category" field.
func (_u *DocumentUpdate) SetDocumentCategory(v string) *DocumentUpdate {
	_u.mutation.SetDocumentCategory(v)
	return _u
}

// SetNillableDocumentCategory sets the "document_category" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableDocumentCategory(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetDocumentCategory(*v)
	}
	return _u
}

// ClearDocumentCategory clears the value of the "document_category" field.
func (_u *DocumentUpdate) ClearDocumentCategory() *DocumentUpdate {
	_u.mutation.ClearDocumentCategory()
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *DocumentUpdate) SetConfidenceScore(v float64) *DocumentUpdate {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableConfidenceScore(v *float64) *DocumentUpdate {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *DocumentUpdate) AddConfidenceScore(v float64) *DocumentUpdate {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// ClearConfidenceScore clears the value of the "confidence_score" field.
func (_u *DocumentUpdate) ClearConfidenceScore() *DocumentUpdate {
	_u.mutation.ClearConfidenceScore()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocumentUpdate) SetUpdatedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddChunkIDs adds the "chunks" edge to the DocumentChunk entity by IDs.
func (_u *DocumentUpdate) AddChunkIDs(ids ...string) *DocumentUpdate {
	_u.mutation.AddChunkIDs(ids...)
	return _u
}

// AddChunks adds the "chunks" edges to the DocumentChunk entity.
func (_u *DocumentUpdate) AddChunks(v ...*DocumentChunk) *DocumentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChunkIDs(ids...)
}

// AddProcessingLogIDs adds the "processing_logs" edge to the ProcessingLog entity by IDs.
func (_u *DocumentUpdate) AddProcessingLogIDs(ids ...string) *DocumentUpdate {
	_u.mutation.AddProcessingLogIDs(ids...)
	return _u
}

// AddProcessingLogs adds the "processing_logs" edges to the ProcessingLog entity.
func (_u *DocumentUpdate) AddProcessingLogs(v ...*ProcessingLog) *DocumentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddProcessingLogIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdate) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearChunks clears all "chunks" edges to the DocumentChunk entity.
func (_u *DocumentUpdate) ClearChunks() *DocumentUpdate {
	_u.mutation.ClearChunks()
	return _u
}

// RemoveChunkIDs removes the "chunks" edge to DocumentChunk entities by IDs.
func (_u *DocumentUpdate) RemoveChunkIDs(ids ...string) *DocumentUpdate {
	_u.mutation.RemoveChunkIDs(ids...)
	return _u
}

// RemoveChunks removes "chunks" edges to DocumentChunk entities.
func (_u *DocumentUpdate) RemoveChunks(v ...*DocumentChunk) *DocumentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChunkIDs(ids...)
}

// ClearProcessingLogs clears all "processing_logs" edges to the ProcessingLog entity.
func (_u *DocumentUpdate) ClearProcessingLogs() *DocumentUpdate {
	_u.mutation.ClearProcessingLogs()
	return _u
}

// RemoveProcessingLogIDs removes the "processing_logs" edge to ProcessingLog entities by IDs.
func (_u *DocumentUpdate) RemoveProcessingLogIDs(ids ...string) *DocumentUpdate {
	_u.mutation.RemoveProcessingLogIDs(ids...)
	return _u
}

// RemoveProcessingLogs removes "processing_logs" edges to ProcessingLog entities.
func (_u *DocumentUpdate) RemoveProcessingLogs(v ...*ProcessingLog) *DocumentUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveProcessingLogIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := document.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdate) check() error {
	if v, ok := _u.mutation.ProcessingStage(); ok {
		if err := document.ProcessingStageValidator(v); err != nil {
			return &ValidationError{Name: "processing_stage", err: fmt.Errorf(`ent: validator failed for field "Document.processing_stage": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(document.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceURL(); ok {
		_spec.SetField(document.FieldSourceURL, field.TypeString, value)
	}
	if _u.mutation.SourceURLCleared() {
		_spec.ClearField(document.FieldSourceURL, field.TypeString)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(document.FieldContentHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(document.FieldMimeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.BlobBucket(); ok {
		_spec.SetField(document.FieldBlobBucket, field.TypeString, value)
	}
	if _u.mutation.BlobBucketCleared() {
		_spec.ClearField(document.FieldBlobBucket, field.TypeString)
	}
	if value, ok := _u.mutation.BlobKey(); ok {
		_spec.SetField(document.FieldBlobKey, field.TypeString, value)
	}
	if _u.mutation.BlobKeyCleared() {
		_spec.ClearField(document.FieldBlobKey, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessingStage(); ok {
		_spec.SetField(document.FieldProcessingStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(document.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(document.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ChunkCount(); ok {
		_spec.SetField(document.FieldChunkCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChunkCount(); ok {
		_spec.AddField(document.FieldChunkCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DocumentCategory(); ok {
		_spec.SetField(document.FieldDocumentCategory, field.TypeString, value)
	}
	if _u.mutation.DocumentCategoryCleared() {
		_spec.ClearField(document.FieldDocumentCategory, field.TypeString)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(document.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(document.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceScoreCleared() {
		_spec.ClearField(document.FieldConfidenceScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ChunksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.ChunksTable,
			Columns: []string{document.ChunksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentchunk.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChunksIDs(); len(nodes) > 0 && !_u.mutation.ChunksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.ChunksTable,
			Columns: []string{document.ChunksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentchunk.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChunksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.ChunksTable,
			Columns: []string{document.ChunksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentchunk.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProcessingLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.ProcessingLogsTable,
			Columns: []string{document.ProcessingLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processinglog.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedProcessingLogsIDs(); len(nodes) > 0 && !_u.mutation.ProcessingLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.ProcessingLogsTable,
			Columns: []string{document.ProcessingLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processinglog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProcessingLogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.ProcessingLogsTable,
			Columns: []string{document.ProcessingLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processinglog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentUpdateOne is the builder for updating a single Document entity.
type DocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentMutation
}

// SetTitle sets the "title" field.
func (_u *DocumentUpdateOne) SetTitle(v string) *DocumentUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableTitle(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetSourceURL sets the "source_url" field.
func (_u *DocumentUpdateOne) SetSourceURL(v string) *DocumentUpdateOne {
	_u.mutation.SetSourceURL(v)
	return _u
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableSourceURL(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetSourceURL(*v)
	}
	return _u
}

// ClearSourceURL clears the value of the "source_url" field.
func (_u *DocumentUpdateOne) ClearSourceURL() *DocumentUpdateOne {
	_u.mutation.ClearSourceURL()
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *DocumentUpdateOne) SetContentHash(v string) *DocumentUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetNillableContentHash sets the "content_hash" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableContentHash(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetContentHash(*v)
	}
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *DocumentUpdateOne) SetMimeType(v string) *DocumentUpdateOne {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableMimeType(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// SetBlobBucket sets the "blob_bucket" field.
func (_u *DocumentUpdateOne) SetBlobBucket(v string) *DocumentUpdateOne {
	_u.mutation.SetBlobBucket(v)
	return _u
}

// SetNillableBlobBucket sets the "blob_bucket" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableBlobBucket(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetBlobBucket(*v)
	}
	return _u
}

// ClearBlobBucket clears the value of the "blob_bucket" field.
func (_u *DocumentUpdateOne) ClearBlobBucket() *DocumentUpdateOne {
	_u.mutation.ClearBlobBucket()
	return _u
}

// SetBlobKey sets the "blob_key" field.
func (_u *DocumentUpdateOne) SetBlobKey(v string) *DocumentUpdateOne {
	_u.mutation.SetBlobKey(v)
	return _u
}

// SetNillableBlobKey sets the "blob_key" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableBlobKey(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetBlobKey(*v)
	}
	return _u
}

// ClearBlobKey clears the value of the "blob_key" field.
func (_u *DocumentUpdateOne) ClearBlobKey() *DocumentUpdateOne {
	_u.mutation.ClearBlobKey()
	return _u
}

// SetProcessingStage sets the "processing_stage" field.
func (_u *DocumentUpdateOne) SetProcessingStage(v document.ProcessingStage) *DocumentUpdateOne {
	_u.mutation.SetProcessingStage(v)
	return _u
}

// SetNillableProcessingStage sets the "processing_stage" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableProcessingStage(v *document.ProcessingStage) *DocumentUpdateOne {
	if v != nil {
		_u.SetProcessingStage(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DocumentUpdateOne) SetErrorMessage(v string) *DocumentUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableErrorMessage(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *DocumentUpdateOne) ClearErrorMessage() *DocumentUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetChunkCount sets the "chunk_count" field.
func (_u *DocumentUpdateOne) SetChunkCount(v int) *DocumentUpdateOne {
	_u.mutation.ResetChunkCount()
	_u.mutation.SetChunkCount(v)
	return _u
}

// SetNillableChunkCount sets the "chunk_count" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableChunkCount(v *int) *DocumentUpdateOne {
	if v != nil {
		_u.SetChunkCount(*v)
	}
	return _u
}

// AddChunkCount adds value to the "chunk_count" field.
func (_u *DocumentUpdateOne) AddChunkCount(v int) *DocumentUpdateOne {
	_u.mutation.AddChunkCount(v)
	return _u
}

// SetDocumentCategory sets the "document_category" field.
func (_u *DocumentUpdateOne) SetDocumentCategory(v string) *DocumentUpdateOne {
	_u.mutation.SetDocumentCategory(v)
	return _u
}

// SetNillableDocumentCategory sets the "document_category" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableDocumentCategory(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetDocumentCategory(*v)
	}
	return _u
}

// ClearDocumentCategory clears the value of the "document_category" field.
func (_u *DocumentUpdateOne) ClearDocumentCategory() *DocumentUpdateOne {
	_u.mutation.ClearDocumentCategory()
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *DocumentUpdateOne) SetConfidenceScore(v float64) *DocumentUpdateOne {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableConfidenceScore(v *float64) *DocumentUpdateOne {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *DocumentUpdateOne) AddConfidenceScore(v float64) *DocumentUpdateOne {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// ClearConfidenceScore clears the value of the "confidence_score" field.
func (_u *DocumentUpdateOne) ClearConfidenceScore() *DocumentUpdateOne {
	_u.mutation.ClearConfidenceScore()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocumentUpdateOne) SetUpdatedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddChunkIDs adds the "chunks" edge to the DocumentChunk entity by IDs.
func (_u *DocumentUpdateOne) AddChunkIDs(ids ...string) *DocumentUpdateOne {
	_u.mutation.AddChunkIDs(ids...)
	return _u
}

// AddChunks adds the "chunks" edges to the DocumentChunk entity.
func (_u *DocumentUpdateOne) AddChunks(v ...*DocumentChunk) *DocumentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChunkIDs(ids...)
}

// AddProcessingLogIDs adds the "processing_logs" edge to the ProcessingLog entity by IDs.
func (_u *DocumentUpdateOne) AddProcessingLogIDs(ids ...string) *DocumentUpdateOne {
	_u.mutation.AddProcessingLogIDs(ids...)
	return _u
}

// AddProcessingLogs adds the "processing_logs" edges to the ProcessingLog entity.
func (_u *DocumentUpdateOne) AddProcessingLogs(v ...*ProcessingLog) *DocumentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddProcessingLogIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdateOne) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearChunks clears all "chunks" edges to the DocumentChunk entity.
func (_u *DocumentUpdateOne) ClearChunks() *DocumentUpdateOne {
	_u.mutation.ClearChunks()
	return _u
}

// RemoveChunkIDs removes the "chunks" edge to DocumentChunk entities by IDs.
func (_u *DocumentUpdateOne) RemoveChunkIDs(ids ...string) *DocumentUpdateOne {
	_u.mutation.RemoveChunkIDs(ids...)
	return _u
}

// RemoveChunks removes "chunks" edges to DocumentChunk entities.
func (_u *DocumentUpdateOne) RemoveChunks(v ...*DocumentChunk) *DocumentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChunkIDs(ids...)
}

// ClearProcessingLogs clears all "processing_logs" edges to the ProcessingLog entity.
func (_u *DocumentUpdateOne) ClearProcessingLogs() *DocumentUpdateOne {
	_u.mutation.ClearProcessingLogs()
	return _u
}

// RemoveProcessingLogIDs removes the "processing_logs" edge to ProcessingLog entities by IDs.
func (_u *DocumentUpdateOne) RemoveProcessingLogIDs(ids ...string) *DocumentUpdateOne {
	_u.mutation.RemoveProcessingLogIDs(ids...)
	return _u
}

// RemoveProcessingLogs removes "processing_logs" edges to ProcessingLog entities.
func (_u *DocumentUpdateOne) RemoveProcessingLogs(v ...*ProcessingLog) *DocumentUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveProcessingLogIDs(ids...)
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdateOne) Where(ps ...predicate.Document) *DocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentUpdateOne) Select(field string, fields ...string) *DocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Document entity.
func (_u *DocumentUpdateOne) Save(ctx context.Context) (*Document, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdateOne) SaveX(ctx context.Context) *Document {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := document.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdateOne) check() error {
	if v, ok := _u.mutation.ProcessingStage(); ok {
		if err := document.ProcessingStageValidator(v); err != nil {
			return &ValidationError{Name: "processing_stage", err: fmt.Errorf(`ent: validator failed for field "Document.processing_stage": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentUpdateOne) sqlSave(ctx context.Context) (_node *Document, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Document.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, document.FieldID)
		for _, f := range fields {
			if !document.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != document.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(document.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceURL(); ok {
		_spec.SetField(document.FieldSourceURL, field.TypeString, value)
	}
	if _u.mutation.SourceURLCleared() {
		_spec.ClearField(document.FieldSourceURL, field.TypeString)
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(document.FieldContentHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(document.FieldMimeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.BlobBucket(); ok {
		_spec.SetField(document.FieldBlobBucket, field.TypeString, value)
	}
	if _u.mutation.BlobBucketCleared() {
		_spec.ClearField(document.FieldBlobBucket, field.TypeString)
	}
	if value, ok := _u.mutation.BlobKey(); ok {
		_spec.SetField(document.FieldBlobKey, field.TypeString, value)
	}
	if _u.mutation.BlobKeyCleared() {
		_spec.ClearField(document.FieldBlobKey, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessingStage(); ok {
		_spec.SetField(document.FieldProcessingStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(document.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(document.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ChunkCount(); ok {
		_spec.SetField(document.FieldChunkCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChunkCount(); ok {
		_spec.AddField(document.FieldChunkCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DocumentCategory(); ok {
		_spec.SetField(document.FieldDocumentCategory, field.TypeString, value)
	}
	if _u.mutation.DocumentCategoryCleared() {
		_spec.ClearField(document.FieldDocumentCategory, field.TypeString)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(document.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(document.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceScoreCleared() {
		_spec.ClearField(document.FieldConfidenceScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ChunksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.ChunksTable,
			Columns: []string{document.ChunksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentchunk.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChunksIDs(); len(nodes) > 0 && !_u.mutation.ChunksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.ChunksTable,
			Columns: []string{document.ChunksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentchunk.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChunksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.ChunksTable,
			Columns: []string{document.ChunksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(documentchunk.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProcessingLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.ProcessingLogsTable,
			Columns: []string{document.ProcessingLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processinglog.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedProcessingLogsIDs(); len(nodes) > 0 && !_u.mutation.ProcessingLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.ProcessingLogsTable,
			Columns: []string{document.ProcessingLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processinglog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProcessingLogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.ProcessingLogsTable,
			Columns: []string{document.ProcessingLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(processinglog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Document{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
