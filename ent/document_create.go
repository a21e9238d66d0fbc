// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autodiag/refinery/ent/document"
	"github.com/autodiag/refinery/ent/documentchunk"
	"github.com/autodiag/refinery/ent/processinglog"
)

// DocumentCreate is the builder for creating a Document entity.
type DocumentCreate struct {
	config
	mutation *DocumentMutation
	hooks    []Hook
}

// SetTitle sets the "title" field.
func (_c *DocumentCreate) SetTitle(v string) *DocumentCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableTitle(v *string) *DocumentCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetSourceURL sets the "source_url" field.
func (_c *DocumentCreate) SetSourceURL(v string) *DocumentCreate {
	_c.mutation.SetSourceURL(v)
	return _c
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableSourceURL(v *string) *DocumentCreate {
	if v != nil {
		_c.SetSourceURL(*v)
	}
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *DocumentCreate) SetContentHash(v string) *DocumentCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetMimeType sets the "mime_type" field.
func (_c *DocumentCreate) SetMimeType(v string) *DocumentCreate {
	_c.mutation.SetMimeType(v)
	return _c
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableMimeType(v *string) *DocumentCreate {
	if v != nil {
		_c.SetMimeType(*v)
	}
	return _c
}

// SetBlobBucket sets the "blob_bucket" field.
func (_c *DocumentCreate) SetBlobBucket(v string) *DocumentCreate {
	_c.mutation.SetBlobBucket(v)
	return _c
}

// SetNillableBlobBucket sets the "blob_bucket" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableBlobBucket(v *string) *DocumentCreate {
	if v != nil {
		_c.SetBlobBucket(*v)
	}
	return _c
}

// SetBlobKey sets the "blob_key" field.
func (_c *DocumentCreate) SetBlobKey(v string) *DocumentCreate {
	_c.mutation.SetBlobKey(v)
	return _c
}

// SetNillableBlobKey sets the "blob_key" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableBlobKey(v *string) *DocumentCreate {
	if v != nil {
		_c.SetBlobKey(*v)
	}
	return _c
}

// SetProcessingStage sets the "processing_stage" field.
func (_c *DocumentCreate) SetProcessingStage(v document.ProcessingStage) *DocumentCreate {
	_c.mutation.SetProcessingStage(v)
	return _c
}

// SetNillableProcessingStage sets the "processing_stage" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableProcessingStage(v *document.ProcessingStage) *DocumentCreate {
	if v != nil {
		_c.SetProcessingStage(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *DocumentCreate) SetErrorMessage(v string) *DocumentCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableErrorMessage(v *string) *DocumentCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetChunkCount sets the "chunk_count" field.
func (_c *DocumentCreate) SetChunkCount(v int) *DocumentCreate {
	_c.mutation.SetChunkCount(v)
	return _c
}

// SetNillableChunkCount sets the "chunk_count" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableChunkCount(v *int) *DocumentCreate {
	if v != nil {
		_c.SetChunkCount(*v)
	}
	return _c
}

// SetDocumentCategory sets the "document_category" field.
func (_c *DocumentCreate) SetDocumentCategory(v string) *DocumentCreate {
	_c.mutation.SetDocumentCategory(v)
	return _c
}

// SetNillableDocumentCategory sets the "document_category" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableDocumentCategory(v *string) *DocumentCreate {
	if v != nil {
		_c.SetDocumentCategory(*v)
	}
	return _c
}

// SetConfidenceScore sets the "confidence_score" field.
func (_c *DocumentCreate) SetConfidenceScore(v float64) *DocumentCreate {
	_c.mutation.SetConfidenceScore(v)
	return _c
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableConfidenceScore(v *float64) *DocumentCreate {
	if v != nil {
		_c.SetConfidenceScore(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DocumentCreate) SetCreatedAt(v time.Time) *DocumentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableCreatedAt(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DocumentCreate) SetUpdatedAt(v time.Time) *DocumentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableUpdatedAt(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DocumentCreate) SetID(v string) *DocumentCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddChunkIDs adds the "chunks" edge to the DocumentChunk entity by IDs.
func (_c *DocumentCreate) AddChunkIDs(ids ...string) *DocumentCreate {
	_c.mutation.AddChunkIDs(ids...)
	return _c
}

// AddChunks adds the "chunks" edges to the DocumentChunk entity.
func (_c *DocumentCreate) AddChunks(v ...*DocumentChunk) *DocumentCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddChunkIDs(ids...)
}

// AddProcessingLogIDs adds the "processing_logs" edge to the ProcessingLog entity by IDs.
func (_c *DocumentCreate) AddProcessingLogIDs(ids ...string) *DocumentCreate {
	_c.mutation.AddProcessingLogIDs(ids...)
	return _c
}

// AddProcessingLogs adds the "processing_logs" edges to the ProcessingLog entity.
func (_c *DocumentCreate) AddProcessingLogs(v ...*ProcessingLog) *DocumentCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddProcessingLogIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_c *DocumentCreate) Mutation() *DocumentMutation {
	return _c.mutation
}

// Save creates the Document in the database.
func (_c *DocumentCreate) Save(ctx context.Context) (*Document, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DocumentCreate) SaveX(ctx context.Context) *Document {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DocumentCreate) defaults() {
	if _, ok := _c.mutation.Title(); !ok {
		v := document.DefaultTitle
		_c.mutation.SetTitle(v)
	}
	if _, ok := _c.mutation.MimeType(); !ok {
		v := document.DefaultMimeType
		_c.mutation.SetMimeType(v)
	}
	if _, ok := _c.mutation.ProcessingStage(); !ok {
		v := document.DefaultProcessingStage
		_c.mutation.SetProcessingStage(v)
	}
	if _, ok := _c.mutation.ChunkCount(); !ok {
		v := document.DefaultChunkCount
		_c.mutation.SetChunkCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := document.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := document.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DocumentCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Document.title"`)}
	}
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "Document.content_hash"`)}
	}
	if _, ok := _c.mutation.MimeType(); !ok {
		return &ValidationError{Name: "mime_type", err: errors.New(`ent: missing required field "Document.mime_type"`)}
	}
	if _, ok := _c.mutation.ProcessingStage(); !ok {
		return &ValidationError{Name: "processing_stage", err: errors.New(`ent: missing required field "Document.processing_stage"`)}
	}
	if v, ok := _c.mutation.ProcessingStage(); ok {
		if err := document.ProcessingStageValidator(v); err != nil {
			return &ValidationError{Name: "processing_stage", err: fmt.Errorf(`ent: validator failed for field "Document.processing_stage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ChunkCount(); !ok {
		return &ValidationError{Name: "chunk_count", err: errors.New(`ent: missing required field "Document.chunk_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Document.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Document.updated_at"`)}
	}
	return nil
}

func (_c *DocumentCreate) sqlSave(ctx context.Context) (*Document, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Document.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DocumentCreate) createSpec() (*Document, *sqlgraph.CreateSpec) {
	var (
		_node = &Document{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(document.Table, sqlgraph.NewFieldSpec(document.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(document.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.SourceURL(); ok {
		_spec.SetField(document.FieldSourceURL, field.TypeString, value)
		_node.SourceURL = &value
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(document.FieldContentHash, field.TypeString, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.MimeType(); ok {
		_spec.SetField(document.FieldMimeType, field.TypeString, value)
		_node.MimeType = value
	}
	if value, ok := _c.mutation.BlobBucket(); ok {
		_spec.SetField(document.FieldBlobBucket, field.TypeString, value)
		_node.BlobBucket = &value
	}
	if value, ok := _c.mutation.BlobKey(); ok {
		_spec.SetField(document.FieldBlobKey, field.TypeString, value)
		_node.BlobKey = &value
	}
	if value, ok := _c.mutation.ProcessingStage(); ok {
		_spec.SetField(document.FieldProcessingStage, field.TypeEnum, value)
		_node.ProcessingStage = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(document.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.ChunkCount(); ok {
		_spec.SetField(document.FieldChunkCount, field.TypeInt, value)
		_node.ChunkCount = value
	}
	if value, ok := _c.mutation.DocumentCategory(); ok {
		_spec.SetField(document.FieldDocumentCategory, field.TypeString, value)
		_node.DocumentCategory = &value
	}
	if value, ok := _c.mutation.ConfidenceScore(); ok {
		_spec.SetField(document.FieldConfidenceScore, field.TypeFloat64, value)
		_node.ConfidenceScore = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(document.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ChunksIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ProcessingLogsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DocumentCreateBulk is the builder for creating many Document entities in bulk.
type DocumentCreateBulk struct {
	config
	err      error
	builders []*DocumentCreate
}

// Save creates the Document entities in the database.
func (_c *DocumentCreateBulk) Save(ctx context.Context) ([]*Document, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Document, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DocumentMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DocumentCreateBulk) SaveX(ctx context.Context) []*Document {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
