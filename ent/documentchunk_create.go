// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autodiag/refinery/ent/chunkevaluation"
	"github.com/autodiag/refinery/ent/document"
	"github.com/autodiag/refinery/ent/documentchunk"
	"github.com/autodiag/refinery/ent/entitysource"
)

// DocumentChunkCreate is the builder for creating a DocumentChunk entity.
type DocumentChunkCreate struct {
	config
	mutation *DocumentChunkMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *DocumentChunkCreate) SetDocumentID(v string) *DocumentChunkCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetChunkIndex sets the "chunk_index" field.
func (_c *DocumentChunkCreate) SetChunkIndex(v int) *DocumentChunkCreate {
	_c.mutation.SetChunkIndex(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *DocumentChunkCreate) SetContent(v string) *DocumentChunkCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetCharStart sets the "char_start" field.
func (_c *DocumentChunkCreate) SetCharStart(v int) *DocumentChunkCreate {
	_c.mutation.SetCharStart(v)
	return _c
}

// SetCharEnd sets the "char_end" field.
func (_c *DocumentChunkCreate) SetCharEnd(v int) *DocumentChunkCreate {
	_c.mutation.SetCharEnd(v)
	return _c
}

// SetTokenCount sets the "token_count" field.
func (_c *DocumentChunkCreate) SetTokenCount(v int) *DocumentChunkCreate {
	_c.mutation.SetTokenCount(v)
	return _c
}

// SetNillableTokenCount sets the "token_count" field if the given value is not nil.
func (_c *DocumentChunkCreate) SetNillableTokenCount(v *int) *DocumentChunkCreate {
	if v != nil {
		_c.SetTokenCount(*v)
	}
	return _c
}

// SetEmbedding sets the "embedding" field.
func (_c *DocumentChunkCreate) SetEmbedding(v []float32) *DocumentChunkCreate {
	_c.mutation.SetEmbedding(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DocumentChunkCreate) SetCreatedAt(v time.Time) *DocumentChunkCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DocumentChunkCreate) SetNillableCreatedAt(v *time.Time) *DocumentChunkCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DocumentChunkCreate) SetID(v string) *DocumentChunkCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *DocumentChunkCreate) SetDocument(v *Document) *DocumentChunkCreate {
	return _c.SetDocumentID(v.ID)
}

// SetEvaluationID sets the "evaluation" edge to the ChunkEvaluation entity by ID.
func (_c *DocumentChunkCreate) SetEvaluationID(id string) *DocumentChunkCreate {
	_c.mutation.SetEvaluationID(id)
	return _c
}

// SetNillableEvaluationID sets the "evaluation" edge to the ChunkEvaluation entity by ID if the given value is not nil.
func (_c *DocumentChunkCreate) SetNillableEvaluationID(id *string) *DocumentChunkCreate {
	if id != nil {
		_c = _c.SetEvaluationID(*id)
	}
	return _c
}

// SetEvaluation sets the "evaluation" edge to the ChunkEvaluation entity.
func (_c *DocumentChunkCreate) SetEvaluation(v *ChunkEvaluation) *DocumentChunkCreate {
	return _c.SetEvaluationID(v.ID)
}

// AddSourceIDs adds the "sources" edge to the EntitySource entity by IDs.
func (_c *DocumentChunkCreate) AddSourceIDs(ids ...string) *DocumentChunkCreate {
	_c.mutation.AddSourceIDs(ids...)
	return _c
}

// AddSources adds the "sources" edges to the EntitySource entity.
func (_c *DocumentChunkCreate) AddSources(v ...*EntitySource) *DocumentChunkCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSourceIDs(ids...)
}

// Mutation returns the DocumentChunkMutation object of the builder.
func (_c *DocumentChunkCreate) Mutation() *DocumentChunkMutation {
	return _c.mutation
}

// Save creates the DocumentChunk in the database.
func (_c *DocumentChunkCreate) Save(ctx context.Context) (*DocumentChunk, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DocumentChunkCreate) SaveX(ctx context.Context) *DocumentChunk {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentChunkCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentChunkCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DocumentChunkCreate) defaults() {
	if _, ok := _c.mutation.TokenCount(); !ok {
		v := documentchunk.DefaultTokenCount
		_c.mutation.SetTokenCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := documentchunk.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DocumentChunkCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "DocumentChunk.document_id"`)}
	}
	if _, ok := _c.mutation.ChunkIndex(); !ok {
		return &ValidationError{Name: "chunk_index", err: errors.New(`ent: missing required field "DocumentChunk.chunk_index"`)}
	}
	if v, ok := _c.mutation.ChunkIndex(); ok {
		if err := documentchunk.ChunkIndexValidator(v); err != nil {
			return &ValidationError{Name: "chunk_index", err: fmt.Errorf(`ent: validator failed for field "DocumentChunk.chunk_index": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "DocumentChunk.content"`)}
	}
	if _, ok := _c.mutation.CharStart(); !ok {
		return &ValidationError{Name: "char_start", err: errors.New(`ent: missing required field "DocumentChunk.char_start"`)}
	}
	if _, ok := _c.mutation.CharEnd(); !ok {
		return &ValidationError{Name: "char_end", err: errors.New(`ent: missing required field "DocumentChunk.char_end"`)}
	}
	if _, ok := _c.mutation.TokenCount(); !ok {
		return &ValidationError{Name: "token_count", err: errors.New(`ent: missing required field "DocumentChunk.token_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DocumentChunk.created_at"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "DocumentChunk.document"`)}
	}
	return nil
}

func (_c *DocumentChunkCreate) sqlSave(ctx context.Context) (*DocumentChunk, error) {
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
			return nil, fmt.Errorf("unexpected DocumentChunk.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DocumentChunkCreate) createSpec() (*DocumentChunk, *sqlgraph.CreateSpec) {
	var (
		_node = &DocumentChunk{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(documentchunk.Table, sqlgraph.NewFieldSpec(documentchunk.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ChunkIndex(); ok {
		_spec.SetField(documentchunk.FieldChunkIndex, field.TypeInt, value)
		_node.ChunkIndex = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(documentchunk.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.CharStart(); ok {
		_spec.SetField(documentchunk.FieldCharStart, field.TypeInt, value)
		_node.CharStart = value
	}
	if value, ok := _c.mutation.CharEnd(); ok {
		_spec.SetField(documentchunk.FieldCharEnd, field.TypeInt, value)
		_node.CharEnd = value
	}
	if value, ok := _c.mutation.TokenCount(); ok {
		_spec.SetField(documentchunk.FieldTokenCount, field.TypeInt, value)
		_node.TokenCount = value
	}
	if value, ok := _c.mutation.Embedding(); ok {
		_spec.SetField(documentchunk.FieldEmbedding, field.TypeJSON, value)
		_node.Embedding = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(documentchunk.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EvaluationIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SourcesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DocumentChunkCreateBulk is the builder for creating many DocumentChunk entities in bulk.
type DocumentChunkCreateBulk struct {
	config
	err      error
	builders []*DocumentChunkCreate
}

// Save creates the DocumentChunk entities in the database.
func (_c *DocumentChunkCreateBulk) Save(ctx context.Context) ([]*DocumentChunk, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DocumentChunk, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DocumentChunkMutation)
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
func (_c *DocumentChunkCreateBulk) SaveX(ctx context.Context) []*DocumentChunk {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentChunkCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentChunkCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
