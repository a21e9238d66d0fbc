// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/autodiag/refinery/ent/extractedcategory"
	"github.com/autodiag/refinery/ent/predicate"
)

// ExtractedCategoryUpdate is the builder for updating ExtractedCategory entities.
type ExtractedCategoryUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractedCategoryMutation
}

// Where appends a list predicates to the ExtractedCategoryUpdate builder.
func (_u *ExtractedCategoryUpdate) Where(ps ...predicate.ExtractedCategory) *ExtractedCategoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *ExtractedCategoryUpdate) SetDocumentID(v string) *ExtractedCategoryUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ExtractedCategoryUpdate) SetNillableDocumentID(v *string) *ExtractedCategoryUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *ExtractedCategoryUpdate) SetCategory(v string) *ExtractedCategoryUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ExtractedCategoryUpdate) SetNillableCategory(v *string) *ExtractedCategoryUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetSourceChunkID sets the "source_chunk_id" field.
func (_u *ExtractedCategoryUpdate) SetSourceChunkID(v string) *ExtractedCategoryUpdate {
	_u.mutation.SetSourceChunkID(v)
	return _u
}

// SetNillableSourceChunkID sets the "source_chunk_id" field if the given value is not nil.
func (_u *ExtractedCategoryUpdate) SetNillableSourceChunkID(v *string) *ExtractedCategoryUpdate {
	if v != nil {
		_u.SetSourceChunkID(*v)
	}
	return _u
}

// Mutation returns the ExtractedCategoryMutation object of the builder.
func (_u *ExtractedCategoryUpdate) Mutation() *ExtractedCategoryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractedCategoryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractedCategoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractedCategoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractedCategoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ExtractedCategoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(extractedcategory.Table, extractedcategory.Columns, sqlgraph.NewFieldSpec(extractedcategory.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocumentID(); ok {
		_spec.SetField(extractedcategory.FieldDocumentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(extractedcategory.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceChunkID(); ok {
		_spec.SetField(extractedcategory.FieldSourceChunkID, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractedcategory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractedCategoryUpdateOne is the builder for updating a single ExtractedCategory entity.
type ExtractedCategoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractedCategoryMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *ExtractedCategoryUpdateOne) SetDocumentID(v string) *ExtractedCategoryUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *ExtractedCategoryUpdateOne) SetNillableDocumentID(v *string) *ExtractedCategoryUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *ExtractedCategoryUpdateOne) SetCategory(v string) *ExtractedCategoryUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ExtractedCategoryUpdateOne) SetNillableCategory(v *string) *ExtractedCategoryUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetSourceChunkID sets the "source_chunk_id" field.
func (_u *ExtractedCategoryUpdateOne) SetSourceChunkID(v string) *ExtractedCategoryUpdateOne {
	_u.mutation.SetSourceChunkID(v)
	return _u
}

// SetNillableSourceChunkID sets the "source_chunk_id" field if the given value is not nil.
func (_u *ExtractedCategoryUpdateOne) SetNillableSourceChunkID(v *string) *ExtractedCategoryUpdateOne {
	if v != nil {
		_u.SetSourceChunkID(*v)
	}
	return _u
}

// Mutation returns the ExtractedCategoryMutation object of the builder.
func (_u *ExtractedCategoryUpdateOne) Mutation() *ExtractedCategoryMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExtractedCategoryUpdate builder.
func (_u *ExtractedCategoryUpdateOne) Where(ps ...predicate.ExtractedCategory) *ExtractedCategoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractedCategoryUpdateOne) Select(field string, fields ...string) *ExtractedCategoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractedCategory entity.
func (_u *ExtractedCategoryUpdateOne) Save(ctx context.Context) (*ExtractedCategory, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractedCategoryUpdateOne) SaveX(ctx context.Context) *ExtractedCategory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractedCategoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractedCategoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ExtractedCategoryUpdateOne) sqlSave(ctx context.Context) (_node *ExtractedCategory, err error) {
	_spec := sqlgraph.NewUpdateSpec(extractedcategory.Table, extractedcategory.Columns, sqlgraph.NewFieldSpec(extractedcategory.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractedCategory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractedcategory.FieldID)
		for _, f := range fields {
			if !extractedcategory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractedcategory.FieldID {
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
	if value, ok := _u.mutation.DocumentID(); ok {
		_spec.SetField(extractedcategory.FieldDocumentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(extractedcategory.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceChunkID(); ok {
		_spec.SetField(extractedcategory.FieldSourceChunkID, field.TypeString, value)
	}
	_node = &ExtractedCategory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractedcategory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
