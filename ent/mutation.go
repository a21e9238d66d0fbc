// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/autodiag/refinery/ent/chunkevaluation"
	"github.com/autodiag/refinery/ent/crawlrequest"
	"github.com/autodiag/refinery/ent/document"
	"github.com/autodiag/refinery/ent/documentchunk"
	"github.com/autodiag/refinery/ent/dtccause"
	"github.com/autodiag/refinery/ent/dtcdiagnosticstep"
	"github.com/autodiag/refinery/ent/dtcmaster"
	"github.com/autodiag/refinery/ent/dtcrelatedsensor"
	"github.com/autodiag/refinery/ent/entitysource"
	"github.com/autodiag/refinery/ent/extractedcategory"
	"github.com/autodiag/refinery/ent/extractedcause"
	"github.com/autodiag/refinery/ent/extracteddtc"
	"github.com/autodiag/refinery/ent/extractedsensor"
	"github.com/autodiag/refinery/ent/extractedstep"
	"github.com/autodiag/refinery/ent/extractedtsb"
	"github.com/autodiag/refinery/ent/predicate"
	"github.com/autodiag/refinery/ent/processinglog"
	"github.com/autodiag/refinery/ent/resolutionlog"
	"github.com/autodiag/refinery/ent/sensor"
	"github.com/autodiag/refinery/ent/tsbbulletin"
	"github.com/autodiag/refinery/ent/vehicle"
	"github.com/autodiag/refinery/ent/vehicledtc"
	"github.com/autodiag/refinery/ent/vehiclemention"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeChunkEvaluation   = "ChunkEvaluation"
	TypeCrawlRequest      = "CrawlRequest"
	TypeDTCCause          = "DTCCause"
	TypeDTCDiagnosticStep = "DTCDiagnosticStep"
	TypeDTCMaster         = "DTCMaster"
	TypeDTCRelatedSensor  = "DTCRelatedSensor"
	TypeDocument          = "Document"
	TypeDocumentChunk     = "DocumentChunk"
	TypeEntitySource      = "EntitySource"
	TypeExtractedCategory = "ExtractedCategory"
	TypeExtractedCause    = "ExtractedCause"
	TypeExtractedDTC      = "ExtractedDTC"
	TypeExtractedSensor   = "ExtractedSensor"
	TypeExtractedStep     = "ExtractedStep"
	TypeExtractedTSB      = "ExtractedTSB"
	TypeProcessingLog     = "ProcessingLog"
	TypeResolutionLog     = "ResolutionLog"
	TypeSensor            = "Sensor"
	TypeTSBBulletin       = "TSBBulletin"
	TypeVehicle           = "Vehicle"
	TypeVehicleDTC        = "VehicleDTC"
	TypeVehicleMention    = "VehicleMention"
)

// ChunkEvaluationMutation represents an operation that mutates the ChunkEvaluation nodes in the graph.
type ChunkEvaluationMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	trust_score        *float64
	addtrust_score     *float64
	relevance_score    *float64
	addrelevance_score *float64
	automotive_domain  *chunkevaluation.AutomotiveDomain
	reasoning          *string
	model_used         *string
	evaluated_at       *time.Time
	clearedFields      map[string]struct{}
	chunk              *string
	clearedchunk       bool
	done               bool
	oldValue           func(context.Context) (*ChunkEvaluation, error)
	predicates         []predicate.ChunkEvaluation
}

var _ ent.Mutation = (*ChunkEvaluationMutation)(nil)

// chunkevaluationOption allows management of the mutation configuration using functional options.
type chunkevaluationOption func(*ChunkEvaluationMutation)

// newChunkEvaluationMutation creates new mutation for the ChunkEvaluation entity.
func newChunkEvaluationMutation(c config, op Op, opts ...chunkevaluationOption) *ChunkEvaluationMutation {
	m := &ChunkEvaluationMutation{
		config:        c,
		op:            op,
		typ:           TypeChunkEvaluation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChunkEvaluationID sets the ID field of the mutation.
func withChunkEvaluationID(id string) chunkevaluationOption {
	return func(m *ChunkEvaluationMutation) {
		var (
			err   error
			once  sync.Once
			value *ChunkEvaluation
		)
		m.oldValue = func(ctx context.Context) (*ChunkEvaluation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChunkEvaluation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChunkEvaluation sets the old ChunkEvaluation of the mutation.
func withChunkEvaluation(node *ChunkEvaluation) chunkevaluationOption {
	return func(m *ChunkEvaluationMutation) {
		m.oldValue = func(context.Context) (*ChunkEvaluation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChunkEvaluationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChunkEvaluationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ChunkEvaluation entities.
func (m *ChunkEvaluationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChunkEvaluationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChunkEvaluationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChunkEvaluation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChunkID sets the "chunk_id" field.
func (m *ChunkEvaluationMutation) SetChunkID(s string) {
	m.chunk = &s
}

// ChunkID returns the value of the "chunk_id" field in the mutation.
func (m *ChunkEvaluationMutation) ChunkID() (r string, exists bool) {
	v := m.chunk
	if v == nil {
		return
	}
	return *v, true
}

// OldChunkID returns the old "chunk_id" field's value of the ChunkEvaluation entity.
// If the ChunkEvaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChunkEvaluationMutation) OldChunkID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChunkID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChunkID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChunkID: %w", err)
	}
	return oldValue.ChunkID, nil
}

// ResetChunkID resets all changes to the "chunk_id" field.
func (m *ChunkEvaluationMutation) ResetChunkID() {
	m.chunk = nil
}

// SetTrustScore sets the "trust_score" field.
func (m *ChunkEvaluationMutation) SetTrustScore(f float64) {
	m.trust_score = &f
	m.addtrust_score = nil
}

// TrustScore returns the value of the "trust_score" field in the mutation.
func (m *ChunkEvaluationMutation) TrustScore() (r float64, exists bool) {
	v := m.trust_score
	if v == nil {
		return
	}
	return *v, true
}

// OldTrustScore returns the old "trust_score" field's value of the ChunkEvaluation entity.
// If the ChunkEvaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChunkEvaluationMutation) OldTrustScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrustScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrustScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrustScore: %w", err)
	}
	return oldValue.TrustScore, nil
}

// AddTrustScore adds f to the "trust_score" field.
func (m *ChunkEvaluationMutation) AddTrustScore(f float64) {
	if m.addtrust_score != nil {
		*m.addtrust_score += f
	} else {
		m.addtrust_score = &f
	}
}

// AddedTrustScore returns the value that was added to the "trust_score" field in this mutation.
func (m *ChunkEvaluationMutation) AddedTrustScore() (r float64, exists bool) {
	v := m.addtrust_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetTrustScore resets all changes to the "trust_score" field.
func (m *ChunkEvaluationMutation) ResetTrustScore() {
	m.trust_score = nil
	m.addtrust_score = nil
}

// SetRelevanceScore sets the "relevance_score" field.
func (m *ChunkEvaluationMutation) SetRelevanceScore(f float64) {
	m.relevance_score = &f
	m.addrelevance_score = nil
}

// RelevanceScore returns the value of the "relevance_score" field in the mutation.
func (m *ChunkEvaluationMutation) RelevanceScore() (r float64, exists bool) {
	v := m.relevance_score
	if v == nil {
		return
	}
	return *v, true
}

// OldRelevanceScore returns the old "relevance_score" field's value of the ChunkEvaluation entity.
// If the ChunkEvaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChunkEvaluationMutation) OldRelevanceScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelevanceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelevanceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelevanceScore: %w", err)
	}
	return oldValue.RelevanceScore, nil
}

// AddRelevanceScore adds f to the "relevance_score" field.
func (m *ChunkEvaluationMutation) AddRelevanceScore(f float64) {
	if m.addrelevance_score != nil {
		*m.addrelevance_score += f
	} else {
		m.addrelevance_score = &f
	}
}

// AddedRelevanceScore returns the value that was added to the "relevance_score" field in this mutation.
func (m *ChunkEvaluationMutation) AddedRelevanceScore() (r float64, exists bool) {
	v := m.addrelevance_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetRelevanceScore resets all changes to the "relevance_score" field.
func (m *ChunkEvaluationMutation) ResetRelevanceScore() {
	m.relevance_score = nil
	m.addrelevance_score = nil
}

// SetAutomotiveDomain sets the "automotive_domain" field.
func (m *ChunkEvaluationMutation) SetAutomotiveDomain(cd chunkevaluation.AutomotiveDomain) {
	m.automotive_domain = &cd
}

// AutomotiveDomain returns the value of the "automotive_domain" field in the mutation.
func (m *ChunkEvaluationMutation) AutomotiveDomain() (r chunkevaluation.AutomotiveDomain, exists bool) {
	v := m.automotive_domain
	if v == nil {
		return
	}
	return *v, true
}

// OldAutomotiveDomain returns the old "automotive_domain" field's value of the ChunkEvaluation entity.
// If the ChunkEvaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChunkEvaluationMutation) OldAutomotiveDomain(ctx context.Context) (v chunkevaluation.AutomotiveDomain, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAutomotiveDomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAutomotiveDomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAutomotiveDomain: %w", err)
	}
	return oldValue.AutomotiveDomain, nil
}

// ResetAutomotiveDomain resets all changes to the "automotive_domain" field.
func (m *ChunkEvaluationMutation) ResetAutomotiveDomain() {
	m.automotive_domain = nil
}

// SetReasoning sets the "reasoning" field.
func (m *ChunkEvaluationMutation) SetReasoning(s string) {
	m.reasoning = &s
}

// Reasoning returns the value of the "reasoning" field in the mutation.
func (m *ChunkEvaluationMutation) Reasoning() (r string, exists bool) {
	v := m.reasoning
	if v == nil {
		return
	}
	return *v, true
}

// OldReasoning returns the old "reasoning" field's value of the ChunkEvaluation entity.
// If the ChunkEvaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChunkEvaluationMutation) OldReasoning(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasoning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasoning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasoning: %w", err)
	}
	return oldValue.Reasoning, nil
}

// ClearReasoning clears the value of the "reasoning" field.
func (m *ChunkEvaluationMutation) ClearReasoning() {
	m.reasoning = nil
	m.clearedFields[chunkevaluation.FieldReasoning] = struct{}{}
}

// ReasoningCleared returns if the "reasoning" field was cleared in this mutation.
func (m *ChunkEvaluationMutation) ReasoningCleared() bool {
	_, ok := m.clearedFields[chunkevaluation.FieldReasoning]
	return ok
}

// ResetReasoning resets all changes to the "reasoning" field.
func (m *ChunkEvaluationMutation) ResetReasoning() {
	m.reasoning = nil
	delete(m.clearedFields, chunkevaluation.FieldReasoning)
}

// SetModelUsed sets the "model_used" field.
func (m *ChunkEvaluationMutation) SetModelUsed(s string) {
	m.model_used = &s
}

// ModelUsed returns the value of the "model_used" field in the mutation.
func (m *ChunkEvaluationMutation) ModelUsed() (r string, exists bool) {
	v := m.model_used
	if v == nil {
		return
	}
	return *v, true
}

// OldModelUsed returns the old "model_used" field's value of the ChunkEvaluation entity.
// If the ChunkEvaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChunkEvaluationMutation) OldModelUsed(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelUsed: %w", err)
	}
	return oldValue.ModelUsed, nil
}

// ClearModelUsed clears the value of the "model_used" field.
func (m *ChunkEvaluationMutation) ClearModelUsed() {
	m.model_used = nil
	m.clearedFields[chunkevaluation.FieldModelUsed] = struct{}{}
}

// ModelUsedCleared returns if the "model_used" field was cleared in this mutation.
func (m *ChunkEvaluationMutation) ModelUsedCleared() bool {
	_, ok := m.clearedFields[chunkevaluation.FieldModelUsed]
	return ok
}

// ResetModelUsed resets all changes to the "model_used" field.
func (m *ChunkEvaluationMutation) ResetModelUsed() {
	m.model_used = nil
	delete(m.clearedFields, chunkevaluation.FieldModelUsed)
}

// SetEvaluatedAt sets the "evaluated_at" field.
func (m *ChunkEvaluationMutation) SetEvaluatedAt(t time.Time) {
	m.evaluated_at = &t
}

// EvaluatedAt returns the value of the "evaluated_at" field in the mutation.
func (m *ChunkEvaluationMutation) EvaluatedAt() (r time.Time, exists bool) {
	v := m.evaluated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEvaluatedAt returns the old "evaluated_at" field's value of the ChunkEvaluation entity.
// If the ChunkEvaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChunkEvaluationMutation) OldEvaluatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvaluatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvaluatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvaluatedAt: %w", err)
	}
	return oldValue.EvaluatedAt, nil
}

// ResetEvaluatedAt resets all changes to the "evaluated_at" field.
func (m *ChunkEvaluationMutation) ResetEvaluatedAt() {
	m.evaluated_at = nil
}

// ClearChunk clears the "chunk" edge to the DocumentChunk entity.
func (m *ChunkEvaluationMutation) ClearChunk() {
	m.clearedchunk = true
	m.clearedFields[chunkevaluation.FieldChunkID] = struct{}{}
}

// ChunkCleared reports if the "chunk" edge to the DocumentChunk entity was cleared.
func (m *ChunkEvaluationMutation) ChunkCleared() bool {
	return m.clearedchunk
}

// ChunkIDs returns the "chunk" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ChunkID instead. It exists only for internal usage by the builders.
func (m *ChunkEvaluationMutation) ChunkIDs() (ids []string) {
	if id := m.chunk; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetChunk resets all changes to the "chunk" edge.
func (m *ChunkEvaluationMutation) ResetChunk() {
	m.chunk = nil
	m.clearedchunk = false
}

// Where appends a list predicates to the ChunkEvaluationMutation builder.
func (m *ChunkEvaluationMutation) Where(ps ...predicate.ChunkEvaluation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChunkEvaluationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChunkEvaluationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChunkEvaluation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChunkEvaluationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChunkEvaluationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChunkEvaluation).
func (m *ChunkEvaluationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChunkEvaluationMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.chunk != nil {
		fields = append(fields, chunkevaluation.FieldChunkID)
	}
	if m.trust_score != nil {
		fields = append(fields, chunkevaluation.FieldTrustScore)
	}
	if m.relevance_score != nil {
		fields = append(fields, chunkevaluation.FieldRelevanceScore)
	}
	if m.automotive_domain != nil {
		fields = append(fields, chunkevaluation.FieldAutomotiveDomain)
	}
	if m.reasoning != nil {
		fields = append(fields, chunkevaluation.FieldReasoning)
	}
	if m.model_used != nil {
		fields = append(fields, chunkevaluation.FieldModelUsed)
	}
	if m.evaluated_at != nil {
		fields = append(fields, chunkevaluation.FieldEvaluatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChunkEvaluationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chunkevaluation.FieldChunkID:
		return m.ChunkID()
	case chunkevaluation.FieldTrustScore:
		return m.TrustScore()
	case chunkevaluation.FieldRelevanceScore:
		return m.RelevanceScore()
	case chunkevaluation.FieldAutomotiveDomain:
		return m.AutomotiveDomain()
	case chunkevaluation.FieldReasoning:
		return m.Reasoning()
	case chunkevaluation.FieldModelUsed:
		return m.ModelUsed()
	case chunkevaluation.FieldEvaluatedAt:
		return m.EvaluatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChunkEvaluationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chunkevaluation.FieldChunkID:
		return m.OldChunkID(ctx)
	case chunkevaluation.FieldTrustScore:
		return m.OldTrustScore(ctx)
	case chunkevaluation.FieldRelevanceScore:
		return m.OldRelevanceScore(ctx)
	case chunkevaluation.FieldAutomotiveDomain:
		return m.OldAutomotiveDomain(ctx)
	case chunkevaluation.FieldReasoning:
		return m.OldReasoning(ctx)
	case chunkevaluation.FieldModelUsed:
		return m.OldModelUsed(ctx)
	case chunkevaluation.FieldEvaluatedAt:
		return m.OldEvaluatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ChunkEvaluation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChunkEvaluationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chunkevaluation.FieldChunkID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChunkID(v)
		return nil
	case chunkevaluation.FieldTrustScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrustScore(v)
		return nil
	case chunkevaluation.FieldRelevanceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelevanceScore(v)
		return nil
	case chunkevaluation.FieldAutomotiveDomain:
		v, ok := value.(chunkevaluation.AutomotiveDomain)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAutomotiveDomain(v)
		return nil
	case chunkevaluation.FieldReasoning:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasoning(v)
		return nil
	case chunkevaluation.FieldModelUsed:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelUsed(v)
		return nil
	case chunkevaluation.FieldEvaluatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvaluatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ChunkEvaluation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChunkEvaluationMutation) AddedFields() []string {
	var fields []string
	if m.addtrust_score != nil {
		fields = append(fields, chunkevaluation.FieldTrustScore)
	}
	if m.addrelevance_score != nil {
		fields = append(fields, chunkevaluation.FieldRelevanceScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChunkEvaluationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case chunkevaluation.FieldTrustScore:
		return m.AddedTrustScore()
	case chunkevaluation.FieldRelevanceScore:
		return m.AddedRelevanceScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChunkEvaluationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case chunkevaluation.FieldTrustScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTrustScore(v)
		return nil
	case chunkevaluation.FieldRelevanceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRelevanceScore(v)
		return nil
	}
	return fmt.Errorf("unknown ChunkEvaluation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChunkEvaluationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(chunkevaluation.FieldReasoning) {
		fields = append(fields, chunkevaluation.FieldReasoning)
	}
	if m.FieldCleared(chunkevaluation.FieldModelUsed) {
		fields = append(fields, chunkevaluation.FieldModelUsed)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChunkEvaluationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChunkEvaluationMutation) ClearField(name string) error {
	switch name {
	case chunkevaluation.FieldReasoning:
		m.ClearReasoning()
		return nil
	case chunkevaluation.FieldModelUsed:
		m.ClearModelUsed()
		return nil
	}
	return fmt.Errorf("unknown ChunkEvaluation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChunkEvaluationMutation) ResetField(name string) error {
	switch name {
	case chunkevaluation.FieldChunkID:
		m.ResetChunkID()
		return nil
	case chunkevaluation.FieldTrustScore:
		m.ResetTrustScore()
		return nil
	case chunkevaluation.FieldRelevanceScore:
		m.ResetRelevanceScore()
		return nil
	case chunkevaluation.FieldAutomotiveDomain:
		m.ResetAutomotiveDomain()
		return nil
	case chunkevaluation.FieldReasoning:
		m.ResetReasoning()
		return nil
	case chunkevaluation.FieldModelUsed:
		m.ResetModelUsed()
		return nil
	case chunkevaluation.FieldEvaluatedAt:
		m.ResetEvaluatedAt()
		return nil
	}
	return fmt.Errorf("unknown ChunkEvaluation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChunkEvaluationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.chunk != nil {
		edges = append(edges, chunkevaluation.EdgeChunk)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChunkEvaluationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case chunkevaluation.EdgeChunk:
		if id := m.chunk; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChunkEvaluationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChunkEvaluationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChunkEvaluationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedchunk {
		edges = append(edges, chunkevaluation.EdgeChunk)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChunkEvaluationMutation) EdgeCleared(name string) bool {
	switch name {
	case chunkevaluation.EdgeChunk:
		return m.clearedchunk
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChunkEvaluationMutation) ClearEdge(name string) error {
	switch name {
	case chunkevaluation.EdgeChunk:
		m.ClearChunk()
		return nil
	}
	return fmt.Errorf("unknown ChunkEvaluation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChunkEvaluationMutation) ResetEdge(name string) error {
	switch name {
	case chunkevaluation.EdgeChunk:
		m.ResetChunk()
		return nil
	}
	return fmt.Errorf("unknown ChunkEvaluation edge %s", name)
}

// CrawlRequestMutation represents an operation that mutates the CrawlRequest nodes in the graph.
type CrawlRequestMutation struct {
	config
	op            Op
	typ           string
	id            *string
	url           *string
	status        *crawlrequest.Status
	depth         *int
	adddepth      *int
	max_depth     *int
	addmax_depth  *int
	parent_url    *string
	error_message *string
	created_at    *time.Time
	completed_at  *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*CrawlRequest, error)
	predicates    []predicate.CrawlRequest
}

var _ ent.Mutation = (*CrawlRequestMutation)(nil)

// crawlrequestOption allows management of the mutation configuration using functional options.
type crawlrequestOption func(*CrawlRequestMutation)

// newCrawlRequestMutation creates new mutation for the CrawlRequest entity.
func newCrawlRequestMutation(c config, op Op, opts ...crawlrequestOption) *CrawlRequestMutation {
	m := &CrawlRequestMutation{
		config:        c,
		op:            op,
		typ:           TypeCrawlRequest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCrawlRequestID sets the ID field of the mutation.
func withCrawlRequestID(id string) crawlrequestOption {
	return func(m *CrawlRequestMutation) {
		var (
			err   error
			once  sync.Once
			value *CrawlRequest
		)
		m.oldValue = func(ctx context.Context) (*CrawlRequest, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CrawlRequest.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCrawlRequest sets the old CrawlRequest of the mutation.
func withCrawlRequest(node *CrawlRequest) crawlrequestOption {
	return func(m *CrawlRequestMutation) {
		m.oldValue = func(context.Context) (*CrawlRequest, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CrawlRequestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CrawlRequestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CrawlRequest entities.
func (m *CrawlRequestMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CrawlRequestMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CrawlRequestMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CrawlRequest.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetURL sets the "url" field.
func (m *CrawlRequestMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *CrawlRequestMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the CrawlRequest entity.
// If the CrawlRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CrawlRequestMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ResetURL resets all changes to the "url" field.
func (m *CrawlRequestMutation) ResetURL() {
	m.url = nil
}

// SetStatus sets the "status" field.
func (m *CrawlRequestMutation) SetStatus(c crawlrequest.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *CrawlRequestMutation) Status() (r crawlrequest.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the CrawlRequest entity.
// If the CrawlRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CrawlRequestMutation) OldStatus(ctx context.Context) (v crawlrequest.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CrawlRequestMutation) ResetStatus() {
	m.status = nil
}

// SetDepth sets the "depth" field.
func (m *CrawlRequestMutation) SetDepth(i int) {
	m.depth = &i
	m.adddepth = nil
}

// Depth returns the value of the "depth" field in the mutation.
func (m *CrawlRequestMutation) Depth() (r int, exists bool) {
	v := m.depth
	if v == nil {
		return
	}
	return *v, true
}

// OldDepth returns the old "depth" field's value of the CrawlRequest entity.
// If the CrawlRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CrawlRequestMutation) OldDepth(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDepth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDepth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDepth: %w", err)
	}
	return oldValue.Depth, nil
}

// AddDepth adds i to the "depth" field.
func (m *CrawlRequestMutation) AddDepth(i int) {
	if m.adddepth != nil {
		*m.adddepth += i
	} else {
		m.adddepth = &i
	}
}

// AddedDepth returns the value that was added to the "depth" field in this mutation.
func (m *CrawlRequestMutation) AddedDepth() (r int, exists bool) {
	v := m.adddepth
	if v == nil {
		return
	}
	return *v, true
}

// ResetDepth resets all changes to the "depth" field.
func (m *CrawlRequestMutation) ResetDepth() {
	m.depth = nil
	m.adddepth = nil
}

// SetMaxDepth sets the "max_depth" field.
func (m *CrawlRequestMutation) SetMaxDepth(i int) {
	m.max_depth = &i
	m.addmax_depth = nil
}

// MaxDepth returns the value of the "max_depth" field in the mutation.
func (m *CrawlRequestMutation) MaxDepth() (r int, exists bool) {
	v := m.max_depth
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxDepth returns the old "max_depth" field's value of the CrawlRequest entity.
// If the CrawlRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CrawlRequestMutation) OldMaxDepth(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxDepth is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxDepth requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxDepth: %w", err)
	}
	return oldValue.MaxDepth, nil
}

// AddMaxDepth adds i to the "max_depth" field.
func (m *CrawlRequestMutation) AddMaxDepth(i int) {
	if m.addmax_depth != nil {
		*m.addmax_depth += i
	} else {
		m.addmax_depth = &i
	}
}

// AddedMaxDepth returns the value that was added to the "max_depth" field in this mutation.
func (m *CrawlRequestMutation) AddedMaxDepth() (r int, exists bool) {
	v := m.addmax_depth
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxDepth resets all changes to the "max_depth" field.
func (m *CrawlRequestMutation) ResetMaxDepth() {
	m.max_depth = nil
	m.addmax_depth = nil
}

// SetParentURL sets the "parent_url" field.
func (m *CrawlRequestMutation) SetParentURL(s string) {
	m.parent_url = &s
}

// ParentURL returns the value of the "parent_url" field in the mutation.
func (m *CrawlRequestMutation) ParentURL() (r string, exists bool) {
	v := m.parent_url
	if v == nil {
		return
	}
	return *v, true
}

// OldParentURL returns the old "parent_url" field's value of the CrawlRequest entity.
// If the CrawlRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CrawlRequestMutation) OldParentURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentURL: %w", err)
	}
	return oldValue.ParentURL, nil
}

// ClearParentURL clears the value of the "parent_url" field.
func (m *CrawlRequestMutation) ClearParentURL() {
	m.parent_url = nil
	m.clearedFields[crawlrequest.FieldParentURL] = struct{}{}
}

// ParentURLCleared returns if the "parent_url" field was cleared in this mutation.
func (m *CrawlRequestMutation) ParentURLCleared() bool {
	_, ok := m.clearedFields[crawlrequest.FieldParentURL]
	return ok
}

// ResetParentURL resets all changes to the "parent_url" field.
func (m *CrawlRequestMutation) ResetParentURL() {
	m.parent_url = nil
	delete(m.clearedFields, crawlrequest.FieldParentURL)
}

// SetErrorMessage sets the "error_message" field.
func (m *CrawlRequestMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *CrawlRequestMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the CrawlRequest entity.
// If the CrawlRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CrawlRequestMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *CrawlRequestMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[crawlrequest.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *CrawlRequestMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[crawlrequest.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *CrawlRequestMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, crawlrequest.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *CrawlRequestMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CrawlRequestMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CrawlRequest entity.
// If the CrawlRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CrawlRequestMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CrawlRequestMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *CrawlRequestMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *CrawlRequestMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the CrawlRequest entity.
// If the CrawlRequest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CrawlRequestMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *CrawlRequestMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[crawlrequest.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *CrawlRequestMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[crawlrequest.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *CrawlRequestMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, crawlrequest.FieldCompletedAt)
}

// Where appends a list predicates to the CrawlRequestMutation builder.
func (m *CrawlRequestMutation) Where(ps ...predicate.CrawlRequest) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CrawlRequestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CrawlRequestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CrawlRequest, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CrawlRequestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CrawlRequestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CrawlRequest).
func (m *CrawlRequestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CrawlRequestMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.url != nil {
		fields = append(fields, crawlrequest.FieldURL)
	}
	if m.status != nil {
		fields = append(fields, crawlrequest.FieldStatus)
	}
	if m.depth != nil {
		fields = append(fields, crawlrequest.FieldDepth)
	}
	if m.max_depth != nil {
		fields = append(fields, crawlrequest.FieldMaxDepth)
	}
	if m.parent_url != nil {
		fields = append(fields, crawlrequest.FieldParentURL)
	}
	if m.error_message != nil {
		fields = append(fields, crawlrequest.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, crawlrequest.FieldCreatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, crawlrequest.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CrawlRequestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case crawlrequest.FieldURL:
		return m.URL()
	case crawlrequest.FieldStatus:
		return m.Status()
	case crawlrequest.FieldDepth:
		return m.Depth()
	case crawlrequest.FieldMaxDepth:
		return m.MaxDepth()
	case crawlrequest.FieldParentURL:
		return m.ParentURL()
	case crawlrequest.FieldErrorMessage:
		return m.ErrorMessage()
	case crawlrequest.FieldCreatedAt:
		return m.CreatedAt()
	case crawlrequest.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CrawlRequestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case crawlrequest.FieldURL:
		return m.OldURL(ctx)
	case crawlrequest.FieldStatus:
		return m.OldStatus(ctx)
	case crawlrequest.FieldDepth:
		return m.OldDepth(ctx)
	case crawlrequest.FieldMaxDepth:
		return m.OldMaxDepth(ctx)
	case crawlrequest.FieldParentURL:
		return m.OldParentURL(ctx)
	case crawlrequest.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case crawlrequest.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case crawlrequest.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CrawlRequest field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CrawlRequestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case crawlrequest.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case crawlrequest.FieldStatus:
		v, ok := value.(crawlrequest.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case crawlrequest.FieldDepth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDepth(v)
		return nil
	case crawlrequest.FieldMaxDepth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxDepth(v)
		return nil
	case crawlrequest.FieldParentURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentURL(v)
		return nil
	case crawlrequest.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case crawlrequest.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case crawlrequest.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CrawlRequest field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CrawlRequestMutation) AddedFields() []string {
	var fields []string
	if m.adddepth != nil {
		fields = append(fields, crawlrequest.FieldDepth)
	}
	if m.addmax_depth != nil {
		fields = append(fields, crawlrequest.FieldMaxDepth)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CrawlRequestMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case crawlrequest.FieldDepth:
		return m.AddedDepth()
	case crawlrequest.FieldMaxDepth:
		return m.AddedMaxDepth()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CrawlRequestMutation) AddField(name string, value ent.Value) error {
	switch name {
	case crawlrequest.FieldDepth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDepth(v)
		return nil
	case crawlrequest.FieldMaxDepth:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxDepth(v)
		return nil
	}
	return fmt.Errorf("unknown CrawlRequest numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CrawlRequestMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(crawlrequest.FieldParentURL) {
		fields = append(fields, crawlrequest.FieldParentURL)
	}
	if m.FieldCleared(crawlrequest.FieldErrorMessage) {
		fields = append(fields, crawlrequest.FieldErrorMessage)
	}
	if m.FieldCleared(crawlrequest.FieldCompletedAt) {
		fields = append(fields, crawlrequest.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CrawlRequestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CrawlRequestMutation) ClearField(name string) error {
	switch name {
	case crawlrequest.FieldParentURL:
		m.ClearParentURL()
		return nil
	case crawlrequest.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case crawlrequest.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown CrawlRequest nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CrawlRequestMutation) ResetField(name string) error {
	switch name {
	case crawlrequest.FieldURL:
		m.ResetURL()
		return nil
	case crawlrequest.FieldStatus:
		m.ResetStatus()
		return nil
	case crawlrequest.FieldDepth:
		m.ResetDepth()
		return nil
	case crawlrequest.FieldMaxDepth:
		m.ResetMaxDepth()
		return nil
	case crawlrequest.FieldParentURL:
		m.ResetParentURL()
		return nil
	case crawlrequest.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case crawlrequest.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case crawlrequest.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown CrawlRequest field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CrawlRequestMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CrawlRequestMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CrawlRequestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CrawlRequestMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CrawlRequestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CrawlRequestMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CrawlRequestMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CrawlRequest unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CrawlRequestMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CrawlRequest edge %s", name)
}

// DTCCauseMutation represents an operation that mutates the DTCCause nodes in the graph.
type DTCCauseMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	dtc_master_id         *string
	cause                 *string
	fingerprint           *string
	probability_weight    *float64
	addprobability_weight *float64
	evidence_count        *int
	addevidence_count     *int
	avg_trust             *float64
	addavg_trust          *float64
	avg_relevance         *float64
	addavg_relevance      *float64
	conflict_flag         *bool
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*DTCCause, error)
	predicates            []predicate.DTCCause
}

var _ ent.Mutation = (*DTCCauseMutation)(nil)

// dtccauseOption allows management of the mutation configuration using functional options.
type dtccauseOption func(*DTCCauseMutation)

// newDTCCauseMutation creates new mutation for the DTCCause entity.
func newDTCCauseMutation(c config, op Op, opts ...dtccauseOption) *DTCCauseMutation {
	m := &DTCCauseMutation{
		config:        c,
		op:            op,
		typ:           TypeDTCCause,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDTCCauseID sets the ID field of the mutation.
func withDTCCauseID(id string) dtccauseOption {
	return func(m *DTCCauseMutation) {
		var (
			err   error
			once  sync.Once
			value *DTCCause
		)
		m.oldValue = func(ctx context.Context) (*DTCCause, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DTCCause.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDTCCause sets the old DTCCause of the mutation.
func withDTCCause(node *DTCCause) dtccauseOption {
	return func(m *DTCCauseMutation) {
		m.oldValue = func(context.Context) (*DTCCause, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DTCCauseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DTCCauseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DTCCause entities.
func (m *DTCCauseMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DTCCauseMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DTCCauseMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DTCCause.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDtcMasterID sets the "dtc_master_id" field.
func (m *DTCCauseMutation) SetDtcMasterID(s string) {
	m.dtc_master_id = &s
}

// DtcMasterID returns the value of the "dtc_master_id" field in the mutation.
func (m *DTCCauseMutation) DtcMasterID() (r string, exists bool) {
	v := m.dtc_master_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDtcMasterID returns the old "dtc_master_id" field's value of the DTCCause entity.
// If the DTCCause object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DTCCauseMutation) OldDtcMasterID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDtcMasterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDtcMasterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDtcMasterID: %w", err)
	}
	return oldValue.DtcMasterID, nil
}

// ResetDtcMasterID resets all changes to the "dtc_master_id" field.
func (m *DTCCauseMutation) ResetDtcMasterID() {
	m.dtc_master_id = nil
}

// SetCause sets the "cause" field.
func (m *DTCCauseMutation) SetCause(s string) {
	m.cause = &s
}

// Cause returns the value of the "cause" field in the mutation.
func (m *DTCCauseMutation) Cause() (r string, exists bool) {
	v := m.cause
	if v == nil {
		return
	}
	return *v, true
}

// OldCause returns the old "cause" field's value of the DTCCause entity.
// If the DTCCause object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DTCCauseMutation) OldCause(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCause is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCause requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCause: %w", err)
	}
	return oldValue.Cause, nil
}

// ResetCause resets all changes to the "cause" field.
func (m *DTCCauseMutation) ResetCause() {
	m.cause = nil
}

// SetFingerprint sets the "fingerprint" field.
func (m *DTCCauseMutation) SetFingerprint(s string) {
	m.fingerprint = &s
}

// Fingerprint returns the value of the "fingerprint" field in the mutation.
func (m *DTCCauseMutation) Fingerprint() (r string, exists bool) {
	v := m.fingerprint
	if v == nil {
		return
	}
	return *v, true
}

// OldFingerprint returns the old "fingerprint" field's value of the DTCCause entity.
// If the DTCCause object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DTCCauseMutation) OldFingerprint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFingerprint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFingerprint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFingerprint: %w", err)
	}
	return oldValue.Fingerprint, nil
}

// ResetFingerprint resets all changes to the "fingerprint" field.
func (m *DTCCauseMutation) ResetFingerprint() {
	m.fingerprint = nil
}

// SetProbabilityWeight sets the "probability_weight" field.
func (m *DTCCauseMutation) SetProbabilityWeight(f float64) {
	m.probability_weight = &f
	m.addprobability_weight = nil
}

// ProbabilityWeight returns the value of the "probability_weight" field in the mutation.
func (m *DTCCauseMutation) ProbabilityWeight() (r float64, exists bool) {
	v := m.probability_weight
	if v == nil {
		return
	}
	return *v, true
}

// OldProbabilityWeight returns the old "probability_weight" field's value of the DTCCause entity.
// If the DTCCause object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DTCCauseMutation) OldProbabilityWeight(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProbabilityWeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProbabilityWeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProbabilityWeight: %w", err)
	}
	return oldValue.ProbabilityWeight, nil
}

// AddProbabilityWeight adds f to the "probability_weight" field.
func (m *DTCCauseMutation) AddProbabilityWeight(f float64) {
	if m.addprobability_weight != nil {
		*m.addprobability_weight += f
	} else {
		m.addprobability_weight = &f
	}
}

// AddedProbabilityWeight returns the value that was added to the "probability_weight" field in this mutation.
func (m *DTCCauseMutation) AddedProbabilityWeight() (r float64, exists bool) {
	v := m.addprobability_weight
	if v == nil {
		return
	}
	return *v, true
}

// ResetProbabilityWeight resets all changes to the "probability_weight" field.
func (m *DTCCauseMutation) ResetProbabilityWeight() {
	m.probability_weight = nil
	m.addprobability_weight = nil
}

// SetEvidenceCount sets the "evidence_count" field.
func (m *DTCCauseMutation) SetEvidenceCount(i int) {
	m.evidence_count = &i
	m.addevidence_count = nil
}

// EvidenceCount returns the value of the "evidence_count" field in the mutation.
func (m *DTCCauseMutation) EvidenceCount() (r int, exists bool) {
	v := m.evidence_count
	if v == nil {
		return
	}
	return *v, true
}

// OldEvidenceCount returns the old "evidence_count" field's value of the DTCCause entity.
// If the DTCCause object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DTCCauseMutation) OldEvidenceCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvidenceCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvidenceCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvidenceCount: %w", err)
	}
	return oldValue.EvidenceCount, nil
}

// AddEvidenceCount adds i to the "evidence_count" field.
func (m *DTCCauseMutation) AddEvidenceCount(i int) {
	if m.addevidence_count != nil {
		*m.addevidence_count += i
	} else {
		m.addevidence_count = &i
	}
}

// AddedEvidenceCount returns the value that was added to the "evidence_count" field in this mutation.
func (m *DTCCauseMutation) AddedEvidenceCount() (r int, exists bool) {
	v := m.addevidence_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetEvidenceCount resets all changes to the "evidence_count" field.
func (m *DTCCauseMutation) ResetEvidenceCount() {
	m.evidence_count = nil
	m.addevidence_count = nil
}

// SetAvgTrust sets the "avg_trust" field.
func (m *DTCCauseMutation) SetAvgTrust(f float64) {
	m.avg_trust = &f
	m.addavg_trust = nil
}

// AvgTrust returns the value of the "avg_trust" field in the mutation.
func (m *DTCCauseMutation) AvgTrust() (r float64, exists bool) {
	v := m.avg_trust
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgTrust returns the old "avg_trust" field's value of the DTCCause entity.
// If the DTCCause object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DTCCauseMutation) OldAvgTrust(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgTrust is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgTrust requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgTrust: %w", err)
	}
	return oldValue.AvgTrust, nil
}

// AddAvgTrust adds f to the "avg_trust" field.
func (m *DTCCauseMutation) AddAvgTrust(f float64) {
	if m.addavg_trust != nil {
		*m.addavg_trust += f
	} else {
		m.addavg_trust = &f
	}
}

// AddedAvgTrust returns the value that was added to the "avg_trust" field in this mutation.
func (m *DTCCauseMutation) AddedAvgTrust() (r float64, exists bool) {
	v := m.addavg_trust
	if v == nil {
		return
	}
	return *v, true
}

// ResetAvgTrust resets all changes to the "avg_trust" field.
func (m *DTCCauseMutation) ResetAvgTrust() {
	m.avg_trust = nil
	m.addavg_trust = nil
}

// SetAvgRelevance sets the "avg_relevance" field.
func (m *DTCCauseMutation) SetAvgRelevance(f float64) {
	m.avg_relevance = &f
	m.addavg_relevance = nil
}

// AvgRelevance returns the value of the "avg_relevance" field in the mutation.
func (m *DTCCauseMutation) AvgRelevance() (r float64, exists bool) {
	v := m.avg_relevance
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgRelevance returns the old "avg_relevance" field's value of the DTCCause entity.
// If the DTCCause object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DTCCauseMutation) OldAvgRelevance(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgRelevance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgRelevance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgRelevance: %w", err)
	}
	return oldValue.AvgRelevance, nil
}

// AddAvgRelevance adds f to the "avg_relevance" field.
func (m *DTCCauseMutation) AddAvgRelevance(f float64) {
	if m.addavg_relevance != nil {
		*m.addavg_relevance += f
	} else {
		m.addavg_relevance = &f
	}
}

// AddedAvgRelevance returns the value that was added to the "avg_relevance" field in this mutation.
func (m *DTCCauseMutation) AddedAvgRelevance() (r float64, exists bool) {
	v := m.addavg_relevance
	if v == nil {
		return
	}
	return *v, true
}

// ResetAvgRelevance resets all changes to the "avg_relevance" field.
func (m *DTCCauseMutation) ResetAvgRelevance() {
	m.avg_relevance = nil
	m.addavg_relevance = nil
}

// SetConflictFlag sets the "conflict_flag" field.
func (m *DTCCauseMutation) SetConflictFlag(b bool) {
	m.conflict_flag = &b
}

// ConflictFlag returns the value of the "conflict_flag" field in the mutation.
func (m *DTCCauseMutation) ConflictFlag() (r bool, exists bool) {
	v := m.conflict_flag
	if v == nil {
		return
	}
	return *v, true
}

// OldConflictFlag returns the old "conflict_flag" field's value of the DTCCause entity.
// If the DTCCause object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DTCCauseMutation) OldConflictFlag(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConflictFlag is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConflictFlag requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConflictFlag: %w", err)
	}
	return oldValue.ConflictFlag, nil
}

// ResetConflictFlag resets all changes to the "conflict_flag" field.
func (m *DTCCauseMutation) ResetConflictFlag() {
	m.conflict_flag = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DTCCauseMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DTCCauseMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DTCCause entity.
// If the DTCCause object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DTCCauseMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DTCCauseMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DTCCauseMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DTCCauseMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the DTCCause entity.
// If the DTCCause object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DTCCauseMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DTCCauseMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the DTCCauseMutation builder.
func (m *DTCCauseMutation) Where(ps ...predicate.DTCCause) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DTCCauseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DTCCauseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DTCCause, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DTCCauseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DTCCauseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DTCCause).
func (m *DTCCauseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DTCCauseMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.dtc_master_id != nil {
		fields = append(fields, dtccause.FieldDtcMasterID)
	}
	if m.cause != nil {
		fields = append(fields, dtccause.FieldCause)
	}
	if m.fingerprint != nil {
		fields = append(fields, dtccause.FieldFingerprint)
	}
	if m.probability_weight != nil {
		fields = append(fields, dtccause.FieldProbabilityWeight)
	}
	if m.evidence_count != nil {
		fields = append(fields, dtccause.FieldEvidenceCount)
	}
	if m.avg_trust != nil {
		fields = append(fields, dtccause.FieldAvgTrust)
	}
	if m.avg_relevance != nil {
		fields = append(fields, dtccause.FieldAvgRelevance)
	}
	if m.conflict_flag != nil {
		fields = append(fields, dtccause.FieldConflictFlag)
	}
	if m.created_at != nil {
		fields = append(fields, dtccause.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, dtccause.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DTCCauseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case dtccause.FieldDtcMasterID:
		return m.DtcMasterID()
	case dtccause.FieldCause:
		return m.Cause()
	case dtccause.FieldFingerprint:
		return m.Fingerprint()
	case dtccause.FieldProbabilityWeight:
		return m.ProbabilityWeight()
	case dtccause.FieldEvidenceCount:
		return m.EvidenceCount()
	case dtccause.FieldAvgTrust:
		return m.AvgTrust()
	case dtccause.FieldAvgRelevance:
		return m.AvgRelevance()
	case dtccause.FieldConflictFlag:
		return m.ConflictFlag()
	case dtccause.FieldCreatedAt:
		return m.CreatedAt()
	case dtccause.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DTCCauseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case dtccause.FieldDtcMasterID:
		return m.OldDtcMasterID(ctx)
	case dtccause.FieldCause:
		return m.OldCause(ctx)
	case dtccause.FieldFingerprint:
		return m.OldFingerprint(ctx)
	case dtccause.FieldProbabilityWeight:
		return m.OldProbabilityWeight(ctx)
	case dtccause.FieldEvidenceCount:
		return m.OldEvidenceCount(ctx)
	case dtccause.FieldAvgTrust:
		return m.OldAvgTrust(ctx)
	case dtccause.FieldAvgRelevance:
		return m.OldAvgRelevance(ctx)
	case dtccause.FieldConflictFlag:
		return m.OldConflictFlag(ctx)
	case dtccause.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case dtccause.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DTCCause field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DTCCauseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case dtccause.FieldDtcMasterID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDtcMasterID(v)
		return nil
	case dtccause.FieldCause:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCause(v)
		return nil
	case dtccause.FieldFingerprint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFingerprint(v)
		return nil
	case dtccause.FieldProbabilityWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProbabilityWeight(v)
		return nil
	case dtccause.FieldEvidenceCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvidenceCount(v)
		return nil
	case dtccause.FieldAvgTrust:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgTrust(v)
		return nil
	case dtccause.FieldAvgRelevance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgRelevance(v)
		return nil
	case dtccause.FieldConflictFlag:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConflictFlag(v)
		return nil
	case dtccause.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case dtccause.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DTCCause field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DTCCauseMutation) AddedFields() []string {
	var fields []string
	if m.addprobability_weight != nil {
		fields = append(fields, dtccause.FieldProbabilityWeight)
	}
	if m.addevidence_count != nil {
		fields = append(fields, dtccause.FieldEvidenceCount)
	}
	if m.addavg_trust != nil {
		fields = append(fields, dtccause.FieldAvgTrust)
	}
	if m.addavg_relevance != nil {
		fields = append(fields, dtccause.FieldAvgRelevance)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DTCCauseMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case dtccause.FieldProbabilityWeight:
		return m.AddedProbabilityWeight()
	case dtccause.FieldEvidenceCount:
		return m.AddedEvidenceCount()
	case dtccause.FieldAvgTrust:
		return m.AddedAvgTrust()
	case dtccause.FieldAvgRelevance:
		return m.AddedAvgRelevance()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DTCCauseMutation) AddField(name string, value ent.Value) error {
	switch name {
	case dtccause.FieldProbabilityWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProbabilityWeight(v)
		return nil
	case dtccause.FieldEvidenceCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEvidenceCount(v)
		return nil
	case dtccause.FieldAvgTrust:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgTrust(v)
		return nil
	case dtccause.FieldAvgRelevance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgRelevance(v)
		return nil
	}
	return fmt.Errorf("unknown DTCCause numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DTCCauseMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DTCCauseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DTCCauseMutation) ClearField(name string) error {
	return fmt.Errorf("unknown DTCCause nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DTCCauseMutation) ResetField(name string) error {
	switch name {
	case dtccause.FieldDtcMasterID:
		m.ResetDtcMasterID()
		return nil
	case dtccause.FieldCause:
		m.ResetCause()
		return nil
	case dtccause.FieldFingerprint:
		m.ResetFingerprint()
		return nil
	case dtccause.FieldProbabilityWeight:
		m.ResetProbabilityWeight()
		return nil
	case dtccause.FieldEvidenceCount:
		m.ResetEvidenceCount()
		return nil
	case dtccause.FieldAvgTrust:
		m.ResetAvgTrust()
		return nil
	case dtccause.FieldAvgRelevance:
		m.ResetAvgRelevance()
		return nil
	case dtccause.FieldConflictFlag:
		m.ResetConflictFlag()
		return nil
	case dtccause.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case dtccause.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown DTCCause field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DTCCauseMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DTCCauseMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DTCCauseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DTCCauseMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DTCCauseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DTCCauseMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DTCCauseMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DTCCause unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DTCCauseMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DTCCause edge %s", name)
}

// DTCDiagnosticStepMutation represents an operation that mutates the DTCDiagnosticStep nodes in the graph.
type DTCDiagnosticStepMutation struct {
	config
	op                Op
	typ               string
	id                *string
	dtc_master_id     *string
	step_order        *int
	addstep_order     *int
	instruction       *string
	fingerprint       *string
	tools_required    *string
	expected_values   *string
	pass_next_step_id *string
	fail_next_step_id *string
	evidence_count    *int
	addevidence_count *int
	avg_trust         *float64
	addavg_trust      *float64
	avg_relevance     *float64
	addavg_relevance  *float64
	conflict_flag     *bool
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*DTCDiagnosticStep, error)
	predicates        []predicate.DTCDiagnosticStep
}

var _ ent.Mutation = (*DTCDiagnosticStepMutation)(nil)

// dtcdiagnosticstepOption allows management of the mutation configuration using functional options.
type dtcdiagnosticstepOption func(*DTCDiagnosticStepMutation)

// newDTCDiagnosticStepMutation creates new mutation for the DTCDiagnosticStep entity.
func newDTCDiagnosticStepMutation(c config, op Op, opts ...dtcdiagnosticstepOption) *DTCDiagnosticStepMutation {
	m := &DTCDiagnosticStepMutation{
		config:        c,
		op:            op,
		typ:           TypeDTCDiagnosticStep,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDTCDiagnosticStepID sets the ID field of the mutation.
func withDTCDiagnosticStepID(id string) dtcdiagnosticstepOption {
	return func(m *DTCDiagnosticStepMutation) {
		var (
			err   error
			once  sync.Once
			value *DTCDiagnosticStep
		)
		m.oldValue = func(ctx context.Context) (*DTCDiagnosticStep, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DTCDiagnosticStep.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDTCDiagnosticStep sets the old DTCDiagnosticStep of the mutation.
func withDTCDiagnosticStep(node *DTCDiagnosticStep) dtcdiagnosticstepOption {
	return func(m *DTCDiagnosticStepMutation) {
		m.oldValue = func(context.Context) (*DTCDiagnosticStep, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DTCDiagnosticStepMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DTCDiagnosticStepMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DTCDiagnosticStep entities.
func (m *DTCDiagnosticStepMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DTCDiagnosticStepMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DTCDiagnosticStepMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DTCDiagnosticStep.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDtcMasterID sets the "dtc_master_id" field.
func (m *DTCDiagnosticStepMutation) SetDtcMasterID(s string) {
	m.dtc_master_id = &s
}

// DtcMasterID returns the value of the "dtc_master_id" field in the mutation.
func (m *DTCDiagnosticStepMutation) DtcMasterID() (r string, exists bool) {
	v := m.dtc_master_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDtcMasterID returns the old "dtc_master_id" field's value of the DTCDiagnosticStep entity.
// If the DTCDiagnosticStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DTCDiagnosticStepMutation) OldDtcMasterID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDtcMasterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDtcMasterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDtcMasterID: %w", err)
	}
	return oldValue.DtcMasterID, nil
}

// ResetDtcMasterID resets all changes to the "dtc_master_id" field.
func (m *DTCDiagnosticStepMutation) ResetDtcMasterID() {
	m.dtc_master_id = nil
}

// SetStepOrder sets the "step_order" field.
func (m *DTCDiagnosticStepMutation) SetStepOrder(i int) {
	m.step_order = &i
	m.addstep_order = nil
}

// StepOrder returns the value of the "step_order" field in the mutation.
func (m *DTCDiagnosticStepMutation) StepOrder() (r int, exists bool) {
	v := m.step_order
	if v == nil {
		return
	}
	return *v, true
}

// OldStepOrder returns the old "step_order" field's value of the DTCDiagnosticStep entity.
// If the DTCDiagnosticStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DTCDiagnosticStepMutation) OldStepOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepOrder: %w", err)
	}
	return oldValue.StepOrder, nil
}

// AddStepOrder adds i to the "step_order" field.
func (m *DTCDiagnosticStepMutation) AddStepOrder(i int) {
	if m.addstep_order != nil {
		*m.addstep_order += i
	} else {
		m.addstep_order = &i
	}
}

// AddedStepOrder returns the value that was added to the "step_order" field in this mutation.
func (m *DTCDiagnosticStepMutation) AddedStepOrder() (r int, exists bool) {
	v := m.addstep_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetStepOrder resets all changes to the "step_order" field.
func (m *DTCDiagnosticStepMutation) ResetStepOrder() {
	m.step_order = nil
	m.addstep_order = nil
}

// SetInstruction sets the "instruction" field.
func (m *DTCDiagnosticStepMutation) SetInstruction(s string) {
	m.instruction = &s
}

// Instruction returns the value of the "instruction" field in the mutation.
func (m *DTCDiagnosticStepMutation) Instruction() (r string, exists bool) {
	v := m.instruction
	if v == nil {
		return
	}
	return *v, true
}

// OldInstruction returns the old "instruction" field's value of the DTCDiagnosticStep entity.
// If the DTCDiagnosticStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DTCDiagnosticStepMutation) OldInstruction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstruction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstruction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstruction: %w", err)
	}
	return oldValue.Instruction, nil
}

// ResetInstruction resets all changes to the "instruction" field.
func (m *DTCDiagnosticStepMutation) ResetInstruction() {
	m.instruction = nil
}

// SetFingerprint sets the "fingerprint" field.
func (m *DTCDiagnosticStepMutation) SetFingerprint(s string) {
	m.fingerprint = &s
}

// Fingerprint returns the value of the "fingerprint" field in the mutation.
func (m *DTCDiagnosticStepMutation) Fingerprint() (r string, exists bool) {
	v := m.fingerprint
	if v == nil {
		return
	}
	return *v, true
}

// OldFingerprint returns the old "fingerprint" field's value of the DTCDiagnosticStep entity.
// If the DTCDiagnosticStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DTCDiagnosticStepMutation) OldFingerprint(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFingerprint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFingerprint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFingerprint: %w", err)
	}
	return oldValue.Fingerprint, nil
}

// ResetFingerprint resets all changes to the "fingerprint" field.
func (m *DTCDiagnosticStepMutation) ResetFingerprint() {
	m.fingerprint = nil
}

// SetToolsRequired sets the "tools_required" field.
func (m *DTCDiagnosticStepMutation) SetToolsRequired(s string) {
	m.tools_required = &s
}

// ToolsRequired returns the value of the "tools_required" field in the mutation.
func (m *DTCDiagnosticStepMutation) ToolsRequired() (r string, exists bool) {
	v := m.tools_required
	if v == nil {
		return
	}
	return *v, true
}

// OldToolsRequired returns the old "tools_required" field's value of the DTCDiagnosticStep entity.
// If the DTCDiagnosticStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DTCDiagnosticStepMutation) OldToolsRequired(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolsRequired is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolsRequired requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolsRequired: %w", err)
	}
	return oldValue.ToolsRequired, nil
}

// ClearToolsRequired clears the value of the "tools_required" field.
func (m *DTCDiagnosticStepMutation) ClearToolsRequired() {
	m.tools_required = nil
	m.clearedFields[dtcdiagnosticstep.FieldToolsRequired] = struct{}{}
}

// ToolsRequiredCleared returns if the "tools_required" field was cleared in this mutation.
func (m *DTCDiagnosticStepMutation) ToolsRequiredCleared() bool {
	_, ok := m.clearedFields[dtcdiagnosticstep.FieldToolsRequired]
	return ok
}

// ResetToolsRequired resets all changes to the "tools_required" field.
func (m *DTCDiagnosticStepMutation) ResetToolsRequired() {
	m.tools_required = nil
	delete(m.clearedFields, dtcdiagnosticstep.FieldToolsRequired)
}

// SetExpectedValues sets the "expected_values" field.
func (m *DTCDiagnosticStepMutation) SetExpectedValues(s string) {
	m.expected_values = &s
}

// ExpectedValues returns the value of the "expected_values" field in the mutation.
func (m *DTCDiagnosticStepMutation) ExpectedValues() (r string, exists bool) {
	v := m.expected_values
	if v == nil {
		return
	}
	return *v, true
}

// OldExpectedValues returns the old "expected_values" field's value of the DTCDiagnosticStep entity.
// If the DTCDiagnosticStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DTCDiagnosticStepMutation) OldExpectedValues(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpectedValues is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpectedValues requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpectedValues: %w", err)
	}
	return oldValue.ExpectedValues, nil
}

// ClearExpectedValues clears the value of the "expected_values" field.
func (m *DTCDiagnosticStepMutation) ClearExpectedValues() {
	m.expected_values = nil
	m.clearedFields[dtcdiagnosticstep.FieldExpectedValues] = struct{}{}
}

// ExpectedValuesCleared returns if the "expected_values" field was cleared in this mutation.
func (m *DTCDiagnosticStepMutation) ExpectedValuesCleared() bool {
	_, ok := m.clearedFields[dtcdiagnosticstep.FieldExpectedValues]
	return ok
}

// ResetExpectedValues resets all changes to the "expected_values" field.
func (m *DTCDiagnosticStepMutation) ResetExpectedValues() {
	m.expected_values = nil
	delete(m.clearedFields, dtcdiagnosticstep.FieldExpectedValues)
}

// SetPassNextStepID sets the "pass_next_step_id" field.
func (m *DTCDiagnosticStepMutation) SetPassNextStepID(s string) {
	m.pass_next_step_id = &s
}

// PassNextStepID returns the value of the "pass_next_step_id" field in the mutation.
func (m *DTCDiagnosticStepMutation) PassNextStepID() (r string, exists bool) {
	v := m.pass_next_step_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPassNextStepID returns the old "pass_next_step_id" field's value of the DTCDiagnosticStep entity.
// If the DTCDiagnosticStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DTCDiagnosticStepMutation) OldPassNextStepID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPassNextStepID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPassNextStepID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPassNextStepID: %w", err)
	}
	return oldValue.PassNextStepID, nil
}

// ClearPassNextStepID clears the value of the "pass_next_step_id" field.
func (m *DTCDiagnosticStepMutation) ClearPassNextStepID() {
	m.pass_next_step_id = nil
	m.clearedFields[dtcdiagnosticstep.FieldPassNextStepID] = struct{}{}
}

// PassNextStepIDCleared returns if the "pass_next_step_id" field was cleared in this mutation.
func (m *DTCDiagnosticStepMutation) PassNextStepIDCleared() bool {
	_, ok := m.clearedFields[dtcdiagnosticstep.FieldPassNextStepID]
	return ok
}

// ResetPassNextStepID resets all changes to the "pass_next_step_id" field.
func (m *DTCDiagnosticStepMutation) ResetPassNextStepID() {
	m.pass_next_step_id = nil
	delete(m.clearedFields, dtcdiagnosticstep.FieldPassNextStepID)
}

// SetFailNextStepID sets the "fail_next_step_id" field.
func (m *DTCDiagnosticStepMutation) SetFailNextStepID(s string) {
	m.fail_next_step_id = &s
}

// FailNextStepID returns the value of the "fail_next_step_id" field in the mutation.
func (m *DTCDiagnosticStepMutation) FailNextStepID() (r string, exists bool) {
	v := m.fail_next_step_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFailNextStepID returns the old "fail_next_step_id" field's value of the DTCDiagnosticStep entity.
// If the DTCDiagnosticStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DTCDiagnosticStepMutation) OldFailNextStepID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailNextStepID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailNextStepID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailNextStepID: %w", err)
	}
	return oldValue.FailNextStepID, nil
}

// ClearFailNextStepID clears the value of the "fail_next_step_id" field.
func (m *DTCDiagnosticStepMutation) ClearFailNextStepID() {
	m.fail_next_step_id = nil
	m.clearedFields[dtcdiagnosticstep.FieldFailNextStepID] = struct{}{}
}

// FailNextStepIDCleared returns if the "fail_next_step_id" field was cleared in this mutation.
func (m *DTCDiagnosticStepMutation) FailNextStepIDCleared() bool {
	_, ok := m.clearedFields[dtcdiagnosticstep.FieldFailNextStepID]
	return ok
}

// ResetFailNextStepID resets all changes to the "fail_next_step_id" field.
func (m *DTCDiagnosticStepMutation) ResetFailNextStepID() {
	m.fail_next_step_id = nil
	delete(m.clearedFields, dtcdiagnosticstep.FieldFailNextStepID)
}

// SetEvidenceCount sets the "evidence_count" field.
func (m *DTCDiagnosticStepMutation) SetEvidenceCount(i int) {
	m.evidence_count = &i
	m.addevidence_count = nil
}

// EvidenceCount returns the value of the "evidence_count" field in the mutation.
func (m *DTCDiagnosticStepMutation) EvidenceCount() (r int, exists bool) {
	v := m.evidence_count
	if v == nil {
		return
	}
	return *v, true
}

// OldEvidenceCount returns the old "evidence_count" field's value of the DTCDiagnosticStep entity.
// If the DTCDiagnosticStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DTCDiagnosticStepMutation) OldEvidenceCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvidenceCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvidenceCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvidenceCount: %w", err)
	}
	return oldValue.EvidenceCount, nil
}

// AddEvidenceCount adds i to the "evidence_count" field.
func (m *DTCDiagnosticStepMutation) AddEvidenceCount(i int) {
	if m.addevidence_count != nil {
		*m.addevidence_count += i
	} else {
		m.addevidence_count = &i
	}
}

// AddedEvidenceCount returns the value that was added to the "evidence_count" field in this mutation.
func (m *DTCDiagnosticStepMutation) AddedEvidenceCount() (r int, exists bool) {
	v := m.addevidence_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetEvidenceCount resets all changes to the "evidence_count" field.
func (m *DTCDiagnosticStepMutation) ResetEvidenceCount() {
	m.evidence_count = nil
	m.addevidence_count = nil
}

// SetAvgTrust sets the "avg_trust" field.
func (m *DTCDiagnosticStepMutation) SetAvgTrust(f float64) {
	m.avg_trust = &f
	m.addavg_trust = nil
}

// AvgTrust returns the value of the "avg_trust" field in the mutation.
func (m *DTCDiagnosticStepMutation) AvgTrust() (r float64, exists bool) {
	v := m.avg_trust
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgTrust returns the old "avg_trust" field's value of the DTCDiagnosticStep entity.
// If the DTCDiagnosticStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DTCDiagnosticStepMutation) OldAvgTrust(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgTrust is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgTrust requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgTrust: %w", err)
	}
	return oldValue.AvgTrust, nil
}

// AddAvgTrust adds f to the "avg_trust" field.
func (m *DTCDiagnosticStepMutation) AddAvgTrust(f float64) {
	if m.addavg_trust != nil {
		*m.addavg_trust += f
	} else {
		m.addavg_trust = &f
	}
}

// AddedAvgTrust returns the value that was added to the "avg_trust" field in this mutation.
func (m *DTCDiagnosticStepMutation) AddedAvgTrust() (r float64, exists bool) {
	v := m.addavg_trust
	if v == nil {
		return
	}
	return *v, true
}

// ResetAvgTrust resets all changes to the "avg_trust" field.
func (m *DTCDiagnosticStepMutation) ResetAvgTrust() {
	m.avg_trust = nil
	m.addavg_trust = nil
}

// SetAvgRelevance sets the "avg_relevance" field.
func (m *DTCDiagnosticStepMutation) SetAvgRelevance(f float64) {
	m.avg_relevance = &f
	m.addavg_relevance = nil
}

// AvgRelevance returns the value of the "avg_relevance" field in the mutation.
func (m *DTCDiagnosticStepMutation) AvgRelevance() (r float64, exists bool) {
	v := m.avg_relevance
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgRelevance returns the old "avg_relevance" field's value of the DTCDiagnosticStep entity.
// If the DTCDiagnosticStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DTCDiagnosticStepMutation) OldAvgRelevance(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgRelevance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgRelevance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgRelevance: %w", err)
	}
	return oldValue.AvgRelevance, nil
}

// AddAvgRelevance adds f to the "avg_relevance" field.
func (m *DTCDiagnosticStepMutation) AddAvgRelevance(f float64) {
	if m.addavg_relevance != nil {
		*m.addavg_relevance += f
	} else {
		m.addavg_relevance = &f
	}
}

// AddedAvgRelevance returns the value that was added to the "avg_relevance" field in this mutation.
func (m *DTCDiagnosticStepMutation) AddedAvgRelevance() (r float64, exists bool) {
	v := m.addavg_relevance
	if v == nil {
		return
	}
	return *v, true
}

// ResetAvgRelevance resets all changes to the "avg_relevance" field.
func (m *DTCDiagnosticStepMutation) ResetAvgRelevance() {
	m.avg_relevance = nil
	m.addavg_relevance = nil
}

// SetConflictFlag sets the "conflict_flag" field.
func (m *DTCDiagnosticStepMutation) SetConflictFlag(b bool) {
	m.conflict_flag = &b
}

// ConflictFlag returns the value of the "conflict_flag" field in the mutation.
func (m *DTCDiagnosticStepMutation) ConflictFlag() (r bool, exists bool) {
	v := m.conflict_flag
	if v == nil {
		return
	}
	return *v, true
}

// OldConflictFlag returns the old "conflict_flag" field's value of the DTCDiagnosticStep entity.
// If the DTCDiagnosticStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DTCDiagnosticStepMutation) OldConflictFlag(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConflictFlag is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConflictFlag requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConflictFlag: %w", err)
	}
	return oldValue.ConflictFlag, nil
}

// ResetConflictFlag resets all changes to the "conflict_flag" field.
func (m *DTCDiagnosticStepMutation) ResetConflictFlag() {
	m.conflict_flag = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DTCDiagnosticStepMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DTCDiagnosticStepMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DTCDiagnosticStep entity.
// If the DTCDiagnosticStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DTCDiagnosticStepMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DTCDiagnosticStepMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DTCDiagnosticStepMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DTCDiagnosticStepMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the DTCDiagnosticStep entity.
// If the DTCDiagnosticStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DTCDiagnosticStepMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DTCDiagnosticStepMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the DTCDiagnosticStepMutation builder.
func (m *DTCDiagnosticStepMutation) Where(ps ...predicate.DTCDiagnosticStep) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DTCDiagnosticStepMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DTCDiagnosticStepMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DTCDiagnosticStep, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DTCDiagnosticStepMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DTCDiagnosticStepMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DTCDiagnosticStep).
func (m *DTCDiagnosticStepMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DTCDiagnosticStepMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.dtc_master_id != nil {
		fields = append(fields, dtcdiagnosticstep.FieldDtcMasterID)
	}
	if m.step_order != nil {
		fields = append(fields, dtcdiagnosticstep.FieldStepOrder)
	}
	if m.instruction != nil {
		fields = append(fields, dtcdiagnosticstep.FieldInstruction)
	}
	if m.fingerprint != nil {
		fields = append(fields, dtcdiagnosticstep.FieldFingerprint)
	}
	if m.tools_required != nil {
		fields = append(fields, dtcdiagnosticstep.FieldToolsRequired)
	}
	if m.expected_values != nil {
		fields = append(fields, dtcdiagnosticstep.FieldExpectedValues)
	}
	if m.pass_next_step_id != nil {
		fields = append(fields, dtcdiagnosticstep.FieldPassNextStepID)
	}
	if m.fail_next_step_id != nil {
		fields = append(fields, dtcdiagnosticstep.FieldFailNextStepID)
	}
	if m.evidence_count != nil {
		fields = append(fields, dtcdiagnosticstep.FieldEvidenceCount)
	}
	if m.avg_trust != nil {
		fields = append(fields, dtcdiagnosticstep.FieldAvgTrust)
	}
	if m.avg_relevance != nil {
		fields = append(fields, dtcdiagnosticstep.FieldAvgRelevance)
	}
	if m.conflict_flag != nil {
		fields = append(fields, dtcdiagnosticstep.FieldConflictFlag)
	}
	if m.created_at != nil {
		fields = append(fields, dtcdiagnosticstep.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, dtcdiagnosticstep.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DTCDiagnosticStepMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case dtcdiagnosticstep.FieldDtcMasterID:
		return m.DtcMasterID()
	case dtcdiagnosticstep.FieldStepOrder:
		return m.StepOrder()
	case dtcdiagnosticstep.FieldInstruction:
		return m.Instruction()
	case dtcdiagnosticstep.FieldFingerprint:
		return m.Fingerprint()
	case dtcdiagnosticstep.FieldToolsRequired:
		return m.ToolsRequired()
	case dtcdiagnosticstep.FieldExpectedValues:
		return m.ExpectedValues()
	case dtcdiagnosticstep.FieldPassNextStepID:
		return m.PassNextStepID()
	case dtcdiagnosticstep.FieldFailNextStepID:
		return m.FailNextStepID()
	case dtcdiagnosticstep.FieldEvidenceCount:
		return m.EvidenceCount()
	case dtcdiagnosticstep.FieldAvgTrust:
		return m.AvgTrust()
	case dtcdiagnosticstep.FieldAvgRelevance:
		return m.AvgRelevance()
	case dtcdiagnosticstep.FieldConflictFlag:
		return m.ConflictFlag()
	case dtcdiagnosticstep.FieldCreatedAt:
		return m.CreatedAt()
	case dtcdiagnosticstep.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DTCDiagnosticStepMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case dtcdiagnosticstep.FieldDtcMasterID:
		return m.OldDtcMasterID(ctx)
	case dtcdiagnosticstep.FieldStepOrder:
		return m.OldStepOrder(ctx)
	case dtcdiagnosticstep.FieldInstruction:
		return m.OldInstruction(ctx)
	case dtcdiagnosticstep.FieldFingerprint:
		return m.OldFingerprint(ctx)
	case dtcdiagnosticstep.FieldToolsRequired:
		return m.OldToolsRequired(ctx)
	case dtcdiagnosticstep.FieldExpectedValues:
		return m.OldExpectedValues(ctx)
	case dtcdiagnosticstep.FieldPassNextStepID:
		return m.OldPassNextStepID(ctx)
	case dtcdiagnosticstep.FieldFailNextStepID:
		return m.OldFailNextStepID(ctx)
	case dtcdiagnosticstep.FieldEvidenceCount:
		return m.OldEvidenceCount(ctx)
	case dtcdiagnosticstep.FieldAvgTrust:
		return m.OldAvgTrust(ctx)
	case dtcdiagnosticstep.FieldAvgRelevance:
		return m.OldAvgRelevance(ctx)
	case dtcdiagnosticstep.FieldConflictFlag:
		return m.OldConflictFlag(ctx)
	case dtcdiagnosticstep.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case dtcdiagnosticstep.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DTCDiagnosticStep field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DTCDiagnosticStepMutation) SetField(name string, value ent.Value) error {
	switch name {
	case dtcdiagnosticstep.FieldDtcMasterID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDtcMasterID(v)
		return nil
	case dtcdiagnosticstep.FieldStepOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepOrder(v)
		return nil
	case dtcdiagnosticstep.FieldInstruction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstruction(v)
		return nil
	case dtcdiagnosticstep.FieldFingerprint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFingerprint(v)
		return nil
	case dtcdiagnosticstep.FieldToolsRequired:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolsRequired(v)
		return nil
	case dtcdiagnosticstep.FieldExpectedValues:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpectedValues(v)
		return nil
	case dtcdiagnosticstep.FieldPassNextStepID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPassNextStepID(v)
		return nil
	case dtcdiagnosticstep.FieldFailNextStepID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailNextStepID(v)
		return nil
	case dtcdiagnosticstep.FieldEvidenceCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvidenceCount(v)
		return nil
	case dtcdiagnosticstep.FieldAvgTrust:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgTrust(v)
		return nil
	case dtcdiagnosticstep.FieldAvgRelevance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgRelevance(v)
		return nil
	case dtcdiagnosticstep.FieldConflictFlag:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConflictFlag(v)
		return nil
	case dtcdiagnosticstep.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case dtcdiagnosticstep.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DTCDiagnosticStep field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DTCDiagnosticStepMutation) AddedFields() []string {
	var fields []string
	if m.addstep_order != nil {
		fields = append(fields, dtcdiagnosticstep.FieldStepOrder)
	}
	if m.addevidence_count != nil {
		fields = append(fields, dtcdiagnosticstep.FieldEvidenceCount)
	}
	if m.addavg_trust != nil {
		fields = append(fields, dtcdiagnosticstep.FieldAvgTrust)
	}
	if m.addavg_relevance != nil {
		fields = append(fields, dtcdiagnosticstep.FieldAvgRelevance)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DTCDiagnosticStepMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case dtcdiagnosticstep.FieldStepOrder:
		return m.AddedStepOrder()
	case dtcdiagnosticstep.FieldEvidenceCount:
		return m.AddedEvidenceCount()
	case dtcdiagnosticstep.FieldAvgTrust:
		return m.AddedAvgTrust()
	case dtcdiagnosticstep.FieldAvgRelevance:
		return m.AddedAvgRelevance()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DTCDiagnosticStepMutation) AddField(name string, value ent.Value) error {
	switch name {
	case dtcdiagnosticstep.FieldStepOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStepOrder(v)
		return nil
	case dtcdiagnosticstep.FieldEvidenceCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEvidenceCount(v)
		return nil
	case dtcdiagnosticstep.FieldAvgTrust:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgTrust(v)
		return nil
	case dtcdiagnosticstep.FieldAvgRelevance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgRelevance(v)
		return nil
	}
	return fmt.Errorf("unknown DTCDiagnosticStep numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DTCDiagnosticStepMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(dtcdiagnosticstep.FieldToolsRequired) {
		fields = append(fields, dtcdiagnosticstep.FieldToolsRequired)
	}
	if m.FieldCleared(dtcdiagnosticstep.FieldExpectedValues) {
		fields = append(fields, dtcdiagnosticstep.FieldExpectedValues)
	}
	if m.FieldCleared(dtcdiagnosticstep.FieldPassNextStepID) {
		fields = append(fields, dtcdiagnosticstep.FieldPassNextStepID)
	}
	if m.FieldCleared(dtcdiagnosticstep.FieldFailNextStepID) {
		fields = append(fields, dtcdiagnosticstep.FieldFailNextStepID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DTCDiagnosticStepMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DTCDiagnosticStepMutation) ClearField(name string) error {
	switch name {
	case dtcdiagnosticstep.FieldToolsRequired:
		m.ClearToolsRequired()
		return nil
	case dtcdiagnosticstep.FieldExpectedValues:
		m.ClearExpectedValues()
		return nil
	case dtcdiagnosticstep.FieldPassNextStepID:
		m.ClearPassNextStepID()
		return nil
	case dtcdiagnosticstep.FieldFailNextStepID:
		m.ClearFailNextStepID()
		return nil
	}
	return fmt.Errorf("unknown DTCDiagnosticStep nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DTCDiagnosticStepMutation) ResetField(name string) error {
	switch name {
	case dtcdiagnosticstep.FieldDtcMasterID:
		m.ResetDtcMasterID()
		return nil
	case dtcdiagnosticstep.FieldStepOrder:
		m.ResetStepOrder()
		return nil
	case dtcdiagnosticstep.FieldInstruction:
		m.ResetInstruction()
		return nil
	case dtcdiagnosticstep.FieldFingerprint:
		m.ResetFingerprint()
		return nil
	case dtcdiagnosticstep.FieldToolsRequired:
		m.ResetToolsRequired()
		return nil
	case dtcdiagnosticstep.FieldExpectedValues:
		m.ResetExpectedValues()
		return nil
	case dtcdiagnosticstep.FieldPassNextStepID:
		m.ResetPassNextStepID()
		return nil
	case dtcdiagnosticstep.FieldFailNextStepID:
		m.ResetFailNextStepID()
		return nil
	case dtcdiagnosticstep.FieldEvidenceCount:
		m.ResetEvidenceCount()
		return nil
	case dtcdiagnosticstep.FieldAvgTrust:
		m.ResetAvgTrust()
		return nil
	case dtcdiagnosticstep.FieldAvgRelevance:
		m.ResetAvgRelevance()
		return nil
	case dtcdiagnosticstep.FieldConflictFlag:
		m.ResetConflictFlag()
		return nil
	case dtcdiagnosticstep.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case dtcdiagnosticstep.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown DTCDiagnosticStep field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DTCDiagnosticStepMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DTCDiagnosticStepMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DTCDiagnosticStepMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DTCDiagnosticStepMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DTCDiagnosticStepMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DTCDiagnosticStepMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DTCDiagnosticStepMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DTCDiagnosticStep unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DTCDiagnosticStepMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DTCDiagnosticStep edge %s", name)
}

// DTCMasterMutation represents an operation that mutates the DTCMaster nodes in the graph.
type DTCMasterMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	code                 *string
	system_category      *string
	generic_description  *string
	description_trust    *float64
	adddescription_trust *float64
	severity_level       *int
	addseverity_level    *int
	emissions_related    *bool
	evidence_count       *int
	addevidence_count    *int
	avg_trust            *float64
	addavg_trust         *float64
	avg_relevance        *float64
	addavg_relevance     *float64
	confidence_score     *float64
	addconfidence_score  *float64
	conflict_flag        *bool
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*DTCMaster, error)
	predicates           []predicate.DTCMaster
}

var _ ent.Mutation = (*DTCMasterMutation)(nil)

// dtcmasterOption allows management of the mutation configuration using functional options.
type dtcmasterOption func(*DTCMasterMutation)

// newDTCMasterMutation creates new mutation for the DTCMaster entity.
func newDTCMasterMutation(c config, op Op, opts ...dtcmasterOption) *DTCMasterMutation {
	m := &DTCMasterMutation{
		config:        c,
		op:            op,
		typ:           TypeDTCMaster,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDTCMasterID sets the ID field of the mutation.
func withDTCMasterID(id string) dtcmasterOption {
	return func(m *DTCMasterMutation) {
		var (
			err   error
			once  sync.Once
			value *DTCMaster
		)
		m.oldValue = func(ctx context.Context) (*DTCMaster, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DTCMaster.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDTCMaster sets the old DTCMaster of the mutation.
func withDTCMaster(node *DTCMaster) dtcmasterOption {
	return func(m *DTCMasterMutation) {
		m.oldValue = func(context.Context) (*DTCMaster, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DTCMasterMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DTCMasterMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DTCMaster entities.
func (m *DTCMasterMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DTCMasterMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DTCMasterMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DTCMaster.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCode sets the "code" field.
func (m *DTCMasterMutation) SetCode(s string) {
	m.code = &s
}

// Code returns the value of the "code" field in the mutation.
func (m *DTCMasterMutation) Code() (r string, exists bool) {
	v := m.code
	if v == nil {
		return
	}
	return *v, true
}

// OldCode returns the old "code" field's value of the DTCMaster entity.
// If the DTCMaster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DTCMasterMutation) OldCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCode: %w", err)
	}
	return oldValue.Code, nil
}

// ResetCode resets all changes to the "code" field.
func (m *DTCMasterMutation) ResetCode() {
	m.code = nil
}

// SetSystemCategory sets the "system_category" field.
func (m *DTCMasterMutation) SetSystemCategory(s string) {
	m.system_category = &s
}

// SystemCategory returns the value of the "system_category" field in the mutation.
func (m *DTCMasterMutation) SystemCategory() (r string, exists bool) {
	v := m.system_category
	if v == nil {
		return
	}
	return *v, true
}

// OldSystemCategory returns the old "system_category" field's value of the DTCMaster entity.
// If the DTCMaster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DTCMasterMutation) OldSystemCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSystemCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSystemCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSystemCategory: %w", err)
	}
	return oldValue.SystemCategory, nil
}

// ResetSystemCategory resets all changes to the "system_category" field.
func (m *DTCMasterMutation) ResetSystemCategory() {
	m.system_category = nil
}

// SetGenericDescription sets the "generic_description" field.
func (m *DTCMasterMutation) SetGenericDescription(s string) {
	m.generic_description = &s
}

// GenericDescription returns the value of the "generic_description" field in the mutation.
func (m *DTCMasterMutation) GenericDescription() (r string, exists bool) {
	v := m.generic_description
	if v == nil {
		return
	}
	return *v, true
}

// OldGenericDescription returns the old "generic_description" field's value of the DTCMaster entity.
// If the DTCMaster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DTCMasterMutation) OldGenericDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGenericDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGenericDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGenericDescription: %w", err)
	}
	return oldValue.GenericDescription, nil
}

// ClearGenericDescription clears the value of the "generic_description" field.
func (m *DTCMasterMutation) ClearGenericDescription() {
	m.generic_description = nil
	m.clearedFields[dtcmaster.FieldGenericDescription] = struct{}{}
}

// GenericDescriptionCleared returns if the "generic_description" field was cleared in this mutation.
func (m *DTCMasterMutation) GenericDescriptionCleared() bool {
	_, ok := m.clearedFields[dtcmaster.FieldGenericDescription]
	return ok
}

// ResetGenericDescription resets all changes to the "generic_description" field.
func (m *DTCMasterMutation) ResetGenericDescription() {
	m.generic_description = nil
	delete(m.clearedFields, dtcmaster.FieldGenericDescription)
}

// SetDescriptionTrust sets the "description_trust" field.
func (m *DTCMasterMutation) SetDescriptionTrust(f float64) {
	m.description_trust = &f
	m.adddescription_trust = nil
}

// DescriptionTrust returns the value of the "description_trust" field in the mutation.
func (m *DTCMasterMutation) DescriptionTrust() (r float64, exists bool) {
	v := m.description_trust
	if v == nil {
		return
	}
	return *v, true
}

// OldDescriptionTrust returns the old "description_trust" field's value of the DTCMaster entity.
// If the DTCMaster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DTCMasterMutation) OldDescriptionTrust(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescriptionTrust is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescriptionTrust requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescriptionTrust: %w", err)
	}
	return oldValue.DescriptionTrust, nil
}

// AddDescriptionTrust adds f to the "description_trust" field.
func (m *DTCMasterMutation) AddDescriptionTrust(f float64) {
	if m.adddescription_trust != nil {
		*m.adddescription_trust += f
	} else {
		m.adddescription_trust = &f
	}
}

// AddedDescriptionTrust returns the value that was added to the "description_trust" field in this mutation.
func (m *DTCMasterMutation) AddedDescriptionTrust() (r float64, exists bool) {
	v := m.adddescription_trust
	if v == nil {
		return
	}
	return *v, true
}

// ResetDescriptionTrust resets all changes to the "description_trust" field.
func (m *DTCMasterMutation) ResetDescriptionTrust() {
	m.description_trust = nil
	m.adddescription_trust = nil
}

// SetSeverityLevel sets the "severity_level" field.
func (m *DTCMasterMutation) SetSeverityLevel(i int) {
	m.severity_level = &i
	m.addseverity_level = nil
}

// SeverityLevel returns the value of the "severity_level" field in the mutation.
func (m *DTCMasterMutation) SeverityLevel() (r int, exists bool) {
	v := m.severity_level
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverityLevel returns the old "severity_level" field's value of the DTCMaster entity.
// If the DTCMaster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DTCMasterMutation) OldSeverityLevel(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverityLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverityLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverityLevel: %w", err)
	}
	return oldValue.SeverityLevel, nil
}

// AddSeverityLevel adds i to the "severity_level" field.
func (m *DTCMasterMutation) AddSeverityLevel(i int) {
	if m.addseverity_level != nil {
		*m.addseverity_level += i
	} else {
		m.addseverity_level = &i
	}
}

// AddedSeverityLevel returns the value that was added to the "severity_level" field in this mutation.
func (m *DTCMasterMutation) AddedSeverityLevel() (r int, exists bool) {
	v := m.addseverity_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeverityLevel resets all changes to the "severity_level" field.
func (m *DTCMasterMutation) ResetSeverityLevel() {
	m.severity_level = nil
	m.addseverity_level = nil
}

// SetEmissionsRelated sets the "emissions_related" field.
func (m *DTCMasterMutation) SetEmissionsRelated(b bool) {
	m.emissions_related = &b
}

// EmissionsRelated returns the value of the "emissions_related" field in the mutation.
func (m *DTCMasterMutation) EmissionsRelated() (r bool, exists bool) {
	v := m.emissions_related
	if v == nil {
		return
	}
	return *v, true
}

// OldEmissionsRelated returns the old "emissions_related" field's value of the DTCMaster entity.
// If the DTCMaster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DTCMasterMutation) OldEmissionsRelated(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmissionsRelated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmissionsRelated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmissionsRelated: %w", err)
	}
	return oldValue.EmissionsRelated, nil
}

// ResetEmissionsRelated resets all changes to the "emissions_related" field.
func (m *DTCMasterMutation) ResetEmissionsRelated() {
	m.emissions_related = nil
}

// SetEvidenceCount sets the "evidence_count" field.
func (m *DTCMasterMutation) SetEvidenceCount(i int) {
	m.evidence_count = &i
	m.addevidence_count = nil
}

// EvidenceCount returns the value of the "evidence_count" field in the mutation.
func (m *DTCMasterMutation) EvidenceCount() (r int, exists bool) {
	v := m.evidence_count
	if v == nil {
		return
	}
	return *v, true
}

// OldEvidenceCount returns the old "evidence_count" field's value of the DTCMaster entity.
// If the DTCMaster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DTCMasterMutation) OldEvidenceCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvidenceCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvidenceCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvidenceCount: %w", err)
	}
	return oldValue.EvidenceCount, nil
}

// AddEvidenceCount adds i to the "evidence_count" field.
func (m *DTCMasterMutation) AddEvidenceCount(i int) {
	if m.addevidence_count != nil {
		*m.addevidence_count += i
	} else {
		m.addevidence_count = &i
	}
}

// AddedEvidenceCount returns the value that was added to the "evidence_count" field in this mutation.
func (m *DTCMasterMutation) AddedEvidenceCount() (r int, exists bool) {
	v := m.addevidence_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetEvidenceCount resets all changes to the "evidence_count" field.
func (m *DTCMasterMutation) ResetEvidenceCount() {
	m.evidence_count = nil
	m.addevidence_count = nil
}

// SetAvgTrust sets the "avg_trust" field.
func (m *DTCMasterMutation) SetAvgTrust(f float64) {
	m.avg_trust = &f
	m.addavg_trust = nil
}

// AvgTrust returns the value of the "avg_trust" field in the mutation.
func (m *DTCMasterMutation) AvgTrust() (r float64, exists bool) {
	v := m.avg_trust
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgTrust returns the old "avg_trust" field's value of the DTCMaster entity.
// If the DTCMaster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DTCMasterMutation) OldAvgTrust(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgTrust is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgTrust requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgTrust: %w", err)
	}
	return oldValue.AvgTrust, nil
}

// AddAvgTrust adds f to the "avg_trust" field.
func (m *DTCMasterMutation) AddAvgTrust(f float64) {
	if m.addavg_trust != nil {
		*m.addavg_trust += f
	} else {
		m.addavg_trust = &f
	}
}

// AddedAvgTrust returns the value that was added to the "avg_trust" field in this mutation.
func (m *DTCMasterMutation) AddedAvgTrust() (r float64, exists bool) {
	v := m.addavg_trust
	if v == nil {
		return
	}
	return *v, true
}

// ResetAvgTrust resets all changes to the "avg_trust" field.
func (m *DTCMasterMutation) ResetAvgTrust() {
	m.avg_trust = nil
	m.addavg_trust = nil
}

// SetAvgRelevance sets the "avg_relevance" field.
func (m *DTCMasterMutation) SetAvgRelevance(f float64) {
	m.avg_relevance = &f
	m.addavg_relevance = nil
}

// AvgRelevance returns the value of the "avg_relevance" field in the mutation.
func (m *DTCMasterMutation) AvgRelevance() (r float64, exists bool) {
	v := m.avg_relevance
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgRelevance returns the old "avg_relevance" field's value of the DTCMaster entity.
// If the DTCMaster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DTCMasterMutation) OldAvgRelevance(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgRelevance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgRelevance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgRelevance: %w", err)
	}
	return oldValue.AvgRelevance, nil
}

// AddAvgRelevance adds f to the "avg_relevance" field.
func (m *DTCMasterMutation) AddAvgRelevance(f float64) {
	if m.addavg_relevance != nil {
		*m.addavg_relevance += f
	} else {
		m.addavg_relevance = &f
	}
}

// AddedAvgRelevance returns the value that was added to the "avg_relevance" field in this mutation.
func (m *DTCMasterMutation) AddedAvgRelevance() (r float64, exists bool) {
	v := m.addavg_relevance
	if v == nil {
		return
	}
	return *v, true
}

// ResetAvgRelevance resets all changes to the "avg_relevance" field.
func (m *DTCMasterMutation) ResetAvgRelevance() {
	m.avg_relevance = nil
	m.addavg_relevance = nil
}

// SetConfidenceScore sets the "confidence_score" field.
func (m *DTCMasterMutation) SetConfidenceScore(f float64) {
	m.confidence_score = &f
	m.addconfidence_score = nil
}

// ConfidenceScore returns the value of the "confidence_score" field in the mutation.
func (m *DTCMasterMutation) ConfidenceScore() (r float64, exists bool) {
	v := m.confidence_score
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceScore returns the old "confidence_score" field's value of the DTCMaster entity.
// If the DTCMaster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DTCMasterMutation) OldConfidenceScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceScore: %w", err)
	}
	return oldValue.ConfidenceScore, nil
}

// AddConfidenceScore adds f to the "confidence_score" field.
func (m *DTCMasterMutation) AddConfidenceScore(f float64) {
	if m.addconfidence_score != nil {
		*m.addconfidence_score += f
	} else {
		m.addconfidence_score = &f
	}
}

// AddedConfidenceScore returns the value that was added to the "confidence_score" field in this mutation.
func (m *DTCMasterMutation) AddedConfidenceScore() (r float64, exists bool) {
	v := m.addconfidence_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidenceScore resets all changes to the "confidence_score" field.
func (m *DTCMasterMutation) ResetConfidenceScore() {
	m.confidence_score = nil
	m.addconfidence_score = nil
}

// SetConflictFlag sets the "conflict_flag" field.
func (m *DTCMasterMutation) SetConflictFlag(b bool) {
	m.conflict_flag = &b
}

// ConflictFlag returns the value of the "conflict_flag" field in the mutation.
func (m *DTCMasterMutation) ConflictFlag() (r bool, exists bool) {
	v := m.conflict_flag
	if v == nil {
		return
	}
	return *v, true
}

// OldConflictFlag returns the old "conflict_flag" field's value of the DTCMaster entity.
// If the DTCMaster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DTCMasterMutation) OldConflictFlag(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConflictFlag is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConflictFlag requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConflictFlag: %w", err)
	}
	return oldValue.ConflictFlag, nil
}

// ResetConflictFlag resets all changes to the "conflict_flag" field.
func (m *DTCMasterMutation) ResetConflictFlag() {
	m.conflict_flag = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DTCMasterMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DTCMasterMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DTCMaster entity.
// If the DTCMaster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DTCMasterMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DTCMasterMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DTCMasterMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DTCMasterMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the DTCMaster entity.
// If the DTCMaster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DTCMasterMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DTCMasterMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the DTCMasterMutation builder.
func (m *DTCMasterMutation) Where(ps ...predicate.DTCMaster) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DTCMasterMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DTCMasterMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DTCMaster, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DTCMasterMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DTCMasterMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DTCMaster).
func (m *DTCMasterMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DTCMasterMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.code != nil {
		fields = append(fields, dtcmaster.FieldCode)
	}
	if m.system_category != nil {
		fields = append(fields, dtcmaster.FieldSystemCategory)
	}
	if m.generic_description != nil {
		fields = append(fields, dtcmaster.FieldGenericDescription)
	}
	if m.description_trust != nil {
		fields = append(fields, dtcmaster.FieldDescriptionTrust)
	}
	if m.severity_level != nil {
		fields = append(fields, dtcmaster.FieldSeverityLevel)
	}
	if m.emissions_related != nil {
		fields = append(fields, dtcmaster.FieldEmissionsRelated)
	}
	if m.evidence_count != nil {
		fields = append(fields, dtcmaster.FieldEvidenceCount)
	}
	if m.avg_trust != nil {
		fields = append(fields, dtcmaster.FieldAvgTrust)
	}
	if m.avg_relevance != nil {
		fields = append(fields, dtcmaster.FieldAvgRelevance)
	}
	if m.confidence_score != nil {
		fields = append(fields, dtcmaster.FieldConfidenceScore)
	}
	if m.conflict_flag != nil {
		fields = append(fields, dtcmaster.FieldConflictFlag)
	}
	if m.created_at != nil {
		fields = append(fields, dtcmaster.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, dtcmaster.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DTCMasterMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case dtcmaster.FieldCode:
		return m.Code()
	case dtcmaster.FieldSystemCategory:
		return m.SystemCategory()
	case dtcmaster.FieldGenericDescription:
		return m.GenericDescription()
	case dtcmaster.FieldDescriptionTrust:
		return m.DescriptionTrust()
	case dtcmaster.FieldSeverityLevel:
		return m.SeverityLevel()
	case dtcmaster.FieldEmissionsRelated:
		return m.EmissionsRelated()
	case dtcmaster.FieldEvidenceCount:
		return m.EvidenceCount()
	case dtcmaster.FieldAvgTrust:
		return m.AvgTrust()
	case dtcmaster.FieldAvgRelevance:
		return m.AvgRelevance()
	case dtcmaster.FieldConfidenceScore:
		return m.ConfidenceScore()
	case dtcmaster.FieldConflictFlag:
		return m.ConflictFlag()
	case dtcmaster.FieldCreatedAt:
		return m.CreatedAt()
	case dtcmaster.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DTCMasterMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case dtcmaster.FieldCode:
		return m.OldCode(ctx)
	case dtcmaster.FieldSystemCategory:
		return m.OldSystemCategory(ctx)
	case dtcmaster.FieldGenericDescription:
		return m.OldGenericDescription(ctx)
	case dtcmaster.FieldDescriptionTrust:
		return m.OldDescriptionTrust(ctx)
	case dtcmaster.FieldSeverityLevel:
		return m.OldSeverityLevel(ctx)
	case dtcmaster.FieldEmissionsRelated:
		return m.OldEmissionsRelated(ctx)
	case dtcmaster.FieldEvidenceCount:
		return m.OldEvidenceCount(ctx)
	case dtcmaster.FieldAvgTrust:
		return m.OldAvgTrust(ctx)
	case dtcmaster.FieldAvgRelevance:
		return m.OldAvgRelevance(ctx)
	case dtcmaster.FieldConfidenceScore:
		return m.OldConfidenceScore(ctx)
	case dtcmaster.FieldConflictFlag:
		return m.OldConflictFlag(ctx)
	case dtcmaster.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case dtcmaster.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DTCMaster field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DTCMasterMutation) SetField(name string, value ent.Value) error {
	switch name {
	case dtcmaster.FieldCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCode(v)
		return nil
	case dtcmaster.FieldSystemCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSystemCategory(v)
		return nil
	case dtcmaster.FieldGenericDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGenericDescription(v)
		return nil
	case dtcmaster.FieldDescriptionTrust:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescriptionTrust(v)
		return nil
	case dtcmaster.FieldSeverityLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverityLevel(v)
		return nil
	case dtcmaster.FieldEmissionsRelated:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmissionsRelated(v)
		return nil
	case dtcmaster.FieldEvidenceCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvidenceCount(v)
		return nil
	case dtcmaster.FieldAvgTrust:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgTrust(v)
		return nil
	case dtcmaster.FieldAvgRelevance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgRelevance(v)
		return nil
	case dtcmaster.FieldConfidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceScore(v)
		return nil
	case dtcmaster.FieldConflictFlag:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConflictFlag(v)
		return nil
	case dtcmaster.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case dtcmaster.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DTCMaster field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DTCMasterMutation) AddedFields() []string {
	var fields []string
	if m.adddescription_trust != nil {
		fields = append(fields, dtcmaster.FieldDescriptionTrust)
	}
	if m.addseverity_level != nil {
		fields = append(fields, dtcmaster.FieldSeverityLevel)
	}
	if m.addevidence_count != nil {
		fields = append(fields, dtcmaster.FieldEvidenceCount)
	}
	if m.addavg_trust != nil {
		fields = append(fields, dtcmaster.FieldAvgTrust)
	}
	if m.addavg_relevance != nil {
		fields = append(fields, dtcmaster.FieldAvgRelevance)
	}
	if m.addconfidence_score != nil {
		fields = append(fields, dtcmaster.FieldConfidenceScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DTCMasterMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case dtcmaster.FieldDescriptionTrust:
		return m.AddedDescriptionTrust()
	case dtcmaster.FieldSeverityLevel:
		return m.AddedSeverityLevel()
	case dtcmaster.FieldEvidenceCount:
		return m.AddedEvidenceCount()
	case dtcmaster.FieldAvgTrust:
		return m.AddedAvgTrust()
	case dtcmaster.FieldAvgRelevance:
		return m.AddedAvgRelevance()
	case dtcmaster.FieldConfidenceScore:
		return m.AddedConfidenceScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DTCMasterMutation) AddField(name string, value ent.Value) error {
	switch name {
	case dtcmaster.FieldDescriptionTrust:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDescriptionTrust(v)
		return nil
	case dtcmaster.FieldSeverityLevel:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeverityLevel(v)
		return nil
	case dtcmaster.FieldEvidenceCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEvidenceCount(v)
		return nil
	case dtcmaster.FieldAvgTrust:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgTrust(v)
		return nil
	case dtcmaster.FieldAvgRelevance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgRelevance(v)
		return nil
	case dtcmaster.FieldConfidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidenceScore(v)
		return nil
	}
	return fmt.Errorf("unknown DTCMaster numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DTCMasterMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(dtcmaster.FieldGenericDescription) {
		fields = append(fields, dtcmaster.FieldGenericDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DTCMasterMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DTCMasterMutation) ClearField(name string) error {
	switch name {
	case dtcmaster.FieldGenericDescription:
		m.ClearGenericDescription()
		return nil
	}
	return fmt.Errorf("unknown DTCMaster nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DTCMasterMutation) ResetField(name string) error {
	switch name {
	case dtcmaster.FieldCode:
		m.ResetCode()
		return nil
	case dtcmaster.FieldSystemCategory:
		m.ResetSystemCategory()
		return nil
	case dtcmaster.FieldGenericDescription:
		m.ResetGenericDescription()
		return nil
	case dtcmaster.FieldDescriptionTrust:
		m.ResetDescriptionTrust()
		return nil
	case dtcmaster.FieldSeverityLevel:
		m.ResetSeverityLevel()
		return nil
	case dtcmaster.FieldEmissionsRelated:
		m.ResetEmissionsRelated()
		return nil
	case dtcmaster.FieldEvidenceCount:
		m.ResetEvidenceCount()
		return nil
	case dtcmaster.FieldAvgTrust:
		m.ResetAvgTrust()
		return nil
	case dtcmaster.FieldAvgRelevance:
		m.ResetAvgRelevance()
		return nil
	case dtcmaster.FieldConfidenceScore:
		m.ResetConfidenceScore()
		return nil
	case dtcmaster.FieldConflictFlag:
		m.ResetConflictFlag()
		return nil
	case dtcmaster.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case dtcmaster.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown DTCMaster field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DTCMasterMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DTCMasterMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DTCMasterMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DTCMasterMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DTCMasterMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DTCMasterMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DTCMasterMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DTCMaster unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DTCMasterMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DTCMaster edge %s", name)
}

// DTCRelatedSensorMutation represents an operation that mutates the DTCRelatedSensor nodes in the graph.
type DTCRelatedSensorMutation struct {
	config
	op                Op
	typ               string
	id                *string
	dtc_master_id     *string
	sensor_id         *string
	priority_rank     *int
	addpriority_rank  *int
	evidence_count    *int
	addevidence_count *int
	avg_trust         *float64
	addavg_trust      *float64
	avg_relevance     *float64
	addavg_relevance  *float64
	conflict_flag     *bool
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*DTCRelatedSensor, error)
	predicates        []predicate.DTCRelatedSensor
}

var _ ent.Mutation = (*DTCRelatedSensorMutation)(nil)

// dtcrelatedsensorOption allows management of the mutation configuration using functional options.
type dtcrelatedsensorOption func(*DTCRelatedSensorMutation)

// newDTCRelatedSensorMutation creates new mutation for the DTCRelatedSensor entity.
func newDTCRelatedSensorMutation(c config, op Op, opts ...dtcrelatedsensorOption) *DTCRelatedSensorMutation {
	m := &DTCRelatedSensorMutation{
		config:        c,
		op:            op,
		typ:           TypeDTCRelatedSensor,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDTCRelatedSensorID sets the ID field of the mutation.
func withDTCRelatedSensorID(id string) dtcrelatedsensorOption {
	return func(m *DTCRelatedSensorMutation) {
		var (
			err   error
			once  sync.Once
			value *DTCRelatedSensor
		)
		m.oldValue = func(ctx context.Context) (*DTCRelatedSensor, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DTCRelatedSensor.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDTCRelatedSensor sets the old DTCRelatedSensor of the mutation.
func withDTCRelatedSensor(node *DTCRelatedSensor) dtcrelatedsensorOption {
	return func(m *DTCRelatedSensorMutation) {
		m.oldValue = func(context.Context) (*DTCRelatedSensor, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DTCRelatedSensorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DTCRelatedSensorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DTCRelatedSensor entities.
func (m *DTCRelatedSensorMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DTCRelatedSensorMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DTCRelatedSensorMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DTCRelatedSensor.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDtcMasterID sets the "dtc_master_id" field.
func (m *DTCRelatedSensorMutation) SetDtcMasterID(s string) {
	m.dtc_master_id = &s
}

// DtcMasterID returns the value of the "dtc_master_id" field in the mutation.
func (m *DTCRelatedSensorMutation) DtcMasterID() (r string, exists bool) {
	v := m.dtc_master_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDtcMasterID returns the old "dtc_master_id" field's value of the DTCRelatedSensor entity.
// If the DTCRelatedSensor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DTCRelatedSensorMutation) OldDtcMasterID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDtcMasterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDtcMasterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDtcMasterID: %w", err)
	}
	return oldValue.DtcMasterID, nil
}

// ResetDtcMasterID resets all changes to the "dtc_master_id" field.
func (m *DTCRelatedSensorMutation) ResetDtcMasterID() {
	m.dtc_master_id = nil
}

// SetSensorID sets the "sensor_id" field.
func (m *DTCRelatedSensorMutation) SetSensorID(s string) {
	m.sensor_id = &s
}

// SensorID returns the value of the "sensor_id" field in the mutation.
func (m *DTCRelatedSensorMutation) SensorID() (r string, exists bool) {
	v := m.sensor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSensorID returns the old "sensor_id" field's value of the DTCRelatedSensor entity.
// If the DTCRelatedSensor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DTCRelatedSensorMutation) OldSensorID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSensorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSensorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSensorID: %w", err)
	}
	return oldValue.SensorID, nil
}

// ResetSensorID resets all changes to the "sensor_id" field.
func (m *DTCRelatedSensorMutation) ResetSensorID() {
	m.sensor_id = nil
}

// SetPriorityRank sets the "priority_rank" field.
func (m *DTCRelatedSensorMutation) SetPriorityRank(i int) {
	m.priority_rank = &i
	m.addpriority_rank = nil
}

// PriorityRank returns the value of the "priority_rank" field in the mutation.
func (m *DTCRelatedSensorMutation) PriorityRank() (r int, exists bool) {
	v := m.priority_rank
	if v == nil {
		return
	}
	return *v, true
}

// OldPriorityRank returns the old "priority_rank" field's value of the DTCRelatedSensor entity.
// If the DTCRelatedSensor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DTCRelatedSensorMutation) OldPriorityRank(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriorityRank is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriorityRank requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriorityRank: %w", err)
	}
	return oldValue.PriorityRank, nil
}

// AddPriorityRank adds i to the "priority_rank" field.
func (m *DTCRelatedSensorMutation) AddPriorityRank(i int) {
	if m.addpriority_rank != nil {
		*m.addpriority_rank += i
	} else {
		m.addpriority_rank = &i
	}
}

// AddedPriorityRank returns the value that was added to the "priority_rank" field in this mutation.
func (m *DTCRelatedSensorMutation) AddedPriorityRank() (r int, exists bool) {
	v := m.addpriority_rank
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriorityRank resets all changes to the "priority_rank" field.
func (m *DTCRelatedSensorMutation) ResetPriorityRank() {
	m.priority_rank = nil
	m.addpriority_rank = nil
}

// SetEvidenceCount sets the "evidence_count" field.
func (m *DTCRelatedSensorMutation) SetEvidenceCount(i int) {
	m.evidence_count = &i
	m.addevidence_count = nil
}

// EvidenceCount returns the value of the "evidence_count" field in the mutation.
func (m *DTCRelatedSensorMutation) EvidenceCount() (r int, exists bool) {
	v := m.evidence_count
	if v == nil {
		return
	}
	return *v, true
}

// OldEvidenceCount returns the old "evidence_count" field's value of the DTCRelatedSensor entity.
// If the DTCRelatedSensor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DTCRelatedSensorMutation) OldEvidenceCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvidenceCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvidenceCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvidenceCount: %w", err)
	}
	return oldValue.EvidenceCount, nil
}

// AddEvidenceCount adds i to the "evidence_count" field.
func (m *DTCRelatedSensorMutation) AddEvidenceCount(i int) {
	if m.addevidence_count != nil {
		*m.addevidence_count += i
	} else {
		m.addevidence_count = &i
	}
}

// AddedEvidenceCount returns the value that was added to the "evidence_count" field in this mutation.
func (m *DTCRelatedSensorMutation) AddedEvidenceCount() (r int, exists bool) {
	v := m.addevidence_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetEvidenceCount resets all changes to the "evidence_count" field.
func (m *DTCRelatedSensorMutation) ResetEvidenceCount() {
	m.evidence_count = nil
	m.addevidence_count = nil
}

// SetAvgTrust sets the "avg_trust" field.
func (m *DTCRelatedSensorMutation) SetAvgTrust(f float64) {
	m.avg_trust = &f
	m.addavg_trust = nil
}

// AvgTrust returns the value of the "avg_trust" field in the mutation.
func (m *DTCRelatedSensorMutation) AvgTrust() (r float64, exists bool) {
	v := m.avg_trust
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgTrust returns the old "avg_trust" field's value of the DTCRelatedSensor entity.
// If the DTCRelatedSensor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DTCRelatedSensorMutation) OldAvgTrust(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgTrust is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgTrust requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgTrust: %w", err)
	}
	return oldValue.AvgTrust, nil
}

// AddAvgTrust adds f to the "avg_trust" field.
func (m *DTCRelatedSensorMutation) AddAvgTrust(f float64) {
	if m.addavg_trust != nil {
		*m.addavg_trust += f
	} else {
		m.addavg_trust = &f
	}
}

// AddedAvgTrust returns the value that was added to the "avg_trust" field in this mutation.
func (m *DTCRelatedSensorMutation) AddedAvgTrust() (r float64, exists bool) {
	v := m.addavg_trust
	if v == nil {
		return
	}
	return *v, true
}

// ResetAvgTrust resets all changes to the "avg_trust" field.
func (m *DTCRelatedSensorMutation) ResetAvgTrust() {
	m.avg_trust = nil
	m.addavg_trust = nil
}

// SetAvgRelevance sets the "avg_relevance" field.
func (m *DTCRelatedSensorMutation) SetAvgRelevance(f float64) {
	m.avg_relevance = &f
	m.addavg_relevance = nil
}

// AvgRelevance returns the value of the "avg_relevance" field in the mutation.
func (m *DTCRelatedSensorMutation) AvgRelevance() (r float64, exists bool) {
	v := m.avg_relevance
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgRelevance returns the old "avg_relevance" field's value of the DTCRelatedSensor entity.
// If the DTCRelatedSensor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DTCRelatedSensorMutation) OldAvgRelevance(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgRelevance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgRelevance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgRelevance: %w", err)
	}
	return oldValue.AvgRelevance, nil
}

// AddAvgRelevance adds f to the "avg_relevance" field.
func (m *DTCRelatedSensorMutation) AddAvgRelevance(f float64) {
	if m.addavg_relevance != nil {
		*m.addavg_relevance += f
	} else {
		m.addavg_relevance = &f
	}
}

// AddedAvgRelevance returns the value that was added to the "avg_relevance" field in this mutation.
func (m *DTCRelatedSensorMutation) AddedAvgRelevance() (r float64, exists bool) {
	v := m.addavg_relevance
	if v == nil {
		return
	}
	return *v, true
}

// ResetAvgRelevance resets all changes to the "avg_relevance" field.
func (m *DTCRelatedSensorMutation) ResetAvgRelevance() {
	m.avg_relevance = nil
	m.addavg_relevance = nil
}

// SetConflictFlag sets the "conflict_flag" field.
func (m *DTCRelatedSensorMutation) SetConflictFlag(b bool) {
	m.conflict_flag = &b
}

// ConflictFlag returns the value of the "conflict_flag" field in the mutation.
func (m *DTCRelatedSensorMutation) ConflictFlag() (r bool, exists bool) {
	v := m.conflict_flag
	if v == nil {
		return
	}
	return *v, true
}

// OldConflictFlag returns the old "conflict_flag" field's value of the DTCRelatedSensor entity.
// If the DTCRelatedSensor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DTCRelatedSensorMutation) OldConflictFlag(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConflictFlag is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConflictFlag requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConflictFlag: %w", err)
	}
	return oldValue.ConflictFlag, nil
}

// ResetConflictFlag resets all changes to the "conflict_flag" field.
func (m *DTCRelatedSensorMutation) ResetConflictFlag() {
	m.conflict_flag = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DTCRelatedSensorMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DTCRelatedSensorMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DTCRelatedSensor entity.
// If the DTCRelatedSensor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DTCRelatedSensorMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DTCRelatedSensorMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DTCRelatedSensorMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DTCRelatedSensorMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the DTCRelatedSensor entity.
// If the DTCRelatedSensor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DTCRelatedSensorMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DTCRelatedSensorMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the DTCRelatedSensorMutation builder.
func (m *DTCRelatedSensorMutation) Where(ps ...predicate.DTCRelatedSensor) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DTCRelatedSensorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DTCRelatedSensorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DTCRelatedSensor, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DTCRelatedSensorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DTCRelatedSensorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DTCRelatedSensor).
func (m *DTCRelatedSensorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DTCRelatedSensorMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.dtc_master_id != nil {
		fields = append(fields, dtcrelatedsensor.FieldDtcMasterID)
	}
	if m.sensor_id != nil {
		fields = append(fields, dtcrelatedsensor.FieldSensorID)
	}
	if m.priority_rank != nil {
		fields = append(fields, dtcrelatedsensor.FieldPriorityRank)
	}
	if m.evidence_count != nil {
		fields = append(fields, dtcrelatedsensor.FieldEvidenceCount)
	}
	if m.avg_trust != nil {
		fields = append(fields, dtcrelatedsensor.FieldAvgTrust)
	}
	if m.avg_relevance != nil {
		fields = append(fields, dtcrelatedsensor.FieldAvgRelevance)
	}
	if m.conflict_flag != nil {
		fields = append(fields, dtcrelatedsensor.FieldConflictFlag)
	}
	if m.created_at != nil {
		fields = append(fields, dtcrelatedsensor.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, dtcrelatedsensor.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DTCRelatedSensorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case dtcrelatedsensor.FieldDtcMasterID:
		return m.DtcMasterID()
	case dtcrelatedsensor.FieldSensorID:
		return m.SensorID()
	case dtcrelatedsensor.FieldPriorityRank:
		return m.PriorityRank()
	case dtcrelatedsensor.FieldEvidenceCount:
		return m.EvidenceCount()
	case dtcrelatedsensor.FieldAvgTrust:
		return m.AvgTrust()
	case dtcrelatedsensor.FieldAvgRelevance:
		return m.AvgRelevance()
	case dtcrelatedsensor.FieldConflictFlag:
		return m.ConflictFlag()
	case dtcrelatedsensor.FieldCreatedAt:
		return m.CreatedAt()
	case dtcrelatedsensor.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DTCRelatedSensorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case dtcrelatedsensor.FieldDtcMasterID:
		return m.OldDtcMasterID(ctx)
	case dtcrelatedsensor.FieldSensorID:
		return m.OldSensorID(ctx)
	case dtcrelatedsensor.FieldPriorityRank:
		return m.OldPriorityRank(ctx)
	case dtcrelatedsensor.FieldEvidenceCount:
		return m.OldEvidenceCount(ctx)
	case dtcrelatedsensor.FieldAvgTrust:
		return m.OldAvgTrust(ctx)
	case dtcrelatedsensor.FieldAvgRelevance:
		return m.OldAvgRelevance(ctx)
	case dtcrelatedsensor.FieldConflictFlag:
		return m.OldConflictFlag(ctx)
	case dtcrelatedsensor.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case dtcrelatedsensor.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DTCRelatedSensor field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DTCRelatedSensorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case dtcrelatedsensor.FieldDtcMasterID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDtcMasterID(v)
		return nil
	case dtcrelatedsensor.FieldSensorID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSensorID(v)
		return nil
	case dtcrelatedsensor.FieldPriorityRank:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriorityRank(v)
		return nil
	case dtcrelatedsensor.FieldEvidenceCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvidenceCount(v)
		return nil
	case dtcrelatedsensor.FieldAvgTrust:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgTrust(v)
		return nil
	case dtcrelatedsensor.FieldAvgRelevance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgRelevance(v)
		return nil
	case dtcrelatedsensor.FieldConflictFlag:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConflictFlag(v)
		return nil
	case dtcrelatedsensor.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case dtcrelatedsensor.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DTCRelatedSensor field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DTCRelatedSensorMutation) AddedFields() []string {
	var fields []string
	if m.addpriority_rank != nil {
		fields = append(fields, dtcrelatedsensor.FieldPriorityRank)
	}
	if m.addevidence_count != nil {
		fields = append(fields, dtcrelatedsensor.FieldEvidenceCount)
	}
	if m.addavg_trust != nil {
		fields = append(fields, dtcrelatedsensor.FieldAvgTrust)
	}
	if m.addavg_relevance != nil {
		fields = append(fields, dtcrelatedsensor.FieldAvgRelevance)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DTCRelatedSensorMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case dtcrelatedsensor.FieldPriorityRank:
		return m.AddedPriorityRank()
	case dtcrelatedsensor.FieldEvidenceCount:
		return m.AddedEvidenceCount()
	case dtcrelatedsensor.FieldAvgTrust:
		return m.AddedAvgTrust()
	case dtcrelatedsensor.FieldAvgRelevance:
		return m.AddedAvgRelevance()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DTCRelatedSensorMutation) AddField(name string, value ent.Value) error {
	switch name {
	case dtcrelatedsensor.FieldPriorityRank:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriorityRank(v)
		return nil
	case dtcrelatedsensor.FieldEvidenceCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEvidenceCount(v)
		return nil
	case dtcrelatedsensor.FieldAvgTrust:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgTrust(v)
		return nil
	case dtcrelatedsensor.FieldAvgRelevance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgRelevance(v)
		return nil
	}
	return fmt.Errorf("unknown DTCRelatedSensor numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DTCRelatedSensorMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DTCRelatedSensorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DTCRelatedSensorMutation) ClearField(name string) error {
	return fmt.Errorf("unknown DTCRelatedSensor nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DTCRelatedSensorMutation) ResetField(name string) error {
	switch name {
	case dtcrelatedsensor.FieldDtcMasterID:
		m.ResetDtcMasterID()
		return nil
	case dtcrelatedsensor.FieldSensorID:
		m.ResetSensorID()
		return nil
	case dtcrelatedsensor.FieldPriorityRank:
		m.ResetPriorityRank()
		return nil
	case dtcrelatedsensor.FieldEvidenceCount:
		m.ResetEvidenceCount()
		return nil
	case dtcrelatedsensor.FieldAvgTrust:
		m.ResetAvgTrust()
		return nil
	case dtcrelatedsensor.FieldAvgRelevance:
		m.ResetAvgRelevance()
		return nil
	case dtcrelatedsensor.FieldConflictFlag:
		m.ResetConflictFlag()
		return nil
	case dtcrelatedsensor.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case dtcrelatedsensor.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown DTCRelatedSensor field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DTCRelatedSensorMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DTCRelatedSensorMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DTCRelatedSensorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DTCRelatedSensorMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DTCRelatedSensorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DTCRelatedSensorMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DTCRelatedSensorMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DTCRelatedSensor unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DTCRelatedSensorMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DTCRelatedSensor edge %s", name)
}

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	title                  *string
	source_url             *string
	content_hash           *string
	mime_type              *string
	blob_bucket            *string
	blob_key               *string
	processing_stage       *document.ProcessingStage
	error_message          *string
	chunk_count            *int
	addchunk_count         *int
	document_category      *string
	confidence_score       *float64
	addconfidence_score    *float64
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	chunks                 map[string]struct{}
	removedchunks          map[string]struct{}
	clearedchunks          bool
	processing_logs        map[string]struct{}
	removedprocessing_logs map[string]struct{}
	clearedprocessing_logs bool
	done                   bool
	oldValue               func(context.Context) (*Document, error)
	predicates             []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id string) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Document entities.
func (m *DocumentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *DocumentMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *DocumentMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *DocumentMutation) ResetTitle() {
	m.title = nil
}

// SetSourceURL sets the "source_url" field.
func (m *DocumentMutation) SetSourceURL(s string) {
	m.source_url = &s
}

// SourceURL returns the value of the "source_url" field in the mutation.
func (m *DocumentMutation) SourceURL() (r string, exists bool) {
	v := m.source_url
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceURL returns the old "source_url" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldSourceURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceURL: %w", err)
	}
	return oldValue.SourceURL, nil
}

// ClearSourceURL clears the value of the "source_url" field.
func (m *DocumentMutation) ClearSourceURL() {
	m.source_url = nil
	m.clearedFields[document.FieldSourceURL] = struct{}{}
}

// SourceURLCleared returns if the "source_url" field was cleared in this mutation.
func (m *DocumentMutation) SourceURLCleared() bool {
	_, ok := m.clearedFields[document.FieldSourceURL]
	return ok
}

// ResetSourceURL resets all changes to the "source_url" field.
func (m *DocumentMutation) ResetSourceURL() {
	m.source_url = nil
	delete(m.clearedFields, document.FieldSourceURL)
}

// SetContentHash sets the "content_hash" field.
func (m *DocumentMutation) SetContentHash(s string) {
	m.content_hash = &s
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *DocumentMutation) ContentHash() (r string, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldContentHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *DocumentMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetMimeType sets the "mime_type" field.
func (m *DocumentMutation) SetMimeType(s string) {
	m.mime_type = &s
}

// MimeType returns the value of the "mime_type" field in the mutation.
func (m *DocumentMutation) MimeType() (r string, exists bool) {
	v := m.mime_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMimeType returns the old "mime_type" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldMimeType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMimeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMimeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMimeType: %w", err)
	}
	return oldValue.MimeType, nil
}

// ResetMimeType resets all changes to the "mime_type" field.
func (m *DocumentMutation) ResetMimeType() {
	m.mime_type = nil
}

// SetBlobBucket sets the "blob_bucket" field.
func (m *DocumentMutation) SetBlobBucket(s string) {
	m.blob_bucket = &s
}

// BlobBucket returns the value of the "blob_bucket" field in the mutation.
func (m *DocumentMutation) BlobBucket() (r string, exists bool) {
	v := m.blob_bucket
	if v == nil {
		return
	}
	return *v, true
}

// OldBlobBucket returns the old "blob_bucket" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldBlobBucket(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlobBucket is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlobBucket requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlobBucket: %w", err)
	}
	return oldValue.BlobBucket, nil
}

// ClearBlobBucket clears the value of the "blob_bucket" field.
func (m *DocumentMutation) ClearBlobBucket() {
	m.blob_bucket = nil
	m.clearedFields[document.FieldBlobBucket] = struct{}{}
}

// BlobBucketCleared returns if the "blob_bucket" field was cleared in this mutation.
func (m *DocumentMutation) BlobBucketCleared() bool {
	_, ok := m.clearedFields[document.FieldBlobBucket]
	return ok
}

// ResetBlobBucket resets all changes to the "blob_bucket" field.
func (m *DocumentMutation) ResetBlobBucket() {
	m.blob_bucket = nil
	delete(m.clearedFields, document.FieldBlobBucket)
}

// SetBlobKey sets the "blob_key" field.
func (m *DocumentMutation) SetBlobKey(s string) {
	m.blob_key = &s
}

// BlobKey returns the value of the "blob_key" field in the mutation.
func (m *DocumentMutation) BlobKey() (r string, exists bool) {
	v := m.blob_key
	if v == nil {
		return
	}
	return *v, true
}

// OldBlobKey returns the old "blob_key" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldBlobKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlobKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlobKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlobKey: %w", err)
	}
	return oldValue.BlobKey, nil
}

// ClearBlobKey clears the value of the "blob_key" field.
func (m *DocumentMutation) ClearBlobKey() {
	m.blob_key = nil
	m.clearedFields[document.FieldBlobKey] = struct{}{}
}

// BlobKeyCleared returns if the "blob_key" field was cleared in this mutation.
func (m *DocumentMutation) BlobKeyCleared() bool {
	_, ok := m.clearedFields[document.FieldBlobKey]
	return ok
}

// ResetBlobKey resets all changes to the "blob_key" field.
func (m *DocumentMutation) ResetBlobKey() {
	m.blob_key = nil
	delete(m.clearedFields, document.FieldBlobKey)
}

// SetProcessingStage sets the "processing_stage" field.
func (m *DocumentMutation) SetProcessingStage(ds document.ProcessingStage) {
	m.processing_stage = &ds
}

// ProcessingStage returns the value of the "processing_stage" field in the mutation.
func (m *DocumentMutation) ProcessingStage() (r document.ProcessingStage, exists bool) {
	v := m.processing_stage
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingStage returns the old "processing_stage" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldProcessingStage(ctx context.Context) (v document.ProcessingStage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingStage: %w", err)
	}
	return oldValue.ProcessingStage, nil
}

// ResetProcessingStage resets all changes to the "processing_stage" field.
func (m *DocumentMutation) ResetProcessingStage() {
	m.processing_stage = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *DocumentMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *DocumentMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *DocumentMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[document.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *DocumentMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[document.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *DocumentMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, document.FieldErrorMessage)
}

// SetChunkCount sets the "chunk_count" field.
func (m *DocumentMutation) SetChunkCount(i int) {
	m.chunk_count = &i
	m.addchunk_count = nil
}

// ChunkCount returns the value of the "chunk_count" field in the mutation.
func (m *DocumentMutation) ChunkCount() (r int, exists bool) {
	v := m.chunk_count
	if v == nil {
		return
	}
	return *v, true
}

// OldChunkCount returns the old "chunk_count" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldChunkCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChunkCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChunkCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChunkCount: %w", err)
	}
	return oldValue.ChunkCount, nil
}

// AddChunkCount adds i to the "chunk_count" field.
func (m *DocumentMutation) AddChunkCount(i int) {
	if m.addchunk_count != nil {
		*m.addchunk_count += i
	} else {
		m.addchunk_count = &i
	}
}

// AddedChunkCount returns the value that was added to the "chunk_count" field in this mutation.
func (m *DocumentMutation) AddedChunkCount() (r int, exists bool) {
	v := m.addchunk_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetChunkCount resets all changes to the "chunk_count" field.
func (m *DocumentMutation) ResetChunkCount() {
	m.chunk_count = nil
	m.addchunk_count = nil
}

// SetDocumentCategory sets the "document_category" field.
func (m *DocumentMutation) SetDocumentCategory(s string) {
	m.document_category = &s
}

// DocumentCategory returns the value of the "document_category" field in the mutation.
func (m *DocumentMutation) DocumentCategory() (r string, exists bool) {
	v := m.document_category
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentCategory returns the old "document_category" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldDocumentCategory(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentCategory: %w", err)
	}
	return oldValue.DocumentCategory, nil
}

// ClearDocumentCategory clears the value of the "document_category" field.
func (m *DocumentMutation) ClearDocumentCategory() {
	m.document_category = nil
	m.clearedFields[document.FieldDocumentCategory] = struct{}{}
}

// DocumentCategoryCleared returns if the "document_category" field was cleared in this mutation.
func (m *DocumentMutation) DocumentCategoryCleared() bool {
	_, ok := m.clearedFields[document.FieldDocumentCategory]
	return ok
}

// ResetDocumentCategory resets all changes to the "document_category" field.
func (m *DocumentMutation) ResetDocumentCategory() {
	m.document_category = nil
	delete(m.clearedFields, document.FieldDocumentCategory)
}

// SetConfidenceScore sets the "confidence_score" field.
func (m *DocumentMutation) SetConfidenceScore(f float64) {
	m.confidence_score = &f
	m.addconfidence_score = nil
}

// ConfidenceScore returns the value of the "confidence_score" field in the mutation.
func (m *DocumentMutation) ConfidenceScore() (r float64, exists bool) {
	v := m.confidence_score
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceScore returns the old "confidence_score" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldConfidenceScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceScore: %w", err)
	}
	return oldValue.ConfidenceScore, nil
}

// AddConfidenceScore adds f to the "confidence_score" field.
func (m *DocumentMutation) AddConfidenceScore(f float64) {
	if m.addconfidence_score != nil {
		*m.addconfidence_score += f
	} else {
		m.addconfidence_score = &f
	}
}

// AddedConfidenceScore returns the value that was added to the "confidence_score" field in this mutation.
func (m *DocumentMutation) AddedConfidenceScore() (r float64, exists bool) {
	v := m.addconfidence_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidenceScore clears the value of the "confidence_score" field.
func (m *DocumentMutation) ClearConfidenceScore() {
	m.confidence_score = nil
	m.addconfidence_score = nil
	m.clearedFields[document.FieldConfidenceScore] = struct{}{}
}

// ConfidenceScoreCleared returns if the "confidence_score" field was cleared in this mutation.
func (m *DocumentMutation) ConfidenceScoreCleared() bool {
	_, ok := m.clearedFields[document.FieldConfidenceScore]
	return ok
}

// ResetConfidenceScore resets all changes to the "confidence_score" field.
func (m *DocumentMutation) ResetConfidenceScore() {
	m.confidence_score = nil
	m.addconfidence_score = nil
	delete(m.clearedFields, document.FieldConfidenceScore)
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DocumentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DocumentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DocumentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DocumentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddChunkIDs adds the "chunks" edge to the DocumentChunk entity by ids.
func (m *DocumentMutation) AddChunkIDs(ids ...string) {
	if m.chunks == nil {
		m.chunks = make(map[string]struct{})
	}
	for i := range ids {
		m.chunks[ids[i]] = struct{}{}
	}
}

// ClearChunks clears the "chunks" edge to the DocumentChunk entity.
func (m *DocumentMutation) ClearChunks() {
	m.clearedchunks = true
}

// ChunksCleared reports if the "chunks" edge to the DocumentChunk entity was cleared.
func (m *DocumentMutation) ChunksCleared() bool {
	return m.clearedchunks
}

// RemoveChunkIDs removes the "chunks" edge to the DocumentChunk entity by IDs.
func (m *DocumentMutation) RemoveChunkIDs(ids ...string) {
	if m.removedchunks == nil {
		m.removedchunks = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.chunks, ids[i])
		m.removedchunks[ids[i]] = struct{}{}
	}
}

// RemovedChunks returns the removed IDs of the "chunks" edge to the DocumentChunk entity.
func (m *DocumentMutation) RemovedChunksIDs() (ids []string) {
	for id := range m.removedchunks {
		ids = append(ids, id)
	}
	return
}

// ChunksIDs returns the "chunks" edge IDs in the mutation.
func (m *DocumentMutation) ChunksIDs() (ids []string) {
	for id := range m.chunks {
		ids = append(ids, id)
	}
	return
}

// ResetChunks resets all changes to the "chunks" edge.
func (m *DocumentMutation) ResetChunks() {
	m.chunks = nil
	m.clearedchunks = false
	m.removedchunks = nil
}

// AddProcessingLogIDs adds the "processing_logs" edge to the ProcessingLog entity by ids.
func (m *DocumentMutation) AddProcessingLogIDs(ids ...string) {
	if m.processing_logs == nil {
		m.processing_logs = make(map[string]struct{})
	}
	for i := range ids {
		m.processing_logs[ids[i]] = struct{}{}
	}
}

// ClearProcessingLogs clears the "processing_logs" edge to the ProcessingLog entity.
func (m *DocumentMutation) ClearProcessingLogs() {
	m.clearedprocessing_logs = true
}

// ProcessingLogsCleared reports if the "processing_logs" edge to the ProcessingLog entity was cleared.
func (m *DocumentMutation) ProcessingLogsCleared() bool {
	return m.clearedprocessing_logs
}

// RemoveProcessingLogIDs removes the "processing_logs" edge to the ProcessingLog entity by IDs.
func (m *DocumentMutation) RemoveProcessingLogIDs(ids ...string) {
	if m.removedprocessing_logs == nil {
		m.removedprocessing_logs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.processing_logs, ids[i])
		m.removedprocessing_logs[ids[i]] = struct{}{}
	}
}

// RemovedProcessingLogs returns the removed IDs of the "processing_logs" edge to the ProcessingLog entity.
func (m *DocumentMutation) RemovedProcessingLogsIDs() (ids []string) {
	for id := range m.removedprocessing_logs {
		ids = append(ids, id)
	}
	return
}

// ProcessingLogsIDs returns the "processing_logs" edge IDs in the mutation.
func (m *DocumentMutation) ProcessingLogsIDs() (ids []string) {
	for id := range m.processing_logs {
		ids = append(ids, id)
	}
	return
}

// ResetProcessingLogs resets all changes to the "processing_logs" edge.
func (m *DocumentMutation) ResetProcessingLogs() {
	m.processing_logs = nil
	m.clearedprocessing_logs = false
	m.removedprocessing_logs = nil
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.title != nil {
		fields = append(fields, document.FieldTitle)
	}
	if m.source_url != nil {
		fields = append(fields, document.FieldSourceURL)
	}
	if m.content_hash != nil {
		fields = append(fields, document.FieldContentHash)
	}
	if m.mime_type != nil {
		fields = append(fields, document.FieldMimeType)
	}
	if m.blob_bucket != nil {
		fields = append(fields, document.FieldBlobBucket)
	}
	if m.blob_key != nil {
		fields = append(fields, document.FieldBlobKey)
	}
	if m.processing_stage != nil {
		fields = append(fields, document.FieldProcessingStage)
	}
	if m.error_message != nil {
		fields = append(fields, document.FieldErrorMessage)
	}
	if m.chunk_count != nil {
		fields = append(fields, document.FieldChunkCount)
	}
	if m.document_category != nil {
		fields = append(fields, document.FieldDocumentCategory)
	}
	if m.confidence_score != nil {
		fields = append(fields, document.FieldConfidenceScore)
	}
	if m.created_at != nil {
		fields = append(fields, document.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, document.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldTitle:
		return m.Title()
	case document.FieldSourceURL:
		return m.SourceURL()
	case document.FieldContentHash:
		return m.ContentHash()
	case document.FieldMimeType:
		return m.MimeType()
	case document.FieldBlobBucket:
		return m.BlobBucket()
	case document.FieldBlobKey:
		return m.BlobKey()
	case document.FieldProcessingStage:
		return m.ProcessingStage()
	case document.FieldErrorMessage:
		return m.ErrorMessage()
	case document.FieldChunkCount:
		return m.ChunkCount()
	case document.FieldDocumentCategory:
		return m.DocumentCategory()
	case document.FieldConfidenceScore:
		return m.ConfidenceScore()
	case document.FieldCreatedAt:
		return m.CreatedAt()
	case document.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldTitle:
		return m.OldTitle(ctx)
	case document.FieldSourceURL:
		return m.OldSourceURL(ctx)
	case document.FieldContentHash:
		return m.OldContentHash(ctx)
	case document.FieldMimeType:
		return m.OldMimeType(ctx)
	case document.FieldBlobBucket:
		return m.OldBlobBucket(ctx)
	case document.FieldBlobKey:
		return m.OldBlobKey(ctx)
	case document.FieldProcessingStage:
		return m.OldProcessingStage(ctx)
	case document.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case document.FieldChunkCount:
		return m.OldChunkCount(ctx)
	case document.FieldDocumentCategory:
		return m.OldDocumentCategory(ctx)
	case document.FieldConfidenceScore:
		return m.OldConfidenceScore(ctx)
	case document.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case document.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case document.FieldSourceURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceURL(v)
		return nil
	case document.FieldContentHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case document.FieldMimeType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMimeType(v)
		return nil
	case document.FieldBlobBucket:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlobBucket(v)
		return nil
	case document.FieldBlobKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlobKey(v)
		return nil
	case document.FieldProcessingStage:
		v, ok := value.(document.ProcessingStage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingStage(v)
		return nil
	case document.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case document.FieldChunkCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChunkCount(v)
		return nil
	case document.FieldDocumentCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentCategory(v)
		return nil
	case document.FieldConfidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceScore(v)
		return nil
	case document.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case document.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	var fields []string
	if m.addchunk_count != nil {
		fields = append(fields, document.FieldChunkCount)
	}
	if m.addconfidence_score != nil {
		fields = append(fields, document.FieldConfidenceScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case document.FieldChunkCount:
		return m.AddedChunkCount()
	case document.FieldConfidenceScore:
		return m.AddedConfidenceScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case document.FieldChunkCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChunkCount(v)
		return nil
	case document.FieldConfidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidenceScore(v)
		return nil
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(document.FieldSourceURL) {
		fields = append(fields, document.FieldSourceURL)
	}
	if m.FieldCleared(document.FieldBlobBucket) {
		fields = append(fields, document.FieldBlobBucket)
	}
	if m.FieldCleared(document.FieldBlobKey) {
		fields = append(fields, document.FieldBlobKey)
	}
	if m.FieldCleared(document.FieldErrorMessage) {
		fields = append(fields, document.FieldErrorMessage)
	}
	if m.FieldCleared(document.FieldDocumentCategory) {
		fields = append(fields, document.FieldDocumentCategory)
	}
	if m.FieldCleared(document.FieldConfidenceScore) {
		fields = append(fields, document.FieldConfidenceScore)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	switch name {
	case document.FieldSourceURL:
		m.ClearSourceURL()
		return nil
	case document.FieldBlobBucket:
		m.ClearBlobBucket()
		return nil
	case document.FieldBlobKey:
		m.ClearBlobKey()
		return nil
	case document.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case document.FieldDocumentCategory:
		m.ClearDocumentCategory()
		return nil
	case document.FieldConfidenceScore:
		m.ClearConfidenceScore()
		return nil
	}
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldTitle:
		m.ResetTitle()
		return nil
	case document.FieldSourceURL:
		m.ResetSourceURL()
		return nil
	case document.FieldContentHash:
		m.ResetContentHash()
		return nil
	case document.FieldMimeType:
		m.ResetMimeType()
		return nil
	case document.FieldBlobBucket:
		m.ResetBlobBucket()
		return nil
	case document.FieldBlobKey:
		m.ResetBlobKey()
		return nil
	case document.FieldProcessingStage:
		m.ResetProcessingStage()
		return nil
	case document.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case document.FieldChunkCount:
		m.ResetChunkCount()
		return nil
	case document.FieldDocumentCategory:
		m.ResetDocumentCategory()
		return nil
	case document.FieldConfidenceScore:
		m.ResetConfidenceScore()
		return nil
	case document.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case document.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.chunks != nil {
		edges = append(edges, document.EdgeChunks)
	}
	if m.processing_logs != nil {
		edges = append(edges, document.EdgeProcessingLogs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeChunks:
		ids := make([]ent.Value, 0, len(m.chunks))
		for id := range m.chunks {
			ids = append(ids, id)
		}
		return ids
	case document.EdgeProcessingLogs:
		ids := make([]ent.Value, 0, len(m.processing_logs))
		for id := range m.processing_logs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedchunks != nil {
		edges = append(edges, document.EdgeChunks)
	}
	if m.removedprocessing_logs != nil {
		edges = append(edges, document.EdgeProcessingLogs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeChunks:
		ids := make([]ent.Value, 0, len(m.removedchunks))
		for id := range m.removedchunks {
			ids = append(ids, id)
		}
		return ids
	case document.EdgeProcessingLogs:
		ids := make([]ent.Value, 0, len(m.removedprocessing_logs))
		for id := range m.removedprocessing_logs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedchunks {
		edges = append(edges, document.EdgeChunks)
	}
	if m.clearedprocessing_logs {
		edges = append(edges, document.EdgeProcessingLogs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgeChunks:
		return m.clearedchunks
	case document.EdgeProcessingLogs:
		return m.clearedprocessing_logs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgeChunks:
		m.ResetChunks()
		return nil
	case document.EdgeProcessingLogs:
		m.ResetProcessingLogs()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// DocumentChunkMutation represents an operation that mutates the DocumentChunk nodes in the graph.
type DocumentChunkMutation struct {
	config
	op                Op
	typ               string
	id                *string
	chunk_index       *int
	addchunk_index    *int
	content           *string
	char_start        *int
	addchar_start     *int
	char_end          *int
	addchar_end       *int
	token_count       *int
	addtoken_count    *int
	embedding         *[]float32
	appendembedding   []float32
	created_at        *time.Time
	clearedFields     map[string]struct{}
	document          *string
	cleareddocument   bool
	evaluation        *string
	clearedevaluation bool
	sources           map[string]struct{}
	removedsources    map[string]struct{}
	clearedsources    bool
	done              bool
	oldValue          func(context.Context) (*DocumentChunk, error)
	predicates        []predicate.DocumentChunk
}

var _ ent.Mutation = (*DocumentChunkMutation)(nil)

// documentchunkOption allows management of the mutation configuration using functional options.
type documentchunkOption func(*DocumentChunkMutation)

// newDocumentChunkMutation creates new mutation for the DocumentChunk entity.
func newDocumentChunkMutation(c config, op Op, opts ...documentchunkOption) *DocumentChunkMutation {
	m := &DocumentChunkMutation{
		config:        c,
		op:            op,
		typ:           TypeDocumentChunk,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentChunkID sets the ID field of the mutation.
func withDocumentChunkID(id string) documentchunkOption {
	return func(m *DocumentChunkMutation) {
		var (
			err   error
			once  sync.Once
			value *DocumentChunk
		)
		m.oldValue = func(ctx context.Context) (*DocumentChunk, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DocumentChunk.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocumentChunk sets the old DocumentChunk of the mutation.
func withDocumentChunk(node *DocumentChunk) documentchunkOption {
	return func(m *DocumentChunkMutation) {
		m.oldValue = func(context.Context) (*DocumentChunk, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentChunkMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentChunkMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DocumentChunk entities.
func (m *DocumentChunkMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentChunkMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentChunkMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DocumentChunk.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *DocumentChunkMutation) SetDocumentID(s string) {
	m.document = &s
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *DocumentChunkMutation) DocumentID() (r string, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the DocumentChunk entity.
// If the DocumentChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentChunkMutation) OldDocumentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *DocumentChunkMutation) ResetDocumentID() {
	m.document = nil
}

// SetChunkIndex sets the "chunk_index" field.
func (m *DocumentChunkMutation) SetChunkIndex(i int) {
	m.chunk_index = &i
	m.addchunk_index = nil
}

// ChunkIndex returns the value of the "chunk_index" field in the mutation.
func (m *DocumentChunkMutation) ChunkIndex() (r int, exists bool) {
	v := m.chunk_index
	if v == nil {
		return
	}
	return *v, true
}

// OldChunkIndex returns the old "chunk_index" field's value of the DocumentChunk entity.
// If the DocumentChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentChunkMutation) OldChunkIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChunkIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChunkIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChunkIndex: %w", err)
	}
	return oldValue.ChunkIndex, nil
}

// AddChunkIndex adds i to the "chunk_index" field.
func (m *DocumentChunkMutation) AddChunkIndex(i int) {
	if m.addchunk_index != nil {
		*m.addchunk_index += i
	} else {
		m.addchunk_index = &i
	}
}

// AddedChunkIndex returns the value that was added to the "chunk_index" field in this mutation.
func (m *DocumentChunkMutation) AddedChunkIndex() (r int, exists bool) {
	v := m.addchunk_index
	if v == nil {
		return
	}
	return *v, true
}

// ResetChunkIndex resets all changes to the "chunk_index" field.
func (m *DocumentChunkMutation) ResetChunkIndex() {
	m.chunk_index = nil
	m.addchunk_index = nil
}

// SetContent sets the "content" field.
func (m *DocumentChunkMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *DocumentChunkMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the DocumentChunk entity.
// If the DocumentChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentChunkMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *DocumentChunkMutation) ResetContent() {
	m.content = nil
}

// SetCharStart sets the "char_start" field.
func (m *DocumentChunkMutation) SetCharStart(i int) {
	m.char_start = &i
	m.addchar_start = nil
}

// CharStart returns the value of the "char_start" field in the mutation.
func (m *DocumentChunkMutation) CharStart() (r int, exists bool) {
	v := m.char_start
	if v == nil {
		return
	}
	return *v, true
}

// OldCharStart returns the old "char_start" field's value of the DocumentChunk entity.
// If the DocumentChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentChunkMutation) OldCharStart(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCharStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCharStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCharStart: %w", err)
	}
	return oldValue.CharStart, nil
}

// AddCharStart adds i to the "char_start" field.
func (m *DocumentChunkMutation) AddCharStart(i int) {
	if m.addchar_start != nil {
		*m.addchar_start += i
	} else {
		m.addchar_start = &i
	}
}

// AddedCharStart returns the value that was added to the "char_start" field in this mutation.
func (m *DocumentChunkMutation) AddedCharStart() (r int, exists bool) {
	v := m.addchar_start
	if v == nil {
		return
	}
	return *v, true
}

// ResetCharStart resets all changes to the "char_start" field.
func (m *DocumentChunkMutation) ResetCharStart() {
	m.char_start = nil
	m.addchar_start = nil
}

// SetCharEnd sets the "char_end" field.
func (m *DocumentChunkMutation) SetCharEnd(i int) {
	m.char_end = &i
	m.addchar_end = nil
}

// CharEnd returns the value of the "char_end" field in the mutation.
func (m *DocumentChunkMutation) CharEnd() (r int, exists bool) {
	v := m.char_end
	if v == nil {
		return
	}
	return *v, true
}

// OldCharEnd returns the old "char_end" field's value of the DocumentChunk entity.
// If the DocumentChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentChunkMutation) OldCharEnd(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCharEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCharEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCharEnd: %w", err)
	}
	return oldValue.CharEnd, nil
}

// AddCharEnd adds i to the "char_end" field.
func (m *DocumentChunkMutation) AddCharEnd(i int) {
	if m.addchar_end != nil {
		*m.addchar_end += i
	} else {
		m.addchar_end = &i
	}
}

// AddedCharEnd returns the value that was added to the "char_end" field in this mutation.
func (m *DocumentChunkMutation) AddedCharEnd() (r int, exists bool) {
	v := m.addchar_end
	if v == nil {
		return
	}
	return *v, true
}

// ResetCharEnd resets all changes to the "char_end" field.
func (m *DocumentChunkMutation) ResetCharEnd() {
	m.char_end = nil
	m.addchar_end = nil
}

// SetTokenCount sets the "token_count" field.
func (m *DocumentChunkMutation) SetTokenCount(i int) {
	m.token_count = &i
	m.addtoken_count = nil
}

// TokenCount returns the value of the "token_count" field in the mutation.
func (m *DocumentChunkMutation) TokenCount() (r int, exists bool) {
	v := m.token_count
	if v == nil {
		return
	}
	return *v, true
}

// OldTokenCount returns the old "token_count" field's value of the DocumentChunk entity.
// If the DocumentChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentChunkMutation) OldTokenCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokenCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokenCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokenCount: %w", err)
	}
	return oldValue.TokenCount, nil
}

// AddTokenCount adds i to the "token_count" field.
func (m *DocumentChunkMutation) AddTokenCount(i int) {
	if m.addtoken_count != nil {
		*m.addtoken_count += i
	} else {
		m.addtoken_count = &i
	}
}

// AddedTokenCount returns the value that was added to the "token_count" field in this mutation.
func (m *DocumentChunkMutation) AddedTokenCount() (r int, exists bool) {
	v := m.addtoken_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokenCount resets all changes to the "token_count" field.
func (m *DocumentChunkMutation) ResetTokenCount() {
	m.token_count = nil
	m.addtoken_count = nil
}

// SetEmbedding sets the "embedding" field.
func (m *DocumentChunkMutation) SetEmbedding(f []float32) {
	m.embedding = &f
	m.appendembedding = nil
}

// Embedding returns the value of the "embedding" field in the mutation.
func (m *DocumentChunkMutation) Embedding() (r []float32, exists bool) {
	v := m.embedding
	if v == nil {
		return
	}
	return *v, true
}

// OldEmbedding returns the old "embedding" field's value of the DocumentChunk entity.
// If the DocumentChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentChunkMutation) OldEmbedding(ctx context.Context) (v []float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmbedding is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmbedding requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmbedding: %w", err)
	}
	return oldValue.Embedding, nil
}

// AppendEmbedding adds f to the "embedding" field.
func (m *DocumentChunkMutation) AppendEmbedding(f []float32) {
	m.appendembedding = append(m.appendembedding, f...)
}

// AppendedEmbedding returns the list of values that were appended to the "embedding" field in this mutation.
func (m *DocumentChunkMutation) AppendedEmbedding() ([]float32, bool) {
	if len(m.appendembedding) == 0 {
		return nil, false
	}
	return m.appendembedding, true
}

// ClearEmbedding clears the value of the "embedding" field.
func (m *DocumentChunkMutation) ClearEmbedding() {
	m.embedding = nil
	m.appendembedding = nil
	m.clearedFields[documentchunk.FieldEmbedding] = struct{}{}
}

// EmbeddingCleared returns if the "embedding" field was cleared in this mutation.
func (m *DocumentChunkMutation) EmbeddingCleared() bool {
	_, ok := m.clearedFields[documentchunk.FieldEmbedding]
	return ok
}

// ResetEmbedding resets all changes to the "embedding" field.
func (m *DocumentChunkMutation) ResetEmbedding() {
	m.embedding = nil
	m.appendembedding = nil
	delete(m.clearedFields, documentchunk.FieldEmbedding)
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentChunkMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentChunkMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DocumentChunk entity.
// If the DocumentChunk object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentChunkMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DocumentChunkMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *DocumentChunkMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[documentchunk.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *DocumentChunkMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *DocumentChunkMutation) DocumentIDs() (ids []string) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *DocumentChunkMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// SetEvaluationID sets the "evaluation" edge to the ChunkEvaluation entity by id.
func (m *DocumentChunkMutation) SetEvaluationID(id string) {
	m.evaluation = &id
}

// ClearEvaluation clears the "evaluation" edge to the ChunkEvaluation entity.
func (m *DocumentChunkMutation) ClearEvaluation() {
	m.clearedevaluation = true
}

// EvaluationCleared reports if the "evaluation" edge to the ChunkEvaluation entity was cleared.
func (m *DocumentChunkMutation) EvaluationCleared() bool {
	return m.clearedevaluation
}

// EvaluationID returns the "evaluation" edge ID in the mutation.
func (m *DocumentChunkMutation) EvaluationID() (id string, exists bool) {
	if m.evaluation != nil {
		return *m.evaluation, true
	}
	return
}

// EvaluationIDs returns the "evaluation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EvaluationID instead. It exists only for internal usage by the builders.
func (m *DocumentChunkMutation) EvaluationIDs() (ids []string) {
	if id := m.evaluation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEvaluation resets all changes to the "evaluation" edge.
func (m *DocumentChunkMutation) ResetEvaluation() {
	m.evaluation = nil
	m.clearedevaluation = false
}

// AddSourceIDs adds the "sources" edge to the EntitySource entity by ids.
func (m *DocumentChunkMutation) AddSourceIDs(ids ...string) {
	if m.sources == nil {
		m.sources = make(map[string]struct{})
	}
	for i := range ids {
		m.sources[ids[i]] = struct{}{}
	}
}

// ClearSources clears the "sources" edge to the EntitySource entity.
func (m *DocumentChunkMutation) ClearSources() {
	m.clearedsources = true
}

// SourcesCleared reports if the "sources" edge to the EntitySource entity was cleared.
func (m *DocumentChunkMutation) SourcesCleared() bool {
	return m.clearedsources
}

// RemoveSourceIDs removes the "sources" edge to the EntitySource entity by IDs.
func (m *DocumentChunkMutation) RemoveSourceIDs(ids ...string) {
	if m.removedsources == nil {
		m.removedsources = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.sources, ids[i])
		m.removedsources[ids[i]] = struct{}{}
	}
}

// RemovedSources returns the removed IDs of the "sources" edge to the EntitySource entity.
func (m *DocumentChunkMutation) RemovedSourcesIDs() (ids []string) {
	for id := range m.removedsources {
		ids = append(ids, id)
	}
	return
}

// SourcesIDs returns the "sources" edge IDs in the mutation.
func (m *DocumentChunkMutation) SourcesIDs() (ids []string) {
	for id := range m.sources {
		ids = append(ids, id)
	}
	return
}

// ResetSources resets all changes to the "sources" edge.
func (m *DocumentChunkMutation) ResetSources() {
	m.sources = nil
	m.clearedsources = false
	m.removedsources = nil
}

// Where appends a list predicates to the DocumentChunkMutation builder.
func (m *DocumentChunkMutation) Where(ps ...predicate.DocumentChunk) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentChunkMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentChunkMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DocumentChunk, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentChunkMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentChunkMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DocumentChunk).
func (m *DocumentChunkMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentChunkMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.document != nil {
		fields = append(fields, documentchunk.FieldDocumentID)
	}
	if m.chunk_index != nil {
		fields = append(fields, documentchunk.FieldChunkIndex)
	}
	if m.content != nil {
		fields = append(fields, documentchunk.FieldContent)
	}
	if m.char_start != nil {
		fields = append(fields, documentchunk.FieldCharStart)
	}
	if m.char_end != nil {
		fields = append(fields, documentchunk.FieldCharEnd)
	}
	if m.token_count != nil {
		fields = append(fields, documentchunk.FieldTokenCount)
	}
	if m.embedding != nil {
		fields = append(fields, documentchunk.FieldEmbedding)
	}
	if m.created_at != nil {
		fields = append(fields, documentchunk.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentChunkMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case documentchunk.FieldDocumentID:
		return m.DocumentID()
	case documentchunk.FieldChunkIndex:
		return m.ChunkIndex()
	case documentchunk.FieldContent:
		return m.Content()
	case documentchunk.FieldCharStart:
		return m.CharStart()
	case documentchunk.FieldCharEnd:
		return m.CharEnd()
	case documentchunk.FieldTokenCount:
		return m.TokenCount()
	case documentchunk.FieldEmbedding:
		return m.Embedding()
	case documentchunk.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentChunkMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case documentchunk.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case documentchunk.FieldChunkIndex:
		return m.OldChunkIndex(ctx)
	case documentchunk.FieldContent:
		return m.OldContent(ctx)
	case documentchunk.FieldCharStart:
		return m.OldCharStart(ctx)
	case documentchunk.FieldCharEnd:
		return m.OldCharEnd(ctx)
	case documentchunk.FieldTokenCount:
		return m.OldTokenCount(ctx)
	case documentchunk.FieldEmbedding:
		return m.OldEmbedding(ctx)
	case documentchunk.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DocumentChunk field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentChunkMutation) SetField(name string, value ent.Value) error {
	switch name {
	case documentchunk.FieldDocumentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case documentchunk.FieldChunkIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChunkIndex(v)
		return nil
	case documentchunk.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case documentchunk.FieldCharStart:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCharStart(v)
		return nil
	case documentchunk.FieldCharEnd:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCharEnd(v)
		return nil
	case documentchunk.FieldTokenCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokenCount(v)
		return nil
	case documentchunk.FieldEmbedding:
		v, ok := value.([]float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmbedding(v)
		return nil
	case documentchunk.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DocumentChunk field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentChunkMutation) AddedFields() []string {
	var fields []string
	if m.addchunk_index != nil {
		fields = append(fields, documentchunk.FieldChunkIndex)
	}
	if m.addchar_start != nil {
		fields = append(fields, documentchunk.FieldCharStart)
	}
	if m.addchar_end != nil {
		fields = append(fields, documentchunk.FieldCharEnd)
	}
	if m.addtoken_count != nil {
		fields = append(fields, documentchunk.FieldTokenCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentChunkMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case documentchunk.FieldChunkIndex:
		return m.AddedChunkIndex()
	case documentchunk.FieldCharStart:
		return m.AddedCharStart()
	case documentchunk.FieldCharEnd:
		return m.AddedCharEnd()
	case documentchunk.FieldTokenCount:
		return m.AddedTokenCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentChunkMutation) AddField(name string, value ent.Value) error {
	switch name {
	case documentchunk.FieldChunkIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChunkIndex(v)
		return nil
	case documentchunk.FieldCharStart:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCharStart(v)
		return nil
	case documentchunk.FieldCharEnd:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCharEnd(v)
		return nil
	case documentchunk.FieldTokenCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokenCount(v)
		return nil
	}
	return fmt.Errorf("unknown DocumentChunk numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentChunkMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(documentchunk.FieldEmbedding) {
		fields = append(fields, documentchunk.FieldEmbedding)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentChunkMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentChunkMutation) ClearField(name string) error {
	switch name {
	case documentchunk.FieldEmbedding:
		m.ClearEmbedding()
		return nil
	}
	return fmt.Errorf("unknown DocumentChunk nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentChunkMutation) ResetField(name string) error {
	switch name {
	case documentchunk.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case documentchunk.FieldChunkIndex:
		m.ResetChunkIndex()
		return nil
	case documentchunk.FieldContent:
		m.ResetContent()
		return nil
	case documentchunk.FieldCharStart:
		m.ResetCharStart()
		return nil
	case documentchunk.FieldCharEnd:
		m.ResetCharEnd()
		return nil
	case documentchunk.FieldTokenCount:
		m.ResetTokenCount()
		return nil
	case documentchunk.FieldEmbedding:
		m.ResetEmbedding()
		return nil
	case documentchunk.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown DocumentChunk field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentChunkMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.document != nil {
		edges = append(edges, documentchunk.EdgeDocument)
	}
	if m.evaluation != nil {
		edges = append(edges, documentchunk.EdgeEvaluation)
	}
	if m.sources != nil {
		edges = append(edges, documentchunk.EdgeSources)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentChunkMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case documentchunk.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	case documentchunk.EdgeEvaluation:
		if id := m.evaluation; id != nil {
			return []ent.Value{*id}
		}
	case documentchunk.EdgeSources:
		ids := make([]ent.Value, 0, len(m.sources))
		for id := range m.sources {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentChunkMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedsources != nil {
		edges = append(edges, documentchunk.EdgeSources)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentChunkMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case documentchunk.EdgeSources:
		ids := make([]ent.Value, 0, len(m.removedsources))
		for id := range m.removedsources {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentChunkMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.cleareddocument {
		edges = append(edges, documentchunk.EdgeDocument)
	}
	if m.clearedevaluation {
		edges = append(edges, documentchunk.EdgeEvaluation)
	}
	if m.clearedsources {
		edges = append(edges, documentchunk.EdgeSources)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentChunkMutation) EdgeCleared(name string) bool {
	switch name {
	case documentchunk.EdgeDocument:
		return m.cleareddocument
	case documentchunk.EdgeEvaluation:
		return m.clearedevaluation
	case documentchunk.EdgeSources:
		return m.clearedsources
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentChunkMutation) ClearEdge(name string) error {
	switch name {
	case documentchunk.EdgeDocument:
		m.ClearDocument()
		return nil
	case documentchunk.EdgeEvaluation:
		m.ClearEvaluation()
		return nil
	}
	return fmt.Errorf("unknown DocumentChunk unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentChunkMutation) ResetEdge(name string) error {
	switch name {
	case documentchunk.EdgeDocument:
		m.ResetDocument()
		return nil
	case documentchunk.EdgeEvaluation:
		m.ResetEvaluation()
		return nil
	case documentchunk.EdgeSources:
		m.ResetSources()
		return nil
	}
	return fmt.Errorf("unknown DocumentChunk edge %s", name)
}

// EntitySourceMutation represents an operation that mutates the EntitySource nodes in the graph.
type EntitySourceMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	entity_table       *string
	entity_id          *string
	trust_score        *float64
	addtrust_score     *float64
	relevance_score    *float64
	addrelevance_score *float64
	extracted_at       *time.Time
	clearedFields      map[string]struct{}
	chunk              *string
	clearedchunk       bool
	done               bool
	oldValue           func(context.Context) (*EntitySource, error)
	predicates         []predicate.EntitySource
}

var _ ent.Mutation = (*EntitySourceMutation)(nil)

// entitysourceOption allows management of the mutation configuration using functional options.
type entitysourceOption func(*EntitySourceMutation)

// newEntitySourceMutation creates new mutation for the EntitySource entity.
func newEntitySourceMutation(c config, op Op, opts ...entitysourceOption) *EntitySourceMutation {
	m := &EntitySourceMutation{
		config:        c,
		op:            op,
		typ:           TypeEntitySource,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEntitySourceID sets the ID field of the mutation.
func withEntitySourceID(id string) entitysourceOption {
	return func(m *EntitySourceMutation) {
		var (
			err   error
			once  sync.Once
			value *EntitySource
		)
		m.oldValue = func(ctx context.Context) (*EntitySource, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EntitySource.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEntitySource sets the old EntitySource of the mutation.
func withEntitySource(node *EntitySource) entitysourceOption {
	return func(m *EntitySourceMutation) {
		m.oldValue = func(context.Context) (*EntitySource, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EntitySourceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EntitySourceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EntitySource entities.
func (m *EntitySourceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EntitySourceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EntitySourceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EntitySource.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEntityTable sets the "entity_table" field.
func (m *EntitySourceMutation) SetEntityTable(s string) {
	m.entity_table = &s
}

// EntityTable returns the value of the "entity_table" field in the mutation.
func (m *EntitySourceMutation) EntityTable() (r string, exists bool) {
	v := m.entity_table
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityTable returns the old "entity_table" field's value of the EntitySource entity.
// If the EntitySource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntitySourceMutation) OldEntityTable(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityTable is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityTable requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityTable: %w", err)
	}
	return oldValue.EntityTable, nil
}

// ResetEntityTable resets all changes to the "entity_table" field.
func (m *EntitySourceMutation) ResetEntityTable() {
	m.entity_table = nil
}

// SetEntityID sets the "entity_id" field.
func (m *EntitySourceMutation) SetEntityID(s string) {
	m.entity_id = &s
}

// EntityID returns the value of the "entity_id" field in the mutation.
func (m *EntitySourceMutation) EntityID() (r string, exists bool) {
	v := m.entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityID returns the old "entity_id" field's value of the EntitySource entity.
// If the EntitySource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntitySourceMutation) OldEntityID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityID: %w", err)
	}
	return oldValue.EntityID, nil
}

// ResetEntityID resets all changes to the "entity_id" field.
func (m *EntitySourceMutation) ResetEntityID() {
	m.entity_id = nil
}

// SetChunkID sets the "chunk_id" field.
func (m *EntitySourceMutation) SetChunkID(s string) {
	m.chunk = &s
}

// ChunkID returns the value of the "chunk_id" field in the mutation.
func (m *EntitySourceMutation) ChunkID() (r string, exists bool) {
	v := m.chunk
	if v == nil {
		return
	}
	return *v, true
}

// OldChunkID returns the old "chunk_id" field's value of the EntitySource entity.
// If the EntitySource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntitySourceMutation) OldChunkID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChunkID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChunkID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChunkID: %w", err)
	}
	return oldValue.ChunkID, nil
}

// ResetChunkID resets all changes to the "chunk_id" field.
func (m *EntitySourceMutation) ResetChunkID() {
	m.chunk = nil
}

// SetTrustScore sets the "trust_score" field.
func (m *EntitySourceMutation) SetTrustScore(f float64) {
	m.trust_score = &f
	m.addtrust_score = nil
}

// TrustScore returns the value of the "trust_score" field in the mutation.
func (m *EntitySourceMutation) TrustScore() (r float64, exists bool) {
	v := m.trust_score
	if v == nil {
		return
	}
	return *v, true
}

// OldTrustScore returns the old "trust_score" field's value of the EntitySource entity.
// If the EntitySource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntitySourceMutation) OldTrustScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrustScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrustScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrustScore: %w", err)
	}
	return oldValue.TrustScore, nil
}

// AddTrustScore adds f to the "trust_score" field.
func (m *EntitySourceMutation) AddTrustScore(f float64) {
	if m.addtrust_score != nil {
		*m.addtrust_score += f
	} else {
		m.addtrust_score = &f
	}
}

// AddedTrustScore returns the value that was added to the "trust_score" field in this mutation.
func (m *EntitySourceMutation) AddedTrustScore() (r float64, exists bool) {
	v := m.addtrust_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetTrustScore resets all changes to the "trust_score" field.
func (m *EntitySourceMutation) ResetTrustScore() {
	m.trust_score = nil
	m.addtrust_score = nil
}

// SetRelevanceScore sets the "relevance_score" field.
func (m *EntitySourceMutation) SetRelevanceScore(f float64) {
	m.relevance_score = &f
	m.addrelevance_score = nil
}

// RelevanceScore returns the value of the "relevance_score" field in the mutation.
func (m *EntitySourceMutation) RelevanceScore() (r float64, exists bool) {
	v := m.relevance_score
	if v == nil {
		return
	}
	return *v, true
}

// OldRelevanceScore returns the old "relevance_score" field's value of the EntitySource entity.
// If the EntitySource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntitySourceMutation) OldRelevanceScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelevanceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelevanceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelevanceScore: %w", err)
	}
	return oldValue.RelevanceScore, nil
}

// AddRelevanceScore adds f to the "relevance_score" field.
func (m *EntitySourceMutation) AddRelevanceScore(f float64) {
	if m.addrelevance_score != nil {
		*m.addrelevance_score += f
	} else {
		m.addrelevance_score = &f
	}
}

// AddedRelevanceScore returns the value that was added to the "relevance_score" field in this mutation.
func (m *EntitySourceMutation) AddedRelevanceScore() (r float64, exists bool) {
	v := m.addrelevance_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetRelevanceScore resets all changes to the "relevance_score" field.
func (m *EntitySourceMutation) ResetRelevanceScore() {
	m.relevance_score = nil
	m.addrelevance_score = nil
}

// SetExtractedAt sets the "extracted_at" field.
func (m *EntitySourceMutation) SetExtractedAt(t time.Time) {
	m.extracted_at = &t
}

// ExtractedAt returns the value of the "extracted_at" field in the mutation.
func (m *EntitySourceMutation) ExtractedAt() (r time.Time, exists bool) {
	v := m.extracted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedAt returns the old "extracted_at" field's value of the EntitySource entity.
// If the EntitySource object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntitySourceMutation) OldExtractedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedAt: %w", err)
	}
	return oldValue.ExtractedAt, nil
}

// ResetExtractedAt resets all changes to the "extracted_at" field.
func (m *EntitySourceMutation) ResetExtractedAt() {
	m.extracted_at = nil
}

// ClearChunk clears the "chunk" edge to the DocumentChunk entity.
func (m *EntitySourceMutation) ClearChunk() {
	m.clearedchunk = true
	m.clearedFields[entitysource.FieldChunkID] = struct{}{}
}

// ChunkCleared reports if the "chunk" edge to the DocumentChunk entity was cleared.
func (m *EntitySourceMutation) ChunkCleared() bool {
	return m.clearedchunk
}

// ChunkIDs returns the "chunk" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ChunkID instead. It exists only for internal usage by the builders.
func (m *EntitySourceMutation) ChunkIDs() (ids []string) {
	if id := m.chunk; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetChunk resets all changes to the "chunk" edge.
func (m *EntitySourceMutation) ResetChunk() {
	m.chunk = nil
	m.clearedchunk = false
}

// Where appends a list predicates to the EntitySourceMutation builder.
func (m *EntitySourceMutation) Where(ps ...predicate.EntitySource) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EntitySourceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EntitySourceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EntitySource, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EntitySourceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EntitySourceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EntitySource).
func (m *EntitySourceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EntitySourceMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.entity_table != nil {
		fields = append(fields, entitysource.FieldEntityTable)
	}
	if m.entity_id != nil {
		fields = append(fields, entitysource.FieldEntityID)
	}
	if m.chunk != nil {
		fields = append(fields, entitysource.FieldChunkID)
	}
	if m.trust_score != nil {
		fields = append(fields, entitysource.FieldTrustScore)
	}
	if m.relevance_score != nil {
		fields = append(fields, entitysource.FieldRelevanceScore)
	}
	if m.extracted_at != nil {
		fields = append(fields, entitysource.FieldExtractedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EntitySourceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case entitysource.FieldEntityTable:
		return m.EntityTable()
	case entitysource.FieldEntityID:
		return m.EntityID()
	case entitysource.FieldChunkID:
		return m.ChunkID()
	case entitysource.FieldTrustScore:
		return m.TrustScore()
	case entitysource.FieldRelevanceScore:
		return m.RelevanceScore()
	case entitysource.FieldExtractedAt:
		return m.ExtractedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EntitySourceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case entitysource.FieldEntityTable:
		return m.OldEntityTable(ctx)
	case entitysource.FieldEntityID:
		return m.OldEntityID(ctx)
	case entitysource.FieldChunkID:
		return m.OldChunkID(ctx)
	case entitysource.FieldTrustScore:
		return m.OldTrustScore(ctx)
	case entitysource.FieldRelevanceScore:
		return m.OldRelevanceScore(ctx)
	case entitysource.FieldExtractedAt:
		return m.OldExtractedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EntitySource field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntitySourceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case entitysource.FieldEntityTable:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityTable(v)
		return nil
	case entitysource.FieldEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityID(v)
		return nil
	case entitysource.FieldChunkID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChunkID(v)
		return nil
	case entitysource.FieldTrustScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrustScore(v)
		return nil
	case entitysource.FieldRelevanceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelevanceScore(v)
		return nil
	case entitysource.FieldExtractedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EntitySource field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EntitySourceMutation) AddedFields() []string {
	var fields []string
	if m.addtrust_score != nil {
		fields = append(fields, entitysource.FieldTrustScore)
	}
	if m.addrelevance_score != nil {
		fields = append(fields, entitysource.FieldRelevanceScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EntitySourceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case entitysource.FieldTrustScore:
		return m.AddedTrustScore()
	case entitysource.FieldRelevanceScore:
		return m.AddedRelevanceScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntitySourceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case entitysource.FieldTrustScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTrustScore(v)
		return nil
	case entitysource.FieldRelevanceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRelevanceScore(v)
		return nil
	}
	return fmt.Errorf("unknown EntitySource numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EntitySourceMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EntitySourceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EntitySourceMutation) ClearField(name string) error {
	return fmt.Errorf("unknown EntitySource nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EntitySourceMutation) ResetField(name string) error {
	switch name {
	case entitysource.FieldEntityTable:
		m.ResetEntityTable()
		return nil
	case entitysource.FieldEntityID:
		m.ResetEntityID()
		return nil
	case entitysource.FieldChunkID:
		m.ResetChunkID()
		return nil
	case entitysource.FieldTrustScore:
		m.ResetTrustScore()
		return nil
	case entitysource.FieldRelevanceScore:
		m.ResetRelevanceScore()
		return nil
	case entitysource.FieldExtractedAt:
		m.ResetExtractedAt()
		return nil
	}
	return fmt.Errorf("unknown EntitySource field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EntitySourceMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.chunk != nil {
		edges = append(edges, entitysource.EdgeChunk)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EntitySourceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case entitysource.EdgeChunk:
		if id := m.chunk; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EntitySourceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EntitySourceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EntitySourceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedchunk {
		edges = append(edges, entitysource.EdgeChunk)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EntitySourceMutation) EdgeCleared(name string) bool {
	switch name {
	case entitysource.EdgeChunk:
		return m.clearedchunk
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EntitySourceMutation) ClearEdge(name string) error {
	switch name {
	case entitysource.EdgeChunk:
		m.ClearChunk()
		return nil
	}
	return fmt.Errorf("unknown EntitySource unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EntitySourceMutation) ResetEdge(name string) error {
	switch name {
	case entitysource.EdgeChunk:
		m.ResetChunk()
		return nil
	}
	return fmt.Errorf("unknown EntitySource edge %s", name)
}

// ExtractedCategoryMutation represents an operation that mutates the ExtractedCategory nodes in the graph.
type ExtractedCategoryMutation struct {
	config
	op              Op
	typ             string
	id              *string
	document_id     *string
	category        *string
	source_chunk_id *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*ExtractedCategory, error)
	predicates      []predicate.ExtractedCategory
}

var _ ent.Mutation = (*ExtractedCategoryMutation)(nil)

// extractedcategoryOption allows management of the mutation configuration using functional options.
type extractedcategoryOption func(*ExtractedCategoryMutation)

// newExtractedCategoryMutation creates new mutation for the ExtractedCategory entity.
func newExtractedCategoryMutation(c config, op Op, opts ...extractedcategoryOption) *ExtractedCategoryMutation {
	m := &ExtractedCategoryMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractedCategory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractedCategoryID sets the ID field of the mutation.
func withExtractedCategoryID(id string) extractedcategoryOption {
	return func(m *ExtractedCategoryMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractedCategory
		)
		m.oldValue = func(ctx context.Context) (*ExtractedCategory, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractedCategory.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractedCategory sets the old ExtractedCategory of the mutation.
func withExtractedCategory(node *ExtractedCategory) extractedcategoryOption {
	return func(m *ExtractedCategoryMutation) {
		m.oldValue = func(context.Context) (*ExtractedCategory, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractedCategoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractedCategoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractedCategory entities.
func (m *ExtractedCategoryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractedCategoryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractedCategoryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractedCategory.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *ExtractedCategoryMutation) SetDocumentID(s string) {
	m.document_id = &s
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *ExtractedCategoryMutation) DocumentID() (r string, exists bool) {
	v := m.document_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the ExtractedCategory entity.
// If the ExtractedCategory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedCategoryMutation) OldDocumentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *ExtractedCategoryMutation) ResetDocumentID() {
	m.document_id = nil
}

// SetCategory sets the "category" field.
func (m *ExtractedCategoryMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *ExtractedCategoryMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the ExtractedCategory entity.
// If the ExtractedCategory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedCategoryMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *ExtractedCategoryMutation) ResetCategory() {
	m.category = nil
}

// SetSourceChunkID sets the "source_chunk_id" field.
func (m *ExtractedCategoryMutation) SetSourceChunkID(s string) {
	m.source_chunk_id = &s
}

// SourceChunkID returns the value of the "source_chunk_id" field in the mutation.
func (m *ExtractedCategoryMutation) SourceChunkID() (r string, exists bool) {
	v := m.source_chunk_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceChunkID returns the old "source_chunk_id" field's value of the ExtractedCategory entity.
// If the ExtractedCategory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedCategoryMutation) OldSourceChunkID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceChunkID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceChunkID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceChunkID: %w", err)
	}
	return oldValue.SourceChunkID, nil
}

// ResetSourceChunkID resets all changes to the "source_chunk_id" field.
func (m *ExtractedCategoryMutation) ResetSourceChunkID() {
	m.source_chunk_id = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ExtractedCategoryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExtractedCategoryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExtractedCategory entity.
// If the ExtractedCategory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedCategoryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExtractedCategoryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ExtractedCategoryMutation builder.
func (m *ExtractedCategoryMutation) Where(ps ...predicate.ExtractedCategory) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractedCategoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractedCategoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractedCategory, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractedCategoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractedCategoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractedCategory).
func (m *ExtractedCategoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractedCategoryMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.document_id != nil {
		fields = append(fields, extractedcategory.FieldDocumentID)
	}
	if m.category != nil {
		fields = append(fields, extractedcategory.FieldCategory)
	}
	if m.source_chunk_id != nil {
		fields = append(fields, extractedcategory.FieldSourceChunkID)
	}
	if m.created_at != nil {
		fields = append(fields, extractedcategory.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractedCategoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractedcategory.FieldDocumentID:
		return m.DocumentID()
	case extractedcategory.FieldCategory:
		return m.Category()
	case extractedcategory.FieldSourceChunkID:
		return m.SourceChunkID()
	case extractedcategory.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractedCategoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractedcategory.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case extractedcategory.FieldCategory:
		return m.OldCategory(ctx)
	case extractedcategory.FieldSourceChunkID:
		return m.OldSourceChunkID(ctx)
	case extractedcategory.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractedCategory field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractedCategoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractedcategory.FieldDocumentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case extractedcategory.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case extractedcategory.FieldSourceChunkID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceChunkID(v)
		return nil
	case extractedcategory.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractedCategory field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractedCategoryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractedCategoryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractedCategoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ExtractedCategory numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractedCategoryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractedCategoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractedCategoryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ExtractedCategory nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractedCategoryMutation) ResetField(name string) error {
	switch name {
	case extractedcategory.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case extractedcategory.FieldCategory:
		m.ResetCategory()
		return nil
	case extractedcategory.FieldSourceChunkID:
		m.ResetSourceChunkID()
		return nil
	case extractedcategory.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractedCategory field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractedCategoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractedCategoryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractedCategoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractedCategoryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractedCategoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractedCategoryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractedCategoryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ExtractedCategory unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractedCategoryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ExtractedCategory edge %s", name)
}

// ExtractedCauseMutation represents an operation that mutates the ExtractedCause nodes in the graph.
type ExtractedCauseMutation struct {
	config
	op              Op
	typ             string
	id              *string
	document_id     *string
	dtc_code        *string
	description     *string
	likelihood      *string
	source_chunk_id *string
	trust           *float64
	addtrust        *float64
	relevance       *float64
	addrelevance    *float64
	created_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*ExtractedCause, error)
	predicates      []predicate.ExtractedCause
}

var _ ent.Mutation = (*ExtractedCauseMutation)(nil)

// extractedcauseOption allows management of the mutation configuration using functional options.
type extractedcauseOption func(*ExtractedCauseMutation)

// newExtractedCauseMutation creates new mutation for the ExtractedCause entity.
func newExtractedCauseMutation(c config, op Op, opts ...extractedcauseOption) *ExtractedCauseMutation {
	m := &ExtractedCauseMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractedCause,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractedCauseID sets the ID field of the mutation.
func withExtractedCauseID(id string) extractedcauseOption {
	return func(m *ExtractedCauseMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractedCause
		)
		m.oldValue = func(ctx context.Context) (*ExtractedCause, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractedCause.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractedCause sets the old ExtractedCause of the mutation.
func withExtractedCause(node *ExtractedCause) extractedcauseOption {
	return func(m *ExtractedCauseMutation) {
		m.oldValue = func(context.Context) (*ExtractedCause, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractedCauseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractedCauseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractedCause entities.
func (m *ExtractedCauseMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractedCauseMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractedCauseMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractedCause.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *ExtractedCauseMutation) SetDocumentID(s string) {
	m.document_id = &s
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *ExtractedCauseMutation) DocumentID() (r string, exists bool) {
	v := m.document_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the ExtractedCause entity.
// If the ExtractedCause object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedCauseMutation) OldDocumentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *ExtractedCauseMutation) ResetDocumentID() {
	m.document_id = nil
}

// SetDtcCode sets the "dtc_code" field.
func (m *ExtractedCauseMutation) SetDtcCode(s string) {
	m.dtc_code = &s
}

// DtcCode returns the value of the "dtc_code" field in the mutation.
func (m *ExtractedCauseMutation) DtcCode() (r string, exists bool) {
	v := m.dtc_code
	if v == nil {
		return
	}
	return *v, true
}

// OldDtcCode returns the old "dtc_code" field's value of the ExtractedCause entity.
// If the ExtractedCause object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedCauseMutation) OldDtcCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDtcCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDtcCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDtcCode: %w", err)
	}
	return oldValue.DtcCode, nil
}

// ResetDtcCode resets all changes to the "dtc_code" field.
func (m *ExtractedCauseMutation) ResetDtcCode() {
	m.dtc_code = nil
}

// SetDescription sets the "description" field.
func (m *ExtractedCauseMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ExtractedCauseMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the ExtractedCause entity.
// If the ExtractedCause object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedCauseMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *ExtractedCauseMutation) ResetDescription() {
	m.description = nil
}

// SetLikelihood sets the "likelihood" field.
func (m *ExtractedCauseMutation) SetLikelihood(s string) {
	m.likelihood = &s
}

// Likelihood returns the value of the "likelihood" field in the mutation.
func (m *ExtractedCauseMutation) Likelihood() (r string, exists bool) {
	v := m.likelihood
	if v == nil {
		return
	}
	return *v, true
}

// OldLikelihood returns the old "likelihood" field's value of the ExtractedCause entity.
// If the ExtractedCause object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedCauseMutation) OldLikelihood(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLikelihood is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLikelihood requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLikelihood: %w", err)
	}
	return oldValue.Likelihood, nil
}

// ClearLikelihood clears the value of the "likelihood" field.
func (m *ExtractedCauseMutation) ClearLikelihood() {
	m.likelihood = nil
	m.clearedFields[extractedcause.FieldLikelihood] = struct{}{}
}

// LikelihoodCleared returns if the "likelihood" field was cleared in this mutation.
func (m *ExtractedCauseMutation) LikelihoodCleared() bool {
	_, ok := m.clearedFields[extractedcause.FieldLikelihood]
	return ok
}

// ResetLikelihood resets all changes to the "likelihood" field.
func (m *ExtractedCauseMutation) ResetLikelihood() {
	m.likelihood = nil
	delete(m.clearedFields, extractedcause.FieldLikelihood)
}

// SetSourceChunkID sets the "source_chunk_id" field.
func (m *ExtractedCauseMutation) SetSourceChunkID(s string) {
	m.source_chunk_id = &s
}

// SourceChunkID returns the value of the "source_chunk_id" field in the mutation.
func (m *ExtractedCauseMutation) SourceChunkID() (r string, exists bool) {
	v := m.source_chunk_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceChunkID returns the old "source_chunk_id" field's value of the ExtractedCause entity.
// If the ExtractedCause object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedCauseMutation) OldSourceChunkID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceChunkID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceChunkID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceChunkID: %w", err)
	}
	return oldValue.SourceChunkID, nil
}

// ResetSourceChunkID resets all changes to the "source_chunk_id" field.
func (m *ExtractedCauseMutation) ResetSourceChunkID() {
	m.source_chunk_id = nil
}

// SetTrust sets the "trust" field.
func (m *ExtractedCauseMutation) SetTrust(f float64) {
	m.trust = &f
	m.addtrust = nil
}

// Trust returns the value of the "trust" field in the mutation.
func (m *ExtractedCauseMutation) Trust() (r float64, exists bool) {
	v := m.trust
	if v == nil {
		return
	}
	return *v, true
}

// OldTrust returns the old "trust" field's value of the ExtractedCause entity.
// If the ExtractedCause object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedCauseMutation) OldTrust(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrust is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrust requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrust: %w", err)
	}
	return oldValue.Trust, nil
}

// AddTrust adds f to the "trust" field.
func (m *ExtractedCauseMutation) AddTrust(f float64) {
	if m.addtrust != nil {
		*m.addtrust += f
	} else {
		m.addtrust = &f
	}
}

// AddedTrust returns the value that was added to the "trust" field in this mutation.
func (m *ExtractedCauseMutation) AddedTrust() (r float64, exists bool) {
	v := m.addtrust
	if v == nil {
		return
	}
	return *v, true
}

// ResetTrust resets all changes to the "trust" field.
func (m *ExtractedCauseMutation) ResetTrust() {
	m.trust = nil
	m.addtrust = nil
}

// SetRelevance sets the "relevance" field.
func (m *ExtractedCauseMutation) SetRelevance(f float64) {
	m.relevance = &f
	m.addrelevance = nil
}

// Relevance returns the value of the "relevance" field in the mutation.
func (m *ExtractedCauseMutation) Relevance() (r float64, exists bool) {
	v := m.relevance
	if v == nil {
		return
	}
	return *v, true
}

// OldRelevance returns the old "relevance" field's value of the ExtractedCause entity.
// If the ExtractedCause object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedCauseMutation) OldRelevance(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelevance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelevance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelevance: %w", err)
	}
	return oldValue.Relevance, nil
}

// AddRelevance adds f to the "relevance" field.
func (m *ExtractedCauseMutation) AddRelevance(f float64) {
	if m.addrelevance != nil {
		*m.addrelevance += f
	} else {
		m.addrelevance = &f
	}
}

// AddedRelevance returns the value that was added to the "relevance" field in this mutation.
func (m *ExtractedCauseMutation) AddedRelevance() (r float64, exists bool) {
	v := m.addrelevance
	if v == nil {
		return
	}
	return *v, true
}

// ResetRelevance resets all changes to the "relevance" field.
func (m *ExtractedCauseMutation) ResetRelevance() {
	m.relevance = nil
	m.addrelevance = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ExtractedCauseMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExtractedCauseMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExtractedCause entity.
// If the ExtractedCause object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedCauseMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExtractedCauseMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ExtractedCauseMutation builder.
func (m *ExtractedCauseMutation) Where(ps ...predicate.ExtractedCause) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractedCauseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractedCauseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractedCause, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractedCauseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractedCauseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractedCause).
func (m *ExtractedCauseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractedCauseMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.document_id != nil {
		fields = append(fields, extractedcause.FieldDocumentID)
	}
	if m.dtc_code != nil {
		fields = append(fields, extractedcause.FieldDtcCode)
	}
	if m.description != nil {
		fields = append(fields, extractedcause.FieldDescription)
	}
	if m.likelihood != nil {
		fields = append(fields, extractedcause.FieldLikelihood)
	}
	if m.source_chunk_id != nil {
		fields = append(fields, extractedcause.FieldSourceChunkID)
	}
	if m.trust != nil {
		fields = append(fields, extractedcause.FieldTrust)
	}
	if m.relevance != nil {
		fields = append(fields, extractedcause.FieldRelevance)
	}
	if m.created_at != nil {
		fields = append(fields, extractedcause.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractedCauseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractedcause.FieldDocumentID:
		return m.DocumentID()
	case extractedcause.FieldDtcCode:
		return m.DtcCode()
	case extractedcause.FieldDescription:
		return m.Description()
	case extractedcause.FieldLikelihood:
		return m.Likelihood()
	case extractedcause.FieldSourceChunkID:
		return m.SourceChunkID()
	case extractedcause.FieldTrust:
		return m.Trust()
	case extractedcause.FieldRelevance:
		return m.Relevance()
	case extractedcause.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractedCauseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractedcause.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case extractedcause.FieldDtcCode:
		return m.OldDtcCode(ctx)
	case extractedcause.FieldDescription:
		return m.OldDescription(ctx)
	case extractedcause.FieldLikelihood:
		return m.OldLikelihood(ctx)
	case extractedcause.FieldSourceChunkID:
		return m.OldSourceChunkID(ctx)
	case extractedcause.FieldTrust:
		return m.OldTrust(ctx)
	case extractedcause.FieldRelevance:
		return m.OldRelevance(ctx)
	case extractedcause.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractedCause field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractedCauseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractedcause.FieldDocumentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case extractedcause.FieldDtcCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDtcCode(v)
		return nil
	case extractedcause.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case extractedcause.FieldLikelihood:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLikelihood(v)
		return nil
	case extractedcause.FieldSourceChunkID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceChunkID(v)
		return nil
	case extractedcause.FieldTrust:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrust(v)
		return nil
	case extractedcause.FieldRelevance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelevance(v)
		return nil
	case extractedcause.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractedCause field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractedCauseMutation) AddedFields() []string {
	var fields []string
	if m.addtrust != nil {
		fields = append(fields, extractedcause.FieldTrust)
	}
	if m.addrelevance != nil {
		fields = append(fields, extractedcause.FieldRelevance)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractedCauseMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extractedcause.FieldTrust:
		return m.AddedTrust()
	case extractedcause.FieldRelevance:
		return m.AddedRelevance()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractedCauseMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extractedcause.FieldTrust:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTrust(v)
		return nil
	case extractedcause.FieldRelevance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRelevance(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractedCause numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractedCauseMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractedcause.FieldLikelihood) {
		fields = append(fields, extractedcause.FieldLikelihood)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractedCauseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractedCauseMutation) ClearField(name string) error {
	switch name {
	case extractedcause.FieldLikelihood:
		m.ClearLikelihood()
		return nil
	}
	return fmt.Errorf("unknown ExtractedCause nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractedCauseMutation) ResetField(name string) error {
	switch name {
	case extractedcause.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case extractedcause.FieldDtcCode:
		m.ResetDtcCode()
		return nil
	case extractedcause.FieldDescription:
		m.ResetDescription()
		return nil
	case extractedcause.FieldLikelihood:
		m.ResetLikelihood()
		return nil
	case extractedcause.FieldSourceChunkID:
		m.ResetSourceChunkID()
		return nil
	case extractedcause.FieldTrust:
		m.ResetTrust()
		return nil
	case extractedcause.FieldRelevance:
		m.ResetRelevance()
		return nil
	case extractedcause.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractedCause field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractedCauseMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractedCauseMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractedCauseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractedCauseMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractedCauseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractedCauseMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractedCauseMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ExtractedCause unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractedCauseMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ExtractedCause edge %s", name)
}

// ExtractedDTCMutation represents an operation that mutates the ExtractedDTC nodes in the graph.
type ExtractedDTCMutation struct {
	config
	op              Op
	typ             string
	id              *string
	document_id     *string
	code            *string
	description     *string
	category        *string
	severity        *string
	source_chunk_id *string
	trust           *float64
	addtrust        *float64
	relevance       *float64
	addrelevance    *float64
	created_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*ExtractedDTC, error)
	predicates      []predicate.ExtractedDTC
}

var _ ent.Mutation = (*ExtractedDTCMutation)(nil)

// extracteddtcOption allows management of the mutation configuration using functional options.
type extracteddtcOption func(*ExtractedDTCMutation)

// newExtractedDTCMutation creates new mutation for the ExtractedDTC entity.
func newExtractedDTCMutation(c config, op Op, opts ...extracteddtcOption) *ExtractedDTCMutation {
	m := &ExtractedDTCMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractedDTC,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractedDTCID sets the ID field of the mutation.
func withExtractedDTCID(id string) extracteddtcOption {
	return func(m *ExtractedDTCMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractedDTC
		)
		m.oldValue = func(ctx context.Context) (*ExtractedDTC, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractedDTC.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractedDTC sets the old ExtractedDTC of the mutation.
func withExtractedDTC(node *ExtractedDTC) extracteddtcOption {
	return func(m *ExtractedDTCMutation) {
		m.oldValue = func(context.Context) (*ExtractedDTC, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractedDTCMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractedDTCMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractedDTC entities.
func (m *ExtractedDTCMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractedDTCMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractedDTCMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractedDTC.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *ExtractedDTCMutation) SetDocumentID(s string) {
	m.document_id = &s
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *ExtractedDTCMutation) DocumentID() (r string, exists bool) {
	v := m.document_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the ExtractedDTC entity.
// If the ExtractedDTC object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedDTCMutation) OldDocumentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *ExtractedDTCMutation) ResetDocumentID() {
	m.document_id = nil
}

// SetCode sets the "code" field.
func (m *ExtractedDTCMutation) SetCode(s string) {
	m.code = &s
}

// Code returns the value of the "code" field in the mutation.
func (m *ExtractedDTCMutation) Code() (r string, exists bool) {
	v := m.code
	if v == nil {
		return
	}
	return *v, true
}

// OldCode returns the old "code" field's value of the ExtractedDTC entity.
// If the ExtractedDTC object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedDTCMutation) OldCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCode: %w", err)
	}
	return oldValue.Code, nil
}

// ResetCode resets all changes to the "code" field.
func (m *ExtractedDTCMutation) ResetCode() {
	m.code = nil
}

// SetDescription sets the "description" field.
func (m *ExtractedDTCMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ExtractedDTCMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the ExtractedDTC entity.
// If the ExtractedDTC object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedDTCMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ExtractedDTCMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[extracteddtc.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ExtractedDTCMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[extracteddtc.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ExtractedDTCMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, extracteddtc.FieldDescription)
}

// SetCategory sets the "category" field.
func (m *ExtractedDTCMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *ExtractedDTCMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the ExtractedDTC entity.
// If the ExtractedDTC object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedDTCMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ClearCategory clears the value of the "category" field.
func (m *ExtractedDTCMutation) ClearCategory() {
	m.category = nil
	m.clearedFields[extracteddtc.FieldCategory] = struct{}{}
}

// CategoryCleared returns if the "category" field was cleared in this mutation.
func (m *ExtractedDTCMutation) CategoryCleared() bool {
	_, ok := m.clearedFields[extracteddtc.FieldCategory]
	return ok
}

// ResetCategory resets all changes to the "category" field.
func (m *ExtractedDTCMutation) ResetCategory() {
	m.category = nil
	delete(m.clearedFields, extracteddtc.FieldCategory)
}

// SetSeverity sets the "severity" field.
func (m *ExtractedDTCMutation) SetSeverity(s string) {
	m.severity = &s
}

// Severity returns the value of the "severity" field in the mutation.
func (m *ExtractedDTCMutation) Severity() (r string, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the ExtractedDTC entity.
// If the ExtractedDTC object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedDTCMutation) OldSeverity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ClearSeverity clears the value of the "severity" field.
func (m *ExtractedDTCMutation) ClearSeverity() {
	m.severity = nil
	m.clearedFields[extracteddtc.FieldSeverity] = struct{}{}
}

// SeverityCleared returns if the "severity" field was cleared in this mutation.
func (m *ExtractedDTCMutation) SeverityCleared() bool {
	_, ok := m.clearedFields[extracteddtc.FieldSeverity]
	return ok
}

// ResetSeverity resets all changes to the "severity" field.
func (m *ExtractedDTCMutation) ResetSeverity() {
	m.severity = nil
	delete(m.clearedFields, extracteddtc.FieldSeverity)
}

// SetSourceChunkID sets the "source_chunk_id" field.
func (m *ExtractedDTCMutation) SetSourceChunkID(s string) {
	m.source_chunk_id = &s
}

// SourceChunkID returns the value of the "source_chunk_id" field in the mutation.
func (m *ExtractedDTCMutation) SourceChunkID() (r string, exists bool) {
	v := m.source_chunk_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceChunkID returns the old "source_chunk_id" field's value of the ExtractedDTC entity.
// If the ExtractedDTC object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedDTCMutation) OldSourceChunkID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceChunkID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceChunkID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceChunkID: %w", err)
	}
	return oldValue.SourceChunkID, nil
}

// ResetSourceChunkID resets all changes to the "source_chunk_id" field.
func (m *ExtractedDTCMutation) ResetSourceChunkID() {
	m.source_chunk_id = nil
}

// SetTrust sets the "trust" field.
func (m *ExtractedDTCMutation) SetTrust(f float64) {
	m.trust = &f
	m.addtrust = nil
}

// Trust returns the value of the "trust" field in the mutation.
func (m *ExtractedDTCMutation) Trust() (r float64, exists bool) {
	v := m.trust
	if v == nil {
		return
	}
	return *v, true
}

// OldTrust returns the old "trust" field's value of the ExtractedDTC entity.
// If the ExtractedDTC object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedDTCMutation) OldTrust(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrust is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrust requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrust: %w", err)
	}
	return oldValue.Trust, nil
}

// AddTrust adds f to the "trust" field.
func (m *ExtractedDTCMutation) AddTrust(f float64) {
	if m.addtrust != nil {
		*m.addtrust += f
	} else {
		m.addtrust = &f
	}
}

// AddedTrust returns the value that was added to the "trust" field in this mutation.
func (m *ExtractedDTCMutation) AddedTrust() (r float64, exists bool) {
	v := m.addtrust
	if v == nil {
		return
	}
	return *v, true
}

// ResetTrust resets all changes to the "trust" field.
func (m *ExtractedDTCMutation) ResetTrust() {
	m.trust = nil
	m.addtrust = nil
}

// SetRelevance sets the "relevance" field.
func (m *ExtractedDTCMutation) SetRelevance(f float64) {
	m.relevance = &f
	m.addrelevance = nil
}

// Relevance returns the value of the "relevance" field in the mutation.
func (m *ExtractedDTCMutation) Relevance() (r float64, exists bool) {
	v := m.relevance
	if v == nil {
		return
	}
	return *v, true
}

// OldRelevance returns the old "relevance" field's value of the ExtractedDTC entity.
// If the ExtractedDTC object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedDTCMutation) OldRelevance(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelevance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelevance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelevance: %w", err)
	}
	return oldValue.Relevance, nil
}

// AddRelevance adds f to the "relevance" field.
func (m *ExtractedDTCMutation) AddRelevance(f float64) {
	if m.addrelevance != nil {
		*m.addrelevance += f
	} else {
		m.addrelevance = &f
	}
}

// AddedRelevance returns the value that was added to the "relevance" field in this mutation.
func (m *ExtractedDTCMutation) AddedRelevance() (r float64, exists bool) {
	v := m.addrelevance
	if v == nil {
		return
	}
	return *v, true
}

// ResetRelevance resets all changes to the "relevance" field.
func (m *ExtractedDTCMutation) ResetRelevance() {
	m.relevance = nil
	m.addrelevance = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ExtractedDTCMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExtractedDTCMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExtractedDTC entity.
// If the ExtractedDTC object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedDTCMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExtractedDTCMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ExtractedDTCMutation builder.
func (m *ExtractedDTCMutation) Where(ps ...predicate.ExtractedDTC) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractedDTCMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractedDTCMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractedDTC, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractedDTCMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractedDTCMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractedDTC).
func (m *ExtractedDTCMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractedDTCMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.document_id != nil {
		fields = append(fields, extracteddtc.FieldDocumentID)
	}
	if m.code != nil {
		fields = append(fields, extracteddtc.FieldCode)
	}
	if m.description != nil {
		fields = append(fields, extracteddtc.FieldDescription)
	}
	if m.category != nil {
		fields = append(fields, extracteddtc.FieldCategory)
	}
	if m.severity != nil {
		fields = append(fields, extracteddtc.FieldSeverity)
	}
	if m.source_chunk_id != nil {
		fields = append(fields, extracteddtc.FieldSourceChunkID)
	}
	if m.trust != nil {
		fields = append(fields, extracteddtc.FieldTrust)
	}
	if m.relevance != nil {
		fields = append(fields, extracteddtc.FieldRelevance)
	}
	if m.created_at != nil {
		fields = append(fields, extracteddtc.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractedDTCMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extracteddtc.FieldDocumentID:
		return m.DocumentID()
	case extracteddtc.FieldCode:
		return m.Code()
	case extracteddtc.FieldDescription:
		return m.Description()
	case extracteddtc.FieldCategory:
		return m.Category()
	case extracteddtc.FieldSeverity:
		return m.Severity()
	case extracteddtc.FieldSourceChunkID:
		return m.SourceChunkID()
	case extracteddtc.FieldTrust:
		return m.Trust()
	case extracteddtc.FieldRelevance:
		return m.Relevance()
	case extracteddtc.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractedDTCMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extracteddtc.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case extracteddtc.FieldCode:
		return m.OldCode(ctx)
	case extracteddtc.FieldDescription:
		return m.OldDescription(ctx)
	case extracteddtc.FieldCategory:
		return m.OldCategory(ctx)
	case extracteddtc.FieldSeverity:
		return m.OldSeverity(ctx)
	case extracteddtc.FieldSourceChunkID:
		return m.OldSourceChunkID(ctx)
	case extracteddtc.FieldTrust:
		return m.OldTrust(ctx)
	case extracteddtc.FieldRelevance:
		return m.OldRelevance(ctx)
	case extracteddtc.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractedDTC field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractedDTCMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extracteddtc.FieldDocumentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case extracteddtc.FieldCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCode(v)
		return nil
	case extracteddtc.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case extracteddtc.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case extracteddtc.FieldSeverity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case extracteddtc.FieldSourceChunkID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceChunkID(v)
		return nil
	case extracteddtc.FieldTrust:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrust(v)
		return nil
	case extracteddtc.FieldRelevance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelevance(v)
		return nil
	case extracteddtc.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractedDTC field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractedDTCMutation) AddedFields() []string {
	var fields []string
	if m.addtrust != nil {
		fields = append(fields, extracteddtc.FieldTrust)
	}
	if m.addrelevance != nil {
		fields = append(fields, extracteddtc.FieldRelevance)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractedDTCMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extracteddtc.FieldTrust:
		return m.AddedTrust()
	case extracteddtc.FieldRelevance:
		return m.AddedRelevance()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractedDTCMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extracteddtc.FieldTrust:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTrust(v)
		return nil
	case extracteddtc.FieldRelevance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRelevance(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractedDTC numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractedDTCMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extracteddtc.FieldDescription) {
		fields = append(fields, extracteddtc.FieldDescription)
	}
	if m.FieldCleared(extracteddtc.FieldCategory) {
		fields = append(fields, extracteddtc.FieldCategory)
	}
	if m.FieldCleared(extracteddtc.FieldSeverity) {
		fields = append(fields, extracteddtc.FieldSeverity)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractedDTCMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractedDTCMutation) ClearField(name string) error {
	switch name {
	case extracteddtc.FieldDescription:
		m.ClearDescription()
		return nil
	case extracteddtc.FieldCategory:
		m.ClearCategory()
		return nil
	case extracteddtc.FieldSeverity:
		m.ClearSeverity()
		return nil
	}
	return fmt.Errorf("unknown ExtractedDTC nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractedDTCMutation) ResetField(name string) error {
	switch name {
	case extracteddtc.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case extracteddtc.FieldCode:
		m.ResetCode()
		return nil
	case extracteddtc.FieldDescription:
		m.ResetDescription()
		return nil
	case extracteddtc.FieldCategory:
		m.ResetCategory()
		return nil
	case extracteddtc.FieldSeverity:
		m.ResetSeverity()
		return nil
	case extracteddtc.FieldSourceChunkID:
		m.ResetSourceChunkID()
		return nil
	case extracteddtc.FieldTrust:
		m.ResetTrust()
		return nil
	case extracteddtc.FieldRelevance:
		m.ResetRelevance()
		return nil
	case extracteddtc.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractedDTC field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractedDTCMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractedDTCMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractedDTCMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractedDTCMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractedDTCMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractedDTCMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractedDTCMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ExtractedDTC unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractedDTCMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ExtractedDTC edge %s", name)
}

// ExtractedSensorMutation represents an operation that mutates the ExtractedSensor nodes in the graph.
type ExtractedSensorMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	document_id             *string
	name                    *string
	sensor_type             *string
	typical_range           *string
	unit                    *string
	related_dtc_codes       *[]string
	appendrelated_dtc_codes []string
	source_chunk_id         *string
	trust                   *float64
	addtrust                *float64
	relevance               *float64
	addrelevance            *float64
	created_at              *time.Time
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*ExtractedSensor, error)
	predicates              []predicate.ExtractedSensor
}

var _ ent.Mutation = (*ExtractedSensorMutation)(nil)

// extractedsensorOption allows management of the mutation configuration using functional options.
type extractedsensorOption func(*ExtractedSensorMutation)

// newExtractedSensorMutation creates new mutation for the ExtractedSensor entity.
func newExtractedSensorMutation(c config, op Op, opts ...extractedsensorOption) *ExtractedSensorMutation {
	m := &ExtractedSensorMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractedSensor,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractedSensorID sets the ID field of the mutation.
func withExtractedSensorID(id string) extractedsensorOption {
	return func(m *ExtractedSensorMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractedSensor
		)
		m.oldValue = func(ctx context.Context) (*ExtractedSensor, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractedSensor.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractedSensor sets the old ExtractedSensor of the mutation.
func withExtractedSensor(node *ExtractedSensor) extractedsensorOption {
	return func(m *ExtractedSensorMutation) {
		m.oldValue = func(context.Context) (*ExtractedSensor, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractedSensorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractedSensorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractedSensor entities.
func (m *ExtractedSensorMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractedSensorMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractedSensorMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractedSensor.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *ExtractedSensorMutation) SetDocumentID(s string) {
	m.document_id = &s
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *ExtractedSensorMutation) DocumentID() (r string, exists bool) {
	v := m.document_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the ExtractedSensor entity.
// If the ExtractedSensor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedSensorMutation) OldDocumentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *ExtractedSensorMutation) ResetDocumentID() {
	m.document_id = nil
}

// SetName sets the "name" field.
func (m *ExtractedSensorMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ExtractedSensorMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ExtractedSensor entity.
// If the ExtractedSensor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedSensorMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ExtractedSensorMutation) ResetName() {
	m.name = nil
}

// SetSensorType sets the "sensor_type" field.
func (m *ExtractedSensorMutation) SetSensorType(s string) {
	m.sensor_type = &s
}

// SensorType returns the value of the "sensor_type" field in the mutation.
func (m *ExtractedSensorMutation) SensorType() (r string, exists bool) {
	v := m.sensor_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSensorType returns the old "sensor_type" field's value of the ExtractedSensor entity.
// If the ExtractedSensor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedSensorMutation) OldSensorType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSensorType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSensorType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSensorType: %w", err)
	}
	return oldValue.SensorType, nil
}

// ClearSensorType clears the value of the "sensor_type" field.
func (m *ExtractedSensorMutation) ClearSensorType() {
	m.sensor_type = nil
	m.clearedFields[extractedsensor.FieldSensorType] = struct{}{}
}

// SensorTypeCleared returns if the "sensor_type" field was cleared in this mutation.
func (m *ExtractedSensorMutation) SensorTypeCleared() bool {
	_, ok := m.clearedFields[extractedsensor.FieldSensorType]
	return ok
}

// ResetSensorType resets all changes to the "sensor_type" field.
func (m *ExtractedSensorMutation) ResetSensorType() {
	m.sensor_type = nil
	delete(m.clearedFields, extractedsensor.FieldSensorType)
}

// SetTypicalRange sets the "typical_range" field.
func (m *ExtractedSensorMutation) SetTypicalRange(s string) {
	m.typical_range = &s
}

// TypicalRange returns the value of the "typical_range" field in the mutation.
func (m *ExtractedSensorMutation) TypicalRange() (r string, exists bool) {
	v := m.typical_range
	if v == nil {
		return
	}
	return *v, true
}

// OldTypicalRange returns the old "typical_range" field's value of the ExtractedSensor entity.
// If the ExtractedSensor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedSensorMutation) OldTypicalRange(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTypicalRange is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTypicalRange requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTypicalRange: %w", err)
	}
	return oldValue.TypicalRange, nil
}

// ClearTypicalRange clears the value of the "typical_range" field.
func (m *ExtractedSensorMutation) ClearTypicalRange() {
	m.typical_range = nil
	m.clearedFields[extractedsensor.FieldTypicalRange] = struct{}{}
}

// TypicalRangeCleared returns if the "typical_range" field was cleared in this mutation.
func (m *ExtractedSensorMutation) TypicalRangeCleared() bool {
	_, ok := m.clearedFields[extractedsensor.FieldTypicalRange]
	return ok
}

// ResetTypicalRange resets all changes to the "typical_range" field.
func (m *ExtractedSensorMutation) ResetTypicalRange() {
	m.typical_range = nil
	delete(m.clearedFields, extractedsensor.FieldTypicalRange)
}

// SetUnit sets the "unit" field.
func (m *ExtractedSensorMutation) SetUnit(s string) {
	m.unit = &s
}

// Unit returns the value of the "unit" field in the mutation.
func (m *ExtractedSensorMutation) Unit() (r string, exists bool) {
	v := m.unit
	if v == nil {
		return
	}
	return *v, true
}

// OldUnit returns the old "unit" field's value of the ExtractedSensor entity.
// If the ExtractedSensor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedSensorMutation) OldUnit(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnit: %w", err)
	}
	return oldValue.Unit, nil
}

// ClearUnit clears the value of the "unit" field.
func (m *ExtractedSensorMutation) ClearUnit() {
	m.unit = nil
	m.clearedFields[extractedsensor.FieldUnit] = struct{}{}
}

// UnitCleared returns if the "unit" field was cleared in this mutation.
func (m *ExtractedSensorMutation) UnitCleared() bool {
	_, ok := m.clearedFields[extractedsensor.FieldUnit]
	return ok
}

// ResetUnit resets all changes to the "unit" field.
func (m *ExtractedSensorMutation) ResetUnit() {
	m.unit = nil
	delete(m.clearedFields, extractedsensor.FieldUnit)
}

// SetRelatedDtcCodes sets the "related_dtc_codes" field.
func (m *ExtractedSensorMutation) SetRelatedDtcCodes(s []string) {
	m.related_dtc_codes = &s
	m.appendrelated_dtc_codes = nil
}

// RelatedDtcCodes returns the value of the "related_dtc_codes" field in the mutation.
func (m *ExtractedSensorMutation) RelatedDtcCodes() (r []string, exists bool) {
	v := m.related_dtc_codes
	if v == nil {
		return
	}
	return *v, true
}

// OldRelatedDtcCodes returns the old "related_dtc_codes" field's value of the ExtractedSensor entity.
// If the ExtractedSensor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedSensorMutation) OldRelatedDtcCodes(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelatedDtcCodes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelatedDtcCodes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelatedDtcCodes: %w", err)
	}
	return oldValue.RelatedDtcCodes, nil
}

// AppendRelatedDtcCodes adds s to the "related_dtc_codes" field.
func (m *ExtractedSensorMutation) AppendRelatedDtcCodes(s []string) {
	m.appendrelated_dtc_codes = append(m.appendrelated_dtc_codes, s...)
}

// AppendedRelatedDtcCodes returns the list of values that were appended to the "related_dtc_codes" field in this mutation.
func (m *ExtractedSensorMutation) AppendedRelatedDtcCodes() ([]string, bool) {
	if len(m.appendrelated_dtc_codes) == 0 {
		return nil, false
	}
	return m.appendrelated_dtc_codes, true
}

// ClearRelatedDtcCodes clears the value of the "related_dtc_codes" field.
func (m *ExtractedSensorMutation) ClearRelatedDtcCodes() {
	m.related_dtc_codes = nil
	m.appendrelated_dtc_codes = nil
	m.clearedFields[extractedsensor.FieldRelatedDtcCodes] = struct{}{}
}

// RelatedDtcCodesCleared returns if the "related_dtc_codes" field was cleared in this mutation.
func (m *ExtractedSensorMutation) RelatedDtcCodesCleared() bool {
	_, ok := m.clearedFields[extractedsensor.FieldRelatedDtcCodes]
	return ok
}

// ResetRelatedDtcCodes resets all changes to the "related_dtc_codes" field.
func (m *ExtractedSensorMutation) ResetRelatedDtcCodes() {
	m.related_dtc_codes = nil
	m.appendrelated_dtc_codes = nil
	delete(m.clearedFields, extractedsensor.FieldRelatedDtcCodes)
}

// SetSourceChunkID sets the "source_chunk_id" field.
func (m *ExtractedSensorMutation) SetSourceChunkID(s string) {
	m.source_chunk_id = &s
}

// SourceChunkID returns the value of the "source_chunk_id" field in the mutation.
func (m *ExtractedSensorMutation) SourceChunkID() (r string, exists bool) {
	v := m.source_chunk_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceChunkID returns the old "source_chunk_id" field's value of the ExtractedSensor entity.
// If the ExtractedSensor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedSensorMutation) OldSourceChunkID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceChunkID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceChunkID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceChunkID: %w", err)
	}
	return oldValue.SourceChunkID, nil
}

// ResetSourceChunkID resets all changes to the "source_chunk_id" field.
func (m *ExtractedSensorMutation) ResetSourceChunkID() {
	m.source_chunk_id = nil
}

// SetTrust sets the "trust" field.
func (m *ExtractedSensorMutation) SetTrust(f float64) {
	m.trust = &f
	m.addtrust = nil
}

// Trust returns the value of the "trust" field in the mutation.
func (m *ExtractedSensorMutation) Trust() (r float64, exists bool) {
	v := m.trust
	if v == nil {
		return
	}
	return *v, true
}

// OldTrust returns the old "trust" field's value of the ExtractedSensor entity.
// If the ExtractedSensor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedSensorMutation) OldTrust(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrust is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrust requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrust: %w", err)
	}
	return oldValue.Trust, nil
}

// AddTrust adds f to the "trust" field.
func (m *ExtractedSensorMutation) AddTrust(f float64) {
	if m.addtrust != nil {
		*m.addtrust += f
	} else {
		m.addtrust = &f
	}
}

// AddedTrust returns the value that was added to the "trust" field in this mutation.
func (m *ExtractedSensorMutation) AddedTrust() (r float64, exists bool) {
	v := m.addtrust
	if v == nil {
		return
	}
	return *v, true
}

// ResetTrust resets all changes to the "trust" field.
func (m *ExtractedSensorMutation) ResetTrust() {
	m.trust = nil
	m.addtrust = nil
}

// SetRelevance sets the "relevance" field.
func (m *ExtractedSensorMutation) SetRelevance(f float64) {
	m.relevance = &f
	m.addrelevance = nil
}

// Relevance returns the value of the "relevance" field in the mutation.
func (m *ExtractedSensorMutation) Relevance() (r float64, exists bool) {
	v := m.relevance
	if v == nil {
		return
	}
	return *v, true
}

// OldRelevance returns the old "relevance" field's value of the ExtractedSensor entity.
// If the ExtractedSensor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedSensorMutation) OldRelevance(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelevance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelevance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelevance: %w", err)
	}
	return oldValue.Relevance, nil
}

// AddRelevance adds f to the "relevance" field.
func (m *ExtractedSensorMutation) AddRelevance(f float64) {
	if m.addrelevance != nil {
		*m.addrelevance += f
	} else {
		m.addrelevance = &f
	}
}

// AddedRelevance returns the value that was added to the "relevance" field in this mutation.
func (m *ExtractedSensorMutation) AddedRelevance() (r float64, exists bool) {
	v := m.addrelevance
	if v == nil {
		return
	}
	return *v, true
}

// ResetRelevance resets all changes to the "relevance" field.
func (m *ExtractedSensorMutation) ResetRelevance() {
	m.relevance = nil
	m.addrelevance = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ExtractedSensorMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExtractedSensorMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExtractedSensor entity.
// If the ExtractedSensor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedSensorMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExtractedSensorMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ExtractedSensorMutation builder.
func (m *ExtractedSensorMutation) Where(ps ...predicate.ExtractedSensor) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractedSensorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractedSensorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractedSensor, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractedSensorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractedSensorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractedSensor).
func (m *ExtractedSensorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractedSensorMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.document_id != nil {
		fields = append(fields, extractedsensor.FieldDocumentID)
	}
	if m.name != nil {
		fields = append(fields, extractedsensor.FieldName)
	}
	if m.sensor_type != nil {
		fields = append(fields, extractedsensor.FieldSensorType)
	}
	if m.typical_range != nil {
		fields = append(fields, extractedsensor.FieldTypicalRange)
	}
	if m.unit != nil {
		fields = append(fields, extractedsensor.FieldUnit)
	}
	if m.related_dtc_codes != nil {
		fields = append(fields, extractedsensor.FieldRelatedDtcCodes)
	}
	if m.source_chunk_id != nil {
		fields = append(fields, extractedsensor.FieldSourceChunkID)
	}
	if m.trust != nil {
		fields = append(fields, extractedsensor.FieldTrust)
	}
	if m.relevance != nil {
		fields = append(fields, extractedsensor.FieldRelevance)
	}
	if m.created_at != nil {
		fields = append(fields, extractedsensor.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractedSensorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractedsensor.FieldDocumentID:
		return m.DocumentID()
	case extractedsensor.FieldName:
		return m.Name()
	case extractedsensor.FieldSensorType:
		return m.SensorType()
	case extractedsensor.FieldTypicalRange:
		return m.TypicalRange()
	case extractedsensor.FieldUnit:
		return m.Unit()
	case extractedsensor.FieldRelatedDtcCodes:
		return m.RelatedDtcCodes()
	case extractedsensor.FieldSourceChunkID:
		return m.SourceChunkID()
	case extractedsensor.FieldTrust:
		return m.Trust()
	case extractedsensor.FieldRelevance:
		return m.Relevance()
	case extractedsensor.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractedSensorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractedsensor.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case extractedsensor.FieldName:
		return m.OldName(ctx)
	case extractedsensor.FieldSensorType:
		return m.OldSensorType(ctx)
	case extractedsensor.FieldTypicalRange:
		return m.OldTypicalRange(ctx)
	case extractedsensor.FieldUnit:
		return m.OldUnit(ctx)
	case extractedsensor.FieldRelatedDtcCodes:
		return m.OldRelatedDtcCodes(ctx)
	case extractedsensor.FieldSourceChunkID:
		return m.OldSourceChunkID(ctx)
	case extractedsensor.FieldTrust:
		return m.OldTrust(ctx)
	case extractedsensor.FieldRelevance:
		return m.OldRelevance(ctx)
	case extractedsensor.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractedSensor field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractedSensorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractedsensor.FieldDocumentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case extractedsensor.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case extractedsensor.FieldSensorType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSensorType(v)
		return nil
	case extractedsensor.FieldTypicalRange:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTypicalRange(v)
		return nil
	case extractedsensor.FieldUnit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnit(v)
		return nil
	case extractedsensor.FieldRelatedDtcCodes:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelatedDtcCodes(v)
		return nil
	case extractedsensor.FieldSourceChunkID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceChunkID(v)
		return nil
	case extractedsensor.FieldTrust:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrust(v)
		return nil
	case extractedsensor.FieldRelevance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelevance(v)
		return nil
	case extractedsensor.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractedSensor field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractedSensorMutation) AddedFields() []string {
	var fields []string
	if m.addtrust != nil {
		fields = append(fields, extractedsensor.FieldTrust)
	}
	if m.addrelevance != nil {
		fields = append(fields, extractedsensor.FieldRelevance)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractedSensorMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extractedsensor.FieldTrust:
		return m.AddedTrust()
	case extractedsensor.FieldRelevance:
		return m.AddedRelevance()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractedSensorMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extractedsensor.FieldTrust:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTrust(v)
		return nil
	case extractedsensor.FieldRelevance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRelevance(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractedSensor numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractedSensorMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractedsensor.FieldSensorType) {
		fields = append(fields, extractedsensor.FieldSensorType)
	}
	if m.FieldCleared(extractedsensor.FieldTypicalRange) {
		fields = append(fields, extractedsensor.FieldTypicalRange)
	}
	if m.FieldCleared(extractedsensor.FieldUnit) {
		fields = append(fields, extractedsensor.FieldUnit)
	}
	if m.FieldCleared(extractedsensor.FieldRelatedDtcCodes) {
		fields = append(fields, extractedsensor.FieldRelatedDtcCodes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractedSensorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractedSensorMutation) ClearField(name string) error {
	switch name {
	case extractedsensor.FieldSensorType:
		m.ClearSensorType()
		return nil
	case extractedsensor.FieldTypicalRange:
		m.ClearTypicalRange()
		return nil
	case extractedsensor.FieldUnit:
		m.ClearUnit()
		return nil
	case extractedsensor.FieldRelatedDtcCodes:
		m.ClearRelatedDtcCodes()
		return nil
	}
	return fmt.Errorf("unknown ExtractedSensor nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractedSensorMutation) ResetField(name string) error {
	switch name {
	case extractedsensor.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case extractedsensor.FieldName:
		m.ResetName()
		return nil
	case extractedsensor.FieldSensorType:
		m.ResetSensorType()
		return nil
	case extractedsensor.FieldTypicalRange:
		m.ResetTypicalRange()
		return nil
	case extractedsensor.FieldUnit:
		m.ResetUnit()
		return nil
	case extractedsensor.FieldRelatedDtcCodes:
		m.ResetRelatedDtcCodes()
		return nil
	case extractedsensor.FieldSourceChunkID:
		m.ResetSourceChunkID()
		return nil
	case extractedsensor.FieldTrust:
		m.ResetTrust()
		return nil
	case extractedsensor.FieldRelevance:
		m.ResetRelevance()
		return nil
	case extractedsensor.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractedSensor field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractedSensorMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractedSensorMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractedSensorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractedSensorMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractedSensorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractedSensorMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractedSensorMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ExtractedSensor unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractedSensorMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ExtractedSensor edge %s", name)
}

// ExtractedStepMutation represents an operation that mutates the ExtractedStep nodes in the graph.
type ExtractedStepMutation struct {
	config
	op              Op
	typ             string
	id              *string
	document_id     *string
	dtc_code        *string
	step_order      *int
	addstep_order   *int
	description     *string
	tools_required  *string
	expected_values *string
	source_chunk_id *string
	trust           *float64
	addtrust        *float64
	relevance       *float64
	addrelevance    *float64
	created_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*ExtractedStep, error)
	predicates      []predicate.ExtractedStep
}

var _ ent.Mutation = (*ExtractedStepMutation)(nil)

// extractedstepOption allows management of the mutation configuration using functional options.
type extractedstepOption func(*ExtractedStepMutation)

// newExtractedStepMutation creates new mutation for the ExtractedStep entity.
func newExtractedStepMutation(c config, op Op, opts ...extractedstepOption) *ExtractedStepMutation {
	m := &ExtractedStepMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractedStep,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractedStepID sets the ID field of the mutation.
func withExtractedStepID(id string) extractedstepOption {
	return func(m *ExtractedStepMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractedStep
		)
		m.oldValue = func(ctx context.Context) (*ExtractedStep, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractedStep.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractedStep sets the old ExtractedStep of the mutation.
func withExtractedStep(node *ExtractedStep) extractedstepOption {
	return func(m *ExtractedStepMutation) {
		m.oldValue = func(context.Context) (*ExtractedStep, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractedStepMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractedStepMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractedStep entities.
func (m *ExtractedStepMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractedStepMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractedStepMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractedStep.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *ExtractedStepMutation) SetDocumentID(s string) {
	m.document_id = &s
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *ExtractedStepMutation) DocumentID() (r string, exists bool) {
	v := m.document_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the ExtractedStep entity.
// If the ExtractedStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedStepMutation) OldDocumentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *ExtractedStepMutation) ResetDocumentID() {
	m.document_id = nil
}

// SetDtcCode sets the "dtc_code" field.
func (m *ExtractedStepMutation) SetDtcCode(s string) {
	m.dtc_code = &s
}

// DtcCode returns the value of the "dtc_code" field in the mutation.
func (m *ExtractedStepMutation) DtcCode() (r string, exists bool) {
	v := m.dtc_code
	if v == nil {
		return
	}
	return *v, true
}

// OldDtcCode returns the old "dtc_code" field's value of the ExtractedStep entity.
// If the ExtractedStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedStepMutation) OldDtcCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDtcCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDtcCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDtcCode: %w", err)
	}
	return oldValue.DtcCode, nil
}

// ResetDtcCode resets all changes to the "dtc_code" field.
func (m *ExtractedStepMutation) ResetDtcCode() {
	m.dtc_code = nil
}

// SetStepOrder sets the "step_order" field.
func (m *ExtractedStepMutation) SetStepOrder(i int) {
	m.step_order = &i
	m.addstep_order = nil
}

// StepOrder returns the value of the "step_order" field in the mutation.
func (m *ExtractedStepMutation) StepOrder() (r int, exists bool) {
	v := m.step_order
	if v == nil {
		return
	}
	return *v, true
}

// OldStepOrder returns the old "step_order" field's value of the ExtractedStep entity.
// If the ExtractedStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedStepMutation) OldStepOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepOrder: %w", err)
	}
	return oldValue.StepOrder, nil
}

// AddStepOrder adds i to the "step_order" field.
func (m *ExtractedStepMutation) AddStepOrder(i int) {
	if m.addstep_order != nil {
		*m.addstep_order += i
	} else {
		m.addstep_order = &i
	}
}

// AddedStepOrder returns the value that was added to the "step_order" field in this mutation.
func (m *ExtractedStepMutation) AddedStepOrder() (r int, exists bool) {
	v := m.addstep_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetStepOrder resets all changes to the "step_order" field.
func (m *ExtractedStepMutation) ResetStepOrder() {
	m.step_order = nil
	m.addstep_order = nil
}

// SetDescription sets the "description" field.
func (m *ExtractedStepMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ExtractedStepMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the ExtractedStep entity.
// If the ExtractedStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedStepMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *ExtractedStepMutation) ResetDescription() {
	m.description = nil
}

// SetToolsRequired sets the "tools_required" field.
func (m *ExtractedStepMutation) SetToolsRequired(s string) {
	m.tools_required = &s
}

// ToolsRequired returns the value of the "tools_required" field in the mutation.
func (m *ExtractedStepMutation) ToolsRequired() (r string, exists bool) {
	v := m.tools_required
	if v == nil {
		return
	}
	return *v, true
}

// OldToolsRequired returns the old "tools_required" field's value of the ExtractedStep entity.
// If the ExtractedStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedStepMutation) OldToolsRequired(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolsRequired is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolsRequired requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolsRequired: %w", err)
	}
	return oldValue.ToolsRequired, nil
}

// ClearToolsRequired clears the value of the "tools_required" field.
func (m *ExtractedStepMutation) ClearToolsRequired() {
	m.tools_required = nil
	m.clearedFields[extractedstep.FieldToolsRequired] = struct{}{}
}

// ToolsRequiredCleared returns if the "tools_required" field was cleared in this mutation.
func (m *ExtractedStepMutation) ToolsRequiredCleared() bool {
	_, ok := m.clearedFields[extractedstep.FieldToolsRequired]
	return ok
}

// ResetToolsRequired resets all changes to the "tools_required" field.
func (m *ExtractedStepMutation) ResetToolsRequired() {
	m.tools_required = nil
	delete(m.clearedFields, extractedstep.FieldToolsRequired)
}

// SetExpectedValues sets the "expected_values" field.
func (m *ExtractedStepMutation) SetExpectedValues(s string) {
	m.expected_values = &s
}

// ExpectedValues returns the value of the "expected_values" field in the mutation.
func (m *ExtractedStepMutation) ExpectedValues() (r string, exists bool) {
	v := m.expected_values
	if v == nil {
		return
	}
	return *v, true
}

// OldExpectedValues returns the old "expected_values" field's value of the ExtractedStep entity.
// If the ExtractedStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedStepMutation) OldExpectedValues(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpectedValues is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpectedValues requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpectedValues: %w", err)
	}
	return oldValue.ExpectedValues, nil
}

// ClearExpectedValues clears the value of the "expected_values" field.
func (m *ExtractedStepMutation) ClearExpectedValues() {
	m.expected_values = nil
	m.clearedFields[extractedstep.FieldExpectedValues] = struct{}{}
}

// ExpectedValuesCleared returns if the "expected_values" field was cleared in this mutation.
func (m *ExtractedStepMutation) ExpectedValuesCleared() bool {
	_, ok := m.clearedFields[extractedstep.FieldExpectedValues]
	return ok
}

// ResetExpectedValues resets all changes to the "expected_values" field.
func (m *ExtractedStepMutation) ResetExpectedValues() {
	m.expected_values = nil
	delete(m.clearedFields, extractedstep.FieldExpectedValues)
}

// SetSourceChunkID sets the "source_chunk_id" field.
func (m *ExtractedStepMutation) SetSourceChunkID(s string) {
	m.source_chunk_id = &s
}

// SourceChunkID returns the value of the "source_chunk_id" field in the mutation.
func (m *ExtractedStepMutation) SourceChunkID() (r string, exists bool) {
	v := m.source_chunk_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceChunkID returns the old "source_chunk_id" field's value of the ExtractedStep entity.
// If the ExtractedStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedStepMutation) OldSourceChunkID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceChunkID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceChunkID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceChunkID: %w", err)
	}
	return oldValue.SourceChunkID, nil
}

// ResetSourceChunkID resets all changes to the "source_chunk_id" field.
func (m *ExtractedStepMutation) ResetSourceChunkID() {
	m.source_chunk_id = nil
}

// SetTrust sets the "trust" field.
func (m *ExtractedStepMutation) SetTrust(f float64) {
	m.trust = &f
	m.addtrust = nil
}

// Trust returns the value of the "trust" field in the mutation.
func (m *ExtractedStepMutation) Trust() (r float64, exists bool) {
	v := m.trust
	if v == nil {
		return
	}
	return *v, true
}

// OldTrust returns the old "trust" field's value of the ExtractedStep entity.
// If the ExtractedStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedStepMutation) OldTrust(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrust is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrust requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrust: %w", err)
	}
	return oldValue.Trust, nil
}

// AddTrust adds f to the "trust" field.
func (m *ExtractedStepMutation) AddTrust(f float64) {
	if m.addtrust != nil {
		*m.addtrust += f
	} else {
		m.addtrust = &f
	}
}

// AddedTrust returns the value that was added to the "trust" field in this mutation.
func (m *ExtractedStepMutation) AddedTrust() (r float64, exists bool) {
	v := m.addtrust
	if v == nil {
		return
	}
	return *v, true
}

// ResetTrust resets all changes to the "trust" field.
func (m *ExtractedStepMutation) ResetTrust() {
	m.trust = nil
	m.addtrust = nil
}

// SetRelevance sets the "relevance" field.
func (m *ExtractedStepMutation) SetRelevance(f float64) {
	m.relevance = &f
	m.addrelevance = nil
}

// Relevance returns the value of the "relevance" field in the mutation.
func (m *ExtractedStepMutation) Relevance() (r float64, exists bool) {
	v := m.relevance
	if v == nil {
		return
	}
	return *v, true
}

// OldRelevance returns the old "relevance" field's value of the ExtractedStep entity.
// If the ExtractedStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedStepMutation) OldRelevance(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelevance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelevance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelevance: %w", err)
	}
	return oldValue.Relevance, nil
}

// AddRelevance adds f to the "relevance" field.
func (m *ExtractedStepMutation) AddRelevance(f float64) {
	if m.addrelevance != nil {
		*m.addrelevance += f
	} else {
		m.addrelevance = &f
	}
}

// AddedRelevance returns the value that was added to the "relevance" field in this mutation.
func (m *ExtractedStepMutation) AddedRelevance() (r float64, exists bool) {
	v := m.addrelevance
	if v == nil {
		return
	}
	return *v, true
}

// ResetRelevance resets all changes to the "relevance" field.
func (m *ExtractedStepMutation) ResetRelevance() {
	m.relevance = nil
	m.addrelevance = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ExtractedStepMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExtractedStepMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExtractedStep entity.
// If the ExtractedStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedStepMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExtractedStepMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ExtractedStepMutation builder.
func (m *ExtractedStepMutation) Where(ps ...predicate.ExtractedStep) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractedStepMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractedStepMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractedStep, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractedStepMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractedStepMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractedStep).
func (m *ExtractedStepMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractedStepMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.document_id != nil {
		fields = append(fields, extractedstep.FieldDocumentID)
	}
	if m.dtc_code != nil {
		fields = append(fields, extractedstep.FieldDtcCode)
	}
	if m.step_order != nil {
		fields = append(fields, extractedstep.FieldStepOrder)
	}
	if m.description != nil {
		fields = append(fields, extractedstep.FieldDescription)
	}
	if m.tools_required != nil {
		fields = append(fields, extractedstep.FieldToolsRequired)
	}
	if m.expected_values != nil {
		fields = append(fields, extractedstep.FieldExpectedValues)
	}
	if m.source_chunk_id != nil {
		fields = append(fields, extractedstep.FieldSourceChunkID)
	}
	if m.trust != nil {
		fields = append(fields, extractedstep.FieldTrust)
	}
	if m.relevance != nil {
		fields = append(fields, extractedstep.FieldRelevance)
	}
	if m.created_at != nil {
		fields = append(fields, extractedstep.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractedStepMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractedstep.FieldDocumentID:
		return m.DocumentID()
	case extractedstep.FieldDtcCode:
		return m.DtcCode()
	case extractedstep.FieldStepOrder:
		return m.StepOrder()
	case extractedstep.FieldDescription:
		return m.Description()
	case extractedstep.FieldToolsRequired:
		return m.ToolsRequired()
	case extractedstep.FieldExpectedValues:
		return m.ExpectedValues()
	case extractedstep.FieldSourceChunkID:
		return m.SourceChunkID()
	case extractedstep.FieldTrust:
		return m.Trust()
	case extractedstep.FieldRelevance:
		return m.Relevance()
	case extractedstep.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractedStepMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractedstep.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case extractedstep.FieldDtcCode:
		return m.OldDtcCode(ctx)
	case extractedstep.FieldStepOrder:
		return m.OldStepOrder(ctx)
	case extractedstep.FieldDescription:
		return m.OldDescription(ctx)
	case extractedstep.FieldToolsRequired:
		return m.OldToolsRequired(ctx)
	case extractedstep.FieldExpectedValues:
		return m.OldExpectedValues(ctx)
	case extractedstep.FieldSourceChunkID:
		return m.OldSourceChunkID(ctx)
	case extractedstep.FieldTrust:
		return m.OldTrust(ctx)
	case extractedstep.FieldRelevance:
		return m.OldRelevance(ctx)
	case extractedstep.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractedStep field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractedStepMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractedstep.FieldDocumentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case extractedstep.FieldDtcCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDtcCode(v)
		return nil
	case extractedstep.FieldStepOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepOrder(v)
		return nil
	case extractedstep.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case extractedstep.FieldToolsRequired:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolsRequired(v)
		return nil
	case extractedstep.FieldExpectedValues:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpectedValues(v)
		return nil
	case extractedstep.FieldSourceChunkID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceChunkID(v)
		return nil
	case extractedstep.FieldTrust:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrust(v)
		return nil
	case extractedstep.FieldRelevance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelevance(v)
		return nil
	case extractedstep.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractedStep field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractedStepMutation) AddedFields() []string {
	var fields []string
	if m.addstep_order != nil {
		fields = append(fields, extractedstep.FieldStepOrder)
	}
	if m.addtrust != nil {
		fields = append(fields, extractedstep.FieldTrust)
	}
	if m.addrelevance != nil {
		fields = append(fields, extractedstep.FieldRelevance)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractedStepMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extractedstep.FieldStepOrder:
		return m.AddedStepOrder()
	case extractedstep.FieldTrust:
		return m.AddedTrust()
	case extractedstep.FieldRelevance:
		return m.AddedRelevance()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractedStepMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extractedstep.FieldStepOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStepOrder(v)
		return nil
	case extractedstep.FieldTrust:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTrust(v)
		return nil
	case extractedstep.FieldRelevance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRelevance(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractedStep numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractedStepMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractedstep.FieldToolsRequired) {
		fields = append(fields, extractedstep.FieldToolsRequired)
	}
	if m.FieldCleared(extractedstep.FieldExpectedValues) {
		fields = append(fields, extractedstep.FieldExpectedValues)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractedStepMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractedStepMutation) ClearField(name string) error {
	switch name {
	case extractedstep.FieldToolsRequired:
		m.ClearToolsRequired()
		return nil
	case extractedstep.FieldExpectedValues:
		m.ClearExpectedValues()
		return nil
	}
	return fmt.Errorf("unknown ExtractedStep nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractedStepMutation) ResetField(name string) error {
	switch name {
	case extractedstep.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case extractedstep.FieldDtcCode:
		m.ResetDtcCode()
		return nil
	case extractedstep.FieldStepOrder:
		m.ResetStepOrder()
		return nil
	case extractedstep.FieldDescription:
		m.ResetDescription()
		return nil
	case extractedstep.FieldToolsRequired:
		m.ResetToolsRequired()
		return nil
	case extractedstep.FieldExpectedValues:
		m.ResetExpectedValues()
		return nil
	case extractedstep.FieldSourceChunkID:
		m.ResetSourceChunkID()
		return nil
	case extractedstep.FieldTrust:
		m.ResetTrust()
		return nil
	case extractedstep.FieldRelevance:
		m.ResetRelevance()
		return nil
	case extractedstep.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractedStep field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractedStepMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractedStepMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractedStepMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractedStepMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractedStepMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractedStepMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractedStepMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ExtractedStep unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractedStepMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ExtractedStep edge %s", name)
}

// ExtractedTSBMutation represents an operation that mutates the ExtractedTSB nodes in the graph.
type ExtractedTSBMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	document_id             *string
	tsb_number              *string
	title                   *string
	affected_models         *string
	related_dtc_codes       *[]string
	appendrelated_dtc_codes []string
	summary                 *string
	source_chunk_id         *string
	trust                   *float64
	addtrust                *float64
	relevance               *float64
	addrelevance            *float64
	created_at              *time.Time
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*ExtractedTSB, error)
	predicates              []predicate.ExtractedTSB
}

var _ ent.Mutation = (*ExtractedTSBMutation)(nil)

// extractedtsbOption allows management of the mutation configuration using functional options.
type extractedtsbOption func(*ExtractedTSBMutation)

// newExtractedTSBMutation creates new mutation for the ExtractedTSB entity.
func newExtractedTSBMutation(c config, op Op, opts ...extractedtsbOption) *ExtractedTSBMutation {
	m := &ExtractedTSBMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractedTSB,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractedTSBID sets the ID field of the mutation.
func withExtractedTSBID(id string) extractedtsbOption {
	return func(m *ExtractedTSBMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractedTSB
		)
		m.oldValue = func(ctx context.Context) (*ExtractedTSB, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractedTSB.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractedTSB sets the old ExtractedTSB of the mutation.
func withExtractedTSB(node *ExtractedTSB) extractedtsbOption {
	return func(m *ExtractedTSBMutation) {
		m.oldValue = func(context.Context) (*ExtractedTSB, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractedTSBMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractedTSBMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractedTSB entities.
func (m *ExtractedTSBMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractedTSBMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractedTSBMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractedTSB.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *ExtractedTSBMutation) SetDocumentID(s string) {
	m.document_id = &s
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *ExtractedTSBMutation) DocumentID() (r string, exists bool) {
	v := m.document_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the ExtractedTSB entity.
// If the ExtractedTSB object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedTSBMutation) OldDocumentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *ExtractedTSBMutation) ResetDocumentID() {
	m.document_id = nil
}

// SetTsbNumber sets the "tsb_number" field.
func (m *ExtractedTSBMutation) SetTsbNumber(s string) {
	m.tsb_number = &s
}

// TsbNumber returns the value of the "tsb_number" field in the mutation.
func (m *ExtractedTSBMutation) TsbNumber() (r string, exists bool) {
	v := m.tsb_number
	if v == nil {
		return
	}
	return *v, true
}

// OldTsbNumber returns the old "tsb_number" field's value of the ExtractedTSB entity.
// If the ExtractedTSB object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedTSBMutation) OldTsbNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTsbNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTsbNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTsbNumber: %w", err)
	}
	return oldValue.TsbNumber, nil
}

// ResetTsbNumber resets all changes to the "tsb_number" field.
func (m *ExtractedTSBMutation) ResetTsbNumber() {
	m.tsb_number = nil
}

// SetTitle sets the "title" field.
func (m *ExtractedTSBMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ExtractedTSBMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the ExtractedTSB entity.
// If the ExtractedTSB object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedTSBMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *ExtractedTSBMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[extractedtsb.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *ExtractedTSBMutation) TitleCleared() bool {
	_, ok := m.clearedFields[extractedtsb.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *ExtractedTSBMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, extractedtsb.FieldTitle)
}

// SetAffectedModels sets the "affected_models" field.
func (m *ExtractedTSBMutation) SetAffectedModels(s string) {
	m.affected_models = &s
}

// AffectedModels returns the value of the "affected_models" field in the mutation.
func (m *ExtractedTSBMutation) AffectedModels() (r string, exists bool) {
	v := m.affected_models
	if v == nil {
		return
	}
	return *v, true
}

// OldAffectedModels returns the old "affected_models" field's value of the ExtractedTSB entity.
// If the ExtractedTSB object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedTSBMutation) OldAffectedModels(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAffectedModels is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAffectedModels requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAffectedModels: %w", err)
	}
	return oldValue.AffectedModels, nil
}

// ClearAffectedModels clears the value of the "affected_models" field.
func (m *ExtractedTSBMutation) ClearAffectedModels() {
	m.affected_models = nil
	m.clearedFields[extractedtsb.FieldAffectedModels] = struct{}{}
}

// AffectedModelsCleared returns if the "affected_models" field was cleared in this mutation.
func (m *ExtractedTSBMutation) AffectedModelsCleared() bool {
	_, ok := m.clearedFields[extractedtsb.FieldAffectedModels]
	return ok
}

// ResetAffectedModels resets all changes to the "affected_models" field.
func (m *ExtractedTSBMutation) ResetAffectedModels() {
	m.affected_models = nil
	delete(m.clearedFields, extractedtsb.FieldAffectedModels)
}

// SetRelatedDtcCodes sets the "related_dtc_codes" field.
func (m *ExtractedTSBMutation) SetRelatedDtcCodes(s []string) {
	m.related_dtc_codes = &s
	m.appendrelated_dtc_codes = nil
}

// RelatedDtcCodes returns the value of the "related_dtc_codes" field in the mutation.
func (m *ExtractedTSBMutation) RelatedDtcCodes() (r []string, exists bool) {
	v := m.related_dtc_codes
	if v == nil {
		return
	}
	return *v, true
}

// OldRelatedDtcCodes returns the old "related_dtc_codes" field's value of the ExtractedTSB entity.
// If the ExtractedTSB object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedTSBMutation) OldRelatedDtcCodes(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelatedDtcCodes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelatedDtcCodes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelatedDtcCodes: %w", err)
	}
	return oldValue.RelatedDtcCodes, nil
}

// AppendRelatedDtcCodes adds s to the "related_dtc_codes" field.
func (m *ExtractedTSBMutation) AppendRelatedDtcCodes(s []string) {
	m.appendrelated_dtc_codes = append(m.appendrelated_dtc_codes, s...)
}

// AppendedRelatedDtcCodes returns the list of values that were appended to the "related_dtc_codes" field in this mutation.
func (m *ExtractedTSBMutation) AppendedRelatedDtcCodes() ([]string, bool) {
	if len(m.appendrelated_dtc_codes) == 0 {
		return nil, false
	}
	return m.appendrelated_dtc_codes, true
}

// ClearRelatedDtcCodes clears the value of the "related_dtc_codes" field.
func (m *ExtractedTSBMutation) ClearRelatedDtcCodes() {
	m.related_dtc_codes = nil
	m.appendrelated_dtc_codes = nil
	m.clearedFields[extractedtsb.FieldRelatedDtcCodes] = struct{}{}
}

// RelatedDtcCodesCleared returns if the "related_dtc_codes" field was cleared in this mutation.
func (m *ExtractedTSBMutation) RelatedDtcCodesCleared() bool {
	_, ok := m.clearedFields[extractedtsb.FieldRelatedDtcCodes]
	return ok
}

// ResetRelatedDtcCodes resets all changes to the "related_dtc_codes" field.
func (m *ExtractedTSBMutation) ResetRelatedDtcCodes() {
	m.related_dtc_codes = nil
	m.appendrelated_dtc_codes = nil
	delete(m.clearedFields, extractedtsb.FieldRelatedDtcCodes)
}

// SetSummary sets the "summary" field.
func (m *ExtractedTSBMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *ExtractedTSBMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the ExtractedTSB entity.
// If the ExtractedTSB object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedTSBMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *ExtractedTSBMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[extractedtsb.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *ExtractedTSBMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[extractedtsb.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *ExtractedTSBMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, extractedtsb.FieldSummary)
}

// SetSourceChunkID sets the "source_chunk_id" field.
func (m *ExtractedTSBMutation) SetSourceChunkID(s string) {
	m.source_chunk_id = &s
}

// SourceChunkID returns the value of the "source_chunk_id" field in the mutation.
func (m *ExtractedTSBMutation) SourceChunkID() (r string, exists bool) {
	v := m.source_chunk_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceChunkID returns the old "source_chunk_id" field's value of the ExtractedTSB entity.
// If the ExtractedTSB object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedTSBMutation) OldSourceChunkID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceChunkID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceChunkID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceChunkID: %w", err)
	}
	return oldValue.SourceChunkID, nil
}

// ResetSourceChunkID resets all changes to the "source_chunk_id" field.
func (m *ExtractedTSBMutation) ResetSourceChunkID() {
	m.source_chunk_id = nil
}

// SetTrust sets the "trust" field.
func (m *ExtractedTSBMutation) SetTrust(f float64) {
	m.trust = &f
	m.addtrust = nil
}

// Trust returns the value of the "trust" field in the mutation.
func (m *ExtractedTSBMutation) Trust() (r float64, exists bool) {
	v := m.trust
	if v == nil {
		return
	}
	return *v, true
}

// OldTrust returns the old "trust" field's value of the ExtractedTSB entity.
// If the ExtractedTSB object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedTSBMutation) OldTrust(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrust is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrust requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrust: %w", err)
	}
	return oldValue.Trust, nil
}

// AddTrust adds f to the "trust" field.
func (m *ExtractedTSBMutation) AddTrust(f float64) {
	if m.addtrust != nil {
		*m.addtrust += f
	} else {
		m.addtrust = &f
	}
}

// AddedTrust returns the value that was added to the "trust" field in this mutation.
func (m *ExtractedTSBMutation) AddedTrust() (r float64, exists bool) {
	v := m.addtrust
	if v == nil {
		return
	}
	return *v, true
}

// ResetTrust resets all changes to the "trust" field.
func (m *ExtractedTSBMutation) ResetTrust() {
	m.trust = nil
	m.addtrust = nil
}

// SetRelevance sets the "relevance" field.
func (m *ExtractedTSBMutation) SetRelevance(f float64) {
	m.relevance = &f
	m.addrelevance = nil
}

// Relevance returns the value of the "relevance" field in the mutation.
func (m *ExtractedTSBMutation) Relevance() (r float64, exists bool) {
	v := m.relevance
	if v == nil {
		return
	}
	return *v, true
}

// OldRelevance returns the old "relevance" field's value of the ExtractedTSB entity.
// If the ExtractedTSB object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedTSBMutation) OldRelevance(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelevance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelevance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelevance: %w", err)
	}
	return oldValue.Relevance, nil
}

// AddRelevance adds f to the "relevance" field.
func (m *ExtractedTSBMutation) AddRelevance(f float64) {
	if m.addrelevance != nil {
		*m.addrelevance += f
	} else {
		m.addrelevance = &f
	}
}

// AddedRelevance returns the value that was added to the "relevance" field in this mutation.
func (m *ExtractedTSBMutation) AddedRelevance() (r float64, exists bool) {
	v := m.addrelevance
	if v == nil {
		return
	}
	return *v, true
}

// ResetRelevance resets all changes to the "relevance" field.
func (m *ExtractedTSBMutation) ResetRelevance() {
	m.relevance = nil
	m.addrelevance = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ExtractedTSBMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExtractedTSBMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExtractedTSB entity.
// If the ExtractedTSB object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedTSBMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExtractedTSBMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ExtractedTSBMutation builder.
func (m *ExtractedTSBMutation) Where(ps ...predicate.ExtractedTSB) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractedTSBMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractedTSBMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractedTSB, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractedTSBMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractedTSBMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractedTSB).
func (m *ExtractedTSBMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractedTSBMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.document_id != nil {
		fields = append(fields, extractedtsb.FieldDocumentID)
	}
	if m.tsb_number != nil {
		fields = append(fields, extractedtsb.FieldTsbNumber)
	}
	if m.title != nil {
		fields = append(fields, extractedtsb.FieldTitle)
	}
	if m.affected_models != nil {
		fields = append(fields, extractedtsb.FieldAffectedModels)
	}
	if m.related_dtc_codes != nil {
		fields = append(fields, extractedtsb.FieldRelatedDtcCodes)
	}
	if m.summary != nil {
		fields = append(fields, extractedtsb.FieldSummary)
	}
	if m.source_chunk_id != nil {
		fields = append(fields, extractedtsb.FieldSourceChunkID)
	}
	if m.trust != nil {
		fields = append(fields, extractedtsb.FieldTrust)
	}
	if m.relevance != nil {
		fields = append(fields, extractedtsb.FieldRelevance)
	}
	if m.created_at != nil {
		fields = append(fields, extractedtsb.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractedTSBMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractedtsb.FieldDocumentID:
		return m.DocumentID()
	case extractedtsb.FieldTsbNumber:
		return m.TsbNumber()
	case extractedtsb.FieldTitle:
		return m.Title()
	case extractedtsb.FieldAffectedModels:
		return m.AffectedModels()
	case extractedtsb.FieldRelatedDtcCodes:
		return m.RelatedDtcCodes()
	case extractedtsb.FieldSummary:
		return m.Summary()
	case extractedtsb.FieldSourceChunkID:
		return m.SourceChunkID()
	case extractedtsb.FieldTrust:
		return m.Trust()
	case extractedtsb.FieldRelevance:
		return m.Relevance()
	case extractedtsb.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractedTSBMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractedtsb.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case extractedtsb.FieldTsbNumber:
		return m.OldTsbNumber(ctx)
	case extractedtsb.FieldTitle:
		return m.OldTitle(ctx)
	case extractedtsb.FieldAffectedModels:
		return m.OldAffectedModels(ctx)
	case extractedtsb.FieldRelatedDtcCodes:
		return m.OldRelatedDtcCodes(ctx)
	case extractedtsb.FieldSummary:
		return m.OldSummary(ctx)
	case extractedtsb.FieldSourceChunkID:
		return m.OldSourceChunkID(ctx)
	case extractedtsb.FieldTrust:
		return m.OldTrust(ctx)
	case extractedtsb.FieldRelevance:
		return m.OldRelevance(ctx)
	case extractedtsb.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractedTSB field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractedTSBMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractedtsb.FieldDocumentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case extractedtsb.FieldTsbNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTsbNumber(v)
		return nil
	case extractedtsb.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case extractedtsb.FieldAffectedModels:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAffectedModels(v)
		return nil
	case extractedtsb.FieldRelatedDtcCodes:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelatedDtcCodes(v)
		return nil
	case extractedtsb.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case extractedtsb.FieldSourceChunkID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceChunkID(v)
		return nil
	case extractedtsb.FieldTrust:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrust(v)
		return nil
	case extractedtsb.FieldRelevance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelevance(v)
		return nil
	case extractedtsb.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractedTSB field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractedTSBMutation) AddedFields() []string {
	var fields []string
	if m.addtrust != nil {
		fields = append(fields, extractedtsb.FieldTrust)
	}
	if m.addrelevance != nil {
		fields = append(fields, extractedtsb.FieldRelevance)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractedTSBMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extractedtsb.FieldTrust:
		return m.AddedTrust()
	case extractedtsb.FieldRelevance:
		return m.AddedRelevance()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractedTSBMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extractedtsb.FieldTrust:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTrust(v)
		return nil
	case extractedtsb.FieldRelevance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRelevance(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractedTSB numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractedTSBMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractedtsb.FieldTitle) {
		fields = append(fields, extractedtsb.FieldTitle)
	}
	if m.FieldCleared(extractedtsb.FieldAffectedModels) {
		fields = append(fields, extractedtsb.FieldAffectedModels)
	}
	if m.FieldCleared(extractedtsb.FieldRelatedDtcCodes) {
		fields = append(fields, extractedtsb.FieldRelatedDtcCodes)
	}
	if m.FieldCleared(extractedtsb.FieldSummary) {
		fields = append(fields, extractedtsb.FieldSummary)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractedTSBMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractedTSBMutation) ClearField(name string) error {
	switch name {
	case extractedtsb.FieldTitle:
		m.ClearTitle()
		return nil
	case extractedtsb.FieldAffectedModels:
		m.ClearAffectedModels()
		return nil
	case extractedtsb.FieldRelatedDtcCodes:
		m.ClearRelatedDtcCodes()
		return nil
	case extractedtsb.FieldSummary:
		m.ClearSummary()
		return nil
	}
	return fmt.Errorf("unknown ExtractedTSB nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractedTSBMutation) ResetField(name string) error {
	switch name {
	case extractedtsb.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case extractedtsb.FieldTsbNumber:
		m.ResetTsbNumber()
		return nil
	case extractedtsb.FieldTitle:
		m.ResetTitle()
		return nil
	case extractedtsb.FieldAffectedModels:
		m.ResetAffectedModels()
		return nil
	case extractedtsb.FieldRelatedDtcCodes:
		m.ResetRelatedDtcCodes()
		return nil
	case extractedtsb.FieldSummary:
		m.ResetSummary()
		return nil
	case extractedtsb.FieldSourceChunkID:
		m.ResetSourceChunkID()
		return nil
	case extractedtsb.FieldTrust:
		m.ResetTrust()
		return nil
	case extractedtsb.FieldRelevance:
		m.ResetRelevance()
		return nil
	case extractedtsb.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractedTSB field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractedTSBMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractedTSBMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractedTSBMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractedTSBMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractedTSBMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractedTSBMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractedTSBMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ExtractedTSB unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractedTSBMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ExtractedTSB edge %s", name)
}

// ProcessingLogMutation represents an operation that mutates the ProcessingLog nodes in the graph.
type ProcessingLogMutation struct {
	config
	op              Op
	typ             string
	id              *string
	stage           *string
	status          *processinglog.Status
	message         *string
	duration_ms     *int64
	addduration_ms  *int64
	created_at      *time.Time
	clearedFields   map[string]struct{}
	document        *string
	cleareddocument bool
	done            bool
	oldValue        func(context.Context) (*ProcessingLog, error)
	predicates      []predicate.ProcessingLog
}

var _ ent.Mutation = (*ProcessingLogMutation)(nil)

// processinglogOption allows management of the mutation configuration using functional options.
type processinglogOption func(*ProcessingLogMutation)

// newProcessingLogMutation creates new mutation for the ProcessingLog entity.
func newProcessingLogMutation(c config, op Op, opts ...processinglogOption) *ProcessingLogMutation {
	m := &ProcessingLogMutation{
		config:        c,
		op:            op,
		typ:           TypeProcessingLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProcessingLogID sets the ID field of the mutation.
func withProcessingLogID(id string) processinglogOption {
	return func(m *ProcessingLogMutation) {
		var (
			err   error
			once  sync.Once
			value *ProcessingLog
		)
		m.oldValue = func(ctx context.Context) (*ProcessingLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProcessingLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProcessingLog sets the old ProcessingLog of the mutation.
func withProcessingLog(node *ProcessingLog) processinglogOption {
	return func(m *ProcessingLogMutation) {
		m.oldValue = func(context.Context) (*ProcessingLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProcessingLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProcessingLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProcessingLog entities.
func (m *ProcessingLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProcessingLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProcessingLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProcessingLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *ProcessingLogMutation) SetDocumentID(s string) {
	m.document = &s
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *ProcessingLogMutation) DocumentID() (r string, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the ProcessingLog entity.
// If the ProcessingLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingLogMutation) OldDocumentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *ProcessingLogMutation) ResetDocumentID() {
	m.document = nil
}

// SetStage sets the "stage" field.
func (m *ProcessingLogMutation) SetStage(s string) {
	m.stage = &s
}

// Stage returns the value of the "stage" field in the mutation.
func (m *ProcessingLogMutation) Stage() (r string, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStage returns the old "stage" field's value of the ProcessingLog entity.
// If the ProcessingLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingLogMutation) OldStage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage: %w", err)
	}
	return oldValue.Stage, nil
}

// ResetStage resets all changes to the "stage" field.
func (m *ProcessingLogMutation) ResetStage() {
	m.stage = nil
}

// SetStatus sets the "status" field.
func (m *ProcessingLogMutation) SetStatus(pr processinglog.Status) {
	m.status = &pr
}

// Status returns the value of the "status" field in the mutation.
func (m *ProcessingLogMutation) Status() (r processinglog.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ProcessingLog entity.
// If the ProcessingLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingLogMutation) OldStatus(ctx context.Context) (v processinglog.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ProcessingLogMutation) ResetStatus() {
	m.status = nil
}

// SetMessage sets the "message" field.
func (m *ProcessingLogMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *ProcessingLogMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the ProcessingLog entity.
// If the ProcessingLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingLogMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ClearMessage clears the value of the "message" field.
func (m *ProcessingLogMutation) ClearMessage() {
	m.message = nil
	m.clearedFields[processinglog.FieldMessage] = struct{}{}
}

// MessageCleared returns if the "message" field was cleared in this mutation.
func (m *ProcessingLogMutation) MessageCleared() bool {
	_, ok := m.clearedFields[processinglog.FieldMessage]
	return ok
}

// ResetMessage resets all changes to the "message" field.
func (m *ProcessingLogMutation) ResetMessage() {
	m.message = nil
	delete(m.clearedFields, processinglog.FieldMessage)
}

// SetDurationMs sets the "duration_ms" field.
func (m *ProcessingLogMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *ProcessingLogMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the ProcessingLog entity.
// If the ProcessingLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingLogMutation) OldDurationMs(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *ProcessingLogMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *ProcessingLogMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *ProcessingLogMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[processinglog.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *ProcessingLogMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[processinglog.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *ProcessingLogMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, processinglog.FieldDurationMs)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProcessingLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProcessingLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ProcessingLog entity.
// If the ProcessingLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProcessingLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearDocument clears the "document" edge to the Document entity.
func (m *ProcessingLogMutation) ClearDocument() {
	m.cleareddocument = true
	m.clearedFields[processinglog.FieldDocumentID] = struct{}{}
}

// DocumentCleared reports if the "document" edge to the Document entity was cleared.
func (m *ProcessingLogMutation) DocumentCleared() bool {
	return m.cleareddocument
}

// DocumentIDs returns the "document" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentID instead. It exists only for internal usage by the builders.
func (m *ProcessingLogMutation) DocumentIDs() (ids []string) {
	if id := m.document; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocument resets all changes to the "document" edge.
func (m *ProcessingLogMutation) ResetDocument() {
	m.document = nil
	m.cleareddocument = false
}

// Where appends a list predicates to the ProcessingLogMutation builder.
func (m *ProcessingLogMutation) Where(ps ...predicate.ProcessingLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProcessingLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProcessingLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProcessingLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProcessingLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProcessingLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProcessingLog).
func (m *ProcessingLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProcessingLogMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.document != nil {
		fields = append(fields, processinglog.FieldDocumentID)
	}
	if m.stage != nil {
		fields = append(fields, processinglog.FieldStage)
	}
	if m.status != nil {
		fields = append(fields, processinglog.FieldStatus)
	}
	if m.message != nil {
		fields = append(fields, processinglog.FieldMessage)
	}
	if m.duration_ms != nil {
		fields = append(fields, processinglog.FieldDurationMs)
	}
	if m.created_at != nil {
		fields = append(fields, processinglog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProcessingLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case processinglog.FieldDocumentID:
		return m.DocumentID()
	case processinglog.FieldStage:
		return m.Stage()
	case processinglog.FieldStatus:
		return m.Status()
	case processinglog.FieldMessage:
		return m.Message()
	case processinglog.FieldDurationMs:
		return m.DurationMs()
	case processinglog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProcessingLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case processinglog.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case processinglog.FieldStage:
		return m.OldStage(ctx)
	case processinglog.FieldStatus:
		return m.OldStatus(ctx)
	case processinglog.FieldMessage:
		return m.OldMessage(ctx)
	case processinglog.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case processinglog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProcessingLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessingLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case processinglog.FieldDocumentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case processinglog.FieldStage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage(v)
		return nil
	case processinglog.FieldStatus:
		v, ok := value.(processinglog.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case processinglog.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case processinglog.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case processinglog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProcessingLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProcessingLogMutation) AddedFields() []string {
	var fields []string
	if m.addduration_ms != nil {
		fields = append(fields, processinglog.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProcessingLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case processinglog.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessingLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case processinglog.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown ProcessingLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProcessingLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(processinglog.FieldMessage) {
		fields = append(fields, processinglog.FieldMessage)
	}
	if m.FieldCleared(processinglog.FieldDurationMs) {
		fields = append(fields, processinglog.FieldDurationMs)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProcessingLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProcessingLogMutation) ClearField(name string) error {
	switch name {
	case processinglog.FieldMessage:
		m.ClearMessage()
		return nil
	case processinglog.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	}
	return fmt.Errorf("unknown ProcessingLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProcessingLogMutation) ResetField(name string) error {
	switch name {
	case processinglog.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case processinglog.FieldStage:
		m.ResetStage()
		return nil
	case processinglog.FieldStatus:
		m.ResetStatus()
		return nil
	case processinglog.FieldMessage:
		m.ResetMessage()
		return nil
	case processinglog.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case processinglog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ProcessingLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProcessingLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.document != nil {
		edges = append(edges, processinglog.EdgeDocument)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProcessingLogMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case processinglog.EdgeDocument:
		if id := m.document; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProcessingLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProcessingLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProcessingLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocument {
		edges = append(edges, processinglog.EdgeDocument)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProcessingLogMutation) EdgeCleared(name string) bool {
	switch name {
	case processinglog.EdgeDocument:
		return m.cleareddocument
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProcessingLogMutation) ClearEdge(name string) error {
	switch name {
	case processinglog.EdgeDocument:
		m.ClearDocument()
		return nil
	}
	return fmt.Errorf("unknown ProcessingLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProcessingLogMutation) ResetEdge(name string) error {
	switch name {
	case processinglog.EdgeDocument:
		m.ResetDocument()
		return nil
	}
	return fmt.Errorf("unknown ProcessingLog edge %s", name)
}

// ResolutionLogMutation represents an operation that mutates the ResolutionLog nodes in the graph.
type ResolutionLogMutation struct {
	config
	op            Op
	typ           string
	id            *string
	run_id        *string
	document_id   *string
	action        *resolutionlog.Action
	entity_table  *string
	entity_id     *string
	details       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ResolutionLog, error)
	predicates    []predicate.ResolutionLog
}

var _ ent.Mutation = (*ResolutionLogMutation)(nil)

// resolutionlogOption allows management of the mutation configuration using functional options.
type resolutionlogOption func(*ResolutionLogMutation)

// newResolutionLogMutation creates new mutation for the ResolutionLog entity.
func newResolutionLogMutation(c config, op Op, opts ...resolutionlogOption) *ResolutionLogMutation {
	m := &ResolutionLogMutation{
		config:        c,
		op:            op,
		typ:           TypeResolutionLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withResolutionLogID sets the ID field of the mutation.
func withResolutionLogID(id string) resolutionlogOption {
	return func(m *ResolutionLogMutation) {
		var (
			err   error
			once  sync.Once
			value *ResolutionLog
		)
		m.oldValue = func(ctx context.Context) (*ResolutionLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ResolutionLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withResolutionLog sets the old ResolutionLog of the mutation.
func withResolutionLog(node *ResolutionLog) resolutionlogOption {
	return func(m *ResolutionLogMutation) {
		m.oldValue = func(context.Context) (*ResolutionLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ResolutionLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ResolutionLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ResolutionLog entities.
func (m *ResolutionLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ResolutionLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ResolutionLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ResolutionLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *ResolutionLogMutation) SetRunID(s string) {
	m.run_id = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *ResolutionLogMutation) RunID() (r string, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the ResolutionLog entity.
// If the ResolutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResolutionLogMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *ResolutionLogMutation) ResetRunID() {
	m.run_id = nil
}

// SetDocumentID sets the "document_id" field.
func (m *ResolutionLogMutation) SetDocumentID(s string) {
	m.document_id = &s
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *ResolutionLogMutation) DocumentID() (r string, exists bool) {
	v := m.document_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the ResolutionLog entity.
// If the ResolutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResolutionLogMutation) OldDocumentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *ResolutionLogMutation) ResetDocumentID() {
	m.document_id = nil
}

// SetAction sets the "action" field.
func (m *ResolutionLogMutation) SetAction(r resolutionlog.Action) {
	m.action = &r
}

// Action returns the value of the "action" field in the mutation.
func (m *ResolutionLogMutation) Action() (r resolutionlog.Action, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the ResolutionLog entity.
// If the ResolutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResolutionLogMutation) OldAction(ctx context.Context) (v resolutionlog.Action, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *ResolutionLogMutation) ResetAction() {
	m.action = nil
}

// SetEntityTable sets the "entity_table" field.
func (m *ResolutionLogMutation) SetEntityTable(s string) {
	m.entity_table = &s
}

// EntityTable returns the value of the "entity_table" field in the mutation.
func (m *ResolutionLogMutation) EntityTable() (r string, exists bool) {
	v := m.entity_table
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityTable returns the old "entity_table" field's value of the ResolutionLog entity.
// If the ResolutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResolutionLogMutation) OldEntityTable(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityTable is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityTable requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityTable: %w", err)
	}
	return oldValue.EntityTable, nil
}

// ClearEntityTable clears the value of the "entity_table" field.
func (m *ResolutionLogMutation) ClearEntityTable() {
	m.entity_table = nil
	m.clearedFields[resolutionlog.FieldEntityTable] = struct{}{}
}

// EntityTableCleared returns if the "entity_table" field was cleared in this mutation.
func (m *ResolutionLogMutation) EntityTableCleared() bool {
	_, ok := m.clearedFields[resolutionlog.FieldEntityTable]
	return ok
}

// ResetEntityTable resets all changes to the "entity_table" field.
func (m *ResolutionLogMutation) ResetEntityTable() {
	m.entity_table = nil
	delete(m.clearedFields, resolutionlog.FieldEntityTable)
}

// SetEntityID sets the "entity_id" field.
func (m *ResolutionLogMutation) SetEntityID(s string) {
	m.entity_id = &s
}

// EntityID returns the value of the "entity_id" field in the mutation.
func (m *ResolutionLogMutation) EntityID() (r string, exists bool) {
	v := m.entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityID returns the old "entity_id" field's value of the ResolutionLog entity.
// If the ResolutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResolutionLogMutation) OldEntityID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityID: %w", err)
	}
	return oldValue.EntityID, nil
}

// ClearEntityID clears the value of the "entity_id" field.
func (m *ResolutionLogMutation) ClearEntityID() {
	m.entity_id = nil
	m.clearedFields[resolutionlog.FieldEntityID] = struct{}{}
}

// EntityIDCleared returns if the "entity_id" field was cleared in this mutation.
func (m *ResolutionLogMutation) EntityIDCleared() bool {
	_, ok := m.clearedFields[resolutionlog.FieldEntityID]
	return ok
}

// ResetEntityID resets all changes to the "entity_id" field.
func (m *ResolutionLogMutation) ResetEntityID() {
	m.entity_id = nil
	delete(m.clearedFields, resolutionlog.FieldEntityID)
}

// SetDetails sets the "details" field.
func (m *ResolutionLogMutation) SetDetails(value map[string]interface{}) {
	m.details = &value
}

// Details returns the value of the "details" field in the mutation.
func (m *ResolutionLogMutation) Details() (r map[string]interface{}, exists bool) {
	v := m.details
	if v == nil {
		return
	}
	return *v, true
}

// OldDetails returns the old "details" field's value of the ResolutionLog entity.
// If the ResolutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResolutionLogMutation) OldDetails(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetails: %w", err)
	}
	return oldValue.Details, nil
}

// ClearDetails clears the value of the "details" field.
func (m *ResolutionLogMutation) ClearDetails() {
	m.details = nil
	m.clearedFields[resolutionlog.FieldDetails] = struct{}{}
}

// DetailsCleared returns if the "details" field was cleared in this mutation.
func (m *ResolutionLogMutation) DetailsCleared() bool {
	_, ok := m.clearedFields[resolutionlog.FieldDetails]
	return ok
}

// ResetDetails resets all changes to the "details" field.
func (m *ResolutionLogMutation) ResetDetails() {
	m.details = nil
	delete(m.clearedFields, resolutionlog.FieldDetails)
}

// SetCreatedAt sets the "created_at" field.
func (m *ResolutionLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ResolutionLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ResolutionLog entity.
// If the ResolutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResolutionLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ResolutionLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ResolutionLogMutation builder.
func (m *ResolutionLogMutation) Where(ps ...predicate.ResolutionLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ResolutionLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ResolutionLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ResolutionLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ResolutionLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ResolutionLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ResolutionLog).
func (m *ResolutionLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ResolutionLogMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.run_id != nil {
		fields = append(fields, resolutionlog.FieldRunID)
	}
	if m.document_id != nil {
		fields = append(fields, resolutionlog.FieldDocumentID)
	}
	if m.action != nil {
		fields = append(fields, resolutionlog.FieldAction)
	}
	if m.entity_table != nil {
		fields = append(fields, resolutionlog.FieldEntityTable)
	}
	if m.entity_id != nil {
		fields = append(fields, resolutionlog.FieldEntityID)
	}
	if m.details != nil {
		fields = append(fields, resolutionlog.FieldDetails)
	}
	if m.created_at != nil {
		fields = append(fields, resolutionlog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ResolutionLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case resolutionlog.FieldRunID:
		return m.RunID()
	case resolutionlog.FieldDocumentID:
		return m.DocumentID()
	case resolutionlog.FieldAction:
		return m.Action()
	case resolutionlog.FieldEntityTable:
		return m.EntityTable()
	case resolutionlog.FieldEntityID:
		return m.EntityID()
	case resolutionlog.FieldDetails:
		return m.Details()
	case resolutionlog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ResolutionLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case resolutionlog.FieldRunID:
		return m.OldRunID(ctx)
	case resolutionlog.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case resolutionlog.FieldAction:
		return m.OldAction(ctx)
	case resolutionlog.FieldEntityTable:
		return m.OldEntityTable(ctx)
	case resolutionlog.FieldEntityID:
		return m.OldEntityID(ctx)
	case resolutionlog.FieldDetails:
		return m.OldDetails(ctx)
	case resolutionlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ResolutionLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResolutionLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case resolutionlog.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case resolutionlog.FieldDocumentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case resolutionlog.FieldAction:
		v, ok := value.(resolutionlog.Action)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case resolutionlog.FieldEntityTable:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityTable(v)
		return nil
	case resolutionlog.FieldEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityID(v)
		return nil
	case resolutionlog.FieldDetails:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetails(v)
		return nil
	case resolutionlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ResolutionLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ResolutionLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ResolutionLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResolutionLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ResolutionLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ResolutionLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(resolutionlog.FieldEntityTable) {
		fields = append(fields, resolutionlog.FieldEntityTable)
	}
	if m.FieldCleared(resolutionlog.FieldEntityID) {
		fields = append(fields, resolutionlog.FieldEntityID)
	}
	if m.FieldCleared(resolutionlog.FieldDetails) {
		fields = append(fields, resolutionlog.FieldDetails)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ResolutionLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ResolutionLogMutation) ClearField(name string) error {
	switch name {
	case resolutionlog.FieldEntityTable:
		m.ClearEntityTable()
		return nil
	case resolutionlog.FieldEntityID:
		m.ClearEntityID()
		return nil
	case resolutionlog.FieldDetails:
		m.ClearDetails()
		return nil
	}
	return fmt.Errorf("unknown ResolutionLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ResolutionLogMutation) ResetField(name string) error {
	switch name {
	case resolutionlog.FieldRunID:
		m.ResetRunID()
		return nil
	case resolutionlog.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case resolutionlog.FieldAction:
		m.ResetAction()
		return nil
	case resolutionlog.FieldEntityTable:
		m.ResetEntityTable()
		return nil
	case resolutionlog.FieldEntityID:
		m.ResetEntityID()
		return nil
	case resolutionlog.FieldDetails:
		m.ResetDetails()
		return nil
	case resolutionlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ResolutionLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ResolutionLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ResolutionLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ResolutionLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ResolutionLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ResolutionLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ResolutionLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ResolutionLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ResolutionLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ResolutionLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ResolutionLog edge %s", name)
}

// SensorMutation represents an operation that mutates the Sensor nodes in the graph.
type SensorMutation struct {
	config
	op            Op
	typ           string
	id            *string
	name          *string
	sensor_type   *string
	typical_range *string
	unit          *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Sensor, error)
	predicates    []predicate.Sensor
}

var _ ent.Mutation = (*SensorMutation)(nil)

// sensorOption allows management of the mutation configuration using functional options.
type sensorOption func(*SensorMutation)

// newSensorMutation creates new mutation for the Sensor entity.
func newSensorMutation(c config, op Op, opts ...sensorOption) *SensorMutation {
	m := &SensorMutation{
		config:        c,
		op:            op,
		typ:           TypeSensor,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSensorID sets the ID field of the mutation.
func withSensorID(id string) sensorOption {
	return func(m *SensorMutation) {
		var (
			err   error
			once  sync.Once
			value *Sensor
		)
		m.oldValue = func(ctx context.Context) (*Sensor, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Sensor.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSensor sets the old Sensor of the mutation.
func withSensor(node *Sensor) sensorOption {
	return func(m *SensorMutation) {
		m.oldValue = func(context.Context) (*Sensor, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SensorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SensorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Sensor entities.
func (m *SensorMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SensorMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SensorMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Sensor.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *SensorMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SensorMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Sensor entity.
// If the Sensor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SensorMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SensorMutation) ResetName() {
	m.name = nil
}

// SetSensorType sets the "sensor_type" field.
func (m *SensorMutation) SetSensorType(s string) {
	m.sensor_type = &s
}

// SensorType returns the value of the "sensor_type" field in the mutation.
func (m *SensorMutation) SensorType() (r string, exists bool) {
	v := m.sensor_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSensorType returns the old "sensor_type" field's value of the Sensor entity.
// If the Sensor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SensorMutation) OldSensorType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSensorType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSensorType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSensorType: %w", err)
	}
	return oldValue.SensorType, nil
}

// ClearSensorType clears the value of the "sensor_type" field.
func (m *SensorMutation) ClearSensorType() {
	m.sensor_type = nil
	m.clearedFields[sensor.FieldSensorType] = struct{}{}
}

// SensorTypeCleared returns if the "sensor_type" field was cleared in this mutation.
func (m *SensorMutation) SensorTypeCleared() bool {
	_, ok := m.clearedFields[sensor.FieldSensorType]
	return ok
}

// ResetSensorType resets all changes to the "sensor_type" field.
func (m *SensorMutation) ResetSensorType() {
	m.sensor_type = nil
	delete(m.clearedFields, sensor.FieldSensorType)
}

// SetTypicalRange sets the "typical_range" field.
func (m *SensorMutation) SetTypicalRange(s string) {
	m.typical_range = &s
}

// TypicalRange returns the value of the "typical_range" field in the mutation.
func (m *SensorMutation) TypicalRange() (r string, exists bool) {
	v := m.typical_range
	if v == nil {
		return
	}
	return *v, true
}

// OldTypicalRange returns the old "typical_range" field's value of the Sensor entity.
// If the Sensor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SensorMutation) OldTypicalRange(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTypicalRange is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTypicalRange requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTypicalRange: %w", err)
	}
	return oldValue.TypicalRange, nil
}

// ClearTypicalRange clears the value of the "typical_range" field.
func (m *SensorMutation) ClearTypicalRange() {
	m.typical_range = nil
	m.clearedFields[sensor.FieldTypicalRange] = struct{}{}
}

// TypicalRangeCleared returns if the "typical_range" field was cleared in this mutation.
func (m *SensorMutation) TypicalRangeCleared() bool {
	_, ok := m.clearedFields[sensor.FieldTypicalRange]
	return ok
}

// ResetTypicalRange resets all changes to the "typical_range" field.
func (m *SensorMutation) ResetTypicalRange() {
	m.typical_range = nil
	delete(m.clearedFields, sensor.FieldTypicalRange)
}

// SetUnit sets the "unit" field.
func (m *SensorMutation) SetUnit(s string) {
	m.unit = &s
}

// Unit returns the value of the "unit" field in the mutation.
func (m *SensorMutation) Unit() (r string, exists bool) {
	v := m.unit
	if v == nil {
		return
	}
	return *v, true
}

// OldUnit returns the old "unit" field's value of the Sensor entity.
// If the Sensor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SensorMutation) OldUnit(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnit: %w", err)
	}
	return oldValue.Unit, nil
}

// ClearUnit clears the value of the "unit" field.
func (m *SensorMutation) ClearUnit() {
	m.unit = nil
	m.clearedFields[sensor.FieldUnit] = struct{}{}
}

// UnitCleared returns if the "unit" field was cleared in this mutation.
func (m *SensorMutation) UnitCleared() bool {
	_, ok := m.clearedFields[sensor.FieldUnit]
	return ok
}

// ResetUnit resets all changes to the "unit" field.
func (m *SensorMutation) ResetUnit() {
	m.unit = nil
	delete(m.clearedFields, sensor.FieldUnit)
}

// SetCreatedAt sets the "created_at" field.
func (m *SensorMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SensorMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Sensor entity.
// If the Sensor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SensorMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SensorMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the SensorMutation builder.
func (m *SensorMutation) Where(ps ...predicate.Sensor) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SensorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SensorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Sensor, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SensorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SensorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Sensor).
func (m *SensorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SensorMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.name != nil {
		fields = append(fields, sensor.FieldName)
	}
	if m.sensor_type != nil {
		fields = append(fields, sensor.FieldSensorType)
	}
	if m.typical_range != nil {
		fields = append(fields, sensor.FieldTypicalRange)
	}
	if m.unit != nil {
		fields = append(fields, sensor.FieldUnit)
	}
	if m.created_at != nil {
		fields = append(fields, sensor.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SensorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sensor.FieldName:
		return m.Name()
	case sensor.FieldSensorType:
		return m.SensorType()
	case sensor.FieldTypicalRange:
		return m.TypicalRange()
	case sensor.FieldUnit:
		return m.Unit()
	case sensor.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SensorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sensor.FieldName:
		return m.OldName(ctx)
	case sensor.FieldSensorType:
		return m.OldSensorType(ctx)
	case sensor.FieldTypicalRange:
		return m.OldTypicalRange(ctx)
	case sensor.FieldUnit:
		return m.OldUnit(ctx)
	case sensor.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Sensor field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SensorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sensor.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case sensor.FieldSensorType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSensorType(v)
		return nil
	case sensor.FieldTypicalRange:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTypicalRange(v)
		return nil
	case sensor.FieldUnit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnit(v)
		return nil
	case sensor.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Sensor field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SensorMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SensorMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SensorMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Sensor numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SensorMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sensor.FieldSensorType) {
		fields = append(fields, sensor.FieldSensorType)
	}
	if m.FieldCleared(sensor.FieldTypicalRange) {
		fields = append(fields, sensor.FieldTypicalRange)
	}
	if m.FieldCleared(sensor.FieldUnit) {
		fields = append(fields, sensor.FieldUnit)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SensorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SensorMutation) ClearField(name string) error {
	switch name {
	case sensor.FieldSensorType:
		m.ClearSensorType()
		return nil
	case sensor.FieldTypicalRange:
		m.ClearTypicalRange()
		return nil
	case sensor.FieldUnit:
		m.ClearUnit()
		return nil
	}
	return fmt.Errorf("unknown Sensor nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SensorMutation) ResetField(name string) error {
	switch name {
	case sensor.FieldName:
		m.ResetName()
		return nil
	case sensor.FieldSensorType:
		m.ResetSensorType()
		return nil
	case sensor.FieldTypicalRange:
		m.ResetTypicalRange()
		return nil
	case sensor.FieldUnit:
		m.ResetUnit()
		return nil
	case sensor.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Sensor field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SensorMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SensorMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SensorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SensorMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SensorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SensorMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SensorMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Sensor unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SensorMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Sensor edge %s", name)
}

// TSBBulletinMutation represents an operation that mutates the TSBBulletin nodes in the graph.
type TSBBulletinMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	tsb_number              *string
	title                   *string
	affected_models         *string
	related_dtc_codes       *[]string
	appendrelated_dtc_codes []string
	summary                 *string
	evidence_count          *int
	addevidence_count       *int
	avg_trust               *float64
	addavg_trust            *float64
	avg_relevance           *float64
	addavg_relevance        *float64
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*TSBBulletin, error)
	predicates              []predicate.TSBBulletin
}

var _ ent.Mutation = (*TSBBulletinMutation)(nil)

// tsbbulletinOption allows management of the mutation configuration using functional options.
type tsbbulletinOption func(*TSBBulletinMutation)

// newTSBBulletinMutation creates new mutation for the TSBBulletin entity.
func newTSBBulletinMutation(c config, op Op, opts ...tsbbulletinOption) *TSBBulletinMutation {
	m := &TSBBulletinMutation{
		config:        c,
		op:            op,
		typ:           TypeTSBBulletin,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTSBBulletinID sets the ID field of the mutation.
func withTSBBulletinID(id string) tsbbulletinOption {
	return func(m *TSBBulletinMutation) {
		var (
			err   error
			once  sync.Once
			value *TSBBulletin
		)
		m.oldValue = func(ctx context.Context) (*TSBBulletin, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TSBBulletin.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTSBBulletin sets the old TSBBulletin of the mutation.
func withTSBBulletin(node *TSBBulletin) tsbbulletinOption {
	return func(m *TSBBulletinMutation) {
		m.oldValue = func(context.Context) (*TSBBulletin, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TSBBulletinMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TSBBulletinMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TSBBulletin entities.
func (m *TSBBulletinMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TSBBulletinMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TSBBulletinMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TSBBulletin.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTsbNumber sets the "tsb_number" field.
func (m *TSBBulletinMutation) SetTsbNumber(s string) {
	m.tsb_number = &s
}

// TsbNumber returns the value of the "tsb_number" field in the mutation.
func (m *TSBBulletinMutation) TsbNumber() (r string, exists bool) {
	v := m.tsb_number
	if v == nil {
		return
	}
	return *v, true
}

// OldTsbNumber returns the old "tsb_number" field's value of the TSBBulletin entity.
// If the TSBBulletin object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TSBBulletinMutation) OldTsbNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTsbNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTsbNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTsbNumber: %w", err)
	}
	return oldValue.TsbNumber, nil
}

// ResetTsbNumber resets all changes to the "tsb_number" field.
func (m *TSBBulletinMutation) ResetTsbNumber() {
	m.tsb_number = nil
}

// SetTitle sets the "title" field.
func (m *TSBBulletinMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *TSBBulletinMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the TSBBulletin entity.
// If the TSBBulletin object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TSBBulletinMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *TSBBulletinMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[tsbbulletin.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *TSBBulletinMutation) TitleCleared() bool {
	_, ok := m.clearedFields[tsbbulletin.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *TSBBulletinMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, tsbbulletin.FieldTitle)
}

// SetAffectedModels sets the "affected_models" field.
func (m *TSBBulletinMutation) SetAffectedModels(s string) {
	m.affected_models = &s
}

// AffectedModels returns the value of the "affected_models" field in the mutation.
func (m *TSBBulletinMutation) AffectedModels() (r string, exists bool) {
	v := m.affected_models
	if v == nil {
		return
	}
	return *v, true
}

// OldAffectedModels returns the old "affected_models" field's value of the TSBBulletin entity.
// If the TSBBulletin object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TSBBulletinMutation) OldAffectedModels(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAffectedModels is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAffectedModels requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAffectedModels: %w", err)
	}
	return oldValue.AffectedModels, nil
}

// ClearAffectedModels clears the value of the "affected_models" field.
func (m *TSBBulletinMutation) ClearAffectedModels() {
	m.affected_models = nil
	m.clearedFields[tsbbulletin.FieldAffectedModels] = struct{}{}
}

// AffectedModelsCleared returns if the "affected_models" field was cleared in this mutation.
func (m *TSBBulletinMutation) AffectedModelsCleared() bool {
	_, ok := m.clearedFields[tsbbulletin.FieldAffectedModels]
	return ok
}

// ResetAffectedModels resets all changes to the "affected_models" field.
func (m *TSBBulletinMutation) ResetAffectedModels() {
	m.affected_models = nil
	delete(m.clearedFields, tsbbulletin.FieldAffectedModels)
}

// SetRelatedDtcCodes sets the "related_dtc_codes" field.
func (m *TSBBulletinMutation) SetRelatedDtcCodes(s []string) {
	m.related_dtc_codes = &s
	m.appendrelated_dtc_codes = nil
}

// RelatedDtcCodes returns the value of the "related_dtc_codes" field in the mutation.
func (m *TSBBulletinMutation) RelatedDtcCodes() (r []string, exists bool) {
	v := m.related_dtc_codes
	if v == nil {
		return
	}
	return *v, true
}

// OldRelatedDtcCodes returns the old "related_dtc_codes" field's value of the TSBBulletin entity.
// If the TSBBulletin object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TSBBulletinMutation) OldRelatedDtcCodes(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelatedDtcCodes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelatedDtcCodes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelatedDtcCodes: %w", err)
	}
	return oldValue.RelatedDtcCodes, nil
}

// AppendRelatedDtcCodes adds s to the "related_dtc_codes" field.
func (m *TSBBulletinMutation) AppendRelatedDtcCodes(s []string) {
	m.appendrelated_dtc_codes = append(m.appendrelated_dtc_codes, s...)
}

// AppendedRelatedDtcCodes returns the list of values that were appended to the "related_dtc_codes" field in this mutation.
func (m *TSBBulletinMutation) AppendedRelatedDtcCodes() ([]string, bool) {
	if len(m.appendrelated_dtc_codes) == 0 {
		return nil, false
	}
	return m.appendrelated_dtc_codes, true
}

// ClearRelatedDtcCodes clears the value of the "related_dtc_codes" field.
func (m *TSBBulletinMutation) ClearRelatedDtcCodes() {
	m.related_dtc_codes = nil
	m.appendrelated_dtc_codes = nil
	m.clearedFields[tsbbulletin.FieldRelatedDtcCodes] = struct{}{}
}

// RelatedDtcCodesCleared returns if the "related_dtc_codes" field was cleared in this mutation.
func (m *TSBBulletinMutation) RelatedDtcCodesCleared() bool {
	_, ok := m.clearedFields[tsbbulletin.FieldRelatedDtcCodes]
	return ok
}

// ResetRelatedDtcCodes resets all changes to the "related_dtc_codes" field.
func (m *TSBBulletinMutation) ResetRelatedDtcCodes() {
	m.related_dtc_codes = nil
	m.appendrelated_dtc_codes = nil
	delete(m.clearedFields, tsbbulletin.FieldRelatedDtcCodes)
}

// SetSummary sets the "summary" field.
func (m *TSBBulletinMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *TSBBulletinMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the TSBBulletin entity.
// If the TSBBulletin object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TSBBulletinMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *TSBBulletinMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[tsbbulletin.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *TSBBulletinMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[tsbbulletin.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *TSBBulletinMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, tsbbulletin.FieldSummary)
}

// SetEvidenceCount sets the "evidence_count" field.
func (m *TSBBulletinMutation) SetEvidenceCount(i int) {
	m.evidence_count = &i
	m.addevidence_count = nil
}

// EvidenceCount returns the value of the "evidence_count" field in the mutation.
func (m *TSBBulletinMutation) EvidenceCount() (r int, exists bool) {
	v := m.evidence_count
	if v == nil {
		return
	}
	return *v, true
}

// OldEvidenceCount returns the old "evidence_count" field's value of the TSBBulletin entity.
// If the TSBBulletin object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TSBBulletinMutation) OldEvidenceCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvidenceCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvidenceCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvidenceCount: %w", err)
	}
	return oldValue.EvidenceCount, nil
}

// AddEvidenceCount adds i to the "evidence_count" field.
func (m *TSBBulletinMutation) AddEvidenceCount(i int) {
	if m.addevidence_count != nil {
		*m.addevidence_count += i
	} else {
		m.addevidence_count = &i
	}
}

// AddedEvidenceCount returns the value that was added to the "evidence_count" field in this mutation.
func (m *TSBBulletinMutation) AddedEvidenceCount() (r int, exists bool) {
	v := m.addevidence_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetEvidenceCount resets all changes to the "evidence_count" field.
func (m *TSBBulletinMutation) ResetEvidenceCount() {
	m.evidence_count = nil
	m.addevidence_count = nil
}

// SetAvgTrust sets the "avg_trust" field.
func (m *TSBBulletinMutation) SetAvgTrust(f float64) {
	m.avg_trust = &f
	m.addavg_trust = nil
}

// AvgTrust returns the value of the "avg_trust" field in the mutation.
func (m *TSBBulletinMutation) AvgTrust() (r float64, exists bool) {
	v := m.avg_trust
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgTrust returns the old "avg_trust" field's value of the TSBBulletin entity.
// If the TSBBulletin object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TSBBulletinMutation) OldAvgTrust(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgTrust is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgTrust requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgTrust: %w", err)
	}
	return oldValue.AvgTrust, nil
}

// AddAvgTrust adds f to the "avg_trust" field.
func (m *TSBBulletinMutation) AddAvgTrust(f float64) {
	if m.addavg_trust != nil {
		*m.addavg_trust += f
	} else {
		m.addavg_trust = &f
	}
}

// AddedAvgTrust returns the value that was added to the "avg_trust" field in this mutation.
func (m *TSBBulletinMutation) AddedAvgTrust() (r float64, exists bool) {
	v := m.addavg_trust
	if v == nil {
		return
	}
	return *v, true
}

// ResetAvgTrust resets all changes to the "avg_trust" field.
func (m *TSBBulletinMutation) ResetAvgTrust() {
	m.avg_trust = nil
	m.addavg_trust = nil
}

// SetAvgRelevance sets the "avg_relevance" field.
func (m *TSBBulletinMutation) SetAvgRelevance(f float64) {
	m.avg_relevance = &f
	m.addavg_relevance = nil
}

// AvgRelevance returns the value of the "avg_relevance" field in the mutation.
func (m *TSBBulletinMutation) AvgRelevance() (r float64, exists bool) {
	v := m.avg_relevance
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgRelevance returns the old "avg_relevance" field's value of the TSBBulletin entity.
// If the TSBBulletin object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TSBBulletinMutation) OldAvgRelevance(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgRelevance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgRelevance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgRelevance: %w", err)
	}
	return oldValue.AvgRelevance, nil
}

// AddAvgRelevance adds f to the "avg_relevance" field.
func (m *TSBBulletinMutation) AddAvgRelevance(f float64) {
	if m.addavg_relevance != nil {
		*m.addavg_relevance += f
	} else {
		m.addavg_relevance = &f
	}
}

// AddedAvgRelevance returns the value that was added to the "avg_relevance" field in this mutation.
func (m *TSBBulletinMutation) AddedAvgRelevance() (r float64, exists bool) {
	v := m.addavg_relevance
	if v == nil {
		return
	}
	return *v, true
}

// ResetAvgRelevance resets all changes to the "avg_relevance" field.
func (m *TSBBulletinMutation) ResetAvgRelevance() {
	m.avg_relevance = nil
	m.addavg_relevance = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TSBBulletinMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TSBBulletinMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TSBBulletin entity.
// If the TSBBulletin object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TSBBulletinMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TSBBulletinMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TSBBulletinMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TSBBulletinMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TSBBulletin entity.
// If the TSBBulletin object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TSBBulletinMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TSBBulletinMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the TSBBulletinMutation builder.
func (m *TSBBulletinMutation) Where(ps ...predicate.TSBBulletin) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TSBBulletinMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TSBBulletinMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TSBBulletin, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TSBBulletinMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TSBBulletinMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TSBBulletin).
func (m *TSBBulletinMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TSBBulletinMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.tsb_number != nil {
		fields = append(fields, tsbbulletin.FieldTsbNumber)
	}
	if m.title != nil {
		fields = append(fields, tsbbulletin.FieldTitle)
	}
	if m.affected_models != nil {
		fields = append(fields, tsbbulletin.FieldAffectedModels)
	}
	if m.related_dtc_codes != nil {
		fields = append(fields, tsbbulletin.FieldRelatedDtcCodes)
	}
	if m.summary != nil {
		fields = append(fields, tsbbulletin.FieldSummary)
	}
	if m.evidence_count != nil {
		fields = append(fields, tsbbulletin.FieldEvidenceCount)
	}
	if m.avg_trust != nil {
		fields = append(fields, tsbbulletin.FieldAvgTrust)
	}
	if m.avg_relevance != nil {
		fields = append(fields, tsbbulletin.FieldAvgRelevance)
	}
	if m.created_at != nil {
		fields = append(fields, tsbbulletin.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, tsbbulletin.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TSBBulletinMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tsbbulletin.FieldTsbNumber:
		return m.TsbNumber()
	case tsbbulletin.FieldTitle:
		return m.Title()
	case tsbbulletin.FieldAffectedModels:
		return m.AffectedModels()
	case tsbbulletin.FieldRelatedDtcCodes:
		return m.RelatedDtcCodes()
	case tsbbulletin.FieldSummary:
		return m.Summary()
	case tsbbulletin.FieldEvidenceCount:
		return m.EvidenceCount()
	case tsbbulletin.FieldAvgTrust:
		return m.AvgTrust()
	case tsbbulletin.FieldAvgRelevance:
		return m.AvgRelevance()
	case tsbbulletin.FieldCreatedAt:
		return m.CreatedAt()
	case tsbbulletin.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TSBBulletinMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tsbbulletin.FieldTsbNumber:
		return m.OldTsbNumber(ctx)
	case tsbbulletin.FieldTitle:
		return m.OldTitle(ctx)
	case tsbbulletin.FieldAffectedModels:
		return m.OldAffectedModels(ctx)
	case tsbbulletin.FieldRelatedDtcCodes:
		return m.OldRelatedDtcCodes(ctx)
	case tsbbulletin.FieldSummary:
		return m.OldSummary(ctx)
	case tsbbulletin.FieldEvidenceCount:
		return m.OldEvidenceCount(ctx)
	case tsbbulletin.FieldAvgTrust:
		return m.OldAvgTrust(ctx)
	case tsbbulletin.FieldAvgRelevance:
		return m.OldAvgRelevance(ctx)
	case tsbbulletin.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case tsbbulletin.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TSBBulletin field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TSBBulletinMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tsbbulletin.FieldTsbNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTsbNumber(v)
		return nil
	case tsbbulletin.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case tsbbulletin.FieldAffectedModels:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAffectedModels(v)
		return nil
	case tsbbulletin.FieldRelatedDtcCodes:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelatedDtcCodes(v)
		return nil
	case tsbbulletin.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case tsbbulletin.FieldEvidenceCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvidenceCount(v)
		return nil
	case tsbbulletin.FieldAvgTrust:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgTrust(v)
		return nil
	case tsbbulletin.FieldAvgRelevance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgRelevance(v)
		return nil
	case tsbbulletin.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case tsbbulletin.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TSBBulletin field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TSBBulletinMutation) AddedFields() []string {
	var fields []string
	if m.addevidence_count != nil {
		fields = append(fields, tsbbulletin.FieldEvidenceCount)
	}
	if m.addavg_trust != nil {
		fields = append(fields, tsbbulletin.FieldAvgTrust)
	}
	if m.addavg_relevance != nil {
		fields = append(fields, tsbbulletin.FieldAvgRelevance)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TSBBulletinMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case tsbbulletin.FieldEvidenceCount:
		return m.AddedEvidenceCount()
	case tsbbulletin.FieldAvgTrust:
		return m.AddedAvgTrust()
	case tsbbulletin.FieldAvgRelevance:
		return m.AddedAvgRelevance()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TSBBulletinMutation) AddField(name string, value ent.Value) error {
	switch name {
	case tsbbulletin.FieldEvidenceCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEvidenceCount(v)
		return nil
	case tsbbulletin.FieldAvgTrust:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgTrust(v)
		return nil
	case tsbbulletin.FieldAvgRelevance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgRelevance(v)
		return nil
	}
	return fmt.Errorf("unknown TSBBulletin numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TSBBulletinMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tsbbulletin.FieldTitle) {
		fields = append(fields, tsbbulletin.FieldTitle)
	}
	if m.FieldCleared(tsbbulletin.FieldAffectedModels) {
		fields = append(fields, tsbbulletin.FieldAffectedModels)
	}
	if m.FieldCleared(tsbbulletin.FieldRelatedDtcCodes) {
		fields = append(fields, tsbbulletin.FieldRelatedDtcCodes)
	}
	if m.FieldCleared(tsbbulletin.FieldSummary) {
		fields = append(fields, tsbbulletin.FieldSummary)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TSBBulletinMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TSBBulletinMutation) ClearField(name string) error {
	switch name {
	case tsbbulletin.FieldTitle:
		m.ClearTitle()
		return nil
	case tsbbulletin.FieldAffectedModels:
		m.ClearAffectedModels()
		return nil
	case tsbbulletin.FieldRelatedDtcCodes:
		m.ClearRelatedDtcCodes()
		return nil
	case tsbbulletin.FieldSummary:
		m.ClearSummary()
		return nil
	}
	return fmt.Errorf("unknown TSBBulletin nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TSBBulletinMutation) ResetField(name string) error {
	switch name {
	case tsbbulletin.FieldTsbNumber:
		m.ResetTsbNumber()
		return nil
	case tsbbulletin.FieldTitle:
		m.ResetTitle()
		return nil
	case tsbbulletin.FieldAffectedModels:
		m.ResetAffectedModels()
		return nil
	case tsbbulletin.FieldRelatedDtcCodes:
		m.ResetRelatedDtcCodes()
		return nil
	case tsbbulletin.FieldSummary:
		m.ResetSummary()
		return nil
	case tsbbulletin.FieldEvidenceCount:
		m.ResetEvidenceCount()
		return nil
	case tsbbulletin.FieldAvgTrust:
		m.ResetAvgTrust()
		return nil
	case tsbbulletin.FieldAvgRelevance:
		m.ResetAvgRelevance()
		return nil
	case tsbbulletin.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case tsbbulletin.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown TSBBulletin field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TSBBulletinMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TSBBulletinMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TSBBulletinMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TSBBulletinMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TSBBulletinMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TSBBulletinMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TSBBulletinMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TSBBulletin unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TSBBulletinMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TSBBulletin edge %s", name)
}

// VehicleMutation represents an operation that mutates the Vehicle nodes in the graph.
type VehicleMutation struct {
	config
	op            Op
	typ           string
	id            *string
	make          *string
	model         *string
	year_start    *int
	addyear_start *int
	year_end      *int
	addyear_end   *int
	engine        *string
	transmission  *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Vehicle, error)
	predicates    []predicate.Vehicle
}

var _ ent.Mutation = (*VehicleMutation)(nil)

// vehicleOption allows management of the mutation configuration using functional options.
type vehicleOption func(*VehicleMutation)

// newVehicleMutation creates new mutation for the Vehicle entity.
func newVehicleMutation(c config, op Op, opts ...vehicleOption) *VehicleMutation {
	m := &VehicleMutation{
		config:        c,
		op:            op,
		typ:           TypeVehicle,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVehicleID sets the ID field of the mutation.
func withVehicleID(id string) vehicleOption {
	return func(m *VehicleMutation) {
		var (
			err   error
			once  sync.Once
			value *Vehicle
		)
		m.oldValue = func(ctx context.Context) (*Vehicle, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Vehicle.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVehicle sets the old Vehicle of the mutation.
func withVehicle(node *Vehicle) vehicleOption {
	return func(m *VehicleMutation) {
		m.oldValue = func(context.Context) (*Vehicle, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VehicleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VehicleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Vehicle entities.
func (m *VehicleMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VehicleMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VehicleMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Vehicle.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMake sets the "make" field.
func (m *VehicleMutation) SetMake(s string) {
	m.make = &s
}

// Make returns the value of the "make" field in the mutation.
func (m *VehicleMutation) Make() (r string, exists bool) {
	v := m.make
	if v == nil {
		return
	}
	return *v, true
}

// OldMake returns the old "make" field's value of the Vehicle entity.
// If the Vehicle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleMutation) OldMake(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMake is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMake requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMake: %w", err)
	}
	return oldValue.Make, nil
}

// ResetMake resets all changes to the "make" field.
func (m *VehicleMutation) ResetMake() {
	m.make = nil
}

// SetModel sets the "model" field.
func (m *VehicleMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *VehicleMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the Vehicle entity.
// If the Vehicle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *VehicleMutation) ResetModel() {
	m.model = nil
}

// SetYearStart sets the "year_start" field.
func (m *VehicleMutation) SetYearStart(i int) {
	m.year_start = &i
	m.addyear_start = nil
}

// YearStart returns the value of the "year_start" field in the mutation.
func (m *VehicleMutation) YearStart() (r int, exists bool) {
	v := m.year_start
	if v == nil {
		return
	}
	return *v, true
}

// OldYearStart returns the old "year_start" field's value of the Vehicle entity.
// If the Vehicle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleMutation) OldYearStart(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldYearStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldYearStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldYearStart: %w", err)
	}
	return oldValue.YearStart, nil
}

// AddYearStart adds i to the "year_start" field.
func (m *VehicleMutation) AddYearStart(i int) {
	if m.addyear_start != nil {
		*m.addyear_start += i
	} else {
		m.addyear_start = &i
	}
}

// AddedYearStart returns the value that was added to the "year_start" field in this mutation.
func (m *VehicleMutation) AddedYearStart() (r int, exists bool) {
	v := m.addyear_start
	if v == nil {
		return
	}
	return *v, true
}

// ClearYearStart clears the value of the "year_start" field.
func (m *VehicleMutation) ClearYearStart() {
	m.year_start = nil
	m.addyear_start = nil
	m.clearedFields[vehicle.FieldYearStart] = struct{}{}
}

// YearStartCleared returns if the "year_start" field was cleared in this mutation.
func (m *VehicleMutation) YearStartCleared() bool {
	_, ok := m.clearedFields[vehicle.FieldYearStart]
	return ok
}

// ResetYearStart resets all changes to the "year_start" field.
func (m *VehicleMutation) ResetYearStart() {
	m.year_start = nil
	m.addyear_start = nil
	delete(m.clearedFields, vehicle.FieldYearStart)
}

// SetYearEnd sets the "year_end" field.
func (m *VehicleMutation) SetYearEnd(i int) {
	m.year_end = &i
	m.addyear_end = nil
}

// YearEnd returns the value of the "year_end" field in the mutation.
func (m *VehicleMutation) YearEnd() (r int, exists bool) {
	v := m.year_end
	if v == nil {
		return
	}
	return *v, true
}

// OldYearEnd returns the old "year_end" field's value of the Vehicle entity.
// If the Vehicle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleMutation) OldYearEnd(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldYearEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldYearEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldYearEnd: %w", err)
	}
	return oldValue.YearEnd, nil
}

// AddYearEnd adds i to the "year_end" field.
func (m *VehicleMutation) AddYearEnd(i int) {
	if m.addyear_end != nil {
		*m.addyear_end += i
	} else {
		m.addyear_end = &i
	}
}

// AddedYearEnd returns the value that was added to the "year_end" field in this mutation.
func (m *VehicleMutation) AddedYearEnd() (r int, exists bool) {
	v := m.addyear_end
	if v == nil {
		return
	}
	return *v, true
}

// ClearYearEnd clears the value of the "year_end" field.
func (m *VehicleMutation) ClearYearEnd() {
	m.year_end = nil
	m.addyear_end = nil
	m.clearedFields[vehicle.FieldYearEnd] = struct{}{}
}

// YearEndCleared returns if the "year_end" field was cleared in this mutation.
func (m *VehicleMutation) YearEndCleared() bool {
	_, ok := m.clearedFields[vehicle.FieldYearEnd]
	return ok
}

// ResetYearEnd resets all changes to the "year_end" field.
func (m *VehicleMutation) ResetYearEnd() {
	m.year_end = nil
	m.addyear_end = nil
	delete(m.clearedFields, vehicle.FieldYearEnd)
}

// SetEngine sets the "engine" field.
func (m *VehicleMutation) SetEngine(s string) {
	m.engine = &s
}

// Engine returns the value of the "engine" field in the mutation.
func (m *VehicleMutation) Engine() (r string, exists bool) {
	v := m.engine
	if v == nil {
		return
	}
	return *v, true
}

// OldEngine returns the old "engine" field's value of the Vehicle entity.
// If the Vehicle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleMutation) OldEngine(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEngine is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEngine requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEngine: %w", err)
	}
	return oldValue.Engine, nil
}

// ClearEngine clears the value of the "engine" field.
func (m *VehicleMutation) ClearEngine() {
	m.engine = nil
	m.clearedFields[vehicle.FieldEngine] = struct{}{}
}

// EngineCleared returns if the "engine" field was cleared in this mutation.
func (m *VehicleMutation) EngineCleared() bool {
	_, ok := m.clearedFields[vehicle.FieldEngine]
	return ok
}

// ResetEngine resets all changes to the "engine" field.
func (m *VehicleMutation) ResetEngine() {
	m.engine = nil
	delete(m.clearedFields, vehicle.FieldEngine)
}

// SetTransmission sets the "transmission" field.
func (m *VehicleMutation) SetTransmission(s string) {
	m.transmission = &s
}

// Transmission returns the value of the "transmission" field in the mutation.
func (m *VehicleMutation) Transmission() (r string, exists bool) {
	v := m.transmission
	if v == nil {
		return
	}
	return *v, true
}

// OldTransmission returns the old "transmission" field's value of the Vehicle entity.
// If the Vehicle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleMutation) OldTransmission(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTransmission is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTransmission requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTransmission: %w", err)
	}
	return oldValue.Transmission, nil
}

// ClearTransmission clears the value of the "transmission" field.
func (m *VehicleMutation) ClearTransmission() {
	m.transmission = nil
	m.clearedFields[vehicle.FieldTransmission] = struct{}{}
}

// TransmissionCleared returns if the "transmission" field was cleared in this mutation.
func (m *VehicleMutation) TransmissionCleared() bool {
	_, ok := m.clearedFields[vehicle.FieldTransmission]
	return ok
}

// ResetTransmission resets all changes to the "transmission" field.
func (m *VehicleMutation) ResetTransmission() {
	m.transmission = nil
	delete(m.clearedFields, vehicle.FieldTransmission)
}

// SetCreatedAt sets the "created_at" field.
func (m *VehicleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *VehicleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Vehicle entity.
// If the Vehicle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *VehicleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *VehicleMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *VehicleMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Vehicle entity.
// If the Vehicle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *VehicleMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the VehicleMutation builder.
func (m *VehicleMutation) Where(ps ...predicate.Vehicle) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VehicleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VehicleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Vehicle, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VehicleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VehicleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Vehicle).
func (m *VehicleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VehicleMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.make != nil {
		fields = append(fields, vehicle.FieldMake)
	}
	if m.model != nil {
		fields = append(fields, vehicle.FieldModel)
	}
	if m.year_start != nil {
		fields = append(fields, vehicle.FieldYearStart)
	}
	if m.year_end != nil {
		fields = append(fields, vehicle.FieldYearEnd)
	}
	if m.engine != nil {
		fields = append(fields, vehicle.FieldEngine)
	}
	if m.transmission != nil {
		fields = append(fields, vehicle.FieldTransmission)
	}
	if m.created_at != nil {
		fields = append(fields, vehicle.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, vehicle.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VehicleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case vehicle.FieldMake:
		return m.Make()
	case vehicle.FieldModel:
		return m.Model()
	case vehicle.FieldYearStart:
		return m.YearStart()
	case vehicle.FieldYearEnd:
		return m.YearEnd()
	case vehicle.FieldEngine:
		return m.Engine()
	case vehicle.FieldTransmission:
		return m.Transmission()
	case vehicle.FieldCreatedAt:
		return m.CreatedAt()
	case vehicle.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VehicleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case vehicle.FieldMake:
		return m.OldMake(ctx)
	case vehicle.FieldModel:
		return m.OldModel(ctx)
	case vehicle.FieldYearStart:
		return m.OldYearStart(ctx)
	case vehicle.FieldYearEnd:
		return m.OldYearEnd(ctx)
	case vehicle.FieldEngine:
		return m.OldEngine(ctx)
	case vehicle.FieldTransmission:
		return m.OldTransmission(ctx)
	case vehicle.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case vehicle.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Vehicle field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VehicleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case vehicle.FieldMake:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMake(v)
		return nil
	case vehicle.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case vehicle.FieldYearStart:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetYearStart(v)
		return nil
	case vehicle.FieldYearEnd:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetYearEnd(v)
		return nil
	case vehicle.FieldEngine:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEngine(v)
		return nil
	case vehicle.FieldTransmission:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTransmission(v)
		return nil
	case vehicle.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case vehicle.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Vehicle field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VehicleMutation) AddedFields() []string {
	var fields []string
	if m.addyear_start != nil {
		fields = append(fields, vehicle.FieldYearStart)
	}
	if m.addyear_end != nil {
		fields = append(fields, vehicle.FieldYearEnd)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VehicleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case vehicle.FieldYearStart:
		return m.AddedYearStart()
	case vehicle.FieldYearEnd:
		return m.AddedYearEnd()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VehicleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case vehicle.FieldYearStart:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddYearStart(v)
		return nil
	case vehicle.FieldYearEnd:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddYearEnd(v)
		return nil
	}
	return fmt.Errorf("unknown Vehicle numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VehicleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(vehicle.FieldYearStart) {
		fields = append(fields, vehicle.FieldYearStart)
	}
	if m.FieldCleared(vehicle.FieldYearEnd) {
		fields = append(fields, vehicle.FieldYearEnd)
	}
	if m.FieldCleared(vehicle.FieldEngine) {
		fields = append(fields, vehicle.FieldEngine)
	}
	if m.FieldCleared(vehicle.FieldTransmission) {
		fields = append(fields, vehicle.FieldTransmission)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VehicleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VehicleMutation) ClearField(name string) error {
	switch name {
	case vehicle.FieldYearStart:
		m.ClearYearStart()
		return nil
	case vehicle.FieldYearEnd:
		m.ClearYearEnd()
		return nil
	case vehicle.FieldEngine:
		m.ClearEngine()
		return nil
	case vehicle.FieldTransmission:
		m.ClearTransmission()
		return nil
	}
	return fmt.Errorf("unknown Vehicle nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VehicleMutation) ResetField(name string) error {
	switch name {
	case vehicle.FieldMake:
		m.ResetMake()
		return nil
	case vehicle.FieldModel:
		m.ResetModel()
		return nil
	case vehicle.FieldYearStart:
		m.ResetYearStart()
		return nil
	case vehicle.FieldYearEnd:
		m.ResetYearEnd()
		return nil
	case vehicle.FieldEngine:
		m.ResetEngine()
		return nil
	case vehicle.FieldTransmission:
		m.ResetTransmission()
		return nil
	case vehicle.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case vehicle.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Vehicle field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VehicleMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VehicleMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VehicleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VehicleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VehicleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VehicleMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VehicleMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Vehicle unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VehicleMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Vehicle edge %s", name)
}

// VehicleDTCMutation represents an operation that mutates the VehicleDTC nodes in the graph.
type VehicleDTCMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	vehicle_id          *string
	dtc_master_id       *string
	source_chunk_id     *string
	confidence_score    *float64
	addconfidence_score *float64
	created_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*VehicleDTC, error)
	predicates          []predicate.VehicleDTC
}

var _ ent.Mutation = (*VehicleDTCMutation)(nil)

// vehicledtcOption allows management of the mutation configuration using functional options.
type vehicledtcOption func(*VehicleDTCMutation)

// newVehicleDTCMutation creates new mutation for the VehicleDTC entity.
func newVehicleDTCMutation(c config, op Op, opts ...vehicledtcOption) *VehicleDTCMutation {
	m := &VehicleDTCMutation{
		config:        c,
		op:            op,
		typ:           TypeVehicleDTC,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVehicleDTCID sets the ID field of the mutation.
func withVehicleDTCID(id string) vehicledtcOption {
	return func(m *VehicleDTCMutation) {
		var (
			err   error
			once  sync.Once
			value *VehicleDTC
		)
		m.oldValue = func(ctx context.Context) (*VehicleDTC, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().VehicleDTC.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVehicleDTC sets the old VehicleDTC of the mutation.
func withVehicleDTC(node *VehicleDTC) vehicledtcOption {
	return func(m *VehicleDTCMutation) {
		m.oldValue = func(context.Context) (*VehicleDTC, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VehicleDTCMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VehicleDTCMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of VehicleDTC entities.
func (m *VehicleDTCMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VehicleDTCMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VehicleDTCMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().VehicleDTC.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetVehicleID sets the "vehicle_id" field.
func (m *VehicleDTCMutation) SetVehicleID(s string) {
	m.vehicle_id = &s
}

// VehicleID returns the value of the "vehicle_id" field in the mutation.
func (m *VehicleDTCMutation) VehicleID() (r string, exists bool) {
	v := m.vehicle_id
	if v == nil {
		return
	}
	return *v, true
}

// OldVehicleID returns the old "vehicle_id" field's value of the VehicleDTC entity.
// If the VehicleDTC object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleDTCMutation) OldVehicleID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVehicleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVehicleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVehicleID: %w", err)
	}
	return oldValue.VehicleID, nil
}

// ResetVehicleID resets all changes to the "vehicle_id" field.
func (m *VehicleDTCMutation) ResetVehicleID() {
	m.vehicle_id = nil
}

// SetDtcMasterID sets the "dtc_master_id" field.
func (m *VehicleDTCMutation) SetDtcMasterID(s string) {
	m.dtc_master_id = &s
}

// DtcMasterID returns the value of the "dtc_master_id" field in the mutation.
func (m *VehicleDTCMutation) DtcMasterID() (r string, exists bool) {
	v := m.dtc_master_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDtcMasterID returns the old "dtc_master_id" field's value of the VehicleDTC entity.
// If the VehicleDTC object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleDTCMutation) OldDtcMasterID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDtcMasterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDtcMasterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDtcMasterID: %w", err)
	}
	return oldValue.DtcMasterID, nil
}

// ResetDtcMasterID resets all changes to the "dtc_master_id" field.
func (m *VehicleDTCMutation) ResetDtcMasterID() {
	m.dtc_master_id = nil
}

// SetSourceChunkID sets the "source_chunk_id" field.
func (m *VehicleDTCMutation) SetSourceChunkID(s string) {
	m.source_chunk_id = &s
}

// SourceChunkID returns the value of the "source_chunk_id" field in the mutation.
func (m *VehicleDTCMutation) SourceChunkID() (r string, exists bool) {
	v := m.source_chunk_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceChunkID returns the old "source_chunk_id" field's value of the VehicleDTC entity.
// If the VehicleDTC object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleDTCMutation) OldSourceChunkID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceChunkID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceChunkID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceChunkID: %w", err)
	}
	return oldValue.SourceChunkID, nil
}

// ClearSourceChunkID clears the value of the "source_chunk_id" field.
func (m *VehicleDTCMutation) ClearSourceChunkID() {
	m.source_chunk_id = nil
	m.clearedFields[vehicledtc.FieldSourceChunkID] = struct{}{}
}

// SourceChunkIDCleared returns if the "source_chunk_id" field was cleared in this mutation.
func (m *VehicleDTCMutation) SourceChunkIDCleared() bool {
	_, ok := m.clearedFields[vehicledtc.FieldSourceChunkID]
	return ok
}

// ResetSourceChunkID resets all changes to the "source_chunk_id" field.
func (m *VehicleDTCMutation) ResetSourceChunkID() {
	m.source_chunk_id = nil
	delete(m.clearedFields, vehicledtc.FieldSourceChunkID)
}

// SetConfidenceScore sets the "confidence_score" field.
func (m *VehicleDTCMutation) SetConfidenceScore(f float64) {
	m.confidence_score = &f
	m.addconfidence_score = nil
}

// ConfidenceScore returns the value of the "confidence_score" field in the mutation.
func (m *VehicleDTCMutation) ConfidenceScore() (r float64, exists bool) {
	v := m.confidence_score
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceScore returns the old "confidence_score" field's value of the VehicleDTC entity.
// If the VehicleDTC object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleDTCMutation) OldConfidenceScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceScore: %w", err)
	}
	return oldValue.ConfidenceScore, nil
}

// AddConfidenceScore adds f to the "confidence_score" field.
func (m *VehicleDTCMutation) AddConfidenceScore(f float64) {
	if m.addconfidence_score != nil {
		*m.addconfidence_score += f
	} else {
		m.addconfidence_score = &f
	}
}

// AddedConfidenceScore returns the value that was added to the "confidence_score" field in this mutation.
func (m *VehicleDTCMutation) AddedConfidenceScore() (r float64, exists bool) {
	v := m.addconfidence_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidenceScore resets all changes to the "confidence_score" field.
func (m *VehicleDTCMutation) ResetConfidenceScore() {
	m.confidence_score = nil
	m.addconfidence_score = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *VehicleDTCMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *VehicleDTCMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the VehicleDTC entity.
// If the VehicleDTC object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleDTCMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *VehicleDTCMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the VehicleDTCMutation builder.
func (m *VehicleDTCMutation) Where(ps ...predicate.VehicleDTC) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VehicleDTCMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VehicleDTCMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.VehicleDTC, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VehicleDTCMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VehicleDTCMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (VehicleDTC).
func (m *VehicleDTCMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VehicleDTCMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.vehicle_id != nil {
		fields = append(fields, vehicledtc.FieldVehicleID)
	}
	if m.dtc_master_id != nil {
		fields = append(fields, vehicledtc.FieldDtcMasterID)
	}
	if m.source_chunk_id != nil {
		fields = append(fields, vehicledtc.FieldSourceChunkID)
	}
	if m.confidence_score != nil {
		fields = append(fields, vehicledtc.FieldConfidenceScore)
	}
	if m.created_at != nil {
		fields = append(fields, vehicledtc.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VehicleDTCMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case vehicledtc.FieldVehicleID:
		return m.VehicleID()
	case vehicledtc.FieldDtcMasterID:
		return m.DtcMasterID()
	case vehicledtc.FieldSourceChunkID:
		return m.SourceChunkID()
	case vehicledtc.FieldConfidenceScore:
		return m.ConfidenceScore()
	case vehicledtc.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VehicleDTCMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case vehicledtc.FieldVehicleID:
		return m.OldVehicleID(ctx)
	case vehicledtc.FieldDtcMasterID:
		return m.OldDtcMasterID(ctx)
	case vehicledtc.FieldSourceChunkID:
		return m.OldSourceChunkID(ctx)
	case vehicledtc.FieldConfidenceScore:
		return m.OldConfidenceScore(ctx)
	case vehicledtc.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown VehicleDTC field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VehicleDTCMutation) SetField(name string, value ent.Value) error {
	switch name {
	case vehicledtc.FieldVehicleID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVehicleID(v)
		return nil
	case vehicledtc.FieldDtcMasterID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDtcMasterID(v)
		return nil
	case vehicledtc.FieldSourceChunkID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceChunkID(v)
		return nil
	case vehicledtc.FieldConfidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceScore(v)
		return nil
	case vehicledtc.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown VehicleDTC field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VehicleDTCMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence_score != nil {
		fields = append(fields, vehicledtc.FieldConfidenceScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VehicleDTCMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case vehicledtc.FieldConfidenceScore:
		return m.AddedConfidenceScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VehicleDTCMutation) AddField(name string, value ent.Value) error {
	switch name {
	case vehicledtc.FieldConfidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidenceScore(v)
		return nil
	}
	return fmt.Errorf("unknown VehicleDTC numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VehicleDTCMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(vehicledtc.FieldSourceChunkID) {
		fields = append(fields, vehicledtc.FieldSourceChunkID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VehicleDTCMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VehicleDTCMutation) ClearField(name string) error {
	switch name {
	case vehicledtc.FieldSourceChunkID:
		m.ClearSourceChunkID()
		return nil
	}
	return fmt.Errorf("unknown VehicleDTC nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VehicleDTCMutation) ResetField(name string) error {
	switch name {
	case vehicledtc.FieldVehicleID:
		m.ResetVehicleID()
		return nil
	case vehicledtc.FieldDtcMasterID:
		m.ResetDtcMasterID()
		return nil
	case vehicledtc.FieldSourceChunkID:
		m.ResetSourceChunkID()
		return nil
	case vehicledtc.FieldConfidenceScore:
		m.ResetConfidenceScore()
		return nil
	case vehicledtc.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown VehicleDTC field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VehicleDTCMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VehicleDTCMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VehicleDTCMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VehicleDTCMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VehicleDTCMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VehicleDTCMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VehicleDTCMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown VehicleDTC unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VehicleDTCMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown VehicleDTC edge %s", name)
}

// VehicleMentionMutation represents an operation that mutates the VehicleMention nodes in the graph.
type VehicleMentionMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	document_id             *string
	make                    *string
	model                   *string
	year_start              *int
	addyear_start           *int
	year_end                *int
	addyear_end             *int
	engine                  *string
	transmission            *string
	related_dtc_codes       *[]string
	appendrelated_dtc_codes []string
	linked                  *bool
	source_chunk_id         *string
	trust                   *float64
	addtrust                *float64
	relevance               *float64
	addrelevance            *float64
	created_at              *time.Time
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*VehicleMention, error)
	predicates              []predicate.VehicleMention
}

var _ ent.Mutation = (*VehicleMentionMutation)(nil)

// vehiclementionOption allows management of the mutation configuration using functional options.
type vehiclementionOption func(*VehicleMentionMutation)

// newVehicleMentionMutation creates new mutation for the VehicleMention entity.
func newVehicleMentionMutation(c config, op Op, opts ...vehiclementionOption) *VehicleMentionMutation {
	m := &VehicleMentionMutation{
		config:        c,
		op:            op,
		typ:           TypeVehicleMention,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVehicleMentionID sets the ID field of the mutation.
func withVehicleMentionID(id string) vehiclementionOption {
	return func(m *VehicleMentionMutation) {
		var (
			err   error
			once  sync.Once
			value *VehicleMention
		)
		m.oldValue = func(ctx context.Context) (*VehicleMention, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().VehicleMention.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVehicleMention sets the old VehicleMention of the mutation.
func withVehicleMention(node *VehicleMention) vehiclementionOption {
	return func(m *VehicleMentionMutation) {
		m.oldValue = func(context.Context) (*VehicleMention, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VehicleMentionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VehicleMentionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of VehicleMention entities.
func (m *VehicleMentionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VehicleMentionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VehicleMentionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().VehicleMention.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentID sets the "document_id" field.
func (m *VehicleMentionMutation) SetDocumentID(s string) {
	m.document_id = &s
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *VehicleMentionMutation) DocumentID() (r string, exists bool) {
	v := m.document_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the VehicleMention entity.
// If the VehicleMention object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleMentionMutation) OldDocumentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *VehicleMentionMutation) ResetDocumentID() {
	m.document_id = nil
}

// SetMake sets the "make" field.
func (m *VehicleMentionMutation) SetMake(s string) {
	m.make = &s
}

// Make returns the value of the "make" field in the mutation.
func (m *VehicleMentionMutation) Make() (r string, exists bool) {
	v := m.make
	if v == nil {
		return
	}
	return *v, true
}

// OldMake returns the old "make" field's value of the VehicleMention entity.
// If the VehicleMention object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleMentionMutation) OldMake(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMake is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMake requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMake: %w", err)
	}
	return oldValue.Make, nil
}

// ResetMake resets all changes to the "make" field.
func (m *VehicleMentionMutation) ResetMake() {
	m.make = nil
}

// SetModel sets the "model" field.
func (m *VehicleMentionMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *VehicleMentionMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the VehicleMention entity.
// If the VehicleMention object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleMentionMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ClearModel clears the value of the "model" field.
func (m *VehicleMentionMutation) ClearModel() {
	m.model = nil
	m.clearedFields[vehiclemention.FieldModel] = struct{}{}
}

// ModelCleared returns if the "model" field was cleared in this mutation.
func (m *VehicleMentionMutation) ModelCleared() bool {
	_, ok := m.clearedFields[vehiclemention.FieldModel]
	return ok
}

// ResetModel resets all changes to the "model" field.
func (m *VehicleMentionMutation) ResetModel() {
	m.model = nil
	delete(m.clearedFields, vehiclemention.FieldModel)
}

// SetYearStart sets the "year_start" field.
func (m *VehicleMentionMutation) SetYearStart(i int) {
	m.year_start = &i
	m.addyear_start = nil
}

// YearStart returns the value of the "year_start" field in the mutation.
func (m *VehicleMentionMutation) YearStart() (r int, exists bool) {
	v := m.year_start
	if v == nil {
		return
	}
	return *v, true
}

// OldYearStart returns the old "year_start" field's value of the VehicleMention entity.
// If the VehicleMention object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleMentionMutation) OldYearStart(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldYearStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldYearStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldYearStart: %w", err)
	}
	return oldValue.YearStart, nil
}

// AddYearStart adds i to the "year_start" field.
func (m *VehicleMentionMutation) AddYearStart(i int) {
	if m.addyear_start != nil {
		*m.addyear_start += i
	} else {
		m.addyear_start = &i
	}
}

// AddedYearStart returns the value that was added to the "year_start" field in this mutation.
func (m *VehicleMentionMutation) AddedYearStart() (r int, exists bool) {
	v := m.addyear_start
	if v == nil {
		return
	}
	return *v, true
}

// ClearYearStart clears the value of the "year_start" field.
func (m *VehicleMentionMutation) ClearYearStart() {
	m.year_start = nil
	m.addyear_start = nil
	m.clearedFields[vehiclemention.FieldYearStart] = struct{}{}
}

// YearStartCleared returns if the "year_start" field was cleared in this mutation.
func (m *VehicleMentionMutation) YearStartCleared() bool {
	_, ok := m.clearedFields[vehiclemention.FieldYearStart]
	return ok
}

// ResetYearStart resets all changes to the "year_start" field.
func (m *VehicleMentionMutation) ResetYearStart() {
	m.year_start = nil
	m.addyear_start = nil
	delete(m.clearedFields, vehiclemention.FieldYearStart)
}

// SetYearEnd sets the "year_end" field.
func (m *VehicleMentionMutation) SetYearEnd(i int) {
	m.year_end = &i
	m.addyear_end = nil
}

// YearEnd returns the value of the "year_end" field in the mutation.
func (m *VehicleMentionMutation) YearEnd() (r int, exists bool) {
	v := m.year_end
	if v == nil {
		return
	}
	return *v, true
}

// OldYearEnd returns the old "year_end" field's value of the VehicleMention entity.
// If the VehicleMention object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleMentionMutation) OldYearEnd(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldYearEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldYearEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldYearEnd: %w", err)
	}
	return oldValue.YearEnd, nil
}

// AddYearEnd adds i to the "year_end" field.
func (m *VehicleMentionMutation) AddYearEnd(i int) {
	if m.addyear_end != nil {
		*m.addyear_end += i
	} else {
		m.addyear_end = &i
	}
}

// AddedYearEnd returns the value that was added to the "year_end" field in this mutation.
func (m *VehicleMentionMutation) AddedYearEnd() (r int, exists bool) {
	v := m.addyear_end
	if v == nil {
		return
	}
	return *v, true
}

// ClearYearEnd clears the value of the "year_end" field.
func (m *VehicleMentionMutation) ClearYearEnd() {
	m.year_end = nil
	m.addyear_end = nil
	m.clearedFields[vehiclemention.FieldYearEnd] = struct{}{}
}

// YearEndCleared returns if the "year_end" field was cleared in this mutation.
func (m *VehicleMentionMutation) YearEndCleared() bool {
	_, ok := m.clearedFields[vehiclemention.FieldYearEnd]
	return ok
}

// ResetYearEnd resets all changes to the "year_end" field.
func (m *VehicleMentionMutation) ResetYearEnd() {
	m.year_end = nil
	m.addyear_end = nil
	delete(m.clearedFields, vehiclemention.FieldYearEnd)
}

// SetEngine sets the "engine" field.
func (m *VehicleMentionMutation) SetEngine(s string) {
	m.engine = &s
}

// Engine returns the value of the "engine" field in the mutation.
func (m *VehicleMentionMutation) Engine() (r string, exists bool) {
	v := m.engine
	if v == nil {
		return
	}
	return *v, true
}

// OldEngine returns the old "engine" field's value of the VehicleMention entity.
// If the VehicleMention object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleMentionMutation) OldEngine(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEngine is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEngine requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEngine: %w", err)
	}
	return oldValue.Engine, nil
}

// ClearEngine clears the value of the "engine" field.
func (m *VehicleMentionMutation) ClearEngine() {
	m.engine = nil
	m.clearedFields[vehiclemention.FieldEngine] = struct{}{}
}

// EngineCleared returns if the "engine" field was cleared in this mutation.
func (m *VehicleMentionMutation) EngineCleared() bool {
	_, ok := m.clearedFields[vehiclemention.FieldEngine]
	return ok
}

// ResetEngine resets all changes to the "engine" field.
func (m *VehicleMentionMutation) ResetEngine() {
	m.engine = nil
	delete(m.clearedFields, vehiclemention.FieldEngine)
}

// SetTransmission sets the "transmission" field.
func (m *VehicleMentionMutation) SetTransmission(s string) {
	m.transmission = &s
}

// Transmission returns the value of the "transmission" field in the mutation.
func (m *VehicleMentionMutation) Transmission() (r string, exists bool) {
	v := m.transmission
	if v == nil {
		return
	}
	return *v, true
}

// OldTransmission returns the old "transmission" field's value of the VehicleMention entity.
// If the VehicleMention object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleMentionMutation) OldTransmission(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTransmission is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTransmission requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTransmission: %w", err)
	}
	return oldValue.Transmission, nil
}

// ClearTransmission clears the value of the "transmission" field.
func (m *VehicleMentionMutation) ClearTransmission() {
	m.transmission = nil
	m.clearedFields[vehiclemention.FieldTransmission] = struct{}{}
}

// TransmissionCleared returns if the "transmission" field was cleared in this mutation.
func (m *VehicleMentionMutation) TransmissionCleared() bool {
	_, ok := m.clearedFields[vehiclemention.FieldTransmission]
	return ok
}

// ResetTransmission resets all changes to the "transmission" field.
func (m *VehicleMentionMutation) ResetTransmission() {
	m.transmission = nil
	delete(m.clearedFields, vehiclemention.FieldTransmission)
}

// SetRelatedDtcCodes sets the "related_dtc_codes" field.
func (m *VehicleMentionMutation) SetRelatedDtcCodes(s []string) {
	m.related_dtc_codes = &s
	m.appendrelated_dtc_codes = nil
}

// RelatedDtcCodes returns the value of the "related_dtc_codes" field in the mutation.
func (m *VehicleMentionMutation) RelatedDtcCodes() (r []string, exists bool) {
	v := m.related_dtc_codes
	if v == nil {
		return
	}
	return *v, true
}

// OldRelatedDtcCodes returns the old "related_dtc_codes" field's value of the VehicleMention entity.
// If the VehicleMention object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleMentionMutation) OldRelatedDtcCodes(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelatedDtcCodes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelatedDtcCodes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelatedDtcCodes: %w", err)
	}
	return oldValue.RelatedDtcCodes, nil
}

// AppendRelatedDtcCodes adds s to the "related_dtc_codes" field.
func (m *VehicleMentionMutation) AppendRelatedDtcCodes(s []string) {
	m.appendrelated_dtc_codes = append(m.appendrelated_dtc_codes, s...)
}

// AppendedRelatedDtcCodes returns the list of values that were appended to the "related_dtc_codes" field in this mutation.
func (m *VehicleMentionMutation) AppendedRelatedDtcCodes() ([]string, bool) {
	if len(m.appendrelated_dtc_codes) == 0 {
		return nil, false
	}
	return m.appendrelated_dtc_codes, true
}

// ClearRelatedDtcCodes clears the value of the "related_dtc_codes" field.
func (m *VehicleMentionMutation) ClearRelatedDtcCodes() {
	m.related_dtc_codes = nil
	m.appendrelated_dtc_codes = nil
	m.clearedFields[vehiclemention.FieldRelatedDtcCodes] = struct{}{}
}

// RelatedDtcCodesCleared returns if the "related_dtc_codes" field was cleared in this mutation.
func (m *VehicleMentionMutation) RelatedDtcCodesCleared() bool {
	_, ok := m.clearedFields[vehiclemention.FieldRelatedDtcCodes]
	return ok
}

// ResetRelatedDtcCodes resets all changes to the "related_dtc_codes" field.
func (m *VehicleMentionMutation) ResetRelatedDtcCodes() {
	m.related_dtc_codes = nil
	m.appendrelated_dtc_codes = nil
	delete(m.clearedFields, vehiclemention.FieldRelatedDtcCodes)
}

// SetLinked sets the "linked" field.
func (m *VehicleMentionMutation) SetLinked(b bool) {
	m.linked = &b
}

// Linked returns the value of the "linked" field in the mutation.
func (m *VehicleMentionMutation) Linked() (r bool, exists bool) {
	v := m.linked
	if v == nil {
		return
	}
	return *v, true
}

// OldLinked returns the old "linked" field's value of the VehicleMention entity.
// If the VehicleMention object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleMentionMutation) OldLinked(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLinked is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLinked requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLinked: %w", err)
	}
	return oldValue.Linked, nil
}

// ResetLinked resets all changes to the "linked" field.
func (m *VehicleMentionMutation) ResetLinked() {
	m.linked = nil
}

// SetSourceChunkID sets the "source_chunk_id" field.
func (m *VehicleMentionMutation) SetSourceChunkID(s string) {
	m.source_chunk_id = &s
}

// SourceChunkID returns the value of the "source_chunk_id" field in the mutation.
func (m *VehicleMentionMutation) SourceChunkID() (r string, exists bool) {
	v := m.source_chunk_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceChunkID returns the old "source_chunk_id" field's value of the VehicleMention entity.
// If the VehicleMention object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleMentionMutation) OldSourceChunkID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceChunkID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceChunkID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceChunkID: %w", err)
	}
	return oldValue.SourceChunkID, nil
}

// ResetSourceChunkID resets all changes to the "source_chunk_id" field.
func (m *VehicleMentionMutation) ResetSourceChunkID() {
	m.source_chunk_id = nil
}

// SetTrust sets the "trust" field.
func (m *VehicleMentionMutation) SetTrust(f float64) {
	m.trust = &f
	m.addtrust = nil
}

// Trust returns the value of the "trust" field in the mutation.
func (m *VehicleMentionMutation) Trust() (r float64, exists bool) {
	v := m.trust
	if v == nil {
		return
	}
	return *v, true
}

// OldTrust returns the old "trust" field's value of the VehicleMention entity.
// If the VehicleMention object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleMentionMutation) OldTrust(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrust is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrust requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrust: %w", err)
	}
	return oldValue.Trust, nil
}

// AddTrust adds f to the "trust" field.
func (m *VehicleMentionMutation) AddTrust(f float64) {
	if m.addtrust != nil {
		*m.addtrust += f
	} else {
		m.addtrust = &f
	}
}

// AddedTrust returns the value that was added to the "trust" field in this mutation.
func (m *VehicleMentionMutation) AddedTrust() (r float64, exists bool) {
	v := m.addtrust
	if v == nil {
		return
	}
	return *v, true
}

// ResetTrust resets all changes to the "trust" field.
func (m *VehicleMentionMutation) ResetTrust() {
	m.trust = nil
	m.addtrust = nil
}

// SetRelevance sets the "relevance" field.
func (m *VehicleMentionMutation) SetRelevance(f float64) {
	m.relevance = &f
	m.addrelevance = nil
}

// Relevance returns the value of the "relevance" field in the mutation.
func (m *VehicleMentionMutation) Relevance() (r float64, exists bool) {
	v := m.relevance
	if v == nil {
		return
	}
	return *v, true
}

// OldRelevance returns the old "relevance" field's value of the VehicleMention entity.
// If the VehicleMention object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleMentionMutation) OldRelevance(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelevance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelevance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelevance: %w", err)
	}
	return oldValue.Relevance, nil
}

// AddRelevance adds f to the "relevance" field.
func (m *VehicleMentionMutation) AddRelevance(f float64) {
	if m.addrelevance != nil {
		*m.addrelevance += f
	} else {
		m.addrelevance = &f
	}
}

// AddedRelevance returns the value that was added to the "relevance" field in this mutation.
func (m *VehicleMentionMutation) AddedRelevance() (r float64, exists bool) {
	v := m.addrelevance
	if v == nil {
		return
	}
	return *v, true
}

// ResetRelevance resets all changes to the "relevance" field.
func (m *VehicleMentionMutation) ResetRelevance() {
	m.relevance = nil
	m.addrelevance = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *VehicleMentionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *VehicleMentionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the VehicleMention entity.
// If the VehicleMention object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VehicleMentionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *VehicleMentionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the VehicleMentionMutation builder.
func (m *VehicleMentionMutation) Where(ps ...predicate.VehicleMention) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VehicleMentionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VehicleMentionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.VehicleMention, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VehicleMentionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VehicleMentionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (VehicleMention).
func (m *VehicleMentionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VehicleMentionMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.document_id != nil {
		fields = append(fields, vehiclemention.FieldDocumentID)
	}
	if m.make != nil {
		fields = append(fields, vehiclemention.FieldMake)
	}
	if m.model != nil {
		fields = append(fields, vehiclemention.FieldModel)
	}
	if m.year_start != nil {
		fields = append(fields, vehiclemention.FieldYearStart)
	}
	if m.year_end != nil {
		fields = append(fields, vehiclemention.FieldYearEnd)
	}
	if m.engine != nil {
		fields = append(fields, vehiclemention.FieldEngine)
	}
	if m.transmission != nil {
		fields = append(fields, vehiclemention.FieldTransmission)
	}
	if m.related_dtc_codes != nil {
		fields = append(fields, vehiclemention.FieldRelatedDtcCodes)
	}
	if m.linked != nil {
		fields = append(fields, vehiclemention.FieldLinked)
	}
	if m.source_chunk_id != nil {
		fields = append(fields, vehiclemention.FieldSourceChunkID)
	}
	if m.trust != nil {
		fields = append(fields, vehiclemention.FieldTrust)
	}
	if m.relevance != nil {
		fields = append(fields, vehiclemention.FieldRelevance)
	}
	if m.created_at != nil {
		fields = append(fields, vehiclemention.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VehicleMentionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case vehiclemention.FieldDocumentID:
		return m.DocumentID()
	case vehiclemention.FieldMake:
		return m.Make()
	case vehiclemention.FieldModel:
		return m.Model()
	case vehiclemention.FieldYearStart:
		return m.YearStart()
	case vehiclemention.FieldYearEnd:
		return m.YearEnd()
	case vehiclemention.FieldEngine:
		return m.Engine()
	case vehiclemention.FieldTransmission:
		return m.Transmission()
	case vehiclemention.FieldRelatedDtcCodes:
		return m.RelatedDtcCodes()
	case vehiclemention.FieldLinked:
		return m.Linked()
	case vehiclemention.FieldSourceChunkID:
		return m.SourceChunkID()
	case vehiclemention.FieldTrust:
		return m.Trust()
	case vehiclemention.FieldRelevance:
		return m.Relevance()
	case vehiclemention.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VehicleMentionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case vehiclemention.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case vehiclemention.FieldMake:
		return m.OldMake(ctx)
	case vehiclemention.FieldModel:
		return m.OldModel(ctx)
	case vehiclemention.FieldYearStart:
		return m.OldYearStart(ctx)
	case vehiclemention.FieldYearEnd:
		return m.OldYearEnd(ctx)
	case vehiclemention.FieldEngine:
		return m.OldEngine(ctx)
	case vehiclemention.FieldTransmission:
		return m.OldTransmission(ctx)
	case vehiclemention.FieldRelatedDtcCodes:
		return m.OldRelatedDtcCodes(ctx)
	case vehiclemention.FieldLinked:
		return m.OldLinked(ctx)
	case vehiclemention.FieldSourceChunkID:
		return m.OldSourceChunkID(ctx)
	case vehiclemention.FieldTrust:
		return m.OldTrust(ctx)
	case vehiclemention.FieldRelevance:
		return m.OldRelevance(ctx)
	case vehiclemention.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown VehicleMention field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VehicleMentionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case vehiclemention.FieldDocumentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case vehiclemention.FieldMake:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMake(v)
		return nil
	case vehiclemention.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case vehiclemention.FieldYearStart:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetYearStart(v)
		return nil
	case vehiclemention.FieldYearEnd:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetYearEnd(v)
		return nil
	case vehiclemention.FieldEngine:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEngine(v)
		return nil
	case vehiclemention.FieldTransmission:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTransmission(v)
		return nil
	case vehiclemention.FieldRelatedDtcCodes:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelatedDtcCodes(v)
		return nil
	case vehiclemention.FieldLinked:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLinked(v)
		return nil
	case vehiclemention.FieldSourceChunkID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceChunkID(v)
		return nil
	case vehiclemention.FieldTrust:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrust(v)
		return nil
	case vehiclemention.FieldRelevance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelevance(v)
		return nil
	case vehiclemention.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown VehicleMention field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VehicleMentionMutation) AddedFields() []string {
	var fields []string
	if m.addyear_start != nil {
		fields = append(fields, vehiclemention.FieldYearStart)
	}
	if m.addyear_end != nil {
		fields = append(fields, vehiclemention.FieldYearEnd)
	}
	if m.addtrust != nil {
		fields = append(fields, vehiclemention.FieldTrust)
	}
	if m.addrelevance != nil {
		fields = append(fields, vehiclemention.FieldRelevance)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VehicleMentionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case vehiclemention.FieldYearStart:
		return m.AddedYearStart()
	case vehiclemention.FieldYearEnd:
		return m.AddedYearEnd()
	case vehiclemention.FieldTrust:
		return m.AddedTrust()
	case vehiclemention.FieldRelevance:
		return m.AddedRelevance()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VehicleMentionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case vehiclemention.FieldYearStart:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddYearStart(v)
		return nil
	case vehiclemention.FieldYearEnd:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddYearEnd(v)
		return nil
	case vehiclemention.FieldTrust:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTrust(v)
		return nil
	case vehiclemention.FieldRelevance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRelevance(v)
		return nil
	}
	return fmt.Errorf("unknown VehicleMention numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VehicleMentionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(vehiclemention.FieldModel) {
		fields = append(fields, vehiclemention.FieldModel)
	}
	if m.FieldCleared(vehiclemention.FieldYearStart) {
		fields = append(fields, vehiclemention.FieldYearStart)
	}
	if m.FieldCleared(vehiclemention.FieldYearEnd) {
		fields = append(fields, vehiclemention.FieldYearEnd)
	}
	if m.FieldCleared(vehiclemention.FieldEngine) {
		fields = append(fields, vehiclemention.FieldEngine)
	}
	if m.FieldCleared(vehiclemention.FieldTransmission) {
		fields = append(fields, vehiclemention.FieldTransmission)
	}
	if m.FieldCleared(vehiclemention.FieldRelatedDtcCodes) {
		fields = append(fields, vehiclemention.FieldRelatedDtcCodes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VehicleMentionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VehicleMentionMutation) ClearField(name string) error {
	switch name {
	case vehiclemention.FieldModel:
		m.ClearModel()
		return nil
	case vehiclemention.FieldYearStart:
		m.ClearYearStart()
		return nil
	case vehiclemention.FieldYearEnd:
		m.ClearYearEnd()
		return nil
	case vehiclemention.FieldEngine:
		m.ClearEngine()
		return nil
	case vehiclemention.FieldTransmission:
		m.ClearTransmission()
		return nil
	case vehiclemention.FieldRelatedDtcCodes:
		m.ClearRelatedDtcCodes()
		return nil
	}
	return fmt.Errorf("unknown VehicleMention nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VehicleMentionMutation) ResetField(name string) error {
	switch name {
	case vehiclemention.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case vehiclemention.FieldMake:
		m.ResetMake()
		return nil
	case vehiclemention.FieldModel:
		m.ResetModel()
		return nil
	case vehiclemention.FieldYearStart:
		m.ResetYearStart()
		return nil
	case vehiclemention.FieldYearEnd:
		m.ResetYearEnd()
		return nil
	case vehiclemention.FieldEngine:
		m.ResetEngine()
		return nil
	case vehiclemention.FieldTransmission:
		m.ResetTransmission()
		return nil
	case vehiclemention.FieldRelatedDtcCodes:
		m.ResetRelatedDtcCodes()
		return nil
	case vehiclemention.FieldLinked:
		m.ResetLinked()
		return nil
	case vehiclemention.FieldSourceChunkID:
		m.ResetSourceChunkID()
		return nil
	case vehiclemention.FieldTrust:
		m.ResetTrust()
		return nil
	case vehiclemention.FieldRelevance:
		m.ResetRelevance()
		return nil
	case vehiclemention.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown VehicleMention field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VehicleMentionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VehicleMentionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VehicleMentionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VehicleMentionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VehicleMentionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VehicleMentionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VehicleMentionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown VehicleMention unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VehicleMentionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown VehicleMention edge %s", name)
}
