// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/autodiag/refinery/ent/document"
)

// Document is the model entity for the Document schema.
type Document struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// SourceURL holds the value of the "source_url" field.
	SourceURL *string `json:"source_url,omitempty"`
	// SHA-256 of the extracted text, used for ingest dedup
	ContentHash string `json:"content_hash,omitempty"`
	// MimeType holds the value of the "mime_type" field.
	MimeType string `json:"mime_type,omitempty"`
	// BlobBucket holds the value of the "blob_bucket" field.
	BlobBucket *string `json:"blob_bucket,omitempty"`
	// BlobKey holds the value of the "blob_key" field.
	BlobKey *string `json:"blob_key,omitempty"`
	// ProcessingStage holds the value of the "processing_stage" field.
	ProcessingStage document.ProcessingStage `json:"processing_stage,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// ChunkCount holds the value of the "chunk_count" field.
	ChunkCount int `json:"chunk_count,omitempty"`
	// Majority vote over per-chunk categories, set at resolve time
	DocumentCategory *string `json:"document_category,omitempty"`
	// ConfidenceScore holds the value of the "confidence_score" field.
	ConfidenceScore *float64 `json:"confidence_score,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DocumentQuery when eager-loading is set.
	Edges        DocumentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DocumentEdges holds the relations/edges for other nodes in the graph.
type DocumentEdges struct {
	// Chunks holds the value of the chunks edge.
	Chunks []*DocumentChunk `json:"chunks,omitempty"`
	// ProcessingLogs holds the value of the processing_logs edge.
	ProcessingLogs []*ProcessingLog `json:"processing_logs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ChunksOrErr returns the Chunks value or an error if the edge
// was not loaded in eager-loading.
func (e DocumentEdges) ChunksOrErr() ([]*DocumentChunk, error) {
	if e.loadedTypes[0] {
		return e.Chunks, nil
	}
	return nil, &NotLoadedError{edge: "chunks"}
}

// ProcessingLogsOrErr returns the ProcessingLogs value or an error if the edge
// was not loaded in eager-loading.
func (e DocumentEdges) ProcessingLogsOrErr() ([]*ProcessingLog, error) {
	if e.loadedTypes[1] {
		return e.ProcessingLogs, nil
	}
	return nil, &NotLoadedError{edge: "processing_logs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Document) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case document.FieldConfidenceScore:
			values[i] = new(sql.NullFloat64)
		case document.FieldChunkCount:
			values[i] = new(sql.NullInt64)
		case document.FieldID, document.FieldTitle, document.FieldSourceURL, document.FieldContentHash, document.FieldMimeType, document.FieldBlobBucket, document.FieldBlobKey, document.FieldProcessingStage, document.FieldErrorMessage, document.FieldDocumentCategory:
			values[i] = new(sql.NullString)
		case document.FieldCreatedAt, document.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Document fields.
func (_m *Document) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case document.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case document.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case document.FieldSourceURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_url", values[i])
			} else if value.Valid {
				_m.SourceURL = new(string)
				*_m.SourceURL = value.String
			}
		case document.FieldContentHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_hash", values[i])
			} else if value.Valid {
				_m.ContentHash = value.String
			}
		case document.FieldMimeType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mime_type", values[i])
			} else if value.Valid {
				_m.MimeType = value.String
			}
		case document.FieldBlobBucket:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field blob_bucket", values[i])
			} else if value.Valid {
				_m.BlobBucket = new(string)
				*_m.BlobBucket = value.String
			}
		case document.FieldBlobKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field blob_key", values[i])
			} else if value.Valid {
				_m.BlobKey = new(string)
				*_m.BlobKey = value.String
			}
		case document.FieldProcessingStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field processing_stage", values[i])
			} else if value.Valid {
				_m.ProcessingStage = document.ProcessingStage(value.String)
			}
		case document.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case document.FieldChunkCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field chunk_count", values[i])
			} else if value.Valid {
				_m.ChunkCount = int(value.Int64)
			}
		case document.FieldDocumentCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field document_category", values[i])
			} else if value.Valid {
				_m.DocumentCategory = new(string)
				*_m.DocumentCategory = value.String
			}
		case document.FieldConfidenceScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_score", values[i])
			} else if value.Valid {
				_m.ConfidenceScore = new(float64)
				*_m.ConfidenceScore = value.Float64
			}
		case document.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case document.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Document.
// This includes values selected through modifiers, order, etc.
func (_m *Document) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryChunks queries the "chunks" edge of the Document entity.
func (_m *Document) QueryChunks() *DocumentChunkQuery {
	return NewDocumentClient(_m.config).QueryChunks(_m)
}

// QueryProcessingLogs queries the "processing_logs" edge of the Document entity.
func (_m *Document) QueryProcessingLogs() *ProcessingLogQuery {
	return NewDocumentClient(_m.config).QueryProcessingLogs(_m)
}

// Update returns a builder for updating this Document.
// Note that you need to call Document.Unwrap() before calling this method if this Document
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Document) Update() *DocumentUpdateOne {
	return NewDocumentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Document entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Document) Unwrap() *Document {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Document is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Document) String() string {
	var builder strings.Builder
	builder.WriteString("Document(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	if v := _m.SourceURL; v != nil {
		builder.WriteString("source_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("content_hash=")
	builder.WriteString(_m.ContentHash)
	builder.WriteString(", ")
	builder.WriteString("mime_type=")
	builder.WriteString(_m.MimeType)
	builder.WriteString(", ")
	if v := _m.BlobBucket; v != nil {
		builder.WriteString("blob_bucket=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.BlobKey; v != nil {
		builder.WriteString("blob_key=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("processing_stage=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProcessingStage))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("chunk_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChunkCount))
	builder.WriteString(", ")
	if v := _m.DocumentCategory; v != nil {
		builder.WriteString("document_category=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ConfidenceScore; v != nil {
		builder.WriteString("confidence_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Documents is a parsable slice of Document.
type Documents []*Document
