// Code generated by ent, DO NOT EDIT.

package document

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/autodiag/refinery/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldTitle, v))
}

// SourceURL applies equality check predicate on the "source_url" field. It's identical to SourceURLEQ.
func SourceURL(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldSourceURL, v))
}

// ContentHash applies equality check predicate on the "content_hash" field. It's identical to ContentHashEQ.
func ContentHash(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldContentHash, v))
}

// MimeType applies equality check predicate on the "mime_type" field. It's identical to MimeTypeEQ.
func MimeType(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldMimeType, v))
}

// BlobBucket applies equality check predicate on the "blob_bucket" field. It's identical to BlobBucketEQ.
func BlobBucket(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldBlobBucket, v))
}

// BlobKey applies equality check predicate on the "blob_key" field. It's identical to BlobKeyEQ.
func BlobKey(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldBlobKey, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldErrorMessage, v))
}

// ChunkCount applies equality check predicate on the "chunk_count" field. It's identical to ChunkCountEQ.
func ChunkCount(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldChunkCount, v))
}

// DocumentCategory applies equality check predicate on the "document_category" field. It's identical to DocumentCategoryEQ.
func DocumentCategory(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldDocumentCategory, v))
}

// ConfidenceScore applies equality check predicate on the "confidence_score" field. It's identical to ConfidenceScoreEQ.
func ConfidenceScore(v float64) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldConfidenceScore, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUpdatedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldTitle, v))
}

// SourceURLEQ applies the EQ predicate on the "source_url" field.
func SourceURLEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldSourceURL, v))
}

// SourceURLNEQ applies the NEQ predicate on the "source_url" field.
func SourceURLNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldSourceURL, v))
}

// SourceURLIn applies the In predicate on the "source_url" field.
func SourceURLIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldSourceURL, vs...))
}

// SourceURLNotIn applies the NotIn predicate on the "source_url" field.
func SourceURLNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldSourceURL, vs...))
}

// SourceURLGT applies the GT predicate on the "source_url" field.
func SourceURLGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldSourceURL, v))
}

// SourceURLGTE applies the GTE predicate on the "source_url" field.
func SourceURLGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldSourceURL, v))
}

// SourceURLLT applies the LT predicate on the "source_url" field.
func SourceURLLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldSourceURL, v))
}

// SourceURLLTE applies the LTE predicate on the "source_url" field.
func SourceURLLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldSourceURL, v))
}

// SourceURLContains applies the Contains predicate on the "source_url" field.
func SourceURLContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldSourceURL, v))
}

// SourceURLHasPrefix applies the HasPrefix predicate on the "source_url" field.
func SourceURLHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldSourceURL, v))
}

// SourceURLHasSuffix applies the HasSuffix predicate on the "source_url" field.
func SourceURLHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldSourceURL, v))
}

// SourceURLIsNil applies the IsNil predicate on the "source_url" field.
func SourceURLIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldSourceURL))
}

// SourceURLNotNil applies the NotNil predicate on the "source_url" field.
func SourceURLNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldSourceURL))
}

// SourceURLEqualFold applies the EqualFold predicate on the "source_url" field.
func SourceURLEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldSourceURL, v))
}

// SourceURLContainsFold applies the ContainsFold predicate on the "source_url" field.
func SourceURLContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldSourceURL, v))
}

// ContentHashEQ applies the EQ predicate on the "content_hash" field.
func ContentHashEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldContentHash, v))
}

// ContentHashNEQ applies the NEQ predicate on the "content_hash" field.
func ContentHashNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldContentHash, v))
}

// ContentHashIn applies the In predicate on the "content_hash" field.
func ContentHashIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldContentHash, vs...))
}

// ContentHashNotIn applies the NotIn predicate on the "content_hash" field.
func ContentHashNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldContentHash, vs...))
}

// ContentHashGT applies the GT predicate on the "content_hash" field.
func ContentHashGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldContentHash, v))
}

// ContentHashGTE applies the GTE predicate on the "content_hash" field.
func ContentHashGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldContentHash, v))
}

// ContentHashLT applies the LT predicate on the "content_hash" field.
func ContentHashLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldContentHash, v))
}

// ContentHashLTE applies the LTE predicate on the "content_hash" field.
func ContentHashLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldContentHash, v))
}

// ContentHashContains applies the Contains predicate on the "content_hash" field.
func ContentHashContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldContentHash, v))
}

// ContentHashHasPrefix applies the HasPrefix predicate on the "content_hash" field.
func ContentHashHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldContentHash, v))
}

// ContentHashHasSuffix applies the HasSuffix predicate on the "content_hash" field.
func ContentHashHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldContentHash, v))
}

// ContentHashEqualFold applies the EqualFold predicate on the "content_hash" field.
func ContentHashEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldContentHash, v))
}

// ContentHashContainsFold applies the ContainsFold predicate on the "content_hash" field.
func ContentHashContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldContentHash, v))
}

// MimeTypeEQ applies the EQ predicate on the "mime_type" field.
func MimeTypeEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldMimeType, v))
}

// MimeTypeNEQ applies the NEQ predicate on the "mime_type" field.
func MimeTypeNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldMimeType, v))
}

// MimeTypeIn applies the In predicate on the "mime_type" field.
func MimeTypeIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldMimeType, vs...))
}

// MimeTypeNotIn applies the NotIn predicate on the "mime_type" field.
func MimeTypeNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldMimeType, vs...))
}

// MimeTypeGT applies the GT predicate on the "mime_type" field.
func MimeTypeGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldMimeType, v))
}

// MimeTypeGTE applies the GTE predicate on the "mime_type" field.
func MimeTypeGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldMimeType, v))
}

// MimeTypeLT applies the LT predicate on the "mime_type" field.
func MimeTypeLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldMimeType, v))
}

// MimeTypeLTE applies the LTE predicate on the "mime_type" field.
func MimeTypeLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldMimeType, v))
}

// MimeTypeContains applies the Contains predicate on the "mime_type" field.
func MimeTypeContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldMimeType, v))
}

// MimeTypeHasPrefix applies the HasPrefix predicate on the "mime_type" field.
func MimeTypeHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldMimeType, v))
}

// MimeTypeHasSuffix applies the HasSuffix predicate on the "mime_type" field.
func MimeTypeHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldMimeType, v))
}

// MimeTypeEqualFold applies the EqualFold predicate on the "mime_type" field.
func MimeTypeEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldMimeType, v))
}

// MimeTypeContainsFold applies the ContainsFold predicate on the "mime_type" field.
func MimeTypeContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldMimeType, v))
}

// BlobBucketEQ applies the EQ predicate on the "blob_bucket" field.
func BlobBucketEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldBlobBucket, v))
}

// BlobBucketNEQ applies the NEQ predicate on the "blob_bucket" field.
func BlobBucketNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldBlobBucket, v))
}

// BlobBucketIn applies the In predicate on the "blob_bucket" field.
func BlobBucketIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldBlobBucket, vs...))
}

// BlobBucketNotIn applies the NotIn predicate on the "blob_bucket" field.
func BlobBucketNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldBlobBucket, vs...))
}

// BlobBucketGT applies the GT predicate on the "blob_bucket" field.
func BlobBucketGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldBlobBucket, v))
}

// BlobBucketGTE applies the GTE predicate on the "blob_bucket" field.
func BlobBucketGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldBlobBucket, v))
}

// BlobBucketLT applies the LT predicate on the "blob_bucket" field.
func BlobBucketLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldBlobBucket, v))
}

// BlobBucketLTE applies the LTE predicate on the "blob_bucket" field.
func BlobBucketLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldBlobBucket, v))
}

// BlobBucketContains applies the Contains predicate on the "blob_bucket" field.
func BlobBucketContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldBlobBucket, v))
}

// BlobBucketHasPrefix applies the HasPrefix predicate on the "blob_bucket" field.
func BlobBucketHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldBlobBucket, v))
}

// BlobBucketHasSuffix applies the HasSuffix predicate on the "blob_bucket" field.
func BlobBucketHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldBlobBucket, v))
}

// BlobBucketIsNil applies the IsNil predicate on the "blob_bucket" field.
func BlobBucketIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldBlobBucket))
}

// BlobBucketNotNil applies the NotNil predicate on the "blob_bucket" field.
func BlobBucketNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldBlobBucket))
}

// BlobBucketEqualFold applies the EqualFold predicate on the "blob_bucket" field.
func BlobBucketEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldBlobBucket, v))
}

// BlobBucketContainsFold applies the ContainsFold predicate on the "blob_bucket" field.
func BlobBucketContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldBlobBucket, v))
}

// BlobKeyEQ applies the EQ predicate on the "blob_key" field.
func BlobKeyEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldBlobKey, v))
}

// BlobKeyNEQ applies the NEQ predicate on the "blob_key" field.
func BlobKeyNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldBlobKey, v))
}

// BlobKeyIn applies the In predicate on the "blob_key" field.
func BlobKeyIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldBlobKey, vs...))
}

// BlobKeyNotIn applies the NotIn predicate on the "blob_key" field.
func BlobKeyNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldBlobKey, vs...))
}

// BlobKeyGT applies the GT predicate on the "blob_key" field.
func BlobKeyGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldBlobKey, v))
}

// BlobKeyGTE applies the GTE predicate on the "blob_key" field.
func BlobKeyGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldBlobKey, v))
}

// BlobKeyLT applies the LT predicate on the "blob_key" field.
func BlobKeyLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldBlobKey, v))
}

// BlobKeyLTE applies the LTE predicate on the "blob_key" field.
func BlobKeyLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldBlobKey, v))
}

// BlobKeyContains applies the Contains predicate on the "blob_key" field.
func BlobKeyContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldBlobKey, v))
}

// BlobKeyHasPrefix applies the HasPrefix predicate on the "blob_key" field.
func BlobKeyHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldBlobKey, v))
}

// BlobKeyHasSuffix applies the HasSuffix predicate on the "blob_key" field.
func BlobKeyHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldBlobKey, v))
}

// BlobKeyIsNil applies the IsNil predicate on the "blob_key" field.
func BlobKeyIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldBlobKey))
}

// BlobKeyNotNil applies the NotNil predicate on the "blob_key" field.
func BlobKeyNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldBlobKey))
}

// BlobKeyEqualFold applies the EqualFold predicate on the "blob_key" field.
func BlobKeyEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldBlobKey, v))
}

// BlobKeyContainsFold applies the ContainsFold predicate on the "blob_key" field.
func BlobKeyContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldBlobKey, v))
}

// ProcessingStageEQ applies the EQ predicate on the "processing_stage" field.
func ProcessingStageEQ(v ProcessingStage) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldProcessingStage, v))
}

// ProcessingStageNEQ applies the NEQ predicate on the "processing_stage" field.
func ProcessingStageNEQ(v ProcessingStage) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldProcessingStage, v))
}

// ProcessingStageIn applies the In predicate on the "processing_stage" field.
func ProcessingStageIn(vs ...ProcessingStage) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldProcessingStage, vs...))
}

// ProcessingStageNotIn applies the NotIn predicate on the "processing_stage" field.
func ProcessingStageNotIn(vs ...ProcessingStage) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldProcessingStage, vs...))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldErrorMessage, v))
}

// ChunkCountEQ applies the EQ predicate on the "chunk_count" field.
func ChunkCountEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldChunkCount, v))
}

// ChunkCountNEQ applies the NEQ predicate on the "chunk_count" field.
func ChunkCountNEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldChunkCount, v))
}

// ChunkCountIn applies the In predicate on the "chunk_count" field.
func ChunkCountIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldChunkCount, vs...))
}

// ChunkCountNotIn applies the NotIn predicate on the "chunk_count" field.
func ChunkCountNotIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldChunkCount, vs...))
}

// ChunkCountGT applies the GT predicate on the "chunk_count" field.
func ChunkCountGT(v int) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldChunkCount, v))
}

// ChunkCountGTE applies the GTE predicate on the "chunk_count" field.
func ChunkCountGTE(v int) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldChunkCount, v))
}

// ChunkCountLT applies the LT predicate on the "chunk_count" field.
func ChunkCountLT(v int) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldChunkCount, v))
}

// ChunkCountLTE applies the LTE predicate on the "chunk_count" field.
func ChunkCountLTE(v int) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldChunkCount, v))
}

// DocumentCategoryEQ applies the EQ predicate on the "document_category" field.
func DocumentCategoryEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldDocumentCategory, v))
}

// DocumentCategoryNEQ applies the NEQ predicate on the "document_category" field.
func DocumentCategoryNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldDocumentCategory, v))
}

// DocumentCategoryIn applies the In predicate on the "document_category" field.
func DocumentCategoryIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldDocumentCategory, vs...))
}

// DocumentCategoryNotIn applies the NotIn predicate on the "document_category" field.
func DocumentCategoryNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldDocumentCategory, vs...))
}

// DocumentCategoryGT applies the GT predicate on the "document_category" field.
func DocumentCategoryGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldDocumentCategory, v))
}

// DocumentCategoryGTE applies the GTE predicate on the "document_category" field.
func DocumentCategoryGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldDocumentCategory, v))
}

// DocumentCategoryLT applies the LT predicate on the "document_category" field.
func DocumentCategoryLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldDocumentCategory, v))
}

// DocumentCategoryLTE applies the LTE predicate on the "document_category" field.
func DocumentCategoryLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldDocumentCategory, v))
}

// DocumentCategoryContains applies the Contains predicate on the "document_category" field.
func DocumentCategoryContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldDocumentCategory, v))
}

// DocumentCategoryHasPrefix applies the HasPrefix predicate on the "document_category" field.
func DocumentCategoryHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldDocumentCategory, v))
}

// DocumentCategoryHasSuffix applies the HasSuffix predicate on the "document_category" field.
func DocumentCategoryHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldDocumentCategory, v))
}

// DocumentCategoryIsNil applies the IsNil predicate on the "document_category" field.
func DocumentCategoryIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldDocumentCategory))
}

// DocumentCategoryNotNil applies the NotNil predicate on the "document_category" field.
func DocumentCategoryNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldDocumentCategory))
}

// DocumentCategoryEqualFold applies the EqualFold predicate on the "document_category" field.
func DocumentCategoryEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldDocumentCategory, v))
}

// DocumentCategoryContainsFold applies the ContainsFold predicate on the "document_category" field.
func DocumentCategoryContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldDocumentCategory, v))
}

// ConfidenceScoreEQ applies the EQ predicate on the "confidence_score" field.
func ConfidenceScoreEQ(v float64) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreNEQ applies the NEQ predicate on the "confidence_score" field.
func ConfidenceScoreNEQ(v float64) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreIn applies the In predicate on the "confidence_score" field.
func ConfidenceScoreIn(vs ...float64) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreNotIn applies the NotIn predicate on the "confidence_score" field.
func ConfidenceScoreNotIn(vs ...float64) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreGT applies the GT predicate on the "confidence_score" field.
func ConfidenceScoreGT(v float64) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldConfidenceScore, v))
}

// ConfidenceScoreGTE applies the GTE predicate on the "confidence_score" field.
func ConfidenceScoreGTE(v float64) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldConfidenceScore, v))
}

// ConfidenceScoreLT applies the LT predicate on the "confidence_score" field.
func ConfidenceScoreLT(v float64) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldConfidenceScore, v))
}

// ConfidenceScoreLTE applies the LTE predicate on the "confidence_score" field.
func ConfidenceScoreLTE(v float64) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldConfidenceScore, v))
}

// ConfidenceScoreIsNil applies the IsNil predicate on the "confidence_score" field.
func ConfidenceScoreIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldConfidenceScore))
}

// ConfidenceScoreNotNil applies the NotNil predicate on the "confidence_score" field.
func ConfidenceScoreNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldConfidenceScore))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasChunks applies the HasEdge predicate on the "chunks" edge.
func HasChunks() predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ChunksTable, ChunksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasChunksWith applies the HasEdge predicate on the "chunks" edge with a given conditions (other predicates).
func HasChunksWith(preds ...predicate.DocumentChunk) predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := newChunksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasProcessingLogs applies the HasEdge predicate on the "processing_logs" edge.
func HasProcessingLogs() predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ProcessingLogsTable, ProcessingLogsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProcessingLogsWith applies the HasEdge predicate on the "processing_logs" edge with a given conditions (other predicates).
func HasProcessingLogsWith(preds ...predicate.ProcessingLog) predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := newProcessingLogsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Document) predicate.Document {
	return predicate.Document(sql.NotPredicates(p))
}
