// Code generated by ent, DO NOT EDIT.

package crawlrequest

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the crawlrequest type in the database.
	Label = "crawl_request"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "crawl_request_id"
	// FieldURL holds the string denoting the url field in the database.
	FieldURL = "url"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldDepth holds the string denoting the depth field in the database.
	FieldDepth = "depth"
	// FieldMaxDepth holds the string denoting the max_depth field in the database.
	FieldMaxDepth = "max_depth"
	// FieldParentURL holds the string denoting the parent_url field in the database.
	FieldParentURL = "parent_url"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// Table holds the table name of the crawlrequest in the database.
	Table = "crawl_requests"
)

// Columns holds all SQL columns for crawlrequest fields.
var Columns = []string{
	FieldID,
	FieldURL,
	FieldStatus,
	FieldDepth,
	FieldMaxDepth,
	FieldParentURL,
	FieldErrorMessage,
	FieldCreatedAt,
	FieldCompletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultDepth holds the default value on creation for the "depth" field.
	DefaultDepth int
	// DepthValidator is a validator for the "depth" field. It is called by the builders before save.
	DepthValidator func(int) error
	// DefaultMaxDepth holds the default value on creation for the "max_depth" field.
	DefaultMaxDepth int
	// MaxDepthValidator is a validator for the "max_depth" field. It is called by the builders before save.
	MaxDepthValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusActive, StatusCompleted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("crawlrequest: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the CrawlRequest queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByURL orders the results by the url field.
func ByURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURL, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByDepth orders the results by the depth field.
func ByDepth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDepth, opts...).ToFunc()
}

// ByMaxDepth orders the results by the max_depth field.
func ByMaxDepth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxDepth, opts...).ToFunc()
}

// ByParentURL orders the results by the parent_url field.
func ByParentURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentURL, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}
