// Code generated by ent, DO NOT EDIT.

package uploadjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the uploadjob type in the database.
	Label = "upload_job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTotalFiles holds the string denoting the total_files field in the database.
	FieldTotalFiles = "total_files"
	// FieldProcessedFiles holds the string denoting the processed_files field in the database.
	FieldProcessedFiles = "processed_files"
	// FieldFailedFiles holds the string denoting the failed_files field in the database.
	FieldFailedFiles = "failed_files"
	// FieldSkippedFiles holds the string denoting the skipped_files field in the database.
	FieldSkippedFiles = "skipped_files"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldPhaseMessage holds the string denoting the phase_message field in the database.
	FieldPhaseMessage = "phase_message"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// Table holds the table name of the uploadjob in the database.
	Table = "upload_jobs"
)

// Columns holds all SQL columns for uploadjob fields.
var Columns = []string{
	FieldID,
	FieldTotalFiles,
	FieldProcessedFiles,
	FieldFailedFiles,
	FieldSkippedFiles,
	FieldStatus,
	FieldPhaseMessage,
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
	// TotalFilesValidator is a validator for the "total_files" field. It is called by the builders before save.
	TotalFilesValidator func(int) error
	// DefaultProcessedFiles holds the default value on creation for the "processed_files" field.
	DefaultProcessedFiles int
	// ProcessedFilesValidator is a validator for the "processed_files" field. It is called by the builders before save.
	ProcessedFilesValidator func(int) error
	// DefaultFailedFiles holds the default value on creation for the "failed_files" field.
	DefaultFailedFiles int
	// FailedFilesValidator is a validator for the "failed_files" field. It is called by the builders before save.
	FailedFilesValidator func(int) error
	// DefaultSkippedFiles holds the default value on creation for the "skipped_files" field.
	DefaultSkippedFiles int
	// SkippedFilesValidator is a validator for the "skipped_files" field. It is called by the builders before save.
	SkippedFilesValidator func(int) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the UploadJob queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTotalFiles orders the results by the total_files field.
func ByTotalFiles(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalFiles, opts...).ToFunc()
}

// ByProcessedFiles orders the results by the processed_files field.
func ByProcessedFiles(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessedFiles, opts...).ToFunc()
}

// ByFailedFiles orders the results by the failed_files field.
func ByFailedFiles(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailedFiles, opts...).ToFunc()
}

// BySkippedFiles orders the results by the skipped_files field.
func BySkippedFiles(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkippedFiles, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByPhaseMessage orders the results by the phase_message field.
func ByPhaseMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhaseMessage, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}
