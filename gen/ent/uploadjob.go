// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/ksarkisyan/catalog-intake/gen/ent/uploadjob"
)

// UploadJob is the model entity for the UploadJob schema.
type UploadJob struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// TotalFiles holds the value of the "total_files" field.
	TotalFiles int `json:"total_files,omitempty"`
	// ProcessedFiles holds the value of the "processed_files" field.
	ProcessedFiles int `json:"processed_files,omitempty"`
	// FailedFiles holds the value of the "failed_files" field.
	FailedFiles int `json:"failed_files,omitempty"`
	// SkippedFiles holds the value of the "skipped_files" field.
	SkippedFiles int `json:"skipped_files,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// PhaseMessage holds the value of the "phase_message" field.
	PhaseMessage string `json:"phase_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*UploadJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case uploadjob.FieldTotalFiles, uploadjob.FieldProcessedFiles, uploadjob.FieldFailedFiles, uploadjob.FieldSkippedFiles:
			values[i] = new(sql.NullInt64)
		case uploadjob.FieldStatus, uploadjob.FieldPhaseMessage:
			values[i] = new(sql.NullString)
		case uploadjob.FieldCreatedAt, uploadjob.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		case uploadjob.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the UploadJob fields.
func (_m *UploadJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case uploadjob.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case uploadjob.FieldTotalFiles:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_files", values[i])
			} else if value.Valid {
				_m.TotalFiles = int(value.Int64)
			}
		case uploadjob.FieldProcessedFiles:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field processed_files", values[i])
			} else if value.Valid {
				_m.ProcessedFiles = int(value.Int64)
			}
		case uploadjob.FieldFailedFiles:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field failed_files", values[i])
			} else if value.Valid {
				_m.FailedFiles = int(value.Int64)
			}
		case uploadjob.FieldSkippedFiles:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field skipped_files", values[i])
			} else if value.Valid {
				_m.SkippedFiles = int(value.Int64)
			}
		case uploadjob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case uploadjob.FieldPhaseMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phase_message", values[i])
			} else if value.Valid {
				_m.PhaseMessage = value.String
			}
		case uploadjob.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case uploadjob.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the UploadJob.
// This includes values selected through modifiers, order, etc.
func (_m *UploadJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this UploadJob.
// Note that you need to call UploadJob.Unwrap() before calling this method if this UploadJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *UploadJob) Update() *UploadJobUpdateOne {
	return NewUploadJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the UploadJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *UploadJob) Unwrap() *UploadJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: UploadJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *UploadJob) String() string {
	var builder strings.Builder
	builder.WriteString("UploadJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("total_files=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalFiles))
	builder.WriteString(", ")
	builder.WriteString("processed_files=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProcessedFiles))
	builder.WriteString(", ")
	builder.WriteString("failed_files=")
	builder.WriteString(fmt.Sprintf("%v", _m.FailedFiles))
	builder.WriteString(", ")
	builder.WriteString("skipped_files=")
	builder.WriteString(fmt.Sprintf("%v", _m.SkippedFiles))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("phase_message=")
	builder.WriteString(_m.PhaseMessage)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// UploadJobs is a parsable slice of UploadJob.
type UploadJobs []*UploadJob
