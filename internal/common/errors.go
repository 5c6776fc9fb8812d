package common

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

// Per-file failure taxonomy for the intake pipeline. Every per-file
// error is contained at the file level; callers branch with errors.Is
// and only aggregate counts surface to the batch submitter.
var (
	// ErrExtraction: OCR unavailable or unparseable. The file is still
	// processed with filename-only fields.
	ErrExtraction = errors.New("extraction failed")
	// ErrBrandResolution: no matching or fallback brand. File skipped,
	// counted as failed.
	ErrBrandResolution = errors.New("brand resolution failed")
	// ErrDuplicateFile: filename already attached to the same product.
	// Skipped, not an error.
	ErrDuplicateFile = errors.New("duplicate file skipped")
	// ErrCollage: image I/O or composition error. Publish skipped,
	// file-level success unaffected.
	ErrCollage = errors.New("collage generation failed")
	// ErrPublish: channel rejected or unreachable. Sent flag stays
	// false; a future completeness trigger retries.
	ErrPublish = errors.New("publish failed")
	// ErrPersistence: DB write failed for one file; the batch continues.
	ErrPersistence = errors.New("persistence failed")
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// gRPC error helpers
func InvalidArgumentError(message string) error {
	return status.Error(codes.InvalidArgument, message)
}

func NotFoundError(message string) error {
	return status.Error(codes.NotFound, message)
}

func InternalError(message string) error {
	return status.Error(codes.Internal, message)
}

func InvalidArgumentErrorf(format string, args ...interface{}) error {
	return InvalidArgumentError(fmt.Sprintf(format, args...))
}

func InternalErrorf(format string, args ...interface{}) error {
	return InternalError(fmt.Sprintf(format, args...))
}
