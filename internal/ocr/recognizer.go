package ocr

import "context"

// Recognizer is the external text-recognition boundary. The pipeline
// treats it as best-effort: it may fail, may be slow, and a failure must
// never abort a batch — callers fall back to filename-only extraction.
type Recognizer interface {
	Recognize(ctx context.Context, imageBytes []byte) (string, error)
}

// Error wraps a recognition failure so callers can classify it with
// errors.As.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return "ocr: " + e.Op
	}
	return "ocr: " + e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }
