package service

import (
	"errors"
	"fmt"
)

// ErrUploadMissing is returned when the request carries no resume file.
var ErrUploadMissing = errors.New("resume upload missing")

// ExtractionError means the resume bytes could not be turned into text.
type ExtractionError struct {
	PDF bool
	Err error
}

func (e *ExtractionError) Error() string {
	if e.PDF {
		return fmt.Sprintf("extracting pdf text: %v", e.Err)
	}
	return fmt.Sprintf("reading resume text: %v", e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// CompletionError wraps any failure of the upstream completion call
type CompletionError struct {
	Err error
}

func (e *CompletionError) Error() string {
	return fmt.Sprintf("completion failed: %v", e.Err)
}

func (e *CompletionError) Unwrap() error { return e.Err }
