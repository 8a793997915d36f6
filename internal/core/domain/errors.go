package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent pipeline failures.
// These are distinct from infrastructure errors.
var (
	// ErrEmptyCorpus indicates there are no documents, or no terms survived cleaning.
	ErrEmptyCorpus = errors.New("empty corpus")

	// ErrInvalidTopicCount indicates a topic count below 1 or above the vocabulary size.
	ErrInvalidTopicCount = errors.New("invalid topic count")

	// ErrDegenerateInput indicates a document-term matrix with zero total count.
	ErrDegenerateInput = errors.New("degenerate input")

	// ErrNumericInstability indicates NaN or Inf appeared in model output.
	ErrNumericInstability = errors.New("numeric instability")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidEncoding indicates a text upload that is not valid UTF-8.
	ErrInvalidEncoding = errors.New("invalid encoding")

	// ErrUnsupportedType indicates an unknown file type or estimator.
	ErrUnsupportedType = errors.New("unsupported type")
)

// Pipeline stage names used in StageError.
const (
	StageVectorise = "vectorise"
	StageFit       = "fit"
	StageTransform = "transform"
	StageReport    = "report"
)

// StageError records which pipeline stage failed and the offending value.
// It unwraps to the underlying sentinel so callers can use errors.Is.
type StageError struct {
	// Stage is one of the Stage* constants.
	Stage string

	// Value is the input that triggered the failure (topic count, document count, ...).
	Value any

	// Err is the underlying error.
	Err error
}

// NewStageError wraps err with the stage and offending value.
func NewStageError(stage string, value any, err error) *StageError {
	return &StageError{Stage: stage, Value: value, Err: err}
}

// Error implements the error interface.
func (e *StageError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("%s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("%s: %v (%v)", e.Stage, e.Err, e.Value)
}

// Unwrap returns the underlying error.
func (e *StageError) Unwrap() error {
	return e.Err
}
