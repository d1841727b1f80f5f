package domain

import (
	"errors"
	"fmt"
)

// Common domain errors that can occur during scoring and aggregation.
var (
	// ErrInsufficientData indicates that statistics were requested over an
	// empty sample set. Every derived metric (mean, SEM, quantiles) is
	// undefined in that case, so the computation must fail explicitly
	// rather than produce NaNs.
	ErrInsufficientData = errors.New("insufficient data: at least one sample is required")

	// ErrEmptyModelName indicates that a model record was created without a name.
	ErrEmptyModelName = errors.New("model name cannot be empty")

	// ErrNoCommonFiles indicates that a reference directory and a model
	// output directory share no file IDs, so nothing can be scored.
	ErrNoCommonFiles = errors.New("no common files between reference and model output")
)

// InsufficientDataError wraps ErrInsufficientData with the model whose
// sample set was empty. It unwraps to ErrInsufficientData so callers can
// match with errors.Is.
type InsufficientDataError struct {
	// Model is the name of the model whose WER column was empty.
	Model string
}

// Error implements the error interface for InsufficientDataError.
func (e *InsufficientDataError) Error() string {
	if e.Model == "" {
		return ErrInsufficientData.Error()
	}
	return fmt.Sprintf("model %q: %v", e.Model, ErrInsufficientData)
}

// Unwrap returns ErrInsufficientData, supporting Go 1.13+ error matching.
func (e *InsufficientDataError) Unwrap() error { return ErrInsufficientData }

// NewInsufficientDataError creates an InsufficientDataError for the given model.
func NewInsufficientDataError(model string) *InsufficientDataError {
	return &InsufficientDataError{Model: model}
}
