// Package units provides the deterministic evaluation units of the
// go-werval engine: WER scoring of reference/hypothesis transcript
// pairs and statistical aggregation of per-model score columns.
package units

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// WorstCaseWER is the sentinel score assigned to pairs that cannot be
// scored: empty or unscoreable text degrades to maximal error rather
// than failing the batch.
const WorstCaseWER = 100.0

// Common errors returned by evaluation units.
var (
	// ErrEmptyUnitName is returned when attempting to create a unit with an empty name.
	ErrEmptyUnitName = errors.New("unit name cannot be empty")

	// ErrInvalidScore is returned when a WER column contains NaN or infinite values.
	ErrInvalidScore = errors.New("score is not a finite number")
)

// Package-level validator instance for configuration validation.
// Uses go-playground/validator v10 for struct tag-based validation.
var validate = validator.New()
