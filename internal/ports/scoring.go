// Package ports defines the interfaces that form the contract between
// the application layer and the scoring/aggregation infrastructure.
// These interfaces enable dependency inversion and make the pipeline testable.
package ports

import (
	"context"

	"github.com/ahrav/go-werval/internal/domain"
)

// Scorer computes a word error rate for a single reference/hypothesis
// pair. Implementations must be stateless and safe for concurrent use,
// and must never fail the call: unscoreable input degrades to the
// worst-case score of 100 with a diagnostic logged out of band.
type Scorer interface {
	// Name returns a unique identifier for this scorer.
	// The name is used for logging, debugging, and span attribution.
	Name() string

	// Score returns the WER for the pair as a percentage in [0, 100].
	// Empty reference or hypothesis text yields 100. The context is
	// used only for trace propagation; scoring is a bounded in-memory
	// computation with no cancellation points.
	Score(ctx context.Context, reference, hypothesis string) float64

	// Validate checks that the scorer is properly configured.
	// Return nil if validation passes, or an error describing what is invalid.
	Validate() error
}

// StatisticsProvider turns a model's per-file WER scores into its
// statistics record. Implementations must reject empty samples with an
// error wrapping domain.ErrInsufficientData rather than emit NaNs.
type StatisticsProvider interface {
	// ComputeStatistics summarizes the WER column of one model.
	ComputeStatistics(modelName string, werValues []float64) (domain.ModelStatistics, error)
}

// Comparator builds a ranked cross-model comparison from per-model
// statistics records.
type Comparator interface {
	// Compare ranks the given records by ascending mean WER, breaking
	// ties by input order, and derives a qualitative interpretation
	// for each model.
	Compare(stats []domain.ModelStatistics) (domain.ComparisonTable, error)
}
