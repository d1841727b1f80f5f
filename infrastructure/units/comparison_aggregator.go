package units

import (
	"math"
	"sort"

	"github.com/ahrav/go-werval/internal/domain"
	"github.com/ahrav/go-werval/internal/ports"
)

var _ ports.Comparator = (*ComparisonAggregator)(nil)

// CV interpretation thresholds, as percentages of the mean.
const (
	lowVariabilityCV      = 15.0
	moderateVariabilityCV = 30.0
)

// symmetryThreshold is the absolute skewness below which a distribution
// is read as approximately symmetric.
const symmetryThreshold = 0.5

// ComparisonAggregator builds a ranked cross-model comparison from
// per-model statistics records. Models are ordered by ascending mean
// WER; ties keep their original input order so results are
// reproducible without a secondary tiebreak. Each row carries the full
// statistics record plus a qualitative interpretation of consistency,
// distribution shape, and overall rating.
//
// The aggregator is stateless and thread-safe for concurrent execution.
type ComparisonAggregator struct{}

// NewComparisonAggregator creates a ComparisonAggregator.
func NewComparisonAggregator() *ComparisonAggregator { return &ComparisonAggregator{} }

// Compare ranks the given records and derives their interpretations.
// An empty input returns domain.ErrInsufficientData, since a comparison
// over nothing has no defined rows.
func (ca *ComparisonAggregator) Compare(stats []domain.ModelStatistics) (domain.ComparisonTable, error) {
	if len(stats) == 0 {
		return domain.ComparisonTable{}, domain.ErrInsufficientData
	}

	ranked := make([]domain.ModelStatistics, len(stats))
	copy(ranked, stats)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Mean < ranked[j].Mean
	})

	rows := make([]domain.ComparisonRow, len(ranked))
	for i, ms := range ranked {
		rows[i] = domain.ComparisonRow{
			Rank:           i + 1,
			Statistics:     ms,
			Interpretation: interpret(ms),
		}
	}
	return domain.ComparisonTable{Rows: rows}, nil
}

// interpret derives the qualitative reading of one model's statistics.
func interpret(ms domain.ModelStatistics) domain.Interpretation {
	return domain.Interpretation{
		CV:       interpretCV(ms.CV),
		Skewness: interpretSkewness(ms.Skewness),
		Overall:  domain.RatingFor(ms.Mean),
	}
}

func interpretCV(cv float64) string {
	switch {
	case cv < lowVariabilityCV:
		return "Low variability - highly consistent performance"
	case cv < moderateVariabilityCV:
		return "Moderate variability - reasonably consistent"
	default:
		return "High variability - inconsistent performance"
	}
}

func interpretSkewness(skew float64) string {
	switch {
	case math.Abs(skew) < symmetryThreshold:
		return "Approximately symmetric distribution"
	case skew > 0:
		return "Right-skewed - more samples with low WER"
	default:
		return "Left-skewed - more samples with high WER"
	}
}
