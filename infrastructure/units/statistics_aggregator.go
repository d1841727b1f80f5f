package units

import (
	"fmt"
	"math"
	"sort"

	"github.com/ahrav/go-werval/internal/domain"
	"github.com/ahrav/go-werval/internal/ports"
)

var _ ports.StatisticsProvider = (*StatisticsAggregator)(nil)

// StatisticsAggregator turns one model's per-file WER column into its
// complete statistics record: central tendency, dispersion, quantiles,
// distribution shape, reliability metrics, and the fixed performance
// band breakdown.
//
// All quantiles use linear interpolation between order statistics (the
// R-7 convention), variance uses the sample (n-1) denominator, and the
// 95% confidence interval is the normal approximation mean +/- 1.96*SEM.
// The normal approximation is a documented limitation, valid
// asymptotically for larger samples, not a t-interval.
//
// Results are full precision; presentation rounding is the caller's
// concern via domain.ModelStatistics.Rounded.
//
// The aggregator is stateless and thread-safe for concurrent execution.
type StatisticsAggregator struct{}

// NewStatisticsAggregator creates a StatisticsAggregator.
func NewStatisticsAggregator() *StatisticsAggregator { return &StatisticsAggregator{} }

// ComputeStatistics summarizes the WER column of one model.
//
// Error conditions:
//   - empty model name returns domain.ErrEmptyModelName
//   - empty sample set returns an error wrapping domain.ErrInsufficientData,
//     since every derived metric is undefined
//   - NaN or infinite values return an error wrapping ErrInvalidScore
func (sa *StatisticsAggregator) ComputeStatistics(modelName string, werValues []float64) (domain.ModelStatistics, error) {
	if modelName == "" {
		return domain.ModelStatistics{}, domain.ErrEmptyModelName
	}
	if len(werValues) == 0 {
		return domain.ModelStatistics{}, domain.NewInsufficientDataError(modelName)
	}
	for i, v := range werValues {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return domain.ModelStatistics{}, fmt.Errorf("%w: index %d, value %f", ErrInvalidScore, i, v)
		}
	}

	n := len(werValues)
	sorted := make([]float64, n)
	copy(sorted, werValues)
	sort.Float64s(sorted)

	mean := meanOf(werValues)
	variance := sampleVariance(werValues, mean)
	std := math.Sqrt(variance)
	sem := std / math.Sqrt(float64(n))

	q1 := quantile(sorted, 0.25)
	q3 := quantile(sorted, 0.75)

	// CV is only meaningful for a positive mean; WER is non-negative,
	// so a zero mean is a degenerate all-perfect dataset and reports 0.
	cv := 0.0
	if mean > 0 {
		cv = std / mean * 100
	}

	stats := domain.ModelStatistics{
		ModelName:   modelName,
		SampleCount: n,

		Mean:   mean,
		Median: quantile(sorted, 0.5),

		Std:      std,
		Variance: variance,
		Min:      sorted[0],
		Max:      sorted[n-1],
		Range:    sorted[n-1] - sorted[0],

		Q1:  q1,
		Q3:  q3,
		IQR: q3 - q1,
		P5:  quantile(sorted, 0.05),
		P95: quantile(sorted, 0.95),

		Skewness: adjustedSkewness(werValues, mean),
		Kurtosis: adjustedKurtosis(werValues, mean),

		CV:        cv,
		SEM:       sem,
		CI95Lower: mean - 1.96*sem,
		CI95Upper: mean + 1.96*sem,

		Breakdown: bandBreakdown(werValues),
	}
	return stats, nil
}

func meanOf(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// sampleVariance uses the unbiased (n-1) denominator, consistent with
// SEM = std/sqrt(n). A single sample has zero variance rather than an
// undefined one, so downstream reliability metrics stay finite.
func sampleVariance(values []float64, mean float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return sum / float64(n-1)
}

// quantile computes the p-quantile of a sorted sample with linear
// interpolation between order statistics: h = (n-1)p, interpolating
// between floor(h) and floor(h)+1.
func quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	h := float64(n-1) * p
	lo := int(math.Floor(h))
	if lo >= n-1 {
		return sorted[n-1]
	}
	frac := h - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// centralMoment computes the k-th central moment with an n denominator.
func centralMoment(values []float64, mean float64, k int) float64 {
	sum := 0.0
	for _, v := range values {
		sum += math.Pow(v-mean, float64(k))
	}
	return sum / float64(len(values))
}

// adjustedSkewness is the bias-adjusted Fisher-Pearson skewness
// estimator G1 = sqrt(n(n-1))/(n-2) * m3/m2^(3/2). It requires at
// least three samples and non-zero variance; otherwise the estimator
// is undefined and reported as zero.
func adjustedSkewness(values []float64, mean float64) float64 {
	n := float64(len(values))
	if n < 3 {
		return 0
	}
	m2 := centralMoment(values, mean, 2)
	if m2 == 0 {
		return 0
	}
	m3 := centralMoment(values, mean, 3)
	g1 := m3 / math.Pow(m2, 1.5)
	return g1 * math.Sqrt(n*(n-1)) / (n - 2)
}

// adjustedKurtosis is the bias-adjusted excess kurtosis estimator
// G2 = (n-1)/((n-2)(n-3)) * ((n+1)*g2 + 6) with g2 = m4/m2^2 - 3.
// It requires at least four samples and non-zero variance; otherwise
// the estimator is undefined and reported as zero.
func adjustedKurtosis(values []float64, mean float64) float64 {
	n := float64(len(values))
	if n < 4 {
		return 0
	}
	m2 := centralMoment(values, mean, 2)
	if m2 == 0 {
		return 0
	}
	m4 := centralMoment(values, mean, 4)
	g2 := m4/(m2*m2) - 3
	return (n - 1) / ((n - 2) * (n - 3)) * ((n+1)*g2 + 6)
}

// bandBreakdown buckets every score into its fixed performance band.
// Counts always sum to len(values) because the bands partition [0, +inf).
func bandBreakdown(values []float64) domain.PerformanceBreakdown {
	var b domain.PerformanceBreakdown
	for _, v := range values {
		switch domain.BandFor(v) {
		case domain.BandExcellent:
			b.ExcellentCount++
		case domain.BandGood:
			b.GoodCount++
		case domain.BandFair:
			b.FairCount++
		case domain.BandPoor:
			b.PoorCount++
		}
	}
	total := float64(len(values))
	b.ExcellentPct = float64(b.ExcellentCount) / total * 100
	b.GoodPct = float64(b.GoodCount) / total * 100
	b.FairPct = float64(b.FairCount) / total * 100
	b.PoorPct = float64(b.PoorCount) / total * 100
	return b
}
