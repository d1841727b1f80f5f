package domain

import "math"

// PerformanceBand classifies a single WER score into a fixed qualitative
// bucket. Thresholds are intentionally non-configurable so that reports
// from different evaluation runs stay comparable.
type PerformanceBand string

// Fixed WER performance bands. Membership is mutually exclusive and
// collectively exhaustive over [0, +inf).
const (
	// BandExcellent covers WER <= 10%.
	BandExcellent PerformanceBand = "excellent"

	// BandGood covers 10% < WER <= 20%.
	BandGood PerformanceBand = "good"

	// BandFair covers 20% < WER <= 30%.
	BandFair PerformanceBand = "fair"

	// BandPoor covers WER > 30%.
	BandPoor PerformanceBand = "poor"
)

// Band thresholds as percentages, shared by band classification and the
// overall model rating.
const (
	ExcellentThreshold = 10.0
	GoodThreshold      = 20.0
	FairThreshold      = 30.0
)

// BandFor returns the performance band a WER score falls into.
func BandFor(wer float64) PerformanceBand {
	switch {
	case wer <= ExcellentThreshold:
		return BandExcellent
	case wer <= GoodThreshold:
		return BandGood
	case wer <= FairThreshold:
		return BandFair
	default:
		return BandPoor
	}
}

// PerformanceBreakdown holds the per-band sample counts and percentages
// for one model. Counts always sum to the model's sample count and
// percentages sum to 100 within floating-point tolerance.
type PerformanceBreakdown struct {
	ExcellentCount int `json:"excellent_count"`
	GoodCount      int `json:"good_count"`
	FairCount      int `json:"fair_count"`
	PoorCount      int `json:"poor_count"`

	ExcellentPct float64 `json:"excellent_pct"`
	GoodPct      float64 `json:"good_pct"`
	FairPct      float64 `json:"fair_pct"`
	PoorPct      float64 `json:"poor_pct"`
}

// ModelStatistics is the complete statistical summary of one model's
// per-file WER scores. It is created once from the model's WER column
// and is immutable thereafter.
//
// Values are kept at full precision; use Rounded before serializing so
// that reports and fixtures are stable across platforms.
type ModelStatistics struct {
	// ModelName identifies the evaluated model.
	ModelName string `json:"model_name"`

	// SampleCount is the number of scored files backing this record.
	SampleCount int `json:"count"`

	// Central tendency.
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`

	// Dispersion. Std and Variance use the sample (n-1) formula.
	Std      float64 `json:"std"`
	Variance float64 `json:"variance"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Range    float64 `json:"range"`

	// Quantiles, computed with linear interpolation between order
	// statistics (the R-7 convention).
	Q1  float64 `json:"q1"`
	Q3  float64 `json:"q3"`
	IQR float64 `json:"iqr"`
	P5  float64 `json:"p5"`
	P95 float64 `json:"p95"`

	// Distribution shape, bias-adjusted estimators. Zero when the
	// sample is too small for the estimator to be defined.
	Skewness float64 `json:"skewness"`
	Kurtosis float64 `json:"kurtosis"`

	// Reliability. CV is the coefficient of variation as a percentage
	// of the mean, zero when the mean is zero. SEM is the standard
	// error of the mean. The confidence interval is the 95% normal
	// approximation mean +/- 1.96*SEM.
	CV        float64 `json:"cv"`
	SEM       float64 `json:"sem"`
	CI95Lower float64 `json:"ci_95_lower"`
	CI95Upper float64 `json:"ci_95_upper"`

	// Breakdown buckets every sample into a fixed performance band.
	Breakdown PerformanceBreakdown `json:"breakdown"`
}

// Rounded returns a copy with every float field rounded to four decimal
// places. Rounding is a presentation concern: the underlying statistics
// stay exact so derived computations do not accumulate rounding error.
func (ms ModelStatistics) Rounded() ModelStatistics {
	r := ms
	r.Mean = Round(ms.Mean, 4)
	r.Median = Round(ms.Median, 4)
	r.Std = Round(ms.Std, 4)
	r.Variance = Round(ms.Variance, 4)
	r.Min = Round(ms.Min, 4)
	r.Max = Round(ms.Max, 4)
	r.Range = Round(ms.Range, 4)
	r.Q1 = Round(ms.Q1, 4)
	r.Q3 = Round(ms.Q3, 4)
	r.IQR = Round(ms.IQR, 4)
	r.P5 = Round(ms.P5, 4)
	r.P95 = Round(ms.P95, 4)
	r.Skewness = Round(ms.Skewness, 4)
	r.Kurtosis = Round(ms.Kurtosis, 4)
	r.CV = Round(ms.CV, 4)
	r.SEM = Round(ms.SEM, 4)
	r.CI95Lower = Round(ms.CI95Lower, 4)
	r.CI95Upper = Round(ms.CI95Upper, 4)
	r.Breakdown.ExcellentPct = Round(ms.Breakdown.ExcellentPct, 4)
	r.Breakdown.GoodPct = Round(ms.Breakdown.GoodPct, 4)
	r.Breakdown.FairPct = Round(ms.Breakdown.FairPct, 4)
	r.Breakdown.PoorPct = Round(ms.Breakdown.PoorPct, 4)
	return r
}

// Round rounds v to the given number of decimal places, half away from zero.
func Round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
