package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBandFor(t *testing.T) {
	tests := []struct {
		wer      float64
		expected PerformanceBand
	}{
		{0, BandExcellent},
		{10, BandExcellent},
		{10.01, BandGood},
		{20, BandGood},
		{20.01, BandFair},
		{30, BandFair},
		{30.01, BandPoor},
		{100, BandPoor},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, BandFor(tt.wer), "wer %v", tt.wer)
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		places   int
		expected float64
	}{
		{"two places down", 33.333333, 2, 33.33},
		{"two places up", 66.666666, 2, 66.67},
		{"four places", 1.016633, 4, 1.0166},
		{"half rounds away from zero", 0.125, 2, 0.13},
		{"negative value", -0.96415, 4, -0.9642},
		{"already exact", 25.0, 2, 25.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Round(tt.value, tt.places), 1e-12)
		})
	}
}

func TestModelStatisticsRounded(t *testing.T) {
	ms := ModelStatistics{
		ModelName:   "m",
		SampleCount: 3,
		Mean:        16.400000001,
		Skewness:    1.01663297,
		Breakdown:   PerformanceBreakdown{ExcellentCount: 2, ExcellentPct: 66.66666666},
	}

	r := ms.Rounded()
	assert.Equal(t, "m", r.ModelName)
	assert.Equal(t, 3, r.SampleCount)
	assert.Equal(t, 16.4, r.Mean)
	assert.Equal(t, 1.0166, r.Skewness)
	assert.Equal(t, 2, r.Breakdown.ExcellentCount)
	assert.Equal(t, 66.6667, r.Breakdown.ExcellentPct)

	// The receiver keeps full precision.
	assert.Equal(t, 16.400000001, ms.Mean)
}
