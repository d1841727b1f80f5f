package domain

// OverallRating is the coarse qualitative rating of a model, derived
// from its mean WER using the fixed band thresholds.
type OverallRating string

// Ratings ordered from best to worst.
const (
	RatingExcellent OverallRating = "EXCELLENT"
	RatingGood      OverallRating = "GOOD"
	RatingFair      OverallRating = "FAIR"
	RatingPoor      OverallRating = "POOR"
)

// RatingFor maps a mean WER to its overall rating.
func RatingFor(meanWER float64) OverallRating {
	switch {
	case meanWER <= ExcellentThreshold:
		return RatingExcellent
	case meanWER <= GoodThreshold:
		return RatingGood
	case meanWER <= FairThreshold:
		return RatingFair
	default:
		return RatingPoor
	}
}

// Interpretation holds the human-readable reading of a model's
// statistics: how consistent it is, how its error distribution is
// shaped, and its overall rating.
type Interpretation struct {
	// CV describes score consistency based on the coefficient of variation.
	CV string `json:"cv"`

	// Skewness describes the shape of the WER distribution.
	Skewness string `json:"skewness"`

	// Overall is the coarse rating derived from the mean WER.
	Overall OverallRating `json:"overall"`
}

// ComparisonRow is one ranked entry of a cross-model comparison: the
// model's full statistics record plus its derived interpretation.
type ComparisonRow struct {
	// Rank is the 1-based position after sorting by ascending mean WER.
	Rank int `json:"rank"`

	// Statistics is the model's complete statistics record.
	Statistics ModelStatistics `json:"statistics"`

	// Interpretation is the qualitative reading of the statistics.
	Interpretation Interpretation `json:"interpretation"`
}

// ComparisonTable is an ordered cross-model comparison, ranked by
// ascending mean WER. Ties preserve the original input order; the table
// has no identity beyond its rows.
type ComparisonTable struct {
	Rows []ComparisonRow `json:"rows"`
}

// Rounded returns a copy of the table with every statistics record
// rounded for presentation. Interpretations and ranks are unchanged.
func (ct ComparisonTable) Rounded() ComparisonTable {
	rows := make([]ComparisonRow, len(ct.Rows))
	for i, row := range ct.Rows {
		row.Statistics = row.Statistics.Rounded()
		rows[i] = row
	}
	return ComparisonTable{Rows: rows}
}

// Best returns the top-ranked row, or false when the table is empty.
func (ct ComparisonTable) Best() (ComparisonRow, bool) {
	if len(ct.Rows) == 0 {
		return ComparisonRow{}, false
	}
	return ct.Rows[0], true
}
