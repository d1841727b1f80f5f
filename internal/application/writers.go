package application

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ahrav/go-werval/internal/domain"
)

// ScoresCSVSuffix is appended to a model name to form its per-model
// score file, and stripped again when the analyze path recovers the
// model name from a filename.
const ScoresCSVSuffix = "_wer"

// ScoresCSVPath returns the per-model score CSV path for a model name.
func ScoresCSVPath(outputDir, modelName string) string {
	return filepath.Join(outputDir, modelName+ScoresCSVSuffix+".csv")
}

// ModelNameFromScoresPath recovers the model name from a per-model
// score CSV path.
func ModelNameFromScoresPath(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return strings.TrimSuffix(stem, ScoresCSVSuffix)
}

// WriteScoresCSV writes one model's scored pairs as CSV with columns
// id, ground_truth, <modelName>, wer. The hypothesis column is named
// after the model so multi-model result sets stay self-describing.
func WriteScoresCSV(path, modelName string, pairs []domain.ScoredPair) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create scores csv %q: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"id", "ground_truth", modelName, "wer"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, p := range pairs {
		record := []string{p.ID, p.Reference, p.Hypothesis, formatFloat(p.WER)}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write csv record %q: %w", p.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush scores csv %q: %w", path, err)
	}
	return nil
}

// LoadScoresCSV reads the wer column of a per-model score CSV written
// by WriteScoresCSV. The header row must contain a "wer" column; other
// columns are ignored.
func LoadScoresCSV(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scores csv %q: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header %q: %w", path, err)
	}

	werCol := -1
	for i, name := range header {
		if name == "wer" {
			werCol = i
			break
		}
	}
	if werCol < 0 {
		return nil, fmt.Errorf("scores csv %q has no wer column", path)
	}

	var values []float64
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv records %q: %w", path, err)
	}
	for i, record := range records {
		if werCol >= len(record) {
			return nil, fmt.Errorf("scores csv %q: row %d has no wer field", path, i+1)
		}
		v, err := strconv.ParseFloat(record[werCol], 64)
		if err != nil {
			return nil, fmt.Errorf("scores csv %q: row %d: %w", path, i+1, err)
		}
		values = append(values, v)
	}
	return values, nil
}

// comparisonColumns is the fixed column order of the comparison CSV.
// Identity and headline statistics lead for readability; derived
// ranking fields close the row.
var comparisonColumns = []string{
	"model_name", "count", "mean", "median", "std", "min", "max",
	"variance", "range", "q1", "q3", "iqr", "p5", "p95",
	"skewness", "kurtosis", "cv", "sem", "ci_95_lower", "ci_95_upper",
	"excellent_count", "good_count", "fair_count", "poor_count",
	"excellent_pct", "good_pct", "fair_pct", "poor_pct",
	"rank", "overall_rating",
}

// WriteComparisonCSV writes the ranked comparison table, one row per
// model, with presentation-rounded values.
func WriteComparisonCSV(path string, table domain.ComparisonTable) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create comparison csv %q: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(comparisonColumns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range table.Rounded().Rows {
		ms := row.Statistics
		b := ms.Breakdown
		record := []string{
			ms.ModelName,
			strconv.Itoa(ms.SampleCount),
			formatFloat(ms.Mean), formatFloat(ms.Median), formatFloat(ms.Std),
			formatFloat(ms.Min), formatFloat(ms.Max),
			formatFloat(ms.Variance), formatFloat(ms.Range),
			formatFloat(ms.Q1), formatFloat(ms.Q3), formatFloat(ms.IQR),
			formatFloat(ms.P5), formatFloat(ms.P95),
			formatFloat(ms.Skewness), formatFloat(ms.Kurtosis),
			formatFloat(ms.CV), formatFloat(ms.SEM),
			formatFloat(ms.CI95Lower), formatFloat(ms.CI95Upper),
			strconv.Itoa(b.ExcellentCount), strconv.Itoa(b.GoodCount),
			strconv.Itoa(b.FairCount), strconv.Itoa(b.PoorCount),
			formatFloat(b.ExcellentPct), formatFloat(b.GoodPct),
			formatFloat(b.FairPct), formatFloat(b.PoorPct),
			strconv.Itoa(row.Rank),
			string(row.Interpretation.Overall),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write csv record %q: %w", ms.ModelName, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush comparison csv %q: %w", path, err)
	}
	return nil
}

// WriteStatisticsJSON writes the ranked comparison table as indented
// JSON for programmatic access, with presentation-rounded values.
func WriteStatisticsJSON(path string, table domain.ComparisonTable) error {
	data, err := json.MarshalIndent(table.Rounded().Rows, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal statistics: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write statistics json %q: %w", path, err)
	}
	return nil
}

// formatFloat renders a float without trailing zeros, matching the
// presentation-rounded precision already applied to the value.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
