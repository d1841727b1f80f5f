package application

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahrav/go-werval/infrastructure/units"
	"github.com/ahrav/go-werval/internal/domain"
)

func TestScoresCSVRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xtts_wer.csv")

	pairs := []domain.ScoredPair{
		{ID: "1", Reference: "the quick brown fox", Hypothesis: "the quick fox", WER: 25.0},
		{ID: "2", Reference: "hello world", Hypothesis: "hello world", WER: 0.0},
		{ID: "3", Reference: "a, b and \"c\"", Hypothesis: "a b c", WER: 66.67},
	}
	require.NoError(t, WriteScoresCSV(path, "xtts", pairs))

	values, loadErr := LoadScoresCSV(path)
	require.NoError(t, loadErr)
	assert.Equal(t, []float64{25.0, 0.0, 66.67}, values)

	f, openErr := os.Open(path)
	require.NoError(t, openErr)
	defer f.Close()
	records, readErr := csv.NewReader(f).ReadAll()
	require.NoError(t, readErr)
	assert.Equal(t, []string{"id", "ground_truth", "xtts", "wer"}, records[0])
	assert.Equal(t, []string{"1", "the quick brown fox", "the quick fox", "25"}, records[1])
}

func TestLoadScoresCSV_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, loadErr := LoadScoresCSV(filepath.Join(dir, "absent.csv"))
		assert.Error(t, loadErr)
	})

	t.Run("missing wer column", func(t *testing.T) {
		path := filepath.Join(dir, "nower.csv")
		require.NoError(t, os.WriteFile(path, []byte("id,text\n1,hello\n"), 0o644))
		_, loadErr := LoadScoresCSV(path)
		assert.ErrorContains(t, loadErr, "no wer column")
	})

	t.Run("malformed wer value", func(t *testing.T) {
		path := filepath.Join(dir, "bad.csv")
		require.NoError(t, os.WriteFile(path, []byte("id,wer\n1,notanumber\n"), 0o644))
		_, loadErr := LoadScoresCSV(path)
		assert.Error(t, loadErr)
	})
}

func TestModelNameFromScoresPath(t *testing.T) {
	assert.Equal(t, "xtts", ModelNameFromScoresPath("wer_results/xtts_wer.csv"))
	assert.Equal(t, "F5-TTS", ModelNameFromScoresPath("/tmp/out/F5-TTS_wer.csv"))
	assert.Equal(t, "plain", ModelNameFromScoresPath("plain.csv"))
}

func TestScoresCSVPath(t *testing.T) {
	assert.Equal(t, filepath.Join("out", "xtts_wer.csv"), ScoresCSVPath("out", "xtts"))
}

// buildComparisonTable returns statistics for two models in analysis
// order (xtts before f5tts) along with the ranked comparison table,
// where f5tts ranks first on its lower mean.
func buildComparisonTable(t *testing.T) ([]domain.ModelStatistics, domain.ComparisonTable) {
	t.Helper()
	aggregator := units.NewStatisticsAggregator()

	xtts, statErr := aggregator.ComputeStatistics("xtts", []float64{5, 8, 12, 22, 35})
	require.NoError(t, statErr)
	f5, statErr := aggregator.ComputeStatistics("f5tts", []float64{2, 4, 6, 9, 11})
	require.NoError(t, statErr)

	stats := []domain.ModelStatistics{xtts, f5}
	table, cmpErr := units.NewComparisonAggregator().Compare(stats)
	require.NoError(t, cmpErr)
	return stats, table
}

func TestWriteComparisonCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model_comparison.csv")
	_, table := buildComparisonTable(t)

	require.NoError(t, WriteComparisonCSV(path, table))

	f, openErr := os.Open(path)
	require.NoError(t, openErr)
	defer f.Close()
	records, readErr := csv.NewReader(f).ReadAll()
	require.NoError(t, readErr)

	require.Len(t, records, 3)
	assert.Equal(t, comparisonColumns, records[0])
	// Rows come out in rank order: f5tts has the lower mean.
	assert.Equal(t, "f5tts", records[1][0])
	assert.Equal(t, "xtts", records[2][0])
	assert.Equal(t, "5", records[1][1])
	assert.Equal(t, "6.4", records[1][2])
	assert.Equal(t, "16.4", records[2][2])
	assert.Equal(t, "1", records[1][len(records[1])-2])
	assert.Equal(t, "EXCELLENT", records[1][len(records[1])-1])
}

func TestWriteStatisticsJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statistics.json")
	_, table := buildComparisonTable(t)

	require.NoError(t, WriteStatisticsJSON(path, table))

	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)

	var rows []domain.ComparisonRow
	require.NoError(t, json.Unmarshal(data, &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "f5tts", rows[0].Statistics.ModelName)
	assert.Equal(t, 1, rows[0].Rank)
	assert.Equal(t, 6.4, rows[0].Statistics.Mean)
	assert.Equal(t, domain.RatingExcellent, rows[0].Interpretation.Overall)
}
