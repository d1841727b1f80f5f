package application

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahrav/go-werval/infrastructure/units"
	"github.com/ahrav/go-werval/internal/domain"
)

// stubScorer scores identical pairs 0 and everything else 50,
// keeping evaluator tests independent of the WER algorithm.
type stubScorer struct{}

func (stubScorer) Name() string { return "stub" }

func (stubScorer) Score(_ context.Context, reference, hypothesis string) float64 {
	if reference == hypothesis {
		return 0
	}
	return 50
}

func (stubScorer) Validate() error { return nil }

func writeTranscripts(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for id, text := range files {
		path := filepath.Join(dir, id+".txt")
		require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	}
}

func TestLoadTranscriptDir(t *testing.T) {
	dir := t.TempDir()
	writeTranscripts(t, dir, map[string]string{
		"1": "  hello world \n",
		"2": "second sample",
	})
	// Non-txt files are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("x"), 0o644))

	texts, err := LoadTranscriptDir(dir)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"1": "hello world",
		"2": "second sample",
	}, texts)
}

func TestEvaluator_EvaluateModel(t *testing.T) {
	root := t.TempDir()
	gtDir := filepath.Join(root, "ground-truth")
	modelDir := filepath.Join(root, "model")

	writeTranscripts(t, gtDir, map[string]string{
		"1":       "the quick brown fox",
		"2":       "hello world",
		"gt-only": "never scored",
	})
	writeTranscripts(t, modelDir, map[string]string{
		"1":          "the quick brown fox",
		"2":          "hello there world",
		"model-only": "never scored",
	})

	evaluator, err := NewEvaluator(stubScorer{}, nil, 2)
	require.NoError(t, err)

	pairs, err := evaluator.EvaluateModel(context.Background(), gtDir, modelDir, "test-model")
	require.NoError(t, err)
	require.Len(t, pairs, 2)

	// Pairs are ordered by ID over the intersection of the two dirs.
	assert.Equal(t, "1", pairs[0].ID)
	assert.Equal(t, "2", pairs[1].ID)
	assert.Equal(t, 0.0, pairs[0].WER)
	assert.Equal(t, 50.0, pairs[1].WER)
	assert.Equal(t, "hello world", pairs[1].Reference)
	assert.Equal(t, "hello there world", pairs[1].Hypothesis)

	assert.InDelta(t, 25.0, MeanWER(pairs), 1e-9)
	assert.Equal(t, []float64{0, 50}, WERColumn(pairs))
}

func TestEvaluator_EvaluateModel_WithWERScorer(t *testing.T) {
	root := t.TempDir()
	gtDir := filepath.Join(root, "ground-truth")
	modelDir := filepath.Join(root, "model")

	writeTranscripts(t, gtDir, map[string]string{"1": "the quick brown fox"})
	writeTranscripts(t, modelDir, map[string]string{"1": "the quick fox"})

	scorer, err := units.NewWERScorerUnit("wer", units.DefaultWERScorerConfig(), nil)
	require.NoError(t, err)
	evaluator, err := NewEvaluator(scorer, nil, 0)
	require.NoError(t, err)

	pairs, err := evaluator.EvaluateModel(context.Background(), gtDir, modelDir, "xtts")
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.InDelta(t, 25.0, pairs[0].WER, 1e-9)
}

func TestEvaluator_EvaluateModel_Errors(t *testing.T) {
	root := t.TempDir()
	gtDir := filepath.Join(root, "ground-truth")
	modelDir := filepath.Join(root, "model")
	writeTranscripts(t, gtDir, map[string]string{"a": "text"})
	writeTranscripts(t, modelDir, map[string]string{"b": "text"})

	evaluator, err := NewEvaluator(stubScorer{}, nil, 0)
	require.NoError(t, err)

	t.Run("no common files", func(t *testing.T) {
		_, err := evaluator.EvaluateModel(context.Background(), gtDir, modelDir, "m")
		assert.ErrorIs(t, err, domain.ErrNoCommonFiles)
	})

	t.Run("empty model name", func(t *testing.T) {
		_, err := evaluator.EvaluateModel(context.Background(), gtDir, modelDir, "")
		assert.ErrorIs(t, err, domain.ErrEmptyModelName)
	})
}

func TestNewEvaluator_NilScorer(t *testing.T) {
	_, err := NewEvaluator(nil, nil, 0)
	assert.Error(t, err)
}

func TestMeanWER_Empty(t *testing.T) {
	assert.Zero(t, MeanWER(nil))
}
