package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ahrav/go-werval/internal/domain"
	"github.com/ahrav/go-werval/internal/ports"
)

// DefaultWorkers bounds concurrent per-file scoring when the caller
// does not choose a limit. Scoring is CPU-bound and cheap, so a small
// fan-out is enough to keep a batch moving.
const DefaultWorkers = 8

// Evaluator scores one model's transcript directory against a
// ground-truth directory, producing one domain.ScoredPair per file ID
// present in both. Files are matched by filename stem; files present
// on only one side are ignored.
type Evaluator struct {
	scorer  ports.Scorer
	logger  *slog.Logger
	workers int
}

// NewEvaluator creates an Evaluator backed by the given scorer.
// A nil logger falls back to slog.Default; workers <= 0 selects
// DefaultWorkers.
func NewEvaluator(scorer ports.Scorer, logger *slog.Logger, workers int) (*Evaluator, error) {
	if scorer == nil {
		return nil, fmt.Errorf("scorer must not be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Evaluator{scorer: scorer, logger: logger, workers: workers}, nil
}

// LoadTranscriptDir reads every .txt file in dir and returns its
// trimmed contents keyed by filename stem. The result is empty, not an
// error, when the directory holds no .txt files.
func LoadTranscriptDir(dir string) (map[string]string, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", dir, err)
	}
	sort.Strings(paths)

	texts := make(map[string]string, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read transcript %q: %w", path, err)
		}
		id := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		texts[id] = strings.TrimSpace(string(data))
	}
	return texts, nil
}

// EvaluateModel scores every file ID present in both the ground-truth
// and model directories, in sorted ID order. Per-file scoring fans out
// across a bounded worker group; results keep their ID order regardless
// of completion order. Returns domain.ErrNoCommonFiles when the two
// directories share no IDs.
func (e *Evaluator) EvaluateModel(ctx context.Context, groundTruthDir, modelDir, modelName string) ([]domain.ScoredPair, error) {
	if modelName == "" {
		return nil, domain.ErrEmptyModelName
	}

	groundTruth, err := LoadTranscriptDir(groundTruthDir)
	if err != nil {
		return nil, fmt.Errorf("load ground truth: %w", err)
	}
	modelOutput, err := LoadTranscriptDir(modelDir)
	if err != nil {
		return nil, fmt.Errorf("load model output: %w", err)
	}

	ids := commonIDs(groundTruth, modelOutput)
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: ground truth %q, model %q",
			domain.ErrNoCommonFiles, groundTruthDir, modelDir)
	}

	e.logger.Info("evaluating model",
		"model", modelName,
		"files", len(ids),
	)

	pairs := make([]domain.ScoredPair, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for i, id := range ids {
		g.Go(func() error {
			ref := groundTruth[id]
			hyp := modelOutput[id]
			pairs[i] = domain.ScoredPair{
				ID:         id,
				Reference:  ref,
				Hypothesis: hyp,
				WER:        e.scorer.Score(gctx, ref, hyp),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("score model %q: %w", modelName, err)
	}

	e.logger.Info("model evaluated",
		"model", modelName,
		"mean_wer", domain.Round(MeanWER(pairs), 2),
	)
	return pairs, nil
}

// MeanWER returns the average WER across pairs, or 0 for an empty slice.
func MeanWER(pairs []domain.ScoredPair) float64 {
	if len(pairs) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range pairs {
		sum += p.WER
	}
	return sum / float64(len(pairs))
}

// WERColumn extracts the WER values of pairs in order, the shape the
// statistics aggregator consumes.
func WERColumn(pairs []domain.ScoredPair) []float64 {
	values := make([]float64, len(pairs))
	for i, p := range pairs {
		values[i] = p.WER
	}
	return values
}

// commonIDs returns the sorted intersection of the two key sets.
func commonIDs(a, b map[string]string) []string {
	ids := make([]string, 0, len(a))
	for id := range a {
		if _, ok := b[id]; ok {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}
