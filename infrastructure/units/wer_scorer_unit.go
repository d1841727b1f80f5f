package units

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"

	"github.com/ahrav/go-werval/internal/domain"
	"github.com/ahrav/go-werval/internal/ports"
)

var (
	_ ports.Scorer = (*WERScorerUnit)(nil)

	// foldCaser is a package-level Unicode case folder for performance.
	// This avoids creating a new caser for each scored pair.
	foldCaser = cases.Fold()
)

// WERScorerUnit computes the word error rate between a ground-truth
// reference and a model hypothesis. It tokenizes both texts on
// whitespace and runs a word-level Levenshtein alignment with unit
// substitution, insertion, and deletion costs, normalized by the
// reference word count and expressed as a percentage.
//
// Scoring never fails the caller: empty input and internal computation
// failures both degrade to WorstCaseWER, with failures reported through
// the unit's logger and recorded on the OpenTelemetry span. Callers
// that need to distinguish an honest 100% WER from a degraded score
// must watch that diagnostic channel.
//
// The unit is stateless and thread-safe for concurrent execution.
type WERScorerUnit struct {
	// name is the unique identifier for this unit instance.
	name string
	// config contains the validated configuration parameters.
	config WERScorerConfig
	// logger receives scoring diagnostics for degraded results.
	logger *slog.Logger
	// tracer is the OpenTelemetry tracer for observability.
	tracer trace.Tracer
}

// WERScorerConfig defines the configuration parameters for the WERScorerUnit.
// All fields are validated during unit creation and parameter unmarshaling.
type WERScorerConfig struct {
	// CaseSensitive determines whether word comparison is case-sensitive.
	// When false, both texts are Unicode case-folded before tokenization,
	// so "Hello" and "hello" count as the same word.
	CaseSensitive bool `yaml:"case_sensitive" json:"case_sensitive"`
}

// DefaultWERScorerConfig returns a WERScorerConfig with sensible defaults.
// Case differences count as substitutions by default; case folding is
// opt-in via CaseSensitive=false.
func DefaultWERScorerConfig() WERScorerConfig {
	return WERScorerConfig{CaseSensitive: true}
}

// NewWERScorerUnit creates a new WERScorerUnit with the specified
// configuration. A nil logger falls back to slog.Default.
// Returns an error if the name is empty or configuration validation fails.
func NewWERScorerUnit(name string, config WERScorerConfig, logger *slog.Logger) (*WERScorerUnit, error) {
	if name == "" {
		return nil, ErrEmptyUnitName
	}
	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &WERScorerUnit{
		name:   name,
		config: config,
		logger: logger,
		tracer: otel.Tracer("wer-scorer-unit"),
	}, nil
}

// Name returns the unique identifier for this unit instance.
func (u *WERScorerUnit) Name() string { return u.name }

// Score returns the WER for the pair as a percentage in [0, 100],
// rounded to two decimal places. If either text is empty after
// trimming, or the computation fails internally, the pair scores
// WorstCaseWER.
func (u *WERScorerUnit) Score(ctx context.Context, reference, hypothesis string) float64 {
	_, span := u.tracer.Start(ctx, "WERScorerUnit.Score",
		trace.WithAttributes(
			attribute.String("unit.type", "wer_scorer"),
			attribute.String("unit.id", u.name),
			attribute.Bool("config.case_sensitive", u.config.CaseSensitive),
		),
	)
	defer span.End()

	ref := strings.TrimSpace(reference)
	hyp := strings.TrimSpace(hypothesis)

	// Missing output is penalized as maximal error rather than treated
	// as undefined, so one bad file cannot abort a batch evaluation.
	if ref == "" || hyp == "" {
		span.SetAttributes(
			attribute.Float64("eval.score", WorstCaseWER),
			attribute.Bool("eval.degraded", true),
		)
		return WorstCaseWER
	}

	wer, err := u.computeWER(ref, hyp)
	if err != nil {
		u.logger.Warn("WER computation failed, degrading to worst-case score",
			"unit", u.name,
			"error", err,
		)
		span.RecordError(err)
		span.SetAttributes(
			attribute.Float64("eval.score", WorstCaseWER),
			attribute.Bool("eval.degraded", true),
		)
		return WorstCaseWER
	}

	span.SetAttributes(
		attribute.Float64("eval.score", wer),
		attribute.Bool("eval.degraded", false),
	)
	return wer
}

// computeWER runs the word-level alignment. Panics from malformed input
// are converted to errors so Score can degrade instead of crashing.
func (u *WERScorerUnit) computeWER(ref, hyp string) (wer float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("wer computation panicked: %v", r)
		}
	}()

	refWords := u.tokenize(ref)
	hypWords := u.tokenize(hyp)
	if len(refWords) == 0 || len(hypWords) == 0 {
		return WorstCaseWER, nil
	}

	distance := wordEditDistance(refWords, hypWords)

	wer = float64(distance) / float64(len(refWords)) * 100
	// Insertions can push raw WER past 100%; reports and band thresholds
	// assume the [0, 100] range, so excess error saturates.
	if wer > WorstCaseWER {
		wer = WorstCaseWER
	}
	return domain.Round(wer, 2), nil
}

// tokenize splits text into whitespace-delimited words, case-folding
// first unless the unit is configured case-sensitive.
func (u *WERScorerUnit) tokenize(text string) []string {
	if !u.config.CaseSensitive {
		text = foldCaser.String(text)
	}
	return strings.Fields(text)
}

// wordEditDistance computes the Levenshtein distance between two word
// sequences with unit costs, using a two-row dynamic program. The
// result is the minimum number of substitutions, deletions, and
// insertions that turn hyp into ref.
func wordEditDistance(ref, hyp []string) int {
	prev := make([]int, len(hyp)+1)
	curr := make([]int, len(hyp)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ref); i++ {
		curr[0] = i
		for j := 1; j <= len(hyp); j++ {
			cost := 1
			if ref[i-1] == hyp[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j-1]+cost, prev[j]+1, curr[j-1]+1)
		}
		prev, curr = curr, prev
	}
	return prev[len(hyp)]
}

// Validate checks if the unit is properly configured and ready for execution.
// Returns nil if validation passes, or an error describing what is invalid.
func (u *WERScorerUnit) Validate() error {
	if err := validate.Struct(u.config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}

// UnmarshalParameters deserializes YAML configuration parameters and returns
// a new WERScorerUnit instance to maintain thread-safety.
// Unknown fields are rejected so configuration typos fail loudly.
func (u *WERScorerUnit) UnmarshalParameters(params yaml.Node) (*WERScorerUnit, error) {
	var config WERScorerConfig

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	if err := encoder.Encode(&params); err != nil {
		return nil, fmt.Errorf("failed to encode YAML node: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("failed to close YAML encoder: %w", err)
	}

	decoder := yaml.NewDecoder(&buf)
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil {
		return nil, fmt.Errorf("failed to decode parameters (check for typos): %w", err)
	}

	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("parameter validation failed: %w", err)
	}

	return &WERScorerUnit{
		name:   u.name,
		config: config,
		logger: u.logger,
		tracer: u.tracer,
	}, nil
}
