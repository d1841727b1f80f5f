// Package application wires the scoring and aggregation units into the
// batch evaluation pipeline: transcript loading, per-model scoring,
// CSV/JSON serialization, and report rendering.
package application

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Package-level validator instance for configuration validation.
var validate = validator.New()

// ModelSource names one model under evaluation and the directory
// holding its transcript output, one .txt file per evaluated sample.
type ModelSource struct {
	// Name is the human-readable model identifier used in reports
	// and output filenames.
	Name string `yaml:"name" validate:"required,min=1,max=255"`
	// Dir is the directory containing the model's transcript files.
	Dir string `yaml:"dir" validate:"required"`
}

// EvaluationConfig is the YAML-backed specification of a batch
// evaluation run: where the ground truth lives, which models to score
// against it, and where results go.
type EvaluationConfig struct {
	// GroundTruthDir holds the reference transcripts, one .txt per sample.
	GroundTruthDir string `yaml:"ground_truth_dir" validate:"required"`
	// Models lists the model outputs to evaluate.
	Models []ModelSource `yaml:"models" validate:"required,min=1,dive"`
	// OutputDir receives the per-model score CSV files.
	OutputDir string `yaml:"output_dir" validate:"required"`
	// Workers bounds concurrent per-file scoring; 0 selects the default.
	Workers int `yaml:"workers" validate:"min=0"`
}

// LoadEvaluationConfig reads and validates a YAML evaluation config.
// Unknown fields are rejected so configuration typos fail loudly.
func LoadEvaluationConfig(path string) (*EvaluationConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config %q: %w", path, err)
	}
	defer f.Close()

	var cfg EvaluationConfig
	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config %q (check for typos): %w", path, err)
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}
