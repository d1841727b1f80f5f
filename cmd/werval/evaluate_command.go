package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ahrav/go-werval/infrastructure/units"
	"github.com/ahrav/go-werval/internal/application"
	"github.com/ahrav/go-werval/internal/domain"
)

func newEvaluateCommand(logger *slog.Logger) *cobra.Command {
	var (
		configPath     string
		groundTruthDir string
		modelDirs      []string
		modelNames     []string
		outputDir      string
		workers        int
		ignoreCase     bool
	)

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Score model transcript directories against ground truth",
		Example: `  # Single model
  werval evaluate -g ground-truth -m xtts/text -n XTTS -o results

  # Multiple models
  werval evaluate -g ground-truth -m xtts/text -m f5tts/text -n XTTS -n F5-TTS -o results

  # From a config file
  werval evaluate --config evaluation.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveEvaluationConfig(configPath, groundTruthDir, modelDirs, modelNames, outputDir, workers)
			if err != nil {
				return err
			}

			if _, err := os.Stat(cfg.GroundTruthDir); err != nil {
				return fmt.Errorf("ground-truth folder not found: %s", cfg.GroundTruthDir)
			}
			if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
				return fmt.Errorf("create output dir %q: %w", cfg.OutputDir, err)
			}

			scorerCfg := units.DefaultWERScorerConfig()
			if ignoreCase {
				scorerCfg.CaseSensitive = false
			}
			scorer, err := units.NewWERScorerUnit("wer", scorerCfg, logger)
			if err != nil {
				return err
			}
			evaluator, err := application.NewEvaluator(scorer, logger, cfg.Workers)
			if err != nil {
				return err
			}

			evaluated := 0
			for _, model := range cfg.Models {
				if _, err := os.Stat(model.Dir); err != nil {
					logger.Warn("model folder not found, skipping", "model", model.Name, "dir", model.Dir)
					continue
				}

				pairs, err := evaluator.EvaluateModel(cmd.Context(), cfg.GroundTruthDir, model.Dir, model.Name)
				if err != nil {
					if errors.Is(err, domain.ErrNoCommonFiles) {
						logger.Warn("no common files, skipping", "model", model.Name, "dir", model.Dir)
						continue
					}
					return err
				}

				outPath := application.ScoresCSVPath(cfg.OutputDir, model.Name)
				if err := application.WriteScoresCSV(outPath, model.Name, pairs); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d files, mean WER %.2f%% -> %s\n",
					model.Name, len(pairs), application.MeanWER(pairs), outPath)
				evaluated++
			}

			if evaluated == 0 {
				return fmt.Errorf("no models could be evaluated")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "All evaluations complete. Results saved to: %s\n", cfg.OutputDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML evaluation config (overrides folder flags)")
	cmd.Flags().StringVarP(&groundTruthDir, "ground-truth", "g", "ground-truth", "Ground-truth folder path")
	cmd.Flags().StringSliceVarP(&modelDirs, "models", "m", nil, "Model output folder(s)")
	cmd.Flags().StringSliceVarP(&modelNames, "names", "n", nil, "Model name(s), one per model folder")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "wer_results", "Output directory for CSV files")
	cmd.Flags().IntVar(&workers, "workers", 0, "Concurrent scoring workers (0 = default)")
	cmd.Flags().BoolVar(&ignoreCase, "ignore-case", false, "Case-fold texts before scoring")

	return cmd
}

// resolveEvaluationConfig builds the run configuration from a config
// file when given, otherwise from the individual flags.
func resolveEvaluationConfig(
	configPath, groundTruthDir string,
	modelDirs, modelNames []string,
	outputDir string,
	workers int,
) (*application.EvaluationConfig, error) {
	if configPath != "" {
		return application.LoadEvaluationConfig(configPath)
	}

	if len(modelDirs) == 0 {
		return nil, fmt.Errorf("at least one model folder is required (use --models or --config)")
	}
	if len(modelDirs) != len(modelNames) {
		return nil, fmt.Errorf("number of model folders (%d) must match number of model names (%d)",
			len(modelDirs), len(modelNames))
	}

	models := make([]application.ModelSource, len(modelDirs))
	for i := range modelDirs {
		models[i] = application.ModelSource{Name: modelNames[i], Dir: modelDirs[i]}
	}
	return &application.EvaluationConfig{
		GroundTruthDir: groundTruthDir,
		Models:         models,
		OutputDir:      outputDir,
		Workers:        workers,
	}, nil
}
