package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ahrav/go-werval/infrastructure/units"
	"github.com/ahrav/go-werval/internal/application"
	"github.com/ahrav/go-werval/internal/domain"
)

func newAnalyzeCommand(logger *slog.Logger) *cobra.Command {
	var (
		inputDir  string
		files     []string
		outputDir string
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Aggregate per-model WER CSV files into statistics and a comparison report",
		Example: `  # Analyze all score files in a directory
  werval analyze -i wer_results

  # Analyze specific CSV files
  werval analyze -f xtts_wer.csv -f f5tts_wer.csv -o analysis_output`,
		RunE: func(cmd *cobra.Command, args []string) error {
			csvFiles := files
			if len(csvFiles) == 0 {
				if inputDir == "" {
					return fmt.Errorf("must specify either --input-dir or --files")
				}
				matches, err := filepath.Glob(filepath.Join(inputDir, "*"+application.ScoresCSVSuffix+".csv"))
				if err != nil {
					return fmt.Errorf("glob %q: %w", inputDir, err)
				}
				csvFiles = matches
			}
			if len(csvFiles) == 0 {
				return fmt.Errorf("no WER CSV files found to analyze")
			}

			aggregator := units.NewStatisticsAggregator()
			var stats []domain.ModelStatistics
			for _, path := range csvFiles {
				values, err := application.LoadScoresCSV(path)
				if err != nil {
					logger.Warn("skipping unreadable scores file", "path", path, "error", err)
					continue
				}

				ms, err := aggregator.ComputeStatistics(application.ModelNameFromScoresPath(path), values)
				if err != nil {
					logger.Warn("skipping scores file", "path", path, "error", err)
					continue
				}
				stats = append(stats, ms)
			}
			if len(stats) == 0 {
				return fmt.Errorf("no valid data to analyze")
			}

			table, err := units.NewComparisonAggregator().Compare(stats)
			if err != nil {
				return err
			}

			if err := os.MkdirAll(outputDir, 0o755); err != nil {
				return fmt.Errorf("create output dir %q: %w", outputDir, err)
			}

			comparisonPath := filepath.Join(outputDir, "model_comparison.csv")
			if err := application.WriteComparisonCSV(comparisonPath, table); err != nil {
				return err
			}
			jsonPath := filepath.Join(outputDir, "statistics.json")
			if err := application.WriteStatisticsJSON(jsonPath, table); err != nil {
				return err
			}
			reportPath := filepath.Join(outputDir, "wer_analysis_report.txt")
			if err := application.WriteReport(reportPath, stats, table); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, application.RenderRankingTable(table))
			fmt.Fprintf(out, "Comparison table saved: %s\n", comparisonPath)
			fmt.Fprintf(out, "JSON statistics saved:  %s\n", jsonPath)
			fmt.Fprintf(out, "Detailed report saved:  %s\n", reportPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputDir, "input-dir", "i", "", "Directory containing WER CSV files")
	cmd.Flags().StringSliceVarP(&files, "files", "f", nil, "Specific CSV file(s) to analyze")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "wer_analysis", "Output directory")

	return cmd
}
