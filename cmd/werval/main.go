// Command werval evaluates machine-generated transcripts against
// ground-truth references using word error rate, and aggregates
// per-file scores into per-model statistics and cross-model
// comparisons.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := newRootCommand(logger).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand(logger *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "werval",
		Short:         "WER evaluation and statistical comparison of transcript models",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newEvaluateCommand(logger))
	root.AddCommand(newAnalyzeCommand(logger))
	root.AddCommand(newExtractCommand(logger))

	return root
}
