package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ahrav/go-werval/internal/application"
)

func newExtractCommand(logger *slog.Logger) *cobra.Command {
	var (
		inputPath string
		outputDir string
		numLines  int
	)

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Split a pipe-delimited transcript listing into per-sample ground-truth files",
		Example: `  # Extract every transcript line into ground-truth/<n>.txt
  werval extract -i transcriptAll.txt -o ground-truth

  # Only the first 100 lines
  werval extract -i transcriptAll.txt -o ground-truth -n 100`,
		RunE: func(cmd *cobra.Command, args []string) error {
			written, err := application.ExtractTranscripts(inputPath, outputDir, numLines)
			if err != nil {
				return err
			}

			logger.Info("transcripts extracted", "count", written, "dir", outputDir)
			fmt.Fprintf(cmd.OutOrStdout(), "Extracted %d transcripts to %s/\n", written, outputDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "transcriptAll.txt", "Input transcript listing")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "ground-truth", "Output folder for per-sample files")
	cmd.Flags().IntVarP(&numLines, "num-lines", "n", 0, "Number of lines to extract (0 = all)")

	return cmd
}
