package application

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/ahrav/go-werval/internal/domain"
)

// RenderReport renders the full human-readable analysis report: one
// detailed section per model in the order the models were analyzed,
// followed by a ranked model comparison when more than one model was
// analyzed.
func RenderReport(stats []domain.ModelStatistics, tbl domain.ComparisonTable) string {
	banner := strings.Repeat("=", 80)
	rule := strings.Repeat("-", 40)

	rowByModel := make(map[string]domain.ComparisonRow, len(tbl.Rows))
	for _, row := range tbl.Rounded().Rows {
		rowByModel[row.Statistics.ModelName] = row
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\nWER ANALYSIS REPORT\n%s\n\n", banner, banner)

	for _, input := range stats {
		row, ok := rowByModel[input.ModelName]
		if !ok {
			continue
		}
		ms := row.Statistics
		bd := ms.Breakdown

		fmt.Fprintf(&b, "\n%s\nMODEL: %s\n%s\n\n", banner, ms.ModelName, banner)

		fmt.Fprintf(&b, "BASIC STATISTICS:\n%s\n", rule)
		fmt.Fprintf(&b, "  Sample Size:        %d\n", ms.SampleCount)
		fmt.Fprintf(&b, "  Mean WER:           %.2f%%\n", ms.Mean)
		fmt.Fprintf(&b, "  Median WER:         %.2f%%\n", ms.Median)
		fmt.Fprintf(&b, "  Std Deviation:      %.2f%%\n", ms.Std)
		fmt.Fprintf(&b, "  Min WER:            %.2f%%\n", ms.Min)
		fmt.Fprintf(&b, "  Max WER:            %.2f%%\n", ms.Max)
		fmt.Fprintf(&b, "  Range:              %.2f%%\n\n", ms.Range)

		fmt.Fprintf(&b, "DISTRIBUTION:\n%s\n", rule)
		fmt.Fprintf(&b, "  Q1 (25th percentile):   %.2f%%\n", ms.Q1)
		fmt.Fprintf(&b, "  Q3 (75th percentile):   %.2f%%\n", ms.Q3)
		fmt.Fprintf(&b, "  IQR:                    %.2f%%\n", ms.IQR)
		fmt.Fprintf(&b, "  5th percentile:         %.2f%%\n", ms.P5)
		fmt.Fprintf(&b, "  95th percentile:        %.2f%%\n", ms.P95)
		fmt.Fprintf(&b, "  Skewness:               %.4f\n", ms.Skewness)
		fmt.Fprintf(&b, "  Kurtosis:               %.4f\n\n", ms.Kurtosis)

		fmt.Fprintf(&b, "RELIABILITY METRICS:\n%s\n", rule)
		fmt.Fprintf(&b, "  Coefficient of Variation (CV): %.2f%%\n", ms.CV)
		fmt.Fprintf(&b, "  Standard Error of Mean (SEM):  %.4f\n", ms.SEM)
		fmt.Fprintf(&b, "  95%% Confidence Interval:       [%.2f%%, %.2f%%]\n\n", ms.CI95Lower, ms.CI95Upper)

		fmt.Fprintf(&b, "PERFORMANCE BREAKDOWN:\n%s\n", rule)
		fmt.Fprintf(&b, "  Excellent (WER <= 10%%):  %4d samples (%5.1f%%)\n", bd.ExcellentCount, bd.ExcellentPct)
		fmt.Fprintf(&b, "  Good (10%% < WER <= 20%%): %4d samples (%5.1f%%)\n", bd.GoodCount, bd.GoodPct)
		fmt.Fprintf(&b, "  Fair (20%% < WER <= 30%%): %4d samples (%5.1f%%)\n", bd.FairCount, bd.FairPct)
		fmt.Fprintf(&b, "  Poor (WER > 30%%):        %4d samples (%5.1f%%)\n\n", bd.PoorCount, bd.PoorPct)

		fmt.Fprintf(&b, "INTERPRETATION:\n%s\n", rule)
		fmt.Fprintf(&b, "  CV: %s\n", row.Interpretation.CV)
		fmt.Fprintf(&b, "  Skewness: %s\n", row.Interpretation.Skewness)
		fmt.Fprintf(&b, "  Overall Rating: %s\n\n", row.Interpretation.Overall)
	}

	if len(tbl.Rows) > 1 {
		fmt.Fprintf(&b, "\n%s\nMODEL COMPARISON (Ranked by Mean WER)\n%s\n\n", banner, banner)
		for _, row := range tbl.Rounded().Rows {
			ms := row.Statistics
			fmt.Fprintf(&b, "%d. %-20s - Mean WER: %6.2f%% (±%5.2f%%)\n",
				row.Rank, ms.ModelName, ms.Mean, ms.Std)
		}
	}
	return b.String()
}

// WriteReport renders the analysis report to a file.
func WriteReport(path string, stats []domain.ModelStatistics, tbl domain.ComparisonTable) error {
	if err := os.WriteFile(path, []byte(RenderReport(stats, tbl)), 0o644); err != nil {
		return fmt.Errorf("write report %q: %w", path, err)
	}
	return nil
}

// RenderRankingTable renders a compact terminal summary of the ranked
// comparison.
func RenderRankingTable(tbl domain.ComparisonTable) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Rank", "Model", "Mean WER", "Median", "Std", "Samples", "Rating"})

	for _, row := range tbl.Rounded().Rows {
		ms := row.Statistics
		tw.AppendRow(table.Row{
			row.Rank,
			ms.ModelName,
			fmt.Sprintf("%.2f%%", ms.Mean),
			fmt.Sprintf("%.2f%%", ms.Median),
			fmt.Sprintf("%.2f%%", ms.Std),
			ms.SampleCount,
			string(row.Interpretation.Overall),
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 5, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 6, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
