// Package report renders run metrics and column statistics for the
// console. Presentation only; all numbers come from the cleaning core.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/KaramelBytes/sensorclean-cli/internal/clean"
)

// Markdown renders a compact cleaning report.
func Markdown(res *clean.Result) string {
	var b strings.Builder
	m := res.Metrics

	b.WriteString("[CLEANING SUMMARY]\n")
	b.WriteString(fmt.Sprintf("Run: %s\n", m.RunID))
	b.WriteString(fmt.Sprintf("Rows: %d (data starts at row %d)\n", m.TotalRows, res.DataStart+1))
	b.WriteString(fmt.Sprintf("Columns: %d\n", len(res.Stats)))
	b.WriteString(fmt.Sprintf("Values interpolated: %d\n", m.Interpolated))
	b.WriteString(fmt.Sprintf("Fallback values: %d\n", m.Fallback))
	if m.Filled() > 0 {
		b.WriteString(fmt.Sprintf("Interpolation ratio: %.1f%% (vs fallback)\n", m.InterpolationRatio()*100))
	}
	b.WriteString(fmt.Sprintf("Elapsed: %s\n", m.Elapsed))

	b.WriteString("\n[COLUMNS]\n")
	for _, idx := range sortedColumns(res.Stats) {
		s := res.Stats[idx]
		if !s.IsNumeric {
			b.WriteString(fmt.Sprintf("- %2d %s: non-numeric (skipped)\n", idx, truncate(s.Name, 30)))
			continue
		}
		b.WriteString(fmt.Sprintf("- %2d %s: %.1f%% missing, range %.2f to %.2f, median %.2f\n",
			idx, truncate(s.Name, 30), s.MissingRatio()*100, s.Min, s.Max, s.Median))
	}
	return b.String()
}

// ProfileMarkdown renders statistics only, for analyze-without-cleaning
// runs.
func ProfileMarkdown(res *clean.Result) string {
	var b strings.Builder
	b.WriteString("[COLUMN PROFILE]\n")
	b.WriteString(fmt.Sprintf("Rows: %d (data starts at row %d)\n", res.Metrics.TotalRows, res.DataStart+1))

	numeric := 0
	for _, idx := range sortedColumns(res.Stats) {
		s := res.Stats[idx]
		if !s.IsNumeric {
			continue
		}
		numeric++
		b.WriteString(fmt.Sprintf("- %2d %-30s missing %6.1f%%  mean %8.2f  q1 %8.2f  q3 %8.2f  bounds [%.2f, %.2f]\n",
			idx, truncate(s.Name, 30), s.MissingRatio()*100, s.Mean, s.Q1, s.Q3, s.LowerBound(), s.UpperBound()))
	}
	b.WriteString(fmt.Sprintf("Numeric columns: %d of %d\n", numeric, len(res.Stats)))
	return b.String()
}

func sortedColumns(stats map[int]clean.ColumnStats) []int {
	idxs := make([]int, 0, len(stats))
	for idx := range stats {
		idxs = append(idxs, idx)
	}
	sort.Ints(idxs)
	return idxs
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
