package experiment

import (
	"fmt"
	"strings"
)

// FormatRow renders one Markdown table row for s: instance, algorithm,
// cost (avg (min - max)), avg time (ms), and avg iterations ("-" for
// algorithms that don't report one).
func FormatRow(s Stats) string {
	iterations := "-"
	if s.ReportsIterations {
		iterations = fmt.Sprintf("%.1f", s.AvgIterations)
	}

	return fmt.Sprintf("| %s | %s | %.1f (%d - %d) | %.2f | %s |",
		s.InstanceName, s.AlgorithmName, s.AvgCost, s.MinCost, s.MaxCost, s.AvgTimeMs, iterations)
}

// Report renders a full Markdown table for a batch of Stats, in the order
// given.
func Report(stats []Stats) string {
	var b strings.Builder
	b.WriteString("| instance | algorithm | cost (avg (min - max)) | avg time (ms) | avg iterations |\n")
	b.WriteString("| --- | --- | --- | --- | --- |\n")
	for _, s := range stats {
		b.WriteString(FormatRow(s))
		b.WriteString("\n")
	}

	return b.String()
}
