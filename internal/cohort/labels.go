package cohort

import (
	"fmt"
	"math"
)

// GenerationNames label the cohorts of a 15-year binning, youngest first
var GenerationNames = []string{
	"Gen Alpha",
	"Gen Z",
	"Millenials",
	"Gen X",
	"Baby Boomer",
	"Stumme Generation",
}

// CohortLabels returns one generation name per cohort of edges. Cohorts
// beyond the known generations fall back to their age range.
func CohortLabels(edges []int) []string {
	ranges := RangeLabels(edges)
	labels := make([]string, len(ranges))
	for i := range ranges {
		if i < len(GenerationNames) {
			labels[i] = GenerationNames[i]
		} else {
			labels[i] = ranges[i]
		}
	}
	return labels
}

// RangeLabels returns the inclusive age range of every cohort, e.g. "0–14"
func RangeLabels(edges []int) []string {
	if len(edges) < 2 {
		return nil
	}
	labels := make([]string, len(edges)-1)
	for i := range labels {
		labels[i] = fmt.Sprintf("%d–%d", edges[i], edges[i+1]-1)
	}
	return labels
}

// FormatPercent renders a percentage annotation: the value rounded half to
// even as "n%", or "" when it rounds to zero.
func FormatPercent(p float64) string {
	n := math.RoundToEven(p)
	if n == 0 {
		return ""
	}
	return fmt.Sprintf("%d%%", int(n))
}
