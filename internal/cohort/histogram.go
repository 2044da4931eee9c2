package cohort

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"

	apperrors "generationscli/internal/errors"
	"generationscli/pkg/contracts/domain"
)

// Binning describes fixed-width cohorts starting at age 0
type Binning struct {
	Width  int
	MaxAge int
}

// Validate checks that the binning yields at least one cohort
func (b Binning) Validate() error {
	if b.Width <= 0 {
		return apperrors.NewValidationError(fmt.Sprintf("bin width must be positive, got %d", b.Width))
	}
	if b.MaxAge <= b.Width {
		return apperrors.NewValidationError(
			fmt.Sprintf("max age %d must exceed bin width %d", b.MaxAge, b.Width))
	}
	return nil
}

// Edges returns 0, w, 2w, ... for every multiple of w below MaxAge. The
// last edge is the exclusive upper bound of the oldest cohort, so ages at
// or above it fall outside the histogram.
func (b Binning) Edges() []int {
	if b.Width <= 0 {
		return nil
	}
	var edges []int
	for e := 0; e < b.MaxAge; e += b.Width {
		edges = append(edges, e)
	}
	return edges
}

// Histogram counts ages into the half-open cohorts [edges[i], edges[i+1])
// and normalizes the counts to percentages. weights may be nil, in which
// case every age counts once. Ages outside [edges[0], edges[last]) are
// dropped. A histogram with no counted weight has all-zero percentages.
func Histogram(ages []int, edges []int, weights []float64) (domain.CohortHistogram, error) {
	if len(edges) < 2 {
		return domain.CohortHistogram{}, apperrors.NewValidationError(
			fmt.Sprintf("need at least two edges, got %d", len(edges)))
	}
	for i := 1; i < len(edges); i++ {
		if edges[i] <= edges[i-1] {
			return domain.CohortHistogram{}, apperrors.NewValidationError(
				fmt.Sprintf("edges must increase strictly: %v", edges))
		}
	}
	if weights != nil && len(weights) != len(ages) {
		return domain.CohortHistogram{}, apperrors.NewValidationError(
			fmt.Sprintf("got %d weights for %d ages", len(weights), len(ages)))
	}

	counts := make([]float64, len(edges)-1)
	for i, age := range ages {
		idx := cohortIndex(edges, age)
		if idx < 0 {
			continue
		}
		w := 1.0
		if weights != nil {
			w = weights[i]
		}
		counts[idx] += w
	}

	total := floats.Sum(counts)
	percentages := make([]float64, len(counts))
	if total != 0 {
		floats.ScaleTo(percentages, 100/total, counts)
	}

	return domain.CohortHistogram{
		Edges:       append([]int(nil), edges...),
		Counts:      counts,
		Percentages: percentages,
		Total:       total,
	}, nil
}

// cohortIndex returns the cohort holding age, or -1 when it is out of range
func cohortIndex(edges []int, age int) int {
	if age < edges[0] || age >= edges[len(edges)-1] {
		return -1
	}
	// first edge strictly greater than age, minus one
	return sort.SearchInts(edges, age+1) - 1
}
