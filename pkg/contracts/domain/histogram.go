package domain

// CohortHistogram is a normalized age histogram over fixed-width cohorts.
// Edges holds the lower bound of every cohort followed by the exclusive
// upper bound of the last one, so len(Percentages) == len(Edges)-1.
type CohortHistogram struct {
	Group       string    `json:"group"`
	Edges       []int     `json:"edges"`
	Counts      []float64 `json:"counts"`
	Percentages []float64 `json:"percentages"`
	Total       float64   `json:"total"`
}

// Cohorts returns the number of cohorts in the histogram
func (h CohortHistogram) Cohorts() int {
	return len(h.Percentages)
}

// IsEmpty reports whether no value fell into any cohort
func (h CohortHistogram) IsEmpty() bool {
	return h.Total == 0
}

// AgeRange is the youngest and oldest member of one affiliation
type AgeRange struct {
	Affiliation string `json:"affiliation"`
	Members     int    `json:"members"`
	Min         int    `json:"min"`
	Max         int    `json:"max"`
}

// HasMembers reports whether the range was computed from at least one record
func (r AgeRange) HasMembers() bool {
	return r.Members > 0
}
