package cohort

import (
	"log/slog"

	"generationscli/internal/config"
	"generationscli/pkg/contracts/domain"
)

// Summary holds every histogram of a run. It is computed once by Aggregate
// and read by all compositions.
type Summary struct {
	Binning     Binning
	Edges       []int
	Legislature domain.CohortHistogram
	Parties     []domain.CohortHistogram
	Executive   domain.CohortHistogram
	Population  domain.CohortHistogram
}

// Aggregate computes the legislature, per-party, executive and population
// histograms. Parties are kept in the given order; a party without members
// gets an all-zero histogram. Members of unlisted affiliations still count
// towards the legislature and are reported with a warning.
func Aggregate(ds *domain.Dataset, binning Binning, parties []string, logger *slog.Logger) (*Summary, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := binning.Validate(); err != nil {
		return nil, err
	}
	edges := binning.Edges()

	group := func(name string, ages []int, weights []float64) (domain.CohortHistogram, error) {
		h, err := Histogram(ages, edges, weights)
		if err != nil {
			return h, err
		}
		h.Group = name
		if h.IsEmpty() {
			logger.Warn("Group has no members in range", slog.String("group", name))
		}
		return h, nil
	}

	s := &Summary{Binning: binning, Edges: edges}

	var err error
	if s.Legislature, err = group(config.LegislatureGroup, ds.Legislature.Ages(), nil); err != nil {
		return nil, err
	}

	configured := make(map[string]struct{}, len(parties))
	for _, name := range parties {
		configured[name] = struct{}{}
	}
	for _, name := range ds.Legislature.Affiliations() {
		if _, ok := configured[name]; !ok {
			logger.Warn("Affiliation has no party panel",
				slog.String("affiliation", name),
				slog.Int("members", len(ds.Legislature.Filter(name))))
		}
	}

	s.Parties = make([]domain.CohortHistogram, 0, len(parties))
	for _, name := range parties {
		h, err := group(name, ds.Legislature.Filter(name).Ages(), nil)
		if err != nil {
			return nil, err
		}
		s.Parties = append(s.Parties, h)
	}

	if s.Executive, err = group(config.ExecutiveGroup, ds.Executive.Ages(), nil); err != nil {
		return nil, err
	}
	if s.Population, err = group(config.NationGroup, ds.Population.Ages(), ds.Population.Weights()); err != nil {
		return nil, err
	}

	logger.Info("Aggregated cohort histograms",
		slog.Int("cohorts", len(edges)-1),
		slog.Int("parties", len(s.Parties)),
		slog.Float64("legislature_total", s.Legislature.Total),
		slog.Float64("executive_total", s.Executive.Total))

	return s, nil
}

// Groups returns the legislature followed by every party, in the order the
// parties figure shows them
func (s *Summary) Groups() []domain.CohortHistogram {
	groups := make([]domain.CohortHistogram, 0, len(s.Parties)+1)
	groups = append(groups, s.Legislature)
	return append(groups, s.Parties...)
}

// AgeRanges returns the youngest and oldest member of every party, in the
// given order
func AgeRanges(members domain.Roster, parties []string) []domain.AgeRange {
	ranges := make([]domain.AgeRange, 0, len(parties))
	for _, name := range parties {
		r := domain.AgeRange{Affiliation: name}
		for _, p := range members.Filter(name) {
			if r.Members == 0 || p.Age < r.Min {
				r.Min = p.Age
			}
			if r.Members == 0 || p.Age > r.Max {
				r.Max = p.Age
			}
			r.Members++
		}
		ranges = append(ranges, r)
	}
	return ranges
}
