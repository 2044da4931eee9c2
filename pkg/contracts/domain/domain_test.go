package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoster(t *testing.T) {
	roster := Roster{
		{Affiliation: "SPD", BirthYear: 1970, Age: 56},
		{Affiliation: "AfD", BirthYear: 1980, Age: 46},
		{Affiliation: "SPD", BirthYear: 1990, Age: 36},
	}

	assert.Equal(t, []int{56, 46, 36}, roster.Ages())
	assert.Equal(t, []string{"SPD", "AfD"}, roster.Affiliations())

	spd := roster.Filter("SPD")
	assert.Len(t, spd, 2)
	assert.Equal(t, []int{56, 36}, spd.Ages())

	assert.Empty(t, roster.Filter("Die Linke"))
	assert.Empty(t, Roster{}.Ages())
}

func TestPopulationTable(t *testing.T) {
	table := PopulationTable{
		{Age: 0, Population: 190},
		{Age: 1, Population: 210},
	}

	assert.Equal(t, []int{0, 1}, table.Ages())
	assert.Equal(t, []float64{190, 210}, table.Weights())
	assert.InDelta(t, 400.0, table.Total(), 1e-9)
}

func TestCohortHistogram(t *testing.T) {
	h := CohortHistogram{
		Edges:       []int{0, 15, 30},
		Counts:      []float64{1, 3},
		Percentages: []float64{25, 75},
		Total:       4,
	}
	assert.Equal(t, 2, h.Cohorts())
	assert.False(t, h.IsEmpty())

	assert.True(t, CohortHistogram{}.IsEmpty())
}

func TestAgeRange(t *testing.T) {
	assert.True(t, AgeRange{Affiliation: "SPD", Members: 3, Min: 25, Max: 70}.HasMembers())
	assert.False(t, AgeRange{Affiliation: "SPD"}.HasMembers())
}
