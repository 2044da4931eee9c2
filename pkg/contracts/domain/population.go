package domain

// PopulationBin is the projected population of a single age year,
// summed over the two strata of the projection table.
type PopulationBin struct {
	Age        int     `json:"age"`
	Population float64 `json:"population"`
}

// PopulationTable is the national population by single age year
type PopulationTable []PopulationBin

// Ages returns the age column of the table
func (t PopulationTable) Ages() []int {
	ages := make([]int, len(t))
	for i, b := range t {
		ages[i] = b.Age
	}
	return ages
}

// Weights returns the population column of the table, aligned with Ages
func (t PopulationTable) Weights() []float64 {
	w := make([]float64, len(t))
	for i, b := range t {
		w[i] = b.Population
	}
	return w
}

// Total returns the summed population over all ages
func (t PopulationTable) Total() float64 {
	var total float64
	for _, b := range t {
		total += b.Population
	}
	return total
}

// Dataset bundles the three loaded sources
type Dataset struct {
	Legislature Roster          `json:"legislature"`
	Executive   Roster          `json:"executive"`
	Population  PopulationTable `json:"population"`
}
