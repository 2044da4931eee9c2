package domain

// Source identifies the roster a person record was loaded from
type Source string

const (
	SourceLegislature Source = "legislature"
	SourceExecutive   Source = "executive"
)

// PersonRecord is one member of the legislature or the executive branch.
// Records are immutable once loaded.
type PersonRecord struct {
	Affiliation string `json:"affiliation"`
	BirthYear   int    `json:"birth_year"`
	Age         int    `json:"age"`
	Source      Source `json:"source"`
}

// Roster is an ordered list of person records from one source
type Roster []PersonRecord

// Ages returns the age of every record in roster order
func (r Roster) Ages() []int {
	ages := make([]int, len(r))
	for i, p := range r {
		ages[i] = p.Age
	}
	return ages
}

// Filter returns the records whose affiliation equals the given name
func (r Roster) Filter(affiliation string) Roster {
	var out Roster
	for _, p := range r {
		if p.Affiliation == affiliation {
			out = append(out, p)
		}
	}
	return out
}

// Affiliations returns the distinct affiliations in order of first appearance
func (r Roster) Affiliations() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range r {
		if _, ok := seen[p.Affiliation]; ok {
			continue
		}
		seen[p.Affiliation] = struct{}{}
		out = append(out, p.Affiliation)
	}
	return out
}
