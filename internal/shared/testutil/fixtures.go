package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Member is one roster row written by the fixture helpers
type Member struct {
	Affiliation string
	Birth       string
}

// WriteFile writes content below dir and returns the full path
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("create fixture dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write fixture %s: %v", name, err)
	}
	return path
}

// LegislatureCSV renders a legislature roster in the layout of the
// members file: an unnamed index column, then name, party and birth year.
func LegislatureCSV(members []Member) string {
	var b strings.Builder
	b.WriteString(",Name,Party,DOB year\n")
	for i, m := range members {
		fmt.Fprintf(&b, "%d,Member %d,%s,%s\n", i, i, quote(m.Affiliation), m.Birth)
	}
	return b.String()
}

// ExecutiveCSV renders an executive roster with the Partei and DOB columns
func ExecutiveCSV(members []Member) string {
	var b strings.Builder
	b.WriteString("Name,Amt,Partei,DOB\n")
	for i, m := range members {
		fmt.Fprintf(&b, "Minister %d,Ressort %d,%s,%s\n", i, i, quote(m.Affiliation), m.Birth)
	}
	return b.String()
}

// PopulationCSV renders a semicolon separated projection table with
// rows data rows. Row rowA holds strataA and row rowB holds strataB, both
// starting at column firstAgeColumn; every other cell is 1.
func PopulationCSV(rows, rowA, rowB, firstAgeColumn int, strataA, strataB []float64) string {
	ages := len(strataA)
	cols := firstAgeColumn + ages

	var b strings.Builder
	header := make([]string, cols)
	for c := 0; c < firstAgeColumn; c++ {
		header[c] = fmt.Sprintf("Meta%d", c)
	}
	for a := 0; a < ages; a++ {
		header[firstAgeColumn+a] = fmt.Sprintf("Alter %d", a)
	}
	b.WriteString(strings.Join(header, ";"))
	b.WriteString("\n")

	for r := 0; r < rows; r++ {
		cells := make([]string, cols)
		for c := 0; c < firstAgeColumn; c++ {
			cells[c] = fmt.Sprintf("r%d", r)
		}
		for a := 0; a < ages; a++ {
			v := 1.0
			switch r {
			case rowA:
				v = strataA[a]
			case rowB:
				v = strataB[a]
			}
			cells[firstAgeColumn+a] = fmt.Sprintf("%g", v)
		}
		b.WriteString(strings.Join(cells, ";"))
		b.WriteString("\n")
	}
	return b.String()
}

// Uniform returns n copies of v
func Uniform(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func quote(s string) string {
	if strings.ContainsAny(s, ",\"") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}
