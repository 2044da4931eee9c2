package exporter

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"generationscli/pkg/contracts/domain"
)

// AgeRangeHeading is printed above the age range table
const AgeRangeHeading = "Die jeweils jüngsten und ältesten Mitglieder in jeder Fraktion sind:"

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
	labelStyle  = lipgloss.NewStyle().Padding(0, 1)
)

// AgeRangeTable renders one column per party with a "min" and a "max" row
func AgeRangeTable(ranges []domain.AgeRange) string {
	headers := make([]string, 0, len(ranges)+1)
	headers = append(headers, "")
	minRow := []string{"min"}
	maxRow := []string{"max"}

	for _, r := range ranges {
		headers = append(headers, r.Affiliation)
		minRow = append(minRow, formatAge(r, r.Min))
		maxRow = append(maxRow, formatAge(r, r.Max))
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(minRow, maxRow).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return labelStyle
			default:
				return cellStyle
			}
		})

	return t.Render()
}
