package dataloader

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"generationscli/internal/config"
	apperrors "generationscli/internal/errors"
	"generationscli/pkg/contracts/domain"
)

// PopulationLayout locates the single-year counts inside the projection
// table. StratumRows are 0-based offsets into the data rows, i.e. the
// header is not counted.
type PopulationLayout struct {
	Delimiter      rune
	StratumRows    [2]int
	FirstAgeColumn int
	Ages           int
}

// LayoutFromConfig converts the population section of the configuration
func LayoutFromConfig(cfg config.PopulationConfig) PopulationLayout {
	layout := PopulationLayout{
		Delimiter:      ';',
		FirstAgeColumn: cfg.FirstAgeColumn,
		Ages:           cfg.Ages,
	}
	if cfg.Delimiter != "" {
		layout.Delimiter = []rune(cfg.Delimiter)[0]
	}
	copy(layout.StratumRows[:], cfg.StratumRows)
	return layout
}

// LoadPopulation reads the projection table and sums the two strata rows
// for every age in [0, layout.Ages).
func (l *Loader) LoadPopulation(path string, layout PopulationLayout) (domain.PopulationTable, error) {
	if layout.Ages <= 0 || layout.FirstAgeColumn < 0 {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("invalid population layout: ages=%d first column=%d", layout.Ages, layout.FirstAgeColumn))
	}

	table, err := ReadTable(path, layout.Delimiter)
	if err != nil {
		return nil, err
	}

	strata := make([][]float64, len(layout.StratumRows))
	for s, row := range layout.StratumRows {
		if row < 0 || row >= len(table.Rows) {
			return nil, apperrors.NewLoadError(
				fmt.Sprintf("population row %d out of range", row), nil).
				WithContext("path", path).
				WithContext("rows", len(table.Rows))
		}
		values, err := readAgeCounts(table, row, layout)
		if err != nil {
			return nil, err
		}
		strata[s] = values
	}

	bins := make(domain.PopulationTable, layout.Ages)
	for age := 0; age < layout.Ages; age++ {
		var total float64
		for _, values := range strata {
			total += values[age]
		}
		bins[age] = domain.PopulationBin{Age: age, Population: total}
	}

	l.logger.Info("Loaded population projection",
		slog.String("path", path),
		slog.Int("ages", len(bins)),
		slog.Float64("total", bins.Total()))

	return bins, nil
}

func readAgeCounts(table *Table, row int, layout PopulationLayout) ([]float64, error) {
	raw := table.Rows[row]
	if len(raw) < layout.FirstAgeColumn+layout.Ages {
		return nil, apperrors.NewLoadError(
			fmt.Sprintf("population row %d has %d columns, need %d",
				row, len(raw), layout.FirstAgeColumn+layout.Ages), nil).
			WithContext("path", table.Path)
	}

	values := make([]float64, layout.Ages)
	for age := range values {
		col := layout.FirstAgeColumn + age
		v, err := parseCount(table.Cell(row, col))
		if err != nil {
			return nil, apperrors.NewParsingError("malformed population count", err).
				WithContext("path", table.Path).
				WithContext("line", FileLine(row)).
				WithContext("column", col)
		}
		values[age] = v
	}
	return values, nil
}

// parseCount accepts both decimal points and decimal commas
func parseCount(cell string) (float64, error) {
	if v, err := strconv.ParseFloat(cell, 64); err == nil {
		return v, nil
	}
	if strings.Contains(cell, ",") && !strings.Contains(cell, ".") {
		return strconv.ParseFloat(strings.Replace(cell, ",", ".", 1), 64)
	}
	return 0, fmt.Errorf("%q is not a number", cell)
}
