package dataloader

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"generationscli/internal/config"
	apperrors "generationscli/internal/errors"
	"generationscli/pkg/contracts/domain"
)

// RosterColumns names the two columns a roster must carry
type RosterColumns struct {
	Birth       string
	Affiliation string
}

var (
	legislatureColumns = RosterColumns{
		Birth:       config.LegislatureBirthColumn,
		Affiliation: config.LegislatureAffiliationColumn,
	}
	executiveColumns = RosterColumns{
		Birth:       config.ExecutiveBirthColumn,
		Affiliation: config.ExecutiveAffiliationColumn,
	}
)

// MinBirthYear is the earliest birth year accepted in a roster
const MinBirthYear = 1800

// yearPattern matches a four digit year, optionally written as a float
// ("1965.0") by spreadsheet exports
var yearPattern = regexp.MustCompile(`^(\d{4})(?:\.0+)?$`)

// birthDateLayouts are tried in order when a birth cell is not a bare year
var birthDateLayouts = []string{
	"2006-01-02",
	"02.01.2006",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// Loader reads the report inputs. Ages are computed against Now at year
// granularity.
type Loader struct {
	Now       func() time.Time
	Delimiter rune
	logger    *slog.Logger
}

// NewLoader creates a loader using the wall clock and comma separated rosters
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		Now:       time.Now,
		Delimiter: ',',
		logger:    logger,
	}
}

// LoadLegislature reads the legislature roster (columns "DOB year" and "Party")
func (l *Loader) LoadLegislature(path string) (domain.Roster, error) {
	return l.loadRoster(path, legislatureColumns, domain.SourceLegislature)
}

// LoadExecutive reads the executive roster (columns "DOB" and "Partei")
func (l *Loader) LoadExecutive(path string) (domain.Roster, error) {
	return l.loadRoster(path, executiveColumns, domain.SourceExecutive)
}

func (l *Loader) loadRoster(path string, cols RosterColumns, source domain.Source) (domain.Roster, error) {
	table, err := ReadTable(path, l.Delimiter)
	if err != nil {
		return nil, err
	}

	birthCol, err := table.Column(cols.Birth)
	if err != nil {
		return nil, err
	}
	affCol, err := table.Column(cols.Affiliation)
	if err != nil {
		return nil, err
	}

	currentYear := l.Now().Year()
	roster := make(domain.Roster, 0, len(table.Rows))
	skipped := 0

	for i := range table.Rows {
		cell := table.Cell(i, birthCol)
		if cell == "" {
			skipped++
			l.logger.Warn("Skipping record without birth date",
				slog.String("path", path),
				slog.Int("line", FileLine(i)))
			continue
		}

		year, err := ParseBirthYear(cell)
		if err != nil {
			return nil, apperrors.NewParsingError(
				fmt.Sprintf("malformed birth date %q", cell), err).
				WithContext("path", path).
				WithContext("line", FileLine(i)).
				WithContext("column", cols.Birth)
		}
		if year < MinBirthYear || year > currentYear {
			return nil, apperrors.NewParsingError(
				fmt.Sprintf("birth year %d outside %d..%d", year, MinBirthYear, currentYear), nil).
				WithContext("path", path).
				WithContext("line", FileLine(i)).
				WithContext("column", cols.Birth)
		}

		roster = append(roster, domain.PersonRecord{
			Affiliation: table.Cell(i, affCol),
			BirthYear:   year,
			Age:         currentYear - year,
			Source:      source,
		})
	}

	l.logger.Info("Loaded roster",
		slog.String("source", string(source)),
		slog.String("path", path),
		slog.Int("records", len(roster)),
		slog.Int("skipped", skipped))

	return roster, nil
}

// ParseBirthYear reads a birth cell holding either a four digit year
// ("1965", "1965.0") or a date in one of the supported layouts.
func ParseBirthYear(cell string) (int, error) {
	s := strings.TrimSpace(cell)

	if m := yearPattern.FindStringSubmatch(s); m != nil {
		return strconv.Atoi(m[1])
	}
	for _, layout := range birthDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Year(), nil
		}
	}
	return 0, fmt.Errorf("%q is neither a year nor a supported date", s)
}
