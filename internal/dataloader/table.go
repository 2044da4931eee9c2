package dataloader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "generationscli/internal/errors"
)

const utf8BOM = "\ufeff"

// Table is a header row plus data rows read from a CSV or XLSX file
type Table struct {
	Path   string
	Header []string
	Rows   [][]string
}

// ReadTable reads path as a table. Files ending in .xlsx are read from
// their first sheet; everything else is parsed as delimited text.
func ReadTable(path string, delimiter rune) (*Table, error) {
	var (
		records [][]string
		err     error
	)
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		records, err = readXLSX(path)
	} else {
		records, err = readCSV(path, delimiter)
	}
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, apperrors.NewLoadError("input has no header row", nil).
			WithContext("path", path)
	}

	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = strings.TrimSpace(h)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	return &Table{
		Path:   path,
		Header: header,
		Rows:   records[1:],
	}, nil
}

func readCSV(path string, delimiter rune) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperrors.NewLoadError("input file not found", err).WithContext("path", path)
		}
		return nil, apperrors.NewLoadError("failed to open input", err).WithContext("path", path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	var records [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, apperrors.NewLoadError("failed to read delimited input", err).
				WithContext("path", path)
		}
		records = append(records, record)
	}
	return records, nil
}

func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewLoadError("failed to open workbook", err).WithContext("path", path)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.NewLoadError("workbook has no sheets", nil).WithContext("path", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, apperrors.NewLoadError("failed to read sheet", err).
			WithContext("path", path).
			WithContext("sheet", sheets[0])
	}
	return rows, nil
}

// Column returns the index of the named header column
func (t *Table) Column(name string) (int, error) {
	for i, h := range t.Header {
		if h == name {
			return i, nil
		}
	}
	return -1, apperrors.NewLoadError(fmt.Sprintf("missing column %q", name), nil).
		WithContext("path", t.Path).
		WithContext("header", t.Header)
}

// Cell returns the trimmed cell at row, col or "" when the row is short
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) {
		return ""
	}
	r := t.Rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return strings.TrimSpace(r[col])
}

// FileLine converts a data row index into the 1-based line of the input,
// counting the header as line 1.
func FileLine(row int) int {
	return row + 2
}
