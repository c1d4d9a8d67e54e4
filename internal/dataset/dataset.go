// Package dataset reads the flight spreadsheets into typed records.
//
// Only the first sheet of a workbook is read and row 1 is treated as the
// header. Columns are located by exact header name; their presence is checked
// by the caller through Require, so a query only fails on the columns it uses.
package dataset

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Column names used by the datasets.
const (
	ColFlightID      = "Flight_ID"
	ColHourOfDay     = "Hour_of_Day"
	ColArrivalDelay  = "Arrival_Delay_Minutes"
	ColRunway        = "Runway"
	ColDelayReason   = "Delay_Reason"
	ColCausesCascade = "Causes_Cascade"
)

// ErrFileNotFound is returned (wrapped) when a dataset file does not exist.
var ErrFileNotFound = errors.New("data file not found")

// ColumnError reports required columns missing from a sheet.
type ColumnError struct {
	File    string
	Missing []string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("%s: missing column(s) %s", e.File, strings.Join(e.Missing, ", "))
}

// FlightRecord is one row of the primary dataset. Has* flags are false for
// blank or unparseable cells.
type FlightRecord struct {
	FlightID            string
	Hour                int
	HasHour             bool
	ArrivalDelayMinutes float64
	HasDelay            bool
	Runway              string
	DelayReason         string
}

// CascadeRecord is one row of the cascading-delay dataset.
type CascadeRecord struct {
	FlightID            string
	ArrivalDelayMinutes float64
	HasDelay            bool
	CausesCascade       bool
}

// sheet is the header-indexed content of a workbook's first sheet.
type sheet struct {
	file    string
	columns map[string]int
	rows    [][]string
}

// Require returns a *ColumnError if any of names is absent from the header.
func (s *sheet) Require(names ...string) error {
	var missing []string
	for _, n := range names {
		if _, ok := s.columns[n]; !ok {
			missing = append(missing, n)
		}
	}
	if len(missing) > 0 {
		return &ColumnError{File: s.file, Missing: missing}
	}
	return nil
}

func (s *sheet) cell(row []string, name string) string {
	idx, ok := s.columns[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func readSheet(path string) (*sheet, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q of %s: %w", sheets[0], path, err)
	}

	s := &sheet{file: path, columns: make(map[string]int)}
	if len(rows) == 0 {
		return s, nil
	}
	for i, name := range rows[0] {
		name = strings.TrimSpace(name)
		if _, dup := s.columns[name]; name != "" && !dup {
			s.columns[name] = i
		}
	}
	s.rows = rows[1:]
	return s, nil
}

// FlightTable holds the primary dataset.
type FlightTable struct {
	*sheet
	Records []FlightRecord
}

// LoadFlights reads the primary dataset.
func LoadFlights(path string) (*FlightTable, error) {
	s, err := readSheet(path)
	if err != nil {
		return nil, err
	}
	t := &FlightTable{sheet: s, Records: make([]FlightRecord, 0, len(s.rows))}
	for _, row := range s.rows {
		if isBlankRow(row) {
			continue
		}
		rec := FlightRecord{
			FlightID:    s.cell(row, ColFlightID),
			Runway:      s.cell(row, ColRunway),
			DelayReason: s.cell(row, ColDelayReason),
		}
		rec.Hour, rec.HasHour = parseInt(s.cell(row, ColHourOfDay))
		rec.ArrivalDelayMinutes, rec.HasDelay = parseFloat(s.cell(row, ColArrivalDelay))
		t.Records = append(t.Records, rec)
	}
	return t, nil
}

// CascadeTable holds the cascading-delay dataset.
type CascadeTable struct {
	*sheet
	Records []CascadeRecord
}

// LoadCascades reads the cascading-delay dataset.
func LoadCascades(path string) (*CascadeTable, error) {
	s, err := readSheet(path)
	if err != nil {
		return nil, err
	}
	t := &CascadeTable{sheet: s, Records: make([]CascadeRecord, 0, len(s.rows))}
	for _, row := range s.rows {
		if isBlankRow(row) {
			continue
		}
		rec := CascadeRecord{
			FlightID:      s.cell(row, ColFlightID),
			CausesCascade: parseBool(s.cell(row, ColCausesCascade)),
		}
		rec.ArrivalDelayMinutes, rec.HasDelay = parseFloat(s.cell(row, ColArrivalDelay))
		t.Records = append(t.Records, rec)
	}
	return t, nil
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func parseFloat(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseInt accepts integral floats ("14.0") as written by some exporters.
func parseInt(s string) (int, bool) {
	v, ok := parseFloat(s)
	if !ok || v != float64(int(v)) {
		return 0, false
	}
	return int(v), true
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "1", "true", "t", "yes", "y":
		return true
	}
	return false
}
