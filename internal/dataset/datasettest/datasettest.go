// Package datasettest writes small spreadsheet fixtures for tests.
package datasettest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/pravin157/Flight-Schedule-Optimization/internal/datapaths"
	"github.com/pravin157/Flight-Schedule-Optimization/internal/dataset"
)

// FlightHeader is the column layout of the primary dataset.
var FlightHeader = []interface{}{
	dataset.ColFlightID,
	dataset.ColHourOfDay,
	dataset.ColArrivalDelay,
	dataset.ColRunway,
	dataset.ColDelayReason,
}

// CascadeHeader is the column layout of the cascading-delay dataset.
var CascadeHeader = []interface{}{
	dataset.ColFlightID,
	dataset.ColArrivalDelay,
	dataset.ColCausesCascade,
}

// Flight is a convenience row for the primary dataset. A nil Delay leaves the
// cell blank.
type Flight struct {
	ID     string
	Hour   int
	Delay  *float64
	Runway string
	Reason string
}

// Cascade is a convenience row for the cascading-delay dataset.
type Cascade struct {
	ID     string
	Delay  float64
	Causes bool
}

// Delay returns a pointer to d.
func Delay(d float64) *float64 { return &d }

// WriteSheet writes header and rows to path as the first sheet of a new workbook.
func WriteSheet(t testing.TB, path string, header []interface{}, rows [][]interface{}) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		t.Fatalf("failed to write header: %v", err)
	}
	for i, row := range rows {
		row := row
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			t.Fatalf("failed to compute cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("failed to write row %d: %v", i, err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save workbook %s: %v", path, err)
	}
}

// WriteFlights writes a primary dataset to path.
func WriteFlights(t testing.TB, path string, flights []Flight) {
	t.Helper()
	rows := make([][]interface{}, 0, len(flights))
	for _, fl := range flights {
		var delay interface{}
		if fl.Delay != nil {
			delay = *fl.Delay
		}
		rows = append(rows, []interface{}{fl.ID, fl.Hour, delay, fl.Runway, fl.Reason})
	}
	WriteSheet(t, path, FlightHeader, rows)
}

// WriteCascades writes a cascading-delay dataset to path.
func WriteCascades(t testing.TB, path string, cascades []Cascade) {
	t.Helper()
	rows := make([][]interface{}, 0, len(cascades))
	for _, c := range cascades {
		rows = append(rows, []interface{}{c.ID, c.Delay, c.Causes})
	}
	WriteSheet(t, path, CascadeHeader, rows)
}

// DataDir creates a "Data" directory layout under a fresh temp root and
// returns the root.
func DataDir(t testing.TB, flights []Flight, cascades []Cascade) string {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, datapaths.DefaultDataDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("failed to create data dir: %v", err)
	}
	if flights != nil {
		WriteFlights(t, filepath.Join(dir, datapaths.PrimaryFileName), flights)
	}
	if cascades != nil {
		WriteCascades(t, filepath.Join(dir, datapaths.CascadingDelaysFileName), cascades)
	}
	return root
}
