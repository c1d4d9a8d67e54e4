// Package datapaths resolves the spreadsheet datasets relative to a project root.
package datapaths

import (
	"os"
	"path/filepath"
)

// Default dataset file names inside the data directory.
const (
	DefaultDataDirName             = "Data"
	PrimaryFileName                = "Chennai_FlightData_Processed.xlsx"
	CascadingDelaysFileName        = "cascading_delays.xlsx"
	WeatherCascadingDelaysFileName = "weather_cascading_delays.xlsx"
	FlightSummaryByHourFileName    = "Flight_Summary_By_Hour.xlsx"
	SummaryTableFileName           = "summary_table.xlsx"
)

// Paths is an immutable set of dataset locations. Build it once at startup.
type Paths struct {
	Root    string
	DataDir string

	primary   string
	cascading string
}

// Options overrides parts of the default layout. Empty fields keep defaults.
type Options struct {
	Root                string
	DataDir             string
	PrimaryFile         string
	CascadingDelaysFile string
}

// New resolves the layout. A relative Root is resolved against the working
// directory; a relative DataDir or file name is resolved against Root or
// DataDir respectively.
func New(opts Options) (Paths, error) {
	root := opts.Root
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return Paths{}, err
		}
		root = wd
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return Paths{}, err
	}

	dataDir := opts.DataDir
	if dataDir == "" {
		dataDir = DefaultDataDirName
	}
	if !filepath.IsAbs(dataDir) {
		dataDir = filepath.Join(root, dataDir)
	}

	p := Paths{Root: root, DataDir: filepath.Clean(dataDir)}
	p.primary = p.resolve(opts.PrimaryFile, PrimaryFileName)
	p.cascading = p.resolve(opts.CascadingDelaysFile, CascadingDelaysFileName)
	return p, nil
}

func (p Paths) resolve(name, fallback string) string {
	if name == "" {
		name = fallback
	}
	if filepath.IsAbs(name) {
		return name
	}
	return p.Path(name)
}

// Path returns a file inside the data directory.
func (p Paths) Path(filename string) string {
	return filepath.Join(p.DataDir, filename)
}

// PrimaryFile is the detailed per-flight dataset.
func (p Paths) PrimaryFile() string { return p.primary }

// CascadingDelaysFile is the precomputed cascading-delay dataset.
func (p Paths) CascadingDelaysFile() string { return p.cascading }

func (p Paths) WeatherCascadingDelaysFile() string {
	return p.Path(WeatherCascadingDelaysFileName)
}

func (p Paths) FlightSummaryByHourFile() string {
	return p.Path(FlightSummaryByHourFileName)
}

func (p Paths) SummaryTableFile() string {
	return p.Path(SummaryTableFileName)
}

// All lists every known dataset keyed by a short name. Used by the monitor.
func (p Paths) All() map[string]string {
	return map[string]string{
		"primary":                  p.PrimaryFile(),
		"cascading_delays":         p.CascadingDelaysFile(),
		"weather_cascading_delays": p.WeatherCascadingDelaysFile(),
		"flight_summary_by_hour":   p.FlightSummaryByHourFile(),
		"summary_table":            p.SummaryTableFile(),
	}
}
