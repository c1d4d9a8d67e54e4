package datapaths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	root := t.TempDir()
	p, err := New(Options{Root: root})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "Data"), p.DataDir)
	assert.Equal(t, filepath.Join(root, "Data", PrimaryFileName), p.PrimaryFile())
	assert.Equal(t, filepath.Join(root, "Data", CascadingDelaysFileName), p.CascadingDelaysFile())
	assert.Equal(t, filepath.Join(root, "Data", "extra.xlsx"), p.Path("extra.xlsx"))
}

func TestNewOverrides(t *testing.T) {
	root := t.TempDir()
	abs := filepath.Join(t.TempDir(), "cascade.xlsx")

	p, err := New(Options{
		Root:                root,
		DataDir:             "datasets",
		PrimaryFile:         "flights.xlsx",
		CascadingDelaysFile: abs,
	})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "datasets"), p.DataDir)
	assert.Equal(t, filepath.Join(root, "datasets", "flights.xlsx"), p.PrimaryFile())
	assert.Equal(t, abs, p.CascadingDelaysFile())
}

func TestAllListsEveryDataset(t *testing.T) {
	p, err := New(Options{Root: t.TempDir()})
	require.NoError(t, err)

	all := p.All()
	assert.Len(t, all, 5)
	assert.Equal(t, p.SummaryTableFile(), all["summary_table"])
	assert.Equal(t, p.WeatherCascadingDelaysFile(), all["weather_cascading_delays"])
	assert.Equal(t, p.FlightSummaryByHourFile(), all["flight_summary_by_hour"])
}
