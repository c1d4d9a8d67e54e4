package monitor

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pravin157/Flight-Schedule-Optimization/internal/models"
)

func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o644))
}

func TestCheckReportsAvailability(t *testing.T) {
	dir := t.TempDir()
	primary := filepath.Join(dir, "primary.xlsx")
	writeFile(t, primary, 2048)

	m := New(map[string]string{
		"primary":       primary,
		"summary_table": filepath.Join(dir, "summary.xlsx"),
	}, []string{"primary"}, "")

	resp := m.Check()
	assert.Equal(t, StatusOK, resp.Status)
	require.Len(t, resp.Datasets, 2)

	assert.Equal(t, "primary", resp.Datasets[0].Name)
	assert.True(t, resp.Datasets[0].Available)
	assert.Equal(t, int64(2048), resp.Datasets[0].SizeBytes)
	assert.Equal(t, "2.0 kB", resp.Datasets[0].Size)

	assert.Nil(t, resp.Datasets[0].Error)

	assert.Equal(t, "summary_table", resp.Datasets[1].Name)
	assert.False(t, resp.Datasets[1].Available)
	require.NotNil(t, resp.Datasets[1].Error)
	assert.Equal(t, models.ErrorCodeDatasetMissing, resp.Datasets[1].Error.Code)
	assert.Contains(t, resp.Datasets[1].Error.Message, "summary.xlsx")
}

func TestCheckDegradedWhenRequiredMissing(t *testing.T) {
	dir := t.TempDir()
	m := New(map[string]string{"primary": filepath.Join(dir, "missing.xlsx")}, []string{"primary"}, "")

	assert.Equal(t, StatusDegraded, m.Check().Status)
}

func TestDirectoryIsNotAvailable(t *testing.T) {
	dir := t.TempDir()
	m := New(map[string]string{"primary": dir}, []string{"primary"}, "")

	resp := m.Check()
	assert.Equal(t, StatusDegraded, resp.Status)
	assert.False(t, resp.Datasets[0].Available)
	require.NotNil(t, resp.Datasets[0].Error)
	assert.Equal(t, models.ErrorCodeDatasetMissing, resp.Datasets[0].Error.Code)
}

func TestSnapshotChecksLazily(t *testing.T) {
	fixed := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	m := New(map[string]string{}, nil, "")
	m.now = func() time.Time { return fixed }

	snap := m.Snapshot()
	assert.Equal(t, fixed, snap.CheckedAt)
	assert.Equal(t, StatusOK, snap.Status)
}

func TestStartPicksUpNewFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "primary.xlsx")
	m := New(map[string]string{"primary": path}, []string{"primary"}, "@every 1s")

	require.NoError(t, m.Start())
	defer m.Stop()
	assert.Equal(t, StatusDegraded, m.Snapshot().Status)

	writeFile(t, path, 10)
	assert.Eventually(t, func() bool {
		return m.Snapshot().Status == StatusOK
	}, 5*time.Second, 100*time.Millisecond)
}

func TestStartRejectsBadSchedule(t *testing.T) {
	m := New(map[string]string{}, nil, "not a schedule")
	assert.Error(t, m.Start())
}
