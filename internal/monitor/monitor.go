// Package monitor periodically checks that the dataset files are on disk.
package monitor

import (
	"fmt"
	"log"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/robfig/cron/v3"

	"github.com/pravin157/Flight-Schedule-Optimization/internal/models"
)

// DefaultSchedule checks the datasets once a minute.
const DefaultSchedule = "@every 1m"

const (
	StatusOK       = "ok"
	StatusDegraded = "degraded"
)

// Monitor keeps the latest availability snapshot of a set of files.
type Monitor struct {
	files    map[string]string
	required map[string]bool
	schedule string
	now      func() time.Time

	cronRunner *cron.Cron

	mu       sync.RWMutex
	snapshot models.HealthResponse
}

// New creates a Monitor for files (name → path). A missing file listed in
// required turns the status to degraded.
func New(files map[string]string, required []string, schedule string) *Monitor {
	if schedule == "" {
		schedule = DefaultSchedule
	}
	req := make(map[string]bool, len(required))
	for _, name := range required {
		req[name] = true
	}
	return &Monitor{
		files:    files,
		required: req,
		schedule: schedule,
		now:      time.Now,
		cronRunner: cron.New(
			cron.WithSeconds(),
			cron.WithChain(
				cron.SkipIfStillRunning(cron.DefaultLogger),
				cron.Recover(cron.DefaultLogger),
			),
		),
	}
}

// Start runs a check immediately and then on the configured schedule.
func (m *Monitor) Start() error {
	m.Check()
	entryID, err := m.cronRunner.AddFunc(m.schedule, func() { m.Check() })
	if err != nil {
		return fmt.Errorf("invalid monitor schedule %q: %w", m.schedule, err)
	}
	log.Printf("[Monitor] Dataset checks scheduled (EntryID: %d, Cron: '%s')", entryID, m.schedule)
	m.cronRunner.Start()
	return nil
}

// Stop waits for a running check to finish, up to 5 seconds.
func (m *Monitor) Stop() {
	ctx := m.cronRunner.Stop()
	select {
	case <-ctx.Done():
		log.Println("[Monitor] Stopped.")
	case <-time.After(5 * time.Second):
		log.Println("[Monitor] Shutdown timed out.")
	}
}

// Check stats every file and stores the result.
func (m *Monitor) Check() models.HealthResponse {
	names := make([]string, 0, len(m.files))
	for name := range m.files {
		names = append(names, name)
	}
	sort.Strings(names)

	resp := models.HealthResponse{
		Status:    StatusOK,
		CheckedAt: m.now().UTC(),
		Datasets:  make([]models.DatasetStatus, 0, len(names)),
	}
	for _, name := range names {
		status := models.DatasetStatus{Name: name, Path: m.files[name]}
		info, err := os.Stat(status.Path)
		if err == nil && !info.IsDir() {
			status.Available = true
			status.SizeBytes = info.Size()
			status.Size = humanize.Bytes(uint64(info.Size()))
			status.ModTime = info.ModTime().UTC()
		} else {
			status.Error = &models.APIError{
				Code:    models.ErrorCodeDatasetMissing,
				Message: fmt.Sprintf("Dataset file not found: %s", status.Path),
			}
			if m.required[name] {
				resp.Status = StatusDegraded
				log.Printf("[Monitor] Required dataset %s is unavailable at %s", name, status.Path)
			}
		}
		resp.Datasets = append(resp.Datasets, status)
	}

	m.mu.Lock()
	m.snapshot = resp
	m.mu.Unlock()
	return resp
}

// Snapshot returns the latest check. Before the first check it runs one.
func (m *Monitor) Snapshot() models.HealthResponse {
	m.mu.RLock()
	snap := m.snapshot
	m.mu.RUnlock()
	if snap.CheckedAt.IsZero() {
		return m.Check()
	}
	return snap
}
