package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every key Load reads so the host environment does not leak
// into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "GIN_MODE", "MONITOR_SCHEDULE", "OLLAMA_URL", "LLM_MODEL",
		"LLM_SYSTEM_PROMPT", "LLM_TIMEOUT", "LLM_RETRIES", "PROJECT_ROOT",
		"DATA_DIR", "PRIMARY_DATA_FILE", "CASCADING_DELAYS_FILE", "DB_DRIVER",
		"DB_DSN", "NATS_URL", "NATS_SUBJECT", "CONFIG_FILE",
	} {
		if prev, ok := os.LookupEnv(key); ok {
			os.Unsetenv(key)
			t.Cleanup(func() { os.Setenv(key, prev) })
		}
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(prev) })
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
	assert.Equal(t, "http://localhost:11434/api/generate", cfg.LLM.URL)
	assert.Equal(t, 60*time.Second, cfg.LLM.Timeout)
}

func TestLoadFileThenEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	chdir(t, dir)

	path := filepath.Join(dir, "assistant.yaml")
	yaml := `
port: "8080"
llm:
  model: flight-assistant-v2
  timeout: 15s
  retries: 3
data:
  project_root: /srv/flights
database:
  driver: postgres
  dsn: host=db user=app dbname=flights
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	t.Setenv("PORT", "9090")
	t.Setenv("LLM_TIMEOUT", "5s")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "flight-assistant-v2", cfg.LLM.Model)
	assert.Equal(t, 5*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 3, cfg.LLM.Retries)
	assert.Equal(t, "/srv/flights", cfg.Data.ProjectRoot)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "http://localhost:11434/api/generate", cfg.LLM.URL)
}

func TestLoadReadsDotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LLM_MODEL=llama3\nNATS_URL=nats://localhost:4222\n"), 0o644))
	t.Cleanup(func() {
		os.Unsetenv("LLM_MODEL")
		os.Unsetenv("NATS_URL")
	})

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "llama3", cfg.LLM.Model)
	assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"bad timeout", "LLM_TIMEOUT", "soon"},
		{"negative timeout", "LLM_TIMEOUT", "-1s"},
		{"bad retries", "LLM_RETRIES", "twice"},
		{"unknown driver", "DB_DRIVER", "mysql"},
		{"unknown gin mode", "GIN_MODE", "verbose"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			chdir(t, t.TempDir())
			t.Setenv(tt.key, tt.val)

			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())
	_, err := Load("does-not-exist.yaml")
	assert.Error(t, err)
}
