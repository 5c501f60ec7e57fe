package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "yield", cfg.InitialTab)
	assert.Equal(t, 3*time.Second, cfg.NoticeDuration)
	assert.Equal(t, 250*time.Millisecond, cfg.ResizeDebounce)
	assert.Equal(t, 100*time.Millisecond, cfg.RedrawDelay)
	assert.Nil(t, cfg.Seed)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agripredict.yaml")
	data := `
initial_tab: weather
seed: 42
theme: notty
notice_duration: 5s
telemetry:
  endpoint: localhost:4318
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "weather", cfg.InitialTab)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, uint64(42), *cfg.Seed)
	assert.Equal(t, "notty", cfg.Theme)
	assert.Equal(t, 5*time.Second, cfg.NoticeDuration)
	assert.Equal(t, "localhost:4318", cfg.Telemetry.Endpoint)
	assert.Equal(t, "agripredict", cfg.Telemetry.ServiceName, "unset keys keep defaults")
}

func TestLoad_RejectsUnknownTab(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agripredict.yaml")
	require.NoError(t, os.WriteFile(path, []byte("initial_tab: harvest\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "initial_tab")
}

func TestLoad_RejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agripredict.yaml")
	require.NoError(t, os.WriteFile(path, []byte("initial_tab: [\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"AGRIPREDICT_SEED":            "7",
		"AGRIPREDICT_LOG_FILE":        "/tmp/agri.log",
		"OTEL_EXPORTER_OTLP_ENDPOINT": "collector:4318",
		"OTEL_SERVICE_NAME":           "agri-demo",
	}
	cfg := Default()
	require.NoError(t, cfg.applyEnv(func(k string) string { return env[k] }))
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, uint64(7), *cfg.Seed)
	assert.Equal(t, "/tmp/agri.log", cfg.LogFile)
	assert.Equal(t, "collector:4318", cfg.Telemetry.Endpoint)
	assert.Equal(t, "agri-demo", cfg.Telemetry.ServiceName)
}

func TestApplyEnv_BadSeed(t *testing.T) {
	cfg := Default()
	err := cfg.applyEnv(func(k string) string {
		if k == "AGRIPREDICT_SEED" {
			return "-1"
		}
		return ""
	})
	assert.Error(t, err)
}

func TestValidate_Durations(t *testing.T) {
	cfg := Default()
	cfg.RedrawDelay = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Theme = "neon"
	assert.Error(t, cfg.Validate())
}
