package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("AGRIPREDICT_SEED", "")
	t.Setenv("AGRIPREDICT_LOG_FILE", "")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	cmd := newRootCmd(&options{})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEstimate_StoredPrediction(t *testing.T) {
	out, err := runCLI(t, "estimate", "--crop", "Corn", "--region", "Illinois, USA")
	require.NoError(t, err)
	assert.Contains(t, out, "Predicted Yield: 9.8 tons/hectare")
	assert.Contains(t, out, "Soil pH: 6.5")
	assert.Contains(t, out, "Source: stored prediction")
}

func TestEstimate_SeededIsReproducible(t *testing.T) {
	args := []string{"estimate", "--crop", "Cotton", "--region", "Nowhere", "--ph", "6.2", "--seed", "42"}
	first, err := runCLI(t, args...)
	require.NoError(t, err)
	second, err := runCLI(t, args...)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.NotContains(t, first, "stored prediction")
}

func TestEstimate_RejectsInvalidPH(t *testing.T) {
	for _, ph := range []string{"abc", "15", "-1", "NaN"} {
		_, err := runCLI(t, "estimate", "--crop", "Corn", "--region", "Iowa, USA", "--ph="+ph)
		assert.Error(t, err, "ph %q", ph)
	}
}

func TestEstimate_RequiresCrop(t *testing.T) {
	_, err := runCLI(t, "estimate", "--region", "Iowa, USA")
	require.Error(t, err)
	assert.ErrorContains(t, err, "crop")
}

func TestEstimate_WritesLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "agripredict.log")
	_, err := runCLI(t, "estimate", "--crop", "Rice", "--region", "Punjab, India", "--log-file", logPath)
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"estimate"`)
	assert.Contains(t, string(data), `"crop":"Rice"`)
}

func TestLoad_FlagsOverrideConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agripredict.yaml")
	require.NoError(t, os.WriteFile(path, []byte("initial_tab: pest\nseed: 1\ntheme: light\n"), 0o644))
	t.Setenv("AGRIPREDICT_SEED", "")

	opts := &options{}
	cmd := newRootCmd(opts)
	require.NoError(t, cmd.ParseFlags([]string{"--config", path, "--tab", "weather", "--seed", "9"}))

	cfg, err := opts.load(cmd)
	require.NoError(t, err)
	assert.Equal(t, "weather", cfg.InitialTab)
	assert.Equal(t, "light", cfg.Theme)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, uint64(9), *cfg.Seed)
}

func TestLoad_UnsetFlagsKeepConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "agripredict.yaml")
	require.NoError(t, os.WriteFile(path, []byte("initial_tab: pest\nseed: 1\n"), 0o644))
	t.Setenv("AGRIPREDICT_SEED", "")

	opts := &options{}
	cmd := newRootCmd(opts)
	require.NoError(t, cmd.ParseFlags([]string{"--config", path}))

	cfg, err := opts.load(cmd)
	require.NoError(t, err)
	assert.Equal(t, "pest", cfg.InitialTab)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, uint64(1), *cfg.Seed)
}

func TestLoad_InvalidTab(t *testing.T) {
	t.Setenv("AGRIPREDICT_SEED", "")
	opts := &options{}
	cmd := newRootCmd(opts)
	require.NoError(t, cmd.ParseFlags([]string{"--tab", "market"}))
	_, err := opts.load(cmd)
	assert.Error(t, err)
}
