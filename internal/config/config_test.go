package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exascience/maxsub"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "maxsub.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, int64(-100), cfg.Data.Low)
	assert.Equal(t, int64(100), cfg.Data.High)
	assert.Equal(t, maxsub.DefaultChunks(), cfg.EffectiveChunks())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
data:
  file: data.txt
  size: 1000
  seed: 17
solver:
  chunks: 8
  runs: 3
log:
  level: debug
  format: json
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "data.txt", cfg.Data.File)
	assert.Equal(t, 1000, cfg.Data.Size)
	assert.Equal(t, int64(17), cfg.Data.Seed)
	assert.Equal(t, int64(-100), cfg.Data.Low)
	assert.Equal(t, 8, cfg.EffectiveChunks())
	assert.Equal(t, 3, cfg.Solver.Runs)
	assert.Equal(t, "result.txt", cfg.Report.File)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeConfig(t, "data: [1, 2"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "solver:\n  runs: many\n"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tcs := []struct {
		name   string
		modify func(*Config)
	}{
		{"negative size", func(c *Config) { c.Data.Size = -1 }},
		{"inverted bounds", func(c *Config) { c.Data.Low, c.Data.High = 5, -5 }},
		{"negative chunks", func(c *Config) { c.Solver.Chunks = -2 }},
		{"no runs", func(c *Config) { c.Solver.Runs = 0 }},
		{"log level", func(c *Config) { c.Log.Level = "loud" }},
		{"log format", func(c *Config) { c.Log.Format = "xml" }},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.modify(&cfg)
			assert.Error(t, cfg.Validate())
			assert.Error(t, cfg.ValidateGenerate())
		})
	}
}

func TestValidateOverflowRisk(t *testing.T) {
	cfg := Default()
	cfg.Data.Low, cfg.Data.High = -1<<40, 1<<40
	cfg.Data.Size = 1 << 30
	assert.NoError(t, cfg.Validate())
	var overflow *maxsub.OverflowError
	assert.ErrorAs(t, cfg.ValidateGenerate(), &overflow)
}

func TestValidateGenerate(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.ValidateGenerate())
	cfg.Solver.Runs = 0
	assert.Error(t, cfg.ValidateGenerate())
}
