package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tpx.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.False(t, cfg.UseAuxOrigin)
	assert.False(t, cfg.Strict)
	assert.Equal(t, "csv", cfg.Output.Format)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
use_aux_origin: true
log:
  level: debug
output:
  format: json
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.UseAuxOrigin)
	assert.False(t, cfg.Strict)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Console, "unset keys keep their default")
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, 2.54, cfg.Clearance.MinMM)

	lc := cfg.Logging("report")
	assert.Equal(t, "debug", lc.Level)
	assert.Equal(t, "report", lc.Component)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "bad yaml", content: "use_aux_origin: [", want: "parse config"},
		{name: "bad level", content: "log:\n  level: loud\n", want: "log.level"},
		{name: "bad format", content: "output:\n  format: xlsx\n", want: "output.format"},
		{name: "negative clearance", content: "clearance:\n  min_mm: -1\n", want: "clearance.min_mm"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorContains(t, err, tt.want)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "not found")
}

func TestLoadFromEnv(t *testing.T) {
	path := writeConfig(t, "strict: true\n")
	t.Setenv(EnvVar, path)

	assert.Equal(t, path, FindPath())
	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.Strict)
}

func TestLoadWithoutFile(t *testing.T) {
	t.Setenv(EnvVar, "")
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
