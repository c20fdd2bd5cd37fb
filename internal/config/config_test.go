package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/willibrandon/pgprobe/internal/config"
	"github.com/willibrandon/pgprobe/internal/conninfo"
)

// isolate points HOME and the working directory at a fresh temp dir so tests
// never pick up a developer's real config file.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(old) })
	return dir
}

func writeConfig(t *testing.T, dir string, doc map[string]any) {
	t.Helper()
	data, err := yaml.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), data, 0644))
}

// TestLoad_NoConfigFile verifies a bare environment yields an entirely empty
// specification, leaving all defaulting to the client library.
func TestLoad_NoConfigFile(t *testing.T) {
	isolate(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.False(t, cfg.Debug)
	assert.Empty(t, cfg.LogPath)
	assert.Equal(t, conninfo.Spec{}, cfg.Seed())
	assert.Empty(t, cfg.Seed().ConnString())
}

func TestLoad_FromFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, map[string]any{
		"connection": map[string]any{
			"host":     "db.internal",
			"port":     "5433",
			"database": "sales",
			"user":     " alice ", // trimmed on the way into the Spec
			"timeout":  "5",
		},
		"debug":    true,
		"log_path": filepath.Join(dir, "probe.log"),
	})

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, filepath.Join(dir, "probe.log"), cfg.LogPath)

	want := conninfo.Spec{
		Database: "sales",
		User:     "alice",
		Host:     "db.internal",
		Port:     "5433",
		Timeout:  "5",
	}
	assert.Equal(t, want, cfg.Seed())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, map[string]any{
		"connection": map[string]any{"host": "file.internal"},
	})
	t.Setenv("PGPROBE_CONNECTION_HOST", "env.internal")
	t.Setenv("PGPROBE_CONNECTION_USER", "envuser")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "env.internal", cfg.Connection.Host)
	assert.Equal(t, "envuser", cfg.Connection.User)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		conn    config.ConnectionConfig
		wantErr bool
	}{
		{"empty config", config.ConnectionConfig{}, false},
		{"numeric port in range", config.ConnectionConfig{Port: "5433"}, false},
		{"service-name port passes through", config.ConnectionConfig{Port: "postgresql"}, false},
		{"port too large", config.ConnectionConfig{Port: "70000"}, true},
		{"port zero", config.ConnectionConfig{Port: "0"}, true},
		{"numeric timeout", config.ConnectionConfig{Timeout: "10"}, false},
		{"negative timeout", config.ConnectionConfig{Timeout: "-1"}, true},
		{"non-numeric timeout", config.ConnectionConfig{Timeout: "soon"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := config.Validate(&config.Config{Connection: tt.conn})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
