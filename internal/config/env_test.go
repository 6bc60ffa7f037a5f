package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvDefaults(t *testing.T) {
	for _, key := range []string{"SMASH_LOG_LEVEL", "SMASH_TRACE", "SMASH_COLOR", "SMASH_LINE_MAX"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	env, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, "info", env.LogLevel)
	assert.False(t, env.Trace)
	assert.True(t, env.Color)
	assert.Equal(t, 512, env.LineMax)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SMASH_LOG_LEVEL", "debug")
	t.Setenv("SMASH_TRACE", "true")
	t.Setenv("SMASH_LINE_MAX", "1024")

	env, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, "debug", env.LogLevel)
	assert.True(t, env.Trace)
	assert.Equal(t, 1024, env.LineMax)
}

func TestLoadFileAndMerge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "smash.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: warn\ntrace: true\n"), 0o644))

	fs, err := LoadFile(path)
	require.NoError(t, err)

	env := Env{LogLevel: "info", Trace: false, Color: true, LineMax: 512}
	merged := env.Merge(fs)
	assert.Equal(t, "warn", merged.LogLevel)
	assert.True(t, merged.Trace)
	assert.True(t, merged.Color, "file didn't set color, env value should survive")
}

func TestSlogLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", Env{LogLevel: "debug"}.SlogLevel().String())
	assert.Equal(t, "WARN", Env{LogLevel: "warn"}.SlogLevel().String())
	assert.Equal(t, "ERROR", Env{LogLevel: "error"}.SlogLevel().String())
	assert.Equal(t, "INFO", Env{LogLevel: "unknown"}.SlogLevel().String())
}
