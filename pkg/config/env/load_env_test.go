package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("FUZZY_STEPS=250\nLOG_LEVEL=debug\n"), 0o600))

	t.Run("explicit path", func(t *testing.T) {
		t.Setenv("ENV_PATH", path)
		t.Setenv("FUZZY_STEPS", "")
		os.Unsetenv("FUZZY_STEPS")

		require.NoError(t, LoadDotEnv("does-not-exist.env", true))
		assert.Equal(t, "250", os.Getenv("FUZZY_STEPS"))
	})

	t.Run("environment wins", func(t *testing.T) {
		t.Setenv("ENV_PATH", "")
		t.Setenv("LOG_LEVEL", "error")

		require.NoError(t, LoadDotEnv(path, true))
		assert.Equal(t, "error", os.Getenv("LOG_LEVEL"))
	})

	t.Run("missing optional file", func(t *testing.T) {
		t.Setenv("ENV_PATH", "")
		assert.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env"), false))
	})

	t.Run("missing required file", func(t *testing.T) {
		t.Setenv("ENV_PATH", "")
		assert.Error(t, LoadDotEnv(filepath.Join(dir, "missing.env"), true))
	})
}
