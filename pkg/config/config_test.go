package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/limbo/snackcheck/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SNACK_TEST_FILE_ONLY=from_file\nSNACK_TEST_PRESET=from_file\n"), 0o600))
	t.Setenv("SNACK_TEST_PRESET", "from_env")
	t.Cleanup(func() { os.Unsetenv("SNACK_TEST_FILE_ONLY") })

	cfg := config.Load(path)
	assert.Equal(t, "from_file", cfg.GetString("SNACK_TEST_FILE_ONLY"))
	assert.Equal(t, "from_env", cfg.GetString("SNACK_TEST_PRESET"))
}

func TestMissingFileIsNotFatal(t *testing.T) {
	cfg := config.Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.NotNil(t, cfg)
}

func TestTypedGetters(t *testing.T) {
	cfg := config.Load()
	t.Setenv("SNACK_INT", "42")
	t.Setenv("SNACK_BAD_INT", "forty")
	t.Setenv("SNACK_BOOL", "true")
	t.Setenv("SNACK_DURATION", "1500ms")
	t.Setenv("SNACK_LIST", " http://a.test , ,http://b.test")
	t.Setenv("SNACK_BLANK", "  ")

	assert.Equal(t, 42, cfg.GetInt("SNACK_INT", 1))
	assert.Equal(t, 1, cfg.GetInt("SNACK_BAD_INT", 1))
	assert.True(t, cfg.GetBool("SNACK_BOOL", false))
	assert.False(t, cfg.GetBool("SNACK_UNSET_BOOL", false))
	assert.Equal(t, 1500*time.Millisecond, cfg.GetDuration("SNACK_DURATION", time.Second))
	assert.Equal(t, time.Second, cfg.GetDuration("SNACK_UNSET_DURATION", time.Second))
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.GetStringSlice("SNACK_LIST", nil))
	assert.Equal(t, []string{"*"}, cfg.GetStringSlice("SNACK_BLANK", []string{"*"}))
	assert.Equal(t, "fallback", cfg.GetStringOr("SNACK_BLANK", "fallback"))
}
