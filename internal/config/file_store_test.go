package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/former/internal/platform"
)

func TestFileStoreMissingFileStartsEmpty(t *testing.T) {
	store, err := OpenFileStore(filepath.Join(t.TempDir(), "none.toml"), nil)
	require.NoError(t, err)

	assert.Empty(t, store.Keys())
	assert.Equal(t, "", store.String("x"))
	assert.Zero(t, store.Int("x"))
	assert.True(t, store.BoolWithFallback("x", true))
}

func TestFileStoreReadsTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFileName)
	content := "host = \"tui\"\ndefault_cell_height = 48\nkeyboard_avoidance = false\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	store, err := OpenFileStore(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "tui", store.String(KeyHost))
	assert.Equal(t, 48, store.Int(KeyDefaultCellHeight))
	assert.False(t, store.BoolWithFallback(KeyKeyboardAvoidance, true))
	assert.Equal(t, []string{KeyDefaultCellHeight, KeyHost, KeyKeyboardAvoidance}, store.Keys())
	assert.Equal(t, path, store.Path())
}

func TestFileStoreRejectsInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), SettingsFileName)
	require.NoError(t, os.WriteFile(path, []byte("host = = tui"), 0o644))

	_, err := OpenFileStore(path, nil)
	assert.Error(t, err)
}

func TestFileStoreWritesOnSet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dir", SettingsFileName)
	store, err := OpenFileStore(path, nil)
	require.NoError(t, err)

	store.SetString(KeyRowAnimation, "fade")
	store.SetInt(KeyDefaultCellHeight, 30)
	store.SetBool(KeyDebugLogging, true)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `row_animation = "fade"`)
	assert.Contains(t, string(data), "default_cell_height = 30")
	assert.Contains(t, string(data), "debug_logging = true")
	assert.NoError(t, store.Save())
}

func TestOpenDefaultFileStore(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(platform.EnvConfigDir, dir)

	store, err := OpenDefaultFileStore(nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, SettingsFileName), store.Path())
}
