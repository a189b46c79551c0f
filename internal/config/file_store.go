package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"

	"github.com/ytget/former/internal/platform"
)

// SettingsFileName is the name of the settings file inside the config directory
const SettingsFileName = "settings.toml"

// FileStore is a Store persisted as a flat TOML table. Every setter writes the
// file; write failures are logged since Store setters cannot return errors.
type FileStore struct {
	path   string
	mu     sync.Mutex
	values map[string]interface{}
	log    *logrus.Entry
}

// OpenFileStore loads path if it exists, or starts empty
func OpenFileStore(path string, log *logrus.Entry) (*FileStore, error) {
	if log == nil {
		log = logrus.StandardLogger().WithField("component", "config")
	}
	fs := &FileStore{path: path, values: make(map[string]interface{}), log: log}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return fs, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
	}
	if _, err := toml.Decode(string(data), &fs.values); err != nil {
		return nil, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}
	return fs, nil
}

// OpenDefaultFileStore opens settings.toml in the platform config directory
func OpenDefaultFileStore(log *logrus.Entry) (*FileStore, error) {
	dir, err := platform.ConfigDir()
	if err != nil {
		return nil, err
	}
	return OpenFileStore(filepath.Join(dir, SettingsFileName), log)
}

// Path returns the settings file path
func (fs *FileStore) Path() string {
	return fs.path
}

// String returns the string stored under key, or ""
func (fs *FileStore) String(key string) string {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if v, ok := fs.values[key].(string); ok {
		return v
	}
	return ""
}

// SetString stores a string
func (fs *FileStore) SetString(key string, value string) {
	fs.set(key, value)
}

// Int returns the integer stored under key, or 0
func (fs *FileStore) Int(key string) int {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	switch v := fs.values[key].(type) {
	case int64:
		return int(v)
	case int:
		return v
	case float64:
		return int(v)
	default:
		return 0
	}
}

// SetInt stores an integer
func (fs *FileStore) SetInt(key string, value int) {
	fs.set(key, int64(value))
}

// BoolWithFallback returns the bool stored under key, or fallback
func (fs *FileStore) BoolWithFallback(key string, fallback bool) bool {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if v, ok := fs.values[key].(bool); ok {
		return v
	}
	return fallback
}

// SetBool stores a bool
func (fs *FileStore) SetBool(key string, value bool) {
	fs.set(key, value)
}

// Keys returns the stored keys in sorted order
func (fs *FileStore) Keys() []string {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	keys := make([]string, 0, len(fs.values))
	for k := range fs.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Save writes the settings file, creating its directory
func (fs *FileStore) Save() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.saveLocked()
}

func (fs *FileStore) set(key string, value interface{}) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.values[key] = value
	if err := fs.saveLocked(); err != nil {
		fs.log.WithError(err).WithField("key", key).Warn("Failed to save settings")
	}
}

func (fs *FileStore) saveLocked() error {
	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(fs.path)); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(fs.values); err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := os.WriteFile(fs.path, buf.Bytes(), platform.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write settings %s: %w", fs.path, err)
	}
	return nil
}
