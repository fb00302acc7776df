package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vedux98/UX-Audit/internal/audit"
)

// Store is a persistent key-value store. Values are opaque strings; the
// audit core stores its settings snapshot as JSON under a single key.
type Store interface {
	// Get returns the value for key and whether it exists.
	Get(key string) (string, bool, error)
	// Set writes the value for key.
	Set(key, value string) error
}

// SettingsKey is the store key holding the settings snapshot.
const SettingsKey = "settings"

// FileStore persists keys as one JSON object in a file, created lazily on
// first write.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by the given file.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath returns the settings file location under the user config dir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("settings path: %w", err)
	}
	return filepath.Join(dir, "uxaudit", "settings.json"), nil
}

// Path returns the backing file location.
func (s *FileStore) Path() string { return s.path }

func (s *FileStore) load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read store: %w", err)
	}
	values := map[string]string{}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("read store %s: %w", s.path, err)
	}
	return values, nil
}

// Get returns the stored value for key.
func (s *FileStore) Get(key string) (string, bool, error) {
	values, err := s.load()
	if err != nil {
		return "", false, err
	}
	v, ok := values[key]
	return v, ok, nil
}

// Set writes the value for key, creating the file and its directory on
// first use.
func (s *FileStore) Set(key, value string) error {
	values, err := s.load()
	if err != nil {
		return err
	}
	values[key] = value

	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	return nil
}

// LoadSettings reads the persisted settings snapshot through store,
// layering it over the defaults. A missing snapshot yields the defaults.
func LoadSettings(s Store) (audit.Settings, error) {
	raw, ok, err := s.Get(SettingsKey)
	if err != nil {
		return audit.DefaultSettings(), err
	}
	if !ok {
		return audit.DefaultSettings(), nil
	}
	return audit.ParseSettings([]byte(raw))
}

// SaveSettings writes the settings snapshot through store.
func SaveSettings(s Store, settings audit.Settings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return s.Set(SettingsKey, string(data))
}
