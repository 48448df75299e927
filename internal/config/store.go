package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/gyongyosigabor/gghelper/internal/errors"
)

// DefaultBaseDir is where both stores live unless a path override is given.
func DefaultBaseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(errors.TypeConfig, "cannot determine home directory", err)
	}
	return filepath.Join(home, ".config", "gghelper"), nil
}

// atomicWrite persists data by writing a temp file next to path and renaming
// it into place. The temp file is removed when the rename fails.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(errors.TypeConfig, "failed to create config directory", err).
			WithSuggestion("check that " + dir + " is writable")
	}

	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0644); err != nil {
		return errors.Wrap(errors.TypeConfig, "failed to write temp file", err)
	}

	if err := os.Rename(tmpFile, path); err != nil {
		os.Remove(tmpFile)
		return errors.Wrap(errors.TypeConfig, "failed to save file", err)
	}

	return nil
}

// PreferenceStore reads and rewrites the preference file. Every mutation is a
// full read-modify-write so keys from other versions survive.
type PreferenceStore struct {
	path string
	mu   sync.Mutex
}

// NewPreferenceStore creates a store for the given file path.
func NewPreferenceStore(path string) (*PreferenceStore, error) {
	if path == "" {
		return nil, errors.New(errors.TypeConfig, "preference store path cannot be empty")
	}
	return &PreferenceStore{path: path}, nil
}

// Load returns the stored preferences. A missing file yields empty
// preferences; a file that exists but cannot be parsed is an error.
func (s *PreferenceStore) Load() (*Preferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *PreferenceStore) load() (*Preferences, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Preferences{}, nil
		}
		return nil, errors.Wrap(errors.TypeConfig, "failed to read preferences", err)
	}

	prefs := &Preferences{}
	if err := json.Unmarshal(data, prefs); err != nil {
		return nil, errors.Wrap(errors.TypeConfig, "failed to parse preferences", err).
			WithSuggestion("delete " + s.path + " and set your preferences again")
	}
	return prefs, nil
}

// Save rewrites the whole preference file atomically.
func (s *PreferenceStore) Save(prefs *Preferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(prefs)
}

func (s *PreferenceStore) save(prefs *Preferences) error {
	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return errors.Wrap(errors.TypeConfig, "failed to marshal preferences", err)
	}
	return atomicWrite(s.path, data)
}

// SetLanguage persists the language preference, keeping everything else.
func (s *PreferenceStore) SetLanguage(lang string) error {
	return s.update(func(p *Preferences) { p.Language = lang })
}

// SetLevel persists the level preference, keeping everything else.
func (s *PreferenceStore) SetLevel(level string) error {
	if !ValidLevel(level) {
		return errors.New(errors.TypeConfig, "invalid level: "+level)
	}
	return s.update(func(p *Preferences) { p.Level = level })
}

func (s *PreferenceStore) update(mutate func(*Preferences)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs, err := s.load()
	if err != nil {
		return err
	}
	mutate(prefs)
	return s.save(prefs)
}
