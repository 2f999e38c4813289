// Package prefs persists small key-value preferences (theme flag,
// session user) as JSON under fixed string keys, backed by a single
// file.
package prefs

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// Fixed preference keys.
const (
	KeyUserToken = "@rathi_dental_token"
	KeyUserData  = "user"
	KeyThemeMode = "@rathi_dental_theme"
)

type Store struct {
	path string
	mu   sync.Mutex
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// SetItem JSON-serializes value and stores it under key.
func (s *Store) SetItem(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return err
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize value for %s: %w", key, err)
	}
	items[key] = raw

	return s.save(items)
}

// GetItem unmarshals the value stored under key into out and reports
// whether the key was present. A missing key is not an error; a
// corrupt store degrades to not-found.
func (s *Store) GetItem(key string, out any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		slog.Error("failed to read preferences", "error", err)
		return false, nil
	}

	raw, ok := items[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("failed to decode value for %s: %w", key, err)
	}
	return true, nil
}

func (s *Store) RemoveItem(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := items[key]; !ok {
		return nil
	}
	delete(items, key)
	return s.save(items)
}

// Clear removes every stored preference.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *Store) SetThemeMode(isDark bool) error {
	return s.SetItem(KeyThemeMode, isDark)
}

// ThemeMode returns the stored flag and whether one was saved.
func (s *Store) ThemeMode() (isDark bool, ok bool) {
	ok, err := s.GetItem(KeyThemeMode, &isDark)
	if err != nil {
		return false, false
	}
	return isDark, ok
}

func (s *Store) SetUserData(user any) error {
	return s.SetItem(KeyUserData, user)
}

func (s *Store) UserData(out any) (bool, error) {
	return s.GetItem(KeyUserData, out)
}

func (s *Store) SetUserToken(token string) error {
	return s.SetItem(KeyUserToken, token)
}

func (s *Store) UserToken() (string, bool, error) {
	var token string
	ok, err := s.GetItem(KeyUserToken, &token)
	return token, ok, err
}

func (s *Store) load() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return nil, err
	}

	items := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse preferences file %s: %w", s.path, err)
	}
	return items, nil
}

func (s *Store) save(items map[string]json.RawMessage) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	// Write-and-rename so a crash mid-write cannot corrupt the store.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
