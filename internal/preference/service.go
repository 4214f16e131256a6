package preference

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Preferences holds the site-wide presentation settings.
type Preferences struct {
	DarkMode bool `json:"dark_mode"`
}

// Service owns the preference state. Instead of ambient global state, the
// current value is read once at startup and every change goes through an
// explicit setter whose defined side effect is rewriting the backing file.
type Service struct {
	mu    sync.Mutex
	path  string
	prefs Preferences
}

// NewService loads preferences from path, starting from defaults when the
// file does not exist yet.
func NewService(path string) (*Service, error) {
	s := &Service{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read preferences: %w", err)
	}

	if err := json.Unmarshal(data, &s.prefs); err != nil {
		return nil, fmt.Errorf("failed to parse preferences: %w", err)
	}

	return s, nil
}

// Current returns the preferences as they stand.
func (s *Service) Current() Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs
}

// SetDarkMode updates the flag and persists the file before returning.
func (s *Service) SetDarkMode(enabled bool) (Preferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prefs.DarkMode = enabled
	if err := s.writeLocked(); err != nil {
		return Preferences{}, err
	}
	return s.prefs, nil
}

func (s *Service) writeLocked() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create preferences directory: %w", err)
	}

	data, err := json.MarshalIndent(s.prefs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	return nil
}
