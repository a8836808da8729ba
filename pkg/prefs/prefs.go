// Package prefs persists user preferences between runs.
//
// Preferences live in a single TOML file in the user config directory.
// The file is optional: a missing or unreadable file degrades to
// defaults, so a fresh install behaves the same as one whose config was
// deleted. In particular the calibration path never fails because of
// the store; it falls back to the identity factor.
package prefs

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/pinpress/pinpress/pkg/calibration"
)

// Prefs holds everything pinpress remembers between runs.
type Prefs struct {
	// Printer is a free-form name for the printer the calibration
	// belongs to. Purely informational.
	Printer string `toml:"printer,omitempty"`

	// Notes is free-form text the user can attach ("tray 2, matte").
	Notes string `toml:"notes,omitempty"`

	// Calibration is the persisted measurement record, nil when the
	// printer has never been calibrated.
	Calibration *calibration.Record `toml:"calibration,omitempty"`
}

// Store reads and writes a preferences file.
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultStore creates a store at the standard config location,
// typically ~/.config/pinpress/prefs.toml.
func DefaultStore(appName string) (*Store, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	return NewStore(filepath.Join(dir, appName, "prefs.toml")), nil
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string {
	return s.path
}

// Load reads preferences from disk. A missing or corrupt file returns
// zero-value preferences, not an error.
func (s *Store) Load() Prefs {
	var p Prefs
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Prefs{}
	}
	if err := toml.Unmarshal(data, &p); err != nil {
		return Prefs{}
	}
	return p
}

// Save writes preferences to disk, creating parent directories as needed.
func (s *Store) Save(p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	data, err := toml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}

// Factor returns the calibration factor to apply, falling back to the
// identity factor when no valid record is stored.
func (s *Store) Factor() float64 {
	p := s.Load()
	return calibration.FactorOrIdentity(p.Calibration)
}

// SetCalibration persists a new calibration record, keeping the other
// preferences intact.
func (s *Store) SetCalibration(rec calibration.Record) error {
	p := s.Load()
	p.Calibration = &rec
	return s.Save(p)
}

// ClearCalibration removes the stored calibration record.
func (s *Store) ClearCalibration() error {
	p := s.Load()
	if p.Calibration == nil {
		return nil
	}
	p.Calibration = nil
	return s.Save(p)
}
