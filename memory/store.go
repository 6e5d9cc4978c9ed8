// Package memory persists the user's conversation preferences to a
// small JSON file next to the binary. Load never fails: a missing or
// corrupt file yields defaults. Save errors are returned for logging
// but callers treat them as non-fatal, preference loss is acceptable
// where interrupting a turn is not.
package memory

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"
)

// DefaultPath is the preference file location relative to the working
// directory.
const DefaultPath = "memory.json"

// Style is the requested speaking style for replies.
type Style string

const (
	StyleNormal Style = "normal"
	StyleSlower Style = "slower"
	StyleFaster Style = "faster"
)

// Normalize maps unrecognized style values to StyleNormal so that a
// hand-edited or stale preference file degrades to the no-op style
// instead of failing.
func (s Style) Normalize() Style {
	switch s {
	case StyleSlower, StyleFaster:
		return s
	default:
		return StyleNormal
	}
}

// Preferences is the durable per-user preference record.
type Preferences struct {
	PreferredName string `json:"preferred_name"`
	SpeakStyle    Style  `json:"speak_style"`
}

// DefaultPreferences returns the record used when nothing is stored.
func DefaultPreferences() Preferences {
	return Preferences{PreferredName: "", SpeakStyle: StyleNormal}
}

// Store reads and writes the preference file.
type Store struct {
	path string
}

// NewStore returns a Store at path, or DefaultPath when path is empty.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{path: path}
}

// Load reads the stored preferences. Missing file, unreadable file and
// malformed JSON all yield defaults; Load never returns an error.
func (s *Store) Load() Preferences {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return DefaultPreferences()
	}
	var p Preferences
	if err := sonic.Unmarshal(data, &p); err != nil {
		return DefaultPreferences()
	}
	p.SpeakStyle = p.SpeakStyle.Normalize()
	return p
}

// Save writes the full record. The write goes through a temp file in
// the same directory followed by a rename so a crash mid-write cannot
// leave a truncated preference file behind.
func (s *Store) Save(p Preferences) error {
	p.SpeakStyle = p.SpeakStyle.Normalize()
	data, err := sonic.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("memory: marshal preferences: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".memory-*.json")
	if err != nil {
		return fmt.Errorf("memory: create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("memory: write preferences: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("memory: close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("memory: replace %q: %w", s.path, err)
	}
	return nil
}
