// Package stats persists the player's lifetime statistics as a small JSON
// document. Loading never fails: a missing or unreadable file yields zeroed
// defaults. Saving returns an error the caller is expected to log and
// ignore; the in-memory state stays authoritative for the running session.
package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Stats is the persisted record. The key names are a compatibility
// contract; renderers and older stat files rely on them.
type Stats struct {
	HighScore   int `json:"high_score"`
	GamesPlayed int `json:"games_played"`
}

// Store loads and saves the lifetime statistics record.
type Store interface {
	Load() Stats
	Save(Stats) error
}

// FileStore keeps the stats document at a fixed filesystem path.
type FileStore struct {
	path string
}

// DefaultPath is the stats file location used when none is configured.
const DefaultPath = "~/.stacktower/stats.json"

// NewFileStore creates a store for the given path, expanding a leading ~
// to the user's home directory.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultPath
	}
	if path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	return &FileStore{path: path}
}

// Path returns the resolved file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the stats file. A missing, unreadable, or unparsable file
// falls back to zeroed defaults.
func (s *FileStore) Load() Stats {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Stats{}
	}
	var st Stats
	if err := json.Unmarshal(data, &st); err != nil {
		return Stats{}
	}
	return st
}

// Save writes the stats file, creating parent directories as needed.
func (s *FileStore) Save(st Stats) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("stats: cannot create directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("stats: cannot encode stats: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("stats: cannot write %s: %w", s.path, err)
	}
	return nil
}

var _ Store = (*FileStore)(nil)
