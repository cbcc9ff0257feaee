package stats

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/rps-cli/internal/fileutil"
)

// Store loads and saves tracker snapshots at a fixed path. Saves are
// atomic, so a failed write leaves the previous snapshot untouched.
type Store struct {
	path   string
	logger *log.Logger
}

// NewStore creates a snapshot store for the given path
func NewStore(path string, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	return &Store{path: path, logger: logger.WithPrefix("store")}
}

// Path returns where snapshots are stored
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted snapshot. A missing file is not an error and
// yields a fresh tracker; corrupt content surfaces as ErrFormat and read
// failures as wrapped I/O errors, so callers can distinguish the two.
func (s *Store) Load() (*Tracker, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.logger.Debug("no snapshot found, starting fresh", "path", s.path)
		return NewTracker(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot %s: %w", s.path, err)
	}

	tracker, err := DecodeSnapshot(data)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("loaded snapshot", "path", s.path, "games", tracker.TotalGames())
	return tracker, nil
}

// Save persists the tracker. The write goes through a temp file and
// rename, so readers observe either the old snapshot or the new one,
// never a partial file.
func (s *Store) Save(t *Tracker) error {
	data, err := EncodeSnapshot(t)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := fileutil.WriteFileAtomic(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot %s: %w", s.path, err)
	}
	s.logger.Debug("saved snapshot", "path", s.path, "games", t.TotalGames())
	return nil
}
