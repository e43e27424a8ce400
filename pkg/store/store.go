// Package store persists the journal entry list. A Store owns the ordered
// in-memory list and mirrors every mutation to an injected Backend, so tests
// can swap the file backend for an in-memory one.
package store

import (
	"errors"
	"fmt"

	"github.com/entrhq/ember/pkg/journal"
)

// ErrCorrupt marks persisted journal data that could not be decoded.
var ErrCorrupt = errors.New("store: journal data is corrupt")

// Backend is the persistence layer beneath a Store. Implementations hold
// the entire entry list as one blob: Load reads it in full, Save replaces
// it in full.
type Backend interface {
	Load() ([]journal.Entry, error)
	Save([]journal.Entry) error
}

// Store is the exclusive owner of the ordered, most-recent-first entry
// list. Every mutation persists the full list synchronously, so there is no
// partial-write state observable by callers.
type Store struct {
	backend Backend
	entries []journal.Entry
}

// New creates a Store over the given backend. Call Load before reading.
func New(backend Backend) *Store {
	return &Store{backend: backend}
}

// Load hydrates the in-memory list from the backend. An absent blob is an
// empty journal. Corrupt data returns an ErrCorrupt-wrapped error and
// leaves the store empty but usable, so one bad file never takes the
// journal down.
func (s *Store) Load() error {
	entries, err := s.backend.Load()
	if err != nil {
		s.entries = nil
		return err
	}
	s.entries = entries
	return nil
}

// Append inserts e at the front of the list and persists the whole updated
// list. When persistence fails the in-memory list keeps the entry and the
// error is returned: the lists have legitimately diverged and the user
// should be told the entry may not survive a restart.
func (s *Store) Append(e journal.Entry) error {
	s.entries = append([]journal.Entry{e}, s.entries...)
	if err := s.backend.Save(s.entries); err != nil {
		return fmt.Errorf("store: persist %d entries: %w", len(s.entries), err)
	}
	return nil
}

// Entries returns a copy of the current list, most recent first.
func (s *Store) Entries() []journal.Entry {
	out := make([]journal.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of entries currently held.
func (s *Store) Len() int {
	return len(s.entries)
}
