package store

import "github.com/entrhq/ember/pkg/journal"

// MemoryBackend is an in-process Backend. It backs tests and any caller
// that wants a journal without touching the filesystem, and can be primed
// to fail so load and save error paths stay covered.
type MemoryBackend struct {
	entries []journal.Entry
	loadErr error
	saveErr error
	saves   int
}

// NewMemoryBackend creates a backend seeded with the given entries.
func NewMemoryBackend(seed ...journal.Entry) *MemoryBackend {
	b := &MemoryBackend{}
	b.entries = append(b.entries, seed...)
	return b
}

// Load returns a copy of the held entries, or the primed load error.
func (b *MemoryBackend) Load() ([]journal.Entry, error) {
	if b.loadErr != nil {
		return nil, b.loadErr
	}
	out := make([]journal.Entry, len(b.entries))
	copy(out, b.entries)
	return out, nil
}

// Save replaces the held entries, or returns the primed save error.
func (b *MemoryBackend) Save(entries []journal.Entry) error {
	if b.saveErr != nil {
		return b.saveErr
	}
	b.entries = make([]journal.Entry, len(entries))
	copy(b.entries, entries)
	b.saves++
	return nil
}

// FailLoads makes every subsequent Load return err. Pass nil to heal.
func (b *MemoryBackend) FailLoads(err error) {
	b.loadErr = err
}

// FailSaves makes every subsequent Save return err. Pass nil to heal.
func (b *MemoryBackend) FailSaves(err error) {
	b.saveErr = err
}

// Saves returns how many Save calls have succeeded.
func (b *MemoryBackend) Saves() int {
	return b.saves
}

// Entries returns a copy of what the backend currently holds.
func (b *MemoryBackend) Entries() []journal.Entry {
	out := make([]journal.Entry, len(b.entries))
	copy(out, b.entries)
	return out
}
