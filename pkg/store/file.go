package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/entrhq/ember/pkg/journal"
)

// FileBackend keeps the entire entry list in a single JSON file, read in
// full at startup and rewritten in full on every append.
type FileBackend struct {
	path string
}

// NewFileBackend creates a file backend at path, making the parent
// directory if needed.
func NewFileBackend(path string) (*FileBackend, error) {
	if path == "" {
		return nil, fmt.Errorf("store: journal path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("store: init journal directory: %w", err)
	}
	return &FileBackend{path: path}, nil
}

// Path returns the journal file location.
func (b *FileBackend) Path() string {
	return b.path
}

// Load reads the full entry list. A missing file is an empty journal. A
// file that fails to decode is moved aside to <path>.corrupt so the next
// save cannot silently overwrite the evidence, and an ErrCorrupt-wrapped
// error is returned.
func (b *FileBackend) Load() ([]journal.Entry, error) {
	raw, err := os.ReadFile(b.path)
	if errors.Is(err, os.ErrNotExist) {
		return []journal.Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", b.path, err)
	}
	var entries []journal.Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		aside := b.path + ".corrupt"
		if renameErr := os.Rename(b.path, aside); renameErr != nil {
			slog.Debug("store: could not move corrupt journal aside", "path", b.path, "err", renameErr)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, b.path, err)
	}
	if entries == nil {
		entries = []journal.Entry{}
	}
	return entries, nil
}

// Save atomically replaces the journal file via a temp file and rename.
func (b *FileBackend) Save(entries []journal.Entry) error {
	raw, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encode entries: %w", err)
	}
	tmp := b.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("store: write temp file: %w", err)
	}
	if err := os.Rename(tmp, b.path); err != nil {
		_ = os.Remove(tmp) // best-effort cleanup
		return fmt.Errorf("store: atomic rename %s: %w", b.path, err)
	}
	return nil
}
