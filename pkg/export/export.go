// Package export serializes the journal to its flat downloadable JSON
// form. Exporting reads the entry list and never mutates it.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/entrhq/ember/pkg/journal"
)

// DefaultFileName is the fixed name of the export file.
const DefaultFileName = "journal_entries.json"

// Record is one exported entry. Photo bytes are never exported; Photo is
// the literal string "Yes" or "No".
type Record struct {
	Date    string `json:"Date"`
	Mood    string `json:"Mood"`
	Content string `json:"Content"`
	Photo   string `json:"Photo"`
}

// Records maps every entry to its export form, preserving order. The
// result always has exactly one record per entry.
func Records(entries []journal.Entry) []Record {
	records := make([]Record, len(entries))
	for i, e := range entries {
		photo := "No"
		if e.HasPhoto() {
			photo = "Yes"
		}
		records[i] = Record{
			Date:    e.Date,
			Mood:    e.Mood.Label(),
			Content: e.Content,
			Photo:   photo,
		}
	}
	return records
}

// JSON renders the export as an indented JSON array.
func JSON(entries []journal.Entry) ([]byte, error) {
	raw, err := json.MarshalIndent(Records(entries), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export: encode records: %w", err)
	}
	return raw, nil
}

// WriteFile writes the export JSON to path atomically, creating the parent
// directory if needed.
func WriteFile(path string, entries []journal.Entry) error {
	raw, err := JSON(entries)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("export: init directory %s: %w", dir, err)
		}
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("export: write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp) // best-effort cleanup
		return fmt.Errorf("export: atomic rename %s: %w", path, err)
	}
	return nil
}

// ToClipboard copies the export JSON to the system clipboard.
func ToClipboard(entries []journal.Entry) error {
	raw, err := JSON(entries)
	if err != nil {
		return err
	}
	if err := clipboard.WriteAll(string(raw)); err != nil {
		return fmt.Errorf("export: copy to clipboard: %w", err)
	}
	return nil
}
