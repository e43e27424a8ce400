// Package journal defines the core data model for Ember: immutable journal
// entries, the mood enumeration, the in-progress draft, and date grouping.
package journal

import (
	"time"

	"github.com/google/uuid"
)

// DisplayDateFormat is the layout used to render an entry's display date.
// Grouping is by the exact formatted string, so entries written within the
// same calendar day always land in the same group as long as this layout
// stays stable.
const DisplayDateFormat = "January 2, 2006"

// Entry is a single journal record. Entries are immutable once created:
// there is no edit or delete, only append at save time.
type Entry struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Content   string    `json:"content"`
	Mood      Mood      `json:"mood"`
	Photo     string    `json:"photo,omitempty"` // data URI, empty when no photo is attached
	CreatedAt time.Time `json:"created_at"`
}

// HasPhoto reports whether the entry carries an attached photo.
func (e Entry) HasPhoto() bool {
	return e.Photo != ""
}

// NewEntryID generates a unique identifier for a new entry.
func NewEntryID() string {
	return uuid.New().String()
}

// FormatDate renders t as a display date string.
func FormatDate(t time.Time) string {
	return t.Format(DisplayDateFormat)
}
