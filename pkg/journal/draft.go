package journal

import (
	"strings"
	"time"
)

// Appender is where a saved draft lands. *store.Store satisfies it.
type Appender interface {
	Append(Entry) error
}

// Draft holds the in-progress, unsaved entry being composed: free text, a
// mood selection, and at most one attached photo. Use NewDraft; the zero
// value has no clock or id source.
type Draft struct {
	content string
	mood    Mood
	photo   string
	gen     int

	now   func() time.Time
	newID func() string
}

// NewDraft creates an empty draft with the default mood.
func NewDraft() *Draft {
	return &Draft{
		mood:  DefaultMood,
		now:   time.Now,
		newID: NewEntryID,
	}
}

// SetContent replaces the draft's free text.
func (d *Draft) SetContent(s string) {
	d.content = s
}

// Content returns the draft's current free text.
func (d *Draft) Content() string {
	return d.content
}

// SetMood selects the draft's mood.
func (d *Draft) SetMood(m Mood) error {
	if err := m.Validate(); err != nil {
		return err
	}
	d.mood = m
	return nil
}

// Mood returns the currently selected mood.
func (d *Draft) Mood() Mood {
	return d.mood
}

// Generation identifies the current draft lifetime. An asynchronous photo
// read captures it when the read starts and hands it back to AttachPhoto;
// a result arriving after the draft was saved or cleared carries a stale
// generation and is discarded instead of overwriting the next draft.
func (d *Draft) Generation() int {
	return d.gen
}

// AttachPhoto stores an encoded photo on the draft, replacing any prior
// attachment. It reports false and leaves the draft untouched when gen no
// longer matches the current generation.
func (d *Draft) AttachPhoto(dataURI string, gen int) bool {
	if gen != d.gen {
		return false
	}
	d.photo = dataURI
	return true
}

// Photo returns the attached photo data URI, empty when none is attached.
func (d *Draft) Photo() string {
	return d.photo
}

// RemovePhoto detaches the draft's photo.
func (d *Draft) RemovePhoto() {
	d.photo = ""
}

// Clear resets text and photo for the next entry and advances the
// generation so in-flight photo reads become stale. The mood selection
// carries over.
func (d *Draft) Clear() {
	d.content = ""
	d.photo = ""
	d.gen++
}

// Save builds an Entry from the draft and appends it to dst. A draft whose
// content is blank or whitespace-only is not saved: Save reports false and
// leaves the draft unchanged. On a successful append the draft is cleared.
// When the append fails the entry still exists in dst's in-memory list but
// may not be durable; the draft is cleared and the error returned so the
// caller can warn the user.
func (d *Draft) Save(dst Appender) (Entry, bool, error) {
	content := strings.TrimSpace(d.content)
	if content == "" {
		return Entry{}, false, nil
	}
	now := d.now()
	e := Entry{
		ID:        d.newID(),
		Date:      FormatDate(now),
		Content:   content,
		Mood:      d.mood,
		Photo:     d.photo,
		CreatedAt: now,
	}
	err := dst.Append(e)
	d.Clear()
	return e, true, err
}
