package journal

import (
	"errors"
	"testing"
	"time"
)

// recordingAppender captures appended entries and optionally fails.
type recordingAppender struct {
	entries []Entry
	err     error
}

func (a *recordingAppender) Append(e Entry) error {
	if a.err != nil {
		return a.err
	}
	a.entries = append([]Entry{e}, a.entries...)
	return nil
}

func fixedDraft(t *testing.T, at time.Time, id string) *Draft {
	t.Helper()
	d := NewDraft()
	d.now = func() time.Time { return at }
	d.newID = func() string { return id }
	return d
}

func TestDraftSaveBlankContentIsNoOp(t *testing.T) {
	dst := &recordingAppender{}
	d := NewDraft()

	for _, content := range []string{"", "   ", "\n\t  \n"} {
		d.SetContent(content)
		_, saved, err := d.Save(dst)
		if err != nil {
			t.Fatalf("Save(%q) failed: %v", content, err)
		}
		if saved {
			t.Errorf("Save(%q) reported saved", content)
		}
	}
	if len(dst.entries) != 0 {
		t.Errorf("blank saves appended %d entries", len(dst.entries))
	}
	// The draft itself is untouched by a rejected save.
	if d.Content() != "\n\t  \n" {
		t.Errorf("rejected save modified draft content: %q", d.Content())
	}
}

func TestDraftSaveBuildsEntryAndClears(t *testing.T) {
	at := time.Date(2026, 8, 28, 21, 15, 0, 0, time.UTC)
	d := fixedDraft(t, at, "id-1")
	dst := &recordingAppender{}

	if err := d.SetMood(MoodExcited); err != nil {
		t.Fatalf("SetMood failed: %v", err)
	}
	d.SetContent("  Grateful for sunshine  ")
	d.AttachPhoto("data:image/png;base64,AAAA", d.Generation())

	entry, saved, err := d.Save(dst)
	if err != nil || !saved {
		t.Fatalf("Save failed: saved=%v err=%v", saved, err)
	}

	if entry.ID != "id-1" {
		t.Errorf("entry ID = %q", entry.ID)
	}
	if entry.Date != "August 28, 2026" {
		t.Errorf("entry Date = %q, want %q", entry.Date, "August 28, 2026")
	}
	if entry.Content != "Grateful for sunshine" {
		t.Errorf("entry Content = %q", entry.Content)
	}
	if entry.Mood != MoodExcited {
		t.Errorf("entry Mood = %q", entry.Mood)
	}
	if !entry.HasPhoto() {
		t.Error("entry lost the attached photo")
	}
	if len(dst.entries) != 1 {
		t.Fatalf("expected 1 appended entry, got %d", len(dst.entries))
	}

	// Text and photo reset for the next entry; mood carries over.
	if d.Content() != "" || d.Photo() != "" {
		t.Errorf("draft not cleared: content=%q photo=%q", d.Content(), d.Photo())
	}
	if d.Mood() != MoodExcited {
		t.Errorf("mood did not carry over: %q", d.Mood())
	}
}

func TestDraftSavePrepends(t *testing.T) {
	dst := &recordingAppender{}
	d := NewDraft()

	d.SetContent("first")
	if _, _, err := d.Save(dst); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	d.SetContent("second")
	if _, _, err := d.Save(dst); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if len(dst.entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(dst.entries))
	}
	if dst.entries[0].Content != "second" {
		t.Errorf("most recent entry should be first, got %q", dst.entries[0].Content)
	}
}

func TestDraftSaveSurfacesAppendError(t *testing.T) {
	appendErr := errors.New("disk full")
	dst := &recordingAppender{err: appendErr}
	d := NewDraft()
	d.SetContent("doomed entry")

	_, saved, err := d.Save(dst)
	if !saved {
		t.Fatal("a non-blank draft should report saved even when persistence fails")
	}
	if !errors.Is(err, appendErr) {
		t.Fatalf("expected append error, got %v", err)
	}
	// Draft still clears; the entry exists in memory on the store side.
	if d.Content() != "" {
		t.Errorf("draft content not cleared after failed persist: %q", d.Content())
	}
}

func TestDraftStalePhotoDiscarded(t *testing.T) {
	d := NewDraft()
	gen := d.Generation()

	// The photo read completes after the draft was cleared.
	d.Clear()
	if d.AttachPhoto("data:image/png;base64,AAAA", gen) {
		t.Fatal("stale photo attach should be rejected")
	}
	if d.Photo() != "" {
		t.Errorf("stale photo landed on the draft: %q", d.Photo())
	}

	// A current-generation attach still works.
	if !d.AttachPhoto("data:image/png;base64,BBBB", d.Generation()) {
		t.Fatal("current-generation attach rejected")
	}
	if d.Photo() == "" {
		t.Error("photo missing after valid attach")
	}
}

func TestDraftReplacePhoto(t *testing.T) {
	d := NewDraft()
	d.AttachPhoto("data:image/png;base64,OLD", d.Generation())
	d.AttachPhoto("data:image/jpeg;base64,NEW", d.Generation())
	if d.Photo() != "data:image/jpeg;base64,NEW" {
		t.Errorf("second photo should replace the first, got %q", d.Photo())
	}
	d.RemovePhoto()
	if d.Photo() != "" {
		t.Error("RemovePhoto left a photo on the draft")
	}
}
