package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/entrhq/ember/pkg/journal"
)

func TestRenderHistoryEmpty(t *testing.T) {
	out := RenderHistory(nil, 80)
	if !strings.Contains(out, "No entries yet") {
		t.Errorf("empty history should invite the first entry, got %q", out)
	}
}

func TestRenderHistoryGroupsByDate(t *testing.T) {
	day1 := time.Date(2026, time.August, 28, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, time.August, 27, 21, 0, 0, 0, time.UTC)
	entries := []journal.Entry{
		{ID: "a", Date: journal.FormatDate(day1), Content: "morning walk", Mood: journal.MoodHappy},
		{ID: "b", Date: journal.FormatDate(day1), Content: "long meeting", Mood: journal.MoodNeutral, Photo: "data:image/png;base64,AAAA"},
		{ID: "c", Date: journal.FormatDate(day2), Content: "late dinner", Mood: journal.MoodExcited},
	}

	out := RenderHistory(entries, 80)

	for _, want := range []string{"August 28, 2026", "August 27, 2026", "morning walk", "long meeting", "late dinner", "Happy", "Neutral", "Excited"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered history missing %q", want)
		}
	}

	// Each date header appears exactly once even with multiple entries.
	if n := strings.Count(out, "August 28, 2026"); n != 1 {
		t.Errorf("expected one header for August 28, got %d", n)
	}

	// The photo marker belongs to the one entry that carries a photo.
	if n := strings.Count(out, "photo"); n != 1 {
		t.Errorf("expected one photo marker, got %d", n)
	}
}

func TestRenderHistoryWrapsLongContent(t *testing.T) {
	long := strings.Repeat("reflection ", 30)
	entries := []journal.Entry{
		{ID: "a", Date: "August 28, 2026", Content: long, Mood: journal.MoodSad},
	}

	out := RenderHistory(entries, 40)
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "reflection") && len(line) > 40 {
			t.Errorf("content line exceeds width: %q", line)
		}
	}
}
