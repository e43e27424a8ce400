package tui

import (
	"fmt"
	"strings"

	"github.com/entrhq/ember/pkg/journal"
)

// RenderHistory renders the date-grouped history of entries: one header
// per display date, each entry below it with mood, text, and a photo
// marker. The grouping is recomputed from the full list on every call.
// Shared by the TUI history overlay and the `ember list` command.
func RenderHistory(entries []journal.Entry, width int) string {
	if width <= 0 {
		width = 80
	}
	if len(entries) == 0 {
		return emptyHistoryStyle.Render("No entries yet. Write your first one!")
	}

	var b strings.Builder
	for gi, group := range journal.GroupByDate(entries) {
		if gi > 0 {
			b.WriteString("\n")
		}
		b.WriteString(dateHeaderStyle.Render(group.Date))
		b.WriteString("\n")
		for _, e := range group.Entries {
			b.WriteString("  ")
			b.WriteString(entryMoodStyle.Render(fmt.Sprintf("%s %s", e.Mood.Icon(), e.Mood.Label())))
			if e.HasPhoto() {
				b.WriteString(photoMarkStyle.Render("  📷 photo"))
			}
			b.WriteString("\n")
			for _, line := range strings.Split(wordWrap(e.Content, width-4), "\n") {
				b.WriteString("  ")
				b.WriteString(entryTextStyle.Render(line))
				b.WriteString("\n")
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}
