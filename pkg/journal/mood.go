package journal

import (
	"fmt"
	"strings"
)

// Mood classifies the feeling attached to a journal entry.
type Mood string

const (
	MoodHappy   Mood = "happy"
	MoodSad     Mood = "sad"
	MoodNeutral Mood = "neutral"
	MoodExcited Mood = "excited"
	MoodAngry   Mood = "angry"
)

// DefaultMood is preselected on a fresh draft.
const DefaultMood = MoodHappy

// Moods returns every mood in picker order.
func Moods() []Mood {
	return []Mood{MoodHappy, MoodSad, MoodNeutral, MoodExcited, MoodAngry}
}

// ParseMood converts user input into a Mood, accepting any casing and
// surrounding whitespace.
func ParseMood(s string) (Mood, error) {
	m := Mood(strings.ToLower(strings.TrimSpace(s)))
	if err := m.Validate(); err != nil {
		return "", err
	}
	return m, nil
}

// Validate ensures m is one of the known moods.
func (m Mood) Validate() error {
	switch m {
	case MoodHappy, MoodSad, MoodNeutral, MoodExcited, MoodAngry:
		return nil
	}
	return fmt.Errorf("journal: unknown mood %q", string(m))
}

// Label returns the capitalized display form, e.g. "Happy".
func (m Mood) Label() string {
	if m == "" {
		return ""
	}
	return strings.ToUpper(string(m[0:1])) + string(m[1:])
}

// Icon returns the emoji shown next to the mood label.
func (m Mood) Icon() string {
	switch m {
	case MoodHappy:
		return "😊"
	case MoodSad:
		return "😢"
	case MoodNeutral:
		return "😐"
	case MoodExcited:
		return "🤩"
	case MoodAngry:
		return "😠"
	default:
		return "❔"
	}
}
