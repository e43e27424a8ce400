package tui

import (
	"testing"

	"github.com/entrhq/ember/pkg/photo"
)

func TestAllowedPhotoAppliesConfiguredPatterns(t *testing.T) {
	matcher, err := photo.NewMatcher([]string{"*.png", "*.jpg"})
	if err != nil {
		t.Fatalf("NewMatcher failed: %v", err)
	}
	m := &model{matcher: matcher}

	tests := []struct {
		path string
		want bool
	}{
		{"/home/me/shot.png", true},
		{"/home/me/SHOT.PNG", true},
		{"/home/me/holiday.jpg", true},
		{"/home/me/notes.txt", false},
		{"/home/me/photo.gif", false},
	}
	for _, tt := range tests {
		if got := m.allowedPhoto(tt.path); got != tt.want {
			t.Errorf("allowedPhoto(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestAllowedPhotoWithoutMatcherAcceptsEverything(t *testing.T) {
	m := &model{}
	if !m.allowedPhoto("/home/me/anything.txt") {
		t.Error("a model without a matcher should not reject files")
	}
}
