// Package photo reads image files into self-describing data URIs that can
// be stored on a journal entry and used directly as an image source.
package photo

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

var (
	// ErrNotImage marks a selected file whose content is not a recognized image.
	ErrNotImage = errors.New("photo: file is not a recognized image")
	// ErrTooLarge marks a file over the configured size limit.
	ErrTooLarge = errors.New("photo: file exceeds the size limit")
)

// DefaultMaxBytes caps how much image data may be embedded in one entry.
// The whole journal is rewritten on every save, so oversized attachments
// make every later save pay for them.
const DefaultMaxBytes int64 = 5 << 20

// DefaultPatterns are the image file patterns offered by the picker when
// the configuration does not override them.
var DefaultPatterns = []string{"*.png", "*.jpg", "*.jpeg", "*.gif", "*.webp"}

// Matcher reports whether a file name looks like an allowed image file.
type Matcher struct {
	globs []glob.Glob
	exts  []string
}

// NewMatcher compiles the given glob patterns, falling back to
// DefaultPatterns when none are supplied. Matching is case-insensitive on
// the base name.
func NewMatcher(patterns []string) (*Matcher, error) {
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}
	m := &Matcher{}
	for _, p := range patterns {
		g, err := glob.Compile(strings.ToLower(p))
		if err != nil {
			return nil, fmt.Errorf("photo: compile pattern %q: %w", p, err)
		}
		m.globs = append(m.globs, g)
		if i := strings.LastIndex(p, "."); i >= 0 {
			m.exts = append(m.exts, strings.ToLower(p[i:]))
		}
	}
	return m, nil
}

// Match reports whether name's base name matches any allowed pattern.
func (m *Matcher) Match(name string) bool {
	base := strings.ToLower(filepath.Base(name))
	for _, g := range m.globs {
		if g.Match(base) {
			return true
		}
	}
	return false
}

// Extensions returns the plain extensions behind the patterns, for
// components that filter by suffix rather than by glob.
func (m *Matcher) Extensions() []string {
	return append([]string(nil), m.exts...)
}

// Load reads the image at path fully into memory and encodes it as a data
// URI. The content is sniffed; files that are not images are rejected.
// maxBytes <= 0 applies DefaultMaxBytes.
func Load(path string, maxBytes int64) (string, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("photo: stat %s: %w", path, err)
	}
	if info.Size() > maxBytes {
		return "", fmt.Errorf("%w: %s is %d bytes (limit %d)", ErrTooLarge, path, info.Size(), maxBytes)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("photo: read %s: %w", path, err)
	}
	mime := http.DetectContentType(raw)
	if !strings.HasPrefix(mime, "image/") {
		return "", fmt.Errorf("%w: %s detected as %s", ErrNotImage, path, mime)
	}
	return DataURI(mime, raw), nil
}

// DataURI encodes raw bytes as a data:<mime>;base64 string.
func DataURI(mime string, raw []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(raw)
}
