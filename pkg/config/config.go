// Package config loads and persists the Ember application configuration,
// a single YAML file under ~/.ember/.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/entrhq/ember/pkg/export"
	"github.com/entrhq/ember/pkg/journal"
	"github.com/entrhq/ember/pkg/photo"
)

// Config is the full application configuration. A missing config file
// yields Default(); unknown moods or bad patterns fail Validate.
type Config struct {
	// DataDir holds the journal file and session logs.
	DataDir string `yaml:"data_dir"`

	// ExportPath is where export writes unless overridden on the command line.
	ExportPath string `yaml:"export_path"`

	// DefaultMood preselects the mood on a fresh draft.
	DefaultMood string `yaml:"default_mood"`

	// Photo controls attachment limits and picker filtering.
	Photo PhotoConfig `yaml:"photo"`
}

// PhotoConfig bounds photo attachments.
type PhotoConfig struct {
	// MaxBytes caps an attached image's size. Zero applies the built-in limit.
	MaxBytes int64 `yaml:"max_bytes"`

	// AllowedPatterns filters the photo picker to image files.
	AllowedPatterns []string `yaml:"allowed_patterns"`
}

// Default returns the configuration used when no file exists.
func Default() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("config: resolve home directory: %w", err)
	}
	return &Config{
		DataDir:     filepath.Join(home, ".ember"),
		ExportPath:  export.DefaultFileName,
		DefaultMood: string(journal.DefaultMood),
		Photo: PhotoConfig{
			MaxBytes:        photo.DefaultMaxBytes,
			AllowedPatterns: append([]string(nil), photo.DefaultPatterns...),
		},
	}, nil
}

// DefaultPath returns ~/.ember/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: resolve home directory: %w", err)
	}
	return filepath.Join(home, ".ember", "config.yaml"), nil
}

// Load reads the configuration at path, applying defaults for any field
// left unset. A missing file is not an error; it yields Default().
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to path atomically.
func (c *Config) Save(path string) error {
	raw, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("config: init directory: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("config: write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("config: atomic rename %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyDefaults() {
	def, err := Default()
	if err != nil {
		return
	}
	if c.DataDir == "" {
		c.DataDir = def.DataDir
	}
	if c.ExportPath == "" {
		c.ExportPath = def.ExportPath
	}
	if c.DefaultMood == "" {
		c.DefaultMood = def.DefaultMood
	}
	if c.Photo.MaxBytes == 0 {
		c.Photo.MaxBytes = def.Photo.MaxBytes
	}
	if len(c.Photo.AllowedPatterns) == 0 {
		c.Photo.AllowedPatterns = def.Photo.AllowedPatterns
	}
}

// Validate checks that every configured value is usable.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("config: data_dir is empty")
	}
	if _, err := journal.ParseMood(c.DefaultMood); err != nil {
		return fmt.Errorf("config: default_mood: %w", err)
	}
	if c.Photo.MaxBytes < 0 {
		return fmt.Errorf("config: photo.max_bytes must not be negative")
	}
	if _, err := photo.NewMatcher(c.Photo.AllowedPatterns); err != nil {
		return fmt.Errorf("config: photo.allowed_patterns: %w", err)
	}
	return nil
}

// JournalPath returns the location of the single journal file.
func (c *Config) JournalPath() string {
	return filepath.Join(c.DataDir, "journal", "entries.json")
}

// Mood returns the validated default mood.
func (c *Config) Mood() journal.Mood {
	m, err := journal.ParseMood(c.DefaultMood)
	if err != nil {
		return journal.DefaultMood
	}
	return m
}

// Matcher compiles the allowed photo patterns.
func (c *Config) Matcher() (*photo.Matcher, error) {
	return photo.NewMatcher(c.Photo.AllowedPatterns)
}
