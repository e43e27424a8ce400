package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeTestConfig points every path at a temp directory so commands never
// touch the real ~/.ember data.
func writeTestConfig(t *testing.T) (cfgPath, dataDir string) {
	t.Helper()
	dir := t.TempDir()
	dataDir = filepath.Join(dir, "data")
	cfgPath = filepath.Join(dir, "config.yaml")
	raw := fmt.Sprintf("data_dir: %s\nexport_path: %s\n", dataDir, filepath.Join(dir, "journal_entries.json"))
	if err := os.WriteFile(cfgPath, []byte(raw), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return cfgPath, dataDir
}

func TestAddRejectsPhotoOutsideAllowedPatterns(t *testing.T) {
	cfgPath, dataDir := writeTestConfig(t)

	notes := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(notes, []byte("plain text, not an image"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	cmd := newRootCommand()
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetArgs([]string{"--config", cfgPath, "add", "a nice day", "--photo", notes})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected an error for a photo outside the allowed patterns")
	}
	if !strings.Contains(err.Error(), "allowed patterns") {
		t.Errorf("unexpected error: %v", err)
	}

	// The rejected save must not create a journal file.
	if _, statErr := os.Stat(filepath.Join(dataDir, "journal", "entries.json")); !os.IsNotExist(statErr) {
		t.Error("journal file should not exist after a rejected save")
	}
}

func TestAddAcceptsPhotoMatchingAllowedPatterns(t *testing.T) {
	cfgPath, dataDir := writeTestConfig(t)

	pic := filepath.Join(t.TempDir(), "sunset.png")
	pngHeader := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0}
	if err := os.WriteFile(pic, pngHeader, 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	cmd := newRootCommand()
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetArgs([]string{"--config", cfgPath, "add", "golden hour", "--photo", pic})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dataDir, "journal", "entries.json"))
	if err != nil {
		t.Fatalf("read journal: %v", err)
	}
	if !strings.Contains(string(raw), "golden hour") {
		t.Error("saved entry content missing from journal file")
	}
	if !strings.Contains(string(raw), "data:image/png") {
		t.Error("saved entry should carry the encoded photo")
	}
}
