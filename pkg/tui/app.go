// Package tui provides the interactive terminal interface for Ember: a
// composer form (textarea, mood picker, photo picker), a collapsible
// date-grouped history view, and one-key JSON export.
//
// The package is split in the usual Bubble Tea shape:
//   - app.go: program lifecycle
//   - model.go: model state and message types
//   - update.go: Update and key routing
//   - view.go: View and section rendering
//   - history.go: date-grouped history rendering
//   - overlay.go: modal and toast layering
//   - styles.go: color palette and styles
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/entrhq/ember/pkg/config"
	"github.com/entrhq/ember/pkg/logging"
	"github.com/entrhq/ember/pkg/store"
)

// Run starts the Ember TUI and blocks until the user exits. notice, when
// non-empty, is surfaced as an error toast on startup (used to report a
// corrupt journal that was set aside during load).
func Run(cfg *config.Config, st *store.Store, logger *logging.Logger, notice string) error {
	m, err := newModel(cfg, st, logger)
	if err != nil {
		return fmt.Errorf("tui: build model: %w", err)
	}
	if notice != "" {
		m.showToast("Journal problem", notice, "⚠️", true)
	}

	logger.Infof("starting TUI with %d entries", st.Len())
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: run program: %w", err)
	}
	return nil
}
