package tui

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/entrhq/ember/pkg/export"
	"github.com/entrhq/ember/pkg/journal"
	"github.com/entrhq/ember/pkg/photo"
)

// Update handles all state updates for the TUI model. Uses a pointer
// receiver so overlay and toast mutations persist across messages.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var spCmd tea.Cmd
	if m.loadingPhoto {
		m.spinner, spCmd = m.spinner.Update(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowResize(msg)

	case photoLoadedMsg:
		return m.handlePhotoLoaded(msg)

	case photoErrMsg:
		return m.handlePhotoError(msg)

	case exportDoneMsg:
		return m.handleExportDone(msg)

	case tea.KeyMsg:
		return m.handleKeyPress(msg, spCmd)
	}

	// The file picker drives itself with internal messages (directory
	// reads); keep feeding it while it is open.
	if m.pickingPhoto {
		var fpCmd tea.Cmd
		m.picker, fpCmd = m.picker.Update(msg)
		return m, tea.Batch(spCmd, fpCmd)
	}

	// Everything else (cursor blink and friends) belongs to the textarea.
	var taCmd tea.Cmd
	m.textarea, taCmd = m.textarea.Update(msg)
	return m, tea.Batch(taCmd, spCmd)
}

func (m *model) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.textarea.SetWidth(msg.Width - 8)
	m.history.Width = msg.Width - 10
	m.history.Height = msg.Height - 10
	if m.history.Height < 5 {
		m.history.Height = 5
	}
	m.picker.Height = msg.Height - 12
	if m.picker.Height < 5 {
		m.picker.Height = 5
	}
	m.ready = true
	if m.showHistory {
		m.refreshHistory()
	}
	return m, nil
}

func (m *model) handlePhotoLoaded(msg photoLoadedMsg) (tea.Model, tea.Cmd) {
	m.loadingPhoto = false
	if !m.draft.AttachPhoto(msg.dataURI, msg.gen) {
		// The draft was saved or cleared while the read was in flight.
		m.logger.Debugf("discarding stale photo read for %s (generation %d)", msg.name, msg.gen)
		return m, nil
	}
	m.photoName = msg.name
	m.showToast("Photo attached", msg.name, "📷", false)
	return m, nil
}

func (m *model) handlePhotoError(msg photoErrMsg) (tea.Model, tea.Cmd) {
	m.loadingPhoto = false
	if msg.gen != m.draft.Generation() {
		return m, nil
	}
	m.logger.Errorf("photo read failed: %v", msg.err)
	m.showToast("Could not attach photo", msg.err.Error(), "🚫", true)
	return m, nil
}

func (m *model) handleExportDone(msg exportDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.logger.Errorf("export failed: %v", msg.err)
		m.showToast("Export failed", msg.err.Error(), "🚫", true)
		return m, nil
	}
	m.logger.Infof("journal exported to %s", msg.path)
	m.showToast("Journal exported", msg.path, "📦", false)
	return m, nil
}

// handleKeyPress routes keyboard input. Overlays capture every key while
// they are open; shortcuts are intercepted before the textarea sees them.
func (m *model) handleKeyPress(msg tea.KeyMsg, spCmd tea.Cmd) (tea.Model, tea.Cmd) {
	if m.pickingPhoto {
		return m.handlePickerKey(msg, spCmd)
	}
	if m.showHistory {
		return m.handleHistoryKey(msg)
	}

	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyTab:
		m.toggleFocus()
		return m, nil

	case tea.KeyCtrlS:
		return m.handleSave()

	case tea.KeyCtrlL:
		m.showHistory = true
		m.refreshHistory()
		return m, nil

	case tea.KeyCtrlE:
		return m, m.exportJournal()

	case tea.KeyCtrlO:
		if m.loadingPhoto {
			return m, nil
		}
		m.pickingPhoto = true
		return m, m.picker.Init()

	case tea.KeyCtrlX:
		m.draft.RemovePhoto()
		m.photoName = ""
		return m, nil
	}

	if m.focus == focusMood {
		return m.handleMoodKey(msg, spCmd)
	}

	var taCmd tea.Cmd
	m.textarea, taCmd = m.textarea.Update(msg)
	return m, tea.Batch(taCmd, spCmd)
}

func (m *model) handlePickerKey(msg tea.KeyMsg, spCmd tea.Cmd) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		m.pickingPhoto = false
		return m, nil
	}

	var fpCmd tea.Cmd
	m.picker, fpCmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		if !m.allowedPhoto(path) {
			m.showToast("Not an allowed image file", filepath.Base(path), "🚫", true)
			return m, fpCmd
		}
		m.pickingPhoto = false
		m.loadingPhoto = true
		return m, tea.Batch(fpCmd, m.spinner.Tick, m.loadPhoto(path))
	}
	if ok, path := m.picker.DidSelectDisabledFile(msg); ok {
		m.showToast("Not an allowed image file", filepath.Base(path), "🚫", true)
		return m, fpCmd
	}
	return m, tea.Batch(spCmd, fpCmd)
}

// allowedPhoto reports whether the selected path matches the configured
// photo patterns. The picker's extension filter is a convenience; the glob
// matcher is the authority.
func (m *model) allowedPhoto(path string) bool {
	if m.matcher == nil {
		return true
	}
	return m.matcher.Match(path)
}

func (m *model) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "ctrl+l":
		m.showHistory = false
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}
	var vpCmd tea.Cmd
	m.history, vpCmd = m.history.Update(msg)
	return m, vpCmd
}

func (m *model) handleMoodKey(msg tea.KeyMsg, spCmd tea.Cmd) (tea.Model, tea.Cmd) {
	moods := journal.Moods()
	switch msg.String() {
	case "left", "h":
		m.moodIndex = (m.moodIndex + len(moods) - 1) % len(moods)
		m.applyMood()
	case "right", "l":
		m.moodIndex = (m.moodIndex + 1) % len(moods)
		m.applyMood()
	case "1", "2", "3", "4", "5":
		m.moodIndex = int(msg.String()[0] - '1')
		m.applyMood()
	case "enter":
		m.toggleFocus()
	}
	return m, spCmd
}

func (m *model) toggleFocus() {
	if m.focus == focusContent {
		m.focus = focusMood
		m.textarea.Blur()
		return
	}
	m.focus = focusContent
	m.textarea.Focus()
}

func (m *model) applyMood() {
	if err := m.draft.SetMood(journal.Moods()[m.moodIndex]); err != nil {
		m.logger.Errorf("select mood: %v", err)
	}
}

func (m *model) handleSave() (tea.Model, tea.Cmd) {
	m.draft.SetContent(m.textarea.Value())
	entry, saved, err := m.draft.Save(m.store)
	if !saved {
		// Blank submissions are rejected without ceremony; the draft stays.
		m.logger.Debugf("save skipped: draft content is blank")
		return m, nil
	}

	m.textarea.Reset()
	m.photoName = ""

	if err != nil {
		m.logger.Errorf("persist entry %s: %v", entry.ID, err)
		m.showToast(
			"Saved in memory only",
			"The journal file could not be written; this entry may not survive a restart.",
			"⚠️", true,
		)
		return m, nil
	}

	m.logger.Infof("entry %s saved for %s", entry.ID, entry.Date)
	m.showToast("Entry saved", fmt.Sprintf("%s %s on %s", entry.Mood.Icon(), entry.Mood.Label(), entry.Date), "🔥", false)
	return m, nil
}

func (m *model) refreshHistory() {
	m.history.SetContent(RenderHistory(m.store.Entries(), m.history.Width))
	m.history.GotoTop()
}

// loadPhoto reads the selected image off the event loop. The command
// captures the draft generation so a result arriving after the draft was
// saved or cleared is recognizably stale.
func (m *model) loadPhoto(path string) tea.Cmd {
	gen := m.draft.Generation()
	maxBytes := m.cfg.Photo.MaxBytes
	return func() tea.Msg {
		dataURI, err := photo.Load(path, maxBytes)
		if err != nil {
			return photoErrMsg{err: err, gen: gen}
		}
		return photoLoadedMsg{name: filepath.Base(path), dataURI: dataURI, gen: gen}
	}
}

// exportJournal writes the export file off the event loop. The entry list
// is copied up front so the command never races a later append.
func (m *model) exportJournal() tea.Cmd {
	entries := m.store.Entries()
	path := m.exportPath
	return func() tea.Msg {
		if err := export.WriteFile(path, entries); err != nil {
			return exportDoneMsg{err: err}
		}
		return exportDoneMsg{path: path}
	}
}
