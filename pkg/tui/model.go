package tui

import (
	"os"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/entrhq/ember/pkg/config"
	"github.com/entrhq/ember/pkg/journal"
	"github.com/entrhq/ember/pkg/logging"
	"github.com/entrhq/ember/pkg/photo"
	"github.com/entrhq/ember/pkg/store"
)

// focusArea identifies which part of the composer form receives key input.
type focusArea int

const (
	focusContent focusArea = iota
	focusMood
)

// model is the state of the Ember TUI: the composer form, the collapsible
// history view, and the photo picker overlay.
type model struct {
	// Bubble Tea components
	textarea textarea.Model
	spinner  spinner.Model
	history  viewport.Model
	picker   filepicker.Model

	// Journal state
	store   *store.Store
	draft   *journal.Draft
	matcher *photo.Matcher

	cfg    *config.Config
	logger *logging.Logger

	// UI state
	focus        focusArea
	moodIndex    int
	photoName    string // base name of the attached photo, shown on the form
	showHistory  bool
	pickingPhoto bool
	loadingPhoto bool
	toast        *toastNotification

	// Window dimensions
	width  int
	height int
	ready  bool

	exportPath string
}

// photoLoadedMsg carries a finished photo read. gen is the draft generation
// captured when the read started; stale results are discarded.
type photoLoadedMsg struct {
	name    string
	dataURI string
	gen     int
}

// photoErrMsg carries a failed photo read.
type photoErrMsg struct {
	err error
	gen int
}

// exportDoneMsg signals a finished journal export.
type exportDoneMsg struct {
	path string
	err  error
}

// toastNotification is a temporary notice shown over the base view.
type toastNotification struct {
	active    bool
	message   string
	details   string
	icon      string
	isError   bool
	showUntil time.Time
}

func newModel(cfg *config.Config, st *store.Store, logger *logging.Logger) (*model, error) {
	ta := textarea.New()
	ta.Placeholder = "What happened today?"
	ta.CharLimit = 0
	ta.ShowLineNumbers = false
	ta.SetHeight(6)
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(emberOrange)

	matcher, err := cfg.Matcher()
	if err != nil {
		return nil, err
	}
	fp := filepicker.New()
	fp.AllowedTypes = matcher.Extensions()
	if home, homeErr := os.UserHomeDir(); homeErr == nil {
		fp.CurrentDirectory = home
	}

	draft := journal.NewDraft()
	if err := draft.SetMood(cfg.Mood()); err != nil {
		return nil, err
	}
	moodIndex := 0
	for i, mood := range journal.Moods() {
		if mood == cfg.Mood() {
			moodIndex = i
		}
	}

	return &model{
		textarea:   ta,
		spinner:    sp,
		picker:     fp,
		history:    viewport.New(80, 20),
		store:      st,
		draft:      draft,
		matcher:    matcher,
		cfg:        cfg,
		logger:     logger,
		moodIndex:  moodIndex,
		exportPath: cfg.ExportPath,
		toast:      &toastNotification{},
	}, nil
}

// Init starts the cursor blink.
func (m *model) Init() tea.Cmd {
	return textarea.Blink
}

// showToast displays a temporary notice over the base view.
func (m *model) showToast(message, details, icon string, isError bool) {
	m.toast.active = true
	m.toast.message = message
	m.toast.details = details
	m.toast.icon = icon
	m.toast.isError = isError
	m.toast.showUntil = time.Now().Add(3 * time.Second)
}
