package tui

import "github.com/charmbracelet/lipgloss"

// Color Palette
// Single source of truth for all TUI colors. Warm ember tones throughout.
var (
	emberOrange = lipgloss.Color("#FF8C42") // primary accent
	amberGold   = lipgloss.Color("#FFC15E") // highlights, selected mood
	ashGray     = lipgloss.Color("#6B7280") // secondary text
	warmWhite   = lipgloss.Color("#FDF6EC") // primary text
	mossGreen   = lipgloss.Color("#A8E6CF") // mood labels, success states
)

// Common Styles
var (
	headerStyle = lipgloss.NewStyle().
			Foreground(emberOrange).
			Bold(true)

	tipsStyle = lipgloss.NewStyle().
			Foreground(ashGray)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(ashGray).
			Padding(0, 1)

	inputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(emberOrange).
			Padding(0, 1)

	inputBoxBlurredStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ashGray).
				Padding(0, 1)

	moodLabelStyle = lipgloss.NewStyle().
			Foreground(warmWhite).
			Bold(true)

	moodChipStyle = lipgloss.NewStyle().
			Foreground(ashGray).
			Padding(0, 1)

	moodSelectedStyle = lipgloss.NewStyle().
				Foreground(amberGold).
				Bold(true).
				Padding(0, 1)

	moodFocusedStyle = lipgloss.NewStyle().
				Foreground(amberGold).
				Bold(true).
				Reverse(true).
				Padding(0, 1)

	photoLineStyle = lipgloss.NewStyle().
			Foreground(ashGray).
			Padding(0, 1)

	// History styles
	dateHeaderStyle = lipgloss.NewStyle().
			Foreground(amberGold).
			Bold(true).
			Underline(true)

	entryMoodStyle = lipgloss.NewStyle().
			Foreground(mossGreen)

	photoMarkStyle = lipgloss.NewStyle().
			Foreground(ashGray).
			Italic(true)

	entryTextStyle = lipgloss.NewStyle().
			Foreground(warmWhite)

	emptyHistoryStyle = lipgloss.NewStyle().
				Foreground(ashGray).
				Italic(true)

	// Overlay styles
	overlayBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(emberOrange).
			Padding(1, 2)

	overlayTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(emberOrange)

	overlayHelpStyle = lipgloss.NewStyle().
				Foreground(ashGray).
				Italic(true)
)
