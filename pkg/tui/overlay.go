package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderOverlay renders content centered on a clean background, giving a
// modal appearance without showing the base view underneath.
func renderOverlay(baseView, content string, width, height int) string {
	if content == "" {
		return baseView
	}
	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		content,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color("0")),
	)
}

// renderToastOverlay lays toastContent over the bottom of baseView without
// affecting its layout.
func renderToastOverlay(baseView, toastContent string) string {
	if toastContent == "" {
		return baseView
	}

	baseLines := strings.Split(baseView, "\n")
	toastLines := strings.Split(strings.TrimRight(toastContent, "\n"), "\n")

	// Just above the bottom bar.
	startLine := len(baseLines) - 3 - len(toastLines)
	if startLine < 0 {
		startLine = 0
	}

	var result strings.Builder
	for i, line := range baseLines {
		toastIdx := i - startLine
		if toastIdx >= 0 && toastIdx < len(toastLines) {
			result.WriteString("  ")
			result.WriteString(toastLines[toastIdx])
		} else {
			result.WriteString(line)
		}
		if i < len(baseLines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}
