package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/entrhq/ember/pkg/journal"
)

// View renders the entire TUI. Called by Bubble Tea on every redraw.
func (m *model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	base := lipgloss.JoinVertical(
		lipgloss.Left,
		m.buildHeader(),
		m.buildTips(),
		"",
		m.buildMoodRow(),
		m.buildInputBox(),
		m.buildPhotoLine(),
		m.buildBottomBar(),
	)

	if m.pickingPhoto {
		base = renderOverlay(base, m.buildPickerBox(), m.width, m.height)
	}
	if m.showHistory {
		base = renderOverlay(base, m.buildHistoryBox(), m.width, m.height)
	}
	if m.toast.active && time.Now().Before(m.toast.showUntil) {
		base = renderToastOverlay(base, m.renderToast())
	}
	return base
}

func (m *model) buildHeader() string {
	return headerStyle.Render(`
	███████╗███╗   ███╗██████╗ ███████╗██████╗
	██╔════╝████╗ ████║██╔══██╗██╔════╝██╔══██╗
	█████╗  ██╔████╔██║██████╔╝█████╗  ██████╔╝
	██╔══╝  ██║╚██╔╝██║██╔══██╗██╔══╝  ██╔══██╗
	███████╗██║ ╚═╝ ██║██████╔╝███████╗██║  ██║
	╚══════╝╚═╝     ╚═╝╚═════╝ ╚══════╝╚═╝  ╚═╝`)
}

func (m *model) buildTips() string {
	if m.focus == focusMood {
		return tipsStyle.Render(`  Mood: ←/→ or 1-5 to pick • Enter or Tab to return to writing`)
	}
	return tipsStyle.Render(`  Tips: Write freely • Tab for mood • Ctrl+S save • Ctrl+O photo • Ctrl+L history • Ctrl+E export • Ctrl+C quit`)
}

func (m *model) buildMoodRow() string {
	chips := make([]string, 0, len(journal.Moods())+1)
	chips = append(chips, moodLabelStyle.Render(" Mood:"))
	for i, mood := range journal.Moods() {
		label := fmt.Sprintf("%s %s", mood.Icon(), mood.Label())
		switch {
		case i == m.moodIndex && m.focus == focusMood:
			chips = append(chips, moodFocusedStyle.Render(label))
		case i == m.moodIndex:
			chips = append(chips, moodSelectedStyle.Render(label))
		default:
			chips = append(chips, moodChipStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, chips...)
}

func (m *model) buildInputBox() string {
	style := inputBoxStyle
	if m.focus != focusContent {
		style = inputBoxBlurredStyle
	}
	return style.Width(m.width - 4).Render(m.textarea.View())
}

func (m *model) buildPhotoLine() string {
	switch {
	case m.loadingPhoto:
		return photoLineStyle.Render(fmt.Sprintf("%s Reading photo...", m.spinner.View()))
	case m.photoName != "":
		return photoLineStyle.Render(fmt.Sprintf("📷 %s attached • Ctrl+X to remove", m.photoName))
	default:
		return photoLineStyle.Render("No photo attached • Ctrl+O to attach one")
	}
}

func (m *model) buildBottomBar() string {
	left := "~/.ember"
	center := fmt.Sprintf("%d entries", m.store.Len())
	right := "Ember Journal"

	used := len(left) + len(center) + len(right)
	leftPad := (m.width - used) / 3
	rightPad := m.width - used - leftPad*2
	if leftPad < 2 {
		leftPad = 2
	}
	if rightPad < 2 {
		rightPad = 2
	}

	return statusBarStyle.Width(m.width).Render(
		left + strings.Repeat(" ", leftPad) + center + strings.Repeat(" ", rightPad) + right,
	)
}

func (m *model) buildHistoryBox() string {
	title := overlayTitleStyle.Render("🗒  Journal History")
	help := overlayHelpStyle.Render("↑/↓ scroll • Esc or Ctrl+L to close")
	body := lipgloss.JoinVertical(lipgloss.Left, title, "", m.history.View(), "", help)
	return overlayBoxStyle.Width(m.width - 6).Render(body)
}

func (m *model) buildPickerBox() string {
	title := overlayTitleStyle.Render("📷 Attach a photo")
	help := overlayHelpStyle.Render("Enter to select • Esc to cancel")
	body := lipgloss.JoinVertical(lipgloss.Left, title, "", m.picker.View(), "", help)
	return overlayBoxStyle.Width(m.width - 6).Render(body)
}

func (m *model) renderToast() string {
	boxWidth := m.width - 4
	if boxWidth < 40 {
		boxWidth = 40
	}

	var content strings.Builder
	content.WriteString(fmt.Sprintf("%s %s", m.toast.icon, m.toast.message))
	if m.toast.details != "" {
		content.WriteString("\n")
		content.WriteString(m.toast.details)
	}

	borderColor := emberOrange
	if m.toast.isError {
		borderColor = lipgloss.Color("203")
	}
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(boxWidth)

	return "\n" + boxStyle.Render(content.String()) + "\n"
}
