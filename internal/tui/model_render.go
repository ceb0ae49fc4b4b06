package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Soumodip04/MindScope-sub001/internal/core/styles"
)

// View renders the activity log on the left and the toast stack on the
// right, anchored to the bottom of the screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	header := styles.HeaderStyle.Render("mindscope notifications")
	if m.status != "" {
		header += "  " + styles.MutedStyle.Render(m.status)
	}
	footer := styles.HelpStyle.Render(m.help.View(m.keys))

	bodyHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 1)
	toasts := m.toastView.View()
	logWidth := max(m.width-lipgloss.Width(toasts)-2, 20)

	activity := m.renderActivity(bodyHeight, logWidth)
	body := lipgloss.JoinHorizontal(lipgloss.Bottom,
		lipgloss.NewStyle().Width(logWidth).Height(bodyHeight).Render(activity),
		toasts,
	)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m Model) renderActivity(height, width int) string {
	lines := m.activity
	if len(lines) > height {
		lines = lines[len(lines)-height:]
	}
	if len(lines) == 0 {
		return styles.MutedStyle.Render("waiting for notifications…")
	}

	style := styles.MutedStyle.MaxWidth(width)
	rendered := make([]string, 0, len(lines))
	for _, l := range lines {
		rendered = append(rendered, style.Render(l))
	}
	return strings.Join(rendered, "\n")
}
