package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/Soumodip04/MindScope-sub001/internal/core/notify"
	"github.com/Soumodip04/MindScope-sub001/internal/core/styles"
)

const defaultToastWidth = 50

// ToastView renders the toast stack, oldest at top and newest at bottom.
type ToastView struct {
	controller *ToastController
	width      int
}

func NewToastView(controller *ToastController, width int) *ToastView {
	if width <= 0 {
		width = defaultToastWidth
	}
	return &ToastView{controller: controller, width: width}
}

// Width returns the rendered width of a toast including its border.
func (v *ToastView) Width() int {
	return v.width + 2
}

// View renders the visible toasts as a single string.
func (v *ToastView) View() string {
	toasts := v.controller.Visible()
	if len(toasts) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(toasts)+1)
	if hidden := v.controller.Hidden(); hidden > 0 {
		rendered = append(rendered, styles.MutedStyle.Render(fmt.Sprintf("+%d more", hidden)))
	}
	for _, t := range toasts {
		rendered = append(rendered, renderToast(t, v.width))
	}

	return lipgloss.JoinVertical(lipgloss.Right, rendered...)
}

func renderToast(t toast, width int) string {
	n := t.notification
	sev := string(n.Severity)
	color := styles.SeverityColor(sev)
	inner := max(width-2, 1)

	lines := []string{
		styles.ToastTitleStyle.Foreground(color).Render(styles.SeverityIcon(sev) + " " + n.Title),
	}
	if n.Message != "" {
		lines = append(lines, styles.ToastMessageStyle.Width(inner).Render(n.Message))
	}
	if len(n.Actions) > 0 {
		lines = append(lines, renderActions(n.Actions))
	}

	if n.Expires() {
		bar := progress.New(
			progress.WithSolidFill(string(color)),
			progress.WithWidth(inner),
			progress.WithoutPercentage(),
		)
		lines = append(lines, bar.ViewAs(t.remaining))
	} else {
		lines = append(lines, styles.MutedStyle.Render(styles.IconPinned+" pinned"))
	}

	return styles.ToastStyle.
		BorderForeground(color).
		Width(width).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func renderActions(actions []notify.Action) string {
	buttons := make([]string, 0, len(actions))
	for _, a := range actions {
		style := styles.ActionSecondaryStyle
		if a.Style == notify.ActionPrimary {
			style = styles.ActionPrimaryStyle
		}
		buttons = append(buttons, style.Render(a.Label))
	}
	return strings.Join(buttons, " ")
}

// RenderStack renders ns as a static toast stack, for output outside the
// live view.
func RenderStack(ns []notify.Notification, maxVisible, width int) string {
	c := NewToastController(maxVisible)
	c.Sync(ns)
	return NewToastView(c, width).View()
}
