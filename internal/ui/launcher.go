package ui

import (
	"fmt"

	"charm.land/lipgloss/v2"
)

// Launcher is the collapsed widget: a chat bubble with an unread badge,
// shown centered while the widget is hidden.
type Launcher struct {
	width        int
	height       int
	businessName string
	unread       int
	urgent       bool
}

// NewLauncher creates a new launcher bubble
func NewLauncher(businessName string) *Launcher {
	return &Launcher{businessName: businessName}
}

// SetSize sets the area the launcher is centered in
func (l *Launcher) SetSize(width, height int) {
	l.width = width
	l.height = height
}

// SetUnread sets the unread badge count
func (l *Launcher) SetUnread(n int) {
	l.unread = n
}

// SetUrgent toggles the urgent marker on the bubble
func (l *Launcher) SetUrgent(urgent bool) {
	l.urgent = urgent
}

// View renders the launcher centered in its area
func (l *Launcher) View() string {
	title := LauncherTitleStyle.Render("💬 Chat with " + l.businessName)

	lines := []string{title}

	if l.unread > 0 {
		badge := UnreadBadgeStyle.Render(fmt.Sprintf("%d new", l.unread))
		lines = append(lines, "", badge)
	}
	if l.urgent {
		lines = append(lines, "", HeaderUrgentStyle.Render("URGENT"))
	}

	lines = append(lines, "", LauncherHintStyle.Render("tab to open"))

	box := LauncherBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))

	if l.width <= 0 || l.height <= 0 {
		return box
	}

	return lipgloss.Place(
		l.width, l.height,
		lipgloss.Center, lipgloss.Center,
		box,
	)
}
