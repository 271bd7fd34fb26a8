package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/parleyhq/parley/internal/widget"
)

// View renders the app. This is the core Bubble Tea view function.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion

	if m.width == 0 || m.height == 0 {
		v.SetContent("Loading...")
		return v
	}

	v.SetContent(m.renderToString())
	return v
}

// renderToString renders the current view as a string. Exercised directly by
// tests, which have no terminal to attach a program to.
func (m *Model) renderToString() string {
	if m.controller.Visibility() == widget.Hidden {
		m.footer.SetContext(false, false, 0)
		return lipgloss.JoinVertical(
			lipgloss.Left,
			m.launcher.View(),
			m.footer.View(),
		)
	}

	m.footer.SetContext(true, m.controller.PendingBotTurn(), len(m.chat.QuickReplies()))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		m.chat.View(),
		m.footer.View(),
	)
}
