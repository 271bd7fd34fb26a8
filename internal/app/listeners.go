package app

import (
	tea "charm.land/bubbletea/v2"
)

// listenForWidgetEvents creates a command that waits for the next controller
// event. The handler re-issues the listener, so exactly one goroutine blocks
// on the channel at a time.
func (m *Model) listenForWidgetEvents() tea.Cmd {
	ch := m.controller.Events()
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return WidgetEventMsg{Event: ev}
	}
}
