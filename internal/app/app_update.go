package app

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/parleyhq/parley/internal/clipboard"
	"github.com/parleyhq/parley/internal/keys"
	"github.com/parleyhq/parley/internal/logger"
	"github.com/parleyhq/parley/internal/notification"
	"github.com/parleyhq/parley/internal/ui"
	"github.com/parleyhq/parley/internal/widget"
)

// Update handles messages. This is the core Bubble Tea update function that
// routes all messages to appropriate handlers.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case tea.KeyPressMsg:
		if model, cmd := m.handleKeyPress(msg); model != nil {
			return model, cmd
		}
		// Key not handled, fall through to the chat input

	case ui.TypingTickMsg:
		return m, m.chat.HandleTypingTick()

	case WidgetEventMsg:
		return m.handleWidgetEvent(msg)

	case TranscriptCopiedMsg:
		if msg.Err != nil {
			logger.Warn("App: transcript copy failed: %v", msg.Err)
		}
		return m, nil
	}

	// Only the open widget has an input to forward to
	if m.controller.Visibility() == widget.Open {
		chat, cmd := m.chat.Update(msg)
		m.chat = chat
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input. Returns (nil, nil) when the key
// should fall through to the chat input.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	open := m.controller.Visibility() == widget.Open

	logger.Log("App: KeyPressMsg: key=%q, open=%v", key, open)

	// Global bindings
	switch key {
	case keys.CtrlC:
		return m.quit()
	case keys.Tab:
		m.controller.Toggle()
		return m, nil
	}

	if !open {
		// Launcher bindings: plain letters are free since there is no input
		switch key {
		case "q":
			return m.quit()
		case "u":
			m.urgent.Activate()
			return m, nil
		case keys.Enter, keys.Space:
			m.controller.Open()
			return m, nil
		}
		return m, nil
	}

	// Open-widget bindings
	switch key {
	case keys.Escape:
		m.controller.Close()
		return m, nil
	case keys.Enter:
		m.controller.SubmitUserText(m.chat.Input())
		m.chat.ClearInput()
		return m, nil
	case keys.CtrlU:
		m.urgent.Activate()
		return m, nil
	case keys.CtrlY:
		return m, m.copyTranscript()
	}

	// Number keys dispatch quick replies, but only while the input is empty
	// so typing "24 Main St" is never hijacked
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' && m.chat.Input() == "" {
		idx := int(key[0] - '1')
		opts := m.chat.QuickReplies()
		if idx < len(opts) {
			m.controller.SelectQuickReply(opts[idx])
			return m, nil
		}
	}

	return nil, nil
}

// quit shuts the session down and exits the program
func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.controller.Shutdown()
	return m, tea.Quit
}

// handleWidgetEvent refreshes the UI from controller state and restarts the
// listener for the next event.
func (m *Model) handleWidgetEvent(msg WidgetEventMsg) (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{m.listenForWidgetEvents()}

	m.chat.SetMessages(m.controller.Messages())
	m.header.SetUnread(m.controller.UnreadCount())
	m.header.SetUrgent(m.controller.Urgent())
	m.launcher.SetUnread(m.controller.UnreadCount())
	m.launcher.SetUrgent(m.controller.Urgent())

	pending := m.controller.PendingBotTurn()
	m.chat.SetTyping(pending)
	if pending && !m.typing {
		cmds = append(cmds, ui.TypingTick())
	}
	m.typing = pending

	// A reply that lands while the widget is hidden mirrors the unread badge
	// to a desktop notification
	if msg.Event.Kind == widget.EventBotReply &&
		m.controller.Visibility() == widget.Hidden &&
		m.cfg.Notifications {
		name := m.cfg.BusinessName
		preview := msg.Event.Message.Content
		cmds = append(cmds, func() tea.Msg {
			if err := notification.UnreadReply(name, preview); err != nil {
				logger.Warn("App: unread notification failed: %v", err)
			}
			return nil
		})
	}

	return m, tea.Batch(cmds...)
}

// copyTranscript writes the conversation log to the system clipboard
func (m *Model) copyTranscript() tea.Cmd {
	text := transcript(m.controller.Messages(), m.cfg.BusinessName)
	return func() tea.Msg {
		return TranscriptCopiedMsg{Err: clipboard.WriteText(text)}
	}
}

// transcript formats the message log as plain text, one entry per line
func transcript(msgs []widget.Message, businessName string) string {
	var b strings.Builder
	for _, msg := range msgs {
		label := "You"
		if msg.Sender == widget.SenderBot {
			label = businessName
		}
		fmt.Fprintf(&b, "[%s] %s: %s\n", msg.Timestamp.Format("15:04"), label, msg.Content)
	}
	return b.String()
}
