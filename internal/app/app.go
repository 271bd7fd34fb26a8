// Package app wires the widget controller to the Bubble Tea event loop. The
// model owns the UI components and translates key presses into controller
// operations; controller events flow back in through a listener command.
package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/parleyhq/parley/internal/config"
	"github.com/parleyhq/parley/internal/ui"
	"github.com/parleyhq/parley/internal/widget"
)

// Model is the main Bubble Tea model
type Model struct {
	cfg     *config.Config
	version string // App version (injected at build time)

	controller *widget.Controller
	urgent     *widget.UrgentTrigger

	header   *ui.Header
	footer   *ui.Footer
	chat     *ui.Chat
	launcher *ui.Launcher

	width  int
	height int

	// typing mirrors the controller's pending flag so the tick chain is
	// started exactly once per bot turn
	typing bool
}

// WidgetEventMsg delivers a controller event to the update loop
type WidgetEventMsg struct {
	Event widget.Event
}

// TranscriptCopiedMsg reports the outcome of a copy-transcript request
type TranscriptCopiedMsg struct {
	Err error
}

// New creates a new app model
func New(cfg *config.Config, ctrl *widget.Controller, version string) *Model {
	m := &Model{
		cfg:        cfg,
		version:    version,
		controller: ctrl,
		urgent:     widget.NewUrgentTrigger(ctrl),
		header:     ui.NewHeader(cfg.BusinessName),
		footer:     ui.NewFooter(),
		chat:       ui.NewChat(cfg.BusinessName),
		launcher:   ui.NewLauncher(cfg.BusinessName),
	}

	// The standard shortcuts are available before the first bot turn
	m.chat.SetQuickReplies(defaultQuickReplies(cfg))

	return m
}

// defaultQuickReplies builds the standard shortcut set shown before any bot
// message has attached its own.
func defaultQuickReplies(cfg *config.Config) []widget.QuickReplyOption {
	return []widget.QuickReplyOption{
		widget.SendTextOption("Opening hours", "What are your opening hours?"),
		widget.SendTextOption("Request a quote", "I'd like to request a quote."),
		widget.OpenLinkOption("Visit our website", cfg.WebsiteURL),
		widget.EscalateOption(widget.UrgentRequestLabel),
	}
}

// Init starts the widget event listener
func (m *Model) Init() tea.Cmd {
	return m.listenForWidgetEvents()
}

// updateSizes propagates the window size to all components
func (m *Model) updateSizes() {
	m.header.SetWidth(m.width)
	m.footer.SetWidth(m.width)
	m.launcher.SetSize(m.width, m.height-ui.FooterHeight)

	chatHeight := m.height - ui.HeaderHeight - ui.FooterHeight
	if chatHeight < 1 {
		chatHeight = 1
	}
	m.chat.SetSize(m.width, chatHeight)
}
