package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width           int
	widgetOpen      bool // Whether the widget panel is showing
	pendingBotTurn  bool // Whether a bot turn is in flight (input debounced)
	quickReplyCount int  // How many numbered quick replies are showing
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{}
}

// SetContext updates the footer's context for conditional bindings
func (f *Footer) SetContext(widgetOpen, pendingBotTurn bool, quickReplyCount int) {
	f.widgetOpen = widgetOpen
	f.pendingBotTurn = pendingBotTurn
	f.quickReplyCount = quickReplyCount
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// View renders the footer
func (f *Footer) View() string {
	var bindings []KeyBinding

	if !f.widgetOpen {
		bindings = []KeyBinding{
			{Key: "tab", Desc: "open chat"},
			{Key: "u", Desc: "urgent"},
			{Key: "q", Desc: "quit"},
		}
	} else if f.pendingBotTurn {
		bindings = []KeyBinding{
			{Key: "tab", Desc: "hide"},
			{Key: "pgup/dn", Desc: "scroll"},
			{Key: "ctrl+c", Desc: "quit"},
		}
	} else {
		bindings = []KeyBinding{
			{Key: "enter", Desc: "send"},
			{Key: "tab", Desc: "hide"},
		}
		if f.quickReplyCount > 0 {
			// Only nine options can ever be bound to number keys
			n := f.quickReplyCount
			if n > 9 {
				n = 9
			}
			numKey := "1"
			if n > 1 {
				numKey = fmt.Sprintf("1-%d", n)
			}
			bindings = append(bindings, KeyBinding{Key: numKey, Desc: "quick reply"})
		}
		bindings = append(bindings,
			KeyBinding{Key: "ctrl+u", Desc: "urgent"},
			KeyBinding{Key: "ctrl+y", Desc: "copy transcript"},
			KeyBinding{Key: "pgup/dn", Desc: "scroll"},
			KeyBinding{Key: "ctrl+c", Desc: "quit"},
		)
	}

	var parts []string
	for _, b := range bindings {
		key := FooterKeyStyle.Render(b.Key)
		desc := FooterDescStyle.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}

	content := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")

	return FooterStyle.Width(f.width).Render(content)
}
