package ui

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// TypingTickMsg is sent to advance the typing indicator animation
type TypingTickMsg time.Time

// typingFrames are the characters used for the shimmering typing indicator
var typingFrames = []string{"·", "✺", "✹", "✸", "✷", "✶", "✵", "✴", "✳", "✲", "✱", "✧", "✦", "·"}

// TypingTick returns a command that sends a tick message after a delay
func TypingTick() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(t time.Time) tea.Msg {
		return TypingTickMsg(t)
	})
}

// renderTypingIndicator renders the animated "<name> is typing..." line
func renderTypingIndicator(name string, frameIdx int) string {
	frame := typingFrames[frameIdx%len(typingFrames)]

	frameStyle := lipgloss.NewStyle().
		Foreground(ColorBot).
		Bold(true)

	return frameStyle.Render(frame) + " " + StatusTypingStyle.Render(name+" is typing...")
}
