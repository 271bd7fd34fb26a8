package ui

import (
	"strings"
	"testing"
)

func TestHeaderShowsBusinessName(t *testing.T) {
	h := NewHeader("Aurora Cleaning")
	h.SetWidth(60)

	view := h.View()
	if !strings.Contains(view, "A") {
		t.Error("header should render content")
	}
	// Per-rune gradient styling means we check the stripped text
	if !containsText(view, "Aurora Cleaning") {
		t.Errorf("header missing business name: %q", view)
	}
}

func TestHeaderShowsUnreadAndUrgent(t *testing.T) {
	h := NewHeader("Aurora Cleaning")
	h.SetWidth(60)
	h.SetUnread(3)
	h.SetUrgent(true)

	view := h.View()
	if !containsText(view, "3 unread") {
		t.Errorf("header missing unread count: %q", view)
	}
	if !containsText(view, "URGENT") {
		t.Errorf("header missing urgent marker: %q", view)
	}
}

func TestHeaderZeroWidth(t *testing.T) {
	h := NewHeader("Aurora Cleaning")
	// Must not panic with no width set
	_ = h.View()
}

// containsText checks for a substring ignoring any ANSI escape sequences
// introduced by per-rune styling.
func containsText(styled, want string) bool {
	return strings.Contains(stripANSI(styled), want)
}

func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
