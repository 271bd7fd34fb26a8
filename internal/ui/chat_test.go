package ui

import (
	"strings"
	"testing"

	"github.com/parleyhq/parley/internal/widget"
)

func testMessages() []widget.Message {
	return []widget.Message{
		{ID: 1, Sender: widget.SenderUser, Content: "Bonjour"},
		{ID: 2, Sender: widget.SenderBot, Content: "Hi! How can we help?",
			QuickReplies: []widget.QuickReplyOption{
				{Label: "Opening hours", Action: widget.Action{Kind: widget.ActionSendText, Text: "What are your opening hours?"}},
				{Label: "This is urgent", Action: widget.Action{Kind: widget.ActionEscalate}},
			},
		},
	}
}

func TestChatRendersMessages(t *testing.T) {
	c := NewChat("Aurora Cleaning")
	c.SetSize(80, 24)
	c.SetMessages(testMessages())

	view := c.View()
	if !containsText(view, "Bonjour") {
		t.Error("chat should render the user message")
	}
	if !containsText(view, "How can we help?") {
		t.Error("chat should render the bot message")
	}
	if !containsText(view, "You") {
		t.Error("chat should label user messages")
	}
}

func TestChatAdoptsQuickRepliesFromLatestBotMessage(t *testing.T) {
	c := NewChat("Aurora Cleaning")
	c.SetSize(80, 24)
	c.SetMessages(testMessages())

	opts := c.QuickReplies()
	if len(opts) != 2 {
		t.Fatalf("expected 2 quick replies, got %d", len(opts))
	}
	if opts[0].Label != "Opening hours" {
		t.Errorf("first option = %q, want %q", opts[0].Label, "Opening hours")
	}

	view := c.View()
	if !containsText(view, "1 Opening hours") {
		t.Errorf("quick reply bar missing numbered option")
	}
	if !containsText(view, "2 This is urgent") {
		t.Errorf("quick reply bar missing urgent option")
	}
}

func TestChatKeepsQuickRepliesWhenBotOmitsThem(t *testing.T) {
	c := NewChat("Aurora Cleaning")
	c.SetSize(80, 24)
	c.SetMessages(testMessages())

	msgs := append(testMessages(),
		widget.Message{ID: 3, Sender: widget.SenderUser, Content: "thanks"},
		widget.Message{ID: 4, Sender: widget.SenderBot, Content: "Anytime!"},
	)
	c.SetMessages(msgs)

	if len(c.QuickReplies()) != 2 {
		t.Error("options from the previous bot message should persist")
	}
}

func TestChatTypingIndicator(t *testing.T) {
	c := NewChat("Aurora Cleaning")
	c.SetSize(80, 24)
	c.SetMessages(testMessages())
	c.SetTyping(true)

	if !containsText(c.View(), "is typing") {
		t.Error("typing indicator should be visible")
	}

	cmd := c.HandleTypingTick()
	if cmd == nil {
		t.Error("tick should reschedule while typing")
	}

	c.SetTyping(false)
	if containsText(c.View(), "is typing") {
		t.Error("typing indicator should be gone")
	}
	if c.HandleTypingTick() != nil {
		t.Error("tick should stop once typing ends")
	}
}

func TestChatInputTrimsWhitespace(t *testing.T) {
	c := NewChat("Aurora Cleaning")
	c.SetSize(80, 24)
	c.input.SetValue("  hello  ")

	if got := c.Input(); got != "hello" {
		t.Errorf("Input() = %q, want %q", got, "hello")
	}

	c.ClearInput()
	if got := c.Input(); got != "" {
		t.Errorf("Input() after clear = %q, want empty", got)
	}
}

func TestChatEmptyQuickReplyBar(t *testing.T) {
	c := NewChat("Aurora Cleaning")
	c.SetSize(80, 24)

	if bar := c.renderQuickReplyBar(); bar != "" {
		t.Errorf("expected empty bar, got %q", bar)
	}
}

func TestLauncherShowsUnreadBadge(t *testing.T) {
	l := NewLauncher("Aurora Cleaning")
	l.SetSize(80, 24)
	l.SetUnread(2)

	view := l.View()
	if !containsText(view, "Chat with Aurora Cleaning") {
		t.Error("launcher should name the business")
	}
	if !containsText(view, "2 new") {
		t.Error("launcher should show the unread badge")
	}

	l.SetUnread(0)
	if strings.Contains(stripANSI(l.View()), "new") {
		t.Error("launcher should hide the badge at zero unread")
	}
}
