// Package producer supplies the bot side of a widget conversation. The
// Script producer answers from a closed set of canned turns; the OpenAI
// producer calls an OpenAI-compatible endpoint. Both satisfy
// widget.Producer, so the controller cannot tell them apart.
package producer

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/parleyhq/parley/internal/widget"
)

// Script is the default local producer: deterministic canned replies keyed
// on simple keyword matching, with a rotating set of generic fallbacks.
type Script struct {
	businessName string
	websiteURL   string

	mu          sync.Mutex
	fallbackIdx int
	greetedOnce bool
}

// NewScript creates a script producer for the given business.
func NewScript(businessName, websiteURL string) *Script {
	return &Script{
		businessName: businessName,
		websiteURL:   websiteURL,
	}
}

// StandardQuickReplies are the shortcuts attached to the greeting turn.
func (s *Script) StandardQuickReplies() []widget.QuickReplyOption {
	return []widget.QuickReplyOption{
		widget.SendTextOption("Opening hours", "What are your opening hours?"),
		widget.SendTextOption("Request a quote", "I'd like to request a quote."),
		widget.OpenLinkOption("Visit our website", s.websiteURL),
		widget.EscalateOption(widget.UrgentRequestLabel),
	}
}

// fallbackLines rotate when no keyword matches.
var fallbackLines = []string{
	"Thanks for your message! One of our team members will get back to you shortly.",
	"Got it - we'll look into that and follow up with you.",
	"Thanks! Is there anything else I can help you with in the meantime?",
}

// NextReply matches the user text against the canned script. It never
// returns an error.
func (s *Script) NextReply(_ context.Context, userText string) (widget.Reply, error) {
	text := strings.ToLower(strings.TrimSpace(userText))

	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case containsAny(text, "urgent", "emergency", "asap"):
		return widget.Reply{
			Text: "Understood - we've flagged your request as urgent. Someone from our team will reach out to you right away.",
		}, nil

	case containsAny(text, "hour", "open", "close", "when"):
		return widget.Reply{
			Text: fmt.Sprintf("%s is open Monday to Friday, 8am to 6pm, and Saturdays from 9am to 1pm.", s.businessName),
		}, nil

	case containsAny(text, "price", "quote", "cost", "estimate"):
		return widget.Reply{
			Text: "Happy to help with a quote! Tell us a bit about the job and we'll send an estimate within one business day.",
		}, nil

	case containsAny(text, "hello", "hi ", "hey", "bonjour", "good morning", "good afternoon"):
		return s.greetingLocked(), nil
	}

	if !s.greetedOnce {
		return s.greetingLocked(), nil
	}

	line := fallbackLines[s.fallbackIdx%len(fallbackLines)]
	s.fallbackIdx++
	return widget.Reply{Text: line}, nil
}

// greetingLocked builds the greeting turn. Callers must hold s.mu.
func (s *Script) greetingLocked() widget.Reply {
	s.greetedOnce = true
	return widget.Reply{
		Text:         fmt.Sprintf("Hi there! Welcome to %s. How can we help you today?", s.businessName),
		QuickReplies: s.StandardQuickReplies(),
	}
}

func containsAny(text string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
