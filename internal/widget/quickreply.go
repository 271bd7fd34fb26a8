package widget

import (
	"github.com/parleyhq/parley/internal/logger"
)

// ActionKind tags what selecting a quick reply does.
type ActionKind int

const (
	// ActionSendText submits canned text exactly as if the user typed it.
	ActionSendText ActionKind = iota
	// ActionOpenLink opens an external URL and produces no bot turn.
	ActionOpenLink
	// ActionEscalate flags the conversation urgent and schedules an
	// acknowledgement bot turn.
	ActionEscalate
)

func (k ActionKind) String() string {
	switch k {
	case ActionSendText:
		return "send-text"
	case ActionOpenLink:
		return "open-link"
	case ActionEscalate:
		return "escalate"
	default:
		return "unknown"
	}
}

// Action is the tagged variant carried by a quick-reply option. Text is set
// for ActionSendText, URL for ActionOpenLink.
type Action struct {
	Kind ActionKind
	Text string
	URL  string
}

// QuickReplyOption is a predefined clickable reply attached to a bot
// message. Options are immutable; selecting one appends a user message
// carrying the label, then triggers the action.
type QuickReplyOption struct {
	Label  string
	Action Action
}

// SendTextOption builds a quick reply that submits canned text.
func SendTextOption(label, text string) QuickReplyOption {
	return QuickReplyOption{Label: label, Action: Action{Kind: ActionSendText, Text: text}}
}

// OpenLinkOption builds a quick reply that opens an external URL.
func OpenLinkOption(label, url string) QuickReplyOption {
	return QuickReplyOption{Label: label, Action: Action{Kind: ActionOpenLink, URL: url}}
}

// EscalateOption builds a quick reply that marks the conversation urgent.
func EscalateOption(label string) QuickReplyOption {
	return QuickReplyOption{Label: label, Action: Action{Kind: ActionEscalate}}
}

// UrgentRequestLabel is the user-visible label synthesized when the urgent
// trigger is activated.
const UrgentRequestLabel = "This is urgent"

// EscalationPrompt is the producer prompt used for escalation bot turns.
const EscalationPrompt = "urgent request"

// SelectQuickReply appends a user message carrying the option's label, then
// dispatches the option's action. It is a silent no-op while a bot turn is
// pending, matching the debounce on SubmitUserText.
func (c *Controller) SelectQuickReply(opt QuickReplyOption) {
	c.mu.Lock()
	if c.closed || c.pending {
		c.mu.Unlock()
		logger.Debug("Widget: quick reply %q rejected (closed=%v)", opt.Label, c.closed)
		return
	}

	msg := c.store.Append(Message{Sender: SenderUser, Content: opt.Label})

	var openURL string
	switch opt.Action.Kind {
	case ActionSendText:
		c.pending = true
		c.scheduleBotTurnLocked(opt.Action.Text)
	case ActionOpenLink:
		// No bot turn follows a link; pending stays false.
		openURL = opt.Action.URL
	case ActionEscalate:
		c.urgent = true
		c.pending = true
		c.scheduleBotTurnLocked(EscalationPrompt)
	}
	opener := c.opener
	c.mu.Unlock()

	c.emit(Event{Kind: EventUserMessage, Message: msg})

	if openURL != "" {
		if err := opener(openURL); err != nil {
			logger.Warn("Widget: opening link %q failed: %v", openURL, err)
		}
	}
}
