package widget

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	perrors "github.com/parleyhq/parley/internal/errors"
	"github.com/parleyhq/parley/internal/logger"
)

// Visibility is the widget's open/closed state.
type Visibility int

const (
	Hidden Visibility = iota
	Open
)

func (v Visibility) String() string {
	switch v {
	case Hidden:
		return "hidden"
	case Open:
		return "open"
	default:
		return "unknown"
	}
}

// EventKind tags what a controller event reports.
type EventKind int

const (
	// EventStateChanged reports a visibility/unread/pending change with no
	// new message.
	EventStateChanged EventKind = iota
	// EventUserMessage reports an appended user message.
	EventUserMessage
	// EventBotReply reports a resolved bot turn.
	EventBotReply
)

func (k EventKind) String() string {
	switch k {
	case EventStateChanged:
		return "state-changed"
	case EventUserMessage:
		return "user-message"
	case EventBotReply:
		return "bot-reply"
	default:
		return "unknown"
	}
}

// Event is delivered on the controller's event channel so a rendering layer
// can observe mutations, including those made by timer goroutines.
type Event struct {
	Kind    EventKind
	Message Message // Set for EventUserMessage and EventBotReply
}

// LinkOpener performs the side effect of an open-link quick reply.
type LinkOpener func(url string) error

// FallbackReplyText is appended as the bot turn when the producer fails, so
// a pending turn always resolves.
const FallbackReplyText = "Sorry, something went wrong on our end. Please try again."

// produceTimeout bounds a single producer call.
const produceTimeout = 10 * time.Second

// eventBuffer sizes the event channel. The render loop drains promptly;
// overflow events are dropped with a warning rather than blocking a timer
// goroutine.
const eventBuffer = 32

// Controller is the single source of truth for one widget session. It owns
// the conversation state: visibility, unread count, pending bot turn, the
// urgent flag, and the message log. All mutations go through its methods.
type Controller struct {
	mu sync.Mutex

	store    *Store
	typing   *TypingSimulator
	producer Producer
	opener   LinkOpener
	delay    DelayRange

	sessionID  string
	visibility Visibility
	unread     int
	pending    bool
	urgent     bool
	closed     bool

	// turnSeq identifies the current scheduled bot turn. A resolving turn
	// whose sequence no longer matches was superseded (urgent activation)
	// and must not mutate state.
	turnSeq uint64

	events chan Event
}

// Option configures a Controller.
type Option func(*Controller)

// WithScheduler overrides the wall-clock scheduler, used by tests.
func WithScheduler(s Scheduler) Option {
	return func(c *Controller) {
		c.typing = NewTypingSimulator(s)
	}
}

// WithDelayRange overrides the typing delay bounds.
func WithDelayRange(r DelayRange) Option {
	return func(c *Controller) {
		c.delay = r
	}
}

// WithLinkOpener sets the handler for open-link quick replies.
func WithLinkOpener(o LinkOpener) Option {
	return func(c *Controller) {
		c.opener = o
	}
}

// New creates a controller for a fresh session. The widget starts Hidden
// with an empty log.
func New(producer Producer, opts ...Option) *Controller {
	c := &Controller{
		store:     NewStore(),
		typing:    NewTypingSimulator(NewScheduler()),
		producer:  producer,
		delay:     DefaultDelayRange,
		sessionID: uuid.NewString(),
		events:    make(chan Event, eventBuffer),
		opener: func(url string) error {
			logger.Info("Widget: external link requested: %s", url)
			return nil
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	logger.Info("Widget: session %s created", c.sessionID)
	return c
}

// Events returns the channel on which state changes are reported.
func (c *Controller) Events() <-chan Event {
	return c.events
}

// SessionID returns the unique ID of this widget session.
func (c *Controller) SessionID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessionID
}

// Visibility returns the current open/closed state.
func (c *Controller) Visibility() Visibility {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visibility
}

// UnreadCount returns the number of bot messages appended while Hidden.
func (c *Controller) UnreadCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.unread
}

// PendingBotTurn reports whether a typing-indicator delay is in flight.
func (c *Controller) PendingBotTurn() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

// Urgent reports whether the conversation has been escalated.
func (c *Controller) Urgent() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.urgent
}

// Messages returns a copy of the ordered conversation log.
func (c *Controller) Messages() []Message {
	return c.store.All()
}

// Toggle flips visibility between Hidden and Open. Transitioning into Open
// resets the unread count.
func (c *Controller) Toggle() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	if c.visibility == Hidden {
		c.openLocked()
	} else {
		c.visibility = Hidden
	}
	logger.Debug("Widget: visibility now %s", c.visibility)
	c.mu.Unlock()

	c.emit(Event{Kind: EventStateChanged})
}

// Open makes the widget visible and resets the unread count. Safe to call
// when already open.
func (c *Controller) Open() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.openLocked()
	c.mu.Unlock()

	c.emit(Event{Kind: EventStateChanged})
}

// Close hides the widget. Safe to call when already hidden.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.visibility = Hidden
	c.mu.Unlock()

	c.emit(Event{Kind: EventStateChanged})
}

func (c *Controller) openLocked() {
	c.visibility = Open
	c.unread = 0
}

// SubmitUserText appends a user message and schedules the bot's turn.
// Empty or whitespace-only text is silently ignored, as is any submit while
// a bot turn is already pending. This is UI debouncing, not an error.
func (c *Controller) SubmitUserText(text string) {
	trimmed := strings.TrimSpace(text)

	c.mu.Lock()
	if c.closed || trimmed == "" || c.pending {
		c.mu.Unlock()
		logger.Debug("Widget: submit rejected (empty=%v, pending=%v, closed=%v)",
			trimmed == "", c.pending, c.closed)
		return
	}

	msg := c.store.Append(Message{Sender: SenderUser, Content: trimmed})
	c.pending = true
	c.scheduleBotTurnLocked(trimmed)
	c.mu.Unlock()

	c.emit(Event{Kind: EventUserMessage, Message: msg})
}

// ActivateUrgent forces the widget open and runs the escalation flow. A
// stale pending bot turn is superseded rather than queued behind: the
// escalation acknowledgement is always the next bot message.
func (c *Controller) ActivateUrgent() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}

	c.typing.Cancel()
	c.pending = false
	c.openLocked()

	msg := c.store.Append(Message{Sender: SenderUser, Content: UrgentRequestLabel})
	c.urgent = true
	c.pending = true
	c.scheduleBotTurnLocked(EscalationPrompt)
	c.mu.Unlock()

	c.emit(Event{Kind: EventUserMessage, Message: msg})
}

// Shutdown ends the session. Any in-flight bot turn is cancelled; a timer
// that already fired becomes a no-op. The controller accepts no further
// operations.
func (c *Controller) Shutdown() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.typing.Cancel()
	c.mu.Unlock()

	logger.Info("Widget: session %s shut down", c.sessionID)
}

// scheduleBotTurnLocked arranges the delayed bot turn for the given prompt.
// Callers must hold c.mu and have set c.pending.
func (c *Controller) scheduleBotTurnLocked(prompt string) {
	c.turnSeq++
	seq := c.turnSeq
	d := c.typing.ScheduleBotTurn(c.delay, func() {
		c.resolveBotTurn(prompt, seq)
	})
	logger.Debug("Widget: bot turn %d scheduled in %s (session %s)", seq, d, c.sessionID)
}

// resolveBotTurn runs when the typing delay expires: it obtains the reply,
// appends the bot message, clears the pending flag, and bumps the unread
// count if the widget is hidden. A turn superseded by urgent activation or
// by shutdown leaves all state untouched.
func (c *Controller) resolveBotTurn(prompt string, seq uint64) {
	c.mu.Lock()
	if c.closed || seq != c.turnSeq {
		c.mu.Unlock()
		return
	}
	producer := c.producer
	session := c.sessionID
	c.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), produceTimeout)
	defer cancel()

	reply, err := producer.NextReply(ctx, prompt)
	if err != nil {
		logger.Warn("Widget: %v", perrors.ProducerFailed(session, err))
		reply = Reply{Text: FallbackReplyText}
	}

	c.mu.Lock()
	if c.closed || seq != c.turnSeq {
		c.mu.Unlock()
		return
	}
	msg := c.store.Append(Message{
		Sender:       SenderBot,
		Content:      reply.Text,
		QuickReplies: reply.QuickReplies,
	})
	c.pending = false
	if c.visibility == Hidden {
		c.unread++
	}
	c.mu.Unlock()

	c.emit(Event{Kind: EventBotReply, Message: msg})
}

// emit delivers an event without ever blocking a timer goroutine.
func (c *Controller) emit(ev Event) {
	select {
	case c.events <- ev:
	default:
		logger.Warn("Widget: event channel full, dropping %s event", ev.Kind)
	}
}
