// Package widget implements the chat widget state machine: an append-only
// message log, open/closed visibility with an unread counter, a delayed
// "typing" bot turn, and quick-reply shortcuts. The package is independent
// of any rendering layer; the TUI in internal/app observes it through
// read-only accessors and the event channel.
package widget

import (
	"sync"
	"time"
)

// Sender identifies which side of the conversation a message belongs to.
type Sender int

const (
	SenderUser Sender = iota
	SenderBot
)

func (s Sender) String() string {
	switch s {
	case SenderUser:
		return "user"
	case SenderBot:
		return "bot"
	default:
		return "unknown"
	}
}

// Message is a single conversation entry. Messages are never mutated after
// they are appended to a Store.
type Message struct {
	ID           uint64
	Sender       Sender
	Content      string
	QuickReplies []QuickReplyOption // Options attached to a bot message, if any
	Timestamp    time.Time
}

// Store is an append-only, strictly ordered message log. IDs are assigned
// on append and increase monotonically within a session.
type Store struct {
	mu     sync.Mutex
	nextID uint64
	msgs   []Message
}

// NewStore creates an empty message store.
func NewStore() *Store {
	return &Store{nextID: 1}
}

// Append assigns the next ID to the message, stamps it if it carries no
// timestamp, appends it, and returns the stored copy. Nothing ever removes
// or reorders entries.
func (s *Store) Append(m Message) Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	m.ID = s.nextID
	s.nextID++
	if m.Timestamp.IsZero() {
		m.Timestamp = time.Now()
	}
	s.msgs = append(s.msgs, m)
	return m
}

// All returns a copy of the ordered message log. Callers can never reach
// the internal slice.
func (s *Store) All() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Message, len(s.msgs))
	copy(out, s.msgs)
	return out
}

// Len returns the number of stored messages.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.msgs)
}

// Last returns the most recent message and true, or a zero Message and
// false when the log is empty.
func (s *Store) Last() (Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.msgs) == 0 {
		return Message{}, false
	}
	return s.msgs[len(s.msgs)-1], true
}
