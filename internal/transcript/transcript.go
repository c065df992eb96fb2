// Package transcript keeps the ordered, in-memory list of chat messages of a
// session. A transcript is append-only and lives as long as its session.
package transcript

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Transcript is an append-only message list safe for concurrent use.
type Transcript struct {
	sessionID string

	mu       sync.RWMutex
	messages []Message
	now      func() time.Time
}

// New returns an empty transcript for sessionID.
func New(sessionID string) *Transcript {
	return &Transcript{sessionID: sessionID, now: time.Now}
}

// Append adds a message and returns it with its generated ID and timestamp.
func (t *Transcript) Append(author Author, text string) Message {
	msg := Message{
		ID:        uuid.NewString(),
		SessionID: t.sessionID,
		Author:    author,
		Text:      text,
		CreatedAt: t.now(),
	}

	t.mu.Lock()
	t.messages = append(t.messages, msg)
	t.mu.Unlock()
	return msg
}

// List returns all messages in chronological order.
func (t *Transcript) List() []Message {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Message, len(t.messages))
	copy(out, t.messages)
	return out
}

// Recent returns up to the last n messages, oldest first.
func (t *Transcript) Recent(n int) []Message {
	if n <= 0 {
		return nil
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	start := len(t.messages) - n
	if start < 0 {
		start = 0
	}
	out := make([]Message, len(t.messages)-start)
	copy(out, t.messages[start:])
	return out
}

// Len returns the number of messages.
func (t *Transcript) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.messages)
}
