package widget

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/qmuntal/stateless"

	"github.com/comigor/mishmish-go/internal/catalog"
	"github.com/comigor/mishmish-go/internal/logger"
	"github.com/comigor/mishmish-go/internal/matcher"
	"github.com/comigor/mishmish-go/internal/transcript"
)

// Session is one chat: its transcript, turn state, catalog snapshot and
// pending notifications. Nothing in it outlives the process.
type Session struct {
	ID        string
	CreatedAt time.Time

	transcript *transcript.Transcript

	mu        sync.Mutex
	turn      *stateless.StateMachine
	catalog   *catalog.Snapshot
	keyPrompt bool
	toasts    []Toast
}

func newSession() *Session {
	id := uuid.NewString()
	s := &Session{
		ID:         id,
		CreatedAt:  time.Now(),
		transcript: transcript.New(id),
		turn:       newTurnMachine(id),
	}
	s.transcript.Append(transcript.AuthorBot, matcher.Greeting)
	return s
}

// Messages returns the transcript in order.
func (s *Session) Messages() []transcript.Message {
	return s.transcript.List()
}

// Typing reports whether a reply is being prepared.
func (s *Session) Typing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.turn.MustState() != StateIdle
}

// Catalog returns the snapshot of the last catalog fetched in this session.
func (s *Session) Catalog() *catalog.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog
}

// SetCatalog replaces the session's snapshot.
func (s *Session) SetCatalog(snap *catalog.Snapshot) {
	s.mu.Lock()
	s.catalog = snap
	s.mu.Unlock()
}

// ClearCatalog drops the session's snapshot.
func (s *Session) ClearCatalog() {
	s.SetCatalog(nil)
}

// KeyPromptOpen reports whether the user was asked for an API key and has
// not supplied one yet.
func (s *Session) KeyPromptOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.keyPrompt
}

func (s *Session) setKeyPrompt(open bool) {
	s.mu.Lock()
	s.keyPrompt = open
	s.mu.Unlock()
}

// Toasts returns and clears the pending notifications.
func (s *Session) Toasts() []Toast {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.toasts
	s.toasts = nil
	return out
}

func (s *Session) notify(t Toast) {
	s.mu.Lock()
	s.toasts = append(s.toasts, t)
	s.mu.Unlock()
}

// fire moves the turn FSM. A trigger the current state does not permit
// returns an error.
func (s *Session) fire(trigger turnTrigger) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.turn.Fire(trigger)
}

// finishTurn returns the FSM to Idle.
func (s *Session) finishTurn() {
	if err := s.fire(TriggerReplied); err != nil {
		logger.L.Warn("FSM fire error", "session", s.ID, "error", err)
	}
}
