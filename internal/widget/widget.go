// Package widget is the chat widget: it accepts user messages, answers them
// from the keyword matcher or the catalog lookup, and keeps per-session
// transcripts and notifications.
package widget

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/comigor/mishmish-go/internal/catalog"
	"github.com/comigor/mishmish-go/internal/config"
	"github.com/comigor/mishmish-go/internal/keys"
	"github.com/comigor/mishmish-go/internal/logger"
	"github.com/comigor/mishmish-go/internal/matcher"
	"github.com/comigor/mishmish-go/internal/transcript"
)

var (
	ErrEmptyMessage    = errors.New("message is empty")
	ErrBusy            = errors.New("a reply is already being prepared")
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidKey      = errors.New("api key was rejected by the provider")
)

// Widget holds the chat sessions and answers their messages.
type Widget struct {
	matcher *matcher.Matcher
	lookup  *catalog.Lookup
	keys    *keys.Manager
	pacer   *Pacer
	sleep   func(ctx context.Context, d time.Duration) error

	mu       sync.RWMutex
	sessions map[string]*Session
}

// Option customises a Widget.
type Option func(*Widget)

// WithPacer replaces the typing delay source.
func WithPacer(p *Pacer) Option {
	return func(w *Widget) { w.pacer = p }
}

// WithSleep replaces how the typing delay is waited out.
func WithSleep(fn func(ctx context.Context, d time.Duration) error) Option {
	return func(w *Widget) { w.sleep = fn }
}

// New creates a new widget.
func New(m *matcher.Matcher, lookup *catalog.Lookup, km *keys.Manager, cfg config.ChatConfig, opts ...Option) *Widget {
	w := &Widget{
		matcher:  m,
		lookup:   lookup,
		keys:     km,
		pacer:    NewPacer(cfg.MinDelay, cfg.MaxDelay, nil),
		sleep:    sleepCtx,
		sessions: make(map[string]*Session),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// NewSession starts a session whose transcript holds only the greeting.
func (w *Widget) NewSession() *Session {
	s := newSession()
	w.mu.Lock()
	w.sessions[s.ID] = s
	w.mu.Unlock()
	logger.L.Info("session started", "session", s.ID)
	return s
}

// Session returns the session with id.
func (w *Widget) Session(id string) (*Session, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	s, ok := w.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// EndSession discards a session and its transcript.
func (w *Widget) EndSession(id string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(w.sessions, id)
	logger.L.Info("session ended", "session", id)
	return nil
}

// Send appends the user's text to the session and returns the bot reply,
// which is appended too. Only one message per session is handled at a time.
func (w *Widget) Send(ctx context.Context, sessionID, text string) (transcript.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return transcript.Message{}, ErrEmptyMessage
	}
	s, err := w.Session(sessionID)
	if err != nil {
		return transcript.Message{}, err
	}
	if err := s.fire(TriggerSubmit); err != nil {
		return transcript.Message{}, ErrBusy
	}
	defer s.finishTurn()

	history := s.transcript.Recent(w.matcher.ContextWindow())
	s.transcript.Append(transcript.AuthorUser, text)
	logger.L.Debug("user message", "session", s.ID, "text", text)

	var reply string
	if pageURL, ok := catalog.FindShopURL(text); ok {
		if err := s.fire(TriggerCatalogLink); err != nil {
			logger.L.Warn("FSM fire error", "session", s.ID, "error", err)
		}
		reply = w.lookupCatalog(ctx, s, pageURL)
	} else {
		reply = w.matcher.Respond(text, history)
		if err := w.sleep(ctx, w.pacer.Next()); err != nil {
			return transcript.Message{}, fmt.Errorf("typing delay: %w", err)
		}
	}

	return s.transcript.Append(transcript.AuthorBot, reply), nil
}

func (w *Widget) lookupCatalog(ctx context.Context, s *Session, pageURL string) string {
	res := w.lookup.Run(ctx, pageURL)
	switch res.Outcome {
	case catalog.OutcomeFetched:
		s.SetCatalog(res.Snapshot)
		s.notify(ToastCatalogFetched)
	case catalog.OutcomeKeyRequired:
		s.setKeyPrompt(true)
		s.notify(ToastKeyRequired)
	case catalog.OutcomeFailed:
		if catalog.IsProviderError(res.Err) {
			s.notify(ToastCatalogFailed)
		} else {
			s.notify(ToastCatalogUnreachable)
		}
	}
	return res.Reply
}

// ConfigureKey verifies key with the provider and saves it when valid. The
// returned toast describes the outcome; it is zero for a key that fails
// keys.Validate, which is never sent to the provider.
func (w *Widget) ConfigureKey(ctx context.Context, key string) (Toast, error) {
	key = strings.TrimSpace(key)
	if err := keys.Validate(key); err != nil {
		return Toast{}, err
	}
	if !w.keys.Verify(ctx, key) {
		return ToastKeyInvalid, ErrInvalidKey
	}
	if err := w.keys.Save(ctx, key); err != nil {
		logger.L.Error("failed to save api key", "error", err)
		return ToastKeyError, err
	}
	return ToastKeySaved, nil
}

// SubmitKey is ConfigureKey from within a session: the toast is queued and
// a successful save closes the key prompt.
func (w *Widget) SubmitKey(ctx context.Context, sessionID, key string) (Toast, error) {
	s, err := w.Session(sessionID)
	if err != nil {
		return Toast{}, err
	}
	toast, err := w.ConfigureKey(ctx, key)
	if errors.Is(err, keys.ErrEmptyKey) || errors.Is(err, keys.ErrReservedKey) {
		return toast, err
	}
	s.notify(toast)
	if err == nil {
		s.setKeyPrompt(false)
	}
	return toast, err
}

// ClearKey removes the stored API key.
func (w *Widget) ClearKey(ctx context.Context) error {
	return w.keys.Clear(ctx)
}

// CatalogEnabled reports whether an API key is stored, i.e. whether catalog
// analysis can be offered.
func (w *Widget) CatalogEnabled(ctx context.Context) bool {
	_, ok := w.keys.Get(ctx)
	return ok
}

// KeyHint returns the last characters of the stored key for display.
func (w *Widget) KeyHint(ctx context.Context) string {
	return w.keys.Hint(ctx)
}

// Toasts drains the pending notifications of a session.
func (w *Widget) Toasts(sessionID string) ([]Toast, error) {
	s, err := w.Session(sessionID)
	if err != nil {
		return nil, err
	}
	return s.Toasts(), nil
}
