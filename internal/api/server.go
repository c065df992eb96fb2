// Package api exposes the chat widget over HTTP for a single local user.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/comigor/mishmish-go/internal/catalog"
	"github.com/comigor/mishmish-go/internal/keys"
	"github.com/comigor/mishmish-go/internal/logger"
	"github.com/comigor/mishmish-go/internal/transcript"
	"github.com/comigor/mishmish-go/internal/widget"
)

// Server serves the widget's sessions, messages and key settings as JSON.
type Server struct {
	widget *widget.Widget
}

// NewServer returns a Server backed by w.
func NewServer(w *widget.Widget) *Server {
	return &Server{widget: w}
}

// Router returns the chi handler with all routes and middleware mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Post("/sessions", s.createSession)
	r.Get("/sessions/{id}", s.getSession)
	r.Delete("/sessions/{id}", s.deleteSession)
	r.Get("/sessions/{id}/messages", s.listMessages)
	r.Post("/sessions/{id}/messages", s.sendMessage)
	r.Get("/sessions/{id}/notifications", s.listNotifications)
	r.Get("/settings/key", s.getKeySettings)
	r.Post("/settings/key", s.updateKeySettings)
	r.Delete("/settings/key", s.deleteKeySettings)
	r.Get("/health", s.health)

	return r
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		logger.L.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

type toastResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Variant     string `json:"variant"`
	DurationMS  int64  `json:"duration_ms"`
}

func toToast(t widget.Toast) toastResponse {
	return toastResponse{
		Title:       t.Title,
		Description: t.Description,
		Variant:     string(t.Variant),
		DurationMS:  t.Duration.Milliseconds(),
	}
}

func toToasts(ts []widget.Toast) []toastResponse {
	out := make([]toastResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, toToast(t))
	}
	return out
}

type sessionResponse struct {
	ID             string               `json:"id"`
	CreatedAt      time.Time            `json:"created_at"`
	Typing         bool                 `json:"typing"`
	KeyPrompt      bool                 `json:"key_prompt"`
	CatalogEnabled bool                 `json:"catalog_enabled"`
	Messages       []transcript.Message `json:"messages"`
	Catalog        *catalog.Snapshot    `json:"catalog,omitempty"`
}

func (s *Server) sessionToResponse(r *http.Request, sess *widget.Session) sessionResponse {
	return sessionResponse{
		ID:             sess.ID,
		CreatedAt:      sess.CreatedAt,
		Typing:         sess.Typing(),
		KeyPrompt:      sess.KeyPromptOpen(),
		CatalogEnabled: s.widget.CatalogEnabled(r.Context()),
		Messages:       sess.Messages(),
		Catalog:        sess.Catalog(),
	}
}

func (s *Server) createSession(w http.ResponseWriter, r *http.Request) {
	sess := s.widget.NewSession()
	writeJSONStatus(w, s.sessionToResponse(r, sess), http.StatusCreated)
}

func (s *Server) getSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.widget.Session(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, s.sessionToResponse(r, sess))
}

func (s *Server) deleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.widget.EndSession(chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listMessages(w http.ResponseWriter, r *http.Request) {
	sess, err := s.widget.Session(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, map[string]any{"messages": sess.Messages()})
}

type sendMessageRequest struct {
	Text string `json:"text"`
}

type sendMessageResponse struct {
	Reply         transcript.Message `json:"reply"`
	KeyPrompt     bool               `json:"key_prompt"`
	Notifications []toastResponse    `json:"notifications"`
}

func (s *Server) sendMessage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	reply, err := s.widget.Send(r.Context(), id, req.Text)
	if err != nil {
		writeError(w, err)
		return
	}
	sess, err := s.widget.Session(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, sendMessageResponse{
		Reply:         reply,
		KeyPrompt:     sess.KeyPromptOpen(),
		Notifications: toToasts(sess.Toasts()),
	})
}

func (s *Server) listNotifications(w http.ResponseWriter, r *http.Request) {
	toasts, err := s.widget.Toasts(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, map[string]any{"notifications": toToasts(toasts)})
}

type keySettingsResponse struct {
	Configured bool   `json:"configured"`
	Hint       string `json:"hint,omitempty"`
}

type keySettingsRequest struct {
	Key       string `json:"key"`
	SessionID string `json:"session_id,omitempty"`
}

func (s *Server) getKeySettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, keySettingsResponse{
		Configured: s.widget.CatalogEnabled(r.Context()),
		Hint:       s.widget.KeyHint(r.Context()),
	})
}

func (s *Server) updateKeySettings(w http.ResponseWriter, r *http.Request) {
	var req keySettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	var (
		toast widget.Toast
		err   error
	)
	if req.SessionID != "" {
		toast, err = s.widget.SubmitKey(r.Context(), req.SessionID, req.Key)
	} else {
		toast, err = s.widget.ConfigureKey(r.Context(), req.Key)
	}

	status := http.StatusOK
	switch {
	case err == nil:
	case errors.Is(err, keys.ErrEmptyKey), errors.Is(err, keys.ErrReservedKey), errors.Is(err, widget.ErrSessionNotFound):
		writeError(w, err)
		return
	case errors.Is(err, widget.ErrInvalidKey):
		status = http.StatusUnprocessableEntity
	default:
		status = http.StatusInternalServerError
	}
	writeJSONStatus(w, map[string]any{
		"configured":   err == nil,
		"notification": toToast(toast),
	}, status)
}

func (s *Server) deleteKeySettings(w http.ResponseWriter, r *http.Request) {
	if err := s.widget.ClearKey(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, widget.ErrEmptyMessage), errors.Is(err, keys.ErrEmptyKey), errors.Is(err, keys.ErrReservedKey):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, widget.ErrSessionNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, widget.ErrBusy):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, widget.ErrInvalidKey):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		logger.L.Error("request failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, value any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(value)
}

func writeJSONStatus(w http.ResponseWriter, value any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(value)
}
