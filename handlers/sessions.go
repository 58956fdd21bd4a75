// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/quickly-meet/cliparse"
	"github.com/danielhkuo/quickly-meet/middleware"
	"github.com/danielhkuo/quickly-meet/models"
	"github.com/danielhkuo/quickly-meet/session"
)

type SessionHandler struct {
	mgr *session.Manager
	cfg cliparse.Config
}

func NewSessionHandler(mgr *session.Manager, cfg cliparse.Config) *SessionHandler {
	return &SessionHandler{mgr: mgr, cfg: cfg}
}

// Create handles POST /sessions
// Hydrates a new session from an inbound encoded state, a cached title,
// or nothing (fresh empty poll). A malformed state never fails the
// request: the session recovers to an empty poll.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSessionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	var (
		id  string
		c   *session.Controller
		err error
	)
	if req.State == "" && req.Title != "" {
		id, c, err = h.mgr.CreateStored(req.Title)
	} else {
		id, c, err = h.mgr.Create(req.State)
	}
	if err != nil {
		slog.Error("failed to create session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	slog.Info("session created", "session_id", id)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateSessionResponse{
		SessionID: id,
		Poll:      c.Record(),
		ShareURL:  c.ShareURL(),
	})
}

// Get handles GET /sessions/{id}
// Returns the record plus the derived views used to render tables.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, ok := h.lookup(w, r)
	if !ok {
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SessionViewResponse{
		Poll:       c.Record(),
		BestSlots:  c.BestSlots(),
		TotalSlots: c.TotalSlots(),
	})
}

// SetTitle handles PUT /sessions/{id}/title
func (h *SessionHandler) SetTitle(w http.ResponseWriter, r *http.Request) {
	c, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var req models.SetTitleRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := c.SetTitle(req.Title); err != nil {
		h.mutationError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, c.Record())
}

// SetCandidates handles PUT /sessions/{id}/candidates
func (h *SessionHandler) SetCandidates(w http.ResponseWriter, r *http.Request) {
	c, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var req models.SetCandidatesRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := c.SetCandidates(req.Candidates); err != nil {
		h.mutationError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, c.Record())
}

// SubmitAnswer handles POST /sessions/{id}/answers
// Upserts a respondent by name; an existing name is replaced, never
// duplicated.
func (h *SessionHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	c, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var req models.SubmitAnswerRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := c.SubmitAnswer(req.Name, req.Answers); err != nil {
		h.mutationError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, c.Record())
}

// ToggleAnswer handles POST /sessions/{id}/toggle
// Out-of-range indices are a silent no-op, mirroring the core semantics.
func (h *SessionHandler) ToggleAnswer(w http.ResponseWriter, r *http.Request) {
	c, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var req models.ToggleAnswerRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := c.ToggleAnswer(req.RespondentIndex, req.FlatIndex); err != nil {
		h.mutationError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, c.Record())
}

// ShareURL handles GET /sessions/{id}/share-url
func (h *SessionHandler) ShareURL(w http.ResponseWriter, r *http.Request) {
	c, ok := h.lookup(w, r)
	if !ok {
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ShareURLResponse{
		ShareURL: c.ShareURL(),
	})
}

// BestSlots handles GET /sessions/{id}/best-slots
func (h *SessionHandler) BestSlots(w http.ResponseWriter, r *http.Request) {
	c, ok := h.lookup(w, r)
	if !ok {
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.BestSlotsResponse{
		BestSlots: c.BestSlots(),
	})
}

// Summary handles GET /sessions/{id}/summary?candidate=i&slot=j
// Out-of-range coordinates report zero availability rather than an error.
func (h *SessionHandler) Summary(w http.ResponseWriter, r *http.Request) {
	c, ok := h.lookup(w, r)
	if !ok {
		return
	}

	i, err := strconv.Atoi(r.URL.Query().Get("candidate"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "candidate must be an integer")
		return
	}
	j, err := strconv.Atoi(r.URL.Query().Get("slot"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "slot must be an integer")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, c.Summary(i, j))
}

// Delete handles DELETE /sessions/{id}
// Teardown cancels the session's pending debounce timer.
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "session id is required")
		return
	}

	if !h.mgr.Remove(id) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return
	}

	slog.Info("session closed", "session_id", id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *SessionHandler) lookup(w http.ResponseWriter, r *http.Request) (*session.Controller, bool) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "session id is required")
		return nil, false
	}

	c, ok := h.mgr.Get(id)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return nil, false
	}
	return c, true
}

func (h *SessionHandler) mutationError(w http.ResponseWriter, err error) {
	if errors.Is(err, session.ErrNotReady) {
		middleware.ErrorResponse(w, http.StatusConflict, "Session is not ready for mutations")
		return
	}
	slog.Error("mutation failed", "error", err)
	middleware.ErrorResponse(w, http.StatusInternalServerError, "Mutation failed")
}
