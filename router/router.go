// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/quickly-meet/cliparse"
	"github.com/danielhkuo/quickly-meet/handlers"
	"github.com/danielhkuo/quickly-meet/middleware"
	"github.com/danielhkuo/quickly-meet/session"
)

func NewRouter(mgr *session.Manager, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(mgr, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Session lifecycle
	mux.HandleFunc("POST /sessions", middleware.WithLogging(sessionHandler.Create))
	mux.HandleFunc("GET /sessions/{id}", middleware.WithLogging(sessionHandler.Get))
	mux.HandleFunc("DELETE /sessions/{id}", middleware.WithLogging(sessionHandler.Delete))

	// Mutations
	mux.HandleFunc("PUT /sessions/{id}/title", middleware.WithLogging(sessionHandler.SetTitle))
	mux.HandleFunc("PUT /sessions/{id}/candidates", middleware.WithLogging(sessionHandler.SetCandidates))
	mux.HandleFunc("POST /sessions/{id}/answers", middleware.WithLogging(sessionHandler.SubmitAnswer))
	mux.HandleFunc("POST /sessions/{id}/toggle", middleware.WithLogging(sessionHandler.ToggleAnswer))

	// Derived views
	mux.HandleFunc("GET /sessions/{id}/share-url", middleware.WithLogging(sessionHandler.ShareURL))
	mux.HandleFunc("GET /sessions/{id}/best-slots", middleware.WithLogging(sessionHandler.BestSlots))
	mux.HandleFunc("GET /sessions/{id}/summary", middleware.WithLogging(sessionHandler.Summary))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quickly-meet API v1"))
	})

	return mux
}
