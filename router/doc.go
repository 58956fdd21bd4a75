// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Quickly Meet API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(mgr, cfg)

# Endpoints

Health:

	GET /health

Session lifecycle:

	POST   /sessions      - Create and hydrate a session
	GET    /sessions/{id} - Record plus derived views
	DELETE /sessions/{id} - Teardown (cancels pending persistence)

Mutations:

	PUT  /sessions/{id}/title      - Replace the title
	PUT  /sessions/{id}/candidates - Replace the candidate set
	POST /sessions/{id}/answers    - Submit/replace a respondent
	POST /sessions/{id}/toggle     - Flip one answer

Derived views:

	GET /sessions/{id}/share-url  - Shareable link carrying the record
	GET /sessions/{id}/best-slots - Optimal slots
	GET /sessions/{id}/summary    - Per-slot head-count

# Handler Initialization

The router creates handler instances with dependency injection:

	sessionHandler := handlers.NewSessionHandler(mgr, cfg)
*/
package router
