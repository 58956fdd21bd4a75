// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Quickly Meet API.

# Handler Types

SessionHandler wraps the session manager and configuration:

	sessionHandler := handlers.NewSessionHandler(mgr, cfg)

# Session Lifecycle

Each session owns one poll record, hydrated once and mutated until torn
down:

	POST   /sessions       → Create (from encoded state, cached title, or empty)
	GET    /sessions/{id}  → Get (record plus derived views)
	DELETE /sessions/{id}  → Delete (cancels the pending persistence timer)

# Mutations

	PUT  /sessions/{id}/title      → SetTitle
	PUT  /sessions/{id}/candidates → SetCandidates (positional answer resize)
	POST /sessions/{id}/answers    → SubmitAnswer (upsert by name)
	POST /sessions/{id}/toggle     → ToggleAnswer (out-of-range is a no-op)

Every mutation responds with the updated record and schedules a debounced
persistence write.

# Derived Views

	GET /sessions/{id}/share-url  → ShareURL
	GET /sessions/{id}/best-slots → BestSlots
	GET /sessions/{id}/summary    → Summary (?candidate=i&slot=j)

# Error Semantics

Core failures degrade instead of erroring: malformed inbound state
recovers to an empty poll, out-of-range toggles no-op, and storage
failures fall back to memory-only persistence. HTTP errors are reserved
for invalid JSON (400), unknown sessions (404), and mutations outside the
Ready state (409).
*/
package handlers
