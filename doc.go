// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quickly Meet API server.

Quickly Meet is a scheduling-poll service: an organizer proposes candidate
days with time slots, respondents mark availability, and the poll state
round-trips through a compact share link so no account or central poll
registry is needed.

# Starting the Server

The server runs with defaults out of the box (SQLite poll cache):

	go run main.go

Or configured with env variables or CLI flags:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run main.go
	go run main.go -p 3319 -t sqlite -d "file:quickly-meet.db"

# Configuration

Optional settings:

  - PORT (-p): Server port (default: 3319)
  - BASE_URL (--base-url): Origin used to build share links
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): Connection string for the local poll cache
  - DEBOUNCE_MS (--debounce-ms): Quiet period before persisting a mutation

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (session lifecycle, mutations, views)
  - session: Per-session poll controller with debounced persistence
  - codec: Share-link encoding, decoding, and the local poll cache
  - migrate: Legacy day-only schema upgrade
  - slotindex: Day x time-slot flat index mapping
  - aggregate: Availability counts and best-slot selection
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Record, request, and response types
  - store: SQL and in-memory key-value backends for the poll cache
  - ident: Session and slot ID generation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
