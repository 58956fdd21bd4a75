// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP cross-cutting helpers.

# Logging

WithLogging wraps a handler with structured request/completion logging
(method, path, duration).

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, payload)
	middleware.ErrorResponse(w, http.StatusBadRequest, "title is required")
	err := middleware.ParseJSONBody(r, &req)

ErrorResponse emits the models.ErrorResponse shape used across the API.

# CORS

CORS allows cross-origin requests from the frontend, reflecting the
request origin and answering preflights.
*/
package middleware
