// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store provides the key/value storage primitive for the local cache.

# KV Interface

Get/set by string key. The codec writes one entry per sanitized poll
title, textual JSON, no TTL.

# SQL Backend

	kv, err := store.Open("sqlite", "file:quickly-meet.db")

Works against SQLite (modernc.org/sqlite) and PostgreSQL (lib/pq); the
driver must be imported by the caller. The single poll_cache table is
created on open.

# Memory Backend

	kv := store.NewMemory()

Used by tests, and as the fallback when the database is unavailable: the
application degrades to memory-only persistence instead of failing.
*/
package store
