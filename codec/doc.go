// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package codec round-trips poll records through a URL-safe string and a
keyed local cache.

# URL Encoding

	encoded := codec.Encode(poll)   // JSON -> UTF-8 -> Base64, "" on failure
	rec := codec.Decode(encoded)    // nil on any failure, never panics

Decode accepts current links (Base64 of JSON) and legacy links
(percent-encoded JSON), in that order. A decoded value is only accepted
when it has a title, a users list, and either candidates or the legacy
dates list.

The round-trip law holds: for any structurally valid record p,
Decode(Encode(p)) deep-equals p.

# Local Cache

	err := codec.LocalSave(kv, poll)
	rec := codec.LocalLoad(kv, title)

One entry per title, keyed by codec.CacheKey (title with unsafe characters
stripped; post-strip collisions are accepted). Failures surface as errors
or nil so callers can degrade to memory-only operation.
*/
package codec
