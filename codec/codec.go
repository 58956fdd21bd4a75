// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package codec

import (
	"encoding/base64"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/danielhkuo/quickly-meet/models"
	"github.com/danielhkuo/quickly-meet/store"
)

// cacheKeyPrefix namespaces poll entries inside the shared KV store.
const cacheKeyPrefix = "poll:"

// Encode serializes a record to canonical JSON and wraps it in standard
// Base64 for use as a URL parameter value. Returns "" on any failure —
// the signal to skip that persistence cycle.
func Encode(poll models.PollRecord) string {
	raw, err := json.Marshal(poll)
	if err != nil {
		return ""
	}
	return base64.StdEncoding.EncodeToString(raw)
}

// Decode is the reverse of Encode, tolerant of malformed and legacy input.
// It first tries Base64; when the input is not valid Base64, or valid
// Base64 decodes to non-JSON text, it falls back to percent-decoding
// (legacy links carried percent-encoded JSON directly). Returns nil unless
// the final value has all three of title, candidates-or-dates, and users.
// Empty or whitespace-only input yields nil immediately. Never panics.
func Decode(s string) *models.PollRecord {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	if raw, err := base64.StdEncoding.DecodeString(s); err == nil {
		if rec := parseRecord(raw); rec != nil {
			return rec
		}
	}

	unescaped, err := url.QueryUnescape(s)
	if err != nil {
		return nil
	}
	return parseRecord([]byte(unescaped))
}

// parseRecord validates the structural shape before committing to the
// full unmarshal: the payload must be a JSON object carrying title, users,
// and either candidates or the legacy dates list.
func parseRecord(raw []byte) *models.PollRecord {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil
	}
	if _, ok := fields["title"]; !ok {
		return nil
	}
	if _, ok := fields["users"]; !ok {
		return nil
	}
	_, hasCandidates := fields["candidates"]
	_, hasDates := fields["dates"]
	if !hasCandidates && !hasDates {
		return nil
	}

	var rec models.PollRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil
	}
	return &rec
}

// CacheKey derives the local-cache key from a title by stripping unsafe
// characters. Letters, digits, '-' and '_' survive; everything else is
// dropped. Distinct titles can collide after stripping — an accepted
// limitation of the cache.
func CacheKey(title string) string {
	var b strings.Builder
	b.WriteString(cacheKeyPrefix)
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// LocalSave writes the record as canonical JSON under its title-derived
// key. A failing store is reported, never fatal: the caller logs and
// continues memory-only.
func LocalSave(kv store.KV, poll models.PollRecord) error {
	raw, err := json.Marshal(poll)
	if err != nil {
		return err
	}
	return kv.Set(CacheKey(poll.Title), string(raw))
}

// LocalLoad reads a record back by title with the same key derivation and
// the same shape validation as Decode. Returns nil on any failure.
func LocalLoad(kv store.KV, title string) *models.PollRecord {
	raw, ok, err := kv.Get(CacheKey(title))
	if err != nil || !ok {
		return nil
	}
	return parseRecord([]byte(raw))
}
