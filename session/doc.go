// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session owns the mutable poll record and its persistence schedule.

# Lifecycle

A Controller moves Uninitialized -> Hydrating -> Ready. Hydration reads an
inbound encoded parameter (decoding, then migrating a legacy record if
needed) or defaults to an empty record; a malformed parameter triggers
clean-URL recovery through the Navigator instead of entering Ready with a
corrupt record. Only Ready accepts mutations.

# Mutations

	c.SetTitle(title)
	c.SetCandidates(candidates)   // positional answer resize
	c.SubmitAnswer(name, answers) // upsert by exact name
	c.ToggleAnswer(i, flat)       // out-of-range is a no-op

In-memory updates are synchronous and immediately visible. Every mutation
arms a trailing debounce; a new mutation cancels and reschedules it, so
only the final state of a quiet period is written (local cache save plus
Navigator.Push of the encoded record). Encode failure skips the cycle;
storage failure degrades to memory-only. Nothing here is fatal.

Close cancels the pending timer without writing — required on session
teardown so no write lands after the owning context is gone.

# Manager

One Controller per HTTP session, keyed by a crypto-random ID. There is no
cross-session coordination: the last full-record write wins.
*/
package session
