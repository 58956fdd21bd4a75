// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ident generates identifiers.

# Session IDs

Random hex IDs for session records:

	id, err := ident.GenerateID(16)  // 32 hex characters

# Slot IDs

Time-slot identifiers are UUIDv4 (crypto-backed), with a pseudo-random hex
fallback when the entropy source fails. Slot IDs are identity, not secrets,
so the fallback is acceptable:

	id := ident.NewSlotID()
*/
package ident
