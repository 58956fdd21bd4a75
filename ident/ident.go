// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ident

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	mathrand "math/rand/v2"

	"github.com/google/uuid"
)

// GenerateID creates a random hex ID of the specified byte length.
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// NewSlotID generates a unique identifier for a time slot. Slot IDs are
// identity only, never secrets, so when the crypto source is unavailable a
// pseudo-random hex ID is an acceptable fallback.
func NewSlotID() string {
	id, err := uuid.NewRandom()
	if err != nil {
		return pseudoID()
	}
	return id.String()
}

func pseudoID() string {
	b := make([]byte, 16)
	binary.LittleEndian.PutUint64(b[:8], mathrand.Uint64())
	binary.LittleEndian.PutUint64(b[8:], mathrand.Uint64())
	return hex.EncodeToString(b)
}
