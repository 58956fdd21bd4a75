// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package slotindex

import "github.com/danielhkuo/quickly-meet/models"

// NotFound is returned by FlattenIndex for out-of-bounds coordinates.
const NotFound = -1

// TotalSlots returns the total flattened length: the sum of every
// candidate's slot count. This is the required answer-vector length.
func TotalSlots(candidates []models.Candidate) int {
	total := 0
	for _, c := range candidates {
		total += len(c.TimeSlots)
	}
	return total
}

// FlattenIndex converts a (candidate, slot) coordinate to its position in
// the answer vector: the slot counts of all earlier candidates plus j.
// Returns NotFound when i or j is out of bounds.
func FlattenIndex(candidates []models.Candidate, i, j int) int {
	if i < 0 || i >= len(candidates) {
		return NotFound
	}
	if j < 0 || j >= len(candidates[i].TimeSlots) {
		return NotFound
	}

	flat := j
	for k := 0; k < i; k++ {
		flat += len(candidates[k].TimeSlots)
	}
	return flat
}

// UnflattenIndex converts an answer-vector position back to its
// (candidate, slot) coordinate. ok is false for negative or overflowing
// input. Linear scan; candidate counts are small.
func UnflattenIndex(candidates []models.Candidate, flat int) (i, j int, ok bool) {
	if flat < 0 {
		return 0, 0, false
	}

	remaining := flat
	for idx, c := range candidates {
		if remaining < len(c.TimeSlots) {
			return idx, remaining, true
		}
		remaining -= len(c.TimeSlots)
	}
	return 0, 0, false
}
