// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package slotindex maps between 2D (candidate, slot) coordinates and the flat
position used in every respondent's answer vector.

The flattened order is candidate-major: all slots of candidate 0, then all
slots of candidate 1, and so on. This ordering is load-bearing — answer
vectors are stored in it, so it must stay stable for a poll's lifetime.

	flat := slotindex.FlattenIndex(candidates, i, j)
	i, j, ok := slotindex.UnflattenIndex(candidates, flat)

Out-of-bounds coordinates yield NotFound (flatten) or ok=false (unflatten),
never a panic. The two functions are mutual inverses over valid input.
*/
package slotindex
