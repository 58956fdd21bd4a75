// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package aggregate computes availability head-counts and optimal slots.

# Slot Summaries

	summary := aggregate.SlotSummary(poll, i, j)

Counts respondents whose flattened answer at (i, j) is affirmative. Missing
entries (short vectors) and out-of-bounds coordinates count as unavailable.

# Best Slots

	best := aggregate.BestSlots(poll)

Policy: max-with-ties. Every slot tied for the maximum head-count is
returned in flattened order; a zero maximum yields an empty result. Callers
wanting strict unanimity can compare AvailableCount with len(poll.Users).

# Content Hashing

	hash := aggregate.AnswersHash(poll)

SHA-256 over names and answer vectors, for caching derived results.
*/
package aggregate
