// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package aggregate

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/danielhkuo/quickly-meet/models"
	"github.com/danielhkuo/quickly-meet/slotindex"
)

// SlotSummary counts the respondents available at one (candidate, slot)
// coordinate. A missing or short answer vector counts as unavailable, as
// does an out-of-bounds coordinate; the result is always well-defined.
func SlotSummary(poll models.PollRecord, i, j int) models.SlotSummary {
	flat := slotindex.FlattenIndex(poll.Candidates, i, j)
	if flat == slotindex.NotFound {
		return models.SlotSummary{}
	}

	available := 0
	for _, u := range poll.Users {
		if flat < len(u.Answers) && u.Answers[flat] {
			available++
		}
	}
	return models.SlotSummary{Available: available}
}

// BestSlots returns every slot tied for the maximum head-count, in
// flattened order. A zero maximum means no respondent is available
// anywhere, so the result is empty.
//
// Cost is O(respondents x slots). At expected scale (tens of respondents,
// dozens of slots) no caching is needed; AnswersHash exists so a cache
// keyed by answer content can be added without changing this signature.
func BestSlots(poll models.PollRecord) []models.BestSlot {
	total := slotindex.TotalSlots(poll.Candidates)
	if total == 0 {
		return nil
	}

	counts := make([]int, total)
	for _, u := range poll.Users {
		for flat := 0; flat < total && flat < len(u.Answers); flat++ {
			if u.Answers[flat] {
				counts[flat]++
			}
		}
	}

	max := 0
	for _, c := range counts {
		if c > max {
			max = c
		}
	}
	if max == 0 {
		return nil
	}

	var best []models.BestSlot
	for flat, c := range counts {
		if c != max {
			continue
		}
		i, j, ok := slotindex.UnflattenIndex(poll.Candidates, flat)
		if !ok {
			continue
		}
		best = append(best, models.BestSlot{
			CandidateIndex: i,
			TimeSlotIndex:  j,
			Date:           poll.Candidates[i].Date,
			TimeSlot:       poll.Candidates[i].TimeSlots[j],
			AvailableCount: c,
		})
	}
	return best
}

// AnswersHash returns a hex SHA-256 digest of the respondent names and
// answer vectors. Two polls with identical availability content share a
// hash, so derived results can be cached against it.
func AnswersHash(poll models.PollRecord) string {
	h := sha256.New()
	for _, u := range poll.Users {
		h.Write([]byte(u.Name))
		h.Write([]byte{0})
		for _, a := range u.Answers {
			if a {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{2})
			}
		}
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
