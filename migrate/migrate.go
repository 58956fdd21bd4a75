// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package migrate

import (
	"strings"

	"github.com/danielhkuo/quickly-meet/ident"
	"github.com/danielhkuo/quickly-meet/models"
)

// NeedsMigration reports whether a loaded record is still in the legacy
// day-only shape: a non-empty dates list and no candidates. A record with
// both populated is treated as already current and its dates are ignored.
func NeedsMigration(rec models.PollRecord) bool {
	return len(rec.Dates) > 0 && len(rec.Candidates) == 0
}

// MigrateLegacy upgrades a legacy day-string list into candidates. Blank
// and whitespace-only entries are dropped; each remaining day becomes one
// candidate with a single default all-day slot and a freshly generated ID.
// Day order is preserved.
//
// Not idempotent at the identifier level: rerunning produces new slot IDs,
// so callers must migrate at most once per load and persist the result.
func MigrateLegacy(dates []string) []models.Candidate {
	var candidates []models.Candidate
	for _, day := range dates {
		if strings.TrimSpace(day) == "" {
			continue
		}
		candidates = append(candidates, models.Candidate{
			Date: day,
			TimeSlots: []models.TimeSlot{{
				ID:        ident.NewSlotID(),
				StartTime: models.DefaultSlotStart,
				EndTime:   models.DefaultSlotEnd,
				Label:     models.DefaultSlotLabel,
			}},
		})
	}
	return candidates
}
