// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package migrate upgrades legacy day-only records to the candidate shape.

The predecessor schema stored only a list of day strings. The current
schema nests time slots under candidate days. Migration is one-way and
deterministic in content, but NOT in identifiers: every run mints fresh
slot IDs, so a record must be migrated at most once per load and the
result persisted.

	if migrate.NeedsMigration(rec) {
		rec.Candidates = migrate.MigrateLegacy(rec.Dates)
		rec.Dates = nil
	}
*/
package migrate
