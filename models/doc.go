// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the poll record, derived views, and API types.

# Record Types

The record is the single unit of persistence. Its json tags are the wire
format of share links and the local cache (camelCase, fixed by legacy links):

  - PollRecord: title, candidates, dates (legacy), users
  - Candidate: one calendar day holding ordered TimeSlots
  - TimeSlot: bounded time-of-day window, identity by id
  - Respondent: name (unique key) plus one answer per flattened slot

# Derived Types

Read-only views computed from a record:

  - SlotSummary: per-slot head-count
  - BestSlot: a slot chosen by the aggregation policy

# Request Types

Types for parsing incoming JSON:

  - CreateSessionRequest: state (encoded record) or title (cache lookup)
  - SetTitleRequest, SetCandidatesRequest
  - SubmitAnswerRequest: name, answers
  - ToggleAnswerRequest: respondent_index, flat_index

# Response Types

  - CreateSessionResponse: session_id, poll, share_url
  - SessionViewResponse: poll, best_slots, total_slots
  - ShareURLResponse, BestSlotsResponse
  - ErrorResponse: error, message

# Constants

Default all-day slot (used by migration):

	DefaultSlotStart = "00:00"
	DefaultSlotEnd   = "23:59"
	DefaultSlotLabel = "All day"

Share-link query parameter:

	StateParam = "d"
*/
package models
