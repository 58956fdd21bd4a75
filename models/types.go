// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Default all-day slot used when migrating legacy day-only records.
const (
	DefaultSlotStart = "00:00"
	DefaultSlotEnd   = "23:59"
	DefaultSlotLabel = "All day"
)

// StateParam is the query parameter carrying the encoded record in share links.
const StateParam = "d"

// Domain types
//
// The json tags on the record types are the wire format of share links and the
// local cache. They are camelCase because legacy links already encode records
// this way; changing them would break every link in the wild.

// TimeSlot is a bounded time-of-day window within a candidate day.
// Identity is the id; StartTime/EndTime are "HH:MM" strings.
type TimeSlot struct {
	ID        string `json:"id"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Label     string `json:"label,omitempty"`
}

// SameWindow reports whether two slots cover the same (start, end) window.
// Used only for duplicate-preset detection; identity is still the ID.
func (s TimeSlot) SameWindow(o TimeSlot) bool {
	return s.StartTime == o.StartTime && s.EndTime == o.EndTime
}

// Candidate is one calendar day under consideration. Slot order is
// significant: it defines the flattened index positions.
type Candidate struct {
	Date      string     `json:"date"`
	TimeSlots []TimeSlot `json:"timeSlots"`
}

// Respondent is a named participant with one answer per flattened slot.
// Name is a case-sensitive unique key within a poll.
type Respondent struct {
	Name    string `json:"name"`
	Answers []bool `json:"answers"`
}

// PollRecord is the whole poll: the single unit of persistence.
// Dates is the legacy day-only list, retained only so it can be migrated;
// after migration Candidates and Dates are mutually exclusive. Candidates
// is always emitted (even when null) because its presence is the implicit
// schema version that decode validation checks for.
type PollRecord struct {
	Title      string       `json:"title"`
	Candidates []Candidate  `json:"candidates"`
	Dates      []string     `json:"dates,omitempty"`
	Users      []Respondent `json:"users"`
}

// Clone returns a deep copy of the record.
func (p PollRecord) Clone() PollRecord {
	out := PollRecord{Title: p.Title}
	if p.Candidates != nil {
		out.Candidates = make([]Candidate, len(p.Candidates))
		for i, c := range p.Candidates {
			out.Candidates[i] = Candidate{Date: c.Date}
			if c.TimeSlots != nil {
				out.Candidates[i].TimeSlots = append([]TimeSlot(nil), c.TimeSlots...)
			}
		}
	}
	if p.Dates != nil {
		out.Dates = append([]string(nil), p.Dates...)
	}
	if p.Users != nil {
		out.Users = make([]Respondent, len(p.Users))
		for i, u := range p.Users {
			out.Users[i] = Respondent{Name: u.Name}
			if u.Answers != nil {
				out.Users[i].Answers = append([]bool(nil), u.Answers...)
			}
		}
	}
	return out
}

// Derived types

// SlotSummary is the per-slot head-count view.
type SlotSummary struct {
	Available int `json:"available"`
}

// BestSlot is a slot selected by the aggregation policy.
type BestSlot struct {
	CandidateIndex int      `json:"candidate_index"`
	TimeSlotIndex  int      `json:"time_slot_index"`
	Date           string   `json:"date"`
	TimeSlot       TimeSlot `json:"time_slot"`
	AvailableCount int      `json:"available_count"`
}

// Request types

type CreateSessionRequest struct {
	// State is an inbound encoded record (the share-link parameter).
	State string `json:"state,omitempty"`
	// Title loads a record from the local cache when State is absent.
	Title string `json:"title,omitempty"`
}

type SetTitleRequest struct {
	Title string `json:"title"`
}

type SetCandidatesRequest struct {
	Candidates []Candidate `json:"candidates"`
}

type SubmitAnswerRequest struct {
	Name    string `json:"name"`
	Answers []bool `json:"answers"`
}

type ToggleAnswerRequest struct {
	RespondentIndex int `json:"respondent_index"`
	FlatIndex       int `json:"flat_index"`
}

// Response types

type CreateSessionResponse struct {
	SessionID string     `json:"session_id"`
	Poll      PollRecord `json:"poll"`
	ShareURL  string     `json:"share_url"`
}

type SessionViewResponse struct {
	Poll       PollRecord `json:"poll"`
	BestSlots  []BestSlot `json:"best_slots"`
	TotalSlots int        `json:"total_slots"`
}

type ShareURLResponse struct {
	ShareURL string `json:"share_url"`
}

type BestSlotsResponse struct {
	BestSlots []BestSlot `json:"best_slots"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
