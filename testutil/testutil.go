// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/quickly-meet/cliparse"
	"github.com/danielhkuo/quickly-meet/models"
	"github.com/danielhkuo/quickly-meet/session"
	"github.com/danielhkuo/quickly-meet/store"
)

// GetTestConfig returns a standard test configuration with a short
// debounce so persistence assertions settle quickly.
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3319,
		BaseURL:      "http://localhost:3319",
		DatabaseURL:  "file::memory:",
		DatabaseType: "sqlite",
		Debounce:     25 * time.Millisecond,
	}
}

// NewTestManager creates a session manager backed by an in-memory store.
func NewTestManager(t *testing.T, cfg cliparse.Config) (*session.Manager, *store.Memory) {
	t.Helper()

	kv := store.NewMemory()
	mgr := session.NewManager(kv, cfg.BaseURL, cfg.Debounce)
	t.Cleanup(mgr.CloseAll)
	return mgr, kv
}

// SamplePoll returns a valid two-day record with three flattened slots.
func SamplePoll() models.PollRecord {
	return models.PollRecord{
		Title: "Test Poll",
		Candidates: []models.Candidate{
			{
				Date: "2025-06-01",
				TimeSlots: []models.TimeSlot{
					{ID: "slot-1", StartTime: "09:00", EndTime: "12:00", Label: "Morning"},
					{ID: "slot-2", StartTime: "13:00", EndTime: "17:00"},
				},
			},
			{
				Date: "2025-06-02",
				TimeSlots: []models.TimeSlot{
					{ID: "slot-3", StartTime: "00:00", EndTime: "23:59", Label: "All day"},
				},
			},
		},
		Users: []models.Respondent{
			{Name: "alice", Answers: []bool{true, false, true}},
			{Name: "bob", Answers: []bool{false, true, true}},
		},
	}
}

// LegacyPoll returns a record still in the day-only schema.
func LegacyPoll() models.PollRecord {
	return models.PollRecord{
		Title: "Legacy Poll",
		Dates: []string{"2025-01-01", "2025-01-02"},
		Users: []models.Respondent{
			{Name: "alice", Answers: []bool{true, false}},
		},
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
