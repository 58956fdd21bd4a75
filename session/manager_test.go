// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"testing"
	"time"

	"github.com/danielhkuo/quickly-meet/codec"
	"github.com/danielhkuo/quickly-meet/models"
	"github.com/danielhkuo/quickly-meet/store"
)

func testManager() *Manager {
	return NewManager(store.NewMemory(), testBaseURL, testDebounce)
}

func TestManager_CreateAndGet(t *testing.T) {
	m := testManager()
	defer m.CloseAll()

	id, c, err := m.Create("")
	if err != nil {
		t.Fatal(err)
	}
	if id == "" {
		t.Fatal("empty session ID")
	}
	if c.State() != StateReady {
		t.Errorf("state = %v, want ready", c.State())
	}

	got, ok := m.Get(id)
	if !ok || got != c {
		t.Error("Get should return the created controller")
	}
	if _, ok := m.Get("missing"); ok {
		t.Error("Get of unknown ID should miss")
	}
}

func TestManager_SessionsAreIsolated(t *testing.T) {
	m := testManager()
	defer m.CloseAll()

	poll := models.PollRecord{
		Title:      "shared link",
		Candidates: []models.Candidate{{Date: "2025-06-01", TimeSlots: []models.TimeSlot{slot("a")}}},
		Users:      []models.Respondent{},
	}
	encoded := codec.Encode(poll)

	_, c1, err := m.Create(encoded)
	if err != nil {
		t.Fatal(err)
	}
	_, c2, err := m.Create(encoded)
	if err != nil {
		t.Fatal(err)
	}

	c1.SetTitle("renamed in session one")
	if got := c2.Record().Title; got != "shared link" {
		t.Errorf("session two saw session one's mutation: %q", got)
	}
}

func TestManager_RemoveCancelsDebounce(t *testing.T) {
	m := testManager()

	id, c, err := m.Create("")
	if err != nil {
		t.Fatal(err)
	}
	c.SetTitle("pending")

	if !m.Remove(id) {
		t.Fatal("Remove should report the session existed")
	}
	if m.Remove(id) {
		t.Error("second Remove should miss")
	}
	if _, ok := m.Get(id); ok {
		t.Error("removed session still retrievable")
	}

	time.Sleep(3 * testDebounce)
	if err := c.SetTitle("x"); err != ErrNotReady {
		t.Errorf("mutation after Remove = %v, want ErrNotReady", err)
	}
}

func TestManager_CloseAll(t *testing.T) {
	m := testManager()

	if _, _, err := m.Create(""); err != nil {
		t.Fatal(err)
	}
	if _, _, err := m.Create(""); err != nil {
		t.Fatal(err)
	}
	if m.Len() != 2 {
		t.Fatalf("Len = %d, want 2", m.Len())
	}

	m.CloseAll()
	if m.Len() != 0 {
		t.Errorf("Len after CloseAll = %d, want 0", m.Len())
	}
}
