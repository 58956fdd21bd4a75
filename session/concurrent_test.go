// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"fmt"
	"sync"
	"testing"
)

func TestConcurrentAnswerSubmissions(t *testing.T) {
	c, _, _ := readyController(t)
	if err := c.SetCandidates(testCandidates()); err != nil {
		t.Fatal(err)
	}

	const respondents = 50

	var wg sync.WaitGroup
	for i := 0; i < respondents; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("user-%02d", i)
			if err := c.SubmitAnswer(name, []bool{true, false, true, false, true}); err != nil {
				t.Errorf("SubmitAnswer(%s): %v", name, err)
			}
		}(i)
	}
	wg.Wait()

	rec := c.Record()
	if len(rec.Users) != respondents {
		t.Fatalf("users = %d, want %d", len(rec.Users), respondents)
	}
	seen := make(map[string]bool, respondents)
	for _, u := range rec.Users {
		if seen[u.Name] {
			t.Errorf("duplicate respondent %q", u.Name)
		}
		seen[u.Name] = true
		if len(u.Answers) != 5 {
			t.Errorf("%s: answers = %d, want 5", u.Name, len(u.Answers))
		}
	}
}

func TestConcurrentUpsertsSameName(t *testing.T) {
	c, _, _ := readyController(t)
	if err := c.SetCandidates(testCandidates()); err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := c.SubmitAnswer("alice", []bool{true, true, true, true, true}); err != nil {
				t.Errorf("SubmitAnswer: %v", err)
			}
		}()
	}
	wg.Wait()

	rec := c.Record()
	if len(rec.Users) != 1 {
		t.Fatalf("users = %d, want exactly one alice", len(rec.Users))
	}
}

func TestConcurrentTogglesAndReads(t *testing.T) {
	c, _, _ := readyController(t)
	if err := c.SetCandidates(testCandidates()); err != nil {
		t.Fatal(err)
	}
	if err := c.SubmitAnswer("alice", []bool{false, false, false, false, false}); err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.ToggleAnswer(0, i%5)
			c.BestSlots()
			c.Summary(0, 0)
		}(i)
	}
	wg.Wait()

	// Whatever interleaving happened, the vector length is intact.
	rec := c.Record()
	if len(rec.Users[0].Answers) != 5 {
		t.Fatalf("answers = %d, want 5", len(rec.Users[0].Answers))
	}
}

func TestParallelSessions(t *testing.T) {
	mgr := testManager()
	t.Cleanup(mgr.CloseAll)

	const sessions = 10

	ids := make([]string, sessions)
	var wg sync.WaitGroup
	for i := 0; i < sessions; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id, c, err := mgr.Create("")
			if err != nil {
				t.Errorf("Create: %v", err)
				return
			}
			ids[i] = id
			if err := c.SetTitle(fmt.Sprintf("poll-%d", i)); err != nil {
				t.Errorf("SetTitle: %v", err)
			}
		}(i)
	}
	wg.Wait()

	if mgr.Len() != sessions {
		t.Fatalf("sessions = %d, want %d", mgr.Len(), sessions)
	}
	for i, id := range ids {
		c, ok := mgr.Get(id)
		if !ok {
			t.Fatalf("session %d missing", i)
		}
		if got := c.Record().Title; got != fmt.Sprintf("poll-%d", i) {
			t.Errorf("session %d title = %q", i, got)
		}
	}
}
