// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"errors"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/danielhkuo/quickly-meet/aggregate"
	"github.com/danielhkuo/quickly-meet/codec"
	"github.com/danielhkuo/quickly-meet/migrate"
	"github.com/danielhkuo/quickly-meet/models"
	"github.com/danielhkuo/quickly-meet/slotindex"
	"github.com/danielhkuo/quickly-meet/store"
)

var (
	ErrNotReady        = errors.New("session is not ready")
	ErrAlreadyHydrated = errors.New("session already hydrated")
)

// State is the controller lifecycle position.
type State int

const (
	StateUninitialized State = iota
	StateHydrating
	StateReady
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateHydrating:
		return "hydrating"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Navigator is the navigation collaborator: it receives the encoded record
// after every settled mutation (Push) and a clean state for error recovery
// (Replace, no history entry).
type Navigator interface {
	Push(encoded string)
	Replace(encoded string)
}

// Controller owns one mutable poll record. Mutations are synchronous and
// immediately visible; persistence is decoupled through a trailing
// debounce, so only the final state of a quiet period is ever written.
type Controller struct {
	mu       sync.Mutex
	state    State
	closed   bool
	record   models.PollRecord
	kv       store.KV
	nav      Navigator
	baseURL  string
	debounce time.Duration
	timer    *time.Timer
}

// NewController creates an uninitialized controller. baseURL is the origin
// share links are built against; debounce is the quiet period before a
// settled mutation is persisted.
func NewController(kv store.KV, nav Navigator, baseURL string, debounce time.Duration) *Controller {
	return &Controller{
		state:    StateUninitialized,
		kv:       kv,
		nav:      nav,
		baseURL:  strings.TrimRight(baseURL, "/"),
		debounce: debounce,
	}
}

// Hydrate moves the controller to Ready from an inbound encoded parameter.
// An absent parameter starts an empty poll. A malformed parameter is
// treated as absent: the navigator is told to replace the current entry
// with a clean URL and the session starts empty rather than entering Ready
// with a corrupt record. Legacy records are migrated exactly once and the
// migrated shape is scheduled for persistence.
func (c *Controller) Hydrate(param string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateUninitialized {
		return ErrAlreadyHydrated
	}
	c.state = StateHydrating

	param = strings.TrimSpace(param)
	if param == "" {
		c.record = emptyRecord()
		c.state = StateReady
		return nil
	}

	rec := codec.Decode(param)
	if rec == nil {
		slog.Warn("discarding malformed inbound record", "param_len", len(param))
		c.nav.Replace("")
		c.record = emptyRecord()
		c.state = StateReady
		return nil
	}

	c.adoptLocked(*rec)
	return nil
}

// HydrateStored moves the controller to Ready from the local cache entry
// for the given title, falling back to an empty poll when no valid entry
// exists.
func (c *Controller) HydrateStored(title string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateUninitialized {
		return ErrAlreadyHydrated
	}
	c.state = StateHydrating

	rec := codec.LocalLoad(c.kv, title)
	if rec == nil {
		c.record = emptyRecord()
		c.state = StateReady
		return nil
	}

	c.adoptLocked(*rec)
	return nil
}

// adoptLocked installs a decoded record: migrate if still legacy-shaped,
// normalize answer lengths, enter Ready. Migration mints new slot IDs, so
// its result must be persisted; schedule that write now.
func (c *Controller) adoptLocked(rec models.PollRecord) {
	migrated := false
	if migrate.NeedsMigration(rec) {
		rec.Candidates = migrate.MigrateLegacy(rec.Dates)
		rec.Dates = nil
		migrated = true
	}

	total := slotindex.TotalSlots(rec.Candidates)
	for i := range rec.Users {
		rec.Users[i].Answers = resizeAnswers(rec.Users[i].Answers, total)
	}

	c.record = rec
	c.state = StateReady

	if migrated {
		slog.Info("migrated legacy record", "title", rec.Title, "candidates", len(rec.Candidates))
		c.scheduleSaveLocked()
	}
}

func emptyRecord() models.PollRecord {
	return models.PollRecord{Users: []models.Respondent{}}
}

// SetTitle replaces the poll title and schedules persistence.
func (c *Controller) SetTitle(title string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.readyLocked(); err != nil {
		return err
	}

	c.record.Title = title
	c.scheduleSaveLocked()
	return nil
}

// SetCandidates replaces the candidate set and resizes every respondent's
// answer vector to the new flattened length: trailing entries are
// truncated or padded with false. The resize is positional, not
// identity-aware — inserting or reordering slots mid-sequence misaligns
// existing answers. Known limitation, preserved deliberately.
func (c *Controller) SetCandidates(candidates []models.Candidate) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.readyLocked(); err != nil {
		return err
	}

	cloned := make([]models.Candidate, len(candidates))
	for i, cand := range candidates {
		cloned[i] = models.Candidate{Date: cand.Date}
		if cand.TimeSlots != nil {
			cloned[i].TimeSlots = append([]models.TimeSlot(nil), cand.TimeSlots...)
		}
	}
	c.record.Candidates = cloned
	c.record.Dates = nil

	total := slotindex.TotalSlots(c.record.Candidates)
	for i := range c.record.Users {
		c.record.Users[i].Answers = resizeAnswers(c.record.Users[i].Answers, total)
	}

	slog.Info("candidates replaced", "title", c.record.Title, "total_slots", total)
	c.scheduleSaveLocked()
	return nil
}

// SubmitAnswer upserts a respondent by exact (case-sensitive) name match,
// overwriting the full answer vector. The name is trimmed first; an empty
// name is a no-op. The vector is normalized to the current flattened
// length.
func (c *Controller) SubmitAnswer(name string, answers []bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.readyLocked(); err != nil {
		return err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}

	total := slotindex.TotalSlots(c.record.Candidates)
	vec := resizeAnswers(append([]bool(nil), answers...), total)

	for i := range c.record.Users {
		if c.record.Users[i].Name == name {
			c.record.Users[i].Answers = vec
			slog.Info("answer replaced", "title", c.record.Title, "name", name)
			c.scheduleSaveLocked()
			return nil
		}
	}

	c.record.Users = append(c.record.Users, models.Respondent{Name: name, Answers: vec})
	slog.Info("answer submitted", "title", c.record.Title, "name", name)
	c.scheduleSaveLocked()
	return nil
}

// ToggleAnswer flips one answer in place. Out-of-range indices are a
// no-op: state is never corrupted by a stale index.
func (c *Controller) ToggleAnswer(respondentIdx, flatIdx int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.readyLocked(); err != nil {
		return err
	}

	if respondentIdx < 0 || respondentIdx >= len(c.record.Users) {
		return nil
	}
	answers := c.record.Users[respondentIdx].Answers
	if flatIdx < 0 || flatIdx >= len(answers) {
		return nil
	}

	answers[flatIdx] = !answers[flatIdx]
	c.scheduleSaveLocked()
	return nil
}

// ShareURL returns the absolute share link carrying the encoded record.
// Empty before hydration completes and on encode failure.
func (c *Controller) ShareURL() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateReady || c.closed {
		return ""
	}
	encoded := codec.Encode(c.record)
	if encoded == "" {
		return ""
	}
	return c.baseURL + "/?" + models.StateParam + "=" + url.QueryEscape(encoded)
}

// Record returns a deep copy of the current poll record.
func (c *Controller) Record() models.PollRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.record.Clone()
}

// State returns the lifecycle position.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Summary is the read-only per-slot head-count view.
func (c *Controller) Summary(i, j int) models.SlotSummary {
	c.mu.Lock()
	defer c.mu.Unlock()
	return aggregate.SlotSummary(c.record, i, j)
}

// BestSlots is the read-only optimal-slot view.
func (c *Controller) BestSlots() []models.BestSlot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return aggregate.BestSlots(c.record)
}

// TotalSlots is the current flattened answer-vector length.
func (c *Controller) TotalSlots() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slotindex.TotalSlots(c.record.Candidates)
}

// Flush persists the current state immediately, cancelling any pending
// debounced write.
func (c *Controller) Flush() {
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.mu.Unlock()
	c.flush()
}

// Close tears the session down: the pending debounce timer is cancelled
// WITHOUT writing, so no persistence happens after the owning context is
// gone. The controller accepts no mutations afterwards.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Controller) readyLocked() error {
	if c.state != StateReady || c.closed {
		return ErrNotReady
	}
	return nil
}

// scheduleSaveLocked arms the trailing debounce: a mutation arriving
// before the delay elapses cancels the pending write and reschedules
// against the latest state, so intermediate states are never written.
func (c *Controller) scheduleSaveLocked() {
	if c.closed {
		return
	}
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.debounce, c.flush)
}

// flush writes whatever the record holds at flush time. Encode failure
// skips the cycle; storage failure degrades to memory-only. Either way the
// in-memory state is retained and the next mutation retries.
func (c *Controller) flush() {
	c.mu.Lock()
	if c.closed || c.state != StateReady {
		c.mu.Unlock()
		return
	}
	rec := c.record.Clone()
	c.mu.Unlock()

	encoded := codec.Encode(rec)
	if encoded == "" {
		slog.Warn("encode failed, skipping persistence cycle", "title", rec.Title)
		return
	}

	if err := codec.LocalSave(c.kv, rec); err != nil {
		slog.Warn("local cache write failed, continuing memory-only", "title", rec.Title, "error", err)
	}

	c.nav.Push(encoded)
}

// resizeAnswers adjusts a vector to length n positionally: trailing
// entries are dropped or padded with false.
func resizeAnswers(answers []bool, n int) []bool {
	if len(answers) == n {
		if answers == nil && n == 0 {
			return []bool{}
		}
		return answers
	}
	if len(answers) > n {
		return answers[:n]
	}
	out := make([]bool, n)
	copy(out, answers)
	return out
}
