// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/danielhkuo/quickly-meet/ident"
	"github.com/danielhkuo/quickly-meet/store"
)

// Manager owns one controller per session. There is deliberately no
// shared poll state across sessions: two sessions editing "the same" poll
// race on the full record and the last write wins.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Controller
	kv       store.KV
	baseURL  string
	debounce time.Duration
}

func NewManager(kv store.KV, baseURL string, debounce time.Duration) *Manager {
	return &Manager{
		sessions: make(map[string]*Controller),
		kv:       kv,
		baseURL:  baseURL,
		debounce: debounce,
	}
}

// Create hydrates a new session from an inbound encoded parameter ("" for
// a fresh empty poll) and returns its ID.
func (m *Manager) Create(param string) (string, *Controller, error) {
	return m.create(func(c *Controller) error { return c.Hydrate(param) })
}

// CreateStored hydrates a new session from the local cache entry for the
// given title.
func (m *Manager) CreateStored(title string) (string, *Controller, error) {
	return m.create(func(c *Controller) error { return c.HydrateStored(title) })
}

func (m *Manager) create(hydrate func(*Controller) error) (string, *Controller, error) {
	id, err := ident.GenerateID(16)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate session ID: %w", err)
	}

	c := NewController(m.kv, NewMemoryNavigator(), m.baseURL, m.debounce)
	if err := hydrate(c); err != nil {
		return "", nil, err
	}

	m.mu.Lock()
	m.sessions[id] = c
	m.mu.Unlock()

	return id, c, nil
}

// Get looks a session up by ID.
func (m *Manager) Get(id string) (*Controller, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.sessions[id]
	return c, ok
}

// Remove tears a session down, cancelling its pending debounce timer.
func (m *Manager) Remove(id string) bool {
	m.mu.Lock()
	c, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if ok {
		c.Close()
	}
	return ok
}

// CloseAll tears every session down. Called on shutdown so no debounce
// timer fires after the server is gone.
func (m *Manager) CloseAll() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[string]*Controller)
	m.mu.Unlock()

	for _, c := range sessions {
		c.Close()
	}
}

// Len reports the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
