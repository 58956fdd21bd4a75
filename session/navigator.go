// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import "sync"

// MemoryNavigator is the in-process Navigator used for server sessions
// (and tests): it remembers the most recently emitted parameter value and
// counts Push calls, standing in for a browser URL bar.
type MemoryNavigator struct {
	mu      sync.Mutex
	current string
	pushes  int
}

func NewMemoryNavigator() *MemoryNavigator {
	return &MemoryNavigator{}
}

func (n *MemoryNavigator) Push(encoded string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.current = encoded
	n.pushes++
}

func (n *MemoryNavigator) Replace(encoded string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.current = encoded
}

// Current returns the last emitted parameter value.
func (n *MemoryNavigator) Current() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Pushes returns how many settled states have been emitted.
func (n *MemoryNavigator) Pushes() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.pushes
}
