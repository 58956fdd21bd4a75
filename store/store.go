// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
	"sync"
)

// KV is the storage primitive consumed by the persistence codec: get/set
// by string key. Implementations must tolerate overwrites.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// SQLStore is a KV backed by database/sql. It works against SQLite
// (modernc.org/sqlite, driver name "sqlite") and PostgreSQL (lib/pq,
// driver name "postgres"); the schema and statements are valid on both.
type SQLStore struct {
	db *sql.DB
}

// Open connects to the database and ensures the cache table exists.
func Open(driver, url string) (*SQLStore, error) {
	db, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	s := &SQLStore{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// createSchema creates the cache table. Safe to call multiple times.
func (s *SQLStore) createSchema() error {
	_, err := s.db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

const schema = `
-- Local poll cache: one row per sanitized title, textual JSON, no TTL.
CREATE TABLE IF NOT EXISTS poll_cache (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

func (s *SQLStore) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM poll_cache WHERE key = $1`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *SQLStore) Set(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO poll_cache (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

// Memory is an in-process KV. It backs tests and the degraded mode used
// when the database is unavailable (continue memory-only).
type Memory struct {
	mu sync.RWMutex
	m  map[string]string
}

func NewMemory() *Memory {
	return &Memory{m: make(map[string]string)}
}

func (s *Memory) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	return v, ok, nil
}

func (s *Memory) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
	return nil
}

// Len reports the number of stored entries.
func (s *Memory) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.m)
}
