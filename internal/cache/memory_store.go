package cache

import (
	"context"
	"sync"
)

// MemoryStore keeps cache entries in a process-local map.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]Entry),
	}
}

// Get returns a copy of the entry stored at key.
func (s *MemoryStore) Get(ctx context.Context, key string) (Entry, bool, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[key]
	if !ok {
		return Entry{}, false, nil
	}
	return cloneEntry(e), true, nil
}

// Put replaces the entry stored at key. Expired entries are overwritten, never swept.
func (s *MemoryStore) Put(ctx context.Context, key string, entry Entry) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = cloneEntry(entry)
	return nil
}

// Len returns the number of stored keys, including expired ones.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func cloneEntry(e Entry) Entry {
	payload := make([]byte, len(e.Payload))
	copy(payload, e.Payload)
	return Entry{ExpiresAtMs: e.ExpiresAtMs, Payload: payload}
}
