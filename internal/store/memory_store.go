package store

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	entry     Entry
	expiresAt time.Time
}

// MemoryStore keeps cache entries in a mutex-guarded map. Expired entries are dropped
// lazily on read.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// Get returns the entry stored under key, if present and not expired.
func (s *MemoryStore) Get(ctx context.Context, key string) (Entry, bool, error) {
	_ = ctx
	s.mu.RLock()
	item, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return Entry{}, false, nil
	}
	if !item.expiresAt.IsZero() && !s.now().Before(item.expiresAt) {
		s.mu.Lock()
		if current, still := s.entries[key]; still && current.expiresAt.Equal(item.expiresAt) {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return Entry{}, false, nil
	}
	return copyEntry(item.entry), true, nil
}

// Set stores entry under key. A non-positive ttl keeps the entry until it is deleted.
func (s *MemoryStore) Set(ctx context.Context, key string, entry Entry, ttl time.Duration) error {
	_ = ctx
	item := memoryEntry{entry: copyEntry(entry)}
	if ttl > 0 {
		item.expiresAt = s.now().Add(ttl)
	}
	s.mu.Lock()
	s.entries[key] = item
	s.mu.Unlock()
	return nil
}

// DeletePrefix removes every key equal to prefix or nested beneath it.
func (s *MemoryStore) DeletePrefix(ctx context.Context, prefix string) (int, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key := range s.entries {
		if matchesPrefix(key, prefix) {
			delete(s.entries, key)
			removed++
		}
	}
	return removed, nil
}

// Clear drops every entry.
func (s *MemoryStore) Clear(ctx context.Context) error {
	_ = ctx
	s.mu.Lock()
	s.entries = make(map[string]memoryEntry)
	s.mu.Unlock()
	return nil
}

// Len reports the number of stored entries, including ones not yet lazily expired.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}

func copyEntry(e Entry) Entry {
	payload := make([]byte, len(e.Payload))
	copy(payload, e.Payload)
	return Entry{Payload: payload, FetchedAt: e.FetchedAt}
}
