package cache

import (
	"encoding/json"
	"sync"
	"time"
)

// memoryStore is a TTL map cache. Values are stored as JSON so Get/Set
// behave identically to the Redis driver.
type memoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

func newMemoryStore() *memoryStore {
	return &memoryStore{entries: make(map[string]memoryEntry)}
}

func (s *memoryStore) Get(key string, dest interface{}) bool {
	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok || time.Now().After(entry.expiresAt) {
		if ok {
			s.mu.Lock()
			delete(s.entries, key)
			s.mu.Unlock()
		}
		observe(s.Driver(), false)
		return false
	}

	if err := json.Unmarshal(entry.data, dest); err != nil {
		observe(s.Driver(), false)
		return false
	}

	observe(s.Driver(), true)
	return true
}

func (s *memoryStore) Set(key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.entries[key] = memoryEntry{data: data, expiresAt: time.Now().Add(ttl)}
	s.mu.Unlock()
	return nil
}

func (s *memoryStore) Flush() error {
	s.mu.Lock()
	s.entries = make(map[string]memoryEntry)
	s.mu.Unlock()
	return nil
}

func (s *memoryStore) Driver() string { return "memory" }
