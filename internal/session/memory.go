package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore - состояние живёт до перезапуска процесса или до истечения ttl.
// ttl <= 0 - без истечения
type MemoryStore struct {
	mu        sync.RWMutex
	states    map[string]memoryEntry
	ttl       time.Duration
	now       func() time.Time
	lastSweep time.Time
}

type memoryEntry struct {
	state   State
	expires time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		states: make(map[string]memoryEntry),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expires.IsZero() && !now.Before(e.expires)
}

func (s *MemoryStore) Load(_ context.Context, key string) (*State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.states[key]
	if !ok || entry.expired(s.now()) {
		return NewState(), nil
	}
	state := entry.state
	return &state, nil
}

// Save продлевает ttl, как SET с EX в Redis
func (s *MemoryStore) Save(_ context.Context, key string, state *State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	entry := memoryEntry{state: *state}
	if s.ttl > 0 {
		entry.expires = now.Add(s.ttl)
	}
	s.states[key] = entry
	s.sweep(now)
	return nil
}

// sweep удаляет истёкшие записи не чаще раза в ttl; вызывается под mu
func (s *MemoryStore) sweep(now time.Time) {
	if s.ttl <= 0 || now.Sub(s.lastSweep) < s.ttl {
		return
	}
	for key, entry := range s.states {
		if entry.expired(now) {
			delete(s.states, key)
		}
	}
	s.lastSweep = now
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.states, key)
	return nil
}

// Len - число живых сеансов
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	n := 0
	for _, entry := range s.states {
		if !entry.expired(now) {
			n++
		}
	}
	return n
}
