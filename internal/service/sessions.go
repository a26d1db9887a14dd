package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/kspsusmitha/fitness-app/internal/session"
)

// Sessions сериализует изменения состояния одного клиента
type Sessions struct {
	store session.Store

	mu    sync.Mutex
	locks map[string]*keyLock
}

// keyLock живёт, пока его кто-то держит или ждёт
type keyLock struct {
	mu   sync.Mutex
	refs int
}

func NewSessions(store session.Store) *Sessions {
	return &Sessions{store: store, locks: make(map[string]*keyLock)}
}

func (s *Sessions) lock(key string) func() {
	s.mu.Lock()
	l, ok := s.locks[key]
	if !ok {
		l = &keyLock{}
		s.locks[key] = l
	}
	l.refs++
	s.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()

		s.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, key)
		}
		s.mu.Unlock()
	}
}

// lockCount - число ключей с активной блокировкой
func (s *Sessions) lockCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.locks)
}

func (s *Sessions) Load(ctx context.Context, key string) (*session.State, error) {
	state, err := s.store.Load(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return state, nil
}

// Update загружает состояние, применяет fn и сохраняет, если fn что-то
// изменила. Весь цикл идёт под блокировкой ключа
func (s *Sessions) Update(ctx context.Context, key string, fn func(*session.State) (bool, error)) (*session.State, error) {
	unlock := s.lock(key)
	defer unlock()

	state, err := s.store.Load(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	changed, err := fn(state)
	if err != nil {
		return nil, err
	}
	if !changed {
		return state, nil
	}

	if err := s.store.Save(ctx, key, state); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return state, nil
}

// Reset начинает сеанс заново
func (s *Sessions) Reset(ctx context.Context, key string) error {
	unlock := s.lock(key)
	defer unlock()

	if err := s.store.Delete(ctx, key); err != nil {
		return fmt.Errorf("reset session: %w", err)
	}
	return nil
}

// Count - число сеансов, если хранилище умеет его считать
func (s *Sessions) Count() (int, bool) {
	counter, ok := s.store.(interface{ Len() int })
	if !ok {
		return 0, false
	}
	return counter.Len(), true
}
