package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreUnknownKeyIsFresh(t *testing.T) {
	store := NewMemoryStore(0)
	state, err := store.Load(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Equal(t, NewState(), state)
	assert.Equal(t, 0, store.Len())
}

func TestMemoryStoreSaveLoadDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(0)

	state := NewState()
	state.Tab = "shop"
	state.Profile.Distance = "5"
	state.Profile.TotalProtein = 20
	require.NoError(t, store.Save(ctx, "a", state))

	got, err := store.Load(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, state, got)

	// изменение загруженной копии не меняет хранилище
	got.Profile.TotalProtein = 99
	again, err := store.Load(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 20.0, again.Profile.TotalProtein)

	require.NoError(t, store.Delete(ctx, "a"))
	fresh, err := store.Load(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, NewState(), fresh)
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(0)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := "k"
			if i%2 == 0 {
				key = "j"
			}
			st, err := store.Load(ctx, key)
			assert.NoError(t, err)
			assert.NoError(t, store.Save(ctx, key, st))
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 2, store.Len())
}

func TestMemoryStoreExpiresAfterTTL(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	state := NewState()
	state.Profile.TotalProtein = 20
	require.NoError(t, store.Save(ctx, "a", state))

	now = now.Add(59 * time.Minute)
	got, err := store.Load(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 20.0, got.Profile.TotalProtein)

	now = now.Add(time.Minute)
	got, err = store.Load(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, NewState(), got, "expired session starts over")
	assert.Equal(t, 0, store.Len())
}

func TestMemoryStoreSweepsExpiredEntries(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Minute)
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	for _, key := range []string{"a", "b", "c"} {
		require.NoError(t, store.Save(ctx, key, NewState()))
	}

	now = now.Add(2 * time.Minute)
	require.NoError(t, store.Save(ctx, "d", NewState()))

	store.mu.RLock()
	defer store.mu.RUnlock()
	assert.Len(t, store.states, 1, "only the fresh entry is kept")
}
