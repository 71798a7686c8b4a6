package state

import (
	"sync"
	"testing"
	"time"

	"github.com/moodrise/moodrise-go/internal/domain/user"
	"github.com/stretchr/testify/require"
)

// fakeClock is a mutable clock safe for concurrent reads.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(t time.Time) *fakeClock { return &fakeClock{now: t} }

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestStore_GetOrCreate(t *testing.T) {
	clock := newFakeClock(time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC))
	store := NewStore(clock.Now, nil)

	var day string
	store.Read("u1", func(st *user.State, now time.Time) {
		day = st.CurrentDay
	})
	require.Equal(t, "2025-06-10", day)
	require.Equal(t, 1, store.Len())

	// Same id resolves to the same entry.
	store.Update("u1", func(st *user.State, now time.Time) {
		st.GoodMoodStreakDays = 7
	})
	var streak int
	store.Read("u1", func(st *user.State, now time.Time) {
		streak = st.GoodMoodStreakDays
	})
	require.Equal(t, 7, streak)
	require.Equal(t, 1, store.Len())
}

func TestStore_RolloverAppliedOnEveryOperation(t *testing.T) {
	clock := newFakeClock(time.Date(2025, 6, 10, 23, 0, 0, 0, time.UTC))
	store := NewStore(clock.Now, nil)

	store.Update("u1", func(st *user.State, now time.Time) {
		st.UsageTodayMillis = 1000
		st.Calendar["2025-06-10"] = &user.DaySummary{UsageMillis: 1000}
	})

	clock.Advance(2 * time.Hour) // past midnight

	store.Read("u1", func(st *user.State, now time.Time) {
		require.Equal(t, "2025-06-11", st.CurrentDay)
		require.Zero(t, st.UsageTodayMillis)
		require.Contains(t, st.Calendar, "2025-06-10")
	})
}

func TestStore_PerKeyUpdatesAreAtomic(t *testing.T) {
	store := NewStore(nil, nil)

	const goroutines = 16
	const perGoroutine = 200

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				store.Update("shared", func(st *user.State, now time.Time) {
					st.UsageTodayMillis++
				})
			}
		}()
	}
	wg.Wait()

	var total int64
	store.Read("shared", func(st *user.State, now time.Time) {
		total = st.UsageTodayMillis
	})
	require.Equal(t, int64(goroutines*perGoroutine), total)
}

func TestStore_DisjointUsersIndependent(t *testing.T) {
	store := NewStore(nil, nil)

	var wg sync.WaitGroup
	for _, id := range []string{"a", "b", "c", "d"} {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				store.Update(id, func(st *user.State, now time.Time) {
					st.UsageTodayMillis++
				})
			}
		}(id)
	}
	wg.Wait()

	require.Equal(t, 4, store.Len())
	for _, id := range []string{"a", "b", "c", "d"} {
		store.Read(id, func(st *user.State, now time.Time) {
			require.Equal(t, int64(100), st.UsageTodayMillis)
		})
	}
}

func TestStore_EvictIdle(t *testing.T) {
	clock := newFakeClock(time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC))
	store := NewStore(clock.Now, nil)

	store.Update("old", func(st *user.State, now time.Time) {
		ts := now
		st.LastInteractionTs = &ts
	})

	clock.Advance(48 * time.Hour)

	store.Update("fresh", func(st *user.State, now time.Time) {
		ts := now
		st.LastInteractionTs = &ts
	})

	evicted := store.EvictIdle(24 * time.Hour)
	require.Equal(t, 1, evicted)
	require.Equal(t, 1, store.Len())

	// The fresh user survives.
	store.Read("fresh", func(st *user.State, now time.Time) {
		require.NotNil(t, st.LastInteractionTs)
	})
}
