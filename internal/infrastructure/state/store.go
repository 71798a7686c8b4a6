// Package state provides the in-memory per-user state store. Each user id
// owns one entry; all reads and mutations of that entry run inside a
// per-entry critical section so operations on the same user never
// interleave, while disjoint users proceed independently.
package state

import (
	"sync"
	"time"

	"github.com/moodrise/moodrise-go/internal/domain/user"
	"github.com/moodrise/moodrise-go/internal/infrastructure/observability/logging"
)

/*
Locking hierarchy (highest to lowest):
 1. Store.mu (map membership only)
 2. entry.mu (per-user state)

Never acquire Store.mu while holding an entry.mu. Store.mu is held only
long enough to look up or insert an entry; all state work happens under
the entry lock.
*/

type entry struct {
	mu    sync.Mutex
	state *user.State
}

// Store holds every user's state for the process lifetime.
type Store struct {
	entries map[string]*entry
	mu      sync.RWMutex
	clock   func() time.Time
	logger  *logging.ChanneledLogger
}

// NewStore creates a user state store. The clock is injectable so day
// rollover and usage accounting are deterministic under test; pass nil
// for wall-clock time.
func NewStore(clock func() time.Time, logger *logging.ChanneledLogger) *Store {
	if clock == nil {
		clock = time.Now
	}
	if logger != nil {
		logger.State().Info("Initializing user state store")
	}
	return &Store{
		entries: make(map[string]*entry),
		clock:   clock,
		logger:  logger,
	}
}

// Now returns the store's current time.
func (s *Store) Now() time.Time {
	return s.clock()
}

// getOrCreate returns the entry for a user id, creating it under the
// write lock on first sight.
func (s *Store) getOrCreate(userID string) *entry {
	s.mu.RLock()
	e, ok := s.entries[userID]
	s.mu.RUnlock()
	if ok {
		return e
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Double-check after acquiring the write lock.
	if e, ok = s.entries[userID]; ok {
		return e
	}

	now := s.clock()
	e = &entry{state: user.NewState(userID, user.DateOf(now))}
	s.entries[userID] = e

	if s.logger != nil {
		s.logger.WithUser(logging.ChannelState, userID).Debug("Created user state", "day", user.DateOf(now))
	}
	return e
}

// Update runs fn against the user's state inside the per-user critical
// section. Day rollover is applied before fn so every operation sees
// today's daily-scoped fields. fn receives the current instant alongside
// the state.
func (s *Store) Update(userID string, fn func(st *user.State, now time.Time)) {
	e := s.getOrCreate(userID)

	e.mu.Lock()
	defer e.mu.Unlock()

	now := s.clock()
	if user.RolloverIfNeeded(e.state, user.DateOf(now)) {
		if s.logger != nil {
			s.logger.WithUser(logging.ChannelState, userID).Debug("Day rollover applied", "day", user.DateOf(now))
		}
	}
	fn(e.state, now)
}

// Read runs fn against the user's state without signalling any intent to
// mutate. It takes the same per-user lock as Update; rollover still
// applies first so reads never observe a stale day.
func (s *Store) Read(userID string, fn func(st *user.State, now time.Time)) {
	s.Update(userID, fn)
}

// Len reports the number of tracked users.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// EvictIdle removes entries whose last interaction is older than ttl.
// Entries that never interacted are aged from their current day instead.
// Returns the number of evicted users.
func (s *Store) EvictIdle(ttl time.Duration) int {
	now := s.clock()
	cutoff := now.Add(-ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, e := range s.entries {
		e.mu.Lock()
		last := lastActivity(e.state)
		e.mu.Unlock()

		if last.Before(cutoff) {
			delete(s.entries, id)
			evicted++
		}
	}

	if evicted > 0 && s.logger != nil {
		s.logger.State().Info("Evicted idle user state", "count", evicted, "ttl", ttl.String())
	}
	return evicted
}

func lastActivity(st *user.State) time.Time {
	if st.LastInteractionTs != nil {
		return *st.LastInteractionTs
	}
	day, err := time.Parse(user.DateLayout, st.CurrentDay)
	if err != nil {
		return time.Time{}
	}
	return day
}
