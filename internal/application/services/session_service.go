// Package services contains the singleton application services that
// implement MoodRise business logic over the state store and catalog.
package services

import (
	"math/rand"
	"time"

	"github.com/moodrise/moodrise-go/internal/domain/user"
	"github.com/moodrise/moodrise-go/internal/infrastructure/observability/logging"
	"github.com/moodrise/moodrise-go/internal/infrastructure/state"
	"github.com/moodrise/moodrise-go/pkg/config"
)

// StartOutcome is the result of a session start attempt. Domain
// rejections are outcomes, not errors: nothing here propagates to the
// transport layer as a failure.
type StartOutcome string

const (
	StartOK               StartOutcome = "ok"
	StartCapacityExceeded StartOutcome = "capacityExceeded"
)

// SessionSummary is returned when a session ends.
type SessionSummary struct {
	MoodStart *int   `json:"moodStart,omitempty"`
	MoodEnd   int    `json:"moodEnd"`
	Delta     *int   `json:"delta,omitempty"`
	Tip       string `json:"tip"`
}

// LimitStatus reports daily screen-time accounting for one user.
type LimitStatus struct {
	Allowed              bool  `json:"allowed"`
	RemainingMillisToday int64 `json:"remainingMillisToday"`
	UsedMillisToday      int64 `json:"usedMillisToday"`
	DailyCapMillis       int64 `json:"dailyCapMillis"`
}

// SessionService drives the per-user session, usage, check-in, and streak
// state machine. All mutations of a user's state run inside the store's
// per-user critical section.
type SessionService struct {
	store    *state.Store
	logger   *logging.ChanneledLogger
	randIntn func(n int) int
}

// NewSessionService creates the session service. randIntn is injectable
// so check-in scheduling is deterministic under test; pass nil for the
// shared math/rand source.
func NewSessionService(store *state.Store, logger *logging.ChanneledLogger, randIntn func(n int) int) *SessionService {
	if randIntn == nil {
		randIntn = rand.Intn
	}
	return &SessionService{store: store, logger: logger, randIntn: randIntn}
}

// Start begins a session for the user at the given starting mood. When the
// user is already at the daily cap the state is left untouched and
// StartCapacityExceeded is returned.
func (s *SessionService) Start(userID string, moodStart int) StartOutcome {
	outcome := StartOK
	s.store.Update(userID, func(st *user.State, now time.Time) {
		if st.UsageTodayMillis >= config.DailyCapMillis {
			outcome = StartCapacityExceeded
			return
		}

		st.Phase = user.PhaseActive
		st.SessionStartTs = &now
		st.LastInteractionTs = &now
		start := moodStart
		st.MoodStart = &start
		current := moodStart
		st.MoodCurrent = &current

		next := now.Add(config.FirstCheckDelay)
		st.NextCheckTs = &next

		st.BeginDay(st.CurrentDay, moodStart)
	})

	if s.logger != nil {
		s.logger.WithUser(logging.ChannelSession, userID).Info("Session start", "moodStart", moodStart, "outcome", string(outcome))
	}
	return outcome
}

// RecordInteraction credits active time since the last interaction and
// refreshes the interaction timestamp.
func (s *SessionService) RecordInteraction(userID string) {
	s.store.Update(userID, func(st *user.State, now time.Time) {
		recordInteraction(st, now)
	})
}

// recordInteraction applies the usage-accounting step inside an already
// held per-user critical section. Negative deltas (clock skew) are
// dropped; the total never exceeds the daily cap.
func recordInteraction(st *user.State, now time.Time) {
	if st.LastInteractionTs != nil {
		delta := now.Sub(*st.LastInteractionTs).Milliseconds()
		if delta < 0 {
			delta = 0
		}
		total := st.UsageTodayMillis + delta
		if total > config.DailyCapMillis {
			total = config.DailyCapMillis
		}
		st.UsageTodayMillis = total

		ds := st.EnsureDay(st.CurrentDay)
		ds.UsageMillis = total
	}
	ts := now
	st.LastInteractionTs = &ts
}

// MoodCheck records a mid-session mood reading and schedules the next
// check-in at a uniformly random delay inside the recheck window.
// Returns the new next-check instant.
func (s *SessionService) MoodCheck(userID string, mood int) time.Time {
	var next time.Time
	s.store.Update(userID, func(st *user.State, now time.Time) {
		m := mood
		st.MoodCurrent = &m
		recordInteraction(st, now)

		// Closed interval: both window bounds are reachable.
		window := int((config.RecheckMaxDelay-config.RecheckMinDelay)/time.Second) + 1
		delay := config.RecheckMinDelay + time.Duration(s.randIntn(window))*time.Second
		next = now.Add(delay)
		st.NextCheckTs = &next
	})

	if s.logger != nil {
		s.logger.WithUser(logging.ChannelSession, userID).Info("Mood check", "mood", mood, "nextCheckTs", next)
	}
	return next
}

// End closes the user's session, finalizes today's calendar entry, updates
// the good-mood streak, and returns the session summary.
func (s *SessionService) End(userID string, moodEnd int) SessionSummary {
	var summary SessionSummary
	s.store.Update(userID, func(st *user.State, now time.Time) {
		recordInteraction(st, now)

		end := moodEnd
		st.MoodCurrent = &end

		ds := st.EnsureDay(st.CurrentDay)
		if ds.MoodStart == nil && st.MoodStart != nil {
			v := *st.MoodStart
			ds.MoodStart = &v
		}
		endCopy := moodEnd
		ds.MoodEnd = &endCopy
		ds.UsageMillis = st.UsageTodayMillis

		user.UpdateStreak(st, st.CurrentDay, config.GoodMoodThreshold)

		st.Phase = user.PhaseIdle
		st.SessionStartTs = nil
		st.NextCheckTs = nil

		summary = SessionSummary{MoodEnd: moodEnd, Tip: tipForDelta(st.MoodStart, moodEnd)}
		if st.MoodStart != nil {
			start := *st.MoodStart
			summary.MoodStart = &start
			delta := moodEnd - start
			summary.Delta = &delta
		}
	})

	if s.logger != nil {
		s.logger.WithUser(logging.ChannelSession, userID).Info("Session end", "moodEnd", moodEnd, "tip", summary.Tip)
	}
	return summary
}

// tipForDelta buckets the session's mood change into a closing tip.
func tipForDelta(start *int, end int) string {
	if start == nil {
		return "Nice work taking a mindful break today."
	}
	switch d := end - *start; {
	case d >= 2:
		return "Great lift! Keep it going—consider a quick walk or water break."
	case d >= 1:
		return "Nice improvement. Try a 2-minute stretch next."
	case d == 0:
		return "Steady is good. Maybe switch tabs or try a brief breathing exercise."
	default:
		return "Tough session—consider a short rest from screens, a walk, or talk to a friend."
	}
}

// LimitStatus reports daily cap accounting. Pure read; it does not record
// an interaction.
func (s *SessionService) LimitStatus(userID string) LimitStatus {
	var ls LimitStatus
	s.store.Read(userID, func(st *user.State, now time.Time) {
		remaining := config.DailyCapMillis - st.UsageTodayMillis
		if remaining < 0 {
			remaining = 0
		}
		ls = LimitStatus{
			Allowed:              remaining > 0,
			RemainingMillisToday: remaining,
			UsedMillisToday:      st.UsageTodayMillis,
			DailyCapMillis:       config.DailyCapMillis,
		}
	})
	return ls
}

// NextCheck returns the scheduled next mood check, or nil when no session
// is active.
func (s *SessionService) NextCheck(userID string) *time.Time {
	var next *time.Time
	s.store.Read(userID, func(st *user.State, now time.Time) {
		if st.NextCheckTs != nil {
			ts := *st.NextCheckTs
			next = &ts
		}
	})
	return next
}

// CurrentMood returns the user's latest recorded mood, if any.
func (s *SessionService) CurrentMood(userID string) *int {
	var mood *int
	s.store.Read(userID, func(st *user.State, now time.Time) {
		if st.MoodCurrent != nil {
			m := *st.MoodCurrent
			mood = &m
		}
	})
	return mood
}

// Hide adds an item to the user's hidden set and records the interaction.
// The hidden set only grows; there is no un-hide.
func (s *SessionService) Hide(userID, itemID string) {
	s.store.Update(userID, func(st *user.State, now time.Time) {
		st.HiddenItemIDs[itemID] = true
		recordInteraction(st, now)
	})
}

// HiddenIDs returns a copy of the user's hidden item set.
func (s *SessionService) HiddenIDs(userID string) map[string]bool {
	hidden := make(map[string]bool)
	s.store.Read(userID, func(st *user.State, now time.Time) {
		for id := range st.HiddenItemIDs {
			hidden[id] = true
		}
	})
	return hidden
}

// Calendar returns a copy of the user's calendar, keyed by date.
func (s *SessionService) Calendar(userID string) map[string]user.DaySummary {
	out := make(map[string]user.DaySummary)
	s.store.Read(userID, func(st *user.State, now time.Time) {
		for date, ds := range st.Calendar {
			out[date] = *ds
		}
	})
	return out
}

// Streak returns the user's consecutive-good-mood-day count.
func (s *SessionService) Streak(userID string) int {
	var streak int
	s.store.Read(userID, func(st *user.State, now time.Time) {
		streak = st.GoodMoodStreakDays
	})
	return streak
}
