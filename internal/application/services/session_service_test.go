package services

import (
	"sync"
	"testing"
	"time"

	"github.com/moodrise/moodrise-go/internal/infrastructure/state"
	"github.com/moodrise/moodrise-go/pkg/config"
	"github.com/stretchr/testify/require"
)

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

func newSessionFixture(t *testing.T, start time.Time) (*SessionService, *fakeClock) {
	t.Helper()
	clock := newFakeClock(start)
	store := state.NewStore(clock.Now, nil)
	return NewSessionService(store, nil, func(n int) int { return 0 }), clock
}

var baseTime = time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

func TestStart_SchedulesFirstCheck(t *testing.T) {
	svc, _ := newSessionFixture(t, baseTime)

	outcome := svc.Start("u1", 3)
	require.Equal(t, StartOK, outcome)

	next := svc.NextCheck("u1")
	require.NotNil(t, next)
	require.Equal(t, baseTime.Add(config.FirstCheckDelay), *next)

	ls := svc.LimitStatus("u1")
	require.True(t, ls.Allowed)
	require.Zero(t, ls.UsedMillisToday)
	require.Equal(t, config.DailyCapMillis, ls.DailyCapMillis)
}

func TestRecordInteraction_AccruesClampedUsage(t *testing.T) {
	svc, clock := newSessionFixture(t, baseTime)
	svc.Start("u1", 3)

	clock.Advance(90 * time.Second)
	svc.RecordInteraction("u1")

	ls := svc.LimitStatus("u1")
	require.Equal(t, int64(90_000), ls.UsedMillisToday)

	// Immediate second call adds nothing.
	svc.RecordInteraction("u1")
	require.Equal(t, int64(90_000), svc.LimitStatus("u1").UsedMillisToday)
}

func TestUsage_CappedAtDailyLimit(t *testing.T) {
	svc, clock := newSessionFixture(t, baseTime)
	svc.Start("u1", 3)

	// 65 minutes of continuous interaction.
	for i := 0; i < 65; i++ {
		clock.Advance(time.Minute)
		svc.RecordInteraction("u1")
	}

	ls := svc.LimitStatus("u1")
	require.Equal(t, config.DailyCapMillis, ls.UsedMillisToday)
	require.False(t, ls.Allowed)
	require.Zero(t, ls.RemainingMillisToday)

	// A further start attempt is refused and leaves the session untouched.
	before := svc.NextCheck("u1")
	require.Equal(t, StartCapacityExceeded, svc.Start("u1", 5))
	require.Equal(t, before, svc.NextCheck("u1"))
}

func TestMoodCheck_ReschedulesInsideWindow(t *testing.T) {
	clock := newFakeClock(baseTime)
	store := state.NewStore(clock.Now, nil)

	windowSeconds := int((config.RecheckMaxDelay-config.RecheckMinDelay)/time.Second) + 1

	// Lowest draw lands on the window's lower bound.
	low := NewSessionService(store, nil, func(n int) int {
		require.Equal(t, windowSeconds, n)
		return 0
	})
	low.Start("u1", 3)
	next := low.MoodCheck("u1", 4)
	require.Equal(t, clock.Now().Add(config.RecheckMinDelay), next)

	// Highest draw lands on the upper bound, inclusive.
	high := NewSessionService(store, nil, func(n int) int { return n - 1 })
	next = high.MoodCheck("u1", 4)
	require.Equal(t, clock.Now().Add(config.RecheckMaxDelay), next)
}

func TestEnd_SummaryAndTips(t *testing.T) {
	tests := []struct {
		name      string
		moodStart int
		moodEnd   int
		wantDelta int
		wantTip   string
	}{
		{"great lift", 2, 5, 3, "Great lift! Keep it going—consider a quick walk or water break."},
		{"nice improvement", 3, 4, 1, "Nice improvement. Try a 2-minute stretch next."},
		{"steady", 3, 3, 0, "Steady is good. Maybe switch tabs or try a brief breathing exercise."},
		{"tough session", 4, 2, -2, "Tough session—consider a short rest from screens, a walk, or talk to a friend."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, clock := newSessionFixture(t, baseTime)
			svc.Start("u1", tt.moodStart)
			clock.Advance(10 * time.Minute)

			summary := svc.End("u1", tt.moodEnd)
			require.NotNil(t, summary.Delta)
			require.Equal(t, tt.wantDelta, *summary.Delta)
			require.Equal(t, tt.wantTip, summary.Tip)
			require.Equal(t, tt.moodStart, *summary.MoodStart)
			require.Equal(t, tt.moodEnd, summary.MoodEnd)
		})
	}
}

func TestEnd_WithoutStartMood(t *testing.T) {
	svc, _ := newSessionFixture(t, baseTime)

	summary := svc.End("u1", 4)
	require.Nil(t, summary.MoodStart)
	require.Nil(t, summary.Delta)
	require.Equal(t, "Nice work taking a mindful break today.", summary.Tip)
}

func TestEnd_ReturnsToIdleAndFinalizesDay(t *testing.T) {
	svc, clock := newSessionFixture(t, baseTime)
	svc.Start("u1", 3)
	clock.Advance(5 * time.Minute)

	svc.End("u1", 4)

	require.Nil(t, svc.NextCheck("u1"))

	cal := svc.Calendar("u1")
	day := cal["2025-06-10"]
	require.Equal(t, 3, *day.MoodStart)
	require.Equal(t, 4, *day.MoodEnd)
	require.Equal(t, int64(5*60*1000), day.UsageMillis)
}

func TestStart_DoesNotPreSeedDayEndMood(t *testing.T) {
	svc, _ := newSessionFixture(t, baseTime)
	svc.Start("u1", 5)

	day := svc.Calendar("u1")["2025-06-10"]
	require.Equal(t, 5, *day.MoodStart)
	require.Nil(t, day.MoodEnd, "end mood stays absent until the session ends")
}

func TestStreak_NeverEndedDayDoesNotCount(t *testing.T) {
	svc, clock := newSessionFixture(t, baseTime)

	svc.Start("u1", 3)
	clock.Advance(10 * time.Minute)
	svc.End("u1", 4)
	require.Equal(t, 1, svc.Streak("u1"))
	clock.Advance(24 * time.Hour)

	// Day two: session starts in a good mood but never ends.
	svc.Start("u1", 5)
	clock.Advance(24 * time.Hour)

	svc.Start("u1", 3)
	clock.Advance(10 * time.Minute)
	svc.End("u1", 4)
	require.Equal(t, 1, svc.Streak("u1"), "a day without a session end is not a good day")
}

func TestStreak_AcrossDays(t *testing.T) {
	svc, clock := newSessionFixture(t, baseTime)

	endDay := func(mood int) {
		svc.Start("u1", 3)
		clock.Advance(10 * time.Minute)
		svc.End("u1", mood)
		clock.Advance(24 * time.Hour)
	}

	endDay(4)
	require.Equal(t, 1, svc.Streak("u1"))
	endDay(2)
	require.Equal(t, 0, svc.Streak("u1"))
	endDay(5)
	require.Equal(t, 1, svc.Streak("u1"))
	endDay(4)
	require.Equal(t, 2, svc.Streak("u1"))
}

func TestDayRollover_PreservesLongLivedFields(t *testing.T) {
	svc, clock := newSessionFixture(t, baseTime)
	svc.Start("u1", 2)
	svc.Hide("u1", "laugh_01")
	clock.Advance(10 * time.Minute)
	svc.End("u1", 5)

	clock.Advance(24 * time.Hour)

	// Any operation applies the rollover first.
	ls := svc.LimitStatus("u1")
	require.Zero(t, ls.UsedMillisToday)
	require.Nil(t, svc.NextCheck("u1"))
	require.Nil(t, svc.CurrentMood("u1"))

	require.True(t, svc.HiddenIDs("u1")["laugh_01"])
	require.Contains(t, svc.Calendar("u1"), "2025-06-10")
	require.Equal(t, 1, svc.Streak("u1"))
}

func TestHide_RecordsInteraction(t *testing.T) {
	svc, clock := newSessionFixture(t, baseTime)
	svc.Start("u1", 3)

	clock.Advance(time.Minute)
	svc.Hide("u1", "mot_01")

	require.Equal(t, int64(60_000), svc.LimitStatus("u1").UsedMillisToday)
	require.True(t, svc.HiddenIDs("u1")["mot_01"])
}
