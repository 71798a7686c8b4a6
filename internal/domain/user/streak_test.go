package user

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const goodThreshold = 4

func endDay(st *State, date string, moodEnd int) {
	st.Calendar[date] = &DaySummary{MoodEnd: intPtr(moodEnd)}
	UpdateStreak(st, date, goodThreshold)
}

func TestUpdateStreak_Scenario(t *testing.T) {
	st := NewState("u1", "2025-06-01")

	endDay(st, "2025-06-01", 4)
	require.Equal(t, 1, st.GoodMoodStreakDays, "first good day starts the streak")

	endDay(st, "2025-06-02", 2)
	require.Equal(t, 0, st.GoodMoodStreakDays, "bad day resets")

	endDay(st, "2025-06-03", 5)
	require.Equal(t, 1, st.GoodMoodStreakDays, "good day after a bad one restarts at 1")

	endDay(st, "2025-06-04", 4)
	require.Equal(t, 2, st.GoodMoodStreakDays, "consecutive good days extend the streak")
}

func TestUpdateStreak_GoodTodayKeepsExistingStreak(t *testing.T) {
	// Yesterday missing from the calendar but a previous streak exists:
	// max(1, previous) keeps it.
	st := NewState("u1", "2025-06-10")
	st.GoodMoodStreakDays = 3

	endDay(st, "2025-06-10", 5)
	require.Equal(t, 3, st.GoodMoodStreakDays)
}

func TestUpdateStreak_NoEntryForToday(t *testing.T) {
	st := NewState("u1", "2025-06-10")
	st.GoodMoodStreakDays = 2

	UpdateStreak(st, "2025-06-10", goodThreshold)
	require.Equal(t, 0, st.GoodMoodStreakDays)
}

func TestUpdateStreak_ThresholdBoundary(t *testing.T) {
	st := NewState("u1", "2025-06-01")

	endDay(st, "2025-06-01", 3)
	require.Equal(t, 0, st.GoodMoodStreakDays)

	endDay(st, "2025-06-02", 4)
	require.Equal(t, 1, st.GoodMoodStreakDays)
}
