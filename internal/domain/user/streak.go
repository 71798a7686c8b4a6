package user

import "time"

// goodDay reports whether a calendar entry counts toward the streak.
func goodDay(ds *DaySummary, threshold int) bool {
	return ds != nil && ds.MoodEnd != nil && *ds.MoodEnd >= threshold
}

// UpdateStreak recomputes the consecutive-good-day count after a session
// ends on `today`. A good day extends yesterday's run; a good day with no
// good yesterday starts (or keeps) a run of at least one; a bad day resets
// the run to zero.
func UpdateStreak(s *State, today string, threshold int) {
	todayEntry := s.Calendar[today]
	if !goodDay(todayEntry, threshold) {
		s.GoodMoodStreakDays = 0
		return
	}

	if goodDay(s.Calendar[previousDay(today)], threshold) {
		s.GoodMoodStreakDays++
		return
	}
	if s.GoodMoodStreakDays < 1 {
		s.GoodMoodStreakDays = 1
	}
}

func previousDay(date string) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, -1).Format(DateLayout)
}
