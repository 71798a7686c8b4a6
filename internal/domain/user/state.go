// Package user defines per-user session state, the daily calendar, and the
// pure transformations over them (day rollover, streak accounting).
// Persistence is deliberately absent: state lives in the in-memory store
// for the process lifetime.
package user

import "time"

// DateLayout is the calendar key format used throughout the service.
const DateLayout = "2006-01-02"

// DateOf formats an instant as a calendar date key.
func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}

// Phase is the explicit session state tag. A user cycles Idle and Active
// indefinitely across days; there is no terminal phase.
type Phase string

const (
	PhaseIdle   Phase = "idle"
	PhaseActive Phase = "active"
)

// DaySummary captures one user's calendar entry for a single date.
type DaySummary struct {
	MoodStart   *int  `json:"moodStart,omitempty"`
	MoodEnd     *int  `json:"moodEnd,omitempty"`
	UsageMillis int64 `json:"usageMillis"`
}

// State is the complete per-user record. All mutation happens inside the
// state store's per-user critical section.
type State struct {
	UserID string `json:"userId"`

	CurrentDay        string     `json:"currentDay"`
	Phase             Phase      `json:"phase"`
	MoodStart         *int       `json:"moodStart,omitempty"`
	MoodCurrent       *int       `json:"moodCurrent,omitempty"`
	SessionStartTs    *time.Time `json:"sessionStartTs,omitempty"`
	LastInteractionTs *time.Time `json:"lastInteractionTs,omitempty"`
	NextCheckTs       *time.Time `json:"nextCheckTs,omitempty"`
	UsageTodayMillis  int64      `json:"usageTodayMillis"`

	HiddenItemIDs      map[string]bool        `json:"hiddenItemIds"`
	Calendar           map[string]*DaySummary `json:"calendar"`
	GoodMoodStreakDays int                    `json:"goodMoodStreakDays"`
}

// NewState creates a fresh Idle record for the given user and day.
func NewState(userID, today string) *State {
	return &State{
		UserID:        userID,
		CurrentDay:    today,
		Phase:         PhaseIdle,
		HiddenItemIDs: make(map[string]bool),
		Calendar:      make(map[string]*DaySummary),
	}
}

// RolloverIfNeeded resets the daily-scoped fields when the stored day no
// longer matches today. Calendar, hidden items, and the streak survive.
// Idempotent: calling it twice for the same day is a no-op the second time.
// Reports whether a rollover happened.
func RolloverIfNeeded(s *State, today string) bool {
	if s.CurrentDay == today {
		return false
	}
	s.CurrentDay = today
	s.Phase = PhaseIdle
	s.UsageTodayMillis = 0
	s.MoodStart = nil
	s.MoodCurrent = nil
	s.SessionStartTs = nil
	s.LastInteractionTs = nil
	s.NextCheckTs = nil
	return true
}

// BeginDay records the session-start mood on today's calendar entry,
// creating the entry when absent. The session-ending mood stays unset
// until the session actually ends.
func (s *State) BeginDay(today string, moodStart int) {
	ds, ok := s.Calendar[today]
	if !ok {
		ds = &DaySummary{}
		s.Calendar[today] = ds
	}
	if ds.MoodStart == nil {
		v := moodStart
		ds.MoodStart = &v
	}
}

// EnsureDay returns today's calendar entry, creating it with the user's
// current moods when absent.
func (s *State) EnsureDay(today string) *DaySummary {
	if ds, ok := s.Calendar[today]; ok {
		return ds
	}
	ds := &DaySummary{MoodStart: copyInt(s.MoodStart), MoodEnd: copyInt(s.MoodCurrent)}
	s.Calendar[today] = ds
	return ds
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	n := *v
	return &n
}
