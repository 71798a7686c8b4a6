package services

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/moodrise/moodrise-go/internal/infrastructure/observability/logging"
)

var genericTips = []string{
	"Mini-tip: stand up, roll your shoulders, breathe in 4-7-8.",
	"Hydration nudge: grab a glass of water.",
	"Fresh air helps: look out a window or step outside for 1 minute.",
	"Sleep reminder: aim for 7-9 hours tonight—prep a wind-down routine.",
	"Study boost: try 25 min focus + 5 min stretch.",
	"Good news: kindness spreads—send a supportive text today.",
}

var moodLowTips = []string{
	"Feeling low? Try 3 slow breaths and a 2-minute walk.",
	"Text a friend a quick hello—connection helps.",
	"Pick ‘Laugh’ for a mood lift in under a minute.",
}

var moodOkTips = []string{
	"Nice steadiness. A short stretch keeps it going.",
	"Try ‘Motivate’ for a micro boost to your focus.",
}

var moodHighTips = []string{
	"Great energy—channel it into a tiny task you’ve been delaying.",
	"Share a kind word; helping others lifts you too.",
}

// NotificationService produces the day's wellness nudges. It only selects
// canned text; delivery is the client's concern. Clock and randomness are
// injectable for deterministic tests.
type NotificationService struct {
	logger   *logging.ChanneledLogger
	clock    func() time.Time
	randIntn func(n int) int
}

// NewNotificationService creates the notification service. Pass nil for
// clock or randIntn to use wall-clock time and the shared rand source.
func NewNotificationService(logger *logging.ChanneledLogger, clock func() time.Time, randIntn func(n int) int) *NotificationService {
	if clock == nil {
		clock = time.Now
	}
	if randIntn == nil {
		randIntn = rand.Intn
	}
	return &NotificationService{logger: logger, clock: clock, randIntn: randIntn}
}

// TodayReminders returns three tips bracketed with suggested surface
// times; the first is chosen by the user's latest mood, the rest are
// generic. The client decides when to actually show them.
func (s *NotificationService) TodayReminders(latestMood *int) []string {
	now := s.clock()
	return []string{
		fmt.Sprintf("[%s] %s", now.Add(30*time.Minute).Format("15:04"), s.pickByMood(latestMood)),
		fmt.Sprintf("[%s] %s", now.Add(2*time.Hour).Format("15:04"), genericTips[s.randIntn(len(genericTips))]),
		fmt.Sprintf("[%s] %s", now.Add(4*time.Hour).Format("15:04"), genericTips[s.randIntn(len(genericTips))]),
	}
}

func (s *NotificationService) pickByMood(mood *int) string {
	switch {
	case mood == nil:
		return genericTips[s.randIntn(len(genericTips))]
	case *mood <= 2:
		return moodLowTips[s.randIntn(len(moodLowTips))]
	case *mood == 3:
		return moodOkTips[s.randIntn(len(moodOkTips))]
	default:
		return moodHighTips[s.randIntn(len(moodHighTips))]
	}
}
