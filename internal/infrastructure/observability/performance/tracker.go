package performance

import (
	"fmt"
	"sync"
	"time"
)

// Tracker collects performance markers and aggregates simple statistics.
type Tracker struct {
	markers    map[string]*Marker
	maxMarkers int
	mu         sync.RWMutex
	started    time.Time
}

// NewTracker creates a performance tracker.
func NewTracker() *Tracker {
	return &Tracker{
		markers:    make(map[string]*Marker),
		maxMarkers: 10000,
		started:    time.Now(),
	}
}

// StartOperation creates and tracks a new performance marker for an operation
func (t *Tracker) StartOperation(operation, userID string) *Marker {
	marker := &Marker{
		Operation: operation,
		UserID:    userID,
		StartTime: time.Now(),
		Success:   true, // Assume success until proven otherwise
	}

	markerID := fmt.Sprintf("%s_%s_%d", userID, operation, time.Now().UnixNano())

	t.mu.Lock()
	if len(t.markers) >= t.maxMarkers {
		t.evictCompletedLocked()
	}
	t.markers[markerID] = marker
	t.mu.Unlock()

	return marker
}

// evictCompletedLocked drops roughly the oldest fifth of completed markers.
// Caller must hold t.mu.
func (t *Tracker) evictCompletedLocked() {
	target := t.maxMarkers / 5
	for id, m := range t.markers {
		if target <= 0 {
			return
		}
		if m.Completed {
			delete(t.markers, id)
			target--
		}
	}
}

// GetRecentMetrics returns completed markers that finished within the window.
func (t *Tracker) GetRecentMetrics(within time.Duration) []Marker {
	t.mu.RLock()
	defer t.mu.RUnlock()

	cutoff := time.Now().Add(-within)
	var out []Marker
	for _, m := range t.markers {
		if m.Completed && m.EndTime.After(cutoff) {
			out = append(out, *m)
		}
	}
	return out
}

// GetOverallStats summarizes tracker activity for health reporting.
func (t *Tracker) GetOverallStats() map[string]any {
	t.mu.RLock()
	defer t.mu.RUnlock()

	completed := 0
	failed := 0
	var totalDuration time.Duration
	for _, m := range t.markers {
		if !m.Completed {
			continue
		}
		completed++
		totalDuration += m.Duration
		if !m.Success {
			failed++
		}
	}

	stats := map[string]any{
		"uptime":              time.Since(t.started).String(),
		"trackedOperations":   len(t.markers),
		"completedOperations": completed,
		"failedOperations":    failed,
	}
	if completed > 0 {
		stats["avgDuration"] = (totalDuration / time.Duration(completed)).String()
	}
	return stats
}
