// Package performance provides lightweight operation timing for MoodRise
// request handling.
package performance

import "time"

// Marker represents a single performance measurement for an operation
type Marker struct {
	Operation string         `json:"operation"` // e.g., "session:start", "content:curated"
	UserID    string         `json:"userId"`    // User the operation acted on, if any
	StartTime time.Time      `json:"startTime"` // When the operation started
	EndTime   time.Time      `json:"endTime"`   // When the operation completed
	Duration  time.Duration  `json:"duration"`  // Total operation duration
	Success   bool           `json:"success"`   // Whether the operation completed successfully
	Metadata  map[string]any `json:"metadata,omitempty"`
	Completed bool           `json:"completed"` // Whether Complete() has been called
}

// Complete marks the operation as finished and calculates final metrics
func (m *Marker) Complete() {
	if m.Completed {
		return // Prevent double completion
	}
	m.EndTime = time.Now()
	m.Duration = m.EndTime.Sub(m.StartTime)
	m.Completed = true
}

// SetSuccess marks the operation as successful or failed
func (m *Marker) SetSuccess(success bool) {
	m.Success = success
}

// AddMetadata adds key-value metadata to the marker
func (m *Marker) AddMetadata(key string, value any) {
	if m.Metadata == nil {
		m.Metadata = make(map[string]any)
	}
	m.Metadata[key] = value
}
