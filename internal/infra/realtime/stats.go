package realtime

import (
	"sync/atomic"
	"time"
)

// Stats tracks monotonically increasing connection counters since process
// start. Counters only go up; active-device counts come from the registry.
type Stats struct {
	startedAt        time.Time
	totalConnections atomic.Int64
	messagesSent     atomic.Int64
	locationUpdates  atomic.Int64
}

// NewStats creates a zeroed counter set stamped with the current time.
func NewStats() *Stats {
	return &Stats{startedAt: time.Now()}
}

// ConnectionOpened increments the lifetime connection counter.
func (s *Stats) ConnectionOpened() {
	s.totalConnections.Add(1)
}

// MessageSent increments the outbound message counter.
func (s *Stats) MessageSent() {
	s.messagesSent.Add(1)
}

// LocationUpdate increments the location report counter.
func (s *Stats) LocationUpdate() {
	s.locationUpdates.Add(1)
}

// TotalConnections returns the number of connections opened since start.
func (s *Stats) TotalConnections() int64 {
	return s.totalConnections.Load()
}

// MessagesSent returns the number of messages pushed since start.
func (s *Stats) MessagesSent() int64 {
	return s.messagesSent.Load()
}

// LocationUpdates returns the number of location reports since start.
func (s *Stats) LocationUpdates() int64 {
	return s.locationUpdates.Load()
}

// Uptime returns the elapsed time since the counters were created.
func (s *Stats) Uptime() time.Duration {
	return time.Since(s.startedAt)
}
