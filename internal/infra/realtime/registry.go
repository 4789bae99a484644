// Package realtime holds the in-memory state behind the live device channel:
// the session registry, the playback tracker, and the connection counters.
// Everything here is rebuilt empty on restart.
package realtime

import (
	"sync"
	"time"

	"taxiads/internal/domain/service"
)

// Registry implements service.SessionRegistry with two mutex-guarded maps so
// both directions (connection to device, device to connection) resolve in O(1).
type Registry struct {
	mu           sync.RWMutex
	byConn       map[string]*service.DeviceSession
	connByDevice map[string]string
	now          func() time.Time
}

// NewRegistry creates an empty session registry.
func NewRegistry() *Registry {
	return &Registry{
		byConn:       make(map[string]*service.DeviceSession),
		connByDevice: make(map[string]string),
		now:          time.Now,
	}
}

// Register binds the connection to the device. A re-registration for an
// already-bound device evicts the prior binding from the dispatch tables; the
// stale socket is left to die on its own.
func (r *Registry) Register(connID, deviceID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prevConn, ok := r.connByDevice[deviceID]; ok && prevConn != connID {
		delete(r.byConn, prevConn)
	}

	now := r.now()
	r.byConn[connID] = &service.DeviceSession{
		DeviceID:       deviceID,
		ConnID:         connID,
		ConnectedAt:    now,
		LastActivityAt: now,
	}
	r.connByDevice[deviceID] = connID
}

// Unregister removes the connection's binding if present. Idempotent: a
// connection evicted by a re-registration no longer owns its device entry, so
// its disconnect must not free the newer binding.
func (r *Registry) Unregister(connID string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.byConn[connID]
	if !ok {
		return "", false
	}

	delete(r.byConn, connID)
	if r.connByDevice[session.DeviceID] == connID {
		delete(r.connByDevice, session.DeviceID)
	}

	return session.DeviceID, true
}

// Resolve returns the live connection id for a device, if any.
func (r *Registry) Resolve(deviceID string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	connID, ok := r.connByDevice[deviceID]

	return connID, ok
}

// Touch updates the connection's last-activity timestamp.
func (r *Registry) Touch(connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if session, ok := r.byConn[connID]; ok {
		session.LastActivityAt = r.now()
	}
}

// Snapshot returns a copy of all live bindings for monitoring.
func (r *Registry) Snapshot() []*service.DeviceSession {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sessions := make([]*service.DeviceSession, 0, len(r.byConn))
	for _, session := range r.byConn {
		cloned := *session
		sessions = append(sessions, &cloned)
	}

	return sessions
}

// ActiveDevices returns the number of currently bound devices.
func (r *Registry) ActiveDevices() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.connByDevice)
}
