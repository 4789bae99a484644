// Package service defines interfaces for infrastructure collaborators used by
// the usecase layer.
package service

import (
	"time"
)

// DeviceSession is the ephemeral binding of one live connection to one device.
type DeviceSession struct {
	DeviceID       string    `json:"device_id"`
	ConnID         string    `json:"conn_id"` // Server-assigned connection identifier.
	ConnectedAt    time.Time `json:"connected_at"`
	LastActivityAt time.Time `json:"last_activity_at"`
}

// SessionRegistry is the single source of truth for which devices are
// currently reachable. At most one live session exists per device id; a new
// registration for an already-bound device evicts the prior binding from the
// dispatch tables without closing its socket.
//
// Device existence is validated by the caller (the realtime register handler)
// before Register is invoked.
type SessionRegistry interface {
	// Register binds the connection to the device, evicting any prior binding
	// for the same device id.
	Register(connID, deviceID string)

	// Unregister removes the connection's binding if present and returns the
	// freed device id. Idempotent.
	Unregister(connID string) (deviceID string, ok bool)

	// Resolve returns the live connection id for a device, if any.
	Resolve(deviceID string) (connID string, ok bool)

	// Touch updates the connection's last-activity timestamp.
	Touch(connID string)

	// Snapshot returns all live bindings for monitoring.
	Snapshot() []*DeviceSession

	// ActiveDevices returns the number of currently bound devices.
	ActiveDevices() int
}
