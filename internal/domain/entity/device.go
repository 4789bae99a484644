// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// Device status values.
const (
	DeviceStatusActive   = "active"
	DeviceStatusInactive = "inactive"
)

// Device represents a display device in the fleet, either taxi-mounted or fixed.
type Device struct {
	ID            string    `json:"device_id"`      // Unique device identifier, e.g. "taxi-AAB-1234-rooftop".
	DeviceType    string    `json:"device_type"`    // Device category (rooftop, fixed-outdoor, ...).
	Description   string    `json:"description"`    // Human-readable description for the admin panel.
	Groups        []string  `json:"groups"`         // Targeting group memberships.
	LastLongitude float64   `json:"last_longitude"` // Longitude of the last reported position.
	LastLatitude  float64   `json:"last_latitude"`  // Latitude of the last reported position.
	Status        string    `json:"status"`         // Lifecycle status (active/inactive).
	CreatedAt     time.Time `json:"created_at"`     // Timestamp of device registration.
	UpdatedAt     time.Time `json:"updated_at"`     // Timestamp of the last modification.
}

// InGroup reports whether the device belongs to any of the given target groups.
func (d *Device) InGroup(targetGroups []string) bool {
	for _, group := range d.Groups {
		for _, target := range targetGroups {
			if group == target {
				return true
			}
		}
	}

	return false
}
