package entity

import (
	"time"
)

// Advertisement status values.
const (
	AdvertisementStatusActive   = "active"
	AdvertisementStatusInactive = "inactive"
)

// Advertisement represents a video asset that campaigns can schedule for display.
type Advertisement struct {
	ID              string    `json:"advertisement_id"` // Unique advertisement identifier.
	Name            string    `json:"name"`             // Display name shown in the admin panel.
	VideoFilename   string    `json:"video_filename"`   // Filename the device plays.
	FilePath        string    `json:"file_path"`        // On-disk path of the video asset.
	FileSize        int64     `json:"file_size"`        // Asset size in bytes.
	DurationSeconds *int      `json:"duration_seconds,omitempty"`
	AdType          string    `json:"ad_type"` // Free-form category (normal, urgent, emergency, ...).
	Status          string    `json:"status"`  // Lifecycle status (active/inactive).
	TriggerLon      *float64  `json:"trigger_longitude,omitempty"` // Optional fixed trigger point.
	TriggerLat      *float64  `json:"trigger_latitude,omitempty"`
	TriggerRadiusM  *float64  `json:"trigger_radius_m,omitempty"` // Radius in meters around the trigger point.
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// IsActive reports whether the advertisement is eligible for playback.
func (a *Advertisement) IsActive() bool {
	return a.Status == AdvertisementStatusActive
}

// HasTriggerPoint reports whether the advertisement carries a fixed trigger
// location from which a campaign geofence can be derived.
func (a *Advertisement) HasTriggerPoint() bool {
	return a.TriggerLon != nil && a.TriggerLat != nil && a.TriggerRadiusM != nil
}
