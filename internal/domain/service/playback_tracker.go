package service

import (
	"time"
)

// PlaybackState records which campaign/advertisement a device last locked onto.
type PlaybackState struct {
	DeviceID        string    `json:"device_id"`
	CampaignID      string    `json:"campaign_id"`
	AdvertisementID string    `json:"advertisement_id"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// PlaybackTracker is a best-effort, in-memory side table of current playback
// per device. It is derived observability state, rebuilt empty on restart —
// never a source of truth. Campaign deletion uses it to find devices that must
// revert to their local playlist.
type PlaybackTracker interface {
	// Record notes that the device is now playing the given campaign/ad.
	Record(deviceID, campaignID, advertisementID string)

	// DevicesLockedTo returns the devices currently locked onto the campaign.
	DevicesLockedTo(campaignID string) []string

	// Clear drops the device's playback state (device deleted or disconnected).
	Clear(deviceID string)

	// Snapshot returns all current playback states for monitoring.
	Snapshot() []*PlaybackState
}
