package realtime

import (
	"sync"
	"time"

	"taxiads/internal/domain/service"
)

// Playback implements service.PlaybackTracker with a mutex-guarded map keyed
// by device id.
type Playback struct {
	mu       sync.RWMutex
	byDevice map[string]*service.PlaybackState
	now      func() time.Time
}

// NewPlayback creates an empty playback tracker.
func NewPlayback() *Playback {
	return &Playback{
		byDevice: make(map[string]*service.PlaybackState),
		now:      time.Now,
	}
}

// Record notes that the device is now playing the given campaign/ad.
func (p *Playback) Record(deviceID, campaignID, advertisementID string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.byDevice[deviceID] = &service.PlaybackState{
		DeviceID:        deviceID,
		CampaignID:      campaignID,
		AdvertisementID: advertisementID,
		UpdatedAt:       p.now(),
	}
}

// DevicesLockedTo returns the devices currently locked onto the campaign.
func (p *Playback) DevicesLockedTo(campaignID string) []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var devices []string
	for deviceID, state := range p.byDevice {
		if state.CampaignID == campaignID {
			devices = append(devices, deviceID)
		}
	}

	return devices
}

// Clear drops the device's playback state.
func (p *Playback) Clear(deviceID string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	delete(p.byDevice, deviceID)
}

// Snapshot returns a copy of all current playback states for monitoring.
func (p *Playback) Snapshot() []*service.PlaybackState {
	p.mu.RLock()
	defer p.mu.RUnlock()

	states := make([]*service.PlaybackState, 0, len(p.byDevice))
	for _, state := range p.byDevice {
		cloned := *state
		states = append(states, &cloned)
	}

	return states
}
