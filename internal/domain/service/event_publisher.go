package service

import (
	"context"
	"time"
)

// PlaybackEvent describes one location-triggered ad decision, published for
// downstream consumers (dashboards, impression counting).
type PlaybackEvent struct {
	RequestID       string    `json:"request_id,omitempty"` // For distributed tracing
	DeviceID        string    `json:"device_id"`
	CampaignID      string    `json:"campaign_id"`
	AdvertisementID string    `json:"advertisement_id"`
	VideoFilename   string    `json:"video_filename"`
	Longitude       float64   `json:"longitude"`
	Latitude        float64   `json:"latitude"`
	DecidedAt       time.Time `json:"decided_at"`
}

// EventPublisher publishes playback events to the configured backend.
// Publishing is best-effort from the decision path's point of view: failures
// are logged, never propagated into the decision result.
type EventPublisher interface {
	PublishPlaybackEvent(ctx context.Context, event *PlaybackEvent) error
	Close() error
}
