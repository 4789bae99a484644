// Package usecase defines the application-level interfaces and their
// input/output types.
package usecase

import (
	"context"
)

// LocationReport is one position report from a device.
type LocationReport struct {
	DeviceID  string  `json:"device_id"`
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
	RequestID string  `json:"request_id,omitempty"` // For distributed tracing
}

// DecisionResult is the outcome of one ad decision. A nil result means no
// campaign matched and the device keeps playing its local playlist.
type DecisionResult struct {
	CampaignID        string   `json:"campaign_id"`
	CampaignName      string   `json:"campaign_name"`
	AdvertisementID   string   `json:"advertisement_id"`
	AdvertisementName string   `json:"advertisement_name"`
	VideoFilename     string   `json:"video_filename"`
	AdvertisementIDs  []string `json:"advertisement_ids"` // Full rotation list, for prefetch.
	Priority          int      `json:"priority"`
}

// DecisionUsecase is the geo-targeted ad decision engine.
type DecisionUsecase interface {
	// DecideForLocation runs the full decision pipeline for one location
	// report: persist the position, find eligible campaigns, pick the winner
	// and advance its rotation. Returns (nil, nil) when no campaign matched.
	DecideForLocation(ctx context.Context, report *LocationReport) (*DecisionResult, error)
}
