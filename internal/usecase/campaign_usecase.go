package usecase

import (
	"context"

	"taxiads/internal/domain/entity"
	"taxiads/internal/domain/repository"
)

// CreateCampaignInput creates a geofenced campaign. Exactly one of GeoFence
// (explicit polygon, lon/lat pairs) or CenterLon/CenterLat/RadiusMeters
// (circle approximated as an N-gon) must be provided.
type CreateCampaignInput struct {
	ID               string       `json:"campaign_id,omitempty"` // Server-generated when empty.
	Name             string       `json:"name" validate:"required"`
	AdvertisementIDs []string     `json:"advertisement_ids" validate:"required,min=1"`
	Priority         int          `json:"priority"`
	TargetGroups     []string     `json:"target_groups,omitempty"`
	GeoFence         [][2]float64 `json:"geo_fence,omitempty"` // Outer ring, lon/lat order.
	CenterLon        *float64     `json:"center_longitude,omitempty"`
	CenterLat        *float64     `json:"center_latitude,omitempty"`
	RadiusMeters     *float64     `json:"radius_meters,omitempty"`
	PlayMode         string       `json:"play_mode,omitempty"` // Defaults to rotation.
}

// UpdateCampaignInput partially updates a campaign. Nil fields are left
// untouched.
type UpdateCampaignInput struct {
	Name             *string       `json:"name,omitempty"`
	AdvertisementIDs *[]string     `json:"advertisement_ids,omitempty"`
	Priority         *int          `json:"priority,omitempty"`
	TargetGroups     *[]string     `json:"target_groups,omitempty"`
	GeoFence         *[][2]float64 `json:"geo_fence,omitempty"`
	CenterLon        *float64      `json:"center_longitude,omitempty"`
	CenterLat        *float64      `json:"center_latitude,omitempty"`
	RadiusMeters     *float64      `json:"radius_meters,omitempty"`
	PlayMode         *string       `json:"play_mode,omitempty"`
	Status           *string       `json:"status,omitempty"`
}

// DeleteCampaignResult reports which locked devices were told to revert to
// their local playlist.
type DeleteCampaignResult struct {
	CampaignID      string   `json:"campaign_id"`
	RevertedDevices []string `json:"reverted_devices"`
	OfflineDevices  []string `json:"offline_devices"`
}

// CampaignUsecase manages geofenced campaigns.
type CampaignUsecase interface {
	CreateCampaign(ctx context.Context, input *CreateCampaignInput) (*entity.Campaign, error)
	GetCampaign(ctx context.Context, id string) (*entity.Campaign, error)
	ListCampaigns(ctx context.Context, filter repository.CampaignFilter) ([]*entity.Campaign, error)
	UpdateCampaign(ctx context.Context, id string, input *UpdateCampaignInput) (*entity.Campaign, error)

	// DeleteCampaign removes the campaign and pushes revert_to_local_playlist
	// to the devices currently locked onto it, and only those.
	DeleteCampaign(ctx context.Context, id string) (*DeleteCampaignResult, error)
}
