package repository

import (
	"context"

	"taxiads/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for campaign persistence.
var (
	// ErrCampaignNotFound is returned when a campaign is not found.
	ErrCampaignNotFound = errors.New("campaign not found")
	// ErrDuplicateCampaign is returned when the campaign id is already taken.
	ErrDuplicateCampaign = errors.New("campaign already exists")
)

// CampaignFilter narrows campaign listings.
type CampaignFilter struct {
	Status string // Empty matches all statuses.
}

// CampaignRepository defines the interface for campaign-related database
// operations, including the geofence intersection query that drives the ad
// decision engine.
type CampaignRepository interface {
	// CreateCampaign persists a new campaign.
	CreateCampaign(ctx context.Context, campaign *entity.Campaign) error

	// FindCampaignByID retrieves a campaign by id.
	FindCampaignByID(ctx context.Context, id string) (*entity.Campaign, error)

	// ListCampaigns retrieves all campaigns matching the filter.
	ListCampaigns(ctx context.Context, filter CampaignFilter) ([]*entity.Campaign, error)

	// FindCampaignsIntersecting retrieves all campaigns whose geofence contains
	// the given position. When onlyActive is set, inactive campaigns are
	// excluded.
	FindCampaignsIntersecting(ctx context.Context, longitude, latitude float64, onlyActive bool) ([]*entity.Campaign, error)

	// FindCampaignsByAdvertisement retrieves all campaigns referencing the given
	// advertisement, used for deletion cascades.
	FindCampaignsByAdvertisement(ctx context.Context, advertisementID string) ([]*entity.Campaign, error)

	// UpdateCampaign persists changes to an existing campaign.
	UpdateCampaign(ctx context.Context, campaign *entity.Campaign) error

	// SetRotationIndex persists the campaign's rotation cursor. Concurrent
	// advancement for the same campaign is tolerated; last write wins.
	SetRotationIndex(ctx context.Context, id string, index int) error

	// DeleteCampaign removes a campaign by id.
	DeleteCampaign(ctx context.Context, id string) error
}
