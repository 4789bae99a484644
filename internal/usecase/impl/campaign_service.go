package impl

import (
	"context"
	"log/slog"
	"time"

	"taxiads/config"
	"taxiads/internal/domain/entity"
	domainerrors "taxiads/internal/domain/errors"
	"taxiads/internal/domain/repository"
	"taxiads/internal/domain/service"
	"taxiads/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

type campaignService struct {
	campaignRepo repository.CampaignRepository
	adRepo       repository.AdvertisementRepository
	playback     service.PlaybackTracker
	registry     service.SessionRegistry
	sender       service.PushSender
	cfg          *config.Config
	logger       *slog.Logger
}

// NewCampaignService creates the campaign management service.
func NewCampaignService(
	campaignRepo repository.CampaignRepository,
	adRepo repository.AdvertisementRepository,
	playback service.PlaybackTracker,
	registry service.SessionRegistry,
	sender service.PushSender,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.CampaignUsecase {
	return &campaignService{
		campaignRepo: campaignRepo,
		adRepo:       adRepo,
		playback:     playback,
		registry:     registry,
		sender:       sender,
		cfg:          cfg,
		logger:       logger,
	}
}

// CreateCampaign creates a geofenced campaign.
func (s *campaignService) CreateCampaign(ctx context.Context, input *usecase.CreateCampaignInput) (*entity.Campaign, error) {
	for _, adID := range input.AdvertisementIDs {
		if _, err := s.adRepo.FindAdvertisementByID(ctx, adID, false); err != nil {
			return nil, err
		}
	}

	geoFence, err := s.buildGeofence(input.GeoFence, input.CenterLon, input.CenterLat, input.RadiusMeters)
	if err != nil {
		return nil, err
	}

	id := input.ID
	if id == "" {
		id = "camp-" + uuid.NewString()[:8]
	}
	playMode := input.PlayMode
	if playMode == "" {
		playMode = entity.PlayModeRotation
	}

	campaign := &entity.Campaign{
		ID:               id,
		Name:             input.Name,
		AdvertisementIDs: input.AdvertisementIDs,
		Priority:         input.Priority,
		TargetGroups:     input.TargetGroups,
		GeoFence:         geoFence,
		CenterLon:        input.CenterLon,
		CenterLat:        input.CenterLat,
		RadiusMeters:     input.RadiusMeters,
		PlayMode:         playMode,
		Status:           entity.CampaignStatusActive,
	}
	if err := s.campaignRepo.CreateCampaign(ctx, campaign); err != nil {
		return nil, err
	}

	return campaign, nil
}

// GetCampaign retrieves a campaign by id.
func (s *campaignService) GetCampaign(ctx context.Context, id string) (*entity.Campaign, error) {
	return s.campaignRepo.FindCampaignByID(ctx, id)
}

// ListCampaigns retrieves all campaigns matching the filter.
func (s *campaignService) ListCampaigns(ctx context.Context, filter repository.CampaignFilter) ([]*entity.Campaign, error) {
	return s.campaignRepo.ListCampaigns(ctx, filter)
}

// UpdateCampaign partially updates a campaign.
func (s *campaignService) UpdateCampaign(ctx context.Context, id string, input *usecase.UpdateCampaignInput) (*entity.Campaign, error) {
	campaign, err := s.campaignRepo.FindCampaignByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		campaign.Name = *input.Name
	}
	if input.AdvertisementIDs != nil {
		for _, adID := range *input.AdvertisementIDs {
			if _, err := s.adRepo.FindAdvertisementByID(ctx, adID, false); err != nil {
				return nil, err
			}
		}
		campaign.AdvertisementIDs = *input.AdvertisementIDs
		campaign.AdvertisementID = ""
		if campaign.CurrentAdIndex >= len(campaign.AdvertisementIDs) {
			campaign.CurrentAdIndex = 0
		}
	}
	if input.Priority != nil {
		campaign.Priority = *input.Priority
	}
	if input.TargetGroups != nil {
		campaign.TargetGroups = *input.TargetGroups
	}
	if input.GeoFence != nil || input.CenterLon != nil || input.CenterLat != nil || input.RadiusMeters != nil {
		if input.CenterLon != nil {
			campaign.CenterLon = input.CenterLon
		}
		if input.CenterLat != nil {
			campaign.CenterLat = input.CenterLat
		}
		if input.RadiusMeters != nil {
			campaign.RadiusMeters = input.RadiusMeters
		}

		var ring [][2]float64
		if input.GeoFence != nil {
			ring = *input.GeoFence
			campaign.CenterLon = nil
			campaign.CenterLat = nil
			campaign.RadiusMeters = nil
		}
		geoFence, err := s.buildGeofence(ring, campaign.CenterLon, campaign.CenterLat, campaign.RadiusMeters)
		if err != nil {
			return nil, err
		}
		campaign.GeoFence = geoFence
	}
	if input.PlayMode != nil {
		campaign.PlayMode = *input.PlayMode
	}
	if input.Status != nil {
		campaign.Status = *input.Status
	}

	if err := s.campaignRepo.UpdateCampaign(ctx, campaign); err != nil {
		return nil, err
	}

	return campaign, nil
}

// DeleteCampaign removes the campaign and tells the devices locked onto it,
// and only those, to revert to their local playlist.
func (s *campaignService) DeleteCampaign(ctx context.Context, id string) (*usecase.DeleteCampaignResult, error) {
	if _, err := s.campaignRepo.FindCampaignByID(ctx, id); err != nil {
		return nil, err
	}

	lockedDevices := s.playback.DevicesLockedTo(id)

	if err := s.campaignRepo.DeleteCampaign(ctx, id); err != nil {
		return nil, err
	}

	result := &usecase.DeleteCampaignResult{
		CampaignID:      id,
		RevertedDevices: []string{},
		OfflineDevices:  []string{},
	}

	payload := &usecase.RevertCommand{
		CampaignID:   id,
		DefaultVideo: s.cfg.AdDispatch.DefaultVideo,
		Reason:       "campaign_deleted",
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	}
	for _, deviceID := range lockedDevices {
		s.playback.Clear(deviceID)

		connID, ok := s.registry.Resolve(deviceID)
		if !ok {
			result.OfflineDevices = append(result.OfflineDevices, deviceID)

			continue
		}
		if err := s.sender.Send(connID, usecase.EventRevertToLocalPlaylist, payload); err != nil {
			s.logger.Warn("failed to deliver revert notification",
				slog.String("device_id", deviceID),
				slog.String("campaign_id", id),
				slog.String("error", err.Error()),
			)
			result.OfflineDevices = append(result.OfflineDevices, deviceID)

			continue
		}
		result.RevertedDevices = append(result.RevertedDevices, deviceID)
	}

	return result, nil
}

// buildGeofence constructs the polygon from an explicit ring or a circle,
// requiring exactly one of the two forms.
func (s *campaignService) buildGeofence(ring [][2]float64, centerLon, centerLat, radiusMeters *float64) (orb.Polygon, error) {
	hasRing := len(ring) > 0
	hasCircle := centerLon != nil && centerLat != nil && radiusMeters != nil

	switch {
	case hasRing && hasCircle:
		return nil, domainerrors.ErrValidationFailed.WrapMessage("provide either a polygon or a circle, not both")
	case hasRing:
		if len(ring) < 3 {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("geofence polygon needs at least 3 points")
		}
		for _, point := range ring {
			if point[0] < -180 || point[0] > 180 || point[1] < -90 || point[1] > 90 {
				return nil, domainerrors.ErrInvalidCoordinates
			}
		}

		orbRing := make(orb.Ring, 0, len(ring)+1)
		for _, point := range ring {
			orbRing = append(orbRing, orb.Point{point[0], point[1]})
		}
		if orbRing[0] != orbRing[len(orbRing)-1] {
			orbRing = append(orbRing, orbRing[0])
		}

		return orb.Polygon{orbRing}, nil
	case hasCircle:
		if *centerLon < -180 || *centerLon > 180 || *centerLat < -90 || *centerLat > 90 {
			return nil, domainerrors.ErrInvalidCoordinates
		}
		if *radiusMeters <= 0 {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("radius must be positive")
		}

		return entity.CircleGeofence(*centerLon, *centerLat, *radiusMeters, s.cfg.AdDispatch.GeofenceSegments), nil
	default:
		return nil, domainerrors.ErrValidationFailed.WrapMessage("a geofence polygon or a circle is required")
	}
}
