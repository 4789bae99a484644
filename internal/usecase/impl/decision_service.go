// Package impl contains the concrete implementations of the usecase interfaces.
package impl

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"taxiads/internal/domain/entity"
	domainerrors "taxiads/internal/domain/errors"
	"taxiads/internal/domain/repository"
	"taxiads/internal/domain/service"
	"taxiads/internal/usecase"
)

type decisionService struct {
	deviceRepo   repository.DeviceRepository
	campaignRepo repository.CampaignRepository
	adRepo       repository.AdvertisementRepository
	playback     service.PlaybackTracker
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// NewDecisionService creates the ad decision engine.
func NewDecisionService(
	deviceRepo repository.DeviceRepository,
	campaignRepo repository.CampaignRepository,
	adRepo repository.AdvertisementRepository,
	playback service.PlaybackTracker,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.DecisionUsecase {
	return &decisionService{
		deviceRepo:   deviceRepo,
		campaignRepo: campaignRepo,
		adRepo:       adRepo,
		playback:     playback,
		publisher:    publisher,
		logger:       logger,
	}
}

// DecideForLocation runs the decision pipeline for one position report. Only
// invalid coordinates and an unknown device surface as errors; every other
// internal failure degrades to "no decision" with a warn log, because a taxi
// that misses one ad is cheaper than an error loop on a device that cannot do
// anything about it.
func (s *decisionService) DecideForLocation(ctx context.Context, report *usecase.LocationReport) (*usecase.DecisionResult, error) {
	if report.Longitude < -180 || report.Longitude > 180 || report.Latitude < -90 || report.Latitude > 90 {
		return nil, domainerrors.ErrInvalidCoordinates
	}

	device, err := s.deviceRepo.FindDeviceByID(ctx, report.DeviceID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, err
		}

		s.logger.Warn("device lookup failed, returning no decision",
			slog.String("device_id", report.DeviceID),
			slog.String("error", err.Error()),
		)

		return nil, nil
	}

	// Position persist is best-effort. The decision must not die on a
	// bookkeeping write.
	if err := s.deviceRepo.UpdateDeviceLocation(ctx, device.ID, report.Longitude, report.Latitude); err != nil {
		s.logger.Warn("failed to persist device location",
			slog.String("device_id", device.ID),
			slog.String("error", err.Error()),
		)
	}

	campaigns, err := s.campaignRepo.FindCampaignsIntersecting(ctx, report.Longitude, report.Latitude, true)
	if err != nil {
		s.logger.Warn("campaign intersection query failed, returning no decision",
			slog.String("device_id", device.ID),
			slog.String("error", err.Error()),
		)

		return nil, nil
	}

	winner := pickWinner(campaigns, device)
	if winner == nil {
		return nil, nil
	}

	ad, selectedPos := s.selectAd(ctx, winner)
	if ad == nil {
		s.logger.Warn("campaign matched but no playable advertisement",
			slog.String("device_id", device.ID),
			slog.String("campaign_id", winner.ID),
		)

		return nil, nil
	}

	adList := winner.AdList()
	if winner.PlayMode == entity.PlayModeRotation && len(adList) > 1 {
		next := (selectedPos + 1) % len(adList)
		// Concurrent reports racing on the same campaign may interleave
		// here; last write wins and the rotation stays within bounds.
		if err := s.campaignRepo.SetRotationIndex(ctx, winner.ID, next); err != nil {
			s.logger.Warn("failed to persist rotation index",
				slog.String("campaign_id", winner.ID),
				slog.String("error", err.Error()),
			)
		}
	}

	s.playback.Record(device.ID, winner.ID, ad.ID)

	event := &service.PlaybackEvent{
		RequestID:       report.RequestID,
		DeviceID:        device.ID,
		CampaignID:      winner.ID,
		AdvertisementID: ad.ID,
		VideoFilename:   ad.VideoFilename,
		Longitude:       report.Longitude,
		Latitude:        report.Latitude,
		DecidedAt:       time.Now(),
	}
	if err := s.publisher.PublishPlaybackEvent(ctx, event); err != nil {
		s.logger.Warn("failed to publish playback event",
			slog.String("device_id", device.ID),
			slog.String("error", err.Error()),
		)
	}

	return &usecase.DecisionResult{
		CampaignID:        winner.ID,
		CampaignName:      winner.Name,
		AdvertisementID:   ad.ID,
		AdvertisementName: ad.Name,
		VideoFilename:     ad.VideoFilename,
		AdvertisementIDs:  adList,
		Priority:          winner.Priority,
	}, nil
}

// pickWinner filters the intersecting campaigns down to the ones this device
// is eligible for (active, and sharing at least one target group with the
// device) and returns the highest-priority campaign, breaking ties by
// lexicographically smallest id so the outcome is deterministic.
func pickWinner(campaigns []*entity.Campaign, device *entity.Device) *entity.Campaign {
	var winner *entity.Campaign
	for _, campaign := range campaigns {
		if !campaign.IsActive() {
			continue
		}
		if !device.InGroup(campaign.TargetGroups) {
			continue
		}

		if winner == nil ||
			campaign.Priority > winner.Priority ||
			(campaign.Priority == winner.Priority && campaign.ID < winner.ID) {
			winner = campaign
		}
	}

	return winner
}

// selectAd walks the campaign's ad list circularly from the rotation cursor,
// skipping ads that are missing or inactive, and returns the first playable
// ad with its position in the list.
func (s *decisionService) selectAd(ctx context.Context, campaign *entity.Campaign) (*entity.Advertisement, int) {
	adList := campaign.AdList()
	if len(adList) == 0 {
		return nil, 0
	}

	start := campaign.CurrentAdIndex
	if campaign.PlayMode == entity.PlayModeSingle {
		start = 0
	}
	if start < 0 || start >= len(adList) {
		start = 0
	}

	for i := 0; i < len(adList); i++ {
		pos := (start + i) % len(adList)
		ad, err := s.adRepo.FindAdvertisementByID(ctx, adList[pos], true)
		if err != nil {
			if errors.Is(err, repository.ErrAdvertisementNotFound) {
				s.logger.Debug("skipping missing or inactive advertisement",
					slog.String("campaign_id", campaign.ID),
					slog.String("advertisement_id", adList[pos]),
				)
			} else {
				s.logger.Warn("advertisement lookup failed, skipping",
					slog.String("campaign_id", campaign.ID),
					slog.String("advertisement_id", adList[pos]),
					slog.String("error", err.Error()),
				)
			}

			continue
		}

		return ad, pos
	}

	return nil, 0
}
