package impl

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"taxiads/internal/domain/entity"
	"taxiads/internal/domain/repository"
	"taxiads/internal/usecase"
)

type advertisementService struct {
	adRepo       repository.AdvertisementRepository
	campaignRepo repository.CampaignRepository
	logger       *slog.Logger
}

// NewAdvertisementService creates the advertisement management service.
func NewAdvertisementService(
	adRepo repository.AdvertisementRepository,
	campaignRepo repository.CampaignRepository,
	logger *slog.Logger,
) usecase.AdvertisementUsecase {
	return &advertisementService{
		adRepo:       adRepo,
		campaignRepo: campaignRepo,
		logger:       logger,
	}
}

// GetAdvertisement retrieves an advertisement by id.
func (s *advertisementService) GetAdvertisement(ctx context.Context, id string) (*entity.Advertisement, error) {
	return s.adRepo.FindAdvertisementByID(ctx, id, false)
}

// ListAdvertisements retrieves all advertisements matching the filter.
func (s *advertisementService) ListAdvertisements(ctx context.Context, filter repository.AdvertisementFilter) ([]*entity.Advertisement, error) {
	return s.adRepo.ListAdvertisements(ctx, filter)
}

// UpdateAdvertisement partially updates an advertisement.
func (s *advertisementService) UpdateAdvertisement(ctx context.Context, id string, input *usecase.UpdateAdvertisementInput) (*entity.Advertisement, error) {
	ad, err := s.adRepo.FindAdvertisementByID(ctx, id, false)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		ad.Name = *input.Name
	}
	if input.AdType != nil {
		ad.AdType = *input.AdType
	}
	if input.Status != nil {
		ad.Status = *input.Status
	}
	if input.DurationSeconds != nil {
		ad.DurationSeconds = input.DurationSeconds
	}
	if input.TriggerLon != nil {
		ad.TriggerLon = input.TriggerLon
	}
	if input.TriggerLat != nil {
		ad.TriggerLat = input.TriggerLat
	}
	if input.TriggerRadiusM != nil {
		ad.TriggerRadiusM = input.TriggerRadiusM
	}

	if err := s.adRepo.UpdateAdvertisement(ctx, ad); err != nil {
		return nil, err
	}

	return ad, nil
}

// DeleteAdvertisement removes the advertisement, prunes it from every
// campaign's rotation list and deletes its asset file. Campaigns left with no
// ads are deleted outright.
func (s *advertisementService) DeleteAdvertisement(ctx context.Context, id string) error {
	ad, err := s.adRepo.FindAdvertisementByID(ctx, id, false)
	if err != nil {
		return err
	}

	campaigns, err := s.campaignRepo.FindCampaignsByAdvertisement(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to find referencing campaigns: %w", err)
	}

	for _, campaign := range campaigns {
		if err := s.pruneFromCampaign(ctx, campaign, id); err != nil {
			return err
		}
	}

	if err := s.adRepo.DeleteAdvertisement(ctx, id); err != nil {
		return err
	}

	if ad.FilePath != "" {
		if err := os.Remove(ad.FilePath); err != nil && !os.IsNotExist(err) {
			s.logger.Warn("failed to remove asset file",
				slog.String("advertisement_id", id),
				slog.String("path", ad.FilePath),
				slog.String("error", err.Error()),
			)
		}
	}

	return nil
}

func (s *advertisementService) pruneFromCampaign(ctx context.Context, campaign *entity.Campaign, advertisementID string) error {
	remaining := slices.DeleteFunc(slices.Clone(campaign.AdList()), func(adID string) bool {
		return adID == advertisementID
	})

	if len(remaining) == 0 {
		if err := s.campaignRepo.DeleteCampaign(ctx, campaign.ID); err != nil {
			return fmt.Errorf("failed to delete emptied campaign %s: %w", campaign.ID, err)
		}
		s.logger.Info("deleted campaign emptied by advertisement removal",
			slog.String("campaign_id", campaign.ID),
			slog.String("advertisement_id", advertisementID),
		)

		return nil
	}

	campaign.AdvertisementIDs = remaining
	campaign.AdvertisementID = ""
	if campaign.CurrentAdIndex >= len(remaining) {
		campaign.CurrentAdIndex = 0
	}
	if err := s.campaignRepo.UpdateCampaign(ctx, campaign); err != nil {
		return fmt.Errorf("failed to prune campaign %s: %w", campaign.ID, err)
	}

	return nil
}
