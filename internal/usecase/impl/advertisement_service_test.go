package impl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"taxiads/internal/domain/entity"
	"taxiads/internal/domain/repository"
	mockRepo "taxiads/internal/mocks/repository"
	"taxiads/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdvertisementService_UpdateAdvertisement_AppliesOnlyGivenFields(t *testing.T) {
	mockAdRepo := mockRepo.NewMockAdvertisementRepository(t)
	mockCampaignRepo := mockRepo.NewMockCampaignRepository(t)
	service := NewAdvertisementService(mockAdRepo, mockCampaignRepo, testLogger())

	ctx := context.Background()

	existing := activeAd("ad-1")
	mockAdRepo.EXPECT().FindAdvertisementByID(ctx, "ad-1", false).Return(existing, nil)
	mockAdRepo.EXPECT().UpdateAdvertisement(ctx, mock.AnythingOfType("*entity.Advertisement")).Return(nil)

	status := entity.AdvertisementStatusInactive
	ad, err := service.UpdateAdvertisement(ctx, "ad-1", &usecase.UpdateAdvertisementInput{
		Status: &status,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.AdvertisementStatusInactive, ad.Status)
	assert.Equal(t, "Ad ad-1", ad.Name)
}

func TestAdvertisementService_DeleteAdvertisement_PrunesCampaignsAndAsset(t *testing.T) {
	mockAdRepo := mockRepo.NewMockAdvertisementRepository(t)
	mockCampaignRepo := mockRepo.NewMockCampaignRepository(t)
	service := NewAdvertisementService(mockAdRepo, mockCampaignRepo, testLogger())

	ctx := context.Background()

	assetPath := filepath.Join(t.TempDir(), "ad-1.mp4")
	require.NoError(t, os.WriteFile(assetPath, []byte("video"), 0o600))

	ad := activeAd("ad-1")
	ad.FilePath = assetPath
	mockAdRepo.EXPECT().FindAdvertisementByID(ctx, "ad-1", false).Return(ad, nil)

	// One campaign keeps rotating with the remaining ad, one is emptied and
	// deleted outright.
	shared := &entity.Campaign{
		ID:               "camp-shared",
		AdvertisementIDs: []string{"ad-1", "ad-2"},
		CurrentAdIndex:   1,
		Status:           entity.CampaignStatusActive,
	}
	solo := &entity.Campaign{
		ID:               "camp-solo",
		AdvertisementIDs: []string{"ad-1"},
		Status:           entity.CampaignStatusActive,
	}
	mockCampaignRepo.EXPECT().
		FindCampaignsByAdvertisement(ctx, "ad-1").
		Return([]*entity.Campaign{shared, solo}, nil)

	var pruned *entity.Campaign
	mockCampaignRepo.EXPECT().
		UpdateCampaign(ctx, mock.AnythingOfType("*entity.Campaign")).
		Run(func(ctx context.Context, campaign *entity.Campaign) {
			pruned = campaign
		}).
		Return(nil)
	mockCampaignRepo.EXPECT().DeleteCampaign(ctx, "camp-solo").Return(nil)

	mockAdRepo.EXPECT().DeleteAdvertisement(ctx, "ad-1").Return(nil)

	require.NoError(t, service.DeleteAdvertisement(ctx, "ad-1"))

	require.NotNil(t, pruned)
	assert.Equal(t, "camp-shared", pruned.ID)
	assert.Equal(t, []string{"ad-2"}, pruned.AdvertisementIDs)
	assert.Equal(t, 0, pruned.CurrentAdIndex)

	_, err := os.Stat(assetPath)
	assert.True(t, os.IsNotExist(err))
}

func TestAdvertisementService_DeleteAdvertisement_UnknownAd(t *testing.T) {
	mockAdRepo := mockRepo.NewMockAdvertisementRepository(t)
	mockCampaignRepo := mockRepo.NewMockCampaignRepository(t)
	service := NewAdvertisementService(mockAdRepo, mockCampaignRepo, testLogger())

	ctx := context.Background()

	mockAdRepo.EXPECT().
		FindAdvertisementByID(ctx, "ghost", false).
		Return(nil, repository.ErrAdvertisementNotFound)

	err := service.DeleteAdvertisement(ctx, "ghost")
	require.Error(t, err)
}
