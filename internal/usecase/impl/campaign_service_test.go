package impl

import (
	"context"
	"strings"
	"testing"

	"taxiads/config"
	"taxiads/internal/domain/entity"
	"taxiads/internal/domain/repository"
	"taxiads/internal/infra/realtime"
	mockRepo "taxiads/internal/mocks/repository"
	mockSvc "taxiads/internal/mocks/service"
	"taxiads/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type campaignFixture struct {
	service      usecase.CampaignUsecase
	campaignRepo *mockRepo.MockCampaignRepository
	adRepo       *mockRepo.MockAdvertisementRepository
	sender       *mockSvc.MockPushSender
	registry     *realtime.Registry
	playback     *realtime.Playback
}

func newCampaignFixture(t *testing.T) *campaignFixture {
	t.Helper()

	campaignRepo := mockRepo.NewMockCampaignRepository(t)
	adRepo := mockRepo.NewMockAdvertisementRepository(t)
	sender := mockSvc.NewMockPushSender(t)
	registry := realtime.NewRegistry()
	playback := realtime.NewPlayback()
	cfg := &config.Config{
		AdDispatch: &config.AdDispatchConfig{
			DefaultVideo:     "default_ad_loop.mp4",
			GeofenceSegments: 16,
		},
	}

	return &campaignFixture{
		service:      NewCampaignService(campaignRepo, adRepo, playback, registry, sender, cfg, testLogger()),
		campaignRepo: campaignRepo,
		adRepo:       adRepo,
		sender:       sender,
		registry:     registry,
		playback:     playback,
	}
}

func TestCampaignService_CreateCampaign_FromCircle(t *testing.T) {
	f := newCampaignFixture(t)
	ctx := context.Background()

	f.adRepo.EXPECT().FindAdvertisementByID(ctx, "ad-1", false).Return(activeAd("ad-1"), nil)

	var created *entity.Campaign
	f.campaignRepo.EXPECT().
		CreateCampaign(ctx, mock.AnythingOfType("*entity.Campaign")).
		Run(func(ctx context.Context, campaign *entity.Campaign) {
			created = campaign
		}).
		Return(nil)

	lon, lat, radius := 121.5, 25.04, 800.0
	campaign, err := f.service.CreateCampaign(ctx, &usecase.CreateCampaignInput{
		Name:             "Station zone",
		AdvertisementIDs: []string{"ad-1"},
		Priority:         3,
		CenterLon:        &lon,
		CenterLat:        &lat,
		RadiusMeters:     &radius,
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.True(t, strings.HasPrefix(campaign.ID, "camp-"))
	assert.Equal(t, entity.PlayModeRotation, campaign.PlayMode)
	assert.Equal(t, entity.CampaignStatusActive, campaign.Status)
	assert.True(t, campaign.Contains(lon, lat))
	assert.False(t, campaign.Contains(lon+1, lat))
}

func TestCampaignService_CreateCampaign_FromRing(t *testing.T) {
	f := newCampaignFixture(t)
	ctx := context.Background()

	f.adRepo.EXPECT().FindAdvertisementByID(ctx, "ad-1", false).Return(activeAd("ad-1"), nil)
	f.campaignRepo.EXPECT().CreateCampaign(ctx, mock.AnythingOfType("*entity.Campaign")).Return(nil)

	// Open ring: the service closes it.
	campaign, err := f.service.CreateCampaign(ctx, &usecase.CreateCampaignInput{
		ID:               "camp-square",
		Name:             "Square",
		AdvertisementIDs: []string{"ad-1"},
		GeoFence:         [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, "camp-square", campaign.ID)
	assert.True(t, campaign.Contains(0.5, 0.5))
	assert.False(t, campaign.Contains(1.5, 0.5))
}

func TestCampaignService_CreateCampaign_RejectsBadGeofences(t *testing.T) {
	f := newCampaignFixture(t)
	ctx := context.Background()

	lon, lat, radius := 121.5, 25.04, 800.0

	f.adRepo.EXPECT().FindAdvertisementByID(ctx, "ad-1", false).Return(activeAd("ad-1"), nil).Times(4)

	// Both forms at once.
	_, err := f.service.CreateCampaign(ctx, &usecase.CreateCampaignInput{
		Name:             "both",
		AdvertisementIDs: []string{"ad-1"},
		GeoFence:         [][2]float64{{0, 0}, {1, 0}, {1, 1}},
		CenterLon:        &lon,
		CenterLat:        &lat,
		RadiusMeters:     &radius,
	})
	require.Error(t, err)

	// Neither form.
	_, err = f.service.CreateCampaign(ctx, &usecase.CreateCampaignInput{
		Name:             "neither",
		AdvertisementIDs: []string{"ad-1"},
	})
	require.Error(t, err)

	// Degenerate ring.
	_, err = f.service.CreateCampaign(ctx, &usecase.CreateCampaignInput{
		Name:             "line",
		AdvertisementIDs: []string{"ad-1"},
		GeoFence:         [][2]float64{{0, 0}, {1, 1}},
	})
	require.Error(t, err)

	// Non-positive radius.
	zero := 0.0
	_, err = f.service.CreateCampaign(ctx, &usecase.CreateCampaignInput{
		Name:             "flat",
		AdvertisementIDs: []string{"ad-1"},
		CenterLon:        &lon,
		CenterLat:        &lat,
		RadiusMeters:     &zero,
	})
	require.Error(t, err)
}

func TestCampaignService_CreateCampaign_RejectsUnknownAdvertisement(t *testing.T) {
	f := newCampaignFixture(t)
	ctx := context.Background()

	f.adRepo.EXPECT().
		FindAdvertisementByID(ctx, "ghost", false).
		Return(nil, repository.ErrAdvertisementNotFound)

	_, err := f.service.CreateCampaign(ctx, &usecase.CreateCampaignInput{
		Name:             "broken",
		AdvertisementIDs: []string{"ghost"},
		GeoFence:         [][2]float64{{0, 0}, {1, 0}, {1, 1}},
	})
	require.Error(t, err)
}

func TestCampaignService_UpdateCampaign_ResetsCursorWhenListShrinks(t *testing.T) {
	f := newCampaignFixture(t)
	ctx := context.Background()

	existing := &entity.Campaign{
		ID:               "camp-1",
		AdvertisementIDs: []string{"ad-1", "ad-2", "ad-3"},
		CurrentAdIndex:   2,
		PlayMode:         entity.PlayModeRotation,
		Status:           entity.CampaignStatusActive,
	}
	f.campaignRepo.EXPECT().FindCampaignByID(ctx, "camp-1").Return(existing, nil)
	f.adRepo.EXPECT().FindAdvertisementByID(ctx, "ad-1", false).Return(activeAd("ad-1"), nil)
	f.campaignRepo.EXPECT().UpdateCampaign(ctx, mock.AnythingOfType("*entity.Campaign")).Return(nil)

	ads := []string{"ad-1"}
	campaign, err := f.service.UpdateCampaign(ctx, "camp-1", &usecase.UpdateCampaignInput{
		AdvertisementIDs: &ads,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"ad-1"}, campaign.AdvertisementIDs)
	assert.Equal(t, 0, campaign.CurrentAdIndex)
}

func TestCampaignService_DeleteCampaign_RevertsOnlyLockedDevices(t *testing.T) {
	f := newCampaignFixture(t)
	ctx := context.Background()

	f.playback.Record("taxi-online", "camp-1", "ad-1")
	f.playback.Record("taxi-offline", "camp-1", "ad-1")
	f.playback.Record("taxi-other", "camp-other", "ad-9")
	f.registry.Register("conn-1", "taxi-online")

	f.campaignRepo.EXPECT().
		FindCampaignByID(ctx, "camp-1").
		Return(&entity.Campaign{ID: "camp-1", Status: entity.CampaignStatusActive}, nil)
	f.campaignRepo.EXPECT().DeleteCampaign(ctx, "camp-1").Return(nil)

	var reverted *usecase.RevertCommand
	f.sender.EXPECT().
		Send("conn-1", usecase.EventRevertToLocalPlaylist, mock.AnythingOfType("*usecase.RevertCommand")).
		Run(func(connID string, event string, payload interface{}) {
			reverted = payload.(*usecase.RevertCommand)
		}).
		Return(nil)

	result, err := f.service.DeleteCampaign(ctx, "camp-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"taxi-online"}, result.RevertedDevices)
	assert.Equal(t, []string{"taxi-offline"}, result.OfflineDevices)

	require.NotNil(t, reverted)
	assert.Equal(t, "camp-1", reverted.CampaignID)
	assert.Equal(t, "default_ad_loop.mp4", reverted.DefaultVideo)
	assert.Equal(t, "campaign_deleted", reverted.Reason)

	// Devices on other campaigns keep their lock, the rest are cleared.
	assert.Empty(t, f.playback.DevicesLockedTo("camp-1"))
	assert.Equal(t, []string{"taxi-other"}, f.playback.DevicesLockedTo("camp-other"))
}

func TestCampaignService_DeleteCampaign_UnknownCampaign(t *testing.T) {
	f := newCampaignFixture(t)
	ctx := context.Background()

	f.campaignRepo.EXPECT().
		FindCampaignByID(ctx, "ghost").
		Return(nil, repository.ErrCampaignNotFound)

	_, err := f.service.DeleteCampaign(ctx, "ghost")
	require.Error(t, err)
}
