package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"taxiads/internal/domain/entity"
	"taxiads/internal/domain/repository"
	"taxiads/internal/infra/realtime"
	mockRepo "taxiads/internal/mocks/repository"
	mockSvc "taxiads/internal/mocks/service"
	"taxiads/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func activeDevice(id string, groups ...string) *entity.Device {
	return &entity.Device{
		ID:     id,
		Groups: groups,
		Status: entity.DeviceStatusActive,
	}
}

func activeAd(id string) *entity.Advertisement {
	return &entity.Advertisement{
		ID:            id,
		Name:          "Ad " + id,
		VideoFilename: id + ".mp4",
		Status:        entity.AdvertisementStatusActive,
	}
}

func TestDecisionService_DecideForLocation_PicksHighestPriority(t *testing.T) {
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	mockCampaignRepo := mockRepo.NewMockCampaignRepository(t)
	mockAdRepo := mockRepo.NewMockAdvertisementRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	playback := realtime.NewPlayback()
	service := NewDecisionService(mockDeviceRepo, mockCampaignRepo, mockAdRepo, playback, mockPublisher, testLogger())

	ctx := context.Background()

	mockDeviceRepo.EXPECT().
		FindDeviceByID(ctx, "taxi-001").
		Return(activeDevice("taxi-001", "fleet"), nil)
	mockDeviceRepo.EXPECT().
		UpdateDeviceLocation(ctx, "taxi-001", 121.5, 25.04).
		Return(nil)

	low := &entity.Campaign{
		ID:               "camp-low",
		AdvertisementIDs: []string{"ad-low"},
		Priority:         1,
		TargetGroups:     []string{"fleet"},
		PlayMode:         entity.PlayModeRotation,
		Status:           entity.CampaignStatusActive,
	}
	high := &entity.Campaign{
		ID:               "camp-high",
		Name:             "Night market push",
		AdvertisementIDs: []string{"ad-high"},
		Priority:         5,
		TargetGroups:     []string{"fleet"},
		PlayMode:         entity.PlayModeRotation,
		Status:           entity.CampaignStatusActive,
	}
	mockCampaignRepo.EXPECT().
		FindCampaignsIntersecting(ctx, 121.5, 25.04, true).
		Return([]*entity.Campaign{low, high}, nil)

	mockAdRepo.EXPECT().
		FindAdvertisementByID(ctx, "ad-high", true).
		Return(activeAd("ad-high"), nil)

	mockPublisher.EXPECT().
		PublishPlaybackEvent(ctx, mock.AnythingOfType("*service.PlaybackEvent")).
		Return(nil)

	result, err := service.DecideForLocation(ctx, &usecase.LocationReport{
		DeviceID:  "taxi-001",
		Longitude: 121.5,
		Latitude:  25.04,
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "camp-high", result.CampaignID)
	assert.Equal(t, "ad-high", result.AdvertisementID)
	assert.Equal(t, "ad-high.mp4", result.VideoFilename)
	assert.Equal(t, 5, result.Priority)

	assert.Equal(t, []string{"taxi-001"}, playback.DevicesLockedTo("camp-high"))
}

func TestDecisionService_DecideForLocation_TieBreaksOnSmallestID(t *testing.T) {
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	mockCampaignRepo := mockRepo.NewMockCampaignRepository(t)
	mockAdRepo := mockRepo.NewMockAdvertisementRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	service := NewDecisionService(mockDeviceRepo, mockCampaignRepo, mockAdRepo, realtime.NewPlayback(), mockPublisher, testLogger())

	ctx := context.Background()

	mockDeviceRepo.EXPECT().FindDeviceByID(ctx, "taxi-001").Return(activeDevice("taxi-001", "fleet"), nil)
	mockDeviceRepo.EXPECT().UpdateDeviceLocation(ctx, "taxi-001", 121.5, 25.04).Return(nil)

	campB := &entity.Campaign{
		ID:               "camp-b",
		AdvertisementIDs: []string{"ad-b"},
		Priority:         3,
		TargetGroups:     []string{"fleet"},
		PlayMode:         entity.PlayModeRotation,
		Status:           entity.CampaignStatusActive,
	}
	campA := &entity.Campaign{
		ID:               "camp-a",
		AdvertisementIDs: []string{"ad-a"},
		Priority:         3,
		TargetGroups:     []string{"fleet"},
		PlayMode:         entity.PlayModeRotation,
		Status:           entity.CampaignStatusActive,
	}
	mockCampaignRepo.EXPECT().
		FindCampaignsIntersecting(ctx, 121.5, 25.04, true).
		Return([]*entity.Campaign{campB, campA}, nil)

	mockAdRepo.EXPECT().FindAdvertisementByID(ctx, "ad-a", true).Return(activeAd("ad-a"), nil)
	mockPublisher.EXPECT().
		PublishPlaybackEvent(ctx, mock.AnythingOfType("*service.PlaybackEvent")).
		Return(nil)

	result, err := service.DecideForLocation(ctx, &usecase.LocationReport{
		DeviceID:  "taxi-001",
		Longitude: 121.5,
		Latitude:  25.04,
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "camp-a", result.CampaignID)
}

func TestDecisionService_DecideForLocation_FiltersByTargetGroup(t *testing.T) {
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	mockCampaignRepo := mockRepo.NewMockCampaignRepository(t)
	mockAdRepo := mockRepo.NewMockAdvertisementRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	service := NewDecisionService(mockDeviceRepo, mockCampaignRepo, mockAdRepo, realtime.NewPlayback(), mockPublisher, testLogger())

	ctx := context.Background()

	mockDeviceRepo.EXPECT().FindDeviceByID(ctx, "taxi-001").Return(activeDevice("taxi-001", "downtown"), nil)
	mockDeviceRepo.EXPECT().UpdateDeviceLocation(ctx, "taxi-001", 121.5, 25.04).Return(nil)

	airportOnly := &entity.Campaign{
		ID:               "camp-airport",
		AdvertisementIDs: []string{"ad-1"},
		Priority:         9,
		TargetGroups:     []string{"airport"},
		PlayMode:         entity.PlayModeRotation,
		Status:           entity.CampaignStatusActive,
	}
	downtown := &entity.Campaign{
		ID:               "camp-downtown",
		AdvertisementIDs: []string{"ad-2"},
		Priority:         1,
		TargetGroups:     []string{"downtown"},
		PlayMode:         entity.PlayModeRotation,
		Status:           entity.CampaignStatusActive,
	}
	mockCampaignRepo.EXPECT().
		FindCampaignsIntersecting(ctx, 121.5, 25.04, true).
		Return([]*entity.Campaign{airportOnly, downtown}, nil)

	mockAdRepo.EXPECT().FindAdvertisementByID(ctx, "ad-2", true).Return(activeAd("ad-2"), nil)
	mockPublisher.EXPECT().
		PublishPlaybackEvent(ctx, mock.AnythingOfType("*service.PlaybackEvent")).
		Return(nil)

	result, err := service.DecideForLocation(ctx, &usecase.LocationReport{
		DeviceID:  "taxi-001",
		Longitude: 121.5,
		Latitude:  25.04,
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "camp-downtown", result.CampaignID)
}

func TestDecisionService_DecideForLocation_SkipsUntargetedCampaign(t *testing.T) {
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	mockCampaignRepo := mockRepo.NewMockCampaignRepository(t)
	mockAdRepo := mockRepo.NewMockAdvertisementRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	service := NewDecisionService(mockDeviceRepo, mockCampaignRepo, mockAdRepo, realtime.NewPlayback(), mockPublisher, testLogger())

	ctx := context.Background()

	mockDeviceRepo.EXPECT().FindDeviceByID(ctx, "taxi-001").Return(activeDevice("taxi-001", "downtown"), nil)
	mockDeviceRepo.EXPECT().UpdateDeviceLocation(ctx, "taxi-001", 121.5, 25.04).Return(nil)

	// A campaign that targets no groups reaches no device, even one inside
	// its geofence.
	untargeted := &entity.Campaign{
		ID:               "camp-1",
		AdvertisementIDs: []string{"ad-1"},
		Priority:         5,
		PlayMode:         entity.PlayModeRotation,
		Status:           entity.CampaignStatusActive,
	}
	mockCampaignRepo.EXPECT().
		FindCampaignsIntersecting(ctx, 121.5, 25.04, true).
		Return([]*entity.Campaign{untargeted}, nil)

	result, err := service.DecideForLocation(ctx, &usecase.LocationReport{
		DeviceID:  "taxi-001",
		Longitude: 121.5,
		Latitude:  25.04,
	})
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestDecisionService_DecideForLocation_AdvancesRotation(t *testing.T) {
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	mockCampaignRepo := mockRepo.NewMockCampaignRepository(t)
	mockAdRepo := mockRepo.NewMockAdvertisementRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	service := NewDecisionService(mockDeviceRepo, mockCampaignRepo, mockAdRepo, realtime.NewPlayback(), mockPublisher, testLogger())

	ctx := context.Background()

	mockDeviceRepo.EXPECT().FindDeviceByID(ctx, "taxi-001").Return(activeDevice("taxi-001", "fleet"), nil)
	mockDeviceRepo.EXPECT().UpdateDeviceLocation(ctx, "taxi-001", 121.5, 25.04).Return(nil)

	campaign := &entity.Campaign{
		ID:               "camp-1",
		AdvertisementIDs: []string{"ad-a", "ad-b", "ad-c"},
		CurrentAdIndex:   1,
		TargetGroups:     []string{"fleet"},
		PlayMode:         entity.PlayModeRotation,
		Status:           entity.CampaignStatusActive,
	}
	mockCampaignRepo.EXPECT().
		FindCampaignsIntersecting(ctx, 121.5, 25.04, true).
		Return([]*entity.Campaign{campaign}, nil)

	mockAdRepo.EXPECT().FindAdvertisementByID(ctx, "ad-b", true).Return(activeAd("ad-b"), nil)
	mockCampaignRepo.EXPECT().SetRotationIndex(ctx, "camp-1", 2).Return(nil)
	mockPublisher.EXPECT().
		PublishPlaybackEvent(ctx, mock.AnythingOfType("*service.PlaybackEvent")).
		Return(nil)

	result, err := service.DecideForLocation(ctx, &usecase.LocationReport{
		DeviceID:  "taxi-001",
		Longitude: 121.5,
		Latitude:  25.04,
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "ad-b", result.AdvertisementID)
	assert.Equal(t, []string{"ad-a", "ad-b", "ad-c"}, result.AdvertisementIDs)
}

func TestDecisionService_DecideForLocation_SkipsUnplayableAds(t *testing.T) {
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	mockCampaignRepo := mockRepo.NewMockCampaignRepository(t)
	mockAdRepo := mockRepo.NewMockAdvertisementRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	service := NewDecisionService(mockDeviceRepo, mockCampaignRepo, mockAdRepo, realtime.NewPlayback(), mockPublisher, testLogger())

	ctx := context.Background()

	mockDeviceRepo.EXPECT().FindDeviceByID(ctx, "taxi-001").Return(activeDevice("taxi-001", "fleet"), nil)
	mockDeviceRepo.EXPECT().UpdateDeviceLocation(ctx, "taxi-001", 121.5, 25.04).Return(nil)

	campaign := &entity.Campaign{
		ID:               "camp-1",
		AdvertisementIDs: []string{"ad-gone", "ad-live"},
		TargetGroups:     []string{"fleet"},
		PlayMode:         entity.PlayModeRotation,
		Status:           entity.CampaignStatusActive,
	}
	mockCampaignRepo.EXPECT().
		FindCampaignsIntersecting(ctx, 121.5, 25.04, true).
		Return([]*entity.Campaign{campaign}, nil)

	mockAdRepo.EXPECT().
		FindAdvertisementByID(ctx, "ad-gone", true).
		Return(nil, repository.ErrAdvertisementNotFound)
	mockAdRepo.EXPECT().FindAdvertisementByID(ctx, "ad-live", true).Return(activeAd("ad-live"), nil)

	mockCampaignRepo.EXPECT().SetRotationIndex(ctx, "camp-1", 0).Return(nil)
	mockPublisher.EXPECT().
		PublishPlaybackEvent(ctx, mock.AnythingOfType("*service.PlaybackEvent")).
		Return(nil)

	result, err := service.DecideForLocation(ctx, &usecase.LocationReport{
		DeviceID:  "taxi-001",
		Longitude: 121.5,
		Latitude:  25.04,
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "ad-live", result.AdvertisementID)
}

func TestDecisionService_DecideForLocation_SingleModeIgnoresCursor(t *testing.T) {
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	mockCampaignRepo := mockRepo.NewMockCampaignRepository(t)
	mockAdRepo := mockRepo.NewMockAdvertisementRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	service := NewDecisionService(mockDeviceRepo, mockCampaignRepo, mockAdRepo, realtime.NewPlayback(), mockPublisher, testLogger())

	ctx := context.Background()

	mockDeviceRepo.EXPECT().FindDeviceByID(ctx, "taxi-001").Return(activeDevice("taxi-001", "fleet"), nil)
	mockDeviceRepo.EXPECT().UpdateDeviceLocation(ctx, "taxi-001", 121.5, 25.04).Return(nil)

	campaign := &entity.Campaign{
		ID:               "camp-1",
		AdvertisementIDs: []string{"ad-a", "ad-b"},
		CurrentAdIndex:   1,
		TargetGroups:     []string{"fleet"},
		PlayMode:         entity.PlayModeSingle,
		Status:           entity.CampaignStatusActive,
	}
	mockCampaignRepo.EXPECT().
		FindCampaignsIntersecting(ctx, 121.5, 25.04, true).
		Return([]*entity.Campaign{campaign}, nil)

	// Single mode always starts from the head and never persists a cursor.
	mockAdRepo.EXPECT().FindAdvertisementByID(ctx, "ad-a", true).Return(activeAd("ad-a"), nil)
	mockPublisher.EXPECT().
		PublishPlaybackEvent(ctx, mock.AnythingOfType("*service.PlaybackEvent")).
		Return(nil)

	result, err := service.DecideForLocation(ctx, &usecase.LocationReport{
		DeviceID:  "taxi-001",
		Longitude: 121.5,
		Latitude:  25.04,
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "ad-a", result.AdvertisementID)
}

func TestDecisionService_DecideForLocation_NoMatchReturnsNoDecision(t *testing.T) {
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	mockCampaignRepo := mockRepo.NewMockCampaignRepository(t)
	mockAdRepo := mockRepo.NewMockAdvertisementRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	playback := realtime.NewPlayback()
	service := NewDecisionService(mockDeviceRepo, mockCampaignRepo, mockAdRepo, playback, mockPublisher, testLogger())

	ctx := context.Background()

	mockDeviceRepo.EXPECT().FindDeviceByID(ctx, "taxi-001").Return(activeDevice("taxi-001"), nil)
	mockDeviceRepo.EXPECT().UpdateDeviceLocation(ctx, "taxi-001", 121.5, 25.04).Return(nil)
	mockCampaignRepo.EXPECT().
		FindCampaignsIntersecting(ctx, 121.5, 25.04, true).
		Return([]*entity.Campaign{}, nil)

	result, err := service.DecideForLocation(ctx, &usecase.LocationReport{
		DeviceID:  "taxi-001",
		Longitude: 121.5,
		Latitude:  25.04,
	})
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.Empty(t, playback.Snapshot())
}

func TestDecisionService_DecideForLocation_QueryFailureDegradesToNoDecision(t *testing.T) {
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	mockCampaignRepo := mockRepo.NewMockCampaignRepository(t)
	mockAdRepo := mockRepo.NewMockAdvertisementRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	service := NewDecisionService(mockDeviceRepo, mockCampaignRepo, mockAdRepo, realtime.NewPlayback(), mockPublisher, testLogger())

	ctx := context.Background()

	mockDeviceRepo.EXPECT().FindDeviceByID(ctx, "taxi-001").Return(activeDevice("taxi-001"), nil)
	mockDeviceRepo.EXPECT().UpdateDeviceLocation(ctx, "taxi-001", 121.5, 25.04).Return(nil)
	mockCampaignRepo.EXPECT().
		FindCampaignsIntersecting(ctx, 121.5, 25.04, true).
		Return(nil, errors.New("connection refused"))

	result, err := service.DecideForLocation(ctx, &usecase.LocationReport{
		DeviceID:  "taxi-001",
		Longitude: 121.5,
		Latitude:  25.04,
	})
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestDecisionService_DecideForLocation_UnknownDevice(t *testing.T) {
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	mockCampaignRepo := mockRepo.NewMockCampaignRepository(t)
	mockAdRepo := mockRepo.NewMockAdvertisementRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	service := NewDecisionService(mockDeviceRepo, mockCampaignRepo, mockAdRepo, realtime.NewPlayback(), mockPublisher, testLogger())

	ctx := context.Background()

	mockDeviceRepo.EXPECT().
		FindDeviceByID(ctx, "ghost").
		Return(nil, repository.ErrDeviceNotFound)

	result, err := service.DecideForLocation(ctx, &usecase.LocationReport{
		DeviceID:  "ghost",
		Longitude: 121.5,
		Latitude:  25.04,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrDeviceNotFound))
	assert.Nil(t, result)
}

func TestDecisionService_DecideForLocation_DeviceLookupFailureDegradesToNoDecision(t *testing.T) {
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	mockCampaignRepo := mockRepo.NewMockCampaignRepository(t)
	mockAdRepo := mockRepo.NewMockAdvertisementRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	service := NewDecisionService(mockDeviceRepo, mockCampaignRepo, mockAdRepo, realtime.NewPlayback(), mockPublisher, testLogger())

	ctx := context.Background()

	mockDeviceRepo.EXPECT().
		FindDeviceByID(ctx, "taxi-001").
		Return(nil, errors.New("connection refused"))

	result, err := service.DecideForLocation(ctx, &usecase.LocationReport{
		DeviceID:  "taxi-001",
		Longitude: 121.5,
		Latitude:  25.04,
	})
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestDecisionService_DecideForLocation_InvalidCoordinates(t *testing.T) {
	mockDeviceRepo := mockRepo.NewMockDeviceRepository(t)
	mockCampaignRepo := mockRepo.NewMockCampaignRepository(t)
	mockAdRepo := mockRepo.NewMockAdvertisementRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	service := NewDecisionService(mockDeviceRepo, mockCampaignRepo, mockAdRepo, realtime.NewPlayback(), mockPublisher, testLogger())

	_, err := service.DecideForLocation(context.Background(), &usecase.LocationReport{
		DeviceID:  "taxi-001",
		Longitude: 181,
		Latitude:  25.04,
	})
	require.Error(t, err)

	_, err = service.DecideForLocation(context.Background(), &usecase.LocationReport{
		DeviceID:  "taxi-001",
		Longitude: 121.5,
		Latitude:  -90.5,
	})
	require.Error(t, err)
}
