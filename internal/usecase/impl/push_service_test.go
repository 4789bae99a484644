package impl

import (
	"context"
	"testing"

	"taxiads/config"
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

func pushTestConfig() *config.Config {
	return &config.Config{
		Transfer: &config.TransferConfig{
			PushChunkSize:    10 * 1024 * 1024,
			MinPullChunkSize: 1 * 1024 * 1024,
			MaxPullChunkSize: 50 * 1024 * 1024,
		},
	}
}

func TestPushService_PushAd_PartitionsTargets(t *testing.T) {
	mockAdRepo := mockRepo.NewMockAdvertisementRepository(t)
	mockSender := mockSvc.NewMockPushSender(t)
	registry := realtime.NewRegistry()
	service := NewPushService(mockAdRepo, registry, mockSender, pushTestConfig(), testLogger())

	ctx := context.Background()

	mockAdRepo.EXPECT().
		FindAdvertisementByID(ctx, "ad-1", true).
		Return(activeAd("ad-1"), nil)

	registry.Register("conn-1", "taxi-001")
	registry.Register("conn-2", "taxi-002")

	mockSender.EXPECT().
		Send("conn-1", usecase.EventPlayAd, mock.AnythingOfType("*usecase.PlayAdCommand")).
		Return(nil)
	mockSender.EXPECT().
		Send("conn-2", usecase.EventPlayAd, mock.AnythingOfType("*usecase.PlayAdCommand")).
		Return(errors.New("send queue full"))

	result, err := service.PushAd(ctx, []string{"taxi-001", "taxi-002", "taxi-offline"}, "ad-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"taxi-001"}, result.Delivered)
	assert.Equal(t, []string{"taxi-offline"}, result.Offline)
	assert.Equal(t, []string{"taxi-002"}, result.Failed)
}

func TestPushService_PushAd_BuildsPlayCommand(t *testing.T) {
	mockAdRepo := mockRepo.NewMockAdvertisementRepository(t)
	mockSender := mockSvc.NewMockPushSender(t)
	registry := realtime.NewRegistry()
	service := NewPushService(mockAdRepo, registry, mockSender, pushTestConfig(), testLogger())

	ctx := context.Background()

	mockAdRepo.EXPECT().
		FindAdvertisementByID(ctx, "ad-1", true).
		Return(activeAd("ad-1"), nil)

	registry.Register("conn-1", "taxi-001")

	var captured *usecase.PlayAdCommand
	mockSender.EXPECT().
		Send("conn-1", usecase.EventPlayAd, mock.AnythingOfType("*usecase.PlayAdCommand")).
		Run(func(connID string, event string, payload interface{}) {
			captured = payload.(*usecase.PlayAdCommand)
		}).
		Return(nil)

	_, err := service.PushAd(ctx, []string{"taxi-001"}, "ad-1")
	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, usecase.CommandPlayVideo, captured.Command)
	assert.Equal(t, "ad-1", captured.AdvertisementID)
	assert.Equal(t, "ad-1.mp4", captured.VideoFilename)
	assert.Equal(t, "manual_override", captured.Trigger)
	assert.NotEmpty(t, captured.Timestamp)
}

func TestPushService_PushAd_UnknownAdvertisement(t *testing.T) {
	mockAdRepo := mockRepo.NewMockAdvertisementRepository(t)
	mockSender := mockSvc.NewMockPushSender(t)
	service := NewPushService(mockAdRepo, realtime.NewRegistry(), mockSender, pushTestConfig(), testLogger())

	ctx := context.Background()

	mockAdRepo.EXPECT().
		FindAdvertisementByID(ctx, "ghost", true).
		Return(nil, repository.ErrAdvertisementNotFound)

	result, err := service.PushAd(ctx, []string{"taxi-001"}, "ghost")
	require.Error(t, err)
	assert.Nil(t, result)
}

func TestPushService_PushDownload_DefaultsChunkSize(t *testing.T) {
	mockAdRepo := mockRepo.NewMockAdvertisementRepository(t)
	mockSender := mockSvc.NewMockPushSender(t)
	registry := realtime.NewRegistry()
	service := NewPushService(mockAdRepo, registry, mockSender, pushTestConfig(), testLogger())

	ctx := context.Background()

	ad := activeAd("ad-1")
	ad.FileSize = 25 * 1024 * 1024
	mockAdRepo.EXPECT().FindAdvertisementByID(ctx, "ad-1", true).Return(ad, nil)

	registry.Register("conn-1", "taxi-001")

	var captured *usecase.DownloadVideoCommand
	mockSender.EXPECT().
		Send("conn-1", usecase.EventDownloadVideo, mock.AnythingOfType("*usecase.DownloadVideoCommand")).
		Run(func(connID string, event string, payload interface{}) {
			captured = payload.(*usecase.DownloadVideoCommand)
		}).
		Return(nil)

	result, err := service.PushDownload(ctx, []string{"taxi-001"}, "ad-1", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"taxi-001"}, result.Delivered)

	require.NotNil(t, captured)
	assert.Equal(t, usecase.CommandDownloadVideo, captured.Command)
	assert.Equal(t, int64(10*1024*1024), captured.ChunkSize)
	assert.Equal(t, 3, captured.TotalChunks)
	assert.Equal(t, "/api/v1/admin/videos/ad-1/download?chunked=true", captured.DownloadURL)
}

func TestPushService_PushBatch_FailsOnlyBrokenItems(t *testing.T) {
	mockAdRepo := mockRepo.NewMockAdvertisementRepository(t)
	mockSender := mockSvc.NewMockPushSender(t)
	registry := realtime.NewRegistry()
	service := NewPushService(mockAdRepo, registry, mockSender, pushTestConfig(), testLogger())

	ctx := context.Background()

	mockAdRepo.EXPECT().FindAdvertisementByID(ctx, "ad-1", true).Return(activeAd("ad-1"), nil)
	mockAdRepo.EXPECT().
		FindAdvertisementByID(ctx, "ghost", true).
		Return(nil, repository.ErrAdvertisementNotFound)

	registry.Register("conn-1", "taxi-001")
	mockSender.EXPECT().
		Send("conn-1", usecase.EventPlayAd, mock.AnythingOfType("*usecase.PlayAdCommand")).
		Return(nil)

	batch, err := service.PushBatch(ctx, []string{"taxi-001", "taxi-offline"}, []string{"ad-1", "ghost"})
	require.NoError(t, err)
	require.Len(t, batch.Items, 2)

	assert.Empty(t, batch.Items[0].Error)
	assert.Equal(t, []string{"taxi-001"}, batch.Items[0].Result.Delivered)
	assert.NotEmpty(t, batch.Items[1].Error)
	assert.Nil(t, batch.Items[1].Result)

	assert.Equal(t, 1, batch.TotalDelivered)
	assert.Equal(t, 1, batch.TotalOffline)
	assert.Equal(t, 0, batch.TotalFailed)
}
