package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"taxiads/config"
	"taxiads/internal/domain/entity"
	"taxiads/internal/domain/repository"
	"taxiads/internal/domain/service"
	"taxiads/internal/usecase"
)

type pushService struct {
	adRepo   repository.AdvertisementRepository
	registry service.SessionRegistry
	sender   service.PushSender
	cfg      *config.Config
	logger   *slog.Logger
}

// NewPushService creates the admin push dispatcher.
func NewPushService(
	adRepo repository.AdvertisementRepository,
	registry service.SessionRegistry,
	sender service.PushSender,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.PushUsecase {
	return &pushService{
		adRepo:   adRepo,
		registry: registry,
		sender:   sender,
		cfg:      cfg,
		logger:   logger,
	}
}

// PushAd sends an immediate PLAY_VIDEO command to the given devices.
func (s *pushService) PushAd(ctx context.Context, deviceIDs []string, advertisementID string) (*usecase.PushResult, error) {
	ad, err := s.adRepo.FindAdvertisementByID(ctx, advertisementID, true)
	if err != nil {
		return nil, err
	}

	payload := &usecase.PlayAdCommand{
		Command:           usecase.CommandPlayVideo,
		AdvertisementID:   ad.ID,
		AdvertisementName: ad.Name,
		VideoFilename:     ad.VideoFilename,
		Trigger:           "manual_override",
		Timestamp:         time.Now().UTC().Format(time.RFC3339),
	}

	return s.fanOut(deviceIDs, usecase.EventPlayAd, payload), nil
}

// PushDownload sends a DOWNLOAD_VIDEO command so devices pre-fetch the asset.
func (s *pushService) PushDownload(ctx context.Context, deviceIDs []string, advertisementID string, chunkSize int64) (*usecase.PushResult, error) {
	ad, err := s.adRepo.FindAdvertisementByID(ctx, advertisementID, true)
	if err != nil {
		return nil, err
	}

	if chunkSize <= 0 {
		chunkSize = s.cfg.Transfer.PushChunkSize
	}

	payload := &usecase.DownloadVideoCommand{
		Command:         usecase.CommandDownloadVideo,
		AdvertisementID: ad.ID,
		VideoFilename:   ad.VideoFilename,
		FileSize:        ad.FileSize,
		ChunkSize:       chunkSize,
		TotalChunks:     chunkCount(ad.FileSize, chunkSize),
		DownloadURL:     downloadURL(ad),
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
	}

	return s.fanOut(deviceIDs, usecase.EventDownloadVideo, payload), nil
}

// PushBatch fans PushAd out over several advertisements. An unusable ad fails
// only its own item.
func (s *pushService) PushBatch(ctx context.Context, deviceIDs []string, advertisementIDs []string) (*usecase.BatchPushResult, error) {
	batch := &usecase.BatchPushResult{
		Items: make([]*usecase.BatchPushItem, 0, len(advertisementIDs)),
	}

	for _, adID := range advertisementIDs {
		item := &usecase.BatchPushItem{AdvertisementID: adID}

		result, err := s.PushAd(ctx, deviceIDs, adID)
		if err != nil {
			item.Error = err.Error()
			batch.Items = append(batch.Items, item)

			continue
		}

		item.Result = result
		batch.Items = append(batch.Items, item)
		batch.TotalDelivered += len(result.Delivered)
		batch.TotalOffline += len(result.Offline)
		batch.TotalFailed += len(result.Failed)
	}

	return batch, nil
}

// fanOut delivers one event to every target independently, partitioning the
// targets into disjoint delivered/offline/failed sets.
func (s *pushService) fanOut(deviceIDs []string, event string, payload any) *usecase.PushResult {
	result := &usecase.PushResult{
		Delivered: []string{},
		Offline:   []string{},
		Failed:    []string{},
	}

	for _, deviceID := range deviceIDs {
		connID, ok := s.registry.Resolve(deviceID)
		if !ok {
			result.Offline = append(result.Offline, deviceID)

			continue
		}

		if err := s.sender.Send(connID, event, payload); err != nil {
			s.logger.Warn("push delivery failed",
				slog.String("device_id", deviceID),
				slog.String("event", event),
				slog.String("error", err.Error()),
			)
			result.Failed = append(result.Failed, deviceID)

			continue
		}

		result.Delivered = append(result.Delivered, deviceID)
	}

	return result
}

func downloadURL(ad *entity.Advertisement) string {
	return fmt.Sprintf("/api/v1/admin/videos/%s/download?chunked=true", ad.ID)
}
