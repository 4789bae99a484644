package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"taxiads/config"
	domainerrors "taxiads/internal/domain/errors"
	"taxiads/internal/domain/repository"
	"taxiads/internal/usecase"
)

type downloadService struct {
	adRepo repository.AdvertisementRepository
	cfg    *config.Config
	logger *slog.Logger
}

// NewDownloadService creates the device-facing chunked download reader.
func NewDownloadService(
	adRepo repository.AdvertisementRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.DownloadUsecase {
	return &downloadService{
		adRepo: adRepo,
		cfg:    cfg,
		logger: logger,
	}
}

// DownloadInfo returns the chunking plan for the asset.
func (s *downloadService) DownloadInfo(ctx context.Context, advertisementID string, chunkSize int64) (*usecase.DownloadInfo, error) {
	ad, err := s.adRepo.FindAdvertisementByID(ctx, advertisementID, false)
	if err != nil {
		return nil, err
	}

	chunkSize = s.clampChunkSize(chunkSize)

	return &usecase.DownloadInfo{
		AdvertisementID: ad.ID,
		VideoFilename:   ad.VideoFilename,
		FileSize:        ad.FileSize,
		ChunkSize:       chunkSize,
		TotalChunks:     chunkCount(ad.FileSize, chunkSize),
		DownloadURL:     downloadURL(ad),
	}, nil
}

// ReadChunk reads one chunk's byte range from the asset on disk.
func (s *downloadService) ReadChunk(ctx context.Context, advertisementID string, chunkNumber int, chunkSize int64) (*usecase.DownloadChunk, error) {
	ad, err := s.adRepo.FindAdvertisementByID(ctx, advertisementID, false)
	if err != nil {
		return nil, err
	}

	chunkSize = s.clampChunkSize(chunkSize)
	totalChunks := chunkCount(ad.FileSize, chunkSize)

	if chunkNumber < 0 || chunkNumber >= totalChunks {
		return nil, domainerrors.ErrChunkIndexOutOfRange.WrapMessage(
			fmt.Sprintf("chunk %d out of range [0, %d)", chunkNumber, totalChunks))
	}

	offset := int64(chunkNumber) * chunkSize
	size := chunkSize
	if remaining := ad.FileSize - offset; remaining < size {
		size = remaining
	}
	if size < 0 {
		size = 0
	}

	file, err := os.Open(ad.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open asset file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.NewSectionReader(file, offset, size))
	if err != nil {
		return nil, fmt.Errorf("failed to read chunk %d: %w", chunkNumber, err)
	}

	return &usecase.DownloadChunk{
		AdvertisementID: ad.ID,
		ChunkNumber:     chunkNumber,
		TotalChunks:     totalChunks,
		Offset:          offset,
		Size:            int64(len(data)),
		TotalSize:       ad.FileSize,
		Data:            data,
	}, nil
}

// clampChunkSize forces the requested chunk size into the allowed pull range;
// a non-positive request selects the configured push default.
func (s *downloadService) clampChunkSize(chunkSize int64) int64 {
	if chunkSize <= 0 {
		chunkSize = s.cfg.Transfer.PushChunkSize
	}
	if chunkSize < s.cfg.Transfer.MinPullChunkSize {
		chunkSize = s.cfg.Transfer.MinPullChunkSize
	}
	if chunkSize > s.cfg.Transfer.MaxPullChunkSize {
		chunkSize = s.cfg.Transfer.MaxPullChunkSize
	}

	return chunkSize
}

// chunkCount returns ceil(totalSize/chunkSize) with a floor of one chunk, so
// even an empty asset yields a single (empty) chunk.
func chunkCount(totalSize, chunkSize int64) int {
	if chunkSize <= 0 {
		return 1
	}

	count := (totalSize + chunkSize - 1) / chunkSize
	if count < 1 {
		count = 1
	}

	return int(count)
}
