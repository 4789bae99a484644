package usecase

import (
	"context"
)

// DownloadInfo describes a chunked download plan for one advertisement.
type DownloadInfo struct {
	AdvertisementID string `json:"advertisement_id"`
	VideoFilename   string `json:"video_filename"`
	FileSize        int64  `json:"file_size"`
	ChunkSize       int64  `json:"chunk_size"` // Clamped to the configured pull range.
	TotalChunks     int    `json:"total_chunks"`
	DownloadURL     string `json:"download_url"`
}

// DownloadChunk is one byte range of an asset.
type DownloadChunk struct {
	AdvertisementID string `json:"advertisement_id"`
	ChunkNumber     int    `json:"chunk_number"`
	TotalChunks     int    `json:"total_chunks"`
	Offset          int64  `json:"offset"`
	Size            int64  `json:"size"` // Actual bytes in this chunk; the last chunk may be short.
	TotalSize       int64  `json:"total_size"`
	Data            []byte `json:"-"`
}

// DownloadUsecase serves device-initiated chunked downloads. It is stateless:
// every chunk request stands alone, so devices can resume at any index.
type DownloadUsecase interface {
	// DownloadInfo returns the chunking plan for the asset at the requested
	// chunk size (clamped to the allowed range; non-positive selects the
	// default).
	DownloadInfo(ctx context.Context, advertisementID string, chunkSize int64) (*DownloadInfo, error)

	// ReadChunk reads one chunk's byte range from the asset on disk.
	ReadChunk(ctx context.Context, advertisementID string, chunkNumber int, chunkSize int64) (*DownloadChunk, error)
}
