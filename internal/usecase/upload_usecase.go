package usecase

import (
	"context"
	"io"

	"taxiads/internal/domain/entity"
)

// InitUploadInput starts a chunked upload session.
type InitUploadInput struct {
	Name           string   `json:"name" validate:"required"`
	Filename       string   `json:"filename" validate:"required"`
	TotalSize      int64    `json:"total_size" validate:"required,gt=0"`
	ChunkSize      int64    `json:"chunk_size" validate:"required,gt=0"`
	AdType         string   `json:"ad_type,omitempty"`
	TriggerLon     *float64 `json:"trigger_longitude,omitempty"`
	TriggerLat     *float64 `json:"trigger_latitude,omitempty"`
	TriggerRadiusM *float64 `json:"trigger_radius_m,omitempty"`
}

// InitUploadResult returns the negotiated session parameters.
type InitUploadResult struct {
	UploadID        string `json:"upload_id"`
	AdvertisementID string `json:"advertisement_id"`
	TotalChunks     int    `json:"total_chunks"`
	ChunkSize       int64  `json:"chunk_size"`
}

// PutChunkResult reports progress after one chunk lands.
type PutChunkResult struct {
	UploadID       string  `json:"upload_id"`
	ChunkNumber    int     `json:"chunk_number"`
	ReceivedChunks int     `json:"received_chunks"`
	TotalChunks    int     `json:"total_chunks"`
	Progress       float64 `json:"progress"` // Percentage in [0, 100].
}

// CompleteUploadResult describes the advertisement registered from the
// merged asset.
type CompleteUploadResult struct {
	Advertisement *entity.Advertisement `json:"video_info"`
	CampaignID    string                `json:"campaign_id,omitempty"` // Set when a trigger point derived a campaign.
}

// UploadUsecase manages chunked video uploads from the admin panel.
type UploadUsecase interface {
	// InitUpload validates the declared parameters and opens a session.
	InitUpload(ctx context.Context, input *InitUploadInput) (*InitUploadResult, error)

	// PutChunk stores one chunk. Re-sending an already-received index is
	// accepted and does not inflate the received count.
	PutChunk(ctx context.Context, uploadID string, chunkNumber int, chunk io.Reader) (*PutChunkResult, error)

	// CompleteUpload verifies every chunk arrived, merges them in order and
	// registers the advertisement. On merge failure the session survives so
	// the client can retry.
	CompleteUpload(ctx context.Context, uploadID string) (*CompleteUploadResult, error)

	// CancelUpload aborts the session and removes its chunks. Idempotent.
	CancelUpload(ctx context.Context, uploadID string) error

	// Sessions returns all in-flight sessions for monitoring.
	Sessions(ctx context.Context) []*entity.UploadSession
}
