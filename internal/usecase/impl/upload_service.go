package impl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
	"unicode"

	"taxiads/config"
	"taxiads/internal/domain/entity"
	domainerrors "taxiads/internal/domain/errors"
	"taxiads/internal/domain/repository"
	"taxiads/internal/infra/transfer"
	"taxiads/internal/usecase"
	"taxiads/internal/util"

	"github.com/google/uuid"
)

// idSuffixAttempts bounds the sequential-suffix search for a free
// advertisement id before falling back to a random suffix.
const idSuffixAttempts = 100

type uploadService struct {
	adRepo       repository.AdvertisementRepository
	campaignRepo repository.CampaignRepository
	sessions     *transfer.SessionStore
	chunks       *transfer.ChunkStore
	cfg          *config.Config
	logger       *slog.Logger
}

// NewUploadService creates the chunked upload manager.
func NewUploadService(
	adRepo repository.AdvertisementRepository,
	campaignRepo repository.CampaignRepository,
	sessions *transfer.SessionStore,
	chunks *transfer.ChunkStore,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.UploadUsecase {
	return &uploadService{
		adRepo:       adRepo,
		campaignRepo: campaignRepo,
		sessions:     sessions,
		chunks:       chunks,
		cfg:          cfg,
		logger:       logger,
	}
}

// InitUpload validates the declared parameters and opens a session.
func (s *uploadService) InitUpload(ctx context.Context, input *usecase.InitUploadInput) (*usecase.InitUploadResult, error) {
	ext := strings.ToLower(filepath.Ext(input.Filename))
	if !slices.Contains(s.cfg.Transfer.AllowedExtensions, ext) {
		return nil, domainerrors.ErrFileTypeNotAllowed.WrapMessage(
			fmt.Sprintf("extension %q is not an accepted video type", ext))
	}

	if input.TotalSize <= 0 || input.ChunkSize <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("total size and chunk size must be positive")
	}
	if input.TotalSize > s.cfg.Transfer.MaxFileSize {
		return nil, domainerrors.ErrFileSizeExceeded.WrapMessage(
			fmt.Sprintf("declared size %s exceeds the %s limit",
				util.FormatBytes(input.TotalSize), util.FormatBytes(s.cfg.Transfer.MaxFileSize)))
	}

	totalChunks := chunkCount(input.TotalSize, input.ChunkSize)
	if totalChunks > s.cfg.Transfer.MaxChunkCount {
		return nil, domainerrors.ErrChunkCountExceeded.WrapMessage(
			fmt.Sprintf("%d chunks exceeds the %d limit", totalChunks, s.cfg.Transfer.MaxChunkCount))
	}

	advertisementID, err := s.reserveAdvertisementID(ctx, input.Name, input.Filename)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	session := &entity.UploadSession{
		Token:           uuid.NewString(),
		AdvertisementID: advertisementID,
		Name:            input.Name,
		Filename:        input.Filename,
		TotalSize:       input.TotalSize,
		ChunkSize:       input.ChunkSize,
		TotalChunks:     totalChunks,
		AdType:          input.AdType,
		TriggerLon:      input.TriggerLon,
		TriggerLat:      input.TriggerLat,
		TriggerRadiusM:  input.TriggerRadiusM,
		Received:        make(map[int]struct{}),
		Status:          entity.UploadStatusReceiving,
		CreatedAt:       now,
		LastActivityAt:  now,
	}
	s.sessions.Put(session)

	s.logger.Info("upload session opened",
		slog.String("upload_id", session.Token),
		slog.String("advertisement_id", advertisementID),
		slog.Int("total_chunks", totalChunks),
		slog.String("total_size", util.FormatBytes(input.TotalSize)),
	)

	return &usecase.InitUploadResult{
		UploadID:        session.Token,
		AdvertisementID: advertisementID,
		TotalChunks:     totalChunks,
		ChunkSize:       input.ChunkSize,
	}, nil
}

// PutChunk stores one chunk. Chunks may arrive in any order; a re-sent index
// overwrites its bytes and leaves the received count unchanged.
func (s *uploadService) PutChunk(ctx context.Context, uploadID string, chunkNumber int, chunk io.Reader) (*usecase.PutChunkResult, error) {
	session, ok := s.sessions.Get(uploadID)
	if !ok {
		return nil, domainerrors.ErrUploadSessionNotFound
	}
	if session.Status != entity.UploadStatusReceiving {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(
			fmt.Sprintf("upload session is %s, not receiving", session.Status))
	}

	if chunkNumber < 0 || chunkNumber >= session.TotalChunks {
		return nil, domainerrors.ErrChunkIndexOutOfRange.WrapMessage(
			fmt.Sprintf("chunk %d out of range [0, %d)", chunkNumber, session.TotalChunks))
	}

	if _, err := s.chunks.SaveChunk(uploadID, chunkNumber, chunk); err != nil {
		return nil, fmt.Errorf("failed to store chunk %d: %w", chunkNumber, err)
	}

	received, ok := s.sessions.MarkReceived(uploadID, chunkNumber)
	if !ok {
		// The session was cancelled between Get and MarkReceived.
		return nil, domainerrors.ErrUploadSessionNotFound
	}

	return &usecase.PutChunkResult{
		UploadID:       uploadID,
		ChunkNumber:    chunkNumber,
		ReceivedChunks: received,
		TotalChunks:    session.TotalChunks,
		Progress:       float64(received) / float64(session.TotalChunks) * 100,
	}, nil
}

// CompleteUpload verifies every chunk arrived, merges them and registers the
// advertisement. On failure the session stays alive so the client can retry.
func (s *uploadService) CompleteUpload(ctx context.Context, uploadID string) (*usecase.CompleteUploadResult, error) {
	session, ok := s.sessions.Get(uploadID)
	if !ok {
		return nil, domainerrors.ErrUploadSessionNotFound
	}

	if !session.IsComplete() {
		missing := session.MissingChunks()

		return nil, domainerrors.ErrIncompleteTransfer.WithDetails(
			fmt.Sprintf("%d of %d chunks missing: %v", len(missing), session.TotalChunks, missing))
	}

	s.sessions.SetStatus(uploadID, entity.UploadStatusCompleting)

	finalFilename := session.AdvertisementID + strings.ToLower(filepath.Ext(session.Filename))
	destPath := filepath.Join(s.cfg.Transfer.VideoDir, finalFilename)

	if err := s.chunks.Merge(uploadID, session.TotalChunks, destPath, session.TotalSize); err != nil {
		s.sessions.SetStatus(uploadID, entity.UploadStatusReceiving)

		return nil, fmt.Errorf("failed to merge upload %s: %w", uploadID, err)
	}

	if checksum, err := util.CalculateFileChecksum(destPath); err == nil {
		s.logger.Info("upload merged",
			slog.String("upload_id", uploadID),
			slog.String("file", finalFilename),
			slog.String("sha256", checksum),
		)
	}

	adType := session.AdType
	if adType == "" {
		adType = "video"
	}
	ad := &entity.Advertisement{
		ID:             session.AdvertisementID,
		Name:           session.Name,
		VideoFilename:  finalFilename,
		FilePath:       destPath,
		FileSize:       session.TotalSize,
		AdType:         adType,
		Status:         entity.AdvertisementStatusActive,
		TriggerLon:     session.TriggerLon,
		TriggerLat:     session.TriggerLat,
		TriggerRadiusM: session.TriggerRadiusM,
	}
	if err := s.adRepo.CreateAdvertisement(ctx, ad); err != nil {
		os.Remove(destPath)
		s.sessions.SetStatus(uploadID, entity.UploadStatusReceiving)

		return nil, fmt.Errorf("failed to register advertisement: %w", err)
	}

	campaignID := s.deriveTriggerCampaign(ctx, ad)

	if err := s.chunks.Remove(uploadID); err != nil {
		s.logger.Warn("failed to remove upload chunks",
			slog.String("upload_id", uploadID),
			slog.String("error", err.Error()),
		)
	}
	s.sessions.Delete(uploadID)

	return &usecase.CompleteUploadResult{
		Advertisement: ad,
		CampaignID:    campaignID,
	}, nil
}

// CancelUpload aborts the session and removes its chunks. Idempotent.
func (s *uploadService) CancelUpload(ctx context.Context, uploadID string) error {
	if err := s.chunks.Remove(uploadID); err != nil {
		return err
	}
	s.sessions.Delete(uploadID)

	return nil
}

// Sessions returns all in-flight sessions for monitoring.
func (s *uploadService) Sessions(ctx context.Context) []*entity.UploadSession {
	return s.sessions.Snapshot()
}

// deriveTriggerCampaign creates a single-ad campaign around the ad's trigger
// point, when one was declared. Failure is logged, not returned: the upload
// already succeeded and the campaign can be created by hand.
func (s *uploadService) deriveTriggerCampaign(ctx context.Context, ad *entity.Advertisement) string {
	if !ad.HasTriggerPoint() {
		return ""
	}

	campaign := &entity.Campaign{
		ID:               "camp-" + ad.ID,
		Name:             ad.Name + " trigger zone",
		AdvertisementIDs: []string{ad.ID},
		GeoFence: entity.CircleGeofence(
			*ad.TriggerLon, *ad.TriggerLat, *ad.TriggerRadiusM,
			s.cfg.AdDispatch.GeofenceSegments),
		CenterLon:    ad.TriggerLon,
		CenterLat:    ad.TriggerLat,
		RadiusMeters: ad.TriggerRadiusM,
		PlayMode:     entity.PlayModeRotation,
		Status:       entity.CampaignStatusActive,
	}
	if err := s.campaignRepo.CreateCampaign(ctx, campaign); err != nil {
		s.logger.Warn("failed to derive trigger campaign",
			slog.String("advertisement_id", ad.ID),
			slog.String("error", err.Error()),
		)

		return ""
	}

	return campaign.ID
}

// reserveAdvertisementID derives a readable id from the upload name and walks
// numeric suffixes until one is free, falling back to a random suffix when
// the namespace is crowded.
func (s *uploadService) reserveAdvertisementID(ctx context.Context, name, filename string) (string, error) {
	base := slugify(name)
	if base == "" {
		base = slugify(strings.TrimSuffix(filename, filepath.Ext(filename)))
	}
	if base == "" {
		base = "ad"
	}

	candidate := base
	for attempt := 1; attempt <= idSuffixAttempts; attempt++ {
		taken, err := s.advertisementIDTaken(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, attempt)
	}

	return fmt.Sprintf("%s-%s", base, uuid.NewString()[:8]), nil
}

func (s *uploadService) advertisementIDTaken(ctx context.Context, id string) (bool, error) {
	// An in-flight session may have reserved the id before its ad row exists.
	for _, session := range s.sessions.Snapshot() {
		if session.AdvertisementID == id {
			return true, nil
		}
	}

	_, err := s.adRepo.FindAdvertisementByID(ctx, id, false)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, repository.ErrAdvertisementNotFound) {
		return false, nil
	}

	return false, fmt.Errorf("failed to check advertisement id: %w", err)
}

// slugify lowercases and collapses everything outside [a-z0-9] into single
// hyphens.
func slugify(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	lastHyphen := true
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) && r < 128 || unicode.IsDigit(r) && r < 128 {
			b.WriteRune(r)
			lastHyphen = false

			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	return strings.Trim(b.String(), "-")
}
