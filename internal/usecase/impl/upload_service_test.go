package impl

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"taxiads/config"
	"taxiads/internal/domain/entity"
	"taxiads/internal/domain/repository"
	"taxiads/internal/infra/transfer"
	mockRepo "taxiads/internal/mocks/repository"
	"taxiads/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type uploadFixture struct {
	service      usecase.UploadUsecase
	adRepo       *mockRepo.MockAdvertisementRepository
	campaignRepo *mockRepo.MockCampaignRepository
	sessions     *transfer.SessionStore
	videoDir     string
}

func newUploadFixture(t *testing.T) *uploadFixture {
	t.Helper()

	adRepo := mockRepo.NewMockAdvertisementRepository(t)
	campaignRepo := mockRepo.NewMockCampaignRepository(t)
	sessions := transfer.NewSessionStore()
	uploadDir := t.TempDir()
	videoDir := t.TempDir()
	cfg := &config.Config{
		Transfer: &config.TransferConfig{
			UploadDir:         uploadDir,
			VideoDir:          videoDir,
			MaxFileSize:       1024,
			MaxChunkCount:     10,
			PushChunkSize:     16,
			MinPullChunkSize:  8,
			MaxPullChunkSize:  64,
			AllowedExtensions: []string{".mp4", ".mov"},
		},
		AdDispatch: &config.AdDispatchConfig{
			DefaultVideo:     "default_ad_loop.mp4",
			GeofenceSegments: 16,
		},
	}

	return &uploadFixture{
		service:      NewUploadService(adRepo, campaignRepo, sessions, transfer.NewChunkStore(uploadDir), cfg, testLogger()),
		adRepo:       adRepo,
		campaignRepo: campaignRepo,
		sessions:     sessions,
		videoDir:     videoDir,
	}
}

func (f *uploadFixture) expectIDFree(ctx context.Context, id string) {
	f.adRepo.EXPECT().
		FindAdvertisementByID(ctx, id, false).
		Return(nil, repository.ErrAdvertisementNotFound)
}

func TestUploadService_InitUpload_RejectsBadExtension(t *testing.T) {
	f := newUploadFixture(t)

	_, err := f.service.InitUpload(context.Background(), &usecase.InitUploadInput{
		Name:      "malware",
		Filename:  "setup.exe",
		TotalSize: 100,
		ChunkSize: 10,
	})
	require.Error(t, err)
}

func TestUploadService_InitUpload_EnforcesSizeCaps(t *testing.T) {
	f := newUploadFixture(t)
	ctx := context.Background()

	// Declared size over the hard cap.
	_, err := f.service.InitUpload(ctx, &usecase.InitUploadInput{
		Name:      "huge",
		Filename:  "huge.mp4",
		TotalSize: 2048,
		ChunkSize: 10,
	})
	require.Error(t, err)

	// Chunk count over the negotiated limit.
	_, err = f.service.InitUpload(ctx, &usecase.InitUploadInput{
		Name:      "shredded",
		Filename:  "shredded.mp4",
		TotalSize: 1000,
		ChunkSize: 1,
	})
	require.Error(t, err)

	// Non-positive sizes are rejected outright.
	_, err = f.service.InitUpload(ctx, &usecase.InitUploadInput{
		Name:      "empty",
		Filename:  "empty.mp4",
		TotalSize: 0,
		ChunkSize: 10,
	})
	require.Error(t, err)
}

func TestUploadService_InitUpload_ReservesReadableID(t *testing.T) {
	f := newUploadFixture(t)
	ctx := context.Background()

	f.expectIDFree(ctx, "night-market")

	result, err := f.service.InitUpload(ctx, &usecase.InitUploadInput{
		Name:      "Night Market!",
		Filename:  "raw_footage.mp4",
		TotalSize: 10,
		ChunkSize: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, "night-market", result.AdvertisementID)
	assert.Equal(t, 3, result.TotalChunks)
	assert.NotEmpty(t, result.UploadID)
}

func TestUploadService_InitUpload_SuffixesTakenID(t *testing.T) {
	f := newUploadFixture(t)
	ctx := context.Background()

	f.adRepo.EXPECT().
		FindAdvertisementByID(ctx, "night-market", false).
		Return(activeAd("night-market"), nil)
	f.expectIDFree(ctx, "night-market-1")

	result, err := f.service.InitUpload(ctx, &usecase.InitUploadInput{
		Name:      "Night Market",
		Filename:  "clip.mp4",
		TotalSize: 10,
		ChunkSize: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, "night-market-1", result.AdvertisementID)
}

func TestUploadService_PutChunk_IsIdempotentPerIndex(t *testing.T) {
	f := newUploadFixture(t)
	ctx := context.Background()

	f.expectIDFree(ctx, "clip")
	init, err := f.service.InitUpload(ctx, &usecase.InitUploadInput{
		Name:      "clip",
		Filename:  "clip.mp4",
		TotalSize: 10,
		ChunkSize: 4,
	})
	require.NoError(t, err)

	first, err := f.service.PutChunk(ctx, init.UploadID, 0, strings.NewReader("aaaa"))
	require.NoError(t, err)
	assert.Equal(t, 1, first.ReceivedChunks)

	// A retried chunk overwrites its bytes and does not bump the count.
	again, err := f.service.PutChunk(ctx, init.UploadID, 0, strings.NewReader("AAAA"))
	require.NoError(t, err)
	assert.Equal(t, 1, again.ReceivedChunks)
	assert.InDelta(t, 33.3, again.Progress, 0.1)
}

func TestUploadService_PutChunk_RejectsOutOfRangeIndex(t *testing.T) {
	f := newUploadFixture(t)
	ctx := context.Background()

	f.expectIDFree(ctx, "clip")
	init, err := f.service.InitUpload(ctx, &usecase.InitUploadInput{
		Name:      "clip",
		Filename:  "clip.mp4",
		TotalSize: 10,
		ChunkSize: 4,
	})
	require.NoError(t, err)

	_, err = f.service.PutChunk(ctx, init.UploadID, 3, strings.NewReader("xxxx"))
	require.Error(t, err)

	_, err = f.service.PutChunk(ctx, init.UploadID, -1, strings.NewReader("xxxx"))
	require.Error(t, err)

	_, err = f.service.PutChunk(ctx, "no-such-session", 0, strings.NewReader("xxxx"))
	require.Error(t, err)
}

func TestUploadService_CompleteUpload_RejectsMissingChunks(t *testing.T) {
	f := newUploadFixture(t)
	ctx := context.Background()

	f.expectIDFree(ctx, "clip")
	init, err := f.service.InitUpload(ctx, &usecase.InitUploadInput{
		Name:      "clip",
		Filename:  "clip.mp4",
		TotalSize: 10,
		ChunkSize: 4,
	})
	require.NoError(t, err)

	_, err = f.service.PutChunk(ctx, init.UploadID, 0, strings.NewReader("aaaa"))
	require.NoError(t, err)
	_, err = f.service.PutChunk(ctx, init.UploadID, 2, strings.NewReader("cc"))
	require.NoError(t, err)

	_, err = f.service.CompleteUpload(ctx, init.UploadID)
	require.Error(t, err)

	// The session survives so the client can re-send the gap.
	session, ok := f.sessions.Get(init.UploadID)
	require.True(t, ok)
	assert.Equal(t, entity.UploadStatusReceiving, session.Status)
}

func TestUploadService_CompleteUpload_MergesAndRegisters(t *testing.T) {
	f := newUploadFixture(t)
	ctx := context.Background()

	f.expectIDFree(ctx, "clip")
	init, err := f.service.InitUpload(ctx, &usecase.InitUploadInput{
		Name:      "clip",
		Filename:  "CLIP.MP4",
		TotalSize: 10,
		ChunkSize: 4,
	})
	require.NoError(t, err)

	for i, part := range []string{"aaaa", "bbbb", "cc"} {
		_, err = f.service.PutChunk(ctx, init.UploadID, i, strings.NewReader(part))
		require.NoError(t, err)
	}

	var registered *entity.Advertisement
	f.adRepo.EXPECT().
		CreateAdvertisement(ctx, mock.AnythingOfType("*entity.Advertisement")).
		Run(func(ctx context.Context, ad *entity.Advertisement) {
			registered = ad
		}).
		Return(nil)

	result, err := f.service.CompleteUpload(ctx, init.UploadID)
	require.NoError(t, err)
	assert.Empty(t, result.CampaignID)

	require.NotNil(t, registered)
	assert.Equal(t, "clip", registered.ID)
	assert.Equal(t, "clip.mp4", registered.VideoFilename)
	assert.Equal(t, int64(10), registered.FileSize)
	assert.Equal(t, entity.AdvertisementStatusActive, registered.Status)

	merged, err := os.ReadFile(filepath.Join(f.videoDir, "clip.mp4"))
	require.NoError(t, err)
	assert.Equal(t, "aaaabbbbcc", string(merged))

	assert.Empty(t, f.service.Sessions(ctx))
}

func TestUploadService_CompleteUpload_DerivesTriggerCampaign(t *testing.T) {
	f := newUploadFixture(t)
	ctx := context.Background()

	lon, lat, radius := 121.5, 25.04, 500.0

	f.expectIDFree(ctx, "station-promo")
	init, err := f.service.InitUpload(ctx, &usecase.InitUploadInput{
		Name:           "Station Promo",
		Filename:       "promo.mp4",
		TotalSize:      4,
		ChunkSize:      4,
		TriggerLon:     &lon,
		TriggerLat:     &lat,
		TriggerRadiusM: &radius,
	})
	require.NoError(t, err)

	_, err = f.service.PutChunk(ctx, init.UploadID, 0, strings.NewReader("abcd"))
	require.NoError(t, err)

	f.adRepo.EXPECT().
		CreateAdvertisement(ctx, mock.AnythingOfType("*entity.Advertisement")).
		Return(nil)

	var derived *entity.Campaign
	f.campaignRepo.EXPECT().
		CreateCampaign(ctx, mock.AnythingOfType("*entity.Campaign")).
		Run(func(ctx context.Context, campaign *entity.Campaign) {
			derived = campaign
		}).
		Return(nil)

	result, err := f.service.CompleteUpload(ctx, init.UploadID)
	require.NoError(t, err)
	assert.Equal(t, "camp-station-promo", result.CampaignID)

	require.NotNil(t, derived)
	assert.Equal(t, []string{"station-promo"}, derived.AdvertisementIDs)
	assert.Equal(t, entity.CampaignStatusActive, derived.Status)
	require.NotNil(t, derived.GeoFence)
	assert.True(t, derived.Contains(lon, lat))
}

func TestUploadService_CancelUpload_IsIdempotent(t *testing.T) {
	f := newUploadFixture(t)
	ctx := context.Background()

	f.expectIDFree(ctx, "clip")
	init, err := f.service.InitUpload(ctx, &usecase.InitUploadInput{
		Name:      "clip",
		Filename:  "clip.mp4",
		TotalSize: 10,
		ChunkSize: 4,
	})
	require.NoError(t, err)

	_, err = f.service.PutChunk(ctx, init.UploadID, 0, strings.NewReader("aaaa"))
	require.NoError(t, err)

	require.NoError(t, f.service.CancelUpload(ctx, init.UploadID))
	require.NoError(t, f.service.CancelUpload(ctx, init.UploadID))

	_, err = f.service.PutChunk(ctx, init.UploadID, 1, strings.NewReader("bbbb"))
	require.Error(t, err)
}
