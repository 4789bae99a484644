package usecase

import (
	"context"
)

// Wire event names pushed to devices.
const (
	EventPlayAd                = "play_ad"
	EventDownloadVideo         = "download_video"
	EventForceDisconnect       = "force_disconnect"
	EventRevertToLocalPlaylist = "revert_to_local_playlist"
)

// Device-side command identifiers carried inside push payloads.
const (
	CommandPlayVideo     = "PLAY_VIDEO"
	CommandDownloadVideo = "DOWNLOAD_VIDEO"
)

// PlayAdCommand is the payload of a play_ad push.
type PlayAdCommand struct {
	Command           string   `json:"command"` // Always CommandPlayVideo.
	AdvertisementID   string   `json:"advertisement_id"`
	AdvertisementName string   `json:"advertisement_name,omitempty"`
	VideoFilename     string   `json:"video_filename"`
	CampaignID        string   `json:"campaign_id,omitempty"`
	AdvertisementIDs  []string `json:"advertisement_ids,omitempty"` // Rotation siblings, for prefetch.
	Trigger           string   `json:"trigger"`                     // "geofence" or "manual_override".
	Timestamp         string   `json:"timestamp"`
}

// DownloadVideoCommand is the payload of a download_video push.
type DownloadVideoCommand struct {
	Command         string `json:"command"` // Always CommandDownloadVideo.
	AdvertisementID string `json:"advertisement_id"`
	VideoFilename   string `json:"video_filename"`
	FileSize        int64  `json:"file_size"`
	ChunkSize       int64  `json:"chunk_size"`
	TotalChunks     int    `json:"total_chunks"`
	DownloadURL     string `json:"download_url"`
	Timestamp       string `json:"timestamp"`
}

// RevertCommand is the payload of a revert_to_local_playlist push, sent when
// the campaign a device locked onto is withdrawn.
type RevertCommand struct {
	CampaignID   string `json:"campaign_id"`
	DefaultVideo string `json:"default_video"` // Filename the device loops locally.
	Reason       string `json:"reason"`
	Timestamp    string `json:"timestamp"`
}

// PushResult partitions the targets of one push. The three sets are disjoint:
// a device is delivered, offline, or failed, never two of them.
type PushResult struct {
	Delivered []string `json:"delivered"`
	Offline   []string `json:"offline"`
	Failed    []string `json:"failed"`
}

// BatchPushItem is the per-advertisement outcome of a batch push.
type BatchPushItem struct {
	AdvertisementID string      `json:"advertisement_id"`
	Error           string      `json:"error,omitempty"` // Set when the ad itself was unusable.
	Result          *PushResult `json:"result,omitempty"`
}

// BatchPushResult summarizes a multi-ad, multi-device push.
type BatchPushResult struct {
	Items          []*BatchPushItem `json:"items"`
	TotalDelivered int              `json:"total_delivered"`
	TotalOffline   int              `json:"total_offline"`
	TotalFailed    int              `json:"total_failed"`
}

// PushUsecase is the admin-facing push dispatcher. Failures on one target
// never abort delivery to the rest.
type PushUsecase interface {
	// PushAd sends an immediate PLAY_VIDEO command to the given devices.
	PushAd(ctx context.Context, deviceIDs []string, advertisementID string) (*PushResult, error)

	// PushDownload sends a DOWNLOAD_VIDEO command so devices pre-fetch the
	// asset. A non-positive chunkSize selects the configured default.
	PushDownload(ctx context.Context, deviceIDs []string, advertisementID string, chunkSize int64) (*PushResult, error)

	// PushBatch fans PushAd out over several advertisements.
	PushBatch(ctx context.Context, deviceIDs []string, advertisementIDs []string) (*BatchPushResult, error)
}
