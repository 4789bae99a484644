package entity

import (
	"sort"
	"time"
)

// UploadStatus describes the lifecycle of a chunked upload session.
type UploadStatus string

// Upload session states.
const (
	UploadStatusReceiving  UploadStatus = "receiving"
	UploadStatusCompleting UploadStatus = "completing"
	UploadStatusComplete   UploadStatus = "complete"
	UploadStatusFailed     UploadStatus = "failed"
	UploadStatusCancelled  UploadStatus = "cancelled"
)

// UploadSession is the server-side bookkeeping for one in-progress chunked
// upload, keyed by a unique token. Chunk indices may arrive in any order; the
// received set is what decides completeness, never arrival order.
type UploadSession struct {
	Token           string           `json:"upload_id"`        // Unique session token handed to the client.
	AdvertisementID string           `json:"advertisement_id"` // Target advertisement id, unique at init time.
	Name            string           `json:"name"`             // Display name for the resulting advertisement.
	Filename        string           `json:"filename"`         // Client-supplied filename (extension validated).
	TotalSize       int64            `json:"total_size"`       // Expected merged size in bytes.
	ChunkSize       int64            `json:"chunk_size"`       // Canonical chunk size negotiated at init.
	TotalChunks     int              `json:"total_chunks"`     // ceil(TotalSize/ChunkSize), minimum 1.
	AdType          string           `json:"ad_type,omitempty"`
	TriggerLon      *float64         `json:"trigger_longitude,omitempty"` // Optional trigger point carried to completion.
	TriggerLat      *float64         `json:"trigger_latitude,omitempty"`
	TriggerRadiusM  *float64         `json:"trigger_radius_m,omitempty"`
	Received        map[int]struct{} `json:"-"` // Set of received chunk indices.
	Status          UploadStatus     `json:"status"`
	CreatedAt       time.Time        `json:"created_at"`
	LastActivityAt  time.Time        `json:"last_activity_at"` // Drives inactivity garbage collection.
}

// ReceivedCount returns how many distinct chunk indices have been stored.
func (s *UploadSession) ReceivedCount() int {
	return len(s.Received)
}

// Progress returns completion as a percentage in [0, 100].
func (s *UploadSession) Progress() float64 {
	if s.TotalChunks == 0 {
		return 0
	}

	return float64(len(s.Received)) / float64(s.TotalChunks) * 100
}

// IsComplete reports whether every index in [0, TotalChunks) has been received.
func (s *UploadSession) IsComplete() bool {
	return len(s.Received) == s.TotalChunks
}

// MissingChunks returns the sorted list of indices still outstanding.
func (s *UploadSession) MissingChunks() []int {
	missing := make([]int, 0, s.TotalChunks-len(s.Received))
	for i := 0; i < s.TotalChunks; i++ {
		if _, ok := s.Received[i]; !ok {
			missing = append(missing, i)
		}
	}
	sort.Ints(missing)

	return missing
}
