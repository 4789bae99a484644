package entity

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCampaign_Contains(t *testing.T) {
	campaign := &Campaign{
		ID: "camp-1",
		GeoFence: orb.Polygon{orb.Ring{
			{121.50, 25.00}, {121.52, 25.00}, {121.52, 25.02}, {121.50, 25.02}, {121.50, 25.00},
		}},
	}

	assert.True(t, campaign.Contains(121.51, 25.01))
	assert.False(t, campaign.Contains(121.53, 25.01))
	assert.False(t, campaign.Contains(121.51, 25.03))
}

func TestCampaign_AdList_FallsBackToLegacyField(t *testing.T) {
	multi := &Campaign{AdvertisementIDs: []string{"a", "b"}, AdvertisementID: "legacy"}
	assert.Equal(t, []string{"a", "b"}, multi.AdList())

	legacy := &Campaign{AdvertisementID: "legacy"}
	assert.Equal(t, []string{"legacy"}, legacy.AdList())

	empty := &Campaign{}
	assert.Nil(t, empty.AdList())
}

func TestCircleGeofence(t *testing.T) {
	polygon := CircleGeofence(121.5, 25.04, 500, 16)
	require.Len(t, polygon, 1)

	ring := polygon[0]
	// 16 segments plus the explicit closing point.
	require.Len(t, ring, 17)
	assert.Equal(t, ring[0], ring[len(ring)-1])

	campaign := &Campaign{GeoFence: polygon}
	assert.True(t, campaign.Contains(121.5, 25.04))
	// Well inside the radius.
	assert.True(t, campaign.Contains(121.5, 25.042))
	// Roughly 1 km north of the center, outside a 500 m circle.
	assert.False(t, campaign.Contains(121.5, 25.049))
}

func TestCircleGeofence_MinimumSegments(t *testing.T) {
	polygon := CircleGeofence(0, 0, 100, 1)
	require.Len(t, polygon, 1)
	assert.Len(t, polygon[0], 4)
}

func TestDevice_InGroup(t *testing.T) {
	device := &Device{ID: "taxi-001", Groups: []string{"downtown", "night-shift"}}

	assert.True(t, device.InGroup([]string{"downtown"}))
	assert.True(t, device.InGroup([]string{"airport", "night-shift"}))
	assert.False(t, device.InGroup([]string{"airport"}))
	assert.False(t, device.InGroup(nil))

	ungrouped := &Device{ID: "taxi-002"}
	assert.False(t, ungrouped.InGroup([]string{"downtown"}))
}

func TestUploadSession_Progress(t *testing.T) {
	session := &UploadSession{
		TotalChunks: 4,
		Received:    map[int]struct{}{0: {}, 2: {}},
	}

	assert.Equal(t, 2, session.ReceivedCount())
	assert.InDelta(t, 50.0, session.Progress(), 0.001)
	assert.False(t, session.IsComplete())
	assert.Equal(t, []int{1, 3}, session.MissingChunks())

	session.Received[1] = struct{}{}
	session.Received[3] = struct{}{}
	assert.True(t, session.IsComplete())
	assert.Empty(t, session.MissingChunks())
}
