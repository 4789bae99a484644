package entity

import (
	"math"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Campaign status values.
const (
	CampaignStatusActive   = "active"
	CampaignStatusInactive = "inactive"
)

// Campaign play modes.
const (
	PlayModeRotation = "rotation" // Cycle through the ad list on successive matches.
	PlayModeSingle   = "single"   // Always play the first playable ad.
)

// metersPerDegreeLat is the approximate north-south span of one degree of
// latitude, good enough for geofence radii of a few kilometers.
const metersPerDegreeLat = 111320.0

// Campaign binds one or more advertisements to a geofenced trigger area with a
// priority and a set of target device groups.
type Campaign struct {
	ID               string      `json:"campaign_id"`
	Name             string      `json:"name"`
	AdvertisementIDs []string    `json:"advertisement_ids"` // Ordered ad list for rotation.
	AdvertisementID  string      `json:"advertisement_id,omitempty"` // Legacy single-ad field, kept for old records.
	Priority         int         `json:"priority"` // Higher wins when several campaigns match.
	TargetGroups     []string    `json:"target_groups"`
	GeoFence         orb.Polygon `json:"geo_fence"` // Trigger area in lon/lat order.
	CenterLon        *float64    `json:"center_longitude,omitempty"` // Set when the fence was derived from a circle.
	CenterLat        *float64    `json:"center_latitude,omitempty"`
	RadiusMeters     *float64    `json:"radius_meters,omitempty"`
	PlayMode         string      `json:"play_mode"`
	CurrentAdIndex   int         `json:"current_ad_index"` // Rotation cursor, always in [0, len(ad list)).
	Status           string      `json:"status"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// IsActive reports whether the campaign is eligible for matching.
func (c *Campaign) IsActive() bool {
	return c.Status == CampaignStatusActive
}

// AdList returns the ordered advertisement id list, falling back to the legacy
// single-ad field for records created before multi-ad rotation existed.
func (c *Campaign) AdList() []string {
	if len(c.AdvertisementIDs) > 0 {
		return c.AdvertisementIDs
	}
	if c.AdvertisementID != "" {
		return []string{c.AdvertisementID}
	}

	return nil
}

// Contains reports whether the given position falls inside the campaign's
// geofence polygon.
func (c *Campaign) Contains(longitude, latitude float64) bool {
	return planar.PolygonContains(c.GeoFence, orb.Point{longitude, latitude})
}

// CircleGeofence approximates a circle of radiusMeters around the given center
// as a closed regular N-gon, suitable for storage as a polygon geofence.
func CircleGeofence(centerLon, centerLat, radiusMeters float64, segments int) orb.Polygon {
	if segments < 3 {
		segments = 3
	}

	latDegrees := radiusMeters / metersPerDegreeLat
	lonDegrees := radiusMeters / (metersPerDegreeLat * math.Cos(centerLat*math.Pi/180))

	ring := make(orb.Ring, 0, segments+1)
	for i := 0; i < segments; i++ {
		angle := 2 * math.Pi * float64(i) / float64(segments)
		ring = append(ring, orb.Point{
			centerLon + lonDegrees*math.Cos(angle),
			centerLat + latDegrees*math.Sin(angle),
		})
	}
	// Close the ring explicitly.
	ring = append(ring, ring[0])

	return orb.Polygon{ring}
}
