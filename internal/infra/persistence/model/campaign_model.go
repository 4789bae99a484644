package model

import (
	"time"

	"gorm.io/datatypes"
)

// CampaignModel is the GORM-specific struct for the 'campaigns' table.
// The geofence is stored as a GeoJSON polygon in jsonb; geographic queries
// convert it through ST_GeomFromGeoJSON at query time.
type CampaignModel struct {
	ID               string         `gorm:"type:text;primary_key"`
	Name             string         `gorm:"type:text;not null"`
	AdvertisementIDs datatypes.JSON `gorm:"type:jsonb"`
	AdvertisementID  string         `gorm:"type:text;index"`
	Priority         int            `gorm:"not null;default:0;index"`
	TargetGroups     datatypes.JSON `gorm:"type:jsonb"`
	GeoFence         datatypes.JSON `gorm:"type:jsonb"`
	CenterLon        *float64       `gorm:"type:double precision"`
	CenterLat        *float64       `gorm:"type:double precision"`
	RadiusMeters     *float64       `gorm:"type:double precision"`
	PlayMode         string         `gorm:"type:text;not null;default:'rotation'"`
	CurrentAdIndex   int            `gorm:"not null;default:0"`
	Status           string         `gorm:"type:text;not null;default:'active';index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (CampaignModel) TableName() string {
	return "campaigns"
}
