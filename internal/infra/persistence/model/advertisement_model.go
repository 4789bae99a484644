package model

import (
	"time"
)

// AdvertisementModel is the GORM-specific struct for the 'advertisements' table.
// One row per uploaded video asset plus its optional trigger point.
type AdvertisementModel struct {
	ID              string `gorm:"type:text;primary_key"`
	Name            string `gorm:"type:text;not null"`
	VideoFilename   string `gorm:"type:text;not null;uniqueIndex"`
	FilePath        string `gorm:"type:text;not null"`
	FileSize        int64  `gorm:"not null;default:0"`
	DurationSeconds *int
	AdType          string   `gorm:"type:text;not null;default:'video';index"`
	Status          string   `gorm:"type:text;not null;default:'active';index"`
	TriggerLon      *float64 `gorm:"type:double precision"`
	TriggerLat      *float64 `gorm:"type:double precision"`
	TriggerRadiusM  *float64 `gorm:"type:double precision"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdvertisementModel) TableName() string {
	return "advertisements"
}
