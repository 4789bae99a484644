// Package model contains the GORM-specific structs mapped to PostgreSQL tables.
package model

import (
	"time"

	"gorm.io/datatypes"
)

// DeviceModel is the GORM-specific struct for the 'devices' table.
// Device IDs are operator-assigned natural keys (e.g. "TAXI-0042"), not UUIDs.
type DeviceModel struct {
	ID            string         `gorm:"type:text;primary_key"`
	DeviceType    string         `gorm:"type:text;not null;default:'taxi';index"`
	Description   string         `gorm:"type:text"`
	Groups        datatypes.JSON `gorm:"type:jsonb"`
	LastLongitude float64        `gorm:"type:double precision;not null;default:0"`
	LastLatitude  float64        `gorm:"type:double precision;not null;default:0"`
	Status        string         `gorm:"type:text;not null;default:'active';index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}
