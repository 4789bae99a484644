// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"taxiads/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when trying to create a device that already exists.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceFilter narrows device listings for the admin panel.
type DeviceFilter struct {
	Status     string // Empty matches all statuses.
	DeviceType string // Empty matches all device types.
}

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// CreateDevice persists a new display device.
	CreateDevice(ctx context.Context, device *entity.Device) error

	// FindDeviceByID retrieves a device by its unique ID.
	FindDeviceByID(ctx context.Context, id string) (*entity.Device, error)

	// ListDevices retrieves all devices matching the filter.
	ListDevices(ctx context.Context, filter DeviceFilter) ([]*entity.Device, error)

	// UpdateDeviceLocation stores the device's last reported position.
	UpdateDeviceLocation(ctx context.Context, id string, longitude, latitude float64) error

	// UpdateDevice persists changes to an existing device.
	UpdateDevice(ctx context.Context, device *entity.Device) error

	// DeleteDevice removes a device by its ID.
	DeleteDevice(ctx context.Context, id string) error
}
