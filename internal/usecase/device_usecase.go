package usecase

import (
	"context"

	"taxiads/internal/domain/entity"
	"taxiads/internal/domain/repository"
)

// CreateDeviceInput registers a new display device.
type CreateDeviceInput struct {
	ID          string   `json:"device_id" validate:"required"`
	DeviceType  string   `json:"device_type,omitempty"`
	Description string   `json:"description,omitempty"`
	Groups      []string `json:"groups,omitempty"`
}

// UpdateDeviceInput partially updates a device. Nil fields are left untouched.
type UpdateDeviceInput struct {
	DeviceType  *string   `json:"device_type,omitempty"`
	Description *string   `json:"description,omitempty"`
	Groups      *[]string `json:"groups,omitempty"`
	Status      *string   `json:"status,omitempty"`
}

// HeartbeatInput is the legacy HTTP decision query: a device reports its
// position over plain HTTP instead of the realtime channel.
type HeartbeatInput struct {
	DeviceID  string  `json:"device_id" validate:"required"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
}

// DeviceUsecase manages display devices.
type DeviceUsecase interface {
	CreateDevice(ctx context.Context, input *CreateDeviceInput) (*entity.Device, error)
	GetDevice(ctx context.Context, id string) (*entity.Device, error)
	ListDevices(ctx context.Context, filter repository.DeviceFilter) ([]*entity.Device, error)
	UpdateDevice(ctx context.Context, id string, input *UpdateDeviceInput) (*entity.Device, error)

	// DeleteDevice removes the device and clears any in-memory playback state
	// it held.
	DeleteDevice(ctx context.Context, id string) error

	// Heartbeat runs the decision engine for an HTTP-reported position and
	// returns the decision, nil when nothing matched.
	Heartbeat(ctx context.Context, input *HeartbeatInput) (*DecisionResult, error)
}
