package impl

import (
	"context"
	"log/slog"
	"time"

	"taxiads/internal/domain/entity"
	"taxiads/internal/domain/repository"
	"taxiads/internal/domain/service"
	"taxiads/internal/usecase"
)

type deviceService struct {
	deviceRepo repository.DeviceRepository
	decision   usecase.DecisionUsecase
	registry   service.SessionRegistry
	sender     service.PushSender
	playback   service.PlaybackTracker
	logger     *slog.Logger
}

// NewDeviceService creates the device management service.
func NewDeviceService(
	deviceRepo repository.DeviceRepository,
	decision usecase.DecisionUsecase,
	registry service.SessionRegistry,
	sender service.PushSender,
	playback service.PlaybackTracker,
	logger *slog.Logger,
) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
		decision:   decision,
		registry:   registry,
		sender:     sender,
		playback:   playback,
		logger:     logger,
	}
}

// CreateDevice registers a new display device.
func (s *deviceService) CreateDevice(ctx context.Context, input *usecase.CreateDeviceInput) (*entity.Device, error) {
	deviceType := input.DeviceType
	if deviceType == "" {
		deviceType = "taxi"
	}

	device := &entity.Device{
		ID:          input.ID,
		DeviceType:  deviceType,
		Description: input.Description,
		Groups:      input.Groups,
		Status:      entity.DeviceStatusActive,
	}
	if err := s.deviceRepo.CreateDevice(ctx, device); err != nil {
		return nil, err
	}

	return device, nil
}

// GetDevice retrieves a device by id.
func (s *deviceService) GetDevice(ctx context.Context, id string) (*entity.Device, error) {
	return s.deviceRepo.FindDeviceByID(ctx, id)
}

// ListDevices retrieves all devices matching the filter.
func (s *deviceService) ListDevices(ctx context.Context, filter repository.DeviceFilter) ([]*entity.Device, error) {
	return s.deviceRepo.ListDevices(ctx, filter)
}

// UpdateDevice partially updates a device.
func (s *deviceService) UpdateDevice(ctx context.Context, id string, input *usecase.UpdateDeviceInput) (*entity.Device, error) {
	device, err := s.deviceRepo.FindDeviceByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.DeviceType != nil {
		device.DeviceType = *input.DeviceType
	}
	if input.Description != nil {
		device.Description = *input.Description
	}
	if input.Groups != nil {
		device.Groups = *input.Groups
	}
	if input.Status != nil {
		device.Status = *input.Status
	}

	if err := s.deviceRepo.UpdateDevice(ctx, device); err != nil {
		return nil, err
	}

	return device, nil
}

// DeleteDevice removes the device, disconnects its live session and clears
// any playback state it held.
func (s *deviceService) DeleteDevice(ctx context.Context, id string) error {
	if err := s.deviceRepo.DeleteDevice(ctx, id); err != nil {
		return err
	}

	if connID, ok := s.registry.Resolve(id); ok {
		payload := map[string]string{
			"reason":    "device_deleted",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		}
		if err := s.sender.Send(connID, usecase.EventForceDisconnect, payload); err != nil {
			s.logger.Warn("failed to notify deleted device",
				slog.String("device_id", id),
				slog.String("error", err.Error()),
			)
		}
		// Drop the binding now rather than waiting for the socket to close,
		// so a push can never reach a deleted device.
		s.registry.Unregister(connID)
	}
	s.playback.Clear(id)

	return nil
}

// Heartbeat runs the decision engine for an HTTP-reported position.
func (s *deviceService) Heartbeat(ctx context.Context, input *usecase.HeartbeatInput) (*usecase.DecisionResult, error) {
	return s.decision.DecideForLocation(ctx, &usecase.LocationReport{
		DeviceID:  input.DeviceID,
		Longitude: input.Longitude,
		Latitude:  input.Latitude,
	})
}
