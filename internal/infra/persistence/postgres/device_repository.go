// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"
	"time"

	"taxiads/internal/domain/entity"
	domainerrors "taxiads/internal/domain/errors"
	"taxiads/internal/domain/repository"
	"taxiads/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// CreateDevice persists a new display device.
func (repo *deviceRepository) CreateDevice(ctx context.Context, device *entity.Device) error {
	deviceM, err := fromDeviceDomain(device)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(deviceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDevice
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required device information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create device")
	}

	// Update the entity with generated values
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// FindDeviceByID retrieves a device by its unique ID.
func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id string) (*entity.Device, error) {
	var deviceM model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	return toDeviceDomain(&deviceM)
}

// ListDevices retrieves all devices matching the filter.
func (repo *deviceRepository) ListDevices(ctx context.Context, filter repository.DeviceFilter) ([]*entity.Device, error) {
	var deviceModels []*model.DeviceModel

	query := repo.db.WithContext(ctx)
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.DeviceType != "" {
		query = query.Where("device_type = ?", filter.DeviceType)
	}

	if err := query.Order("id ASC").Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	devices := make([]*entity.Device, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		device, err := toDeviceDomain(deviceM)
		if err != nil {
			return nil, err
		}
		devices = append(devices, device)
	}

	return devices, nil
}

// UpdateDeviceLocation stores the device's last reported position.
func (repo *deviceRepository) UpdateDeviceLocation(ctx context.Context, id string, longitude, latitude float64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"last_longitude": longitude,
			"last_latitude":  latitude,
			"updated_at":     time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update device location")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// UpdateDevice persists changes to an existing device.
func (repo *deviceRepository) UpdateDevice(ctx context.Context, device *entity.Device) error {
	deviceM, err := fromDeviceDomain(device)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Where("id = ?", device.ID).
		Updates(map[string]any{
			"device_type": deviceM.DeviceType,
			"description": deviceM.Description,
			"groups":      deviceM.Groups,
			"status":      deviceM.Status,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// DeleteDevice removes a device by its ID.
func (repo *deviceRepository) DeleteDevice(ctx context.Context, id string) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.DeviceModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM DeviceModel to a domain Device entity.
func toDeviceDomain(data *model.DeviceModel) (*entity.Device, error) {
	if data == nil {
		return nil, nil
	}

	var groups []string
	if len(data.Groups) > 0 {
		if err := json.Unmarshal(data.Groups, &groups); err != nil {
			return nil, errors.Wrap(err, "failed to decode device groups")
		}
	}

	return &entity.Device{
		ID:            data.ID,
		DeviceType:    data.DeviceType,
		Description:   data.Description,
		Groups:        groups,
		LastLongitude: data.LastLongitude,
		LastLatitude:  data.LastLatitude,
		Status:        data.Status,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}, nil
}

// fromDeviceDomain converts a domain Device entity to a GORM DeviceModel.
func fromDeviceDomain(data *entity.Device) (*model.DeviceModel, error) {
	if data == nil {
		return nil, nil
	}

	groups, err := json.Marshal(data.Groups)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode device groups")
	}

	return &model.DeviceModel{
		ID:            data.ID,
		DeviceType:    data.DeviceType,
		Description:   data.Description,
		Groups:        groups,
		LastLongitude: data.LastLongitude,
		LastLatitude:  data.LastLatitude,
		Status:        data.Status,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}, nil
}
