package postgres

import (
	"context"

	"taxiads/internal/domain/entity"
	domainerrors "taxiads/internal/domain/errors"
	"taxiads/internal/domain/repository"
	"taxiads/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// advertisementRepository implements the repository.AdvertisementRepository interface.
type advertisementRepository struct {
	db *gorm.DB
}

// NewAdvertisementRepository is the constructor for advertisementRepository.
func NewAdvertisementRepository(db *gorm.DB) repository.AdvertisementRepository {
	return &advertisementRepository{
		db: db,
	}
}

// CreateAdvertisement persists a new advertisement.
func (repo *advertisementRepository) CreateAdvertisement(ctx context.Context, ad *entity.Advertisement) error {
	adM := fromAdvertisementDomain(ad)

	if err := repo.db.WithContext(ctx).Create(adM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateAdvertisement
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required advertisement information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create advertisement")
	}

	ad.CreatedAt = adM.CreatedAt
	ad.UpdatedAt = adM.UpdatedAt

	return nil
}

// FindAdvertisementByID retrieves an advertisement by id.
func (repo *advertisementRepository) FindAdvertisementByID(ctx context.Context, id string, onlyActive bool) (*entity.Advertisement, error) {
	var adM model.AdvertisementModel

	query := repo.db.WithContext(ctx).Where("id = ?", id)
	if onlyActive {
		query = query.Where("status = ?", entity.AdvertisementStatusActive)
	}

	if err := query.First(&adM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdvertisementNotFound
		}

		return nil, errors.Wrap(err, "failed to find advertisement by ID")
	}

	return toAdvertisementDomain(&adM), nil
}

// ListAdvertisements retrieves all advertisements matching the filter.
func (repo *advertisementRepository) ListAdvertisements(ctx context.Context, filter repository.AdvertisementFilter) ([]*entity.Advertisement, error) {
	var adModels []*model.AdvertisementModel

	query := repo.db.WithContext(ctx)
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.AdType != "" {
		query = query.Where("ad_type = ?", filter.AdType)
	}

	if err := query.Order("created_at DESC").Find(&adModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list advertisements")
	}

	ads := make([]*entity.Advertisement, 0, len(adModels))
	for _, adM := range adModels {
		ads = append(ads, toAdvertisementDomain(adM))
	}

	return ads, nil
}

// UpdateAdvertisement persists changes to an existing advertisement.
func (repo *advertisementRepository) UpdateAdvertisement(ctx context.Context, ad *entity.Advertisement) error {
	adM := fromAdvertisementDomain(ad)

	result := repo.db.WithContext(ctx).
		Model(&model.AdvertisementModel{}).
		Where("id = ?", ad.ID).
		Updates(map[string]any{
			"name":             adM.Name,
			"video_filename":   adM.VideoFilename,
			"file_path":        adM.FilePath,
			"file_size":        adM.FileSize,
			"duration_seconds": adM.DurationSeconds,
			"ad_type":          adM.AdType,
			"status":           adM.Status,
			"trigger_lon":      adM.TriggerLon,
			"trigger_lat":      adM.TriggerLat,
			"trigger_radius_m": adM.TriggerRadiusM,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update advertisement")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAdvertisementNotFound
	}

	return nil
}

// DeleteAdvertisement removes an advertisement by id.
func (repo *advertisementRepository) DeleteAdvertisement(ctx context.Context, id string) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AdvertisementModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete advertisement")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAdvertisementNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toAdvertisementDomain converts a GORM AdvertisementModel to a domain Advertisement entity.
func toAdvertisementDomain(data *model.AdvertisementModel) *entity.Advertisement {
	if data == nil {
		return nil
	}

	return &entity.Advertisement{
		ID:              data.ID,
		Name:            data.Name,
		VideoFilename:   data.VideoFilename,
		FilePath:        data.FilePath,
		FileSize:        data.FileSize,
		DurationSeconds: data.DurationSeconds,
		AdType:          data.AdType,
		Status:          data.Status,
		TriggerLon:      data.TriggerLon,
		TriggerLat:      data.TriggerLat,
		TriggerRadiusM:  data.TriggerRadiusM,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromAdvertisementDomain converts a domain Advertisement entity to a GORM AdvertisementModel.
func fromAdvertisementDomain(data *entity.Advertisement) *model.AdvertisementModel {
	if data == nil {
		return nil
	}

	return &model.AdvertisementModel{
		ID:              data.ID,
		Name:            data.Name,
		VideoFilename:   data.VideoFilename,
		FilePath:        data.FilePath,
		FileSize:        data.FileSize,
		DurationSeconds: data.DurationSeconds,
		AdType:          data.AdType,
		Status:          data.Status,
		TriggerLon:      data.TriggerLon,
		TriggerLat:      data.TriggerLat,
		TriggerRadiusM:  data.TriggerRadiusM,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
