package postgres

import (
	"context"
	"encoding/json"

	"taxiads/internal/domain/entity"
	domainerrors "taxiads/internal/domain/errors"
	"taxiads/internal/domain/repository"
	"taxiads/internal/infra/persistence/model"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// campaignRepository implements the repository.CampaignRepository interface.
type campaignRepository struct {
	db *gorm.DB
}

// NewCampaignRepository is the constructor for campaignRepository.
func NewCampaignRepository(db *gorm.DB) repository.CampaignRepository {
	return &campaignRepository{
		db: db,
	}
}

// CreateCampaign persists a new campaign.
func (repo *campaignRepository) CreateCampaign(ctx context.Context, campaign *entity.Campaign) error {
	campaignM, err := fromCampaignDomain(campaign)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(campaignM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCampaign
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required campaign information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create campaign")
	}

	campaign.CreatedAt = campaignM.CreatedAt
	campaign.UpdatedAt = campaignM.UpdatedAt

	return nil
}

// FindCampaignByID retrieves a campaign by id.
func (repo *campaignRepository) FindCampaignByID(ctx context.Context, id string) (*entity.Campaign, error) {
	var campaignM model.CampaignModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&campaignM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCampaignNotFound
		}

		return nil, errors.Wrap(err, "failed to find campaign by ID")
	}

	return toCampaignDomain(&campaignM)
}

// ListCampaigns retrieves all campaigns matching the filter.
func (repo *campaignRepository) ListCampaigns(ctx context.Context, filter repository.CampaignFilter) ([]*entity.Campaign, error) {
	var campaignModels []*model.CampaignModel

	query := repo.db.WithContext(ctx)
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	if err := query.Order("priority DESC, id ASC").Find(&campaignModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list campaigns")
	}

	return toCampaignDomainSlice(campaignModels)
}

// FindCampaignsIntersecting performs a PostGIS geographic query to find all
// campaigns whose geofence polygon contains the reported position.
func (repo *campaignRepository) FindCampaignsIntersecting(ctx context.Context, longitude, latitude float64, onlyActive bool) ([]*entity.Campaign, error) {
	var campaignModels []*model.CampaignModel

	// The geofence is stored as GeoJSON in jsonb; ST_GeomFromGeoJSON converts it
	// at query time so ST_Intersects runs inside the database rather than
	// pulling every campaign into the process.
	query := `
		SELECT c.*
		FROM campaigns c
		WHERE c.geo_fence IS NOT NULL
		  AND (? = false OR c.status = 'active')
		  AND ST_Intersects(
		    ST_SetSRID(ST_GeomFromGeoJSON(c.geo_fence::text), 4326),
		    ST_SetSRID(ST_MakePoint(?, ?), 4326)
		  )
		ORDER BY c.priority DESC, c.id ASC
	`

	if err := repo.db.WithContext(ctx).
		Raw(query, onlyActive, longitude, latitude).
		Scan(&campaignModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find campaigns intersecting position")
	}

	return toCampaignDomainSlice(campaignModels)
}

// FindCampaignsByAdvertisement retrieves all campaigns referencing the given
// advertisement, either in the rotation list or the legacy single-ad field.
func (repo *campaignRepository) FindCampaignsByAdvertisement(ctx context.Context, advertisementID string) ([]*entity.Campaign, error) {
	var campaignModels []*model.CampaignModel

	if err := repo.db.WithContext(ctx).
		Where("advertisement_id = ? OR advertisement_ids @> to_jsonb(?::text)", advertisementID, advertisementID).
		Order("id ASC").
		Find(&campaignModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find campaigns by advertisement")
	}

	return toCampaignDomainSlice(campaignModels)
}

// UpdateCampaign persists changes to an existing campaign.
func (repo *campaignRepository) UpdateCampaign(ctx context.Context, campaign *entity.Campaign) error {
	campaignM, err := fromCampaignDomain(campaign)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.CampaignModel{}).
		Where("id = ?", campaign.ID).
		Updates(map[string]any{
			"name":              campaignM.Name,
			"advertisement_ids": campaignM.AdvertisementIDs,
			"advertisement_id":  campaignM.AdvertisementID,
			"priority":          campaignM.Priority,
			"target_groups":     campaignM.TargetGroups,
			"geo_fence":         campaignM.GeoFence,
			"center_lon":        campaignM.CenterLon,
			"center_lat":        campaignM.CenterLat,
			"radius_meters":     campaignM.RadiusMeters,
			"play_mode":         campaignM.PlayMode,
			"current_ad_index":  campaignM.CurrentAdIndex,
			"status":            campaignM.Status,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update campaign")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCampaignNotFound
	}

	return nil
}

// SetRotationIndex persists the campaign's rotation cursor.
func (repo *campaignRepository) SetRotationIndex(ctx context.Context, id string, index int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CampaignModel{}).
		Where("id = ?", id).
		Update("current_ad_index", index)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set rotation index")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCampaignNotFound
	}

	return nil
}

// DeleteCampaign removes a campaign by id.
func (repo *campaignRepository) DeleteCampaign(ctx context.Context, id string) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CampaignModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete campaign")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCampaignNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toCampaignDomainSlice(campaignModels []*model.CampaignModel) ([]*entity.Campaign, error) {
	campaigns := make([]*entity.Campaign, 0, len(campaignModels))
	for _, campaignM := range campaignModels {
		campaign, err := toCampaignDomain(campaignM)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, campaign)
	}

	return campaigns, nil
}

// toCampaignDomain converts a GORM CampaignModel to a domain Campaign entity.
func toCampaignDomain(data *model.CampaignModel) (*entity.Campaign, error) {
	if data == nil {
		return nil, nil
	}

	var adIDs []string
	if len(data.AdvertisementIDs) > 0 {
		if err := json.Unmarshal(data.AdvertisementIDs, &adIDs); err != nil {
			return nil, errors.Wrap(err, "failed to decode campaign advertisement ids")
		}
	}

	var targetGroups []string
	if len(data.TargetGroups) > 0 {
		if err := json.Unmarshal(data.TargetGroups, &targetGroups); err != nil {
			return nil, errors.Wrap(err, "failed to decode campaign target groups")
		}
	}

	var geoFence orb.Polygon
	if len(data.GeoFence) > 0 {
		geometry, err := geojson.UnmarshalGeometry(data.GeoFence)
		if err != nil {
			return nil, errors.Wrap(err, "failed to decode campaign geofence")
		}
		polygon, ok := geometry.Geometry().(orb.Polygon)
		if !ok {
			return nil, errors.Errorf("campaign %s geofence is not a polygon", data.ID)
		}
		geoFence = polygon
	}

	return &entity.Campaign{
		ID:               data.ID,
		Name:             data.Name,
		AdvertisementIDs: adIDs,
		AdvertisementID:  data.AdvertisementID,
		Priority:         data.Priority,
		TargetGroups:     targetGroups,
		GeoFence:         geoFence,
		CenterLon:        data.CenterLon,
		CenterLat:        data.CenterLat,
		RadiusMeters:     data.RadiusMeters,
		PlayMode:         data.PlayMode,
		CurrentAdIndex:   data.CurrentAdIndex,
		Status:           data.Status,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}, nil
}

// fromCampaignDomain converts a domain Campaign entity to a GORM CampaignModel.
func fromCampaignDomain(data *entity.Campaign) (*model.CampaignModel, error) {
	if data == nil {
		return nil, nil
	}

	adIDs, err := json.Marshal(data.AdvertisementIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode campaign advertisement ids")
	}

	targetGroups, err := json.Marshal(data.TargetGroups)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode campaign target groups")
	}

	var geoFence []byte
	if len(data.GeoFence) > 0 {
		geoFence, err = geojson.NewGeometry(data.GeoFence).MarshalJSON()
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode campaign geofence")
		}
	}

	return &model.CampaignModel{
		ID:               data.ID,
		Name:             data.Name,
		AdvertisementIDs: adIDs,
		AdvertisementID:  data.AdvertisementID,
		Priority:         data.Priority,
		TargetGroups:     targetGroups,
		GeoFence:         geoFence,
		CenterLon:        data.CenterLon,
		CenterLat:        data.CenterLat,
		RadiusMeters:     data.RadiusMeters,
		PlayMode:         data.PlayMode,
		CurrentAdIndex:   data.CurrentAdIndex,
		Status:           data.Status,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}, nil
}
