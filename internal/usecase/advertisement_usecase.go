package usecase

import (
	"context"

	"taxiads/internal/domain/entity"
	"taxiads/internal/domain/repository"
)

// UpdateAdvertisementInput partially updates an advertisement. Nil fields are
// left untouched.
type UpdateAdvertisementInput struct {
	Name            *string  `json:"name,omitempty"`
	AdType          *string  `json:"ad_type,omitempty"`
	Status          *string  `json:"status,omitempty"`
	DurationSeconds *int     `json:"duration_seconds,omitempty"`
	TriggerLon      *float64 `json:"trigger_longitude,omitempty"`
	TriggerLat      *float64 `json:"trigger_latitude,omitempty"`
	TriggerRadiusM  *float64 `json:"trigger_radius_m,omitempty"`
}

// AdvertisementUsecase manages uploaded advertisements. Creation happens
// through UploadUsecase; this covers the rest of the lifecycle.
type AdvertisementUsecase interface {
	GetAdvertisement(ctx context.Context, id string) (*entity.Advertisement, error)
	ListAdvertisements(ctx context.Context, filter repository.AdvertisementFilter) ([]*entity.Advertisement, error)
	UpdateAdvertisement(ctx context.Context, id string, input *UpdateAdvertisementInput) (*entity.Advertisement, error)

	// DeleteAdvertisement removes the advertisement, deletes its asset file
	// and prunes it from every campaign's rotation list. Campaigns left with
	// no ads are deleted.
	DeleteAdvertisement(ctx context.Context, id string) error
}
