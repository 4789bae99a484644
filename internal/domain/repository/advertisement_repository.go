package repository

import (
	"context"

	"taxiads/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for advertisement persistence.
var (
	// ErrAdvertisementNotFound is returned when an advertisement is not found.
	ErrAdvertisementNotFound = errors.New("advertisement not found")
	// ErrDuplicateAdvertisement is returned when the advertisement id is already taken.
	ErrDuplicateAdvertisement = errors.New("advertisement already exists")
)

// AdvertisementFilter narrows advertisement listings.
type AdvertisementFilter struct {
	Status string // Empty matches all statuses.
	AdType string // Empty matches all types.
}

// AdvertisementRepository defines the interface for advertisement-related
// database operations.
type AdvertisementRepository interface {
	// CreateAdvertisement persists a new advertisement.
	CreateAdvertisement(ctx context.Context, ad *entity.Advertisement) error

	// FindAdvertisementByID retrieves an advertisement by id. When onlyActive
	// is set, inactive advertisements are treated as not found.
	FindAdvertisementByID(ctx context.Context, id string, onlyActive bool) (*entity.Advertisement, error)

	// ListAdvertisements retrieves all advertisements matching the filter.
	ListAdvertisements(ctx context.Context, filter AdvertisementFilter) ([]*entity.Advertisement, error)

	// UpdateAdvertisement persists changes to an existing advertisement.
	UpdateAdvertisement(ctx context.Context, ad *entity.Advertisement) error

	// DeleteAdvertisement removes an advertisement by id.
	DeleteAdvertisement(ctx context.Context, id string) error
}
