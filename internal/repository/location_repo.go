package repository

import (
	"context"

	"github.com/Luis-Canales-R/sga-sistema-gestion-activos/internal/domain"

	"gorm.io/gorm"
)

type LocationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

func (r *LocationRepository) GetAll(ctx context.Context) ([]domain.Location, error) {
	var locations []domain.Location

	err := r.db.WithContext(ctx).
		Preload("Parent").
		Order("nombre").
		Find(&locations).Error

	return locations, err
}

func (r *LocationRepository) GetByID(ctx context.Context, id int64) (*domain.Location, error) {
	var location domain.Location

	err := r.db.WithContext(ctx).
		Preload("Parent").
		First(&location, id).Error
	if err != nil {
		return nil, err
	}

	return &location, nil
}

func (r *LocationRepository) Create(ctx context.Context, location *domain.Location) error {
	return r.db.WithContext(ctx).Create(location).Error
}
