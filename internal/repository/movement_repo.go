package repository

import (
	"context"

	"github.com/Luis-Canales-R/sga-sistema-gestion-activos/internal/domain"

	"gorm.io/gorm"
)

// MovementRepository reads the asset field-change trail. Nothing in the API
// writes these rows; Create exists for the seed and external importers.
type MovementRepository struct {
	db *gorm.DB
}

func NewMovementRepository(db *gorm.DB) *MovementRepository {
	return &MovementRepository{db: db}
}

func (r *MovementRepository) ListByAsset(ctx context.Context, assetID int64) ([]domain.Movement, error) {
	var movements []domain.Movement

	err := r.db.WithContext(ctx).
		Preload("User").
		Where("activo_id = ?", assetID).
		Order("fecha_cambio DESC").
		Find(&movements).Error

	return movements, err
}

func (r *MovementRepository) Create(ctx context.Context, m *domain.Movement) error {
	return r.db.WithContext(ctx).Create(m).Error
}
