package repository

import (
	"context"

	"github.com/Luis-Canales-R/sga-sistema-gestion-activos/internal/domain"

	"gorm.io/gorm"
)

type MaintenanceRepository struct {
	db *gorm.DB
}

func NewMaintenanceRepository(db *gorm.DB) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

func (r *MaintenanceRepository) ListByAsset(ctx context.Context, assetID int64) ([]domain.Maintenance, error) {
	var maintenances []domain.Maintenance

	err := r.db.WithContext(ctx).
		Preload("PerformedBy").
		Where("activo_id = ?", assetID).
		Order("fecha_mantenimiento DESC").
		Find(&maintenances).Error

	return maintenances, err
}

func (r *MaintenanceRepository) Create(ctx context.Context, m *domain.Maintenance) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(m).Error
	})
}
