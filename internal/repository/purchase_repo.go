package repository

import (
	"context"

	"github.com/Luis-Canales-R/sga-sistema-gestion-activos/internal/domain"

	"gorm.io/gorm"
)

type PurchaseRepository struct {
	db *gorm.DB
}

func NewPurchaseRepository(db *gorm.DB) *PurchaseRepository {
	return &PurchaseRepository{db: db}
}

func (r *PurchaseRepository) GetAll(ctx context.Context) ([]domain.Purchase, error) {
	var purchases []domain.Purchase

	err := r.db.WithContext(ctx).
		Preload("RequestedBy").
		Order("fecha_compra DESC").
		Find(&purchases).Error

	return purchases, err
}

func (r *PurchaseRepository) Create(ctx context.Context, purchase *domain.Purchase) error {
	return r.db.WithContext(ctx).Create(purchase).Error
}
