package repository

import (
	"context"

	"github.com/Luis-Canales-R/sga-sistema-gestion-activos/internal/domain"

	"gorm.io/gorm"
)

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) GetAll(ctx context.Context) ([]domain.Audit, error) {
	var audits []domain.Audit

	err := r.db.WithContext(ctx).
		Preload("Location").
		Preload("Auditor").
		Order("fecha_inicio DESC").
		Find(&audits).Error

	return audits, err
}

func (r *AuditRepository) GetByID(ctx context.Context, id int64, withDetails bool) (*domain.Audit, error) {
	var audit domain.Audit

	q := r.db.WithContext(ctx).
		Preload("Location").
		Preload("Auditor")

	if withDetails {
		q = q.Preload("Details").Preload("Details.Asset")
	}

	if err := q.First(&audit, id).Error; err != nil {
		return nil, err
	}

	return &audit, nil
}

func (r *AuditRepository) Create(ctx context.Context, audit *domain.Audit) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(audit).Error
	})
}

// AddDetail records one scan outcome and, when the scan confirmed a known
// asset, stamps that asset's last-audit fields in the same transaction.
func (r *AuditRepository) AddDetail(ctx context.Context, detail *domain.AuditDetail, stamp *domain.Asset) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(detail).Error; err != nil {
			return err
		}

		if stamp != nil {
			err := tx.Model(stamp).
				Select("ultima_auditoria_por_id", "ultima_auditoria_fecha").
				Updates(stamp).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *AuditRepository) Update(ctx context.Context, audit *domain.Audit) error {
	return r.db.WithContext(ctx).Save(audit).Error
}

// CountInProgress feeds the dashboard's pending-audits counter.
func (r *AuditRepository) CountInProgress(ctx context.Context) (int64, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&domain.Audit{}).
		Where("status = ?", domain.AuditInProgress).
		Count(&count).Error

	return count, err
}
