package database

import (
	"github.com/Luis-Canales-R/sga-sistema-gestion-activos/internal/domain"

	"gorm.io/gorm"
)

// Migrate creates or updates the full schema. Order matters for the
// foreign keys: referenced tables first.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Location{},
		&domain.Purchase{},
		&domain.Asset{},
		&domain.Maintenance{},
		&domain.Movement{},
		&domain.Audit{},
		&domain.AuditDetail{},
	)
}
