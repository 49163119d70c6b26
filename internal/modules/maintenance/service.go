package maintenance

import (
	"context"
	"errors"
	"time"

	"github.com/Luis-Canales-R/sga-sistema-gestion-activos/internal/domain"
	"github.com/Luis-Canales-R/sga-sistema-gestion-activos/internal/repository"
)

const dateLayout = "2006-01-02"

var (
	ErrInvalidType = errors.New("tipo de mantenimiento inválido")
	ErrInvalidDate = errors.New("formato de fecha inválido, se espera YYYY-MM-DD")
)

type CreateRequest struct {
	Date          string   `json:"fecha_mantenimiento" binding:"required"`
	Type          string   `json:"tipo_mantenimiento" binding:"required"`
	Description   string   `json:"descripcion" binding:"required"`
	Cost          *float64 `json:"costo"`
	PerformedByID int64    `json:"realizado_por_id" binding:"required"`
}

type Service struct {
	maintenances *repository.MaintenanceRepository
	assets       *repository.AssetRepository
}

func NewService(maintenances *repository.MaintenanceRepository, assets *repository.AssetRepository) *Service {
	return &Service{maintenances: maintenances, assets: assets}
}

func (s *Service) ListByAsset(ctx context.Context, assetID int64) ([]map[string]any, error) {
	if _, err := s.assets.GetByID(ctx, assetID); err != nil {
		return nil, err
	}

	maintenances, err := s.maintenances.ListByAsset(ctx, assetID)
	if err != nil {
		return nil, err
	}

	dicts := make([]map[string]any, 0, len(maintenances))
	for i := range maintenances {
		dicts = append(dicts, maintenances[i].Dict())
	}

	return dicts, nil
}

// Record validates and stores one service event against an asset.
func (s *Service) Record(ctx context.Context, assetID int64, req CreateRequest) (*domain.Maintenance, error) {
	if _, err := s.assets.GetByID(ctx, assetID); err != nil {
		return nil, err
	}

	mType := domain.MaintenanceType(req.Type)
	if !mType.IsValid() {
		return nil, ErrInvalidType
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	m := &domain.Maintenance{
		AssetID:       assetID,
		Date:          date,
		Type:          mType,
		Description:   req.Description,
		PerformedByID: req.PerformedByID,
	}
	if req.Cost != nil {
		m.Cost = *req.Cost
	}

	if err := s.maintenances.Create(ctx, m); err != nil {
		return nil, err
	}

	return m, nil
}
