package assets

import (
	"context"
	"fmt"
	"time"

	"github.com/Luis-Canales-R/sga-sistema-gestion-activos/internal/config"
	"github.com/Luis-Canales-R/sga-sistema-gestion-activos/internal/domain"
	"github.com/Luis-Canales-R/sga-sistema-gestion-activos/internal/pkg/qr"
	"github.com/Luis-Canales-R/sga-sistema-gestion-activos/internal/repository"
)

const dateLayout = "2006-01-02"

type Service struct {
	assets    *repository.AssetRepository
	movements *repository.MovementRepository
	cfg       *config.Config
}

func NewService(assets *repository.AssetRepository, movements *repository.MovementRepository, cfg *config.Config) *Service {
	return &Service{assets: assets, movements: movements, cfg: cfg}
}

// List builds the filtered, ordered, paginated page descriptor over the
// asset collection.
func (s *Service) List(ctx context.Context, p ListParams) (map[string]any, error) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 {
		p.PerPage = s.cfg.ItemsPerPage
	}
	if p.PerPage > s.cfg.MaxItemsPerPage {
		p.PerPage = s.cfg.MaxItemsPerPage
	}

	f := repository.AssetFilters{
		Search: p.Search,
		Limit:  p.PerPage,
		Offset: (p.Page - 1) * p.PerPage,
	}

	if p.Status != "" {
		status := domain.AssetStatus(p.Status)
		if !status.IsValid() {
			return nil, ErrInvalidStatus
		}
		f.Status = status
	}

	items, total, err := s.assets.List(ctx, f)
	if err != nil {
		return nil, err
	}

	pages := int((total + int64(p.PerPage) - 1) / int64(p.PerPage))

	dicts := make([]map[string]any, 0, len(items))
	for i := range items {
		dicts = append(dicts, items[i].Dict(false))
	}

	return map[string]any{
		"items":    dicts,
		"total":    total,
		"pages":    pages,
		"page":     p.Page,
		"per_page": p.PerPage,
		"has_prev": p.Page > 1,
		"has_next": p.Page < pages,
	}, nil
}

// Create validates and persists a new asset. The code is checked before the
// insert so a duplicate is reported as a conflict rather than a constraint
// violation, and the QR target URL is derived and stored at creation time.
func (s *Service) Create(ctx context.Context, req CreateAssetRequest) (*domain.Asset, error) {
	exists, err := s.assets.ExistsByCode(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrCodeExists
	}

	status := domain.StatusInWarehouse
	if req.Status != "" {
		status = domain.AssetStatus(req.Status)
		if !status.IsValid() {
			return nil, ErrInvalidStatus
		}
	}

	acquired, err := time.Parse(dateLayout, req.AcquisitionDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	asset := &domain.Asset{
		Code:             req.Code,
		Name:             req.Name,
		Description:      req.Description,
		Brand:            req.Brand,
		Model:            req.Model,
		SerialNumber:     req.SerialNumber,
		Status:           status,
		AcquisitionDate:  acquired,
		AcquisitionCost:  *req.AcquisitionCost,
		UsefulLifeMonths: 36,
		LocationID:       req.LocationID,
		AssignedUserID:   req.AssignedUserID,
		PurchaseID:       req.PurchaseID,
		QRURL:            s.LabelURL(req.Code),
	}

	if req.UsefulLifeMonths != nil {
		asset.UsefulLifeMonths = *req.UsefulLifeMonths
	}
	if req.ResidualValue != nil {
		asset.ResidualValue = *req.ResidualValue
	}

	if err := s.assets.Create(ctx, asset); err != nil {
		return nil, err
	}

	return s.assets.GetByIDExpanded(ctx, asset.ID)
}

// LabelURL derives the public URL encoded into an asset's QR label.
func (s *Service) LabelURL(code string) string {
	return fmt.Sprintf("%s/activo/%s", s.cfg.LabelBaseURL, code)
}

// QRPNG renders the asset's QR label. The stored URL wins; assets created
// before the column existed get it recomputed the same way.
func (s *Service) QRPNG(ctx context.Context, id int64) ([]byte, error) {
	asset, err := s.assets.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	url := asset.QRURL
	if url == "" {
		url = s.LabelURL(asset.Code)
	}

	return qr.PNG(url, s.cfg.QRBoxSize, s.cfg.QRBorder)
}

// GetByCode resolves the public/QR identifier for the per-asset view.
func (s *Service) GetByCode(ctx context.Context, code string) (*domain.Asset, error) {
	return s.assets.GetByCode(ctx, code)
}

// History lists the asset's field-change trail, newest first.
func (s *Service) History(ctx context.Context, assetID int64) ([]map[string]any, error) {
	if _, err := s.assets.GetByID(ctx, assetID); err != nil {
		return nil, err
	}

	movements, err := s.movements.ListByAsset(ctx, assetID)
	if err != nil {
		return nil, err
	}

	dicts := make([]map[string]any, 0, len(movements))
	for i := range movements {
		dicts = append(dicts, movements[i].Dict())
	}

	return dicts, nil
}
