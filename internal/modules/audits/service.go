package audits

import (
	"context"
	"errors"
	"time"

	"github.com/Luis-Canales-R/sga-sistema-gestion-activos/internal/domain"
	"github.com/Luis-Canales-R/sga-sistema-gestion-activos/internal/repository"
)

var (
	ErrInvalidResult = errors.New("resultado de escaneo inválido")
	ErrInvalidClose  = errors.New("status de cierre inválido")
	ErrAuditClosed   = errors.New("la auditoría ya fue cerrada")
)

type OpenRequest struct {
	LocationID int64  `json:"ubicacion_auditada_id" binding:"required"`
	AuditorID  int64  `json:"auditor_id" binding:"required"`
	Summary    string `json:"resumen"`
}

type ScanRequest struct {
	AssetID int64  `json:"activo_id" binding:"required"`
	Result  string `json:"resultado" binding:"required"`
	Note    string `json:"nota"`
}

type CloseRequest struct {
	Status  string `json:"status"`
	Summary string `json:"resumen"`
}

type Service struct {
	audits    *repository.AuditRepository
	assets    *repository.AssetRepository
	locations *repository.LocationRepository
}

func NewService(audits *repository.AuditRepository, assets *repository.AssetRepository, locations *repository.LocationRepository) *Service {
	return &Service{audits: audits, assets: assets, locations: locations}
}

// Open starts an inventory audit over one location.
func (s *Service) Open(ctx context.Context, req OpenRequest) (*domain.Audit, error) {
	if _, err := s.locations.GetByID(ctx, req.LocationID); err != nil {
		return nil, err
	}

	audit := &domain.Audit{
		LocationID: req.LocationID,
		AuditorID:  req.AuditorID,
		Status:     domain.AuditInProgress,
		Summary:    req.Summary,
	}

	if err := s.audits.Create(ctx, audit); err != nil {
		return nil, err
	}

	return s.audits.GetByID(ctx, audit.ID, false)
}

func (s *Service) List(ctx context.Context) ([]map[string]any, error) {
	audits, err := s.audits.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	dicts := make([]map[string]any, 0, len(audits))
	for i := range audits {
		dicts = append(dicts, audits[i].Dict(false))
	}

	return dicts, nil
}

func (s *Service) Get(ctx context.Context, id int64, withDetails bool) (*domain.Audit, error) {
	return s.audits.GetByID(ctx, id, withDetails)
}

// Scan records one asset's outcome within an open audit. A scan that found
// the asset ("OK" or "Ubicación Incorrecta") stamps the asset's last-audit
// fields; "No Encontrado" and "Activo Desconocido" leave them alone.
func (s *Service) Scan(ctx context.Context, auditID int64, req ScanRequest) (*domain.AuditDetail, error) {
	audit, err := s.audits.GetByID(ctx, auditID, false)
	if err != nil {
		return nil, err
	}
	if audit.Status != domain.AuditInProgress {
		return nil, ErrAuditClosed
	}

	result := domain.ScanResult(req.Result)
	if !result.IsValid() {
		return nil, ErrInvalidResult
	}

	asset, err := s.assets.GetByID(ctx, req.AssetID)
	if err != nil {
		return nil, err
	}

	detail := &domain.AuditDetail{
		AuditID:   auditID,
		AssetID:   asset.ID,
		Result:    result,
		ScannedAt: time.Now(),
		Note:      req.Note,
	}

	var stamp *domain.Asset
	if result == domain.ScanOK || result == domain.ScanWrongLocation {
		now := detail.ScannedAt
		asset.LastAuditByID = &audit.AuditorID
		asset.LastAuditAt = &now
		stamp = asset
	}

	if err := s.audits.AddDetail(ctx, detail, stamp); err != nil {
		return nil, err
	}

	detail.Asset = asset
	return detail, nil
}

// Close finishes an audit, setting fecha_fin. The default close status is
// "Completada"; "Cancelada" is the only other accepted value.
func (s *Service) Close(ctx context.Context, id int64, req CloseRequest) (*domain.Audit, error) {
	audit, err := s.audits.GetByID(ctx, id, false)
	if err != nil {
		return nil, err
	}
	if audit.Status != domain.AuditInProgress {
		return nil, ErrAuditClosed
	}

	status := domain.AuditCompleted
	if req.Status != "" {
		status = domain.AuditStatus(req.Status)
		if status != domain.AuditCompleted && status != domain.AuditCancelled {
			return nil, ErrInvalidClose
		}
	}

	now := time.Now()
	audit.Status = status
	audit.EndedAt = &now
	if req.Summary != "" {
		audit.Summary = req.Summary
	}

	if err := s.audits.Update(ctx, audit); err != nil {
		return nil, err
	}

	return audit, nil
}
