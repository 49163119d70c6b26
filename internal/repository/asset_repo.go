package repository

import (
	"context"
	"strings"

	"github.com/Luis-Canales-R/sga-sistema-gestion-activos/internal/domain"

	"gorm.io/gorm"
)

type AssetFilters struct {
	Search string
	Status domain.AssetStatus
	Limit  int
	Offset int
}

type AssetRepository struct {
	db *gorm.DB
}

func NewAssetRepository(db *gorm.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

// searchPattern matches case-insensitively on both PostgreSQL and SQLite,
// so LOWER(...) LIKE instead of ILIKE.
func searchPattern(term string) string {
	return "%" + strings.ToLower(term) + "%"
}

const searchClause = "LOWER(codigo_activo) LIKE ? OR LOWER(nombre_activo) LIKE ? OR LOWER(marca) LIKE ?"

// List returns one page of assets plus the total count of rows matching
// the filters. Results are always ordered by asset code.
func (r *AssetRepository) List(ctx context.Context, f AssetFilters) ([]domain.Asset, int64, error) {
	var assets []domain.Asset
	var total int64

	q := r.db.WithContext(ctx).Model(&domain.Asset{})

	if f.Search != "" {
		p := searchPattern(f.Search)
		q = q.Where(searchClause, p, p, p)
	}

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.
		Order("codigo_activo").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&assets).Error

	return assets, total, err
}

// Search is the global free-text lookup: same three-field match as List,
// capped at limit, no pagination metadata.
func (r *AssetRepository) Search(ctx context.Context, term string, limit int) ([]domain.Asset, error) {
	var assets []domain.Asset

	p := searchPattern(term)
	err := r.db.WithContext(ctx).
		Where(searchClause, p, p, p).
		Order("codigo_activo").
		Limit(limit).
		Find(&assets).Error

	return assets, err
}

func (r *AssetRepository) GetByID(ctx context.Context, id int64) (*domain.Asset, error) {
	var asset domain.Asset

	err := r.db.WithContext(ctx).First(&asset, id).Error
	if err != nil {
		return nil, err
	}

	return &asset, nil
}

// GetByIDExpanded loads the asset with its related entities inlined.
func (r *AssetRepository) GetByIDExpanded(ctx context.Context, id int64) (*domain.Asset, error) {
	var asset domain.Asset

	err := r.db.WithContext(ctx).
		Preload("Location").
		Preload("Location.Parent").
		Preload("AssignedUser").
		Preload("Purchase").
		Preload("Purchase.RequestedBy").
		Preload("LastAuditBy").
		First(&asset, id).Error
	if err != nil {
		return nil, err
	}

	return &asset, nil
}

// GetByCode resolves the public/QR identifier, relations inlined.
func (r *AssetRepository) GetByCode(ctx context.Context, code string) (*domain.Asset, error) {
	var asset domain.Asset

	err := r.db.WithContext(ctx).
		Preload("Location").
		Preload("AssignedUser").
		Preload("Purchase").
		Preload("LastAuditBy").
		Where("codigo_activo = ?", code).
		First(&asset).Error
	if err != nil {
		return nil, err
	}

	return &asset, nil
}

func (r *AssetRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&domain.Asset{}).
		Where("codigo_activo = ?", code).
		Count(&count).Error

	return count > 0, err
}

// Create inserts the asset inside a transaction; any failure rolls the
// whole write back before the error is surfaced.
func (r *AssetRepository) Create(ctx context.Context, asset *domain.Asset) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(asset).Error
	})
}

type DashboardStats struct {
	Total           int64
	ByStatus        map[domain.AssetStatus]int64
	WithoutLocation int64
	Unassigned      int64
}

// Dashboard computes the aggregate counters: total assets, one counter per
// status value (all five keys, zeros included), and the unanchored assets.
func (r *AssetRepository) Dashboard(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{
		ByStatus: make(map[domain.AssetStatus]int64, len(domain.ValidAssetStatuses())),
	}

	db := r.db.WithContext(ctx).Model(&domain.Asset{})

	if err := db.Count(&stats.Total).Error; err != nil {
		return nil, err
	}

	for _, status := range domain.ValidAssetStatuses() {
		var count int64
		err := r.db.WithContext(ctx).
			Model(&domain.Asset{}).
			Where("status = ?", status).
			Count(&count).Error
		if err != nil {
			return nil, err
		}
		stats.ByStatus[status] = count
	}

	err := r.db.WithContext(ctx).
		Model(&domain.Asset{}).
		Where("ubicacion_id IS NULL").
		Count(&stats.WithoutLocation).Error
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).
		Model(&domain.Asset{}).
		Where("usuario_asignado_id IS NULL").
		Count(&stats.Unassigned).Error
	if err != nil {
		return nil, err
	}

	return stats, nil
}
