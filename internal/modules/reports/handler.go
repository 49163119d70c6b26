package reports

import (
	"net/http"
	"strings"

	"github.com/Luis-Canales-R/sga-sistema-gestion-activos/internal/pkg/response"
	"github.com/Luis-Canales-R/sga-sistema-gestion-activos/internal/repository"

	"github.com/gin-gonic/gin"
)

// Global search returns at most this many assets, no pagination.
const searchLimit = 10

type Handler struct {
	assets *repository.AssetRepository
	audits *repository.AuditRepository
}

func NewHandler(assets *repository.AssetRepository, audits *repository.AuditRepository) *Handler {
	return &Handler{assets: assets, audits: audits}
}

// GetDashboard handles GET /api/reportes/dashboard. Per-status counts
// always carry all five keys, zeros included, and sum to the total.
func (h *Handler) GetDashboard(c *gin.Context) {
	ctx := c.Request.Context()

	stats, err := h.assets.Dashboard(ctx)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	pendingAudits, err := h.audits.CountInProgress(ctx)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	byStatus := make(map[string]int64, len(stats.ByStatus))
	for status, count := range stats.ByStatus {
		byStatus[string(status)] = count
	}

	c.JSON(http.StatusOK, gin.H{
		"total_activos":         stats.Total,
		"activos_por_status":    byStatus,
		"activos_sin_ubicacion": stats.WithoutLocation,
		"activos_sin_asignar":   stats.Unassigned,
		"auditorias_pendientes": pendingAudits,
	})
}

// GlobalSearch handles GET /api/buscar?q=. An empty query is a client
// error, not an empty result.
func (h *Handler) GlobalSearch(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		response.Error(c, http.StatusBadRequest, "Se requiere un término de búsqueda")
		return
	}

	assets, err := h.assets.Search(c.Request.Context(), query, searchLimit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	dicts := make([]map[string]any, 0, len(assets))
	for i := range assets {
		dicts = append(dicts, assets[i].Dict(false))
	}

	c.JSON(http.StatusOK, gin.H{"activos": dicts})
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/reportes/dashboard", h.GetDashboard)
	r.GET("/buscar", h.GlobalSearch)
}
