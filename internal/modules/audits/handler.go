package audits

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Luis-Canales-R/sga-sistema-gestion-activos/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// OpenAudit handles POST /api/auditorias.
func (h *Handler) OpenAudit(c *gin.Context) {
	var req OpenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	audit, err := h.service.Open(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, audit.Dict(false))
}

// GetAudits handles GET /api/auditorias.
func (h *Handler) GetAudits(c *gin.Context) {
	audits, err := h.service.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": audits})
}

// GetAudit handles GET /api/auditorias/:id. Pass include_detalles=true to
// inline the scan rows.
func (h *Handler) GetAudit(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "Auditoría no encontrada")
		return
	}

	withDetails := c.Query("include_detalles") == "true"

	audit, err := h.service.Get(c.Request.Context(), id, withDetails)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, audit.Dict(withDetails))
}

// ScanAsset handles POST /api/auditorias/:id/detalles.
func (h *Handler) ScanAsset(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "Auditoría no encontrada")
		return
	}

	var req ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	detail, err := h.service.Scan(c.Request.Context(), id, req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, detail.Dict())
}

// CloseAudit handles PUT /api/auditorias/:id/cerrar.
func (h *Handler) CloseAudit(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "Auditoría no encontrada")
		return
	}

	var req CloseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	audit, err := h.service.Close(c.Request.Context(), id, req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, audit.Dict(false))
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/auditorias", h.OpenAudit)
	r.GET("/auditorias", h.GetAudits)
	r.GET("/auditorias/:id", h.GetAudit)
	r.POST("/auditorias/:id/detalles", h.ScanAsset)
	r.PUT("/auditorias/:id/cerrar", h.CloseAudit)
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidResult):
		response.Error(c, http.StatusBadRequest, "Resultado de escaneo inválido")
	case errors.Is(err, ErrInvalidClose):
		response.Error(c, http.StatusBadRequest, "Status de cierre inválido")
	case errors.Is(err, ErrAuditClosed):
		response.Error(c, http.StatusConflict, "La auditoría ya fue cerrada")
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Error(c, http.StatusNotFound, "Recurso no encontrado")
	default:
		response.Error(c, http.StatusInternalServerError, err.Error())
	}
}
