package maintenance

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

// GetMaintenances handles GET /api/activos/:id/mantenimientos.
func (h *Handler) GetMaintenances(c *gin.Context) {
	assetID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "Activo no encontrado")
		return
	}

	maintenances, err := h.service.ListByAsset(c.Request.Context(), assetID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": maintenances})
}

// CreateMaintenance handles POST /api/activos/:id/mantenimientos.
func (h *Handler) CreateMaintenance(c *gin.Context) {
	assetID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "Activo no encontrado")
		return
	}

	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	m, err := h.service.Record(c.Request.Context(), assetID, req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, m.Dict())
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/activos/:id/mantenimientos", h.GetMaintenances)
	r.POST("/activos/:id/mantenimientos", h.CreateMaintenance)
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidType):
		response.Error(c, http.StatusBadRequest, "Tipo de mantenimiento inválido")
	case errors.Is(err, ErrInvalidDate):
		response.Error(c, http.StatusBadRequest, "Formato de fecha inválido, se espera YYYY-MM-DD")
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Error(c, http.StatusNotFound, "Activo no encontrado")
	default:
		response.Error(c, http.StatusInternalServerError, err.Error())
	}
}
