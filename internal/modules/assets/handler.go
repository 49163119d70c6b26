package assets

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

// GetAssets handles GET /api/activos with search/status filters and
// pagination.
func (h *Handler) GetAssets(c *gin.Context) {
	var p ListParams

	p.Page = 1
	if page := c.Query("page"); page != "" {
		if val, err := strconv.Atoi(page); err == nil && val > 0 {
			p.Page = val
		}
	}

	if perPage := c.Query("per_page"); perPage != "" {
		if val, err := strconv.Atoi(perPage); err == nil && val > 0 {
			p.PerPage = val
		}
	}

	p.Search = c.Query("search")
	p.Status = c.Query("status")

	page, err := h.service.List(c.Request.Context(), p)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// CreateAsset handles POST /api/activos.
func (h *Handler) CreateAsset(c *gin.Context) {
	var req CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	asset, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, asset.Dict(true))
}

// GetAssetQR handles GET /api/activos/:id/qr and streams the PNG label.
func (h *Handler) GetAssetQR(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "Activo no encontrado")
		return
	}

	png, err := h.service.QRPNG(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

// GetAssetHistory handles GET /api/activos/:id/historial.
func (h *Handler) GetAssetHistory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "Activo no encontrado")
		return
	}

	history, err := h.service.History(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"historial": history})
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/activos", h.GetAssets)
	r.POST("/activos", h.CreateAsset)
	r.GET("/activos/:id/qr", h.GetAssetQR)
	r.GET("/activos/:id/historial", h.GetAssetHistory)
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrCodeExists):
		response.Error(c, http.StatusConflict, "El código de activo ya existe")
	case errors.Is(err, ErrInvalidStatus):
		response.Error(c, http.StatusBadRequest, "Status de activo inválido")
	case errors.Is(err, ErrInvalidDate):
		response.Error(c, http.StatusBadRequest, "Formato de fecha inválido, se espera YYYY-MM-DD")
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Error(c, http.StatusNotFound, "Activo no encontrado")
	default:
		response.Error(c, http.StatusInternalServerError, err.Error())
	}
}
