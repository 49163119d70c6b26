package directory

import (
	"net/http"

	"github.com/Luis-Canales-R/sga-sistema-gestion-activos/internal/pkg/response"
	"github.com/Luis-Canales-R/sga-sistema-gestion-activos/internal/repository"

	"github.com/gin-gonic/gin"
)

// Handler serves the reference listings the admin forms are populated
// from: locations, users and purchases.
type Handler struct {
	locations *repository.LocationRepository
	users     *repository.UserRepository
	purchases *repository.PurchaseRepository
}

func NewHandler(locations *repository.LocationRepository, users *repository.UserRepository, purchases *repository.PurchaseRepository) *Handler {
	return &Handler{locations: locations, users: users, purchases: purchases}
}

// GetLocations handles GET /api/ubicaciones. Returns a bare array, ordered
// by name.
func (h *Handler) GetLocations(c *gin.Context) {
	locations, err := h.locations.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	dicts := make([]map[string]any, 0, len(locations))
	for i := range locations {
		dicts = append(dicts, locations[i].Dict())
	}

	c.JSON(http.StatusOK, dicts)
}

// GetUsers handles GET /api/usuarios. Unlike locations this one wraps the
// array in {items: [...]}, which existing clients depend on.
func (h *Handler) GetUsers(c *gin.Context) {
	users, err := h.users.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	dicts := make([]map[string]any, 0, len(users))
	for i := range users {
		dicts = append(dicts, users[i].Dict())
	}

	c.JSON(http.StatusOK, gin.H{"items": dicts})
}

// GetPurchases handles GET /api/compras.
func (h *Handler) GetPurchases(c *gin.Context) {
	purchases, err := h.purchases.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	dicts := make([]map[string]any, 0, len(purchases))
	for i := range purchases {
		dicts = append(dicts, purchases[i].Dict())
	}

	c.JSON(http.StatusOK, gin.H{"items": dicts})
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/ubicaciones", h.GetLocations)
	r.GET("/usuarios", h.GetUsers)
	r.GET("/compras", h.GetPurchases)
}
