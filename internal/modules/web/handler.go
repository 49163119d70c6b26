package web

import (
	"errors"
	"net/http"

	"github.com/Luis-Canales-R/sga-sistema-gestion-activos/internal/domain"
	"github.com/Luis-Canales-R/sga-sistema-gestion-activos/internal/modules/assets"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	appName    = "Sistema de Gestión de Activos"
	appVersion = "1.0.0"
)

// Handler renders the server-side pages: dashboard, admin panel, the
// mobile scanning interface and the public per-asset view the QR labels
// point at.
type Handler struct {
	assets *assets.Service
}

func NewHandler(assets *assets.Service) *Handler {
	return &Handler{assets: assets}
}

// baseVars is what the original injected into every template: the fixed
// enum value sets plus app identity. Constant slices, never mutated at
// runtime.
func baseVars() gin.H {
	statuses := make([]string, 0, 5)
	for _, s := range domain.ValidAssetStatuses() {
		statuses = append(statuses, string(s))
	}

	roles := make([]string, 0, 5)
	for _, r := range domain.ValidUserRoles() {
		roles = append(roles, string(r))
	}

	return gin.H{
		"app_name":       appName,
		"app_version":    appVersion,
		"asset_statuses": statuses,
		"user_roles":     roles,
	}
}

func render(c *gin.Context, status int, tmpl string, data gin.H) {
	vars := baseVars()
	for k, v := range data {
		vars[k] = v
	}
	c.HTML(status, tmpl, vars)
}

func (h *Handler) Dashboard(c *gin.Context) {
	render(c, http.StatusOK, "dashboard.html", nil)
}

func (h *Handler) AdminPanel(c *gin.Context) {
	render(c, http.StatusOK, "admin_panel.html", nil)
}

func (h *Handler) AdminAssets(c *gin.Context) {
	render(c, http.StatusOK, "admin_assets.html", nil)
}

func (h *Handler) Mobile(c *gin.Context) {
	render(c, http.StatusOK, "mobile_index.html", nil)
}

func (h *Handler) MobileScanner(c *gin.Context) {
	render(c, http.StatusOK, "mobile_scanner.html", nil)
}

// AssetDetail is the public view a scanned QR label lands on.
func (h *Handler) AssetDetail(c *gin.Context) {
	code := c.Param("codigo")

	asset, err := h.assets.GetByCode(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.String(http.StatusNotFound, "Activo no encontrado")
			return
		}
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	render(c, http.StatusOK, "asset_detail.html", gin.H{"activo": asset.Dict(true)})
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Dashboard)
	r.GET("/admin", h.AdminPanel)
	r.GET("/admin/activos", h.AdminAssets)
	r.GET("/mobile", h.Mobile)
	r.GET("/mobile/scan", h.MobileScanner)
	r.GET("/activo/:codigo", h.AssetDetail)
}
