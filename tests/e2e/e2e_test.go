package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Luis-Canales-R/sga-sistema-gestion-activos/internal/config"
	"github.com/Luis-Canales-R/sga-sistema-gestion-activos/internal/database"
	"github.com/Luis-Canales-R/sga-sistema-gestion-activos/internal/modules/assets"
	"github.com/Luis-Canales-R/sga-sistema-gestion-activos/internal/modules/audits"
	"github.com/Luis-Canales-R/sga-sistema-gestion-activos/internal/modules/directory"
	"github.com/Luis-Canales-R/sga-sistema-gestion-activos/internal/modules/maintenance"
	"github.com/Luis-Canales-R/sga-sistema-gestion-activos/internal/modules/reports"
	"github.com/Luis-Canales-R/sga-sistema-gestion-activos/internal/modules/web"
	"github.com/Luis-Canales-R/sga-sistema-gestion-activos/internal/repository"
)

const testBaseURL = "http://labels.test"

func setupSuite(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:e2e_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: dsn}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err, "Failed to connect to test database")
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		LabelBaseURL:    testBaseURL,
		ItemsPerPage:    25,
		MaxItemsPerPage: 100,
		QRBoxSize:       10,
		QRBorder:        4,
	}

	assetRepo := repository.NewAssetRepository(db)
	userRepo := repository.NewUserRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)
	maintenanceRepo := repository.NewMaintenanceRepository(db)
	movementRepo := repository.NewMovementRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	assetService := assets.NewService(assetRepo, movementRepo, cfg)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.LoadHTMLGlob("../../templates/*.html")

	api := r.Group("/api")
	assets.NewHandler(assetService).RegisterRoutes(api)
	maintenance.NewHandler(maintenance.NewService(maintenanceRepo, assetRepo)).RegisterRoutes(api)
	directory.NewHandler(locationRepo, userRepo, purchaseRepo).RegisterRoutes(api)
	reports.NewHandler(assetRepo, auditRepo).RegisterRoutes(api)
	audits.NewHandler(audits.NewService(auditRepo, assetRepo, locationRepo)).RegisterRoutes(api)

	web.NewHandler(assetService).RegisterRoutes(r)

	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, target string, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

func TestAssetLifecycle(t *testing.T) {
	r, _ := setupSuite(t)

	// Create the asset from the label spec example.
	w := doJSON(t, r, http.MethodPost, "/api/activos", map[string]any{
		"codigo_activo":     "LAP-001",
		"nombre_activo":     "Laptop Dell Inspiron",
		"fecha_adquisicion": "2024-01-15",
		"costo_adquisicion": 1200.00,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	created := decode(t, w)
	assert.Equal(t, "En Bodega", created["status"])
	assert.Equal(t, testBaseURL+"/activo/LAP-001", created["qr_url"])

	// Duplicate code conflicts.
	w = doJSON(t, r, http.MethodPost, "/api/activos", map[string]any{
		"codigo_activo":     "LAP-001",
		"nombre_activo":     "Otra laptop",
		"fecha_adquisicion": "2024-02-01",
		"costo_adquisicion": 900.00,
	})
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "El código de activo ya existe", decode(t, w)["error"])

	// The list sees exactly one asset.
	w = doJSON(t, r, http.MethodGet, "/api/activos", nil)
	require.Equal(t, http.StatusOK, w.Code)
	page := decode(t, w)
	assert.Equal(t, float64(1), page["total"])

	// The QR endpoint streams a PNG for it.
	id := int64(created["id"].(float64))
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/activos/%d/qr", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))

	// The public per-asset page resolves the code.
	w = doJSON(t, r, http.MethodGet, "/activo/LAP-001", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Laptop Dell Inspiron")

	// Unknown code is a 404.
	w = doJSON(t, r, http.MethodGet, "/activo/NOPE-001", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearchAndDashboard(t *testing.T) {
	r, _ := setupSuite(t)

	for i, brand := range []string{"Dell", "Dell", "HP"} {
		w := doJSON(t, r, http.MethodPost, "/api/activos", map[string]any{
			"codigo_activo":     fmt.Sprintf("EQ-%03d", i+1),
			"nombre_activo":     "Equipo de oficina",
			"marca":             brand,
			"fecha_adquisicion": "2024-01-15",
			"costo_adquisicion": 500.00,
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	// Missing q is a client error.
	w := doJSON(t, r, http.MethodGet, "/api/buscar", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/buscar?q=dell", nil)
	require.Equal(t, http.StatusOK, w.Code)
	activos := decode(t, w)["activos"].([]any)
	assert.Len(t, activos, 2)

	w = doJSON(t, r, http.MethodGet, "/api/reportes/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats := decode(t, w)
	assert.Equal(t, float64(3), stats["total_activos"])
	byStatus := stats["activos_por_status"].(map[string]any)
	assert.Len(t, byStatus, 5)
	assert.Equal(t, float64(3), byStatus["En Bodega"])
}

func TestDirectoryListings(t *testing.T) {
	r, db := setupSuite(t)

	require.NoError(t, db.Exec(
		"INSERT INTO usuarios (nombre_completo, email, rol) VALUES (?, ?, ?)",
		"Administrador del Sistema", "admin@empresa.com", "Admin",
	).Error)
	require.NoError(t, db.Exec(
		"INSERT INTO ubicaciones (nombre, descripcion) VALUES (?, ?)",
		"Oficina Principal", "Oficina principal de la empresa",
	).Error)

	w := doJSON(t, r, http.MethodGet, "/api/ubicaciones", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var locations []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &locations))
	require.Len(t, locations, 1)
	assert.Equal(t, "Oficina Principal", locations[0]["nombre"])

	w = doJSON(t, r, http.MethodGet, "/api/usuarios", nil)
	require.Equal(t, http.StatusOK, w.Code)
	users := decode(t, w)["items"].([]any)
	require.Len(t, users, 1)
	assert.Equal(t, "Admin", users[0].(map[string]any)["rol"])
}

func TestMaintenanceAndAuditFlow(t *testing.T) {
	r, db := setupSuite(t)

	w := doJSON(t, r, http.MethodPost, "/api/activos", map[string]any{
		"codigo_activo":     "IMP-001",
		"nombre_activo":     "Impresora HP",
		"fecha_adquisicion": "2023-11-20",
		"costo_adquisicion": 480.00,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assetID := int64(decode(t, w)["id"].(float64))

	require.NoError(t, db.Exec(
		"INSERT INTO usuarios (nombre_completo, email, rol) VALUES (?, ?, ?)",
		"Carlos Méndez", "carlos@empresa.com", "Técnico",
	).Error)
	require.NoError(t, db.Exec(
		"INSERT INTO ubicaciones (nombre) VALUES (?)", "Oficina Principal",
	).Error)

	// Record a maintenance.
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/activos/%d/mantenimientos", assetID), map[string]any{
		"fecha_mantenimiento": "2024-03-05",
		"tipo_mantenimiento":  "Correctivo",
		"descripcion":         "Cambio de fusor",
		"costo":               75.00,
		"realizado_por_id":    1,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "Correctivo", decode(t, w)["tipo_mantenimiento"])

	// Unknown maintenance type is rejected.
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/activos/%d/mantenimientos", assetID), map[string]any{
		"fecha_mantenimiento": "2024-03-05",
		"tipo_mantenimiento":  "Destructivo",
		"descripcion":         "n/a",
		"realizado_por_id":    1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Open an audit, scan the asset, close it.
	w = doJSON(t, r, http.MethodPost, "/api/auditorias", map[string]any{
		"ubicacion_auditada_id": 1,
		"auditor_id":            1,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	auditID := int64(decode(t, w)["id"].(float64))

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/auditorias/%d/detalles", auditID), map[string]any{
		"activo_id": assetID,
		"resultado": "OK",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/auditorias/%d/cerrar", auditID), map[string]any{})
	require.Equal(t, http.StatusOK, w.Code)
	closed := decode(t, w)
	assert.Equal(t, "Completada", closed["status"])
	assert.NotNil(t, closed["fecha_fin"])

	// The audit with details inlines the scan.
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/auditorias/%d?include_detalles=true", auditID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	details := decode(t, w)["detalles"].([]any)
	require.Len(t, details, 1)
	assert.Equal(t, "OK", details[0].(map[string]any)["resultado"])
	assert.Equal(t, "IMP-001", details[0].(map[string]any)["activo"])
}
