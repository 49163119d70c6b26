package assets

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Luis-Canales-R/sga-sistema-gestion-activos/internal/config"
	"github.com/Luis-Canales-R/sga-sistema-gestion-activos/internal/domain"
	"github.com/Luis-Canales-R/sga-sistema-gestion-activos/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "modernc.org/sqlite"
)

const testBaseURL = "http://labels.test"

func setupHandlerTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:assets_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: "sqlite", DSN: dsn}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Location{},
		&domain.Purchase{},
		&domain.Asset{},
		&domain.Maintenance{},
		&domain.Movement{},
	))

	cfg := &config.Config{
		LabelBaseURL:    testBaseURL,
		ItemsPerPage:    25,
		MaxItemsPerPage: 100,
		QRBoxSize:       10,
		QRBorder:        4,
	}

	service := NewService(
		repository.NewAssetRepository(db),
		repository.NewMovementRepository(db),
		cfg,
	)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	NewHandler(service).RegisterRoutes(api)

	return r, db
}

func postAsset(t *testing.T, r *gin.Engine, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/activos", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreateAsset(t *testing.T) {
	r, _ := setupHandlerTest(t)

	w := postAsset(t, r, map[string]any{
		"codigo_activo":     "LAP-001",
		"nombre_activo":     "Laptop Dell Inspiron",
		"fecha_adquisicion": "2024-01-15",
		"costo_adquisicion": 1200.00,
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, "LAP-001", body["codigo_activo"])
	assert.Equal(t, "En Bodega", body["status"])
	assert.Equal(t, testBaseURL+"/activo/LAP-001", body["qr_url"])
	assert.Equal(t, 1200.00, body["costo_adquisicion"])
	assert.Equal(t, float64(36), body["vida_util_meses"])

	// Relations are inlined on create; none were linked, so all null.
	assert.Contains(t, body, "ubicacion")
	assert.Nil(t, body["ubicacion"])
	assert.Nil(t, body["usuario_asignado"])
}

func TestCreateAssetDuplicateCode(t *testing.T) {
	r, db := setupHandlerTest(t)

	w := postAsset(t, r, map[string]any{
		"codigo_activo":     "LAP-001",
		"nombre_activo":     "Laptop Dell Inspiron",
		"fecha_adquisicion": "2024-01-15",
		"costo_adquisicion": 1200.00,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = postAsset(t, r, map[string]any{
		"codigo_activo":     "LAP-001",
		"nombre_activo":     "Otra laptop",
		"fecha_adquisicion": "2024-02-01",
		"costo_adquisicion": 900.00,
	})
	require.Equal(t, http.StatusConflict, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "El código de activo ya existe", body["error"])

	// The conflict left the datastore untouched.
	var count int64
	require.NoError(t, db.Model(&domain.Asset{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateAssetRejectsBadDate(t *testing.T) {
	r, _ := setupHandlerTest(t)

	w := postAsset(t, r, map[string]any{
		"codigo_activo":     "LAP-001",
		"nombre_activo":     "Laptop",
		"fecha_adquisicion": "15/01/2024",
		"costo_adquisicion": 1200.00,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateAssetRejectsUnknownStatus(t *testing.T) {
	r, _ := setupHandlerTest(t)

	w := postAsset(t, r, map[string]any{
		"codigo_activo":     "LAP-001",
		"nombre_activo":     "Laptop",
		"fecha_adquisicion": "2024-01-15",
		"costo_adquisicion": 1200.00,
		"status":            "Perdido",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListAssetsRejectsUnknownStatusFilter(t *testing.T) {
	r, _ := setupHandlerTest(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/activos?status=Perdido", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListAssetsPaginationFlags(t *testing.T) {
	r, _ := setupHandlerTest(t)

	for i := 1; i <= 3; i++ {
		w := postAsset(t, r, map[string]any{
			"codigo_activo":     fmt.Sprintf("LAP-%03d", i),
			"nombre_activo":     "Laptop",
			"fecha_adquisicion": "2024-01-15",
			"costo_adquisicion": 100.00,
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	// First page of two.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/activos?page=1&per_page=2", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var page map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, float64(3), page["total"])
	assert.Equal(t, float64(2), page["pages"])
	assert.False(t, page["has_prev"].(bool))
	assert.True(t, page["has_next"].(bool))
	assert.Len(t, page["items"], 2)

	// A page past the end is empty, not an error.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/activos?page=9&per_page=2", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Len(t, page["items"], 0)
	assert.False(t, page["has_next"].(bool))
}

func TestGetAssetQR(t *testing.T) {
	r, db := setupHandlerTest(t)

	w := postAsset(t, r, map[string]any{
		"codigo_activo":     "LAP-001",
		"nombre_activo":     "Laptop",
		"fecha_adquisicion": "2024-01-15",
		"costo_adquisicion": 1200.00,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var asset domain.Asset
	require.NoError(t, db.Where("codigo_activo = ?", "LAP-001").First(&asset).Error)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/activos/%d/qr", asset.ID), nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	// PNG signature
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte{0x89, 'P', 'N', 'G'}))
}

func TestGetAssetQRUnknownID(t *testing.T) {
	r, _ := setupHandlerTest(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/activos/9999/qr", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetAssetHistoryEmpty(t *testing.T) {
	r, db := setupHandlerTest(t)

	w := postAsset(t, r, map[string]any{
		"codigo_activo":     "LAP-001",
		"nombre_activo":     "Laptop",
		"fecha_adquisicion": "2024-01-15",
		"costo_adquisicion": 1200.00,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var asset domain.Asset
	require.NoError(t, db.Where("codigo_activo = ?", "LAP-001").First(&asset).Error)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/activos/%d/historial", asset.ID), nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body["historial"], 0)
}
