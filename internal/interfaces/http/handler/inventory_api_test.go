package handler

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
	"go.uber.org/zap/zaptest"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	inventoryapp "github.com/wms/backend/internal/application/inventory"
	"github.com/wms/backend/internal/domain/inventory"
	"github.com/wms/backend/internal/infrastructure/event"
	"github.com/wms/backend/internal/infrastructure/export"
	"github.com/wms/backend/internal/infrastructure/persistence"
	"github.com/wms/backend/internal/infrastructure/persistence/models"
	"github.com/wms/backend/internal/interfaces/http/dto"
)

// apiFixture serves the inventory routes over an in-memory sqlite database
type apiFixture struct {
	engine      *gin.Engine
	db          *gorm.DB
	accountID   int64
	warehouseID int64
	otherWhID   int64
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(models.AllModels()...))

	f := &apiFixture{db: db}
	account := models.AccountModel{Name: "ACME"}
	require.NoError(t, db.Create(&account).Error)
	wh := models.WarehouseModel{Name: "Entrepôt Nord"}
	other := models.WarehouseModel{Name: "Entrepôt Sud"}
	require.NoError(t, db.Create(&wh).Error)
	require.NoError(t, db.Create(&other).Error)
	f.accountID, f.warehouseID, f.otherWhID = account.ID, wh.ID, other.ID

	log := zaptest.NewLogger(t)
	bus := event.NewInMemoryEventBus(log)
	txScope := persistence.NewGormTransactionScope(db)
	repos := persistence.NewRepositories(db)

	inventories := NewInventoryHandler(inventoryapp.NewInventoryService(
		txScope, repos.Inventories, persistence.NewGormMasterDataReader(db),
		inventory.NewCountingDispatcher(), bus, log))
	lifecycle := NewLifecycleHandler(inventoryapp.NewLifecycleService(txScope, nil, bus, log))
	details := NewCountingDetailHandler(inventoryapp.NewCountingDetailService(txScope, log))
	ecarts := NewEcartHandler(inventoryapp.NewEcartService(txScope, repos.Ecarts, bus, log))
	results := NewResultHandler(inventoryapp.NewResultService(
		repos.Inventories, repos.Details, repos.Ecarts, export.NewResultWorkbook("test"), log))

	engine := gin.New()
	api := engine.Group("/api/v1")
	api.POST("/inventories", inventories.Create)
	api.POST("/inventories/validate-countings", inventories.ValidateCountings)
	api.GET("/inventories", inventories.List)
	api.GET("/inventories/:id", inventories.GetByID)
	api.PUT("/inventories/:id", inventories.Update)
	api.DELETE("/inventories/:id", inventories.Delete)
	api.GET("/inventories/:id/launch-check", lifecycle.CheckLaunch)
	api.POST("/inventories/:id/launch", lifecycle.Launch)
	api.POST("/inventories/:id/complete", lifecycle.Complete)
	api.GET("/inventories/:id/ecarts", ecarts.ListByInventory)
	api.GET("/inventories/:id/warehouses/:warehouse_id/results", results.List)
	api.GET("/inventories/:id/warehouses/:warehouse_id/results/export", results.Export)
	api.POST("/counting-details", details.Record)
	api.GET("/ecarts/:id", ecarts.GetByID)
	api.POST("/ecarts/:id/resolve", ecarts.Resolve)
	f.engine = engine
	return f
}

func (f *apiFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)
	return w
}

func bulkPasses() []map[string]any {
	passes := make([]map[string]any, 3)
	for i := range passes {
		passes[i] = map[string]any{"order": i + 1, "count_mode": "en vrac", "unit_scanned": true}
	}
	return passes
}

func (f *apiFixture) createBody(label string) map[string]any {
	return map[string]any{
		"label":      label,
		"date":       "2026-03-01T00:00:00Z",
		"account_id": f.accountID,
		"warehouse":  []int64{f.warehouseID},
		"comptages":  bulkPasses(),
	}
}

func (f *apiFixture) create(t *testing.T, label string) inventoryapp.InventoryResponse {
	t.Helper()
	w := f.do(t, http.MethodPost, "/api/v1/inventories", f.createBody(label))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp APIResponse[inventoryapp.InventoryResponse]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

func TestInventoryAPI_Create(t *testing.T) {
	f := newAPIFixture(t)

	t.Run("creates an inventory in preparation", func(t *testing.T) {
		inv := f.create(t, "Inventaire annuel")

		assert.NotZero(t, inv.ID)
		assert.NotEmpty(t, inv.Reference)
		assert.Equal(t, "EN PREPARATION", inv.Status)
		assert.Len(t, inv.Comptages, 3)
		require.Len(t, inv.Settings, 1)
		assert.Equal(t, f.warehouseID, inv.Settings[0].WarehouseID)
	})

	t.Run("binding errors list the failing fields", func(t *testing.T) {
		body := f.createBody("")
		delete(body, "warehouse")

		w := f.do(t, http.MethodPost, "/api/v1/inventories", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeResponse(t, w)
		assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
		fields := make([]string, 0, len(resp.Error.Details))
		for _, d := range resp.Error.Details {
			fields = append(fields, d.Field)
		}
		assert.Contains(t, fields, "label")
		assert.Contains(t, fields, "warehouse")
	})

	t.Run("an invalid sequence lists its violations", func(t *testing.T) {
		body := f.createBody("Deux comptages")
		body["comptages"] = bulkPasses()[:2]

		w := f.do(t, http.MethodPost, "/api/v1/inventories", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeResponse(t, w)
		assert.Contains(t, []string{inventory.CodeSequenceInvalid, inventory.CodeCountingConfigInvalid}, resp.Error.Code)
		assert.NotEmpty(t, resp.Error.Violations)
	})

	t.Run("unknown warehouse", func(t *testing.T) {
		body := f.createBody("Entrepôt inconnu")
		body["warehouse"] = []int64{9999}

		w := f.do(t, http.MethodPost, "/api/v1/inventories", body)

		assert.GreaterOrEqual(t, w.Code, http.StatusBadRequest)
		assert.False(t, decodeResponse(t, w).Success)
	})
}

func TestInventoryAPI_ValidateCountings(t *testing.T) {
	f := newAPIFixture(t)

	t.Run("valid sequence", func(t *testing.T) {
		w := f.do(t, http.MethodPost, "/api/v1/inventories/validate-countings", map[string]any{"comptages": bulkPasses()})

		require.Equal(t, http.StatusOK, w.Code)
		var resp APIResponse[inventoryapp.CountingValidationResponse]
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Data.Valid)
		assert.Empty(t, resp.Data.Violations)
	})

	t.Run("unsupported mode is reported, not rejected", func(t *testing.T) {
		passes := bulkPasses()
		passes[1]["count_mode"] = "au hasard"

		w := f.do(t, http.MethodPost, "/api/v1/inventories/validate-countings", map[string]any{"comptages": passes})

		require.Equal(t, http.StatusOK, w.Code)
		var resp APIResponse[inventoryapp.CountingValidationResponse]
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Data.Valid)
		assert.NotEmpty(t, resp.Data.Violations)
	})

	t.Run("pass order out of range", func(t *testing.T) {
		passes := bulkPasses()
		passes[2]["order"] = 4

		w := f.do(t, http.MethodPost, "/api/v1/inventories/validate-countings", map[string]any{"comptages": passes})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeResponse(t, w)
		require.NotEmpty(t, resp.Error.Details)
		assert.Equal(t, "comptages[2].order", resp.Error.Details[0].Field)
	})
}

func TestInventoryAPI_ReadUpdateDelete(t *testing.T) {
	f := newAPIFixture(t)
	first := f.create(t, "Inventaire A")
	f.create(t, "Inventaire B")

	t.Run("get", func(t *testing.T) {
		w := f.do(t, http.MethodGet, fmt.Sprintf("/api/v1/inventories/%d", first.ID), nil)
		require.Equal(t, http.StatusOK, w.Code)
		var resp APIResponse[inventoryapp.InventoryResponse]
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, first.Reference, resp.Data.Reference)
	})

	t.Run("get unknown", func(t *testing.T) {
		w := f.do(t, http.MethodGet, "/api/v1/inventories/9999", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("get with a malformed id", func(t *testing.T) {
		w := f.do(t, http.MethodGet, "/api/v1/inventories/abc", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("list with pagination meta", func(t *testing.T) {
		w := f.do(t, http.MethodGet, "/api/v1/inventories?page=1&page_size=1", nil)
		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w)
		require.NotNil(t, resp.Meta)
		assert.Equal(t, int64(2), resp.Meta.Total)
		assert.Equal(t, 2, resp.Meta.TotalPages)
	})

	t.Run("list rejects a page size over 100", func(t *testing.T) {
		w := f.do(t, http.MethodGet, "/api/v1/inventories?page_size=500", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("update", func(t *testing.T) {
		body := f.createBody("Inventaire A bis")
		body["warehouse"] = []int64{f.warehouseID, f.otherWhID}

		w := f.do(t, http.MethodPut, fmt.Sprintf("/api/v1/inventories/%d", first.ID), body)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var resp APIResponse[inventoryapp.InventoryResponse]
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Inventaire A bis", resp.Data.Label)
		assert.Len(t, resp.Data.Settings, 2)
	})

	t.Run("delete", func(t *testing.T) {
		w := f.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/inventories/%d", first.ID), nil)
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = f.do(t, http.MethodGet, fmt.Sprintf("/api/v1/inventories/%d", first.ID), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestInventoryAPI_Lifecycle(t *testing.T) {
	f := newAPIFixture(t)
	inv := f.create(t, "Sans jobs")

	t.Run("launch check reports the missing jobs", func(t *testing.T) {
		w := f.do(t, http.MethodGet, fmt.Sprintf("/api/v1/inventories/%d/launch-check", inv.ID), nil)

		require.Equal(t, http.StatusOK, w.Code)
		var resp APIResponse[inventory.LaunchReport]
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Data.CanLaunch)
		assert.NotEmpty(t, resp.Data.Violations)
	})

	t.Run("launch is refused with every violation", func(t *testing.T) {
		w := f.do(t, http.MethodPost, fmt.Sprintf("/api/v1/inventories/%d/launch", inv.ID), nil)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		resp := decodeResponse(t, w)
		assert.Equal(t, inventory.CodeLaunchValidationFailed, resp.Error.Code)
		assert.NotEmpty(t, resp.Error.Violations)
	})

	t.Run("complete requires a launched inventory", func(t *testing.T) {
		w := f.do(t, http.MethodPost, fmt.Sprintf("/api/v1/inventories/%d/complete", inv.ID), nil)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, inventory.ErrInvalidTransition.Code, decodeResponse(t, w).Error.Code)
	})
}

func TestInventoryAPI_EcartsAndResults(t *testing.T) {
	f := newAPIFixture(t)
	inv := f.create(t, "Résultats")

	t.Run("no discrepancies yet", func(t *testing.T) {
		w := f.do(t, http.MethodGet, fmt.Sprintf("/api/v1/inventories/%d/ecarts?resolved=false", inv.ID), nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, int64(0), decodeResponse(t, w).Meta.Total)
	})

	t.Run("unknown discrepancy", func(t *testing.T) {
		w := f.do(t, http.MethodGet, "/api/v1/ecarts/9999", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = f.do(t, http.MethodPost, "/api/v1/ecarts/9999/resolve", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("observation on an inventory in preparation", func(t *testing.T) {
		w := f.do(t, http.MethodPost, "/api/v1/counting-details", map[string]any{
			"counting_id": inv.Comptages[0].ID,
			"location_id": 1,
			"quantity":    3,
		})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, dto.ErrCodeInvalidState, decodeResponse(t, w).Error.Code)
	})

	t.Run("results of a linked warehouse", func(t *testing.T) {
		w := f.do(t, http.MethodGet, fmt.Sprintf("/api/v1/inventories/%d/warehouses/%d/results", inv.ID, f.warehouseID), nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.True(t, decodeResponse(t, w).Success)
	})

	t.Run("results of an unlinked warehouse", func(t *testing.T) {
		w := f.do(t, http.MethodGet, fmt.Sprintf("/api/v1/inventories/%d/warehouses/%d/results", inv.ID, f.otherWhID), nil)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, inventory.ErrWarehouseNotLinked.Code, decodeResponse(t, w).Error.Code)
	})

	t.Run("export", func(t *testing.T) {
		w := f.do(t, http.MethodGet, fmt.Sprintf("/api/v1/inventories/%d/warehouses/%d/results/export", inv.ID, f.warehouseID), nil)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, export.NewResultWorkbook("").ContentType(), w.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="resultats_`+inv.Reference+`.xlsx"`, w.Header().Get("Content-Disposition"))
		// xlsx files are zip archives
		assert.Equal(t, []byte("PK"), w.Body.Bytes()[:2])
	})
}
