package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/wms/backend/internal/domain/inventory"
	"github.com/wms/backend/internal/infrastructure/persistence/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens an in-memory sqlite database with the full schema. A
// single connection keeps every query on the same in-memory database.
func newTestDB(t *testing.T) *gorm.DB {
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
	return db
}

// fixture holds the master data seeded by seedMasterData
type fixture struct {
	accountID   int64
	warehouseID int64
	otherWhID   int64
	groupingID  int64
	locations   []int64
	products    []int64
}

func seedMasterData(t *testing.T, db *gorm.DB) fixture {
	t.Helper()
	account := models.AccountModel{Name: "ACME"}
	require.NoError(t, db.Create(&account).Error)
	wh := models.WarehouseModel{Name: "Entrepôt Nord"}
	other := models.WarehouseModel{Name: "Entrepôt Sud"}
	require.NoError(t, db.Create(&wh).Error)
	require.NoError(t, db.Create(&other).Error)
	grouping := models.LocationGroupingModel{AccountID: account.ID}
	require.NoError(t, db.Create(&grouping).Error)

	f := fixture{accountID: account.ID, warehouseID: wh.ID, otherWhID: other.ID, groupingID: grouping.ID}
	for _, ref := range []string{"A-01", "A-02", "B-01"} {
		loc := models.LocationModel{Reference: ref, LocationCode: "C" + ref, WarehouseID: wh.ID, RegroupementID: &grouping.ID, IsActive: true}
		require.NoError(t, db.Create(&loc).Error)
		f.locations = append(f.locations, loc.ID)
	}
	for _, ref := range []string{"P-100", "P-200"} {
		p := models.ProductModel{Reference: ref, Barcode: "EAN" + ref, Description: "Produit " + ref, InternalCode: "INT" + ref}
		require.NoError(t, db.Create(&p).Error)
		f.products = append(f.products, p.ID)
	}
	return f
}

func threePasses(mode inventory.CountMode) []inventory.Counting {
	out := make([]inventory.Counting, 3)
	for i := range out {
		out[i] = inventory.Counting{Order: i + 1, Mode: mode}
	}
	return out
}

// createInventory persists an inventory in preparation with three passes
func createInventory(t *testing.T, db *gorm.DB, f fixture, label string, mode inventory.CountMode) *inventory.Inventory {
	t.Helper()
	inv, err := inventory.NewInventory(label, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		inventory.InventoryTypeGeneral, f.accountID, []int64{f.warehouseID})
	require.NoError(t, err)
	require.NoError(t, inv.ReplaceCountings(threePasses(mode)))
	require.NoError(t, NewGormInventoryRepository(db).Create(context.Background(), inv))
	return inv
}

func int64Ptr(v int64) *int64 { return &v }

func intPtr(v int) *int { return &v }
