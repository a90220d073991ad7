// Package integration runs the inventory backend against a real PostgreSQL
// database started with testcontainers.
package integration

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/wms/backend/internal/infrastructure/migration"
	"github.com/wms/backend/internal/infrastructure/persistence/models"
	"github.com/wms/backend/migrations"
)

var (
	// Shared container for all tests in the package
	sharedContainer    testcontainers.Container
	sharedContainerMu  sync.Mutex
	sharedContainerDSN string
)

// TestDB represents a test database connection
type TestDB struct {
	DB    *gorm.DB
	SqlDB *sql.DB
	DSN   string
	t     *testing.T
}

// NewSharedTestDB returns a connection to the package-wide PostgreSQL
// container, starting it and applying the embedded migrations on first use.
// Tests sharing it must clean up with CleanTables.
func NewSharedTestDB(t *testing.T) *TestDB {
	t.Helper()

	sharedContainerMu.Lock()
	defer sharedContainerMu.Unlock()

	ctx := context.Background()

	if sharedContainer == nil {
		container, err := tcpostgres.Run(ctx,
			"postgres:16-alpine",
			tcpostgres.WithDatabase("wms_test"),
			tcpostgres.WithUsername("postgres"),
			tcpostgres.WithPassword("admin123"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(60*time.Second)),
		)
		require.NoError(t, err, "Failed to start shared PostgreSQL container")

		dsn, err := container.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err, "Failed to get connection string")

		sharedContainer = container
		sharedContainerDSN = dsn

		_, sqlDB := connectToDatabase(t, dsn)
		runMigrations(t, sqlDB)
		_ = sqlDB.Close()
	}

	db, sqlDB := connectToDatabase(t, sharedContainerDSN)
	testDB := &TestDB{DB: db, SqlDB: sqlDB, DSN: sharedContainerDSN, t: t}
	t.Cleanup(func() {
		_ = testDB.SqlDB.Close()
	})
	return testDB
}

// CleanTables truncates every table except the migration bookkeeping
func (tdb *TestDB) CleanTables() {
	tdb.t.Helper()

	var tables []string
	err := tdb.DB.Raw(`
		SELECT tablename FROM pg_tables
		WHERE schemaname = 'public'
		AND tablename != 'schema_migrations'
	`).Scan(&tables).Error
	require.NoError(tdb.t, err, "Failed to get table names")

	for _, table := range tables {
		if err := tdb.DB.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tdb.t.Logf("Warning: Failed to truncate table %s: %v", table, err)
		}
	}
}

func connectToDatabase(t *testing.T, dsn string) (*gorm.DB, *sql.DB) {
	t.Helper()

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "Failed to connect to database")

	sqlDB, err := db.DB()
	require.NoError(t, err, "Failed to get underlying sql.DB")

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	return db, sqlDB
}

func runMigrations(t *testing.T, sqlDB *sql.DB) {
	t.Helper()

	m, err := migration.NewEmbedded(sqlDB, migrations.FS, zap.NewNop())
	require.NoError(t, err, "Failed to create migrator")
	require.NoError(t, m.Up(), "Failed to run migrations")
}

// CleanupSharedContainer terminates the shared container. Call from TestMain.
func CleanupSharedContainer() {
	sharedContainerMu.Lock()
	defer sharedContainerMu.Unlock()

	if sharedContainer != nil {
		_ = sharedContainer.Terminate(context.Background())
		sharedContainer = nil
		sharedContainerDSN = ""
	}
}

// ===================== Seed helpers =====================

// Site is the master data an inventory runs against
type Site struct {
	AccountID   int64
	WarehouseID int64
	GroupingID  int64
	LocationIDs []int64
	ProductID   int64
}

// SeedSite creates an account with one location grouping, a warehouse with
// the given number of active locations and one product
func (tdb *TestDB) SeedSite(locations int) Site {
	tdb.t.Helper()

	account := models.AccountModel{Name: "Client Test"}
	tdb.create(&account)
	warehouse := models.WarehouseModel{Name: "Entrepôt Nord"}
	tdb.create(&warehouse)
	grouping := models.LocationGroupingModel{AccountID: account.ID}
	tdb.create(&grouping)
	product := models.ProductModel{Reference: "ART-001", Barcode: "3760000000017", Description: "Carton standard", InternalCode: "C-001"}
	tdb.create(&product)

	site := Site{AccountID: account.ID, WarehouseID: warehouse.ID, GroupingID: grouping.ID, ProductID: product.ID}
	for i := 1; i <= locations; i++ {
		loc := models.LocationModel{
			Reference:      fmt.Sprintf("LOC-%03d", i),
			LocationCode:   fmt.Sprintf("A-%02d-01", i),
			WarehouseID:    warehouse.ID,
			RegroupementID: &grouping.ID,
			IsActive:       true,
		}
		tdb.create(&loc)
		site.LocationIDs = append(site.LocationIDs, loc.ID)
	}
	return site
}

// SeedStock stores a stock snapshot row of an inventory
func (tdb *TestDB) SeedStock(inventoryID, locationID, productID int64, quantity int) {
	tdb.t.Helper()
	tdb.create(&models.StockModel{InventoryID: inventoryID, LocationID: locationID, ProductID: productID, Quantity: quantity})
}

// SeedJob creates a job covering the given locations and returns its ID
func (tdb *TestDB) SeedJob(inventoryID, warehouseID int64, reference, status string, locationIDs ...int64) int64 {
	tdb.t.Helper()

	job := models.JobModel{Reference: reference, InventoryID: inventoryID, WarehouseID: warehouseID, Status: status}
	tdb.create(&job)
	for _, locationID := range locationIDs {
		tdb.create(&models.JobDetailModel{JobID: job.ID, LocationID: locationID})
	}
	return job.ID
}

// SetJobsStatus moves every job of an inventory to status
func (tdb *TestDB) SetJobsStatus(inventoryID int64, status string) {
	tdb.t.Helper()
	err := tdb.DB.Model(&models.JobModel{}).Where("inventory_id = ?", inventoryID).Update("status", status).Error
	require.NoError(tdb.t, err, "Failed to update job status")
}

func (tdb *TestDB) create(value interface{}) {
	tdb.t.Helper()
	require.NoError(tdb.t, tdb.DB.Create(value).Error, "Failed to seed %T", value)
}

// CountDetails counts the details of a pass with the given source
func (tdb *TestDB) CountDetails(countingID int64, source string) int64 {
	tdb.t.Helper()
	var count int64
	err := tdb.DB.Model(&models.CountingDetailModel{}).
		Where("counting_id = ? AND source = ?", countingID, source).
		Count(&count).Error
	require.NoError(tdb.t, err, "Failed to count counting details")
	return count
}
