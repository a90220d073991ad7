package persistence

import (
	"context"

	appinv "github.com/wms/backend/internal/application/inventory"
	"github.com/wms/backend/internal/domain/inventory"
	"gorm.io/gorm"
)

// GormTransactionScope implements TransactionScope using GORM transactions.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope.
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs fn within a database transaction, rolled back when fn
// returns an error.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos appinv.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

// gormTransactionalRepositories binds every repository to the same transaction.
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

func (r *gormTransactionalRepositories) InventoryRepo() inventory.InventoryRepository {
	return NewGormInventoryRepository(r.tx)
}

func (r *gormTransactionalRepositories) CountingRepo() inventory.CountingRepository {
	return NewGormCountingRepository(r.tx)
}

func (r *gormTransactionalRepositories) DetailRepo() inventory.CountingDetailRepository {
	return NewGormCountingDetailRepository(r.tx)
}

func (r *gormTransactionalRepositories) EcartRepo() inventory.EcartComptageRepository {
	return NewGormEcartComptageRepository(r.tx)
}

func (r *gormTransactionalRepositories) JobReader() inventory.JobReader {
	return NewGormJobReader(r.tx)
}

func (r *gormTransactionalRepositories) LocationReader() inventory.LocationReader {
	return NewGormLocationReader(r.tx)
}

func (r *gormTransactionalRepositories) StockReader() inventory.StockReader {
	return NewGormStockReader(r.tx)
}

// NewRepositories returns the repositories bound to db, outside any
// transaction.
func NewRepositories(db *gorm.DB) appinv.Repositories {
	return appinv.Repositories{
		Inventories: NewGormInventoryRepository(db),
		Countings:   NewGormCountingRepository(db),
		Details:     NewGormCountingDetailRepository(db),
		Ecarts:      NewGormEcartComptageRepository(db),
		Jobs:        NewGormJobReader(db),
		Locations:   NewGormLocationReader(db),
		Stocks:      NewGormStockReader(db),
	}
}

var _ appinv.TransactionScope = (*GormTransactionScope)(nil)
var _ appinv.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
