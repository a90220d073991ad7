package inventory

import (
	"context"

	"github.com/wms/backend/internal/domain/inventory"
)

// TransactionScope provides transactional access to inventory repositories.
// When a function is executed within a transaction scope, all repository operations
// will be part of the same database transaction and will be committed or rolled back atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to all inventory repositories within a transaction.
// All repositories returned share the same underlying database transaction.
//
// Aggregate boundaries:
//   - InventoryRepo: the Inventory aggregate with its settings and countings. Lifecycle
//     transitions lock the inventory row through FindByIDForUpdate.
//   - DetailRepo: observations. Snapshot seeding and purge go through this repository.
//   - EcartRepo: the EcartComptage aggregate with its sequences, locked per discrepancy key.
//   - JobReader, LocationReader, StockReader: read-only views of neighbouring subsystems.
type TransactionalRepositories interface {
	InventoryRepo() inventory.InventoryRepository
	CountingRepo() inventory.CountingRepository
	DetailRepo() inventory.CountingDetailRepository
	EcartRepo() inventory.EcartComptageRepository
	JobReader() inventory.JobReader
	LocationReader() inventory.LocationReader
	StockReader() inventory.StockReader
}

// Repositories groups the repositories handed to NewNoOpTransactionScope
type Repositories struct {
	Inventories inventory.InventoryRepository
	Countings   inventory.CountingRepository
	Details     inventory.CountingDetailRepository
	Ecarts      inventory.EcartComptageRepository
	Jobs        inventory.JobReader
	Locations   inventory.LocationReader
	Stocks      inventory.StockReader
}

// NoOpTransactionScope is a transaction scope that doesn't actually use transactions.
// This is useful for testing or when transaction support is not required.
type NoOpTransactionScope struct {
	repos Repositories
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(repos Repositories) *NoOpTransactionScope {
	return &NoOpTransactionScope{repos: repos}
}

// Execute runs the function without a real transaction (for testing/compatibility).
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// InventoryRepo returns the inventory repository.
func (s *NoOpTransactionScope) InventoryRepo() inventory.InventoryRepository {
	return s.repos.Inventories
}

// CountingRepo returns the counting repository.
func (s *NoOpTransactionScope) CountingRepo() inventory.CountingRepository {
	return s.repos.Countings
}

// DetailRepo returns the counting detail repository.
func (s *NoOpTransactionScope) DetailRepo() inventory.CountingDetailRepository {
	return s.repos.Details
}

// EcartRepo returns the discrepancy repository.
func (s *NoOpTransactionScope) EcartRepo() inventory.EcartComptageRepository {
	return s.repos.Ecarts
}

// JobReader returns the job reader.
func (s *NoOpTransactionScope) JobReader() inventory.JobReader {
	return s.repos.Jobs
}

// LocationReader returns the location reader.
func (s *NoOpTransactionScope) LocationReader() inventory.LocationReader {
	return s.repos.Locations
}

// StockReader returns the stock snapshot reader.
func (s *NoOpTransactionScope) StockReader() inventory.StockReader {
	return s.repos.Stocks
}

// Ensure NoOpTransactionScope implements both interfaces
var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
