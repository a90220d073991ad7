package inventory

import (
	"context"

	"github.com/wms/backend/internal/domain/shared"
)

// InventoryFilter narrows inventory listings
type InventoryFilter struct {
	shared.Filter
	Status      *InventoryStatus
	Type        *InventoryType
	WarehouseID *int64
}

// InventoryRepository defines the interface for inventory persistence
type InventoryRepository interface {
	// FindByID finds a non-deleted inventory with its settings and countings
	FindByID(ctx context.Context, id int64) (*Inventory, error)

	// FindByIDForUpdate finds an inventory and locks its row until the
	// enclosing transaction ends
	FindByIDForUpdate(ctx context.Context, id int64) (*Inventory, error)

	// FindAll lists non-deleted inventories matching the filter
	FindAll(ctx context.Context, filter InventoryFilter) ([]Inventory, int64, error)

	// ExistsByLabel checks whether a non-deleted inventory uses the label
	ExistsByLabel(ctx context.Context, label string, excludeID int64) (bool, error)

	// Create inserts a new inventory with its settings and countings
	Create(ctx context.Context, inv *Inventory) error

	// Save updates the inventory row (status, dates, details, deletion flag)
	Save(ctx context.Context, inv *Inventory) error

	// SaveConfiguration replaces the settings and countings of the inventory
	SaveConfiguration(ctx context.Context, inv *Inventory) error
}

// CountingRepository defines the interface for counting pass lookups
type CountingRepository interface {
	// FindByID finds a counting pass
	FindByID(ctx context.Context, id int64) (*Counting, error)

	// FindByInventory lists the passes of an inventory ordered by pass order
	FindByInventory(ctx context.Context, inventoryID int64) ([]Counting, error)
}

// CountingDetailRepository defines the interface for observation persistence
type CountingDetailRepository interface {
	// Create inserts a detail
	Create(ctx context.Context, detail *CountingDetail) error

	// CreateBatch inserts details in batches
	CreateBatch(ctx context.Context, details []CountingDetail) error

	// Update saves the detail's quantity
	Update(ctx context.Context, detail *CountingDetail) error

	// FindByID finds a detail
	FindByID(ctx context.Context, id int64) (*CountingDetail, error)

	// FindExisting finds the detail already captured for the same counting,
	// location, product and job
	FindExisting(ctx context.Context, countingID, locationID int64, productID, jobID *int64) (*CountingDetail, error)

	// FindByKey lists every detail of the inventory for a discrepancy key,
	// ordered by pass order then id
	FindByKey(ctx context.Context, key DiscrepancyKey) ([]Observation, error)

	// DeleteByCountingAndSource deletes the details of a pass with the given
	// source and returns the number removed
	DeleteByCountingAndSource(ctx context.Context, countingID int64, source DetailSource) (int64, error)

	// FindReferencedIDs lists the ids of the pass details with the given
	// source that contribute a sequence to a discrepancy
	FindReferencedIDs(ctx context.Context, countingID int64, source DetailSource) ([]int64, error)

	// CountByCountingAndSource counts the details of a pass with the given source
	CountByCountingAndSource(ctx context.Context, countingID int64, source DetailSource) (int64, error)

	// FindResultObservations sums quantities per location, product, job and
	// pass for one warehouse of an inventory
	FindResultObservations(ctx context.Context, inventoryID, warehouseID int64) ([]ResultObservation, error)
}

// EcartComptageRepository defines the interface for discrepancy persistence
type EcartComptageRepository interface {
	// FindByID finds a discrepancy with its sequences
	FindByID(ctx context.Context, id int64) (*EcartComptage, error)

	// FindByIDForUpdate finds a discrepancy and locks its row
	FindByIDForUpdate(ctx context.Context, id int64) (*EcartComptage, error)

	// FindByKeyForUpdate finds the discrepancy of a key and locks its row
	FindByKeyForUpdate(ctx context.Context, key DiscrepancyKey) (*EcartComptage, error)

	// FindByInventory lists the discrepancies of an inventory. A filter with
	// PageSize <= 0 returns every row.
	FindByInventory(ctx context.Context, inventoryID int64, filter shared.Filter) ([]EcartComptage, int64, error)

	// Create inserts the discrepancy and its sequences
	Create(ctx context.Context, ecart *EcartComptage) error

	// Save updates the discrepancy row, upserts its sequences and deletes
	// the sequences it no longer holds
	Save(ctx context.Context, ecart *EcartComptage) error

	// FindByCountingSource lists the discrepancies holding a sequence of a
	// pass detail with the given source
	FindByCountingSource(ctx context.Context, countingID int64, source DetailSource) ([]EcartComptage, error)

	// Delete removes the discrepancy and its sequences
	Delete(ctx context.Context, id int64) error
}

// JobReader reads the job subsystem
type JobReader interface {
	// FindByInventory lists the jobs of an inventory
	FindByInventory(ctx context.Context, inventoryID int64) ([]Job, error)

	// CoveredLocationIDs lists the distinct locations assigned to a job of
	// the inventory
	CoveredLocationIDs(ctx context.Context, inventoryID int64) ([]int64, error)
}

// LocationReader reads location master data
type LocationReader interface {
	// GroupingExists checks that the account has a location grouping
	GroupingExists(ctx context.Context, accountID int64) (bool, error)

	// FindActiveByAccount lists the active locations of the account grouping
	// across every warehouse
	FindActiveByAccount(ctx context.Context, accountID int64) ([]Location, error)

	// FindByID finds a location
	FindByID(ctx context.Context, id int64) (*Location, error)
}

// StockReader reads the stock snapshot subsystem
type StockReader interface {
	// CountByInventory counts the snapshot rows of an inventory
	CountByInventory(ctx context.Context, inventoryID int64) (int64, error)

	// FindSnapshot lists the snapshot rows of an inventory located in the
	// given warehouses
	FindSnapshot(ctx context.Context, inventoryID int64, warehouseIDs []int64) ([]StockRow, error)
}

// MasterDataReader checks references supplied on inventory creation
type MasterDataReader interface {
	// AccountExists checks that the account exists
	AccountExists(ctx context.Context, accountID int64) (bool, error)

	// MissingWarehouses returns the ids that match no warehouse
	MissingWarehouses(ctx context.Context, warehouseIDs []int64) ([]int64, error)
}
