package persistence

import (
	"context"

	"github.com/wms/backend/internal/domain/inventory"
	"github.com/wms/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormMasterDataReader implements MasterDataReader over accounts and warehouses
type GormMasterDataReader struct {
	db *gorm.DB
}

// NewGormMasterDataReader creates a new GormMasterDataReader
func NewGormMasterDataReader(db *gorm.DB) *GormMasterDataReader {
	return &GormMasterDataReader{db: db}
}

// AccountExists checks that the account exists
func (r *GormMasterDataReader) AccountExists(ctx context.Context, accountID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.AccountModel{}).
		Where("id = ?", accountID).
		Count(&count).Error; err != nil {
		return false, translateError(err, "compte")
	}
	return count > 0, nil
}

// MissingWarehouses returns the ids that match no warehouse, in input order
func (r *GormMasterDataReader) MissingWarehouses(ctx context.Context, warehouseIDs []int64) ([]int64, error) {
	if len(warehouseIDs) == 0 {
		return nil, nil
	}
	var found []int64
	if err := r.db.WithContext(ctx).Model(&models.WarehouseModel{}).
		Where("id IN ?", warehouseIDs).
		Pluck("id", &found).Error; err != nil {
		return nil, translateError(err, "entrepôts")
	}
	exists := make(map[int64]bool, len(found))
	for _, id := range found {
		exists[id] = true
	}
	var missing []int64
	for _, id := range warehouseIDs {
		if !exists[id] {
			missing = append(missing, id)
			exists[id] = true
		}
	}
	return missing, nil
}

var _ inventory.MasterDataReader = (*GormMasterDataReader)(nil)
