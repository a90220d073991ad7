package persistence

import (
	"context"

	"github.com/wms/backend/internal/domain/inventory"
	"github.com/wms/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormStockReader implements StockReader over the imported stock snapshot
type GormStockReader struct {
	db *gorm.DB
}

// NewGormStockReader creates a new GormStockReader
func NewGormStockReader(db *gorm.DB) *GormStockReader {
	return &GormStockReader{db: db}
}

// CountByInventory counts the snapshot rows of an inventory
func (r *GormStockReader) CountByInventory(ctx context.Context, inventoryID int64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.StockModel{}).
		Where("inventory_id = ?", inventoryID).
		Count(&count).Error; err != nil {
		return 0, translateError(err, "stock")
	}
	return count, nil
}

// FindSnapshot lists the snapshot rows of an inventory located in the
// given warehouses
func (r *GormStockReader) FindSnapshot(ctx context.Context, inventoryID int64, warehouseIDs []int64) ([]inventory.StockRow, error) {
	if len(warehouseIDs) == 0 {
		return []inventory.StockRow{}, nil
	}
	var rows []models.StockModel
	if err := r.db.WithContext(ctx).
		Joins("JOIN locations l ON l.id = stocks.location_id").
		Where("stocks.inventory_id = ? AND l.warehouse_id IN ?", inventoryID, warehouseIDs).
		Order("stocks.id").
		Find(&rows).Error; err != nil {
		return nil, translateError(err, "stock")
	}
	out := make([]inventory.StockRow, len(rows))
	for i := range rows {
		out[i] = rows[i].ToDomain()
	}
	return out, nil
}

var _ inventory.StockReader = (*GormStockReader)(nil)
