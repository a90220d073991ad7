package persistence

import (
	"context"

	"github.com/wms/backend/internal/domain/inventory"
	"github.com/wms/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormLocationReader implements LocationReader over the locations and
// regroupements tables
type GormLocationReader struct {
	db *gorm.DB
}

// NewGormLocationReader creates a new GormLocationReader
func NewGormLocationReader(db *gorm.DB) *GormLocationReader {
	return &GormLocationReader{db: db}
}

// GroupingExists checks that the account has a location grouping
func (r *GormLocationReader) GroupingExists(ctx context.Context, accountID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.LocationGroupingModel{}).
		Where("account_id = ?", accountID).
		Count(&count).Error; err != nil {
		return false, translateError(err, "regroupement d'emplacements")
	}
	return count > 0, nil
}

// FindActiveByAccount lists the active locations of the account groupings,
// whatever their warehouse
func (r *GormLocationReader) FindActiveByAccount(ctx context.Context, accountID int64) ([]inventory.Location, error) {
	var rows []models.LocationModel
	if err := r.db.WithContext(ctx).
		Joins("JOIN regroupements r ON r.id = locations.regroupement_id").
		Where("r.account_id = ? AND locations.is_active = ?", accountID, true).
		Order("locations.reference").
		Find(&rows).Error; err != nil {
		return nil, translateError(err, "emplacements")
	}
	out := make([]inventory.Location, len(rows))
	for i := range rows {
		out[i] = rows[i].ToDomain()
	}
	return out, nil
}

// FindByID finds a location
func (r *GormLocationReader) FindByID(ctx context.Context, id int64) (*inventory.Location, error) {
	var model models.LocationModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err, "emplacement")
	}
	loc := model.ToDomain()
	return &loc, nil
}

var _ inventory.LocationReader = (*GormLocationReader)(nil)
