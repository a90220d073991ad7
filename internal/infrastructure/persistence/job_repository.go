package persistence

import (
	"context"

	"github.com/wms/backend/internal/domain/inventory"
	"github.com/wms/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormJobReader implements JobReader over the jobs and job_details tables
type GormJobReader struct {
	db *gorm.DB
}

// NewGormJobReader creates a new GormJobReader
func NewGormJobReader(db *gorm.DB) *GormJobReader {
	return &GormJobReader{db: db}
}

// FindByInventory lists the jobs of an inventory
func (r *GormJobReader) FindByInventory(ctx context.Context, inventoryID int64) ([]inventory.Job, error) {
	var rows []models.JobModel
	if err := r.db.WithContext(ctx).Where("inventory_id = ?", inventoryID).Order("id").Find(&rows).Error; err != nil {
		return nil, translateError(err, "jobs")
	}
	jobs := make([]inventory.Job, len(rows))
	for i := range rows {
		jobs[i] = rows[i].ToDomain()
	}
	return jobs, nil
}

// CoveredLocationIDs lists the distinct locations assigned to a job of the
// inventory
func (r *GormJobReader) CoveredLocationIDs(ctx context.Context, inventoryID int64) ([]int64, error) {
	var ids []int64
	if err := r.db.WithContext(ctx).
		Table("job_details jd").
		Distinct("jd.location_id").
		Joins("JOIN jobs j ON j.id = jd.job_id").
		Where("j.inventory_id = ?", inventoryID).
		Order("jd.location_id").
		Pluck("jd.location_id", &ids).Error; err != nil {
		return nil, translateError(err, "emplacements des jobs")
	}
	return ids, nil
}

var _ inventory.JobReader = (*GormJobReader)(nil)
