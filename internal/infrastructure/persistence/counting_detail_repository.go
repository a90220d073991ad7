package persistence

import (
	"context"
	"time"

	"github.com/wms/backend/internal/domain/inventory"
	"github.com/wms/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// detailBatchSize bounds the rows per INSERT when seeding snapshot details
const detailBatchSize = 500

// GormCountingDetailRepository implements CountingDetailRepository using GORM
type GormCountingDetailRepository struct {
	db *gorm.DB
}

// NewGormCountingDetailRepository creates a new GormCountingDetailRepository
func NewGormCountingDetailRepository(db *gorm.DB) *GormCountingDetailRepository {
	return &GormCountingDetailRepository{db: db}
}

// Create inserts a detail and assigns its id
func (r *GormCountingDetailRepository) Create(ctx context.Context, detail *inventory.CountingDetail) error {
	model := models.CountingDetailModelFromDomain(detail)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translateError(err, "détail de comptage")
	}
	detail.ID = model.ID
	return nil
}

// CreateBatch inserts details in batches and assigns their ids
func (r *GormCountingDetailRepository) CreateBatch(ctx context.Context, details []inventory.CountingDetail) error {
	if len(details) == 0 {
		return nil
	}
	rows := make([]models.CountingDetailModel, len(details))
	for i := range details {
		rows[i] = *models.CountingDetailModelFromDomain(&details[i])
	}
	if err := r.db.WithContext(ctx).CreateInBatches(&rows, detailBatchSize).Error; err != nil {
		return translateError(err, "détails de comptage")
	}
	for i := range rows {
		details[i].ID = rows[i].ID
	}
	return nil
}

// Update saves the detail's quantity
func (r *GormCountingDetailRepository) Update(ctx context.Context, detail *inventory.CountingDetail) error {
	updatedAt := detail.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}
	result := r.db.WithContext(ctx).Model(&models.CountingDetailModel{}).
		Where("id = ?", detail.ID).
		Updates(map[string]interface{}{
			"quantity":   detail.Quantity,
			"updated_at": updatedAt,
		})
	if result.Error != nil {
		return translateError(result.Error, "détail de comptage")
	}
	if result.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound, "détail de comptage")
	}
	return nil
}

// FindByID finds a detail
func (r *GormCountingDetailRepository) FindByID(ctx context.Context, id int64) (*inventory.CountingDetail, error) {
	var model models.CountingDetailModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err, "détail de comptage")
	}
	return model.ToDomain(), nil
}

// FindExisting finds the detail already captured for the same counting,
// location, product and job. Nil product or job match NULL columns.
func (r *GormCountingDetailRepository) FindExisting(ctx context.Context, countingID, locationID int64, productID, jobID *int64) (*inventory.CountingDetail, error) {
	query := r.db.WithContext(ctx).Where("counting_id = ? AND location_id = ?", countingID, locationID)
	query = whereNullable(query, "product_id", productID)
	query = whereNullable(query, "job_id", jobID)

	var model models.CountingDetailModel
	if err := query.Order("id").First(&model).Error; err != nil {
		return nil, translateError(err, "détail de comptage")
	}
	return model.ToDomain(), nil
}

type observationRow struct {
	models.CountingDetailModel
	PassOrder int
}

// FindByKey lists every detail of the inventory for a discrepancy key,
// ordered by pass order then id
func (r *GormCountingDetailRepository) FindByKey(ctx context.Context, key inventory.DiscrepancyKey) ([]inventory.Observation, error) {
	query := r.db.WithContext(ctx).
		Table("counting_details").
		Select("counting_details.*, countings.pass_order").
		Joins("JOIN countings ON countings.id = counting_details.counting_id").
		Where("countings.inventory_id = ? AND counting_details.location_id = ?", key.InventoryID, key.LocationID)
	query = whereNullable(query, "counting_details.product_id", key.ProductID)

	var rows []observationRow
	if err := query.Order("countings.pass_order, counting_details.id").Scan(&rows).Error; err != nil {
		return nil, translateError(err, "détails de comptage")
	}
	out := make([]inventory.Observation, len(rows))
	for i := range rows {
		out[i] = inventory.Observation{
			CountingDetail: *rows[i].CountingDetailModel.ToDomain(),
			Order:          rows[i].PassOrder,
		}
	}
	return out, nil
}

// DeleteByCountingAndSource deletes the details of a pass with the given
// source and returns the number removed
func (r *GormCountingDetailRepository) DeleteByCountingAndSource(ctx context.Context, countingID int64, source inventory.DetailSource) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("counting_id = ? AND source = ?", countingID, string(source)).
		Delete(&models.CountingDetailModel{})
	if result.Error != nil {
		return 0, translateError(result.Error, "détails de comptage")
	}
	return result.RowsAffected, nil
}

// FindReferencedIDs lists the ids of the pass details with the given source
// that contribute a sequence to a discrepancy
func (r *GormCountingDetailRepository) FindReferencedIDs(ctx context.Context, countingID int64, source inventory.DetailSource) ([]int64, error) {
	var ids []int64
	if err := r.db.WithContext(ctx).
		Table("counting_details").
		Distinct("counting_details.id").
		Joins("JOIN comptage_sequences ON comptage_sequences.counting_detail_id = counting_details.id").
		Where("counting_details.counting_id = ? AND counting_details.source = ?", countingID, string(source)).
		Order("counting_details.id").
		Pluck("counting_details.id", &ids).Error; err != nil {
		return nil, translateError(err, "détails de comptage")
	}
	return ids, nil
}

// CountByCountingAndSource counts the details of a pass with the given source
func (r *GormCountingDetailRepository) CountByCountingAndSource(ctx context.Context, countingID int64, source inventory.DetailSource) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.CountingDetailModel{}).
		Where("counting_id = ? AND source = ?", countingID, string(source)).
		Count(&count).Error; err != nil {
		return 0, translateError(err, "détails de comptage")
	}
	return count, nil
}

type resultObservationRow struct {
	LocationID        int64
	LocationReference string
	LocationCode      string
	ProductID         *int64
	ProductReference  string
	ProductBarcode    string
	ProductLabel      string
	ProductCode       string
	JobID             *int64
	JobReference      string
	PassOrder         int
	Quantity          int
}

// FindResultObservations sums quantities per location, product, job and
// pass for one warehouse of an inventory
func (r *GormCountingDetailRepository) FindResultObservations(ctx context.Context, inventoryID, warehouseID int64) ([]inventory.ResultObservation, error) {
	var rows []resultObservationRow
	err := r.db.WithContext(ctx).
		Table("counting_details d").
		Select(`l.id AS location_id,
			l.reference AS location_reference,
			COALESCE(l.location_code, '') AS location_code,
			d.product_id AS product_id,
			COALESCE(p.reference, '') AS product_reference,
			COALESCE(p.barcode, '') AS product_barcode,
			COALESCE(p.description, '') AS product_label,
			COALESCE(p.internal_code, '') AS product_code,
			d.job_id AS job_id,
			COALESCE(j.reference, '') AS job_reference,
			c.pass_order AS pass_order,
			SUM(d.quantity) AS quantity`).
		Joins("JOIN countings c ON c.id = d.counting_id").
		Joins("JOIN locations l ON l.id = d.location_id").
		Joins("LEFT JOIN products p ON p.id = d.product_id").
		Joins("LEFT JOIN jobs j ON j.id = d.job_id").
		Where("c.inventory_id = ? AND l.warehouse_id = ?", inventoryID, warehouseID).
		Group("l.id, l.reference, l.location_code, d.product_id, p.reference, p.barcode, p.description, p.internal_code, d.job_id, j.reference, c.pass_order").
		Order("l.reference, c.pass_order").
		Scan(&rows).Error
	if err != nil {
		return nil, translateError(err, "résultats d'inventaire")
	}

	out := make([]inventory.ResultObservation, len(rows))
	for i, row := range rows {
		out[i] = inventory.ResultObservation{
			LocationID:        row.LocationID,
			LocationReference: row.LocationReference,
			LocationCode:      row.LocationCode,
			ProductID:         row.ProductID,
			ProductReference:  row.ProductReference,
			ProductBarcode:    row.ProductBarcode,
			ProductLabel:      row.ProductLabel,
			ProductCode:       row.ProductCode,
			JobID:             row.JobID,
			JobReference:      row.JobReference,
			Order:             row.PassOrder,
			Quantity:          row.Quantity,
		}
	}
	return out, nil
}

// whereNullable matches column against value, or IS NULL when value is nil
func whereNullable(query *gorm.DB, column string, value *int64) *gorm.DB {
	if value == nil {
		return query.Where(column + " IS NULL")
	}
	return query.Where(column+" = ?", *value)
}

var _ inventory.CountingDetailRepository = (*GormCountingDetailRepository)(nil)
