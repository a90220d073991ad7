package persistence

import (
	"context"
	"time"

	"github.com/wms/backend/internal/domain/inventory"
	"github.com/wms/backend/internal/domain/shared"
	"github.com/wms/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormEcartComptageRepository implements EcartComptageRepository using GORM
type GormEcartComptageRepository struct {
	db *gorm.DB
}

// NewGormEcartComptageRepository creates a new GormEcartComptageRepository
func NewGormEcartComptageRepository(db *gorm.DB) *GormEcartComptageRepository {
	return &GormEcartComptageRepository{db: db}
}

// FindByID finds a discrepancy with its sequences
func (r *GormEcartComptageRepository) FindByID(ctx context.Context, id int64) (*inventory.EcartComptage, error) {
	return r.findOne(ctx, r.db.WithContext(ctx).Where("id = ?", id))
}

// FindByIDForUpdate finds a discrepancy and locks its row
func (r *GormEcartComptageRepository) FindByIDForUpdate(ctx context.Context, id int64) (*inventory.EcartComptage, error) {
	return r.findOne(ctx, r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id))
}

// FindByKeyForUpdate finds the discrepancy of a key and locks its row
func (r *GormEcartComptageRepository) FindByKeyForUpdate(ctx context.Context, key inventory.DiscrepancyKey) (*inventory.EcartComptage, error) {
	return r.findOne(ctx, r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("inventory_id = ? AND location_id = ? AND product_key = ?", key.InventoryID, key.LocationID, key.ProductKey()))
}

func (r *GormEcartComptageRepository) findOne(ctx context.Context, query *gorm.DB) (*inventory.EcartComptage, error) {
	var model models.EcartComptageModel
	if err := query.First(&model).Error; err != nil {
		return nil, translateError(err, "écart de comptage")
	}
	if err := r.loadSequences(ctx, []*models.EcartComptageModel{&model}); err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

func (r *GormEcartComptageRepository) loadSequences(ctx context.Context, rows []*models.EcartComptageModel) error {
	if len(rows) == 0 {
		return nil
	}
	ids := make([]int64, len(rows))
	byID := make(map[int64]*models.EcartComptageModel, len(rows))
	for i, m := range rows {
		ids[i] = m.ID
		byID[m.ID] = m
		m.Sequences = nil
	}
	var sequences []models.ComptageSequenceModel
	if err := r.db.WithContext(ctx).
		Where("ecart_comptage_id IN ?", ids).
		Order("ecart_comptage_id, sequence_number").
		Find(&sequences).Error; err != nil {
		return translateError(err, "séquences de comptage")
	}
	for _, s := range sequences {
		byID[s.EcartComptageID].Sequences = append(byID[s.EcartComptageID].Sequences, s)
	}
	return nil
}

// FindByInventory lists the discrepancies of an inventory. The "resolved"
// filter key narrows to resolved or open rows. A filter with PageSize <= 0
// returns every row.
func (r *GormEcartComptageRepository) FindByInventory(ctx context.Context, inventoryID int64, filter shared.Filter) ([]inventory.EcartComptage, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.EcartComptageModel{}).Where("inventory_id = ?", inventoryID)
	for key, value := range filter.Filters {
		switch key {
		case "resolved":
			if resolved, ok := value.(bool); ok {
				query = query.Where("resolved = ?", resolved)
			}
		case "location_id":
			query = query.Where("location_id = ?", value)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translateError(err, "écarts de comptage")
	}

	query = query.Order(ecartSort.orderBy(filter.OrderBy, filter.OrderDir))
	if filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}

	var rows []models.EcartComptageModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, translateError(err, "écarts de comptage")
	}
	ptrs := make([]*models.EcartComptageModel, len(rows))
	for i := range rows {
		ptrs[i] = &rows[i]
	}
	if err := r.loadSequences(ctx, ptrs); err != nil {
		return nil, 0, err
	}

	out := make([]inventory.EcartComptage, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, total, nil
}

// Create inserts the discrepancy and its sequences. A concurrent insert
// for the same key fails on the unique key index.
func (r *GormEcartComptageRepository) Create(ctx context.Context, ecart *inventory.EcartComptage) error {
	model := models.EcartComptageModelFromDomain(ecart)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(model).Error; err != nil {
		return translateError(err, "écart de comptage")
	}
	ecart.ID = model.ID
	return r.writeSequences(ctx, ecart)
}

// Save updates the discrepancy row, inserts new sequences and rewrites
// the existing ones
func (r *GormEcartComptageRepository) Save(ctx context.Context, ecart *inventory.EcartComptage) error {
	model := models.EcartComptageModelFromDomain(ecart)
	if model.UpdatedAt.IsZero() {
		model.UpdatedAt = time.Now()
	}
	result := r.db.WithContext(ctx).Model(&models.EcartComptageModel{}).
		Where("id = ?", ecart.ID).
		Updates(map[string]interface{}{
			"total_sequences":  model.TotalSequences,
			"stopped_sequence": model.StoppedSequence,
			"final_result":     model.FinalResult,
			"resolved":         model.Resolved,
			"justification":    model.Justification,
			"stopped_reason":   model.StoppedReason,
			"version":          model.Version,
			"updated_at":       model.UpdatedAt,
		})
	if result.Error != nil {
		return translateError(result.Error, "écart de comptage")
	}
	if result.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound, "écart de comptage")
	}
	if err := r.deleteDroppedSequences(ctx, ecart); err != nil {
		return err
	}
	return r.writeSequences(ctx, ecart)
}

// FindByCountingSource lists the discrepancies holding a sequence of a pass
// detail with the given source
func (r *GormEcartComptageRepository) FindByCountingSource(ctx context.Context, countingID int64, source inventory.DetailSource) ([]inventory.EcartComptage, error) {
	referencing := r.db.Table("comptage_sequences").
		Select("comptage_sequences.ecart_comptage_id").
		Joins("JOIN counting_details ON counting_details.id = comptage_sequences.counting_detail_id").
		Where("counting_details.counting_id = ? AND counting_details.source = ?", countingID, string(source))

	var rows []models.EcartComptageModel
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN (?)", referencing).
		Order("id").
		Find(&rows).Error; err != nil {
		return nil, translateError(err, "écarts de comptage")
	}
	ptrs := make([]*models.EcartComptageModel, len(rows))
	for i := range rows {
		ptrs[i] = &rows[i]
	}
	if err := r.loadSequences(ctx, ptrs); err != nil {
		return nil, err
	}
	out := make([]inventory.EcartComptage, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, nil
}

// Delete removes the discrepancy and its sequences
func (r *GormEcartComptageRepository) Delete(ctx context.Context, id int64) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("ecart_comptage_id = ?", id).Delete(&models.ComptageSequenceModel{}).Error; err != nil {
		return translateError(err, "séquences de comptage")
	}
	result := db.Where("id = ?", id).Delete(&models.EcartComptageModel{})
	if result.Error != nil {
		return translateError(result.Error, "écart de comptage")
	}
	if result.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound, "écart de comptage")
	}
	return nil
}

// deleteDroppedSequences removes the persisted sequences the aggregate no
// longer holds, before the kept ones are renumbered
func (r *GormEcartComptageRepository) deleteDroppedSequences(ctx context.Context, ecart *inventory.EcartComptage) error {
	kept := make([]int64, 0, len(ecart.Sequences))
	for _, seq := range ecart.Sequences {
		if seq.ID != 0 {
			kept = append(kept, seq.ID)
		}
	}
	query := r.db.WithContext(ctx).Where("ecart_comptage_id = ?", ecart.ID)
	if len(kept) > 0 {
		query = query.Where("id NOT IN ?", kept)
	}
	if err := query.Delete(&models.ComptageSequenceModel{}).Error; err != nil {
		return translateError(err, "séquences de comptage")
	}
	return nil
}

func (r *GormEcartComptageRepository) writeSequences(ctx context.Context, ecart *inventory.EcartComptage) error {
	db := r.db.WithContext(ctx)
	for i := range ecart.Sequences {
		seq := &ecart.Sequences[i]
		seq.EcartComptageID = ecart.ID
		m := models.ComptageSequenceModelFromDomain(seq)
		if seq.ID == 0 {
			if err := db.Create(m).Error; err != nil {
				return translateError(err, "séquence de comptage")
			}
			seq.ID = m.ID
			continue
		}
		if err := db.Model(&models.ComptageSequenceModel{}).
			Where("id = ?", seq.ID).
			Updates(map[string]interface{}{
				"sequence_number":     m.SequenceNumber,
				"quantity":            m.Quantity,
				"ecart_with_previous": m.EcartWithPrevious,
				"updated_at":          m.UpdatedAt,
			}).Error; err != nil {
			return translateError(err, "séquence de comptage")
		}
	}
	return nil
}

var _ inventory.EcartComptageRepository = (*GormEcartComptageRepository)(nil)
