package persistence

import (
	"context"
	"strings"
	"time"

	"github.com/wms/backend/internal/domain/inventory"
	"github.com/wms/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormInventoryRepository implements InventoryRepository using GORM
type GormInventoryRepository struct {
	db *gorm.DB
}

// NewGormInventoryRepository creates a new GormInventoryRepository
func NewGormInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

// FindByID finds a non-deleted inventory with its settings and countings
func (r *GormInventoryRepository) FindByID(ctx context.Context, id int64) (*inventory.Inventory, error) {
	return r.find(ctx, r.db.WithContext(ctx), id)
}

// FindByIDForUpdate locks the inventory row with SELECT ... FOR UPDATE,
// then loads its associations
func (r *GormInventoryRepository) FindByIDForUpdate(ctx context.Context, id int64) (*inventory.Inventory, error) {
	return r.find(ctx, r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormInventoryRepository) find(ctx context.Context, query *gorm.DB, id int64) (*inventory.Inventory, error) {
	var model models.InventoryModel
	if err := query.Where("id = ? AND is_deleted = ?", id, false).First(&model).Error; err != nil {
		return nil, translateError(err, "inventaire")
	}
	if err := r.loadAssociations(ctx, []*models.InventoryModel{&model}); err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// loadAssociations fills the settings and countings of the given rows with
// one query per association
func (r *GormInventoryRepository) loadAssociations(ctx context.Context, rows []*models.InventoryModel) error {
	if len(rows) == 0 {
		return nil
	}
	ids := make([]int64, len(rows))
	byID := make(map[int64]*models.InventoryModel, len(rows))
	for i, m := range rows {
		ids[i] = m.ID
		byID[m.ID] = m
		m.Settings = nil
		m.Countings = nil
	}

	var settings []models.SettingModel
	if err := r.db.WithContext(ctx).Where("inventory_id IN ?", ids).Order("id").Find(&settings).Error; err != nil {
		return translateError(err, "paramétrage d'inventaire")
	}
	for _, s := range settings {
		byID[s.InventoryID].Settings = append(byID[s.InventoryID].Settings, s)
	}

	var countings []models.CountingModel
	if err := r.db.WithContext(ctx).Where("inventory_id IN ?", ids).Order("pass_order").Find(&countings).Error; err != nil {
		return translateError(err, "comptage")
	}
	for _, c := range countings {
		byID[c.InventoryID].Countings = append(byID[c.InventoryID].Countings, c)
	}
	return nil
}

// FindAll lists non-deleted inventories matching the filter
func (r *GormInventoryRepository) FindAll(ctx context.Context, filter inventory.InventoryFilter) ([]inventory.Inventory, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.InventoryModel{}).Where("is_deleted = ?", false)
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Type != nil {
		query = query.Where("inventory_type = ?", string(*filter.Type))
	}
	if filter.WarehouseID != nil {
		query = query.Where("EXISTS (SELECT 1 FROM inventory_settings s WHERE s.inventory_id = inventories.id AND s.warehouse_id = ?)", *filter.WarehouseID)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(label) LIKE ? OR LOWER(reference) LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translateError(err, "inventaires")
	}

	query = query.Order(inventorySort.orderBy(filter.OrderBy, filter.OrderDir))
	if filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}

	var rows []models.InventoryModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, translateError(err, "inventaires")
	}
	ptrs := make([]*models.InventoryModel, len(rows))
	for i := range rows {
		ptrs[i] = &rows[i]
	}
	if err := r.loadAssociations(ctx, ptrs); err != nil {
		return nil, 0, err
	}

	out := make([]inventory.Inventory, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, total, nil
}

// ExistsByLabel checks whether a non-deleted inventory other than
// excludeID uses the label
func (r *GormInventoryRepository) ExistsByLabel(ctx context.Context, label string, excludeID int64) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.InventoryModel{}).
		Where("label = ? AND is_deleted = ?", strings.TrimSpace(label), false)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, translateError(err, "inventaire")
	}
	return count > 0, nil
}

// Create inserts the inventory, then its settings and countings, and
// writes the generated ids back into the aggregate
func (r *GormInventoryRepository) Create(ctx context.Context, inv *inventory.Inventory) error {
	model := models.InventoryModelFromDomain(inv)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(model).Error; err != nil {
		return translateError(err, "inventaire")
	}
	inv.ID = model.ID
	inv.CreatedAt = model.CreatedAt
	inv.UpdatedAt = model.UpdatedAt
	return r.writeConfiguration(ctx, inv)
}

// Save updates the inventory row. Associations are left untouched.
func (r *GormInventoryRepository) Save(ctx context.Context, inv *inventory.Inventory) error {
	model := models.InventoryModelFromDomain(inv)
	if model.UpdatedAt.IsZero() {
		model.UpdatedAt = time.Now()
	}
	result := r.db.WithContext(ctx).Model(&models.InventoryModel{}).
		Where("id = ?", inv.ID).
		Updates(map[string]interface{}{
			"label":             model.Label,
			"date":              model.Date,
			"status":            model.Status,
			"inventory_type":    model.InventoryType,
			"en_preparation_at": model.EnPreparationAt,
			"en_realisation_at": model.EnRealisationAt,
			"termine_at":        model.TermineAt,
			"cloture_at":        model.ClotureAt,
			"is_deleted":        model.IsDeleted,
			"version":           model.Version,
			"updated_at":        model.UpdatedAt,
		})
	if result.Error != nil {
		return translateError(result.Error, "inventaire")
	}
	if result.RowsAffected == 0 {
		return translateError(gorm.ErrRecordNotFound, "inventaire")
	}
	return nil
}

// SaveConfiguration replaces the settings and countings of the inventory
func (r *GormInventoryRepository) SaveConfiguration(ctx context.Context, inv *inventory.Inventory) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("inventory_id = ?", inv.ID).Delete(&models.SettingModel{}).Error; err != nil {
		return translateError(err, "paramétrage d'inventaire")
	}
	if err := db.Where("inventory_id = ?", inv.ID).Delete(&models.CountingModel{}).Error; err != nil {
		return translateError(err, "comptage")
	}
	for i := range inv.Settings {
		inv.Settings[i].ID = 0
	}
	for i := range inv.Countings {
		inv.Countings[i].ID = 0
	}
	return r.writeConfiguration(ctx, inv)
}

func (r *GormInventoryRepository) writeConfiguration(ctx context.Context, inv *inventory.Inventory) error {
	db := r.db.WithContext(ctx)
	for i := range inv.Settings {
		inv.Settings[i].InventoryID = inv.ID
		m := models.SettingModelFromDomain(&inv.Settings[i])
		if err := db.Create(m).Error; err != nil {
			return translateError(err, "paramétrage d'inventaire")
		}
		inv.Settings[i].ID = m.ID
	}
	for i := range inv.Countings {
		inv.Countings[i].InventoryID = inv.ID
		m := models.CountingModelFromDomain(&inv.Countings[i])
		if err := db.Create(m).Error; err != nil {
			return translateError(err, "comptage")
		}
		inv.Countings[i].ID = m.ID
	}
	return nil
}

// GormCountingRepository implements CountingRepository using GORM
type GormCountingRepository struct {
	db *gorm.DB
}

// NewGormCountingRepository creates a new GormCountingRepository
func NewGormCountingRepository(db *gorm.DB) *GormCountingRepository {
	return &GormCountingRepository{db: db}
}

// FindByID finds a counting pass
func (r *GormCountingRepository) FindByID(ctx context.Context, id int64) (*inventory.Counting, error) {
	var model models.CountingModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err, "comptage")
	}
	return model.ToDomain(), nil
}

// FindByInventory lists the passes of an inventory in pass order
func (r *GormCountingRepository) FindByInventory(ctx context.Context, inventoryID int64) ([]inventory.Counting, error) {
	var rows []models.CountingModel
	if err := r.db.WithContext(ctx).Where("inventory_id = ?", inventoryID).Order("pass_order").Find(&rows).Error; err != nil {
		return nil, translateError(err, "comptage")
	}
	out := make([]inventory.Counting, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, nil
}

var (
	_ inventory.InventoryRepository = (*GormInventoryRepository)(nil)
	_ inventory.CountingRepository  = (*GormCountingRepository)(nil)
)
