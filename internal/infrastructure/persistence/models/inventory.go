package models

import (
	"time"

	"github.com/wms/backend/internal/domain/inventory"
)

// InventoryModel is the persistence model for the Inventory aggregate root.
// Status timestamps are stored as one nullable column per status.
type InventoryModel struct {
	AggregateModel
	Reference       string     `gorm:"type:varchar(50);not null;uniqueIndex"`
	Label           string     `gorm:"type:varchar(100);not null;index"`
	Date            time.Time  `gorm:"not null"`
	Status          string     `gorm:"type:varchar(20);not null;index"`
	InventoryType   string     `gorm:"type:varchar(20);not null;default:GENERAL"`
	EnPreparationAt *time.Time
	EnRealisationAt *time.Time
	TermineAt       *time.Time
	ClotureAt       *time.Time
	IsDeleted       bool `gorm:"not null;default:false;index"`
	// Associations
	Settings  []SettingModel  `gorm:"foreignKey:InventoryID;references:ID"`
	Countings []CountingModel `gorm:"foreignKey:InventoryID;references:ID"`
}

// TableName returns the table name for GORM
func (InventoryModel) TableName() string {
	return "inventories"
}

// statusColumns lists the timestamp column of each status
func (m *InventoryModel) statusColumns() map[inventory.InventoryStatus]**time.Time {
	return map[inventory.InventoryStatus]**time.Time{
		inventory.InventoryStatusEnPreparation: &m.EnPreparationAt,
		inventory.InventoryStatusEnRealisation: &m.EnRealisationAt,
		inventory.InventoryStatusTermine:       &m.TermineAt,
		inventory.InventoryStatusCloture:       &m.ClotureAt,
	}
}

// ToDomain converts the persistence model to a domain Inventory
func (m *InventoryModel) ToDomain() *inventory.Inventory {
	inv := &inventory.Inventory{
		Reference:   m.Reference,
		Label:       m.Label,
		Date:        m.Date,
		Status:      inventory.InventoryStatus(m.Status),
		Type:        inventory.InventoryType(m.InventoryType),
		StatusDates: make(inventory.StatusTimestamps),
		IsDeleted:   m.IsDeleted,
		Settings:    make([]inventory.Setting, len(m.Settings)),
		Countings:   make([]inventory.Counting, len(m.Countings)),
	}
	m.PopulateAggregateRoot(&inv.BaseAggregateRoot)
	for status, col := range m.statusColumns() {
		if *col != nil {
			inv.StatusDates[status] = **col
		}
	}
	for i := range m.Settings {
		inv.Settings[i] = *m.Settings[i].ToDomain()
	}
	for i := range m.Countings {
		inv.Countings[i] = *m.Countings[i].ToDomain()
	}
	return inv
}

// FromDomain populates the persistence model from a domain Inventory.
// Associations are not copied; repositories write them explicitly.
func (m *InventoryModel) FromDomain(inv *inventory.Inventory) {
	m.FromDomainAggregateRoot(inv.BaseAggregateRoot)
	m.Reference = inv.Reference
	m.Label = inv.Label
	m.Date = inv.Date
	m.Status = inv.Status.String()
	m.InventoryType = string(inv.Type)
	m.IsDeleted = inv.IsDeleted
	for status, col := range m.statusColumns() {
		*col = inv.StatusDates.At(status)
	}
}

// InventoryModelFromDomain creates a new persistence model from a domain Inventory
func InventoryModelFromDomain(inv *inventory.Inventory) *InventoryModel {
	m := &InventoryModel{}
	m.FromDomain(inv)
	return m
}

// SettingModel links an inventory to one warehouse of an account
type SettingModel struct {
	BaseModel
	Reference   string `gorm:"type:varchar(50);not null;uniqueIndex"`
	InventoryID int64  `gorm:"not null;uniqueIndex:idx_setting_inventory_warehouse,priority:1"`
	WarehouseID int64  `gorm:"not null;uniqueIndex:idx_setting_inventory_warehouse,priority:2"`
	AccountID   int64  `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (SettingModel) TableName() string {
	return "inventory_settings"
}

// ToDomain converts the persistence model to a domain Setting
func (m *SettingModel) ToDomain() *inventory.Setting {
	return &inventory.Setting{
		BaseEntity:  m.BaseModel.ToDomain(),
		Reference:   m.Reference,
		InventoryID: m.InventoryID,
		WarehouseID: m.WarehouseID,
		AccountID:   m.AccountID,
	}
}

// SettingModelFromDomain creates a persistence model from a domain Setting
func SettingModelFromDomain(s *inventory.Setting) *SettingModel {
	m := &SettingModel{
		Reference:   s.Reference,
		InventoryID: s.InventoryID,
		WarehouseID: s.WarehouseID,
		AccountID:   s.AccountID,
	}
	m.FromDomainBaseEntity(s.BaseEntity)
	return m
}

// CountingModel is one ordered pass of an inventory
type CountingModel struct {
	BaseModel
	InventoryID    int64  `gorm:"not null;uniqueIndex:idx_counting_inventory_order,priority:1"`
	PassOrder      int    `gorm:"not null;uniqueIndex:idx_counting_inventory_order,priority:2"`
	CountMode      string `gorm:"type:varchar(20);not null"`
	UnitScanned    bool   `gorm:"not null;default:false"`
	EntryQuantity  bool   `gorm:"not null;default:false"`
	IsVariant      bool   `gorm:"not null;default:false"`
	StockSituation bool   `gorm:"not null;default:false"`
	NLot           bool   `gorm:"column:n_lot;not null;default:false"`
	NSerie         bool   `gorm:"column:n_serie;not null;default:false"`
	DLC            bool   `gorm:"column:dlc;not null;default:false"`
	ShowProduct    bool   `gorm:"not null;default:false"`
	QuantityShow   bool   `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (CountingModel) TableName() string {
	return "countings"
}

// ToDomain converts the persistence model to a domain Counting
func (m *CountingModel) ToDomain() *inventory.Counting {
	return &inventory.Counting{
		BaseEntity:  m.BaseModel.ToDomain(),
		InventoryID: m.InventoryID,
		Order:       m.PassOrder,
		Mode:        inventory.CountMode(m.CountMode),
		CountingFlags: inventory.CountingFlags{
			UnitScanned:    m.UnitScanned,
			EntryQuantity:  m.EntryQuantity,
			IsVariant:      m.IsVariant,
			StockSituation: m.StockSituation,
			NLot:           m.NLot,
			NSerie:         m.NSerie,
			DLC:            m.DLC,
			ShowProduct:    m.ShowProduct,
			QuantityShow:   m.QuantityShow,
		},
	}
}

// CountingModelFromDomain creates a persistence model from a domain Counting
func CountingModelFromDomain(c *inventory.Counting) *CountingModel {
	m := &CountingModel{
		InventoryID:    c.InventoryID,
		PassOrder:      c.Order,
		CountMode:      c.Mode.String(),
		UnitScanned:    c.UnitScanned,
		EntryQuantity:  c.EntryQuantity,
		IsVariant:      c.IsVariant,
		StockSituation: c.StockSituation,
		NLot:           c.NLot,
		NSerie:         c.NSerie,
		DLC:            c.DLC,
		ShowProduct:    c.ShowProduct,
		QuantityShow:   c.QuantityShow,
	}
	m.FromDomainBaseEntity(c.BaseEntity)
	return m
}
