package models

import (
	"time"

	"github.com/wms/backend/internal/domain/inventory"
)

// The models below belong to neighbouring subsystems (job assignment,
// master data, stock import). This service reads them and only writes
// them from tests and fixtures.

// JobModel is a unit of counting work
type JobModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Reference   string `gorm:"type:varchar(50);not null"`
	InventoryID int64  `gorm:"not null;index"`
	WarehouseID int64  `gorm:"not null;index"`
	Status      string `gorm:"type:varchar(20);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName returns the table name for GORM
func (JobModel) TableName() string {
	return "jobs"
}

// ToDomain converts the persistence model to a domain Job
func (m *JobModel) ToDomain() inventory.Job {
	return inventory.Job{
		ID:          m.ID,
		Reference:   m.Reference,
		InventoryID: m.InventoryID,
		WarehouseID: m.WarehouseID,
		Status:      inventory.JobStatus(m.Status),
	}
}

// JobDetailModel assigns one location to a job
type JobDetailModel struct {
	ID         int64 `gorm:"primaryKey;autoIncrement"`
	JobID      int64 `gorm:"not null;index"`
	LocationID int64 `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (JobDetailModel) TableName() string {
	return "job_details"
}

// LocationGroupingModel groups the locations of an account
type LocationGroupingModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	AccountID int64 `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (LocationGroupingModel) TableName() string {
	return "regroupements"
}

// LocationModel is a storage slot of a warehouse
type LocationModel struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	Reference      string `gorm:"type:varchar(50);not null"`
	LocationCode   string `gorm:"type:varchar(50)"`
	WarehouseID    int64  `gorm:"not null;index"`
	RegroupementID *int64 `gorm:"index"`
	IsActive       bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (LocationModel) TableName() string {
	return "locations"
}

// ToDomain converts the persistence model to a domain Location
func (m *LocationModel) ToDomain() inventory.Location {
	return inventory.Location{
		ID:          m.ID,
		Reference:   m.Reference,
		Code:        m.LocationCode,
		WarehouseID: m.WarehouseID,
		GroupingID:  m.RegroupementID,
		IsActive:    m.IsActive,
	}
}

// StockModel is one line of the theoretical stock snapshot of an inventory
type StockModel struct {
	ID          int64 `gorm:"primaryKey;autoIncrement"`
	InventoryID int64 `gorm:"not null;index"`
	LocationID  int64 `gorm:"not null;index"`
	ProductID   int64 `gorm:"not null"`
	Quantity    int   `gorm:"column:quantity_available;not null;default:0"`
}

// TableName returns the table name for GORM
func (StockModel) TableName() string {
	return "stocks"
}

// ToDomain converts the persistence model to a domain StockRow
func (m *StockModel) ToDomain() inventory.StockRow {
	return inventory.StockRow{
		ID:          m.ID,
		InventoryID: m.InventoryID,
		LocationID:  m.LocationID,
		ProductID:   m.ProductID,
		Quantity:    m.Quantity,
	}
}

// WarehouseModel is a warehouse of the master data
type WarehouseModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(100);not null"`
}

// TableName returns the table name for GORM
func (WarehouseModel) TableName() string {
	return "warehouses"
}

// AccountModel is a client account owning locations
type AccountModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(100);not null"`
}

// TableName returns the table name for GORM
func (AccountModel) TableName() string {
	return "accounts"
}

// ProductModel is the master-data view of a product
type ProductModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Reference    string `gorm:"type:varchar(50);not null"`
	Barcode      string `gorm:"type:varchar(50)"`
	Description  string `gorm:"type:varchar(255)"`
	InternalCode string `gorm:"type:varchar(50)"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// AllModels lists every model of the schema, in dependency order
func AllModels() []interface{} {
	return []interface{}{
		&AccountModel{},
		&WarehouseModel{},
		&LocationGroupingModel{},
		&LocationModel{},
		&ProductModel{},
		&InventoryModel{},
		&SettingModel{},
		&CountingModel{},
		&JobModel{},
		&JobDetailModel{},
		&StockModel{},
		&CountingDetailModel{},
		&EcartComptageModel{},
		&ComptageSequenceModel{},
	}
}
