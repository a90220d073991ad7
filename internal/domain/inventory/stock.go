package inventory

// Location is a storage slot of a warehouse
type Location struct {
	ID          int64
	Reference   string
	Code        string
	WarehouseID int64
	GroupingID  *int64
	IsActive    bool
}

// Product is the master-data view of a counted product
type Product struct {
	ID           int64
	Reference    string
	Barcode      string
	Description  string
	InternalCode string
}

// StockRow is one line of the theoretical stock snapshot imported for an
// inventory
type StockRow struct {
	ID          int64
	InventoryID int64
	LocationID  int64
	ProductID   int64
	Quantity    int
}
