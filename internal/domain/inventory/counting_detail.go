package inventory

import (
	"github.com/wms/backend/internal/domain/shared"
)

// DetailSource tells operator captures apart from snapshot seeding
type DetailSource string

const (
	DetailSourceManual   DetailSource = "MANUAL"
	DetailSourceSnapshot DetailSource = "SNAPSHOT"
)

// CountingDetail is one observed quantity for a location (and product, when
// the pass counts per article) within one counting pass
type CountingDetail struct {
	shared.BaseEntity
	CountingID int64
	LocationID int64
	ProductID  *int64
	JobID      *int64
	Quantity   int
	Source     DetailSource
}

// NewCountingDetail creates an operator capture
func NewCountingDetail(countingID, locationID int64, productID, jobID *int64, quantity int) (*CountingDetail, error) {
	var result shared.ValidationResult
	if countingID <= 0 {
		result.AddError("detail.counting.required", 0, "counting_id", "Le comptage est obligatoire")
	}
	if locationID <= 0 {
		result.AddError("detail.location.required", 0, "location_id", "L'emplacement est obligatoire")
	}
	if quantity < 0 {
		result.AddError("detail.quantity.negative", 0, "quantity", "La quantité ne peut pas être négative")
	}
	if err := result.Err(shared.ErrInvalidInput.Code); err != nil {
		return nil, err
	}
	return &CountingDetail{
		BaseEntity: shared.NewBaseEntity(),
		CountingID: countingID,
		LocationID: locationID,
		ProductID:  productID,
		JobID:      jobID,
		Quantity:   quantity,
		Source:     DetailSourceManual,
	}, nil
}

// SnapshotDetails seeds one detail per stock row into a stock-image pass.
// With byLocation the rows are summed per location and carry no product,
// so they share the discrepancy key of the bulk captures that follow.
func SnapshotDetails(countingID int64, rows []StockRow, byLocation bool) []CountingDetail {
	details := make([]CountingDetail, 0, len(rows))
	index := make(map[int64]int)
	for _, row := range rows {
		if byLocation {
			if i, ok := index[row.LocationID]; ok {
				details[i].Quantity += row.Quantity
				continue
			}
			index[row.LocationID] = len(details)
		}
		var productID *int64
		if !byLocation {
			id := row.ProductID
			productID = &id
		}
		details = append(details, CountingDetail{
			BaseEntity: shared.NewBaseEntity(),
			CountingID: countingID,
			LocationID: row.LocationID,
			ProductID:  productID,
			Quantity:   row.Quantity,
			Source:     DetailSourceSnapshot,
		})
	}
	return details
}

// Correct replaces the captured quantity
func (d *CountingDetail) Correct(quantity int) error {
	if quantity < 0 {
		return shared.NewDomainError(shared.ErrInvalidInput.Code, "La quantité ne peut pas être négative")
	}
	d.Quantity = quantity
	d.Touch()
	return nil
}

// Key returns the discrepancy key the detail contributes to
func (d *CountingDetail) Key(inventoryID int64) DiscrepancyKey {
	return DiscrepancyKey{InventoryID: inventoryID, LocationID: d.LocationID, ProductID: d.ProductID}
}

// Observation is a persisted detail together with its pass order
type Observation struct {
	CountingDetail
	Order int
}

// DiscrepancyKey identifies the EcartComptage a detail belongs to
type DiscrepancyKey struct {
	InventoryID int64
	LocationID  int64
	ProductID   *int64
}

// ProductKey returns the product id, or 0 for location-level counts
func (k DiscrepancyKey) ProductKey() int64 {
	if k.ProductID == nil {
		return 0
	}
	return *k.ProductID
}
