package inventory

import (
	"github.com/wms/backend/internal/domain/shared"
)

// Aggregate type constants
const (
	AggregateTypeInventory     = "Inventory"
	AggregateTypeEcartComptage = "EcartComptage"
)

// Inventory event type constants
const (
	EventTypeInventoryCreated   = "InventoryCreated"
	EventTypeInventoryLaunched  = "InventoryLaunched"
	EventTypeInventoryCancelled = "InventoryCancelled"
	EventTypeInventoryCompleted = "InventoryCompleted"
	EventTypeInventoryClosed    = "InventoryClosed"
	EventTypeEcartResolved      = "EcartComptageResolved"
)

// InventoryCreatedEvent is raised when an inventory is created
type InventoryCreatedEvent struct {
	shared.BaseDomainEvent
	Reference     string        `json:"reference"`
	Label         string        `json:"label"`
	InventoryType InventoryType `json:"inventory_type"`
	WarehouseIDs  []int64       `json:"warehouse_ids"`
}

// NewInventoryCreatedEvent creates a new InventoryCreatedEvent
func NewInventoryCreatedEvent(inv *Inventory) *InventoryCreatedEvent {
	return &InventoryCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeInventoryCreated, AggregateTypeInventory, inv.ID),
		Reference:       inv.Reference,
		Label:           inv.Label,
		InventoryType:   inv.Type,
		WarehouseIDs:    inv.WarehouseIDs(),
	}
}

// InventoryStatusChangedEvent carries the fields shared by lifecycle events
type InventoryStatusChangedEvent struct {
	shared.BaseDomainEvent
	Reference  string          `json:"reference"`
	FromStatus InventoryStatus `json:"from_status"`
	ToStatus   InventoryStatus `json:"to_status"`
}

func newStatusChanged(eventType string, inv *Inventory, from InventoryStatus) InventoryStatusChangedEvent {
	return InventoryStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(eventType, AggregateTypeInventory, inv.ID),
		Reference:       inv.Reference,
		FromStatus:      from,
		ToStatus:        inv.Status,
	}
}

// InventoryLaunchedEvent is raised when counting starts
type InventoryLaunchedEvent struct {
	InventoryStatusChangedEvent
	StartsFromStockImage bool `json:"starts_from_stock_image"`
}

// NewInventoryLaunchedEvent creates a new InventoryLaunchedEvent
func NewInventoryLaunchedEvent(inv *Inventory) *InventoryLaunchedEvent {
	return &InventoryLaunchedEvent{
		InventoryStatusChangedEvent: newStatusChanged(EventTypeInventoryLaunched, inv, InventoryStatusEnPreparation),
		StartsFromStockImage:        inv.StartsFromStockImage(),
	}
}

// InventoryCancelledEvent is raised when a launched inventory goes back to preparation
type InventoryCancelledEvent struct {
	InventoryStatusChangedEvent
}

// NewInventoryCancelledEvent creates a new InventoryCancelledEvent
func NewInventoryCancelledEvent(inv *Inventory) *InventoryCancelledEvent {
	return &InventoryCancelledEvent{
		InventoryStatusChangedEvent: newStatusChanged(EventTypeInventoryCancelled, inv, InventoryStatusEnRealisation),
	}
}

// InventoryCompletedEvent is raised when every job of the inventory is done
type InventoryCompletedEvent struct {
	InventoryStatusChangedEvent
}

// NewInventoryCompletedEvent creates a new InventoryCompletedEvent
func NewInventoryCompletedEvent(inv *Inventory) *InventoryCompletedEvent {
	return &InventoryCompletedEvent{
		InventoryStatusChangedEvent: newStatusChanged(EventTypeInventoryCompleted, inv, InventoryStatusEnRealisation),
	}
}

// InventoryClosedEvent is raised when a finished inventory is closed
type InventoryClosedEvent struct {
	InventoryStatusChangedEvent
}

// NewInventoryClosedEvent creates a new InventoryClosedEvent
func NewInventoryClosedEvent(inv *Inventory) *InventoryClosedEvent {
	return &InventoryClosedEvent{
		InventoryStatusChangedEvent: newStatusChanged(EventTypeInventoryClosed, inv, InventoryStatusTermine),
	}
}

// EcartResolvedEvent is raised when a discrepancy is marked resolved
type EcartResolvedEvent struct {
	shared.BaseDomainEvent
	InventoryID   int64  `json:"inventory_id"`
	LocationID    int64  `json:"location_id"`
	ProductID     *int64 `json:"product_id,omitempty"`
	FinalResult   int    `json:"final_result"`
	StoppedReason string `json:"stopped_reason"`
}

// NewEcartResolvedEvent creates a new EcartResolvedEvent
func NewEcartResolvedEvent(e *EcartComptage) *EcartResolvedEvent {
	evt := &EcartResolvedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeEcartResolved, AggregateTypeEcartComptage, e.ID),
		InventoryID:     e.InventoryID,
		LocationID:      e.LocationID,
		ProductID:       e.ProductID,
	}
	if e.FinalResult != nil {
		evt.FinalResult = *e.FinalResult
	}
	if e.StoppedReason != nil {
		evt.StoppedReason = *e.StoppedReason
	}
	return evt
}
