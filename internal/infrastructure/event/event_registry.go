package event

import (
	"github.com/wms/backend/internal/domain/inventory"
)

// RegisterInventoryEvents registers the inventory event types with the serializer
func RegisterInventoryEvents(serializer *EventSerializer) {
	serializer.Register(inventory.EventTypeInventoryCreated, &inventory.InventoryCreatedEvent{})
	serializer.Register(inventory.EventTypeInventoryLaunched, &inventory.InventoryLaunchedEvent{})
	serializer.Register(inventory.EventTypeInventoryCancelled, &inventory.InventoryCancelledEvent{})
	serializer.Register(inventory.EventTypeInventoryCompleted, &inventory.InventoryCompletedEvent{})
	serializer.Register(inventory.EventTypeInventoryClosed, &inventory.InventoryClosedEvent{})
	serializer.Register(inventory.EventTypeEcartResolved, &inventory.EcartResolvedEvent{})
}
