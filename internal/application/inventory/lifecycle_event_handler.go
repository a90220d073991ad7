package inventory

import (
	"context"
	"fmt"

	"github.com/wms/backend/internal/domain/inventory"
	"github.com/wms/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// LifecycleNotice is the message sent to supervisors when an inventory
// changes status or a discrepancy is resolved
type LifecycleNotice struct {
	EventType   string `json:"event_type"`
	InventoryID int64  `json:"inventory_id"`
	Reference   string `json:"reference,omitempty"`
	FromStatus  string `json:"from_status,omitempty"`
	ToStatus    string `json:"to_status,omitempty"`
	EcartID     int64  `json:"ecart_id,omitempty"`
	FinalResult *int   `json:"final_result,omitempty"`
}

// LifecycleNotifier delivers lifecycle notices
type LifecycleNotifier interface {
	Notify(ctx context.Context, notice LifecycleNotice) error
}

// LifecycleEventHandler audits inventory lifecycle and discrepancy events
type LifecycleEventHandler struct {
	logger   *zap.Logger
	notifier LifecycleNotifier
}

// NewLifecycleEventHandler creates a new handler for lifecycle events
func NewLifecycleEventHandler(logger *zap.Logger) *LifecycleEventHandler {
	return &LifecycleEventHandler{logger: logger}
}

// WithNotifier sets the notifier for lifecycle notices
func (h *LifecycleEventHandler) WithNotifier(notifier LifecycleNotifier) *LifecycleEventHandler {
	h.notifier = notifier
	return h
}

// EventTypes returns the event types this handler is interested in
func (h *LifecycleEventHandler) EventTypes() []string {
	return []string{
		inventory.EventTypeInventoryCreated,
		inventory.EventTypeInventoryLaunched,
		inventory.EventTypeInventoryCancelled,
		inventory.EventTypeInventoryCompleted,
		inventory.EventTypeInventoryClosed,
		inventory.EventTypeEcartResolved,
	}
}

// Handle turns the event into a notice, logs it and forwards it to the notifier
func (h *LifecycleEventHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	notice, err := noticeFor(event)
	if err != nil {
		h.logger.Error("unexpected event type", zap.String("actual", event.EventType()))
		return err
	}

	h.logger.Info("inventory lifecycle event",
		zap.String("event_type", notice.EventType),
		zap.Int64("inventory_id", notice.InventoryID),
		zap.String("reference", notice.Reference),
		zap.String("from_status", notice.FromStatus),
		zap.String("to_status", notice.ToStatus),
		zap.Int64("ecart_id", notice.EcartID),
	)

	if h.notifier != nil {
		if err := h.notifier.Notify(ctx, notice); err != nil {
			// Notification failure does not fail the event handling
			h.logger.Error("failed to send lifecycle notice",
				zap.Int64("inventory_id", notice.InventoryID),
				zap.Error(err),
			)
		}
	}
	return nil
}

func noticeFor(event shared.DomainEvent) (LifecycleNotice, error) {
	notice := LifecycleNotice{EventType: event.EventType()}
	switch e := event.(type) {
	case *inventory.InventoryCreatedEvent:
		notice.InventoryID = e.AggregateID()
		notice.Reference = e.Reference
		notice.ToStatus = inventory.InventoryStatusEnPreparation.String()
	case *inventory.InventoryLaunchedEvent:
		fillStatusChange(&notice, &e.InventoryStatusChangedEvent)
	case *inventory.InventoryCancelledEvent:
		fillStatusChange(&notice, &e.InventoryStatusChangedEvent)
	case *inventory.InventoryCompletedEvent:
		fillStatusChange(&notice, &e.InventoryStatusChangedEvent)
	case *inventory.InventoryClosedEvent:
		fillStatusChange(&notice, &e.InventoryStatusChangedEvent)
	case *inventory.EcartResolvedEvent:
		result := e.FinalResult
		notice.InventoryID = e.InventoryID
		notice.EcartID = e.AggregateID()
		notice.FinalResult = &result
	default:
		return notice, fmt.Errorf("unexpected event type: %s", event.EventType())
	}
	return notice, nil
}

func fillStatusChange(notice *LifecycleNotice, e *inventory.InventoryStatusChangedEvent) {
	notice.InventoryID = e.AggregateID()
	notice.Reference = e.Reference
	notice.FromStatus = e.FromStatus.String()
	notice.ToStatus = e.ToStatus.String()
}

// Ensure LifecycleEventHandler implements shared.EventHandler
var _ shared.EventHandler = (*LifecycleEventHandler)(nil)

// LoggingLifecycleNotifier is a notifier that only logs notices
type LoggingLifecycleNotifier struct {
	logger *zap.Logger
}

// NewLoggingLifecycleNotifier creates a new logging notifier
func NewLoggingLifecycleNotifier(logger *zap.Logger) *LoggingLifecycleNotifier {
	return &LoggingLifecycleNotifier{logger: logger}
}

// Notify logs the notice
func (n *LoggingLifecycleNotifier) Notify(ctx context.Context, notice LifecycleNotice) error {
	n.logger.Info("LIFECYCLE NOTICE",
		zap.String("type", notice.EventType),
		zap.Int64("inventory_id", notice.InventoryID),
		zap.String("to_status", notice.ToStatus),
	)
	return nil
}
