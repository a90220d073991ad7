package telemetry

import (
	"context"
	"fmt"

	"github.com/wms/backend/internal/domain/inventory"
	"github.com/wms/backend/internal/domain/shared"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// OpenEcartCounter counts the discrepancies awaiting adjudication
type OpenEcartCounter interface {
	CountOpenEcarts(ctx context.Context) (int64, error)
}

// GormOpenEcartCounter counts unresolved rows of ecart_comptages
type GormOpenEcartCounter struct {
	db *gorm.DB
}

// NewGormOpenEcartCounter creates a counter over the discrepancy table
func NewGormOpenEcartCounter(db *gorm.DB) *GormOpenEcartCounter {
	return &GormOpenEcartCounter{db: db}
}

// CountOpenEcarts counts unresolved discrepancies of non-deleted inventories
func (c *GormOpenEcartCounter) CountOpenEcarts(ctx context.Context) (int64, error) {
	var count int64
	err := c.db.WithContext(ctx).
		Table("ecart_comptages").
		Joins("JOIN inventories ON inventories.id = ecart_comptages.inventory_id").
		Where("ecart_comptages.resolved = ? AND inventories.is_deleted = ?", false, false).
		Count(&count).Error
	return count, err
}

// InventoryMetrics records lifecycle and reconciliation metrics from domain
// events. It is subscribed to the event bus like any other handler.
type InventoryMetrics struct {
	transitions *Counter
	resolutions *Counter
	logger      *zap.Logger
}

// NewInventoryMetrics creates the instruments. When counter is not nil an
// observable gauge reports the open discrepancies at each collection.
func NewInventoryMetrics(meter metric.Meter, counter OpenEcartCounter, logger *zap.Logger) (*InventoryMetrics, error) {
	transitions, err := NewCounter(meter, "wms.inventory.transitions", "Inventory status transitions", "{transition}")
	if err != nil {
		return nil, err
	}
	resolutions, err := NewCounter(meter, "wms.ecart.resolutions", "Discrepancies resolved", "{ecart}")
	if err != nil {
		return nil, err
	}

	if counter != nil {
		_, err = meter.Int64ObservableGauge("wms.ecart.open",
			metric.WithDescription("Discrepancies awaiting adjudication"),
			metric.WithUnit("{ecart}"),
			metric.WithInt64Callback(func(ctx context.Context, o metric.Int64Observer) error {
				n, err := counter.CountOpenEcarts(ctx)
				if err != nil {
					logger.Warn("Failed to count open discrepancies", zap.Error(err))
					return nil
				}
				o.Observe(n)
				return nil
			}))
		if err != nil {
			return nil, fmt.Errorf("failed to create gauge wms.ecart.open: %w", err)
		}
	}

	return &InventoryMetrics{transitions: transitions, resolutions: resolutions, logger: logger}, nil
}

// EventTypes returns the events that feed the metrics
func (m *InventoryMetrics) EventTypes() []string {
	return []string{
		inventory.EventTypeInventoryCreated,
		inventory.EventTypeInventoryLaunched,
		inventory.EventTypeInventoryCancelled,
		inventory.EventTypeInventoryCompleted,
		inventory.EventTypeInventoryClosed,
		inventory.EventTypeEcartResolved,
	}
}

// Handle records the event
func (m *InventoryMetrics) Handle(ctx context.Context, event shared.DomainEvent) error {
	switch e := event.(type) {
	case *inventory.InventoryCreatedEvent:
		m.transitions.Inc(ctx, AttrEventType.String(e.EventType()),
			AttrToStatus.String(inventory.InventoryStatusEnPreparation.String()))
	case *inventory.InventoryLaunchedEvent:
		m.transition(ctx, &e.InventoryStatusChangedEvent)
	case *inventory.InventoryCancelledEvent:
		m.transition(ctx, &e.InventoryStatusChangedEvent)
	case *inventory.InventoryCompletedEvent:
		m.transition(ctx, &e.InventoryStatusChangedEvent)
	case *inventory.InventoryClosedEvent:
		m.transition(ctx, &e.InventoryStatusChangedEvent)
	case *inventory.EcartResolvedEvent:
		m.resolutions.Inc(ctx, AttrStoppedReason.String(e.StoppedReason))
	default:
		m.logger.Debug("Ignoring event for metrics", zap.String("event_type", event.EventType()))
	}
	return nil
}

func (m *InventoryMetrics) transition(ctx context.Context, e *inventory.InventoryStatusChangedEvent) {
	m.transitions.Inc(ctx, AttrEventType.String(e.EventType()), AttrToStatus.String(e.ToStatus.String()))
}

var _ shared.EventHandler = (*InventoryMetrics)(nil)
