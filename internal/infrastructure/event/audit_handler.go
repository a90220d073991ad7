package event

import (
	"context"

	"github.com/wms/backend/internal/domain/shared"
	"github.com/wms/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// AuditHandler writes every published event to the log as a JSON payload
type AuditHandler struct {
	serializer *EventSerializer
	logger     *zap.Logger
}

// NewAuditHandler creates an audit handler
func NewAuditHandler(serializer *EventSerializer, log *zap.Logger) *AuditHandler {
	return &AuditHandler{serializer: serializer, logger: log.Named("audit")}
}

// EventTypes returns nil so that the handler receives every event
func (h *AuditHandler) EventTypes() []string {
	return nil
}

// Handle logs the event with its serialized payload
func (h *AuditHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	payload, err := h.serializer.Serialize(event)
	if err != nil {
		return err
	}
	fields := []zap.Field{
		zap.String("event_id", event.EventID().String()),
		zap.String("event_type", event.EventType()),
		zap.String("aggregate_type", event.AggregateType()),
		zap.Int64("aggregate_id", event.AggregateID()),
		zap.Time("occurred_at", event.OccurredAt()),
		zap.ByteString("payload", payload),
	}
	if requestID := logger.GetRequestID(ctx); requestID != "" {
		fields = append(fields, zap.String("request_id", requestID))
	}
	h.logger.Info("domain event", fields...)
	return nil
}

var _ shared.EventHandler = (*AuditHandler)(nil)
