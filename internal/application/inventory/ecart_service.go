package inventory

import (
	"context"

	"github.com/wms/backend/internal/domain/inventory"
	"github.com/wms/backend/internal/domain/shared"
	"github.com/wms/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// EcartService adjudicates discrepancies
type EcartService struct {
	txScope        TransactionScope
	ecartRepo      inventory.EcartComptageRepository
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewEcartService creates a new EcartService
func NewEcartService(
	txScope TransactionScope,
	ecartRepo inventory.EcartComptageRepository,
	eventPublisher shared.EventPublisher,
	logger *zap.Logger,
) *EcartService {
	return &EcartService{
		txScope:        txScope,
		ecartRepo:      ecartRepo,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

// GetByID retrieves a discrepancy with its sequences
func (s *EcartService) GetByID(ctx context.Context, id int64) (*EcartResponse, error) {
	e, err := s.ecartRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToEcartResponse(e)
	return &resp, nil
}

// ListByInventory retrieves the discrepancies of an inventory
func (s *EcartService) ListByInventory(ctx context.Context, inventoryID int64, filter EcartListFilter) ([]EcartResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.Resolved != nil {
		domainFilter.Filters["resolved"] = *filter.Resolved
	}
	ecarts, total, err := s.ecartRepo.FindByInventory(ctx, inventoryID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	out := make([]EcartResponse, len(ecarts))
	for i := range ecarts {
		out[i] = ToEcartResponse(&ecarts[i])
	}
	return out, total, nil
}

// SetFinalResult records the adjudicated quantity of a discrepancy
func (s *EcartService) SetFinalResult(ctx context.Context, id int64, req SetFinalResultRequest) (*EcartResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "ecart", "set_final_result", telemetry.WithAttribute(telemetry.SpanAttrEcartID, id))
	defer span.End()

	value := 0
	if req.FinalResult != nil {
		value = *req.FinalResult
	}
	e, err := s.mutate(ctx, id, func(e *inventory.EcartComptage) error {
		return e.SetFinalResult(value, req.Justification, req.Resolved)
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	s.logger.Info("Final result set",
		zap.Int64("ecart_id", id),
		zap.Int("final_result", value),
		zap.Bool("resolved", e.Resolved))
	resp := ToEcartResponse(e)
	return &resp, nil
}

// Resolve closes a discrepancy whose final result is set
func (s *EcartService) Resolve(ctx context.Context, id int64, req ResolveEcartRequest) (*EcartResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "ecart", "resolve", telemetry.WithAttribute(telemetry.SpanAttrEcartID, id))
	defer span.End()

	e, err := s.mutate(ctx, id, func(e *inventory.EcartComptage) error {
		return e.Resolve(req.Justification)
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	s.logger.Info("Discrepancy resolved", zap.Int64("ecart_id", id))
	resp := ToEcartResponse(e)
	return &resp, nil
}

// mutate applies fn to the locked discrepancy and saves it in one transaction
func (s *EcartService) mutate(ctx context.Context, id int64, fn func(e *inventory.EcartComptage) error) (*inventory.EcartComptage, error) {
	var updated *inventory.EcartComptage
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		e, err := repos.EcartRepo().FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := fn(e); err != nil {
			return err
		}
		if err := repos.EcartRepo().Save(ctx, e); err != nil {
			return err
		}
		updated = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	publishDomainEvents(ctx, s.eventPublisher, s.logger, &updated.BaseAggregateRoot)
	return updated, nil
}
