package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/wms/backend/internal/domain/inventory"
	"github.com/wms/backend/internal/domain/shared"
	"github.com/wms/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// InventoryService handles inventory configuration: creation, update,
// listing and soft deletion
type InventoryService struct {
	txScope        TransactionScope
	inventoryRepo  inventory.InventoryRepository
	masterData     inventory.MasterDataReader
	dispatcher     *inventory.CountingDispatcher
	sequences      *inventory.CountingSequenceValidator
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewInventoryService creates a new InventoryService
func NewInventoryService(
	txScope TransactionScope,
	inventoryRepo inventory.InventoryRepository,
	masterData inventory.MasterDataReader,
	dispatcher *inventory.CountingDispatcher,
	eventPublisher shared.EventPublisher,
	logger *zap.Logger,
) *InventoryService {
	return &InventoryService{
		txScope:        txScope,
		inventoryRepo:  inventoryRepo,
		masterData:     masterData,
		dispatcher:     dispatcher,
		sequences:      inventory.NewCountingSequenceValidator(dispatcher),
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

// ===================== Query Methods =====================

// GetByID retrieves an inventory with its settings and passes
func (s *InventoryService) GetByID(ctx context.Context, id int64) (*InventoryResponse, error) {
	inv, err := s.inventoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToInventoryResponse(inv)
	return &resp, nil
}

// List retrieves a paginated list of inventories
func (s *InventoryService) List(ctx context.Context, filter InventoryListFilter) ([]InventoryResponse, int64, error) {
	domainFilter := inventory.InventoryFilter{
		Filter: shared.Filter{
			Page:     filter.Page,
			PageSize: filter.PageSize,
			OrderBy:  filter.OrderBy,
			OrderDir: filter.OrderDir,
			Search:   filter.Search,
		},
		WarehouseID: filter.WarehouseID,
	}
	if domainFilter.Page == 0 {
		domainFilter.Page = 1
	}
	if domainFilter.PageSize == 0 {
		domainFilter.PageSize = 20
	}
	if filter.Status != "" {
		status := inventory.InventoryStatus(strings.ToUpper(filter.Status))
		if !status.IsValid() {
			return nil, 0, shared.NewDomainError(shared.ErrInvalidInput.Code, fmt.Sprintf("Statut invalide: '%s'", filter.Status))
		}
		domainFilter.Status = &status
	}
	if filter.InventoryType != "" {
		invType, err := inventory.ParseInventoryType(filter.InventoryType)
		if err != nil {
			return nil, 0, err
		}
		domainFilter.Type = &invType
	}

	invs, total, err := s.inventoryRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToInventoryResponses(invs), total, nil
}

// ValidateCountings runs the per-pass and sequence rules without persisting
func (s *InventoryService) ValidateCountings(ctx context.Context, req ValidateCountingsRequest) CountingValidationResponse {
	result := s.sequences.Check(toPassConfigs(req.Comptages))
	violations := result.Errors
	if violations == nil {
		violations = []shared.Violation{}
	}
	return CountingValidationResponse{Valid: result.IsValid(), Violations: violations}
}

// ===================== Command Methods =====================

// Create validates the input, the referenced entities and the pass
// sequence, then persists the inventory, its settings and its passes in one
// transaction
func (s *InventoryService) Create(ctx context.Context, req CreateInventoryRequest) (*InventoryResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "inventory", "create")
	defer span.End()

	invType, err := inventory.ParseInventoryType(req.InventoryType)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	inv, err := inventory.NewInventory(req.Label, req.Date, invType, req.AccountID, req.WarehouseIDs)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	if err := s.validateReferences(ctx, req, 0); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	passes := toPassConfigs(req.Comptages)
	if err := s.sequences.Validate(passes); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	countings, err := s.dispatcher.BuildCountings(0, passes)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	inv.Countings = countings

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		return repos.InventoryRepo().Create(ctx, inv)
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	inv.RecordCreation()
	s.publishDomainEvents(ctx, &inv.BaseAggregateRoot)

	telemetry.SetAttributes(span, telemetry.SpanAttrInventoryID, inv.ID, telemetry.SpanAttrInventoryReference, inv.Reference)
	s.logger.Info("Inventory created",
		zap.Int64("inventory_id", inv.ID),
		zap.String("reference", inv.Reference),
		zap.String("inventory_type", string(inv.Type)))

	resp := ToInventoryResponse(inv)
	return &resp, nil
}

// Update replaces the details, settings and passes of an inventory that is
// still in preparation
func (s *InventoryService) Update(ctx context.Context, id int64, req UpdateInventoryRequest) (*InventoryResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "inventory", "update", telemetry.WithAttribute(telemetry.SpanAttrInventoryID, id))
	defer span.End()

	invType, err := inventory.ParseInventoryType(req.InventoryType)
	if err != nil {
		return nil, err
	}
	if err := s.validateReferences(ctx, req, id); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	passes := toPassConfigs(req.Comptages)
	if err := s.sequences.Validate(passes); err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	var updated *inventory.Inventory
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		inv, err := repos.InventoryRepo().FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := inv.UpdateDetails(req.Label, req.Date, invType); err != nil {
			return err
		}
		if err := inv.ReplaceSettings(req.AccountID, req.WarehouseIDs); err != nil {
			return err
		}
		countings, err := s.dispatcher.BuildCountings(inv.ID, passes)
		if err != nil {
			return err
		}
		if err := inv.ReplaceCountings(countings); err != nil {
			return err
		}
		if err := repos.InventoryRepo().Save(ctx, inv); err != nil {
			return err
		}
		if err := repos.InventoryRepo().SaveConfiguration(ctx, inv); err != nil {
			return err
		}
		updated = inv
		return nil
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	s.logger.Info("Inventory updated", zap.Int64("inventory_id", id))
	resp := ToInventoryResponse(updated)
	return &resp, nil
}

// Delete soft-deletes an inventory that is still in preparation
func (s *InventoryService) Delete(ctx context.Context, id int64) error {
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		inv, err := repos.InventoryRepo().FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := inv.SoftDelete(); err != nil {
			return err
		}
		return repos.InventoryRepo().Save(ctx, inv)
	})
	if err != nil {
		return err
	}
	s.logger.Info("Inventory deleted", zap.Int64("inventory_id", id))
	return nil
}

// validateReferences checks that the label is free and that the account and
// warehouses exist. Every failure is reported at once.
func (s *InventoryService) validateReferences(ctx context.Context, req CreateInventoryRequest, excludeID int64) error {
	var result shared.ValidationResult

	taken, err := s.inventoryRepo.ExistsByLabel(ctx, strings.TrimSpace(req.Label), excludeID)
	if err != nil {
		return err
	}
	if taken {
		result.AddError("inventory.label.unique", 0, "label",
			fmt.Sprintf("Un inventaire avec le label '%s' existe déjà", strings.TrimSpace(req.Label)))
	}

	exists, err := s.masterData.AccountExists(ctx, req.AccountID)
	if err != nil {
		return err
	}
	if !exists {
		result.AddError("inventory.account.exists", 0, "account_id",
			fmt.Sprintf("Le compte %d n'existe pas", req.AccountID))
	}

	missing, err := s.masterData.MissingWarehouses(ctx, req.WarehouseIDs)
	if err != nil {
		return err
	}
	for _, id := range missing {
		result.AddError("inventory.warehouse.exists", 0, "warehouse",
			fmt.Sprintf("L'entrepôt %d n'existe pas", id))
	}

	return result.Err(inventory.CodeInventoryInvalid)
}

// publishDomainEvents publishes the pending events of an aggregate once its
// transaction has committed
func (s *InventoryService) publishDomainEvents(ctx context.Context, root *shared.BaseAggregateRoot) {
	publishDomainEvents(ctx, s.eventPublisher, s.logger, root)
}

func publishDomainEvents(ctx context.Context, publisher shared.EventPublisher, logger *zap.Logger, root *shared.BaseAggregateRoot) {
	if publisher == nil {
		return
	}
	events := root.PullDomainEvents()
	if len(events) == 0 {
		return
	}
	if err := publisher.Publish(ctx, events...); err != nil {
		logger.Warn("Failed to publish domain events", zap.Error(err))
	}
}

func toPassConfigs(reqs []CountingPassRequest) []inventory.PassConfig {
	passes := make([]inventory.PassConfig, len(reqs))
	for i, r := range reqs {
		passes[i] = r.ToPassConfig()
	}
	return passes
}

// isNotFound reports whether err is a not-found domain error
func isNotFound(err error) bool {
	return errors.Is(err, shared.ErrNotFound)
}
