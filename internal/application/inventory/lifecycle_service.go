package inventory

import (
	"context"

	"github.com/wms/backend/internal/domain/inventory"
	"github.com/wms/backend/internal/domain/shared"
	"github.com/wms/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// LifecycleService drives the inventory state machine. Every transition runs
// in one transaction holding the inventory row lock.
type LifecycleService struct {
	txScope        TransactionScope
	locker         InventoryLocker
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewLifecycleService creates a new LifecycleService
func NewLifecycleService(
	txScope TransactionScope,
	locker InventoryLocker,
	eventPublisher shared.EventPublisher,
	logger *zap.Logger,
) *LifecycleService {
	if locker == nil {
		locker = NoopInventoryLocker{}
	}
	return &LifecycleService{
		txScope:        txScope,
		locker:         locker,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

// CheckLaunch reports every launch precondition violation without
// changing the inventory
func (s *LifecycleService) CheckLaunch(ctx context.Context, id int64) (*inventory.LaunchReport, error) {
	var report *inventory.LaunchReport
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		inv, err := repos.InventoryRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		report, err = newLaunchValidator(repos).Check(ctx, inv)
		return err
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// Launch moves the inventory to EN REALISATION. When pass 1 is a stock
// image, its counting details are seeded from the stock snapshot.
func (s *LifecycleService) Launch(ctx context.Context, id int64) (*InventoryResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "inventory", "launch", telemetry.WithAttribute(telemetry.SpanAttrInventoryID, id))
	defer span.End()

	var launched *inventory.Inventory
	var seeded int
	err := s.withLock(ctx, id, func(repos TransactionalRepositories) error {
		inv, err := repos.InventoryRepo().FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := inv.EnsureTransition(inventory.InventoryStatusEnRealisation); err != nil {
			return err
		}
		if _, err := newLaunchValidator(repos).Validate(ctx, inv); err != nil {
			return err
		}

		if inv.StartsFromStockImage() {
			rows, err := repos.StockReader().FindSnapshot(ctx, inv.ID, inv.WarehouseIDs())
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				return inventory.ErrEmptyStockSnapshot
			}
			details := inventory.SnapshotDetails(inv.FirstPass().ID, rows, inv.SnapshotByLocation())
			if err := repos.DetailRepo().CreateBatch(ctx, details); err != nil {
				return err
			}
			seeded = len(details)
		}

		if err := inv.Launch(); err != nil {
			return err
		}
		if err := repos.InventoryRepo().Save(ctx, inv); err != nil {
			return err
		}
		launched = inv
		return nil
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	publishDomainEvents(ctx, s.eventPublisher, s.logger, &launched.BaseAggregateRoot)
	telemetry.SetAttribute(span, telemetry.SpanAttrSeededDetails, seeded)
	s.logger.Info("Inventory launched",
		zap.Int64("inventory_id", id),
		zap.Int("seeded_details", seeded))

	resp := ToInventoryResponse(launched)
	return &resp, nil
}

// Cancel moves a launched inventory back to EN PREPARATION and purges the
// details seeded from the stock snapshot
func (s *LifecycleService) Cancel(ctx context.Context, id int64) (*InventoryResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "inventory", "cancel", telemetry.WithAttribute(telemetry.SpanAttrInventoryID, id))
	defer span.End()

	var cancelled *inventory.Inventory
	var purged int64
	var detached int
	err := s.withLock(ctx, id, func(repos TransactionalRepositories) error {
		inv, err := repos.InventoryRepo().FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := inv.Cancel(); err != nil {
			return err
		}
		if inv.StartsFromStockImage() {
			detached, err = detachSnapshot(ctx, repos, inv.FirstPass().ID)
			if err != nil {
				return err
			}
			purged, err = repos.DetailRepo().DeleteByCountingAndSource(ctx, inv.FirstPass().ID, inventory.DetailSourceSnapshot)
			if err != nil {
				return err
			}
		}
		if err := repos.InventoryRepo().Save(ctx, inv); err != nil {
			return err
		}
		cancelled = inv
		return nil
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	publishDomainEvents(ctx, s.eventPublisher, s.logger, &cancelled.BaseAggregateRoot)
	s.logger.Info("Inventory cancelled",
		zap.Int64("inventory_id", id),
		zap.Int64("purged_details", purged),
		zap.Int("detached_ecarts", detached))

	resp := ToInventoryResponse(cancelled)
	return &resp, nil
}

// detachSnapshot removes the snapshot sequences from the discrepancies of the
// first pass before the snapshot rows are deleted. A discrepancy left with a
// single observation is dropped.
func detachSnapshot(ctx context.Context, repos TransactionalRepositories, countingID int64) (int, error) {
	ids, err := repos.DetailRepo().FindReferencedIDs(ctx, countingID, inventory.DetailSourceSnapshot)
	if err != nil || len(ids) == 0 {
		return 0, err
	}
	snapshot := make(map[int64]bool, len(ids))
	for _, id := range ids {
		snapshot[id] = true
	}

	ecarts, err := repos.EcartRepo().FindByCountingSource(ctx, countingID, inventory.DetailSourceSnapshot)
	if err != nil {
		return 0, err
	}
	for i := range ecarts {
		ecart := &ecarts[i]
		if ecart.DetachDetails(func(id int64) bool { return snapshot[id] }) {
			err = repos.EcartRepo().Save(ctx, ecart)
		} else {
			err = repos.EcartRepo().Delete(ctx, ecart.ID)
		}
		if err != nil {
			return 0, err
		}
	}
	return len(ecarts), nil
}

// Complete moves the inventory to TERMINE once every job is done. Open jobs
// are reported in the response and leave the status unchanged.
func (s *LifecycleService) Complete(ctx context.Context, id int64) (*CompletionResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "inventory", "complete", telemetry.WithAttribute(telemetry.SpanAttrInventoryID, id))
	defer span.End()

	var inv *inventory.Inventory
	var result inventory.CompletionResult
	err := s.withLock(ctx, id, func(repos TransactionalRepositories) error {
		var err error
		inv, err = repos.InventoryRepo().FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		jobs, err := repos.JobReader().FindByInventory(ctx, inv.ID)
		if err != nil {
			return err
		}
		result, err = inv.Complete(jobs)
		if err != nil || !result.Success {
			return err
		}
		return repos.InventoryRepo().Save(ctx, inv)
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	if result.Success {
		publishDomainEvents(ctx, s.eventPublisher, s.logger, &inv.BaseAggregateRoot)
		s.logger.Info("Inventory completed", zap.Int64("inventory_id", id))
	} else {
		s.logger.Info("Inventory not completed",
			zap.Int64("inventory_id", id),
			zap.Int("jobs_not_completed", len(result.JobsNotCompleted)))
	}

	resp := CompletionResponse{
		Success:          result.Success,
		Message:          result.Message,
		Status:           inv.Status.String(),
		JobsNotCompleted: make([]JobResponse, 0, len(result.JobsNotCompleted)),
	}
	for _, j := range result.JobsNotCompleted {
		resp.JobsNotCompleted = append(resp.JobsNotCompleted, JobResponse{
			ID:        j.ID,
			Reference: j.Reference,
			Status:    string(j.Status),
		})
	}
	return &resp, nil
}

// Close moves a finished inventory to CLOTURE
func (s *LifecycleService) Close(ctx context.Context, id int64) (*InventoryResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "inventory", "close", telemetry.WithAttribute(telemetry.SpanAttrInventoryID, id))
	defer span.End()

	var closed *inventory.Inventory
	err := s.withLock(ctx, id, func(repos TransactionalRepositories) error {
		inv, err := repos.InventoryRepo().FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := inv.Close(); err != nil {
			return err
		}
		if err := repos.InventoryRepo().Save(ctx, inv); err != nil {
			return err
		}
		closed = inv
		return nil
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	publishDomainEvents(ctx, s.eventPublisher, s.logger, &closed.BaseAggregateRoot)
	s.logger.Info("Inventory closed", zap.Int64("inventory_id", id))

	resp := ToInventoryResponse(closed)
	return &resp, nil
}

func (s *LifecycleService) withLock(ctx context.Context, id int64, fn func(repos TransactionalRepositories) error) error {
	release, err := s.locker.Lock(ctx, id)
	if err != nil {
		return err
	}
	defer func() {
		if err := release(context.WithoutCancel(ctx)); err != nil {
			s.logger.Warn("Failed to release inventory lock", zap.Int64("inventory_id", id), zap.Error(err))
		}
	}()
	return s.txScope.Execute(ctx, fn)
}

func newLaunchValidator(repos TransactionalRepositories) *inventory.LaunchValidator {
	return inventory.NewLaunchValidator(repos.JobReader(), repos.LocationReader(), repos.StockReader())
}
