package inventory

import (
	"context"
	"fmt"

	"github.com/wms/backend/internal/domain/inventory"
	"github.com/wms/backend/internal/domain/shared"
	"github.com/wms/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// CountingDetailService records operator observations and feeds the
// discrepancy of each (location, product) key
type CountingDetailService struct {
	txScope TransactionScope
	logger  *zap.Logger
}

// NewCountingDetailService creates a new CountingDetailService
func NewCountingDetailService(txScope TransactionScope, logger *zap.Logger) *CountingDetailService {
	return &CountingDetailService{
		txScope: txScope,
		logger:  logger,
	}
}

// RecordObservation stores a capture for a pass. A repeated capture for the
// same pass, location, product and job corrects the previous one. From the
// second observation of a key on, the discrepancy is opened or extended.
func (s *CountingDetailService) RecordObservation(ctx context.Context, req RecordObservationRequest) (*ObservationResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "counting_detail", "record",
		telemetry.WithAttribute(telemetry.SpanAttrCountingID, req.CountingID),
		telemetry.WithAttribute(telemetry.SpanAttrLocationID, req.LocationID))
	defer span.End()

	quantity := 0
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	var resp *ObservationResponse
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		counting, err := repos.CountingRepo().FindByID(ctx, req.CountingID)
		if err != nil {
			return err
		}
		inv, err := repos.InventoryRepo().FindByID(ctx, counting.InventoryID)
		if err != nil {
			return err
		}
		if inv.Status != inventory.InventoryStatusEnRealisation {
			return shared.NewDomainError(shared.ErrInvalidState.Code,
				fmt.Sprintf("Les comptages ne sont acceptés que pour un inventaire %s (statut actuel: %s)",
					inventory.InventoryStatusEnRealisation, inv.Status))
		}
		if counting.IsStockImage() {
			return shared.NewDomainError(shared.ErrInvalidState.Code,
				"Le comptage 'image de stock' est alimenté par le stock et n'accepte pas de saisie")
		}

		// bulk passes count location totals
		productID := req.ProductID
		if counting.Mode == inventory.CountModeBulk {
			productID = nil
		}

		key := inventory.DiscrepancyKey{InventoryID: inv.ID, LocationID: req.LocationID, ProductID: productID}
		ecart, err := repos.EcartRepo().FindByKeyForUpdate(ctx, key)
		if err != nil && !isNotFound(err) {
			return err
		}
		if isNotFound(err) {
			ecart = nil
		}
		if ecart != nil && ecart.Resolved {
			return inventory.ErrEcartAlreadyResolved
		}

		existing, err := repos.DetailRepo().FindExisting(ctx, counting.ID, req.LocationID, productID, req.JobID)
		if err != nil && !isNotFound(err) {
			return err
		}
		if err == nil {
			resp, err = s.correct(ctx, repos, key, existing, ecart, quantity)
			return err
		}

		detail, err := inventory.NewCountingDetail(counting.ID, req.LocationID, productID, req.JobID, quantity)
		if err != nil {
			return err
		}
		if err := repos.DetailRepo().Create(ctx, detail); err != nil {
			return err
		}

		switch {
		case ecart != nil:
			if err := ecart.AppendObservation(detail.ID, detail.Quantity); err != nil {
				return err
			}
			if err := repos.EcartRepo().Save(ctx, ecart); err != nil {
				return err
			}
		default:
			observations, err := repos.DetailRepo().FindByKey(ctx, key)
			if err != nil {
				return err
			}
			if len(observations) >= 2 {
				ecart, err = inventory.NewEcartComptage(key, observations)
				if err != nil {
					return err
				}
				if err := repos.EcartRepo().Create(ctx, ecart); err != nil {
					return err
				}
			}
		}

		resp = observationResponse(detail, ecart, false)
		return nil
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	fields := []zap.Field{
		zap.Int64("counting_detail_id", resp.DetailID),
		zap.Int64("counting_id", resp.CountingID),
		zap.Int64("location_id", resp.LocationID),
		zap.Bool("corrected", resp.Corrected),
	}
	if resp.Ecart != nil {
		fields = append(fields, zap.Int64("ecart_id", resp.Ecart.ID), zap.Int("total_sequences", resp.Ecart.TotalSequences))
	}
	s.logger.Debug("Observation recorded", fields...)
	return resp, nil
}

func (s *CountingDetailService) correct(
	ctx context.Context,
	repos TransactionalRepositories,
	key inventory.DiscrepancyKey,
	detail *inventory.CountingDetail,
	ecart *inventory.EcartComptage,
	quantity int,
) (*ObservationResponse, error) {
	if ecart != nil && ecart.HasDetail(detail.ID) {
		if err := ecart.CorrectObservation(detail.ID, quantity); err != nil {
			return nil, err
		}
		if err := repos.EcartRepo().Save(ctx, ecart); err != nil {
			return nil, err
		}
	}
	if err := detail.Correct(quantity); err != nil {
		return nil, err
	}
	if err := repos.DetailRepo().Update(ctx, detail); err != nil {
		return nil, err
	}
	// a key whose discrepancy was dropped on cancel reopens on correction
	if ecart == nil {
		observations, err := repos.DetailRepo().FindByKey(ctx, key)
		if err != nil {
			return nil, err
		}
		if len(observations) >= 2 {
			ecart, err = inventory.NewEcartComptage(key, observations)
			if err != nil {
				return nil, err
			}
			if err := repos.EcartRepo().Create(ctx, ecart); err != nil {
				return nil, err
			}
		}
	}
	return observationResponse(detail, ecart, true), nil
}

func observationResponse(detail *inventory.CountingDetail, ecart *inventory.EcartComptage, corrected bool) *ObservationResponse {
	resp := &ObservationResponse{
		DetailID:   detail.ID,
		CountingID: detail.CountingID,
		LocationID: detail.LocationID,
		ProductID:  detail.ProductID,
		JobID:      detail.JobID,
		Quantity:   detail.Quantity,
		Corrected:  corrected,
	}
	if ecart != nil {
		e := ToEcartResponse(ecart)
		resp.Ecart = &e
	}
	return resp
}
