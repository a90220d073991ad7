package inventory

import (
	"context"
	"io"

	"github.com/wms/backend/internal/domain/inventory"
	"github.com/wms/backend/internal/domain/shared"
	"github.com/wms/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// ResultExporter renders aggregated results as a downloadable document
type ResultExporter interface {
	// ContentType returns the MIME type of the rendered document
	ContentType() string
	// Extension returns the file extension, including the dot
	Extension() string
	// Write renders the rows to w
	Write(w io.Writer, title string, rows []inventory.ResultRow) error
}

// ResultService computes the per-pass results of one warehouse of an inventory
type ResultService struct {
	inventoryRepo inventory.InventoryRepository
	detailRepo    inventory.CountingDetailRepository
	ecartRepo     inventory.EcartComptageRepository
	exporter      ResultExporter
	logger        *zap.Logger
}

// NewResultService creates a new ResultService
func NewResultService(
	inventoryRepo inventory.InventoryRepository,
	detailRepo inventory.CountingDetailRepository,
	ecartRepo inventory.EcartComptageRepository,
	exporter ResultExporter,
	logger *zap.Logger,
) *ResultService {
	return &ResultService{
		inventoryRepo: inventoryRepo,
		detailRepo:    detailRepo,
		ecartRepo:     ecartRepo,
		exporter:      exporter,
		logger:        logger,
	}
}

// Results returns one row per (location, product, job) with the quantity of
// each pass, the variances and the discrepancy outcome
func (s *ResultService) Results(ctx context.Context, inventoryID, warehouseID int64) ([]inventory.ResultRow, error) {
	rows, _, err := s.results(ctx, inventoryID, warehouseID)
	return rows, err
}

// Export renders the results with the configured exporter and returns the
// suggested file name
func (s *ResultService) Export(ctx context.Context, inventoryID, warehouseID int64, w io.Writer) (string, error) {
	rows, inv, err := s.results(ctx, inventoryID, warehouseID)
	if err != nil {
		return "", err
	}
	if err := s.exporter.Write(w, inv.Label, rows); err != nil {
		s.logger.Error("Failed to export results", zap.Int64("inventory_id", inventoryID), zap.Error(err))
		return "", err
	}
	return "resultats_" + inv.Reference + s.exporter.Extension(), nil
}

// ContentType returns the MIME type of exported documents
func (s *ResultService) ContentType() string {
	return s.exporter.ContentType()
}

func (s *ResultService) results(ctx context.Context, inventoryID, warehouseID int64) ([]inventory.ResultRow, *inventory.Inventory, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "inventory_result", "aggregate",
		telemetry.WithAttribute(telemetry.SpanAttrInventoryID, inventoryID),
		telemetry.WithAttribute(telemetry.SpanAttrWarehouseID, warehouseID))
	defer span.End()

	inv, err := s.inventoryRepo.FindByID(ctx, inventoryID)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, nil, err
	}
	if !inv.HasWarehouse(warehouseID) {
		return nil, nil, inventory.ErrWarehouseNotLinked
	}
	mode, err := inventory.ResolveAggregationMode(inv.Countings)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, nil, err
	}

	observations, err := s.detailRepo.FindResultObservations(ctx, inventoryID, warehouseID)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, nil, err
	}
	allEcarts := shared.Filter{Page: 1, PageSize: 0}
	ecarts, _, err := s.ecartRepo.FindByInventory(ctx, inventoryID, allEcarts)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, nil, err
	}

	rows := inventory.AggregateResults(mode, len(inv.Countings), observations, ecarts)
	telemetry.SetAttribute(span, "rows", len(rows))
	return rows, inv, nil
}
