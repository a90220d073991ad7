package inventory

import (
	"time"

	"github.com/wms/backend/internal/domain/inventory"
	"github.com/wms/backend/internal/domain/shared"
)

// ===================== Request DTOs =====================

// CountingPassRequest is the configuration of one counting pass
type CountingPassRequest struct {
	Order          int    `json:"order" binding:"required,min=1,max=3"`
	CountMode      string `json:"count_mode" binding:"required"`
	UnitScanned    bool   `json:"unit_scanned"`
	EntryQuantity  bool   `json:"entry_quantity"`
	IsVariant      bool   `json:"is_variant"`
	StockSituation bool   `json:"stock_situation"`
	NLot           bool   `json:"n_lot"`
	NSerie         bool   `json:"n_serie"`
	DLC            bool   `json:"dlc"`
	ShowProduct    bool   `json:"show_product"`
	QuantityShow   bool   `json:"quantity_show"`
}

// ToPassConfig converts the request to the domain pass configuration
func (r CountingPassRequest) ToPassConfig() inventory.PassConfig {
	return inventory.PassConfig{
		Order:     r.Order,
		CountMode: r.CountMode,
		CountingFlags: inventory.CountingFlags{
			UnitScanned:    r.UnitScanned,
			EntryQuantity:  r.EntryQuantity,
			IsVariant:      r.IsVariant,
			StockSituation: r.StockSituation,
			NLot:           r.NLot,
			NSerie:         r.NSerie,
			DLC:            r.DLC,
			ShowProduct:    r.ShowProduct,
			QuantityShow:   r.QuantityShow,
		},
	}
}

// ValidateCountingsRequest represents a dry-run validation of a pass sequence
type ValidateCountingsRequest struct {
	Comptages []CountingPassRequest `json:"comptages" binding:"required,dive"`
}

// CreateInventoryRequest represents a request to create an inventory
type CreateInventoryRequest struct {
	Label         string                `json:"label" binding:"required"`
	Date          time.Time             `json:"date" binding:"required"`
	InventoryType string                `json:"inventory_type"`
	AccountID     int64                 `json:"account_id" binding:"required,gt=0"`
	WarehouseIDs  []int64               `json:"warehouse" binding:"required,min=1"`
	Comptages     []CountingPassRequest `json:"comptages" binding:"required,dive"`
}

// UpdateInventoryRequest replaces the configuration of an inventory in preparation
type UpdateInventoryRequest = CreateInventoryRequest

// RecordObservationRequest represents one operator capture
type RecordObservationRequest struct {
	CountingID int64  `json:"counting_id" binding:"required,gt=0"`
	LocationID int64  `json:"location_id" binding:"required,gt=0"`
	ProductID  *int64 `json:"product_id"`
	JobID      *int64 `json:"job_id"`
	Quantity   *int   `json:"quantity" binding:"required,gte=0"`
}

// SetFinalResultRequest represents the adjudication of a discrepancy
type SetFinalResultRequest struct {
	FinalResult   *int    `json:"final_result" binding:"required"`
	Justification *string `json:"justification"`
	Resolved      *bool   `json:"resolved"`
}

// ResolveEcartRequest represents the closing of a discrepancy
type ResolveEcartRequest struct {
	Justification *string `json:"justification"`
}

// InventoryListFilter represents filter options for inventory listings
type InventoryListFilter struct {
	Page          int    `form:"page" binding:"omitempty,min=1"`
	PageSize      int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy       string `form:"order_by"`
	OrderDir      string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
	Search        string `form:"search"`
	Status        string `form:"status"`
	InventoryType string `form:"inventory_type"`
	WarehouseID   *int64 `form:"warehouse_id"`
}

// EcartListFilter represents filter options for discrepancy listings
type EcartListFilter struct {
	Page     int   `form:"page" binding:"omitempty,min=1"`
	PageSize int   `form:"page_size" binding:"omitempty,min=1,max=100"`
	Resolved *bool `form:"resolved"`
}

// ===================== Response DTOs =====================

// CountingResponse represents a configured counting pass
type CountingResponse struct {
	ID        int64  `json:"id"`
	Order     int    `json:"order"`
	CountMode string `json:"count_mode"`
	inventory.CountingFlags
}

// SettingResponse represents a warehouse link
type SettingResponse struct {
	ID          int64  `json:"id"`
	Reference   string `json:"reference"`
	WarehouseID int64  `json:"warehouse_id"`
	AccountID   int64  `json:"account_id"`
}

// InventoryResponse represents an inventory in API responses
type InventoryResponse struct {
	ID              int64              `json:"id"`
	Reference       string             `json:"reference"`
	Label           string             `json:"label"`
	Date            time.Time          `json:"date"`
	Status          string             `json:"status"`
	InventoryType   string             `json:"inventory_type"`
	EnPreparationAt *time.Time         `json:"en_preparation_status_date"`
	EnRealisationAt *time.Time         `json:"en_realisation_status_date"`
	TermineAt       *time.Time         `json:"termine_status_date"`
	ClotureAt       *time.Time         `json:"cloture_status_date"`
	Settings        []SettingResponse  `json:"settings"`
	Comptages       []CountingResponse `json:"comptages"`
	Version         int                `json:"version"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// ToInventoryResponse converts the aggregate to its response DTO
func ToInventoryResponse(inv *inventory.Inventory) InventoryResponse {
	resp := InventoryResponse{
		ID:              inv.ID,
		Reference:       inv.Reference,
		Label:           inv.Label,
		Date:            inv.Date,
		Status:          inv.Status.String(),
		InventoryType:   string(inv.Type),
		EnPreparationAt: inv.StatusDates.At(inventory.InventoryStatusEnPreparation),
		EnRealisationAt: inv.StatusDates.At(inventory.InventoryStatusEnRealisation),
		TermineAt:       inv.StatusDates.At(inventory.InventoryStatusTermine),
		ClotureAt:       inv.StatusDates.At(inventory.InventoryStatusCloture),
		Settings:        make([]SettingResponse, 0, len(inv.Settings)),
		Comptages:       make([]CountingResponse, 0, len(inv.Countings)),
		Version:         inv.Version,
		CreatedAt:       inv.CreatedAt,
		UpdatedAt:       inv.UpdatedAt,
	}
	for _, s := range inv.Settings {
		resp.Settings = append(resp.Settings, SettingResponse{
			ID:          s.ID,
			Reference:   s.Reference,
			WarehouseID: s.WarehouseID,
			AccountID:   s.AccountID,
		})
	}
	for _, c := range inv.Countings {
		resp.Comptages = append(resp.Comptages, CountingResponse{
			ID:            c.ID,
			Order:         c.Order,
			CountMode:     c.Mode.String(),
			CountingFlags: c.CountingFlags,
		})
	}
	return resp
}

// ToInventoryResponses converts a slice of aggregates
func ToInventoryResponses(invs []inventory.Inventory) []InventoryResponse {
	out := make([]InventoryResponse, len(invs))
	for i := range invs {
		out[i] = ToInventoryResponse(&invs[i])
	}
	return out
}

// CountingValidationResponse is the dry-run outcome of a pass sequence
type CountingValidationResponse struct {
	Valid      bool               `json:"valid"`
	Violations []shared.Violation `json:"violations"`
}

// CompletionResponse is the outcome of a completion attempt
type CompletionResponse struct {
	Success          bool          `json:"success"`
	Message          string        `json:"message,omitempty"`
	Status           string        `json:"status"`
	JobsNotCompleted []JobResponse `json:"jobs_not_completed"`
}

// JobResponse represents a job in completion reports
type JobResponse struct {
	ID        int64  `json:"id"`
	Reference string `json:"reference"`
	Status    string `json:"status"`
}

// SequenceResponse represents one contributing observation of a discrepancy
type SequenceResponse struct {
	ID                int64 `json:"id"`
	SequenceNumber    int   `json:"sequence_number"`
	CountingDetailID  int64 `json:"counting_detail_id"`
	Quantity          int   `json:"quantity"`
	EcartWithPrevious *int  `json:"ecart_with_previous"`
}

// EcartResponse represents a discrepancy in API responses
type EcartResponse struct {
	ID              int64              `json:"id"`
	Reference       string             `json:"reference"`
	InventoryID     int64              `json:"inventory_id"`
	LocationID      int64              `json:"location_id"`
	ProductID       *int64             `json:"product_id"`
	TotalSequences  int                `json:"total_sequences"`
	StoppedSequence *int               `json:"stopped_sequence"`
	FinalResult     *int               `json:"final_result"`
	Resolved        bool               `json:"resolved"`
	Justification   *string            `json:"justification"`
	StoppedReason   *string            `json:"stopped_reason"`
	Sequences       []SequenceResponse `json:"sequences"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// ToEcartResponse converts the aggregate to its response DTO
func ToEcartResponse(e *inventory.EcartComptage) EcartResponse {
	resp := EcartResponse{
		ID:              e.ID,
		Reference:       e.Reference,
		InventoryID:     e.InventoryID,
		LocationID:      e.LocationID,
		ProductID:       e.ProductID,
		TotalSequences:  e.TotalSequences,
		StoppedSequence: e.StoppedSequence,
		FinalResult:     e.FinalResult,
		Resolved:        e.Resolved,
		Justification:   e.Justification,
		StoppedReason:   e.StoppedReason,
		Sequences:       make([]SequenceResponse, 0, len(e.Sequences)),
		UpdatedAt:       e.UpdatedAt,
	}
	for _, s := range e.Sequences {
		resp.Sequences = append(resp.Sequences, SequenceResponse{
			ID:                s.ID,
			SequenceNumber:    s.SequenceNumber,
			CountingDetailID:  s.CountingDetailID,
			Quantity:          s.Quantity,
			EcartWithPrevious: s.EcartWithPrevious,
		})
	}
	return resp
}

// ObservationResponse is the outcome of recording an observation
type ObservationResponse struct {
	DetailID   int64          `json:"counting_detail_id"`
	CountingID int64          `json:"counting_id"`
	LocationID int64          `json:"location_id"`
	ProductID  *int64         `json:"product_id"`
	JobID      *int64         `json:"job_id"`
	Quantity   int            `json:"quantity"`
	Corrected  bool           `json:"corrected"`
	Ecart      *EcartResponse `json:"ecart"`
}
