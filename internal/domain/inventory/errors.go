package inventory

import (
	"fmt"

	"github.com/wms/backend/internal/domain/shared"
)

// Error codes of the multi-violation validation errors
const (
	CodeCountingConfigInvalid  = "COUNTING_CONFIG_INVALID"
	CodeSequenceInvalid        = "SEQUENCE_INVALID"
	CodeLaunchValidationFailed = "LAUNCH_VALIDATION_FAILED"
	CodeInventoryInvalid       = "INVENTORY_INVALID"
)

// Domain errors of the counting and reconciliation core. Errors returned by
// this package carry a contextual message but match these sentinels with
// errors.Is.
var (
	ErrCountingConfigInvalid  = shared.NewDomainError(CodeCountingConfigInvalid, "Invalid counting configuration")
	ErrSequenceInvalid        = shared.NewDomainError(CodeSequenceInvalid, "Invalid counting sequence")
	ErrLaunchValidationFailed = shared.NewDomainError(CodeLaunchValidationFailed, "Inventory cannot be launched")
	ErrInventoryInvalid       = shared.NewDomainError(CodeInventoryInvalid, "Invalid inventory data")

	ErrUnsupportedCountMode  = shared.NewDomainError("UNSUPPORTED_COUNT_MODE", "Unsupported count mode")
	ErrAmbiguousCountMode    = shared.NewDomainError("AMBIGUOUS_COUNT_MODE", "Result aggregation requires a single count mode")
	ErrInvalidTransition     = shared.NewDomainError("INVALID_TRANSITION", "Invalid status transition")
	ErrEmptyStockSnapshot    = shared.NewDomainError("EMPTY_STOCK_SNAPSHOT", "No stock snapshot rows for this inventory")
	ErrInsufficientSequences = shared.NewDomainError("INSUFFICIENT_SEQUENCES", "At least two counting sequences are required")
	ErrFinalResultRequired   = shared.NewDomainError("FINAL_RESULT_REQUIRED", "A final result is required before resolving")
	ErrEcartAlreadyResolved  = shared.NewDomainError("ECART_ALREADY_RESOLVED", "Discrepancy is already resolved")
	ErrWarehouseNotLinked    = shared.NewDomainError("WAREHOUSE_NOT_LINKED", "Warehouse is not linked to this inventory")
	ErrCountingDetailLocked  = shared.NewDomainError("COUNTING_DETAIL_LOCKED", "Counting detail was already reconciled by a later pass")
	ErrInventoryNotEditable  = shared.NewDomainError("INVENTORY_NOT_EDITABLE", "Inventory can only be modified while in preparation")
)

func unsupportedCountMode(raw string) error {
	return shared.NewDomainError(ErrUnsupportedCountMode.Code, fmt.Sprintf("Mode de comptage non supporté: '%s'", raw))
}

func invalidTransition(from, to InventoryStatus) error {
	return shared.NewDomainError(ErrInvalidTransition.Code, fmt.Sprintf("Cannot transition from %s to %s", from, to))
}
