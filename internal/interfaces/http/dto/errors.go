package dto

import "net/http"

// Error code constants organized by category
// Format: ERR_<CATEGORY>_<DESCRIPTION>

// General error codes
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "ERR_UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
)

// Validation error codes
const (
	// ErrCodeValidation is the base code for request validation errors
	ErrCodeValidation = "ERR_VALIDATION"
	// ErrCodeValidationRequired is used when a required field is missing
	ErrCodeValidationRequired = "ERR_VALIDATION_REQUIRED"
	// ErrCodeValidationFormat is used when a field has invalid format
	ErrCodeValidationFormat = "ERR_VALIDATION_FORMAT"
	// ErrCodeValidationRange is used when a value is out of range
	ErrCodeValidationRange = "ERR_VALIDATION_RANGE"
)

// Resource error codes
const (
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeAlreadyExists is used when trying to create a duplicate resource
	ErrCodeAlreadyExists = "ERR_ALREADY_EXISTS"
	// ErrCodeConflict is used for general resource conflicts
	ErrCodeConflict = "ERR_CONFLICT"
	// ErrCodeConcurrencyConflict is used when optimistic locking fails or
	// another process holds the inventory lock
	ErrCodeConcurrencyConflict = "ERR_CONCURRENCY_CONFLICT"
)

// Business rule error codes
const (
	// ErrCodeInvalidState is used when an operation is invalid for current state
	ErrCodeInvalidState = "ERR_INVALID_STATE"
	// ErrCodeBusinessRule is used for generic business rule violations
	ErrCodeBusinessRule = "ERR_BUSINESS_RULE"
)

// Input error codes
const (
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeInvalidInput is used for invalid input data
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
	// ErrCodeInvalidJSON is used when JSON parsing fails
	ErrCodeInvalidJSON = "ERR_INVALID_JSON"
	// ErrCodeRequestTooLarge is used when the body exceeds the configured limit
	ErrCodeRequestTooLarge = "ERR_REQUEST_TOO_LARGE"
	// ErrCodeForbidden is used when the client may not reach the resource
	ErrCodeForbidden = "ERR_FORBIDDEN"
)

// Inventory error codes. These are the domain codes, answered unchanged.
const (
	ErrCodeCountingConfigInvalid  = "COUNTING_CONFIG_INVALID"
	ErrCodeSequenceInvalid        = "SEQUENCE_INVALID"
	ErrCodeLaunchValidationFailed = "LAUNCH_VALIDATION_FAILED"
	ErrCodeInventoryInvalid       = "INVENTORY_INVALID"
	ErrCodeUnsupportedCountMode   = "UNSUPPORTED_COUNT_MODE"
	ErrCodeAmbiguousCountMode     = "AMBIGUOUS_COUNT_MODE"
	ErrCodeInvalidTransition      = "INVALID_TRANSITION"
	ErrCodeEmptyStockSnapshot     = "EMPTY_STOCK_SNAPSHOT"
	ErrCodeInsufficientSequences  = "INSUFFICIENT_SEQUENCES"
	ErrCodeFinalResultRequired    = "FINAL_RESULT_REQUIRED"
	ErrCodeEcartAlreadyResolved   = "ECART_ALREADY_RESOLVED"
	ErrCodeWarehouseNotLinked     = "WAREHOUSE_NOT_LINKED"
	ErrCodeCountingDetailLocked   = "COUNTING_DETAIL_LOCKED"
	ErrCodeInventoryNotEditable   = "INVENTORY_NOT_EDITABLE"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	// General errors
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	// Validation errors -> 400 Bad Request
	ErrCodeValidation:         http.StatusBadRequest,
	ErrCodeValidationRequired: http.StatusBadRequest,
	ErrCodeValidationFormat:   http.StatusBadRequest,
	ErrCodeValidationRange:    http.StatusBadRequest,

	// Resource errors
	ErrCodeNotFound:            http.StatusNotFound,
	ErrCodeAlreadyExists:       http.StatusConflict,
	ErrCodeConflict:            http.StatusConflict,
	ErrCodeConcurrencyConflict: http.StatusConflict,

	// Business rule errors -> 422 Unprocessable Entity
	ErrCodeInvalidState: http.StatusUnprocessableEntity,
	ErrCodeBusinessRule: http.StatusUnprocessableEntity,

	// Input errors -> 400 Bad Request
	ErrCodeBadRequest:      http.StatusBadRequest,
	ErrCodeInvalidInput:    http.StatusBadRequest,
	ErrCodeInvalidJSON:     http.StatusBadRequest,
	ErrCodeRequestTooLarge: http.StatusRequestEntityTooLarge,

	// Configuration and data errors -> 400 Bad Request
	ErrCodeCountingConfigInvalid: http.StatusBadRequest,
	ErrCodeSequenceInvalid:       http.StatusBadRequest,
	ErrCodeInventoryInvalid:      http.StatusBadRequest,
	ErrCodeUnsupportedCountMode:  http.StatusBadRequest,

	// Inventory rules -> 422 Unprocessable Entity
	ErrCodeLaunchValidationFailed: http.StatusUnprocessableEntity,
	ErrCodeAmbiguousCountMode:     http.StatusUnprocessableEntity,
	ErrCodeInvalidTransition:      http.StatusUnprocessableEntity,
	ErrCodeEmptyStockSnapshot:     http.StatusUnprocessableEntity,
	ErrCodeInsufficientSequences:  http.StatusUnprocessableEntity,
	ErrCodeFinalResultRequired:    http.StatusUnprocessableEntity,
	ErrCodeEcartAlreadyResolved:   http.StatusUnprocessableEntity,
	ErrCodeWarehouseNotLinked:     http.StatusUnprocessableEntity,
	ErrCodeCountingDetailLocked:   http.StatusUnprocessableEntity,
	ErrCodeInventoryNotEditable:   http.StatusUnprocessableEntity,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// LegacyErrorCodeMapping maps the shared domain codes to the standardized codes
var LegacyErrorCodeMapping = map[string]string{
	"NOT_FOUND":            ErrCodeNotFound,
	"ALREADY_EXISTS":       ErrCodeAlreadyExists,
	"INVALID_INPUT":        ErrCodeInvalidInput,
	"INVALID_STATE":        ErrCodeInvalidState,
	"CONCURRENCY_CONFLICT": ErrCodeConcurrencyConflict,
	"VALIDATION_ERROR":     ErrCodeValidation,
	"BAD_REQUEST":          ErrCodeBadRequest,
	"INTERNAL_ERROR":       ErrCodeInternal,
}

// NormalizeErrorCode converts a shared domain code to the standardized format
// If the code is already in the new format or unknown, returns it as-is
func NormalizeErrorCode(code string) string {
	if newCode, ok := LegacyErrorCodeMapping[code]; ok {
		return newCode
	}
	return code
}
