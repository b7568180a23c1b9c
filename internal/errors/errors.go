// Package errors provides custom error types for the SiteLedger gateway.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak upstream details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Aggregation errors. Any failure while building a view fails the whole
// cycle; there is no partial-success rendering.
var (
	ErrInvalidRange      = &AppError{Code: "INVALID_RANGE", Message: "from_date must not be after to_date", StatusCode: http.StatusBadRequest}
	ErrFetchFailed       = &AppError{Code: "FETCH_FAILED", Message: "Failed to fetch transactions", StatusCode: http.StatusBadGateway}
	ErrBadUpstreamData   = &AppError{Code: "BAD_UPSTREAM_DATA", Message: "Upstream returned an invalid transaction", StatusCode: http.StatusBadGateway}
	ErrDuplicateRecordID = &AppError{Code: "DUPLICATE_RECORD_ID", Message: "Two sources reported the same transaction ID", StatusCode: http.StatusBadGateway}
	ErrNoSnapshot        = &AppError{Code: "NO_SNAPSHOT", Message: "No aggregation has completed yet", StatusCode: http.StatusNotFound}
)

// Mutation errors.
var (
	ErrUpstreamRejected    = &AppError{Code: "UPSTREAM_REJECTED", Message: "The back office rejected the request", StatusCode: http.StatusBadGateway}
	ErrTransactionNotFound = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "Transaction not found", StatusCode: http.StatusNotFound}
	ErrRecordNotDeletable  = &AppError{Code: "RECORD_NOT_DELETABLE", Message: "Only daily ledger entries can be deleted", StatusCode: http.StatusForbidden}
	ErrSameAccountTransfer = &AppError{Code: "SAME_ACCOUNT_TRANSFER", Message: "Cannot transfer between identical accounts", StatusCode: http.StatusBadRequest}
	ErrInvalidFlowType     = &AppError{Code: "INVALID_FLOW_TYPE", Message: "Unsupported flow type", StatusCode: http.StatusBadRequest}
)
