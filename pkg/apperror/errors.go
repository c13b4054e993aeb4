package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// HasCode reports whether err (or anything it wraps) is an AppError with code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// Codes, grouped by failure class.
const (
	CodeConfiguration      = "CFG_001"
	CodeWalletAccessDenied = "WAL_001"
	CodeWalletInUse        = "WAL_002"
	CodeUnsupportedAsset   = "WAL_003"
	CodeUpstream           = "UPS_001"
	CodeConflict           = "CON_001"
	CodeInvariant          = "INV_001"
	CodeInvoiceNotFound    = "INVC_001"
	CodeInvoiceState       = "INVC_002"
	CodeValidation         = "VAL_001"
	CodeInvalidToken       = "AUTH_001"
	CodeRateLimited        = "RATE_001"
	CodeInternal           = "SYS_001"
)

// ---- Configuration (CFG) ----

func ErrConfiguration(err error) *AppError {
	return Wrap(CodeConfiguration, "Service is misconfigured", http.StatusInternalServerError, err)
}

// ---- Wallet access (WAL) ----

// ErrWalletAccessDenied is returned for a wrong password, an unknown wallet and
// undecryptable wallet material alike, so callers cannot tell them apart.
func ErrWalletAccessDenied() *AppError {
	return New(CodeWalletAccessDenied, "Wallet access denied", http.StatusUnauthorized)
}

func ErrWalletInUse() *AppError {
	return New(CodeWalletInUse, "Wallet has invoices awaiting payment", http.StatusConflict)
}

func ErrUnsupportedAsset(currency string) *AppError {
	return New(CodeUnsupportedAsset, fmt.Sprintf("Unsupported currency %q", currency), http.StatusBadRequest)
}

// ---- Upstream (UPS) ----

func ErrUpstreamUnavailable(service string, err error) *AppError {
	return Wrap(CodeUpstream, fmt.Sprintf("%s unavailable", service), http.StatusServiceUnavailable, err)
}

// ---- Concurrency (CON) ----

func ErrConcurrencyConflict(err error) *AppError {
	return Wrap(CodeConflict, "Concurrent modification, retry the operation", http.StatusConflict, err)
}

// ---- Domain invariants (INV) ----

func ErrInvariantViolation(err error) *AppError {
	return Wrap(CodeInvariant, "Domain invariant violated", http.StatusInternalServerError, err)
}

// ---- Invoices (INVC) ----

func ErrInvoiceNotFound() *AppError {
	return New(CodeInvoiceNotFound, "Invoice not found", http.StatusNotFound)
}

func ErrInvoiceNotCancellable() *AppError {
	return New(CodeInvoiceState, "Only pending invoices with no detected payment can be cancelled", http.StatusConflict)
}

// ---- Auth (AUTH) ----

func ErrInvalidToken() *AppError {
	return New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New(CodeRateLimited, "Rate limit exceeded, retry later", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap(CodeInternal, "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap(CodeInternal, "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a VAL_001 validation error.
func Validation(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest)
}
