package apperror

import (
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

// ---- Asset & Pricing (AST) ----

func ErrUnsupportedAsset(asset string) *AppError {
	return New("AST_001", fmt.Sprintf("Asset %q is not supported", asset), http.StatusBadRequest)
}

func ErrStalePrice(asset string) *AppError {
	return New("AST_002", fmt.Sprintf("Price for asset %q is stale or unavailable", asset), http.StatusUnprocessableEntity)
}

// ---- Payment Business Logic (PAY) ----

func ErrInsufficientPayment() *AppError {
	return New("PAY_001", "Payment value below the paywall price", http.StatusPaymentRequired)
}

func ErrZeroAmountReceived() *AppError {
	return New("PAY_002", "No funds were received from the payer", http.StatusBadRequest)
}

func ErrInvalidMerchant() *AppError {
	return New("PAY_003", "Callback target reports a different merchant", http.StatusBadRequest)
}

func ErrArithmeticOverflow() *AppError {
	return New("PAY_004", "Amount does not fit the transfer unit", http.StatusUnprocessableEntity)
}

func ErrInsufficientFunds() *AppError {
	return New("PAY_005", "Insufficient balance in payer account", http.StatusPaymentRequired)
}

// ---- Escrow Ledger (ESC) ----

func ErrTransactionNotAuthorized() *AppError {
	return New("ESC_001", "Transaction identity is not pending authorization", http.StatusConflict)
}

func ErrReentrantCall() *AppError {
	return New("ESC_002", "Reentrant call into a protected entry point", http.StatusConflict)
}

// ---- Callback Execution (CB) ----

func ErrInvalidTarget(target string) *AppError {
	return New("CB_001", fmt.Sprintf("Callback target %q is not executable", target), http.StatusBadRequest)
}

func ErrCallFailed(err error) *AppError {
	return Wrap("CB_002", "Callback execution failed", http.StatusBadGateway, err)
}

// ---- Authentication & Permissions (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrUsernameExists() *AppError {
	return New("AUTH_002", "Username already exists", http.StatusConflict)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrMerchantSuspended() *AppError {
	return New("AUTH_004", "Merchant account is suspended", http.StatusForbidden)
}

func ErrNotMerchant() *AppError {
	return New("AUTH_005", "Caller is not the merchant of this entry", http.StatusForbidden)
}

func ErrNotAdmin() *AppError {
	return New("AUTH_006", "Caller is not the registry administrator", http.StatusForbidden)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New("SYS_002", message, http.StatusBadRequest)
}

// NotFound returns a generic not-found error for the named entity.
func NotFound(entity string) *AppError {
	return New("SYS_003", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}
