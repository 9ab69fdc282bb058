package errors

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/ujjwalguptaofficial/osnft-contracts-sub000/internal/domain"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeBadRequest       ErrorCode = "bad_request"
	ErrCodeNotFound         ErrorCode = "not_found"
	ErrCodeValidationFailed ErrorCode = "validation_failed"
	ErrCodeUnauthorized     ErrorCode = "unauthorized"
	ErrCodeForbidden        ErrorCode = "forbidden"
	ErrCodeConflict         ErrorCode = "conflict"
	ErrCodeInvalidSignature ErrorCode = "invalid_signature"
	ErrCodePaymentFailed    ErrorCode = "payment_failed"

	// Server errors (5xx)
	ErrCodeInternalError ErrorCode = "internal_error"
	ErrCodeDatabaseError ErrorCode = "database_error"
	ErrCodeUnavailable   ErrorCode = "service_unavailable"
)

// APIError represents a structured API error that carries error code and details
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	jsonErr, _ := json.Marshal(e)
	return string(jsonErr)
}

// Error constructors for common error types
func NewBadRequestError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewNotFoundError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeNotFound,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewValidationError(details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeValidationFailed,
		Message: "Validation failed",
		Details: strings.Join(details, ", "),
	}
}

func NewUnauthorizedError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeUnauthorized,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewForbiddenError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeForbidden,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewInternalError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeInternalError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewDatabaseError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeDatabaseError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewUnavailableError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeUnavailable,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

// revertStatus maps each revert kind to its HTTP status and code
var revertStatus = map[domain.ErrorKind]struct {
	status int
	code   ErrorCode
}{
	domain.KindAuthorization:     {http.StatusForbidden, ErrCodeForbidden},
	domain.KindStatePrecondition: {http.StatusConflict, ErrCodeConflict},
	domain.KindInputValidation:   {http.StatusBadRequest, ErrCodeValidationFailed},
	domain.KindSignature:         {http.StatusUnauthorized, ErrCodeInvalidSignature},
	domain.KindEconomic:          {http.StatusPaymentRequired, ErrCodePaymentFailed},
	domain.KindInternal:          {http.StatusInternalServerError, ErrCodeInternalError},
}

// FromLedger converts a ledger revert into a status code and API error.
// Errors that are not reverts map to 500 with no details.
func FromLedger(err error) (int, *APIError) {
	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return StatusOf(apiErr), apiErr
	}

	var revert *domain.Error
	if !stderrors.As(err, &revert) {
		return http.StatusInternalServerError, NewInternalError("Internal server error")
	}

	m, ok := revertStatus[revert.Kind]
	if !ok {
		m = revertStatus[domain.KindInternal]
	}
	return m.status, &APIError{
		Code:    m.code,
		Message: "Transaction reverted",
		Details: revert.Reason,
	}
}

// StatusOf returns the HTTP status of an API error
func StatusOf(e *APIError) int {
	switch e.Code {
	case ErrCodeBadRequest, ErrCodeValidationFailed:
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeUnauthorized, ErrCodeInvalidSignature:
		return http.StatusUnauthorized
	case ErrCodeForbidden:
		return http.StatusForbidden
	case ErrCodeConflict:
		return http.StatusConflict
	case ErrCodePaymentFailed:
		return http.StatusPaymentRequired
	case ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
