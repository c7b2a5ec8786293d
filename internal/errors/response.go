package errors

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// ErrorResponse is the JSON envelope of every API error
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

type ErrorOption func(*ErrorResponse)

// WithDetails appends detail lines to the response
func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Details = append(er.Error.Details, details...)
	}
}

// WithMessage replaces the registered message of the code
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		if message != "" {
			er.Error.Message = message
		}
	}
}

// NewErrorResponse builds the envelope for code with its registered message
func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(code),
			Message: GetErrorMessage(code),
			TraceID: traceID,
		},
	}
	for _, opt := range opts {
		opt(response)
	}
	return response
}

// NewValidationError renders fieldErrors as "field: message" details sorted by field name
func NewValidationError(fieldErrors map[string]string, traceID string) *ErrorResponse {
	fields := make([]string, 0, len(fieldErrors))
	for field := range fieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	details := make([]string, 0, len(fields))
	for _, field := range fields {
		details = append(details, fmt.Sprintf("%s: %s", field, fieldErrors[field]))
	}
	return NewErrorResponse(ValidationGeneral, traceID, WithDetails(details...))
}

// NewSystemError is the response for any failure whose cause must stay server side
func NewSystemError(traceID string) *ErrorResponse {
	return NewErrorResponse(SystemInternalError, traceID)
}

// Status overrides for codes that do not use the default of their group
var statusByCode = map[ErrorCode]int{
	AuthAccountLocked:        http.StatusForbidden,
	AuthEmailTaken:           http.StatusConflict,
	ExpenseNotFound:          http.StatusNotFound,
	BudgetNotFound:           http.StatusNotFound,
	BankTransactionNotFound:  http.StatusNotFound,
	SystemRateLimitExceeded:  http.StatusTooManyRequests,
	SystemServiceUnavailable: http.StatusServiceUnavailable,
}

var statusByGroup = map[string]int{
	"AUTH":       http.StatusUnauthorized,
	"VALIDATION": http.StatusBadRequest,
	"EXPENSE":    http.StatusBadRequest,
	"BUDGET":     http.StatusBadRequest,
	"BANK":       http.StatusBadRequest,
	"SYSTEM":     http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status for code. Unregistered codes are 500.
func GetHTTPStatus(code ErrorCode) int {
	if !IsValidErrorCode(code) {
		return http.StatusInternalServerError
	}
	if status, ok := statusByCode[code]; ok {
		return status
	}
	group, _, _ := strings.Cut(string(code), "_")
	if status, ok := statusByGroup[group]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Status returns the HTTP status of the response code
func (er *ErrorResponse) Status() int {
	return GetHTTPStatus(ErrorCode(er.Error.Code))
}
