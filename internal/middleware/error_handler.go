package middleware

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"household-expenses/internal/errors"
	"household-expenses/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var apiErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "api_errors_total",
		Help: "Total number of API errors by code, endpoint, and status",
	},
	[]string{"code", "endpoint", "status"},
)

// codeByStatus is the error code of an echo.HTTPError raised outside the handlers
// (routing, body limit, binding, rate limiting)
var codeByStatus = map[int]errors.ErrorCode{
	http.StatusBadRequest:            errors.ValidationGeneral,
	http.StatusUnprocessableEntity:   errors.ValidationGeneral,
	http.StatusNotFound:              errors.ValidationGeneral,
	http.StatusMethodNotAllowed:      errors.ValidationGeneral,
	http.StatusRequestEntityTooLarge: errors.ValidationOutOfRange,
	http.StatusUnauthorized:          errors.AuthMissingToken,
	http.StatusForbidden:             errors.AuthInvalidTokenFormat,
	http.StatusTooManyRequests:       errors.SystemRateLimitExceeded,
	http.StatusInternalServerError:   errors.SystemInternalError,
	http.StatusServiceUnavailable:    errors.SystemServiceUnavailable,
}

// CustomHTTPErrorHandler renders any error that reaches echo as the API error envelope.
// Validator errors become VALIDATION_001 with one detail per field, unknown errors SYSTEM_001.
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	resp, status := errorResponseFor(err, traceID)

	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	slog.Log(c.Request().Context(), level, "HTTP error occurred",
		"trace_id", traceID,
		"error_code", resp.Error.Code,
		"status", status,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", err.Error(),
	)
	apiErrorsTotal.WithLabelValues(resp.Error.Code, c.Path(), strconv.Itoa(status)).Inc()

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, resp)
	}
	if err != nil {
		slog.Error("Failed to send error response", "trace_id", traceID, "error", err)
	}
}

func errorResponseFor(err error, traceID string) (*errors.ErrorResponse, int) {
	var httpErr *echo.HTTPError
	if stderrors.As(err, &httpErr) {
		code, ok := codeByStatus[httpErr.Code]
		if !ok {
			code = errors.SystemUnexpectedError
		}
		return errors.NewErrorResponse(code, traceID, errors.WithMessage(httpErrorMessage(httpErr))), httpErr.Code
	}

	if fieldErrors := validation.FieldErrors(err); fieldErrors != nil {
		return errors.NewValidationError(fieldErrors, traceID), http.StatusBadRequest
	}

	resp := errors.NewSystemError(traceID)
	return resp, resp.Status()
}

// httpErrorMessage is the message echo attached to the error, or "" for its default text.
// 5xx messages are never exposed.
func httpErrorMessage(httpErr *echo.HTTPError) string {
	if httpErr.Code >= http.StatusInternalServerError {
		return ""
	}
	switch m := httpErr.Message.(type) {
	case string:
		return m
	case nil:
		return ""
	default:
		return fmt.Sprint(m)
	}
}
