package handlers

import (
	"log/slog"

	"household-expenses/internal/errors"
	"household-expenses/internal/services"

	"github.com/labstack/echo/v4"
)

// Handlers report failures through SendError (known client errors), sendServiceError
// (anything returned by a service) or SendSystemError (causes that must not leak).

// SuccessResponse is the envelope of every 2xx body
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

type ErrorResponse = errors.ErrorResponse

// getTraceID reads the trace ID set by the RequestID middleware
func getTraceID(c echo.Context) string {
	if traceID, ok := c.Get("trace_id").(string); ok {
		return traceID
	}
	return services.TraceIDFromContext(c.Request().Context())
}

// SendError writes the error envelope for code and returns nil so handlers can return it directly
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	resp := errors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(resp.Status(), resp)
}

// SendSystemError logs err and answers with a generic SYSTEM_001
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	slog.Error("Request failed",
		"trace_id", traceID,
		"method", c.Request().Method,
		"path", c.Path(),
		"error", err)

	resp := errors.NewSystemError(traceID)
	return c.JSON(resp.Status(), resp)
}
