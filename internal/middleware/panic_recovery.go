package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"household-expenses/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var recoveredPanicsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_recovered_panics_total",
		Help: "Total number of handler panics recovered, by route",
	},
	[]string{"endpoint"},
)

// PanicRecovery turns a handler panic into a SYSTEM_001 response carrying the trace ID.
// Nothing is written when the handler already committed a response.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				traceID := GetTraceID(c)
				if traceID == "" {
					traceID = "unknown"
				}

				attrs := []any{
					"trace_id", traceID,
					"panic", fmt.Sprintf("%v", r),
					"stack_trace", string(debug.Stack()),
					"path", c.Request().URL.Path,
					"method", c.Request().Method,
				}
				if userID := c.Get("user_id"); userID != nil {
					attrs = append(attrs, "user_id", userID)
				}
				slog.Error("Panic recovered", attrs...)
				recoveredPanicsTotal.WithLabelValues(c.Path()).Inc()

				if c.Response().Committed {
					return
				}

				if sendErr := c.JSON(http.StatusInternalServerError, errors.NewSystemError(traceID)); sendErr != nil {
					slog.Error("Failed to send panic recovery response",
						"trace_id", traceID,
						"error", sendErr.Error(),
					)
				}
				err = nil
			}()

			return next(c)
		}
	}
}
