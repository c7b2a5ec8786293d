package services

import (
	"context"
	"log/slog"
	"time"

	"household-expenses/internal/models"
)

type traceIDKey struct{}

// WithTraceID returns a copy of ctx carrying the request trace ID
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceIDFromContext returns the trace ID stored by WithTraceID, or ""
func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if traceID, ok := ctx.Value(traceIDKey{}).(string); ok {
		return traceID
	}
	return ""
}

type NotificationLogger struct {
	logger *slog.Logger
}

func NewNotificationLogger(logger *slog.Logger) NotificationLoggerInterface {
	return &NotificationLogger{
		logger: logger,
	}
}

func (nl *NotificationLogger) LogBudgetAlertRaised(ctx context.Context, alert *models.BudgetAlert) {
	nl.logger.InfoContext(ctx, "budget alert raised",
		append(alertAttrs(ctx, alert), slog.String("event_type", "budget_alert_raised"))...,
	)
}

func (nl *NotificationLogger) LogBudgetAlertPublished(ctx context.Context, alert *models.BudgetAlert, durationMs int64) {
	nl.logger.InfoContext(ctx, "budget alert published",
		append(alertAttrs(ctx, alert),
			slog.String("event_type", "budget_alert_published"),
			slog.Int64("duration_ms", durationMs),
		)...,
	)
}

func (nl *NotificationLogger) LogBudgetAlertFailed(ctx context.Context, alert *models.BudgetAlert, errorMsg string) {
	nl.logger.WarnContext(ctx, "budget alert publish failed",
		append(alertAttrs(ctx, alert),
			slog.String("event_type", "budget_alert_failed"),
			slog.String("error", errorMsg),
		)...,
	)
}

func (nl *NotificationLogger) LogBudgetAlertDropped(ctx context.Context, alert *models.BudgetAlert, reason string) {
	nl.logger.WarnContext(ctx, "budget alert dropped",
		append(alertAttrs(ctx, alert),
			slog.String("event_type", "budget_alert_dropped"),
			slog.String("reason", reason),
		)...,
	)
}

func (nl *NotificationLogger) LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string) {
	nl.logger.WarnContext(ctx, "circuit breaker state change",
		slog.String("event_type", "circuit_breaker_state_change"),
		slog.String("service", service),
		slog.String("old_state", oldState),
		slog.String("new_state", newState),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	)
}

func alertAttrs(ctx context.Context, alert *models.BudgetAlert) []any {
	return []any{
		slog.String("alert_id", alert.AlertID.String()),
		slog.String("user_id", alert.UserID.String()),
		slog.String("budget_id", alert.BudgetID.String()),
		slog.String("category", alert.Category),
		slog.String("month", alert.Month),
		slog.String("status", alert.Status),
		slog.Float64("progress", alert.Progress),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", TraceIDFromContext(ctx)),
	}
}
