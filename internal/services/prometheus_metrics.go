package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names understood by PrometheusMetrics
const (
	MetricExpenseOperation     = "expense_operation"
	MetricExpenseAmount        = "expense_amount"
	MetricBudgetOperation      = "budget_operation"
	MetricBudgetAlert          = "budget_alert"
	MetricBankTransaction      = "bank_transaction"
	MetricAuthenticationEvent  = "authentication_event"
	MetricCircuitBreakerState  = "circuit_breaker_state"
	MetricDemoSeed             = "demo_seed"
	MetricDashboardBuild       = "dashboard_build"
	MetricBudgetAlertPublish   = "budget_alert_publish"
	MetricBankBalanceRecompute = "bank_balance"
)

type PrometheusMetrics struct {
	expenseOperations         *prometheus.CounterVec
	expenseAmount             *prometheus.HistogramVec
	budgetOperations          *prometheus.CounterVec
	budgetAlerts              *prometheus.CounterVec
	bankTransactions          *prometheus.CounterVec
	authenticationEventsTotal *prometheus.CounterVec
	circuitBreakerState       *prometheus.GaugeVec
	demoSeedTotal             prometheus.Counter
	dashboardDuration         prometheus.Histogram
	alertPublishDuration      prometheus.Histogram
	bankBalanceDuration       prometheus.Histogram
}

// NewPrometheusMetrics registers the household metrics with reg
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)
	return &PrometheusMetrics{
		expenseOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "expense_operations_total",
				Help: "Total number of expense mutations",
			},
			[]string{"operation", "status"},
		),
		expenseAmount: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "expense_amount",
				Help:    "Recorded expense amounts in display currency units",
				Buckets: prometheus.ExponentialBuckets(100, 4, 8),
			},
			[]string{"category"},
		),
		budgetOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_operations_total",
				Help: "Total number of budget mutations",
			},
			[]string{"operation", "status"},
		),
		budgetAlerts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_alerts_total",
				Help: "Budget alerts raised, by status and delivery outcome",
			},
			[]string{"status", "outcome"},
		),
		bankTransactions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bank_transactions_total",
				Help: "Total number of bank transaction mutations",
			},
			[]string{"operation", "type"},
		),
		authenticationEventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		demoSeedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "demo_seed_total",
				Help: "Total number of demo data seed runs",
			},
		),
		dashboardDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dashboard_build_duration_seconds",
				Help:    "Time to load and derive a dashboard",
				Buckets: prometheus.DefBuckets,
			},
		),
		alertPublishDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "budget_alert_publish_duration_milliseconds",
				Help:    "Budget alert publish latency in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		bankBalanceDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "bank_balance_duration_seconds",
				Help:    "Time to load and reconcile the bank balance",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricExpenseOperation:
		m.expenseOperations.WithLabelValues(tags["operation"], tags["status"]).Inc()
	case MetricBudgetOperation:
		m.budgetOperations.WithLabelValues(tags["operation"], tags["status"]).Inc()
	case MetricBudgetAlert:
		m.budgetAlerts.WithLabelValues(tags["status"], tags["outcome"]).Inc()
	case MetricBankTransaction:
		m.bankTransactions.WithLabelValues(tags["operation"], tags["type"]).Inc()
	case MetricAuthenticationEvent:
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationEventsTotal.WithLabelValues(eventType).Inc()
		}
	case MetricDemoSeed:
		m.demoSeedTotal.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricDashboardBuild:
		m.dashboardDuration.Observe(duration.Seconds())
	case MetricBudgetAlertPublish:
		m.alertPublishDuration.Observe(float64(duration.Milliseconds()))
	case MetricBankBalanceRecompute:
		m.bankBalanceDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricExpenseAmount:
		m.expenseAmount.WithLabelValues(tags["category"]).Observe(value)
	case MetricCircuitBreakerState:
		if service := tags["service"]; service != "" {
			m.circuitBreakerState.WithLabelValues(service).Set(value)
		}
	}
}
