package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"household-expenses/internal/config"
	"household-expenses/internal/models"

	"github.com/rabbitmq/amqp091-go"
)

const (
	alertPublisherService = "amqp_budget_alerts"
	defaultPublishTimeout = 5 * time.Second
)

// amqpChannel is the subset of *amqp091.Channel the publisher uses
type amqpChannel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// AMQPBudgetAlertPublisher publishes budget alerts as persistent JSON messages on a topic exchange
type AMQPBudgetAlertPublisher struct {
	conn       *amqp091.Connection
	channel    amqpChannel
	exchange   string
	routingKey string
	timeout    time.Duration
	breaker    CircuitBreakerInterface
	events     NotificationLoggerInterface
	metrics    MetricsRecorderInterface
}

// NewBudgetAlertPublisher returns an AMQP publisher when cfg.AMQPURL is set and a no-op publisher otherwise
func NewBudgetAlertPublisher(cfg config.NotificationConfig, logger *slog.Logger, metrics MetricsRecorderInterface) (BudgetAlertPublisherInterface, error) {
	if cfg.AMQPURL == "" {
		logger.Info("AMQP_URL not set, budget alerts will only be logged")
		return NewNoopBudgetAlertPublisher(logger), nil
	}

	events := NewNotificationLogger(logger)

	breakerConfig := DefaultCircuitBreakerConfig()
	breakerConfig.OnStateChange = func(from, to models.CircuitBreakerState) {
		events.LogCircuitBreakerStateChange(context.Background(), alertPublisherService, from.String(), to.String())
		metrics.RecordGauge(MetricCircuitBreakerState, float64(to), map[string]string{"service": alertPublisherService})
	}

	conn, err := amqp091.Dial(cfg.AMQPURL)
	if err != nil {
		return nil, fmt.Errorf("failed to dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open AMQP channel: %w", err)
	}

	publisher, err := newAMQPBudgetAlertPublisher(channel, cfg, NewCircuitBreaker(breakerConfig), events, metrics)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}
	publisher.conn = conn

	logger.Info("Budget alert publisher connected", "exchange", cfg.Exchange, "routing_key", cfg.RoutingKey)
	return publisher, nil
}

func newAMQPBudgetAlertPublisher(
	channel amqpChannel,
	cfg config.NotificationConfig,
	breaker CircuitBreakerInterface,
	events NotificationLoggerInterface,
	metrics MetricsRecorderInterface,
) (*AMQPBudgetAlertPublisher, error) {
	err := channel.ExchangeDeclare(
		cfg.Exchange, // name
		"topic",      // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	timeout := cfg.PublishTimeout
	if timeout <= 0 {
		timeout = defaultPublishTimeout
	}

	return &AMQPBudgetAlertPublisher{
		channel:    channel,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		timeout:    timeout,
		breaker:    breaker,
		events:     events,
		metrics:    metrics,
	}, nil
}

// Publish sends the alert unless the circuit breaker is open
func (p *AMQPBudgetAlertPublisher) Publish(ctx context.Context, alert *models.BudgetAlert) error {
	if p.breaker.IsOpen() {
		p.events.LogBudgetAlertDropped(ctx, alert, "circuit_open")
		p.countAlert(alert, "dropped")
		return ErrCircuitBreakerOpen
	}

	body, err := alert.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal budget alert: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	start := time.Now()
	err = p.channel.PublishWithContext(
		ctx,
		p.exchange,
		p.routingKey,
		false, // mandatory
		false, // immediate
		amqp091.Publishing{
			ContentType:   "application/json",
			DeliveryMode:  amqp091.Persistent,
			Timestamp:     alert.RaisedAt,
			MessageId:     alert.AlertID.String(),
			Type:          models.BudgetAlertEventType,
			CorrelationId: TraceIDFromContext(ctx),
			Body:          body,
		},
	)
	duration := time.Since(start)

	if err != nil {
		p.breaker.RecordFailure()
		p.events.LogBudgetAlertFailed(ctx, alert, err.Error())
		p.countAlert(alert, "failed")
		return fmt.Errorf("failed to publish budget alert: %w", err)
	}

	p.breaker.RecordSuccess()
	p.events.LogBudgetAlertPublished(ctx, alert, duration.Milliseconds())
	p.countAlert(alert, "published")
	p.metrics.RecordProcessingTime(MetricBudgetAlertPublish, duration)
	return nil
}

func (p *AMQPBudgetAlertPublisher) countAlert(alert *models.BudgetAlert, outcome string) {
	p.metrics.IncrementCounter(MetricBudgetAlert, map[string]string{
		"status":  alert.Status,
		"outcome": outcome,
	})
}

func (p *AMQPBudgetAlertPublisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// NoopBudgetAlertPublisher logs alerts instead of delivering them
type NoopBudgetAlertPublisher struct {
	logger *slog.Logger
}

func NewNoopBudgetAlertPublisher(logger *slog.Logger) BudgetAlertPublisherInterface {
	return &NoopBudgetAlertPublisher{logger: logger}
}

func (p *NoopBudgetAlertPublisher) Publish(ctx context.Context, alert *models.BudgetAlert) error {
	p.logger.DebugContext(ctx, "Budget alert not published, no broker configured",
		"budget_id", alert.BudgetID,
		"status", alert.Status)
	return nil
}

func (p *NoopBudgetAlertPublisher) Close() error {
	return nil
}
