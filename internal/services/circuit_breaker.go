package services

import (
	"errors"
	"sync"
	"time"

	"household-expenses/internal/models"
)

var (
	ErrCircuitBreakerOpen = errors.New("circuit breaker is open")
)

type CircuitBreakerConfig struct {
	MaxFailures     int
	ResetTimeout    time.Duration
	HalfOpenMaxSucc int
	// OnStateChange is called with the lock released after every transition
	OnStateChange func(from, to models.CircuitBreakerState)
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		MaxFailures:     5,
		ResetTimeout:    30 * time.Second,
		HalfOpenMaxSucc: 3,
	}
}

const (
	StateClosed models.CircuitBreakerState = iota
	StateOpen
	StateHalfOpen
)

type CircuitBreaker struct {
	mu                sync.Mutex
	config            CircuitBreakerConfig
	state             models.CircuitBreakerState
	failures          int
	halfOpenSuccesses int
	lastFailureTime   time.Time
	now               func() time.Time
}

func NewCircuitBreaker(config CircuitBreakerConfig) CircuitBreakerInterface {
	return newCircuitBreaker(config, time.Now)
}

func newCircuitBreaker(config CircuitBreakerConfig, now func() time.Time) *CircuitBreaker {
	return &CircuitBreaker{
		config: config,
		state:  StateClosed,
		now:    now,
	}
}

// IsOpen reports whether calls should be skipped. An open breaker whose reset timeout
// has elapsed moves to half-open and lets the call through.
func (cb *CircuitBreaker) IsOpen() bool {
	cb.mu.Lock()
	if cb.state == StateOpen && cb.now().Sub(cb.lastFailureTime) > cb.config.ResetTimeout {
		from := cb.setState(StateHalfOpen)
		cb.mu.Unlock()
		cb.notify(from, StateHalfOpen)
		return false
	}
	open := cb.state == StateOpen
	cb.mu.Unlock()
	return open
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	switch cb.state {
	case StateHalfOpen:
		cb.halfOpenSuccesses++
		if cb.halfOpenSuccesses >= cb.config.HalfOpenMaxSucc {
			from := cb.setState(StateClosed)
			cb.mu.Unlock()
			cb.notify(from, StateClosed)
			return
		}
	case StateClosed:
		cb.failures = 0
	}
	cb.mu.Unlock()
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	cb.lastFailureTime = cb.now()

	trip := false
	switch cb.state {
	case StateHalfOpen:
		trip = true
	case StateClosed:
		cb.failures++
		trip = cb.failures >= cb.config.MaxFailures
	}

	if !trip {
		cb.mu.Unlock()
		return
	}
	from := cb.setState(StateOpen)
	cb.mu.Unlock()
	cb.notify(from, StateOpen)
}

// setState must be called with mu held. It returns the previous state.
func (cb *CircuitBreaker) setState(to models.CircuitBreakerState) models.CircuitBreakerState {
	from := cb.state
	cb.state = to
	cb.halfOpenSuccesses = 0
	if to == StateClosed {
		cb.failures = 0
	}
	return from
}

func (cb *CircuitBreaker) notify(from, to models.CircuitBreakerState) {
	if cb.config.OnStateChange != nil && from != to {
		cb.config.OnStateChange(from, to)
	}
}

func (cb *CircuitBreaker) GetState() models.CircuitBreakerState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

func (cb *CircuitBreaker) Reset() {
	cb.mu.Lock()
	from := cb.setState(StateClosed)
	cb.mu.Unlock()
	cb.notify(from, StateClosed)
}

func (cb *CircuitBreaker) GetFailureCount() int {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.failures
}
