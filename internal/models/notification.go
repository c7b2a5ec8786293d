package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const BudgetAlertEventType = "budget.alert"

// CircuitBreakerState is the state of a breaker guarding an outbound dependency
type CircuitBreakerState int

func (s CircuitBreakerState) String() string {
	switch s {
	case 0:
		return "closed"
	case 1:
		return "open"
	case 2:
		return "half_open"
	default:
		return "unknown"
	}
}

// BudgetAlert is published when a budget reaches warning or over status
type BudgetAlert struct {
	EventType string          `json:"event_type"`
	AlertID   uuid.UUID       `json:"alert_id"`
	UserID    uuid.UUID       `json:"user_id"`
	BudgetID  uuid.UUID       `json:"budget_id"`
	Category  string          `json:"category"`
	Month     string          `json:"month"`
	Amount    decimal.Decimal `json:"amount"`
	Spent     decimal.Decimal `json:"spent"`
	Overspend decimal.Decimal `json:"overspend"`
	Progress  float64         `json:"progress"`
	Status    string          `json:"status"`
	RaisedAt  time.Time       `json:"raised_at"`
}

func (a *BudgetAlert) ToJSON() ([]byte, error) {
	return json.Marshal(a)
}

func BudgetAlertFromJSON(data []byte) (*BudgetAlert, error) {
	var alert BudgetAlert
	if err := json.Unmarshal(data, &alert); err != nil {
		return nil, err
	}
	return &alert, nil
}
