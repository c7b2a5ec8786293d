package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BankTransactionType is the direction of money moving through the household account
type BankTransactionType string

const (
	BankTransactionDeposit    BankTransactionType = "deposit"
	BankTransactionWithdrawal BankTransactionType = "withdrawal"
)

var (
	ErrInvalidBankTransactionType = errors.New("invalid bank transaction type")
	ErrInvalidAmount              = errors.New("amount must be positive")
	ErrInvalidDepositSource       = errors.New("invalid deposit source")
	ErrSourceOnWithdrawal         = errors.New("from_member is only allowed on deposits")
)

// BankTransaction is a deposit into or a withdrawal from the household bank account
type BankTransaction struct {
	ID          uuid.UUID           `json:"id"`
	UserID      uuid.UUID           `json:"user_id"`
	Amount      decimal.Decimal     `json:"amount"`
	Type        BankTransactionType `json:"type"`
	Description string              `json:"description,omitempty"`
	FromMember  string              `json:"from_member,omitempty"`
	Date        time.Time           `json:"date"`
	CreatedAt   time.Time           `json:"created_at"`
}

func (t *BankTransaction) Validate() error {
	if !t.Type.IsValid() {
		return ErrInvalidBankTransactionType
	}

	if !t.Amount.IsPositive() {
		return ErrInvalidAmount
	}

	if t.Date.IsZero() {
		return ErrMissingDate
	}

	if t.FromMember != "" {
		if t.Type != BankTransactionDeposit {
			return ErrSourceOnWithdrawal
		}
		if !IsValidDepositSource(t.FromMember) {
			return ErrInvalidDepositSource
		}
	}

	return nil
}

func (t *BankTransaction) IsDeposit() bool {
	return t.Type == BankTransactionDeposit
}

func (t *BankTransaction) IsWithdrawal() bool {
	return t.Type == BankTransactionWithdrawal
}

func (t BankTransactionType) IsValid() bool {
	return t == BankTransactionDeposit || t == BankTransactionWithdrawal
}

// ParseBankTransactionType converts a raw value into a BankTransactionType
func ParseBankTransactionType(raw string) (BankTransactionType, error) {
	t := BankTransactionType(raw)
	if !t.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidBankTransactionType, raw)
	}
	return t, nil
}
