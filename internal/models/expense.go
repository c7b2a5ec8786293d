package models

import (
	"errors"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const MaxNotesLength = 500

var (
	ErrInvalidCategory     = errors.New("invalid category")
	ErrInvalidSubCategory  = errors.New("sub-category does not belong to category")
	ErrInvalidFamilyMember = errors.New("invalid family member")
	ErrInvalidBeneficiary  = errors.New("invalid beneficiary")
	ErrNegativeAmount      = errors.New("amount cannot be negative")
	ErrNotesTooLong        = errors.New("notes must not exceed 500 characters")
	ErrMissingDate         = errors.New("date is required")
)

// Expense is a single household purchase
type Expense struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"user_id"`
	Date        time.Time       `json:"date"`
	Category    Category        `json:"category"`
	SubCategory string          `json:"sub_category,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	PaidBy      FamilyMember    `json:"paid_by"`
	ForWhom     Beneficiary     `json:"for_whom"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Validate checks every user-supplied field
func (e *Expense) Validate() error {
	if e.Date.IsZero() {
		return ErrMissingDate
	}

	if !e.Category.IsValid() {
		return ErrInvalidCategory
	}

	if !e.Category.HasSubCategory(e.SubCategory) {
		return ErrInvalidSubCategory
	}

	if e.Amount.IsNegative() {
		return ErrNegativeAmount
	}

	if !e.PaidBy.IsValid() {
		return ErrInvalidFamilyMember
	}

	if !e.ForWhom.IsValid() {
		return ErrInvalidBeneficiary
	}

	if utf8.RuneCountInString(e.Notes) > MaxNotesLength {
		return ErrNotesTooLong
	}

	return nil
}

// DateKey returns the normalized date key of the expense
func (e *Expense) DateKey() string {
	return DateKey(e.Date)
}

// IsShared reports whether the expense benefits the whole household
func (e *Expense) IsShared() bool {
	return e.ForWhom.IsShared()
}

// Involves reports whether member paid for or benefits from the expense
func (e *Expense) Involves(member FamilyMember) bool {
	return e.PaidBy == member || e.ForWhom == Beneficiary(member)
}

// InRange reports whether the expense date falls within [from, to], both inclusive
func (e *Expense) InRange(from, to time.Time) bool {
	d := NormalizeDate(e.Date)
	return !d.Before(NormalizeDate(from)) && !d.After(NormalizeDate(to))
}
