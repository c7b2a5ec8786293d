package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DecodeError reports a stored row that cannot be turned into a domain value
type DecodeError struct {
	Table string
	ID    uuid.UUID
	Field string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s row %s: field %s: %v", e.Table, e.ID, e.Field, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ExpenseRecord is the stored shape of an Expense
type ExpenseRecord struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index:idx_expenses_user_date,priority:1"`
	Date        time.Time       `gorm:"type:date;not null;index:idx_expenses_user_date,priority:2"`
	Category    string          `gorm:"type:varchar(50);not null"`
	SubCategory *string         `gorm:"type:varchar(50)"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	PaidBy      string          `gorm:"type:varchar(50);not null"`
	ForWhom     string          `gorm:"type:varchar(50);not null"`
	Notes       *string         `gorm:"type:text"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

func (r *ExpenseRecord) TableName() string {
	return "expenses"
}

func (r *ExpenseRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	now := time.Now().UTC()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = now
	}
	return nil
}

// NewExpenseRecord converts a domain expense into its stored shape
func NewExpenseRecord(e *Expense) *ExpenseRecord {
	return &ExpenseRecord{
		ID:          e.ID,
		UserID:      e.UserID,
		Date:        NormalizeDate(e.Date),
		Category:    string(e.Category),
		SubCategory: optionalString(e.SubCategory),
		Amount:      e.Amount,
		PaidBy:      string(e.PaidBy),
		ForWhom:     string(e.ForWhom),
		Notes:       optionalString(e.Notes),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// ToExpense decodes the row, failing on any value outside its enumeration
func (r *ExpenseRecord) ToExpense() (*Expense, error) {
	fail := func(field string, err error) error {
		return &DecodeError{Table: "expenses", ID: r.ID, Field: field, Err: err}
	}

	category, err := ParseCategory(r.Category)
	if err != nil {
		return nil, fail("category", err)
	}

	sub := derefString(r.SubCategory)
	if !category.HasSubCategory(sub) {
		return nil, fail("sub_category", fmt.Errorf("%q is not a sub-category of %s", sub, category))
	}

	paidBy, err := ParseFamilyMember(r.PaidBy)
	if err != nil {
		return nil, fail("paid_by", err)
	}

	forWhom, err := ParseBeneficiary(r.ForWhom)
	if err != nil {
		return nil, fail("for_whom", err)
	}

	if r.Date.IsZero() {
		return nil, fail("date", ErrMissingDate)
	}

	if r.Amount.IsNegative() {
		return nil, fail("amount", ErrNegativeAmount)
	}

	return &Expense{
		ID:          r.ID,
		UserID:      r.UserID,
		Date:        NormalizeDate(r.Date),
		Category:    category,
		SubCategory: sub,
		Amount:      r.Amount,
		PaidBy:      paidBy,
		ForWhom:     forWhom,
		Notes:       derefString(r.Notes),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}, nil
}

// BankTransactionRecord is the stored shape of a BankTransaction
type BankTransactionRecord struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Type        string          `gorm:"type:varchar(20);not null"`
	Description *string         `gorm:"type:text"`
	FromMember  *string         `gorm:"type:varchar(50)"`
	Date        time.Time       `gorm:"type:date;not null;index"`
	CreatedAt   time.Time       `gorm:"not null"`
}

func (r *BankTransactionRecord) TableName() string {
	return "bank_transactions"
}

func (r *BankTransactionRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	return nil
}

func NewBankTransactionRecord(t *BankTransaction) *BankTransactionRecord {
	return &BankTransactionRecord{
		ID:          t.ID,
		UserID:      t.UserID,
		Amount:      t.Amount,
		Type:        string(t.Type),
		Description: optionalString(t.Description),
		FromMember:  optionalString(t.FromMember),
		Date:        NormalizeDate(t.Date),
		CreatedAt:   t.CreatedAt,
	}
}

func (r *BankTransactionRecord) ToBankTransaction() (*BankTransaction, error) {
	fail := func(field string, err error) error {
		return &DecodeError{Table: "bank_transactions", ID: r.ID, Field: field, Err: err}
	}

	txType, err := ParseBankTransactionType(r.Type)
	if err != nil {
		return nil, fail("type", err)
	}

	if !r.Amount.IsPositive() {
		return nil, fail("amount", ErrInvalidAmount)
	}

	from := derefString(r.FromMember)
	if from != "" && !IsValidDepositSource(from) {
		return nil, fail("from_member", fmt.Errorf("unknown source %q", from))
	}

	if r.Date.IsZero() {
		return nil, fail("date", ErrMissingDate)
	}

	return &BankTransaction{
		ID:          r.ID,
		UserID:      r.UserID,
		Amount:      r.Amount,
		Type:        txType,
		Description: derefString(r.Description),
		FromMember:  from,
		Date:        NormalizeDate(r.Date),
		CreatedAt:   r.CreatedAt,
	}, nil
}

// BudgetRecord is the stored shape of a Budget. A NULL category is the overall budget.
// CategoryKey mirrors Category with "" for the overall budget and carries the unique index.
type BudgetRecord struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_budgets_user_category_key_month,priority:1"`
	Category    *string         `gorm:"type:varchar(50)"`
	CategoryKey string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_budgets_user_category_key_month,priority:2"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Month       time.Time       `gorm:"type:date;not null;uniqueIndex:idx_budgets_user_category_key_month,priority:3"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

func (r *BudgetRecord) TableName() string {
	return "budgets"
}

func (r *BudgetRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	r.CategoryKey = budgetCategoryKey(r.Category)
	now := time.Now().UTC()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = now
	}
	return nil
}

func budgetCategoryKey(category *string) string {
	if category == nil {
		return ""
	}
	return *category
}

func NewBudgetRecord(b *Budget) *BudgetRecord {
	var category *string
	if b.Category != nil {
		c := string(*b.Category)
		category = &c
	}
	return &BudgetRecord{
		ID:          b.ID,
		UserID:      b.UserID,
		Category:    category,
		CategoryKey: budgetCategoryKey(category),
		Amount:      b.Amount,
		Month:       MonthStart(b.Month),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func (r *BudgetRecord) ToBudget() (*Budget, error) {
	var category *Category
	if r.Category != nil {
		c, err := ParseCategory(*r.Category)
		if err != nil {
			return nil, &DecodeError{Table: "budgets", ID: r.ID, Field: "category", Err: err}
		}
		category = &c
	}

	if r.Amount.IsNegative() {
		return nil, &DecodeError{Table: "budgets", ID: r.ID, Field: "amount", Err: ErrNegativeBudgetAmount}
	}

	month := NormalizeDate(r.Month)
	if month.IsZero() || month.Day() != 1 {
		return nil, &DecodeError{Table: "budgets", ID: r.ID, Field: "month", Err: ErrInvalidMonth}
	}

	return &Budget{
		ID:        r.ID,
		UserID:    r.UserID,
		Category:  category,
		Amount:    r.Amount,
		Month:     month,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}, nil
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
