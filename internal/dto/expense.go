package dto

import (
	"time"

	"household-expenses/internal/models"
)

// ExpenseRequest is the body of create and full-overwrite update
type ExpenseRequest struct {
	Date        string `json:"date" validate:"required,date"`
	Category    string `json:"category" validate:"required,category"`
	SubCategory string `json:"sub_category" validate:"max=50"`
	Amount      string `json:"amount" validate:"required,amount"`
	PaidBy      string `json:"paid_by" validate:"required,family_member"`
	ForWhom     string `json:"for_whom" validate:"required,beneficiary"`
	Notes       string `json:"notes" validate:"max=500"`
}

// ExpenseFilters are the optional query parameters of the expense list
type ExpenseFilters struct {
	From     string `query:"from" validate:"omitempty,date"`
	To       string `query:"to" validate:"omitempty,date"`
	Member   string `query:"member" validate:"omitempty,family_member"`
	Category string `query:"category" validate:"omitempty,category"`
}

// ExpenseResponse is an expense with its amount as a decimal string and its date as YYYY-MM-DD
type ExpenseResponse struct {
	ID              string    `json:"id"`
	Date            string    `json:"date"`
	DisplayDate     string    `json:"display_date"`
	Category        string    `json:"category"`
	SubCategory     string    `json:"sub_category,omitempty"`
	Amount          string    `json:"amount"`
	FormattedAmount string    `json:"formatted_amount"`
	PaidBy          string    `json:"paid_by"`
	ForWhom         string    `json:"for_whom"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ListExpensesResponse wraps the filtered expense list with its total
type ListExpensesResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Count    int               `json:"count"`
	Total    string            `json:"total"`
}

// NewExpenseResponse renders e, formatting money in currency
func NewExpenseResponse(e models.Expense, currency string) ExpenseResponse {
	return ExpenseResponse{
		ID:              e.ID.String(),
		Date:            e.DateKey(),
		DisplayDate:     models.FormatDisplayDate(e.Date),
		Category:        string(e.Category),
		SubCategory:     e.SubCategory,
		Amount:          e.Amount.StringFixed(2),
		FormattedAmount: models.FormatCurrency(e.Amount, currency),
		PaidBy:          string(e.PaidBy),
		ForWhom:         string(e.ForWhom),
		Notes:           e.Notes,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

// NewExpenseResponses renders a list of expenses
func NewExpenseResponses(expenses []models.Expense, currency string) []ExpenseResponse {
	out := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		out[i] = NewExpenseResponse(expenses[i], currency)
	}
	return out
}
