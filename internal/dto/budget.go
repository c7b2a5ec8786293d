package dto

import (
	"household-expenses/internal/analytics"
	"household-expenses/internal/models"
)

// UpsertBudgetRequest sets the budget of a category, or the overall budget when Category is empty
type UpsertBudgetRequest struct {
	Category string `json:"category" validate:"omitempty,category"`
	Amount   string `json:"amount" validate:"required,amount"`
	Month    string `json:"month" validate:"required,month"`
}

// BudgetResponse is a stored budget
type BudgetResponse struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Overall  bool   `json:"overall"`
	Amount   string `json:"amount"`
	Month    string `json:"month"`
}

// BudgetProgressResponse is one budget measured against the month's expenses
type BudgetProgressResponse struct {
	BudgetResponse
	Spent             string  `json:"spent"`
	Remaining         string  `json:"remaining"`
	Overspend         string  `json:"overspend"`
	Progress          float64 `json:"progress"`
	Status            string  `json:"status"`
	FormattedSpent    string  `json:"formatted_spent"`
	FormattedAmount   string  `json:"formatted_amount"`
	FormattedProgress string  `json:"formatted_progress"`
}

// BudgetOverviewResponse is the progress of every budget in a month
type BudgetOverviewResponse struct {
	Month      string                   `json:"month"`
	Overall    *BudgetProgressResponse  `json:"overall,omitempty"`
	Categories []BudgetProgressResponse `json:"categories"`
}

func NewBudgetResponse(b models.Budget) BudgetResponse {
	return BudgetResponse{
		ID:       b.ID.String(),
		Category: b.CategoryLabel(),
		Overall:  b.IsOverall(),
		Amount:   b.Amount.StringFixed(2),
		Month:    b.MonthKey(),
	}
}

func NewBudgetResponses(budgets []models.Budget) []BudgetResponse {
	out := make([]BudgetResponse, len(budgets))
	for i := range budgets {
		out[i] = NewBudgetResponse(budgets[i])
	}
	return out
}

func NewBudgetProgressResponse(p analytics.BudgetProgress, currency string) BudgetProgressResponse {
	return BudgetProgressResponse{
		BudgetResponse:    NewBudgetResponse(p.Budget),
		Spent:             p.Spent.StringFixed(2),
		Remaining:         p.Remaining.StringFixed(2),
		Overspend:         p.Overspend.StringFixed(2),
		Progress:          p.Progress,
		Status:            string(p.Status),
		FormattedSpent:    models.FormatCurrency(p.Spent, currency),
		FormattedAmount:   models.FormatCurrency(p.Budget.Amount, currency),
		FormattedProgress: models.FormatPercent(p.Progress),
	}
}

// NewBudgetOverviewResponse renders an overview for month (YYYY-MM)
func NewBudgetOverviewResponse(month string, o analytics.BudgetOverview, currency string) BudgetOverviewResponse {
	resp := BudgetOverviewResponse{
		Month:      month,
		Categories: make([]BudgetProgressResponse, len(o.Categories)),
	}
	if o.Overall != nil {
		overall := NewBudgetProgressResponse(*o.Overall, currency)
		resp.Overall = &overall
	}
	for i := range o.Categories {
		resp.Categories[i] = NewBudgetProgressResponse(o.Categories[i], currency)
	}
	return resp
}
