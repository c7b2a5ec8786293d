package dto

import (
	"household-expenses/internal/analytics"
	"household-expenses/internal/models"
)

// DashboardQuery selects the period and optional member of the dashboard
type DashboardQuery struct {
	Period string `query:"period" validate:"omitempty,oneof=current previous all"`
	Member string `query:"member" validate:"omitempty,family_member"`
}

// DashboardDisplay carries ready-to-render strings for the headline numbers
type DashboardDisplay struct {
	TotalSpend        string `json:"total_spend"`
	PreviousSpend     string `json:"previous_spend"`
	ChangePercent     string `json:"change_percent"`
	SharedTotal       string `json:"shared_total"`
	SharedPercent     string `json:"shared_percent"`
	AveragePerExpense string `json:"average_per_expense"`
	Balance           string `json:"balance"`
}

// DashboardResponse is the engine output with formatted strings alongside
type DashboardResponse struct {
	Period         string                    `json:"period"`
	Member         string                    `json:"member,omitempty"`
	Currency       string                    `json:"currency"`
	Summary        analytics.Summary         `json:"summary"`
	Categories     []analytics.CategoryShare `json:"categories"`
	Members        []analytics.MemberShare   `json:"members"`
	Trend          []analytics.TrendPoint    `json:"trend"`
	Budgets        BudgetOverviewResponse    `json:"budgets"`
	Balance        analytics.BalanceSummary  `json:"balance"`
	RecentExpenses []ExpenseResponse         `json:"recent_expenses"`
	Display        DashboardDisplay          `json:"display"`
}

func NewDashboardResponse(d analytics.Dashboard, month, currency string) DashboardResponse {
	resp := DashboardResponse{
		Period:         string(d.Period),
		Currency:       currency,
		Summary:        d.Summary,
		Categories:     d.Categories,
		Members:        d.Members,
		Trend:          d.Trend,
		Budgets:        NewBudgetOverviewResponse(month, d.Budgets, currency),
		Balance:        d.Balance,
		RecentExpenses: NewExpenseResponses(d.RecentExpenses, currency),
		Display: DashboardDisplay{
			TotalSpend:        models.FormatCurrency(d.Summary.TotalSpend, currency),
			PreviousSpend:     models.FormatCurrency(d.Summary.PreviousSpend, currency),
			ChangePercent:     models.FormatPercent(d.Summary.ChangePercent),
			SharedTotal:       models.FormatCurrency(d.Summary.SharedTotal, currency),
			SharedPercent:     models.FormatPercent(d.Summary.SharedPercent),
			AveragePerExpense: models.FormatCurrency(d.Summary.AveragePerExpense, currency),
			Balance:           models.FormatCurrency(d.Balance.Balance, currency),
		},
	}
	if d.Member != nil {
		resp.Member = string(*d.Member)
	}
	return resp
}
