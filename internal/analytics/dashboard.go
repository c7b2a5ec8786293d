package analytics

import (
	"time"

	"household-expenses/internal/models"
)

// DefaultRecentExpenses is how many filtered expenses a dashboard lists when the input does not say
const DefaultRecentExpenses = 10

// DashboardInput is everything the dashboard is derived from. Expenses and Transactions are the
// user's complete history, newest first; Budgets are those of Period.BudgetMonth.
type DashboardInput struct {
	Expenses       []models.Expense
	Budgets        []models.Budget
	Transactions   []models.BankTransaction
	Period         Period
	Member         *models.FamilyMember
	Now            time.Time
	TrendDays      int
	RecentExpenses int
}

// Dashboard is the complete derived view for one period and optional member
type Dashboard struct {
	Period         Period               `json:"period"`
	Member         *models.FamilyMember `json:"member,omitempty"`
	Summary        Summary              `json:"summary"`
	Categories     []CategoryShare      `json:"categories"`
	Members        []MemberShare        `json:"members"`
	Trend          []TrendPoint         `json:"trend"`
	Budgets        BudgetOverview       `json:"budgets"`
	Balance        BalanceSummary       `json:"balance"`
	RecentExpenses []models.Expense     `json:"recent_expenses"`
}

// BuildDashboard derives every dashboard figure. The period and member filters apply to the
// summary, the breakdowns, the recent list and the budget spend. Budgets are measured against the
// member's spend in the budget month. The trend always covers every expense and the balance is lifetime.
func BuildDashboard(in DashboardInput) Dashboard {
	filtered := ExpensesForMember(ExpensesForPeriod(in.Expenses, in.Period, in.Now), in.Member)

	budgetMonth := in.Period.BudgetMonth(in.Now)
	budgetSpend := ExpensesForMember(
		ExpensesInRange(in.Expenses, budgetMonth, budgetMonth.AddDate(0, 1, -1)), in.Member)

	prevFrom, prevTo := in.Period.ComparisonBounds(in.Now)
	previous := ExpensesForMember(ExpensesInRange(in.Expenses, prevFrom, prevTo), in.Member)

	recentCount := in.RecentExpenses
	if recentCount <= 0 {
		recentCount = DefaultRecentExpenses
	}
	recent := filtered
	if len(recent) > recentCount {
		recent = recent[:recentCount]
	}

	return Dashboard{
		Period:         in.Period,
		Member:         in.Member,
		Summary:        Summarize(filtered, previous),
		Categories:     ByCategory(filtered),
		Members:        ByMember(filtered),
		Trend:          DailyTrendWindow(in.Expenses, in.Now, in.TrendDays),
		Budgets:        Overview(in.Budgets, budgetSpend),
		Balance:        Reconcile(in.Transactions, in.Expenses),
		RecentExpenses: recent,
	}
}
