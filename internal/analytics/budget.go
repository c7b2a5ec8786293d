package analytics

import (
	"math"

	"household-expenses/internal/models"

	"github.com/shopspring/decimal"
)

type BudgetStatus string

const (
	BudgetStatusNormal  BudgetStatus = "normal"
	BudgetStatusWarning BudgetStatus = "warning"
	BudgetStatusOver    BudgetStatus = "over"

	WarningThreshold = 80.0
	OverThreshold    = 100.0
)

// BudgetProgress is spend-to-date against one budget. Progress is capped at 100; Overspend is not.
type BudgetProgress struct {
	Budget    models.Budget   `json:"budget"`
	Spent     decimal.Decimal `json:"spent"`
	Remaining decimal.Decimal `json:"remaining"`
	Overspend decimal.Decimal `json:"overspend"`
	Progress  float64         `json:"progress"`
	Status    BudgetStatus    `json:"status"`
}

// BudgetOverview groups the overall budget with the per-category budgets of a month
type BudgetOverview struct {
	Overall    *BudgetProgress  `json:"overall,omitempty"`
	Categories []BudgetProgress `json:"categories"`
}

// StatusFor maps a progress percentage onto a budget status
func StatusFor(progress float64) BudgetStatus {
	switch {
	case progress >= OverThreshold:
		return BudgetStatusOver
	case progress >= WarningThreshold:
		return BudgetStatusWarning
	default:
		return BudgetStatusNormal
	}
}

// Progress measures expenses against budget. The overall budget counts every expense; a
// category budget counts only expenses in its category.
func Progress(budget models.Budget, expenses []models.Expense) BudgetProgress {
	spent := decimal.Zero
	for i := range expenses {
		if budget.Category != nil && expenses[i].Category != *budget.Category {
			continue
		}
		spent = spent.Add(expenses[i].Amount)
	}
	return progressFor(budget, spent)
}

func progressFor(budget models.Budget, spent decimal.Decimal) BudgetProgress {
	p := BudgetProgress{
		Budget:    budget,
		Spent:     spent,
		Remaining: decimal.Zero,
		Overspend: decimal.Zero,
	}

	if budget.Amount.IsPositive() {
		p.Progress = math.Min(percentOf(spent, budget.Amount), OverThreshold)
	}

	if spent.GreaterThan(budget.Amount) {
		p.Overspend = spent.Sub(budget.Amount)
	} else {
		p.Remaining = budget.Amount.Sub(spent)
	}

	p.Status = StatusFor(p.Progress)
	return p
}

// Overview computes progress for every budget. Category budgets follow category display order.
func Overview(budgets []models.Budget, expenses []models.Expense) BudgetOverview {
	spentByCategory := make(map[models.Category]decimal.Decimal)
	total := decimal.Zero
	for i := range expenses {
		total = total.Add(expenses[i].Amount)
		spentByCategory[expenses[i].Category] = spentByCategory[expenses[i].Category].Add(expenses[i].Amount)
	}

	byCategory := make(map[models.Category]models.Budget)
	overview := BudgetOverview{Categories: []BudgetProgress{}}
	for _, b := range budgets {
		if b.Category == nil {
			if overview.Overall == nil {
				p := progressFor(b, total)
				overview.Overall = &p
			}
			continue
		}
		if _, seen := byCategory[*b.Category]; !seen {
			byCategory[*b.Category] = b
		}
	}

	for _, c := range models.AllCategories() {
		b, ok := byCategory[c]
		if !ok {
			continue
		}
		spent, ok := spentByCategory[c]
		if !ok {
			spent = decimal.Zero
		}
		overview.Categories = append(overview.Categories, progressFor(b, spent))
	}

	return overview
}

// Alerts returns the budgets that reached warning or over status
func (o BudgetOverview) Alerts() []BudgetProgress {
	var alerts []BudgetProgress
	if o.Overall != nil && o.Overall.Status != BudgetStatusNormal {
		alerts = append(alerts, *o.Overall)
	}
	for _, p := range o.Categories {
		if p.Status != BudgetStatusNormal {
			alerts = append(alerts, p)
		}
	}
	return alerts
}
