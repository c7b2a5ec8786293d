package analytics

import (
	"time"

	"household-expenses/internal/models"

	"github.com/shopspring/decimal"
)

// TrendDays is the default length of the daily trend window, today included
const TrendDays = 30

type TrendPoint struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// DailyTrend returns one point per day from today-29 through today, oldest first
func DailyTrend(expenses []models.Expense, today time.Time) []TrendPoint {
	return DailyTrendWindow(expenses, today, TrendDays)
}

// DailyTrendWindow is DailyTrend with a configurable window length. Expenses are matched to a
// day by date key; anything outside the window is ignored.
func DailyTrendWindow(expenses []models.Expense, today time.Time, days int) []TrendPoint {
	if days <= 0 {
		days = TrendDays
	}

	start := models.NormalizeDate(today).AddDate(0, 0, -(days - 1))
	points := make([]TrendPoint, days)
	index := make(map[string]int, days)
	for i := 0; i < days; i++ {
		key := models.DateKey(start.AddDate(0, 0, i))
		points[i] = TrendPoint{Date: key, Amount: decimal.Zero}
		index[key] = i
	}

	for i := range expenses {
		if idx, ok := index[expenses[i].DateKey()]; ok {
			points[idx].Amount = points[idx].Amount.Add(expenses[i].Amount)
		}
	}

	return points
}
