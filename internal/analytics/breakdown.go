package analytics

import (
	"slices"

	"household-expenses/internal/models"

	"github.com/shopspring/decimal"
)

// Share is one bucket of a breakdown: the total for one enumeration value and its
// percentage of the breakdown total
type Share[K ~string] struct {
	Name       K               `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage float64         `json:"percentage"`
	Count      int             `json:"count"`
}

type (
	CategoryShare = Share[models.Category]
	MemberShare   = Share[models.FamilyMember]
)

// ByCategory totals expenses per category, largest first
func ByCategory(expenses []models.Expense) []CategoryShare {
	return breakdown(models.AllCategories(), expenses, func(e *models.Expense) models.Category {
		return e.Category
	})
}

// ByMember totals expenses per payer, largest first
func ByMember(expenses []models.Expense) []MemberShare {
	return breakdown(models.AllFamilyMembers(), expenses, func(e *models.Expense) models.FamilyMember {
		return e.PaidBy
	})
}

// breakdown starts every key at zero, drops keys that stay at zero and sorts by amount
// descending. Ties keep the order of keys.
func breakdown[K ~string](keys []K, expenses []models.Expense, keyOf func(*models.Expense) K) []Share[K] {
	buckets := make([]Share[K], len(keys))
	index := make(map[K]int, len(keys))
	for i, k := range keys {
		buckets[i] = Share[K]{Name: k, Amount: decimal.Zero}
		index[k] = i
	}

	for i := range expenses {
		idx, ok := index[keyOf(&expenses[i])]
		if !ok {
			continue
		}
		buckets[idx].Amount = buckets[idx].Amount.Add(expenses[i].Amount)
		buckets[idx].Count++
	}

	out := make([]Share[K], 0, len(buckets))
	total := decimal.Zero
	for _, b := range buckets {
		if b.Amount.IsZero() {
			continue
		}
		out = append(out, b)
		total = total.Add(b.Amount)
	}

	for i := range out {
		out[i].Percentage = percentOf(out[i].Amount, total)
	}

	slices.SortStableFunc(out, func(a, b Share[K]) int {
		return b.Amount.Cmp(a.Amount)
	})

	return out
}
