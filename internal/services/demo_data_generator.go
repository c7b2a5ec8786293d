package services

import (
	"sort"
	"time"

	"household-expenses/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type demoDataGenerator struct {
	faker *gofakeit.Faker
}

const (
	salaryDay          = 1
	withdrawalDay      = 15
	sharedExpenseRatio = 55
	notesRatio         = 30
	subCategoryRatio   = 80
)

// amount ranges in whole currency units
var categoryAmountRanges = map[models.Category][2]int{
	models.CategoryFood:             {300, 4000},
	models.CategoryUtilities:        {1500, 18000},
	models.CategoryGroceries:        {500, 9000},
	models.CategoryKids:             {400, 15000},
	models.CategoryMedical:          {800, 20000},
	models.CategoryHouseMaintenance: {1000, 25000},
	models.CategoryFuel:             {1000, 8000},
	models.CategoryMisc:             {200, 6000},
}

var monthlyBudgetAmounts = map[models.Category]int64{
	models.CategoryFood:             20000,
	models.CategoryUtilities:        35000,
	models.CategoryGroceries:        45000,
	models.CategoryKids:             30000,
	models.CategoryMedical:          15000,
	models.CategoryHouseMaintenance: 20000,
	models.CategoryFuel:             25000,
	models.CategoryMisc:             10000,
}

var (
	earningMembers = []string{string(models.MemberFather), string(models.MemberSaif), string(models.MemberBrother)}
	adultPayers    = []models.FamilyMember{
		models.MemberFather,
		models.MemberMother,
		models.MemberSaif,
		models.MemberSaifWife,
		models.MemberBrother,
		models.MemberBrotherWife,
	}
)

// NewDemoDataGenerator creates a generator seeded from seed. A zero seed picks a random one.
func NewDemoDataGenerator(seed uint64) DemoDataGeneratorInterface {
	return &demoDataGenerator{faker: gofakeit.New(seed)}
}

// GenerateExpenses returns count expenses dated within [start, end], newest first
func (g *demoDataGenerator) GenerateExpenses(userID uuid.UUID, start, end time.Time, count int) []models.Expense {
	start, end = models.NormalizeDate(start), models.NormalizeDate(end)
	expenses := make([]models.Expense, 0, count)

	for i := 0; i < count; i++ {
		category := g.randomCategory()
		expenses = append(expenses, models.Expense{
			ID:          uuid.New(),
			UserID:      userID,
			Date:        g.randomDate(start, end),
			Category:    category,
			SubCategory: g.randomSubCategory(category),
			Amount:      g.amountFor(category),
			PaidBy:      adultPayers[g.faker.IntRange(0, len(adultPayers)-1)],
			ForWhom:     g.randomBeneficiary(),
			Notes:       g.randomNotes(),
		})
	}

	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].Date.After(expenses[j].Date)
	})
	return expenses
}

// GenerateDeposits returns a salary deposit at the start of every month in [start, end] and a
// cash withdrawal in the middle of it, newest first
func (g *demoDataGenerator) GenerateDeposits(userID uuid.UUID, start, end time.Time) []models.BankTransaction {
	start, end = models.NormalizeDate(start), models.NormalizeDate(end)
	var transactions []models.BankTransaction

	for month := models.MonthStart(start); !month.After(end); month = month.AddDate(0, 1, 0) {
		salaryDate := time.Date(month.Year(), month.Month(), salaryDay, 0, 0, 0, 0, time.UTC)
		if !salaryDate.Before(start) && !salaryDate.After(end) {
			for _, member := range earningMembers {
				transactions = append(transactions, models.BankTransaction{
					ID:          uuid.New(),
					UserID:      userID,
					Amount:      decimal.NewFromInt(int64(g.faker.IntRange(60, 180)) * 1000),
					Type:        models.BankTransactionDeposit,
					Description: "Salary",
					FromMember:  member,
					Date:        salaryDate,
				})
			}
		}

		withdrawalDate := time.Date(month.Year(), month.Month(), withdrawalDay, 0, 0, 0, 0, time.UTC)
		if !withdrawalDate.Before(start) && !withdrawalDate.After(end) {
			transactions = append(transactions, models.BankTransaction{
				ID:          uuid.New(),
				UserID:      userID,
				Amount:      decimal.NewFromInt(int64(g.faker.IntRange(5, 30)) * 1000),
				Type:        models.BankTransactionWithdrawal,
				Description: "Cash withdrawal",
				Date:        withdrawalDate,
			})
		}
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date.After(transactions[j].Date)
	})
	return transactions
}

// GenerateBudgets returns the overall budget and one budget per category for month
func (g *demoDataGenerator) GenerateBudgets(userID uuid.UUID, month time.Time) []models.Budget {
	month = models.MonthStart(month)
	budgets := make([]models.Budget, 0, len(monthlyBudgetAmounts)+1)

	overall := int64(0)
	for _, c := range models.AllCategories() {
		amount := monthlyBudgetAmounts[c]
		overall += amount
		budgets = append(budgets, models.Budget{
			UserID:   userID,
			Category: models.CategoryPtr(c),
			Amount:   decimal.NewFromInt(amount),
			Month:    month,
		})
	}

	return append([]models.Budget{{
		UserID: userID,
		Amount: decimal.NewFromInt(overall),
		Month:  month,
	}}, budgets...)
}

func (g *demoDataGenerator) randomCategory() models.Category {
	categories := models.AllCategories()
	return categories[g.faker.IntRange(0, len(categories)-1)]
}

func (g *demoDataGenerator) randomSubCategory(category models.Category) string {
	subs := models.SubCategoriesFor(category)
	if len(subs) == 0 || g.faker.IntRange(1, 100) > subCategoryRatio {
		return ""
	}
	return subs[g.faker.IntRange(0, len(subs)-1)]
}

func (g *demoDataGenerator) randomBeneficiary() models.Beneficiary {
	if g.faker.IntRange(1, 100) <= sharedExpenseRatio {
		return models.BeneficiaryShared
	}
	members := models.AllFamilyMembers()
	return models.Beneficiary(members[g.faker.IntRange(0, len(members)-1)])
}

func (g *demoDataGenerator) randomNotes() string {
	if g.faker.IntRange(1, 100) > notesRatio {
		return ""
	}
	return g.faker.Sentence(g.faker.IntRange(3, 8))
}

func (g *demoDataGenerator) randomDate(start, end time.Time) time.Time {
	days := int(end.Sub(start).Hours() / 24)
	if days <= 0 {
		return start
	}
	return start.AddDate(0, 0, g.faker.IntRange(0, days))
}

func (g *demoDataGenerator) amountFor(category models.Category) decimal.Decimal {
	r, ok := categoryAmountRanges[category]
	if !ok {
		r = [2]int{100, 1000}
	}
	return decimal.NewFromInt(int64(g.faker.IntRange(r[0], r[1])))
}
