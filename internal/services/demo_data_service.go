package services

import (
	"fmt"
	"log/slog"
	"time"

	"household-expenses/internal/dto"
	"household-expenses/internal/models"
	"household-expenses/internal/repositories"

	"github.com/google/uuid"
)

const (
	DefaultSeedDays  = 90
	DefaultSeedCount = 150
)

// DemoDataService fills a user's ledger with generated expenses, bank transactions and budgets
type DemoDataService struct {
	generator    DemoDataGeneratorInterface
	expenseRepo  repositories.ExpenseRepositoryInterface
	bankRepo     repositories.BankTransactionRepositoryInterface
	budgetRepo   repositories.BudgetRepositoryInterface
	auditService AuditServiceInterface
	metrics      MetricsRecorderInterface
	logger       *slog.Logger
	now          func() time.Time
}

func NewDemoDataService(
	generator DemoDataGeneratorInterface,
	expenseRepo repositories.ExpenseRepositoryInterface,
	bankRepo repositories.BankTransactionRepositoryInterface,
	budgetRepo repositories.BudgetRepositoryInterface,
	auditService AuditServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) DemoDataServiceInterface {
	return &DemoDataService{
		generator:    generator,
		expenseRepo:  expenseRepo,
		bankRepo:     bankRepo,
		budgetRepo:   budgetRepo,
		auditService: auditService,
		metrics:      metrics,
		logger:       logger,
		now:          time.Now,
	}
}

// Seed generates count expenses and the bank activity of the last days days, plus budgets for the current month
func (s *DemoDataService) Seed(userID uuid.UUID, days, count int, ipAddress, userAgent string) (*dto.SeedResponse, error) {
	if days <= 0 {
		days = DefaultSeedDays
	}
	if count <= 0 {
		count = DefaultSeedCount
	}

	end := models.NormalizeDate(s.now())
	start := end.AddDate(0, 0, -(days - 1))

	expenses := s.generator.GenerateExpenses(userID, start, end, count)
	if err := s.expenseRepo.CreateBatch(expenses); err != nil {
		return nil, fmt.Errorf("failed to seed expenses: %w", err)
	}

	transactions := s.generator.GenerateDeposits(userID, start, end)
	if err := s.bankRepo.CreateBatch(transactions); err != nil {
		return nil, fmt.Errorf("failed to seed bank transactions: %w", err)
	}

	budgets := s.generator.GenerateBudgets(userID, end)
	for i := range budgets {
		if err := s.budgetRepo.Upsert(&budgets[i]); err != nil {
			return nil, fmt.Errorf("failed to seed budgets: %w", err)
		}
	}

	resp := &dto.SeedResponse{
		Expenses:         len(expenses),
		BankTransactions: len(transactions),
		Budgets:          len(budgets),
	}

	s.metrics.IncrementCounter(MetricDemoSeed, nil)
	s.auditService.LogMutation(userID, models.AuditActionSeed, models.AuditResourceExpense, "", ipAddress, userAgent, map[string]interface{}{
		"days":              days,
		"expenses":          resp.Expenses,
		"bank_transactions": resp.BankTransactions,
		"budgets":           resp.Budgets,
	})
	s.logger.Info("Demo data seeded",
		"user_id", userID,
		"expenses", resp.Expenses,
		"bank_transactions", resp.BankTransactions,
		"budgets", resp.Budgets)

	return resp, nil
}
