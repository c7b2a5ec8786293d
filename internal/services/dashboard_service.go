package services

import (
	"fmt"
	"log/slog"
	"time"

	"household-expenses/internal/analytics"
	"household-expenses/internal/config"
	"household-expenses/internal/models"
	"household-expenses/internal/repositories"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// DashboardService loads a user's expenses, budgets and bank transactions and derives the dashboard
type DashboardService struct {
	expenseRepo repositories.ExpenseRepositoryInterface
	budgetRepo  repositories.BudgetRepositoryInterface
	bankRepo    repositories.BankTransactionRepositoryInterface
	metrics     MetricsRecorderInterface
	settings    config.DashboardConfig
	logger      *slog.Logger
	now         func() time.Time
}

func NewDashboardService(
	expenseRepo repositories.ExpenseRepositoryInterface,
	budgetRepo repositories.BudgetRepositoryInterface,
	bankRepo repositories.BankTransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
	settings config.DashboardConfig,
	logger *slog.Logger,
) DashboardServiceInterface {
	return &DashboardService{
		expenseRepo: expenseRepo,
		budgetRepo:  budgetRepo,
		bankRepo:    bankRepo,
		metrics:     metrics,
		settings:    settings,
		logger:      logger,
		now:         time.Now,
	}
}

// GetDashboard loads the three collections concurrently. Any load failure fails the whole dashboard.
func (s *DashboardService) GetDashboard(userID uuid.UUID, period analytics.Period, member *models.FamilyMember) (*analytics.Dashboard, error) {
	start := time.Now()
	now := s.now()

	var (
		expenses     []models.Expense
		budgets      []models.Budget
		transactions []models.BankTransaction
		g            errgroup.Group
	)

	g.Go(func() error {
		var err error
		expenses, err = s.expenseRepo.List(userID)
		if err != nil {
			return fmt.Errorf("failed to load expenses: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		budgets, err = s.budgetRepo.ListByMonth(userID, period.BudgetMonth(now))
		if err != nil {
			return fmt.Errorf("failed to load budgets: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		transactions, err = s.bankRepo.List(userID)
		if err != nil {
			return fmt.Errorf("failed to load bank transactions: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("Dashboard load failed", "error", err, "user_id", userID)
		return nil, err
	}

	dashboard := analytics.BuildDashboard(analytics.DashboardInput{
		Expenses:       expenses,
		Budgets:        budgets,
		Transactions:   transactions,
		Period:         period,
		Member:         member,
		Now:            now,
		TrendDays:      s.settings.TrendDays,
		RecentExpenses: s.settings.RecentExpenses,
	})

	s.metrics.RecordProcessingTime(MetricDashboardBuild, time.Since(start))
	return &dashboard, nil
}
