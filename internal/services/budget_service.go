package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"household-expenses/internal/analytics"
	"household-expenses/internal/dto"
	"household-expenses/internal/models"
	"household-expenses/internal/repositories"

	"github.com/google/uuid"
)

var ErrInvalidMonth = errors.New("invalid month, expected YYYY-MM")

type BudgetService struct {
	budgetRepo   repositories.BudgetRepositoryInterface
	expenseRepo  repositories.ExpenseRepositoryInterface
	auditService AuditServiceInterface
	metrics      MetricsRecorderInterface
	logger       *slog.Logger
}

func NewBudgetService(
	budgetRepo repositories.BudgetRepositoryInterface,
	expenseRepo repositories.ExpenseRepositoryInterface,
	auditService AuditServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) BudgetServiceInterface {
	return &BudgetService{
		budgetRepo:   budgetRepo,
		expenseRepo:  expenseRepo,
		auditService: auditService,
		metrics:      metrics,
		logger:       logger,
	}
}

// ListBudgets returns the budgets of month, overall first
func (s *BudgetService) ListBudgets(userID uuid.UUID, month time.Time) ([]models.Budget, error) {
	budgets, err := s.budgetRepo.ListByMonth(userID, models.MonthStart(month))
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	return budgets, nil
}

// UpsertBudget creates the budget for (category, month) or replaces its amount
func (s *BudgetService) UpsertBudget(userID uuid.UUID, req *dto.UpsertBudgetRequest, ipAddress, userAgent string) (*models.Budget, error) {
	month, err := models.ParseMonth(req.Month)
	if err != nil {
		return nil, ErrInvalidMonth
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	budget := &models.Budget{
		UserID: userID,
		Amount: amount,
		Month:  month,
	}
	if req.Category != "" {
		category, err := models.ParseCategory(req.Category)
		if err != nil {
			return nil, err
		}
		budget.Category = &category
	}

	if err := budget.Validate(); err != nil {
		return nil, err
	}

	if err := s.budgetRepo.Upsert(budget); err != nil {
		s.countOperation("upsert", "failed")
		return nil, err
	}

	s.countOperation("upsert", "success")
	s.auditService.LogMutation(userID, models.AuditActionUpsert, models.AuditResourceBudget, budget.ID.String(), ipAddress, userAgent, map[string]interface{}{
		"category": budget.CategoryLabel(),
		"month":    budget.MonthKey(),
		"amount":   budget.Amount.String(),
	})
	s.logger.Info("Budget saved", "user_id", userID, "budget_id", budget.ID, "category", budget.CategoryLabel(), "month", budget.MonthKey())

	return budget, nil
}

func (s *BudgetService) DeleteBudget(userID, budgetID uuid.UUID, ipAddress, userAgent string) error {
	if err := s.budgetRepo.Delete(userID, budgetID); err != nil {
		if errors.Is(err, repositories.ErrBudgetNotFound) {
			return err
		}
		s.countOperation("delete", "failed")
		return fmt.Errorf("failed to delete budget: %w", err)
	}

	s.countOperation("delete", "success")
	s.auditService.LogMutation(userID, models.AuditActionDelete, models.AuditResourceBudget, budgetID.String(), ipAddress, userAgent, nil)
	return nil
}

// GetOverview measures every budget of month against that month's expenses
func (s *BudgetService) GetOverview(userID uuid.UUID, month time.Time) (*analytics.BudgetOverview, error) {
	month = models.MonthStart(month)

	budgets, err := s.budgetRepo.ListByMonth(userID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	if len(budgets) == 0 {
		return &analytics.BudgetOverview{Categories: []analytics.BudgetProgress{}}, nil
	}

	expenses, err := s.expenseRepo.ListByDateRange(userID, month, month.AddDate(0, 1, -1))
	if err != nil {
		return nil, fmt.Errorf("failed to load month expenses: %w", err)
	}

	overview := analytics.Overview(budgets, expenses)
	return &overview, nil
}

func (s *BudgetService) countOperation(operation, status string) {
	s.metrics.IncrementCounter(MetricBudgetOperation, map[string]string{
		"operation": operation,
		"status":    status,
	})
}
