package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"household-expenses/internal/analytics"
	"household-expenses/internal/dto"
	"household-expenses/internal/models"
	"household-expenses/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidDateRange = errors.New("from date must not be after to date")
	ErrInvalidAmount    = errors.New("invalid amount")
)

var (
	earliestDate = time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC)
	latestDate   = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)
)

// ExpenseService handles expense business logic
type ExpenseService struct {
	expenseRepo  repositories.ExpenseRepositoryInterface
	auditService AuditServiceInterface
	alertService BudgetAlertServiceInterface
	metrics      MetricsRecorderInterface
	logger       *slog.Logger
}

func NewExpenseService(
	expenseRepo repositories.ExpenseRepositoryInterface,
	auditService AuditServiceInterface,
	alertService BudgetAlertServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) ExpenseServiceInterface {
	return &ExpenseService{
		expenseRepo:  expenseRepo,
		auditService: auditService,
		alertService: alertService,
		metrics:      metrics,
		logger:       logger,
	}
}

// CreateExpense stores a new expense and re-checks the budgets of its month
func (s *ExpenseService) CreateExpense(userID uuid.UUID, req *dto.ExpenseRequest, ipAddress, userAgent string) (*models.Expense, error) {
	expense, err := expenseFromRequest(req)
	if err != nil {
		return nil, err
	}
	expense.UserID = userID

	if err := expense.Validate(); err != nil {
		return nil, err
	}

	if err := s.expenseRepo.Create(expense); err != nil {
		s.countOperation("create", "failed")
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	s.countOperation("create", "success")
	s.metrics.RecordGauge(MetricExpenseAmount, expense.Amount.InexactFloat64(), map[string]string{"category": string(expense.Category)})
	s.auditService.LogMutation(userID, models.AuditActionCreate, models.AuditResourceExpense, expense.ID.String(), ipAddress, userAgent, expenseMetadata(expense))
	s.logger.Info("Expense created", "user_id", userID, "expense_id", expense.ID, "category", expense.Category)

	s.checkBudgets(userID, expense.Date)
	return expense, nil
}

func (s *ExpenseService) GetExpense(userID, expenseID uuid.UUID) (*models.Expense, error) {
	expense, err := s.expenseRepo.GetByID(userID, expenseID)
	if err != nil {
		return nil, err
	}
	return expense, nil
}

// ListExpenses returns the user's expenses newest first, narrowed by the optional filters.
// The member filter matches the payer or the beneficiary.
func (s *ExpenseService) ListExpenses(userID uuid.UUID, filters *dto.ExpenseFilters) ([]models.Expense, error) {
	if filters == nil {
		filters = &dto.ExpenseFilters{}
	}

	var (
		expenses []models.Expense
		err      error
	)
	if filters.From != "" || filters.To != "" {
		from, to, rangeErr := parseDateRange(filters.From, filters.To)
		if rangeErr != nil {
			return nil, rangeErr
		}
		expenses, err = s.expenseRepo.ListByDateRange(userID, from, to)
	} else {
		expenses, err = s.expenseRepo.List(userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	if filters.Member != "" {
		member, err := models.ParseFamilyMember(filters.Member)
		if err != nil {
			return nil, err
		}
		expenses = analytics.ExpensesForMember(expenses, &member)
	}

	if filters.Category != "" {
		category, err := models.ParseCategory(filters.Category)
		if err != nil {
			return nil, err
		}
		expenses = filterByCategory(expenses, category)
	}

	return expenses, nil
}

// UpdateExpense overwrites every editable field of an existing expense
func (s *ExpenseService) UpdateExpense(userID, expenseID uuid.UUID, req *dto.ExpenseRequest, ipAddress, userAgent string) (*models.Expense, error) {
	existing, err := s.expenseRepo.GetByID(userID, expenseID)
	if err != nil {
		return nil, err
	}

	updated, err := expenseFromRequest(req)
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID
	updated.UserID = existing.UserID
	updated.CreatedAt = existing.CreatedAt

	if err := updated.Validate(); err != nil {
		return nil, err
	}

	if err := s.expenseRepo.Update(updated); err != nil {
		s.countOperation("update", "failed")
		if errors.Is(err, repositories.ErrExpenseNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	s.countOperation("update", "success")
	metadata := expenseMetadata(updated)
	metadata["previous_amount"] = existing.Amount.String()
	s.auditService.LogMutation(userID, models.AuditActionUpdate, models.AuditResourceExpense, updated.ID.String(), ipAddress, userAgent, metadata)

	s.checkBudgets(userID, updated.Date)
	return updated, nil
}

func (s *ExpenseService) DeleteExpense(userID, expenseID uuid.UUID, ipAddress, userAgent string) error {
	if err := s.expenseRepo.Delete(userID, expenseID); err != nil {
		if errors.Is(err, repositories.ErrExpenseNotFound) {
			return err
		}
		s.countOperation("delete", "failed")
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	s.countOperation("delete", "success")
	s.auditService.LogMutation(userID, models.AuditActionDelete, models.AuditResourceExpense, expenseID.String(), ipAddress, userAgent, nil)
	return nil
}

// checkBudgets runs on the request path once the expense is stored. Failures are only logged.
func (s *ExpenseService) checkBudgets(userID uuid.UUID, date time.Time) {
	if _, err := s.alertService.CheckMonth(context.Background(), userID, date); err != nil {
		s.logger.Warn("budget alert check failed",
			"error", err,
			"user_id", userID,
			"month", models.MonthStart(date).Format(models.MonthLayout))
	}
}

func (s *ExpenseService) countOperation(operation, status string) {
	s.metrics.IncrementCounter(MetricExpenseOperation, map[string]string{
		"operation": operation,
		"status":    status,
	})
}

func expenseFromRequest(req *dto.ExpenseRequest) (*models.Expense, error) {
	date, err := models.ParseDate(req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	category, err := models.ParseCategory(req.Category)
	if err != nil {
		return nil, err
	}

	paidBy, err := models.ParseFamilyMember(req.PaidBy)
	if err != nil {
		return nil, err
	}

	forWhom, err := models.ParseBeneficiary(req.ForWhom)
	if err != nil {
		return nil, err
	}

	return &models.Expense{
		Date:        date,
		Category:    category,
		SubCategory: strings.TrimSpace(req.SubCategory),
		Amount:      amount,
		PaidBy:      paidBy,
		ForWhom:     forWhom,
		Notes:       strings.TrimSpace(req.Notes),
	}, nil
}

// parseAmount accepts a non-negative decimal string with at most two decimal places
func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: must not be negative", ErrInvalidAmount)
	}
	if amount.Exponent() < -2 && !amount.Equal(amount.Round(2)) {
		return decimal.Zero, fmt.Errorf("%w: at most two decimal places", ErrInvalidAmount)
	}
	return amount, nil
}

func parseDateRange(rawFrom, rawTo string) (time.Time, time.Time, error) {
	from, to := earliestDate, latestDate

	if rawFrom != "" {
		d, err := models.ParseDate(rawFrom)
		if err != nil {
			return time.Time{}, time.Time{}, ErrInvalidDate
		}
		from = d
	}

	if rawTo != "" {
		d, err := models.ParseDate(rawTo)
		if err != nil {
			return time.Time{}, time.Time{}, ErrInvalidDate
		}
		to = d
	}

	if from.After(to) {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	return from, to, nil
}

func filterByCategory(expenses []models.Expense, category models.Category) []models.Expense {
	out := make([]models.Expense, 0, len(expenses))
	for i := range expenses {
		if expenses[i].Category == category {
			out = append(out, expenses[i])
		}
	}
	return out
}

func expenseMetadata(e *models.Expense) map[string]interface{} {
	return map[string]interface{}{
		"date":     e.DateKey(),
		"category": string(e.Category),
		"amount":   e.Amount.String(),
		"paid_by":  string(e.PaidBy),
		"for_whom": string(e.ForWhom),
	}
}
