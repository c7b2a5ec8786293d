package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"household-expenses/internal/analytics"
	"household-expenses/internal/models"
	"household-expenses/internal/repositories"

	"github.com/google/uuid"
)

// BudgetAlertService measures a month's budgets and publishes an alert for each one at warning or over
type BudgetAlertService struct {
	budgetRepo  repositories.BudgetRepositoryInterface
	expenseRepo repositories.ExpenseRepositoryInterface
	publisher   BudgetAlertPublisherInterface
	events      NotificationLoggerInterface
	logger      *slog.Logger
	now         func() time.Time
}

func NewBudgetAlertService(
	budgetRepo repositories.BudgetRepositoryInterface,
	expenseRepo repositories.ExpenseRepositoryInterface,
	publisher BudgetAlertPublisherInterface,
	events NotificationLoggerInterface,
	logger *slog.Logger,
) BudgetAlertServiceInterface {
	return &BudgetAlertService{
		budgetRepo:  budgetRepo,
		expenseRepo: expenseRepo,
		publisher:   publisher,
		events:      events,
		logger:      logger,
		now:         time.Now,
	}
}

// CheckMonth returns the alerts raised for month. Publish failures are logged, not returned.
func (s *BudgetAlertService) CheckMonth(ctx context.Context, userID uuid.UUID, month time.Time) ([]models.BudgetAlert, error) {
	month = models.MonthStart(month)

	budgets, err := s.budgetRepo.ListByMonth(userID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets: %w", err)
	}
	if len(budgets) == 0 {
		return nil, nil
	}

	expenses, err := s.expenseRepo.ListByDateRange(userID, month, month.AddDate(0, 1, -1))
	if err != nil {
		return nil, fmt.Errorf("failed to load month expenses: %w", err)
	}

	var alerts []models.BudgetAlert
	for _, p := range analytics.Overview(budgets, expenses).Alerts() {
		alert := s.newAlert(userID, p)
		s.events.LogBudgetAlertRaised(ctx, &alert)

		if err := s.publisher.Publish(ctx, &alert); err != nil {
			s.logger.WarnContext(ctx, "failed to publish budget alert",
				"error", err,
				"budget_id", alert.BudgetID,
				"status", alert.Status)
		}
		alerts = append(alerts, alert)
	}

	return alerts, nil
}

func (s *BudgetAlertService) newAlert(userID uuid.UUID, p analytics.BudgetProgress) models.BudgetAlert {
	return models.BudgetAlert{
		EventType: models.BudgetAlertEventType,
		AlertID:   uuid.New(),
		UserID:    userID,
		BudgetID:  p.Budget.ID,
		Category:  p.Budget.CategoryLabel(),
		Month:     p.Budget.MonthKey(),
		Amount:    p.Budget.Amount,
		Spent:     p.Spent,
		Overspend: p.Overspend,
		Progress:  p.Progress,
		Status:    string(p.Status),
		RaisedAt:  s.now().UTC(),
	}
}
