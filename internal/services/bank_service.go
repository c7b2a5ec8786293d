package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"household-expenses/internal/analytics"
	"household-expenses/internal/config"
	"household-expenses/internal/dto"
	"household-expenses/internal/models"
	"household-expenses/internal/repositories"

	"github.com/google/uuid"
)

const defaultRecentDeposits = 3

// BankService records deposits and withdrawals and reconciles them against expenses
type BankService struct {
	bankRepo     repositories.BankTransactionRepositoryInterface
	expenseRepo  repositories.ExpenseRepositoryInterface
	auditService AuditServiceInterface
	metrics      MetricsRecorderInterface
	settings     config.DashboardConfig
	logger       *slog.Logger
	now          func() time.Time
}

func NewBankService(
	bankRepo repositories.BankTransactionRepositoryInterface,
	expenseRepo repositories.ExpenseRepositoryInterface,
	auditService AuditServiceInterface,
	metrics MetricsRecorderInterface,
	settings config.DashboardConfig,
	logger *slog.Logger,
) BankServiceInterface {
	return &BankService{
		bankRepo:     bankRepo,
		expenseRepo:  expenseRepo,
		auditService: auditService,
		metrics:      metrics,
		settings:     settings,
		logger:       logger,
		now:          time.Now,
	}
}

// CreateTransaction records a deposit or withdrawal. A missing date means today.
func (s *BankService) CreateTransaction(userID uuid.UUID, req *dto.CreateBankTransactionRequest, ipAddress, userAgent string) (*models.BankTransaction, error) {
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	date := models.NormalizeDate(s.now())
	if req.Date != "" {
		date, err = models.ParseDate(req.Date)
		if err != nil {
			return nil, ErrInvalidDate
		}
	}

	tx := &models.BankTransaction{
		UserID:      userID,
		Amount:      amount,
		Type:        models.BankTransactionType(strings.ToLower(strings.TrimSpace(req.Type))),
		Description: strings.TrimSpace(req.Description),
		FromMember:  strings.TrimSpace(req.FromMember),
		Date:        date,
	}

	if err := tx.Validate(); err != nil {
		return nil, err
	}

	if err := s.bankRepo.Create(tx); err != nil {
		return nil, fmt.Errorf("failed to create bank transaction: %w", err)
	}

	s.metrics.IncrementCounter(MetricBankTransaction, map[string]string{"operation": "create", "type": string(tx.Type)})
	s.auditService.LogMutation(userID, models.AuditActionCreate, models.AuditResourceBankTransaction, tx.ID.String(), ipAddress, userAgent, map[string]interface{}{
		"type":   tx.Type,
		"amount": tx.Amount.String(),
		"date":   models.DateKey(tx.Date),
	})
	s.logger.Info("Bank transaction recorded", "user_id", userID, "transaction_id", tx.ID, "type", tx.Type)

	return tx, nil
}

// ListTransactions returns the period's transactions newest first
func (s *BankService) ListTransactions(userID uuid.UUID, period analytics.Period) ([]models.BankTransaction, error) {
	transactions, err := s.bankRepo.List(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bank transactions: %w", err)
	}
	return analytics.TransactionsForPeriod(transactions, period, s.now()), nil
}

func (s *BankService) DeleteTransaction(userID, transactionID uuid.UUID, ipAddress, userAgent string) error {
	if err := s.bankRepo.Delete(userID, transactionID); err != nil {
		if errors.Is(err, repositories.ErrBankTransactionNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete bank transaction: %w", err)
	}

	s.metrics.IncrementCounter(MetricBankTransaction, map[string]string{"operation": "delete", "type": "any"})
	s.auditService.LogMutation(userID, models.AuditActionDelete, models.AuditResourceBankTransaction, transactionID.String(), ipAddress, userAgent, nil)
	return nil
}

// GetBalance reconciles every transaction against every expense. The deposit and withdrawal
// totals and the transaction count cover period only.
func (s *BankService) GetBalance(userID uuid.UUID, period analytics.Period) (*dto.BankBalanceResponse, error) {
	start := time.Now()
	defer func() {
		s.metrics.RecordProcessingTime(MetricBankBalanceRecompute, time.Since(start))
	}()

	transactions, err := s.bankRepo.List(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bank transactions: %w", err)
	}

	expenses, err := s.expenseRepo.List(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	lifetime := analytics.Reconcile(transactions, expenses)
	inPeriod := analytics.TransactionsForPeriod(transactions, period, s.now())
	periodSummary := analytics.Reconcile(inPeriod, nil)

	recentCount := s.settings.RecentDeposits
	if recentCount <= 0 {
		recentCount = defaultRecentDeposits
	}

	resp := dto.NewBankBalanceResponse(
		period,
		lifetime,
		periodSummary,
		len(inPeriod),
		analytics.RecentDeposits(transactions, recentCount),
		s.settings.Currency,
	)
	return &resp, nil
}
