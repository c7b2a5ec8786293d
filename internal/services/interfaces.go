package services

import (
	"context"
	"time"

	"household-expenses/internal/analytics"
	"household-expenses/internal/dto"
	"household-expenses/internal/models"

	"github.com/google/uuid"
)

// ExpenseServiceInterface defines expense business operations. Every call is scoped to one user.
type ExpenseServiceInterface interface {
	CreateExpense(userID uuid.UUID, req *dto.ExpenseRequest, ipAddress, userAgent string) (*models.Expense, error)
	GetExpense(userID, expenseID uuid.UUID) (*models.Expense, error)
	ListExpenses(userID uuid.UUID, filters *dto.ExpenseFilters) ([]models.Expense, error)
	UpdateExpense(userID, expenseID uuid.UUID, req *dto.ExpenseRequest, ipAddress, userAgent string) (*models.Expense, error)
	DeleteExpense(userID, expenseID uuid.UUID, ipAddress, userAgent string) error
}

// BudgetServiceInterface defines monthly budget operations
type BudgetServiceInterface interface {
	ListBudgets(userID uuid.UUID, month time.Time) ([]models.Budget, error)
	UpsertBudget(userID uuid.UUID, req *dto.UpsertBudgetRequest, ipAddress, userAgent string) (*models.Budget, error)
	DeleteBudget(userID, budgetID uuid.UUID, ipAddress, userAgent string) error
	GetOverview(userID uuid.UUID, month time.Time) (*analytics.BudgetOverview, error)
}

// BankServiceInterface defines household bank account operations
type BankServiceInterface interface {
	CreateTransaction(userID uuid.UUID, req *dto.CreateBankTransactionRequest, ipAddress, userAgent string) (*models.BankTransaction, error)
	ListTransactions(userID uuid.UUID, period analytics.Period) ([]models.BankTransaction, error)
	DeleteTransaction(userID, transactionID uuid.UUID, ipAddress, userAgent string) error
	GetBalance(userID uuid.UUID, period analytics.Period) (*dto.BankBalanceResponse, error)
}

type DashboardServiceInterface interface {
	GetDashboard(userID uuid.UUID, period analytics.Period, member *models.FamilyMember) (*analytics.Dashboard, error)
}

// BudgetAlertServiceInterface checks a month's budgets after spending changes
type BudgetAlertServiceInterface interface {
	CheckMonth(ctx context.Context, userID uuid.UUID, month time.Time) ([]models.BudgetAlert, error)
}

// BudgetAlertPublisherInterface delivers budget alerts to subscribers
type BudgetAlertPublisherInterface interface {
	Publish(ctx context.Context, alert *models.BudgetAlert) error
	Close() error
}

// AuditServiceInterface defines the contract for the household activity log
type AuditServiceInterface interface {
	CreateAuditLog(log *models.AuditLog) error
	LogMutation(userID uuid.UUID, action, resource, resourceID, ipAddress, userAgent string, metadata map[string]interface{})
	ListActivity(userID uuid.UUID, offset, limit int) ([]models.AuditLog, int64, error)
}

type AuthServiceInterface interface {
	Register(req *dto.RegisterRequest, ipAddress, userAgent string) (*models.User, error)
	Login(req *dto.LoginRequest, ipAddress, userAgent string) (*dto.LoginResponse, error)
	RefreshTokens(refreshToken, ipAddress, userAgent string) (*dto.TokenResponse, error)
	Logout(accessToken, refreshToken, ipAddress, userAgent string) error
	GetUser(userID uuid.UUID) (*models.User, error)
}

type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	GenerateRefreshToken() (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.HouseholdClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
	GetJTI(tokenString string) (string, error)
	GetTokenExpiry(tokenString string) (time.Time, error)
}

type PasswordServiceInterface interface {
	ValidatePassword(password string) error
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
}

// DemoDataGeneratorInterface generates realistic household data for development
type DemoDataGeneratorInterface interface {
	GenerateExpenses(userID uuid.UUID, startDate, endDate time.Time, count int) []models.Expense
	GenerateDeposits(userID uuid.UUID, startDate, endDate time.Time) []models.BankTransaction
	GenerateBudgets(userID uuid.UUID, month time.Time) []models.Budget
}

type DemoDataServiceInterface interface {
	Seed(userID uuid.UUID, days, count int, ipAddress, userAgent string) (*dto.SeedResponse, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}

// NotificationLoggerInterface writes structured events for the budget alert pipeline
type NotificationLoggerInterface interface {
	LogBudgetAlertRaised(ctx context.Context, alert *models.BudgetAlert)
	LogBudgetAlertPublished(ctx context.Context, alert *models.BudgetAlert, durationMs int64)
	LogBudgetAlertFailed(ctx context.Context, alert *models.BudgetAlert, errorMsg string)
	LogBudgetAlertDropped(ctx context.Context, alert *models.BudgetAlert, reason string)
	LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string)
}
